package fsentry

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mtth/fsentry/internal/effect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataMissing(t *testing.T) {
	file := Open(filepath.Join(t.TempDir(), "absent"))
	assert.False(t, file.Exists())
	assert.False(t, file.IsDir())
	assert.False(t, file.IsFile())
	assert.Zero(t, file.Size())
	assert.Zero(t, file.LastModified())
	assert.Equal(t, KindMissing, file.Kind())
}

func TestMetadataFile(t *testing.T) {
	fpath := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(fpath, []byte("hello world"), 0o644))

	file := Open(fpath)
	assert.True(t, file.Exists())
	assert.True(t, file.IsFile())
	assert.False(t, file.IsDir())
	assert.Equal(t, int64(11), file.Size())
	assert.Equal(t, KindFile, file.Kind())
}

func TestMetadataDir(t *testing.T) {
	file := Open(t.TempDir())
	assert.True(t, file.Exists())
	assert.True(t, file.IsDir())
	assert.False(t, file.IsFile())
	assert.Equal(t, KindDir, file.Kind())
}

func TestLastModified(t *testing.T) {
	t.Run("tracks mtime", func(t *testing.T) {
		fpath := filepath.Join(t.TempDir(), "data.bin")
		require.NoError(t, os.WriteFile(fpath, []byte("x"), 0o644))

		file := Open(fpath)
		millis := file.LastModified()
		require.Positive(t, millis)
		assert.WithinDuration(t, time.Now(), time.UnixMilli(millis), time.Minute)
	})

	t.Run("matches stat field", func(t *testing.T) {
		fpath := filepath.Join(t.TempDir(), "data.bin")
		require.NoError(t, os.WriteFile(fpath, []byte("x"), 0o644))
		info, err := os.Stat(fpath)
		require.NoError(t, err)

		assert.Equal(t, info.ModTime().UnixMilli(), modMillis(info))
	})
}

func TestStatFailure(t *testing.T) {
	// A stat failure on an existing path is folded into the same zero values as a missing one;
	// callers can't tell the causes apart from the exported surface alone.
	defer effect.Swap(&statFile, func(string) (fs.FileInfo, error) {
		return nil, errors.New("transient stat failure")
	})()

	fpath := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(fpath, []byte("hello"), 0o644))

	file := Open(fpath)
	assert.False(t, file.Exists())
	assert.Zero(t, file.Size())
	assert.Zero(t, file.LastModified())
	assert.Equal(t, KindMissing, file.Kind())

	_, err := file.stat()
	assert.ErrorContains(t, err, "transient stat failure")
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "missing", KindMissing.String())
	assert.Equal(t, "dir", KindDir.String())
	assert.Equal(t, "other", KindOther.String())

	kind, err := KindString("file")
	require.NoError(t, err)
	assert.Equal(t, KindFile, kind)

	_, err = KindString("bogus")
	assert.Error(t, err)
}

func TestContentType(t *testing.T) {
	t.Run("text file", func(t *testing.T) {
		fpath := filepath.Join(t.TempDir(), "notes.txt")
		require.NoError(t, os.WriteFile(fpath, []byte("plain text contents\n"), 0o644))
		assert.Contains(t, Open(fpath).ContentType(), "text/plain")
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Empty(t, Open(filepath.Join(t.TempDir(), "absent")).ContentType())
	})
}
