package fsentry

import (
	"io/fs"
	"os"

	"github.com/gabriel-vasile/mimetype"
)

// statFile is swapped out for testing.
var statFile = os.Stat

// stat is the single metadata query backing all derived accessors. Failures stay inspectable here;
// the exported surface folds them into booleans and zero values.
func (f File) stat() (fs.FileInfo, error) {
	return statFile(f.resolved)
}

// Exists returns whether the entry's path currently points at anything.
func (f File) Exists() bool {
	_, err := f.stat()
	return err == nil
}

// IsDir returns whether the entry points at a directory. It returns false, not an error, when the
// path can't be statted.
func (f File) IsDir() bool {
	info, err := f.stat()
	return err == nil && info.IsDir()
}

// IsFile returns whether the entry points at a regular file. It returns false, not an error, when
// the path can't be statted.
func (f File) IsFile() bool {
	info, err := f.stat()
	return err == nil && info.Mode().IsRegular()
}

// Size returns the entry's size in bytes. A failed metadata query yields 0, indistinguishable from
// a legitimately empty file.
func (f File) Size() int64 {
	info, err := f.stat()
	if err != nil {
		return 0
	}
	return info.Size()
}

// LastModified returns the entry's modification time in milliseconds since the epoch, from the
// highest-resolution field the target platform exposes. A failed metadata query yields 0.
func (f File) LastModified() int64 {
	info, err := f.stat()
	if err != nil {
		return 0
	}
	return modMillis(info)
}

// Kind categorizes what an entry's path currently points to.
type Kind int

//go:generate go run github.com/dmarkham/enumer -type=Kind -trimprefix Kind -transform snake
const (
	// KindMissing means the path could not be statted.
	KindMissing Kind = iota
	// KindFile is a regular file.
	KindFile
	// KindDir is a directory.
	KindDir
	// KindOther covers devices, sockets, pipes, and other special entries.
	KindOther
)

// Kind returns the entry's current kind.
func (f File) Kind() Kind {
	info, err := f.stat()
	switch {
	case err != nil:
		return KindMissing
	case info.IsDir():
		return KindDir
	case info.Mode().IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// ContentType sniffs the entry's MIME type from its contents. It returns the empty string when the
// entry can't be read.
func (f File) ContentType() string {
	mtype, err := mimetype.DetectFile(f.resolved)
	if err != nil {
		return ""
	}
	return mtype.String()
}
