package fsentry

import (
	"context"
	"log/slog"
	"os"

	"github.com/charlievieth/fastwalk"
	"github.com/gobwas/glob"
	"github.com/mtth/fsentry/internal/fspath"
)

// readDir is swapped out for testing.
var readDir = os.ReadDir

// ListFiles returns entries for the immediate children of the entry, built from its resolved path.
// Self and parent pseudo-entries are excluded. It returns an empty collection, never an error, when
// the entry is not a directory or can't be read. Order follows the underlying directory iteration
// and is not guaranteed; callers needing a stable order must sort.
func (f File) ListFiles() []File {
	if !f.IsDir() {
		return nil
	}
	entries, err := readDir(f.resolved)
	if err != nil {
		slog.Warn("Directory read failed.", errAttr(err), dataAttrs(slog.String("path", f.resolved)))
		return nil
	}
	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		files = append(files, Open(fspath.JoinChild(f.resolved, entry.Name())))
	}
	return files
}

// ListMatching returns the immediate children whose names match the glob pattern. An invalid
// pattern yields an empty collection.
func (f File) ListMatching(pattern string) []File {
	matcher, err := glob.Compile(pattern)
	if err != nil {
		slog.Warn("Invalid listing pattern.", errAttr(err), dataAttrs(slog.String("pattern", pattern)))
		return nil
	}
	var files []File
	for _, child := range f.ListFiles() {
		if matcher.Match(child.Name()) {
			files = append(files, child)
		}
	}
	return files
}

// Walk traverses the entry's subtree, calling fn for every descendant. Symlinks are not followed
// and the entry itself is skipped. The traversal is parallel, so fn may be called concurrently from
// multiple goroutines. Unlike the rest of the API, Walk honors ctx cancellation and surfaces
// traversal errors, since it can touch an unbounded number of entries.
func (f File) Walk(ctx context.Context, fn func(File) error) error {
	conf := fastwalk.Config{Follow: false}
	return fastwalk.Walk(&conf, f.resolved, func(fpath string, _ os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if fpath == f.resolved {
			return nil
		}
		return fn(Open(fpath))
	})
}
