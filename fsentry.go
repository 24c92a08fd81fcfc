// Package fsentry exposes filesystem paths as immutable entry values with query, creation,
// enumeration, and streaming operations.
package fsentry

import (
	"log/slog"
	"path/filepath"

	"github.com/mtth/fsentry/internal/fspath"
)

// File is a handle to a filesystem path, not to an open resource. Its resolved path is computed
// once at construction and never mutated; every operation is a direct blocking call against that
// fixed path. Values are safe to share across goroutines, with cross-process races on the
// underlying filesystem left to the operating system.
type File struct {
	// path is the path as given or derived, not necessarily canonical.
	path fspath.Local
	// resolved is the canonical form of path, used for all system calls. It falls back to path
	// verbatim when the target can't be resolved, typically because it doesn't exist yet.
	resolved fspath.Local
}

var (
	evalSymlinks = filepath.EvalSymlinks
	filepathAbs  = filepath.Abs
)

// resolve canonicalizes fpath, following symlinks and making it absolute. Resolution failures are
// expected (the caller may be about to create the target) and fall back to the input unchanged.
func resolve(fpath fspath.Local) fspath.Local {
	resolved, err := evalSymlinks(fpath)
	if err != nil {
		return fpath
	}
	if abs, err := filepathAbs(resolved); err == nil {
		return abs
	}
	return resolved
}

// Open returns a File for the given path. The path does not need to exist.
func Open(fpath fspath.Local) File {
	file := File{path: fpath, resolved: resolve(fpath)}
	slog.Debug("Opened entry.", dataAttrs(slog.String("path", file.resolved)))
	return file
}

// OpenChild returns a File for the child segment under the parent's path, joined with a single
// separator.
func OpenChild(parent File, child string) File {
	return Open(fspath.JoinChild(parent.path, child))
}

// Path returns the path this entry was opened with.
func (f File) Path() fspath.Local { return f.path }

// ResolvedPath returns the canonical form of the entry's path, or the original path when
// resolution fell back.
func (f File) ResolvedPath() fspath.Local { return f.resolved }

// Name returns the last segment of the entry's resolved path.
func (f File) Name() string { return fspath.LastSegment(f.resolved) }

// String implements fmt.Stringer.
func (f File) String() string { return f.resolved }

// Parent returns an entry for the path truncated at its last separator, or an entry for the empty
// path when no separator exists.
func (f File) Parent() File {
	parent, ok := fspath.ParentOf(f.path)
	if !ok {
		return Open("")
	}
	return Open(parent)
}
