package fsentry

import (
	"log/slog"
	"os"
)

// Mutators report failure through their boolean result, never through an error value. Callers must
// check the result; a false return covers missing parents, permissions, and every other cause.

// CreateNewFile creates an empty file at the entry's path if none exists, or opens the existing one
// for read-write and closes it again. It is idempotent: repeated calls on the same path keep
// returning true and leave a single file behind. It returns false when the path is invalid, e.g.
// the parent directory is missing.
func (f File) CreateNewFile() bool {
	file, err := os.OpenFile(f.resolved, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		slog.Debug("File creation failed.", errAttr(err), dataAttrs(slog.String("path", f.resolved)))
		return false
	}
	return file.Close() == nil
}

// Mkdir creates a single directory level at the entry's path with 0755 permissions. It returns
// false when the parent is missing or the entry already exists.
func (f File) Mkdir() bool {
	return os.Mkdir(f.resolved, 0o755) == nil
}

// Remove deletes the entry: a directory removal when the metadata query reports a directory, a file
// removal otherwise. Removing a non-empty directory fails; there is no recursive delete.
func (f File) Remove() bool {
	return os.Remove(f.resolved) == nil
}

// RenameTo moves the entry to dest's resolved path. Atomicity is the host filesystem's rename
// contract: same-filesystem renames are atomic, cross-filesystem renames may fail.
func (f File) RenameTo(dest File) bool {
	return os.Rename(f.resolved, dest.resolved) == nil
}
