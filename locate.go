package fsentry

import (
	"log/slog"
	"os"

	"github.com/adrg/xdg"
	"github.com/mtth/fsentry/internal/fspath"
)

// resourceDirName is the fixed subdirectory holding bundled assets next to the executable.
const resourceDirName = "resource"

// executablePath and homeDir are swapped out for testing.
var (
	executablePath = os.Executable
	homeDir        = func() fspath.Local { return xdg.Home }
)

// OpenResourceDir locates the running executable and returns an entry for its sibling resource
// directory. When the executable path is unavailable or contains no separator, it degrades to an
// entry for the empty path instead of failing. No existence check is performed; callers must create
// the directory if needed.
func OpenResourceDir() File {
	exe, err := executablePath()
	if err != nil {
		slog.Warn("Executable path lookup failed.", errAttr(err))
		return Open("")
	}
	parent, ok := fspath.ParentOf(exe)
	if !ok {
		return Open("")
	}
	return Open(fspath.JoinChild(parent, resourceDirName))
}

// OpenWorkingDir returns an entry for the named per-user directory under the user's home directory,
// or an entry for the empty path when no home directory is available. No existence check is
// performed; callers must create the directory if needed.
func OpenWorkingDir(name string) File {
	home := homeDir()
	if home == "" {
		return Open("")
	}
	return Open(fspath.JoinChild(home, name))
}
