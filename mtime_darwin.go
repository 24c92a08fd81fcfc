//go:build darwin

package fsentry

import (
	"io/fs"
	"syscall"
)

// modMillis converts info's modification time to milliseconds since the epoch, reading the
// nanosecond-resolution Mtimespec field from the raw stat data when available.
func modMillis(info fs.FileInfo) int64 {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return int64(stat.Mtimespec.Sec)*1000 + int64(stat.Mtimespec.Nsec)/1_000_000
	}
	return info.ModTime().UnixMilli()
}
