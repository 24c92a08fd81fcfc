//go:build linux

package fsentry

import (
	"io/fs"
	"syscall"
)

// modMillis converts info's modification time to milliseconds since the epoch, reading the
// nanosecond-resolution Mtim field from the raw stat data when available.
func modMillis(info fs.FileInfo) int64 {
	if stat, ok := info.Sys().(*syscall.Stat_t); ok {
		return int64(stat.Mtim.Sec)*1000 + int64(stat.Mtim.Nsec)/1_000_000
	}
	return info.ModTime().UnixMilli()
}
