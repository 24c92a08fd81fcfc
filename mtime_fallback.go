//go:build !linux && !darwin

package fsentry

import "io/fs"

// modMillis converts info's modification time to milliseconds since the epoch. Platforms without a
// known nanosecond-resolution stat field go through the portable ModTime value.
func modMillis(info fs.FileInfo) int64 {
	return info.ModTime().UnixMilli()
}
