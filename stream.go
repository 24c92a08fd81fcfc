package fsentry

import (
	"io"
	"os"
)

// Reader opens a sequential binary input channel at the entry's resolved path, or nil if the open
// fails. Ownership transfers to the caller, who must close it; the entry keeps no reference.
func (f File) Reader() io.ReadCloser {
	file, err := os.Open(f.resolved)
	if err != nil {
		return nil
	}
	return file
}

// Writer opens a sequential binary output channel at the entry's resolved path, creating or
// truncating the target, or nil if the open fails. Ownership transfers to the caller, who must
// close it; the entry keeps no reference.
func (f File) Writer() io.WriteCloser {
	file, err := os.Create(f.resolved)
	if err != nil {
		return nil
	}
	return file
}
