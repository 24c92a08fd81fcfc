// Package fspath holds path-string representations and the separator-level manipulations shared by
// entry construction.
package fspath

import "strings"

// Local is a machine-dependent path representation. It is the format expected by functions in the
// path/filepath module.
type Local = string

// separators covers both path flavors; parents are derived from whichever occurs last.
const separators = `/\`

// JoinChild appends a child segment to a parent path using a single forward-slash separator.
func JoinChild(parent Local, child string) Local {
	return parent + "/" + child
}

// ParentOf truncates fpath at its last separator. The boolean is false when fpath contains no
// separator, in which case the parent is defined as the empty path.
func ParentOf(fpath Local) (Local, bool) {
	idx := strings.LastIndexAny(fpath, separators)
	if idx < 0 {
		return "", false
	}
	return fpath[:idx], true
}

// LastSegment returns the portion of fpath after its last separator, or fpath itself when it has
// none.
func LastSegment(fpath Local) string {
	idx := strings.LastIndexAny(fpath, separators)
	return fpath[idx+1:]
}
