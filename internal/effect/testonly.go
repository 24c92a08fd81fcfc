//go:build test

// Package effect provides helpers for temporarily altering process-level state in tests.
package effect

import "os"

// Swap temporarily replaces a variable with another. Call the returned function to restore the
// original value.
func Swap[V any](ref *V, val V) func() {
	old := *ref
	*ref = val
	return func() { *ref = old }
}

// Chdir changes the working directory. Call the returned function to change back.
func Chdir(dir string) (func(), error) {
	old, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	if err := os.Chdir(dir); err != nil {
		return nil, err
	}
	return func() { _ = os.Chdir(old) }, nil
}
