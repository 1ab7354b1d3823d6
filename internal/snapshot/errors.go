package snapshot

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRoot is returned when a tree is built from a path that does
	// not exist or is not a directory.
	ErrInvalidRoot = errors.New("invalid or missing root directory")
	// ErrFileNotFound is what callers report when FindAndApply finds nothing.
	ErrFileNotFound = errors.New("file not found in snapshot")
	ErrNotUnderRoot = errors.New("path is not under root")
)

// NotUnderRootError reports a snapshot entry that cannot be expressed
// relative to the root it is supposed to live under. It usually means the
// snapshot is stale or was built from a different directory.
type NotUnderRootError struct {
	Root string
	Path string
}

func (e *NotUnderRootError) Error() string {
	return fmt.Sprintf("path %s is not under root %s", e.Path, e.Root)
}

func (e *NotUnderRootError) Is(target error) bool {
	return target == ErrNotUnderRoot
}
