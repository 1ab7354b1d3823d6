package project

import (
	"errors"
	"fmt"

	"github.com/DobbiKov/translate-dir-lib/internal/config"
)

var (
	ErrNoConfig           = config.ErrNotInProject
	ErrAlreadyInitialized = errors.New("project already initialized")
	ErrInvalidPath        = errors.New("invalid path")
	ErrDirNotFound        = errors.New("directory does not exist")
	ErrNotDirectory       = errors.New("path is not a directory")
	ErrOutsideRoot        = errors.New("path must be inside the project root")
	ErrOverlapsSource     = errors.New("directory overlaps the source directory")
	ErrNoSource           = errors.New("no source language set")
	ErrNoTargets          = errors.New("no target languages configured")
	ErrLangInProject      = errors.New("language already in project")
	ErrLangDirExists      = errors.New("language directory already exists")
	ErrTargetNotInProject = errors.New("target language not in project")
	ErrInvalidLanguage    = errors.New("invalid language")
	ErrDirInUse           = errors.New("directory already used by another language")
)

// SyncError is returned by Sync when every target was synced and persisted
// but some files could not be copied or pruned. Err combines the failures.
type SyncError struct {
	Failed int
	Err    error
}

func (e *SyncError) Error() string {
	return fmt.Sprintf("sync finished with %d failure(s): %v", e.Failed, e.Err)
}

func (e *SyncError) Unwrap() error {
	return e.Err
}
