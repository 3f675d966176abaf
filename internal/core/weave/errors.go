package weave

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks against the typed weave errors.
var (
	ErrMissingRequiredFile      = errors.New("missing required file")
	ErrMissingRequiredDirectory = errors.New("missing required directory")
	ErrPartialCommit            = errors.New("partial commit")
)

// MissingFileError reports a document that must be patched but does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("the `%s` file could not be found", e.Path)
}

// Is matches ErrMissingRequiredFile.
func (e *MissingFileError) Is(target error) bool {
	return target == ErrMissingRequiredFile
}

// MissingDirectoryError reports a parent directory that earlier scaffolding
// should have created.
type MissingDirectoryError struct {
	Path string
}

func (e *MissingDirectoryError) Error() string {
	return fmt.Sprintf("the `%s` directory could not be found", e.Path)
}

// Is matches ErrMissingRequiredDirectory.
func (e *MissingDirectoryError) Is(target error) bool {
	return target == ErrMissingRequiredDirectory
}

// PartialCommitError reports a rewrite that stopped after the temporary file
// was written. Both paths are kept for manual recovery.
type PartialCommitError struct {
	Path     string
	TempPath string
	Err      error
}

func (e *PartialCommitError) Error() string {
	return fmt.Sprintf("partial commit of %s: new content left at %s: %v", e.Path, e.TempPath, e.Err)
}

// Is matches ErrPartialCommit.
func (e *PartialCommitError) Is(target error) bool {
	return target == ErrPartialCommit
}

func (e *PartialCommitError) Unwrap() error {
	return e.Err
}
