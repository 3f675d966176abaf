package weave

import (
	"fmt"
	"path/filepath"
)

// TargetState is the pre-fetched file system state of a recipe's target.
type TargetState struct {
	DirExists  bool
	FileExists bool
}

// TargetAction is what the executor should do with a target.
type TargetAction int

const (
	TargetProceed TargetAction = iota
	TargetSkip
	TargetFail
)

// TargetCheck is the outcome of evaluating a recipe's target.
type TargetCheck struct {
	Action TargetAction
	// CreateDir asks for the parent directory to be created first.
	CreateDir bool
	Err       error
	Notice    *Notice
}

// CheckTarget decides whether a recipe can run against its target.
// Rules:
// - a missing directory is created when the recipe allows it
// - a missing directory the recipe depends on is fatal
// - a missing required file is fatal, a missing optional one is skipped with an info notice
func CheckTarget(r Recipe, state TargetState) TargetCheck {
	check := TargetCheck{Action: TargetProceed}
	fileExists := state.FileExists

	if !state.DirExists {
		switch {
		case r.CreateDir:
			check.CreateDir = true
		case r.DirRequired:
			return TargetCheck{
				Action: TargetFail,
				Err:    &MissingDirectoryError{Path: filepath.Dir(r.Path)},
			}
		}
		fileExists = false
	}

	if !fileExists {
		if r.Required {
			check.Action = TargetFail
			check.Err = &MissingFileError{Path: r.Path}
			return check
		}
		check.Action = TargetSkip
		check.Notice = &Notice{
			Level:   LevelInfo,
			Message: fmt.Sprintf("The `%s` file could not be found.", r.Path),
		}
	}

	return check
}
