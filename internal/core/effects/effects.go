// Package effects defines effect types as data structures representing I/O operations.
// This is the foundation of the Functional Core / Imperative Shell pattern.
// Effects are pure data - they describe what should happen, not how.
package effects

import "github.com/example/loom/internal/core/weave"

// Effect is the base interface for all effects.
// Effects represent I/O operations as data that can be interpreted by the shell.
type Effect interface {
	// EffectType returns a string identifier for the effect type.
	EffectType() string
}

// LogEffect represents a console message.
type LogEffect struct {
	Level   string // "info" or "warning"
	Message string
	Fields  map[string]any
}

func (e LogEffect) EffectType() string { return "log" }

// FileEffect represents a file system operation.
type FileEffect struct {
	Phase     string
	Operation string // "mkdir", "create_if_absent"
	Path      string
	Content   []byte // For create operations
	Mode      uint32 // File permissions
}

func (e FileEffect) EffectType() string { return "file" }

// WeaveEffect applies one weaving recipe to its target file.
type WeaveEffect struct {
	Phase  string
	Recipe weave.Recipe
}

func (e WeaveEffect) EffectType() string { return "weave" }

// CompositeEffect holds multiple effects to be executed in sequence.
type CompositeEffect struct {
	Effects []Effect
}

func (e CompositeEffect) EffectType() string { return "composite" }

// NoEffect represents an operation that produces no side effects.
type NoEffect struct{}

func (e NoEffect) EffectType() string { return "none" }
