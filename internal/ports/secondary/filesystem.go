// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"os"
)

// FileSystem defines the secondary port for the file operations weaving needs.
type FileSystem interface {
	// Exists reports whether a regular file exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// DirExists reports whether a directory exists at path.
	DirExists(ctx context.Context, path string) (bool, error)

	// CreateDirectory creates a directory with all parent directories.
	CreateDirectory(ctx context.Context, path string) error

	// ReadFile returns the full content of a file.
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile creates or truncates a file and writes content to it.
	WriteFile(ctx context.Context, path string, content []byte) error

	// Remove deletes a file.
	Remove(ctx context.Context, path string) error

	// Rename moves from onto to, replacing to if it exists.
	Rename(ctx context.Context, from, to string) error
}

// AtomicReplacer is implemented by file systems with a native atomic
// replace. The rewriter prefers it over its own temp-file sequence.
type AtomicReplacer interface {
	// ReplaceFile swaps in content at path. An existing file keeps its mode;
	// a new file gets mode, or the adapter default when mode is zero.
	ReplaceFile(ctx context.Context, path string, content []byte, mode os.FileMode) error
}
