// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/natefinch/atomic"
)

// OSFileSystem implements secondary.FileSystem against the real disk.
type OSFileSystem struct {
	fileMode os.FileMode
	dirMode  os.FileMode
}

// NewOSFileSystem creates a new disk-backed file system adapter.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{fileMode: 0644, dirMode: 0755}
}

// Exists checks if a regular file exists at path.
func (a *OSFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check file: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

// DirExists checks if a directory exists.
func (a *OSFileSystem) DirExists(ctx context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check directory: %w", err)
	}
	return info.IsDir(), nil
}

// CreateDirectory creates a directory with all parent directories.
func (a *OSFileSystem) CreateDirectory(ctx context.Context, path string) error {
	if err := os.MkdirAll(path, a.dirMode); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// ReadFile reads the whole file.
func (a *OSFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// WriteFile creates or truncates path and writes content.
func (a *OSFileSystem) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := os.WriteFile(path, content, a.fileMode); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Remove deletes a file.
func (a *OSFileSystem) Remove(ctx context.Context, path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// Rename moves from onto to. On POSIX systems this replaces to atomically.
func (a *OSFileSystem) Rename(ctx context.Context, from, to string) error {
	if err := os.Rename(from, to); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", from, to, err)
	}
	return nil
}

// ReplaceFile writes content to a sibling temp file and renames it over path.
// atomic.WriteFile stages with owner-only permissions and copies the mode of
// an existing target only, so a new file is chmodded afterwards.
func (a *OSFileSystem) ReplaceFile(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	existed, err := a.Exists(ctx, path)
	if err != nil {
		return err
	}
	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	if existed {
		return nil
	}
	if mode == 0 {
		mode = a.fileMode
	}
	if err := os.Chmod(path, mode); err != nil {
		return fmt.Errorf("failed to set mode of %s: %w", path, err)
	}
	return nil
}
