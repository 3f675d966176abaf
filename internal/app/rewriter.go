package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/example/loom/internal/core/weave"
	"github.com/example/loom/internal/ports/secondary"
)

// TempSuffix is appended to a target path to name its staging file.
const TempSuffix = "temp"

// Rewriter commits new file content so that a reader sees either the old
// content or the new content, never a mix.
type Rewriter struct {
	fs secondary.FileSystem
}

// NewRewriter creates a Rewriter over fs.
func NewRewriter(fs secondary.FileSystem) *Rewriter {
	return &Rewriter{fs: fs}
}

// EnsureDirectory makes sure dir exists. With create false a missing
// directory is a MissingDirectoryError.
func (r *Rewriter) EnsureDirectory(ctx context.Context, dir string, create bool) error {
	exists, err := r.fs.DirExists(ctx, dir)
	if err != nil {
		return fmt.Errorf("failed to check directory %s: %w", dir, err)
	}
	if exists {
		return nil
	}
	if !create {
		return &weave.MissingDirectoryError{Path: dir}
	}
	if err := r.fs.CreateDirectory(ctx, dir); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// Commit replaces the content of path.
//
// File systems with a native atomic replace use it. Otherwise the content is
// staged at path+TempSuffix and renamed over path; there is no separate delete,
// so the original is intact until the rename succeeds.
func (r *Rewriter) Commit(ctx context.Context, path string, content []byte) error {
	return r.commit(ctx, path, content, 0)
}

// Create commits content to a path that does not exist yet with the given
// permissions. Zero mode leaves the file system default.
func (r *Rewriter) Create(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	return r.commit(ctx, path, content, mode)
}

func (r *Rewriter) commit(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	if replacer, ok := r.fs.(secondary.AtomicReplacer); ok {
		if err := replacer.ReplaceFile(ctx, path, content, mode); err != nil {
			return fmt.Errorf("failed to replace %s: %w", path, err)
		}
		return nil
	}

	temp := path + TempSuffix
	if err := r.fs.WriteFile(ctx, temp, content); err != nil {
		err = fmt.Errorf("failed to stage %s: %w", temp, err)
		if rmErr := r.fs.Remove(ctx, temp); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
			err = errors.Join(err, rmErr)
		}
		return err
	}

	if err := r.fs.Rename(ctx, temp, path); err != nil {
		return &weave.PartialCommitError{Path: path, TempPath: temp, Err: err}
	}
	return nil
}
