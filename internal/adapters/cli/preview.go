package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/example/loom/internal/diff"
	"github.com/example/loom/internal/ports/secondary"
)

// StagedFiles is a set of files written without touching disk.
type StagedFiles interface {
	Paths() []string
	Content(path string) (string, bool)
}

// PreviewAdapter prints what a dry run would have written.
type PreviewAdapter struct {
	staged StagedFiles
	base   secondary.FileSystem
	out    io.Writer
}

// NewPreviewAdapter creates a PreviewAdapter comparing staged files with base.
func NewPreviewAdapter(staged StagedFiles, base secondary.FileSystem, out io.Writer) *PreviewAdapter {
	return &PreviewAdapter{
		staged: staged,
		base:   base,
		out:    out,
	}
}

// Print writes a colored unified diff per changed file and a summary line.
// It returns the number of files that differ from base.
func (a *PreviewAdapter) Print(ctx context.Context) (int, error) {
	changed := 0
	totalAdded, totalRemoved := 0, 0

	for _, path := range a.staged.Paths() {
		updated, _ := a.staged.Content(path)

		original := ""
		exists, err := a.base.Exists(ctx, path)
		if err != nil {
			return changed, fmt.Errorf("failed to check %s: %w", path, err)
		}
		if exists {
			data, err := a.base.ReadFile(ctx, path)
			if err != nil {
				return changed, fmt.Errorf("failed to read %s: %w", path, err)
			}
			original = string(data)
		}

		unified := diff.Unified(path, original, updated, diff.DefaultContext)
		if unified == "" {
			continue
		}
		changed++
		added, removed := diff.Stats(original, updated)
		totalAdded += added
		totalRemoved += removed
		a.printDiff(unified)
	}

	if changed == 0 {
		fmt.Fprintln(a.out, "Dry run: no files would change.")
		return 0, nil
	}
	fmt.Fprintf(a.out, "Dry run: %d file(s) would change (%s, %s)\n", changed,
		color.New(color.FgGreen).Sprintf("+%d", totalAdded),
		color.New(color.FgRed).Sprintf("-%d", totalRemoved))
	return changed, nil
}

func (a *PreviewAdapter) printDiff(unified string) {
	for _, line := range strings.SplitAfter(unified, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			fmt.Fprint(a.out, color.New(color.Bold).Sprint(line))
		case strings.HasPrefix(line, "@@"):
			fmt.Fprint(a.out, color.New(color.FgCyan).Sprint(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprint(a.out, color.New(color.FgGreen).Sprint(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprint(a.out, color.New(color.FgRed).Sprint(line))
		default:
			fmt.Fprint(a.out, line)
		}
	}
	fmt.Fprintln(a.out)
}
