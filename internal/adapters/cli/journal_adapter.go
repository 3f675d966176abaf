package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/loom/internal/ports/primary"
)

// JournalAdapter translates journal CLI operations to JournalService calls.
type JournalAdapter struct {
	service primary.JournalService
	out     io.Writer
}

// NewJournalAdapter creates a new JournalAdapter with the given service.
func NewJournalAdapter(service primary.JournalService, out io.Writer) *JournalAdapter {
	return &JournalAdapter{
		service: service,
		out:     out,
	}
}

// List prints journal entries as a table.
func (a *JournalAdapter) List(ctx context.Context, req primary.ListJournalRequest) error {
	entries, err := a.service.ListEntries(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to list journal: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No journal entries found.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tRUN\tPHASE\tRECIPE\tOUTCOME\tPATH")
	fmt.Fprintln(w, "--\t----\t---\t-----\t------\t-------\t----")
	for _, e := range entries {
		phase := e.Phase
		if phase == "" {
			phase = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID, e.CreatedAt, shortRun(e.RunID), phase, e.Recipe, outcomeLabel(e.Outcome), e.Path)
	}
	w.Flush()
	return nil
}

// Prune deletes old journal entries and prints how many went.
func (a *JournalAdapter) Prune(ctx context.Context, days int) error {
	n, err := a.service.Prune(ctx, days)
	if err != nil {
		return fmt.Errorf("failed to prune journal: %w", err)
	}
	fmt.Fprintf(a.out, "✓ Pruned %d journal entries older than %d days\n", n, days)
	return nil
}

func shortRun(runID string) string {
	if len(runID) > 8 {
		return runID[:8]
	}
	return runID
}
