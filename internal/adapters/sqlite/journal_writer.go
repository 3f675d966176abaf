package sqlite

import (
	"context"
	"sync"

	"github.com/example/loom/internal/ctxutil"
	"github.com/example/loom/internal/ports/secondary"
)

// JournalWriterAdapter implements secondary.JournalWriter using JournalRepository.
type JournalWriterAdapter struct {
	mu   sync.Mutex
	repo secondary.JournalRepository
}

// NewJournalWriterAdapter creates a new JournalWriterAdapter.
func NewJournalWriterAdapter(repo secondary.JournalRepository) *JournalWriterAdapter {
	return &JournalWriterAdapter{repo: repo}
}

// Record writes one journal entry for the run in ctx.
// Entries outside a run are not journaled.
func (w *JournalWriterAdapter) Record(ctx context.Context, entry secondary.JournalEntry) error {
	runID := ctxutil.RunIDFromContext(ctx)
	if runID == "" {
		return nil
	}

	// ID allocation and insert must not interleave
	w.mu.Lock()
	defer w.mu.Unlock()

	id, err := w.repo.GetNextID(ctx)
	if err != nil {
		return err
	}

	return w.repo.Create(ctx, &secondary.JournalRecord{
		ID:      id,
		RunID:   runID,
		Phase:   entry.Phase,
		Recipe:  entry.Recipe,
		Path:    entry.Path,
		Outcome: entry.Outcome,
		Detail:  entry.Detail,
	})
}

// Ensure JournalWriterAdapter implements the interface
var _ secondary.JournalWriter = (*JournalWriterAdapter)(nil)
