package app

import (
	"context"
	"fmt"

	"github.com/example/loom/internal/ports/primary"
	"github.com/example/loom/internal/ports/secondary"
)

// DefaultJournalLimit caps listings that do not ask for a limit.
const DefaultJournalLimit = 50

// JournalServiceImpl implements the JournalService interface.
type JournalServiceImpl struct {
	repo secondary.JournalRepository
}

// NewJournalService creates a new JournalService with injected dependencies.
func NewJournalService(repo secondary.JournalRepository) *JournalServiceImpl {
	return &JournalServiceImpl{repo: repo}
}

// ListEntries retrieves journal entries, newest first.
func (s *JournalServiceImpl) ListEntries(ctx context.Context, req primary.ListJournalRequest) ([]*primary.JournalEntry, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = DefaultJournalLimit
	}

	records, err := s.repo.List(ctx, secondary.JournalFilters{
		RunID:   req.RunID,
		Path:    req.Path,
		Outcome: req.Outcome,
		Limit:   limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list journal: %w", err)
	}

	entries := make([]*primary.JournalEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.JournalEntry{
			ID:        r.ID,
			RunID:     r.RunID,
			Phase:     r.Phase,
			Recipe:    r.Recipe,
			Path:      r.Path,
			Outcome:   r.Outcome,
			Detail:    r.Detail,
			CreatedAt: r.CreatedAt,
		}
	}
	return entries, nil
}

// Prune deletes entries older than days. days must be positive.
func (s *JournalServiceImpl) Prune(ctx context.Context, days int) (int, error) {
	if days <= 0 {
		return 0, fmt.Errorf("days must be positive, got %d", days)
	}
	n, err := s.repo.PruneOlderThan(ctx, days)
	if err != nil {
		return 0, fmt.Errorf("failed to prune journal: %w", err)
	}
	return n, nil
}

// Ensure JournalServiceImpl implements the interface
var _ primary.JournalService = (*JournalServiceImpl)(nil)
