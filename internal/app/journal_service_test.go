package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/loom/internal/ports/primary"
	"github.com/example/loom/internal/ports/secondary"
)

// mockJournalRepository implements secondary.JournalRepository for testing.
type mockJournalRepository struct {
	records    []*secondary.JournalRecord
	lastFilter secondary.JournalFilters
	listErr    error
	pruned     int
	pruneDays  int
}

func (m *mockJournalRepository) Create(ctx context.Context, entry *secondary.JournalRecord) error {
	m.records = append(m.records, entry)
	return nil
}

func (m *mockJournalRepository) GetByID(ctx context.Context, id string) (*secondary.JournalRecord, error) {
	for _, r := range m.records {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockJournalRepository) List(ctx context.Context, filters secondary.JournalFilters) ([]*secondary.JournalRecord, error) {
	m.lastFilter = filters
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.records, nil
}

func (m *mockJournalRepository) GetNextID(ctx context.Context) (string, error) {
	return "WJ-0001", nil
}

func (m *mockJournalRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	m.pruneDays = days
	return m.pruned, nil
}

var _ secondary.JournalRepository = (*mockJournalRepository)(nil)

func TestJournalService_ListEntries(t *testing.T) {
	repo := &mockJournalRepository{
		records: []*secondary.JournalRecord{
			{ID: "WJ-0002", RunID: "run-1", Phase: "permissions", Recipe: "permission", Path: "Permissions.cs", Outcome: "modified", CreatedAt: "2026-01-02 10:00:00"},
			{ID: "WJ-0001", RunID: "run-1", Recipe: "consumer-registration", Path: "MassTransitServiceExtension.cs", Outcome: "skipped_idempotent"},
		},
	}
	svc := NewJournalService(repo)

	entries, err := svc.ListEntries(context.Background(), primary.ListJournalRequest{RunID: "run-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].ID != "WJ-0002" || entries[0].Phase != "permissions" || entries[0].CreatedAt != "2026-01-02 10:00:00" {
		t.Errorf("entry not mapped: %+v", entries[0])
	}
	if repo.lastFilter.RunID != "run-1" {
		t.Errorf("RunID filter = %q, want run-1", repo.lastFilter.RunID)
	}
	if repo.lastFilter.Limit != DefaultJournalLimit {
		t.Errorf("Limit = %d, want default %d", repo.lastFilter.Limit, DefaultJournalLimit)
	}
}

func TestJournalService_ListEntries_ExplicitLimit(t *testing.T) {
	repo := &mockJournalRepository{}
	svc := NewJournalService(repo)

	if _, err := svc.ListEntries(context.Background(), primary.ListJournalRequest{Limit: 5, Outcome: "modified"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastFilter.Limit != 5 || repo.lastFilter.Outcome != "modified" {
		t.Errorf("filters = %+v", repo.lastFilter)
	}
}

func TestJournalService_ListEntries_Error(t *testing.T) {
	svc := NewJournalService(&mockJournalRepository{listErr: errors.New("database is locked")})

	if _, err := svc.ListEntries(context.Background(), primary.ListJournalRequest{}); err == nil {
		t.Fatal("expected error")
	}
}

func TestJournalService_Prune(t *testing.T) {
	repo := &mockJournalRepository{pruned: 7}
	svc := NewJournalService(repo)

	n, err := svc.Prune(context.Background(), 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 7 || repo.pruneDays != 30 {
		t.Errorf("Prune() = %d (days %d), want 7 (days 30)", n, repo.pruneDays)
	}

	if _, err := svc.Prune(context.Background(), 0); err == nil {
		t.Error("expected error for non-positive days")
	}
}
