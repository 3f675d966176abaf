package primary

import "context"

// JournalService defines the primary port for reading the weave journal.
type JournalService interface {
	// ListEntries retrieves journal entries, newest first.
	ListEntries(ctx context.Context, req ListJournalRequest) ([]*JournalEntry, error)

	// Prune deletes entries older than the given number of days.
	Prune(ctx context.Context, days int) (int, error)
}

// ListJournalRequest contains filters for listing journal entries.
type ListJournalRequest struct {
	RunID   string
	Path    string
	Outcome string
	Limit   int
}

// JournalEntry is the public view of one journaled recipe application.
type JournalEntry struct {
	ID        string
	RunID     string
	Phase     string
	Recipe    string
	Path      string
	Outcome   string
	Detail    string
	CreatedAt string
}
