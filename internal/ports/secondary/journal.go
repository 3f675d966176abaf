package secondary

import "context"

// JournalRepository defines the secondary port for the weave journal.
// Entries are immutable - no Update operations, but old entries can be pruned.
type JournalRepository interface {
	// Create persists a new journal entry.
	Create(ctx context.Context, entry *JournalRecord) error

	// GetByID retrieves a journal entry by its ID.
	GetByID(ctx context.Context, id string) (*JournalRecord, error)

	// List retrieves journal entries matching the given filters.
	List(ctx context.Context, filters JournalFilters) ([]*JournalRecord, error)

	// GetNextID returns the next available journal ID.
	GetNextID(ctx context.Context) (string, error)

	// PruneOlderThan deletes entries older than the given number of days.
	// Returns the number of deleted entries.
	PruneOlderThan(ctx context.Context, days int) (int, error)
}

// JournalRecord is one recipe application as stored in persistence.
type JournalRecord struct {
	ID        string
	RunID     string
	Phase     string // Empty string means null
	Recipe    string
	Path      string
	Outcome   string // 'modified', 'skipped_idempotent', 'extension_point_not_found', 'missing', 'created', 'exists'
	Detail    string // Empty string means null
	CreatedAt string
}

// JournalFilters contains filter options for querying the journal.
type JournalFilters struct {
	RunID   string
	Path    string
	Outcome string
	Limit   int
}

// JournalWriter records applied recipes against the run carried in ctx.
type JournalWriter interface {
	Record(ctx context.Context, entry JournalEntry) error
}

// JournalEntry is what the executor knows about one applied recipe.
type JournalEntry struct {
	Phase   string
	Recipe  string
	Path    string
	Outcome string
	Detail  string
}
