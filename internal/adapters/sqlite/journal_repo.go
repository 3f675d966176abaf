// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/loom/internal/ports/secondary"
)

// JournalRepository implements secondary.JournalRepository with SQLite.
type JournalRepository struct {
	db *sql.DB
}

// NewJournalRepository creates a new SQLite journal repository.
func NewJournalRepository(db *sql.DB) *JournalRepository {
	return &JournalRepository{db: db}
}

// Create persists a new journal entry.
func (r *JournalRepository) Create(ctx context.Context, entry *secondary.JournalRecord) error {
	var phase, detail sql.NullString
	if entry.Phase != "" {
		phase = sql.NullString{String: entry.Phase, Valid: true}
	}
	if entry.Detail != "" {
		detail = sql.NullString{String: entry.Detail, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO weave_journal (id, run_id, phase, recipe, path, outcome, detail) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.RunID,
		phase,
		entry.Recipe,
		entry.Path,
		entry.Outcome,
		detail,
	)
	if err != nil {
		return fmt.Errorf("failed to create journal entry: %w", err)
	}

	return nil
}

// GetByID retrieves a journal entry by its ID.
func (r *JournalRepository) GetByID(ctx context.Context, id string) (*secondary.JournalRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, run_id, phase, recipe, path, outcome, detail, created_at FROM weave_journal WHERE id = ?`,
		id,
	)

	record, err := scanJournal(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("journal entry %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get journal entry: %w", err)
	}

	return record, nil
}

// List retrieves journal entries matching the given filters, newest first.
func (r *JournalRepository) List(ctx context.Context, filters secondary.JournalFilters) ([]*secondary.JournalRecord, error) {
	query := `SELECT id, run_id, phase, recipe, path, outcome, detail, created_at FROM weave_journal WHERE 1=1`
	args := []any{}

	if filters.RunID != "" {
		query += " AND run_id = ?"
		args = append(args, filters.RunID)
	}

	if filters.Path != "" {
		query += " AND path = ?"
		args = append(args, filters.Path)
	}

	if filters.Outcome != "" {
		query += " AND outcome = ?"
		args = append(args, filters.Outcome)
	}

	query += " ORDER BY created_at DESC, id DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.JournalRecord
	for rows.Next() {
		record, err := scanJournal(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, record)
	}

	return entries, rows.Err()
}

// GetNextID returns the next available journal ID.
func (r *JournalRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	prefixLen := len("WJ-") + 1
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COALESCE(MAX(CAST(SUBSTR(id, %d) AS INTEGER)), 0) FROM weave_journal", prefixLen),
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next journal ID: %w", err)
	}

	return fmt.Sprintf("WJ-%04d", maxID+1), nil
}

// PruneOlderThan deletes journal entries older than the given number of days.
func (r *JournalRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM weave_journal WHERE created_at < datetime('now', ?)",
		fmt.Sprintf("-%d days", days),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune journal: %w", err)
	}

	count, _ := result.RowsAffected()
	return int(count), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJournal(s scanner) (*secondary.JournalRecord, error) {
	var (
		phase     sql.NullString
		detail    sql.NullString
		createdAt time.Time
	)

	record := &secondary.JournalRecord{}
	err := s.Scan(&record.ID,
		&record.RunID,
		&phase,
		&record.Recipe,
		&record.Path,
		&record.Outcome,
		&detail,
		&createdAt)
	if err != nil {
		return nil, err
	}
	record.Phase = phase.String
	record.Detail = detail.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// Ensure JournalRepository implements the interface
var _ secondary.JournalRepository = (*JournalRepository)(nil)
