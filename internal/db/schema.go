package db

import "database/sql"

// SchemaSQL is the complete journal schema for fresh installs.
// This schema reflects the current state after all migrations.
//
// # Schema Drift Protection
//
// This is the SINGLE SOURCE OF TRUTH for the journal schema. All tests use
// this schema via GetSchemaSQL(). If repository code references a column that
// doesn't exist here, tests fail immediately with "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Weave journal (one row per recipe or file effect applied)
CREATE TABLE IF NOT EXISTS weave_journal (
	id TEXT PRIMARY KEY,
	run_id TEXT NOT NULL,
	phase TEXT,
	recipe TEXT NOT NULL,
	path TEXT NOT NULL,
	outcome TEXT NOT NULL CHECK(outcome IN ('modified', 'skipped_idempotent', 'extension_point_not_found', 'missing', 'created', 'exists')),
	detail TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_weave_journal_run ON weave_journal(run_id);
CREATE INDEX IF NOT EXISTS idx_weave_journal_path ON weave_journal(path);
`

// InitSchema creates the journal schema, or migrates an existing one.
func InitSchema(db *sql.DB) error {
	var tableCount int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		return RunMigrations(db)
	}

	// Fresh install - create modern schema directly and mark every migration applied
	if _, err := db.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := createVersionTable(db); err != nil {
		return err
	}
	for _, m := range migrations {
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
