// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/loom/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// This is the single shared test database setup function for all repository tests.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	testDB.SetMaxOpenConns(1)

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedJournal inserts a journal row with an explicit timestamp and returns its ID.
func seedJournal(t *testing.T, db *sql.DB, id, runID, path, outcome, createdAt string) string {
	t.Helper()
	if runID == "" {
		runID = "run-1"
	}
	if path == "" {
		path = "/src/Demo/Domain/Permissions.cs"
	}
	if outcome == "" {
		outcome = "modified"
	}
	if createdAt == "" {
		createdAt = "2026-01-01 00:00:00"
	}
	_, err := db.Exec("INSERT INTO weave_journal (id, run_id, recipe, path, outcome, created_at) VALUES (?, ?, 'permission', ?, ?, ?)", id, runID, path, outcome, createdAt)
	if err != nil {
		t.Fatalf("failed to seed journal: %v", err)
	}
	return id
}
