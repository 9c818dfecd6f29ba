package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database with the full schema
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := InitDB(context.Background(), MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) (*sql.DB, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "school.db")

	db, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	return db, dbPath
}

// closeAndReopenDB simulates app restart by closing and reopening the database
func closeAndReopenDB(t *testing.T, db *sql.DB, dbPath string) *sql.DB {
	t.Helper()
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close database: %v", err)
	}

	newDB, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to reopen database: %v", err)
	}
	t.Cleanup(func() { _ = newDB.Close() })
	return newDB
}

// ============================================================================
// FIXTURES
// ============================================================================

func strPtr(s string) *string {
	return &s
}

func mustCreateStudent(t *testing.T, repo *Repository, code, name string) {
	t.Helper()
	if _, err := repo.CreateStudent(context.Background(), code, name, 20, ""); err != nil {
		t.Fatalf("Failed to create student %s: %v", code, err)
	}
}

func mustCreateInstructor(t *testing.T, repo *Repository, code, name string) {
	t.Helper()
	if _, err := repo.CreateInstructor(context.Background(), code, name, 45, ""); err != nil {
		t.Fatalf("Failed to create instructor %s: %v", code, err)
	}
}

func mustCreateCourse(t *testing.T, repo *Repository, code, name string, instructorID *string) {
	t.Helper()
	if _, err := repo.CreateCourse(context.Background(), code, name, instructorID); err != nil {
		t.Fatalf("Failed to create course %s: %v", code, err)
	}
}
