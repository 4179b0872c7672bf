package testutil

import (
	"context"
	"testing"

	"github.com/sopgen/sopgen/internal/database"
)

// NewTestDB creates a new in-memory SQLite database that is closed when the
// test ends. No migrations are applied.
func NewTestDB(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.NewInMemory()
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})

	return db
}

// AssertRowCount asserts the row count for a table.
func AssertRowCount(t *testing.T, db *database.DB, table string, expected int) {
	t.Helper()

	count, err := db.CountRows(context.Background(), table)
	if err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}

	if count != expected {
		t.Errorf("expected %d rows in %s, got %d", expected, table, count)
	}
}
