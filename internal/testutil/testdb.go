package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/futureself/internal/db"
)

// NewTestDB opens a migrated in-memory database that lives for the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openForTest(t, db.MemoryPath)
}

// NewFileTestDB opens a migrated database file in a temp dir. Unlike the
// in-memory variant it uses a real connection pool, so per-connection
// settings are exercised.
func NewFileTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return openForTest(t, filepath.Join(t.TempDir(), "futureself.db"))
}

// NewTestUoW wraps database in a UnitOfWork.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

func openForTest(t *testing.T, path string) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(path)
	if err != nil {
		t.Fatalf("open test database %s: %v", path, err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}
