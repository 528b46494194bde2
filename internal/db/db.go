package db

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// connPragmas run on every new pool connection. foreign_keys and
// busy_timeout are per-connection settings, so they live in the DSN rather
// than in a one-off Exec.
var connPragmas = []string{
	"foreign_keys(1)",
	"busy_timeout(5000)",
}

// DSN builds the sqlite data source name for path.
func DSN(path string) string {
	q := url.Values{}
	for _, p := range connPragmas {
		q.Add("_pragma", p)
	}
	if path != MemoryPath {
		q.Add("_pragma", "journal_mode(WAL)")
	}
	// Without a file: prefix the driver strips the query before opening, so
	// the path reaches sqlite untouched.
	return path + "?" + q.Encode()
}

// OpenDB opens the futureself database at path and applies migrations.
// An in-memory database is pinned to one connection so every query sees the
// same schema.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", DSN(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	var fk int
	if err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk); err != nil {
		db.Close()
		return nil, fmt.Errorf("checking foreign keys: %w", err)
	}
	if fk != 1 {
		db.Close()
		return nil, fmt.Errorf("foreign keys not enabled on %s", path)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
