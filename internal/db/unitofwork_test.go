package db_test

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/futureself/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	// Create a simple test table outside the migration set.
	_, err = database.Exec(`CREATE TABLE IF NOT EXISTS uow_test (id TEXT PRIMARY KEY, val TEXT)`)
	require.NoError(t, err)

	return db.NewSQLiteUnitOfWork(database)
}

// readVal is a helper that reads val for a given id using the underlying DB.
func readVal(uow *db.SQLiteUnitOfWork, id string) (string, bool) {
	var val string
	var found bool
	_ = uow.WithinReadTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		row := tx.QueryRowContext(ctx, `SELECT val FROM uow_test WHERE id = ?`, id)
		if err := row.Scan(&val); err != nil {
			return nil // not found
		}
		found = true
		return nil
	})
	return val, found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO uow_test (id, val) VALUES (?, ?)`, "k1", "v1")
		return err
	})
	require.NoError(t, err)

	val, found := readVal(uow, "k1")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "v1", val)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestDB(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO uow_test (id, val) VALUES (?, ?)`, "k2", "v2")
		if err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := readVal(uow, "k2")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestDB(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_, _ = tx.ExecContext(ctx, `INSERT INTO uow_test (id, val) VALUES (?, ?)`, "k3", "v3")
			panic("boom")
		})
	})

	_, found := readVal(uow, "k3")
	assert.False(t, found, "row should not exist after panic rollback")
}

func TestWithinReadTx_RejectsWrites(t *testing.T) {
	uow := openTestDB(t)

	err := uow.WithinReadTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO uow_test (id, val) VALUES (?, ?)`, "k4", "v4")
		return err
	})
	require.Error(t, err)

	_, found := readVal(uow, "k4")
	assert.False(t, found)
}

func openFileTestDB(t *testing.T, maxConns int) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "uow.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	database.SetMaxOpenConns(maxConns)
	_, err = database.Exec(`CREATE TABLE uow_test (id TEXT PRIMARY KEY, val TEXT)`)
	require.NoError(t, err)
	return database, db.NewSQLiteUnitOfWork(database)
}

func TestWithinReadTx_CancelledContextRestoresWrites(t *testing.T) {
	_, uow := openFileTestDB(t, 1)

	ctx, cancel := context.WithCancel(context.Background())
	err := uow.WithinReadTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		cancel()
		return fmt.Errorf("caller gave up")
	})
	require.Error(t, err)

	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO uow_test (id, val) VALUES (?, ?)`, "k5", "v5")
		return err
	})
	require.NoError(t, err, "connection must not stay read-only")

	val, found := readVal(uow, "k5")
	assert.True(t, found)
	assert.Equal(t, "v5", val)
}

func TestWithinReadTx_LeavesPoolWritable(t *testing.T) {
	database, uow := openFileTestDB(t, 2)

	for i := 0; i < 5; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		_ = uow.WithinReadTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			cancel()
			return fmt.Errorf("abandoned read %d", i)
		})
	}

	for i := 0; i < 5; i++ {
		_, err := database.Exec(`INSERT INTO uow_test (id, val) VALUES (?, ?)`, fmt.Sprintf("w%d", i), "v")
		require.NoError(t, err)
	}
}

func TestWithinReadTx_SucceedsThenWrites(t *testing.T) {
	_, uow := openFileTestDB(t, 1)

	require.NoError(t, uow.WithinReadTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		var n int
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM uow_test`).Scan(&n)
	}))
	require.NoError(t, uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO uow_test (id, val) VALUES ('k6', 'v6')`)
		return err
	}))
}
