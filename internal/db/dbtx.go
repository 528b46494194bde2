package db

import (
	"context"
	"database/sql"
)

// DBTX is what repositories query through. A plain *sql.DB gives
// autocommit statements; the *sql.Tx handed out by UnitOfWork groups them.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// txBeginner opens transactions on either the pool or one pinned connection.
type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

var (
	_ DBTX       = (*sql.DB)(nil)
	_ DBTX       = (*sql.Tx)(nil)
	_ DBTX       = (*sql.Conn)(nil)
	_ txBeginner = (*sql.DB)(nil)
	_ txBeginner = (*sql.Conn)(nil)
)
