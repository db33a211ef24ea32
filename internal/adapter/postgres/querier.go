package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the common interface implemented by *pgxpool.Pool, pgx.Tx and Session.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// Session is a unit of work. Repository calls made through it become visible
// to other connections only after SaveChanges.
type Session interface {
	Querier
	// SaveChanges commits the unit of work.
	SaveChanges(ctx context.Context) error
	// Rollback discards pending changes. It is a no-op after SaveChanges,
	// so callers may always defer it.
	Rollback(ctx context.Context) error
}
