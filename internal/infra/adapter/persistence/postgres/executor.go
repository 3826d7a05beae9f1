package postgres

import (
	"context"
	"database/sql"
)

// Executor is the subset of *sql.DB the repositories need. It is satisfied by
// *sql.DB and by circuitbreaker.DBCircuitBreaker, so the same repositories
// run with or without breaker protection.
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
