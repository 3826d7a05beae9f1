package circuitbreaker

import (
	"context"
	"database/sql"
	"strings"
	"time"
)

// DBCircuitBreaker wraps a database connection with circuit breaker
// protection. Repositories use it in place of *sql.DB so that an unavailable
// database fails fast instead of piling up blocked handlers.
type DBCircuitBreaker struct {
	cb *CircuitBreaker
	db *sql.DB

	// OnQuery, when set, receives the leading SQL verb and the elapsed time
	// of every executed statement.
	OnQuery func(operation string, duration time.Duration)
}

// NewDBCircuitBreaker creates a database circuit breaker with DBConfig.
func NewDBCircuitBreaker(db *sql.DB) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb: New(DBConfig()),
		db: db,
	}
}

// QueryContext executes a query with circuit breaker protection.
func (dcb *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	defer dcb.observe(query, time.Now())
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*sql.Rows), nil
}

// ExecContext executes a statement with circuit breaker protection.
func (dcb *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	defer dcb.observe(query, time.Now())
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(sql.Result), nil
}

// QueryRowContext executes a single-row query. sql.Row defers its error to
// Scan, so circuit breaker accounting cannot observe it here.
func (dcb *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	defer dcb.observe(query, time.Now())
	return dcb.db.QueryRowContext(ctx, query, args...)
}

func (dcb *DBCircuitBreaker) observe(query string, start time.Time) {
	if dcb.OnQuery == nil {
		return
	}
	verb := "unknown"
	if fields := strings.Fields(query); len(fields) > 0 {
		verb = strings.ToLower(fields[0])
	}
	dcb.OnQuery(verb, time.Since(start))
}

// DB returns the underlying database connection for operations that do not
// need protection (health checks, migrations).
func (dcb *DBCircuitBreaker) DB() *sql.DB {
	return dcb.db
}
