package db

import (
	"database/sql"
	"log/slog"
	"os"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// ResolveDSN picks the connection string for the server. The privileged
// DATABASE_SERVICE_DSN is preferred so the backend bypasses row-level
// security; DATABASE_ANON_DSN is the fallback. An empty result is not fatal
// here: the first query will fail and surface as a 500 from the handlers.
func ResolveDSN() string {
	if dsn := os.Getenv("DATABASE_SERVICE_DSN"); dsn != "" {
		return dsn
	}
	if dsn := os.Getenv("DATABASE_ANON_DSN"); dsn != "" {
		slog.Warn("DATABASE_SERVICE_DSN not set, falling back to anon credentials")
		return dsn
	}
	slog.Error("no database DSN configured, queries will fail",
		slog.String("wanted", "DATABASE_SERVICE_DSN or DATABASE_ANON_DSN"))
	return ""
}

// Open creates and configures a new database connection pool.
// A missing or unreachable database is logged rather than treated as fatal,
// so the process still serves its health endpoints while the database is down.
func Open() *sql.DB {
	dsn := ResolveDSN()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		slog.Error("failed to open database handle", slog.String("error", err.Error()))
		db, _ = sql.Open("pgx", "")
	}

	cfg := getConnectionConfigFromEnv()
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))

	return db
}

// getConnectionConfigFromEnv reads connection pool configuration from environment variables.
// Falls back to default values if not set.
func getConnectionConfigFromEnv() ConnectionConfig {
	cfg := DefaultConnectionConfig()

	if maxOpen := os.Getenv("DB_MAX_OPEN_CONNS"); maxOpen != "" {
		if val, err := strconv.Atoi(maxOpen); err == nil && val > 0 {
			cfg.MaxOpenConns = val
		}
	}

	if maxIdle := os.Getenv("DB_MAX_IDLE_CONNS"); maxIdle != "" {
		if val, err := strconv.Atoi(maxIdle); err == nil && val > 0 {
			cfg.MaxIdleConns = val
		}
	}

	if lifetime := os.Getenv("DB_CONN_MAX_LIFETIME"); lifetime != "" {
		if val, err := time.ParseDuration(lifetime); err == nil && val > 0 {
			cfg.ConnMaxLifetime = val
		}
	}

	if idleTime := os.Getenv("DB_CONN_MAX_IDLE_TIME"); idleTime != "" {
		if val, err := time.ParseDuration(idleTime); err == nil && val > 0 {
			cfg.ConnMaxIdleTime = val
		}
	}

	return cfg
}
