package db

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConnectionConfig(t *testing.T) {
	cfg := DefaultConnectionConfig()

	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, 1*time.Hour, cfg.ConnMaxLifetime)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxIdleTime)
}

func TestResolveDSN_PrefersServiceCredentials(t *testing.T) {
	t.Setenv("DATABASE_SERVICE_DSN", "postgres://service@localhost/gestionale")
	t.Setenv("DATABASE_ANON_DSN", "postgres://anon@localhost/gestionale")

	assert.Equal(t, "postgres://service@localhost/gestionale", ResolveDSN())
}

func TestResolveDSN_FallsBackToAnon(t *testing.T) {
	t.Setenv("DATABASE_SERVICE_DSN", "")
	t.Setenv("DATABASE_ANON_DSN", "postgres://anon@localhost/gestionale")

	assert.Equal(t, "postgres://anon@localhost/gestionale", ResolveDSN())
}

func TestResolveDSN_EmptyWhenUnconfigured(t *testing.T) {
	t.Setenv("DATABASE_SERVICE_DSN", "")
	t.Setenv("DATABASE_ANON_DSN", "")

	assert.Equal(t, "", ResolveDSN())
}

func TestGetConnectionConfigFromEnv_Defaults(t *testing.T) {
	_ = os.Unsetenv("DB_MAX_OPEN_CONNS")
	_ = os.Unsetenv("DB_MAX_IDLE_CONNS")
	_ = os.Unsetenv("DB_CONN_MAX_LIFETIME")
	_ = os.Unsetenv("DB_CONN_MAX_IDLE_TIME")

	cfg := getConnectionConfigFromEnv()

	assert.Equal(t, 25, cfg.MaxOpenConns)
	assert.Equal(t, 10, cfg.MaxIdleConns)
	assert.Equal(t, 1*time.Hour, cfg.ConnMaxLifetime)
	assert.Equal(t, 30*time.Minute, cfg.ConnMaxIdleTime)
}

func TestGetConnectionConfigFromEnv_MaxOpenConns(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected int
	}{
		{
			name:     "valid value",
			envValue: "50",
			expected: 50,
		},
		{
			name:     "invalid value - non-numeric",
			envValue: "invalid",
			expected: 25, // default
		},
		{
			name:     "invalid value - zero",
			envValue: "0",
			expected: 25, // default
		},
		{
			name:     "invalid value - negative",
			envValue: "-10",
			expected: 25, // default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_MAX_OPEN_CONNS", tt.envValue)

			cfg := getConnectionConfigFromEnv()
			assert.Equal(t, tt.expected, cfg.MaxOpenConns)
		})
	}
}

func TestGetConnectionConfigFromEnv_ConnMaxLifetime(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected time.Duration
	}{
		{
			name:     "valid value - hours",
			envValue: "2h",
			expected: 2 * time.Hour,
		},
		{
			name:     "invalid value",
			envValue: "not-a-duration",
			expected: 1 * time.Hour, // default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DB_CONN_MAX_LIFETIME", tt.envValue)

			cfg := getConnectionConfigFromEnv()
			assert.Equal(t, tt.expected, cfg.ConnMaxLifetime)
		})
	}
}
