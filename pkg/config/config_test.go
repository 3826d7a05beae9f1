package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "/immagini", cfg.PublicBaseURL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL.Std())
	assert.Equal(t, int64(10<<20), cfg.MaxBodyBytes)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"addr: \":9000\"\nupload_dir: /srv/immagini\nsession_ttl: 1h\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("ADDR", ":9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.Addr, "env overrides file")
	assert.Equal(t, "/srv/immagini", cfg.UploadDir, "file overrides default")
	assert.Equal(t, time.Hour, cfg.SessionTTL.Std())
}

func TestLoad_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [broken"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "-5m")

	_, err := Load()
	assert.Error(t, err)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("X_STR", "value")
	t.Setenv("X_INT", "42")
	t.Setenv("X_BAD_INT", "forty-two")
	t.Setenv("X_BOOL", "true")
	t.Setenv("X_DUR", "90s")
	t.Setenv("X_FLOAT", "2.5")

	assert.Equal(t, "value", GetEnvString("X_STR", "d"))
	assert.Equal(t, "d", GetEnvString("X_MISSING", "d"))
	assert.Equal(t, 42, GetEnvInt("X_INT", 0))
	assert.Equal(t, 7, GetEnvInt("X_BAD_INT", 7))
	assert.True(t, GetEnvBool("X_BOOL", false))
	assert.Equal(t, 90*time.Second, GetEnvDuration("X_DUR", 0))
	assert.Equal(t, 2.5, GetEnvFloat("X_FLOAT", 0))
}
