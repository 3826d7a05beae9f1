package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values can use the "1h30m" syntax
// understood by time.ParseDuration.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// AppConfig is the application configuration. Every field has a working
// default so the server starts with no config file at all.
type AppConfig struct {
	// Addr is the listen address of the HTTP server.
	Addr string `yaml:"addr"`
	// UploadDir is the directory cover images are written to.
	UploadDir string `yaml:"upload_dir"`
	// PublicBaseURL is the URL prefix uploaded images are served under.
	PublicBaseURL string `yaml:"public_base_url"`
	// SessionTTL bounds the lifetime of issued session tokens.
	SessionTTL Duration `yaml:"session_ttl"`
	// AuthRateRPS and AuthRateBurst shape the per-IP limiter on /auth.
	AuthRateRPS   float64 `yaml:"auth_rate_rps"`
	AuthRateBurst int     `yaml:"auth_rate_burst"`
	// MaxBodyBytes caps the size of accepted request bodies.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
	// ShutdownTimeout bounds graceful shutdown on SIGTERM.
	ShutdownTimeout Duration `yaml:"shutdown_timeout"`
}

func defaults() AppConfig {
	return AppConfig{
		Addr:            ":8080",
		UploadDir:       "uploads",
		PublicBaseURL:   "/immagini",
		SessionTTL:      Duration(24 * time.Hour),
		AuthRateRPS:     1,
		AuthRateBurst:   5,
		MaxBodyBytes:    10 << 20,
		ShutdownTimeout: Duration(15 * time.Second),
	}
}

// Load builds the configuration from defaults, the optional YAML file named
// by CONFIG_FILE, and finally environment variable overrides, in that order.
func Load() (AppConfig, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Addr = GetEnvString("ADDR", cfg.Addr)
	cfg.UploadDir = GetEnvString("UPLOAD_DIR", cfg.UploadDir)
	cfg.PublicBaseURL = GetEnvString("PUBLIC_BASE_URL", cfg.PublicBaseURL)
	cfg.SessionTTL = Duration(GetEnvDuration("SESSION_TTL", cfg.SessionTTL.Std()))
	cfg.AuthRateRPS = GetEnvFloat("AUTH_RATELIMIT_RPS", cfg.AuthRateRPS)
	cfg.AuthRateBurst = GetEnvInt("AUTH_RATELIMIT_BURST", cfg.AuthRateBurst)
	cfg.MaxBodyBytes = int64(GetEnvInt("MAX_BODY_BYTES", int(cfg.MaxBodyBytes)))
	cfg.ShutdownTimeout = Duration(GetEnvDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout.Std()))

	if cfg.SessionTTL.Std() <= 0 {
		return cfg, fmt.Errorf("session_ttl must be positive, got %v", cfg.SessionTTL.Std())
	}
	if cfg.AuthRateRPS <= 0 || cfg.AuthRateBurst <= 0 {
		return cfg, fmt.Errorf("auth rate limit must be positive, got rps=%v burst=%d",
			cfg.AuthRateRPS, cfg.AuthRateBurst)
	}
	return cfg, nil
}
