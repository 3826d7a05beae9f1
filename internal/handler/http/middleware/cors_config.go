package middleware

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Defaults applied when the optional CORS environment variables are unset.
var (
	defaultAllowedMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	defaultAllowedHeaders = []string{"Content-Type", "Authorization", "X-Request-ID"}
)

const defaultMaxAge = 86400 // 24 hours

// LoadCORSConfig builds a CORSConfig from environment variables.
//
// Environment variables:
//   - CORS_ALLOWED_ORIGINS: comma-separated allowed origins, or "*" (required)
//   - CORS_ALLOWED_METHODS: comma-separated allowed methods (optional)
//   - CORS_ALLOWED_HEADERS: comma-separated allowed headers (optional)
//   - CORS_MAX_AGE: preflight cache duration in seconds (optional)
//
// CORS_ALLOWED_ORIGINS must be set so the policy is explicit (fail-closed).
// Each origin must be a bare http(s) URL without path, query, or fragment.
func LoadCORSConfig() (*CORSConfig, error) {
	origins, err := loadOrigins()
	if err != nil {
		return nil, err
	}

	cfg := &CORSConfig{
		AllowedOrigins:   origins,
		AllowedMethods:   splitEnvList("CORS_ALLOWED_METHODS", defaultAllowedMethods),
		AllowedHeaders:   splitEnvList("CORS_ALLOWED_HEADERS", defaultAllowedHeaders),
		AllowCredentials: true,
		MaxAge:           defaultMaxAge,
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_MAX_AGE")); raw != "" {
		maxAge, err := strconv.Atoi(raw)
		if err != nil || maxAge < 0 {
			return nil, fmt.Errorf("invalid CORS_MAX_AGE: %q", raw)
		}
		cfg.MaxAge = maxAge
	}

	return cfg, nil
}

func loadOrigins() ([]string, error) {
	originsStr := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if originsStr == "" {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS environment variable is required")
	}

	if originsStr == "*" {
		return []string{"*"}, nil
	}

	originList := strings.Split(originsStr, ",")
	origins := make([]string, 0, len(originList))

	for _, originStr := range originList {
		originStr = strings.TrimSpace(originStr)
		if originStr == "" {
			continue
		}

		u, err := url.Parse(originStr)
		if err != nil {
			return nil, fmt.Errorf("invalid origin URL '%s': %w", originStr, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("origin must use http or https scheme: %s", originStr)
		}
		if u.Path != "" && u.Path != "/" {
			return nil, fmt.Errorf("origin must not include path: %s", originStr)
		}
		if u.RawQuery != "" || u.Fragment != "" {
			return nil, fmt.Errorf("origin must not include query or fragment: %s", originStr)
		}

		origins = append(origins, strings.TrimSuffix(originStr, "/"))
	}

	if len(origins) == 0 {
		return nil, fmt.Errorf("CORS_ALLOWED_ORIGINS contains no valid origins")
	}
	return origins, nil
}

func splitEnvList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	if len(values) == 0 {
		return fallback
	}
	return values
}
