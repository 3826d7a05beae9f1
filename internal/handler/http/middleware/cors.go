// Package middleware contains HTTP middleware shared across route groups.
package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// CORSConfig holds the configuration for the CORS middleware.
type CORSConfig struct {
	// AllowedOrigins is the whitelist of permitted origins. The single entry
	// "*" allows every origin; the response still reflects the concrete
	// request origin so credentialed requests keep working.
	AllowedOrigins []string

	// AllowedMethods specifies which HTTP methods are allowed in CORS requests.
	AllowedMethods []string

	// AllowedHeaders specifies which request headers are allowed in CORS requests.
	AllowedHeaders []string

	// AllowCredentials indicates whether credentials (cookies, authorization
	// headers) are supported. Must be true for JWT Bearer authentication.
	AllowCredentials bool

	// MaxAge specifies how long preflight results can be cached (in seconds).
	MaxAge int

	// Logger receives warnings about rejected origins. Optional.
	Logger *slog.Logger
}

// allows reports whether the given origin is in the whitelist.
func (c CORSConfig) allows(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// CORS returns middleware that handles cross-origin requests.
//
// Behavior:
//   - No Origin header: same-origin request, CORS processing is skipped
//   - Origin not allowed: logged, no CORS headers set, browser blocks the response
//   - Allowed preflight OPTIONS: answered 204 with method/header/max-age
//     headers, without reaching the handlers
//   - Allowed actual request: Access-Control-Allow-Origin reflects the
//     request origin and the handler runs normally
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !config.allows(origin) {
				if config.Logger != nil {
					config.Logger.Warn("CORS: origin not allowed",
						slog.String("origin", origin),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("remote_addr", r.RemoteAddr))
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			if config.AllowCredentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.AllowedHeaders, ", "))
				w.Header().Set("Access-Control-Max-Age", strconv.Itoa(config.MaxAge))
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
