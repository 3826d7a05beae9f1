// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/vincibusa/allfoodgest/internal/domain/entity"
)

// MsgInternal is the generic message returned for unexpected failures so
// internal details never reach API clients.
const MsgInternal = "Errore interno del server"

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers already sent, can only log
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// FromError maps a domain error to its HTTP response:
//
//	entity.ValidationError	400, field-level message
//	entity.NotFoundError	404
//	entity.UpstreamError	400, upstream message verbatim
//	entity.ErrInvalidCredentials	401
//	anything else	500 with the generic message, details logged
func FromError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	var validation *entity.ValidationError
	if errors.As(err, &validation) {
		JSON(w, http.StatusBadRequest, map[string]string{"error": validation.Error()})
		return
	}

	var notFound *entity.NotFoundError
	if errors.As(err, &notFound) {
		JSON(w, http.StatusNotFound, map[string]string{"error": notFound.Error()})
		return
	}

	var upstream *entity.UpstreamError
	if errors.As(err, &upstream) {
		// The data service message is considered safe and useful to the
		// admin panel, so it passes through unchanged.
		JSON(w, http.StatusBadRequest, map[string]string{"error": upstreamMessage(upstream)})
		return
	}

	if errors.Is(err, entity.ErrInvalidCredentials) {
		JSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("error", SanitizeError(err)))
	JSON(w, http.StatusInternalServerError, map[string]string{"error": MsgInternal})
}

// upstreamMessage walks the wrap chain down to the root cause so the client
// sees the driver's own message, not the call-site prefixes added along the
// way (e.g. "Update: RowsAffected: ...").
func upstreamMessage(e *entity.UpstreamError) string {
	cause := e.Err
	if cause == nil {
		return e.Op
	}
	for {
		next := errors.Unwrap(cause)
		if next == nil {
			return cause.Error()
		}
		cause = next
	}
}
