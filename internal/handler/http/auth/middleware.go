package auth

import (
	"context"
	"errors"
	"net/http"

	"github.com/vincibusa/allfoodgest/internal/handler/http/respond"
	authSvc "github.com/vincibusa/allfoodgest/internal/service/auth"
)

// Middleware wraps an http.Handler with a cross-cutting concern.
type Middleware func(http.Handler) http.Handler

type ctxKey string

const ctxEmail ctxKey = "email"

// EmailFromContext returns the authenticated account's email, if any.
func EmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ctxEmail).(string)
	return email, ok
}

// Authz returns a middleware that requires a valid session token on every
// request it wraps. The authenticated email is stored in the request context.
func Authz(svc *authSvc.Service) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				respond.Error(w, http.StatusUnauthorized, errors.New("autenticazione richiesta"))
				return
			}

			email, err := svc.Validate(token)
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, errors.New("sessione non valida o scaduta"))
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxEmail, email)))
		})
	}
}
