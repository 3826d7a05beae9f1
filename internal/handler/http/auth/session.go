// Package auth exposes the session endpoints of the admin panel and the
// middleware that gates mutating routes behind a valid session token.
//
// A single /auth route multiplexes sign-in and sign-up through an action
// field in the request body, matching what the frontend sends.
package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/vincibusa/allfoodgest/internal/handler/http/respond"
	authSvc "github.com/vincibusa/allfoodgest/internal/service/auth"
)

const (
	actionSignIn = "signin"
	actionSignUp = "signup"
)

// sessionResponse is the body returned by successful signin/signup.
type sessionResponse struct {
	User    userInfo    `json:"user"`
	Session sessionInfo `json:"session"`
}

type userInfo struct {
	Email string `json:"email"`
}

type sessionInfo struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

type SessionHandler struct{ Svc *authSvc.Service }

// ServeHTTP handles POST /auth. The action field selects between signin and
// signup; anything else is rejected before touching the credentials.
// @Summary      Autenticazione
// @Description  Effettua signin o signup in base al campo action
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credenziali body object true "{email, password, action}"
// @Success      200 {object} auth.sessionResponse "Signin riuscito"
// @Success      201 {object} auth.sessionResponse "Signup riuscito"
// @Failure      400 {string} string "Azione non valida o input mancante"
// @Failure      401 {string} string "Credenziali non valide"
// @Router       /auth [post]
func (h SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Action   string `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, errors.New("corpo JSON non valido"))
		return
	}
	if req.Email == "" || req.Password == "" {
		respond.Error(w, http.StatusBadRequest, errors.New("Email e password sono richieste"))
		return
	}

	switch req.Action {
	case actionSignIn:
		token, err := h.Svc.SignIn(r.Context(), req.Email, req.Password)
		if err != nil {
			recordAuth(actionSignIn, resultFailure)
			respond.FromError(w, err)
			return
		}
		recordAuth(actionSignIn, resultSuccess)
		respond.JSON(w, http.StatusOK, h.session(req.Email, token))
	case actionSignUp:
		token, err := h.Svc.SignUp(r.Context(), req.Email, req.Password)
		if err != nil {
			recordAuth(actionSignUp, resultFailure)
			respond.FromError(w, err)
			return
		}
		recordAuth(actionSignUp, resultSuccess)
		respond.JSON(w, http.StatusCreated, h.session(req.Email, token))
	default:
		respond.Error(w, http.StatusBadRequest, errors.New("Azione non valida"))
	}
}

func (h SessionHandler) session(email, token string) sessionResponse {
	return sessionResponse{
		User: userInfo{Email: email},
		Session: sessionInfo{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresIn:   int64(h.Svc.TTL().Seconds()),
		},
	}
}

type SignOutHandler struct{ Svc *authSvc.Service }

// ServeHTTP handles DELETE /auth. The presented token is revoked; a missing
// or garbage token is a no-op so sign-out can never fail on the frontend.
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200 {object} map[string]bool
// @Router       /auth [delete]
func (h SignOutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if token := bearerToken(r); token != "" {
		h.Svc.SignOut(token)
	}
	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// bearerToken extracts the token from the Authorization header, or returns
// the empty string.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return header[len(prefix):]
}
