// Package auth implements account management and JWT session handling for the
// admin panel. Passwords are stored as bcrypt hashes; sessions are HS256
// tokens carrying the account email and a revocable token ID.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/vincibusa/allfoodgest/internal/domain/entity"
	"github.com/vincibusa/allfoodgest/internal/repository"
)

// minPasswordLength is the minimum accepted password length at sign-up.
const minPasswordLength = 8

// Service handles authentication business logic.
type Service struct {
	utenti  repository.UtenteRepository
	secret  []byte
	ttl     time.Duration
	revoked *RevocationList
}

// NewService creates an authentication service. ttl bounds the lifetime of
// issued tokens.
func NewService(utenti repository.UtenteRepository, secret []byte, ttl time.Duration) *Service {
	return &Service{
		utenti:  utenti,
		secret:  secret,
		ttl:     ttl,
		revoked: NewRevocationList(),
	}
}

// SignUp registers a new account and returns a session token for it.
// The password must be at least minPasswordLength characters. A duplicate
// email surfaces as an UpstreamError carrying the database message.
func (s *Service) SignUp(ctx context.Context, email, password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", &entity.ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", minPasswordLength),
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("SignUp: hash: %w", err)
	}

	utente := &entity.Utente{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.utenti.Create(ctx, utente); err != nil {
		return "", &entity.UpstreamError{Op: "SignUp", Err: err}
	}

	return s.issueToken(email)
}

// SignIn validates the credentials and returns a session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	utente, err := s.utenti.GetByEmail(ctx, email)
	if err != nil {
		return "", &entity.UpstreamError{Op: "SignIn", Err: err}
	}
	if utente == nil {
		return "", entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(utente.PasswordHash), []byte(password)); err != nil {
		return "", entity.ErrInvalidCredentials
	}

	return s.issueToken(email)
}

// SignOut revokes the given token until its natural expiry. An invalid or
// already-expired token is not an error: the session is gone either way.
func (s *Service) SignOut(token string) {
	claims, err := s.parse(token)
	if err != nil {
		return
	}
	jti, _ := claims["jti"].(string)
	exp, _ := claims["exp"].(float64)
	if jti == "" {
		return
	}
	s.revoked.Revoke(jti, time.Unix(int64(exp), 0))
}

// Validate checks a session token and returns the account email it carries.
func (s *Service) Validate(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}

	if jti, ok := claims["jti"].(string); ok && s.revoked.IsRevoked(jti) {
		return "", fmt.Errorf("token revoked")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("invalid sub claim")
	}
	return sub, nil
}

// PurgeRevoked drops revocation entries whose tokens have expired anyway.
func (s *Service) PurgeRevoked() {
	s.revoked.Purge(time.Now())
}

func (s *Service) issueToken(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": email,
		"jti": uuid.New().String(),
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("issueToken: %w", err)
	}
	return signed, nil
}

func (s *Service) parse(tokenString string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return nil, fmt.Errorf("token expired")
	}
	return claims, nil
}

// TTL returns the lifetime of issued tokens.
func (s *Service) TTL() time.Duration {
	return s.ttl
}
