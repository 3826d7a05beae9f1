package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vincibusa/allfoodgest/internal/domain/entity"
)

type stubUtenteRepo struct {
	byEmail map[string]*entity.Utente
	created []*entity.Utente
	err     error
}

func (s *stubUtenteRepo) GetByEmail(_ context.Context, email string) (*entity.Utente, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byEmail[email], nil
}

func (s *stubUtenteRepo) Create(_ context.Context, utente *entity.Utente) error {
	if s.err != nil {
		return s.err
	}
	utente.ID = int64(len(s.created) + 1)
	s.created = append(s.created, utente)
	return nil
}

func newTestService(repo *stubUtenteRepo) *Service {
	return NewService(repo, []byte("test-secret"), time.Hour)
}

func TestSignUp_IssuesValidToken(t *testing.T) {
	repo := &stubUtenteRepo{byEmail: map[string]*entity.Utente{}}
	svc := newTestService(repo)

	token, err := svc.SignUp(context.Background(), "admin@example.com", "lunga-password")
	if err != nil {
		t.Fatalf("SignUp err=%v", err)
	}

	email, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate err=%v", err)
	}
	if email != "admin@example.com" {
		t.Fatalf("email=%q", email)
	}

	if len(repo.created) != 1 {
		t.Fatalf("created=%d accounts, want 1", len(repo.created))
	}
	if repo.created[0].PasswordHash == "lunga-password" {
		t.Fatal("password stored in clear")
	}
}

func TestSignUp_ShortPassword(t *testing.T) {
	svc := newTestService(&stubUtenteRepo{})

	_, err := svc.SignUp(context.Background(), "admin@example.com", "breve")

	var validation *entity.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("err=%v, want ValidationError", err)
	}
	if validation.Field != "password" {
		t.Fatalf("field=%q", validation.Field)
	}
}

func TestSignUp_DuplicateEmailSurfacesUpstream(t *testing.T) {
	repo := &stubUtenteRepo{err: errors.New(`duplicate key value violates unique constraint "utenti_email_key"`)}
	svc := newTestService(repo)

	_, err := svc.SignUp(context.Background(), "admin@example.com", "lunga-password")

	var upstream *entity.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err=%v, want UpstreamError", err)
	}
	if upstream.Error() != `duplicate key value violates unique constraint "utenti_email_key"` {
		t.Fatalf("upstream message altered: %q", upstream.Error())
	}
}

func signUpAndSignIn(t *testing.T) (*Service, string) {
	t.Helper()
	repo := &stubUtenteRepo{byEmail: map[string]*entity.Utente{}}
	svc := newTestService(repo)

	if _, err := svc.SignUp(context.Background(), "admin@example.com", "lunga-password"); err != nil {
		t.Fatalf("SignUp err=%v", err)
	}
	repo.byEmail["admin@example.com"] = repo.created[0]

	token, err := svc.SignIn(context.Background(), "admin@example.com", "lunga-password")
	if err != nil {
		t.Fatalf("SignIn err=%v", err)
	}
	return svc, token
}

func TestSignIn_Success(t *testing.T) {
	svc, token := signUpAndSignIn(t)

	if email, err := svc.Validate(token); err != nil || email != "admin@example.com" {
		t.Fatalf("Validate=(%q, %v)", email, err)
	}
}

func TestSignIn_WrongPassword(t *testing.T) {
	repo := &stubUtenteRepo{byEmail: map[string]*entity.Utente{}}
	svc := newTestService(repo)

	if _, err := svc.SignUp(context.Background(), "admin@example.com", "lunga-password"); err != nil {
		t.Fatalf("SignUp err=%v", err)
	}
	repo.byEmail["admin@example.com"] = repo.created[0]

	_, err := svc.SignIn(context.Background(), "admin@example.com", "sbagliata-pass")
	if !errors.Is(err, entity.ErrInvalidCredentials) {
		t.Fatalf("err=%v, want ErrInvalidCredentials", err)
	}
}

func TestSignIn_UnknownEmail(t *testing.T) {
	svc := newTestService(&stubUtenteRepo{byEmail: map[string]*entity.Utente{}})

	_, err := svc.SignIn(context.Background(), "nobody@example.com", "qualsiasi-pass")
	if !errors.Is(err, entity.ErrInvalidCredentials) {
		t.Fatalf("err=%v, want ErrInvalidCredentials", err)
	}
}

func TestSignOut_RevokesToken(t *testing.T) {
	svc, token := signUpAndSignIn(t)

	svc.SignOut(token)

	if _, err := svc.Validate(token); err == nil {
		t.Fatal("revoked token still validates")
	}
}

func TestSignOut_GarbageTokenIsNoop(t *testing.T) {
	svc, token := signUpAndSignIn(t)

	svc.SignOut("not-a-jwt")

	if _, err := svc.Validate(token); err != nil {
		t.Fatalf("unrelated token invalidated: %v", err)
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	_, token := signUpAndSignIn(t)

	other := NewService(&stubUtenteRepo{}, []byte("different-secret"), time.Hour)
	if _, err := other.Validate(token); err == nil {
		t.Fatal("token signed with another secret validated")
	}
}

func TestRevocationList_Purge(t *testing.T) {
	rl := NewRevocationList()
	rl.Revoke("expired", time.Now().Add(-time.Minute))
	rl.Revoke("active", time.Now().Add(time.Hour))

	rl.Purge(time.Now())

	if rl.IsRevoked("expired") {
		t.Fatal("expired entry survived purge")
	}
	if !rl.IsRevoked("active") {
		t.Fatal("active entry dropped by purge")
	}
}
