package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"github.com/vincibusa/allfoodgest/internal/domain/entity"
	pg "github.com/vincibusa/allfoodgest/internal/infra/adapter/persistence/postgres"
)

func TestUtenteRepo_GetByEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 7, 19, 0, 0, 0, 0, time.UTC)
	want := &entity.Utente{
		ID: 1, Email: "admin@example.com", PasswordHash: "$2a$10$hash", CreatedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("FROM utenti")).
		WithArgs(want.Email).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
			AddRow(want.ID, want.Email, want.PasswordHash, want.CreatedAt))

	repo := pg.NewUtenteRepo(db)
	got, err := repo.GetByEmail(context.Background(), want.Email)
	if err != nil {
		t.Fatalf("GetByEmail err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUtenteRepo_GetByEmail_Absent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("FROM utenti")).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	repo := pg.NewUtenteRepo(db)
	got, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("GetByEmail err=%v", err)
	}
	if got != nil {
		t.Fatalf("GetByEmail returned %+v, want nil for missing account", got)
	}
}

func TestUtenteRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	utente := &entity.Utente{Email: "admin@example.com", PasswordHash: "h", CreatedAt: now}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO utenti")).
		WithArgs(utente.Email, utente.PasswordHash, utente.CreatedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := pg.NewUtenteRepo(db)
	if err := repo.Create(context.Background(), utente); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if utente.ID != 7 {
		t.Fatalf("ID=%d, want 7", utente.ID)
	}
}
