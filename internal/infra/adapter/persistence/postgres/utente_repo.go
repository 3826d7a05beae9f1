package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vincibusa/allfoodgest/internal/domain/entity"
	"github.com/vincibusa/allfoodgest/internal/repository"
)

type UtenteRepo struct {
	db Executor
}

func NewUtenteRepo(db Executor) repository.UtenteRepository {
	return &UtenteRepo{db: db}
}

func (repo *UtenteRepo) GetByEmail(ctx context.Context, email string) (*entity.Utente, error) {
	const query = `
SELECT id, email, password_hash, created_at
FROM utenti
WHERE email = $1
LIMIT 1`
	var utente entity.Utente
	err := repo.db.QueryRowContext(ctx, query, email).
		Scan(&utente.ID, &utente.Email, &utente.PasswordHash, &utente.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetByEmail: %w", err)
	}
	return &utente, nil
}

func (repo *UtenteRepo) Create(ctx context.Context, utente *entity.Utente) error {
	const query = `
INSERT INTO utenti (email, password_hash, created_at)
VALUES ($1, $2, $3)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		utente.Email, utente.PasswordHash, utente.CreatedAt,
	).Scan(&utente.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}
