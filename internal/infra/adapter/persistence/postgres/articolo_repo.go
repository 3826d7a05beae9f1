package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vincibusa/allfoodgest/internal/domain/entity"
	"github.com/vincibusa/allfoodgest/internal/repository"
)

type ArticoloRepo struct {
	db Executor
}

func NewArticoloRepo(db Executor) repository.ArticoloRepository {
	return &ArticoloRepo{db: db}
}

const articoloColumns = `id, titolo, contenuto, autore, categoria, data_pubblicazione, immagine_url, pubblicato, created_at, updated_at`

func (repo *ArticoloRepo) List(ctx context.Context, filters repository.ArticoloFilters) ([]*entity.Articolo, error) {
	query := `
SELECT ` + articoloColumns + `
FROM articoli`

	where, args := buildArticoloWhere(filters)
	query += where + `
ORDER BY created_at DESC`

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articoli := make([]*entity.Articolo, 0, 50)
	for rows.Next() {
		articolo, err := scanArticolo(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articoli = append(articoli, articolo)
	}
	return articoli, rows.Err()
}

func (repo *ArticoloRepo) Get(ctx context.Context, id int64) (*entity.Articolo, error) {
	const query = `
SELECT ` + articoloColumns + `
FROM articoli
WHERE id = $1
LIMIT 1`
	articolo, err := scanArticolo(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return articolo, nil
}

func (repo *ArticoloRepo) Create(ctx context.Context, articolo *entity.Articolo) error {
	const query = `
INSERT INTO articoli (titolo, contenuto, autore, categoria, data_pubblicazione, immagine_url, pubblicato, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id`
	err := repo.db.QueryRowContext(ctx, query,
		articolo.Titolo, articolo.Contenuto, articolo.Autore, articolo.Categoria,
		nullTime(articolo.DataPubblicazione), nullString(articolo.ImmagineURL),
		articolo.Pubblicato, articolo.CreatedAt, articolo.UpdatedAt,
	).Scan(&articolo.ID)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

func (repo *ArticoloRepo) Update(ctx context.Context, articolo *entity.Articolo) error {
	const query = `
UPDATE articoli
SET titolo = $1, contenuto = $2, autore = $3, categoria = $4,
    data_pubblicazione = $5, immagine_url = $6, pubblicato = $7, updated_at = $8
WHERE id = $9`
	result, err := repo.db.ExecContext(ctx, query,
		articolo.Titolo, articolo.Contenuto, articolo.Autore, articolo.Categoria,
		nullTime(articolo.DataPubblicazione), nullString(articolo.ImmagineURL),
		articolo.Pubblicato, articolo.UpdatedAt, articolo.ID)
	if err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Update: RowsAffected: %w", err)
	}
	if affected == 0 {
		return &entity.NotFoundError{Entity: "articolo", ID: articolo.ID}
	}
	return nil
}

func (repo *ArticoloRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM articoli WHERE id = $1`
	result, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("Delete: RowsAffected: %w", err)
	}
	if affected == 0 {
		return &entity.NotFoundError{Entity: "articolo", ID: id}
	}
	return nil
}

func (repo *ArticoloRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articoli`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticoloRepo) CountPubblicati(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articoli WHERE pubblicato = TRUE`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountPubblicati: %w", err)
	}
	return count, nil
}

// buildArticoloWhere turns the optional filters into a WHERE clause with
// positional placeholders. Nil filters contribute nothing.
func buildArticoloWhere(filters repository.ArticoloFilters) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filters.ID != nil {
		args = append(args, *filters.ID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if filters.Categoria != nil {
		args = append(args, *filters.Categoria)
		conditions = append(conditions, fmt.Sprintf("categoria = $%d", len(args)))
	}
	if filters.Pubblicato != nil {
		args = append(args, *filters.Pubblicato)
		conditions = append(conditions, fmt.Sprintf("pubblicato = $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	where := "\nWHERE " + conditions[0]
	for _, cond := range conditions[1:] {
		where += " AND " + cond
	}
	return where, args
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanArticolo(row rowScanner) (*entity.Articolo, error) {
	var articolo entity.Articolo
	var dataPubblicazione sql.NullTime
	var immagineURL sql.NullString
	if err := row.Scan(&articolo.ID, &articolo.Titolo, &articolo.Contenuto,
		&articolo.Autore, &articolo.Categoria, &dataPubblicazione, &immagineURL,
		&articolo.Pubblicato, &articolo.CreatedAt, &articolo.UpdatedAt); err != nil {
		return nil, err
	}
	if dataPubblicazione.Valid {
		articolo.DataPubblicazione = dataPubblicazione.Time
	}
	if immagineURL.Valid {
		articolo.ImmagineURL = immagineURL.String
	}
	return &articolo, nil
}

func nullTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}

func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
