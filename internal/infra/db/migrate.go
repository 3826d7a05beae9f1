package db

import "database/sql"

func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS articoli (
    id                BIGSERIAL PRIMARY KEY,
    titolo            TEXT NOT NULL,
    contenuto         TEXT NOT NULL,
    autore            TEXT NOT NULL,
    categoria         TEXT NOT NULL,
    data_pubblicazione TIMESTAMPTZ,
    immagine_url      TEXT,
    pubblicato        BOOLEAN NOT NULL DEFAULT FALSE,
    created_at        TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at        TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS utenti (
    id            BIGSERIAL PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// list endpoints order by created_at DESC
		`CREATE INDEX IF NOT EXISTS idx_articoli_created_at ON articoli(created_at DESC)`,
		// stale-article report orders by updated_at ASC
		`CREATE INDEX IF NOT EXISTS idx_articoli_updated_at ON articoli(updated_at ASC)`,
		// category filter and per-category stats
		`CREATE INDEX IF NOT EXISTS idx_articoli_categoria ON articoli(categoria)`,
		// published/draft filter
		`CREATE INDEX IF NOT EXISTS idx_articoli_pubblicato ON articoli(pubblicato)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	return nil
}

// MigrateDown rolls back the database schema.
// Use with caution: this will delete all data in the affected tables.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP TABLE IF EXISTS articoli CASCADE`,
		`DROP TABLE IF EXISTS utenti CASCADE`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
