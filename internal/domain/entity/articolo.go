// Package entity defines the core domain entities and error taxonomy for the
// application. It contains the Articolo and Utente business objects along
// with their validation rules.
package entity

import (
	"strings"
	"time"
)

// Articolo represents a blog article managed by the admin panel.
// The identifier and timestamps are assigned by the database; updated_at is
// refreshed server-side on every mutation.
type Articolo struct {
	ID                int64
	Titolo            string
	Contenuto         string
	Autore            string
	Categoria         string
	DataPubblicazione time.Time
	ImmagineURL       string
	Pubblicato        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Utente represents an admin panel account. Only the auth endpoints touch
// this entity; articles carry no per-user ownership.
type Utente struct {
	ID           int64
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// ValidateNuovoArticolo checks the required fields of an article about to be
// created. Titolo and contenuto must be non-empty; autore and categoria are
// required as well since the panel groups and signs articles by them.
func ValidateNuovoArticolo(a *Articolo) error {
	if strings.TrimSpace(a.Titolo) == "" {
		return &ValidationError{Field: "titolo", Message: "is required"}
	}
	if strings.TrimSpace(a.Contenuto) == "" {
		return &ValidationError{Field: "contenuto", Message: "is required"}
	}
	if strings.TrimSpace(a.Autore) == "" {
		return &ValidationError{Field: "autore", Message: "is required"}
	}
	if strings.TrimSpace(a.Categoria) == "" {
		return &ValidationError{Field: "categoria", Message: "is required"}
	}
	return nil
}
