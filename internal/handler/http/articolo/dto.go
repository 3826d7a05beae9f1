// Package articolo provides the HTTP handlers for the article CRUD
// endpoints. Handlers decode the Italian-field JSON the admin panel sends,
// delegate to the article use case, and encode the same shape back.
package articolo

import (
	"time"

	"github.com/vincibusa/allfoodgest/internal/domain/entity"
)

// DTO is the JSON representation of an article.
type DTO struct {
	ID                int64      `json:"id" example:"1"`
	Titolo            string     `json:"titolo" example:"Guida alla pizza napoletana"`
	Contenuto         string     `json:"contenuto" example:"La vera pizza napoletana..."`
	Autore            string     `json:"autore" example:"Mario Rossi"`
	Categoria         string     `json:"categoria" example:"Ricette"`
	DataPubblicazione *time.Time `json:"data_pubblicazione" example:"2025-10-26T10:00:00Z"`
	ImmagineURL       *string    `json:"immagine_url" example:"/immagini/3f1b.png"`
	Pubblicato        bool       `json:"pubblicato" example:"true"`
	CreatedAt         time.Time  `json:"created_at" example:"2025-10-26T12:00:00Z"`
	UpdatedAt         time.Time  `json:"updated_at" example:"2025-10-26T12:00:00Z"`
}

// FromEntity converts a domain article to its JSON representation. Optional
// columns render as null rather than zero values so the frontend can
// distinguish "never published" from an epoch date.
func FromEntity(a *entity.Articolo) DTO {
	dto := DTO{
		ID:         a.ID,
		Titolo:     a.Titolo,
		Contenuto:  a.Contenuto,
		Autore:     a.Autore,
		Categoria:  a.Categoria,
		Pubblicato: a.Pubblicato,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
	if !a.DataPubblicazione.IsZero() {
		t := a.DataPubblicazione
		dto.DataPubblicazione = &t
	}
	if a.ImmagineURL != "" {
		u := a.ImmagineURL
		dto.ImmagineURL = &u
	}
	return dto
}

// FromEntities converts a slice of domain articles, returning an empty slice
// rather than nil so the JSON body is always an array.
func FromEntities(articoli []*entity.Articolo) []DTO {
	out := make([]DTO, 0, len(articoli))
	for _, a := range articoli {
		out = append(out, FromEntity(a))
	}
	return out
}
