package repository

import (
	"context"

	"github.com/vincibusa/allfoodgest/internal/domain/entity"
)

// ArticoloFilters contains the optional exact-match filters for listing
// articles. Nil fields are not applied.
type ArticoloFilters struct {
	ID         *int64
	Categoria  *string
	Pubblicato *bool
}

// ArticoloRepository is the persistence port for articles.
type ArticoloRepository interface {
	// List returns articles matching the filters, newest first by created_at.
	// No pagination: the full result set is returned.
	List(ctx context.Context, filters ArticoloFilters) ([]*entity.Articolo, error)
	// Get returns the article with the given id, or (nil, nil) when absent.
	Get(ctx context.Context, id int64) (*entity.Articolo, error)
	// Create inserts the article and fills in the assigned id and timestamps.
	Create(ctx context.Context, articolo *entity.Articolo) error
	// Update overwrites the stored row with the given article state.
	// Reports not-found when the id no longer exists.
	Update(ctx context.Context, articolo *entity.Articolo) error
	// Delete removes the article permanently. Reports not-found when the id
	// does not exist, which makes a second delete of the same id observable.
	Delete(ctx context.Context, id int64) error
	// Count returns the total number of articles.
	Count(ctx context.Context) (int64, error)
	// CountPubblicati returns the number of articles with pubblicato = true.
	CountPubblicati(ctx context.Context) (int64, error)
}
