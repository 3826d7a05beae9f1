package articolo

import (
	"context"
	"errors"
	"time"

	"github.com/vincibusa/allfoodgest/internal/domain/entity"
	"github.com/vincibusa/allfoodgest/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
// Zero timestamps are defaulted server-side.
type CreateInput struct {
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

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values are left unchanged; updated_at is always refreshed
// server-side regardless of what the caller sends.
type UpdateInput struct {
	Titolo            *string
	Contenuto         *string
	Autore            *string
	Categoria         *string
	DataPubblicazione *time.Time
	ImmagineURL       *string
	Pubblicato        *bool
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticoloRepository
}

// List retrieves articles matching the optional filters, newest first.
func (s *Service) List(ctx context.Context, filters repository.ArticoloFilters) ([]*entity.Articolo, error) {
	articoli, err := s.Repo.List(ctx, filters)
	if err != nil {
		return nil, &entity.UpstreamError{Op: "list articoli", Err: err}
	}
	return articoli, nil
}

// Get retrieves a single article by its ID.
// A missing article is a NotFoundError, never an empty success.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Articolo, error) {
	articolo, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, &entity.UpstreamError{Op: "get articolo", Err: err}
	}
	if articolo == nil {
		return nil, &entity.NotFoundError{Entity: "articolo", ID: id}
	}
	return articolo, nil
}

// Create validates the input and persists a new article. The returned record
// carries the server-assigned ID and timestamps.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Articolo, error) {
	now := time.Now().UTC()

	articolo := &entity.Articolo{
		Titolo:            in.Titolo,
		Contenuto:         in.Contenuto,
		Autore:            in.Autore,
		Categoria:         in.Categoria,
		DataPubblicazione: in.DataPubblicazione,
		ImmagineURL:       in.ImmagineURL,
		Pubblicato:        in.Pubblicato,
		CreatedAt:         in.CreatedAt,
		UpdatedAt:         in.UpdatedAt,
	}
	if articolo.CreatedAt.IsZero() {
		articolo.CreatedAt = now
	}
	if articolo.UpdatedAt.IsZero() {
		articolo.UpdatedAt = now
	}

	if err := entity.ValidateNuovoArticolo(articolo); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, articolo); err != nil {
		return nil, &entity.UpstreamError{Op: "create articolo", Err: err}
	}
	return articolo, nil
}

// Update merges the partial input into the stored article and persists it.
// Last writer wins: there is no version check. updated_at is set to now.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*entity.Articolo, error) {
	articolo, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Titolo != nil {
		articolo.Titolo = *in.Titolo
	}
	if in.Contenuto != nil {
		articolo.Contenuto = *in.Contenuto
	}
	if in.Autore != nil {
		articolo.Autore = *in.Autore
	}
	if in.Categoria != nil {
		articolo.Categoria = *in.Categoria
	}
	if in.DataPubblicazione != nil {
		articolo.DataPubblicazione = *in.DataPubblicazione
	}
	if in.ImmagineURL != nil {
		articolo.ImmagineURL = *in.ImmagineURL
	}
	if in.Pubblicato != nil {
		articolo.Pubblicato = *in.Pubblicato
	}
	articolo.UpdatedAt = time.Now().UTC()

	if err := entity.ValidateNuovoArticolo(articolo); err != nil {
		return nil, err
	}

	if err := s.persist(ctx, articolo); err != nil {
		return nil, err
	}
	return articolo, nil
}

// SetPubblicato flips only the published flag. It is the one state transition
// the admin panel surfaces distinctly, so it gets its own operation.
// Setting the same value twice yields the same stored state.
func (s *Service) SetPubblicato(ctx context.Context, id int64, pubblicato bool) (*entity.Articolo, error) {
	return s.Update(ctx, id, UpdateInput{Pubblicato: &pubblicato})
}

// Delete removes the article permanently. Deleting twice is observable: the
// second call reports not-found.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.Repo.Delete(ctx, id)
	var notFound *entity.NotFoundError
	if errors.As(err, &notFound) {
		return err
	}
	if err != nil {
		return &entity.UpstreamError{Op: "delete articolo", Err: err}
	}
	return nil
}

func (s *Service) persist(ctx context.Context, articolo *entity.Articolo) error {
	err := s.Repo.Update(ctx, articolo)
	var notFound *entity.NotFoundError
	if errors.As(err, &notFound) {
		return err
	}
	if err != nil {
		return &entity.UpstreamError{Op: "update articolo", Err: err}
	}
	return nil
}
