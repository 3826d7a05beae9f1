// Package stats computes the dashboard statistics payload from the full
// article set. There is no caching: every request re-reads the articles and
// recomputes, which is fine at admin panel scale.
package stats

import (
	"context"
	"log/slog"
	"sort"

	"github.com/vincibusa/allfoodgest/internal/domain/entity"
	"github.com/vincibusa/allfoodgest/internal/repository"
)

// topN is the number of entries in the recent and stale article lists.
const topN = 5

// Riepilogo is the aggregated dashboard summary. The HTTP layer owns its
// JSON shape.
type Riepilogo struct {
	TotaleArticoli     int
	ArticoliPubblicati int
	ArticoliInBozza    int
	PerCategoria       map[string]int
	UltimiArticoli     []*entity.Articolo
	DaAggiornare       []*entity.Articolo
}

// Service provides the statistics aggregation use case.
type Service struct {
	Repo   repository.ArticoloRepository
	Logger *slog.Logger
}

// Compute reads the full article set and aggregates it:
//
//  1. total article count
//  2. published count
//  3. draft count = total - published
//  4. per-category counts, exact case-sensitive string match
//  5. newest five by creation timestamp
//  6. five least recently updated, oldest update first
func (s *Service) Compute(ctx context.Context) (*Riepilogo, error) {
	articoli, err := s.Repo.List(ctx, repository.ArticoloFilters{})
	if err != nil {
		return nil, &entity.UpstreamError{Op: "stats", Err: err}
	}

	pubblicati := 0
	perCategoria := make(map[string]int)
	for _, a := range articoli {
		if a.Pubblicato {
			pubblicati++
		}
		perCategoria[a.Categoria]++
	}

	byCreatedDesc := make([]*entity.Articolo, len(articoli))
	copy(byCreatedDesc, articoli)
	sort.SliceStable(byCreatedDesc, func(i, j int) bool {
		return byCreatedDesc[i].CreatedAt.After(byCreatedDesc[j].CreatedAt)
	})

	byUpdatedAsc := make([]*entity.Articolo, len(articoli))
	copy(byUpdatedAsc, articoli)
	sort.SliceStable(byUpdatedAsc, func(i, j int) bool {
		return byUpdatedAsc[i].UpdatedAt.Before(byUpdatedAsc[j].UpdatedAt)
	})

	return &Riepilogo{
		TotaleArticoli:     len(articoli),
		ArticoliPubblicati: pubblicati,
		ArticoliInBozza:    len(articoli) - pubblicati,
		PerCategoria:       perCategoria,
		UltimiArticoli:     truncate(byCreatedDesc, topN),
		DaAggiornare:       truncate(byUpdatedAsc, topN),
	}, nil
}

// RefreshGauges updates the article count gauges. Failures are logged and
// swallowed: gauge refresh is secondary work and must never fail a caller.
func (s *Service) RefreshGauges(ctx context.Context, setTotali, setPubblicati func(int64)) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if totale, err := s.Repo.Count(ctx); err != nil {
		logger.Warn("gauge refresh: count failed", slog.String("error", err.Error()))
	} else {
		setTotali(totale)
	}

	if pubblicati, err := s.Repo.CountPubblicati(ctx); err != nil {
		logger.Warn("gauge refresh: published count failed", slog.String("error", err.Error()))
	} else {
		setPubblicati(pubblicati)
	}
}

func truncate(articoli []*entity.Articolo, n int) []*entity.Articolo {
	if len(articoli) > n {
		return articoli[:n]
	}
	return articoli
}
