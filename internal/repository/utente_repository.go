// Package repository defines the persistence ports consumed by the use case
// layer. Implementations live under internal/infra/adapter/persistence.
package repository

import (
	"context"

	"github.com/vincibusa/allfoodgest/internal/domain/entity"
)

// UtenteRepository is the persistence port for admin panel accounts.
type UtenteRepository interface {
	// GetByEmail returns the account for the email, or (nil, nil) when absent.
	GetByEmail(ctx context.Context, email string) (*entity.Utente, error)
	// Create inserts the account and fills in the assigned id and timestamp.
	Create(ctx context.Context, utente *entity.Utente) error
}
