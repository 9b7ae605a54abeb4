package usecase

import (
	"context"

	"github.com/google/uuid"

	"franchises/internal/domain"
)

// FranchiseRepository persists whole franchise aggregates.
//
// FindByID and FindByName return a *errors.NotFoundError when nothing matches.
// Save must report unique index violations as *errors.UniqueViolationError and
// lost updates as *errors.ConflictError.
type FranchiseRepository interface {
	Save(ctx context.Context, franchise *domain.Franchise) (*domain.Franchise, error)
	FindByID(ctx context.Context, id string) (*domain.Franchise, error)
	FindByName(ctx context.Context, name string) (*domain.Franchise, error)
}

// IDGenerator mints identifiers for new branches, products and franchises.
type IDGenerator func() string

func NewUUID() string {
	return uuid.NewString()
}
