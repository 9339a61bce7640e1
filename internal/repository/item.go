package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mingleton/dawson-rp/internal/domain"
)

// Item defines the persistence operations for item units.
type Item interface {
	// AccountExists reports whether an account row exists for id.
	AccountExists(ctx context.Context, id int64) (bool, error)

	// CreateItems inserts every given unit inside one transaction and returns
	// the generated identifiers in insertion order. Partial creation never
	// survives a failure.
	CreateItems(ctx context.Context, items []domain.Item) ([]uuid.UUID, error)

	// GetItem returns one unit, or domain.ErrItemNotFound.
	GetItem(ctx context.Context, id uuid.UUID) (*domain.Item, error)

	// GetItemsByOwner returns the owner's non-dropped units.
	GetItemsByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error)

	// UpdateOwner reassigns a unit to a new account.
	UpdateOwner(ctx context.Context, id uuid.UUID, newOwnerID int64) error

	// SetEquipped flips the equipped flag.
	SetEquipped(ctx context.Context, id uuid.UUID, equipped bool) error

	// SetDropped flips the dropped flag.
	SetDropped(ctx context.Context, id uuid.UUID, dropped bool) error

	// DeleteItem removes the unit row. Items are never deleted implicitly.
	DeleteItem(ctx context.Context, id uuid.UUID) error
}
