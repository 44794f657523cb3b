package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDForUpdate finds a product and locks its row for the duration of
	// the surrounding transaction, serializing concurrent stock mutations.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Product, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// UpdateStock persists only the stock counters of a product
	UpdateStock(ctx context.Context, product *Product) error
}
