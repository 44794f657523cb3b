package consignment

import (
	"context"

	"github.com/google/uuid"
)

// BatchRepository defines the interface for consignment batch persistence.
// Batches are created by the supplier receiving workflow; this engine only
// reads and mutates their sold quantities.
type BatchRepository interface {
	// FindByID finds a batch by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Batch, error)

	// FindSellableByProduct returns the sellable batches (in_stock or
	// partially_sold) for a product, ordered by received date ascending. The
	// ordering is part of the contract: callers rely on it for FIFO
	// consumption and must not re-sort.
	FindSellableByProduct(ctx context.Context, productID uuid.UUID) ([]*Batch, error)

	// Save creates or updates a batch
	Save(ctx context.Context, batch *Batch) error

	// Update persists the mutable quantities and status of a batch
	Update(ctx context.Context, batch *Batch) error
}

// AttributionRepository defines the interface for attribution persistence.
// The table is append-only: there are no update or delete operations.
type AttributionRepository interface {
	// Insert appends a new attribution row
	Insert(ctx context.Context, attribution *Attribution) error

	// FindByOrder returns all attributions for an order, originals and
	// overrides, ordered by creation time
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*Attribution, error)

	// FindOriginalsByOrder returns only the non-override attributions for an
	// order; these are the legs an override reverses
	FindOriginalsByOrder(ctx context.Context, orderID uuid.UUID) ([]*Attribution, error)

	// HasOverride reports whether any override attribution exists for the order
	HasOverride(ctx context.Context, orderID uuid.UUID) (bool, error)
}
