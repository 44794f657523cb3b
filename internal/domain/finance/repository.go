package finance

import (
	"context"

	"github.com/google/uuid"
)

// EntryRepository defines the interface for income statement entry
// persistence. The table is append-only: there are no update or delete
// operations, and corrections are represented by additional entries.
type EntryRepository interface {
	// Insert appends a new income statement entry
	Insert(ctx context.Context, entry *Entry) error

	// FindByOrder returns all entries posted for an order, ordered by
	// transaction date
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*Entry, error)

	// FindByAttribution returns the entries posted for one attribution leg
	FindByAttribution(ctx context.Context, attributionID uuid.UUID) ([]*Entry, error)
}
