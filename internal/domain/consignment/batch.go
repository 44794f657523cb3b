package consignment

import (
	"time"

	"github.com/consignly/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BatchStatus represents the lifecycle status of a consignment batch,
// derived from its quantities.
type BatchStatus string

const (
	BatchStatusInStock       BatchStatus = "in_stock"
	BatchStatusPartiallySold BatchStatus = "partially_sold"
	BatchStatusFullySold     BatchStatus = "fully_sold"
	BatchStatusReturned      BatchStatus = "returned"
)

// IsValid checks if the status is a valid BatchStatus
func (s BatchStatus) IsValid() bool {
	switch s {
	case BatchStatusInStock, BatchStatusPartiallySold, BatchStatusFullySold, BatchStatusReturned:
		return true
	}
	return false
}

// String returns the string representation
func (s BatchStatus) String() string {
	return string(s)
}

// Sellable returns true if stock can still be drawn from a batch in this status
func (s BatchStatus) Sellable() bool {
	return s == BatchStatusInStock || s == BatchStatusPartiallySold
}

// Batch represents a tranche of supplier-owned stock held for sale on the
// platform's behalf. Batches are created by the supplier receiving workflow
// and consumed FIFO by received date. They are never deleted; unsold quantity
// can be returned to the supplier.
//
// Invariant: QuantitySold >= 0, QuantityReturned >= 0, and
// QuantitySold + QuantityReturned <= InitialQuantity.
type Batch struct {
	shared.BaseEntity
	ProductID        uuid.UUID
	SupplierID       uuid.UUID
	ReceivedAt       time.Time // FIFO ordering key
	InitialQuantity  decimal.Decimal
	QuantitySold     decimal.Decimal
	QuantityReturned decimal.Decimal
	UnitCost         decimal.Decimal
	Status           BatchStatus
}

// NewBatch creates a new consignment batch
func NewBatch(productID, supplierID uuid.UUID, receivedAt time.Time, initialQuantity, unitCost decimal.Decimal) (*Batch, error) {
	if initialQuantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidQuantity
	}
	if unitCost.IsNegative() {
		return nil, shared.ErrInvalidInput
	}
	return &Batch{
		BaseEntity:       shared.NewBaseEntity(),
		ProductID:        productID,
		SupplierID:       supplierID,
		ReceivedAt:       receivedAt,
		InitialQuantity:  initialQuantity,
		QuantitySold:     decimal.Zero,
		QuantityReturned: decimal.Zero,
		UnitCost:         unitCost,
		Status:           BatchStatusInStock,
	}, nil
}

// Available returns the quantity still sellable from this batch
func (b *Batch) Available() decimal.Decimal {
	return b.InitialQuantity.Sub(b.QuantitySold).Sub(b.QuantityReturned)
}

// HasStock returns true if the batch has sellable quantity remaining
func (b *Batch) HasStock() bool {
	return b.Status.Sellable() && b.Available().GreaterThan(decimal.Zero)
}

// Deduct records qty as sold from this batch and recomputes the status.
// Rejects quantities that would violate the batch invariant.
func (b *Batch) Deduct(qty decimal.Decimal) error {
	if qty.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidQuantity
	}
	if qty.GreaterThan(b.Available()) {
		return shared.ErrInsufficientBatchStock
	}

	b.QuantitySold = b.QuantitySold.Add(qty)
	b.recomputeStatus()
	b.Touch()
	return nil
}

// Restore reverses a prior sale of qty from this batch and recomputes the
// status. Used when an attribution is superseded by an override.
func (b *Batch) Restore(qty decimal.Decimal) error {
	if qty.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidQuantity
	}
	if qty.GreaterThan(b.QuantitySold) {
		return shared.ErrInvalidInput
	}

	b.QuantitySold = b.QuantitySold.Sub(qty)
	b.recomputeStatus()
	b.Touch()
	return nil
}

// recomputeStatus derives the status from the batch quantities. A batch whose
// remaining quantity was fully returned keeps the returned status.
func (b *Batch) recomputeStatus() {
	consumed := b.QuantitySold.Add(b.QuantityReturned)
	switch {
	case consumed.Equal(b.InitialQuantity) && b.QuantitySold.IsZero():
		b.Status = BatchStatusReturned
	case consumed.Equal(b.InitialQuantity):
		b.Status = BatchStatusFullySold
	case b.QuantitySold.IsZero() && b.QuantityReturned.IsZero():
		b.Status = BatchStatusInStock
	case b.QuantitySold.IsZero():
		b.Status = BatchStatusInStock
	default:
		b.Status = BatchStatusPartiallySold
	}
}

// Validate checks the batch quantity invariant
func (b *Batch) Validate() error {
	if b.QuantitySold.IsNegative() || b.QuantityReturned.IsNegative() {
		return shared.ErrInvalidInput
	}
	if b.QuantitySold.Add(b.QuantityReturned).GreaterThan(b.InitialQuantity) {
		return shared.ErrInvalidInput
	}
	return nil
}
