package consignment

import (
	"github.com/consignly/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SourceType identifies which kind of stock funded a sold quantity
type SourceType string

const (
	SourceTypeOwned       SourceType = "owned"
	SourceTypeConsignment SourceType = "consignment"
)

// IsValid checks if the source type is valid
func (t SourceType) IsValid() bool {
	return t == SourceTypeOwned || t == SourceTypeConsignment
}

// String returns the string representation
func (t SourceType) String() string {
	return string(t)
}

// Attribution records the assignment of a sold quantity to a stock source:
// either platform-owned inventory or a specific consignment batch. Attribution
// rows are append-only; an overridden row is never mutated or deleted, only
// superseded by a new row that points back at it via OriginalAttributionID.
type Attribution struct {
	shared.BaseEntity
	OrderID     uuid.UUID
	OrderItemID *uuid.UUID
	ProductID   uuid.UUID
	SourceType  SourceType
	BatchID     *uuid.UUID // set iff SourceType is consignment
	Quantity    decimal.Decimal

	// UnitCost and SupplierPortion are nil for owned legs: there is no supplier
	// to pay, the full sale amount is platform profit.
	UnitCost        *decimal.Decimal
	SupplierPortion *decimal.Decimal
	PlatformProfit  decimal.Decimal

	CreatedBy             uuid.UUID
	IsOverride            bool
	OverrideReason        string
	OriginalAttributionID *uuid.UUID
}

// NewOwnedAttribution builds an attribution leg funded by platform-owned stock.
// The platform keeps the full sale amount as profit.
func NewOwnedAttribution(orderID uuid.UUID, orderItemID *uuid.UUID, productID uuid.UUID, quantity, sellingPrice decimal.Decimal, createdBy uuid.UUID) (*Attribution, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidQuantity
	}
	return &Attribution{
		BaseEntity:     shared.NewBaseEntity(),
		OrderID:        orderID,
		OrderItemID:    orderItemID,
		ProductID:      productID,
		SourceType:     SourceTypeOwned,
		Quantity:       quantity,
		PlatformProfit: sellingPrice.Mul(quantity),
		CreatedBy:      createdBy,
	}, nil
}

// NewConsignmentAttribution builds an attribution leg funded by a consignment
// batch. The supplier is owed unit cost times quantity; the platform keeps the
// margin between selling price and unit cost.
func NewConsignmentAttribution(orderID uuid.UUID, orderItemID *uuid.UUID, productID, batchID uuid.UUID, quantity, unitCost, sellingPrice decimal.Decimal, createdBy uuid.UUID) (*Attribution, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidQuantity
	}
	supplierPortion := unitCost.Mul(quantity)
	profit := sellingPrice.Sub(unitCost).Mul(quantity)
	return &Attribution{
		BaseEntity:      shared.NewBaseEntity(),
		OrderID:         orderID,
		OrderItemID:     orderItemID,
		ProductID:       productID,
		SourceType:      SourceTypeConsignment,
		BatchID:         &batchID,
		Quantity:        quantity,
		UnitCost:        &unitCost,
		SupplierPortion: &supplierPortion,
		PlatformProfit:  profit,
		CreatedBy:       createdBy,
	}, nil
}

// MarkOverride flags the attribution as a manual correction superseding
// originalID, with the admin-supplied reason.
func (a *Attribution) MarkOverride(reason string, originalID uuid.UUID) error {
	if reason == "" {
		return shared.ErrReasonRequired
	}
	a.IsOverride = true
	a.OverrideReason = reason
	a.OriginalAttributionID = &originalID
	return nil
}

// IsConsignment returns true if the leg is funded by a consignment batch
func (a *Attribution) IsConsignment() bool {
	return a.SourceType == SourceTypeConsignment
}

// SaleAmount returns the gross sale value of the leg: supplier portion plus
// platform profit for consignment legs, platform profit alone for owned legs.
func (a *Attribution) SaleAmount() decimal.Decimal {
	if a.SupplierPortion != nil {
		return a.SupplierPortion.Add(a.PlatformProfit)
	}
	return a.PlatformProfit
}

// Validate checks the structural invariants of the attribution leg
func (a *Attribution) Validate() error {
	if !a.SourceType.IsValid() {
		return shared.ErrInvalidInput
	}
	if a.Quantity.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidQuantity
	}
	if a.IsConsignment() {
		if a.BatchID == nil || a.UnitCost == nil || a.SupplierPortion == nil {
			return shared.ErrInvalidInput
		}
	} else {
		if a.BatchID != nil || a.UnitCost != nil || a.SupplierPortion != nil {
			return shared.ErrInvalidInput
		}
	}
	if a.IsOverride && a.OverrideReason == "" {
		return shared.ErrReasonRequired
	}
	return nil
}
