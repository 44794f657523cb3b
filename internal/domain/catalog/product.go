package catalog

import (
	"github.com/consignly/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the lifecycle status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// IsValid checks if the status is a valid ProductStatus
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive:
		return true
	}
	return false
}

// Product represents a sellable product with its stock counters.
// StockQuantity is the total on-hand quantity; ConsignmentStockQuantity is the
// subset of it held on consignment from suppliers. The remainder is stock the
// platform owns outright.
//
// Invariant: 0 <= ConsignmentStockQuantity <= StockQuantity.
type Product struct {
	shared.BaseEntity
	Sku                      string
	Name                     string
	SellingPrice             decimal.Decimal
	StockQuantity            decimal.Decimal
	ConsignmentStockQuantity decimal.Decimal
	Status                   ProductStatus
}

// NewProduct creates a new product with zero stock
func NewProduct(sku, name string, sellingPrice decimal.Decimal) *Product {
	return &Product{
		BaseEntity:               shared.NewBaseEntity(),
		Sku:                      sku,
		Name:                     name,
		SellingPrice:             sellingPrice,
		StockQuantity:            decimal.Zero,
		ConsignmentStockQuantity: decimal.Zero,
		Status:                   ProductStatusActive,
	}
}

// OwnedAvailable returns the quantity of platform-owned stock available for sale
func (p *Product) OwnedAvailable() decimal.Decimal {
	return p.StockQuantity.Sub(p.ConsignmentStockQuantity)
}

// ConsignmentAvailable returns the quantity of consignment stock available for sale
func (p *Product) ConsignmentAvailable() decimal.Decimal {
	return p.ConsignmentStockQuantity
}

// TotalAvailable returns the total stock available for sale
func (p *Product) TotalAvailable() decimal.Decimal {
	return p.StockQuantity
}

// DeductStock reduces the stock counters after a sale has been attributed.
// total is the full quantity sold; consignmentPortion is the part of it that
// was funded by consignment batches.
func (p *Product) DeductStock(total, consignmentPortion decimal.Decimal) error {
	if total.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidQuantity
	}
	if consignmentPortion.IsNegative() || consignmentPortion.GreaterThan(total) {
		return shared.ErrInvalidInput
	}
	if total.GreaterThan(p.StockQuantity) {
		return shared.ErrInsufficientStock
	}
	if consignmentPortion.GreaterThan(p.ConsignmentStockQuantity) {
		return shared.ErrInsufficientStock
	}

	newStock := p.StockQuantity.Sub(total)
	newConsignment := p.ConsignmentStockQuantity.Sub(consignmentPortion)
	if newConsignment.GreaterThan(newStock) {
		return shared.ErrInsufficientStock
	}

	p.StockQuantity = newStock
	p.ConsignmentStockQuantity = newConsignment
	p.Touch()
	return nil
}

// AdjustConsignmentStock shifts the consignment counter by delta without
// changing the total. Used when an override moves sold units between owned
// stock and consignment batches: total on-hand stays the same, but the
// consignment subset must stay in sync with batch availability.
func (p *Product) AdjustConsignmentStock(delta decimal.Decimal) error {
	adjusted := p.ConsignmentStockQuantity.Add(delta)
	if adjusted.IsNegative() || adjusted.GreaterThan(p.StockQuantity) {
		return shared.ErrInvalidInput
	}
	p.ConsignmentStockQuantity = adjusted
	p.Touch()
	return nil
}

// ReconcileStock applies an override's net effect to the stock counters.
// totalDelta moves the total on-hand quantity and consignmentDelta moves the
// consignment subset; either may be negative. An exact rebalance between
// sources has totalDelta zero, but a corrected total within the allowed
// drift shifts both counters.
func (p *Product) ReconcileStock(totalDelta, consignmentDelta decimal.Decimal) error {
	newStock := p.StockQuantity.Add(totalDelta)
	newConsignment := p.ConsignmentStockQuantity.Add(consignmentDelta)
	if newStock.IsNegative() || newConsignment.IsNegative() || newConsignment.GreaterThan(newStock) {
		return shared.ErrInvalidInput
	}
	p.StockQuantity = newStock
	p.ConsignmentStockQuantity = newConsignment
	p.Touch()
	return nil
}

// Validate checks the product stock invariant
func (p *Product) Validate() error {
	if p.ConsignmentStockQuantity.IsNegative() {
		return shared.ErrInvalidInput
	}
	if p.ConsignmentStockQuantity.GreaterThan(p.StockQuantity) {
		return shared.ErrInvalidInput
	}
	return nil
}
