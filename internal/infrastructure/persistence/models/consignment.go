package models

import (
	"time"

	"github.com/consignly/backend/internal/domain/consignment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConsignmentBatchModel is the persistence model for the Batch entity.
// The composite index on (product_id, received_at) serves the FIFO scan.
type ConsignmentBatchModel struct {
	BaseModel
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_batch_product_received,priority:1"`
	SupplierID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReceivedAt       time.Time       `gorm:"not null;index:idx_batch_product_received,priority:2"`
	InitialQuantity  decimal.Decimal `gorm:"type:decimal(18,3);not null"`
	QuantitySold     decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0"`
	QuantityReturned decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0"`
	UnitCost         decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status           string          `gorm:"type:varchar(20);not null;default:'in_stock'"`
}

// TableName returns the table name for GORM
func (ConsignmentBatchModel) TableName() string {
	return "consignment_batches"
}

// ToDomain converts the persistence model to a domain Batch entity.
func (m *ConsignmentBatchModel) ToDomain() *consignment.Batch {
	return &consignment.Batch{
		BaseEntity:       m.BaseModel.ToDomain(),
		ProductID:        m.ProductID,
		SupplierID:       m.SupplierID,
		ReceivedAt:       m.ReceivedAt,
		InitialQuantity:  m.InitialQuantity,
		QuantitySold:     m.QuantitySold,
		QuantityReturned: m.QuantityReturned,
		UnitCost:         m.UnitCost,
		Status:           consignment.BatchStatus(m.Status),
	}
}

// FromDomain populates the persistence model from a domain Batch entity.
func (m *ConsignmentBatchModel) FromDomain(b *consignment.Batch) {
	m.FromDomainBaseEntity(b.BaseEntity)
	m.ProductID = b.ProductID
	m.SupplierID = b.SupplierID
	m.ReceivedAt = b.ReceivedAt
	m.InitialQuantity = b.InitialQuantity
	m.QuantitySold = b.QuantitySold
	m.QuantityReturned = b.QuantityReturned
	m.UnitCost = b.UnitCost
	m.Status = string(b.Status)
}

// ConsignmentBatchModelFromDomain creates a new persistence model from a domain Batch entity.
func ConsignmentBatchModelFromDomain(b *consignment.Batch) *ConsignmentBatchModel {
	m := &ConsignmentBatchModel{}
	m.FromDomain(b)
	return m
}

// ConsignmentAttributionModel is the persistence model for the Attribution
// entity. Rows are append-only; there is no update path.
type ConsignmentAttributionModel struct {
	BaseModel
	OrderID               uuid.UUID        `gorm:"type:uuid;not null;index"`
	OrderItemID           *uuid.UUID       `gorm:"type:uuid;index"`
	ProductID             uuid.UUID        `gorm:"type:uuid;not null;index"`
	SourceType            string           `gorm:"type:varchar(20);not null"`
	BatchID               *uuid.UUID       `gorm:"type:uuid;index"`
	Quantity              decimal.Decimal  `gorm:"type:decimal(18,3);not null"`
	UnitCost              *decimal.Decimal `gorm:"type:decimal(18,4)"`
	SupplierPortion       *decimal.Decimal `gorm:"type:decimal(18,4)"`
	PlatformProfit        decimal.Decimal  `gorm:"type:decimal(18,4);not null"`
	CreatedBy             uuid.UUID        `gorm:"type:uuid;not null"`
	IsOverride            bool             `gorm:"not null;default:false;index"`
	OverrideReason        string           `gorm:"type:text"`
	OriginalAttributionID *uuid.UUID       `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (ConsignmentAttributionModel) TableName() string {
	return "consignment_attributions"
}

// ToDomain converts the persistence model to a domain Attribution entity.
func (m *ConsignmentAttributionModel) ToDomain() *consignment.Attribution {
	return &consignment.Attribution{
		BaseEntity:            m.BaseModel.ToDomain(),
		OrderID:               m.OrderID,
		OrderItemID:           m.OrderItemID,
		ProductID:             m.ProductID,
		SourceType:            consignment.SourceType(m.SourceType),
		BatchID:               m.BatchID,
		Quantity:              m.Quantity,
		UnitCost:              m.UnitCost,
		SupplierPortion:       m.SupplierPortion,
		PlatformProfit:        m.PlatformProfit,
		CreatedBy:             m.CreatedBy,
		IsOverride:            m.IsOverride,
		OverrideReason:        m.OverrideReason,
		OriginalAttributionID: m.OriginalAttributionID,
	}
}

// FromDomain populates the persistence model from a domain Attribution entity.
func (m *ConsignmentAttributionModel) FromDomain(a *consignment.Attribution) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.OrderID = a.OrderID
	m.OrderItemID = a.OrderItemID
	m.ProductID = a.ProductID
	m.SourceType = string(a.SourceType)
	m.BatchID = a.BatchID
	m.Quantity = a.Quantity
	m.UnitCost = a.UnitCost
	m.SupplierPortion = a.SupplierPortion
	m.PlatformProfit = a.PlatformProfit
	m.CreatedBy = a.CreatedBy
	m.IsOverride = a.IsOverride
	m.OverrideReason = a.OverrideReason
	m.OriginalAttributionID = a.OriginalAttributionID
}

// ConsignmentAttributionModelFromDomain creates a new persistence model from a domain Attribution entity.
func ConsignmentAttributionModelFromDomain(a *consignment.Attribution) *ConsignmentAttributionModel {
	m := &ConsignmentAttributionModel{}
	m.FromDomain(a)
	return m
}
