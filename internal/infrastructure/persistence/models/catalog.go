package models

import (
	"github.com/consignly/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product entity.
// Quantities use decimal(18,3), money uses decimal(18,4).
type ProductModel struct {
	BaseModel
	Sku                      string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	Name                     string          `gorm:"type:varchar(255);not null"`
	SellingPrice             decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	StockQuantity            decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0"`
	ConsignmentStockQuantity decimal.Decimal `gorm:"type:decimal(18,3);not null;default:0"`
	Status                   string          `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity:               m.BaseModel.ToDomain(),
		Sku:                      m.Sku,
		Name:                     m.Name,
		SellingPrice:             m.SellingPrice,
		StockQuantity:            m.StockQuantity,
		ConsignmentStockQuantity: m.ConsignmentStockQuantity,
		Status:                   catalog.ProductStatus(m.Status),
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Sku = p.Sku
	m.Name = p.Name
	m.SellingPrice = p.SellingPrice
	m.StockQuantity = p.StockQuantity
	m.ConsignmentStockQuantity = p.ConsignmentStockQuantity
	m.Status = string(p.Status)
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
