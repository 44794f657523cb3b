package models

import (
	"time"

	"github.com/consignly/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeStatementEntryModel is the persistence model for the income statement
// Entry. Rows are append-only.
type IncomeStatementEntryModel struct {
	BaseModel
	TransactionDate time.Time       `gorm:"not null;index"`
	TransactionType string          `gorm:"type:varchar(10);not null"`
	AccountCategory string          `gorm:"type:varchar(30);not null;index"`
	DebitAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CreditAmount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	AttributionID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Reference       string          `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (IncomeStatementEntryModel) TableName() string {
	return "income_statement_entries"
}

// ToDomain converts the persistence model to a domain Entry.
func (m *IncomeStatementEntryModel) ToDomain() *finance.Entry {
	return &finance.Entry{
		BaseEntity:      m.BaseModel.ToDomain(),
		TransactionDate: m.TransactionDate,
		TransactionType: finance.TransactionType(m.TransactionType),
		AccountCategory: finance.AccountCategory(m.AccountCategory),
		DebitAmount:     m.DebitAmount,
		CreditAmount:    m.CreditAmount,
		OrderID:         m.OrderID,
		AttributionID:   m.AttributionID,
		Reference:       m.Reference,
	}
}

// FromDomain populates the persistence model from a domain Entry.
func (m *IncomeStatementEntryModel) FromDomain(e *finance.Entry) {
	m.FromDomainBaseEntity(e.BaseEntity)
	m.TransactionDate = e.TransactionDate
	m.TransactionType = string(e.TransactionType)
	m.AccountCategory = string(e.AccountCategory)
	m.DebitAmount = e.DebitAmount
	m.CreditAmount = e.CreditAmount
	m.OrderID = e.OrderID
	m.AttributionID = e.AttributionID
	m.Reference = e.Reference
}

// IncomeStatementEntryModelFromDomain creates a new persistence model from a domain Entry.
func IncomeStatementEntryModelFromDomain(e *finance.Entry) *IncomeStatementEntryModel {
	m := &IncomeStatementEntryModel{}
	m.FromDomain(e)
	return m
}
