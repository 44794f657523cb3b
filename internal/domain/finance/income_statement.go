package finance

import (
	"time"

	"github.com/consignly/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies an income statement entry
type TransactionType string

const (
	TransactionTypeRevenue TransactionType = "revenue"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid checks if the transaction type is valid
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeRevenue || t == TransactionTypeExpense
}

// String returns the string representation
func (t TransactionType) String() string {
	return string(t)
}

// AccountCategory identifies the ledger account an entry posts to
type AccountCategory string

const (
	// AccountCategorySalesRevenue records revenue from sales of owned stock
	AccountCategorySalesRevenue AccountCategory = "sales_revenue"
	// AccountCategoryConsignmentMargin records the platform's margin on consignment sales
	AccountCategoryConsignmentMargin AccountCategory = "consignment_margin"
	// AccountCategorySupplierPayable records amounts owed to consignment suppliers
	AccountCategorySupplierPayable AccountCategory = "supplier_payable"
)

// IsValid checks if the category is valid
func (c AccountCategory) IsValid() bool {
	switch c {
	case AccountCategorySalesRevenue, AccountCategoryConsignmentMargin, AccountCategorySupplierPayable:
		return true
	}
	return false
}

// Entry is a double-entry bookkeeping record. Exactly one of DebitAmount and
// CreditAmount is positive; the other is exactly zero. Revenue entries carry
// the credit side, expense entries the debit side. Entries are append-only:
// corrections are posted as additional entries, never as updates.
type Entry struct {
	shared.BaseEntity
	TransactionDate time.Time
	TransactionType TransactionType
	AccountCategory AccountCategory
	DebitAmount     decimal.Decimal
	CreditAmount    decimal.Decimal

	// OrderID and AttributionID tie the entry back to the sale leg it was
	// posted for, preserving the audit trail across overrides.
	OrderID       uuid.UUID
	AttributionID uuid.UUID
	Reference     string
}

// NewRevenueEntry creates a revenue entry crediting the given amount
func NewRevenueEntry(orderID, attributionID uuid.UUID, category AccountCategory, amount decimal.Decimal, reference string) (*Entry, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput
	}
	return &Entry{
		BaseEntity:      shared.NewBaseEntity(),
		TransactionDate: time.Now(),
		TransactionType: TransactionTypeRevenue,
		AccountCategory: category,
		DebitAmount:     decimal.Zero,
		CreditAmount:    amount,
		OrderID:         orderID,
		AttributionID:   attributionID,
		Reference:       reference,
	}, nil
}

// NewExpenseEntry creates an expense entry debiting the given amount
func NewExpenseEntry(orderID, attributionID uuid.UUID, category AccountCategory, amount decimal.Decimal, reference string) (*Entry, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidInput
	}
	return &Entry{
		BaseEntity:      shared.NewBaseEntity(),
		TransactionDate: time.Now(),
		TransactionType: TransactionTypeExpense,
		AccountCategory: category,
		DebitAmount:     amount,
		CreditAmount:    decimal.Zero,
		OrderID:         orderID,
		AttributionID:   attributionID,
		Reference:       reference,
	}, nil
}

// Amount returns the non-zero side of the entry
func (e *Entry) Amount() decimal.Decimal {
	if e.TransactionType == TransactionTypeExpense {
		return e.DebitAmount
	}
	return e.CreditAmount
}

// Validate checks the double-entry invariant: exactly one of debit/credit is
// positive, and the positive side matches the transaction type.
func (e *Entry) Validate() error {
	if !e.TransactionType.IsValid() || !e.AccountCategory.IsValid() {
		return shared.ErrInvalidInput
	}
	debitSet := e.DebitAmount.GreaterThan(decimal.Zero)
	creditSet := e.CreditAmount.GreaterThan(decimal.Zero)
	if debitSet == creditSet {
		return shared.ErrInvalidInput
	}
	if e.DebitAmount.IsNegative() || e.CreditAmount.IsNegative() {
		return shared.ErrInvalidInput
	}
	if e.TransactionType == TransactionTypeRevenue && !creditSet {
		return shared.ErrInvalidInput
	}
	if e.TransactionType == TransactionTypeExpense && !debitSet {
		return shared.ErrInvalidInput
	}
	return nil
}
