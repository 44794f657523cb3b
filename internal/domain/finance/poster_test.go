package finance

import (
	"testing"

	"github.com/consignly/backend/internal/domain/consignment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func TestPosterOwnedLeg(t *testing.T) {
	poster := NewPoster()

	leg, err := consignment.NewOwnedAttribution(uuid.New(), nil, uuid.New(), dec(4), dec(2.0), uuid.New())
	require.NoError(t, err)

	entries, err := poster.PostAttribution(leg)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, TransactionTypeRevenue, e.TransactionType)
	assert.Equal(t, AccountCategorySalesRevenue, e.AccountCategory)
	assert.True(t, e.CreditAmount.Equal(dec(8.0)))
	assert.Equal(t, leg.OrderID, e.OrderID)
	assert.Equal(t, leg.ID, e.AttributionID)
	require.NoError(t, e.Validate())
}

func TestPosterZeroPriceOwnedLeg(t *testing.T) {
	poster := NewPoster()

	// Samples and giveaways sell at price zero; the leg is recorded but no
	// revenue entry is posted.
	leg, err := consignment.NewOwnedAttribution(uuid.New(), nil, uuid.New(), dec(4), decimal.Zero, uuid.New())
	require.NoError(t, err)

	entries, err := poster.PostAttribution(leg)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPosterConsignmentLeg(t *testing.T) {
	poster := NewPoster()

	// Scenario: 5 units from a batch costing 1.0, sold at 3.0. Supplier is
	// owed 5.0; the platform margin is 10.0.
	leg, err := consignment.NewConsignmentAttribution(uuid.New(), nil, uuid.New(), uuid.New(), dec(5), dec(1.0), dec(3.0), uuid.New())
	require.NoError(t, err)

	entries, err := poster.PostAttribution(leg)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	expense, revenue := entries[0], entries[1]
	assert.Equal(t, TransactionTypeExpense, expense.TransactionType)
	assert.Equal(t, AccountCategorySupplierPayable, expense.AccountCategory)
	assert.True(t, expense.DebitAmount.Equal(dec(5.0)))
	assert.True(t, expense.CreditAmount.IsZero())

	assert.Equal(t, TransactionTypeRevenue, revenue.TransactionType)
	assert.Equal(t, AccountCategoryConsignmentMargin, revenue.AccountCategory)
	assert.True(t, revenue.CreditAmount.Equal(dec(10.0)))
	assert.True(t, revenue.DebitAmount.IsZero())

	for _, e := range entries {
		require.NoError(t, e.Validate())
	}

	// Double-entry balance: the two sides together equal the gross sale.
	gross := expense.DebitAmount.Add(revenue.CreditAmount)
	assert.True(t, gross.Equal(dec(15.0)))
}

func TestPosterZeroCostConsignmentLeg(t *testing.T) {
	poster := NewPoster()

	leg, err := consignment.NewConsignmentAttribution(uuid.New(), nil, uuid.New(), uuid.New(), dec(2), decimal.Zero, dec(3.0), uuid.New())
	require.NoError(t, err)

	entries, err := poster.PostAttribution(leg)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, TransactionTypeRevenue, entries[0].TransactionType)
	assert.True(t, entries[0].CreditAmount.Equal(dec(6.0)))
}

func TestPosterOverrideLegReference(t *testing.T) {
	poster := NewPoster()

	leg, err := consignment.NewOwnedAttribution(uuid.New(), nil, uuid.New(), dec(1), dec(2.0), uuid.New())
	require.NoError(t, err)
	require.NoError(t, leg.MarkOverride("manual correction", uuid.New()))

	entries, err := poster.PostAttribution(leg)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Reference, "override")
}

func TestPosterRejectsInvalidLeg(t *testing.T) {
	poster := NewPoster()

	leg, err := consignment.NewConsignmentAttribution(uuid.New(), nil, uuid.New(), uuid.New(), dec(2), dec(1.0), dec(3.0), uuid.New())
	require.NoError(t, err)
	leg.BatchID = nil

	_, err = poster.PostAttribution(leg)
	assert.Error(t, err)
}
