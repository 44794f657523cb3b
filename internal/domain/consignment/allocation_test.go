package consignment

import (
	"testing"
	"time"

	"github.com/consignly/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func TestAllocationPriority(t *testing.T) {
	assert.True(t, PriorityOwnedFirst.IsValid())
	assert.True(t, PriorityConsignmentFirst.IsValid())
	assert.False(t, AllocationPriority("newest_first").IsValid())
	assert.Equal(t, "owned_first", PriorityOwnedFirst.String())
}

func TestPlanAllocationOwnedFirst(t *testing.T) {
	t.Run("covers fully from owned stock when sufficient", func(t *testing.T) {
		b := newTestBatch(t, 5, 1.0, time.Now())

		plan, err := PlanAllocation(PriorityOwnedFirst, dec(4), dec(10), []*Batch{b})
		require.NoError(t, err)
		require.Len(t, plan.Legs, 1)
		assert.Equal(t, SourceTypeOwned, plan.Legs[0].SourceType)
		assert.True(t, plan.Legs[0].Quantity.Equal(dec(4)))
		assert.True(t, plan.OwnedTotal.Equal(dec(4)))
		assert.True(t, plan.ConsignmentTotal.IsZero())
	})

	t.Run("spills into consignment when owned is short", func(t *testing.T) {
		b := newTestBatch(t, 5, 1.0, time.Now())

		plan, err := PlanAllocation(PriorityOwnedFirst, dec(7), dec(3), []*Batch{b})
		require.NoError(t, err)
		require.Len(t, plan.Legs, 2)
		assert.Equal(t, SourceTypeOwned, plan.Legs[0].SourceType)
		assert.True(t, plan.Legs[0].Quantity.Equal(dec(3)))
		assert.Equal(t, SourceTypeConsignment, plan.Legs[1].SourceType)
		assert.True(t, plan.Legs[1].Quantity.Equal(dec(4)))
		assert.True(t, plan.TotalQuantity().Equal(dec(7)))
	})
}

func TestPlanAllocationConsignmentFirst(t *testing.T) {
	t.Run("covers fully from batches when sufficient", func(t *testing.T) {
		b1 := newTestBatch(t, 5, 1.0, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		b2 := newTestBatch(t, 5, 1.2, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))

		plan, err := PlanAllocation(PriorityConsignmentFirst, dec(7), dec(10), []*Batch{b1, b2})
		require.NoError(t, err)
		require.Len(t, plan.Legs, 2)
		for _, leg := range plan.Legs {
			assert.Equal(t, SourceTypeConsignment, leg.SourceType)
		}
		assert.True(t, plan.OwnedTotal.IsZero())
	})

	t.Run("spills into owned when batches are short", func(t *testing.T) {
		b := newTestBatch(t, 2, 1.0, time.Now())

		plan, err := PlanAllocation(PriorityConsignmentFirst, dec(5), dec(10), []*Batch{b})
		require.NoError(t, err)
		require.Len(t, plan.Legs, 2)
		assert.Equal(t, SourceTypeConsignment, plan.Legs[0].SourceType)
		assert.True(t, plan.Legs[0].Quantity.Equal(dec(2)))
		assert.Equal(t, SourceTypeOwned, plan.Legs[1].SourceType)
		assert.True(t, plan.Legs[1].Quantity.Equal(dec(3)))
	})
}

func TestPlanAllocationFIFO(t *testing.T) {
	t.Run("consumes batches in given order without skipping", func(t *testing.T) {
		b1 := newTestBatch(t, 5, 1.0, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		b2 := newTestBatch(t, 5, 1.2, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))
		b3 := newTestBatch(t, 5, 1.4, time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC))

		plan, err := PlanAllocation(PriorityOwnedFirst, dec(12), dec(0), []*Batch{b1, b2, b3})
		require.NoError(t, err)
		require.Len(t, plan.Legs, 3)
		assert.Equal(t, b1.ID, plan.Legs[0].BatchID)
		assert.True(t, plan.Legs[0].Quantity.Equal(dec(5)))
		assert.Equal(t, b2.ID, plan.Legs[1].BatchID)
		assert.True(t, plan.Legs[1].Quantity.Equal(dec(5)))
		assert.Equal(t, b3.ID, plan.Legs[2].BatchID)
		assert.True(t, plan.Legs[2].Quantity.Equal(dec(2)))
	})

	t.Run("skips batches without sellable stock", func(t *testing.T) {
		b1 := newTestBatch(t, 5, 1.0, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, b1.Deduct(dec(5)))
		b2 := newTestBatch(t, 5, 1.2, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC))

		plan, err := PlanAllocation(PriorityOwnedFirst, dec(3), dec(0), []*Batch{b1, b2})
		require.NoError(t, err)
		require.Len(t, plan.Legs, 1)
		assert.Equal(t, b2.ID, plan.Legs[0].BatchID)
	})

	t.Run("carries batch unit cost onto the leg", func(t *testing.T) {
		b := newTestBatch(t, 5, 1.25, time.Now())

		plan, err := PlanAllocation(PriorityOwnedFirst, dec(2), dec(0), []*Batch{b})
		require.NoError(t, err)
		assert.True(t, plan.Legs[0].UnitCost.Equal(dec(1.25)))
	})
}

func TestPlanAllocationErrors(t *testing.T) {
	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := PlanAllocation(PriorityOwnedFirst, decimal.Zero, dec(10), nil)
		assert.ErrorIs(t, err, shared.ErrInvalidQuantity)
	})

	t.Run("rejects quantity exceeding total availability", func(t *testing.T) {
		b := newTestBatch(t, 5, 1.0, time.Now())

		_, err := PlanAllocation(PriorityOwnedFirst, dec(20), dec(2), []*Batch{b})
		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
	})

	t.Run("falls back to default for unknown priority", func(t *testing.T) {
		plan, err := PlanAllocation(AllocationPriority("bogus"), dec(2), dec(5), nil)
		require.NoError(t, err)
		require.Len(t, plan.Legs, 1)
		assert.Equal(t, SourceTypeOwned, plan.Legs[0].SourceType)
	})
}

func TestPlanAllocationConservation(t *testing.T) {
	b1 := newTestBatch(t, 3, 1.0, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	b2 := newTestBatch(t, 4, 1.1, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	for _, qty := range []float64{0.5, 1, 2.25, 6, 9} {
		plan, err := PlanAllocation(PriorityOwnedFirst, dec(qty), dec(2), []*Batch{b1, b2})
		require.NoError(t, err)

		sum := decimal.Zero
		for _, leg := range plan.Legs {
			sum = sum.Add(leg.Quantity)
		}
		assert.True(t, sum.Equal(dec(qty)), "allocated %s, requested %v", sum, qty)
		assert.True(t, plan.TotalQuantity().Equal(dec(qty)))
	}
}
