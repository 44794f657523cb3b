package consignment

import (
	"github.com/consignly/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationPriority controls which stock source a sale draws from first
type AllocationPriority string

const (
	// PriorityOwnedFirst sells platform-owned stock before consignment batches
	PriorityOwnedFirst AllocationPriority = "owned_first"
	// PriorityConsignmentFirst sells consignment batches before owned stock
	PriorityConsignmentFirst AllocationPriority = "consignment_first"
)

// DefaultPriority is used when the configuration store has no value set
const DefaultPriority = PriorityOwnedFirst

// IsValid checks if the priority is valid
func (p AllocationPriority) IsValid() bool {
	return p == PriorityOwnedFirst || p == PriorityConsignmentFirst
}

// String returns the string representation
func (p AllocationPriority) String() string {
	return string(p)
}

// AllocationLeg is one planned deduction from a single stock source
type AllocationLeg struct {
	SourceType SourceType
	BatchID    uuid.UUID       // zero for owned legs
	UnitCost   decimal.Decimal // zero for owned legs
	Quantity   decimal.Decimal
}

// AllocationPlan is the outcome of splitting a sale quantity across owned
// stock and FIFO-ordered consignment batches. The plan is computed before any
// state is touched; callers apply it inside a transaction.
type AllocationPlan struct {
	Legs             []AllocationLeg
	OwnedTotal       decimal.Decimal
	ConsignmentTotal decimal.Decimal
}

// TotalQuantity returns the sum of all planned leg quantities
func (p *AllocationPlan) TotalQuantity() decimal.Decimal {
	return p.OwnedTotal.Add(p.ConsignmentTotal)
}

// PlanAllocation splits quantity across owned stock and consignment batches
// according to the priority policy. Batches must be sellable and sorted by
// received date ascending; the planner consumes them in the given order and
// never skips a batch that still has capacity.
//
// Returns ErrInvalidQuantity for non-positive quantities and
// ErrInsufficientStock when owned plus consignment availability cannot cover
// the request. No partial plans are ever returned.
func PlanAllocation(priority AllocationPriority, quantity, ownedAvailable decimal.Decimal, batches []*Batch) (*AllocationPlan, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidQuantity
	}
	if !priority.IsValid() {
		priority = DefaultPriority
	}

	consignmentAvailable := decimal.Zero
	for _, b := range batches {
		if b.HasStock() {
			consignmentAvailable = consignmentAvailable.Add(b.Available())
		}
	}
	if ownedAvailable.Add(consignmentAvailable).LessThan(quantity) {
		return nil, shared.ErrInsufficientStock
	}

	plan := &AllocationPlan{
		OwnedTotal:       decimal.Zero,
		ConsignmentTotal: decimal.Zero,
	}
	remaining := quantity

	takeOwned := func() {
		if remaining.IsZero() || ownedAvailable.LessThanOrEqual(decimal.Zero) {
			return
		}
		take := decimal.Min(ownedAvailable, remaining)
		plan.Legs = append(plan.Legs, AllocationLeg{
			SourceType: SourceTypeOwned,
			Quantity:   take,
		})
		plan.OwnedTotal = plan.OwnedTotal.Add(take)
		remaining = remaining.Sub(take)
	}

	takeConsignment := func() {
		for _, b := range batches {
			if remaining.IsZero() {
				break
			}
			if !b.HasStock() {
				continue
			}
			take := decimal.Min(b.Available(), remaining)
			plan.Legs = append(plan.Legs, AllocationLeg{
				SourceType: SourceTypeConsignment,
				BatchID:    b.ID,
				UnitCost:   b.UnitCost,
				Quantity:   take,
			})
			plan.ConsignmentTotal = plan.ConsignmentTotal.Add(take)
			remaining = remaining.Sub(take)
		}
	}

	if priority == PriorityConsignmentFirst {
		takeConsignment()
		takeOwned()
	} else {
		takeOwned()
		takeConsignment()
	}

	// The availability check above guarantees full coverage.
	if !remaining.IsZero() {
		return nil, shared.ErrInsufficientStock
	}
	return plan, nil
}
