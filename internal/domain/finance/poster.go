package finance

import (
	"fmt"

	"github.com/consignly/backend/internal/domain/consignment"
	"github.com/consignly/backend/internal/domain/shared"
)

// Poster converts attribution legs into balanced income statement entries.
//
// A consignment leg yields two entries: an expense debiting the supplier
// payable for the supplier's portion of the sale, and a revenue crediting the
// consignment margin with the platform's profit. An owned leg yields a single
// revenue entry for the full sale amount. Entries are append-only; an
// override's new legs are posted as additional entries while the original
// entries remain untouched.
type Poster struct{}

// NewPoster creates a new income statement poster
func NewPoster() *Poster {
	return &Poster{}
}

// PostAttribution builds the ledger entries for one attribution leg. It does
// not persist them; the caller inserts the entries within its transaction.
func (p *Poster) PostAttribution(leg *consignment.Attribution) ([]*Entry, error) {
	if err := leg.Validate(); err != nil {
		return nil, err
	}

	reference := fmt.Sprintf("order:%s attribution:%s", leg.OrderID, leg.ID)
	if leg.IsOverride {
		reference = fmt.Sprintf("%s override", reference)
	}

	if !leg.IsConsignment() {
		// Zero-price sales (samples, giveaways) carry no revenue; nothing is
		// posted rather than an empty-amount entry.
		if !leg.PlatformProfit.IsPositive() {
			return nil, nil
		}
		revenue, err := NewRevenueEntry(leg.OrderID, leg.ID, AccountCategorySalesRevenue, leg.PlatformProfit, reference)
		if err != nil {
			return nil, err
		}
		return []*Entry{revenue}, nil
	}

	if leg.SupplierPortion == nil {
		return nil, shared.ErrInvalidInput
	}

	entries := make([]*Entry, 0, 2)

	// Supplier portion may legitimately be zero when a batch was consigned at
	// zero cost; the payable entry is skipped rather than posted with an
	// empty amount, which would break the debit-xor-credit invariant.
	if leg.SupplierPortion.IsPositive() {
		expense, err := NewExpenseEntry(leg.OrderID, leg.ID, AccountCategorySupplierPayable, *leg.SupplierPortion, reference)
		if err != nil {
			return nil, err
		}
		entries = append(entries, expense)
	}

	if leg.PlatformProfit.IsPositive() {
		revenue, err := NewRevenueEntry(leg.OrderID, leg.ID, AccountCategoryConsignmentMargin, leg.PlatformProfit, reference)
		if err != nil {
			return nil, err
		}
		entries = append(entries, revenue)
	}

	return entries, nil
}
