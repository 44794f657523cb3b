package consignment

import (
	"github.com/consignly/backend/internal/domain/consignment"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AttributeSaleRequest carries one sold line item from the order subsystem
// into the attribution engine.
type AttributeSaleRequest struct {
	OrderID      uuid.UUID
	OrderItemID  *uuid.UUID
	ProductID    uuid.UUID
	Quantity     decimal.Decimal
	SellingPrice decimal.Decimal
	ActorID      uuid.UUID
}

// OverrideLeg describes one corrected attribution leg supplied by an admin.
// BatchID is required when SourceType is consignment.
type OverrideLeg struct {
	SourceType consignment.SourceType
	BatchID    *uuid.UUID
	Quantity   decimal.Decimal
}

// OverrideRequest carries an admin correction of an order's attribution.
type OverrideRequest struct {
	OrderID uuid.UUID
	Legs    []OverrideLeg
	Reason  string
	ActorID uuid.UUID
}

// AttributionResponse is the outward representation of an attribution leg.
type AttributionResponse struct {
	ID                    uuid.UUID  `json:"id"`
	OrderID               uuid.UUID  `json:"order_id"`
	OrderItemID           *uuid.UUID `json:"order_item_id,omitempty"`
	ProductID             uuid.UUID  `json:"product_id"`
	SourceType            string     `json:"source_type"`
	BatchID               *uuid.UUID `json:"batch_id,omitempty"`
	Quantity              string     `json:"quantity"`
	UnitCost              *string    `json:"unit_cost,omitempty"`
	SupplierPortion       *string    `json:"supplier_portion,omitempty"`
	PlatformProfit        string     `json:"platform_profit"`
	IsOverride            bool       `json:"is_override"`
	OverrideReason        string     `json:"override_reason,omitempty"`
	OriginalAttributionID *uuid.UUID `json:"original_attribution_id,omitempty"`
	CreatedAt             string     `json:"created_at"`
}

// ToAttributionResponse maps a domain attribution to its response form
func ToAttributionResponse(a *consignment.Attribution) AttributionResponse {
	resp := AttributionResponse{
		ID:                    a.ID,
		OrderID:               a.OrderID,
		OrderItemID:           a.OrderItemID,
		ProductID:             a.ProductID,
		SourceType:            a.SourceType.String(),
		BatchID:               a.BatchID,
		Quantity:              a.Quantity.String(),
		PlatformProfit:        a.PlatformProfit.String(),
		IsOverride:            a.IsOverride,
		OverrideReason:        a.OverrideReason,
		OriginalAttributionID: a.OriginalAttributionID,
		CreatedAt:             a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if a.UnitCost != nil {
		s := a.UnitCost.String()
		resp.UnitCost = &s
	}
	if a.SupplierPortion != nil {
		s := a.SupplierPortion.String()
		resp.SupplierPortion = &s
	}
	return resp
}

// ToAttributionResponses maps a slice of domain attributions
func ToAttributionResponses(attrs []*consignment.Attribution) []AttributionResponse {
	responses := make([]AttributionResponse, len(attrs))
	for i, a := range attrs {
		responses[i] = ToAttributionResponse(a)
	}
	return responses
}
