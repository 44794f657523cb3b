package handler

import (
	consignmentapp "github.com/consignly/backend/internal/application/consignment"
	"github.com/consignly/backend/internal/domain/consignment"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AttributionHandler handles sale attribution API endpoints
type AttributionHandler struct {
	BaseHandler
	attributionService *consignmentapp.AttributionService
}

// NewAttributionHandler creates a new AttributionHandler
func NewAttributionHandler(attributionService *consignmentapp.AttributionService) *AttributionHandler {
	return &AttributionHandler{
		attributionService: attributionService,
	}
}

// AttributeSaleRequest represents a request to attribute a sold line item
type AttributeSaleRequest struct {
	OrderID      string  `json:"order_id" binding:"required"`
	OrderItemID  *string `json:"order_item_id"`
	ProductID    string  `json:"product_id" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	SellingPrice float64 `json:"selling_price" binding:"gte=0"`
}

// OverrideLegRequest represents one corrected leg in an override request
type OverrideLegRequest struct {
	SourceType string  `json:"source_type" binding:"required"`
	BatchID    *string `json:"batch_id"`
	Quantity   float64 `json:"quantity" binding:"required,gt=0"`
}

// OverrideAttributionRequest represents a request to correct an order's attribution
type OverrideAttributionRequest struct {
	OrderID string               `json:"order_id" binding:"required"`
	Legs    []OverrideLegRequest `json:"legs" binding:"required,min=1,dive"`
	Reason  string               `json:"reason" binding:"required,min=1,max=500"`
}

// AttributeSale attributes a sold line item across owned stock and consignment batches
func (h *AttributionHandler) AttributeSale(c *gin.Context) {
	var req AttributeSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		h.BadRequest(c, "Invalid order_id format")
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.BadRequest(c, "Invalid product_id format")
		return
	}

	var orderItemID *uuid.UUID
	if req.OrderItemID != nil && *req.OrderItemID != "" {
		parsed, err := uuid.Parse(*req.OrderItemID)
		if err != nil {
			h.BadRequest(c, "Invalid order_item_id format")
			return
		}
		orderItemID = &parsed
	}

	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	attributions, err := h.attributionService.AttributeSale(c.Request.Context(), consignmentapp.AttributeSaleRequest{
		OrderID:      orderID,
		OrderItemID:  orderItemID,
		ProductID:    productID,
		Quantity:     decimal.NewFromFloat(req.Quantity),
		SellingPrice: decimal.NewFromFloat(req.SellingPrice),
		ActorID:      actorID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, consignmentapp.ToAttributionResponses(attributions))
}

// OverrideAttribution replaces an order's attribution with admin-supplied legs
func (h *AttributionHandler) OverrideAttribution(c *gin.Context) {
	var req OverrideAttributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		h.BadRequest(c, "Invalid order_id format")
		return
	}

	legs := make([]consignmentapp.OverrideLeg, 0, len(req.Legs))
	for _, leg := range req.Legs {
		sourceType := consignment.SourceType(leg.SourceType)
		var batchID *uuid.UUID
		if leg.BatchID != nil && *leg.BatchID != "" {
			parsed, err := uuid.Parse(*leg.BatchID)
			if err != nil {
				h.BadRequest(c, "Invalid batch_id format")
				return
			}
			batchID = &parsed
		}
		legs = append(legs, consignmentapp.OverrideLeg{
			SourceType: sourceType,
			BatchID:    batchID,
			Quantity:   decimal.NewFromFloat(leg.Quantity),
		})
	}

	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	attributions, err := h.attributionService.OverrideAttribution(c.Request.Context(), consignmentapp.OverrideRequest{
		OrderID: orderID,
		Legs:    legs,
		Reason:  req.Reason,
		ActorID: actorID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, consignmentapp.ToAttributionResponses(attributions))
}

// RegisterRoutes registers attribution endpoints
func (h *AttributionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	attributions := rg.Group("/attributions")
	{
		attributions.POST("", h.AttributeSale)
		attributions.POST("/override", h.OverrideAttribution)
	}
	rg.GET("/orders/:orderId/attributions", h.GetOrderAttributions)
}

// GetOrderAttributions returns the full attribution trail for an order
func (h *AttributionHandler) GetOrderAttributions(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID format")
		return
	}

	attributions, err := h.attributionService.GetOrderAttributions(c.Request.Context(), orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, consignmentapp.ToAttributionResponses(attributions))
}
