package handler

import (
	consignmentapp "github.com/consignly/backend/internal/application/consignment"
	"github.com/consignly/backend/internal/domain/consignment"
	"github.com/gin-gonic/gin"
)

// ConfigHandler handles attribution configuration API endpoints
type ConfigHandler struct {
	BaseHandler
	configService *consignmentapp.ConfigService
}

// NewConfigHandler creates a new ConfigHandler
func NewConfigHandler(configService *consignmentapp.ConfigService) *ConfigHandler {
	return &ConfigHandler{
		configService: configService,
	}
}

// PriorityResponse represents the allocation priority setting
type PriorityResponse struct {
	Priority string `json:"priority"`
}

// SetPriorityRequest represents a request to change the allocation priority
type SetPriorityRequest struct {
	Priority string `json:"priority" binding:"required,oneof=owned_first consignment_first"`
}

// RegisterRoutes registers attribution configuration endpoints
func (h *ConfigHandler) RegisterRoutes(rg *gin.RouterGroup) {
	config := rg.Group("/attribution-config")
	{
		config.GET("/priority", h.GetPriority)
		config.PUT("/priority", h.SetPriority)
	}
}

// GetPriority returns the current allocation priority
func (h *ConfigHandler) GetPriority(c *gin.Context) {
	priority, err := h.configService.GetPriority(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, PriorityResponse{Priority: string(priority)})
}

// SetPriority changes the allocation priority
func (h *ConfigHandler) SetPriority(c *gin.Context) {
	var req SetPriorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	priority := consignment.AllocationPriority(req.Priority)
	if err := h.configService.SetPriority(c.Request.Context(), priority); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, PriorityResponse{Priority: string(priority)})
}
