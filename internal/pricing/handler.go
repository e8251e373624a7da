package pricing

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/richxcame/motorent/pkg/common"
)

// ServiceInterface is the pricing behaviour the HTTP layer depends on
type ServiceInterface interface {
	QuoteReservation(ctx context.Context, req QuoteRequest) (*QuoteResult, error)
	ListRateCards(ctx context.Context) []RateCard
	GetRateCard(ctx context.Context, class string) (*RateCard, error)
}

// Handler handles HTTP requests for pricing
type Handler struct {
	service ServiceInterface
}

// NewHandler creates a new pricing handler
func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// Quote prices a prospective reservation
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if !common.BindJSON(c, &req) {
		return
	}

	quote, err := h.service.QuoteReservation(c.Request.Context(), req)
	if common.HandleServiceError(c, err, "failed to calculate quote") {
		return
	}

	common.SuccessResponse(c, quote)
}

// ListRateCards returns the published rate cards
func (h *Handler) ListRateCards(c *gin.Context) {
	common.SuccessResponse(c, h.service.ListRateCards(c.Request.Context()))
}

// GetRateCard returns one class's rate card
func (h *Handler) GetRateCard(c *gin.Context) {
	card, err := h.service.GetRateCard(c.Request.Context(), c.Param("class"))
	if common.HandleServiceError(c, err, "failed to get rate card") {
		return
	}

	common.SuccessResponse(c, card)
}

// RegisterRoutes registers pricing routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	pricing := rg.Group("/pricing")
	{
		pricing.POST("/quote", h.Quote)
		pricing.GET("/rate-cards", h.ListRateCards)
		pricing.GET("/rate-cards/:class", h.GetRateCard)
	}
}
