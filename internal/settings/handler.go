package settings

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/richxcame/motorent/pkg/common"
)

// ServiceInterface is the settings behaviour the HTTP layer depends on
type ServiceInterface interface {
	Get(ctx context.Context) (*SettingsView, error)
	Update(ctx context.Context, req UpdateSettingsRequest) (*UpdateResult, error)
}

// Handler handles HTTP requests for royalty settings
type Handler struct {
	service ServiceInterface
}

// NewHandler creates a new settings handler
func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetSettings returns the active royalty settings
func (h *Handler) GetSettings(c *gin.Context) {
	view, err := h.service.Get(c.Request.Context())
	if common.HandleServiceError(c, err, "failed to get royalty settings") {
		return
	}

	common.SuccessResponse(c, view)
}

// UpdateSettings replaces the royalty settings; warnings come back in meta
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if !common.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Update(c.Request.Context(), req)
	if common.HandleServiceError(c, err, "failed to update royalty settings") {
		return
	}

	var meta *common.Meta
	if len(result.Warnings) > 0 {
		meta = &common.Meta{Warnings: result.Warnings}
	}
	common.SuccessResponseWithMeta(c, result, meta)
}

// RegisterRoutes registers settings routes under the admin group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/royalty-settings", h.GetSettings)
	rg.PUT("/royalty-settings", h.UpdateSettings)
}
