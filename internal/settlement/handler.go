package settlement

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/richxcame/motorent/pkg/common"
)

// ServiceInterface is the settlement behaviour the HTTP layer depends on
type ServiceInterface interface {
	BuildReport(ctx context.Context, q ReportQuery) (*Report, error)
	VendorReport(ctx context.Context, vendorID uuid.UUID, from, to time.Time) (*Report, error)
	Preview(ctx context.Context, req PreviewRequest) (*Preview, error)
}

// Handler handles HTTP requests for settlement reports
type Handler struct {
	service ServiceInterface
}

// NewHandler creates a new settlement handler
func NewHandler(service ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetReport returns the settlement report for a date range
func (h *Handler) GetReport(c *gin.Context) {
	from, ok := common.ParseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := common.ParseDateQuery(c, "to")
	if !ok {
		return
	}
	vendorID, ok := common.ParseUUIDQuery(c, "vendor_id", "vendor ID")
	if !ok {
		return
	}

	report, err := h.service.BuildReport(c.Request.Context(), ReportQuery{From: from, To: to, VendorID: vendorID})
	if common.HandleServiceError(c, err, "failed to build settlement report") {
		return
	}

	common.SuccessResponse(c, report)
}

// GetVendorReport returns one vendor's settlement for a date range
func (h *Handler) GetVendorReport(c *gin.Context) {
	vendorID, ok := common.ParseUUIDParam(c, "vendor_id", "vendor ID")
	if !ok {
		return
	}
	from, ok := common.ParseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := common.ParseDateQuery(c, "to")
	if !ok {
		return
	}

	report, err := h.service.VendorReport(c.Request.Context(), vendorID, from, to)
	if common.HandleServiceError(c, err, "failed to build vendor settlement") {
		return
	}

	common.SuccessResponse(c, report)
}

// PreviewRoyalty runs one hypothetical reservation through the calculator
func (h *Handler) PreviewRoyalty(c *gin.Context) {
	var req PreviewRequest
	if !common.BindJSON(c, &req) {
		return
	}

	preview, err := h.service.Preview(c.Request.Context(), req)
	if common.HandleServiceError(c, err, "failed to preview royalty") {
		return
	}

	common.SuccessResponse(c, preview)
}

// RegisterRoutes registers settlement routes under the admin group
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	settlements := rg.Group("/settlements")
	{
		settlements.GET("", h.GetReport)
		settlements.GET("/vendors/:vendor_id", h.GetVendorReport)
		settlements.POST("/preview", h.PreviewRoyalty)
	}
}
