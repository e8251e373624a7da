package settlement

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/richxcame/motorent/internal/royalty"
	"github.com/richxcame/motorent/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) BuildReport(ctx context.Context, q ReportQuery) (*Report, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Report), args.Error(1)
}

func (m *mockService) VendorReport(ctx context.Context, vendorID uuid.UUID, from, to time.Time) (*Report, error) {
	args := m.Called(ctx, vendorID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Report), args.Error(1)
}

func (m *mockService) Preview(ctx context.Context, req PreviewRequest) (*Preview, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Preview), args.Error(1)
}

func setupTestContext(method, path string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, nil)
	return c, w
}

func parseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	return response
}

func sampleReport() *Report {
	vendor := uuid.New()
	items := []LineItem{
		lineItem(vendor, "Asakusa Bikes", royalty.Input{BikeSubtotal: 20000, TotalAmount: 23000, PaymentType: royalty.PaymentECCredit, Plan: royalty.PlanBike, Refund: royalty.RefundNone}),
	}
	summary := Summarize(items)
	return &Report{
		From:      "2025-04-01",
		To:        "2025-04-30",
		Settings:  testSettings(),
		Vendors:   summary.Vendors,
		Totals:    summary.Totals,
		LineItems: items,
	}
}

func TestHandler_GetReport(t *testing.T) {
	svc := new(mockService)
	handler := NewHandler(svc)

	svc.On("BuildReport", mock.Anything, ReportQuery{From: april1, To: april30}).Return(sampleReport(), nil)

	c, w := setupTestContext(http.MethodGet, "/api/v1/admin/settlements?from=2025-04-01&to=2025-04-30")
	handler.GetReport(c)

	require.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(w)
	assert.True(t, response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "2025-04-01", data["from"])
	totals := data["totals"].(map[string]interface{})
	assert.Equal(t, 2508.0, totals["total_fee"])
	assert.Equal(t, "1680", totals["royalty_amount"])
	assert.Equal(t, 1.0, totals["vendor_count"])
	assert.Len(t, data["line_items"], 1)
	assert.NotContains(t, data, "skipped")

	svc.AssertExpectations(t)
}

func TestHandler_GetReport_VendorFilter(t *testing.T) {
	svc := new(mockService)
	handler := NewHandler(svc)

	vendorID := uuid.New()
	svc.On("BuildReport", mock.Anything, mock.MatchedBy(func(q ReportQuery) bool {
		return q.VendorID != nil && *q.VendorID == vendorID
	})).Return(sampleReport(), nil)

	c, w := setupTestContext(http.MethodGet, "/api/v1/admin/settlements?from=2025-04-01&to=2025-04-30&vendor_id="+vendorID.String())
	handler.GetReport(c)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestHandler_GetReport_BadQuery(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantMessage string
	}{
		{"missing from", "?to=2025-04-30", "from is required"},
		{"missing to", "?from=2025-04-01", "to is required"},
		{"malformed from", "?from=04/01/2025&to=2025-04-30", "invalid from, expected YYYY-MM-DD"},
		{"malformed vendor", "?from=2025-04-01&to=2025-04-30&vendor_id=shop-7", "invalid vendor ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			handler := NewHandler(svc)

			c, w := setupTestContext(http.MethodGet, "/api/v1/admin/settlements"+tt.query)
			handler.GetReport(c)

			require.Equal(t, http.StatusBadRequest, w.Code)
			errInfo := parseResponse(w)["error"].(map[string]interface{})
			assert.Equal(t, tt.wantMessage, errInfo["message"])
			svc.AssertNotCalled(t, "BuildReport", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_GetReport_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid range", common.NewValidationError("date_range: to must not be before from"), http.StatusBadRequest},
		{"timeout", common.NewAppError(http.StatusGatewayTimeout, "settlement report timed out", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"internal", common.NewInternalError("failed to load settlement data", nil), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			handler := NewHandler(svc)
			svc.On("BuildReport", mock.Anything, mock.Anything).Return(nil, tt.err)

			c, w := setupTestContext(http.MethodGet, "/api/v1/admin/settlements?from=2025-04-01&to=2025-04-30")
			handler.GetReport(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.False(t, parseResponse(w)["success"].(bool))
		})
	}
}

func TestHandler_GetVendorReport(t *testing.T) {
	svc := new(mockService)
	handler := NewHandler(svc)

	vendorID := uuid.New()
	report := sampleReport()
	report.VendorID = &vendorID
	svc.On("VendorReport", mock.Anything, vendorID, april1, april30).Return(report, nil)

	c, w := setupTestContext(http.MethodGet, "/api/v1/admin/settlements/vendors/"+vendorID.String()+"?from=2025-04-01&to=2025-04-30")
	c.Params = gin.Params{{Key: "vendor_id", Value: vendorID.String()}}
	handler.GetVendorReport(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(w)["data"].(map[string]interface{})
	assert.Equal(t, vendorID.String(), data["vendor_id"])
	svc.AssertExpectations(t)
}

func TestHandler_GetVendorReport_InvalidVendor(t *testing.T) {
	svc := new(mockService)
	handler := NewHandler(svc)

	c, w := setupTestContext(http.MethodGet, "/api/v1/admin/settlements/vendors/abc?from=2025-04-01&to=2025-04-30")
	c.Params = gin.Params{{Key: "vendor_id", Value: "abc"}}
	handler.GetVendorReport(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "VendorReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestHandler_PreviewRoyalty(t *testing.T) {
	svc := new(mockService)
	handler := NewHandler(svc)

	in := royalty.Input{BikeSubtotal: 20000, TotalAmount: 23000, PaymentType: royalty.PaymentECCredit, Plan: royalty.PlanBike, Refund: royalty.RefundNone}
	want := PreviewRequest{BikeSubtotal: 20000, TotalAmount: 23000, PaymentType: "ec_credit", Plan: "bike"}
	svc.On("Preview", mock.Anything, want).Return(&Preview{Input: in, Settings: testSettings(), Result: royalty.Calculate(in, testSettings())}, nil)

	body := []byte(`{"bike_subtotal": 20000, "total_amount": 23000, "payment_type": "ec_credit", "plan": "bike"}`)
	c, w := setupTestContext(http.MethodPost, "/api/v1/admin/settlements/preview")
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/settlements/preview", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler.PreviewRoyalty(c)

	require.Equal(t, http.StatusOK, w.Code)
	result := parseResponse(w)["data"].(map[string]interface{})["result"].(map[string]interface{})
	assert.Equal(t, 2508.0, result["total_fee"])
	svc.AssertExpectations(t)
}

func TestHandler_PreviewRoyalty_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
	}{
		{"malformed body", `{"bike_subtotal": "lots"}`, nil, http.StatusBadRequest},
		{"rejected by service", `{"bike_subtotal": 1, "total_amount": 1, "payment_type": "paypay", "plan": "bike"}`, common.NewValidationError("payment_type: invalid"), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			handler := NewHandler(svc)
			if tt.serviceErr != nil {
				svc.On("Preview", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)
			}

			c, w := setupTestContext(http.MethodPost, "/api/v1/admin/settlements/preview")
			c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/admin/settlements/preview", bytes.NewReader([]byte(tt.body)))
			c.Request.Header.Set("Content-Type", "application/json")
			handler.PreviewRoyalty(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.serviceErr == nil {
				svc.AssertNotCalled(t, "Preview", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestHandler_RegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler(new(mockService)).RegisterRoutes(router.Group("/api/v1/admin"))

	routes := map[string]bool{}
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	assert.True(t, routes["GET /api/v1/admin/settlements"])
	assert.True(t, routes["GET /api/v1/admin/settlements/vendors/:vendor_id"])
	assert.True(t, routes["POST /api/v1/admin/settlements/preview"])
}
