package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/richxcame/motorent/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Get(ctx context.Context) (*SettingsView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*SettingsView), args.Error(1)
}

func (m *mockService) Update(ctx context.Context, req UpdateSettingsRequest) (*UpdateResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UpdateResult), args.Error(1)
}

func setupTestContext(method, path string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req

	return c, w
}

func parseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &response)
	return response
}

func TestHandler_GetSettings(t *testing.T) {
	svc := new(mockService)
	handler := NewHandler(svc)

	svc.On("Get", mock.Anything).Return(&SettingsView{Settings: storedFixture().Settings, Source: SourceDatabase}, nil)

	c, w := setupTestContext(http.MethodGet, "/api/v1/admin/royalty-settings", nil)
	handler.GetSettings(c)

	require.Equal(t, http.StatusOK, w.Code)
	data := parseResponse(w)["data"].(map[string]interface{})
	assert.Equal(t, "database", data["source"])
	settings := data["settings"].(map[string]interface{})
	assert.Equal(t, 14.0, settings["royalty_bike_percent"])
	assert.Equal(t, 3.25, settings["ec_payment_fee_percent"])
}

func TestHandler_GetSettings_Error(t *testing.T) {
	svc := new(mockService)
	handler := NewHandler(svc)

	svc.On("Get", mock.Anything).Return(nil, common.NewInternalError("failed to load royalty settings", nil))

	c, w := setupTestContext(http.MethodGet, "/api/v1/admin/royalty-settings", nil)
	handler.GetSettings(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_UpdateSettings_ReturnsWarningsInMeta(t *testing.T) {
	svc := new(mockService)
	handler := NewHandler(svc)

	body := []byte(`{
		"royalty_bike_percent": 12,
		"royalty_moped_percent": 10,
		"ec_payment_fee_percent": 3.6,
		"split_linkus_percent": 50,
		"split_system_dev_percent": 35,
		"split_additional_one_percent": 10
	}`)

	svc.On("Update", mock.Anything, mock.MatchedBy(func(req UpdateSettingsRequest) bool {
		return req.SplitAdditionalOnePercent != nil && *req.SplitAdditionalOnePercent == 10
	})).Return(&UpdateResult{
		Settings:  storedFixture().Settings,
		UpdatedAt: time.Now(),
		Warnings:  []string{"split percentages sum to 95, expected 100"},
	}, nil)

	c, w := setupTestContext(http.MethodPut, "/api/v1/admin/royalty-settings", body)
	handler.UpdateSettings(c)

	require.Equal(t, http.StatusOK, w.Code)
	response := parseResponse(w)
	meta := response["meta"].(map[string]interface{})
	assert.Equal(t, []interface{}{"split percentages sum to 95, expected 100"}, meta["warnings"])
	svc.AssertExpectations(t)
}

func TestHandler_UpdateSettings_Errors(t *testing.T) {
	t.Run("malformed body", func(t *testing.T) {
		svc := new(mockService)
		c, w := setupTestContext(http.MethodPut, "/api/v1/admin/royalty-settings", []byte(`{"royalty_bike_percent": "twelve"}`))
		NewHandler(svc).UpdateSettings(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("validation error", func(t *testing.T) {
		svc := new(mockService)
		svc.On("Update", mock.Anything, mock.Anything).Return(nil, common.NewValidationError("royalty_bike_percent: royalty_bike_percent is required"))

		c, w := setupTestContext(http.MethodPut, "/api/v1/admin/royalty-settings", []byte(`{}`))
		NewHandler(svc).UpdateSettings(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		response := parseResponse(w)
		assert.Nil(t, response["meta"])
	})
}
