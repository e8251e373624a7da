package common

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/richxcame/motorent/pkg/logger"
	"go.uber.org/zap"
)

// DateLayout is the query-string date format used by report endpoints
const DateLayout = "2006-01-02"

// HandleServiceError handles service errors with consistent patterns.
// Returns true if an error was handled (and response was sent), false otherwise.
//
// Usage:
//
//	result, err := h.service.DoSomething(ctx, req)
//	if HandleServiceError(c, err, "failed to do something") {
//	    return
//	}
func HandleServiceError(c *gin.Context, err error, fallbackMessage string) bool {
	if err == nil {
		return false
	}

	if appErr, ok := AsAppError(err); ok {
		if appErr.Code >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request.Context(), fallbackMessage, zap.Error(err))
		}
		AppErrorResponse(c, appErr)
		return true
	}

	logger.ErrorContext(c.Request.Context(), fallbackMessage, zap.Error(err))
	ErrorResponse(c, http.StatusInternalServerError, fallbackMessage)
	return true
}

// ParseUUIDParam parses a UUID from a URL parameter.
// Returns the UUID and true on success, or sends an error response and returns false on failure.
func ParseUUIDParam(c *gin.Context, paramName, displayName string) (uuid.UUID, bool) {
	paramValue := c.Param(paramName)
	if paramValue == "" {
		ErrorResponse(c, http.StatusBadRequest, displayName+" is required")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(paramValue)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid "+displayName)
		return uuid.Nil, false
	}

	return id, true
}

// ParseUUIDQuery parses an optional UUID query parameter.
// A missing parameter yields nil and true.
func ParseUUIDQuery(c *gin.Context, paramName, displayName string) (*uuid.UUID, bool) {
	paramValue := c.Query(paramName)
	if paramValue == "" {
		return nil, true
	}

	id, err := uuid.Parse(paramValue)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid "+displayName)
		return nil, false
	}

	return &id, true
}

// ParseDateQuery parses a required YYYY-MM-DD query parameter in UTC.
func ParseDateQuery(c *gin.Context, paramName string) (time.Time, bool) {
	paramValue := c.Query(paramName)
	if paramValue == "" {
		ErrorResponse(c, http.StatusBadRequest, paramName+" is required")
		return time.Time{}, false
	}

	date, err := time.Parse(DateLayout, paramValue)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid "+paramName+", expected YYYY-MM-DD")
		return time.Time{}, false
	}

	return date, true
}

// BindJSON binds JSON request body and sends error response on failure.
// Returns true on success, false on failure (response already sent).
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}
