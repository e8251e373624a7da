package middleware

import (
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/richxcame/motorent/pkg/logger"
)

const (
	// RequestIDHeader is echoed on every response
	RequestIDHeader = "X-Request-ID"
	// CorrelationIDHeader is what the booking gateway forwards when it already
	// tracks the reservation flow under its own ID
	CorrelationIDHeader = "X-Correlation-ID"
)

// Opaque IDs from the booking gateway and reservation system, e.g. "rsv-20250503-7f3a"
var inboundIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._:-]{0,63}$`)

// CorrelationID tags each request with an ID that follows it into every
// settlement and pricing log line. An inbound X-Request-ID wins over
// X-Correlation-ID; anything unsafe to log is replaced by a fresh UUID.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := inboundID(c.GetHeader(RequestIDHeader))
		if id == "" {
			id = inboundID(c.GetHeader(CorrelationIDHeader))
		}
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(logger.CorrelationIDField, id)
		c.Request = c.Request.WithContext(logger.ContextWithCorrelationID(c.Request.Context(), id))
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}

func inboundID(raw string) string {
	raw = strings.TrimSpace(raw)
	if !inboundIDPattern.MatchString(raw) {
		return ""
	}
	return raw
}
