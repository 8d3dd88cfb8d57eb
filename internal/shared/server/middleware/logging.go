package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"ghostboard/internal/shared/metrics"
	"ghostboard/internal/shared/telemetry"
)

const demoModeKey = "demoMode"

// MarkDemoMode records on the request context that the response was served
// from the fallback dataset.
func MarkDemoMode(c *gin.Context) {
	c.Set(demoModeKey, true)
}

// Logging emits a structured log per request and feeds the duration histogram.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)
		durationMs := float64(latency.Microseconds()) / 1000.0
		metrics.ObserveRequestDurationMs(durationMs)

		demoMode := false
		if raw, ok := c.Get(demoModeKey); ok {
			if b, ok := raw.(bool); ok {
				demoMode = b
			}
		}

		telemetry.Info("request.complete", map[string]any{
			"request_id":  RequestIDFromContext(c),
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": durationMs,
			"demo_mode":   demoMode,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		})
	}
}
