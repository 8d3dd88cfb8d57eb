package respond

import (
	"github.com/gin-gonic/gin"

	"ghostboard/internal/shared/telemetry"
)

// ErrorBody is the flat error object returned on every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

// Error sends a standardized error response.
func Error(c *gin.Context, status int, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorBody{Error: message})
}
