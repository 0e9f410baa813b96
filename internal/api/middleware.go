package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/greenwheel/ev-rental-backend/internal/auth"
	"github.com/greenwheel/ev-rental-backend/internal/pkg/response"
	"github.com/greenwheel/ev-rental-backend/internal/staff"
)

// RequestLogger attaches a per-request child logger tagged with a request id
// and emits one line per completed request.
func RequestLogger(logger *zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestLogger := logger.
			With().
			Str("requestId", uuid.New().String()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Logger()

		c.Set("logger", &requestLogger)

		c.Next()

		requestLogger.
			Info().
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request completed")
	}
}

// RequireAdmin restricts a route to staff accounts with the admin role.
// It must run after auth.StaffRequired.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.GetStaffRole(c) != staff.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.Envelope{
				Success: false,
				Error:   "admin role required",
			})
			return
		}
		c.Next()
	}
}
