package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/greenwheel/ev-rental-backend/internal/pkg/response"
)

// StaffRequired is a Gin middleware that validates a JWT from
// Authorization: Bearer <token> and stores the staff identity in the context.
// Only the admin surface uses it; the public catalog and booking endpoints
// stay open.
func StaffRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Envelope{
				Success: false,
				Error:   "missing Authorization header",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Envelope{
				Success: false,
				Error:   "invalid Authorization header format",
			})
			return
		}

		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Envelope{
				Success: false,
				Error:   "invalid or expired token",
			})
			return
		}

		// Store staff info into Gin context for later handlers.
		c.Set("staffID", claims.StaffID)
		c.Set("staffUsername", claims.Username)
		c.Set("staffRole", claims.Role)

		c.Next()
	}
}
