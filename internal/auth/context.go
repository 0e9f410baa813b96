package auth

import "github.com/gin-gonic/gin"

// GetStaffID returns the authenticated staff account's ID or empty string.
func GetStaffID(c *gin.Context) string {
	return getString(c, "staffID")
}

// GetStaffRole returns the authenticated staff account's role or empty string.
func GetStaffRole(c *gin.Context) string {
	return getString(c, "staffRole")
}

func getString(c *gin.Context, key string) string {
	if v, ok := c.Get(key); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
