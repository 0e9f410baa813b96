package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the staff login endpoint.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/auth")
	{
		group.POST("/login", h.Login)
	}
}
