package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the read-only pickup location endpoints.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/locations")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}
}
