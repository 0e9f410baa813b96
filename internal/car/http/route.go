package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the car catalog endpoints. The write operations are
// mock-backed in demo mode but stay publicly reachable, matching the demo
// site's REST surface.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/cars")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
