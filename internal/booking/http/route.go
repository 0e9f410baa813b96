package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public booking endpoints.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/bookings")
	{
		group.GET("", h.List)
		group.POST("", h.Create)
	}
}

// RegisterAdminRoutes mounts the staff-only booking endpoints.
func RegisterAdminRoutes(g *gin.RouterGroup, h *Handler, staffMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	group.Use(staffMiddleware)
	{
		group.GET("/:id", h.Get)
		group.PATCH("/:id/status", h.UpdateStatus)
	}
}
