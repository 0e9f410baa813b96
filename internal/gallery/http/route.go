package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public photo endpoints.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	photos := g.Group("/photos")
	{
		photos.GET("/:id", h.Download)
		photos.GET("/:id/thumbnail", h.DownloadThumbnail)
	}

	// Listed under the car they belong to.
	g.GET("/cars/:id/photos", h.ListByCar)
}

// RegisterAdminRoutes mounts the staff-only photo management endpoints.
// Deleting a photo additionally requires the admin role.
func RegisterAdminRoutes(g *gin.RouterGroup, h *Handler, staffMiddleware, adminOnly gin.HandlerFunc) {
	group := g.Group("")

	group.Use(staffMiddleware)
	{
		group.POST("/cars/:id/photos", h.Upload)
		group.DELETE("/photos/:id", adminOnly, h.Delete)
	}
}
