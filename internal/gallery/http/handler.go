package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenwheel/ev-rental-backend/internal/car"
	"github.com/greenwheel/ev-rental-backend/internal/gallery"
	"github.com/greenwheel/ev-rental-backend/internal/pkg/request"
	"github.com/greenwheel/ev-rental-backend/internal/pkg/response"
)

type PhotoResponse struct {
	ID           string `json:"id"`
	CarID        string `json:"carId"`
	Filename     string `json:"filename"`
	ContentType  string `json:"contentType"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
}

func NewPhotoResponse(p *gallery.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		CarID:       p.CarID,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		URL:         gallery.PhotoURL(p.ID),
	}
	if p.ThumbnailPath != nil {
		resp.ThumbnailURL = gallery.ThumbnailURL(p.ID)
	}
	return resp
}

type Handler struct {
	service    gallery.Service
	carService car.Service
}

func NewHandler(service gallery.Service, carService car.Service) *Handler {
	return &Handler{
		service:    service,
		carService: carService,
	}
}

func (h *Handler) Upload(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{Success: false, Error: "invalid request"})
		return
	}
	carID := uri.ID

	// The photo must belong to a known catalog entry.
	if _, err := h.carService.GetByID(c.Request.Context(), carID); err != nil {
		response.Error(c, err, "Failed to upload photo")
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{Success: false, Error: "Missing required field: file"})
		return
	}

	p, err := h.service.Upload(c.Request.Context(), carID, header)
	if err != nil {
		response.Error(c, err, "Failed to upload photo")
		return
	}

	c.JSON(http.StatusCreated, response.Created(NewPhotoResponse(p), "Photo uploaded successfully"))
}

func (h *Handler) ListByCar(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{Success: false, Error: "invalid request"})
		return
	}

	photos, err := h.service.ListByCar(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err, "Failed to fetch photos")
		return
	}

	items := make([]PhotoResponse, len(photos))
	for i, p := range photos {
		items[i] = NewPhotoResponse(p)
	}

	c.JSON(http.StatusOK, response.List(items, len(items)))
}

func (h *Handler) Download(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{Success: false, Error: "invalid request"})
		return
	}

	stream, p, err := h.service.Download(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err, "Failed to fetch photo")
		return
	}
	defer stream.Close()

	c.DataFromReader(http.StatusOK, p.Size, p.ContentType, stream, nil)
}

func (h *Handler) DownloadThumbnail(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{Success: false, Error: "invalid request"})
		return
	}

	stream, _, err := h.service.DownloadThumbnail(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err, "Failed to fetch thumbnail")
		return
	}
	defer stream.Close()

	// Thumbnails are always re-encoded JPEGs of unknown length.
	c.DataFromReader(http.StatusOK, -1, "image/jpeg", stream, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{Success: false, Error: "invalid request"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err, "Failed to delete photo")
		return
	}

	c.JSON(http.StatusOK, response.Deleted("Photo deleted successfully"))
}
