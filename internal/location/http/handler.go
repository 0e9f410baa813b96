package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenwheel/ev-rental-backend/internal/location"
	"github.com/greenwheel/ev-rental-backend/internal/pkg/request"
	"github.com/greenwheel/ev-rental-backend/internal/pkg/response"
)

type LocationResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	OpeningHours string `json:"openingHours"`
}

func NewLocationResponse(l *location.Location) LocationResponse {
	return LocationResponse{
		ID:           l.ID,
		Name:         l.Name,
		Address:      l.Address,
		City:         l.City,
		Phone:        l.Phone,
		OpeningHours: l.OpeningHours,
	}
}

type Handler struct {
	service location.Service
}

func NewHandler(service location.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	locations, total, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err, "Failed to fetch locations")
		return
	}

	items := make([]LocationResponse, len(locations))
	for i, l := range locations {
		items[i] = NewLocationResponse(l)
	}

	c.JSON(http.StatusOK, response.List(items, total))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{Success: false, Error: "invalid request"})
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err, "Failed to fetch location")
		return
	}

	c.JSON(http.StatusOK, response.OK(NewLocationResponse(l)))
}
