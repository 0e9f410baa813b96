package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenwheel/ev-rental-backend/internal/car"
	"github.com/greenwheel/ev-rental-backend/internal/pkg/request"
	"github.com/greenwheel/ev-rental-backend/internal/pkg/response"
)

type Handler struct {
	service car.Service
}

func NewHandler(service car.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	cars, total, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err, "Failed to fetch cars")
		return
	}

	items := make([]CarResponse, len(cars))
	for i, entry := range cars {
		items[i] = NewCarResponse(entry)
	}

	c.JSON(http.StatusOK, response.List(items, total))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{Success: false, Error: "invalid request"})
		return
	}

	entry, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err, "Failed to fetch car")
		return
	}

	c.JSON(http.StatusOK, response.OK(NewCarResponse(entry)))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateCarBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, err, "Failed to create car")
		return
	}

	req := car.CreateRequest{
		ID:             body.ID,
		Name:           body.Name,
		Type:           body.Type,
		Range:          body.Range,
		Seats:          body.Seats,
		Storage:        body.Storage,
		Price:          body.Price,
		Description:    body.Description,
		Features:       body.Features,
		Specifications: body.Specifications,
		Images:         body.Images,
	}

	entry, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err, "Failed to create car")
		return
	}

	c.JSON(http.StatusCreated, response.Created(NewCarResponse(entry), "Car created successfully"))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{Success: false, Error: "invalid request"})
		return
	}

	var body UpdateCarBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, err, "Failed to update car")
		return
	}

	req := car.UpdateRequest{
		Name:           body.Name,
		Type:           body.Type,
		Range:          body.Range,
		Seats:          body.Seats,
		Storage:        body.Storage,
		Price:          body.Price,
		Href:           body.Href,
		Description:    body.Description,
		Features:       body.Features,
		Specifications: body.Specifications,
		Images:         body.Images,
	}

	entry, err := h.service.Update(c.Request.Context(), uri.ID, req)
	if err != nil {
		response.Error(c, err, "Failed to update car")
		return
	}

	c.JSON(http.StatusOK, response.OK(NewCarResponse(entry)))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{Success: false, Error: "invalid request"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err, "Failed to delete car")
		return
	}

	c.JSON(http.StatusOK, response.Deleted("Car deleted successfully"))
}
