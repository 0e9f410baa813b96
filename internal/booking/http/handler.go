package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/greenwheel/ev-rental-backend/internal/booking"
	"github.com/greenwheel/ev-rental-backend/internal/pkg/request"
	"github.com/greenwheel/ev-rental-backend/internal/pkg/response"
)

const createdMessage = "Booking created successfully. We will contact you soon!"

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	filter := booking.Filter{
		Status: c.Query("status"),
		CarID:  c.Query("carId"),
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err, "Failed to fetch bookings")
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.List(items, total))
}

func (h *Handler) Create(c *gin.Context) {
	// A body that cannot be decoded at all is an unhandled error, not a
	// field-level validation failure.
	var body CreateBookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, err, "Failed to create booking")
		return
	}

	req := booking.CreateRequest{
		CarID:          body.CarID,
		FullName:       body.FullName,
		Phone:          body.Phone,
		StartDate:      body.StartDate,
		EndDate:        body.EndDate,
		PickupLocation: body.PickupLocation,
		Email:          body.Email,
		Notes:          body.Notes,
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, response.Created(NewBookingResponse(b), createdMessage))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{Success: false, Error: "invalid request"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err, "Failed to fetch booking")
		return
	}

	c.JSON(http.StatusOK, response.OK(NewBookingResponse(b)))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, response.Envelope{Success: false, Error: "invalid request"})
		return
	}

	var body UpdateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, booking.ErrInvalidStatus, "Failed to update booking")
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), uri.ID, body.Status)
	if err != nil {
		response.Error(c, err, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, response.OK(NewBookingResponse(b)))
}
