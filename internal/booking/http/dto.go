package http

import (
	"time"

	"github.com/greenwheel/ev-rental-backend/internal/booking"
)

// CreateBookingBody mirrors the booking form payload. Field presence is
// validated by the service so the client gets the exact missing-field
// message, not the binding library's wording.
type CreateBookingBody struct {
	CarID          string `json:"carId"`
	FullName       string `json:"fullName"`
	Phone          string `json:"phone"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	PickupLocation string `json:"pickupLocation"`
	Email          string `json:"email"`
	Notes          string `json:"notes"`
}

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required"`
}

type BookingResponse struct {
	ID             string    `json:"id"`
	CarID          string    `json:"carId"`
	FullName       string    `json:"fullName"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	PickupLocation string    `json:"pickupLocation"`
	Status         string    `json:"status"`
	TotalDays      int       `json:"totalDays"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:             b.ID,
		CarID:          b.CarID,
		FullName:       b.FullName,
		Phone:          b.Phone,
		Email:          b.Email,
		Notes:          b.Notes,
		StartDate:      b.StartDate.Format(booking.DateLayout),
		EndDate:        b.EndDate.Format(booking.DateLayout),
		PickupLocation: b.PickupLocation,
		Status:         string(b.Status),
		TotalDays:      b.TotalDays,
		CreatedAt:      b.CreatedAt,
	}
}
