package booking

import (
	"net/http"
	"time"

	"github.com/greenwheel/ev-rental-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "Booking not found")
	ErrPastStartDate = apperror.New(http.StatusBadRequest, "Start date cannot be in the past")
	ErrInvalidRange  = apperror.New(http.StatusBadRequest, "End date must be after start date")
	ErrInvalidStatus = apperror.New(http.StatusBadRequest, "Invalid booking status")
)

// ErrMissingField reports the first absent required field of a create payload.
func ErrMissingField(field string) *apperror.AppError {
	return apperror.New(http.StatusBadRequest, "Missing required field: "+field)
}

// DateLayout is the calendar-date format used for booking dates.
const DateLayout = "2006-01-02"

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known booking status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking is a confirmed rental request. In demo mode it lives only for the
// duration of the request that created it.
type Booking struct {
	ID             string
	CarID          string
	FullName       string
	Phone          string
	Email          string
	Notes          string
	StartDate      time.Time
	EndDate        time.Time
	PickupLocation string
	Status         Status
	TotalDays      int
	CreatedAt      time.Time
}

// Filter defines parameters for listing bookings. Matches are exact.
type Filter struct {
	Status string
	CarID  string
}

// TotalDays computes the rental length as the ceiling of the span between
// start and end in whole days.
func TotalDays(start, end time.Time) int {
	span := end.Sub(start)
	if span <= 0 {
		return 0
	}
	days := int(span / (24 * time.Hour))
	if span%(24*time.Hour) > 0 {
		days++
	}
	return days
}
