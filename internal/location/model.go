package location

import (
	"net/http"

	"github.com/greenwheel/ev-rental-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "Location not found")

// Location is a showroom customers can pick a car up from. The booking form
// offers these as suggestions; the booking itself stores a free-form string.
type Location struct {
	ID           string
	Name         string
	Address      string
	City         string
	Phone        string
	OpeningHours string
}
