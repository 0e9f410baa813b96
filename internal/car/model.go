package car

import (
	"net/http"

	"github.com/greenwheel/ev-rental-backend/internal/pkg/apperror"
)

var ErrNotFound = apperror.New(http.StatusNotFound, "Car not found")

// ErrMissingField reports the first absent required field of a create payload.
func ErrMissingField(field string) *apperror.AppError {
	return apperror.New(http.StatusBadRequest, "Missing required field: "+field)
}

// Car is a catalog entry. The scalar fields are display strings straight from
// the marketing site ("210 km", "4 seats", "999k"), not parsed quantities.
type Car struct {
	ID             string
	Name           string
	Type           string
	Range          string
	Seats          string
	Storage        string
	Price          string
	Href           string
	Description    string
	Features       []string
	Specifications map[string]string
	Images         []string
}

// Clone returns a deep copy so callers can merge patches without touching
// the catalog entry.
func (c *Car) Clone() *Car {
	clone := *c
	if c.Features != nil {
		clone.Features = append([]string(nil), c.Features...)
	}
	if c.Images != nil {
		clone.Images = append([]string(nil), c.Images...)
	}
	if c.Specifications != nil {
		clone.Specifications = make(map[string]string, len(c.Specifications))
		for k, v := range c.Specifications {
			clone.Specifications[k] = v
		}
	}
	return &clone
}
