package http

import (
	"github.com/greenwheel/ev-rental-backend/internal/car"
)

type CreateCarBody struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Type           string            `json:"type"`
	Range          string            `json:"range"`
	Seats          string            `json:"seats"`
	Storage        string            `json:"storage"`
	Price          string            `json:"price"`
	Description    string            `json:"description"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Images         []string          `json:"images"`
}

// UpdateCarBody is a partial car. Pointer fields distinguish "not provided"
// from an explicit empty value so the merge is a true shallow patch.
type UpdateCarBody struct {
	Name           *string            `json:"name"`
	Type           *string            `json:"type"`
	Range          *string            `json:"range"`
	Seats          *string            `json:"seats"`
	Storage        *string            `json:"storage"`
	Price          *string            `json:"price"`
	Href           *string            `json:"href"`
	Description    *string            `json:"description"`
	Features       *[]string          `json:"features"`
	Specifications *map[string]string `json:"specifications"`
	Images         *[]string          `json:"images"`
}

type CarResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Type           string            `json:"type"`
	Range          string            `json:"range"`
	Seats          string            `json:"seats"`
	Storage        string            `json:"storage"`
	Price          string            `json:"price"`
	Href           string            `json:"href"`
	Description    string            `json:"description,omitempty"`
	Features       []string          `json:"features,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Images         []string          `json:"images,omitempty"`
}

func NewCarResponse(c *car.Car) CarResponse {
	return CarResponse{
		ID:             c.ID,
		Name:           c.Name,
		Type:           c.Type,
		Range:          c.Range,
		Seats:          c.Seats,
		Storage:        c.Storage,
		Price:          c.Price,
		Href:           c.Href,
		Description:    c.Description,
		Features:       c.Features,
		Specifications: c.Specifications,
		Images:         c.Images,
	}
}
