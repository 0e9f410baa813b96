package booking

import (
	"context"
	"time"
)

// demoRepository serves the fixed showcase dataset. It honors the demo-site
// write contract: created or updated records are handed back to the caller
// but the underlying list is never changed, so every request observes the
// same data.
type demoRepository struct {
	bookings []*Booking
}

// NewDemoRepository creates the in-memory booking repository seeded with the
// showcase dataset.
func NewDemoRepository() Repository {
	return &demoRepository{
		bookings: demoBookings(),
	}
}

func demoBookings() []*Booking {
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)

	return []*Booking{
		{
			ID:             "booking_demo_1",
			CarID:          "vf3",
			FullName:       "Nguyen Van A",
			Phone:          "0901234567",
			Email:          "nguyenvana@example.com",
			StartDate:      start,
			EndDate:        end,
			PickupLocation: "District 1 Showroom",
			Status:         StatusConfirmed,
			TotalDays:      TotalDays(start, end),
			CreatedAt:      time.Date(2025, 1, 8, 9, 30, 0, 0, time.UTC),
		},
	}
}

func (r *demoRepository) Create(ctx context.Context, b *Booking) error {
	// Demo contract: the record is acknowledged but not retained.
	return nil
}

func (r *demoRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	for _, b := range r.bookings {
		if b.ID == id {
			clone := *b
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *demoRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	var out []*Booking
	for _, b := range r.bookings {
		if filter.Status != "" && string(b.Status) != filter.Status {
			continue
		}
		if filter.CarID != "" && b.CarID != filter.CarID {
			continue
		}
		clone := *b
		out = append(out, &clone)
	}
	return out, len(out), nil
}

func (r *demoRepository) Update(ctx context.Context, b *Booking) error {
	// Existence check only; the dataset itself stays untouched.
	for _, existing := range r.bookings {
		if existing.ID == b.ID {
			return nil
		}
	}
	return ErrNotFound
}
