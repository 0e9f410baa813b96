package booking

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/greenwheel/ev-rental-backend/internal/pkg/apperror"
)

type CreateRequest struct {
	CarID          string
	FullName       string
	Phone          string
	StartDate      string
	EndDate        string
	PickupLocation string
	Email          string
	Notes          string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, status string) (*Booking, error)
}

type service struct {
	repo    Repository
	latency time.Duration
}

// NewService creates a booking service. A non-zero latency is waited out
// before each create so the frontend's loading states stay visible against
// the in-memory demo dataset; pass 0 to disable it.
func NewService(repo Repository, latency time.Duration) Service {
	return &service{
		repo:    repo,
		latency: latency,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// 1. Required fields, checked in a fixed order: the first missing one wins.
	required := []struct {
		name  string
		value string
	}{
		{"carId", req.CarID},
		{"fullName", req.FullName},
		{"phone", req.Phone},
		{"startDate", req.StartDate},
		{"endDate", req.EndDate},
		{"pickupLocation", req.PickupLocation},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, ErrMissingField(f.name)
		}
	}

	// 2. Parse calendar dates. A malformed date is not a validation failure
	// the user is told about field by field; it surfaces as the generic
	// creation error.
	start, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusInternalServerError, "Failed to create booking")
	}
	end, err := time.Parse(DateLayout, req.EndDate)
	if err != nil {
		return nil, apperror.Wrap(err, http.StatusInternalServerError, "Failed to create booking")
	}

	// 3. Semantic checks: start is today or later, end strictly after start.
	if start.Before(today()) {
		return nil, ErrPastStartDate
	}
	if !end.After(start) {
		return nil, ErrInvalidRange
	}

	// 4. Simulated upstream latency, demo mode only.
	if s.latency > 0 {
		select {
		case <-time.After(s.latency):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	now := time.Now().UTC()
	b := &Booking{
		ID:             fmt.Sprintf("booking_%d", now.UnixMilli()),
		CarID:          req.CarID,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Email:          req.Email,
		Notes:          req.Notes,
		StartDate:      start,
		EndDate:        end,
		PickupLocation: req.PickupLocation,
		Status:         StatusPending,
		TotalDays:      TotalDays(start, end),
		CreatedAt:      now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status string) (*Booking, error) {
	st := Status(status)
	if !st.Valid() {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.Status = st
	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// today returns the current calendar date at UTC midnight, the same zone
// the parsed booking dates carry.
func today() time.Time {
	y, m, d := time.Now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
