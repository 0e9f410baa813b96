package booking

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenwheel/ev-rental-backend/internal/pkg/apperror"
)

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format(DateLayout)
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		CarID:          "vf3",
		FullName:       "Tran Thi B",
		Phone:          "0912345678",
		StartDate:      futureDate(3),
		EndDate:        futureDate(5),
		PickupLocation: "District 1 Showroom",
	}
}

func TestServiceCreateMissingFields(t *testing.T) {
	svc := NewService(NewDemoRepository(), 0)

	cases := []struct {
		field  string
		mutate func(*CreateRequest)
	}{
		{"carId", func(r *CreateRequest) { r.CarID = "" }},
		{"fullName", func(r *CreateRequest) { r.FullName = "" }},
		{"phone", func(r *CreateRequest) { r.Phone = "" }},
		{"startDate", func(r *CreateRequest) { r.StartDate = "" }},
		{"endDate", func(r *CreateRequest) { r.EndDate = "" }},
		{"pickupLocation", func(r *CreateRequest) { r.PickupLocation = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			req := validCreateRequest()
			tc.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			require.Error(t, err)

			appErr, ok := err.(*apperror.AppError)
			require.True(t, ok)
			assert.Equal(t, 400, appErr.Code)
			assert.Equal(t, "Missing required field: "+tc.field, appErr.Message)
		})
	}
}

func TestServiceCreateFirstMissingFieldWins(t *testing.T) {
	svc := NewService(NewDemoRepository(), 0)

	req := validCreateRequest()
	req.CarID = ""
	req.Phone = ""

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, "Missing required field: carId", err.Error())
}

func TestServiceCreateDateValidation(t *testing.T) {
	svc := NewService(NewDemoRepository(), 0)

	t.Run("start date in the past", func(t *testing.T) {
		req := validCreateRequest()
		req.StartDate = futureDate(-1)

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrPastStartDate)
	})

	t.Run("start date today is allowed", func(t *testing.T) {
		req := validCreateRequest()
		req.StartDate = futureDate(0)
		req.EndDate = futureDate(2)

		_, err := svc.Create(context.Background(), req)
		assert.NoError(t, err)
	})

	t.Run("end date equal to start date", func(t *testing.T) {
		req := validCreateRequest()
		req.EndDate = req.StartDate

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("end date before start date", func(t *testing.T) {
		req := validCreateRequest()
		req.StartDate = futureDate(5)
		req.EndDate = futureDate(3)

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("malformed date is a generic failure", func(t *testing.T) {
		req := validCreateRequest()
		req.StartDate = "10/01/2030"

		_, err := svc.Create(context.Background(), req)
		require.Error(t, err)

		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, 500, appErr.Code)
		assert.Equal(t, "Failed to create booking", appErr.Message)
	})
}

func TestServiceCreateSuccess(t *testing.T) {
	svc := NewService(NewDemoRepository(), 0)

	req := validCreateRequest()
	req.Email = "tranthib@example.com"
	req.Notes = "pick up after lunch"

	b, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(b.ID, "booking_"), "id should be synthesized from the timestamp, got %q", b.ID)
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, 2, b.TotalDays)
	assert.Equal(t, req.CarID, b.CarID)
	assert.Equal(t, req.Email, b.Email)
	assert.Equal(t, req.Notes, b.Notes)
	assert.False(t, b.CreatedAt.IsZero())
	assert.Equal(t, req.StartDate, b.StartDate.Format(DateLayout))
	assert.Equal(t, req.EndDate, b.EndDate.Format(DateLayout))
}

func TestServiceCreateLatencyIsCancellable(t *testing.T) {
	svc := NewService(NewDemoRepository(), 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Create(ctx, validCreateRequest())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestServiceUpdateStatus(t *testing.T) {
	svc := NewService(NewDemoRepository(), 0)
	ctx := context.Background()

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "booking_demo_1", "done")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.UpdateStatus(ctx, "booking_nope", "cancelled")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("valid transition returns updated copy", func(t *testing.T) {
		b, err := svc.UpdateStatus(ctx, "booking_demo_1", "cancelled")
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, b.Status)

		// Demo dataset stays untouched.
		fresh, err := svc.GetByID(ctx, "booking_demo_1")
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, fresh.Status)
	})
}

func ExampleTotalDays() {
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
	fmt.Println(TotalDays(start, end))
	// Output: 2
}
