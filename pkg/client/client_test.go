package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenwheel/ev-rental-backend/pkg/client"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return client.New(srv.URL, client.WithHTTPClient(srv.Client()))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestListCars(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cars", r.URL.Path)
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": []map[string]any{
				{"id": "vf3", "name": "VF 3", "price": "590k", "href": "/cars/vf3"},
				{"id": "vf5", "name": "VF 5", "price": "790k", "href": "/cars/vf5"},
			},
			"total": 2,
		})
	})

	cars, err := c.ListCars(context.Background())
	require.NoError(t, err)
	require.Len(t, cars, 2)
	assert.Equal(t, "VF 3", cars[0].Name)
	assert.Equal(t, "/cars/vf3", cars[0].Href)
}

func TestGetCarNotFound(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{
			"success": false,
			"error":   "Car not found",
		})
	})

	_, err := c.GetCar(context.Background(), "nonexistent")
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Car not found", apiErr.Message)
	assert.Equal(t, "Car not found", apiErr.Error())
}

func TestListBookingsFilters(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "confirmed", r.URL.Query().Get("status"))
		assert.Equal(t, "vf3", r.URL.Query().Get("carId"))
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": []map[string]any{
				{"id": "booking_demo_1", "carId": "vf3", "status": "confirmed", "totalDays": 2},
			},
			"total": 1,
		})
	})

	bookings, err := c.ListBookings(context.Background(), client.BookingFilter{Status: "confirmed", CarID: "vf3"})
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "confirmed", bookings[0].Status)
	assert.Equal(t, 2, bookings[0].TotalDays)
}

func TestCreateBooking(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req client.CreateBookingRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "vf3", req.CarID)
		assert.Equal(t, "Tran Thi B", req.FullName)

		writeJSON(w, http.StatusCreated, map[string]any{
			"success": true,
			"data": map[string]any{
				"id":        "booking_1736500000000",
				"carId":     req.CarID,
				"fullName":  req.FullName,
				"status":    "pending",
				"totalDays": 2,
			},
			"message": "Booking created successfully. We will contact you soon!",
		})
	})

	b, err := c.CreateBooking(context.Background(), client.CreateBookingRequest{
		CarID:          "vf3",
		FullName:       "Tran Thi B",
		Phone:          "0912345678",
		StartDate:      "2026-09-10",
		EndDate:        "2026-09-12",
		PickupLocation: "District 1 Showroom",
	})
	require.NoError(t, err)
	assert.Equal(t, "booking_1736500000000", b.ID)
	assert.Equal(t, "pending", b.Status)
}

func TestCreateBookingValidationError(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "Missing required field: fullName",
		})
	})

	_, err := c.CreateBooking(context.Background(), client.CreateBookingRequest{CarID: "vf3"})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Missing required field: fullName", apiErr.Message)
}

func TestFailureWithoutErrorMessage(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"success": false})
	})

	_, err := c.ListLocations(context.Background())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), apiErr.Message)
}

func TestNonJSONResponse(t *testing.T) {
	c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	})

	_, err := c.ListCars(context.Background())
	require.Error(t, err)

	var apiErr *client.APIError
	assert.NotErrorAs(t, err, &apiErr)
}
