// Package client is the Go API client for the rental backend. It pairs a
// plain HTTP client with a Fetcher that tracks loading/data/error state the
// way the site's UI consumes it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// APIError is a failure envelope returned by the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Car mirrors the catalog entry JSON.
type Car struct {
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

// Booking mirrors the booking JSON.
type Booking struct {
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

// Location mirrors the pickup location JSON.
type Location struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Phone        string `json:"phone"`
	OpeningHours string `json:"openingHours"`
}

// CreateBookingRequest is the booking form payload.
type CreateBookingRequest struct {
	CarID          string `json:"carId"`
	FullName       string `json:"fullName"`
	Phone          string `json:"phone"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
	PickupLocation string `json:"pickupLocation"`
	Email          string `json:"email,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// BookingFilter narrows ListBookings results.
type BookingFilter struct {
	Status string
	CarID  string
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Total   *int            `json:"total"`
}

// Client talks to the rental backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the API served at baseURL (e.g.
// "https://api.example.com/v1").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListCars fetches the full catalog.
func (c *Client) ListCars(ctx context.Context) ([]Car, error) {
	var cars []Car
	if err := c.do(ctx, http.MethodGet, "/cars", nil, &cars); err != nil {
		return nil, err
	}
	return cars, nil
}

// GetCar fetches one catalog entry by id.
func (c *Client) GetCar(ctx context.Context, id string) (*Car, error) {
	var car Car
	if err := c.do(ctx, http.MethodGet, "/cars/"+url.PathEscape(id), nil, &car); err != nil {
		return nil, err
	}
	return &car, nil
}

// ListBookings fetches bookings, optionally filtered by status and car.
func (c *Client) ListBookings(ctx context.Context, filter BookingFilter) ([]Booking, error) {
	path := "/bookings"
	q := url.Values{}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.CarID != "" {
		q.Set("carId", filter.CarID)
	}
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var bookings []Booking
	if err := c.do(ctx, http.MethodGet, path, nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// CreateBooking submits the booking form.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	var booking Booking
	if err := c.do(ctx, http.MethodPost, "/bookings", req, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// ListLocations fetches the pickup locations.
func (c *Client) ListLocations(ctx context.Context) ([]Location, error) {
	var locations []Location
	if err := c.do(ctx, http.MethodGet, "/locations", nil, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	if dest != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, dest); err != nil {
			return fmt.Errorf("decode response data: %w", err)
		}
	}

	return nil
}
