package car

import (
	"context"
	"fmt"
	"time"

	"github.com/greenwheel/ev-rental-backend/internal/cache"
)

const (
	listCacheKey = "cars:all"
	listCacheTTL = 5 * time.Minute
)

type CreateRequest struct {
	ID             string // optional, generated when empty
	Name           string
	Type           string
	Range          string
	Seats          string
	Storage        string
	Price          string
	Description    string
	Features       []string
	Specifications map[string]string
	Images         []string
}

type UpdateRequest struct {
	Name           *string
	Type           *string
	Range          *string
	Seats          *string
	Storage        *string
	Price          *string
	Href           *string
	Description    *string
	Features       *[]string
	Specifications *map[string]string
	Images         *[]string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Car, error)
	GetByID(ctx context.Context, id string) (*Car, error)
	List(ctx context.Context) ([]*Car, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Car, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo  Repository
	cache *cache.Cache
}

// NewService creates a car catalog service. cache may be nil, in which case
// listing always hits the repository.
func NewService(repo Repository, c *cache.Cache) Service {
	return &service{
		repo:  repo,
		cache: c,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Car, error) {
	required := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"type", req.Type},
		{"range", req.Range},
		{"seats", req.Seats},
		{"storage", req.Storage},
		{"price", req.Price},
	}
	for _, f := range required {
		if f.value == "" {
			return nil, ErrMissingField(f.name)
		}
	}

	id := req.ID
	if id == "" {
		id = fmt.Sprintf("car_%d", time.Now().UnixMilli())
	}

	c := &Car{
		ID:             id,
		Name:           req.Name,
		Type:           req.Type,
		Range:          req.Range,
		Seats:          req.Seats,
		Storage:        req.Storage,
		Price:          req.Price,
		Href:           "/cars/" + id,
		Description:    req.Description,
		Features:       req.Features,
		Specifications: req.Specifications,
		Images:         req.Images,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.cache.Del(ctx, listCacheKey)
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Car, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Car, int, error) {
	var cached []*Car
	if s.cache.GetJSON(ctx, listCacheKey, &cached) {
		return cached, len(cached), nil
	}

	cars, total, err := s.repo.List(ctx)
	if err != nil {
		return nil, 0, err
	}

	s.cache.SetJSON(ctx, listCacheKey, cars, listCacheTTL)
	return cars, total, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Car, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Shallow merge: the patch wins on every field it sets.
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Type != nil {
		c.Type = *req.Type
	}
	if req.Range != nil {
		c.Range = *req.Range
	}
	if req.Seats != nil {
		c.Seats = *req.Seats
	}
	if req.Storage != nil {
		c.Storage = *req.Storage
	}
	if req.Price != nil {
		c.Price = *req.Price
	}
	if req.Href != nil {
		c.Href = *req.Href
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Features != nil {
		c.Features = *req.Features
	}
	if req.Specifications != nil {
		c.Specifications = *req.Specifications
	}
	if req.Images != nil {
		c.Images = *req.Images
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	s.cache.Del(ctx, listCacheKey)
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Del(ctx, listCacheKey)
	return nil
}
