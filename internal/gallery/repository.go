package gallery

import (
	"context"
	"sync"
)

type Repository interface {
	Create(ctx context.Context, photo *Photo) error
	GetByID(ctx context.Context, id string) (*Photo, error)
	ListByCar(ctx context.Context, carID string) ([]*Photo, error)
	Delete(ctx context.Context, id string) error
}

// memoryRepository keeps photo metadata in process memory. Unlike the demo
// catalog, uploads are real writes: the admin screens need to see what they
// just uploaded.
type memoryRepository struct {
	mu     sync.RWMutex
	photos map[string]*Photo
	order  []string
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		photos: make(map[string]*Photo),
	}
}

func (r *memoryRepository) Create(ctx context.Context, p *Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *p
	r.photos[p.ID] = &clone
	r.order = append(r.order, p.ID)
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*Photo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.photos[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *memoryRepository) ListByCar(ctx context.Context, carID string) ([]*Photo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Photo
	for _, id := range r.order {
		p := r.photos[id]
		if p == nil || p.CarID != carID {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.photos[id]; !ok {
		return ErrNotFound
	}
	delete(r.photos, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
