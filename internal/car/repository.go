package car

import "context"

type Repository interface {
	Create(ctx context.Context, car *Car) error
	GetByID(ctx context.Context, id string) (*Car, error)
	List(ctx context.Context) ([]*Car, int, error)
	Update(ctx context.Context, car *Car) error
	Delete(ctx context.Context, id string) error
}
