package location

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (*Location, error)
	List(ctx context.Context) ([]*Location, int, error)
}

type Service interface {
	GetByID(ctx context.Context, id string) (*Location, error)
	List(ctx context.Context) ([]*Location, int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id string) (*Location, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Location, int, error) {
	return s.repo.List(ctx)
}
