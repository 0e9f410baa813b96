package staff

import (
	"context"

	"github.com/greenwheel/ev-rental-backend/internal/auth"
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*Staff, error)
}

type Service interface {
	// Authenticate verifies the credentials and returns the matching account.
	Authenticate(ctx context.Context, username, password string) (*Staff, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *service) Authenticate(ctx context.Context, username, password string) (*Staff, error) {
	acct, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		// Do not reveal whether the username exists.
		return nil, ErrInvalidCredentials
	}

	if err := s.hasher.Compare(acct.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return acct, nil
}
