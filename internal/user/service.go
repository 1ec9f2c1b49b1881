package user

import "context"

// Service defines the read-only user directory consumed by the
// booking core and the item-request module.
type Service interface {
	GetByID(ctx context.Context, id int64) (*User, error)
}

type service struct {
	repo Repository
}

// NewService creates a new user Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
