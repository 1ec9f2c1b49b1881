package item

import (
	"context"
	"strings"
)

// Service is the catalog surface the rest of the system reads from.
type Service interface {
	GetByID(ctx context.Context, id int64) (*Item, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*Item, error)
	Search(ctx context.Context, text string) ([]*Item, error)
}

type service struct {
	repo Repository
}

// NewService creates a new item Service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetByID(ctx context.Context, id int64) (*Item, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByOwner(ctx context.Context, ownerID int64) ([]*Item, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *service) Search(ctx context.Context, text string) ([]*Item, error) {
	// Blank search text matches nothing rather than everything.
	if strings.TrimSpace(text) == "" {
		return []*Item{}, nil
	}
	return s.repo.Search(ctx, text)
}
