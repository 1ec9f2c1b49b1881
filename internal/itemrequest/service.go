package itemrequest

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"shareit/internal/pkg/clock"
	"shareit/internal/user"
)

type Service interface {
	Create(ctx context.Context, requesterID int64, description string) (*ItemRequest, error)
	Get(ctx context.Context, userID, requestID int64) (*ItemRequest, error)
	// ListOwn returns the caller's own requests, newest first.
	ListOwn(ctx context.Context, userID int64) ([]*ItemRequest, error)
	// ListOthers pages through requests posted by other users.
	ListOthers(ctx context.Context, userID int64, from, size int) ([]*ItemRequest, error)
}

type service struct {
	repo  Repository
	users user.Service
	clock clock.Clock
	log   zerolog.Logger
}

func NewService(repo Repository, users user.Service, clk clock.Clock, log zerolog.Logger) Service {
	return &service{
		repo:  repo,
		users: users,
		clock: clk,
		log:   log,
	}
}

func (s *service) Create(ctx context.Context, requesterID int64, description string) (*ItemRequest, error) {
	if _, err := s.users.GetByID(ctx, requesterID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(description) == "" {
		return nil, ErrBlankDescription
	}

	req := &ItemRequest{
		Description: description,
		RequesterID: requesterID,
		CreatedAt:   s.clock.Now(),
	}
	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("request_id", req.ID).
		Int64("requester_id", requesterID).
		Msg("item request created")

	return req, nil
}

func (s *service) Get(ctx context.Context, userID, requestID int64) (*ItemRequest, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, requestID)
}

func (s *service) ListOwn(ctx context.Context, userID int64) ([]*ItemRequest, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByRequester(ctx, userID)
}

func (s *service) ListOthers(ctx context.Context, userID int64, from, size int) ([]*ItemRequest, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if from < 0 || size <= 0 {
		return nil, ErrBadPaging
	}
	return s.repo.ListOthers(ctx, userID, from, size)
}
