package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"shareit/internal/item"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/metrics"
	"shareit/internal/user"
)

// Service orchestrates the booking lifecycle: it is the only writer of
// booking records. Users and items are resolved through their services
// and treated as read-only collaborators.
type Service interface {
	Create(ctx context.Context, requesterID, itemID int64, start, end time.Time) (*Booking, error)
	Decide(ctx context.Context, actorID, bookingID int64, approved string) (*Booking, error)
	Get(ctx context.Context, actorID, bookingID int64) (*Booking, error)
	ListForBooker(ctx context.Context, userID int64, state State) ([]*Booking, error)
	ListForOwner(ctx context.Context, userID int64, state State) ([]*Booking, error)
}

type service struct {
	repo  Repository
	users user.Service
	items item.Service
	clock clock.Clock
	log   zerolog.Logger
}

func NewService(repo Repository, users user.Service, items item.Service, clk clock.Clock, log zerolog.Logger) Service {
	return &service{
		repo:  repo,
		users: users,
		items: items,
		clock: clk,
		log:   log,
	}
}

func (s *service) Create(ctx context.Context, requesterID, itemID int64, start, end time.Time) (*Booking, error) {
	requester, err := s.users.GetByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	// A missing item reference is indistinguishable from an unknown one.
	if itemID == 0 {
		return nil, item.ErrNotFound
	}
	it, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if err := ValidateCreation(it, requesterID, start, end, s.clock.Now()); err != nil {
		return nil, err
	}

	b := &Booking{
		ItemID:      it.ID,
		ItemName:    it.Name,
		ItemOwnerID: it.OwnerID,
		BookerID:    requester.ID,
		BookerName:  requester.Name,
		Start:       start,
		End:         end,
		Status:      StatusWaiting,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("booking_id", b.ID).
		Int64("item_id", b.ItemID).
		Int64("booker_id", b.BookerID).
		Time("start", b.Start).
		Time("end", b.End).
		Msg("booking created")

	return b, nil
}

func (s *service) Decide(ctx context.Context, actorID, bookingID int64, approved string) (*Booking, error) {
	if _, err := s.users.GetByID(ctx, actorID); err != nil {
		return nil, err
	}

	b, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := ValidateOwner(actorID, b); err != nil {
		return nil, err
	}

	target, err := DecisionTarget(approved)
	if err != nil {
		return nil, err
	}
	if err := ValidateTransition(b.Status, target); err != nil {
		return nil, err
	}

	// Conditional on the status we just observed; a concurrent decision
	// makes this fail instead of overwriting it.
	if err := s.repo.UpdateStatus(ctx, b.ID, b.Status, target); err != nil {
		return nil, err
	}
	b.Status = target

	metrics.IncBookingDecision(string(target))
	s.log.Info().
		Int64("booking_id", b.ID).
		Int64("owner_id", actorID).
		Str("status", string(target)).
		Msg("booking decided")

	return b, nil
}

func (s *service) Get(ctx context.Context, actorID, bookingID int64) (*Booking, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	b, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	// Only the booker and the item owner may see a booking; everyone
	// else learns nothing beyond "not found".
	if actor.ID != b.BookerID && actor.ID != b.ItemOwnerID {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *service) ListForBooker(ctx context.Context, userID int64, state State) ([]*Booking, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByBooker(ctx, userID, state, s.clock.Now())
}

func (s *service) ListForOwner(ctx context.Context, userID int64, state State) ([]*Booking, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByOwner(ctx, userID, state, s.clock.Now())
}

func (s *service) findBooking(ctx context.Context, bookingID int64) (*Booking, error) {
	if bookingID == 0 {
		return nil, ErrInvalidID
	}
	return s.repo.GetByID(ctx, bookingID)
}
