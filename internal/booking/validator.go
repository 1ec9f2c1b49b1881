package booking

import (
	"time"

	"shareit/internal/item"
)

// Pure validation helpers. None of them touch storage; the service
// runs them before any write.

// ValidateWindow checks a requested reservation window against now.
// Both bounds must be present, strictly ordered and strictly in the
// future.
func ValidateWindow(start, end, now time.Time) error {
	if start.IsZero() || end.IsZero() {
		return ErrInvalidRange
	}
	if start.Equal(end) {
		return ErrInvalidRange
	}
	if start.After(end) {
		return ErrInvalidRange
	}
	if !start.After(now) {
		return ErrInvalidRange
	}
	if !end.After(now) {
		return ErrInvalidRange
	}
	return nil
}

// ValidateCreation runs all pre-persist checks for a new booking.
// A requester booking their own item gets a not-found answer so the
// response does not confirm ownership.
func ValidateCreation(it *item.Item, requesterID int64, start, end, now time.Time) error {
	if err := ValidateWindow(start, end, now); err != nil {
		return err
	}
	if !it.Available {
		return ErrItemUnavailable
	}
	if it.OwnerID == requesterID {
		return item.ErrNotFound
	}
	return nil
}

// ValidateOwner checks that the actor owns the booked item. Non-owners
// get a not-found answer rather than a forbidden one.
func ValidateOwner(actorID int64, b *Booking) error {
	if actorID != b.ItemOwnerID {
		return ErrNotFound
	}
	return nil
}

// DecisionTarget maps an approval token to the status it implies.
// Only the literal tokens "true" and "false" are recognized; anything
// else is a protocol fault.
func DecisionTarget(approved string) (Status, error) {
	switch approved {
	case "true":
		return StatusApproved, nil
	case "false":
		return StatusRejected, nil
	default:
		return "", ErrBadDecision
	}
}

// ValidateTransition checks the target status against the transition
// table for the booking's current status.
func ValidateTransition(current, target Status) error {
	if current == target {
		return ErrAlreadyDecided
	}
	for _, allowed := range transitions[current] {
		if allowed == target {
			return nil
		}
	}
	return ErrBadTransition
}
