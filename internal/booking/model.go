package booking

import (
	"net/http"
	"strings"
	"time"

	"shareit/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidID       = apperror.New(http.StatusBadRequest, "invalid booking id")
	ErrInvalidRange    = apperror.New(http.StatusBadRequest, "invalid booking period")
	ErrItemUnavailable = apperror.New(http.StatusBadRequest, "item is not available for booking")
	ErrAlreadyDecided  = apperror.New(http.StatusBadRequest, "booking is already in the requested status")
	ErrBadTransition   = apperror.New(http.StatusBadRequest, "status transition not allowed")

	// ErrBadDecision signals an approval token that is neither "true"
	// nor "false". The transport layer guarantees the parameter is
	// present, so reaching this is a caller contract bug, not bad data.
	ErrBadDecision = apperror.New(http.StatusInternalServerError, "unrecognized approval decision")
)

// Status is the lifecycle state of a booking.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	// StatusCanceled is reserved; no operation produces it yet.
	StatusCanceled Status = "CANCELED"
)

// transitions is the closed set of permitted status changes. An owner
// may overturn an earlier decision, so APPROVED and REJECTED flip into
// each other; only re-issuing the same decision is refused.
var transitions = map[Status][]Status{
	StatusWaiting:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusRejected},
	StatusRejected: {StatusApproved},
}

// Booking reserves an item for a time window. Item and booker are
// referenced by id; the names are denormalized for view shaping only.
type Booking struct {
	ID          int64
	ItemID      int64
	ItemName    string
	ItemOwnerID int64
	BookerID    int64
	BookerName  string
	Start       time.Time
	End         time.Time
	Status      Status
}

// State is a query-time category of bookings, computed against "now";
// it never mutates records.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT" // start <= now <= end
	StatePast     State = "PAST"    // end < now
	StateFuture   State = "FUTURE"  // start > now
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// ParseState resolves a state token case-insensitively. An unknown
// token yields a 400 naming the token verbatim.
func ParseState(token string) (State, error) {
	switch s := State(strings.ToUpper(token)); s {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return s, nil
	default:
		return "", apperror.BadRequest("Unknown state: " + token)
	}
}
