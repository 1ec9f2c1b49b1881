package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shareit/internal/booking"
	"shareit/internal/identity"
)

// stubService returns canned results so handler tests pin only the
// transport behavior: status mapping, JSON shape, token handling.
type stubService struct {
	booking *booking.Booking
	err     error

	gotState    booking.State
	gotApproved string
}

func (s *stubService) Create(context.Context, int64, int64, time.Time, time.Time) (*booking.Booking, error) {
	return s.booking, s.err
}

func (s *stubService) Decide(_ context.Context, _ int64, _ int64, approved string) (*booking.Booking, error) {
	s.gotApproved = approved
	return s.booking, s.err
}

func (s *stubService) Get(context.Context, int64, int64) (*booking.Booking, error) {
	return s.booking, s.err
}

func (s *stubService) ListForBooker(_ context.Context, _ int64, state booking.State) ([]*booking.Booking, error) {
	s.gotState = state
	if s.err != nil {
		return nil, s.err
	}
	return []*booking.Booking{s.booking}, nil
}

func (s *stubService) ListForOwner(_ context.Context, _ int64, state booking.State) ([]*booking.Booking, error) {
	return s.ListForBooker(nil, 0, state)
}

func newTestRouter(svc booking.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group(""), NewHandler(svc), identity.Required())
	return r
}

func perform(r *gin.Engine, method, path, body string, userID string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(identity.Header, userID)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleBooking() *booking.Booking {
	return &booking.Booking{
		ID:          7,
		ItemID:      1,
		ItemName:    "drill",
		ItemOwnerID: 10,
		BookerID:    20,
		BookerName:  "booker",
		Start:       time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
		End:         time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC),
		Status:      booking.StatusWaiting,
	}
}

func TestIdentityHeaderRequired(t *testing.T) {
	r := newTestRouter(&stubService{booking: sampleBooking()})

	t.Run("missing header", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/bookings", "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-numeric header", func(t *testing.T) {
		w := perform(r, http.MethodGet, "/bookings", "", "abc")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCreateBooking(t *testing.T) {
	t.Run("returns the booking view", func(t *testing.T) {
		r := newTestRouter(&stubService{booking: sampleBooking()})
		body := `{"itemId":1,"start":"2026-04-01T10:00:00","end":"2026-04-01T12:00:00"}`

		w := perform(r, http.MethodPost, "/bookings", body, "20")
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.EqualValues(t, 7, resp["id"])
		assert.Equal(t, "2026-04-01T10:00:00", resp["start"])
		assert.Equal(t, "2026-04-01T12:00:00", resp["end"])
		assert.Equal(t, "WAITING", resp["status"])

		itemView := resp["item"].(map[string]any)
		assert.EqualValues(t, 1, itemView["id"])
		assert.Equal(t, "drill", itemView["name"])

		bookerView := resp["booker"].(map[string]any)
		assert.EqualValues(t, 20, bookerView["id"])
		assert.Equal(t, "booker", bookerView["name"])
	})

	t.Run("malformed body", func(t *testing.T) {
		r := newTestRouter(&stubService{booking: sampleBooking()})
		w := perform(r, http.MethodPost, "/bookings", `{"itemId":`, "20")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation failure maps to 400", func(t *testing.T) {
		r := newTestRouter(&stubService{err: booking.ErrInvalidRange})
		body := `{"itemId":1,"start":"2026-04-01T10:00:00","end":"2026-04-01T10:00:00"}`

		w := perform(r, http.MethodPost, "/bookings", body, "20")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		r := newTestRouter(&stubService{err: booking.ErrNotFound})
		body := `{"itemId":99,"start":"2026-04-01T10:00:00","end":"2026-04-01T12:00:00"}`

		w := perform(r, http.MethodPost, "/bookings", body, "20")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDecideBooking(t *testing.T) {
	t.Run("passes the raw token through", func(t *testing.T) {
		svc := &stubService{booking: sampleBooking()}
		r := newTestRouter(svc)

		w := perform(r, http.MethodPatch, "/bookings/7?approved=true", "", "10")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", svc.gotApproved)
	})

	t.Run("missing approved parameter", func(t *testing.T) {
		r := newTestRouter(&stubService{booking: sampleBooking()})
		w := perform(r, http.MethodPatch, "/bookings/7", "", "10")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-numeric booking id", func(t *testing.T) {
		r := newTestRouter(&stubService{booking: sampleBooking()})
		w := perform(r, http.MethodPatch, "/bookings/abc?approved=true", "", "10")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("protocol fault maps to 500", func(t *testing.T) {
		r := newTestRouter(&stubService{err: booking.ErrBadDecision})
		w := perform(r, http.MethodPatch, "/bookings/7?approved=maybe", "", "10")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("redundant decision maps to 400", func(t *testing.T) {
		r := newTestRouter(&stubService{err: booking.ErrAlreadyDecided})
		w := perform(r, http.MethodPatch, "/bookings/7?approved=true", "", "10")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetBooking(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		r := newTestRouter(&stubService{booking: sampleBooking()})
		w := perform(r, http.MethodGet, "/bookings/7", "", "20")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("masked for outsiders", func(t *testing.T) {
		r := newTestRouter(&stubService{err: booking.ErrNotFound})
		w := perform(r, http.MethodGet, "/bookings/7", "", "30")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListBookings(t *testing.T) {
	t.Run("state defaults to ALL", func(t *testing.T) {
		svc := &stubService{booking: sampleBooking()}
		r := newTestRouter(svc)

		w := perform(r, http.MethodGet, "/bookings", "", "20")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, booking.StateAll, svc.gotState)
	})

	t.Run("state token is case-insensitive", func(t *testing.T) {
		svc := &stubService{booking: sampleBooking()}
		r := newTestRouter(svc)

		w := perform(r, http.MethodGet, "/bookings?state=current", "", "20")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, booking.StateCurrent, svc.gotState)
	})

	t.Run("unknown state names the token", func(t *testing.T) {
		r := newTestRouter(&stubService{booking: sampleBooking()})

		w := perform(r, http.MethodGet, "/bookings?state=BOGUS", "", "20")
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Unknown state: BOGUS")
	})

	t.Run("owner listing uses the same states", func(t *testing.T) {
		svc := &stubService{booking: sampleBooking()}
		r := newTestRouter(svc)

		w := perform(r, http.MethodGet, "/bookings/owner?state=waiting", "", "10")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, booking.StateWaiting, svc.gotState)
	})
}

// Repeated reads with no writes in between return identical payloads.
func TestGetBookingIdempotent(t *testing.T) {
	r := newTestRouter(&stubService{booking: sampleBooking()})

	first := perform(r, http.MethodGet, "/bookings/7", "", "20")
	second := perform(r, http.MethodGet, "/bookings/7", "", "20")

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}
