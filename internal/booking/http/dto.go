package http

import (
	"bytes"
	"time"

	"shareit/internal/booking"
	itemHttp "shareit/internal/item/http"
)

// The wire format for booking times is an ISO-8601 local date-time
// without zone offset.
const timeLayout = "2006-01-02T15:04:05"

// LocalTime marshals as a zone-less ISO-8601 date-time. RFC 3339 input
// is accepted as well for lenient clients.
type LocalTime struct {
	time.Time
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(timeLayout) + `"`), nil
}

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s := string(bytes.Trim(data, `"`))
	if s == "" {
		return nil
	}

	parsed, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
	}
	t.Time = parsed
	return nil
}

// CreateBookingRequest is the body of POST /bookings. Missing dates
// stay zero-valued and are rejected by the validator, matching the
// error taxonomy instead of a binding failure.
type CreateBookingRequest struct {
	ItemID int64     `json:"itemId"`
	Start  LocalTime `json:"start"`
	End    LocalTime `json:"end"`
}

// UserTag is the short user reference embedded in booking views.
type UserTag struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type BookingResponse struct {
	ID     int64            `json:"id"`
	Start  LocalTime        `json:"start"`
	End    LocalTime        `json:"end"`
	Item   itemHttp.ItemTag `json:"item"`
	Booker UserTag          `json:"booker"`
	Status string           `json:"status"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:     b.ID,
		Start:  LocalTime{b.Start},
		End:    LocalTime{b.End},
		Item:   itemHttp.ItemTag{ID: b.ItemID, Name: b.ItemName},
		Booker: UserTag{ID: b.BookerID, Name: b.BookerName},
		Status: string(b.Status),
	}
}

func NewBookingResponses(bookings []*booking.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = NewBookingResponse(b)
	}
	return out
}
