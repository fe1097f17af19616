package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/session"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

func (c *Client) CreateBooking(ctx context.Context, sess *session.Session, payload transform.BookingCreateWire) (*transform.BookingWire, error) {
	var out transform.BookingWire
	if err := c.do(ctx, sess, http.MethodPost, "/api/bookings/", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MyBookings lists the signed-in student's bookings, tolerating the same
// bare-array-or-envelope shapes as the room list.
func (c *Client) MyBookings(ctx context.Context, sess *session.Session) ([]transform.BookingWire, error) {
	var raw json.RawMessage
	if err := c.do(ctx, sess, http.MethodGet, "/api/bookings/my/", nil, nil, &raw); err != nil {
		return nil, err
	}
	return decodeBookingList(raw), nil
}

func decodeBookingList(raw json.RawMessage) []transform.BookingWire {
	var bookings []transform.BookingWire
	if err := json.Unmarshal(raw, &bookings); err == nil && bookings != nil {
		return bookings
	}
	var page struct {
		Results []transform.BookingWire `json:"results"`
	}
	if err := json.Unmarshal(raw, &page); err == nil && page.Results != nil {
		return page.Results
	}
	return []transform.BookingWire{}
}

func (c *Client) CancelBooking(ctx context.Context, sess *session.Session, id int64) (*transform.BookingWire, error) {
	var out transform.BookingWire
	path := fmt.Sprintf("/api/bookings/%d/cancel/", id)
	if err := c.do(ctx, sess, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBookingStatus(ctx context.Context, sess *session.Session, id int64, status string) (*transform.BookingWire, error) {
	var out transform.BookingWire
	path := fmt.Sprintf("/api/bookings/%d/status/", id)
	body := map[string]string{"status": status}
	if err := c.do(ctx, sess, http.MethodPost, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
