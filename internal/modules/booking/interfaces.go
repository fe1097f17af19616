package booking

import (
	"context"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/session"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

// BackendBookings is the slice of the backend client the booking module
// needs. Room lookup is included for quoting.
type BackendBookings interface {
	CreateBooking(ctx context.Context, sess *session.Session, payload transform.BookingCreateWire) (*transform.BookingWire, error)
	MyBookings(ctx context.Context, sess *session.Session) ([]transform.BookingWire, error)
	CancelBooking(ctx context.Context, sess *session.Session, id int64) (*transform.BookingWire, error)
	UpdateBookingStatus(ctx context.Context, sess *session.Session, id int64, status string) (*transform.BookingWire, error)
	InitiatePayment(ctx context.Context, sess *session.Session, payload map[string]any) (any, error)
	Room(ctx context.Context, id int64) (*transform.RoomWire, error)
}
