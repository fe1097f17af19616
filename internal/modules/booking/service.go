package booking

import (
	"context"
	"errors"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/backend"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/session"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

// Service validates and quotes stays locally, then forwards accepted
// submissions to the backend. The backend remains the source of truth for
// conflicts and final pricing.
type Service struct {
	api      BackendBookings
	sessions *session.Store
}

func NewService(api BackendBookings, sessions *session.Store) *Service {
	return &Service{api: api, sessions: sessions}
}

// Quote prices a stay before submission. Validation violations come back
// as one error carrying all of them; the caller must refuse submission.
func (s *Service) Quote(ctx context.Context, req QuoteRequest) (*QuoteResponse, error) {
	if violations := ValidateDates(req.CheckInDate, req.CheckOutDate); len(violations) > 0 {
		return nil, &DateValidationError{Violations: violations}
	}

	room, err := s.api.Room(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}

	rate := room.PricePerNight.Float64()
	return &QuoteResponse{
		RoomID:       req.RoomID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Nights:       Nights(req.CheckInDate, req.CheckOutDate),
		NightlyRate:  rate,
		Total:        Total(rate, req.CheckInDate, req.CheckOutDate),
	}, nil
}

func (s *Service) Create(ctx context.Context, sess *session.Session, req CreateBookingRequest) (*transform.BookingView, error) {
	if violations := ValidateDates(req.CheckInDate, req.CheckOutDate); len(violations) > 0 {
		return nil, &DateValidationError{Violations: violations}
	}

	wire := transform.BookingToWire(req.CheckInDate, req.CheckOutDate, req.RoomID)
	created, err := s.api.CreateBooking(ctx, sess, wire)
	if err != nil {
		return nil, s.dropSessionOnAuthReject(sess, err)
	}

	view := transform.BookingToView(*created)
	return &view, nil
}

func (s *Service) My(ctx context.Context, sess *session.Session) ([]transform.BookingView, error) {
	rows, err := s.api.MyBookings(ctx, sess)
	if err != nil {
		return nil, s.dropSessionOnAuthReject(sess, err)
	}
	return transform.BookingsToView(rows), nil
}

func (s *Service) Cancel(ctx context.Context, sess *session.Session, id int64) (*transform.BookingView, error) {
	cancelled, err := s.api.CancelBooking(ctx, sess, id)
	if err != nil {
		return nil, s.dropSessionOnAuthReject(sess, err)
	}
	view := transform.BookingToView(*cancelled)
	return &view, nil
}

func (s *Service) UpdateStatus(ctx context.Context, sess *session.Session, id int64, status string) (*transform.BookingView, error) {
	updated, err := s.api.UpdateBookingStatus(ctx, sess, id, status)
	if err != nil {
		return nil, s.dropSessionOnAuthReject(sess, err)
	}
	view := transform.BookingToView(*updated)
	return &view, nil
}

// InitiatePayment relays the payment request; the backend owns the payment
// flow end to end.
func (s *Service) InitiatePayment(ctx context.Context, sess *session.Session, payload map[string]any) (any, error) {
	result, err := s.api.InitiatePayment(ctx, sess, payload)
	if err != nil {
		return nil, s.dropSessionOnAuthReject(sess, err)
	}
	return result, nil
}

// dropSessionOnAuthReject clears the session when the backend no longer
// accepts its tokens; the next request forces a fresh sign-in.
func (s *Service) dropSessionOnAuthReject(sess *session.Session, err error) error {
	if sess != nil && errors.Is(err, backend.ErrAuthRejected) {
		s.sessions.Delete(sess.ID)
	}
	return err
}
