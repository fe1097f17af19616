package booking

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/backend"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/session"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

type mockBackendBookings struct {
	mock.Mock
}

func (m *mockBackendBookings) CreateBooking(ctx context.Context, sess *session.Session, payload transform.BookingCreateWire) (*transform.BookingWire, error) {
	args := m.Called(ctx, sess, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transform.BookingWire), args.Error(1)
}

func (m *mockBackendBookings) MyBookings(ctx context.Context, sess *session.Session) ([]transform.BookingWire, error) {
	args := m.Called(ctx, sess)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]transform.BookingWire), args.Error(1)
}

func (m *mockBackendBookings) CancelBooking(ctx context.Context, sess *session.Session, id int64) (*transform.BookingWire, error) {
	args := m.Called(ctx, sess, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transform.BookingWire), args.Error(1)
}

func (m *mockBackendBookings) UpdateBookingStatus(ctx context.Context, sess *session.Session, id int64, status string) (*transform.BookingWire, error) {
	args := m.Called(ctx, sess, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transform.BookingWire), args.Error(1)
}

func (m *mockBackendBookings) InitiatePayment(ctx context.Context, sess *session.Session, payload map[string]any) (any, error) {
	args := m.Called(ctx, sess, payload)
	return args.Get(0), args.Error(1)
}

func (m *mockBackendBookings) Room(ctx context.Context, id int64) (*transform.RoomWire, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transform.RoomWire), args.Error(1)
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}

func TestQuote(t *testing.T) {
	api := new(mockBackendBookings)
	svc := NewService(api, session.NewStore(time.Hour))

	api.On("Room", mock.Anything, int64(7)).Return(&transform.RoomWire{
		ID: 7, PricePerNight: 120, MaxOccupancy: 4,
	}, nil)

	quote, err := svc.Quote(context.Background(), QuoteRequest{
		RoomID:       7,
		CheckInDate:  futureDate(1),
		CheckOutDate: futureDate(4),
	})

	require.NoError(t, err)
	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, 120.0, quote.NightlyRate)
	assert.Equal(t, int64(360), quote.Total)
}

func TestQuote_InvalidDates(t *testing.T) {
	api := new(mockBackendBookings)
	svc := NewService(api, session.NewStore(time.Hour))

	_, err := svc.Quote(context.Background(), QuoteRequest{RoomID: 7})

	var dateErr *DateValidationError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, []string{
		"Check-in date is required",
		"Check-out date is required",
	}, dateErr.Violations)
	assert.Equal(t, "Check-in date is required. Check-out date is required", dateErr.Error())
	api.AssertNotCalled(t, "Room")
}

func TestCreate(t *testing.T) {
	api := new(mockBackendBookings)
	store := session.NewStore(time.Hour)
	svc := NewService(api, store)
	sess := store.Create("acc", "ref", transform.UserView{ID: 9})

	checkIn, checkOut := futureDate(1), futureDate(4)
	api.On("CreateBooking", mock.Anything, sess, transform.BookingCreateWire{
		RoomID:       7,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}).Return(&transform.BookingWire{
		ID:            42,
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		TotalAmount:   360,
		BookingStatus: "pending",
	}, nil)

	view, err := svc.Create(context.Background(), sess, CreateBookingRequest{
		RoomID:       7,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), view.ID)
	assert.Equal(t, "Pending", view.StatusDisplay)
	assert.Equal(t, "Unknown Room", view.RoomName)
	api.AssertExpectations(t)
}

func TestCreate_PastDatesRejectedLocally(t *testing.T) {
	api := new(mockBackendBookings)
	svc := NewService(api, session.NewStore(time.Hour))

	_, err := svc.Create(context.Background(), nil, CreateBookingRequest{
		RoomID:       7,
		CheckInDate:  "2020-01-01",
		CheckOutDate: "2020-01-05",
	})

	var dateErr *DateValidationError
	require.ErrorAs(t, err, &dateErr)
	assert.Contains(t, dateErr.Violations, "Check-in date cannot be in the past")
	api.AssertNotCalled(t, "CreateBooking")
}

func TestMy_AuthRejectionDropsSession(t *testing.T) {
	api := new(mockBackendBookings)
	store := session.NewStore(time.Hour)
	svc := NewService(api, store)
	sess := store.Create("stale", "ref", transform.UserView{ID: 9})

	api.On("MyBookings", mock.Anything, sess).Return(nil, &backend.APIError{StatusCode: http.StatusUnauthorized})

	_, err := svc.My(context.Background(), sess)

	assert.ErrorIs(t, err, backend.ErrAuthRejected)
	_, ok := store.Get(sess.ID)
	assert.False(t, ok, "session should be dropped after a backend 401")
}

func TestMy(t *testing.T) {
	api := new(mockBackendBookings)
	store := session.NewStore(time.Hour)
	svc := NewService(api, store)
	sess := store.Create("acc", "ref", transform.UserView{ID: 9})

	api.On("MyBookings", mock.Anything, sess).Return([]transform.BookingWire{
		{ID: 1, BookingStatus: "confirmed", BookingStatusDisplay: "Confirmed"},
	}, nil)

	views, err := svc.My(context.Background(), sess)

	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Confirmed", views[0].StatusDisplay)
}

func TestInitiatePayment_Passthrough(t *testing.T) {
	api := new(mockBackendBookings)
	store := session.NewStore(time.Hour)
	svc := NewService(api, store)
	sess := store.Create("acc", "ref", transform.UserView{ID: 9})

	payload := map[string]any{"booking_id": float64(42), "method": "momo"}
	api.On("InitiatePayment", mock.Anything, sess, payload).Return(map[string]any{"reference": "PAY-1"}, nil)

	result, err := svc.InitiatePayment(context.Background(), sess, payload)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"reference": "PAY-1"}, result)
	api.AssertExpectations(t)
}

func TestCancel(t *testing.T) {
	api := new(mockBackendBookings)
	store := session.NewStore(time.Hour)
	svc := NewService(api, store)
	sess := store.Create("acc", "ref", transform.UserView{ID: 9})

	api.On("CancelBooking", mock.Anything, sess, int64(42)).Return(&transform.BookingWire{
		ID: 42, BookingStatus: "cancelled",
	}, nil)

	view, err := svc.Cancel(context.Background(), sess, 42)

	require.NoError(t, err)
	assert.Equal(t, "cancelled", view.Status)
	assert.Equal(t, "Cancelled", view.StatusDisplay)
}
