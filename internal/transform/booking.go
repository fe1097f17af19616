package transform

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	unknownRoomName = "Unknown Room"
	wireDateLayout  = "2006-01-02"
)

// BookingWire is a booking as the backend serves it. The nested room may be
// absent on older records.
type BookingWire struct {
	ID                   int64          `json:"id"`
	Room                 *RoomWire      `json:"room"`
	CheckInDate          string         `json:"check_in_date"`
	CheckOutDate         string         `json:"check_out_date"`
	TotalAmount          Price          `json:"total_amount"`
	BookingStatus        string         `json:"booking_status"`
	BookingStatusDisplay string         `json:"booking_status_display"`
	CreatedAt            string         `json:"created_at"`
	StudentInfo          map[string]any `json:"student_info"`
}

// BookingCreateWire is the exact payload the backend accepts for a new
// booking; dates are ISO-8601 without a time component.
type BookingCreateWire struct {
	RoomID       int64  `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
}

// BookingView is a booking as the UI renders it.
type BookingView struct {
	ID            int64          `json:"id"`
	Room          *RoomView      `json:"room"`
	RoomName      string         `json:"roomName"`
	CheckInDate   string         `json:"checkInDate"`
	CheckOutDate  string         `json:"checkOutDate"`
	TotalAmount   float64        `json:"totalAmount"`
	Status        string         `json:"status"`
	StatusDisplay string         `json:"statusDisplay"`
	CreatedAt     string         `json:"createdAt"`
	StudentInfo   map[string]any `json:"studentInfo,omitempty"`

	// fields older UI screens still read
	Year     string  `json:"year"`
	Price    float64 `json:"price"`
	Bedspace string  `json:"bedspace"`
}

// BookingToWire builds a booking submission for the backend.
func BookingToWire(checkIn, checkOut string, roomID int64) BookingCreateWire {
	return BookingCreateWire{RoomID: roomID, CheckInDate: checkIn, CheckOutDate: checkOut}
}

// BookingToView maps a backend booking onto the shape the UI renders. A
// missing nested room degrades to placeholder labels rather than an error.
func BookingToView(w BookingWire) BookingView {
	var room *RoomView
	roomName := unknownRoomName
	maxOccupancy := 1
	if w.Room != nil {
		rv := RoomToView(*w.Room)
		room = &rv
		roomName = rv.Name
		if w.Room.MaxOccupancy > 0 {
			maxOccupancy = w.Room.MaxOccupancy
		}
	}

	statusDisplay := w.BookingStatusDisplay
	if statusDisplay == "" {
		statusDisplay = capitalizeFirst(w.BookingStatus)
	}

	return BookingView{
		ID:            w.ID,
		Room:          room,
		RoomName:      roomName,
		CheckInDate:   w.CheckInDate,
		CheckOutDate:  w.CheckOutDate,
		TotalAmount:   w.TotalAmount.Float64(),
		Status:        w.BookingStatus,
		StatusDisplay: statusDisplay,
		CreatedAt:     w.CreatedAt,
		StudentInfo:   w.StudentInfo,
		Year:          academicYear(w.CheckInDate, time.Now()),
		Price:         w.TotalAmount.Float64(),
		Bedspace:      fmt.Sprintf("Bed 1 of %d", maxOccupancy),
	}
}

// BookingsToView maps a booking list; a nil slice comes back empty.
func BookingsToView(bookings []BookingWire) []BookingView {
	out := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingToView(b))
	}
	return out
}

// academicYear labels a booking "YYYY/YYYY+1" from its check-in year. A
// missing or unreadable check-in falls back to the current year; the label
// is display-only, so the guess is acceptable.
func academicYear(checkIn string, now time.Time) string {
	year := now.Year()
	if len(checkIn) >= len(wireDateLayout) {
		if t, err := time.Parse(wireDateLayout, checkIn[:len(wireDateLayout)]); err == nil {
			year = t.Year()
		}
	}
	return fmt.Sprintf("%d/%d", year, year+1)
}

// capitalizeFirst uppercases only the first character, matching how the
// backend renders its own status display labels.
func capitalizeFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
