package booking

// CreateBookingRequest is what the booking form submits. Dates are not
// bound as required so that date validation can report every violation in
// one message instead of a generic binding error.
type CreateBookingRequest struct {
	RoomID       int64  `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

// QuoteRequest prices a stay before submission.
type QuoteRequest struct {
	RoomID       int64  `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

type QuoteResponse struct {
	RoomID       int64   `json:"roomId"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	Nights       int     `json:"nights"`
	NightlyRate  float64 `json:"nightlyRate"`
	Total        int64   `json:"total"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
