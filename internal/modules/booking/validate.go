package booking

import "time"

const (
	msgCheckInRequired  = "Check-in date is required"
	msgCheckOutRequired = "Check-out date is required"
	msgCheckInPast      = "Check-in date cannot be in the past"
	msgCheckOutNotAfter = "Check-out date must be after check-in date"
	msgStayTooLong      = "Booking duration cannot exceed 365 days"
)

// ValidateDates accumulates every violated rule instead of stopping at the
// first; the caller joins the messages into one report. An empty result
// means the range is bookable.
func ValidateDates(checkIn, checkOut string) []string {
	return validateDatesAt(time.Now(), checkIn, checkOut)
}

func validateDatesAt(now time.Time, checkIn, checkOut string) []string {
	violations := []string{}

	if checkIn == "" {
		violations = append(violations, msgCheckInRequired)
	}
	if checkOut == "" {
		violations = append(violations, msgCheckOutRequired)
	}

	var in, out time.Time
	var inOK, outOK bool
	if checkIn != "" {
		if t, err := parseDate(checkIn); err == nil {
			in, inOK = t, true
		}
	}
	if checkOut != "" {
		if t, err := parseDate(checkOut); err == nil {
			out, outOK = t, true
		}
	}

	// calendar-day granularity: checking in today is allowed. Midnight UTC
	// matches what parseDate produces.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if inOK && in.Before(today) {
		violations = append(violations, msgCheckInPast)
	}
	if inOK && outOK {
		if !out.After(in) {
			violations = append(violations, msgCheckOutNotAfter)
		}
		if out.Sub(in) > maxStayDays*24*time.Hour {
			violations = append(violations, msgStayTooLong)
		}
	}
	return violations
}
