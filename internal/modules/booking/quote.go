package booking

import (
	"math"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// maxStayDays caps a single booking at one calendar year.
const maxStayDays = 365

// Nights returns the whole-night length of a stay, never less than one.
// The floor is a display guard, not validation; ValidateDates owns
// rejecting bad ranges.
func Nights(checkIn, checkOut string) int {
	in, errIn := parseDate(checkIn)
	out, errOut := parseDate(checkOut)
	if errIn != nil || errOut != nil {
		return 1
	}
	nights := int(math.Ceil(out.Sub(in).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// Total quotes round(rate x nights). A zero rate or an absent or unreadable
// date yields 0 so the UI suppresses the price instead of showing a bogus
// figure.
func Total(nightlyRate float64, checkIn, checkOut string) int64 {
	if nightlyRate == 0 || checkIn == "" || checkOut == "" {
		return 0
	}
	if _, err := parseDate(checkIn); err != nil {
		return 0
	}
	if _, err := parseDate(checkOut); err != nil {
		return 0
	}
	return int64(math.Round(nightlyRate * float64(Nights(checkIn, checkOut))))
}

// parseDate pins dates to UTC so ranges are exact 24h multiples; parsing in
// a DST-observing local zone would make a fall-back range an hour long and
// overcount it by a night.
func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(s), time.UTC)
}
