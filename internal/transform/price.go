package transform

import (
	"strconv"
	"strings"
)

// Price tolerates both JSON numbers and decimal strings. The backend
// serializes money fields as strings like "4500.00", but older payloads
// carried plain numbers; both must decode.
type Price float64

func (p *Price) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		*p = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// malformed optional input degrades to zero instead of failing the decode
		*p = 0
		return nil
	}
	*p = Price(f)
	return nil
}

func (p Price) Float64() float64 { return float64(p) }
