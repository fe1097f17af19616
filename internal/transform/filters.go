package transform

import (
	"math"
	"net/url"
	"strconv"
	"strings"
)

// FilterCriteria is the UI vocabulary for catalogue filters; every field is
// optional free text straight from form controls.
type FilterCriteria struct {
	RoomType         string
	RoomPrice        string
	RoomAvailability string
	RoomSearch       string
	Location         string
}

// FilterWire carries only the criteria that survived mapping; absent fields
// are omitted entirely rather than sent as placeholders.
type FilterWire struct {
	MaxOccupancy *int   `json:"max_occupancy,omitempty"`
	PriceMin     *int64 `json:"price_min,omitempty"`
	Location     string `json:"location,omitempty"`
	IsAvailable  *bool  `json:"is_available,omitempty"`
	Search       string `json:"search,omitempty"`
}

// FiltersToWire maps UI filter values onto backend query parameters. A room
// type that does not parse as "Nin1" is dropped, an annual price bound is
// converted back to a nightly minimum, and any availability value other
// than "available" means unavailable.
func FiltersToWire(c FilterCriteria) FilterWire {
	var w FilterWire
	if c.RoomType != "" {
		if n, err := strconv.Atoi(strings.TrimSuffix(c.RoomType, "in1")); err == nil {
			w.MaxOccupancy = &n
		}
	}
	if c.RoomPrice != "" {
		if annual, err := strconv.Atoi(c.RoomPrice); err == nil {
			nightly := int64(math.Round(float64(annual) / annualNights))
			w.PriceMin = &nightly
		}
	}
	if c.RoomAvailability != "" {
		avail := c.RoomAvailability == "available"
		w.IsAvailable = &avail
	}
	if c.RoomSearch != "" {
		w.Search = c.RoomSearch
	}
	if c.Location != "" {
		w.Location = c.Location
	}
	return w
}

// QueryValues renders the wire filters as backend query parameters.
func (w FilterWire) QueryValues() url.Values {
	q := url.Values{}
	if w.MaxOccupancy != nil {
		q.Set("max_occupancy", strconv.Itoa(*w.MaxOccupancy))
	}
	if w.PriceMin != nil {
		q.Set("price_min", strconv.FormatInt(*w.PriceMin, 10))
	}
	if w.Location != "" {
		q.Set("location", w.Location)
	}
	if w.IsAvailable != nil {
		q.Set("is_available", strconv.FormatBool(*w.IsAvailable))
	}
	if w.Search != "" {
		q.Set("search", w.Search)
	}
	return q
}
