// Package transform maps between the backend wire schema (snake_case,
// normalized, nightly prices) and the view schema the UI renders
// (camelCase, denormalized, annual prices). Mapping functions never fail:
// absent or malformed optional fields degrade to documented defaults.
package transform

import (
	"fmt"
	"math"
	"strings"
)

// annualNights is the fixed length of a priced academic year: ten months
// of roughly thirty days.
const annualNights = 300

const (
	defaultRoomImage       = "/assets/default-room.jpg"
	defaultRoomDescription = "No description available"
	floorUnknown           = "N/A"
)

// RoomWire is a room as the backend serves it.
type RoomWire struct {
	ID            int64    `json:"id"`
	HostelName    string   `json:"hostel_name"`
	RoomNumber    string   `json:"room_number"`
	PricePerNight Price    `json:"price_per_night"`
	MaxOccupancy  int      `json:"max_occupancy"`
	IsAvailable   bool     `json:"is_available"`
	Location      string   `json:"location"`
	Description   string   `json:"description"`
	Image         string   `json:"image"`
	Facilities    []string `json:"facilities"`
}

// RoomView is a room as the UI renders it. Wire identifiers are kept
// alongside the derived fields so booking submissions can refer back to
// the backend room.
type RoomView struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Type               string   `json:"type"`
	Floor              string   `json:"floor"`
	Price              int64    `json:"price"`
	Availability       string   `json:"availability"`
	Img                string   `json:"img"`
	Images             []string `json:"images"`
	Desc               string   `json:"desc"`
	TotalBedspaces     int      `json:"totalBedspaces"`
	AvailableBedspaces int      `json:"availableBedspaces"`
	Location           string   `json:"location"`
	Facilities         []string `json:"facilities"`
	HostelName         string   `json:"hostelName"`
	RoomNumber         string   `json:"roomNumber"`
	PricePerNight      float64  `json:"pricePerNight"`
	MaxOccupancy       int      `json:"maxOccupancy"`
	IsAvailable        bool     `json:"isAvailable"`
}

// floorKeywords is scanned in declared order and the first hit wins, so
// overlapping spellings such as "first" and "1st" keep this precedence.
var floorKeywords = []struct {
	keyword string
	floor   string
}{
	{"ground", "ground"},
	{"first", "first"},
	{"second", "second"},
	{"third", "third"},
	{"fourth", "fourth"},
	{"fifth", "fifth"},
	{"basement", "basement"},
	{"1st", "first"},
	{"2nd", "second"},
	{"3rd", "third"},
	{"4th", "fourth"},
	{"5th", "fifth"},
}

// RoomToView maps a backend room onto the shape the UI renders.
func RoomToView(w RoomWire) RoomView {
	img := w.Image
	if img == "" {
		img = defaultRoomImage
	}
	desc := w.Description
	if desc == "" {
		desc = defaultRoomDescription
	}
	facilities := w.Facilities
	if facilities == nil {
		facilities = []string{}
	}

	// availability is all-or-nothing: the backend tracks a boolean, not a
	// per-bed count, so an available room exposes every bedspace
	availability := "unavailable"
	availableBeds := 0
	if w.IsAvailable {
		availability = "available"
		availableBeds = w.MaxOccupancy
	}

	return RoomView{
		ID:                 w.ID,
		Name:               fmt.Sprintf("%s - Room %s", w.HostelName, w.RoomNumber),
		Type:               roomType(w.MaxOccupancy),
		Floor:              floorFromLocation(w.Location),
		Price:              annualPrice(w.PricePerNight.Float64()),
		Availability:       availability,
		Img:                img,
		Images:             []string{img},
		Desc:               desc,
		TotalBedspaces:     w.MaxOccupancy,
		AvailableBedspaces: availableBeds,
		Location:           w.Location,
		Facilities:         facilities,
		HostelName:         w.HostelName,
		RoomNumber:         w.RoomNumber,
		PricePerNight:      w.PricePerNight.Float64(),
		MaxOccupancy:       w.MaxOccupancy,
		IsAvailable:        w.IsAvailable,
	}
}

// RoomsToView maps a room list, guaranteeing callers an iterable: a nil
// slice comes back empty, never nil.
func RoomsToView(rooms []RoomWire) []RoomView {
	out := make([]RoomView, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, RoomToView(r))
	}
	return out
}

// roomType renders occupancy as the "Nin1" tag the UI filters on.
func roomType(maxOccupancy int) string {
	return fmt.Sprintf("%din1", maxOccupancy)
}

func annualPrice(pricePerNight float64) int64 {
	return int64(math.Round(pricePerNight * annualNights))
}

func floorFromLocation(location string) string {
	if location == "" {
		return floorUnknown
	}
	lower := strings.ToLower(location)
	for _, fk := range floorKeywords {
		if strings.Contains(lower, fk.keyword) {
			return fk.floor
		}
	}
	return floorUnknown
}
