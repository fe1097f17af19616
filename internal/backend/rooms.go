package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

// Rooms lists rooms matching the wire filters. The backend serves either a
// bare array or a paginated {"results": [...]} envelope; both decode to
// the same slice, and anything else degrades to an empty one so callers
// always get an iterable.
func (c *Client) Rooms(ctx context.Context, filters transform.FilterWire) ([]transform.RoomWire, error) {
	var raw json.RawMessage
	if err := c.do(ctx, nil, http.MethodGet, "/api/rooms/", filters.QueryValues(), nil, &raw); err != nil {
		return nil, err
	}
	return decodeRoomList(raw), nil
}

func decodeRoomList(raw json.RawMessage) []transform.RoomWire {
	var rooms []transform.RoomWire
	if err := json.Unmarshal(raw, &rooms); err == nil && rooms != nil {
		return rooms
	}
	var page struct {
		Results []transform.RoomWire `json:"results"`
	}
	if err := json.Unmarshal(raw, &page); err == nil && page.Results != nil {
		return page.Results
	}
	return []transform.RoomWire{}
}

func (c *Client) Room(ctx context.Context, id int64) (*transform.RoomWire, error) {
	var out transform.RoomWire
	path := fmt.Sprintf("/api/rooms/%d/", id)
	if err := c.do(ctx, nil, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Facilities is a read-only passthrough; the gateway does not interpret
// the facility schema.
func (c *Client) Facilities(ctx context.Context) (any, error) {
	var out any
	if err := c.do(ctx, nil, http.MethodGet, "/api/facilities/", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
