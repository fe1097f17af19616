package catalog

import (
	"context"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

// BackendCatalog is the slice of the backend client the catalogue needs.
// The whole surface is unauthenticated reads.
type BackendCatalog interface {
	Rooms(ctx context.Context, filters transform.FilterWire) ([]transform.RoomWire, error)
	Room(ctx context.Context, id int64) (*transform.RoomWire, error)
	Facilities(ctx context.Context) (any, error)
}
