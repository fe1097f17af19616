package catalog

import (
	"context"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

type Service struct {
	api BackendCatalog
}

func NewService(api BackendCatalog) *Service {
	return &Service{api: api}
}

// ListRooms maps the UI filter vocabulary onto wire parameters, fetches,
// and hands back view rooms.
func (s *Service) ListRooms(ctx context.Context, criteria transform.FilterCriteria) ([]transform.RoomView, error) {
	rooms, err := s.api.Rooms(ctx, transform.FiltersToWire(criteria))
	if err != nil {
		return nil, err
	}
	return transform.RoomsToView(rooms), nil
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*transform.RoomView, error) {
	wire, err := s.api.Room(ctx, id)
	if err != nil {
		return nil, err
	}
	view := transform.RoomToView(*wire)
	return &view, nil
}

func (s *Service) Facilities(ctx context.Context) (any, error) {
	return s.api.Facilities(ctx)
}
