package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/backend"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/pkg/response"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	v1.GET("/rooms", h.ListRooms)
	v1.GET("/rooms/:id", h.GetRoom)
	v1.GET("/facilities", h.Facilities)
}

func (h *Handler) ListRooms(c *gin.Context) {
	criteria := transform.FilterCriteria{
		RoomType:         c.Query("roomType"),
		RoomPrice:        c.Query("roomPrice"),
		RoomAvailability: c.Query("roomAvailability"),
		RoomSearch:       c.Query("roomSearch"),
		Location:         c.Query("location"),
	}

	rooms, err := h.service.ListRooms(c.Request.Context(), criteria)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"rooms": rooms, "count": len(rooms)})
}

func (h *Handler) GetRoom(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Room id must be numeric")
		return
	}

	room, err := h.service.GetRoom(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"room": room})
}

func (h *Handler) Facilities(c *gin.Context) {
	facilities, err := h.service.Facilities(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"facilities": facilities})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		code := "BACKEND_ERROR"
		if apiErr.StatusCode == http.StatusNotFound {
			code = "NOT_FOUND"
		}
		response.Error(c, apiErr.StatusCode, code, apiErr.Error())
		return
	}
	response.Error(c, http.StatusBadGateway, "BACKEND_UNREACHABLE", "Failed to reach booking backend")
}
