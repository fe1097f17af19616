package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/backend"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/middleware"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/pkg/response"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes quoting; pricing a stay needs no account.
func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	v1.POST("/bookings/quote", h.Quote)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	bookings := protected.Group("/bookings")
	{
		bookings.POST("", h.Create)
		bookings.GET("/my", h.My)
		bookings.POST("/:id/cancel", h.Cancel)
		bookings.POST("/:id/status", h.UpdateStatus)
	}
	protected.POST("/payments/initiate", h.InitiatePayment)
}

func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quote": quote})
}

func (h *Handler) Create(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	created, err := h.service.Create(c.Request.Context(), sess, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": created})
}

func (h *Handler) My(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	bookings, err := h.service.My(c.Request.Context(), sess)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings, "count": len(bookings)})
}

func (h *Handler) Cancel(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	cancelled, err := h.service.Cancel(c.Request.Context(), sess, id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": cancelled})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}
	id, ok := h.bookingID(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), sess, id, req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": updated})
}

func (h *Handler) InitiatePayment(c *gin.Context) {
	sess, ok := h.requireSession(c)
	if !ok {
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.InitiatePayment(c.Request.Context(), sess, payload)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payment": result})
}

func (h *Handler) requireSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Unauthorized(c, "Session required")
		return nil, false
	}
	return sess, true
}

func (h *Handler) bookingID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Booking id must be numeric")
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var dateErr *DateValidationError
	if errors.As(err, &dateErr) {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_DATES", dateErr.Error(), dateErr.Violations)
		return
	}
	if errors.Is(err, backend.ErrAuthRejected) {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Session is no longer valid")
		return
	}
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		response.Error(c, apiErr.StatusCode, "BACKEND_ERROR", apiErr.Error())
		return
	}
	response.Error(c, http.StatusBadGateway, "BACKEND_UNREACHABLE", "Failed to reach booking backend")
}
