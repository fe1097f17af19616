package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/backend"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/middleware"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/pkg/response"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/pkg/validator"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/session"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/register/student", h.RegisterStudent)
		authGroup.POST("/register/provider", h.RegisterProvider)
		authGroup.POST("/password-reset/request", h.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", h.ConfirmPasswordReset)
		authGroup.POST("/password-reset/verify", h.VerifyResetToken)
	}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.POST("/auth/logout", h.Logout)
	protected.GET("/users/me", h.GetMe)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrMissingIdentifier) {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
			return
		}
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, sessionPayload(sess))
}

func (h *Handler) RegisterStudent(c *gin.Context) {
	var req RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid registration data", details)
		return
	}

	sess, err := h.service.RegisterStudent(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, sessionPayload(sess))
}

func (h *Handler) RegisterProvider(c *gin.Context) {
	var req RegisterProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	sess, err := h.service.RegisterProvider(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, sessionPayload(sess))
}

func (h *Handler) Logout(c *gin.Context) {
	if sess, ok := middleware.SessionFrom(c); ok {
		h.service.Logout(sess.ID)
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) GetMe(c *gin.Context) {
	sess, ok := middleware.SessionFrom(c)
	if !ok {
		response.Unauthorized(c, "Session required")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": sess.User})
}

func (h *Handler) RequestPasswordReset(c *gin.Context) {
	var req PasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := h.service.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password reset email sent"})
}

func (h *Handler) ConfirmPasswordReset(c *gin.Context) {
	var req PasswordResetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := h.service.ConfirmPasswordReset(c.Request.Context(), req.Token, req.Password); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password updated"})
}

func (h *Handler) VerifyResetToken(c *gin.Context) {
	var req PasswordResetVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if err := h.service.VerifyResetToken(c.Request.Context(), req.Token); err != nil {
		h.handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"valid": true})
}

func sessionPayload(sess *session.Session) SessionResponse {
	return SessionResponse{Token: sess.ID, User: sess.User, ExpiresAt: sess.ExpiresAt}
}

// handleError maps backend failures onto the shared envelope. Backend
// statuses pass through; a 401 during sign-in means bad credentials, not a
// stale session.
func (h *Handler) handleError(c *gin.Context, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		code := "BACKEND_ERROR"
		if apiErr.StatusCode == http.StatusUnauthorized {
			code = "INVALID_CREDENTIALS"
		}
		response.Error(c, apiErr.StatusCode, code, apiErr.Error())
		return
	}
	response.Error(c, http.StatusBadGateway, "BACKEND_UNREACHABLE", "Failed to reach booking backend")
}
