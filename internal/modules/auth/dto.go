package auth

import (
	"time"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

// LoginRequest accepts either username or email; the transform layer
// decides what goes on the wire.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type RegisterStudentRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterProviderRequest carries provider-specific fields (business name,
// phone, and so on) that the gateway forwards without interpreting.
type RegisterProviderRequest map[string]any

type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type PasswordResetConfirmRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type PasswordResetVerifyRequest struct {
	Token string `json:"token" binding:"required"`
}

// SessionResponse is what login and registration hand back: the gateway
// session token plus the signed-in user, never the backend JWTs.
type SessionResponse struct {
	Token     string             `json:"token"`
	User      transform.UserView `json:"user"`
	ExpiresAt time.Time          `json:"expiresAt"`
}
