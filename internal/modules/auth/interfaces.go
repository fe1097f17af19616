package auth

import (
	"context"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/backend"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

// BackendAuth is the slice of the backend client the auth module needs.
type BackendAuth interface {
	Login(ctx context.Context, creds transform.LoginWire) (*backend.AuthResponse, error)
	RegisterStudent(ctx context.Context, reg transform.RegistrationWire) (*backend.AuthResponse, error)
	RegisterProvider(ctx context.Context, payload map[string]any) (*backend.AuthResponse, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, resetToken, password string) error
	VerifyResetToken(ctx context.Context, resetToken string) error
}
