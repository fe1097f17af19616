package backend

import (
	"context"
	"net/http"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

// AuthResponse is the token pair the backend issues on login and
// registration. The user block is optional; some backend versions return
// only the tokens.
type AuthResponse struct {
	Access  string              `json:"access"`
	Refresh string              `json:"refresh"`
	User    *transform.UserWire `json:"user"`
}

func (c *Client) Login(ctx context.Context, creds transform.LoginWire) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, nil, http.MethodPost, "/api/login/", nil, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RegisterStudent(ctx context.Context, reg transform.RegistrationWire) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, nil, http.MethodPost, "/api/register/student/", nil, reg, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterProvider forwards the payload untouched; provider sign-up carries
// role-specific fields the gateway does not interpret.
func (c *Client) RegisterProvider(ctx context.Context, payload map[string]any) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, nil, http.MethodPost, "/api/register/provider/", nil, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := map[string]string{"email": email}
	return c.do(ctx, nil, http.MethodPost, "/api/password-reset/request/", nil, body, nil)
}

func (c *Client) ConfirmPasswordReset(ctx context.Context, resetToken, password string) error {
	body := map[string]string{"token": resetToken, "password": password}
	return c.do(ctx, nil, http.MethodPost, "/api/password-reset/confirm/", nil, body, nil)
}

func (c *Client) VerifyResetToken(ctx context.Context, resetToken string) error {
	body := map[string]string{"token": resetToken}
	return c.do(ctx, nil, http.MethodPost, "/api/password-reset/verify/", nil, body, nil)
}
