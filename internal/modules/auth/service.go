package auth

import (
	"context"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/backend"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/pkg/token"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/session"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

// Service owns the sign-in flow: transform the credentials, call the
// backend, and mint the local session from the returned token pair.
type Service struct {
	api      BackendAuth
	sessions *session.Store
}

func NewService(api BackendAuth, sessions *session.Store) *Service {
	return &Service{api: api, sessions: sessions}
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*session.Session, error) {
	if req.Username == "" && req.Email == "" {
		return nil, ErrMissingIdentifier
	}
	creds := transform.LoginToWire(transform.LoginCredentials{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	resp, err := s.api.Login(ctx, creds)
	if err != nil {
		return nil, err
	}
	return s.createSession(resp, req.Username, req.Email)
}

func (s *Service) RegisterStudent(ctx context.Context, req RegisterStudentRequest) (*session.Session, error) {
	wire := transform.StudentRegistrationToWire(req.Username, req.Email, req.Password)
	resp, err := s.api.RegisterStudent(ctx, wire)
	if err != nil {
		return nil, err
	}
	return s.createSession(resp, req.Username, req.Email)
}

func (s *Service) RegisterProvider(ctx context.Context, req RegisterProviderRequest) (*session.Session, error) {
	resp, err := s.api.RegisterProvider(ctx, req)
	if err != nil {
		return nil, err
	}
	username, _ := req["username"].(string)
	email, _ := req["email"].(string)
	return s.createSession(resp, username, email)
}

func (s *Service) Logout(sessionID string) {
	s.sessions.Delete(sessionID)
}

func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	return s.api.RequestPasswordReset(ctx, email)
}

func (s *Service) ConfirmPasswordReset(ctx context.Context, resetToken, password string) error {
	return s.api.ConfirmPasswordReset(ctx, resetToken, password)
}

func (s *Service) VerifyResetToken(ctx context.Context, resetToken string) error {
	return s.api.VerifyResetToken(ctx, resetToken)
}

// createSession builds the user view from the backend response, falling
// back to token claims and the submitted identifiers when no user payload
// came back.
func (s *Service) createSession(resp *backend.AuthResponse, username, email string) (*session.Session, error) {
	if resp == nil || resp.Access == "" {
		return nil, ErrNoAccessToken
	}

	var user transform.UserView
	if resp.User != nil {
		user = transform.UserToView(*resp.User)
	} else {
		user = transform.UserView{
			Username: username,
			Email:    email,
			Bookings: []transform.BookingView{},
		}
		if info, err := token.Inspect(resp.Access); err == nil {
			user.ID = info.UserID
		}
	}
	return s.sessions.Create(resp.Access, resp.Refresh, user), nil
}
