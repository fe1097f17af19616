// Package session replaces implicit browser-global token storage with
// explicit session objects: created on successful login or registration,
// passed by reference to the backend client, and cleared on logout or when
// the backend rejects the credentials.
package session

import (
	"time"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

// Session binds a backend token pair to the signed-in user. The ID is the
// opaque bearer value the browser presents on protected routes.
type Session struct {
	ID           string             `json:"id"`
	AccessToken  string             `json:"-"`
	RefreshToken string             `json:"-"`
	User         transform.UserView `json:"user"`
	CreatedAt    time.Time          `json:"created_at"`
	ExpiresAt    time.Time          `json:"expires_at"`
}

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
