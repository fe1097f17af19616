// Package token inspects backend-issued JWTs. The gateway never verifies
// signatures: the signing key lives on the backend, and tokens are only
// read to derive session expiry and the user id.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Info is the subset of claims the gateway cares about. Zero values mean
// the claim was absent.
type Info struct {
	UserID    int64
	ExpiresAt time.Time
}

var ErrUnreadable = errors.New("unreadable token")

func Inspect(raw string) (*Info, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, ErrUnreadable
	}

	info := &Info{}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	// user_id arrives as a JSON number or, from some backends, a string
	switch id := claims["user_id"].(type) {
	case float64:
		info.UserID = int64(id)
	case string:
		if n, err := strconv.ParseInt(id, 10, 64); err == nil {
			info.UserID = n
		}
	}
	return info, nil
}
