package auth

import "errors"

var (
	ErrMissingIdentifier = errors.New("username or email is required")
	ErrNoAccessToken     = errors.New("backend returned no access token")
)
