package backend

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

// ErrAuthRejected marks a 401 from the backend. Callers clear the local
// session when they see it; the stored tokens are no longer good.
var ErrAuthRejected = errors.New("authentication rejected by backend")

// APIError carries the decoded backend error payload. The message is
// rendered through the transform layer so handlers can show it verbatim.
type APIError struct {
	StatusCode int
	Payload    any
}

func (e *APIError) Error() string {
	return transform.ErrorMessage(e.Payload)
}

func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrAuthRejected
	}
	return nil
}

func newAPIError(status int, raw []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return apiErr
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		// non-JSON bodies (HTML error pages, plain text) become the message
		apiErr.Payload = trimmed
		return apiErr
	}
	apiErr.Payload = payload
	return apiErr
}
