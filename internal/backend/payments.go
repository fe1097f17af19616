package backend

import (
	"context"
	"net/http"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/session"
)

// InitiatePayment forwards a payment request untouched. The backend owns
// the whole payment flow; the gateway only relays the call.
func (c *Client) InitiatePayment(ctx context.Context, sess *session.Session, payload map[string]any) (any, error) {
	var out any
	if err := c.do(ctx, sess, http.MethodPost, "/api/payments/initiate/", nil, payload, &out); err != nil {
		return nil, err
	}
	return out, nil
}
