package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Elishanunana/hostel-booking-app-integrated/internal/pkg/response"
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/session"
)

const sessionKey = "session"

// SessionAuth resolves the Authorization bearer value to a live session and
// injects it into the request context. The bearer value is the gateway
// session ID, not the backend JWT; clients never see backend tokens.
func SessionAuth(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, "Missing Authorization header")
			return
		}
		if !strings.HasPrefix(header, "Bearer ") {
			response.Unauthorized(c, "Invalid Authorization header format")
			return
		}
		id := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if id == "" {
			response.Unauthorized(c, "Empty session token")
			return
		}

		sess, ok := store.Get(id)
		if !ok {
			response.Unauthorized(c, "Session expired or unknown")
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

// SessionFrom extracts the session placed by SessionAuth.
func SessionFrom(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
