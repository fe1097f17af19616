package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("backend-only-secret"))
	require.NoError(t, err)
	return raw
}

func TestInspect(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	raw := signedToken(t, jwt.MapClaims{"user_id": 42, "exp": exp.Unix()})

	info, err := Inspect(raw)

	require.NoError(t, err)
	assert.Equal(t, int64(42), info.UserID)
	assert.True(t, info.ExpiresAt.Equal(exp))
}

func TestInspect_StringUserID(t *testing.T) {
	info, err := Inspect(signedToken(t, jwt.MapClaims{"user_id": "42"}))

	require.NoError(t, err)
	assert.Equal(t, int64(42), info.UserID)

	info, err = Inspect(signedToken(t, jwt.MapClaims{"user_id": "not-a-number"}))
	require.NoError(t, err)
	assert.Zero(t, info.UserID)
}

func TestInspect_MissingClaims(t *testing.T) {
	info, err := Inspect(signedToken(t, jwt.MapClaims{"sub": "abc"}))

	require.NoError(t, err)
	assert.Zero(t, info.UserID)
	assert.True(t, info.ExpiresAt.IsZero())
}

func TestInspect_Garbage(t *testing.T) {
	_, err := Inspect("not.a.token")
	assert.ErrorIs(t, err, ErrUnreadable)

	_, err = Inspect("")
	assert.ErrorIs(t, err, ErrUnreadable)
}
