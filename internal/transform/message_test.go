package transform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	cases := []struct {
		name    string
		payload any
		want    string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"plain string", "Room is full", "Room is full"},
		{"empty string", "", "An unexpected error occurred"},
		{"error value", errors.New("connection reset"), "connection reset"},
		{"message key wins", map[string]any{"message": "Invalid credentials", "detail": "ignored"}, "Invalid credentials"},
		{"error key", map[string]any{"error": "Room unavailable"}, "Room unavailable"},
		{"detail key", map[string]any{"detail": "Not found."}, "Not found."},
		{"number payload", 42, "An unexpected error occurred"},
		{"empty map", map[string]any{}, "An unexpected error occurred"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ErrorMessage(tc.payload))
		})
	}
}

func TestErrorMessage_BareArrayPayload(t *testing.T) {
	assert.Equal(t, "Room unavailable", ErrorMessage([]any{"Room unavailable"}))
	assert.Equal(t, "Room unavailable. Dates conflict", ErrorMessage([]any{"Room unavailable", "Dates conflict"}))
	assert.Equal(t, "a. b", ErrorMessage([]string{"a", "b"}))

	// arrays with no usable strings still fall back
	assert.Equal(t, "An unexpected error occurred", ErrorMessage([]any{1, true}))
	assert.Equal(t, "An unexpected error occurred", ErrorMessage([]any{}))
}

func TestErrorMessage_FieldViolations(t *testing.T) {
	payload := map[string]any{
		"password": []any{"This field is too short.", "This field is too common."},
		"email":    []any{"Enter a valid email address."},
	}

	// keys are joined in sorted order so the message is deterministic
	want := "Enter a valid email address.. This field is too short.. This field is too common."
	assert.Equal(t, want, ErrorMessage(payload))
}

func TestErrorMessage_MixedFieldValues(t *testing.T) {
	payload := map[string]any{
		"room": "Already booked",
		"misc": []any{1, true},
	}

	assert.Equal(t, "Already booked", ErrorMessage(payload))
}

func TestJoinMessages(t *testing.T) {
	assert.Equal(t, "a. b", JoinMessages([]string{"a", "b"}))
	assert.Empty(t, JoinMessages(nil))
}
