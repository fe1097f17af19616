package booking

import (
	"github.com/Elishanunana/hostel-booking-app-integrated/internal/transform"
)

// DateValidationError carries every violated date rule; the handler joins
// them into a single user-facing message.
type DateValidationError struct {
	Violations []string
}

func (e *DateValidationError) Error() string {
	return transform.JoinMessages(e.Violations)
}
