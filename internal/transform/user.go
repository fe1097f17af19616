package transform

import "time"

// UserWire is an account as the backend serves it.
type UserWire struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	DateJoined string `json:"date_joined"`
}

// UserView is an account as the UI renders it. Bookings are fetched
// separately and start out empty.
type UserView struct {
	ID         int64         `json:"id"`
	Username   string        `json:"username"`
	Email      string        `json:"email"`
	Role       string        `json:"role"`
	JoinedDate string        `json:"joinedDate"`
	Bookings   []BookingView `json:"bookings"`
}

func UserToView(w UserWire) UserView {
	return UserView{
		ID:         w.ID,
		Username:   w.Username,
		Email:      w.Email,
		Role:       w.Role,
		JoinedDate: joinedDate(w.DateJoined, time.Now()),
		Bookings:   []BookingView{},
	}
}

// joinedDate reduces a backend timestamp to a plain date; an unreadable
// timestamp falls back to today.
func joinedDate(timestamp string, now time.Time) string {
	for _, layout := range []string{time.RFC3339Nano, wireDateLayout} {
		if t, err := time.Parse(layout, timestamp); err == nil {
			return t.Format(wireDateLayout)
		}
	}
	return now.Format(wireDateLayout)
}
