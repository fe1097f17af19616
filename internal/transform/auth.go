package transform

// RoleStudent is the only role the student registration flow may submit.
const RoleStudent = "student"

// LoginCredentials is what the sign-in form collects; username may be blank
// when the user signs in with their email.
type LoginCredentials struct {
	Username string
	Email    string
	Password string
}

// LoginWire is the login payload the backend accepts.
type LoginWire struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationWire is the account-creation payload the backend accepts.
type RegistrationWire struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginToWire falls back to the email when no username was supplied; the
// backend accepts either value in the username field.
func LoginToWire(c LoginCredentials) LoginWire {
	username := c.Username
	if username == "" {
		username = c.Email
	}
	return LoginWire{Username: username, Email: c.Email, Password: c.Password}
}

// StudentRegistrationToWire pins the student role regardless of what the
// caller sent. Provider sign-up goes through its own endpoint.
func StudentRegistrationToWire(username, email, password string) RegistrationWire {
	return RegistrationWire{Username: username, Email: email, Password: password, Role: RoleStudent}
}
