package entities

// User is a verified account. Passwords are kept and compared as plain text.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// PendingSignup is a signup waiting for its one-time code. At most one exists
// per session.
type PendingSignup struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	OTP      int    `json:"otp"`
}

// ToUser drops the one-time code and returns the account to persist.
func (p PendingSignup) ToUser() User {
	return User{
		Username: p.Username,
		Email:    p.Email,
		Phone:    p.Phone,
		Password: p.Password,
	}
}
