package services

import "medical-appointment-service/internal/scheduling"

// Session is the caller-owned state of one client: the namespace its pending
// signup and logged-in user live under, the resend cooldown, and the count of
// wrong codes since the last one was issued. The zero value is the default
// session. A Session must not be used by two goroutines at once.
type Session struct {
	ID       string
	Cooldown scheduling.Cooldown

	failedAttempts int
}

func NewSession(id string) *Session {
	return &Session{ID: id}
}

// FailedAttempts is the number of wrong codes submitted against the current
// pending signup.
func (s *Session) FailedAttempts() int {
	return s.failedAttempts
}
