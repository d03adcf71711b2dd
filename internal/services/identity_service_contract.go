package services

import (
	"context"

	"medical-appointment-service/internal/domain/dtos"
	"medical-appointment-service/internal/domain/entities"
)

// IdentityServiceContract runs the signup, OTP verification and login flow
// for a Session.
type IdentityServiceContract interface {
	// BeginSignup stores a pending signup for the session and returns the
	// issued code, replacing any signup already pending.
	BeginSignup(ctx context.Context, sess *Session, req dtos.SignupRequest) (int, error)
	// VerifyOTP promotes the pending signup to a user when code matches.
	VerifyOTP(ctx context.Context, sess *Session, code string) (*entities.User, error)
	// ResendOTP issues a new code for the pending signup.
	ResendOTP(ctx context.Context, sess *Session) (int, error)
	ResendStatus(ctx context.Context, sess *Session) (dtos.ResendStatusResponse, error)
	Login(ctx context.Context, sess *Session, req dtos.LoginRequest) (*entities.User, error)
	Logout(ctx context.Context, sess *Session) error
	// CurrentUser returns nil, nil when nobody is logged in.
	CurrentUser(ctx context.Context, sess *Session) (*entities.User, error)
}
