package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"strconv"

	"medical-appointment-service/internal/adapters"
	"medical-appointment-service/internal/domain"
	"medical-appointment-service/internal/domain/dtos"
	"medical-appointment-service/internal/domain/entities"
	"medical-appointment-service/internal/domain/repositories"
)

const (
	otpMin = 100000
	otpMax = 999999
)

// OTPGenerator returns a code in [100000, 999999].
type OTPGenerator func() (int, error)

// RandomOTP draws a code uniformly from [100000, 999999].
func RandomOTP() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpMax-otpMin+1))
	if err != nil {
		return 0, fmt.Errorf("generate otp: %w", err)
	}
	return int(n.Int64()) + otpMin, nil
}

// IdentityOption configures an IdentityServiceImpl.
type IdentityOption func(*IdentityServiceImpl)

// WithOTPGenerator replaces RandomOTP.
func WithOTPGenerator(gen OTPGenerator) IdentityOption {
	return func(s *IdentityServiceImpl) { s.generateOTP = gen }
}

// WithMaxOTPAttempts locks verification of a pending signup after n wrong
// codes until a new code is issued. Zero disables the limit.
func WithMaxOTPAttempts(n int) IdentityOption {
	return func(s *IdentityServiceImpl) { s.maxAttempts = n }
}

// IdentityServiceImpl implements IdentityServiceContract.
type IdentityServiceImpl struct {
	userRepo     repositories.UserRepositoryContract
	pendingRepo  repositories.PendingSignupRepositoryContract
	sessionRepo  repositories.SessionRepositoryContract
	queueAdapter adapters.QueueAdapter
	logger       *log.Logger
	generateOTP  OTPGenerator
	maxAttempts  int
}

// NewIdentityService wires the identity flow. queueAdapter may be nil.
func NewIdentityService(
	userRepo repositories.UserRepositoryContract,
	pendingRepo repositories.PendingSignupRepositoryContract,
	sessionRepo repositories.SessionRepositoryContract,
	queueAdapter adapters.QueueAdapter,
	logger *log.Logger,
	opts ...IdentityOption,
) IdentityServiceContract {
	s := &IdentityServiceImpl{
		userRepo:     userRepo,
		pendingRepo:  pendingRepo,
		sessionRepo:  sessionRepo,
		queueAdapter: queueAdapter,
		logger:       logger,
		generateOTP:  RandomOTP,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *IdentityServiceImpl) BeginSignup(ctx context.Context, sess *Session, req dtos.SignupRequest) (int, error) {
	if err := dtos.Validate(req); err != nil {
		return 0, err
	}
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Printf("Error looking up user %s: %v", req.Email, err)
		return 0, err
	}
	if existing != nil {
		return 0, domain.ErrDuplicateUser
	}

	otp, err := s.generateOTP()
	if err != nil {
		return 0, err
	}
	pending := entities.PendingSignup{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		OTP:      otp,
	}
	if err := s.pendingRepo.Save(ctx, sess.ID, pending); err != nil {
		s.logger.Printf("Error saving pending signup for %s: %v", req.Email, err)
		return 0, err
	}
	sess.Cooldown.Reset()
	sess.failedAttempts = 0
	s.logger.Printf("Signup pending for %s (session %q)", req.Email, sess.ID)

	publishNotification(ctx, s.queueAdapter, s.logger, Notification{
		Kind:      NotificationOTPIssued,
		Recipient: pending.Email,
		Phone:     pending.Phone,
		Message:   fmt.Sprintf("Your verification code is %d", otp),
	})
	return otp, nil
}

func (s *IdentityServiceImpl) VerifyOTP(ctx context.Context, sess *Session, code string) (*entities.User, error) {
	pending, err := s.pendingRepo.Get(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	if pending == nil {
		return nil, domain.ErrNoPendingSignup
	}
	if s.maxAttempts > 0 && sess.failedAttempts >= s.maxAttempts {
		return nil, domain.ErrTooManyAttempts
	}
	if strconv.Itoa(pending.OTP) != code {
		sess.failedAttempts++
		s.logger.Printf("Wrong code for pending signup %s (session %q, attempt %d)", pending.Email, sess.ID, sess.failedAttempts)
		return nil, domain.ErrInvalidOTP
	}

	user := pending.ToUser()
	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.Printf("Email %s was verified by another session first (session %q)", user.Email, sess.ID)
		return nil, domain.ErrDuplicateUser
	}
	if err := s.userRepo.Append(ctx, user); err != nil {
		s.logger.Printf("Error storing verified user %s: %v", user.Email, err)
		return nil, err
	}
	if err := s.pendingRepo.Clear(ctx, sess.ID); err != nil {
		s.logger.Printf("Error clearing pending signup for %s: %v", user.Email, err)
		return nil, err
	}
	sess.failedAttempts = 0
	s.logger.Printf("User %s verified", user.Email)
	return &user, nil
}

// ResendOTP does not consult the cooldown; callers gate on ResendStatus.
func (s *IdentityServiceImpl) ResendOTP(ctx context.Context, sess *Session) (int, error) {
	pending, err := s.pendingRepo.Get(ctx, sess.ID)
	if err != nil {
		return 0, err
	}
	if pending == nil {
		return 0, domain.ErrNoPendingSignup
	}
	otp, err := s.generateOTP()
	if err != nil {
		return 0, err
	}
	pending.OTP = otp
	if err := s.pendingRepo.Save(ctx, sess.ID, *pending); err != nil {
		s.logger.Printf("Error updating pending signup for %s: %v", pending.Email, err)
		return 0, err
	}
	sess.Cooldown.Reset()
	sess.failedAttempts = 0
	s.logger.Printf("Code re-issued for %s (session %q)", pending.Email, sess.ID)

	publishNotification(ctx, s.queueAdapter, s.logger, Notification{
		Kind:      NotificationOTPResent,
		Recipient: pending.Email,
		Phone:     pending.Phone,
		Message:   fmt.Sprintf("Your new verification code is %d", otp),
	})
	return otp, nil
}

func (s *IdentityServiceImpl) ResendStatus(ctx context.Context, sess *Session) (dtos.ResendStatusResponse, error) {
	pending, err := s.pendingRepo.Get(ctx, sess.ID)
	if err != nil {
		return dtos.ResendStatusResponse{}, err
	}
	return dtos.ResendStatusResponse{
		Pending:   pending != nil,
		CanResend: sess.Cooldown.CanResend(),
		ResendIn:  sess.Cooldown.Remaining(),
	}, nil
}

// Login reports ErrInvalidCredentials for an unknown email and for a wrong
// password alike.
func (s *IdentityServiceImpl) Login(ctx context.Context, sess *Session, req dtos.LoginRequest) (*entities.User, error) {
	if err := dtos.Validate(req); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != req.Password {
		s.logger.Printf("Failed login for %s", req.Email)
		return nil, domain.ErrInvalidCredentials
	}
	if err := s.sessionRepo.SetLoggedIn(ctx, sess.ID, *user); err != nil {
		return nil, err
	}
	s.logger.Printf("User %s logged in (session %q)", user.Email, sess.ID)
	return user, nil
}

func (s *IdentityServiceImpl) Logout(ctx context.Context, sess *Session) error {
	return s.sessionRepo.ClearLoggedIn(ctx, sess.ID)
}

func (s *IdentityServiceImpl) CurrentUser(ctx context.Context, sess *Session) (*entities.User, error) {
	return s.sessionRepo.GetLoggedIn(ctx, sess.ID)
}
