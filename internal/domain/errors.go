package domain

import (
	"errors"
	"sort"
	"strings"
)

// Error kinds surfaced by the booking and identity services. Callers tell
// them apart with errors.Is.
var (
	ErrValidation          = errors.New("validation failed")
	ErrDuplicateUser       = errors.New("user already exists")
	ErrNoPendingSignup     = errors.New("no signup in progress")
	ErrInvalidOTP          = errors.New("invalid otp")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrSlotUnavailable     = errors.New("appointment slot not available")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDoctorUnavailable   = errors.New("doctor is not available for booking")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrTooManyAttempts     = errors.New("too many otp attempts")
)

// ValidationError lists the request fields that failed validation.
type ValidationError struct {
	Fields []string
}

// NewValidationError returns a ValidationError for the given fields, sorted
// so messages are stable.
func NewValidationError(fields ...string) *ValidationError {
	sorted := append([]string(nil), fields...)
	sort.Strings(sorted)
	return &ValidationError{Fields: sorted}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return ErrValidation.Error() + ": missing or invalid " + strings.Join(e.Fields, ", ")
}

// Is makes errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
