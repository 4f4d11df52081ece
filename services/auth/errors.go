package auth

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors surfaced at the usecase boundary
var (
	// ErrUserNotFound is returned by UserRepo when no row matches
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers unknown emails and wrong passwords alike
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrSessionExpired is returned when a password reset is attempted
	// without a verified reset session
	ErrSessionExpired = errors.New("password reset session has expired")

	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordReuse    = errors.New("new password must be different from the current password")
)

// RateLimitError reports a rejected request within a fixed window
type RateLimitError struct {
	Operation string
	Remaining int
	ResetTime time.Time
}

func (e *RateLimitError) Error() string {
	if e.ResetTime.IsZero() {
		return fmt.Sprintf("too many %s requests, please try again later", e.Operation)
	}
	return fmt.Sprintf("too many %s requests, try again after %s", e.Operation, e.ResetTime.Format(time.RFC3339))
}

// AccountLockedError reports a lockout in effect for the identity
type AccountLockedError struct {
	MinutesRemaining int
}

func (e *AccountLockedError) Error() string {
	return fmt.Sprintf("account locked due to too many failed attempts, try again in %d minutes", e.MinutesRemaining)
}

// InvalidOTPError reports a failed OTP validation and the attempts left
// before lockout
type InvalidOTPError struct {
	AttemptsRemaining int
}

func (e *InvalidOTPError) Error() string {
	return fmt.Sprintf("invalid OTP, %d attempts remaining", e.AttemptsRemaining)
}
