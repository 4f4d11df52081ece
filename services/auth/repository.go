package auth

import (
	"context"
	"time"

	"github.com/bimbelhub/platform/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/bimbelhub/platform/services/auth UserRepo,OTPRepo,FlowStateRepo,RateLimiter

// UserRepo defines persistent user record access
type UserRepo interface {
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// SaveAuthState partially updates password_hash, failed_otp_attempts and
	// account_locked_until
	SaveAuthState(ctx context.Context, user *models.User) error
}

// OTPRepo stores one-time codes and the counters feeding lockout decisions.
// Codes and attempt counters are keyed by (email, purpose); at most one
// active code exists per key and a new store overwrites the prior one.
type OTPRepo interface {
	StoreOTP(ctx context.Context, email, code string, purpose models.OTPPurpose) error
	// ValidateOTP is a pure equality check; it does not consume the code.
	// Callers must DeleteOTP immediately after a successful validation to
	// enforce one-time use.
	ValidateOTP(ctx context.Context, email, code string, purpose models.OTPPurpose) (bool, error)
	DeleteOTP(ctx context.Context, email string, purpose models.OTPPurpose) error

	TrackAttempt(ctx context.Context, email string, purpose models.OTPPurpose) (int64, error)
	RemainingAttempts(ctx context.Context, email string, purpose models.OTPPurpose) (int, error)
	ResetAttempts(ctx context.Context, email string, purpose models.OTPPurpose) error

	CanResend(ctx context.Context, email string) (bool, error)
	TrackResend(ctx context.Context, email string) error
}

// FlowState is a single-use marker gating a multi-step flow for one email
type FlowState string

const (
	// Email ownership proven before any user row exists
	StatePreRegisterVerified FlowState = "preverified"
	// Forgot-password initiated, reset code outstanding
	StateResetPending FlowState = "reset_pending"
	// Reset code validated, password change authorized
	StateResetVerified FlowState = "reset_verified"
)

// FlowStateRepo tracks flow-state markers, each with its own TTL
type FlowStateRepo interface {
	MarkState(ctx context.Context, email string, state FlowState) error
	InState(ctx context.Context, email string, state FlowState) (bool, error)
	ClearState(ctx context.Context, email string, state FlowState) error
}

// RateLimiter enforces fixed-window request ceilings
type RateLimiter interface {
	CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error)
	CheckOperationLimit(ctx context.Context, operation, identifier string) (*models.RateLimitResult, error)
	CheckIPLimit(ctx context.Context, ip string) (*models.RateLimitResult, error)
}
