package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/bimbelhub/platform/internal/pkg/constants"
	"github.com/bimbelhub/platform/internal/pkg/models"
)

func otpKey(email string, purpose models.OTPPurpose) string {
	return fmt.Sprintf(constants.KeyAuthOTP, purpose, email)
}

func attemptKey(email string, purpose models.OTPPurpose) string {
	return fmt.Sprintf(constants.KeyAuthAttempts, purpose, email)
}

func resendKey(email string) string {
	return fmt.Sprintf(constants.KeyAuthResend, email)
}

func (r *OTPRepo) otpTTL() time.Duration {
	return time.Duration(r.cfg.Auth.OTPExpiryMinutes) * time.Minute
}

// StoreOTP writes the code for (email, purpose) with the configured expiry.
// Any prior code for the same key is overwritten.
func (r *OTPRepo) StoreOTP(ctx context.Context, email, code string, purpose models.OTPPurpose) error {
	if err := r.redisClient.Set(ctx, otpKey(email, purpose), code, r.otpTTL()); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	return nil
}

// ValidateOTP compares the submitted code against the stored one. A missing
// or expired code validates false. The code is not consumed here.
func (r *OTPRepo) ValidateOTP(ctx context.Context, email, code string, purpose models.OTPPurpose) (bool, error) {
	stored, err := r.redisClient.Get(ctx, otpKey(email, purpose))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read OTP: %w", err)
	}
	return stored == code, nil
}

// DeleteOTP removes the code for (email, purpose)
func (r *OTPRepo) DeleteOTP(ctx context.Context, email string, purpose models.OTPPurpose) error {
	if err := r.redisClient.Delete(ctx, otpKey(email, purpose)); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}

// TrackAttempt atomically increments the failed-validation counter for
// (email, purpose). The counter lives as long as the OTP window.
func (r *OTPRepo) TrackAttempt(ctx context.Context, email string, purpose models.OTPPurpose) (int64, error) {
	count, err := r.redisClient.IncrWithTTL(ctx, attemptKey(email, purpose), r.otpTTL())
	if err != nil {
		return 0, fmt.Errorf("failed to track attempt: %w", err)
	}
	return count, nil
}

// RemainingAttempts returns how many failed validations are left before
// lockout
func (r *OTPRepo) RemainingAttempts(ctx context.Context, email string, purpose models.OTPPurpose) (int, error) {
	val, err := r.redisClient.Get(ctx, attemptKey(email, purpose))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return r.cfg.Auth.MaxOTPAttempts, nil
		}
		return 0, fmt.Errorf("failed to read attempts: %w", err)
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("corrupt attempt counter: %w", err)
	}

	remaining := r.cfg.Auth.MaxOTPAttempts - count
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// ResetAttempts clears the failed-validation counter (success or resend
// forgiveness)
func (r *OTPRepo) ResetAttempts(ctx context.Context, email string, purpose models.OTPPurpose) error {
	if err := r.redisClient.Delete(ctx, attemptKey(email, purpose)); err != nil {
		return fmt.Errorf("failed to reset attempts: %w", err)
	}
	return nil
}

// CanResend reports whether the identity still has resend budget this hour
func (r *OTPRepo) CanResend(ctx context.Context, email string) (bool, error) {
	val, err := r.redisClient.Get(ctx, resendKey(email))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return true, nil
		}
		return false, fmt.Errorf("failed to read resend counter: %w", err)
	}

	count, err := strconv.Atoi(val)
	if err != nil {
		return false, fmt.Errorf("corrupt resend counter: %w", err)
	}

	return count < r.cfg.Auth.MaxResendAttempts, nil
}

// TrackResend atomically increments the resend counter with a 1-hour window
func (r *OTPRepo) TrackResend(ctx context.Context, email string) error {
	if _, err := r.redisClient.IncrWithTTL(ctx, resendKey(email), time.Hour); err != nil {
		return fmt.Errorf("failed to track resend: %w", err)
	}
	return nil
}
