package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/bimbelhub/platform/internal/pkg/constants"
	"github.com/bimbelhub/platform/internal/pkg/logger"
	"github.com/bimbelhub/platform/internal/pkg/models"
	"github.com/bimbelhub/platform/internal/utils"
	"github.com/bimbelhub/platform/services/auth"
)

// ensureNotLocked rejects the request while the account lock window is open.
func (uc *AuthUC) ensureNotLocked(user *models.User) error {
	now := time.Now()
	if user.IsLocked(now) {
		return &auth.AccountLockedError{MinutesRemaining: user.LockMinutesRemaining(now)}
	}
	return nil
}

// checkIPLimit enforces the per-IP request ceiling shared by all OTP flows.
func (uc *AuthUC) checkIPLimit(ctx context.Context, ip string) error {
	result, err := uc.limiter.CheckIPLimit(ctx, ip)
	if err != nil {
		return fmt.Errorf("failed to check IP rate limit: %w", err)
	}
	if !result.Allowed {
		return &auth.RateLimitError{
			Operation: constants.RateScopeIP,
			Remaining: result.Remaining,
			ResetTime: result.ResetTime,
		}
	}
	return nil
}

// issueAndDeliver generates a fresh OTP, stores it (replacing any outstanding
// code for the same purpose) and hands it to the notification gateway.
func (uc *AuthUC) issueAndDeliver(ctx context.Context, email string, purpose models.OTPPurpose) error {
	code, err := utils.GenerateOTP(uc.cfg.Auth.OTPLength)
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	if err := uc.otpRepo.StoreOTP(ctx, email, code, purpose); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	expiry := time.Duration(uc.cfg.Auth.OTPExpiryMinutes) * time.Minute
	if err := uc.notifyGW.SendOTP(ctx, email, code, purpose, expiry); err != nil {
		return err
	}

	logger.Info("OTP issued",
		logger.String("email", email),
		logger.String("purpose", string(purpose)))
	return nil
}

// handleFailedValidation records a wrong OTP submission. For accounts it
// advances the failure counter and locks the account once the ceiling is
// reached; the outstanding code is invalidated with the lock so a fresh one
// must be issued after the lock clears. For pre-registration flows only the
// attempt ledger moves.
func (uc *AuthUC) handleFailedValidation(ctx context.Context, user *models.User, email string, purpose models.OTPPurpose) error {
	count, err := uc.otpRepo.TrackAttempt(ctx, email, purpose)
	if err != nil {
		return fmt.Errorf("failed to track OTP attempt: %w", err)
	}

	failed := int(count)
	if user != nil {
		failed = user.FailedOTPAttempts + 1
		user.FailedOTPAttempts = failed

		if failed >= uc.cfg.Auth.MaxOTPAttempts {
			lockedUntil := time.Now().Add(time.Duration(uc.cfg.Auth.LockoutMinutes) * time.Minute)
			user.AccountLockedAt = &lockedUntil

			if err := uc.otpRepo.DeleteOTP(ctx, email, purpose); err != nil {
				return fmt.Errorf("failed to invalidate OTP: %w", err)
			}
			if err := uc.userRepo.SaveAuthState(ctx, user); err != nil {
				return fmt.Errorf("failed to persist account lock: %w", err)
			}

			logger.Warn("Account locked after repeated OTP failures",
				logger.String("email", email),
				logger.String("purpose", string(purpose)),
				logger.Int("failed_attempts", failed))
			return &auth.AccountLockedError{MinutesRemaining: uc.cfg.Auth.LockoutMinutes}
		}

		if err := uc.userRepo.SaveAuthState(ctx, user); err != nil {
			return fmt.Errorf("failed to persist attempt count: %w", err)
		}
	}

	remaining := uc.cfg.Auth.MaxOTPAttempts - failed
	if remaining < 0 {
		remaining = 0
	}
	return &auth.InvalidOTPError{AttemptsRemaining: remaining}
}

// clearFailures consumes the validated OTP and resets all failure tracking,
// including a stale lock timestamp.
func (uc *AuthUC) clearFailures(ctx context.Context, user *models.User, email string, purpose models.OTPPurpose) error {
	if err := uc.otpRepo.DeleteOTP(ctx, email, purpose); err != nil {
		return fmt.Errorf("failed to consume OTP: %w", err)
	}
	if err := uc.otpRepo.ResetAttempts(ctx, email, purpose); err != nil {
		return fmt.Errorf("failed to reset OTP attempts: %w", err)
	}

	if user != nil {
		user.FailedOTPAttempts = 0
		user.AccountLockedAt = nil
		if err := uc.userRepo.SaveAuthState(ctx, user); err != nil {
			return fmt.Errorf("failed to reset account auth state: %w", err)
		}
	}
	return nil
}
