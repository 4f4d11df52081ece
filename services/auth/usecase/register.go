package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bimbelhub/platform/internal/pkg/constants"
	"github.com/bimbelhub/platform/internal/pkg/logger"
	"github.com/bimbelhub/platform/internal/pkg/models"
	"github.com/bimbelhub/platform/services/auth"
)

// VerifyEmail validates a registration OTP. The flow serves two shapes of
// caller: accounts awaiting activation, and addresses verified ahead of
// registration. For the latter no account row exists yet, so only the
// attempt ledger moves and success is recorded as a pre-registration flag
// the registration flow can consume later.
func (uc *AuthUC) VerifyEmail(ctx context.Context, email, otp, ip string) (*models.MessageResponse, error) {
	if err := uc.checkIPLimit(ctx, ip); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		user = nil
	}
	if user != nil {
		if err := uc.ensureNotLocked(user); err != nil {
			return nil, err
		}
	}

	valid, err := uc.otpRepo.ValidateOTP(ctx, email, otp, models.PurposeRegister)
	if err != nil {
		return nil, fmt.Errorf("failed to validate OTP: %w", err)
	}
	if !valid {
		return nil, uc.handleFailedValidation(ctx, user, email, models.PurposeRegister)
	}

	if err := uc.clearFailures(ctx, user, email, models.PurposeRegister); err != nil {
		return nil, err
	}

	if user == nil {
		if err := uc.flowRepo.MarkState(ctx, email, auth.StatePreRegisterVerified); err != nil {
			return nil, fmt.Errorf("failed to record pre-registration verification: %w", err)
		}
	}

	logger.Info("Email verified", logger.String("email", email))
	return &models.MessageResponse{Message: "Email verified successfully"}, nil
}

// ResendVerificationOTP issues a replacement registration code. A resend is
// also a forgiveness action: prior failed attempts are wiped so the holder of
// the fresh code starts with a clean slate. Locked accounts must wait out the
// lock window first.
func (uc *AuthUC) ResendVerificationOTP(ctx context.Context, email, ip string) (*models.MessageResponse, error) {
	if err := uc.checkIPLimit(ctx, ip); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, auth.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		user = nil
	}
	if user != nil {
		if err := uc.ensureNotLocked(user); err != nil {
			return nil, err
		}
	}

	canResend, err := uc.otpRepo.CanResend(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check resend quota: %w", err)
	}
	if !canResend {
		return nil, &auth.RateLimitError{Operation: constants.RateScopeResend}
	}

	if err := uc.otpRepo.ResetAttempts(ctx, email, models.PurposeRegister); err != nil {
		return nil, fmt.Errorf("failed to reset OTP attempts: %w", err)
	}
	if user != nil {
		user.FailedOTPAttempts = 0
		user.AccountLockedAt = nil
		if err := uc.userRepo.SaveAuthState(ctx, user); err != nil {
			return nil, fmt.Errorf("failed to reset account auth state: %w", err)
		}
	}

	if err := uc.issueAndDeliver(ctx, email, models.PurposeRegister); err != nil {
		return nil, err
	}
	if err := uc.otpRepo.TrackResend(ctx, email); err != nil {
		return nil, fmt.Errorf("failed to track resend: %w", err)
	}

	return &models.MessageResponse{Message: "A new verification code has been sent to your email"}, nil
}
