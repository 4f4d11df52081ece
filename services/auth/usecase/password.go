package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bimbelhub/platform/internal/pkg/logger"
	"github.com/bimbelhub/platform/internal/pkg/models"
	"github.com/bimbelhub/platform/services/auth"
)

const forgotPasswordMessage = "If an account exists for that email, a password reset code has been sent"

// ForgotPassword starts the password reset flow. The response is identical
// whether or not the email belongs to an account, so the endpoint cannot be
// used to probe which addresses are registered. A code is only actually
// issued for active, unlocked accounts that hold a password.
func (uc *AuthUC) ForgotPassword(ctx context.Context, email, ip string) (*models.MessageResponse, error) {
	if err := uc.checkIPLimit(ctx, ip); err != nil {
		return nil, err
	}

	generic := &models.MessageResponse{Message: forgotPasswordMessage}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return generic, nil
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.IsLocked(time.Now()) || user.PasswordHash == "" {
		return generic, nil
	}

	if err := uc.flowRepo.MarkState(ctx, email, auth.StateResetPending); err != nil {
		return nil, fmt.Errorf("failed to mark reset pending: %w", err)
	}
	if err := uc.issueAndDeliver(ctx, email, models.PurposePasswordReset); err != nil {
		return nil, err
	}

	return generic, nil
}

// VerifyForgotPasswordOTP validates the reset OTP and promotes the flow to
// the verified stage, unlocking ResetPassword for a short window.
func (uc *AuthUC) VerifyForgotPasswordOTP(ctx context.Context, email, otp, ip string) (*models.MessageResponse, error) {
	if err := uc.checkIPLimit(ctx, ip); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if err := uc.ensureNotLocked(user); err != nil {
		return nil, err
	}

	valid, err := uc.otpRepo.ValidateOTP(ctx, email, otp, models.PurposePasswordReset)
	if err != nil {
		return nil, fmt.Errorf("failed to validate OTP: %w", err)
	}
	if !valid {
		return nil, uc.handleFailedValidation(ctx, user, email, models.PurposePasswordReset)
	}

	if err := uc.clearFailures(ctx, user, email, models.PurposePasswordReset); err != nil {
		return nil, err
	}
	if err := uc.flowRepo.MarkState(ctx, email, auth.StateResetVerified); err != nil {
		return nil, fmt.Errorf("failed to mark reset verified: %w", err)
	}

	logger.Info("Password reset OTP verified", logger.String("email", email))
	return &models.MessageResponse{Message: "Code verified, you may now reset your password"}, nil
}

// ResetPassword replaces the account password. It only works inside the
// window opened by VerifyForgotPasswordOTP, and the new password must differ
// from the current one.
func (uc *AuthUC) ResetPassword(ctx context.Context, email, newPassword, confirmPassword string) (*models.MessageResponse, error) {
	verified, err := uc.flowRepo.InState(ctx, email, auth.StateResetVerified)
	if err != nil {
		return nil, fmt.Errorf("failed to check reset state: %w", err)
	}
	if !verified {
		return nil, auth.ErrSessionExpired
	}

	if newPassword != confirmPassword {
		return nil, auth.ErrPasswordMismatch
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrSessionExpired
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if user.PasswordHash != "" {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(newPassword)) == nil {
			return nil, auth.ErrPasswordReuse
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = string(hash)
	user.FailedOTPAttempts = 0
	user.AccountLockedAt = nil
	if err := uc.userRepo.SaveAuthState(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save new password: %w", err)
	}

	if err := uc.flowRepo.ClearState(ctx, email, auth.StateResetVerified); err != nil {
		return nil, fmt.Errorf("failed to clear reset state: %w", err)
	}
	if err := uc.flowRepo.ClearState(ctx, email, auth.StateResetPending); err != nil {
		return nil, fmt.Errorf("failed to clear reset state: %w", err)
	}

	logger.Info("Password reset completed", logger.String("email", email))
	return &models.MessageResponse{Message: "Password has been reset successfully"}, nil
}
