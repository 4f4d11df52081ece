package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/bimbelhub/platform/internal/pkg/constants"
	"github.com/bimbelhub/platform/internal/pkg/jwt"
	"github.com/bimbelhub/platform/internal/pkg/logger"
	"github.com/bimbelhub/platform/internal/pkg/models"
	"github.com/bimbelhub/platform/services/auth"
)

// Login authenticates with email and password directly, without an OTP
// challenge. Used for trusted internal callers.
func (uc *AuthUC) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := uc.loadUserForCredentials(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := uc.comparePassword(user, password); err != nil {
		return nil, err
	}
	return uc.issueToken(user)
}

// InitiateLoginOTP verifies the password and, when it matches, issues a
// login OTP to the account's email. The caller completes the flow with
// VerifyLoginOTP.
func (uc *AuthUC) InitiateLoginOTP(ctx context.Context, email, password, ip string) (*models.OTPChallengeResponse, error) {
	if err := uc.checkIPLimit(ctx, ip); err != nil {
		return nil, err
	}

	user, err := uc.loadUserForCredentials(ctx, email)
	if err != nil {
		return nil, err
	}
	if err := uc.comparePassword(user, password); err != nil {
		return nil, err
	}

	result, err := uc.limiter.CheckOperationLimit(ctx, constants.RateScopeLogin, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check login rate limit: %w", err)
	}
	if !result.Allowed {
		return nil, &auth.RateLimitError{
			Operation: constants.RateScopeLogin,
			Remaining: result.Remaining,
			ResetTime: result.ResetTime,
		}
	}

	if err := uc.issueAndDeliver(ctx, email, models.PurposeLogin); err != nil {
		return nil, err
	}

	remaining, err := uc.otpRepo.RemainingAttempts(ctx, email, models.PurposeLogin)
	if err != nil {
		return nil, fmt.Errorf("failed to read remaining attempts: %w", err)
	}

	return &models.OTPChallengeResponse{
		Message:           "A login code has been sent to your email",
		Email:             email,
		RemainingAttempts: remaining,
	}, nil
}

// VerifyLoginOTP validates the login OTP and issues a session token on
// success. Wrong codes advance the lockout counter.
func (uc *AuthUC) VerifyLoginOTP(ctx context.Context, email, otp, ip string) (*models.AuthResponse, error) {
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

	valid, err := uc.otpRepo.ValidateOTP(ctx, email, otp, models.PurposeLogin)
	if err != nil {
		return nil, fmt.Errorf("failed to validate OTP: %w", err)
	}
	if !valid {
		return nil, uc.handleFailedValidation(ctx, user, email, models.PurposeLogin)
	}

	if err := uc.clearFailures(ctx, user, email, models.PurposeLogin); err != nil {
		return nil, err
	}

	logger.Info("Login OTP verified", logger.String("email", email))
	return uc.issueToken(user)
}

// loadUserForCredentials fetches the account for a password check. Unknown
// emails collapse into the generic credential error so callers cannot probe
// which addresses are registered.
func (uc *AuthUC) loadUserForCredentials(ctx context.Context, email string) (*models.User, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (uc *AuthUC) comparePassword(user *models.User, password string) error {
	if user.PasswordHash == "" {
		return auth.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return auth.ErrInvalidCredentials
	}
	return nil
}

func (uc *AuthUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, user.Role, user.OrgID, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.Summary(),
	}, nil
}
