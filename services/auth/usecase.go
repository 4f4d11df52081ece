package auth

import (
	"context"

	"github.com/bimbelhub/platform/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/bimbelhub/platform/services/auth AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	// Direct email/password login, no OTP
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)

	// OTP login flow
	InitiateLoginOTP(ctx context.Context, email, password, ip string) (*models.OTPChallengeResponse, error)
	VerifyLoginOTP(ctx context.Context, email, otp, ip string) (*models.AuthResponse, error)

	// Email verification flow (registration)
	VerifyEmail(ctx context.Context, email, otp, ip string) (*models.MessageResponse, error)
	ResendVerificationOTP(ctx context.Context, email, ip string) (*models.MessageResponse, error)

	// Forgot-password flow
	ForgotPassword(ctx context.Context, email, ip string) (*models.MessageResponse, error)
	VerifyForgotPasswordOTP(ctx context.Context, email, otp, ip string) (*models.MessageResponse, error)
	ResetPassword(ctx context.Context, email, newPassword, confirmPassword string) (*models.MessageResponse, error)
}
