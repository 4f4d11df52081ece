package usecase

import (
	"github.com/bimbelhub/platform/internal/pkg/models"
	"github.com/bimbelhub/platform/services/auth"
)

// AuthUC implements the authentication usecase
type AuthUC struct {
	cfg      *models.Config
	userRepo auth.UserRepo
	otpRepo  auth.OTPRepo
	flowRepo auth.FlowStateRepo
	limiter  auth.RateLimiter
	notifyGW auth.NotificationGW
}

// NewAuthUC creates a new authentication usecase instance
func NewAuthUC(
	cfg *models.Config,
	userRepo auth.UserRepo,
	otpRepo auth.OTPRepo,
	flowRepo auth.FlowStateRepo,
	limiter auth.RateLimiter,
	notifyGW auth.NotificationGW,
) *AuthUC {
	return &AuthUC{
		cfg:      cfg,
		userRepo: userRepo,
		otpRepo:  otpRepo,
		flowRepo: flowRepo,
		limiter:  limiter,
		notifyGW: notifyGW,
	}
}
