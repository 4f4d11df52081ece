package auth

import (
	"context"
	"time"

	"github.com/bimbelhub/platform/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/bimbelhub/platform/services/auth NotificationGW

// NotificationGW delivers one-time codes to users. A delivery failure is a
// hard failure of the initiating flow; the stored code stays valid until its
// TTL, so the caller may retry by resending.
type NotificationGW interface {
	SendOTP(ctx context.Context, email, code string, purpose models.OTPPurpose, expiry time.Duration) error
}
