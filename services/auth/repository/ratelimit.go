package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/bimbelhub/platform/internal/pkg/constants"
	"github.com/bimbelhub/platform/internal/pkg/models"
)

// operationLimit describes one fixed-window ceiling
type operationLimit struct {
	limit  int
	window time.Duration
}

func (rl *RateLimiter) operationLimits() map[string]operationLimit {
	return map[string]operationLimit{
		constants.RateScopeRegister: {limit: rl.cfg.Auth.RateRegisterPerHour, window: time.Hour},
		constants.RateScopeLogin:    {limit: rl.cfg.Auth.RateLoginPer15Min, window: 15 * time.Minute},
		constants.RateScopeResend:   {limit: rl.cfg.Auth.RateResendPerHour, window: time.Hour},
		constants.RateScopeVerify:   {limit: rl.cfg.Auth.RateVerifyPer5Min, window: 5 * time.Minute},
	}
}

// CheckLimit counts the request against the key's fixed window and reports
// whether it fits under the limit. The count is a single atomic INCR, so two
// concurrent requests can never both squeeze under the ceiling; the counter
// only resets via TTL expiry.
func (rl *RateLimiter) CheckLimit(ctx context.Context, key string, limit int, window time.Duration) (*models.RateLimitResult, error) {
	count, err := rl.redisClient.IncrWithTTL(ctx, key, window)
	if err != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}

	ttl, err := rl.redisClient.TTL(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}

	result := &models.RateLimitResult{
		Allowed:   count <= int64(limit),
		ResetTime: time.Now().Add(ttl),
	}
	if remaining := int64(limit) - count; remaining > 0 {
		result.Remaining = int(remaining)
	}

	return result, nil
}

// CheckOperationLimit applies the configured per-operation ceiling
func (rl *RateLimiter) CheckOperationLimit(ctx context.Context, operation, identifier string) (*models.RateLimitResult, error) {
	op, ok := rl.operationLimits()[operation]
	if !ok {
		return nil, fmt.Errorf("unknown rate limit operation: %s", operation)
	}

	key := fmt.Sprintf(constants.KeyAuthRate, operation, identifier)
	return rl.CheckLimit(ctx, key, op.limit, op.window)
}

// CheckIPLimit applies the per-IP ceiling across all auth endpoints
func (rl *RateLimiter) CheckIPLimit(ctx context.Context, ip string) (*models.RateLimitResult, error) {
	key := fmt.Sprintf(constants.KeyAuthRate, constants.RateScopeIP, ip)
	return rl.CheckLimit(ctx, key, rl.cfg.Auth.RateIPPerHour, time.Hour)
}
