package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/bimbelhub/platform/internal/pkg/constants"
	"github.com/bimbelhub/platform/services/auth"
)

// Each flow state carries its own TTL. Pre-register verification survives 30
// days so a delayed registration call can still trust it; the reset states
// bound the forgot-password flow to 30 minutes.
var flowStateTTL = map[auth.FlowState]time.Duration{
	auth.StatePreRegisterVerified: 30 * 24 * time.Hour,
	auth.StateResetPending:        30 * time.Minute,
	auth.StateResetVerified:       30 * time.Minute,
}

func flowStateKey(email string, state auth.FlowState) string {
	return fmt.Sprintf(constants.KeyAuthFlowState, state, email)
}

// MarkState sets the flow marker for the email with the state's TTL
func (r *FlowStateRepo) MarkState(ctx context.Context, email string, state auth.FlowState) error {
	ttl, ok := flowStateTTL[state]
	if !ok {
		return fmt.Errorf("unknown flow state: %s", state)
	}
	if err := r.redisClient.Set(ctx, flowStateKey(email, state), "1", ttl); err != nil {
		return fmt.Errorf("failed to mark flow state: %w", err)
	}
	return nil
}

// InState reports whether the marker is present and unexpired
func (r *FlowStateRepo) InState(ctx context.Context, email string, state auth.FlowState) (bool, error) {
	_, err := r.redisClient.Get(ctx, flowStateKey(email, state))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read flow state: %w", err)
	}
	return true, nil
}

// ClearState removes the marker; markers are single-use
func (r *FlowStateRepo) ClearState(ctx context.Context, email string, state auth.FlowState) error {
	if err := r.redisClient.Delete(ctx, flowStateKey(email, state)); err != nil {
		return fmt.Errorf("failed to clear flow state: %w", err)
	}
	return nil
}
