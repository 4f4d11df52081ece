package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/bimbelhub/platform/internal/pkg/database"
	"github.com/bimbelhub/platform/internal/pkg/models"
)

// UserRepo provides access to persistent user records
type UserRepo struct {
	db *sqlx.DB
}

// NewUserRepo creates a new user repository instance
func NewUserRepo(db *sqlx.DB) *UserRepo {
	return &UserRepo{db: db}
}

// OTPRepo stores OTP codes, attempt counters and resend budgets in Redis
type OTPRepo struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewOTPRepo creates a new OTP repository instance
func NewOTPRepo(cfg *models.Config, redisClient *database.RedisClient) *OTPRepo {
	return &OTPRepo{
		cfg:         cfg,
		redisClient: redisClient,
	}
}

// FlowStateRepo stores single-use flow markers in Redis
type FlowStateRepo struct {
	redisClient *database.RedisClient
}

// NewFlowStateRepo creates a new flow-state repository instance
func NewFlowStateRepo(redisClient *database.RedisClient) *FlowStateRepo {
	return &FlowStateRepo{redisClient: redisClient}
}

// RateLimiter enforces fixed-window ceilings backed by Redis counters
type RateLimiter struct {
	cfg         *models.Config
	redisClient *database.RedisClient
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(cfg *models.Config, redisClient *database.RedisClient) *RateLimiter {
	return &RateLimiter{
		cfg:         cfg,
		redisClient: redisClient,
	}
}
