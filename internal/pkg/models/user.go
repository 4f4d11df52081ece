package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account in the learning platform
type User struct {
	ID                uuid.UUID  `json:"id" db:"id"`
	Email             string     `json:"email" db:"email"`
	PasswordHash      string     `json:"-" db:"password_hash"`
	Role              string     `json:"role" db:"role"`
	OrgID             uuid.UUID  `json:"org_id" db:"org_id"`
	FailedOTPAttempts int        `json:"-" db:"failed_otp_attempts"`
	AccountLockedAt   *time.Time `json:"-" db:"account_locked_until"`
	IsActive          bool       `json:"is_active" db:"is_active"`
	CreatedAt         time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at" db:"updated_at"`
}

// IsLocked reports whether the account lockout window is still open
func (u *User) IsLocked(now time.Time) bool {
	return u.AccountLockedAt != nil && u.AccountLockedAt.After(now)
}

// LockMinutesRemaining returns the lockout minutes left, rounded up
func (u *User) LockMinutesRemaining(now time.Time) int {
	if !u.IsLocked(now) {
		return 0
	}
	remaining := u.AccountLockedAt.Sub(now)
	minutes := int(remaining / time.Minute)
	if remaining%time.Minute > 0 {
		minutes++
	}
	return minutes
}

// UserSummary is the public projection returned after authentication
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
	OrgID string `json:"org_id"`
}

// Summary builds the public projection of the user
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID.String(),
		Email: u.Email,
		Role:  u.Role,
		OrgID: u.OrgID.String(),
	}
}
