package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bimbelhub/platform/internal/pkg/models"
	"github.com/bimbelhub/platform/services/auth"
)

// GetUserByEmail retrieves a user by email address
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, role, org_id, failed_otp_attempts,
		       account_locked_until, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// SaveAuthState partially updates the auth fields this service owns:
// password_hash, failed_otp_attempts and account_locked_until
func (r *UserRepo) SaveAuthState(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()

	query := `
		UPDATE users
		SET password_hash = :password_hash,
		    failed_otp_attempts = :failed_otp_attempts,
		    account_locked_until = :account_locked_until,
		    updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to save auth state: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if rows == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}
