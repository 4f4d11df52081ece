package models

import "time"

// OTPPurpose scopes an OTP code and its attempt counter to one flow
type OTPPurpose string

const (
	PurposeRegister      OTPPurpose = "register"
	PurposeLogin         OTPPurpose = "login"
	PurposePasswordReset OTPPurpose = "password_reset"
)

// LoginRequest represents a direct email/password login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// VerifyOTPRequest represents an OTP verification for any purpose
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

// EmailRequest carries only an email address (resend, forgot password)
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest represents the final step of the forgot-password flow
type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt int64       `json:"expires_at"`
	User      UserSummary `json:"user"`
}

// OTPChallengeResponse is returned when an OTP has been issued
type OTPChallengeResponse struct {
	Message           string `json:"message"`
	Email             string `json:"email"`
	RemainingAttempts int    `json:"remaining_attempts"`
}

// MessageResponse is a bare confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// RateLimitResult reports the outcome of a fixed-window limit check
type RateLimitResult struct {
	Allowed   bool      `json:"allowed"`
	Remaining int       `json:"remaining"`
	ResetTime time.Time `json:"reset_time"`
}
