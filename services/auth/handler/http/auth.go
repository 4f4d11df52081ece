package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bimbelhub/platform/internal/pkg/logger"
	"github.com/bimbelhub/platform/internal/pkg/models"
	"github.com/bimbelhub/platform/internal/utils"
	"github.com/bimbelhub/platform/services/auth"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// Login handles direct email and password authentication
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return h.handleAuthError(c, "Login", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// InitiateLoginOTP handles the first step of OTP login
func (h *AuthHandler) InitiateLoginOTP(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.InitiateLoginOTP(c.Request().Context(), req.Email, req.Password, c.RealIP())
	if err != nil {
		return h.handleAuthError(c, "InitiateLoginOTP", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// VerifyLoginOTP completes OTP login and returns a session token
func (h *AuthHandler) VerifyLoginOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Email and OTP are required")
	}

	resp, err := h.authUC.VerifyLoginOTP(c.Request().Context(), req.Email, req.OTP, c.RealIP())
	if err != nil {
		return h.handleAuthError(c, "VerifyLoginOTP", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// VerifyEmail handles email verification OTP submissions
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Email and OTP are required")
	}

	resp, err := h.authUC.VerifyEmail(c.Request().Context(), req.Email, req.OTP, c.RealIP())
	if err != nil {
		return h.handleAuthError(c, "VerifyEmail", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// ResendVerificationOTP issues a replacement email verification code
func (h *AuthHandler) ResendVerificationOTP(c echo.Context) error {
	var req models.EmailRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	resp, err := h.authUC.ResendVerificationOTP(c.Request().Context(), req.Email, c.RealIP())
	if err != nil {
		return h.handleAuthError(c, "ResendVerificationOTP", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// ForgotPassword starts the password reset flow
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req models.EmailRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	resp, err := h.authUC.ForgotPassword(c.Request().Context(), req.Email, c.RealIP())
	if err != nil {
		return h.handleAuthError(c, "ForgotPassword", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// VerifyForgotPasswordOTP validates the password reset code
func (h *AuthHandler) VerifyForgotPasswordOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Email and OTP are required")
	}

	resp, err := h.authUC.VerifyForgotPasswordOTP(c.Request().Context(), req.Email, req.OTP, c.RealIP())
	if err != nil {
		return h.handleAuthError(c, "VerifyForgotPasswordOTP", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// ResetPassword replaces the password after a verified reset code
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req models.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		return utils.BadRequestResponse(c, "Email and passwords are required")
	}

	resp, err := h.authUC.ResetPassword(c.Request().Context(), req.Email, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		return h.handleAuthError(c, "ResetPassword", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, resp.Message, resp)
}

// handleAuthError maps usecase errors onto HTTP responses. Client-caused
// conditions keep their message; anything else collapses into a generic 500.
func (h *AuthHandler) handleAuthError(c echo.Context, endpoint string, err error) error {
	var rateErr *auth.RateLimitError
	if errors.As(err, &rateErr) {
		return utils.TooManyRequestsResponse(c, rateErr.Error())
	}

	var lockErr *auth.AccountLockedError
	if errors.As(err, &lockErr) {
		return utils.BadRequestResponse(c, lockErr.Error())
	}

	var otpErr *auth.InvalidOTPError
	if errors.As(err, &otpErr) {
		return utils.BadRequestResponse(c, otpErr.Error())
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrSessionExpired):
		return utils.UnauthorizedResponse(c, err.Error())
	case errors.Is(err, auth.ErrPasswordMismatch), errors.Is(err, auth.ErrPasswordReuse):
		return utils.BadRequestResponse(c, err.Error())
	}

	logger.Error("Authentication request failed",
		logger.ErrorField(err),
		logger.String("endpoint", endpoint),
	)
	return utils.InternalServerErrorResponse(c, "Something went wrong, please try again")
}
