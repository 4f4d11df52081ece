package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/bimbelhub/platform/internal/pkg/models"
	"github.com/bimbelhub/platform/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *http.AuthHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the auth endpoints. All of them are public:
// they exist to establish a session, so none sit behind JWT middleware.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")

	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/login/otp", h.authHandler.InitiateLoginOTP)
	authGroup.POST("/login/otp/verify", h.authHandler.VerifyLoginOTP)

	authGroup.POST("/email/verify", h.authHandler.VerifyEmail)
	authGroup.POST("/email/resend", h.authHandler.ResendVerificationOTP)

	authGroup.POST("/password/forgot", h.authHandler.ForgotPassword)
	authGroup.POST("/password/forgot/verify", h.authHandler.VerifyForgotPasswordOTP)
	authGroup.POST("/password/reset", h.authHandler.ResetPassword)
}
