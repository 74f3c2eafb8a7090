package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vporoshin/accounts-server/internal/apierror"
	"github.com/vporoshin/accounts-server/internal/logger"
)

// ResetService defines the password-reset flow operations.
type ResetService interface {
	RequestReset(ctx context.Context, email string) error
	CompleteReset(ctx context.Context, token, newPassword string) error
}

// Reset handles HTTP endpoints for the password-reset flow.
type Reset struct {
	resetService ResetService
	logger       *logger.Logger
}

// NewReset creates a new Reset handler.
func NewReset(resetService ResetService, logger *logger.Logger) *Reset {
	return &Reset{
		resetService: resetService,
		logger:       logger,
	}
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword issues a reset token and mails a reset link.
func (h *Reset) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apierror.NewValidation("invalid request body"))
		return
	}

	if err := h.resetService.RequestReset(c.Request.Context(), req.Email); err != nil {
		h.logger.Error("Reset handler: reset request failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "Reset link sent to your email")
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

// ResetPassword replaces the password for the account holding the token.
func (h *Reset) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apierror.NewValidation("invalid request body"))
		return
	}

	if err := h.resetService.CompleteReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		h.logger.Error("Reset handler: reset completion failed",
			"error", err.Error())
		handleError(c, err)
		return
	}

	respond(c, http.StatusOK, nil, "Password reset successfully")
}
