package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vporoshin/accounts-server/internal/apierror"
	"github.com/vporoshin/accounts-server/internal/logger"
	"github.com/vporoshin/accounts-server/internal/model"
)

// resetTokenTTL bounds how long a pending reset token stays usable.
const resetTokenTTL = time.Hour

// Reset orchestrates the password-reset flow: issuing a single-use,
// time-bounded token delivered by email, and replacing the password once
// the token is presented back.
type Reset struct {
	users       model.UserStore
	tokens      model.TokenManager
	hasher      model.PasswordHasher
	mailer      model.Mailer
	frontendURL string
	logger      *logger.Logger
}

func NewReset(
	users model.UserStore,
	tokens model.TokenManager,
	hasher model.PasswordHasher,
	mailer model.Mailer,
	frontendURL string,
	logger *logger.Logger,
) *Reset {
	return &Reset{
		users:       users,
		tokens:      tokens,
		hasher:      hasher,
		mailer:      mailer,
		frontendURL: frontendURL,
		logger:      logger,
	}
}

// RequestReset stores a fresh reset token with a one-hour expiry and mails
// a reset link to the account owner. An unknown email is reported as not
// found, mirroring the registration conflict check.
func (s *Reset) RequestReset(ctx context.Context, email string) error {
	s.logger.Debug("Reset service: reset requested",
		"email", email)

	if email == "" {
		return apierror.NewValidation("please give email")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewNotFound("user not found")
	}
	if err != nil {
		return fmt.Errorf("failed to get user by email: %w", err)
	}

	token, err := s.tokens.GenerateResetToken()
	if err != nil {
		s.logger.Error("Reset service: failed to generate reset token",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiresAt := time.Now().Add(resetTokenTTL)
	if err := s.users.SetResetToken(ctx, user.ID, token, expiresAt); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.frontendURL, token)
	if err := s.mailer.SendResetLink(ctx, user.Email, resetLink); err != nil {
		s.logger.Error("Reset service: failed to send reset email",
			"email", email,
			"error", err.Error())
		return fmt.Errorf("failed to send reset email: %w", err)
	}

	s.logger.Info("Reset service: reset link sent",
		"user_id", user.ID)

	return nil
}

// CompleteReset replaces the password for the account holding the presented
// token. The token must match exactly and be unexpired; the store clears it
// together with the password write, so a second use fails.
func (s *Reset) CompleteReset(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return apierror.NewValidation("please give reset token")
	}
	if len(newPassword) < minPasswordLength {
		return apierror.NewValidation("password must be at least 8 characters long")
	}

	user, err := s.users.GetByResetToken(ctx, token)
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewInvalidToken()
	}
	if err != nil {
		return fmt.Errorf("failed to get user by reset token: %w", err)
	}

	if user.ResetTokenExpires == nil || time.Now().After(*user.ResetTokenExpires) {
		s.logger.Info("Reset service: expired reset token presented",
			"user_id", user.ID)
		return apierror.NewInvalidToken()
	}

	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		s.logger.Error("Reset service: failed to update password",
			"user_id", user.ID,
			"error", err.Error())
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("Reset service: password reset completed",
		"user_id", user.ID)

	return nil
}
