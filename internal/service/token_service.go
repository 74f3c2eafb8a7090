package service

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vporoshin/accounts-server/internal/logger"
	"github.com/vporoshin/accounts-server/internal/model"
)

// TokenService issues, refreshes and revokes session token pairs.
// The current refresh token is persisted (hashed) on the user record, so a
// new login or an explicit revoke invalidates any previously issued refresh
// token by overwrite. Access tokens stay self-contained until expiry.
type TokenService struct {
	manager model.TokenManager
	users   model.UserStore
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, users model.UserStore, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, users: users, logger: logger}
}

func (s *TokenService) Issue(ctx context.Context, userID uuid.UUID) (accessToken string, refreshToken string, err error) {
	access, err := s.manager.GenerateAccessToken(userID)
	if err != nil {
		return "", "", fmt.Errorf("issue access: %w", err)
	}

	refresh, err := s.manager.GenerateRefreshToken(userID)
	if err != nil {
		return "", "", fmt.Errorf("issue refresh: %w", err)
	}

	if err := s.users.UpdateRefreshToken(ctx, userID, hashRefresh(refresh)); err != nil {
		return "", "", fmt.Errorf("persist refresh: %w", err)
	}

	return access, refresh, nil
}

// Refresh rotates the session: it verifies the presented refresh token
// against the stored hash and issues a new pair, overwriting the old one.
func (s *TokenService) Refresh(ctx context.Context, presentedRefresh string) (newAccess string, newRefresh string, err error) {
	userID, err := s.manager.ParseRefreshToken(presentedRefresh)
	if err != nil {
		return "", "", err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", "", model.ErrNoActiveSession
		}
		return "", "", fmt.Errorf("get user for refresh: %w", err)
	}

	if len(user.RefreshTokenHash) == 0 {
		return "", "", model.ErrNoActiveSession
	}
	if !equalBytes(user.RefreshTokenHash, hashRefresh(presentedRefresh)) {
		return "", "", model.ErrTokenMismatch
	}

	return s.Issue(ctx, userID)
}

// Revoke clears the stored refresh token, ending the active session.
func (s *TokenService) Revoke(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.UpdateRefreshToken(ctx, userID, nil); err != nil {
		return fmt.Errorf("revoke refresh: %w", err)
	}
	return nil
}

// GetUserID resolves the user ID from an access token. Verification is
// stateless: signature and expiry only, no store lookup.
func (s *TokenService) GetUserID(ctx context.Context, token string) (uuid.UUID, error) {
	return s.manager.ParseAccessToken(token)
}

func hashRefresh(token string) []byte {
	h := sha256.Sum256([]byte(token))
	return h[:]
}

func equalBytes(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
