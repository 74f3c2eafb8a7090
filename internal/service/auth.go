package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vporoshin/accounts-server/internal/apierror"
	"github.com/vporoshin/accounts-server/internal/logger"
	"github.com/vporoshin/accounts-server/internal/model"
)

// minPasswordLength is the minimum accepted password length.
const minPasswordLength = 8

// Auth orchestrates the account session lifecycle: registration, login,
// logout and profile operations against the user store and token service.
type Auth struct {
	users        model.UserStore
	hasher       model.PasswordHasher
	tokenService *TokenService
	logger       *logger.Logger
}

func NewAuth(users model.UserStore, hasher model.PasswordHasher, tokenService *TokenService, logger *logger.Logger) *Auth {
	return &Auth{
		users:        users,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
	}
}

// LoginResult carries the public projection plus the issued token pair.
type LoginResult struct {
	User         model.PublicUser
	AccessToken  string
	RefreshToken string
}

// Register creates an account with no active session. The username is
// stored lowercased; email and username must both be unused.
func (a *Auth) Register(ctx context.Context, username, email, password string) (model.PublicUser, error) {
	a.logger.Debug("Auth service: starting user registration",
		"email", email)

	if username == "" || email == "" || password == "" {
		return model.PublicUser{}, apierror.NewValidation("please fill all the fields")
	}
	if len(password) < minPasswordLength {
		return model.PublicUser{}, apierror.NewValidation("password must be at least 8 characters long")
	}

	_, err := a.users.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: user already exists",
			"email", email)
		return model.PublicUser{}, apierror.NewConflict("user already exists")
	}
	if !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.PublicUser{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	_, err = a.users.GetByUsername(ctx, username)
	if err == nil {
		return model.PublicUser{}, apierror.NewConflict("username already exists")
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.PublicUser{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	passwordHash, err := a.hasher.Hash(password)
	if err != nil {
		a.logger.Error("Auth service: failed to hash password",
			"email", email,
			"error", err.Error())
		return model.PublicUser{}, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Username:     strings.ToLower(username),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	savedUser, err := a.users.Create(ctx, user)
	if err != nil {
		a.logger.Error("Auth service: failed to create user",
			"email", email,
			"error", err.Error())
		return model.PublicUser{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered successfully",
		"email", email,
		"user_id", savedUser.ID)

	return savedUser.Public(), nil
}

// Login verifies credentials and issues a fresh token pair. Persisting the
// new refresh token overwrites any prior one, so earlier sessions can no
// longer refresh.
func (a *Auth) Login(ctx context.Context, email, password string) (LoginResult, error) {
	a.logger.Debug("Auth service: starting user login",
		"email", email)

	if email == "" || password == "" {
		return LoginResult{}, apierror.NewValidation("please fill all the fields")
	}

	user, err := a.users.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return LoginResult{}, apierror.NewNotFound("user does not exist")
	}
	if err != nil {
		return LoginResult{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !a.hasher.Check(password, user.PasswordHash) {
		a.logger.Info("Auth service: invalid password",
			"email", email)
		return LoginResult{}, apierror.NewInvalidCredential()
	}

	accessToken, refreshToken, err := a.tokenService.Issue(ctx, user.ID)
	if err != nil {
		a.logger.Error("Auth service: failed to issue tokens",
			"email", email,
			"error", err.Error())
		return LoginResult{}, fmt.Errorf("failed to issue tokens: %w", err)
	}

	a.logger.Info("Auth service: user logged in successfully",
		"email", email,
		"user_id", user.ID)

	return LoginResult{
		User:         user.Public(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new pair.
func (a *Auth) Refresh(ctx context.Context, refreshToken string) (accessToken string, newRefreshToken string, err error) {
	access, refresh, err := a.tokenService.Refresh(ctx, refreshToken)
	if err != nil {
		a.logger.Info("Auth service: token refresh rejected",
			"error", err.Error())
		return "", "", apierror.NewInvalidToken()
	}

	return access, refresh, nil
}

// Logout clears the stored refresh token. Access tokens already issued
// remain valid until natural expiry.
func (a *Auth) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := a.tokenService.Revoke(ctx, userID); err != nil {
		a.logger.Error("Auth service: failed to revoke session",
			"user_id", userID,
			"error", err.Error())
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	a.logger.Info("Auth service: user logged out",
		"user_id", userID)

	return nil
}

// CurrentUser returns the public projection of the authenticated account.
func (a *Auth) CurrentUser(ctx context.Context, userID uuid.UUID) (model.PublicUser, error) {
	user, err := a.users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.PublicUser{}, apierror.NewNotFound("user not found")
	}
	if err != nil {
		return model.PublicUser{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user.Public(), nil
}

// ChangeUsername renames the account. Any existing holder of the name,
// including the caller, makes this a conflict.
func (a *Auth) ChangeUsername(ctx context.Context, userID uuid.UUID, username string) (model.PublicUser, error) {
	if username == "" {
		return model.PublicUser{}, apierror.NewValidation("please give username")
	}

	_, err := a.users.GetByUsername(ctx, username)
	if err == nil {
		return model.PublicUser{}, apierror.NewConflict("username already exists")
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.PublicUser{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	user, err := a.users.UpdateUsername(ctx, userID, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.PublicUser{}, apierror.NewNotFound("user not found")
	}
	if err != nil {
		a.logger.Error("Auth service: failed to update username",
			"user_id", userID,
			"error", err.Error())
		return model.PublicUser{}, fmt.Errorf("failed to update username: %w", err)
	}

	a.logger.Info("Auth service: username updated",
		"user_id", userID,
		"username", user.Username)

	return user.Public(), nil
}
