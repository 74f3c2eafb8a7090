package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vporoshin/accounts-server/internal/api/http/middleware"
	"github.com/vporoshin/accounts-server/internal/apierror"
	"github.com/vporoshin/accounts-server/internal/logger"
	"github.com/vporoshin/accounts-server/internal/model"
	"github.com/vporoshin/accounts-server/internal/service"
)

// AuthService defines the session lifecycle operations.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (model.PublicUser, error)
	Login(ctx context.Context, email, password string) (service.LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (accessToken string, newRefreshToken string, err error)
	Logout(ctx context.Context, userID uuid.UUID) error
	CurrentUser(ctx context.Context, userID uuid.UUID) (model.PublicUser, error)
	ChangeUsername(ctx context.Context, userID uuid.UUID, username string) (model.PublicUser, error)
}

// Auth handles HTTP endpoints for registration and the session lifecycle.
type Auth struct {
	authService AuthService
	cookies     CookieOptions
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, cookies CookieOptions, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		cookies:     cookies,
		logger:      logger,
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a new account.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apierror.NewValidation("invalid request body"))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	respond(c, http.StatusOK, user, "User created successfully")
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User         model.PublicUser `json:"user"`
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
}

// Login verifies credentials and starts a session. Tokens are returned in
// the body and as http-only cookies.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apierror.NewValidation("invalid request body"))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.cookies.setSessionCookies(c, result.AccessToken, result.RefreshToken)

	respond(c, http.StatusOK, loginResponse{
		User:         result.User,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	}, "User logged in successfully")
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type refreshResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Refresh rotates the session token pair. The refresh token is taken from
// the session cookie, falling back to the request body.
func (h *Auth) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		var req refreshRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
			handleError(c, apierror.NewValidation("refresh token is required"))
			return
		}
		refreshToken = req.RefreshToken
	}

	access, refresh, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		h.logger.Error("Auth handler: token refresh failed",
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.cookies.setSessionCookies(c, access, refresh)

	respond(c, http.StatusOK, refreshResponse{
		AccessToken:  access,
		RefreshToken: refresh,
	}, "Token refreshed successfully")
}

// Logout ends the active session and clears session cookies.
func (h *Auth) Logout(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		handleError(c, apierror.NewUnauthenticated())
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		h.logger.Error("Auth handler: logout failed",
			"user_id", userID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.cookies.clearSessionCookies(c)

	respond(c, http.StatusOK, nil, "User logged out successfully")
}
