package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vporoshin/accounts-server/internal/api/http/middleware"
	"github.com/vporoshin/accounts-server/internal/apierror"
	"github.com/vporoshin/accounts-server/internal/logger"
)

// User handles HTTP endpoints for profile operations.
type User struct {
	authService AuthService
	logger      *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(authService AuthService, logger *logger.Logger) *User {
	return &User{
		authService: authService,
		logger:      logger,
	}
}

// Me returns the authenticated account's public projection.
func (h *User) Me(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		handleError(c, apierror.NewUnauthenticated())
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("User handler: failed to fetch current user",
			"user_id", userID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	respond(c, http.StatusOK, user, "User fetched successfully")
}

type changeUsernameRequest struct {
	Username string `json:"username"`
}

// ChangeUsername renames the authenticated account.
func (h *User) ChangeUsername(c *gin.Context) {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		handleError(c, apierror.NewUnauthenticated())
		return
	}

	var req changeUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleError(c, apierror.NewValidation("invalid request body"))
		return
	}

	user, err := h.authService.ChangeUsername(c.Request.Context(), userID, req.Username)
	if err != nil {
		h.logger.Error("User handler: failed to change username",
			"user_id", userID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	respond(c, http.StatusOK, user, "Username updated successfully")
}
