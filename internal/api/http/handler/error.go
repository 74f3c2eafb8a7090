package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vporoshin/accounts-server/internal/apierror"
)

// ErrorResponse is the envelope returned on failure. Internal detail never
// reaches the client; only typed domain errors carry their own message.
type ErrorResponse struct {
	Status  int           `json:"status"`
	Code    apierror.Code `json:"code"`
	Message string        `json:"message"`
}

func handleError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.HTTPStatus, ErrorResponse{
			Status:  apiErr.HTTPStatus,
			Code:    apiErr.Code,
			Message: apiErr.Message,
		})
		return
	}

	internal := apierror.NewInternal()
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Status:  internal.HTTPStatus,
		Code:    internal.Code,
		Message: internal.Message,
	})
}
