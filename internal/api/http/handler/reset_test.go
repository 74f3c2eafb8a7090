package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vporoshin/accounts-server/internal/apierror"
	"github.com/vporoshin/accounts-server/internal/mocks"
	"github.com/vporoshin/accounts-server/internal/testutil"
)

func TestReset_ForgotPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewResetService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("RequestReset", mock.Anything, "john@example.com").Return(nil)

	h := NewReset(svc, lg)
	engine := gin.New()
	engine.POST("/forgot-password", h.ForgotPassword)

	rec := performJSON(t, engine, http.MethodPost, "/forgot-password", forgotPasswordRequest{Email: "john@example.com"})

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Reset link sent to your email", envelope["message"])
}

func TestReset_ForgotPassword_UnknownEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewResetService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("RequestReset", mock.Anything, "ghost@example.com").
		Return(apierror.NewNotFound("user does not exist"))

	h := NewReset(svc, lg)
	engine := gin.New()
	engine.POST("/forgot-password", h.ForgotPassword)

	rec := performJSON(t, engine, http.MethodPost, "/forgot-password", forgotPasswordRequest{Email: "ghost@example.com"})

	assert.Equal(t, http.StatusNotFound, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, string(apierror.CodeNotFound), envelope["code"])
}

func TestReset_ForgotPassword_MailFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewResetService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("RequestReset", mock.Anything, "john@example.com").Return(assert.AnError)

	h := NewReset(svc, lg)
	engine := gin.New()
	engine.POST("/forgot-password", h.ForgotPassword)

	rec := performJSON(t, engine, http.MethodPost, "/forgot-password", forgotPasswordRequest{Email: "john@example.com"})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, string(apierror.CodeInternal), envelope["code"])
	assert.Equal(t, "internal server error", envelope["message"])
}

func TestReset_ResetPassword(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewResetService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("CompleteReset", mock.Anything, "opaque-token", "newpassword1").Return(nil)

	h := NewReset(svc, lg)
	engine := gin.New()
	engine.POST("/reset-password", h.ResetPassword)

	rec := performJSON(t, engine, http.MethodPost, "/reset-password", resetPasswordRequest{
		Token:       "opaque-token",
		NewPassword: "newpassword1",
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Password reset successfully", envelope["message"])
}

func TestReset_ResetPassword_InvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewResetService(t)
	lg := testutil.MakeNoopLogger()

	svc.On("CompleteReset", mock.Anything, "stale", "newpassword1").
		Return(apierror.NewInvalidToken())

	h := NewReset(svc, lg)
	engine := gin.New()
	engine.POST("/reset-password", h.ResetPassword)

	rec := performJSON(t, engine, http.MethodPost, "/reset-password", resetPasswordRequest{
		Token:       "stale",
		NewPassword: "newpassword1",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, string(apierror.CodeInvalidToken), envelope["code"])
}
