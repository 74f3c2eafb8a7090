package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vporoshin/accounts-server/internal/apierror"
	"github.com/vporoshin/accounts-server/internal/mocks"
	"github.com/vporoshin/accounts-server/internal/model"
	"github.com/vporoshin/accounts-server/internal/testutil"
)

func TestUser_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	user := samplePublicUser()
	svc.On("CurrentUser", mock.Anything, user.ID).Return(user, nil)

	h := NewUser(svc, lg)
	engine := gin.New()
	engine.GET("/me", setUserID(user.ID), h.Me)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, user.ID.String(), data["userId"])
	assert.Equal(t, user.Email, data["email"])
}

func TestUser_Me_NoUserInContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	h := NewUser(svc, lg)
	engine := gin.New()
	engine.GET("/me", h.Me)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUser_Me_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	userID := uuid.New()
	svc.On("CurrentUser", mock.Anything, userID).
		Return(model.PublicUser{}, apierror.NewNotFound("user not found"))

	h := NewUser(svc, lg)
	engine := gin.New()
	engine.GET("/me", setUserID(userID), h.Me)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUser_ChangeUsername(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	user := samplePublicUser()
	user.Username = "newname"
	svc.On("ChangeUsername", mock.Anything, user.ID, "NewName").Return(user, nil)

	h := NewUser(svc, lg)
	engine := gin.New()
	engine.PATCH("/username", setUserID(user.ID), h.ChangeUsername)

	rec := performJSON(t, engine, http.MethodPatch, "/username", changeUsernameRequest{Username: "NewName"})

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, "Username updated successfully", envelope["message"])
	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "newname", data["username"])
}

func TestUser_ChangeUsername_Taken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	userID := uuid.New()
	svc.On("ChangeUsername", mock.Anything, userID, "taken").
		Return(model.PublicUser{}, apierror.NewConflict("username is already taken"))

	h := NewUser(svc, lg)
	engine := gin.New()
	engine.PATCH("/username", setUserID(userID), h.ChangeUsername)

	rec := performJSON(t, engine, http.MethodPatch, "/username", changeUsernameRequest{Username: "taken"})

	assert.Equal(t, http.StatusConflict, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.Equal(t, string(apierror.CodeConflict), envelope["code"])
}

func TestUser_ChangeUsername_InvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := mocks.NewAuthService(t)
	lg := testutil.MakeNoopLogger()

	h := NewUser(svc, lg)
	engine := gin.New()
	engine.PATCH("/username", setUserID(uuid.New()), h.ChangeUsername)

	req := httptest.NewRequest(http.MethodPatch, "/username", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
