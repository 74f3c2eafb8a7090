package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vporoshin/accounts-server/internal/mocks"
	"github.com/vporoshin/accounts-server/internal/testutil"
)

func TestAuthenticate_Handle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		authHeader     string
		cookieToken    string
		tokenSvcUserID uuid.UUID
		tokenSvcErr    error
		wantStatus     int
		expectSvcCall  bool
		expectUserID   bool
	}{
		{
			name:          "missing token",
			wantStatus:    http.StatusUnauthorized,
			expectSvcCall: false,
		},
		{
			name:          "invalid token",
			authHeader:    "Bearer invalid",
			tokenSvcErr:   assert.AnError,
			wantStatus:    http.StatusUnauthorized,
			expectSvcCall: true,
		},
		{
			name:           "nil user id from token",
			authHeader:     "Bearer token",
			tokenSvcUserID: uuid.Nil,
			wantStatus:     http.StatusUnauthorized,
			expectSvcCall:  true,
		},
		{
			name:           "valid bearer header",
			authHeader:     "Bearer token",
			tokenSvcUserID: uuid.New(),
			wantStatus:     http.StatusOK,
			expectSvcCall:  true,
			expectUserID:   true,
		},
		{
			name:           "valid cookie token",
			cookieToken:    "cookie-token",
			tokenSvcUserID: uuid.New(),
			wantStatus:     http.StatusOK,
			expectSvcCall:  true,
			expectUserID:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			lg := testutil.MakeNoopLogger()
			svc := mocks.NewTokenService(t)
			if tt.expectSvcCall {
				svc.On("GetUserID", mock.Anything, mock.AnythingOfType("string")).Return(tt.tokenSvcUserID, tt.tokenSvcErr)
			}

			var gotUserID uuid.UUID
			var gotOK bool

			engine := gin.New()
			engine.GET("/protected", NewAuthenticate(svc, lg).Handle(), func(c *gin.Context) {
				gotUserID, gotOK = UserIDFromContext(c)
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			if tt.cookieToken != "" {
				req.AddCookie(&http.Cookie{Name: "accessToken", Value: tt.cookieToken})
			}

			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.expectUserID {
				assert.True(t, gotOK)
				assert.Equal(t, tt.tokenSvcUserID, gotUserID)
			} else {
				assert.False(t, gotOK)
			}
		})
	}
}

func TestAuthenticate_HeaderTakesPriorityOverCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)

	lg := testutil.MakeNoopLogger()
	svc := mocks.NewTokenService(t)
	svc.On("GetUserID", mock.Anything, "header-token").Return(uuid.New(), nil)

	engine := gin.New()
	engine.GET("/protected", NewAuthenticate(svc, lg).Handle(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer header-token")
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: "cookie-token"})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserIDFromContext_Missing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	userID, ok := UserIDFromContext(c)
	assert.False(t, ok)
	assert.Equal(t, uuid.Nil, userID)
}
