package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestManager_IssueAndValidate(t *testing.T) {
	manager := NewManager("test-secret", time.Hour, zap.NewNop())
	userID := primitive.NewObjectID()

	token, err := manager.IssueToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	c, rec := newTestContext("Bearer " + token)

	called := false
	handler := manager.Middleware()(func(c echo.Context) error {
		called = true
		gotID, ok := UserIDFromContext(c)
		assert.True(t, ok)
		assert.Equal(t, userID, gotID)
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, handler(c))
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestManager_Middleware_Rejections(t *testing.T) {
	manager := NewManager("test-secret", time.Hour, zap.NewNop())

	expired := NewManager("test-secret", -time.Hour, zap.NewNop())
	expiredToken, err := expired.IssueToken(primitive.NewObjectID())
	assert.NoError(t, err)

	otherSecret := NewManager("other-secret", time.Hour, zap.NewNop())
	foreignToken, err := otherSecret.IssueToken(primitive.NewObjectID())
	assert.NoError(t, err)

	tests := []struct {
		name       string
		authHeader string
	}{
		{name: "missing header", authHeader: ""},
		{name: "wrong scheme", authHeader: "Basic dXNlcjpwYXNz"},
		{name: "malformed token", authHeader: "Bearer not-a-jwt"},
		{name: "expired token", authHeader: "Bearer " + expiredToken},
		{name: "wrong secret", authHeader: "Bearer " + foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(tt.authHeader)

			called := false
			handler := manager.Middleware()(func(c echo.Context) error {
				called = true
				return c.NoContent(http.StatusOK)
			})

			assert.NoError(t, handler(c))
			assert.False(t, called)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestUserIDFromContext_Unset(t *testing.T) {
	c, _ := newTestContext("")

	_, ok := UserIDFromContext(c)
	assert.False(t, ok)
}
