package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeonlog/storefront-admin-backend/pkg/util"
)

const testSecret = "test-secret-key"

func setupAuthTestRouter() (*gin.Engine, *AuthMiddleware) {
	gin.SetMode(gin.TestMode)
	authMiddleware := NewAuthMiddleware(testSecret)

	router := gin.New()
	router.GET("/protected", authMiddleware.Authenticate(), func(c *gin.Context) {
		userID, _ := GetUserID(c)
		email, _ := GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{
			"user_id": userID,
			"email":   email,
		})
	})
	return router, authMiddleware
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	router, _ := setupAuthTestRouter()

	userID := uuid.NewString()
	tokens, err := util.GenerateTokenPair(userID, "admin@example.com", testSecret, 15*time.Minute, 24*time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID)
	assert.Contains(t, w.Body.String(), "admin@example.com")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	router, _ := setupAuthTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_UNAUTHORIZED")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	router, _ := setupAuthTestRouter()

	tests := []struct {
		name   string
		header string
	}{
		{name: "No bearer prefix", header: "some-token"},
		{name: "Wrong scheme", header: "Basic abc123"},
		{name: "Too many parts", header: "Bearer a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", tt.header)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "AUTH_TOKEN_INVALID")
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	router, _ := setupAuthTestRouter()

	tokens, err := util.GenerateTokenPair(uuid.NewString(), "admin@example.com", testSecret, -1*time.Minute, 24*time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_TOKEN_EXPIRED")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	router, _ := setupAuthTestRouter()

	tokens, err := util.GenerateTokenPair(uuid.NewString(), "admin@example.com", "other-secret", 15*time.Minute, 24*time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_TOKEN_INVALID")
}
