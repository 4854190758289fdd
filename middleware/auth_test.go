package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopapi/auth"
	"shopapi/models"
	"shopapi/store"
)

const testSecret = "test-secret"

func newAuthRouter(t *testing.T, admin bool) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.NewMemory()
	user := &models.User{Id: "u1", Name: "Test", Email: "t@example.com", IsAdmin: admin}
	require.NoError(t, s.CreateUser(context.Background(), user))

	token, err := auth.IssueToken(testSecret, user.Id)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", RequireAuth(s, testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": CurrentUser(c).Id})
	})
	router.GET("/admin", RequireAuth(s, testSecret), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router, token
}

func get(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router, _ := newAuthRouter(t, false)
	w := get(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBadFormat(t *testing.T) {
	router, token := newAuthRouter(t, false)
	w := get(router, "/protected", token) // no Bearer prefix
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthValidToken(t *testing.T) {
	router, token := newAuthRouter(t, false)
	w := get(router, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestRequireAuthExpiredToken(t *testing.T) {
	router, _ := newAuthRouter(t, false)

	claims := jwt.MapClaims{"sub": "u1", "exp": time.Now().Add(-time.Minute).Unix()}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	w := get(router, "/protected", "Bearer "+expired)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestRequireAuthUnknownUser(t *testing.T) {
	router, _ := newAuthRouter(t, false)

	token, err := auth.IssueToken(testSecret, "deleted-user")
	require.NoError(t, err)

	w := get(router, "/protected", "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	router, token := newAuthRouter(t, false)
	w := get(router, "/admin", "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)

	adminRouter, adminToken := newAuthRouter(t, true)
	w = get(adminRouter, "/admin", "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)
}
