package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"book-catalog/internal/auth"
	"book-catalog/internal/database"
	"book-catalog/pkg/config"
	"book-catalog/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testCodec(t *testing.T) *auth.TokenCodec {
	t.Helper()
	codec, err := auth.NewTokenCodec(&config.SecurityConfig{
		JWTSecret:    "middleware-test-secret",
		JWTAlgorithm: "HS256",
		TokenTTL:     30 * time.Minute,
	})
	require.NoError(t, err)
	return codec
}

func protectedRouter(t *testing.T, codec *auth.TokenCodec, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	router := gin.New()
	handlers := []gin.HandlerFunc{AuthRequired(codec, logger.NewLogger("error", ""))}
	handlers = append(handlers, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": c.GetString(ContextUsername),
			"user_id":  c.GetInt64(ContextUserID),
			"role":     c.GetString(ContextUserRole),
		})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestAuthRequiredMissingToken(t *testing.T) {
	router := protectedRouter(t, testCodec(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail": "Authentication failed."}`, w.Body.String())
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	router := protectedRouter(t, testCodec(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail": "Token validation failed."}`, w.Body.String())
}

func TestAuthRequiredExpiredToken(t *testing.T) {
	codec, err := auth.NewTokenCodec(&config.SecurityConfig{
		JWTSecret:    "middleware-test-secret",
		JWTAlgorithm: "HS256",
		TokenTTL:     -1 * time.Minute,
	})
	require.NoError(t, err)

	token, err := codec.Issue(&database.User{ID: 1, Username: "testuser"})
	require.NoError(t, err)

	router := protectedRouter(t, testCodec(t))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail": "Token validation failed."}`, w.Body.String())
}

func TestAuthRequiredBearerHeader(t *testing.T) {
	codec := testCodec(t)
	token, err := codec.Issue(&database.User{ID: 42, Username: "testuser", Role: "admin"})
	require.NoError(t, err)

	router := protectedRouter(t, codec)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username": "testuser", "user_id": 42, "role": "admin"}`, w.Body.String())
}

func TestAuthRequiredCookieFallback(t *testing.T) {
	codec := testCodec(t)
	token, err := codec.Issue(&database.User{ID: 7, Username: "testuser", Role: "regular"})
	require.NoError(t, err)

	router := protectedRouter(t, codec)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"username": "testuser", "user_id": 7, "role": "regular"}`, w.Body.String())
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	codec := testCodec(t)
	token, err := codec.Issue(&database.User{ID: 1, Username: "testuser"})
	require.NoError(t, err)

	router := protectedRouter(t, codec)

	// A present but malformed Authorization header does not fall back to
	// the cookie.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail": "Authentication failed."}`, w.Body.String())
}

func TestAdminRequiredUniformFailure(t *testing.T) {
	codec := testCodec(t)

	// A non-admin gets the same answer as an unauthenticated caller
	token, err := codec.Issue(&database.User{ID: 2, Username: "testuser", Role: "regular"})
	require.NoError(t, err)

	router := protectedRouter(t, codec, AdminRequired())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail": "Authentication failed."}`, w.Body.String())
}

func TestAdminRequiredAllowsAdmin(t *testing.T) {
	codec := testCodec(t)
	token, err := codec.Issue(&database.User{ID: 3, Username: "admin-user", Role: AdminRole})
	require.NoError(t, err)

	router := protectedRouter(t, codec, AdminRequired())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
