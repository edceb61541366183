package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(expiresIn).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func adminTestRouter(guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", guard, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"isAdmin": IsAdmin(c)})
	})
	return router
}

func TestAdminGuard(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
	}{
		{
			name:           "成功: 有効なトークン",
			authHeader:     "Bearer " + signToken(t, testSecret, time.Hour),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "失敗: ヘッダーなしは 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "失敗: Bearer 形式でないと 401",
			authHeader:     "Token abc",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "失敗: 署名が違うと 401",
			authHeader:     "Bearer " + signToken(t, "wrong-secret", time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "失敗: 期限切れトークンは 401",
			authHeader:     "Bearer " + signToken(t, testSecret, -time.Hour),
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := adminTestRouter(AdminGuard(testSecret))

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	t.Run("失敗: シークレット未設定なら常に 401", func(t *testing.T) {
		router := adminTestRouter(AdminGuard(""))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "", time.Hour))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAdmin(t *testing.T) {
	t.Run("成功: トークンなしでも通す", func(t *testing.T) {
		router := adminTestRouter(OptionalAdmin(testSecret))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"isAdmin": false}`, w.Body.String())
	})

	t.Run("成功: 有効なトークンで管理者フラグが立つ", func(t *testing.T) {
		router := adminTestRouter(OptionalAdmin(testSecret))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, time.Hour))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"isAdmin": true}`, w.Body.String())
	})

	t.Run("成功: 無効なトークンでも拒否しない", func(t *testing.T) {
		router := adminTestRouter(OptionalAdmin(testSecret))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "wrong-secret", time.Hour))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"isAdmin": false}`, w.Body.String())
	})
}
