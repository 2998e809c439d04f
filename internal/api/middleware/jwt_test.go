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

var testJWTConfig = JWTConfig{
	SigningKey: []byte("test-signing-key-1234567890123456"),
	Issuer:     "approvalflow",
	ExpiresIn:  time.Hour,
}

func authedRouter(signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuth(signingKey))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":    c.GetString("user_id"),
			"company_id": c.GetString("company_id"),
			"role":       c.GetString("role"),
			"ctx_user":   GetUserID(c.Request.Context()),
		})
	})
	return router
}

func TestJWTAuth_Success(t *testing.T) {
	token, expiresAt, err := GenerateToken(testJWTConfig, "u-1", "co-1", "MANAGER")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	router := authedRouter(testJWTConfig.SigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u-1"`)
	assert.Contains(t, w.Body.String(), `"company_id":"co-1"`)
	assert.Contains(t, w.Body.String(), `"role":"MANAGER"`)
	assert.Contains(t, w.Body.String(), `"ctx_user":"u-1"`)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	router := authedRouter(testJWTConfig.SigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	router := authedRouter(testJWTConfig.SigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_WrongSigningKey(t *testing.T) {
	token, _, err := GenerateToken(testJWTConfig, "u-1", "co-1", "EMPLOYEE")
	require.NoError(t, err)

	router := authedRouter([]byte("a-completely-different-key-123456"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expiredCfg := JWTConfig{
		SigningKey: testJWTConfig.SigningKey,
		Issuer:     testJWTConfig.Issuer,
		ExpiresIn:  -time.Minute,
	}
	token, _, err := GenerateToken(expiredCfg, "u-1", "co-1", "EMPLOYEE")
	require.NoError(t, err)

	router := authedRouter(testJWTConfig.SigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token expired")
}

func TestJWTAuth_RejectsNoneSigningMethod(t *testing.T) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, JWTClaims{
		UserID:    "u-1",
		CompanyID: "co-1",
		Role:      "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "approvalflow",
			Subject:   "u-1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	router := authedRouter(testJWTConfig.SigningKey)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tokenString)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
