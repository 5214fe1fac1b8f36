package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"finance_system/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTokens = utils.TokenConfig{Secret: "secret", Issuer: "https://finance-auth-service", TTL: time.Hour}

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), LoggingMiddleware())
	r.GET("/private", JWTAuthMiddleware(testTokens), RequireRole("USER"), func(c *gin.Context) {
		claims, _ := CurrentClaims(c)
		c.JSON(http.StatusOK, gin.H{"userId": claims.UserID, "username": claims.Subject})
	})
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, "/private", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	userToken, err := utils.GenerateJWT(testTokens, 5, "alice", "USER")
	require.NoError(t, err)
	adminToken, err := utils.GenerateJWT(testTokens, 6, "root", "ADMIN")
	require.NoError(t, err)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "success - valid user token", header: "Bearer " + userToken, expectedStatus: http.StatusOK},
		{name: "unauthorised - missing header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "unauthorised - wrong scheme", header: "Basic " + userToken, expectedStatus: http.StatusUnauthorized},
		{name: "unauthorised - garbage token", header: "Bearer abc.def.ghi", expectedStatus: http.StatusUnauthorized},
		{name: "forbidden - token without USER group", header: "Bearer " + adminToken, expectedStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(newProtectedRouter(), tt.header)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedStatus != http.StatusOK {
				assert.Contains(t, w.Body.String(), `"message"`)
			}
		})
	}
}

func TestJWTAuthMiddlewareExposesClaims(t *testing.T) {
	token, err := utils.GenerateJWT(testTokens, 5, "alice", "USER")
	require.NoError(t, err)

	w := doGet(newProtectedRouter(), "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":5,"username":"alice"}`, w.Body.String())
}

func TestRequireRoleWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", RequireRole("USER"), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := doGet(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequestID(t *testing.T) {
	r := newProtectedRouter()

	w := doGet(r, "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req, _ := http.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}
