package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finance_system/internal/auth"
	"finance_system/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- mock implementation ----

type mockAuthenticator struct {
	registerFn func(username, password, role string) error
	loginFn    func(username, password string) (*auth.LoginResult, error)
}

func (m *mockAuthenticator) Register(_ context.Context, username, password, role string) error {
	if m.registerFn != nil {
		return m.registerFn(username, password, role)
	}
	return fmt.Errorf("not configured")
}

func (m *mockAuthenticator) Login(_ context.Context, username, password string) (*auth.LoginResult, error) {
	if m.loginFn != nil {
		return m.loginFn(username, password)
	}
	return nil, fmt.Errorf("not configured")
}

// ---- helpers ----

func doRequest(router *gin.Engine, method, url string, body any, header http.Header) *httptest.ResponseRecorder {
	var req *http.Request
	switch b := body.(type) {
	case nil:
		req, _ = http.NewRequest(method, url, nil)
	case string:
		req, _ = http.NewRequest(method, url, strings.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	default:
		raw, _ := json.Marshal(b)
		req, _ = http.NewRequest(method, url, strings.NewReader(string(raw)))
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func newAuthTestRouter(a Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewAuthRouter(a)
}

// ---- tests ----

func TestRegister(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		registerFn     func(username, password, role string) error
		expectedStatus int
	}{
		{
			name:           "success - user created",
			body:           map[string]string{"username": "alice", "password": "pass"},
			registerFn:     func(string, string, string) error { return nil },
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "conflict - username taken",
			body:           map[string]string{"username": "alice", "password": "pass"},
			registerFn:     func(string, string, string) error { return domain.ErrConflict },
			expectedStatus: http.StatusConflict,
		},
		{
			name: "bad request - short password",
			body: map[string]string{"username": "alice", "password": "abc"},
			registerFn: func(string, string, string) error {
				return domain.NewValidationError("password", "password must be at least 4 characters")
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - missing fields",
			body:           map[string]string{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - malformed json",
			body:           "{not json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "internal error - store failure",
			body:           map[string]string{"username": "alice", "password": "pass"},
			registerFn:     func(string, string, string) error { return fmt.Errorf("db down") },
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter(&mockAuthenticator{registerFn: tt.registerFn})
			w := doRequest(router, http.MethodPost, "/auth/register", tt.body, nil)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["message"])
		})
	}
}

func TestRegisterPassesRole(t *testing.T) {
	var gotRole string
	router := newAuthTestRouter(&mockAuthenticator{registerFn: func(_, _, role string) error {
		gotRole = role
		return nil
	}})

	w := doRequest(router, http.MethodPost, "/auth/register", map[string]string{"username": "root", "password": "pass", "role": "ADMIN"}, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "ADMIN", gotRole)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		loginFn        func(username, password string) (*auth.LoginResult, error)
		expectedStatus int
	}{
		{
			name: "success - valid credentials return JWT",
			body: map[string]string{"username": "alice", "password": "pass"},
			loginFn: func(string, string) (*auth.LoginResult, error) {
				return &auth.LoginResult{Token: "mock.jwt.token", Username: "alice", Role: "USER"}, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unauthorised - invalid credentials",
			body:           map[string]string{"username": "alice", "password": "wrong"},
			loginFn:        func(string, string) (*auth.LoginResult, error) { return nil, domain.ErrUnauthorized },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unauthorised - missing fields",
			body:           map[string]string{},
			loginFn:        func(string, string) (*auth.LoginResult, error) { return nil, domain.ErrUnauthorized },
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "bad request - malformed json",
			body:           "nope",
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAuthTestRouter(&mockAuthenticator{loginFn: tt.loginFn})
			w := doRequest(router, http.MethodPost, "/auth/login", tt.body, nil)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestLoginResponseBody(t *testing.T) {
	router := newAuthTestRouter(&mockAuthenticator{loginFn: func(string, string) (*auth.LoginResult, error) {
		return &auth.LoginResult{Token: "t", Username: "alice", Role: "USER"}, nil
	}})

	w := doRequest(router, http.MethodPost, "/auth/login", map[string]string{"username": "alice", "password": "pass"}, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token":"t","username":"alice","role":"USER"}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	w := doRequest(newAuthTestRouter(&mockAuthenticator{}), http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
