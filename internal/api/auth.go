package api

import (
	"context"  // Request context
	"net/http" // HTTP status codes

	"finance_system/internal/auth" // Authenticator results

	"github.com/gin-gonic/gin" // Gin web framework
)

// Authenticator is the credential service behind the auth routes
type Authenticator interface {
	Register(ctx context.Context, username, password, role string) error
	Login(ctx context.Context, username, password string) (*auth.LoginResult, error)
}

// Request struct for registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required"` // Username must be provided
	Password string `json:"password" validate:"required"` // Password must be provided
	Role     string `json:"role"`                         // Optional, defaults to USER
}

// Request struct for login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Response struct for authentication
type AuthResponse struct {
	Token    string `json:"token"`    // JWT token
	Username string `json:"username"` // Authenticated username
	Role     string `json:"role"`     // Role carried in the token
}

// MessageResponse is a plain confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterHandler creates a user account
func RegisterHandler(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if !bindJSON(c, &req) {
			return
		}
		if err := a.Register(c.Request.Context(), req.Username, req.Password, req.Role); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, MessageResponse{Message: "User registered successfully"})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(a Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
			return
		}
		// Missing fields fall through to the same 401 as a wrong password
		res, err := a.Login(c.Request.Context(), req.Username, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, AuthResponse{Token: res.Token, Username: res.Username, Role: res.Role})
	}
}
