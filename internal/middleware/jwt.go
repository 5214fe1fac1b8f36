package middleware

import (
	"finance_system/internal/utils" // JWT utility functions
	"net/http"                      // HTTP status codes
	"strings"                       // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
)

// claimsKey is the gin context key holding *utils.Claims
const claimsKey = "claims"

// JWTAuthMiddleware validates bearer tokens and stores the typed claims in the context
func JWTAuthMiddleware(tokens utils.TokenConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		claims, err := utils.ParseJWT(tokenStr, tokens)       // Parse and validate the token
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}
		c.Set(claimsKey, claims) // Store claims in context
		c.Next()                 // Proceed to the next handler
	}
}

// CurrentClaims returns the claims stored by JWTAuthMiddleware
func CurrentClaims(c *gin.Context) (*utils.Claims, bool) {
	v, exists := c.Get(claimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok && claims != nil
}
