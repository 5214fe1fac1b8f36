package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireRole only lets through tokens whose groups contain role
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c) // Claims set by JWTAuthMiddleware
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		if !claims.HasGroup(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": role + " role required"})
			return
		}
		c.Next()
	}
}
