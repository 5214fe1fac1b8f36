package api

import (
	"net/http" // HTTP status codes

	"finance_system/internal/domain"     // Role names
	"finance_system/internal/middleware" // Auth and logging middleware
	"finance_system/internal/utils"      // Token settings

	"github.com/gin-gonic/gin" // Gin web framework
)

// newEngine builds a gin engine with the shared middleware stack
func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.LoggingMiddleware())
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// NewAuthRouter wires the auth service routes
func NewAuthRouter(a Authenticator) *gin.Engine {
	r := newEngine()
	authGroup := r.Group("/auth")
	authGroup.POST("/register", RegisterHandler(a)) // Registration endpoint
	authGroup.POST("/login", LoginHandler(a))       // Login endpoint
	return r
}

// NewTransactionsRouter wires the transaction service routes behind JWT auth
func NewTransactionsRouter(l Ledger, tokens utils.TokenConfig) *gin.Engine {
	r := newEngine()
	txGroup := r.Group("/transactions")
	// Every route needs a valid token carrying the USER group
	txGroup.Use(middleware.JWTAuthMiddleware(tokens), middleware.RequireRole(domain.DefaultRole))
	txGroup.POST("", CreateTransactionHandler(l))
	txGroup.GET("", ListTransactionsHandler(l))
	txGroup.GET("/balance", BalanceHandler(l))
	txGroup.GET("/:id", GetTransactionHandler(l))
	txGroup.PUT("/:id", UpdateTransactionHandler(l))
	txGroup.DELETE("/:id", DeleteTransactionHandler(l))
	return r
}
