package main

import (
	"context" // Context for Redis operations

	"finance_system/internal/api"    // Custom package for API handlers
	"finance_system/internal/config" // Custom package for configuration
	"finance_system/internal/db"     // Database bootstrap
	"finance_system/internal/domain" // Domain models
	"finance_system/internal/events" // Ledger event publishing
	"finance_system/internal/ledger" // Transaction service
	"finance_system/internal/store"  // Persistence
	"finance_system/internal/utils"  // Token settings

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main function to set up and run the transactions service
func main() {
	cfg := config.LoadConfig() // Load configuration
	setupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}

	conn, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}
	if err := db.Migrate(conn, &domain.Transaction{}); err != nil {
		logrus.Fatalf("failed to migrate: %v", err)
	}

	// Ledger events go to Redis when it is configured
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RedisAddr != "" {
		redisClient, err := events.Connect(context.Background(), cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		publisher = events.NewRedisPublisher(redisClient, cfg.EventsStream)
		logrus.WithField("stream", cfg.EventsStream).Info("Publishing ledger events")
	}

	book := ledger.New(store.NewGormTransactionStore(conn), publisher)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}
	r := api.NewTransactionsRouter(book, utils.TokenConfig{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTTTL,
	})
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.WithField("port", cfg.TransactionsPort).Info("Transactions service running")
	if err := r.Run(":" + cfg.TransactionsPort); err != nil {
		logrus.Errorf("server stopped: %v", err)
	}
}

// setupLogger picks a formatter for the environment
func setupLogger(cfg *config.Config) {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
