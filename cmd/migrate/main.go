package main

import (
	"flag" // Command line flags

	"finance_system/internal/config" // Custom import path (Config)
	"finance_system/internal/db"     // Custom import path (Database)
	"finance_system/internal/domain" // Domain models

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration
func main() {
	service := flag.String("service", "all", "tables to migrate: auth, transactions or all")
	flag.Parse()

	cfg := config.LoadConfig() // Load configuration

	var models []any
	switch *service {
	case "auth":
		models = []any{&domain.User{}}
	case "transactions":
		models = []any{&domain.Transaction{}}
	case "all":
		models = []any{&domain.User{}, &domain.Transaction{}}
	default:
		logrus.Fatalf("unknown service %q", *service)
	}

	conn, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	if err := db.Migrate(conn, models...); err != nil {
		logrus.Fatalf("%v", err)
	}
}
