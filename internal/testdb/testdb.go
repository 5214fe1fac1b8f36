// Package testdb opens throwaway SQLite databases for tests.
package testdb

import (
	"testing"

	"finance_system/internal/config"
	"finance_system/internal/db"
	"finance_system/internal/domain"

	"gorm.io/gorm"
)

// New returns a migrated in-memory database that is closed when t finishes.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	conn, err := db.Open(&config.Config{DBDriver: config.DriverSQLite, DBName: ":memory:"})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	// Every :memory: connection is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.Migrate(conn, &domain.User{}, &domain.Transaction{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}
