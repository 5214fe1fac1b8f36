package db

import (
	"fmt" // Error wrapping

	"finance_system/internal/config" // Driver selection and DSN

	"github.com/sirupsen/logrus"     // Logging library
	"gorm.io/driver/mysql"           // MySQL driver for GORM
	"gorm.io/driver/postgres"        // Postgres driver for GORM
	"gorm.io/driver/sqlite"          // SQLite driver for GORM
	"gorm.io/gorm"                   // GORM ORM library
	gormlogger "gorm.io/gorm/logger" // GORM logger levels
)

// Open connects to the configured database
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	case config.DriverMySQL:
		dialector = mysql.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
	logLevel := gormlogger.Warn
	if cfg.IsProd {
		logLevel = gormlogger.Error
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true, // Surface unique violations as gorm.ErrDuplicatedKey
		Logger:         gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.DBDriver, err)
	}
	logrus.WithField("driver", cfg.DBDriver).Info("Database connected")
	return db, nil
}

// Migrate creates or updates the tables for the given models
func Migrate(db *gorm.DB, models ...any) error {
	// AutoMigrate will create tables, missing foreign keys, constraints, columns and indexes
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logrus.WithField("tables", len(models)).Info("Migration completed.")
	return nil
}
