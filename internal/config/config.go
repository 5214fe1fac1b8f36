package config

import (
	"fmt"     // For DSN formatting
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For token lifetime

	"github.com/joho/godotenv" // For loading .env files
)

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the application configuration
type Config struct {
	AuthPort         string        // Auth service port
	TransactionsPort string        // Transactions service port
	DBDriver         string        // Database driver: mysql, postgres or sqlite
	DBUser           string        // Database user
	DBPassword       string        // Database password
	DBHost           string        // Database host
	DBPort           string        // Database port
	DBName           string        // Database name (file path for sqlite)
	DBSSLMode        string        // Postgres sslmode
	JWTSecret        string        // JWT secret key shared by both services
	JWTIssuer        string        // JWT issuer claim
	JWTTTL           time.Duration // JWT validity window
	RedisAddr        string        // Redis server address, empty disables events
	RedisPass        string        // Redis password
	RedisDB          int           // Redis database number
	EventsStream     string        // Redis stream receiving ledger events
	IsProd           bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil || ttl <= 0 {
		ttl = 24 * time.Hour // Fall back to one day on a bad value
	}
	return &Config{
		AuthPort:         getEnv("AUTH_PORT", "8081"),
		TransactionsPort: getEnv("TRANSACTIONS_PORT", "8082"),
		DBDriver:         getEnv("DB_DRIVER", DriverMySQL),
		DBUser:           os.Getenv("DB_USER"),
		DBPassword:       os.Getenv("DB_PASSWORD"),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           os.Getenv("DB_PORT"),
		DBName:           os.Getenv("DB_NAME"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		JWTIssuer:        getEnv("JWT_ISSUER", "https://finance-auth-service"),
		JWTTTL:           ttl,
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPass:        os.Getenv("REDIS_PASS"),
		RedisDB:          redisDB,
		EventsStream:     getEnv("EVENTS_STREAM", "transaction.events"),
		IsProd:           os.Getenv("IS_PROD") == "true",
	}
}

// Validate reports configuration that would make a service unusable
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	switch c.DBDriver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is not set")
	}
	return nil
}

// DSN builds the Data Source Name for the configured driver
func (c *Config) DSN() string {
	switch c.DBDriver {
	case DriverPostgres:
		port := c.DBPort
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, port, c.DBSSLMode)
	case DriverSQLite:
		return c.DBName // File path or ":memory:"
	default:
		port := c.DBPort
		if port == "" {
			port = "3306"
		}
		return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + port + ")/" + c.DBName + "?parseTime=true"
	}
}

// getEnv returns the value of key or fallback when unset
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
