package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	CORS     CORSConfig
	BankSim  BankSimConfig
	Security SecurityConfig
	Snapshot SnapshotConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// BankSimConfig holds the external bank simulator client defaults.
// The stored banksim_config row overrides the base URL when present.
type BankSimConfig struct {
	BaseURL string
}

// SecurityConfig holds the secrets the service needs at runtime.
// FernetKey encrypts bank-portal credentials at rest; APIKey guards the
// admin mutation endpoints.
type SecurityConfig struct {
	FernetKey string
	APIKey    string
}

// SnapshotConfig controls simulation snapshot retention.
type SnapshotConfig struct {
	RetentionDays int
	PurgeSchedule string // cron expression
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/property_sales.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		BankSim: BankSimConfig{
			BaseURL: getEnv("BANKSIM_BASE_URL", ""),
		},
		Security: SecurityConfig{
			FernetKey: getEnv("FERNET_KEY", ""),
			APIKey:    getEnv("INTERNAL_API_KEY", ""),
		},
		Snapshot: SnapshotConfig{
			RetentionDays: getEnvInt("SNAPSHOT_RETENTION_DAYS", 30),
			PurgeSchedule: getEnv("SNAPSHOT_PURGE_SCHEDULE", "0 3 * * *"),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
