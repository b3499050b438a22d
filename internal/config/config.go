package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Version     string
	Environment string

	// Badger vendor API credentials
	BadgerAppID     string
	BadgerAppSecret string
	BadgerAPIURL    string

	// How long an idle badge session keeps polling before it is evicted
	SessionTTL time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:        getEnv("LOG_LEVEL", "INFO"),
		LogFormat:       getEnv("LOG_FORMAT", "text"),
		ServiceName:     getEnv("SERVICE_NAME", "badger-shop"),
		Version:         getEnv("VERSION", "dev"),
		Environment:     getEnv("ENVIRONMENT", "dev"),
		BadgerAppID:     getEnv("BADGER_APP_ID", ""),
		BadgerAppSecret: getEnv("BADGER_APP_SECRET", ""),
		BadgerAPIURL:    getEnv("BADGER_API_URL", DefaultBadgerAPIURL),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	ttlStr := getEnv("SESSION_TTL", DefaultSessionTTL)
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL value: %w", err)
	}
	cfg.SessionTTL = ttl

	// Validate vendor credentials are set - without them every badge call fails
	if cfg.BadgerAppID == "" {
		return nil, fmt.Errorf("BADGER_APP_ID environment variable must be set")
	}
	if cfg.BadgerAppSecret == "" {
		return nil, fmt.Errorf("BADGER_APP_SECRET environment variable must be set")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
