package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application
type Config struct {
	Port             string
	AllowedOrigins   []string
	LogLevel         string
	RedisURL         string // Empty disables signup rate limiting
	SignupRateLimit  int
	SignupRateWindow time.Duration
	ShutdownTimeout  time.Duration
	Environment      string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8000"),
		AllowedOrigins:   parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		RedisURL:         getEnv("REDIS_URL", ""),
		SignupRateLimit:  getIntEnv("SIGNUP_RATE_LIMIT", 30),
		SignupRateWindow: getDurationEnv("SIGNUP_RATE_WINDOW", time.Minute),
		ShutdownTimeout:  getDurationEnv("SHUTDOWN_TIMEOUT", 25*time.Second),
		Environment:      getEnv("ENVIRONMENT", "production"),
	}, nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// parseOrigins parses comma-separated origins into a slice
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// getIntEnv gets a positive integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable (e.g. "30s") with a fallback value
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return fallback
}
