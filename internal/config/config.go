// Package config reads service configuration from environment variables,
// optionally seeded from a .env file for local development.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the service.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	JWTSecret string
	TokenTTL  time.Duration

	// DefaultCommissionRate applies to hosters that register without a
	// negotiated rate, expressed as a percentage (0-100).
	DefaultCommissionRate float64

	AdminEmail    string
	AdminPassword string

	// PublicBaseURL is used when building check-in links embedded in
	// eTicket QR codes.
	PublicBaseURL string
}

// Load builds a Config from the environment. A missing .env file is not an
// error; deployed environments set real variables.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "eventra"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:  getDuration("TOKEN_TTL", 7*24*time.Hour),

		DefaultCommissionRate: getFloat("DEFAULT_COMMISSION_RATE", 10),

		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@eventra.com"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
