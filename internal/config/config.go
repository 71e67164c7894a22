package config

import (
	"os"
	"strconv"
	"strings"

	"wekeza-crm/internal/pkg/jwt"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type AppConfig struct {
	// Server
	HTTPAddr string

	// PostgreSQL
	DB DBConfig

	// Redis (rate limiting; disabled when addr is empty)
	RedisAddr string
	RedisPass string

	// Rate limiting
	RateLimitPerMinute int64

	// Auth (token validation only; no endpoint requires it by default)
	AuthEnabled bool
	JWT         jwt.Config
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		DB: DBConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "wekeza"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "wekeza_crm"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},

		RedisAddr: getEnv("REDIS_ADDR", ""),
		RedisPass: getEnv("REDIS_PASS", ""),

		RateLimitPerMinute: getEnvInt64("RATE_LIMIT_PER_MINUTE", 300),

		AuthEnabled: strings.ToLower(getEnv("AUTH_ENABLED", "false")) == "true",
		JWT: jwt.Config{
			Secret:   getEnv("JWT_SECRET", ""),
			Issuer:   getEnv("JWT_ISSUER", "wekeza-crm"),
			Audience: getEnv("JWT_AUDIENCE", "wekeza-api"),
		},
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
