package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	Port     uint16

	// AllowedOrigins are the browser origins allowed to call this API.
	AllowedOrigins []string

	Backend BackendConfig
	Redis   RedisConfig
	Stripe  StripeConfig
}

// BackendConfig holds the connection settings for the remote commerce API
// that owns products, carts and users.
type BackendConfig struct {
	// BaseURL is the root of the commerce REST API (e.g. "http://localhost:4000").
	BaseURL string

	// Timeout is the fixed per-request HTTP timeout. There is no retry or
	// backoff; an expired request surfaces as a network error and the user
	// retries manually.
	Timeout time.Duration

	// BreakerEnabled toggles the circuit breaker around backend calls.
	BreakerEnabled bool
}

// RedisConfig holds session store settings.
// When URL is empty the server falls back to the in-memory session store.
type RedisConfig struct {
	URL        string
	SessionTTL time.Duration
}

type StripeConfig struct {
	SecretKey      string
	PublishableKey string
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnvInt("PORT", 3000),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),

		Backend: BackendConfig{
			BaseURL:        getEnv("BACKEND_URL", "http://localhost:4000"),
			Timeout:        getEnvDuration("BACKEND_TIMEOUT", 5*time.Second),
			BreakerEnabled: getEnvBool("BACKEND_BREAKER_ENABLED", true),
		},
		Redis: RedisConfig{
			URL:        getEnv("REDIS_URL", ""),
			SessionTTL: getEnvDuration("SESSION_TTL", 24*time.Hour),
		},
		Stripe: StripeConfig{
			SecretKey:      getEnv("STRIPE_SECRET_KEY", "sk_test_your_key_here"),
			PublishableKey: getEnv("STRIPE_PUBLISHABLE_KEY", "pk_test_your_key_here"),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	if cfg.Env == "prod" && cfg.Stripe.SecretKey == "sk_test_your_key_here" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY must be set in production environment")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
