// Package config loads process configuration from the environment, with an
// optional .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/msomdec/knit-designer/internal/service"
)

type Config struct {
	Port             string
	DatabasePath     string
	JWTSecret        string
	CookieSecure     bool
	BcryptCost       int
	CatalogCacheSize int
	PolicyFile       string
	LogLevel         slog.Level
}

// Load reads .env (if present) and then the environment. Values already set
// in the environment win over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{
		Port:         envOrDefault("PORT", "8080"),
		DatabasePath: envOrDefault("DATABASE_PATH", "knit-designer.db"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		// Default to secure cookies; disable only for local development.
		CookieSecure:     os.Getenv("COOKIE_SECURE") != "false",
		BcryptCost:       12,
		CatalogCacheSize: 256,
		PolicyFile:       strings.TrimSpace(os.Getenv("POLICY_FILE")),
		LogLevel:         slog.LevelInfo,
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid BCRYPT_COST: %w", err)
		}
		if parsed < 4 || parsed > 14 {
			return nil, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", parsed)
		}
		cfg.BcryptCost = parsed
	}

	if v := os.Getenv("CATALOG_CACHE_SIZE"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed < 1 {
			return nil, fmt.Errorf("CATALOG_CACHE_SIZE must be a positive integer, got %q", v)
		}
		cfg.CatalogCacheSize = parsed
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
	}

	return cfg, nil
}

// RequireServer checks the settings only the HTTP server needs.
func (c *Config) RequireServer() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET environment variable is required")
	}
	if len(c.JWTSecret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	return nil
}

// Policy returns the readiness policy, read from PolicyFile when set.
func (c *Config) Policy() (service.Policy, error) {
	if c.PolicyFile == "" {
		return service.DefaultPolicy(), nil
	}
	return service.LoadPolicy(c.PolicyFile)
}

func envOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
