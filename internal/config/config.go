// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultPort is the listen port used when PORT is not set.
const DefaultPort = "5000"

// Config holds all configuration for the application.
type Config struct {
	Port             string
	DatabaseURL      string
	GeminiAPIKey     string
	JWTSecret        string
	LogLevel         string
	DemoLoginEnabled bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         os.Getenv("PORT"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}

	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}

	// Demo login is on unless explicitly disabled.
	cfg.DemoLoginEnabled = os.Getenv("DEMO_LOGIN_ENABLED") != "false"

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present.
func (c *Config) validate() error {
	var errs []string

	if c.DatabaseURL == "" {
		errs = append(errs, "DATABASE_URL is required")
	}

	if c.JWTSecret == "" {
		errs = append(errs, "JWT_SECRET is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
