package config

import (
	"fmt"
	"os"
	"time"
)

const (
	DefaultPort       = "8080"
	DefaultAPIBaseURL = "https://secure.cyberknight-websites.com"
)

// Config holds all application configuration values
type Config struct {
	Port          string
	Env           string
	APIBaseURL    string
	CouncilNumber string
	HTTPTimeout   time.Duration
}

// IsDevelopment reports whether ENV is set to development
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// LoadConfig reads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", DefaultPort),
		Env:           os.Getenv("ENV"),
		APIBaseURL:    getEnv("NEWSLETTER_API_BASE_URL", DefaultAPIBaseURL),
		CouncilNumber: os.Getenv("COUNCIL_NUMBER"),
	}

	if raw := os.Getenv("NEWSLETTER_HTTP_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid NEWSLETTER_HTTP_TIMEOUT %q: %w", raw, err)
		}
		cfg.HTTPTimeout = timeout
	}

	if cfg.CouncilNumber == "" {
		return nil, fmt.Errorf("missing required environment variable: COUNCIL_NUMBER")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists && val != "" {
		return val
	}
	return fallback
}
