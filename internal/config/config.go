package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
)

const (
	defaultPort        = "5000"
	defaultHost        = "0.0.0.0"
	defaultEnvironment = "production"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	Host        string
	Environment string
	Debug       bool
}

// Load reads configuration from environment variables, applying documented
// defaults for anything unset.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnvOrDefault("PORT", defaultPort),
		Host:        getEnvOrDefault("HOST", defaultHost),
		Environment: getEnvOrDefault("ENVIRONMENT", defaultEnvironment),
		Debug:       getEnvBoolOrDefault("DEBUG", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// Addr returns the address the HTTP server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Validate checks that the configured port is a usable TCP port.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("PORT must be a valid integer: %w", err)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", port)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
