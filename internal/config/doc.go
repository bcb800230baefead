// Package config handles application configuration loading and validation.
//
// Configuration is loaded from environment variables with sensible defaults.
// The listening port is validated at startup to fail fast if misconfigured.
package config
