package config

import (
	"os"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		setup   func()
		cleanup func()
		check   func(t *testing.T, cfg *Config)
		wantErr bool
	}{
		{
			name:    "defaults when nothing is set",
			setup:   func() {},
			cleanup: func() {},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != "5000" {
					t.Errorf("Port = %v, want 5000", cfg.Port)
				}
				if cfg.Host != "0.0.0.0" {
					t.Errorf("Host = %v, want 0.0.0.0", cfg.Host)
				}
				if cfg.Environment != "production" {
					t.Errorf("Environment = %v, want production", cfg.Environment)
				}
				if cfg.Debug {
					t.Error("Debug = true, want false")
				}
			},
			wantErr: false,
		},
		{
			name: "env vars override defaults",
			setup: func() {
				os.Setenv("PORT", "8080")
				os.Setenv("ENVIRONMENT", "staging")
				os.Setenv("DEBUG", "true")
			},
			cleanup: func() {
				os.Unsetenv("PORT")
				os.Unsetenv("ENVIRONMENT")
				os.Unsetenv("DEBUG")
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Port != "8080" {
					t.Errorf("Port = %v, want 8080", cfg.Port)
				}
				if cfg.Environment != "staging" {
					t.Errorf("Environment = %v, want staging", cfg.Environment)
				}
				if !cfg.Debug {
					t.Error("Debug = false, want true")
				}
			},
			wantErr: false,
		},
		{
			name: "unparseable DEBUG falls back to false",
			setup: func() {
				os.Setenv("DEBUG", "yes please")
			},
			cleanup: func() {
				os.Unsetenv("DEBUG")
			},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Debug {
					t.Error("Debug = true, want false")
				}
			},
			wantErr: false,
		},
		{
			name: "non-numeric PORT",
			setup: func() {
				os.Setenv("PORT", "http")
			},
			cleanup: func() {
				os.Unsetenv("PORT")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.cleanup()

			cfg, err := Load()
			if (err != nil) != tt.wantErr {
				t.Errorf("Load() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
	}{
		{name: "valid port", port: "5000", wantErr: false},
		{name: "lowest valid port", port: "1", wantErr: false},
		{name: "highest valid port", port: "65535", wantErr: false},
		{name: "zero", port: "0", wantErr: true},
		{name: "out of range", port: "70000", wantErr: true},
		{name: "negative", port: "-1", wantErr: true},
		{name: "not a number", port: "five thousand", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Port: tt.port}
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Addr(t *testing.T) {
	cfg := &Config{Host: "0.0.0.0", Port: "8080"}
	if got := cfg.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Addr() = %v, want 0.0.0.0:8080", got)
	}
}
