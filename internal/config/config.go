// Package config loads the CLI configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the packvault CLI
type Config struct {
	// ServerURL is the PackVault API base URL
	ServerURL string `env:"PACKVAULT_SERVER_URL" envDefault:"https://api.packvault.dev" validate:"url"`

	// Token authenticates remote calls; empty means unauthenticated
	Token string `env:"PACKVAULT_TOKEN"`

	// BaseDir is the local sync root the engine compares against
	BaseDir string `env:"PACKVAULT_DIR" envDefault:"."`

	// Agent filters which rendering target to pull files for
	Agent string `env:"PACKVAULT_AGENT" validate:"omitempty,oneof=claude cursor continue copilot"`

	// CaptureMode is forwarded on submitted change proposals
	CaptureMode string `env:"PACKVAULT_CAPTURE_MODE" envDefault:"manual"`

	// LogLevel controls the zerolog global level
	LogLevel string `env:"PACKVAULT_LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	// Missing .env is not an error
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
