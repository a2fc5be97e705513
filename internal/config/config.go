package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `env:"TH_LOG_LEVEL" envDefault:"info"`
	// Format is the log output format: "json" or "console".
	Format string `env:"TH_LOG_FORMAT" envDefault:"json"`
	// File receives the log output. The terminal belongs to the game.
	File string `env:"TH_LOG_FILE" envDefault:"treasure-hunter.log"`
}

// Config holds the application configuration.
type Config struct {
	// Seed reseeds the session's random source. Zero picks a time-based seed.
	Seed    int64 `env:"TH_SEED" envDefault:"0"`
	Logging LoggingConfig

	// GeminiAPIKey enables generated treasure descriptions when set.
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	NarratorModel string `env:"TH_NARRATOR_MODEL" envDefault:"gemini-2.5-flash"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []string

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		errs = append(errs, fmt.Sprintf("TH_LOG_LEVEL must be one of [debug, info, warn, error], got %q", c.Logging.Level))
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Logging.Format] {
		errs = append(errs, fmt.Sprintf("TH_LOG_FORMAT must be one of [json, console], got %q", c.Logging.Format))
	}
	if c.Logging.File == "" {
		errs = append(errs, "TH_LOG_FILE must not be empty")
	}
	if c.GeminiAPIKey != "" && c.NarratorModel == "" {
		errs = append(errs, "TH_NARRATOR_MODEL must not be empty when GEMINI_API_KEY is set")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
