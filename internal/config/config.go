// Package config handles application configuration loading from environment
// variables. Command-line flags in cmd/minimax override these values.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	Env string // "development", "production", "testing"

	// Logging
	LogLevel  string // "debug", "info", "warn", "error"
	LogFormat string // "text" or "json"

	// Generation defaults
	Styles   string // comma-separated style names or "all"
	Format   string // output format: text, json, yaml, markdown, html
	Seed     uint64 // 0 means non-reproducible selection
	ToneDown bool
}

// Load reads configuration from environment variables, applying defaults
// where a variable is unset or empty. Malformed values are reported with
// the variable name.
func Load() (*Config, error) {
	env := envOrDefault("APP_ENV", "development")
	defaultLevel := "info"
	if env == "development" {
		defaultLevel = "debug"
	}

	cfg := &Config{
		Env:       env,
		LogLevel:  strings.ToLower(envOrDefault("LOG_LEVEL", defaultLevel)),
		LogFormat: strings.ToLower(envOrDefault("LOG_FORMAT", "text")),
		Styles:    envOrDefault("MINIMAX_STYLES", "all"),
		Format:    strings.ToLower(envOrDefault("MINIMAX_FORMAT", "text")),
	}

	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be \"text\" or \"json\", got %q", cfg.LogFormat)
	}

	if v := os.Getenv("MINIMAX_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("MINIMAX_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv("MINIMAX_TONE_DOWN"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("MINIMAX_TONE_DOWN: %w", err)
		}
		cfg.ToneDown = on
	}

	return cfg, nil
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// SlogLevel returns the configured log level. Load has already validated
// it, so unknown values fall back to info.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, err
	}
	return lvl, nil
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
