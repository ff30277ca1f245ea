package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration.
type Config struct {
	Input  InputConfig
	Output OutputConfig
	Logger LoggerConfig
	S3     S3Config
}

// InputConfig selects the files to process.
type InputConfig struct {
	Dir   string
	Files []string // overrides Dir when non-empty
}

// OutputConfig holds output-related configuration.
type OutputConfig struct {
	Dir string
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
	File   string // optional; log lines are also appended here
}

// S3Config holds AWS S3 configuration for input files.
type S3Config struct {
	Enabled bool
	Bucket  string
	Region  string
	Prefix  string // Key prefix within bucket (e.g., "inputs/")
}

// Load loads configuration from environment variables, applies overrides in
// order and validates the result.
func Load(overrides ...func(*Config)) (*Config, error) {
	cfg := fromEnv()
	for _, override := range overrides {
		override(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// fromEnv reads configuration from environment variables.
func fromEnv() *Config {
	return &Config{
		Input: InputConfig{
			Dir:   getEnv("INPUT_DIR", "data/input/"),
			Files: getEnvAsList("INPUT_FILES"),
		},
		Output: OutputConfig{
			Dir: getEnv("OUTPUT_DIR", "data/output/"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
			File:   getEnv("LOG_FILE", ""),
		},
		S3: S3Config{
			Enabled: getEnvAsBool("S3_ENABLED", false),
			Bucket:  getEnv("S3_BUCKET", ""),
			Region:  getEnv("S3_REGION", "us-east-1"),
			Prefix:  getEnv("S3_PREFIX", "inputs/"),
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Input.Dir == "" && len(c.Input.Files) == 0 {
		return fmt.Errorf("input directory or input files are required")
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("output directory is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.S3.Enabled {
		if c.S3.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.S3.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	return nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsList splits a comma-separated environment variable, dropping empty entries.
func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
