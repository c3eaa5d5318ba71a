//-------------------------------------------------------------------------
//
// pgEdge Listing Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-listgen.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// MaxNeighborhoodsPerCity bounds the per-city quota by the size of the
// neighborhood name pool it is sampled from without replacement.
const MaxNeighborhoodsPerCity = 15

// Config holds all configuration for pgedge-listgen.
type Config struct {
	// Connection is the PostgreSQL connection string.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// LogFormat is "console" or "json".
	LogFormat string `mapstructure:"log_format"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`
}

// GenerateConfig holds configuration for a generation run.
type GenerateConfig struct {
	// Properties is the number of property records to generate.
	Properties int `mapstructure:"properties"`

	// Agents is the number of agent records to generate.
	Agents int `mapstructure:"agents"`

	// NeighborhoodsPerCity is the neighborhood quota sampled for each city.
	NeighborhoodsPerCity int `mapstructure:"neighborhoods_per_city"`

	// BatchSize is the number of rows per flushed chunk.
	BatchSize int `mapstructure:"batch_size"`

	// ProgressInterval is how often to log progress (in rows).
	ProgressInterval int `mapstructure:"progress_interval"`

	// Seed drives the pseudo-random source; equal seeds give equal datasets.
	Seed uint64 `mapstructure:"seed"`

	// Force regenerates even when agents or properties already exist.
	Force bool `mapstructure:"force"`

	// CreateSchema applies the table DDL before generating.
	CreateSchema bool `mapstructure:"create_schema"`

	// ListingCodeAttempts caps the resampling loop for listing codes.
	ListingCodeAttempts int `mapstructure:"listing_code_attempts"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "console",
		Generate: GenerateConfig{
			Properties:           20000,
			Agents:               500,
			NeighborhoodsPerCity: 5,
			BatchSize:            1000,
			ProgressInterval:     1000,
			Seed:                 42,
			Force:                false,
			CreateSchema:         false,
			ListingCodeAttempts:  1000,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pgedge-listgen.yaml
// 3. ~/.config/pgedge-listgen/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("pgedge-listgen")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-listgen"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Start with defaults
	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	if c.LogFormat != "" && c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("log_format must be 'console' or 'json'")
	}
	return nil
}

// ValidateGenerate checks configuration required for the generate command.
func (c *Config) ValidateGenerate() error {
	if err := c.Validate(); err != nil {
		return err
	}
	g := c.Generate
	if g.Properties < 0 {
		return fmt.Errorf("properties must be non-negative")
	}
	if g.Agents < 0 {
		return fmt.Errorf("agents must be non-negative")
	}
	if g.NeighborhoodsPerCity < 0 || g.NeighborhoodsPerCity > MaxNeighborhoodsPerCity {
		return fmt.Errorf("neighborhoods_per_city must be between 0 and %d", MaxNeighborhoodsPerCity)
	}
	if g.BatchSize < 1 {
		return fmt.Errorf("batch_size must be at least 1")
	}
	if g.ProgressInterval < 1 {
		return fmt.Errorf("progress_interval must be at least 1")
	}
	if g.ListingCodeAttempts < 1 {
		return fmt.Errorf("listing_code_attempts must be at least 1")
	}
	return nil
}
