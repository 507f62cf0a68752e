// Package config provides configuration parsing for sysmond.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults mirror the collector's fixed constants: one-second sampling,
// sixty retained history samples, fifty process table slots.
const (
	DefaultListenAddr     = "localhost:8080"
	DefaultSampleInterval = "1s"
	DefaultHistorySize    = 60
	DefaultMaxProcesses   = 50
	DefaultTokenLifetime  = "2160h"
)

// Config represents the sysmond daemon configuration.
type Config struct {
	// ListenAddr is the host:port the HTTP boundary binds to.
	ListenAddr string `yaml:"listen_addr"`
	// SampleInterval is a duration string (e.g. "1s", "500ms") between
	// collection cycles.
	SampleInterval string `yaml:"sample_interval"`
	// HistorySize is the fixed capacity of the history ring.
	HistorySize int `yaml:"history_size"`
	// MaxProcesses caps the process table.
	MaxProcesses int `yaml:"max_processes"`
	// TokenLifetime is a duration string for issued viewer tokens.
	TokenLifetime string `yaml:"token_lifetime"`
	// SecretKey overrides the persisted token signing key when set.
	SecretKey string `yaml:"secret_key"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	return &Config{
		ListenAddr:     DefaultListenAddr,
		SampleInterval: DefaultSampleInterval,
		HistorySize:    DefaultHistorySize,
		MaxProcesses:   DefaultMaxProcesses,
		TokenLifetime:  DefaultTokenLifetime,
	}
}

// Load reads the YAML file at path and overlays it on the defaults. An
// empty path or a missing file yields the defaults; a malformed or
// invalid file aborts startup.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the collector cannot run with.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	if c.HistorySize <= 0 {
		return fmt.Errorf("history_size must be positive, got %d", c.HistorySize)
	}
	if c.MaxProcesses <= 0 {
		return fmt.Errorf("max_processes must be positive, got %d", c.MaxProcesses)
	}
	if d, err := time.ParseDuration(c.SampleInterval); err != nil || d <= 0 {
		return fmt.Errorf("sample_interval %q is not a positive duration", c.SampleInterval)
	}
	if d, err := time.ParseDuration(c.TokenLifetime); err != nil || d <= 0 {
		return fmt.Errorf("token_lifetime %q is not a positive duration", c.TokenLifetime)
	}
	return nil
}

// Interval returns the parsed sampling interval. Validate has already
// established that it parses.
func (c *Config) Interval() time.Duration {
	d, _ := time.ParseDuration(c.SampleInterval)
	return d
}

// TokenExpiry returns the parsed token lifetime.
func (c *Config) TokenExpiry() time.Duration {
	d, _ := time.ParseDuration(c.TokenLifetime)
	return d
}
