// Package config manages azsite application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultCacheTTL is the default TTL for cached site descriptors.
const DefaultCacheTTL = 10 * time.Minute

// Alias is a saved site target: everything needed to address one app or
// slot without retyping flags.
type Alias struct {
	Subscription  string `yaml:"subscription,omitempty"` // empty → config default
	ResourceGroup string `yaml:"resource_group"`
	Site          string `yaml:"site"`
	Slot          string `yaml:"slot,omitempty"`
}

// Config holds the azsite application configuration.
type Config struct {
	DefaultSubscription string           `yaml:"default_subscription"`
	Environment         string           `yaml:"environment,omitempty"` // resource manager endpoint override
	CacheTTL            string           `yaml:"cache_ttl,omitempty"`
	Aliases             map[string]Alias `yaml:"aliases"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Aliases: make(map[string]Alias),
	}
}

// Load reads a config file from the given path. If the file does not exist,
// it returns the default config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Aliases == nil {
		cfg.Aliases = make(map[string]Alias)
	}

	return cfg, nil
}

// Save writes the config to the given path, creating the directory if
// needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// ParsedCacheTTL returns the configured cache TTL, falling back to the
// default when unset or unparsable.
func (c *Config) ParsedCacheTTL() time.Duration {
	if c.CacheTTL == "" {
		return DefaultCacheTTL
	}
	ttl, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return DefaultCacheTTL
	}
	return ttl
}

// ConfigDir returns the azsite configuration directory (~/.azsite).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, ".azsite"), nil
}

// ConfigPath returns the path of the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
