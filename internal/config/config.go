// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	MAL    MALConfig    `toml:"mal"`
	Server ServerConfig `toml:"server"`
	Audit  AuditConfig  `toml:"audit"`
}

type MALConfig struct {
	ClientID   string `toml:"client_id"`
	BaseURL    string `toml:"base_url"`
	TimeoutSec int    `toml:"timeout_sec"`
}

// Timeout returns the MAL HTTP timeout as a duration.
func (m MALConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutSec) * time.Second
}

type ServerConfig struct {
	Transport string `toml:"transport"`
	Addr      string `toml:"addr"`
	LogLevel  string `toml:"log_level"`
}

type AuditConfig struct {
	// Path of the SQLite audit database. Empty disables auditing.
	Path string `toml:"path"`
}

// Load reads, parses, and validates the configuration file.
// Missing environment variables and validation failures are
// aggregated into a single *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cerr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cerr.HasErrors() {
		return nil, cerr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the configuration file,
// skipping validation. Used by commands that inspect broken configs.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, missing, nil
}

// Default returns the configuration used when no config file exists.
// The MAL client ID is read from the MAL_CLIENT_ID environment variable.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.MAL.ClientID == "" {
		c.MAL.ClientID = os.Getenv("MAL_CLIENT_ID")
	}
	if c.MAL.TimeoutSec == 0 {
		c.MAL.TimeoutSec = 15
	}
	if c.Server.Transport == "" {
		c.Server.Transport = "stdio"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = "127.0.0.1:8481"
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
}
