package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./anibridge.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "anibridge", "config.toml")
}

// Discover finds the config file using the standard search order:
//
//	1. ANIBRIDGE_CONFIG environment variable
//	2. ./anibridge.toml (current directory)
//	3. $XDG_CONFIG_HOME/anibridge/config.toml
//	4. /etc/anibridge/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv("ANIBRIDGE_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("ANIBRIDGE_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./anibridge.toml",
		DefaultPath(),
		"/etc/anibridge/config.toml",
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("config not found, checked: %s", strings.Join(paths, ", "))
}
