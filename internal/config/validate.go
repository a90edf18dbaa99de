package config

import (
	"fmt"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validTransports = map[string]bool{
	"stdio": true, "http": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if c.MAL.ClientID == "" {
		errs = append(errs, "mal.client_id: required (set MAL_CLIENT_ID or register at https://myanimelist.net/apiconfig)")
	}
	if c.MAL.TimeoutSec < 0 {
		errs = append(errs, fmt.Sprintf("mal.timeout_sec: must not be negative, got %d", c.MAL.TimeoutSec))
	}

	if !validTransports[c.Server.Transport] {
		errs = append(errs, fmt.Sprintf("server.transport: must be stdio or http; got %q", c.Server.Transport))
	}
	if c.Server.Transport == "http" && c.Server.Addr == "" {
		errs = append(errs, "server.addr: required for the http transport")
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}

	return errs
}
