package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func containsError(errs []string, substr string) bool {
	for _, e := range errs {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidate_MinimalValid(t *testing.T) {
	cfg := &Config{
		MAL: MALConfig{ClientID: "abc123"},
	}
	errs := cfg.Validate()
	assert.Empty(t, errs, "expected no errors for minimal valid config")
}

func TestValidate_MissingClientID(t *testing.T) {
	cfg := &Config{}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "mal.client_id"), "expected client id error, got %v", errs)
}

func TestValidate_InvalidTransport(t *testing.T) {
	cfg := &Config{
		MAL:    MALConfig{ClientID: "abc123"},
		Server: ServerConfig{Transport: "grpc"},
	}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "server.transport"), "expected transport error, got %v", errs)
}

func TestValidate_HTTPNeedsAddr(t *testing.T) {
	cfg := &Config{
		MAL:    MALConfig{ClientID: "abc123"},
		Server: ServerConfig{Transport: "http"},
	}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "server.addr"), "expected addr error, got %v", errs)
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	cfg := &Config{
		MAL:    MALConfig{ClientID: "abc123"},
		Server: ServerConfig{LogLevel: "verbose"},
	}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "log_level"), "expected log_level error, got %v", errs)
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := &Config{
		MAL: MALConfig{ClientID: "abc123", TimeoutSec: -5},
	}
	errs := cfg.Validate()
	assert.True(t, containsError(errs, "timeout_sec"), "expected timeout error, got %v", errs)
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Transport: "grpc", LogLevel: "verbose"},
	}
	errs := cfg.Validate()
	assert.Len(t, errs, 3)
}
