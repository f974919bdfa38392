package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the configuration file regsync looks for
const FileName = "regsync.json"

// Defaults match the layout of the readout-card source tree, where the tool
// runs from the directory holding the firmware address package.
const (
	DefaultSource = "pack_cru_core.vhd"
)

// DefaultHeaders are the generated headers patched when none are configured
var DefaultHeaders = []string{
	"Constants.h",
	"../../include/ReadoutCard/Cru.h",
}

// Config is the top-level configuration for regsync
type Config struct {
	// Source is the VHDL file holding the register address constants
	Source string `json:"source"`

	// Table is an optional JSON symbol table; empty selects the built-in table
	Table string `json:"table,omitempty"`

	// Headers lists target headers; entries may be glob patterns (including **)
	Headers []string `json:"headers"`

	// Audit contains checks run before headers are written
	Audit AuditConfig `json:"audit,omitempty"`
}

// AuditConfig controls the policy audit and header verification
type AuditConfig struct {
	// Enabled turns on the policy audit
	Enabled *bool `json:"enabled,omitempty"`

	// Strict aborts the run, before any write, when the audit reports errors
	Strict bool `json:"strict,omitempty"`

	// PolicyDir holds extra .rego files (package regsync.audit)
	PolicyDir string `json:"policyDir,omitempty"`

	// VerifyHeaders re-parses patched headers and checks the written addresses
	VerifyHeaders *bool `json:"verifyHeaders,omitempty"`
}

// DefaultConfig returns the configuration the tool has always run with
func DefaultConfig() *Config {
	return &Config{
		Source:  DefaultSource,
		Headers: append([]string{}, DefaultHeaders...),
		Audit: AuditConfig{
			Enabled:       boolPtr(true),
			Strict:        false,
			VerifyHeaders: boolPtr(true),
		},
	}
}

func boolPtr(v bool) *bool {
	return &v
}

// AuditEnabled reports whether the policy audit runs.
func (c *Config) AuditEnabled() bool {
	return c.Audit.Enabled == nil || *c.Audit.Enabled
}

// VerifyEnabled reports whether patched headers are re-parsed before writing.
func (c *Config) VerifyEnabled() bool {
	return c.Audit.VerifyHeaders == nil || *c.Audit.VerifyHeaders
}

// Load finds and loads the configuration file
// Search order:
//  1. <dir>/regsync.json
//  2. <dir>/.regsync.json
//  3. ~/.config/regsync/config.json
//
// Returns DefaultConfig if no config file is found
func Load(dir string) (*Config, error) {
	searchPaths := []string{
		filepath.Join(dir, FileName),
		filepath.Join(dir, "."+FileName),
	}

	if home, err := os.UserHomeDir(); err == nil {
		searchPaths = append(searchPaths, filepath.Join(home, ".config", "regsync", "config.json"))
	}

	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}

	// No config found, return defaults
	return DefaultConfig(), nil
}

// LoadFile loads configuration from a specific file
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing fields
	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Source == "" {
		c.Source = DefaultSource
	}
	if len(c.Headers) == 0 {
		c.Headers = append([]string{}, DefaultHeaders...)
	}
	if c.Audit.Enabled == nil {
		c.Audit.Enabled = boolPtr(true)
	}
	if c.Audit.VerifyHeaders == nil {
		c.Audit.VerifyHeaders = boolPtr(true)
	}
}

// Save writes the configuration to a file
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
