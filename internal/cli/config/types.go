// Package config provides configuration management for the keyframe CLI.
// Configuration comes from a project file, environment variables and flags,
// merged with koanf.
package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// TableConfig holds per-table defaults, looked up by table name (a CSV
// file's base name without extension).
type TableConfig struct {
	Key []string `koanf:"key"`
}

// Config holds all CLI configuration options.
type Config struct {
	DataDir      string                 `koanf:"data_dir"`
	OutputFormat string                 `koanf:"output"`
	Verbose      bool                   `koanf:"verbose"`
	Tables       map[string]TableConfig `koanf:"tables"`

	// ProjectRoot is the resolved project directory (not read from config).
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultDataDir = "data"
	DefaultOutput  = "table"
)

// KeyFor returns the configured default key for a table, or nil. The name
// may be a bare table name or a path to its CSV file.
func (c *Config) KeyFor(name string) []string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if tc, ok := c.Tables[base]; ok {
		return tc.Key
	}
	return nil
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "table", "json", "csv", "md", "markdown":
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, json, csv or md)", c.OutputFormat)
	}
}
