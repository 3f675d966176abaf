// Package config loads the per-project weaving configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// FileName is the project config file, looked up in the working directory.
// Comments and trailing commas are allowed.
const FileName = ".loom.json"

// Config errors
var (
	ErrConfigNotFound = errors.New("no " + FileName + " found")
	ErrConfigInvalid  = errors.New("invalid config")
)

// Config represents the project configuration
type Config struct {
	ProjectBaseName string `json:"projectBaseName"`
	SrcDirectory    string `json:"srcDirectory"`
	DbProvider      string `json:"dbProvider,omitempty"` // postgres, sqlserver, mysql, sqlite
	Journal         string `json:"journal,omitempty"`    // journal database path; empty means ~/.loom/journal.db
}

// LoadConfig reads .loom.json from the specified directory.
// Relative directories in the file are resolved against dir.
func LoadConfig(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w in %s", ErrConfigNotFound, dir)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	cfg.SrcDirectory = resolve(dir, cfg.SrcDirectory)
	if cfg.Journal != "" {
		cfg.Journal = resolve(dir, cfg.Journal)
	}

	return cfg, nil
}

// Parse decodes a JSON-with-comments config document.
func Parse(data []byte) (*Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return &cfg, nil
}

// SaveConfig writes .loom.json to directory
func SaveConfig(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Merge returns cfg with every non-empty field of overlay applied on top.
func (c Config) Merge(overlay Config) Config {
	if overlay.ProjectBaseName != "" {
		c.ProjectBaseName = overlay.ProjectBaseName
	}
	if overlay.SrcDirectory != "" {
		c.SrcDirectory = overlay.SrcDirectory
	}
	if overlay.DbProvider != "" {
		c.DbProvider = overlay.DbProvider
	}
	if overlay.Journal != "" {
		c.Journal = overlay.Journal
	}
	return c
}

// Validate checks the fields every weave needs.
func (c Config) Validate() error {
	if c.ProjectBaseName == "" {
		return fmt.Errorf("%w: projectBaseName is required", ErrConfigInvalid)
	}
	if c.SrcDirectory == "" {
		return fmt.Errorf("%w: srcDirectory is required", ErrConfigInvalid)
	}
	return nil
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
