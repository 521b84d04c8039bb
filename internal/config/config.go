// Package config loads gstanzl configuration.
//
// Configuration is applied in order of increasing precedence: hardcoded
// defaults, the user config, the project config, then GSTANZL_* environment
// variables. Command-line flags are applied on top by the CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gstanzl/gstanzl/internal/catalog"
	"github.com/gstanzl/gstanzl/internal/search"
)

// CurrentVersion is the config schema version written by `config init`.
const CurrentVersion = 1

// Project config file names, in lookup order.
const (
	ProjectFileYAML = ".gstanzl.yaml"
	ProjectFileYML  = ".gstanzl.yml"
)

// Config represents the complete gstanzl configuration.
type Config struct {
	Version int           `yaml:"version" json:"version"`
	Catalog CatalogConfig `yaml:"catalog" json:"catalog"`
	Search  SearchConfig  `yaml:"search" json:"search"`
	UI      UIConfig      `yaml:"ui" json:"ui"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// CatalogConfig configures where the catalog is read from.
type CatalogConfig struct {
	// Location is a file path or an http(s) URL. Default: songs.json
	Location string `yaml:"location" json:"location"`
}

// SearchConfig configures the search index. The searchable fields and the
// match threshold are fixed; only the matching engine can be chosen.
type SearchConfig struct {
	// Backend is "fuzzy" (default) or "bleve".
	Backend string `yaml:"backend" json:"backend"`
}

// UIConfig configures the terminal surfaces.
type UIConfig struct {
	NoColor bool `yaml:"no_color" json:"no_color"`
}

// LoggingConfig configures the diagnostic log file.
type LoggingConfig struct {
	Level     string `yaml:"level" json:"level"`
	File      string `yaml:"file" json:"file"`             // empty = ~/.gstanzl/logs/gstanzl.log
	MaxSizeMB int    `yaml:"max_size_mb" json:"max_size_mb"`
	MaxFiles  int    `yaml:"max_files" json:"max_files"`
}

// NewConfig creates a new Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Version: CurrentVersion,
		Catalog: CatalogConfig{
			Location: catalog.DefaultLocation,
		},
		Search: SearchConfig{
			Backend: string(search.BackendFuzzy),
		},
		Logging: LoggingConfig{
			Level:     "info",
			MaxSizeMB: 10,
			MaxFiles:  5,
		},
	}
}

// GetUserConfigPath returns the path to the user/global configuration file.
// It follows XDG Base Directory specification:
//   - $XDG_CONFIG_HOME/gstanzl/config.yaml (if XDG_CONFIG_HOME is set)
//   - ~/.config/gstanzl/config.yaml (default)
func GetUserConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gstanzl", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".config", "gstanzl", "config.yaml")
	}
	return filepath.Join(home, ".config", "gstanzl", "config.yaml")
}

// GetUserConfigDir returns the directory containing the user configuration.
func GetUserConfigDir() string {
	return filepath.Dir(GetUserConfigPath())
}

// UserConfigExists returns true if the user configuration file exists.
func UserConfigExists() bool {
	return fileExists(GetUserConfigPath())
}

// LoadUserConfig loads the user configuration file.
// Returns nil config and nil error if the file doesn't exist.
func LoadUserConfig() (*Config, error) {
	configPath := GetUserConfigPath()
	if !fileExists(configPath) {
		return nil, nil
	}

	cfg := NewConfig()
	if err := cfg.loadYAML(configPath); err != nil {
		return nil, fmt.Errorf("failed to load user config from %s: %w", configPath, err)
	}
	return cfg, nil
}

// Load loads configuration for the project in dir.
func Load(dir string) (*Config, error) {
	cfg := NewConfig()

	if userCfg, err := LoadUserConfig(); err != nil {
		return nil, err
	} else if userCfg != nil {
		cfg.mergeWith(userCfg)
	}

	if err := cfg.loadFromFile(dir); err != nil {
		return nil, err
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// ProjectConfigPath returns the project config file in dir, or "" if there
// is none. .yaml takes precedence over .yml.
func ProjectConfigPath(dir string) string {
	for _, name := range []string{ProjectFileYAML, ProjectFileYML} {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func (c *Config) loadFromFile(dir string) error {
	path := ProjectConfigPath(dir)
	if path == "" {
		return nil
	}
	return c.loadYAML(path)
}

// loadYAML loads and merges configuration from a YAML file.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into c.
func (c *Config) mergeWith(other *Config) {
	if other.Version != 0 {
		c.Version = other.Version
	}

	if other.Catalog.Location != "" {
		c.Catalog.Location = other.Catalog.Location
	}

	if other.Search.Backend != "" {
		c.Search.Backend = other.Search.Backend
	}

	// A later layer cannot switch color back on.
	if other.UI.NoColor {
		c.UI.NoColor = true
	}

	if other.Logging.Level != "" {
		c.Logging.Level = other.Logging.Level
	}
	if other.Logging.File != "" {
		c.Logging.File = other.Logging.File
	}
	if other.Logging.MaxSizeMB != 0 {
		c.Logging.MaxSizeMB = other.Logging.MaxSizeMB
	}
	if other.Logging.MaxFiles != 0 {
		c.Logging.MaxFiles = other.Logging.MaxFiles
	}
}

// applyEnvOverrides applies GSTANZL_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GSTANZL_CATALOG"); v != "" {
		c.Catalog.Location = v
	}
	if v := os.Getenv("GSTANZL_SEARCH_BACKEND"); v != "" {
		c.Search.Backend = v
	}
	if v := os.Getenv("GSTANZL_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("GSTANZL_LOG_MAX_SIZE_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Logging.MaxSizeMB = n
		}
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		c.UI.NoColor = true
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Catalog.Location) == "" {
		return fmt.Errorf("catalog.location must not be empty")
	}

	if _, err := search.ParseBackend(c.Search.Backend); err != nil {
		return fmt.Errorf("search.backend must be 'fuzzy' or 'bleve', got %s", c.Search.Backend)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("logging.level must be 'debug', 'info', 'warn', or 'error', got %s", c.Logging.Level)
	}

	if c.Logging.MaxSizeMB < 0 {
		return fmt.Errorf("logging.max_size_mb must be non-negative, got %d", c.Logging.MaxSizeMB)
	}
	if c.Logging.MaxFiles < 0 {
		return fmt.Errorf("logging.max_files must be non-negative, got %d", c.Logging.MaxFiles)
	}

	return nil
}

// SearchBackend returns the configured backend. Call after Validate.
func (c *Config) SearchBackend() search.Backend {
	b, err := search.ParseBackend(c.Search.Backend)
	if err != nil {
		return search.BackendFuzzy
	}
	return b
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
