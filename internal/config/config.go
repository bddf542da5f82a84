package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = "pazar.yaml"

// Config holds all pazar configuration.
type Config struct {
	// Dataset source
	Dataset DatasetConfig `yaml:"dataset"`

	// Table paging defaults
	Table TableConfig `yaml:"table"`

	// Terminal UI
	UI UIConfig `yaml:"ui"`

	// Map search link target
	Maps MapsConfig `yaml:"maps"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// DatasetConfig selects the market dataset.
type DatasetConfig struct {
	// Path to a JSON document replacing the bundled dataset (empty = bundled)
	Path string `yaml:"path"`
}

// TableConfig configures the query engine's paging.
type TableConfig struct {
	// PageSizes offered besides "all rows"
	PageSizes []int `yaml:"page_sizes"`
	// DefaultPageSize is the starting page size; 0 means all rows
	DefaultPageSize int `yaml:"default_page_size"`
}

// MapsConfig configures the popover's map-search link.
type MapsConfig struct {
	SearchURL string `yaml:"search_url"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Table: TableConfig{
			PageSizes:       []int{10, 20, 50, 100},
			DefaultPageSize: 0,
		},
		UI: *DefaultUIConfig(),
		Maps: MapsConfig{
			SearchURL: "https://www.google.com/maps/search/",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("PAZAR_DATASET"); path != "" {
		c.Dataset.Path = path
	}
	if theme := os.Getenv("PAZAR_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if level := os.Getenv("PAZAR_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("PAZAR_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	for _, s := range c.Table.PageSizes {
		if s <= 0 {
			return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidConfig, s)
		}
	}
	if c.Table.DefaultPageSize < 0 {
		return fmt.Errorf("%w: default page size must not be negative, got %d", ErrInvalidConfig, c.Table.DefaultPageSize)
	}
	if !isValid(c.UI.Theme, ValidThemes) {
		return fmt.Errorf("%w: theme %q (valid: %v)", ErrInvalidConfig, c.UI.Theme, ValidThemes)
	}
	if !isValid(c.Logging.Level, ValidLogLevels) {
		return fmt.Errorf("%w: log level %q (valid: %v)", ErrInvalidConfig, c.Logging.Level, ValidLogLevels)
	}
	if !isValid(c.Logging.Format, ValidLogFormats) {
		return fmt.Errorf("%w: log format %q (valid: %v)", ErrInvalidConfig, c.Logging.Format, ValidLogFormats)
	}
	return nil
}

func isValid(v string, valid []string) bool {
	for _, s := range valid {
		if v == s {
			return true
		}
	}
	return false
}
