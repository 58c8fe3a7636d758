// Package config loads the astro-mcp server configuration from YAML.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the astro-mcp server configuration.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Preview   PreviewConfig   `yaml:"preview"`
	Detection DetectionConfig `yaml:"detection"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// PreviewConfig controls PNG previews attached to cutout responses.
type PreviewConfig struct {
	Enabled      *bool  `yaml:"enabled"` // default true
	MaxDimension int    `yaml:"max_dimension"`
	Colormap     string `yaml:"colormap"` // gray, heat
}

// DetectionConfig holds default star-detection parameters.
type DetectionConfig struct {
	Radius       int     `yaml:"radius"`
	BrightRadius int     `yaml:"bright_radius"`
	Threshold    float64 `yaml:"threshold"`
}

// Load reads configuration from a YAML file. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// PreviewEnabled reports whether previews should be rendered.
func (c *Config) PreviewEnabled() bool {
	return c.Preview.Enabled == nil || *c.Preview.Enabled
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Preview.MaxDimension <= 0 {
		c.Preview.MaxDimension = 512
	}
	if c.Preview.Colormap == "" {
		c.Preview.Colormap = "gray"
	}
	if c.Detection.Radius <= 0 {
		c.Detection.Radius = 5
	}
	if c.Detection.BrightRadius <= 0 {
		c.Detection.BrightRadius = 2
	}
}

// Validate checks field values after defaults are applied.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", c.Logging.Level)
	}
	switch c.Preview.Colormap {
	case "gray", "heat":
	default:
		return fmt.Errorf("unknown preview colormap %q", c.Preview.Colormap)
	}
	return nil
}
