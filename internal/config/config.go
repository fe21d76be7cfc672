// Package config provides configuration loading and management.
package config

import (
	"github.com/shopgen/cli/internal/selection"
)

// DefaultOutputDir is where service scaffolds are written when no
// directory is configured.
const DefaultOutputDir = "generated"

// GeneratorConfig contains scaffold generation settings.
type GeneratorConfig struct {
	// OutputDir is the directory service scaffolds are written into.
	// Env: SHOPGEN_OUTPUT_DIR, Default: "generated"
	OutputDir string `mapstructure:"outputDir" yaml:"outputDir,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty"`
}

// Config represents the shopgen configuration.
// Loaded from ~/.shopgen/config.yaml.
type Config struct {
	// Selection is the path of the feature selection file.
	// Env: SHOPGEN_SELECTION, Default: "ecommerce_config.json"
	Selection string `mapstructure:"selection" yaml:"selection,omitempty"`

	// Generator contains scaffold generation settings.
	Generator GeneratorConfig `mapstructure:"generator" yaml:"generator,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `shopgen config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Selection: selection.DefaultFile,
		Generator: GeneratorConfig{
			OutputDir: DefaultOutputDir,
		},
	}
}

// WithDefaults fills empty fields with their default values.
func (c *Config) WithDefaults() *Config {
	if c.Selection == "" {
		c.Selection = selection.DefaultFile
	}
	if c.Generator.OutputDir == "" {
		c.Generator.OutputDir = DefaultOutputDir
	}
	return c
}
