package config

import (
	"os"

	"github.com/shopgen/cli/internal/output"
	"github.com/shopgen/cli/internal/selection"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is one configuration value together with its provenance.
type ResolvedValue struct {
	// Key is the configuration key.
	Key string
	// Value is the effective value after applying precedence.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveAllOptions carries the raw flag values for resolution.
type ResolveAllOptions struct {
	// ConfigFlag is the --config-file flag value (empty if not set).
	ConfigFlag string
	// SelectionFlag is the --config flag value (empty if not set).
	SelectionFlag string
	// OutputDirFlag is the --output-dir flag value (empty if not set).
	OutputDirFlag string
	// Config is the loaded config file (may be nil).
	Config *Config
}

// ResolvedConfig contains every resolved configuration value.
type ResolvedConfig struct {
	// ConfigPath is the resolved config file path.
	ConfigPath ResolvedValue
	// Selection is the resolved selection file path.
	Selection ResolvedValue
	// OutputDir is the resolved scaffold output directory.
	OutputDir ResolvedValue
}

// Values returns the resolved values in a fixed order for logging.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.ConfigPath, r.Selection, r.OutputDir}
}

// ResolveAll resolves every configuration value using precedence:
// flag > environment > config file > built-in default.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}

	var configSelection, configOutputDir string
	if opts.Config != nil {
		configSelection = opts.Config.Selection
		configOutputDir = opts.Config.Generator.OutputDir
	}

	return &ResolvedConfig{
		ConfigPath: resolve("config", opts.ConfigFlag, "SHOPGEN_CONFIG", "", paths.ConfigFile),
		Selection:  resolve("selection", opts.SelectionFlag, "SHOPGEN_SELECTION", configSelection, selection.DefaultFile),
		OutputDir:  resolve("outputDir", opts.OutputDirFlag, "SHOPGEN_OUTPUT_DIR", configOutputDir, DefaultOutputDir),
	}, nil
}

// resolve applies the precedence chain for a single value and records
// everything the winning source shadowed.
func resolve(key, flagValue, envVar, configValue, defaultValue string) ResolvedValue {
	result := ResolvedValue{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(envVar)

	switch {
	case flagValue != "":
		result.Value = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case envValue != "":
		result.Value = envValue
		result.Source = SourceEnv
		if configValue != "" {
			result.Shadowed[SourceConfig] = configValue
		}
	case configValue != "":
		result.Value = configValue
		result.Source = SourceConfig
	default:
		result.Value = defaultValue
		result.Source = SourceDefault
	}

	return result
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
