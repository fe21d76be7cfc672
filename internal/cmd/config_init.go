// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shopgen/cli/internal/config"
	oerrors "github.com/shopgen/cli/internal/errors"
	"github.com/shopgen/cli/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the shopgen configuration file.

Writes a config file with all defaults populated:
  selection            Feature selection file path
  generator.outputDir  Scaffold output directory
  log.timestamps       Timestamps in log output

The file is written to the resolved config path:
  --config-file flag > SHOPGEN_CONFIG env > ~/.shopgen/config.yaml

Examples:
  # Initialize configuration
  shopgen config init

  # Overwrite existing configuration
  shopgen config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath, err := config.ExpandPath(GetConfigFilePath())
	if err != nil {
		return oerrors.WrapFilesystem(err, "resolving config path")
	}

	// Check if config exists
	if _, err := os.Stat(configPath); err == nil && !configInitForce {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: configPath,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	// Create the directory with secure permissions (0700)
	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return oerrors.WrapFilesystem(err, "creating config directory")
	}

	// Write config.yaml with secure permissions (0600)
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return oerrors.WrapFilesystem(err, "writing config file")
	}

	output.Println("Configuration initialized at " + configPath)
	output.Println("")
	output.Println("Validate with: shopgen config vet")

	return nil
}
