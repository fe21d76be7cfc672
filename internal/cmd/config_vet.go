// Package cmd provides CLI command implementations.
package cmd

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/shopgen/cli/internal/config"
	oerrors "github.com/shopgen/cli/internal/errors"
	"github.com/shopgen/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the shopgen configuration file.

Checks performed:
  1. Config file exists at the resolved path
  2. Config file is syntactically valid YAML
  3. Config file contains only known keys

The config path is resolved using precedence:
  --config-file flag > SHOPGEN_CONFIG env > ~/.shopgen/config.yaml

Examples:
  # Validate default configuration
  shopgen config vet

  # Validate a custom config path
  shopgen config vet --config-file /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	configPath, err := config.ExpandPath(GetConfigFilePath())
	if err != nil {
		return oerrors.WrapFilesystem(err, "resolving config path")
	}

	output.Debug("validating config", "path", configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &oerrors.DetailError{
				Type:     "not found",
				Message:  "configuration file not found",
				Location: configPath,
				Hint:     "Run 'shopgen config init' to create default configuration.",
				Cause:    oerrors.ErrNotFound,
			}
		}
		return oerrors.WrapFilesystem(err, "reading config file")
	}

	// Strict decoding rejects unknown keys, catching typos like
	// "outputdir" that a lenient load would silently drop.
	var cfg config.Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return oerrors.NewParseError(configPath, err)
	}

	output.Println("Configuration is valid: " + configPath)
	return nil
}
