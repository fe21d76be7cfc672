// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shopgen/cli/internal/config"
	"github.com/shopgen/cli/internal/output"
)

var (
	// Global flags
	selectionFlag  string
	outputDirFlag  string
	configFileFlag string
	verboseFlag    bool
	timestampsFlag bool

	// Root-only flags
	generateFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	shopgenConfig  *config.Config
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for the shopgen CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "shopgen",
		Short: "E-commerce microservice product line configurator",
		Long: `shopgen configures and scaffolds an e-commerce microservice product line.

Run it without flags to start an interactive session for selecting the
features of your product variant. Run it with --generate to emit service
scaffolds for the persisted selection and exit.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runRoot,
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&selectionFlag, "config", "", "Path to the feature selection file (env: SHOPGEN_SELECTION)")
	rootCmd.PersistentFlags().StringVar(&outputDirFlag, "output-dir", "", "Output directory for generated scaffolds (env: SHOPGEN_OUTPUT_DIR)")
	rootCmd.PersistentFlags().StringVar(&configFileFlag, "config-file", "", "Path to the shopgen config file (env: SHOPGEN_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.Flags().BoolVarP(&generateFlag, "generate", "g", false, "Generate scaffolds for the selected features and exit")

	// Add subcommands
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	if generateFlag {
		return runGenerate(cmd)
	}
	return runSession(cmd)
}

// initializeGlobals sets up logging and resolves configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loadedConfig, err := config.NewLoader().Load(configFileFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - commands that don't need the config file still work
	}
	shopgenConfig = loadedConfig

	resolved, err := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag:    configFileFlag,
		SelectionFlag: selectionFlag,
		OutputDirFlag: outputDirFlag,
		Config:        shopgenConfig,
	})
	if err != nil {
		return err
	}
	resolvedConfig = resolved

	// Build LogConfig with precedence: flag > config > default(true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if shopgenConfig != nil && shopgenConfig.Log.Timestamps != nil {
		logCfg.Timestamps = shopgenConfig.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if verboseFlag {
		config.LogResolvedValues(resolvedConfig.Values())
	}

	return nil
}

// GetSelectionPath returns the resolved selection file path.
func GetSelectionPath() string {
	if resolvedConfig != nil {
		return resolvedConfig.Selection.Value
	}
	return selectionFlag
}

// GetOutputDir returns the resolved scaffold output directory.
func GetOutputDir() string {
	if resolvedConfig != nil {
		return resolvedConfig.OutputDir.Value
	}
	return outputDirFlag
}

// GetConfigFilePath returns the resolved config file path.
func GetConfigFilePath() string {
	if resolvedConfig != nil {
		return resolvedConfig.ConfigPath.Value
	}
	return configFileFlag
}
