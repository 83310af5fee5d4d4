// Package cli provides the command-line interface for triptych.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/triptychview/triptych/internal/config"
	"github.com/triptychview/triptych/internal/gui"
	"github.com/triptychview/triptych/internal/logging"
	"github.com/triptychview/triptych/internal/version"
)

var (
	// Global flags
	cfgFile string
	dataDir string
	debug   bool

	// Global logger
	logger *logging.Logger
)

// NewRootCmd creates the root command. Running it without a subcommand
// launches the GUI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "triptych",
		Short: "Triptych - three-panel desktop image viewer",
		Long: `Triptych ` + version.Version + ` - Built: ` + version.BuildTime + `
Opens a window with a three-panel layout; the first panel browses the
images found in the resolved data directory.

The data directory is searched in order: macOS bundle resources, ./data
under the working directory, data next to the executable, then the
system-wide share locations. Use --data-dir to bypass the search.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewDefaultCLILogger()
			if debug {
				logging.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return gui.Launch(cfg)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Image data directory (overrides the search paths)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")

	rootCmd.Version = version.Version + " (" + version.BuildTime + ")"

	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig builds the effective configuration, letting the --data-dir
// flag win over the config file and environment.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}
