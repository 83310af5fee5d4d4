package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/triptychview/triptych/internal/config"
	"github.com/triptychview/triptych/internal/scan"
	"github.com/triptychview/triptych/internal/version"
)

// newScanCmd lists the recognized images headlessly, useful for
// checking what the browser panel will show before opening a window.
func newScanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scan [directory]",
		Short: "List recognized images in the data directory",
		Long: `List the image files the browser panel would display.

Without an argument the directory is resolved the same way the GUI
resolves it (bundle resources, ./data, executable-relative data,
system-wide shares).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			dir := cfg.DataDir
			if len(args) == 1 {
				dir = args[0]
			}
			if dir == "" {
				dir = config.DataDir()
			}

			images := scan.DirScanner{}.ListImages(dir)
			logger.Info().Str("dir", dir).Int("images", len(images)).Msg("scanned")
			for _, img := range images {
				fmt.Fprintln(cmd.OutOrStdout(), img)
			}
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "triptych %s (built %s)\n", version.Version, version.BuildTime)
		},
	}
}
