// Package cli provides the command-line interface for topochem.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/molvath/topochem/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	verbose bool

	// Global config and logger, populated before any subcommand runs.
	cfg        config.Config
	logger     *slog.Logger
	logCleanup func() error
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "topochem",
	Short: "Topological indices for drug molecules",
	Long: `Topochem computes degree-based topological indices (Zagreb, harmonic,
sum-connectivity, augmented Zagreb and friends) for drug molecules.

Bond connectivity is retrieved from PubChem by compound name, cached in a
JSON edge-relations document, and aggregated into a spreadsheet with one
row per compound and one column per index.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		level := cfg.LogLevel
		if verbose {
			level = slog.LevelDebug
		}
		logger, logCleanup = config.SetupLogger(cfg.LogFile, level)
		slog.SetDefault(logger)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			if err := logCleanup(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
