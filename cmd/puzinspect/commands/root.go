// Package commands implements the puzinspect command tree.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/logicossoftware/go-puz/internal/config"
	"github.com/logicossoftware/go-puz/internal/logger"
)

var (
	// Version information injected at build time.
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"

	// Global flags.
	cfgFile   string
	logLevel  string
	logFormat string

	// cfg is resolved in PersistentPreRunE before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "puzinspect",
	Short: "Inspect Across Lite .puz crossword headers",
	Long: `puzinspect locates the ACROSS&DOWN magic in .puz files, decodes the
fixed header and reports checksums, version, grid size, clue count,
puzzle type and solution type.

Compressed inputs (zip, zstd, lz4, brotli, gzip, xz) are unwrapped first.

Settings can be overridden with PUZINSPECT_<SECTION>_<KEY> environment
variables, e.g. PUZINSPECT_LOGGING_LEVEL=DEBUG.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command. It is called once by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for testing purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/puzinspect/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, json")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(inspectCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func setup(cmd *cobra.Command, _ []string) error {
	v := config.New(cfgFile)
	if logLevel != "" {
		v.Set("logging.level", logLevel)
	}
	if logFormat != "" {
		v.Set("logging.format", logFormat)
	}

	loaded, err := config.Load(v, cfgFile != "")
	if err != nil {
		return err
	}
	if err := logger.Init(loaded.Logger()); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	cfg = loaded
	logger.Debug("configuration loaded", "source", configSource(v.ConfigFileUsed()))
	return nil
}

func configSource(used string) string {
	if used == "" {
		return "defaults"
	}
	return used
}
