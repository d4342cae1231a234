package commands

import (
	"fmt"

	"github.com/dyluth/advent/internal/config"
	"github.com/dyluth/advent/internal/printer"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	version string
	commit  string
	date    string

	configPath string
	dataDir    string
	verbose    bool

	logger = zap.NewNop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Advent - daily puzzle solvers",
	Long: `Advent runs daily puzzle solvers against their inputs.

Each day reads a text file from the data directory and prints two answers,
one per part:

  <data>/inputs/NN.txt    your personal puzzle input
  <data>/examples/NN.txt  the worked example from the puzzle text

Settings are read from advent.yml when present.`,
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Errors are printed by the printer package, not by cobra
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	err := rootCmd.Execute()
	if err != nil && !printer.IsReported(err) {
		// usage errors from cobra and plain errors from commands
		return printer.Error(
			"command failed",
			err.Error(),
			[]string{"Run 'advent --help' for usage"},
		)
	}
	return err
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to advent.yml")
	rootCmd.PersistentFlags().StringVarP(&dataDir, "data", "d", "", "Data directory holding inputs/ and examples/ (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// loadConfig reads advent.yml (or defaults) and applies the --data override.
func loadConfig() (*config.AdventConfig, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, printer.Error(
			"invalid configuration",
			err.Error(),
			[]string{fmt.Sprintf("Fix %s or point --config at another file", configPath)},
		)
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	return cfg, nil
}
