package commands

import (
	"fmt"
	"path/filepath"

	"github.com/dyluth/advent/internal/config"
	"github.com/dyluth/advent/internal/printer"
	"github.com/dyluth/advent/internal/puzzle"
	"github.com/dyluth/advent/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	forceInit bool
	initDir   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new puzzle workspace",
	Long: `Initialize a puzzle workspace with a default configuration.

Creates:
  • advent.yml      - workspace configuration
  • data/inputs/    - personal puzzle inputs (NN.txt)
  • data/examples/  - worked examples from the puzzle text (NN.txt)

A relative data_dir in advent.yml is resolved against the directory holding
the file, so a workspace created with --dir works from any directory.

Use --force to replace an existing advent.yml. Puzzle inputs are never removed.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var scaffoldCmd = &cobra.Command{
	Use:   "scaffold DAY",
	Short: "Create empty input files for a day",
	Long: `Create empty <data>/inputs/NN.txt and <data>/examples/NN.txt files for DAY,
ready to paste the puzzle input and example into. Existing files are kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runScaffold,
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Replace an existing advent.yml")
	initCmd.Flags().StringVar(&initDir, "dir", ".", "Directory to initialize")
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(scaffoldCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if !forceInit {
		if err := scaffold.CheckExisting(initDir); err != nil {
			return printer.Error(
				"project already initialized",
				err.Error(),
				[]string{"Use 'advent init --force' to replace the existing configuration"},
			)
		}
	}

	if err := scaffold.Initialize(initDir, forceInit); err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	printer.Success("Initialized puzzle workspace in %s\n", initDir)
	printer.Info("\nCreated:\n")
	printer.Info("  ✓ %s\n", filepath.Join(initDir, config.DefaultPath))
	for _, category := range []puzzle.Category{puzzle.CategoryInputs, puzzle.CategoryExamples} {
		printer.Info("  ✓ %s%c\n", filepath.Join(initDir, config.DefaultDataDir, string(category)), filepath.Separator)
	}
	printer.Info("\nNext steps:\n")
	printer.Info("  1. Run 'advent scaffold 1' and paste the day's input and example\n")
	printer.Info("  2. Run 'advent check' to verify against the example answers\n")
	printer.Info("  3. Run 'advent solve 1' for your answers\n")
	return nil
}

func runScaffold(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	day, err := puzzle.ParseDay(args[0])
	if err != nil {
		return printer.Error("invalid day", err.Error(), nil)
	}

	created, err := scaffold.AddDay(cfg.DataDir, day)
	if err != nil {
		return fmt.Errorf("scaffold failed: %w", err)
	}

	if len(created) == 0 {
		printer.Warning("Day %02d already has input files in %s\n", day, cfg.DataDir)
		return nil
	}
	for _, path := range created {
		printer.Success("Created %s\n", path)
	}
	return nil
}
