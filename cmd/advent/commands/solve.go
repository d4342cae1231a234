package commands

import (
	"context"
	"fmt"

	"github.com/dyluth/advent/internal/printer"
	"github.com/dyluth/advent/internal/puzzle"
	"github.com/dyluth/advent/internal/report"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	solveExamples bool
	solvePart     int
	solveOutput   string
)

var solveCmd = &cobra.Command{
	Use:   "solve DAY",
	Short: "Solve a single day",
	Long: `Solve one day's puzzle and print the answer to each part with its timing.

DAY may be written as 1, 01 or day01.

Examples:
  # Solve day 1 against your input
  advent solve 1

  # Check day 2 against the worked example
  advent solve 2 --examples

  # Only part two, as JSONL
  advent solve 3 --part 2 --output=jsonl`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().BoolVarP(&solveExamples, "examples", "e", false, "Use the example input instead of the puzzle input")
	solveCmd.Flags().IntVarP(&solvePart, "part", "p", 0, "Only solve this part (1 or 2)")
	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "", "Output format: default, table or jsonl (overrides config)")
	rootCmd.AddCommand(solveCmd)
}

func categoryFor(examples bool) puzzle.Category {
	if examples {
		return puzzle.CategoryExamples
	}
	return puzzle.CategoryInputs
}

// outputFormat picks the flag value over the configured one.
func outputFormat(flagValue, configured string) (report.OutputFormat, error) {
	name := configured
	if flagValue != "" {
		name = flagValue
	}
	format, err := report.ParseFormat(name)
	if err != nil {
		return "", printer.Error(
			"invalid output format",
			err.Error(),
			[]string{"Valid formats: default, table, jsonl"},
		)
	}
	return format, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := outputFormat(solveOutput, cfg.Output)
	if err != nil {
		return err
	}

	var parts []int
	switch solvePart {
	case 0:
	case 1, 2:
		parts = []int{solvePart}
	default:
		return printer.Error("invalid part", fmt.Sprintf("Part %d does not exist.", solvePart), []string{"Use --part 1 or --part 2"})
	}

	registry, err := newRegistry()
	if err != nil {
		return err
	}
	solution, err := lookupDay(registry, args[0])
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	category := categoryFor(solveExamples)
	runner := &puzzle.Runner{
		Loader: puzzle.Loader{Dir: cfg.DataDir},
		Parts:  parts,
		Logger: logger.With(zap.String("run_id", runID)),
	}

	result, err := runner.Run(ctx, solution, category)
	if err != nil {
		return runError(err, runner.Loader, category, solution.Day)
	}

	return report.Write(printer.Out, format, runID, []puzzle.Result{result})
}
