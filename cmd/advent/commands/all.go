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
	allExamples bool
	allParallel int
	allOutput   string
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Solve every registered day",
	Long: `Solve every registered day and print all answers.

Days share no state, so --parallel N solves up to N days at once. Results are
always printed in day order. The first failing day stops the run.

Examples:
  advent all
  advent all --examples --output=table
  advent all --parallel 4`,
	Args: cobra.NoArgs,
	RunE: runAll,
}

func init() {
	allCmd.Flags().BoolVarP(&allExamples, "examples", "e", false, "Use the example inputs instead of the puzzle inputs")
	allCmd.Flags().IntVar(&allParallel, "parallel", 0, "Days to solve at once (overrides config)")
	allCmd.Flags().StringVarP(&allOutput, "output", "o", "", "Output format: default, table or jsonl (overrides config)")
	rootCmd.AddCommand(allCmd)
}

func runAll(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := outputFormat(allOutput, cfg.Output)
	if err != nil {
		return err
	}

	parallel := cfg.Parallel
	if allParallel != 0 {
		parallel = allParallel
	}
	if parallel < 1 {
		return printer.Error("invalid parallelism", fmt.Sprintf("--parallel must be >= 1, got %d", parallel), nil)
	}

	registry, err := newRegistry()
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	category := categoryFor(allExamples)
	runner := &puzzle.Runner{
		Loader:   puzzle.Loader{Dir: cfg.DataDir},
		Parallel: parallel,
		Logger:   logger.With(zap.String("run_id", runID)),
	}

	logger.Debug("Solving all days", zap.Int("days", len(registry.All())), zap.Int("parallel", parallel))
	results, err := runner.RunAll(ctx, registry.All(), category)
	if err != nil {
		return runError(err, runner.Loader, category, 0)
	}

	return report.Write(printer.Out, format, runID, results)
}
