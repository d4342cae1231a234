package commands

import (
	"context"
	"fmt"

	"github.com/dyluth/advent/internal/config"
	"github.com/dyluth/advent/internal/printer"
	"github.com/dyluth/advent/internal/puzzle"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [DAY]",
	Short: "Verify solvers against the worked examples",
	Long: `Run each solver against its example input and compare the answers with
the expected values in advent.yml:

  expected:
    1:
      part_one: 24000
      part_two: 45000

Without DAY every day that has expected answers is checked. Any mismatch
makes the command fail.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// mismatch is an answer that differs from its expected value.
type mismatch struct {
	Day, Part int
	Got, Want uint64
}

// compare returns the parts of res whose answers differ from exp.
func compare(res puzzle.Result, exp config.Expectation) []mismatch {
	var out []mismatch
	for _, p := range res.Parts {
		want, ok := exp.Part(p.Part)
		if ok && want != p.Answer {
			out = append(out, mismatch{Day: res.Day, Part: p.Part, Got: p.Answer, Want: want})
		}
	}
	return out
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	registry, err := newRegistry()
	if err != nil {
		return err
	}

	var targets []puzzle.Solution
	if len(args) == 1 {
		s, err := lookupDay(registry, args[0])
		if err != nil {
			return err
		}
		if _, ok := cfg.Expected[s.Day]; !ok {
			return printer.Error(
				"no expected answers",
				fmt.Sprintf("Day %d has no expected answers configured, so there is nothing to check.", s.Day),
				[]string{fmt.Sprintf("Add the example answers under 'expected: %d:' in %s", s.Day, configPath)},
			)
		}
		targets = append(targets, s)
	} else {
		for _, s := range registry.All() {
			if _, ok := cfg.Expected[s.Day]; ok {
				targets = append(targets, s)
			}
		}
	}

	if len(targets) == 0 {
		return printer.Error(
			"nothing to check",
			"No expected answers are configured.",
			[]string{fmt.Sprintf("Add an 'expected' section to %s", configPath)},
		)
	}

	runner := &puzzle.Runner{
		Loader: puzzle.Loader{Dir: cfg.DataDir},
		Logger: logger,
	}

	failed := 0
	for _, s := range targets {
		exp := cfg.Expected[s.Day]
		printer.Step("Checking day %02d: %s\n", s.Day, s.Title)

		res, err := runner.Run(ctx, s, puzzle.CategoryExamples)
		if err != nil {
			return runError(err, runner.Loader, puzzle.CategoryExamples, s.Day)
		}

		bad := make(map[int]mismatch)
		for _, m := range compare(res, exp) {
			bad[m.Part] = m
		}
		for _, p := range res.Parts {
			if _, ok := exp.Part(p.Part); !ok {
				continue
			}
			if m, ok := bad[p.Part]; ok {
				failed++
				printer.Failure("Day %02d part %d: got %d, want %d\n", m.Day, m.Part, m.Got, m.Want)
			} else {
				printer.Success("Day %02d part %d: %d\n", s.Day, p.Part, p.Answer)
			}
		}
	}

	if failed > 0 {
		return printer.Error(
			"example check failed",
			fmt.Sprintf("%d answer(s) did not match the expected values.", failed),
			nil,
		)
	}
	return nil
}
