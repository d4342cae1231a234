package puzzle

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// PartResult is the timed answer of one part.
type PartResult struct {
	Part    int
	Answer  uint64
	Elapsed time.Duration
}

// Result is every part answer for one day.
type Result struct {
	Day      int
	Title    string
	Category Category
	Parts    []PartResult
}

// Runner loads inputs and runs solutions against them.
type Runner struct {
	Loader Loader

	// Parts restricts which parts run. Empty means both.
	Parts []int

	// Parallel is the number of days RunAll solves at once. Values below 2
	// run sequentially.
	Parallel int

	Logger *zap.Logger
}

func (r *Runner) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *Runner) parts() []int {
	if len(r.Parts) == 0 {
		return []int{1, 2}
	}
	return r.Parts
}

// Run solves a single day. The input is read once and shared by both parts.
// Any failing part fails the whole run.
func (r *Runner) Run(ctx context.Context, s Solution, category Category) (Result, error) {
	log := r.logger().With(zap.Int("day", s.Day), zap.String("category", string(category)))

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	log.Debug("Loading input", zap.String("path", r.Loader.Path(category, s.Day)))
	input, err := r.Loader.Load(category, s.Day)
	if err != nil {
		return Result{}, err
	}

	result := Result{Day: s.Day, Title: s.Title, Category: category}
	for _, part := range r.parts() {
		fn, err := s.Part(part)
		if err != nil {
			return Result{}, err
		}

		start := time.Now()
		answer, err := fn(input)
		elapsed := time.Since(start)
		if err != nil {
			log.Debug("Part failed", zap.Int("part", part), zap.Error(err))
			return Result{}, fmt.Errorf("day %d part %d: %w", s.Day, part, err)
		}

		log.Debug("Part solved",
			zap.Int("part", part),
			zap.Uint64("answer", answer),
			zap.Duration("elapsed", elapsed))
		result.Parts = append(result.Parts, PartResult{Part: part, Answer: answer, Elapsed: elapsed})
	}

	return result, nil
}

// RunAll solves every solution and returns results in the order given.
// The first failure cancels days that have not started yet.
func (r *Runner) RunAll(ctx context.Context, solutions []Solution, category Category) ([]Result, error) {
	results := make([]Result, len(solutions))

	if r.Parallel < 2 {
		for i, s := range solutions {
			res, err := r.Run(ctx, s, category)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
		return results, nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(r.Parallel)
	for i, s := range solutions {
		g.Go(func() error {
			res, err := r.Run(gCtx, s, category)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
