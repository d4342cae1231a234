package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"

	"github.com/dyluth/advent/internal/day01"
	"github.com/dyluth/advent/internal/day02"
	"github.com/dyluth/advent/internal/day03"
	"github.com/dyluth/advent/internal/printer"
	"github.com/dyluth/advent/internal/puzzle"
)

// solutions lists every day the CLI knows about.
var solutions = []puzzle.Solution{
	day01.Solution,
	day02.Solution,
	day03.Solution,
}

func newRegistry() (*puzzle.Registry, error) {
	r, err := puzzle.NewRegistry(solutions...)
	if err != nil {
		return nil, fmt.Errorf("failed to build solver registry: %w", err)
	}
	return r, nil
}

// lookupDay resolves a DAY argument to its solution.
func lookupDay(r *puzzle.Registry, arg string) (puzzle.Solution, error) {
	day, err := puzzle.ParseDay(arg)
	if err != nil {
		return puzzle.Solution{}, printer.Error("invalid day", err.Error(), []string{"Pass a day number, e.g.:\n  advent solve 1"})
	}

	s, err := r.Lookup(day)
	if err != nil {
		return puzzle.Solution{}, printer.Error(
			"unknown day",
			fmt.Sprintf("No solver is registered for day %d.", day),
			[]string{"List available days:\n  advent list"},
		)
	}
	return s, nil
}

// runError turns a runner failure into a printed error. day is 0 when the
// failing day is not known (RunAll).
func runError(err error, loader puzzle.Loader, category puzzle.Category, day int) error {
	context := map[string]string{"Category": string(category)}
	if day > 0 {
		context["Day"] = strconv.Itoa(day)
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		suggestions := []string{"Point --data at the directory holding inputs/ and examples/"}
		if day > 0 {
			context["Path"] = loader.Path(category, day)
			suggestions = append([]string{fmt.Sprintf("Save the puzzle input to %s", loader.Path(category, day))}, suggestions...)
		}
		return printer.ErrorWithContext("input not found", err.Error(), context, suggestions)
	case errors.Is(err, puzzle.ErrMalformedNumber),
		errors.Is(err, puzzle.ErrInvalidToken),
		errors.Is(err, puzzle.ErrInvalidCharacter),
		errors.Is(err, puzzle.ErrMalformedRecord),
		errors.Is(err, puzzle.ErrInsufficientData):
		return printer.ErrorWithContext(
			"malformed puzzle input",
			err.Error(),
			context,
			[]string{"Check the input file was saved completely and unmodified"},
		)
	default:
		return printer.ErrorWithContext("solver failed", err.Error(), context, nil)
	}
}
