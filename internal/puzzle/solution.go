// Package puzzle defines the contract every daily solver implements and the
// harness around it: a registry of solutions, an input loader, and a runner
// that times each part.
//
// # Solver contract
//
// A Solution is a day number, a title, and two pure functions from the raw
// puzzle text to an unsigned answer. Solutions hold no state and never call
// each other, so any number of them can run side by side.
//
// # Failure model
//
// A part either returns its answer or an error wrapping one of the sentinel
// errors in this package. There are no partial answers.
package puzzle

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Func solves one part of a puzzle from its raw input text.
type Func func(input string) (uint64, error)

// Solution describes a single day's puzzle.
type Solution struct {
	Day     int
	Title   string
	PartOne Func
	PartTwo Func
}

// Part returns the solver for part 1 or 2.
func (s Solution) Part(n int) (Func, error) {
	switch n {
	case 1:
		return s.PartOne, nil
	case 2:
		return s.PartTwo, nil
	default:
		return nil, fmt.Errorf("invalid part %d (must be 1 or 2)", n)
	}
}

// Registry holds the known solutions keyed by day.
type Registry struct {
	byDay map[int]Solution
}

// NewRegistry builds a registry, rejecting duplicate or non-positive days and
// solutions missing either part.
func NewRegistry(solutions ...Solution) (*Registry, error) {
	r := &Registry{byDay: make(map[int]Solution, len(solutions))}
	for _, s := range solutions {
		if s.Day < 1 {
			return nil, fmt.Errorf("solution '%s': day must be >= 1, got %d", s.Title, s.Day)
		}
		if s.PartOne == nil || s.PartTwo == nil {
			return nil, fmt.Errorf("day %d: both parts are required", s.Day)
		}
		if existing, exists := r.byDay[s.Day]; exists {
			return nil, fmt.Errorf("duplicate day %d ('%s' and '%s')", s.Day, existing.Title, s.Title)
		}
		r.byDay[s.Day] = s
	}
	return r, nil
}

// Lookup returns the solution registered for day.
func (r *Registry) Lookup(day int) (Solution, error) {
	s, ok := r.byDay[day]
	if !ok {
		return Solution{}, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	return s, nil
}

// All returns every registered solution ordered by day.
func (r *Registry) All() []Solution {
	out := make([]Solution, 0, len(r.byDay))
	for _, s := range r.byDay {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day < out[j].Day
	})
	return out
}

// ParseDay accepts "3", "03" or "day03".
func ParseDay(arg string) (int, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(arg)), "day")
	day, err := strconv.Atoi(trimmed)
	if err != nil || day < 1 {
		return 0, fmt.Errorf("invalid day '%s' (use a positive number like 1, 01 or day01)", arg)
	}
	return day, nil
}
