// Package day01 totals the resources carried by each group and reports the
// largest totals.
//
// Input is blank-line separated groups with one non-negative integer per line.
package day01

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dyluth/advent/internal/puzzle"
)

// Solution registers this day with the harness.
var Solution = puzzle.Solution{
	Day:     1,
	Title:   "Resource Totals",
	PartOne: Maximum,
	PartTwo: TopThree,
}

// GroupSums parses the input and returns one sum per group, in input order.
// Any line that is blank after trimming ends the current group; runs of
// blank lines and leading or trailing blank lines never produce a group.
func GroupSums(input string) ([]uint64, error) {
	var (
		sums    []uint64
		sum     uint64
		inGroup bool
	)
	for i, line := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			if inGroup {
				sums = append(sums, sum)
			}
			sum, inGroup = 0, false
			continue
		}

		n, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", i+1, line, puzzle.ErrMalformedNumber)
		}
		if sum+n < sum {
			return nil, fmt.Errorf("line %d: group total overflows uint64: %w", i+1, puzzle.ErrMalformedNumber)
		}
		sum += n
		inGroup = true
	}
	if inGroup {
		sums = append(sums, sum)
	}
	return sums, nil
}

// Maximum returns the largest group sum.
func Maximum(input string) (uint64, error) {
	sums, err := GroupSums(input)
	if err != nil {
		return 0, err
	}
	if len(sums) == 0 {
		return 0, fmt.Errorf("no groups in input: %w", puzzle.ErrInsufficientData)
	}

	best := sums[0]
	for _, s := range sums[1:] {
		best = max(best, s)
	}
	return best, nil
}

// TopThree returns the sum of the three largest group sums. Inputs with fewer
// than three groups are rejected rather than padded.
func TopThree(input string) (uint64, error) {
	sums, err := GroupSums(input)
	if err != nil {
		return 0, err
	}
	return TopN(sums, 3)
}

// TopN sums the n largest values.
func TopN(sums []uint64, n int) (uint64, error) {
	if len(sums) < n {
		return 0, fmt.Errorf("need %d groups, got %d: %w", n, len(sums), puzzle.ErrInsufficientData)
	}

	sorted := append([]uint64(nil), sums...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] > sorted[j]
	})

	var total uint64
	for _, s := range sorted[:n] {
		if total+s < total {
			return 0, fmt.Errorf("top %d total overflows uint64: %w", n, puzzle.ErrMalformedNumber)
		}
		total += s
	}
	return total, nil
}
