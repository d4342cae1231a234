// Package day03 finds the items shared between rucksack compartments and
// between groups of rucksacks, and sums their priorities.
package day03

import (
	"fmt"
	"strings"

	"github.com/dyluth/advent/internal/puzzle"
)

// GroupSize is the number of rucksacks that share a badge.
const GroupSize = 3

// Solution registers this day with the harness.
var Solution = puzzle.Solution{
	Day:     3,
	Title:   "Priority Aggregator",
	PartOne: DuplicatePrioritySum,
	PartTwo: BadgePrioritySum,
}

// Priority maps a-z to 1-26 and A-Z to 27-52.
func Priority(c rune) (uint64, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 1, nil
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 27, nil
	default:
		return 0, fmt.Errorf("%q: %w", c, puzzle.ErrInvalidCharacter)
	}
}

// PrioritySum sums the priorities of every member of s.
func PrioritySum(s Set) (uint64, error) {
	var total uint64
	for _, c := range s.Members() {
		p, err := Priority(c)
		if err != nil {
			return 0, err
		}
		total += p
	}
	return total, nil
}

func lines(input string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Compartments splits a rucksack into its two equal halves.
func Compartments(rucksack string) (string, string, error) {
	if len(rucksack)%2 != 0 {
		return "", "", fmt.Errorf("rucksack %q has odd length %d: %w", rucksack, len(rucksack), puzzle.ErrMalformedRecord)
	}
	half := len(rucksack) / 2
	return rucksack[:half], rucksack[half:], nil
}

// DuplicatePrioritySum sums, per rucksack, the priorities of the items found
// in both compartments.
func DuplicatePrioritySum(input string) (uint64, error) {
	var total uint64
	for i, line := range lines(input) {
		left, right, err := Compartments(line)
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		p, err := PrioritySum(Intersect(NewSet(left), NewSet(right)))
		if err != nil {
			return 0, fmt.Errorf("rucksack %d: %w", i+1, err)
		}
		total += p
	}
	return total, nil
}

// BadgePrioritySum sums, per group of three rucksacks, the priorities of the
// items all three carry.
func BadgePrioritySum(input string) (uint64, error) {
	all := lines(input)
	if len(all)%GroupSize != 0 {
		return 0, fmt.Errorf("%d rucksacks do not divide into groups of %d: %w", len(all), GroupSize, puzzle.ErrInsufficientData)
	}

	var total uint64
	for start := 0; start < len(all); start += GroupSize {
		sets := make([]Set, 0, GroupSize)
		for _, r := range all[start : start+GroupSize] {
			sets = append(sets, NewSet(r))
		}
		p, err := PrioritySum(Intersect(sets...))
		if err != nil {
			return 0, fmt.Errorf("group %d: %w", start/GroupSize+1, err)
		}
		total += p
	}
	return total, nil
}
