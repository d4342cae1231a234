// Package day02 scores a strategy guide for a rock, paper, scissors
// tournament.
package day02

import (
	"fmt"
	"strings"

	"github.com/dyluth/advent/internal/puzzle"
)

// Solution registers this day with the harness.
var Solution = puzzle.Solution{
	Day:     2,
	Title:   "Rules-Based Game Scorer",
	PartOne: ScoreMoves,
	PartTwo: ScoreOutcomes,
}

var opponentCodes = map[string]Shape{"A": Rock, "B": Paper, "C": Scissors}

var playerCodes = map[string]Shape{"X": Rock, "Y": Paper, "Z": Scissors}

var outcomeCodes = map[string]Outcome{"X": Loss, "Y": Draw, "Z": Win}

// round is one decoded line of the guide.
type round struct {
	opponent Shape
	second   string
}

// parseRounds splits the guide into rounds. The second column is decoded by
// the caller since its meaning differs between parts.
func parseRounds(input string) ([]round, error) {
	var rounds []round
	for i, line := range strings.Split(strings.ReplaceAll(input, "\r\n", "\n"), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 tokens, got %d: %w", i+1, len(fields), puzzle.ErrInvalidToken)
		}
		opponent, ok := opponentCodes[fields[0]]
		if !ok {
			return nil, fmt.Errorf("line %d: opponent shape %q: %w", i+1, fields[0], puzzle.ErrInvalidToken)
		}
		rounds = append(rounds, round{opponent: opponent, second: fields[1]})
	}
	return rounds, nil
}

// ScoreMoves reads the second column as the player's shape.
func ScoreMoves(input string) (uint64, error) {
	rounds, err := parseRounds(input)
	if err != nil {
		return 0, err
	}

	var total uint64
	for i, r := range rounds {
		player, ok := playerCodes[r.second]
		if !ok {
			return 0, fmt.Errorf("round %d: player shape %q: %w", i+1, r.second, puzzle.ErrInvalidToken)
		}
		total += Score(player, Play(r.opponent, player))
	}
	return total, nil
}

// ScoreOutcomes reads the second column as the desired outcome and plays
// whichever shape produces it.
func ScoreOutcomes(input string) (uint64, error) {
	rounds, err := parseRounds(input)
	if err != nil {
		return 0, err
	}

	var total uint64
	for i, r := range rounds {
		desired, ok := outcomeCodes[r.second]
		if !ok {
			return 0, fmt.Errorf("round %d: outcome %q: %w", i+1, r.second, puzzle.ErrInvalidToken)
		}
		total += Score(ShapeFor(r.opponent, desired), desired)
	}
	return total, nil
}
