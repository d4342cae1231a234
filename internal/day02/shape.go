package day02

import "fmt"

// Shape is one of the three cyclic game tokens. Each shape beats its
// predecessor and loses to its successor, modulo 3.
type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

const shapeCount = 3

// Next returns the shape that beats s.
func (s Shape) Next() Shape {
	return Shape((int(s) + 1) % shapeCount)
}

// Prev returns the shape that s beats.
func (s Shape) Prev() Shape {
	return Shape((int(s) + shapeCount - 1) % shapeCount)
}

// Score is the 1-indexed value of the shape.
func (s Shape) Score() uint64 {
	return uint64(s) + 1
}

func (s Shape) String() string {
	switch s {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Outcome is the result of a round from the player's point of view.
type Outcome int

const (
	Loss Outcome = iota
	Draw
	Win
)

// Score is the weight of the outcome: 0, 3 or 6.
func (o Outcome) Score() uint64 {
	return uint64(o) * 3
}

func (o Outcome) String() string {
	switch o {
	case Loss:
		return "Loss"
	case Draw:
		return "Draw"
	case Win:
		return "Win"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Play returns the player's outcome against opponent.
//
// The distance (player - opponent) mod 3 is 0 for a draw, 1 when the player
// is the successor (a win) and 2 when the player is the predecessor (a loss).
func Play(opponent, player Shape) Outcome {
	switch (int(player) - int(opponent) + shapeCount) % shapeCount {
	case 0:
		return Draw
	case 1:
		return Win
	default:
		return Loss
	}
}

// ShapeFor returns the shape the player must throw against opponent to get
// the desired outcome.
func ShapeFor(opponent Shape, desired Outcome) Shape {
	switch desired {
	case Win:
		return opponent.Next()
	case Loss:
		return opponent.Prev()
	default:
		return opponent
	}
}

// Score is the total for a single round.
func Score(player Shape, outcome Outcome) uint64 {
	return player.Score() + outcome.Score()
}
