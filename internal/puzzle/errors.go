package puzzle

import "errors"

// Error taxonomy shared by every solver. Solvers wrap these with the line or
// record that failed so callers can match with errors.Is.
var (
	// ErrMalformedNumber is returned when a record that must be an integer is not.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrInvalidToken is returned when a code does not decode to a known value.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidCharacter is returned for characters outside a-z and A-Z.
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrInsufficientData is returned when an operation needs more elements
	// than the input provides.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrMalformedRecord is returned when a record cannot be split the way
	// the puzzle requires.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnknownDay is returned by Registry.Lookup for unregistered days.
	ErrUnknownDay = errors.New("unknown day")
)
