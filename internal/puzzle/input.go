package puzzle

import (
	"fmt"
	"os"
	"path/filepath"
)

// Category selects which set of inputs a day is solved against.
type Category string

const (
	// CategoryInputs is the personal puzzle input.
	CategoryInputs Category = "inputs"

	// CategoryExamples is the worked example from the puzzle text.
	CategoryExamples Category = "examples"
)

// ParseCategory validates a category name.
func ParseCategory(name string) (Category, error) {
	switch Category(name) {
	case CategoryInputs, CategoryExamples:
		return Category(name), nil
	default:
		return "", fmt.Errorf("invalid category: %s (must be 'inputs' or 'examples')", name)
	}
}

// Loader reads puzzle text from <Dir>/<category>/<NN>.txt.
type Loader struct {
	Dir string
}

// Path returns the file a day's input is read from.
func (l Loader) Path(category Category, day int) string {
	return filepath.Join(l.Dir, string(category), fmt.Sprintf("%02d.txt", day))
}

// Load returns the raw contents of a day's input. A missing file yields an
// error that still matches fs.ErrNotExist.
func (l Loader) Load(category Category, day int) (string, error) {
	path := l.Path(category, day)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s for day %d: %w", category, day, err)
	}
	return string(data), nil
}
