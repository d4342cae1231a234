package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/advent/internal/config"
)

// CheckExisting returns an error if root already holds an advent.yml
func CheckExisting(root string) error {
	path := filepath.Join(root, config.DefaultPath)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("project already initialized: found existing %s", config.DefaultPath)
	}
	return nil
}
