package scaffold

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dyluth/advent/internal/config"
	"github.com/dyluth/advent/internal/puzzle"
)

//go:embed templates/*
var templatesFS embed.FS

// FileInfo represents a file to be created during initialization
type FileInfo struct {
	Path        string
	Content     []byte
	Permissions os.FileMode
}

// Initialize creates advent.yml and the data directories under root.
// If force is true, an existing advent.yml is replaced. Puzzle inputs are
// never removed.
func Initialize(root string, force bool) error {
	if force {
		if err := handleForce(root); err != nil {
			return err
		}
	}

	files, err := getTemplateFiles(root)
	if err != nil {
		return err
	}

	if err := createDirectories(root); err != nil {
		return err
	}

	if err := writeFiles(files); err != nil {
		return err
	}

	return validateCreatedFiles(root)
}

// handleForce removes an existing advent.yml
func handleForce(root string) error {
	path := filepath.Join(root, config.DefaultPath)
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", config.DefaultPath, err)
		}
	}
	return nil
}

func getTemplateFiles(root string) ([]FileInfo, error) {
	adventYml, err := templatesFS.ReadFile("templates/advent.yml.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to read advent.yml template: %w", err)
	}

	return []FileInfo{{
		Path:        filepath.Join(root, config.DefaultPath),
		Content:     adventYml,
		Permissions: 0644,
	}}, nil
}

func createDirectories(root string) error {
	for _, category := range []puzzle.Category{puzzle.CategoryInputs, puzzle.CategoryExamples} {
		dir := filepath.Join(root, config.DefaultDataDir, string(category))
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

func writeFiles(files []FileInfo) error {
	for _, file := range files {
		if err := os.WriteFile(file.Path, file.Content, file.Permissions); err != nil {
			return fmt.Errorf("failed to write %s: %w", file.Path, err)
		}
	}
	return nil
}

// validateCreatedFiles loads the written advent.yml through the real loader
func validateCreatedFiles(root string) error {
	if _, err := config.Load(filepath.Join(root, config.DefaultPath)); err != nil {
		return fmt.Errorf("created %s is invalid: %w", config.DefaultPath, err)
	}
	return nil
}

// AddDay creates empty input and example files for day under dataDir.
// Existing files are left untouched. It returns the paths it created.
func AddDay(dataDir string, day int) ([]string, error) {
	if day < 1 {
		return nil, fmt.Errorf("day must be >= 1, got %d", day)
	}

	loader := puzzle.Loader{Dir: dataDir}
	var created []string
	for _, category := range []puzzle.Category{puzzle.CategoryInputs, puzzle.CategoryExamples} {
		path := loader.Path(category, day)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return created, fmt.Errorf("failed to create directory for %s: %w", path, err)
		}
		if err := os.WriteFile(path, nil, 0644); err != nil {
			return created, fmt.Errorf("failed to write %s: %w", path, err)
		}
		created = append(created, path)
	}
	return created, nil
}
