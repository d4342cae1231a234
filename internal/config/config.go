package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultPath is where the CLI looks for configuration.
	DefaultPath = "advent.yml"

	// DefaultDataDir holds the inputs/ and examples/ directories.
	DefaultDataDir = "data"

	// DefaultOutput is the output format used when none is configured.
	DefaultOutput = "default"
)

// Expectation holds the known answers for one day's example input.
type Expectation struct {
	PartOne *uint64 `yaml:"part_one,omitempty"`
	PartTwo *uint64 `yaml:"part_two,omitempty"`
}

// Part returns the expected answer for part 1 or 2, if one is set.
func (e Expectation) Part(n int) (uint64, bool) {
	var v *uint64
	switch n {
	case 1:
		v = e.PartOne
	case 2:
		v = e.PartTwo
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

// AdventConfig represents the top-level advent.yml configuration
type AdventConfig struct {
	Version  string              `yaml:"version"`
	DataDir  string              `yaml:"data_dir,omitempty"`
	Output   string              `yaml:"output,omitempty"`   // default, table or jsonl
	Parallel int                 `yaml:"parallel,omitempty"` // days solved at once by "all" (default 1)
	Expected map[int]Expectation `yaml:"expected,omitempty"` // example answers keyed by day
}

// Default returns the configuration used when no file exists.
func Default() *AdventConfig {
	c := &AdventConfig{Version: "1.0"}
	// defaults cannot fail validation
	_ = c.Validate()
	return c
}

// Validate applies defaults and rejects invalid values.
func (c *AdventConfig) Validate() error {
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}

	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Output != "default" && c.Output != "table" && c.Output != "jsonl" {
		return fmt.Errorf("invalid output: %s (must be 'default', 'table', or 'jsonl')", c.Output)
	}

	if c.Parallel == 0 {
		c.Parallel = 1
	}
	if c.Parallel < 0 {
		return fmt.Errorf("parallel must be >= 1, got %d", c.Parallel)
	}

	for day, exp := range c.Expected {
		if day < 1 {
			return fmt.Errorf("expected: day must be >= 1, got %d", day)
		}
		if exp.PartOne == nil && exp.PartTwo == nil {
			return fmt.Errorf("expected: day %d has no answers", day)
		}
	}

	return nil
}

// Load reads and validates advent.yml from the specified path. A relative
// data_dir is resolved against the directory holding the file.
func Load(path string) (*AdventConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config AdventConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if !filepath.IsAbs(config.DataDir) {
		config.DataDir = filepath.Join(filepath.Dir(path), config.DataDir)
	}

	return &config, nil
}

// LoadOrDefault is Load, falling back to Default when path does not exist.
func LoadOrDefault(path string) (*AdventConfig, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
