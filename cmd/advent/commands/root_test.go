package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dyluth/advent/internal/config"
	"github.com/dyluth/advent/internal/printer"
	"github.com/dyluth/advent/internal/puzzle"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	exampleDay1 = "1000\n2000\n3000\n\n4000\n\n5000\n6000\n\n7000\n8000\n9000\n\n10000\n"
	exampleDay2 = "A Y\nB X\nC Z\n"
	exampleDay3 = "vJrwpWtwJgWrhcsFMMfFFhFp\njqHRNqRjqzjGDLGLrsFMfFZSrLrFZsSL\nPmmdzqPrVvPwwTWBwg\n" +
		"wMqvLMZHhHMvwLHjbvcjnnSBnvTQFn\nttgJtRGJQctTZtZT\nCrZsJsPPZsGzwwsLwLmpwMDw\n"
)

// resetFlags restores every package-level flag variable to its default so
// commands can be executed repeatedly in one test binary.
func resetFlags() {
	configPath = config.DefaultPath
	dataDir = ""
	verbose = false

	solveExamples = false
	solvePart = 0
	solveOutput = ""

	allExamples = false
	allParallel = 0
	allOutput = ""

	forceInit = false
	initDir = "."
}

// writeData creates a data directory with the given files under category.
func writeData(t *testing.T, category puzzle.Category, files map[int]string) string {
	t.Helper()
	dir := t.TempDir()
	l := puzzle.Loader{Dir: dir}
	for day, content := range files {
		path := l.Path(category, day)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

func exampleData(t *testing.T) string {
	return writeData(t, puzzle.CategoryExamples, map[int]string{
		1: exampleDay1,
		2: exampleDay2,
		3: exampleDay3,
	})
}

// execute runs the real root command and captures printer output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()

	prevNoColor := color.NoColor
	color.NoColor = true

	var out, errOut bytes.Buffer
	restore := printer.SetOutput(&out, &errOut)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	t.Cleanup(func() {
		restore()
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		color.NoColor = prevNoColor
		resetFlags()
	})

	// a config path that never exists keeps the defaults unless a test
	// passes its own --config
	full := append([]string{"--config", filepath.Join(t.TempDir(), "advent.yml")}, args...)
	rootCmd.SetArgs(full)

	err := Execute()
	return out.String(), errOut.String(), err
}

func TestRootCommand_ShowsHelpWhenNoSubcommand(t *testing.T) {
	out, _, err := execute(t)
	assert.NoError(t, err)
	assert.Contains(t, out, "Usage:", "Help should be displayed")
	assert.Contains(t, out, "advent", "Help should show command name")
}

func TestRootCommand_RejectsUnknownFlags(t *testing.T) {
	_, errOut, err := execute(t, "--unknown-flag", "value")
	require.Error(t, err, "Unknown flag should cause an error")
	assert.Equal(t, "command failed", err.Error())
	assert.Contains(t, errOut, "unknown flag: --unknown-flag")
	assert.Contains(t, errOut, "advent --help")
}

func TestRootCommand_RejectsSubcommandFlags(t *testing.T) {
	_, errOut, err := execute(t, "--examples")
	require.Error(t, err, "Subcommand flag passed to root should cause error")
	assert.Contains(t, errOut, "unknown flag: --examples")
}

func TestExecute_PrintsUnreportedErrors(t *testing.T) {
	t.Run("unknown subcommand flag", func(t *testing.T) {
		_, errOut, err := execute(t, "solve", "1", "--bogus")
		require.Error(t, err)
		assert.Contains(t, errOut, "unknown flag: --bogus")
	})

	t.Run("reported errors are printed once", func(t *testing.T) {
		_, errOut, err := execute(t, "solve", "25")
		require.Error(t, err)
		assert.Equal(t, "unknown day", err.Error())
		assert.NotContains(t, errOut, "command failed")
	})
}

func TestSetVersionInfo(t *testing.T) {
	prev := rootCmd.Version
	t.Cleanup(func() { rootCmd.Version = prev })

	SetVersionInfo("1.2.3", "abc123", "2022-12-03")
	assert.Equal(t, "1.2.3 (commit: abc123, built: 2022-12-03)", rootCmd.Version)
}

func TestRegistry_HasEveryDay(t *testing.T) {
	r, err := newRegistry()
	require.NoError(t, err)

	var days []int
	for _, s := range r.All() {
		days = append(days, s.Day)
	}
	assert.Equal(t, []int{1, 2, 3}, days)
}
