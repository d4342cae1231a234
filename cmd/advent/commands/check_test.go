package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dyluth/advent/internal/config"
	"github.com/dyluth/advent/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAdventConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "advent.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheck_AllMatch(t *testing.T) {
	dir := exampleData(t)
	cfg := writeAdventConfig(t, `version: "1.0"
expected:
  1: { part_one: 24000, part_two: 45000 }
  2: { part_one: 15, part_two: 12 }
  3: { part_one: 157, part_two: 70 }
`)

	out, _, err := execute(t, "--config", cfg, "--data", dir, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "→ Checking day 01: Resource Totals")
	assert.Contains(t, out, "✓ Day 01 part 1: 24000")
	assert.Contains(t, out, "✓ Day 02 part 2: 12")
	assert.Contains(t, out, "✓ Day 03 part 2: 70")
}

func TestCheck_Mismatch(t *testing.T) {
	dir := exampleData(t)
	cfg := writeAdventConfig(t, `version: "1.0"
expected:
  2: { part_one: 15, part_two: 13 }
`)

	out, _, err := execute(t, "--config", cfg, "--data", dir, "check")
	require.Error(t, err)
	assert.Equal(t, "example check failed", err.Error())
	assert.Contains(t, out, "✓ Day 02 part 1: 15")
	assert.Contains(t, out, "✗ Day 02 part 2: got 12, want 13")
}

func TestCheck_SingleDayWithoutExpectations(t *testing.T) {
	dir := exampleData(t)
	cfg := writeAdventConfig(t, `version: "1.0"
expected:
  1: { part_one: 24000 }
`)

	out, errOut, err := execute(t, "--config", cfg, "--data", dir, "check", "2")
	require.Error(t, err)
	assert.Equal(t, "no expected answers", err.Error())
	assert.Contains(t, errOut, "Day 2 has no expected answers")
	assert.NotContains(t, out, "Checking day")
}

func TestCheck_SingleDay(t *testing.T) {
	dir := exampleData(t)
	cfg := writeAdventConfig(t, `version: "1.0"
expected:
  1: { part_one: 24000 }
  3: { part_two: 70 }
`)

	out, _, err := execute(t, "--config", cfg, "--data", dir, "check", "03")
	require.NoError(t, err)
	assert.Contains(t, out, "→ Checking day 03: Priority Aggregator")
	assert.Contains(t, out, "✓ Day 03 part 2: 70")
	assert.NotContains(t, out, "Day 01")
}

func TestCheck_NothingConfigured(t *testing.T) {
	_, _, err := execute(t, "check")
	require.Error(t, err)
	assert.Equal(t, "nothing to check", err.Error())
}

func TestCheck_InvalidConfig(t *testing.T) {
	cfg := writeAdventConfig(t, `version: "9"`)
	_, _, err := execute(t, "--config", cfg, "check")
	require.Error(t, err)
	assert.Equal(t, "invalid configuration", err.Error())
}

func TestCompare(t *testing.T) {
	one, two := uint64(10), uint64(20)
	res := puzzle.Result{Day: 4, Parts: []puzzle.PartResult{{Part: 1, Answer: 10}, {Part: 2, Answer: 21}}}

	got := compare(res, config.Expectation{PartOne: &one, PartTwo: &two})
	require.Len(t, got, 1)
	assert.Equal(t, mismatch{Day: 4, Part: 2, Got: 21, Want: 20}, got[0])

	assert.Empty(t, compare(res, config.Expectation{PartOne: &one}))
}
