package commands

import (
	"strings"
	"testing"

	"github.com/dyluth/advent/internal/puzzle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_Examples(t *testing.T) {
	dir := exampleData(t)

	for _, parallel := range []string{"1", "3"} {
		t.Run("parallel="+parallel, func(t *testing.T) {
			out, _, err := execute(t, "--data", dir, "all", "--examples", "--parallel", parallel)
			require.NoError(t, err)

			day1 := strings.Index(out, "Day 01")
			day2 := strings.Index(out, "Day 02")
			day3 := strings.Index(out, "Day 03")
			require.True(t, day1 >= 0 && day2 > day1 && day3 > day2, "days out of order:\n%s", out)

			for _, want := range []string{"24000", "45000", "Part 1: 15", "Part 2: 12", "157", "Part 2: 70"} {
				assert.Contains(t, out, want)
			}
		})
	}
}

func TestAll_Table(t *testing.T) {
	dir := exampleData(t)

	out, _, err := execute(t, "--data", dir, "all", "--examples", "--output", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "ANSWER")
	assert.Contains(t, out, "Priority Aggregator")
}

func TestAll_FailsOnMissingDay(t *testing.T) {
	dir := writeData(t, puzzle.CategoryInputs, map[int]string{1: exampleDay1, 3: exampleDay3})

	out, _, err := execute(t, "--data", dir, "all", "--parallel", "2")
	require.Error(t, err)
	assert.Equal(t, "input not found", err.Error())
	assert.Empty(t, out)
}

func TestAll_RejectsNegativeParallel(t *testing.T) {
	_, _, err := execute(t, "all", "--parallel=-1")
	require.Error(t, err)
	assert.Equal(t, "invalid parallelism", err.Error())
}
