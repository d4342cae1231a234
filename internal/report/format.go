package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dyluth/advent/internal/puzzle"
	"github.com/olekukonko/tablewriter"
)

// OutputFormat selects how results are rendered.
type OutputFormat string

const (
	// OutputFormatDefault prints a heading per day and one line per part.
	OutputFormatDefault OutputFormat = "default"

	// OutputFormatTable prints a single table of every part.
	OutputFormatTable OutputFormat = "table"

	// OutputFormatJSONL prints one JSON object per part.
	OutputFormatJSONL OutputFormat = "jsonl"
)

// ParseFormat validates an output format name.
func ParseFormat(name string) (OutputFormat, error) {
	switch OutputFormat(name) {
	case OutputFormatDefault, OutputFormatTable, OutputFormatJSONL:
		return OutputFormat(name), nil
	default:
		return "", fmt.Errorf("unknown format: %s", name)
	}
}

// Record is the JSONL shape of a single part answer.
type Record struct {
	RunID     string `json:"run_id"`
	Day       int    `json:"day"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Part      int    `json:"part"`
	Answer    uint64 `json:"answer"`
	ElapsedUs int64  `json:"elapsed_us"`
}

// Write renders results in the requested format.
func Write(w io.Writer, format OutputFormat, runID string, results []puzzle.Result) error {
	switch format {
	case OutputFormatTable:
		return FormatTable(w, results)
	case OutputFormatJSONL:
		return FormatJSONL(w, runID, results)
	default:
		FormatText(w, results)
		return nil
	}
}

// FormatText writes each day as a heading followed by its part answers.
func FormatText(w io.Writer, results []puzzle.Result) {
	for i, res := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "Day %02d: %s (%s)\n", res.Day, res.Title, res.Category)
		for _, p := range res.Parts {
			fmt.Fprintf(w, "  Part %d: %d (elapsed: %s)\n", p.Part, p.Answer, formatElapsed(p.Elapsed))
		}
	}
}

// FormatTable writes every part answer as a row of one table.
func FormatTable(w io.Writer, results []puzzle.Result) error {
	table := tablewriter.NewWriter(w)
	table.Header("DAY", "TITLE", "PART", "ANSWER", "ELAPSED")

	for _, res := range results {
		for _, p := range res.Parts {
			row := []string{
				fmt.Sprintf("%02d", res.Day),
				res.Title,
				strconv.Itoa(p.Part),
				strconv.FormatUint(p.Answer, 10),
				formatElapsed(p.Elapsed),
			}
			if err := table.Append(row); err != nil {
				return fmt.Errorf("failed to add table row: %w", err)
			}
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

// FormatJSONL writes one JSON object per part answer, one per line.
func FormatJSONL(w io.Writer, runID string, results []puzzle.Result) error {
	for _, res := range results {
		for _, p := range res.Parts {
			data, err := json.Marshal(Record{
				RunID:     runID,
				Day:       res.Day,
				Title:     res.Title,
				Category:  string(res.Category),
				Part:      p.Part,
				Answer:    p.Answer,
				ElapsedUs: p.Elapsed.Microseconds(),
			})
			if err != nil {
				return fmt.Errorf("failed to marshal result to JSON: %w", err)
			}

			if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
				return fmt.Errorf("failed to write JSONL output: %w", err)
			}
		}
	}
	return nil
}

// formatElapsed rounds to microseconds so short parts stay readable.
func formatElapsed(d time.Duration) string {
	if d < time.Microsecond {
		return d.String()
	}
	return d.Round(time.Microsecond).String()
}
