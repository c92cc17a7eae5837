package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/dyluth/tock/pkg/timesheet"
)

// OutputFormat specifies how to format the task list output.
type OutputFormat string

const (
	// OutputFormatDefault uses a table format with truncated keys
	OutputFormatDefault OutputFormat = "default"

	// OutputFormatJSONL outputs complete tasks as line-delimited JSON
	OutputFormatJSONL OutputFormat = "jsonl"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputFormatDefault, OutputFormatJSONL:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// Write formats tasks in the requested format.
func Write(w io.Writer, format OutputFormat, tasks []*timesheet.Task, source string) error {
	switch format {
	case OutputFormatDefault:
		FormatTable(w, tasks, source)
		return nil
	case OutputFormatJSONL:
		if err := FormatJSONL(w, tasks); err != nil {
			return fmt.Errorf("failed to format JSONL output: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

// FormatTable writes tasks as a formatted table to the provided writer.
// Returns the number of tasks formatted.
func FormatTable(w io.Writer, tasks []*timesheet.Task, source string) int {
	if len(tasks) == 0 {
		fmt.Fprintf(w, "No tasks found in '%s'\n", source)
		return 0
	}

	fmt.Fprintf(w, "Tasks in '%s':\n\n", source)

	fmt.Fprintf(w, "%-10s %-15s %-4s %-5s %-8s %-8s %-8s %-8s %s\n",
		"ID", "TITLE", "DAY", "DATE", "START", "END", "TOTAL", "BREAK", "TAG")
	fmt.Fprintf(w, "%-10s %-15s %-4s %-5s %-8s %-8s %-8s %-8s %s\n",
		"----------", "---------------", "----", "-----", "--------", "--------", "--------", "--------", "----------")

	var total time.Duration
	for _, t := range tasks {
		fmt.Fprintf(w, "%-10s %-15s %-4s %-5s %-8s %-8s %-8s %-8s %s\n",
			formatID(t.ID.String()),
			t.Title,
			t.Timeline.DayWeek,
			t.Timeline.Date,
			t.Timeline.Start,
			t.Timeline.End,
			FormatDuration(t.Timeline.Total),
			FormatDuration(t.Timeline.Break),
			t.Tag,
		)
		total += t.Timeline.Total
	}

	countMsg := "task"
	if len(tasks) != 1 {
		countMsg = "tasks"
	}
	fmt.Fprintf(w, "\n%d %s found, %s total\n", len(tasks), countMsg, FormatDuration(total))

	return len(tasks)
}

// FormatJSONL writes tasks as line-delimited JSON (JSONL) to the provided writer.
// Each task is written as a single JSON object on its own line.
func FormatJSONL(w io.Writer, tasks []*timesheet.Task) error {
	for _, task := range tasks {
		data, err := json.Marshal(task)
		if err != nil {
			return fmt.Errorf("failed to marshal task to JSON: %w", err)
		}

		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}

	return nil
}

// FormatSingleJSON writes a single task as pretty-printed JSON to the provided writer.
func FormatSingleJSON(w io.Writer, task *timesheet.Task) error {
	data, err := json.MarshalIndent(task, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal task to JSON: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	fmt.Fprintln(w)

	return nil
}

// FormatDuration renders d compactly: "8h30m", "45m", "1h05m30s", "-1h00m".
func FormatDuration(d time.Duration) string {
	sign := ""
	if d < 0 {
		sign = "-"
		d = -d
	}

	d = d.Round(time.Second)
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second

	switch {
	case hours > 0 && seconds > 0:
		return fmt.Sprintf("%s%dh%02dm%02ds", sign, hours, minutes, seconds)
	case hours > 0:
		return fmt.Sprintf("%s%dh%02dm", sign, hours, minutes)
	case seconds > 0:
		return fmt.Sprintf("%s%dm%02ds", sign, minutes, seconds)
	default:
		return fmt.Sprintf("%s%dm", sign, minutes)
	}
}

// formatID truncates long IDs (UUIDs) to the first 8 characters for compact display.
func formatID(id string) string {
	if len(id) > 10 {
		return id[:8]
	}
	return id
}
