package timespec

import (
	"fmt"
	"time"

	"github.com/dyluth/tock/pkg/timesheet"
)

// ParseDuration parses a duration threshold given on the command line.
// Supports two formats:
//   - Go duration format: "1h", "30m", "1h30m", "2h45m30s"
//   - Clock format: "08:30:00" (either ':' or '∶' as separator)
//
// Negative durations are rejected.
func ParseDuration(spec string) (time.Duration, error) {
	if spec == "" {
		return 0, fmt.Errorf("empty duration specification")
	}

	if d, err := time.ParseDuration(spec); err == nil {
		if d < 0 {
			return 0, fmt.Errorf("negative duration specification: %s", spec)
		}
		return d, nil
	}

	if d := timesheet.ParseHMS(spec); d != nil {
		return *d, nil
	}

	return 0, fmt.Errorf("invalid duration specification: %s (use duration like '1h30m' or clock like '01:30:00')", spec)
}

// ParseRange parses both --min-total and --max-total flags into a range.
// Returns (min, max, error). Zero values indicate "no bound" for that end.
//
// Validates that min <= max if both are specified.
func ParseRange(minSpec, maxSpec string) (time.Duration, time.Duration, error) {
	var minD, maxD time.Duration
	var err error

	if minSpec != "" {
		minD, err = ParseDuration(minSpec)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --min-total: %w", err)
		}
	}

	if maxSpec != "" {
		maxD, err = ParseDuration(maxSpec)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --max-total: %w", err)
		}
	}

	if minD > 0 && maxD > 0 && minD > maxD {
		return 0, 0, fmt.Errorf("--min-total must not exceed --max-total")
	}

	return minD, maxD, nil
}
