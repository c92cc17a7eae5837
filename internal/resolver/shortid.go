package resolver

import (
	"fmt"
	"strings"

	"github.com/dyluth/tock/pkg/timesheet"
)

// MinShortKeyLength is the minimum required length for key prefixes.
const MinShortKeyLength = 4

// ResolveKey resolves a key or key prefix to a task in the catalog.
//
// The function handles three cases:
// 1. Input is an exact key - returned directly
// 2. Input is too short (< 4 chars) - returns validation error
// 3. Input is a prefix - scans keys and returns the unique match
func ResolveKey(cat *timesheet.Catalog, shortKey string) (*timesheet.Task, error) {
	if task, ok := cat.Get(shortKey); ok {
		return task, nil
	}

	if len(shortKey) < MinShortKeyLength {
		return nil, fmt.Errorf("short key must be at least %d characters (got %d)", MinShortKeyLength, len(shortKey))
	}

	var matches []string
	for _, key := range cat.Keys() {
		if strings.HasPrefix(key, shortKey) {
			matches = append(matches, key)
		}
	}

	switch len(matches) {
	case 0:
		return nil, &NotFoundError{ShortKey: shortKey}
	case 1:
		task, _ := cat.Get(matches[0])
		return task, nil
	default:
		return nil, &AmbiguousError{ShortKey: shortKey, Matches: matches}
	}
}

// NotFoundError indicates no task key matched.
type NotFoundError struct {
	ShortKey string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no tasks found matching '%s'", e.ShortKey)
}

// AmbiguousError indicates multiple task keys matched.
type AmbiguousError struct {
	ShortKey string
	Matches  []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous short key '%s' matches %d tasks", e.ShortKey, len(e.Matches))
}

// FormatAmbiguousError creates a user-friendly error message for ambiguous keys.
// Lists all matching keys (up to 10, then "...and N more").
func FormatAmbiguousError(err *AmbiguousError) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Error: ambiguous short key '%s' matches %d tasks:\n", err.ShortKey, len(err.Matches))

	displayCount := min(len(err.Matches), 10)
	for _, m := range err.Matches[:displayCount] {
		fmt.Fprintf(&b, "  %s\n", m)
	}

	if len(err.Matches) > 10 {
		fmt.Fprintf(&b, "  ...and %d more\n", len(err.Matches)-10)
	}

	b.WriteString("\nUse a longer prefix to uniquely identify the task.")
	return b.String()
}

// IsNotFoundError checks if an error is a NotFoundError.
func IsNotFoundError(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsAmbiguousError checks if an error is an AmbiguousError.
func IsAmbiguousError(err error) bool {
	_, ok := err.(*AmbiguousError)
	return ok
}
