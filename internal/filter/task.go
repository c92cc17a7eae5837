package filter

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/dyluth/tock/pkg/timesheet"
)

// Criteria defines filtering criteria for tasks.
// All filters are ANDed together - a task must match ALL criteria to pass.
type Criteria struct {
	TagGlob  string        // Glob pattern for the tag, empty = no filter
	Day      string        // Day abbreviation, case-insensitive, empty = no filter
	MinTotal time.Duration // Minimum total time, 0 = no filter
	MaxTotal time.Duration // Maximum total time, 0 = no filter
}

// Matches returns true if the task matches all filter criteria.
// Empty/zero criteria values are treated as "match all" for that criterion.
func (c *Criteria) Matches(task *timesheet.Task) bool {
	if c.TagGlob != "" {
		tag, ok := task.Tag.Get()
		if !ok {
			return false
		}
		matched, err := filepath.Match(strings.ToLower(c.TagGlob), tag)
		if err != nil || !matched {
			return false
		}
	}

	if c.Day != "" && !strings.EqualFold(c.Day, task.Timeline.DayWeek) {
		return false
	}

	if c.MinTotal > 0 && task.Timeline.Total < c.MinTotal {
		return false
	}
	if c.MaxTotal > 0 && task.Timeline.Total > c.MaxTotal {
		return false
	}

	return true
}

// HasFilters returns true if any filters are active.
func (c *Criteria) HasFilters() bool {
	return c.TagGlob != "" ||
		c.Day != "" ||
		c.MinTotal > 0 ||
		c.MaxTotal > 0
}

// Apply returns the tasks matching c, preserving order.
func (c *Criteria) Apply(tasks []*timesheet.Task) []*timesheet.Task {
	if !c.HasFilters() {
		return tasks
	}
	out := make([]*timesheet.Task, 0, len(tasks))
	for _, t := range tasks {
		if c.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
