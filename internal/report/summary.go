package report

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dyluth/tock/pkg/timesheet"
)

// UntaggedLabel groups tasks without a tag in summaries.
const UntaggedLabel = "(untagged)"

// TagTotal aggregates the time recorded under one tag.
type TagTotal struct {
	Tag       string        `json:"tag"`
	Tasks     int           `json:"tasks"`
	Total     time.Duration `json:"total"`
	Effective time.Duration `json:"effective"` // Sum over tasks that reported an effective duration
	Break     time.Duration `json:"break"`
}

// Summary is the per-tag breakdown of a catalog.
type Summary struct {
	Tags  []TagTotal    `json:"tags"`
	Tasks int           `json:"tasks"`
	Total time.Duration `json:"total"`
}

// Share returns the fraction of the overall total spent on tag t.
func (s Summary) Share(t TagTotal) float64 {
	if s.Total <= 0 {
		return 0
	}
	return float64(t.Total) / float64(s.Total)
}

// Summarize totals tasks per tag. Tags are sorted by descending total time,
// then by name.
func Summarize(tasks []*timesheet.Task) Summary {
	byTag := make(map[string]*TagTotal)
	var s Summary

	for _, t := range tasks {
		label := UntaggedLabel
		if tag, ok := t.Tag.Get(); ok {
			label = tag
		}

		tt, ok := byTag[label]
		if !ok {
			tt = &TagTotal{Tag: label}
			byTag[label] = tt
		}
		tt.Tasks++
		tt.Total += t.Timeline.Total
		tt.Break += t.Timeline.Break
		if t.Timeline.Effective != nil {
			tt.Effective += *t.Timeline.Effective
		}

		s.Tasks++
		s.Total += t.Timeline.Total
	}

	for _, tt := range byTag {
		s.Tags = append(s.Tags, *tt)
	}
	sort.Slice(s.Tags, func(i, j int) bool {
		if s.Tags[i].Total != s.Tags[j].Total {
			return s.Tags[i].Total > s.Tags[j].Total
		}
		return s.Tags[i].Tag < s.Tags[j].Tag
	})

	return s
}

// FormatSummary writes s as a table.
func FormatSummary(w io.Writer, s Summary) {
	if s.Tasks == 0 {
		fmt.Fprintln(w, "No tasks to summarize")
		return
	}

	fmt.Fprintf(w, "%-15s %-6s %-10s %-10s %-10s %s\n", "TAG", "TASKS", "TOTAL", "EFFECTIVE", "BREAK", "SHARE")
	fmt.Fprintf(w, "%-15s %-6s %-10s %-10s %-10s %s\n", "---------------", "------", "----------", "----------", "----------", "-----")
	for _, tt := range s.Tags {
		fmt.Fprintf(w, "%-15s %-6d %-10s %-10s %-10s %.0f%%\n",
			tt.Tag, tt.Tasks,
			FormatDuration(tt.Total),
			FormatDuration(tt.Effective),
			FormatDuration(tt.Break),
			s.Share(tt)*100,
		)
	}
	fmt.Fprintf(w, "\n%d tasks, %s total\n", s.Tasks, FormatDuration(s.Total))
}
