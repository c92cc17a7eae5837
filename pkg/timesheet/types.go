package timesheet

import (
	"encoding/json"
	"fmt"
	"time"
)

// Task is a validated unit of work. Tasks are built by the Assembler and are
// not modified afterwards; identity is the ID.
type Task struct {
	ID       TaskID      `json:"id"`
	Title    TaskTitle   `json:"title"`
	Timeline TimeRecords `json:"timeline"`
	Tag      TaskTag     `json:"tag"`
}

// TaskID identifies one task. Under StrictIDs it holds the canonical UUID form.
type TaskID string

func (id TaskID) String() string {
	return string(id)
}

// TaskTitle is a trimmed, lower-cased title of 3 to 15 characters.
type TaskTitle string

func (t TaskTitle) String() string {
	return string(t)
}

// TaskTag is an optional normalized tag.
type TaskTag struct {
	value   string
	present bool
}

// SomeTag returns a present tag holding value as-is.
func SomeTag(value string) TaskTag {
	return TaskTag{value: value, present: true}
}

// NoTag returns the absent tag.
func NoTag() TaskTag {
	return TaskTag{}
}

// Get returns the tag value and whether it is present.
func (t TaskTag) Get() (string, bool) {
	return t.value, t.present
}

// IsPresent reports whether the tag carries a value.
func (t TaskTag) IsPresent() bool {
	return t.present
}

func (t TaskTag) String() string {
	if !t.present {
		return "-"
	}
	return t.value
}

// MarshalJSON encodes an absent tag as null.
func (t TaskTag) MarshalJSON() ([]byte, error) {
	if !t.present {
		return []byte("null"), nil
	}
	return json.Marshal(t.value)
}

// SecondsPerDay is the length of the clock face used for wraparound.
const SecondsPerDay = 24 * 60 * 60

// Clock is a time of day with second resolution, stored as seconds since midnight.
type Clock int

// NewClock builds a Clock from hour, minute and second components.
func NewClock(hour, minute, second int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return 0, fmt.Errorf("clock %02d:%02d:%02d out of range", hour, minute, second)
	}
	return Clock(hour*3600 + minute*60 + second), nil
}

// MustClock is like NewClock but panics on invalid input. Intended for tests
// and constants.
func MustClock(hour, minute, second int) Clock {
	c, err := NewClock(hour, minute, second)
	if err != nil {
		panic(err)
	}
	return c
}

// SecondsFromMidnight returns the number of seconds since 00:00:00.
func (c Clock) SecondsFromMidnight() int {
	return int(c)
}

func (c Clock) String() string {
	s := int(c)
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s/60)%60, s%60)
}

// MarshalText encodes the clock as HH:MM:SS.
func (c Clock) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// TimeRecords is the time accounting for one task. Total and Break are always
// derived by NewTimeRecords and never taken from input.
type TimeRecords struct {
	Effective *time.Duration // Externally reported work time, nil when absent
	DayWeek   string         // Three-letter day abbreviation as written
	Date      string         // DD/MM as written
	Start     Clock
	End       Clock
	Total     time.Duration // Elapsed time from Start to End
	Break     time.Duration // Total minus Effective (equals Total when Effective is absent)
}

// HasEffective reports whether an effective duration was reported.
func (tr TimeRecords) HasEffective() bool {
	return tr.Effective != nil
}

type timeRecordsJSON struct {
	Effective *string `json:"effective_duration"`
	DayWeek   string  `json:"day_week"`
	Date      string  `json:"date"`
	Start     Clock   `json:"starting_time"`
	End       Clock   `json:"ending_time"`
	Total     string  `json:"total_time"`
	Break     string  `json:"break_time"`
}

// MarshalJSON encodes durations in Go duration notation (e.g. "8h30m0s").
func (tr TimeRecords) MarshalJSON() ([]byte, error) {
	out := timeRecordsJSON{
		DayWeek: tr.DayWeek,
		Date:    tr.Date,
		Start:   tr.Start,
		End:     tr.End,
		Total:   tr.Total.String(),
		Break:   tr.Break.String(),
	}
	if tr.Effective != nil {
		s := tr.Effective.String()
		out.Effective = &s
	}
	return json.Marshal(out)
}
