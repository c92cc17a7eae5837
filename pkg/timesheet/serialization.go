package timesheet

import (
	"fmt"
	"strconv"
	"time"
)

// Serialization helpers for storing tasks as Redis hashes.
//
// Clocks are stored as HH:MM:SS and the effective duration as whole seconds.
// Total and break times are written for readers of the hash but are always
// re-derived on the way back in.

// TaskToHash converts a task to a flat string hash.
func TaskToHash(t *Task) map[string]interface{} {
	tag, _ := t.Tag.Get()
	effective := ""
	if t.Timeline.Effective != nil {
		effective = strconv.FormatInt(int64(*t.Timeline.Effective/time.Second), 10)
	}

	return map[string]interface{}{
		"id":                t.ID.String(),
		"title":             t.Title.String(),
		"day_week":          t.Timeline.DayWeek,
		"date":              t.Timeline.Date,
		"starting_time":     t.Timeline.Start.String(),
		"ending_time":       t.Timeline.End.String(),
		"effective_seconds": effective,
		"total_seconds":     int64(t.Timeline.Total / time.Second),
		"break_seconds":     int64(t.Timeline.Break / time.Second),
		"tag":               tag,
		"tag_present":       strconv.FormatBool(t.Tag.IsPresent()),
	}
}

// HashToTask converts a stored hash back into a task. The id goes through
// a's IDPolicy, the title and tag are re-validated and the time records are
// rebuilt under a's RangePolicy. A nil a means DefaultAssembler.
func HashToTask(hash map[string]string, a *Assembler) (*Task, error) {
	if a == nil {
		a = DefaultAssembler()
	}
	ids := a.IDs
	if ids == nil {
		ids = StrictIDs{}
	}

	if hash["id"] == "" {
		return nil, fmt.Errorf("%w: missing id field", ErrInvalidIdentifier)
	}
	id, err := ids.ParseID(hash["id"])
	if err != nil {
		return nil, err
	}

	title, err := ValidateTitle(hash["title"])
	if err != nil {
		return nil, err
	}

	start, err := ParseClock(hash["starting_time"])
	if err != nil {
		return nil, fmt.Errorf("%w: starting_time: %v", ErrParseFailure, err)
	}
	end, err := ParseClock(hash["ending_time"])
	if err != nil {
		return nil, fmt.Errorf("%w: ending_time: %v", ErrParseFailure, err)
	}

	var effective *time.Duration
	if s := hash["effective_seconds"]; s != "" {
		secs, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid effective_seconds field: %w", err)
		}
		d := time.Duration(secs) * time.Second
		effective = &d
	}

	timeline, err := NewTimeRecords(a.Ranges, effective, hash["day_week"], hash["date"], start, end)
	if err != nil {
		return nil, err
	}

	tag := NoTag()
	if present, _ := strconv.ParseBool(hash["tag_present"]); present {
		tag, err = ValidateTag(hash["tag"])
		if err != nil {
			return nil, err
		}
	}

	return &Task{
		ID:       id,
		Title:    title,
		Timeline: timeline,
		Tag:      tag,
	}, nil
}
