package timesheet

import (
	"fmt"
	"time"
)

// RangePolicy decides which start/end pairs are admitted when a TimeRecords
// is constructed. TotalTime itself always applies the midnight wraparound.
type RangePolicy int

const (
	// RangeStrict rejects any range whose end clock is not after its start clock.
	RangeStrict RangePolicy = iota

	// RangeOvernight admits end < start as a range crossing midnight and only
	// rejects a zero-length range (end == start).
	RangeOvernight
)

func (p RangePolicy) String() string {
	switch p {
	case RangeStrict:
		return "strict"
	case RangeOvernight:
		return "overnight"
	default:
		return fmt.Sprintf("RangePolicy(%d)", int(p))
	}
}

// Check reports an ErrInvalidTimeRange error if the policy rejects start–end.
func (p RangePolicy) Check(start, end Clock) error {
	switch p {
	case RangeOvernight:
		if end == start {
			return fmt.Errorf("%w: zero-length range at %s", ErrInvalidTimeRange, start)
		}
	default:
		if end <= start {
			return fmt.Errorf("%w: ending time %s is not after starting time %s", ErrInvalidTimeRange, end, start)
		}
	}
	return nil
}

// TotalTime returns the elapsed time from start to end. An end earlier than
// start is taken to be on the following day.
func TotalTime(start, end Clock) time.Duration {
	s, e := start.SecondsFromMidnight(), end.SecondsFromMidnight()
	if e >= s {
		return time.Duration(e-s) * time.Second
	}
	return time.Duration(SecondsPerDay-s+e) * time.Second
}

// BreakTime returns total minus the effective duration, or total when no
// effective duration was reported. The result may be negative when the
// reported effective time exceeds the elapsed time.
func BreakTime(effective *time.Duration, total time.Duration) time.Duration {
	if effective == nil {
		return total
	}
	return total - *effective
}

// NewTimeRecords validates the clock range under policy and derives the total
// and break times.
func NewTimeRecords(policy RangePolicy, effective *time.Duration, dayWeek, date string, start, end Clock) (TimeRecords, error) {
	if err := policy.Check(start, end); err != nil {
		return TimeRecords{}, err
	}

	total := TotalTime(start, end)
	var eff *time.Duration
	if effective != nil {
		d := *effective
		eff = &d
	}

	return TimeRecords{
		Effective: eff,
		DayWeek:   dayWeek,
		Date:      date,
		Start:     start,
		End:       end,
		Total:     total,
		Break:     BreakTime(eff, total),
	}, nil
}
