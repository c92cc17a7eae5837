package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalTime(t *testing.T) {
	testCases := []struct {
		name  string
		start Clock
		end   Clock
		want  time.Duration
	}{
		{"same day", MustClock(9, 0, 0), MustClock(17, 30, 0), 8*time.Hour + 30*time.Minute},
		{"crosses midnight", MustClock(23, 0, 0), MustClock(1, 0, 0), 2 * time.Hour},
		{"equal clocks are zero", MustClock(12, 0, 0), MustClock(12, 0, 0), 0},
		{"ends at midnight", MustClock(22, 0, 0), MustClock(0, 0, 0), 2 * time.Hour},
		{"one second before start", MustClock(10, 0, 0), MustClock(9, 59, 59), 24*time.Hour - time.Second},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TotalTime(tc.start, tc.end))
		})
	}
}

func TestTotalTime_IsPure(t *testing.T) {
	start, end := MustClock(23, 15, 0), MustClock(2, 45, 10)
	first := TotalTime(start, end)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, TotalTime(start, end))
	}
}

func TestBreakTime(t *testing.T) {
	effective := 7 * time.Hour
	assert.Equal(t, time.Hour, BreakTime(&effective, 8*time.Hour))
	assert.Equal(t, 8*time.Hour, BreakTime(nil, 8*time.Hour))

	over := 9 * time.Hour
	assert.Equal(t, -time.Hour, BreakTime(&over, 8*time.Hour), "negative break time is reported as-is")
}

func TestRangePolicy_Check(t *testing.T) {
	nine, five := MustClock(9, 0, 0), MustClock(17, 0, 0)

	t.Run("strict", func(t *testing.T) {
		assert.NoError(t, RangeStrict.Check(nine, five))
		assert.ErrorIs(t, RangeStrict.Check(five, nine), ErrInvalidTimeRange)
		assert.ErrorIs(t, RangeStrict.Check(nine, nine), ErrInvalidTimeRange)
	})

	t.Run("overnight", func(t *testing.T) {
		assert.NoError(t, RangeOvernight.Check(nine, five))
		assert.NoError(t, RangeOvernight.Check(five, nine))
		assert.ErrorIs(t, RangeOvernight.Check(nine, nine), ErrInvalidTimeRange)
	})
}

func TestNewTimeRecords(t *testing.T) {
	t.Run("derives total and break", func(t *testing.T) {
		effective := 7 * time.Hour
		tr, err := NewTimeRecords(RangeStrict, &effective, "Mon", "12/05", MustClock(9, 0, 0), MustClock(17, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, 8*time.Hour, tr.Total)
		assert.Equal(t, time.Hour, tr.Break)
		assert.True(t, tr.HasEffective())

		effective = time.Minute
		assert.Equal(t, 7*time.Hour, *tr.Effective, "records keep their own copy of the effective duration")
	})

	t.Run("overnight range under overnight policy", func(t *testing.T) {
		tr, err := NewTimeRecords(RangeOvernight, nil, "Fri", "01/03", MustClock(23, 0, 0), MustClock(1, 0, 0))
		require.NoError(t, err)
		assert.Equal(t, 2*time.Hour, tr.Total)
		assert.Equal(t, 2*time.Hour, tr.Break)
		assert.False(t, tr.HasEffective())
	})

	t.Run("overnight range under strict policy", func(t *testing.T) {
		_, err := NewTimeRecords(RangeStrict, nil, "Fri", "01/03", MustClock(23, 0, 0), MustClock(1, 0, 0))
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}

func TestNewClock(t *testing.T) {
	c, err := NewClock(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, "01:02:03", c.String())

	for _, hms := range [][3]int{{24, 0, 0}, {-1, 0, 0}, {0, 60, 0}, {0, 0, 60}} {
		_, err := NewClock(hms[0], hms[1], hms[2])
		assert.Error(t, err)
	}

	assert.Panics(t, func() { MustClock(25, 0, 0) })
}
