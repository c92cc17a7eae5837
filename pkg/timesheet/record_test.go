package timesheet

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() RawRecord {
	return RawRecord{
		ID:       uuid.New().String(),
		Name:     "Coding",
		TimeDate: sampleTimeDate,
		Tags:     "Dev",
	}
}

func TestAssemble_Valid(t *testing.T) {
	raw := validRaw()

	task, err := Assemble(raw)
	require.NoError(t, err)
	assert.Equal(t, TaskID(raw.ID), task.ID)
	assert.Equal(t, TaskTitle("coding"), task.Title)
	assert.Equal(t, 8*time.Hour+30*time.Minute, task.Timeline.Total)
	assert.Equal(t, time.Hour+30*time.Minute, task.Timeline.Break)
	assert.Equal(t, "dev", task.Tag.String())
}

// TestAssemble_FirstErrorWins checks fields are validated in id, title, time, tag order
func TestAssemble_FirstErrorWins(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(r *RawRecord)
		want   error
	}{
		{"bad id beats everything", func(r *RawRecord) {
			r.ID, r.Name, r.TimeDate, r.Tags = "x", "", "", ""
		}, ErrInvalidIdentifier},
		{"bad title beats time and tag", func(r *RawRecord) {
			r.Name, r.TimeDate, r.Tags = "no", "", ""
		}, ErrInvalidTitleFormat},
		{"bad time beats tag", func(r *RawRecord) {
			r.TimeDate, r.Tags = "garbage", ""
		}, ErrParseFailure},
		{"empty time", func(r *RawRecord) {
			r.TimeDate = ""
		}, ErrInvalidDateTimeFormat},
		{"reversed range", func(r *RawRecord) {
			r.TimeDate = "07:00:00\nMon, 12/05 17:30:00 – 09:00:00"
		}, ErrInvalidTimeRange},
		{"bad tag", func(r *RawRecord) {
			r.Tags = "..."
		}, ErrInvalidTagFormat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := validRaw()
			tc.mutate(&raw)

			task, err := Assemble(raw)
			assert.Nil(t, task)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAssembler_Policies(t *testing.T) {
	a := &Assembler{IDs: PermissiveIDs{}, Ranges: RangeOvernight, OptionalTags: true}

	task, err := a.Assemble(RawRecord{
		ID:       "night-1",
		Name:     "deploy",
		TimeDate: "01:30:00\nSat, 06/07 23:00:00 – 01:00:00",
		Tags:     "",
	})
	require.NoError(t, err)
	assert.Equal(t, TaskID("night-1"), task.ID)
	assert.Equal(t, 2*time.Hour, task.Timeline.Total)
	assert.Equal(t, 30*time.Minute, task.Timeline.Break)
	assert.False(t, task.Tag.IsPresent())
}

func TestAssembler_NilIDPolicyIsStrict(t *testing.T) {
	a := &Assembler{}
	raw := validRaw()
	raw.ID = "a1"

	_, err := a.Assemble(raw)
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}
