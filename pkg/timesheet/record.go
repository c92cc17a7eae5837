package timesheet

import "go.uber.org/zap"

// RawRecord is one entry of a work log document as it appears on disk.
type RawRecord struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	TimeDate string `json:"timedate"`
	Tags     string `json:"tags"`
}

// Assembler turns raw records into validated tasks.
type Assembler struct {
	IDs          IDPolicy
	Ranges       RangePolicy
	OptionalTags bool
}

// DefaultAssembler uses StrictIDs, RangeStrict and mandatory tags.
func DefaultAssembler() *Assembler {
	return &Assembler{IDs: StrictIDs{}, Ranges: RangeStrict}
}

// Assemble validates id, title, timedate and tag in that order and returns
// the first failure. No partial task is ever returned.
func (a *Assembler) Assemble(raw RawRecord) (*Task, error) {
	ids := a.IDs
	if ids == nil {
		ids = StrictIDs{}
	}

	id, err := ids.ParseID(raw.ID)
	if err != nil {
		return nil, err
	}

	title, err := ValidateTitle(raw.Name)
	if err != nil {
		return nil, err
	}

	ex, err := ParseTimeRange(raw.TimeDate)
	if err != nil {
		return nil, err
	}
	timeline, err := NewTimeRecords(a.Ranges, ex.Effective, ex.DayWeek, ex.Date, ex.Start, ex.End)
	if err != nil {
		return nil, err
	}

	validateTag := ValidateTag
	if a.OptionalTags {
		validateTag = OptionalTag
	}
	tag, err := validateTag(raw.Tags)
	if err != nil {
		return nil, err
	}

	return &Task{
		ID:       id,
		Title:    title,
		Timeline: timeline,
		Tag:      tag,
	}, nil
}

// Assemble validates raw with the default assembler.
func Assemble(raw RawRecord) (*Task, error) {
	return DefaultAssembler().Assemble(raw)
}

func taskFields(t *Task) []zap.Field {
	return []zap.Field{
		zap.String("id", t.ID.String()),
		zap.String("title", t.Title.String()),
		zap.Duration("total", t.Timeline.Total),
		zap.Duration("break", t.Timeline.Break),
	}
}
