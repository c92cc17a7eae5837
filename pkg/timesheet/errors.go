package timesheet

import (
	"errors"
	"fmt"
)

// Error kinds. Callers match them with errors.Is; the returned errors wrap
// them with record-specific context.
var (
	ErrEmptyDocument          = errors.New("empty document")
	ErrDeserializationFailure = errors.New("document is not an array of task records")
	ErrInvalidIdentifier      = errors.New("invalid task identifier")
	ErrInvalidTitleFormat     = errors.New("invalid task title format")
	ErrInvalidTagFormat       = errors.New("invalid task tag format")
	ErrInvalidDateTimeFormat  = errors.New("invalid task datetime format")
	ErrParseFailure           = errors.New("task datetime does not match expected shape")
	ErrInvalidTimeRange       = errors.New("invalid task time range")
)

// RecordError reports which record of a document failed validation.
type RecordError struct {
	Index int    // Position of the record in the document (0-based)
	ID    string // Raw identifier as it appeared in the document
	Err   error
}

func (e *RecordError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("record %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("record %d (id %q): %v", e.Index, e.ID, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// IsRecordError reports whether err carries a *RecordError.
func IsRecordError(err error) bool {
	var re *RecordError
	return errors.As(err, &re)
}
