package printer

import (
	"errors"
	"strconv"

	"github.com/dyluth/tock/internal/source"
	"github.com/dyluth/tock/pkg/timesheet"
)

// IngestError prints a failed ingestion of path with a title and suggestions
// matching the kind of failure
func IngestError(path string, err error) error {
	context := map[string]string{"File": path}

	var rerr *timesheet.RecordError
	if errors.As(err, &rerr) {
		context["Record"] = strconv.Itoa(rerr.Index)
		if rerr.ID != "" {
			context["ID"] = rerr.ID
		}
	}

	switch {
	case errors.Is(err, source.ErrNotFound):
		return ErrorWithContext("work log not found", err.Error(), context,
			[]string{"Check the path and try again."})
	case errors.Is(err, source.ErrPermission):
		return ErrorWithContext("cannot read work log", err.Error(), context,
			[]string{"Check the file permissions."})
	case errors.Is(err, source.ErrEncoding):
		return ErrorWithContext("work log is not UTF-8", err.Error(), context,
			[]string{"Re-export the log as UTF-8."})
	case errors.Is(err, timesheet.ErrEmptyDocument):
		return ErrorWithContext("work log is empty", "", context, nil)
	case errors.Is(err, timesheet.ErrDeserializationFailure):
		return ErrorWithContext("work log is not a JSON array of tasks", err.Error(), context,
			[]string{`Each entry needs string fields "id", "name", "timedate" and "tags".`})
	case errors.Is(err, timesheet.ErrInvalidIdentifier):
		return ErrorWithContext("invalid task identifier", err.Error(), context, []string{
			"Use UUID identifiers",
			"Accept any identifier with --permissive-ids (or ingest.id_policy: permissive)",
		})
	case errors.Is(err, timesheet.ErrInvalidTimeRange):
		return ErrorWithContext("invalid task time range", err.Error(), context, []string{
			"Fix the start and end times",
			"Allow ranges that cross midnight with --overnight (or ingest.range_policy: overnight)",
		})
	case timesheet.IsRecordError(err):
		return ErrorWithContext("invalid task record", err.Error(), context, []string{
			"Fix the record",
			"Skip invalid records with --lenient",
			"List every invalid record with --collect",
		})
	default:
		return ErrorWithContext("ingestion failed", err.Error(), context, nil)
	}
}
