// Package timesheet parses and validates time-tracked work entries and
// materializes them into an in-memory catalog.
//
// # Overview
//
// A work log is a JSON array of raw records, one per task:
//
//	[{"id":"...","name":"coding","timedate":"07:00:00\nMon, 12/05 09:00:00 – 17:30:00","tags":"dev"}]
//
// The timedate field carries an externally reported effective duration, a
// line break, a day abbreviation, a DD/MM date and a start–end clock range.
// Either ':' or the RATIO character '∶' (U+2236) may separate clock fields.
//
// # Pipeline
//
// Builder.Build deserializes the document and hands every raw record to an
// Assembler. The assembler validates the identifier, title, time range and
// tag in that order and returns the first failure. Valid tasks are inserted
// into a Catalog keyed by ID (or title); the first write for a key wins.
//
// # Policies
//
// Several behaviours are selectable when the Builder is constructed:
//
//   - IDPolicy: StrictIDs (UUIDs only, the default) or PermissiveIDs
//   - BatchPolicy: BatchAtomic (default), BatchLenient or BatchCollect
//   - RangePolicy: RangeStrict (default) or RangeOvernight
//   - KeyMode: KeyByID (default) or KeyByTitle
//
// # Usage Example
//
//	b := timesheet.NewBuilder(
//		timesheet.WithIDPolicy(timesheet.PermissiveIDs{}),
//		timesheet.WithBatchPolicy(timesheet.BatchLenient),
//	)
//	cat, err := b.Build(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for key, task := range cat.All() {
//		fmt.Println(key, task.Title, task.Timeline.Total)
//	}
package timesheet
