package timesheet

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// BatchPolicy decides what a failing record does to the rest of the document.
type BatchPolicy int

const (
	// BatchAtomic fails the whole build on the first invalid record.
	BatchAtomic BatchPolicy = iota

	// BatchLenient skips invalid records and keeps the valid ones.
	// Skipped records are reported by Catalog.Skipped.
	BatchLenient

	// BatchCollect validates every record and fails with all errors joined.
	BatchCollect
)

func (p BatchPolicy) String() string {
	switch p {
	case BatchAtomic:
		return "atomic"
	case BatchLenient:
		return "lenient"
	case BatchCollect:
		return "collect"
	default:
		return fmt.Sprintf("BatchPolicy(%d)", int(p))
	}
}

// Builder ingests work log documents into catalogs.
type Builder struct {
	assembler Assembler
	batch     BatchPolicy
	keys      KeyMode
	logger    *zap.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithIDPolicy sets the identifier policy. Defaults to StrictIDs.
func WithIDPolicy(p IDPolicy) Option {
	return func(b *Builder) { b.assembler.IDs = p }
}

// WithRangePolicy sets the start/end admission policy. Defaults to RangeStrict.
func WithRangePolicy(p RangePolicy) Option {
	return func(b *Builder) { b.assembler.Ranges = p }
}

// WithBatchPolicy sets how invalid records are handled. Defaults to BatchAtomic.
func WithBatchPolicy(p BatchPolicy) Option {
	return func(b *Builder) { b.batch = p }
}

// WithKeyMode sets the catalog key. Defaults to KeyByID.
func WithKeyMode(m KeyMode) Option {
	return func(b *Builder) { b.keys = m }
}

// WithOptionalTags lets blank tags through as absent.
func WithOptionalTags() Option {
	return func(b *Builder) { b.assembler.OptionalTags = true }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBuilder returns a Builder with the given options applied over the defaults.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		assembler: *DefaultAssembler(),
		batch:     BatchAtomic,
		keys:      KeyByID,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build decodes doc and assembles every record into a new catalog.
// Under BatchAtomic and BatchCollect no catalog is returned when any record
// fails.
func (b *Builder) Build(doc []byte) (*Catalog, error) {
	records, err := Decode(doc)
	if err != nil {
		return nil, err
	}

	cat := NewCatalog(b.keys)
	var failures []error

	for i, raw := range records {
		task, err := b.assembler.Assemble(raw)
		if err != nil {
			rerr := &RecordError{Index: i, ID: raw.ID, Err: err}
			switch b.batch {
			case BatchLenient:
				b.logger.Warn("Skipping invalid record", zap.Int("index", i), zap.String("id", raw.ID), zap.Error(err))
				cat.recordSkip(rerr)
				continue
			case BatchCollect:
				failures = append(failures, rerr)
				continue
			default:
				return nil, rerr
			}
		}

		if !cat.Insert(task) {
			b.logger.Debug("Discarding duplicate key", append(taskFields(task), zap.String("key", cat.KeyFor(task)))...)
		}
	}

	if len(failures) > 0 {
		return nil, errors.Join(failures...)
	}

	b.logger.Info("Catalog built",
		zap.Int("records", len(records)),
		zap.Int("tasks", cat.Len()),
		zap.Int("duplicates", cat.Duplicates()),
		zap.Int("skipped", len(cat.Skipped())),
		zap.Stringer("batch_policy", b.batch),
		zap.Stringer("key", b.keys))

	return cat, nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode parses doc as a JSON array of raw records.
func Decode(doc []byte) ([]RawRecord, error) {
	doc = bytes.TrimSpace(bytes.TrimPrefix(doc, utf8BOM))
	if len(doc) == 0 {
		return nil, ErrEmptyDocument
	}
	if doc[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrDeserializationFailure)
	}

	var records []RawRecord
	if err := json.Unmarshal(doc, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDeserializationFailure, err)
	}
	return records, nil
}
