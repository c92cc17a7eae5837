package timesheet

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func record(id, name, timedate, tags string) string {
	return fmt.Sprintf(`{"id":%q,"name":%q,"timedate":%q,"tags":%q}`, id, name, timedate, tags)
}

func TestBuild_EndToEnd(t *testing.T) {
	doc := `[{"id":"a1","name":"coding","timedate":"07:00:00\nMon, 12/05 09:00:00 – 17:30:00","tags":"dev"}]`

	cat, err := NewBuilder(WithIDPolicy(PermissiveIDs{})).Build([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())

	task, ok := cat.Get("a1")
	require.True(t, ok)
	assert.Equal(t, TaskTitle("coding"), task.Title)
	assert.Equal(t, 8*time.Hour+30*time.Minute, task.Timeline.Total)
	assert.Equal(t, time.Hour+30*time.Minute, task.Timeline.Break)
	assert.Equal(t, "dev", task.Tag.String())
}

func TestBuild_EscapedNewlineInDocument(t *testing.T) {
	doc := `[{"id":"a1","name":"coding","timedate":"07:00:00\\nMon, 12/05 09:00:00 – 17:30:00","tags":"dev"}]`

	cat, err := NewBuilder(WithIDPolicy(PermissiveIDs{})).Build([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
}

func TestBuild_EmptyDocument(t *testing.T) {
	for _, doc := range []string{"", "   \n\t", "\xEF\xBB\xBF"} {
		cat, err := NewBuilder().Build([]byte(doc))
		assert.Nil(t, cat)
		assert.ErrorIs(t, err, ErrEmptyDocument)
	}
}

func TestBuild_DeserializationFailure(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"object instead of array", `{"id":"a1"}`},
		{"null", `null`},
		{"truncated array", `[{"id":"a1",`},
		{"non-string field", `[{"id":1,"name":"coding","timedate":"x","tags":"dev"}]`},
		{"array of strings", `["a","b"]`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cat, err := NewBuilder().Build([]byte(tc.doc))
			assert.Nil(t, cat)
			assert.ErrorIs(t, err, ErrDeserializationFailure)
		})
	}
}

func TestBuild_EmptyArray(t *testing.T) {
	cat, err := NewBuilder().Build([]byte(`[]`))
	require.NoError(t, err)
	assert.Equal(t, 0, cat.Len())
}

func TestBuild_BOMIsIgnored(t *testing.T) {
	doc := "\xEF\xBB\xBF[" + record(uuid.New().String(), "coding", sampleTimeDate, "dev") + "]"
	cat, err := NewBuilder().Build([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
}

func TestBuild_StrictIDsByDefault(t *testing.T) {
	doc := "[" + record("a1", "coding", sampleTimeDate, "dev") + "]"

	_, err := NewBuilder().Build([]byte(doc))
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestBuild_AtomicFailure(t *testing.T) {
	good := uuid.New().String()
	doc := "[" +
		record(good, "coding", sampleTimeDate, "dev") + "," +
		record("b2", "x", sampleTimeDate, "dev") + "," +
		record("c3", "review", sampleTimeDate, "") +
		"]"

	cat, err := NewBuilder(WithIDPolicy(PermissiveIDs{})).Build([]byte(doc))
	assert.Nil(t, cat, "no partial catalog on failure")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTitleFormat)

	var rerr *RecordError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, 1, rerr.Index)
	assert.Equal(t, "b2", rerr.ID)
	assert.Contains(t, err.Error(), `record 1 (id "b2")`)
	assert.False(t, errors.Is(err, ErrInvalidTagFormat), "later records are not validated")
}

func TestBuild_LenientSkipsInvalid(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	doc := "[" +
		record("a1", "coding", sampleTimeDate, "dev") + "," +
		record("b2", "x", sampleTimeDate, "dev") + "," +
		record("c3", "review", sampleTimeDate, "ops") +
		"]"

	cat, err := NewBuilder(
		WithIDPolicy(PermissiveIDs{}),
		WithBatchPolicy(BatchLenient),
		WithLogger(zap.New(core)),
	).Build([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"a1", "c3"}, cat.Keys())
	skipped := cat.Skipped()
	require.Len(t, skipped, 1)
	assert.Equal(t, 1, skipped[0].Index)
	assert.ErrorIs(t, skipped[0], ErrInvalidTitleFormat)
	assert.Equal(t, 1, logs.FilterMessage("Skipping invalid record").Len())
}

func TestBuild_CollectReportsEveryFailure(t *testing.T) {
	doc := "[" +
		record("a1", "x", sampleTimeDate, "dev") + "," +
		record("b2", "coding", sampleTimeDate, "dev") + "," +
		record("c3", "review", sampleTimeDate, "!!") +
		"]"

	cat, err := NewBuilder(WithIDPolicy(PermissiveIDs{}), WithBatchPolicy(BatchCollect)).Build([]byte(doc))
	assert.Nil(t, cat)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTitleFormat)
	assert.ErrorIs(t, err, ErrInvalidTagFormat)
	assert.Contains(t, err.Error(), "record 0")
	assert.Contains(t, err.Error(), "record 2")
}

func TestBuild_DuplicateKeyFirstWins(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	doc := "[" +
		record("a1", "coding", sampleTimeDate, "dev") + "," +
		record("a1", "review", "01:00:00\nTue, 13/05 10:00:00 – 11:00:00", "ops") +
		"]"

	cat, err := NewBuilder(WithIDPolicy(PermissiveIDs{}), WithLogger(zap.New(core))).Build([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, 1, cat.Len())

	task, _ := cat.Get("a1")
	assert.Equal(t, TaskTitle("coding"), task.Title)
	assert.Equal(t, "dev", task.Tag.String())
	assert.Equal(t, 1, cat.Duplicates())
	assert.Equal(t, 1, logs.FilterMessage("Discarding duplicate key").Len())
}

func TestBuild_KeyByTitle(t *testing.T) {
	doc := "[" +
		record("a1", "Coding", sampleTimeDate, "dev") + "," +
		record("b2", "coding ", sampleTimeDate, "ops") + "," +
		record("c3", "review", sampleTimeDate, "dev") +
		"]"

	cat, err := NewBuilder(WithIDPolicy(PermissiveIDs{}), WithKeyMode(KeyByTitle)).Build([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []string{"coding", "review"}, cat.Keys())

	task, _ := cat.Get("coding")
	assert.Equal(t, TaskID("a1"), task.ID)
}

func TestBuild_OvernightAndOptionalTags(t *testing.T) {
	doc := "[" + record("n1", "deploy", "\nSat, 06/07 23:00:00 – 01:00:00", "") + "]"

	_, err := NewBuilder(WithIDPolicy(PermissiveIDs{})).Build([]byte(doc))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	cat, err := NewBuilder(
		WithIDPolicy(PermissiveIDs{}),
		WithRangePolicy(RangeOvernight),
		WithOptionalTags(),
	).Build([]byte(doc))
	require.NoError(t, err)

	task, ok := cat.Get("n1")
	require.True(t, ok)
	assert.Equal(t, 2*time.Hour, task.Timeline.Total)
	assert.Nil(t, task.Timeline.Effective)
	assert.False(t, task.Tag.IsPresent())
}

func TestCatalog_All(t *testing.T) {
	cat := NewCatalog(KeyByID)
	for _, id := range []string{"c", "a", "b"} {
		task, err := (&Assembler{IDs: PermissiveIDs{}}).Assemble(RawRecord{ID: id, Name: "coding", TimeDate: sampleTimeDate, Tags: "dev"})
		require.NoError(t, err)
		assert.True(t, cat.Insert(task))
	}

	var keys []string
	for key, task := range cat.All() {
		keys = append(keys, key)
		assert.Equal(t, TaskID(key), task.ID)
	}
	assert.Equal(t, []string{"a", "b", "c"}, keys)

	for key := range cat.All() {
		assert.Equal(t, "a", key)
		break
	}
}
