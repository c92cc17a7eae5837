package resolver

import (
	"fmt"
	"testing"

	"github.com/dyluth/tock/pkg/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildCatalog(t *testing.T, ids ...string) *timesheet.Catalog {
	t.Helper()
	cat := timesheet.NewCatalog(timesheet.KeyByID)
	a := &timesheet.Assembler{IDs: timesheet.PermissiveIDs{}}
	for _, id := range ids {
		task, err := a.Assemble(timesheet.RawRecord{
			ID:       id,
			Name:     "coding",
			TimeDate: "\nMon, 12/05 09:00:00 – 10:00:00",
			Tags:     "dev",
		})
		require.NoError(t, err)
		cat.Insert(task)
	}
	return cat
}

func TestResolveKey(t *testing.T) {
	cat := buildCatalog(t, "abc", "abcd1234", "abcd5678", "ffff0000")

	t.Run("exact key even when short", func(t *testing.T) {
		task, err := ResolveKey(cat, "abc")
		require.NoError(t, err)
		assert.Equal(t, timesheet.TaskID("abc"), task.ID)
	})

	t.Run("unique prefix", func(t *testing.T) {
		task, err := ResolveKey(cat, "ffff")
		require.NoError(t, err)
		assert.Equal(t, timesheet.TaskID("ffff0000"), task.ID)
	})

	t.Run("too short", func(t *testing.T) {
		_, err := ResolveKey(cat, "ab")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least 4 characters")
	})

	t.Run("not found", func(t *testing.T) {
		_, err := ResolveKey(cat, "zzzz")
		assert.True(t, IsNotFoundError(err))
		assert.Equal(t, "no tasks found matching 'zzzz'", err.Error())
	})

	t.Run("ambiguous", func(t *testing.T) {
		_, err := ResolveKey(cat, "abcd")
		require.True(t, IsAmbiguousError(err))
		amb := err.(*AmbiguousError)
		assert.Equal(t, []string{"abcd1234", "abcd5678"}, amb.Matches)
	})
}

func TestFormatAmbiguousError(t *testing.T) {
	var matches []string
	for i := 0; i < 12; i++ {
		matches = append(matches, fmt.Sprintf("task-%02d", i))
	}

	msg := FormatAmbiguousError(&AmbiguousError{ShortKey: "task", Matches: matches})
	assert.Contains(t, msg, "matches 12 tasks")
	assert.Contains(t, msg, "  task-09\n")
	assert.NotContains(t, msg, "task-10\n")
	assert.Contains(t, msg, "...and 2 more")
	assert.Contains(t, msg, "Use a longer prefix")
}
