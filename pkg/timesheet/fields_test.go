package timesheet

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTitle_Valid(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want TaskTitle
	}{
		{"already normalized", "coding", "coding"},
		{"trimmed and lower-cased", "  Coding  ", "coding"},
		{"minimum length", "abc", "abc"},
		{"maximum length", "abcdefghijklmno", "abcdefghijklmno"},
		{"digits with a letter", "a12", "a12"},
		{"counts characters not bytes", "Café", "café"},
		{"inner spaces kept", "Code Review", "code review"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateTitle(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestValidateTitle_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"no letters", "12345"},
		{"only punctuation", "!!!"},
		{"too short", "ab"},
		{"too short after trim", "  ab  "},
		{"too long", "abcdefghijklmnop"},
		{"way too long", strings.Repeat("x", 40)},
		{"whitespace only", "     "},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ValidateTitle(tc.raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTitleFormat)
		})
	}
}

func TestValidateTag(t *testing.T) {
	t.Run("normalizes a valid tag", func(t *testing.T) {
		tag, err := ValidateTag("  DEV ")
		require.NoError(t, err)
		value, ok := tag.Get()
		assert.True(t, ok)
		assert.Equal(t, "dev", value)
	})

	for _, raw := range []string{"", "!!!", "--", "123", "   "} {
		t.Run("rejects "+raw, func(t *testing.T) {
			tag, err := ValidateTag(raw)
			assert.ErrorIs(t, err, ErrInvalidTagFormat)
			assert.False(t, tag.IsPresent())
		})
	}
}

func TestOptionalTag(t *testing.T) {
	t.Run("blank tag is absent", func(t *testing.T) {
		tag, err := OptionalTag("   ")
		require.NoError(t, err)
		assert.False(t, tag.IsPresent())
		assert.Equal(t, "-", tag.String())
	})

	t.Run("non-blank tag is still validated", func(t *testing.T) {
		_, err := OptionalTag("???")
		assert.ErrorIs(t, err, ErrInvalidTagFormat)
	})

	t.Run("valid tag is present", func(t *testing.T) {
		tag, err := OptionalTag("Ops")
		require.NoError(t, err)
		assert.Equal(t, "ops", tag.String())
	})
}

func TestStrictIDs(t *testing.T) {
	t.Run("accepts a UUID", func(t *testing.T) {
		raw := uuid.New().String()
		id, err := StrictIDs{}.ParseID(raw)
		require.NoError(t, err)
		assert.Equal(t, TaskID(raw), id)
	})

	t.Run("stores canonical form", func(t *testing.T) {
		raw := uuid.New().String()
		id, err := StrictIDs{}.ParseID(strings.ToUpper(raw))
		require.NoError(t, err)
		assert.Equal(t, TaskID(raw), id)
	})

	t.Run("rejects non-canonical encodings", func(t *testing.T) {
		u := uuid.New()
		for _, raw := range []string{
			"{" + u.String() + "}",
			"urn:uuid:" + u.String(),
			strings.ReplaceAll(u.String(), "-", ""),
		} {
			_, err := StrictIDs{}.ParseID(raw)
			assert.ErrorIs(t, err, ErrInvalidIdentifier, raw)
		}
	})

	for _, raw := range []string{"", "a1", "not-a-uuid", "1234", "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz"} {
		t.Run("rejects "+raw, func(t *testing.T) {
			_, err := StrictIDs{}.ParseID(raw)
			assert.ErrorIs(t, err, ErrInvalidIdentifier)
		})
	}
}

func TestPermissiveIDs(t *testing.T) {
	id, err := PermissiveIDs{}.ParseID(" a1 ")
	require.NoError(t, err)
	assert.Equal(t, TaskID(" a1 "), id, "identifier is kept verbatim")

	_, err = PermissiveIDs{}.ParseID("")
	assert.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestIDPolicyFunc(t *testing.T) {
	policy := IDPolicyFunc(func(raw string) (TaskID, error) {
		return TaskID("task-" + raw), nil
	})

	id, err := policy.ParseID("7")
	require.NoError(t, err)
	assert.Equal(t, TaskID("task-7"), id)
}
