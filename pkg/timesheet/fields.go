package timesheet

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Title length bounds, inclusive, counted in characters after trimming.
const (
	MinTitleLength = 3
	MaxTitleLength = 15
)

// ValidateTitle trims and lower-cases raw and checks it is a usable title.
func ValidateTitle(raw string) (TaskTitle, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: title is empty", ErrInvalidTitleFormat)
	}
	if !hasLetter(raw) {
		return "", fmt.Errorf("%w: title %q has no alphabetic character", ErrInvalidTitleFormat, raw)
	}

	title := strings.ToLower(strings.TrimSpace(raw))
	if n := utf8.RuneCountInString(title); n < MinTitleLength || n > MaxTitleLength {
		return "", fmt.Errorf("%w: title %q must be %d-%d characters, got %d",
			ErrInvalidTitleFormat, title, MinTitleLength, MaxTitleLength, n)
	}

	return TaskTitle(title), nil
}

// ValidateTag trims and lower-cases raw into a present tag.
func ValidateTag(raw string) (TaskTag, error) {
	if raw == "" {
		return NoTag(), fmt.Errorf("%w: tag is empty", ErrInvalidTagFormat)
	}

	tag := strings.ToLower(strings.TrimSpace(raw))
	if isAllPunct(tag) {
		return NoTag(), fmt.Errorf("%w: tag %q is only punctuation", ErrInvalidTagFormat, raw)
	}
	if !hasLetter(tag) {
		return NoTag(), fmt.Errorf("%w: tag %q has no alphabetic character", ErrInvalidTagFormat, raw)
	}

	return SomeTag(tag), nil
}

// OptionalTag is the lenient tag validator: a blank tag is absent rather than
// invalid. Non-blank input is checked by ValidateTag.
func OptionalTag(raw string) (TaskTag, error) {
	if strings.TrimSpace(raw) == "" {
		return NoTag(), nil
	}
	return ValidateTag(raw)
}

// IDPolicy decides which raw identifiers are acceptable and how they are stored.
type IDPolicy interface {
	ParseID(raw string) (TaskID, error)
}

// IDPolicyFunc adapts a plain function to IDPolicy.
type IDPolicyFunc func(raw string) (TaskID, error)

func (f IDPolicyFunc) ParseID(raw string) (TaskID, error) {
	return f(raw)
}

// uuidTextLength is the length of the hyphenated 8-4-4-4-12 UUID form.
const uuidTextLength = 36

// StrictIDs accepts only hyphenated 8-4-4-4-12 UUIDs and stores them in
// canonical lower-case form. Braced, urn:uuid: and bare hex forms are rejected.
type StrictIDs struct{}

func (StrictIDs) ParseID(raw string) (TaskID, error) {
	if len(raw) != uuidTextLength {
		return "", fmt.Errorf("%w: %q is not a hyphenated UUID", ErrInvalidIdentifier, raw)
	}
	u, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a UUID: %v", ErrInvalidIdentifier, raw, err)
	}
	return TaskID(u.String()), nil
}

// PermissiveIDs accepts any non-empty identifier verbatim.
type PermissiveIDs struct{}

func (PermissiveIDs) ParseID(raw string) (TaskID, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: identifier is empty", ErrInvalidIdentifier)
	}
	return TaskID(raw), nil
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func isAllPunct(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
