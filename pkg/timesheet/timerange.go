package timesheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// RatioSeparator is the non-ASCII clock separator some exports write instead
// of ':'. It is normalized before any time parsing.
const RatioSeparator = "∶"

// RangeDash separates the start and end clocks.
const RangeDash = "–"

// Extracted holds the fields pulled out of a raw timedate value.
type Extracted struct {
	Effective *time.Duration
	DayWeek   string
	Date      string
	Start     Clock
	End       Clock
}

// NormalizeSeparators replaces every RatioSeparator with ':'.
func NormalizeSeparators(s string) string {
	return strings.ReplaceAll(s, RatioSeparator, ":")
}

// ParseTimeRange extracts the composite timedate field. The value must match
// the whole shape
//
//	EFFECTIVE <line break> Ddd, DD/MM HH:MM:SS – HH:MM:SS
//
// or it is rejected. A malformed EFFECTIVE token only makes the effective
// duration absent.
func ParseTimeRange(raw string) (Extracted, error) {
	if raw == "" || !hasASCIIAlnum(raw) {
		return Extracted{}, fmt.Errorf("%w: %q", ErrInvalidDateTimeFormat, raw)
	}

	src := NormalizeSeparators(raw)

	var effective, day, date, start, end string
	grammar := seq(
		capture(&effective, until(lineBreak)),
		lineBreak,
		capture(&day, letters(3)),
		lit(","),
		blanks,
		capture(&date, seq(digits(2), lit("/"), digits(2))),
		blanks,
		capture(&start, clock),
		blanks,
		lit(RangeDash),
		blanks,
		capture(&end, clock),
		optional(blanks),
		eof,
	)

	sc := &scanner{src: src}
	if _, ok := grammar(sc); !ok {
		return Extracted{}, fmt.Errorf("%w: %q", ErrParseFailure, raw)
	}

	startClock, err := ParseClock(start)
	if err != nil {
		return Extracted{}, fmt.Errorf("%w: starting time: %v", ErrParseFailure, err)
	}
	endClock, err := ParseClock(end)
	if err != nil {
		return Extracted{}, fmt.Errorf("%w: ending time: %v", ErrParseFailure, err)
	}

	return Extracted{
		Effective: ParseHMS(effective),
		DayWeek:   day,
		Date:      date,
		Start:     startClock,
		End:       endClock,
	}, nil
}

// ParseClock parses a 24-hour HH:MM:SS time of day. Either separator is accepted.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04:05", NormalizeSeparators(s))
	if err != nil {
		return 0, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	return NewClock(t.Hour(), t.Minute(), t.Second())
}

// maxHMSSeconds is the longest duration, in whole seconds, time.Duration holds.
const maxHMSSeconds = uint64(math.MaxInt64 / int64(time.Second))

// ParseHMS parses an hours:minutes:seconds duration. It returns nil when the
// token does not have three unsigned decimal fields or when the duration does
// not fit in a time.Duration.
func ParseHMS(token string) *time.Duration {
	parts := strings.Split(NormalizeSeparators(strings.TrimSpace(token)), ":")
	if len(parts) != 3 {
		return nil
	}

	var fields [3]uint64
	for i, p := range parts {
		// ParseUint rejects sign prefixes
		n, err := strconv.ParseUint(p, 10, 63)
		if err != nil {
			return nil
		}
		fields[i] = n
	}

	h, m, sec := fields[0], fields[1], fields[2]
	if h > maxHMSSeconds/3600 || m > maxHMSSeconds/60 || sec > maxHMSSeconds {
		return nil
	}
	total := h*3600 + m*60 + sec
	if total > maxHMSSeconds {
		return nil
	}

	d := time.Duration(total) * time.Second
	return &d
}

func hasASCIIAlnum(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isASCIIDigit(c) || isASCIILetter(c) {
			return true
		}
	}
	return false
}

func isASCIIDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isASCIILetter(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
