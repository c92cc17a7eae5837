package timesheet

import "strings"

// A tiny backtracking combinator set for fixed-shape text. Each rule either
// consumes input and returns the matched text, or leaves the scanner where
// it was and reports false.

type scanner struct {
	src string
	pos int
}

func (s *scanner) rest() string {
	return s.src[s.pos:]
}

type rule func(s *scanner) (string, bool)

var (
	clock     = seq(digits(2), lit(":"), digits(2), lit(":"), digits(2))
	lineBreak = oneOf(lit("\r\n"), lit("\n"), lit(`\n`))
	blanks    = many1(func(c byte) bool { return c == ' ' || c == '\t' })
)

func lit(want string) rule {
	return func(s *scanner) (string, bool) {
		if !strings.HasPrefix(s.rest(), want) {
			return "", false
		}
		s.pos += len(want)
		return want, true
	}
}

func class(n int, ok func(byte) bool) rule {
	return func(s *scanner) (string, bool) {
		rest := s.rest()
		if len(rest) < n {
			return "", false
		}
		for i := 0; i < n; i++ {
			if !ok(rest[i]) {
				return "", false
			}
		}
		s.pos += n
		return rest[:n], true
	}
}

func digits(n int) rule  { return class(n, isASCIIDigit) }
func letters(n int) rule { return class(n, isASCIILetter) }

func many1(ok func(byte) bool) rule {
	return func(s *scanner) (string, bool) {
		rest := s.rest()
		n := 0
		for n < len(rest) && ok(rest[n]) {
			n++
		}
		if n == 0 {
			return "", false
		}
		s.pos += n
		return rest[:n], true
	}
}

func seq(rules ...rule) rule {
	return func(s *scanner) (string, bool) {
		start := s.pos
		for _, r := range rules {
			if _, ok := r(s); !ok {
				s.pos = start
				return "", false
			}
		}
		return s.src[start:s.pos], true
	}
}

func oneOf(rules ...rule) rule {
	return func(s *scanner) (string, bool) {
		for _, r := range rules {
			if m, ok := r(s); ok {
				return m, true
			}
		}
		return "", false
	}
}

func optional(r rule) rule {
	return func(s *scanner) (string, bool) {
		m, _ := r(s)
		return m, true
	}
}

// until consumes everything before the first position where stop matches.
// stop itself is not consumed.
func until(stop rule) rule {
	return func(s *scanner) (string, bool) {
		start := s.pos
		for i := start; i <= len(s.src); i++ {
			s.pos = i
			if _, ok := stop(s); ok {
				s.pos = i
				return s.src[start:i], true
			}
		}
		s.pos = start
		return "", false
	}
}

func capture(dst *string, r rule) rule {
	return func(s *scanner) (string, bool) {
		m, ok := r(s)
		if ok {
			*dst = m
		}
		return m, ok
	}
}

func eof(s *scanner) (string, bool) {
	return "", s.pos == len(s.src)
}
