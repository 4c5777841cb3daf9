// Package datefmt parses and displays the loose date strings used across the
// portfolio dataset: bare years ("2015"), year-months ("2023-01"), full ISO
// dates and the "Present" sentinel.
package datefmt

import (
	"regexp"
	"strings"
	"time"
)

// Present marks an ongoing range end.
const Present = "Present"

var (
	yearRe      = regexp.MustCompile(`^\d{4}$`)
	yearMonthRe = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// IsOngoing reports whether an end marker means "still ongoing".
func IsOngoing(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == Present
}

// Parse converts a date string to a time. Bare years become 1 January of that
// year and year-months the first of the month.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	switch {
	case yearRe.MatchString(s):
		t, err := time.Parse("2006", s)
		return t, err == nil
	case yearMonthRe.MatchString(s):
		t, err := time.Parse("2006-01", s)
		return t, err == nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, time.RFC3339Nano} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Format renders a date string as "Month Year". Bare years, the Present
// sentinel and anything unparseable are returned unchanged.
func Format(s string) string {
	if s == Present || yearRe.MatchString(s) {
		return s
	}
	t, ok := Parse(s)
	if !ok {
		return s
	}
	return t.Format("January 2006")
}

// FormatEnd is Format for range ends, where nil means ongoing.
func FormatEnd(s *string) string {
	if s == nil || IsOngoing(*s) {
		return Present
	}
	return Format(*s)
}

// Year returns the year part of a date string ("2019-12-02" -> "2019").
func Year(s string) string {
	if i := strings.IndexByte(s, '-'); i >= 0 {
		return s[:i]
	}
	return s
}

// YearEnd is Year for range ends, where nil means ongoing.
func YearEnd(s *string) string {
	if s == nil || IsOngoing(*s) {
		return Present
	}
	return Year(*s)
}
