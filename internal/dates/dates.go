// Package dates provides canonical date parsing for date entities.
//
// Date entities carry both the literal text the user tagged ("March 1,
// 2026") and a parsed ISO-8601 value. Persistence round-trips the parsed
// value as a YYYY-MM-DD string, so everything here normalizes to that form.
package dates

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

var isoDateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValid checks if s is a valid YYYY-MM-DD date.
func IsValid(s string) bool {
	if !isoDateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse(isoDate, s)
	return err == nil
}

// Parse parses a date in one of the accepted formats and returns it
// normalized.
//
// Accepted formats:
//   - ISO-8601 date (2026-03-01)
//   - RFC3339 datetime (date part is kept)
//   - Common drafting forms: "March 1, 2026", "1 March 2026", "03/01/2026"
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("invalid date: empty")
	}

	formats := []string{
		isoDate,
		time.RFC3339,
		"January 2, 2006",
		"Jan 2, 2006",
		"2 January 2006",
		"01/02/2006",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", s)
}

// Format renders t as a YYYY-MM-DD string.
func Format(t time.Time) string {
	return t.Format(isoDate)
}
