// Package datefmt renders calendar dates in long Spanish form
// ("15 de diciembre de 2020").
//
// Dates are read as written: a "2020-12-15" string is the 15th whatever the
// process timezone, and an RFC 3339 timestamp contributes the date part of
// its own offset. Nothing is converted through time.Local.
package datefmt

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Placeholder is returned when no date can be read.
const Placeholder = "___/___/____"

var months = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var (
	isoDatePattern   = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})(?:[T ].*)?$`)
	slashDatePattern = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`)
)

// Parse reads the calendar date in raw. The returned time is midnight UTC of
// that date.
func Parse(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}

	if m := isoDatePattern.FindStringSubmatch(trimmed); m != nil {
		t, err := time.Parse("2006-01-02", m[1])
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	if slashDatePattern.MatchString(trimmed) {
		t, err := time.Parse("2/1/2006", trimmed)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

// Format renders raw as a long date or Placeholder.
func Format(raw string) string {
	t, ok := Parse(raw)
	if !ok {
		return Placeholder
	}
	return FormatTime(t)
}

// FormatTime renders the calendar date of t in t's own location.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return Placeholder
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), MonthName(t.Month()), t.Year())
}

// Numeric renders raw as DD/MM/YYYY or Placeholder.
func Numeric(raw string) string {
	t, ok := Parse(raw)
	if !ok {
		return Placeholder
	}
	return t.Format("02/01/2006")
}

// MonthName returns the lowercase Spanish month name.
func MonthName(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return months[m-1]
}
