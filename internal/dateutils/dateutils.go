// Package dateutils provides common date operations used throughout the application.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutCzech      = "02.01.2006"
	DateLayoutCzechShort = "2.1.2006"
	DateLayoutISO        = "2006-01-02"
	DateLayoutSlash      = "02/01/2006"
	DateLayoutSlashShort = "2/1/2006"
)

// StatementFormats is the ordered layout list tried when parsing dates
// from bank exports. Order matters: the first layout that yields a
// valid date wins, so ambiguous strings resolve by pattern priority.
var StatementFormats = []string{
	DateLayoutCzech,
	DateLayoutCzechShort,
	DateLayoutISO,
	DateLayoutSlash,
	DateLayoutSlashShort,
}

// fallbackFormats is a generic free-form list tried after the
// statement layouts, for exports with unusual date columns.
var fallbackFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"02-01-2006",
	"2006/01/02",
	"2. 1. 2006",
	"02. 01. 2006",
}

// ParseStatementDate attempts to parse a date string using the ordered
// statement layouts, then the generic fallback list. The returned time
// carries no meaningful time-of-day component.
func ParseStatementDate(dateStr string) (time.Time, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty date string")
	}

	for _, format := range StatementFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return t, nil
		}
	}
	for _, format := range fallbackFormats {
		if t, err := time.Parse(format, cleaned); err == nil {
			return Truncate(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString trims and collapses whitespace in a date string.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	re := regexp.MustCompile(`\s+`)
	return re.ReplaceAllString(dateStr, " ")
}

// Truncate drops the time-of-day component of a date.
func Truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ToISODate formats a time.Time as an ISO date (YYYY-MM-DD).
func ToISODate(t time.Time) string {
	return t.Format(DateLayoutISO)
}

// FromISODate parses an ISO date string (YYYY-MM-DD).
func FromISODate(s string) (time.Time, error) {
	return time.Parse(DateLayoutISO, s)
}

// ToCzechFormat formats a time.Time as DD.MM.YYYY.
func ToCzechFormat(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayoutCzech)
}

// MonthKey returns the YYYY-MM bucket for time-series grouping.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// CompareDates compares two dates by day, ignoring time-of-day:
//
//	-1 if date1 is before date2
//	 0 if date1 equals date2
//	 1 if date1 is after date2
func CompareDates(date1, date2 time.Time) int {
	date1 = Truncate(date1)
	date2 = Truncate(date2)

	if date1.Before(date2) {
		return -1
	} else if date1.After(date2) {
		return 1
	}
	return 0
}
