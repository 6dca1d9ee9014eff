package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
)

// Layouts accepted by ParseTimestamp, tried in order. The first one is the
// layout FormatTimestamp writes; the rest cover rows written by older
// versions that stored naive local timestamps or bare dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	constants.DateFormat,
}

// StartOfDay returns midnight of t's calendar date in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekStart returns midnight of the Monday on or before t.
// If t is itself a Monday, that Monday is returned.
func WeekStart(t time.Time) time.Time {
	// Weekday counts from Sunday; shift so Monday is 0 and Sunday is 6.
	offset := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t).AddDate(0, 0, -offset)
}

// SameDay reports whether a and b fall on the same calendar date,
// ignoring the time of day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SameWeek reports whether a and b share the same Monday-anchored week.
func SameWeek(a, b time.Time) bool {
	return SameDay(WeekStart(a), WeekStart(b))
}

// NextDay reports whether b's calendar date is exactly one day after a's.
func NextDay(a, b time.Time) bool {
	return SameDay(StartOfDay(a).AddDate(0, 0, 1), b)
}

// NextWeek reports whether b falls in the week immediately following a's week.
func NextWeek(a, b time.Time) bool {
	return SameDay(WeekStart(a).AddDate(0, 0, 7), WeekStart(b))
}

// FormatTimestamp renders t in the storage text format.
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ParseTimestamp parses a stored timestamp. Values without an explicit
// offset are interpreted in the local timezone.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
