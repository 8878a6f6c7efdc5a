package domain

import "time"

// DayFormat is the canonical calendar-day representation used for all
// day-keyed records (fitness logs, medication logs) and for bucketing
// journal entries. Days are always interpreted in the viewer's local
// time zone, never as UTC day boundaries.
const DayFormat = "2006-01-02"

// DayKey returns the canonical calendar-day key for t in t's location.
func DayKey(t time.Time) string {
	return t.Format(DayFormat)
}

// ValidDay reports whether s is a well-formed calendar day.
func ValidDay(s string) bool {
	_, err := time.Parse(DayFormat, s)
	return err == nil
}
