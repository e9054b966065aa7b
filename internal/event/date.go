package event

import "time"

// ISODateFormat is the layout used for stored calendar date markers.
const ISODateFormat = "2006-01-02"

// ParseISODate parses a stored calendar date marker ("2026-08-29").
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODateFormat, s)
}

// FormatISODate renders t as a calendar date marker.
func FormatISODate(t time.Time) string {
	return t.Format(ISODateFormat)
}

// DateFromEpochSeconds converts an epoch-seconds override into a UTC calendar
// date. Used to replay the game for a historical day.
func DateFromEpochSeconds(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// EpochDay returns the number of whole days between the Unix epoch and t's
// UTC calendar date.
func EpochDay(t time.Time) int64 {
	u := t.UTC()
	midnight := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.Unix() / 86400
}

// SameMonthDay reports whether a and b fall on the same month and day of the
// calendar, ignoring the year.
func SameMonthDay(a, b time.Time) bool {
	return a.Month() == b.Month() && a.Day() == b.Day()
}
