package common

import "time"

// TimestampLayout is the layout used for change timestamps. It sorts
// lexically and contains no characters that are unsafe in file names.
const TimestampLayout = "2006-01-02T15-04-05"

// FormatTimestamp renders a time as a sortable, filename-safe UTC timestamp.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp parses a timestamp produced by FormatTimestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, time.UTC)
}
