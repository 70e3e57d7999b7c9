package util

import (
	"time"

	"footfall-server/config"
)

// FormatDisplayDate renders the user-facing date string. Two timestamps
// belong to the same day exactly when their display strings match.
func FormatDisplayDate(t time.Time) string {
	return t.Format(config.DISPLAY_DATE_LAYOUT)
}

// FormatAPIDate renders the normalized key used for weather lookups.
func FormatAPIDate(t time.Time) string {
	return t.Format(config.API_DATE_LAYOUT)
}

func FormatHour(t time.Time) string {
	return t.Format(config.HOUR_LAYOUT)
}

func ParseAPIDate(s string) (time.Time, error) {
	return time.Parse(config.API_DATE_LAYOUT, s)
}

// SameDisplayDay reports whether two timestamps fall on the same calendar
// day under the display format.
func SameDisplayDay(a, b time.Time) bool {
	return FormatDisplayDate(a) == FormatDisplayDate(b)
}

// TruncateToDay drops the clock time, keeping the timestamp's location.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
