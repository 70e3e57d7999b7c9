package util

import (
	"testing"
	"time"
)

func TestDateFormattingBoundary(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	if got := FormatDisplayDate(ts); got != "01/03/2024" {
		t.Errorf("FormatDisplayDate = %q; want 01/03/2024", got)
	}
	if got := FormatAPIDate(ts); got != "2024-03-01" {
		t.Errorf("FormatAPIDate = %q; want 2024-03-01", got)
	}
	if got := FormatHour(ts); got != "09:30" {
		t.Errorf("FormatHour = %q; want 09:30", got)
	}
}

func TestSameDisplayDay(t *testing.T) {
	morning := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC)

	if !SameDisplayDay(morning, evening) {
		t.Error("Expected same display day for two hours of one date")
	}
	if SameDisplayDay(morning, nextDay) {
		t.Error("Expected different display days")
	}
}

func TestParseAPIDateRoundTrip(t *testing.T) {
	parsed, err := ParseAPIDate("2024-03-01")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := FormatAPIDate(parsed); got != "2024-03-01" {
		t.Errorf("Round trip = %q; want 2024-03-01", got)
	}
}
