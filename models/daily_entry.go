package models

import "time"

// DailyEntry is one calendar date with every metric summed across the
// records of that date. Derived data; recomputed whenever the source
// record set changes and consumed read-only downstream.
type DailyEntry struct {
	Date        time.Time      `json:"date"`
	DisplayDate string         `json:"display_date"`
	Metrics     VisitorMetrics `json:"metrics"`
}
