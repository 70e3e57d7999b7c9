package models

import (
	"time"

	"footfall-server/models/weather"
)

// ComparableDayView is the final row handed to presentation: a date, its
// visitor metrics (raw daily totals or a summed weekday-average profile)
// and, when available, the weather entry for that date. Rows are built
// fresh per render and never mutated in place.
type ComparableDayView struct {
	Date        time.Time            `json:"date"`
	DisplayDate string               `json:"display_date"`
	Metrics     VisitorMetrics       `json:"metrics"`
	Averaged    bool                 `json:"averaged"`
	Weather     *weather.WeatherInfo `json:"weather,omitempty"`
}
