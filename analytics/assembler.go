package analytics

import (
	"time"

	"footfall-server/models"
	"footfall-server/models/weather"
	"footfall-server/util"
)

// RowsForDate produces the comparison row(s) for one date. With
// useAverage the hourly profile is summed into a single daily-total row
// tagged with the given date; otherwise every DailyEntry whose display
// date matches is returned. Each row carries the weather entry for its
// date when the lookup has one.
func RowsForDate(
	date time.Time,
	entries []models.DailyEntry,
	useAverage bool,
	profile HourlyAverageProfile,
	lookup map[string]weather.WeatherInfo,
) []models.ComparableDayView {
	if useAverage {
		return []models.ComparableDayView{{
			Date:        util.TruncateToDay(date),
			DisplayDate: util.FormatDisplayDate(date),
			Metrics:     profile.DailyTotal(),
			Averaged:    true,
			Weather:     weatherFor(date, lookup),
		}}
	}

	displayDate := util.FormatDisplayDate(date)
	var rows []models.ComparableDayView
	for _, entry := range entries {
		if entry.DisplayDate != displayDate {
			continue
		}
		rows = append(rows, models.ComparableDayView{
			Date:        entry.Date,
			DisplayDate: entry.DisplayDate,
			Metrics:     entry.Metrics,
			Weather:     weatherFor(entry.Date, lookup),
		})
	}
	return rows
}

// ComparisonRows assembles the full comparison set: primary rows, plus
// benchmark rows when date mode has a date, plus the averaged row in
// average mode.
func ComparisonRows(
	state *BenchmarkState,
	entries []models.DailyEntry,
	profile HourlyAverageProfile,
	lookup map[string]weather.WeatherInfo,
) []models.ComparableDayView {
	primary, ok := state.PrimaryDate()
	if !ok {
		return nil
	}

	rows := RowsForDate(primary, entries, false, profile, lookup)

	switch state.Mode() {
	case BENCHMARK_DATE:
		if benchmark, set := state.BenchmarkDate(); set {
			rows = append(rows, RowsForDate(benchmark, entries, false, profile, lookup)...)
		}
	case BENCHMARK_AVERAGE:
		rows = append(rows, RowsForDate(primary, entries, true, profile, lookup)...)
	}
	return rows
}

func weatherFor(date time.Time, lookup map[string]weather.WeatherInfo) *weather.WeatherInfo {
	if info, ok := lookup[util.FormatAPIDate(date)]; ok {
		return &info
	}
	return nil
}
