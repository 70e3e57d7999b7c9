package analytics

import (
	"sort"

	"footfall-server/models"
	"footfall-server/util"
)

// GroupByDay collapses the flat record stream into one DailyEntry per
// distinct calendar date, metrics summed across every record of that date.
// Pure function: input order does not matter and repeated hours are fine.
// The output is ordered by date ascending and establishes the canonical
// set of selectable dates.
func GroupByDay(records []models.VisitorRecord) []models.DailyEntry {
	byDay := make(map[string]*models.DailyEntry)

	for _, rec := range records {
		key := util.FormatDisplayDate(rec.Timestamp)
		entry, ok := byDay[key]
		if !ok {
			entry = &models.DailyEntry{
				Date:        util.TruncateToDay(rec.Timestamp),
				DisplayDate: key,
			}
			byDay[key] = entry
		}
		entry.Metrics.Add(rec.Metrics)
	}

	entries := make([]models.DailyEntry, 0, len(byDay))
	for _, entry := range byDay {
		entries = append(entries, *entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
	return entries
}
