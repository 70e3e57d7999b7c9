package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"footfall-server/models"
)

// Mondays: 2024-02-12, 2024-02-19, 2024-02-26. 2024-03-04 is the
// reference Monday under test.
func mondayRecords() []models.VisitorRecord {
	return []models.VisitorRecord{
		rec("2024-02-12T08:00:00Z", 4),
		rec("2024-02-19T08:00:00Z", 6),
		rec("2024-02-26T08:00:00Z", 8),
		rec("2024-02-19T10:00:00Z", 5),
		// A Friday that must not leak into the Monday profile.
		rec("2024-03-01T08:00:00Z", 100),
	}
}

func TestAverageByWeekday_MeanOverHistoricalMondays(t *testing.T) {
	reference := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	profile := AverageByWeekday(reference, mondayRecords())

	assert.Equal(t, time.Monday, profile.Weekday)
	assert.Len(t, profile.Entries, 2, "only hours with historical occurrences")

	assert.Equal(t, "08:00", profile.Entries[0].Hour)
	assert.Equal(t, 6, profile.Entries[0].Metrics.MenEntering, "mean of 4, 6, 8")

	assert.Equal(t, "10:00", profile.Entries[1].Hour)
	assert.Equal(t, 5, profile.Entries[1].Metrics.MenEntering)
}

func TestAverageByWeekday_SyntheticTimestampsUseReferenceDate(t *testing.T) {
	reference := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	profile := AverageByWeekday(reference, mondayRecords())

	for _, entry := range profile.Entries {
		assert.Equal(t, 2024, entry.Timestamp.Year())
		assert.Equal(t, time.March, entry.Timestamp.Month())
		assert.Equal(t, 4, entry.Timestamp.Day())
	}
	assert.Equal(t, 8, profile.Entries[0].Timestamp.Hour())
}

func TestAverageByWeekday_RoundsEachMetricIndependently(t *testing.T) {
	reference := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	records := []models.VisitorRecord{
		{
			Timestamp: time.Date(2024, 2, 12, 8, 0, 0, 0, time.UTC),
			Metrics:   models.VisitorMetrics{MenEntering: 1, WomenEntering: 2, Passersby: 1},
		},
		{
			Timestamp: time.Date(2024, 2, 19, 8, 0, 0, 0, time.UTC),
			Metrics:   models.VisitorMetrics{MenEntering: 2, WomenEntering: 3, Passersby: 0},
		},
	}

	profile := AverageByWeekday(reference, records)

	assert.Len(t, profile.Entries, 1)
	m := profile.Entries[0].Metrics
	// round(3/2)=2, round(5/2)=3 (each rounds on its own), round(1/2)=1
	assert.Equal(t, 2, m.MenEntering)
	assert.Equal(t, 3, m.WomenEntering)
	assert.Equal(t, 1, m.Passersby)
}

func TestAverageByWeekday_NoMatchingWeekday(t *testing.T) {
	// Reference is a Sunday; the stream holds only Mondays and a Friday.
	reference := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)

	profile := AverageByWeekday(reference, mondayRecords())

	assert.Equal(t, time.Sunday, profile.Weekday)
	assert.Empty(t, profile.Entries)
	assert.Equal(t, models.VisitorMetrics{}, profile.DailyTotal())
}

func TestHourlyAverageProfile_DailyTotal(t *testing.T) {
	reference := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	profile := AverageByWeekday(reference, mondayRecords())

	// 08:00 mean 6 + 10:00 mean 5
	assert.Equal(t, 11, profile.DailyTotal().TotalEntering())
}
