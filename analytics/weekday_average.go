package analytics

import (
	"math"
	"sort"
	"time"

	"footfall-server/models"
	"footfall-server/util"
)

// HourlyAverage is one averaged hour of a weekday profile. The timestamp
// is synthetic: the reference date combined with the historical hour
// label, so the profile displays as the reference date's typical hours.
type HourlyAverage struct {
	Timestamp time.Time             `json:"timestamp"`
	Hour      string                `json:"hour"`
	Metrics   models.VisitorMetrics `json:"metrics"`
}

// HourlyAverageProfile is the hourly-average visitor profile for the
// weekday of a reference date, ordered by hour.
type HourlyAverageProfile struct {
	Reference time.Time       `json:"reference"`
	Weekday   time.Weekday    `json:"weekday"`
	Entries   []HourlyAverage `json:"entries"`
}

// DailyTotal sums the profile's hourly metrics into one daily total.
func (p HourlyAverageProfile) DailyTotal() models.VisitorMetrics {
	var total models.VisitorMetrics
	for _, e := range p.Entries {
		total.Add(e.Metrics)
	}
	return total
}

type hourBucket struct {
	clock time.Time
	sum   models.VisitorMetrics
	count int
}

// AverageByWeekday selects every record sharing the reference date's
// weekday, buckets them by hour label and averages each metric per bucket.
// Each metric rounds to the nearest integer independently; rounding is not
// redistributed to preserve sums. Hours with no historical occurrence for
// that weekday produce no entry.
func AverageByWeekday(reference time.Time, records []models.VisitorRecord) HourlyAverageProfile {
	weekday := reference.Weekday()
	buckets := make(map[string]*hourBucket)

	for _, rec := range records {
		if rec.Timestamp.Weekday() != weekday {
			continue
		}
		hour := util.FormatHour(rec.Timestamp)
		b, ok := buckets[hour]
		if !ok {
			b = &hourBucket{clock: rec.Timestamp}
			buckets[hour] = b
		}
		b.sum.Add(rec.Metrics)
		b.count++
	}

	entries := make([]HourlyAverage, 0, len(buckets))
	for hour, b := range buckets {
		entries = append(entries, HourlyAverage{
			Timestamp: synthesizeTimestamp(reference, b.clock),
			Hour:      hour,
			Metrics:   roundedMean(b.sum, b.count),
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Hour < entries[j].Hour
	})

	return HourlyAverageProfile{
		Reference: util.TruncateToDay(reference),
		Weekday:   weekday,
		Entries:   entries,
	}
}

// synthesizeTimestamp attaches a historical clock time to the reference date.
func synthesizeTimestamp(reference, clock time.Time) time.Time {
	return time.Date(
		reference.Year(), reference.Month(), reference.Day(),
		clock.Hour(), clock.Minute(), 0, 0, reference.Location(),
	)
}

func roundedMean(sum models.VisitorMetrics, count int) models.VisitorMetrics {
	if count == 0 {
		return models.VisitorMetrics{}
	}
	return models.VisitorMetrics{
		MenEntering:     roundDiv(sum.MenEntering, count),
		WomenEntering:   roundDiv(sum.WomenEntering, count),
		MenLeaving:      roundDiv(sum.MenLeaving, count),
		WomenLeaving:    roundDiv(sum.WomenLeaving, count),
		GroupsEntering:  roundDiv(sum.GroupsEntering, count),
		SinglesEntering: roundDiv(sum.SinglesEntering, count),
		GroupsLeaving:   roundDiv(sum.GroupsLeaving, count),
		SinglesLeaving:  roundDiv(sum.SinglesLeaving, count),
		Passersby:       roundDiv(sum.Passersby, count),
	}
}

func roundDiv(sum, count int) int {
	return int(math.Round(float64(sum) / float64(count)))
}
