package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"footfall-server/analytics"
	"footfall-server/models"
	"footfall-server/models/weather"
	"footfall-server/util"
)

func newTestInsights() (*DayInsightsService, *fakeWeatherFetcher) {
	fetcher := &fakeWeatherFetcher{}
	overlay := NewWeatherOverlayService(&fakeWeatherCache{}, fetcher)
	return NewDayInsightsService(overlay), fetcher
}

// waitForOverlay blocks until the latest weather pass has committed.
func waitForOverlay(t *testing.T, overlay *WeatherOverlayService) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for overlay.Loading() {
		if time.Now().After(deadline) {
			t.Fatal("weather overlay pass did not settle in time")
		}
		time.Sleep(2 * time.Millisecond)
	}
}

func visitorRecord(ts string, entering int) models.VisitorRecord {
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return models.VisitorRecord{
		Timestamp: parsed,
		Metrics:   models.VisitorMetrics{MenEntering: entering},
	}
}

func testRecords() []models.VisitorRecord {
	return []models.VisitorRecord{
		visitorRecord("2024-03-04T08:00:00Z", 9),
		visitorRecord("2024-03-01T08:00:00Z", 5),
		visitorRecord("2024-03-01T09:00:00Z", 7),
	}
}

func TestDayInsights_SeedsEarliestDateAsPrimary(t *testing.T) {
	svc, _ := newTestInsights()

	svc.SetRecords(testRecords(), false, nil)

	primary, ok := svc.PrimaryDate()
	if assert.True(t, ok, "primary date should be seeded when data arrives") {
		assert.Equal(t, "2024-03-01", primary.Format("2006-01-02"))
	}

	// A later data refresh must not steal an explicit user choice.
	svc.SelectPrimaryDate(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	svc.SetRecords(testRecords(), false, nil)
	primary, _ = svc.PrimaryDate()
	assert.Equal(t, "2024-03-04", primary.Format("2006-01-02"))
}

func TestDayInsights_SelectableDatesAscending(t *testing.T) {
	svc, _ := newTestInsights()
	svc.SetRecords(testRecords(), false, nil)

	dates := svc.SelectableDates()

	assert.Len(t, dates, 2)
	assert.Equal(t, "2024-03-01", dates[0].Format("2006-01-02"))
	assert.Equal(t, "2024-03-04", dates[1].Format("2006-01-02"))
}

func TestDayInsights_ComparisonSurfacesUpstreamError(t *testing.T) {
	svc, _ := newTestInsights()
	loadErr := errors.New("counter backend unreachable")

	svc.SetRecords(nil, false, loadErr)

	result, err := svc.Comparison()
	assert.Nil(t, result)
	assert.Equal(t, loadErr, err)
}

func TestDayInsights_ComparisonRowsForPrimaryOnly(t *testing.T) {
	svc, _ := newTestInsights()
	svc.SetRecords(testRecords(), false, nil)

	result, err := svc.Comparison()
	assert.NoError(t, err)
	assert.Len(t, result.Rows, 1)
	assert.Equal(t, "01/03/2024", result.Rows[0].DisplayDate)
	assert.Equal(t, 12, result.Rows[0].Metrics.TotalEntering())
	assert.False(t, result.Benchmarking)
	assert.Len(t, result.PrimaryRecords, 2)
}

func TestDayInsights_AverageModeAddsAveragedRow(t *testing.T) {
	svc, _ := newTestInsights()
	// Three historical Mondays at 08:00 with 4, 6 and 8 entering; the
	// primary Monday itself has its own literal data.
	records := []models.VisitorRecord{
		visitorRecord("2024-02-12T08:00:00Z", 4),
		visitorRecord("2024-02-19T08:00:00Z", 6),
		visitorRecord("2024-02-26T08:00:00Z", 8),
		visitorRecord("2024-03-04T08:00:00Z", 10),
	}
	svc.SetRecords(records, false, nil)
	svc.SelectPrimaryDate(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))

	assert.True(t, svc.SetAverageComparisonEnabled(true))

	result, err := svc.Comparison()
	assert.NoError(t, err)
	assert.Equal(t, analytics.BENCHMARK_AVERAGE, result.Mode)
	assert.True(t, result.Benchmarking)
	assert.Len(t, result.Rows, 2)

	averaged := result.Rows[1]
	assert.True(t, averaged.Averaged)
	// Mean over the four Mondays at 08:00: round(28/4) = 7.
	assert.Equal(t, 7, averaged.Metrics.TotalEntering())

	assert.NotEmpty(t, result.AveragedHours)
	assert.Empty(t, result.PrimaryRecords)
}

func TestDayInsights_DateModeLifecycle(t *testing.T) {
	svc, _ := newTestInsights()
	svc.SetRecords(testRecords(), false, nil)

	assert.True(t, svc.SetDateComparisonEnabled(true))
	assert.False(t, svc.SetAverageComparisonEnabled(true), "toggles are mutually exclusive")

	assert.True(t, svc.SelectBenchmarkDate(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)))

	result, err := svc.Comparison()
	assert.NoError(t, err)
	assert.Len(t, result.Rows, 2)
	assert.Equal(t, "04/03/2024", result.Rows[1].DisplayDate)

	// Picking a new primary clears the benchmark date but keeps the mode.
	svc.SelectPrimaryDate(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, analytics.BENCHMARK_DATE, svc.Mode())
	_, set := svc.BenchmarkDate()
	assert.False(t, set)

	result, err = svc.Comparison()
	assert.NoError(t, err)
	assert.Len(t, result.Rows, 1)
}

func TestDayInsights_WeatherFailureKeepsAnalysisUsable(t *testing.T) {
	// The fake fetcher has no canned responses, so the seeded pass fails.
	svc, _ := newTestInsights()
	svc.SetRecords(testRecords(), false, nil)

	waitForOverlay(t, svc.overlay)

	result, err := svc.Comparison()
	assert.NoError(t, err)
	assert.Len(t, result.Rows, 1, "visitor analysis must survive a weather failure")
	assert.Equal(t, 12, result.Rows[0].Metrics.TotalEntering())
	assert.Nil(t, result.Rows[0].Weather)
	assert.Equal(t, "no data for 2024-03-01", result.WeatherError)
	assert.False(t, result.WeatherLoading)
}

func TestDayInsights_ConcurrentSelectionsSettleOnLatestDate(t *testing.T) {
	days := []string{"2024-03-01", "2024-03-04", "2024-03-05", "2024-03-06", "2024-03-07"}
	responses := make(map[string]*weather.FetchResponse, len(days))
	for _, d := range days {
		responses[d] = okResponse(d)
	}
	fetcher := &fakeWeatherFetcher{responses: responses}
	overlay := NewWeatherOverlayService(&fakeWeatherCache{}, fetcher)
	svc := NewDayInsightsService(overlay)
	svc.SetRecords(testRecords(), false, nil)

	var wg sync.WaitGroup
	for _, d := range days {
		wg.Add(1)
		go func(day time.Time) {
			defer wg.Done()
			svc.SelectPrimaryDate(day)
		}(date(d))
	}
	wg.Wait()

	waitForOverlay(t, overlay)

	// Whichever selection landed last, the committed lookup must match it.
	primary, ok := svc.PrimaryDate()
	assert.True(t, ok)
	lookup := overlay.Lookup()
	assert.Len(t, lookup, 1)
	assert.Contains(t, lookup, util.FormatAPIDate(primary))
}

func TestDayInsights_LoadingDataDoesNotSeedPrimary(t *testing.T) {
	svc, _ := newTestInsights()

	svc.SetRecords(nil, true, nil)

	_, ok := svc.PrimaryDate()
	assert.False(t, ok)

	loading, err := svc.UpstreamStatus()
	assert.True(t, loading)
	assert.NoError(t, err)
}
