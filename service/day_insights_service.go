package services

import (
	"sync"
	"time"

	"footfall-server/analytics"
	"footfall-server/models"
	"footfall-server/util"
)

// ComparisonResult is the assembled state handed to presentation: the
// comparison rows, the hourly detail backing them, and the weather
// overlay status. Weather failures ride alongside the analysis; they
// never replace it.
type ComparisonResult struct {
	Rows         []models.ComparableDayView `json:"rows"`
	Mode         analytics.BenchmarkMode    `json:"mode"`
	Benchmarking bool                       `json:"benchmarking"`

	PrimaryRecords []models.VisitorRecord    `json:"primary_records,omitempty"`
	AveragedHours  []analytics.HourlyAverage `json:"averaged_hours,omitempty"`

	WeatherLoading bool   `json:"weather_loading"`
	WeatherError   string `json:"weather_error,omitempty"`
}

// DayInsightsService is the session root: it owns the record stream
// handed in by the upstream loader, the benchmark selection, and the
// memoized derivations over them. All aggregation is synchronous; the
// weather overlay is the only asynchronous collaborator.
type DayInsightsService struct {
	mu sync.Mutex

	records []models.VisitorRecord
	loading bool
	loadErr error
	version uint64

	state   *analytics.BenchmarkState
	overlay *WeatherOverlayService

	// memoized derivations, keyed on the inputs that invalidate them
	dailyVersion uint64
	daily        []models.DailyEntry

	profileVersion uint64
	profileRef     string
	profile        analytics.HourlyAverageProfile
}

// NewDayInsightsService constructs the session with its weather overlay.
func NewDayInsightsService(overlay *WeatherOverlayService) *DayInsightsService {
	return &DayInsightsService{
		state:   analytics.NewBenchmarkState(),
		overlay: overlay,
		version: 1,
	}
}

// SetRecords replaces the upstream record stream along with its loading
// flag and error value. The first time records arrive with no primary
// date chosen, the earliest available date becomes the default.
func (s *DayInsightsService) SetRecords(records []models.VisitorRecord, loading bool, err error) {
	s.mu.Lock()
	s.records = records
	s.loading = loading
	s.loadErr = err
	s.version++

	seeded := false
	if _, ok := s.state.PrimaryDate(); !ok && err == nil && !loading {
		daily := s.dailyEntriesLocked()
		if len(daily) > 0 {
			s.state.SelectPrimaryDate(daily[0].Date)
			seeded = true
		}
	}
	s.mu.Unlock()

	if seeded {
		s.refreshWeather()
	}
}

// UpstreamStatus exposes the loader's flag and error value.
func (s *DayInsightsService) UpstreamStatus() (loading bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading, s.loadErr
}

// SelectPrimaryDate switches the analyzed day and re-triggers the
// weather pass for the new date set.
func (s *DayInsightsService) SelectPrimaryDate(date time.Time) {
	s.mu.Lock()
	s.state.SelectPrimaryDate(date)
	s.mu.Unlock()
	s.refreshWeather()
}

// SelectBenchmarkDate picks the explicit comparison day. No-op outside
// date mode.
func (s *DayInsightsService) SelectBenchmarkDate(date time.Time) bool {
	s.mu.Lock()
	applied := s.state.SelectBenchmarkDate(date)
	s.mu.Unlock()
	if applied {
		s.refreshWeather()
	}
	return applied
}

// SetDateComparisonEnabled toggles explicit-date benchmarking.
func (s *DayInsightsService) SetDateComparisonEnabled(enabled bool) bool {
	s.mu.Lock()
	applied := s.state.SetDateComparisonEnabled(enabled)
	s.mu.Unlock()
	if applied {
		s.refreshWeather()
	}
	return applied
}

// SetAverageComparisonEnabled toggles weekday-average benchmarking.
func (s *DayInsightsService) SetAverageComparisonEnabled(enabled bool) bool {
	s.mu.Lock()
	applied := s.state.SetAverageComparisonEnabled(enabled)
	s.mu.Unlock()
	if applied {
		s.refreshWeather()
	}
	return applied
}

// Mode returns the current benchmark mode.
func (s *DayInsightsService) Mode() analytics.BenchmarkMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Mode()
}

// PrimaryDate returns the selected primary date, if any.
func (s *DayInsightsService) PrimaryDate() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.PrimaryDate()
}

// BenchmarkDate returns the selected benchmark date, if any.
func (s *DayInsightsService) BenchmarkDate() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.BenchmarkDate()
}

// SelectableDates lists every distinct day of the record stream,
// ascending. This is the date-picker collaborator's input.
func (s *DayInsightsService) SelectableDates() []time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	daily := s.dailyEntriesLocked()
	dates := make([]time.Time, 0, len(daily))
	for _, entry := range daily {
		dates = append(dates, entry.Date)
	}
	return dates
}

// DailyEntries returns the grouped per-day totals.
func (s *DayInsightsService) DailyEntries() []models.DailyEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dailyEntriesLocked()
}

// Comparison derives the current comparison set. An upstream load error
// yields nothing but the error; weather status is attached from the
// overlay's latest committed pass.
func (s *DayInsightsService) Comparison() (*ComparisonResult, error) {
	s.mu.Lock()

	if s.loadErr != nil {
		err := s.loadErr
		s.mu.Unlock()
		return nil, err
	}

	daily := s.dailyEntriesLocked()
	profile := s.profileLocked()
	mode := s.state.Mode()
	state := s.state
	primary, hasPrimary := state.PrimaryDate()

	lookup := s.overlay.Lookup()
	rows := analytics.ComparisonRows(state, daily, profile, lookup)

	result := &ComparisonResult{
		Rows:           rows,
		Mode:           mode,
		Benchmarking:   mode != analytics.BENCHMARK_NONE,
		WeatherLoading: s.overlay.Loading(),
		WeatherError:   s.overlay.Err(),
	}

	if hasPrimary {
		if mode == analytics.BENCHMARK_AVERAGE {
			result.AveragedHours = profile.Entries
		} else {
			result.PrimaryRecords = recordsForDay(s.records, primary)
		}
	}

	s.mu.Unlock()
	return result, nil
}

// RefreshWeather re-runs the weather pass for the current selection.
func (s *DayInsightsService) RefreshWeather() {
	s.refreshWeather()
}

// dailyEntriesLocked memoizes GroupByDay on the record version.
func (s *DayInsightsService) dailyEntriesLocked() []models.DailyEntry {
	if s.dailyVersion != s.version {
		s.daily = analytics.GroupByDay(s.records)
		s.dailyVersion = s.version
	}
	return s.daily
}

// profileLocked memoizes the weekday-average profile on the record
// version and primary date. Benchmark-mode toggles alone never recompute.
func (s *DayInsightsService) profileLocked() analytics.HourlyAverageProfile {
	primary, ok := s.state.PrimaryDate()
	if !ok {
		return analytics.HourlyAverageProfile{}
	}
	ref := util.FormatDisplayDate(primary)
	if s.profileVersion != s.version || s.profileRef != ref {
		s.profile = analytics.AverageByWeekday(primary, s.records)
		s.profileVersion = s.version
		s.profileRef = ref
	}
	return s.profile
}

// refreshWeather builds the date set of the current selection and starts
// an overlay pass: always the primary date, plus the benchmark date in
// date mode. The pass generation is reserved while still holding the
// selection lock, so pass order cannot invert selection order.
func (s *DayInsightsService) refreshWeather() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var dates []time.Time
	if primary, ok := s.state.PrimaryDate(); ok {
		dates = append(dates, primary)
		if s.state.Mode() == analytics.BENCHMARK_DATE {
			if benchmark, set := s.state.BenchmarkDate(); set {
				dates = append(dates, benchmark)
			}
		}
	}

	s.overlay.Refresh(dates)
}

func recordsForDay(records []models.VisitorRecord, day time.Time) []models.VisitorRecord {
	var out []models.VisitorRecord
	for _, rec := range records {
		if util.SameDisplayDay(rec.Timestamp, day) {
			out = append(out, rec)
		}
	}
	return out
}
