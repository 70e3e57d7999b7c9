package analytics

import "time"

// BenchmarkMode is the comparison mode. A tagged mode plus clearing on
// every transition keeps "benchmark date and weekday average both active"
// unrepresentable.
type BenchmarkMode string

const (
	BENCHMARK_NONE    BenchmarkMode = "none"
	BENCHMARK_DATE    BenchmarkMode = "date"
	BENCHMARK_AVERAGE BenchmarkMode = "average"
)

// BenchmarkState tracks the primary date, the comparison mode and the
// benchmark date (valid only in date mode; it may stay unset while the
// user has not picked one yet). Not safe for concurrent use; callers
// serialize access.
type BenchmarkState struct {
	mode         BenchmarkMode
	primary      time.Time
	hasPrimary   bool
	benchmark    time.Time
	hasBenchmark bool
}

func NewBenchmarkState() *BenchmarkState {
	return &BenchmarkState{mode: BENCHMARK_NONE}
}

func (s *BenchmarkState) Mode() BenchmarkMode {
	return s.mode
}

func (s *BenchmarkState) PrimaryDate() (time.Time, bool) {
	return s.primary, s.hasPrimary
}

func (s *BenchmarkState) BenchmarkDate() (time.Time, bool) {
	return s.benchmark, s.hasBenchmark
}

// SelectPrimaryDate sets the primary date. A previously chosen benchmark
// date was picked relative to the old primary, so date mode keeps its
// toggle but drops the date, pending a new user choice.
func (s *BenchmarkState) SelectPrimaryDate(date time.Time) {
	s.primary = date
	s.hasPrimary = true
	if s.mode == BENCHMARK_DATE {
		s.clearBenchmarkDate()
	}
}

// SetDateComparisonEnabled toggles date mode on or off. Enabling is only
// possible from none (the average toggle is mutually exclusive); disabling
// only applies in date mode. Returns whether the transition applied.
func (s *BenchmarkState) SetDateComparisonEnabled(enabled bool) bool {
	if enabled {
		if s.mode != BENCHMARK_NONE {
			return false
		}
		s.mode = BENCHMARK_DATE
		s.clearBenchmarkDate()
		return true
	}
	if s.mode != BENCHMARK_DATE {
		return false
	}
	s.mode = BENCHMARK_NONE
	s.clearBenchmarkDate()
	return true
}

// SetAverageComparisonEnabled toggles weekday-average mode. Enabling
// requires a primary date (the weekday is derived from it) and is only
// possible from none. Returns whether the transition applied.
func (s *BenchmarkState) SetAverageComparisonEnabled(enabled bool) bool {
	if enabled {
		if s.mode != BENCHMARK_NONE || !s.hasPrimary {
			return false
		}
		s.mode = BENCHMARK_AVERAGE
		s.clearBenchmarkDate()
		return true
	}
	if s.mode != BENCHMARK_AVERAGE {
		return false
	}
	s.mode = BENCHMARK_NONE
	s.clearBenchmarkDate()
	return true
}

// SelectBenchmarkDate sets the benchmark date. No-op unless in date mode.
func (s *BenchmarkState) SelectBenchmarkDate(date time.Time) bool {
	if s.mode != BENCHMARK_DATE {
		return false
	}
	s.benchmark = date
	s.hasBenchmark = true
	return true
}

func (s *BenchmarkState) clearBenchmarkDate() {
	s.benchmark = time.Time{}
	s.hasBenchmark = false
}
