package services

import (
	"log"
	"sync"
	"time"

	"footfall-server/api/meteo"
	"footfall-server/models/weather"
	"footfall-server/util"
)

// WeatherCache is the read side of the weather cache. A nil info with a
// nil error is a miss. The overlay never writes; cache population belongs
// to the fetch path.
type WeatherCache interface {
	GetCachedWeather(date time.Time) (*weather.WeatherInfo, error)
}

// WeatherOverlayService gathers weather for the dates of the current
// selection. Each selection change starts a pass tagged with a generation
// number; only the latest-initiated pass may commit, so a slow stale pass
// can never clobber a newer pass's lookup table.
type WeatherOverlayService struct {
	cache   WeatherCache
	fetcher meteo.WeatherAPI

	mu         sync.Mutex
	generation uint64
	inFlight   bool
	fetchErr   string
	lookup     map[string]weather.WeatherInfo
}

// NewWeatherOverlayService constructs the overlay with its collaborators.
func NewWeatherOverlayService(cache WeatherCache, fetcher meteo.WeatherAPI) *WeatherOverlayService {
	return &WeatherOverlayService{
		cache:   cache,
		fetcher: fetcher,
		lookup:  map[string]weather.WeatherInfo{},
	}
}

// Refresh starts a new pass for the given date set and supersedes any
// pass still in flight.
func (s *WeatherOverlayService) Refresh(dates []time.Time) {
	gen := s.beginPass()
	go s.runPass(gen, dates)
}

// Loading reports whether the latest pass is still in flight.
func (s *WeatherOverlayService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Err returns the failure message of the latest completed pass, if any.
func (s *WeatherOverlayService) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetchErr
}

// Lookup returns a snapshot of the per-date weather table.
func (s *WeatherOverlayService) Lookup() map[string]weather.WeatherInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make(map[string]weather.WeatherInfo, len(s.lookup))
	for k, v := range s.lookup {
		snapshot[k] = v
	}
	return snapshot
}

func (s *WeatherOverlayService) beginPass() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.inFlight = true
	s.fetchErr = ""
	return s.generation
}

// runPass resolves each date sequentially: cache hit short-circuits the
// fetch; any fetch failure aborts the pass and discards its partial
// results. A fully successful pass replaces the lookup table wholesale.
func (s *WeatherOverlayService) runPass(gen uint64, dates []time.Time) {
	gathered := make(map[string]weather.WeatherInfo, len(dates))

	for _, date := range dates {
		key := util.FormatAPIDate(date)

		cached, err := s.cache.GetCachedWeather(date)
		if err != nil {
			log.Printf("[WeatherOverlay] Cache lookup failed for %s: %v", key, err)
		}
		if cached != nil {
			gathered[key] = *cached
			continue
		}

		resp, err := s.fetcher.FetchWeatherData(date, date)
		if err != nil {
			s.commitError(gen, err.Error())
			return
		}
		if resp.Status != weather.STATUS_OK {
			s.commitError(gen, resp.Message)
			return
		}
		if info, ok := resp.Lookup[key]; ok {
			gathered[key] = info
		} else {
			log.Printf("[WeatherOverlay] No weather entry returned for %s", key)
		}
	}

	s.commit(gen, gathered)
}

func (s *WeatherOverlayService) commit(gen uint64, gathered map[string]weather.WeatherInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		log.Printf("[WeatherOverlay] Dropping stale pass %d (current %d)", gen, s.generation)
		return
	}
	s.lookup = gathered
	s.fetchErr = ""
	s.inFlight = false
}

func (s *WeatherOverlayService) commitError(gen uint64, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		log.Printf("[WeatherOverlay] Dropping stale failed pass %d (current %d)", gen, s.generation)
		return
	}
	log.Printf("[WeatherOverlay] Pass %d failed: %s", gen, message)
	s.lookup = map[string]weather.WeatherInfo{}
	s.fetchErr = message
	s.inFlight = false
}
