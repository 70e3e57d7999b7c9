package services

import (
	"log"
	"time"

	"footfall-server/api/meteo"
	"footfall-server/dao/redis"
	"footfall-server/models/weather"
)

// CachingWeatherFetcher wraps the meteo API and writes successful fetch
// results through to the redis cache. This keeps cache writes out of the
// overlay coordinator, which only ever reads.
type CachingWeatherFetcher struct {
	api meteo.WeatherAPI
	dao *redis.RedisWeatherDAO
}

// NewCachingWeatherFetcher constructs the write-through wrapper.
func NewCachingWeatherFetcher(api meteo.WeatherAPI, dao *redis.RedisWeatherDAO) *CachingWeatherFetcher {
	return &CachingWeatherFetcher{api: api, dao: dao}
}

// FetchWeatherData fetches from the meteo API and caches every returned
// entry. Cache write failures are logged, not propagated; the fetch
// result is still good.
func (f *CachingWeatherFetcher) FetchWeatherData(start, end time.Time) (*weather.FetchResponse, error) {
	resp, err := f.api.FetchWeatherData(start, end)
	if err != nil {
		return nil, err
	}

	if resp.Status == weather.STATUS_OK {
		for _, info := range resp.Lookup {
			if err := f.dao.SetCachedWeather(info); err != nil {
				log.Printf("[CachingWeatherFetcher] Failed to cache weather for %s: %v", info.DateKey, err)
			}
		}
	}
	return resp, nil
}
