package meteo

import (
	"time"

	"footfall-server/models/weather"
)

// WeatherAPI defines the fetch operation consumed by the weather overlay.
// One logical request may cover a date range; the overlay always passes a
// single-day range (start == end).
type WeatherAPI interface {
	FetchWeatherData(start, end time.Time) (*weather.FetchResponse, error)
}
