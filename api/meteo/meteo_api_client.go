package meteo

import (
	"net/url"
	"time"

	"footfall-server/api"
	"footfall-server/models/weather"
	"footfall-server/util"
)

// dailyWeatherWire is the meteo API's own response shape; days are a flat
// list and get re-keyed into the lookup table here.
type dailyWeatherWire struct {
	Status  string                `json:"status"`
	Message string                `json:"message,omitempty"`
	Days    []weather.WeatherInfo `json:"days"`
}

// MeteoApiClient embeds the common HTTPClient
type MeteoApiClient struct {
	*api.HTTPClient
}

// NewMeteoApiClient creates a new instance of MeteoApiClient
func NewMeteoApiClient(httpClient *api.HTTPClient) *MeteoApiClient {
	return &MeteoApiClient{
		HTTPClient: httpClient,
	}
}

// FetchWeatherData retrieves per-day weather for the inclusive date range.
func (c *MeteoApiClient) FetchWeatherData(start, end time.Time) (*weather.FetchResponse, error) {
	query := url.Values{}
	query.Set("start_date", util.FormatAPIDate(start))
	query.Set("end_date", util.FormatAPIDate(end))

	var wire dailyWeatherWire
	if err := c.Request("GET", "/weather/daily", query, nil, nil, &wire); err != nil {
		return nil, err
	}

	resp := &weather.FetchResponse{
		Status:  wire.Status,
		Message: wire.Message,
		Lookup:  make(map[string]weather.WeatherInfo, len(wire.Days)),
	}
	for _, day := range wire.Days {
		resp.Lookup[day.DateKey] = day
	}
	return resp, nil
}
