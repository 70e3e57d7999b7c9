package meteo

import (
	"fmt"
	"time"

	"footfall-server/models/weather"
	"footfall-server/util"
)

// MeteoApiClientMock serves weather from a JSON fixture on disk, filtered
// to the requested range.
type MeteoApiClientMock struct {
	fixturePath string
}

// NewMeteoApiClientMock creates a new instance of MeteoApiClientMock
func NewMeteoApiClientMock(fixturePath string) *MeteoApiClientMock {
	return &MeteoApiClientMock{fixturePath: fixturePath}
}

// FetchWeatherData returns the fixture's entries falling inside [start, end].
func (c *MeteoApiClientMock) FetchWeatherData(start, end time.Time) (*weather.FetchResponse, error) {
	fixture, err := util.ReadWeatherResponseFromJSON(c.fixturePath)
	if err != nil {
		fmt.Println("Could not read weather response from json")
		return nil, err
	}

	startKey := util.FormatAPIDate(start)
	endKey := util.FormatAPIDate(end)

	resp := &weather.FetchResponse{
		Status:  fixture.Status,
		Message: fixture.Message,
		Lookup:  make(map[string]weather.WeatherInfo),
	}
	for key, info := range fixture.Lookup {
		if key >= startKey && key <= endKey {
			resp.Lookup[key] = info
		}
	}
	return resp, nil
}
