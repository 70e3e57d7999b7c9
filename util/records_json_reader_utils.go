package util

import (
	"encoding/json"
	"fmt"
	"os"

	"footfall-server/models"
	"footfall-server/models/weather"
)

type visitorRecordsDocument struct {
	Records []models.VisitorRecord `json:"records"`
}

// ReadVisitorRecordsFromJSON loads a visitor record stream from JSON on disk.
func ReadVisitorRecordsFromJSON(filePath string) ([]models.VisitorRecord, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var doc visitorRecordsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal visitor records: %w", err)
	}
	return doc.Records, nil
}

// ReadWeatherResponseFromJSON loads a canned weather FetchResponse from disk.
func ReadWeatherResponseFromJSON(filePath string) (*weather.FetchResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp weather.FetchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weather response: %w", err)
	}
	if resp.Lookup == nil {
		resp.Lookup = map[string]weather.WeatherInfo{}
	}
	return &resp, nil
}

// PrintComparisonRowsPartially logs a short digest of assembled rows.
func PrintComparisonRowsPartially(rows []models.ComparableDayView) {
	for _, row := range rows {
		label := row.DisplayDate
		if row.Averaged {
			label += " (weekday avg)"
		}
		fmt.Printf("Row: %s entering=%d leaving=%d passersby=%d weather=%v\n",
			label, row.Metrics.TotalEntering(), row.Metrics.TotalLeaving(),
			row.Metrics.Passersby, row.Weather != nil)
	}
}
