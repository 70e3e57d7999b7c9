package counter

import (
	"fmt"
	"time"

	"footfall-server/models"
	"footfall-server/util"
)

// CounterApiClientMock serves visitor records from a JSON fixture on disk.
type CounterApiClientMock struct {
	fixturePath string
}

// NewCounterApiClientMock creates a new instance of CounterApiClientMock
func NewCounterApiClientMock(fixturePath string) *CounterApiClientMock {
	return &CounterApiClientMock{fixturePath: fixturePath}
}

// GetVisitorRecords returns the fixture's records falling inside [from, to].
func (c *CounterApiClientMock) GetVisitorRecords(from, to time.Time) ([]models.VisitorRecord, error) {
	records, err := util.ReadVisitorRecordsFromJSON(c.fixturePath)
	if err != nil {
		fmt.Println("Could not read visitor records from json")
		return nil, err
	}

	// The window is day-inclusive: anything before the end of to's day stays.
	windowEnd := to.AddDate(0, 0, 1)
	var filtered []models.VisitorRecord
	for _, rec := range records {
		if rec.Timestamp.Before(from) || !rec.Timestamp.Before(windowEnd) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered, nil
}
