package counter

import (
	"net/url"
	"time"

	"footfall-server/api"
	"footfall-server/models"
	"footfall-server/util"
)

type recordsWire struct {
	Records []models.VisitorRecord `json:"records"`
}

// CounterApiClient embeds the common HTTPClient
type CounterApiClient struct {
	*api.HTTPClient
}

// NewCounterApiClient creates a new instance of CounterApiClient
func NewCounterApiClient(httpClient *api.HTTPClient) *CounterApiClient {
	return &CounterApiClient{
		HTTPClient: httpClient,
	}
}

// GetVisitorRecords retrieves every observation in the inclusive range.
func (c *CounterApiClient) GetVisitorRecords(from, to time.Time) ([]models.VisitorRecord, error) {
	query := url.Values{}
	query.Set("from", util.FormatAPIDate(from))
	query.Set("to", util.FormatAPIDate(to))

	var wire recordsWire
	if err := c.Request("GET", "/records", query, nil, nil, &wire); err != nil {
		return nil, err
	}
	return wire.Records, nil
}
