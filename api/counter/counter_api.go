package counter

import (
	"time"

	"footfall-server/models"
)

// CounterAPI defines the interface for the people-counter backend that
// supplies the raw visitor record stream.
type CounterAPI interface {
	GetVisitorRecords(from, to time.Time) ([]models.VisitorRecord, error)
}
