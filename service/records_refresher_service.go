package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"footfall-server/api/counter"
	"footfall-server/config"
)

// RecordsRefresherService periodically re-pulls the visitor record window
// from the counter API and pushes it into the insights session.
type RecordsRefresherService struct {
	counterAPI counter.CounterAPI
	insights   *DayInsightsService
	scheduler  *gocron.Scheduler
}

// NewRecordsRefresherService constructs a new refresher with dependencies.
func NewRecordsRefresherService(
	counterAPI counter.CounterAPI,
	insights *DayInsightsService,
) *RecordsRefresherService {
	return &RecordsRefresherService{
		counterAPI: counterAPI,
		insights:   insights,
	}
}

// StartPeriodicJob schedules the refresh at the given interval.
func (rr *RecordsRefresherService) StartPeriodicJob(interval time.Duration) error {
	rr.scheduler = gocron.NewScheduler(time.UTC)
	if _, err := rr.scheduler.Every(interval).Do(rr.RefreshRecords); err != nil {
		return err
	}
	rr.scheduler.StartAsync()
	log.Printf("[RecordsRefresher] Periodic job scheduled every %v", interval)
	return nil
}

// Stop halts the periodic job.
func (rr *RecordsRefresherService) Stop() {
	if rr.scheduler != nil {
		rr.scheduler.Stop()
	}
}

// RefreshRecords pulls the configured record window and hands it to the
// insights session. A failed pull is surfaced verbatim as the upstream
// error; the core performs no recovery.
func (rr *RecordsRefresherService) RefreshRecords() {
	to := time.Now()
	from := to.AddDate(0, 0, -config.RECORDS_WINDOW_DAYS)

	log.Printf("[RecordsRefresher] Pulling visitor records %s..%s",
		from.Format("2006-01-02"), to.Format("2006-01-02"))

	records, err := rr.counterAPI.GetVisitorRecords(from, to)
	if err != nil {
		log.Printf("[RecordsRefresher] Pull failed: %v", err)
		rr.insights.SetRecords(nil, false, err)
		return
	}

	log.Printf("[RecordsRefresher] Pulled %d records", len(records))
	rr.insights.SetRecords(records, false, nil)
}
