package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"

	"footfall-server/analytics"
	services "footfall-server/service"
	"footfall-server/util"
)

const (
	DATE_QUERY_ARG = "date"
	MODE_QUERY_ARG = "mode"
)

// DaysResponse lists the selectable dates plus the current primary.
type DaysResponse struct {
	Dates   []string `json:"dates"`
	Primary string   `json:"primary,omitempty"`
}

type selectionResponse struct {
	Applied   bool                    `json:"applied"`
	Mode      analytics.BenchmarkMode `json:"mode"`
	Primary   string                  `json:"primary,omitempty"`
	Benchmark string                  `json:"benchmark,omitempty"`
}

type DayHandler struct {
	insights *services.DayInsightsService
}

func NewDayHandler(insights *services.DayInsightsService) *DayHandler {
	return &DayHandler{insights: insights}
}

// GetDays handles GET /v1/days
func (h *DayHandler) GetDays(w http.ResponseWriter, r *http.Request) {
	if _, err := h.upstreamOK(w); err != nil {
		return
	}

	resp := DaysResponse{Dates: []string{}}
	for _, d := range h.insights.SelectableDates() {
		resp.Dates = append(resp.Dates, util.FormatAPIDate(d))
	}
	if primary, ok := h.insights.PrimaryDate(); ok {
		resp.Primary = util.FormatAPIDate(primary)
	}
	writeJSON(w, resp)
}

// GetComparison handles GET /v1/days/comparison
func (h *DayHandler) GetComparison(w http.ResponseWriter, r *http.Request) {
	result, err := h.insights.Comparison()
	if err != nil {
		log.Println("Upstream data error:", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, result)
}

// SelectPrimaryDate handles POST /v1/selection/primary?date=YYYY-MM-DD
func (h *DayHandler) SelectPrimaryDate(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDateArg(r.URL.Query(), w)
	if !ok {
		return
	}
	h.insights.SelectPrimaryDate(date)
	h.writeSelection(w, true)
}

// SelectBenchmarkDate handles POST /v1/selection/benchmark?date=YYYY-MM-DD
func (h *DayHandler) SelectBenchmarkDate(w http.ResponseWriter, r *http.Request) {
	date, ok := h.parseDateArg(r.URL.Query(), w)
	if !ok {
		return
	}
	applied := h.insights.SelectBenchmarkDate(date)
	h.writeSelection(w, applied)
}

// SetComparisonMode handles POST /v1/selection/mode?mode=none|date|average.
// Invalid transitions (mutually exclusive toggles) come back unapplied.
func (h *DayHandler) SetComparisonMode(w http.ResponseWriter, r *http.Request) {
	mode := analytics.BenchmarkMode(r.URL.Query().Get(MODE_QUERY_ARG))

	var applied bool
	switch mode {
	case analytics.BENCHMARK_NONE:
		applied = h.insights.SetDateComparisonEnabled(false) ||
			h.insights.SetAverageComparisonEnabled(false)
	case analytics.BENCHMARK_DATE:
		applied = h.insights.SetDateComparisonEnabled(true)
	case analytics.BENCHMARK_AVERAGE:
		applied = h.insights.SetAverageComparisonEnabled(true)
	default:
		http.Error(w, "Invalid argument "+MODE_QUERY_ARG, http.StatusBadRequest)
		return
	}
	h.writeSelection(w, applied)
}

// Ping handles GET /ping
func (h *DayHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

func (h *DayHandler) parseDateArg(vals url.Values, w http.ResponseWriter) (time.Time, bool) {
	date, err := util.ParseAPIDate(vals.Get(DATE_QUERY_ARG))
	if err != nil {
		http.Error(w, "Invalid argument "+DATE_QUERY_ARG, http.StatusBadRequest)
		return time.Time{}, false
	}
	return date, true
}

func (h *DayHandler) upstreamOK(w http.ResponseWriter) (bool, error) {
	if _, err := h.insights.UpstreamStatus(); err != nil {
		log.Println("Upstream data error:", err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return false, err
	}
	return true, nil
}

func (h *DayHandler) writeSelection(w http.ResponseWriter, applied bool) {
	resp := selectionResponse{
		Applied: applied,
		Mode:    h.insights.Mode(),
	}
	if primary, ok := h.insights.PrimaryDate(); ok {
		resp.Primary = util.FormatAPIDate(primary)
	}
	if benchmark, ok := h.insights.BenchmarkDate(); ok {
		resp.Benchmark = util.FormatAPIDate(benchmark)
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
