package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

// MockDayHandler is a mock implementation of DayHandler.
type MockDayHandler struct{}

func (h *MockDayHandler) respond(w http.ResponseWriter, body string) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func (h *MockDayHandler) GetDays(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"message": "days"}`)
}

func (h *MockDayHandler) GetComparison(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"message": "comparison"}`)
}

func (h *MockDayHandler) SelectPrimaryDate(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"message": "primary"}`)
}

func (h *MockDayHandler) SelectBenchmarkDate(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"message": "benchmark"}`)
}

func (h *MockDayHandler) SetComparisonMode(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"message": "mode"}`)
}

func (h *MockDayHandler) Ping(w http.ResponseWriter, r *http.Request) {
	h.respond(w, `{"status": "pong"}`)
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	mockDayHandler := &MockDayHandler{}
	router := mux.NewRouter()
	appRouter := NewRouter(mockDayHandler, router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Get Days",
			method:     "GET",
			path:       "/v1/days",
			statusCode: http.StatusOK,
			response:   `{"message": "days"}`,
		},
		{
			name:       "Get Comparison",
			method:     "GET",
			path:       "/v1/days/comparison",
			statusCode: http.StatusOK,
			response:   `{"message": "comparison"}`,
		},
		{
			name:       "Select Primary Date",
			method:     "POST",
			path:       "/v1/selection/primary",
			statusCode: http.StatusOK,
			response:   `{"message": "primary"}`,
		},
		{
			name:       "Select Benchmark Date",
			method:     "POST",
			path:       "/v1/selection/benchmark",
			statusCode: http.StatusOK,
			response:   `{"message": "benchmark"}`,
		},
		{
			name:       "Set Comparison Mode",
			method:     "POST",
			path:       "/v1/selection/mode",
			statusCode: http.StatusOK,
			response:   `{"message": "mode"}`,
		},
		{
			name:       "Selection Routes Reject GET",
			method:     "GET",
			path:       "/v1/selection/mode",
			statusCode: http.StatusMethodNotAllowed,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
