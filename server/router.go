package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// DayHandler is the handler surface the router wires up.
type DayHandler interface {
	GetDays(w http.ResponseWriter, r *http.Request)
	GetComparison(w http.ResponseWriter, r *http.Request)
	SelectPrimaryDate(w http.ResponseWriter, r *http.Request)
	SelectBenchmarkDate(w http.ResponseWriter, r *http.Request)
	SetComparisonMode(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	dayHandler DayHandler
	router     *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	dayHandler DayHandler,
	router *mux.Router) *Router {
	return &Router{
		dayHandler: dayHandler,
		router:     router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/days", r.dayHandler.GetDays).Methods("GET")
	r.router.HandleFunc("/v1/days/comparison", r.dayHandler.GetComparison).Methods("GET")

	// expects ?date={YYYY-MM-DD}
	r.router.HandleFunc("/v1/selection/primary", r.dayHandler.SelectPrimaryDate).Methods("POST")
	r.router.HandleFunc("/v1/selection/benchmark", r.dayHandler.SelectBenchmarkDate).Methods("POST")
	// expects ?mode={none|date|average}
	r.router.HandleFunc("/v1/selection/mode", r.dayHandler.SetComparisonMode).Methods("POST")

	r.router.HandleFunc("/ping", r.dayHandler.Ping).Methods("GET")
}
