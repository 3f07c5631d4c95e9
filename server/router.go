package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// StatusHandler is the handler surface the router wires up.
type StatusHandler interface {
	Ping(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Schedule(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	statusHandler StatusHandler
	router        *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(statusHandler StatusHandler, router *mux.Router) *Router {
	return &Router{
		statusHandler: statusHandler,
		router:        router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/ping", r.statusHandler.Ping).Methods("GET")
	r.router.HandleFunc("/v1/status", r.statusHandler.Status).Methods("GET")
	// expects ?location={moulton|thorne|48|49}
	r.router.HandleFunc("/v1/schedule", r.statusHandler.Schedule).Methods("GET")
}
