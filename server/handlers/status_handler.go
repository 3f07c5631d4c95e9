package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"menu-bot/models"
	"menu-bot/schedule"
	"menu-bot/service"

	"go.uber.org/zap"
)

const locationQueryArg = "location"

// StatusResponse is the payload of /v1/status.
type StatusResponse struct {
	LastRun     *time.Time                     `json:"last_run,omitempty"`
	LastOutcome string                         `json:"last_outcome,omitempty"`
	Upcoming    map[string]models.ResolvedMeal `json:"upcoming"`
}

// ScheduleResponse is the payload of /v1/schedule: the declarative rule
// table for one location, both day types.
type ScheduleResponse struct {
	Location string                               `json:"location"`
	Rules    map[schedule.DayType][]schedule.Rule `json:"rules"`
}

// StatusHandler serves the serve-mode status endpoints.
type StatusHandler struct {
	notifier *service.NotifierService
	resolver *schedule.Resolver
	logger   *zap.Logger
}

// NewStatusHandler constructs a StatusHandler.
func NewStatusHandler(notifier *service.NotifierService, resolver *schedule.Resolver, logger *zap.Logger) *StatusHandler {
	return &StatusHandler{
		notifier: notifier,
		resolver: resolver,
		logger:   logger,
	}
}

// Ping answers liveness checks.
func (h *StatusHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

// Status reports the last pipeline run and the upcoming meal per location.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	response := StatusResponse{
		Upcoming: make(map[string]models.ResolvedMeal, len(models.AllLocations)),
	}

	lastRun, outcome := h.notifier.LastRun()
	if !lastRun.IsZero() {
		response.LastRun = &lastRun
		response.LastOutcome = outcome
	}
	for _, location := range models.AllLocations {
		response.Upcoming[location.Name()] = h.resolver.Resolve(location, now)
	}

	h.writeJSON(w, response)
}

// Schedule renders the rule table for the requested location.
func (h *StatusHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	location, ok := parseLocation(r.URL.Query().Get(locationQueryArg))
	if !ok {
		http.Error(w, "Invalid argument "+locationQueryArg, http.StatusBadRequest)
		return
	}

	h.writeJSON(w, ScheduleResponse{
		Location: location.Name(),
		Rules: map[schedule.DayType][]schedule.Rule{
			schedule.Weekday: schedule.RulesFor(location, schedule.Weekday),
			schedule.Weekend: schedule.RulesFor(location, schedule.Weekend),
		},
	})
}

func (h *StatusHandler) writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("error encoding response", zap.Error(err))
	}
}

func parseLocation(value string) (models.Location, bool) {
	switch strings.ToLower(value) {
	case "moulton", "48":
		return models.Moulton, true
	case "thorne", "49":
		return models.Thorne, true
	default:
		return 0, false
	}
}
