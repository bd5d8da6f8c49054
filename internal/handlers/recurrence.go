package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/crucial707/cronlens/internal/metrics"
	"github.com/crucial707/cronlens/internal/recurrence"
)

// RecurrenceHandler exposes the recurrence describer.
type RecurrenceHandler struct{}

// Describe renders the description of a recurrence config. Fields missing
// from the body keep their defaults (daily at 12:00 pm on day 1).
func (h *RecurrenceHandler) Describe(w http.ResponseWriter, r *http.Request) {
	cfg := recurrence.DefaultConfig()
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		JSONError(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	metrics.IncDescription(string(cfg.Pattern))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"config":      cfg,
		"description": recurrence.Describe(cfg),
	})
}

// Options lists the values a recurrence form offers.
func (h *RecurrenceHandler) Options(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"patterns":      recurrence.Patterns(),
		"meridiems":     recurrence.Meridiems(),
		"weekdays":      recurrence.WeekdayNames,
		"days_of_month": recurrence.DaysOfMonth(),
		"default":       recurrence.DefaultConfig(),
	})
}
