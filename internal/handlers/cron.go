package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/crucial707/cronlens/internal/cronexpr"
	"github.com/crucial707/cronlens/internal/metrics"
)

// NormalizeResponse is the body returned by the normalize endpoint.
type NormalizeResponse struct {
	Expression string          `json:"expression"`
	FieldCount int             `json:"field_count"`
	Fields     cronexpr.Fields `json:"fields"`
	Active     cronexpr.Active `json:"active"`
}

// CronHandler exposes the cron expression normalizer.
type CronHandler struct{}

// Normalize normalizes ?expr= (GET) or {"expression": "..."} (POST).
// A malformed expression is not an error: it answers 200 with the all-wildcard set.
func (h *CronHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	expr := r.URL.Query().Get("expr")
	if r.Method == http.MethodPost {
		var input struct {
			Expression string `json:"expression"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			JSONError(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		expr = input.Expression
	}

	count := len(cronexpr.Tokens(expr))
	res := cronexpr.Normalize(expr)
	metrics.IncNormalization(count != cronexpr.FieldCount)

	writeJSON(w, http.StatusOK, NormalizeResponse{
		Expression: expr,
		FieldCount: count,
		Fields:     res.Fields,
		Active:     res.Active,
	})
}
