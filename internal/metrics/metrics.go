package metrics

import (
	"regexp"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Normalization results.
const (
	ResultOK        = "ok"
	ResultMalformed = "malformed"
)

var (
	// RequestDuration tracks HTTP request duration in seconds by method, path, status.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts HTTP requests by method, path, status.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// Normalizations counts cron expressions normalized, by result (ok, malformed).
	Normalizations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cron_normalizations_total",
			Help: "Total number of cron expressions normalized by result",
		},
		[]string{"result"},
	)

	// Descriptions counts recurrence descriptions rendered, by pattern.
	Descriptions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recurrence_descriptions_total",
			Help: "Total number of recurrence descriptions rendered by pattern",
		},
		[]string{"pattern"},
	)
)

var numericPathSegment = regexp.MustCompile(`/[0-9]+(/|$)`)

func init() {
	prometheus.MustRegister(RequestDuration, RequestTotal, Normalizations, Descriptions)
}

// NormalizePath reduces cardinality by replacing numeric path segments with {id}.
// E.g. /v1/presets/123 -> /v1/presets/{id}.
func NormalizePath(path string) string {
	return numericPathSegment.ReplaceAllString(path, "/{id}$1")
}

// RecordRequest records duration and count for an HTTP request.
func RecordRequest(method, path string, statusCode int, durationSeconds float64) {
	path = NormalizePath(path)
	status := strconv.Itoa(statusCode)
	RequestDuration.WithLabelValues(method, path, status).Observe(durationSeconds)
	RequestTotal.WithLabelValues(method, path, status).Inc()
}

// IncNormalization counts one normalization. malformed is true when the
// expression fell back to the all-wildcard set.
func IncNormalization(malformed bool) {
	if malformed {
		Normalizations.WithLabelValues(ResultMalformed).Inc()
		return
	}
	Normalizations.WithLabelValues(ResultOK).Inc()
}

// IncDescription counts one rendered description. Unknown patterns share one label.
func IncDescription(pattern string) {
	switch pattern {
	case "daily", "weekly", "monthly":
	default:
		pattern = "unknown"
	}
	Descriptions.WithLabelValues(pattern).Inc()
}
