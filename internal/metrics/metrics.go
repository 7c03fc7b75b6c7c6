package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "perfdesk_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "perfdesk_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"method", "route"},
	)

	RemindersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "perfdesk_reminders_created_total",
			Help: "Automated overdue reminders inserted by the feedback scan",
		},
	)

	ScanFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "perfdesk_reminder_scan_failures_total",
			Help: "Overdue scans or per-goal reminder inserts that failed",
		},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter, RequestDuration, RemindersCreated, ScanFailures)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
