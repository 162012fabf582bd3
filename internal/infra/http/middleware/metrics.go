package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	emailsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "emails_generated_total",
			Help: "Total number of outreach emails composed",
		},
	)

	leadUpsertFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_upsert_failures_total",
			Help: "Total number of swallowed lead upsert failures",
		},
	)

	mailSendFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mail_send_failures_total",
			Help: "Total number of failed SMTP deliveries",
		},
	)

	newsFeedErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_feed_errors_total",
			Help: "Total number of advisory feed fetch failures",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordEmailGenerated() {
	emailsGenerated.Inc()
}

func RecordLeadUpsertFailure() {
	leadUpsertFailures.Inc()
}

func RecordMailSendFailure() {
	mailSendFailures.Inc()
}

func RecordFeedError() {
	newsFeedErrors.Inc()
}
