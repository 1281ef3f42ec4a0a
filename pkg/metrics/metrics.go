package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPRequestSize     *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec

	// Business metrics
	TrackEventsReceived  *prometheus.CounterVec
	SessionsPersisted    prometheus.Counter
	FollowUpTasksCreated prometheus.Counter
	EmailsSent           *prometheus.CounterVec
	LoginAttempts        *prometheus.CounterVec
	SubscriptionsSold    *prometheus.CounterVec
}

// New creates a Metrics instance registered on the default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a Metrics instance registered on the given registry.
// Tests pass their own registry so repeated construction does not panic on
// duplicate registration.
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		// HTTP metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),
		HTTPResponseSize: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: []float64{100, 1000, 5000, 10000, 50000, 100000, 500000, 1000000},
			},
			[]string{"method", "path"},
		),

		// Business metrics
		TrackEventsReceived: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "track_events_received_total",
				Help: "Total number of tracking events received",
			},
			[]string{"action"},
		),
		SessionsPersisted: factory.NewCounter(prometheus.CounterOpts{
			Name: "sessions_persisted_total",
			Help: "Total number of visitor sessions flushed to the database",
		}),
		FollowUpTasksCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "followup_tasks_created_total",
			Help: "Total number of follow-up tasks created by the rule engine",
		}),
		EmailsSent: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emails_sent_total",
				Help: "Total number of emails sent",
			},
			[]string{"template"},
		),
		LoginAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"}, // success, failed
		),
		SubscriptionsSold: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "subscriptions_sold_total",
				Help: "Total number of tier subscriptions sold",
			},
			[]string{"tier"}, // standard, advanced
		),
	}
}

// Middleware creates an Echo middleware for Prometheus metrics
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			path := c.Path() // Route pattern, not the raw path (e.g. /api/v1/clinics/:slug)

			if req.ContentLength > 0 {
				m.HTTPRequestSize.WithLabelValues(req.Method, path).Observe(float64(req.ContentLength))
			}

			err := next(c)

			status := c.Response().Status
			duration := time.Since(start).Seconds()

			m.HTTPRequestsTotal.WithLabelValues(req.Method, path, strconv.Itoa(status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(req.Method, path, strconv.Itoa(status)).Observe(duration)
			m.HTTPResponseSize.WithLabelValues(req.Method, path).Observe(float64(c.Response().Size))

			return err
		}
	}
}

// RecordTrackEvent increments the tracking event counter for an action
func (m *Metrics) RecordTrackEvent(action string) {
	m.TrackEventsReceived.WithLabelValues(action).Inc()
}

// RecordSessionPersisted increments the persisted session counter
func (m *Metrics) RecordSessionPersisted() {
	m.SessionsPersisted.Inc()
}

// RecordFollowUpTasks adds to the follow-up task counter
func (m *Metrics) RecordFollowUpTasks(count int) {
	m.FollowUpTasksCreated.Add(float64(count))
}

// RecordEmailSent increments the sent email counter for a template
func (m *Metrics) RecordEmailSent(template string) {
	m.EmailsSent.WithLabelValues(template).Inc()
}

// RecordLoginAttempt increments login attempts counter
func (m *Metrics) RecordLoginAttempt(success bool) {
	status := "failed"
	if success {
		status = "success"
	}
	m.LoginAttempts.WithLabelValues(status).Inc()
}

// RecordSubscriptionSold increments subscriptions sold counter
func (m *Metrics) RecordSubscriptionSold(tier string) {
	m.SubscriptionsSold.WithLabelValues(tier).Inc()
}
