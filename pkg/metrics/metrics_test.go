package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMetrics(t *testing.T) *Metrics {
	t.Helper()
	return NewWithRegistry(prometheus.NewRegistry())
}

func TestMiddleware_CountsRequestsByRoute(t *testing.T) {
	m := newTestMetrics(t)

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/clinics/:slug", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	for _, slug := range []string{"apex-mens-health-austin", "elevate-trt-dallas"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/clinics/"+slug, nil)
		e.ServeHTTP(httptest.NewRecorder(), req)
	}

	// Both requests land on the route pattern, not the raw path
	count := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/clinics/:slug", "200"))
	assert.Equal(t, float64(2), count)
}

func TestRecordTrackEvent_LabelsByAction(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordTrackEvent("page-view")
	m.RecordTrackEvent("page-view")
	m.RecordTrackEvent("call-click")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.TrackEventsReceived.WithLabelValues("page-view")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.TrackEventsReceived.WithLabelValues("call-click")))
}

func TestRecordSessionPersisted(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordSessionPersisted()
	m.RecordSessionPersisted()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.SessionsPersisted))
}

func TestRecordFollowUpTasks_AddsBatchSize(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordFollowUpTasks(3)
	m.RecordFollowUpTasks(1)

	assert.Equal(t, float64(4), testutil.ToFloat64(m.FollowUpTasksCreated))
}

func TestRecordEmailSent_LabelsByTemplate(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordEmailSent("upgrade_pitch")
	m.RecordEmailSent("tier_activated")
	m.RecordEmailSent("tier_activated")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.EmailsSent.WithLabelValues("upgrade_pitch")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.EmailsSent.WithLabelValues("tier_activated")))
}

func TestRecordLoginAttempt_SplitsByStatus(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordLoginAttempt(true)
	m.RecordLoginAttempt(false)
	m.RecordLoginAttempt(false)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.LoginAttempts.WithLabelValues("success")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.LoginAttempts.WithLabelValues("failed")))
}

func TestRecordSubscriptionSold_LabelsByTier(t *testing.T) {
	m := newTestMetrics(t)

	m.RecordSubscriptionSold("standard")
	m.RecordSubscriptionSold("advanced")
	m.RecordSubscriptionSold("advanced")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.SubscriptionsSold.WithLabelValues("standard")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.SubscriptionsSold.WithLabelValues("advanced")))
}

func TestNewWithRegistry_IsolatedRegistries(t *testing.T) {
	// Separate registries must not collide on metric names
	first := NewWithRegistry(prometheus.NewRegistry())
	second := NewWithRegistry(prometheus.NewRegistry())
	require.NotNil(t, first)
	require.NotNil(t, second)

	first.RecordSessionPersisted()
	assert.Equal(t, float64(0), testutil.ToFloat64(second.SessionsPersisted))
}
