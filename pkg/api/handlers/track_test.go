package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/menshealthfinder/api/pkg/cache"
	"github.com/menshealthfinder/api/pkg/location"
	"github.com/menshealthfinder/api/pkg/metrics"
	"github.com/menshealthfinder/api/pkg/models"
	"github.com/menshealthfinder/api/pkg/session"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTrackHandlerTest(t *testing.T) (*ent.Client, *TrackHandler) {
	mr := miniredis.RunT(t)
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { cacheClient.Close() })

	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	return client, NewTrackHandler(session.NewService(cacheClient, client), client, nil)
}

func postTrack(t *testing.T, handler *TrackHandler, body string) (*httptest.ResponseRecorder, models.TrackResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/track", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Track(c))

	var resp models.TrackResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestTrackHandler_NewSessionOnFirstBeacon(t *testing.T) {
	_, handler := setupTrackHandlerTest(t)

	rec, resp := postTrack(t, handler, `{"action":"page_view","page_url":"https://menshealthfinder.com/","device":"mobile"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp.SessionID)
}

func TestTrackHandler_KeepsSessionAcrossBeacons(t *testing.T) {
	_, handler := setupTrackHandlerTest(t)

	_, first := postTrack(t, handler, `{"action":"page_view","page_url":"https://menshealthfinder.com/"}`)
	_, second := postTrack(t, handler, `{"session_id":"`+first.SessionID+`","action":"scroll","data":{"depth":50}}`)

	assert.Equal(t, first.SessionID, second.SessionID)
}

func TestTrackHandler_UnknownClinicSlugIsDropped(t *testing.T) {
	_, handler := setupTrackHandlerTest(t)

	// The beacon must not fail on a bad slug
	rec, resp := postTrack(t, handler, `{"action":"clinic_click","clinic_slug":"not-a-real-clinic"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp.SessionID)
}

func TestTrackHandler_CountsAcceptedBeacons(t *testing.T) {
	mr := miniredis.RunT(t)
	cacheClient := &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { cacheClient.Close() })

	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	handler := NewTrackHandler(session.NewService(cacheClient, client), client, m)

	_, first := postTrack(t, handler, `{"action":"page_view","page_url":"https://menshealthfinder.com/"}`)
	postTrack(t, handler, `{"session_id":"`+first.SessionID+`","action":"call_click"}`)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.TrackEventsReceived.WithLabelValues("page_view")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.TrackEventsReceived.WithLabelValues("call_click")))
}

func TestTrackHandler_MissingActionRejected(t *testing.T) {
	_, handler := setupTrackHandlerTest(t)

	rec, _ := postTrack(t, handler, `{"page_url":"https://menshealthfinder.com/"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrackHandler_DetectLocation(t *testing.T) {
	_, handler := setupTrackHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/location/detect?state=ca", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.DetectLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var detection location.Detection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detection))
	assert.Equal(t, "CA", detection.State)
	assert.Equal(t, "query", detection.Source)
}
