package location

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect_QueryParamWins(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/location/detect?state=ca", nil)
	req.Header.Set("CloudFront-Viewer-Country-Region", "NY")

	got := Detect(req)
	assert.Equal(t, "CA", got.State)
	assert.Equal(t, "query", got.Source)
	assert.InDelta(t, 36.116203, got.Latitude, 0.001)
}

func TestDetect_HeaderFallback(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/location/detect", nil)
	req.Header.Set("CF-Region-Code", "fl")

	got := Detect(req)
	assert.Equal(t, "FL", got.State)
	assert.Equal(t, "header", got.Source)
}

func TestDetect_Default(t *testing.T) {
	req := httptest.NewRequest("GET", "/api/v1/location/detect?state=ZZ", nil)

	got := Detect(req)
	assert.Equal(t, "TX", got.State)
	assert.Equal(t, "default", got.Source)
}

func TestCentroid(t *testing.T) {
	lat, lng, ok := Centroid("tx")
	assert.True(t, ok)
	assert.InDelta(t, 31.054487, lat, 0.001)
	assert.InDelta(t, -97.563461, lng, 0.001)

	_, _, ok = Centroid("ZZ")
	assert.False(t, ok)
}
