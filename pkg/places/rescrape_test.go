package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	details *Details
	err     error
	placeID string
}

func (s *stubProvider) Lookup(_ context.Context, placeID string) (*Details, error) {
	s.placeID = placeID
	if s.err != nil {
		return nil, s.err
	}
	return s.details, nil
}

func setupRescrapeTest(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRescrape_RefreshesFields(t *testing.T) {
	client := setupRescrapeTest(t)
	ctx := context.Background()

	_, err := client.Clinic.Create().
		SetName("Apex Men's Health").
		SetSlug("apex-mens-health-austin").
		SetCity("Austin").
		SetState("TX").
		SetPlaceID("ChIJapex123").
		SetRatingAvg(4.5).
		SetReviewCount(12).
		Save(ctx)
	require.NoError(t, err)

	stub := &stubProvider{details: &Details{
		Name:       "Apex Male Health Center", // renamed on Google; we keep ours
		Address:    "123 Congress Ave, Austin, TX 78701",
		PostalCode: "78701",
		Phone:      "(512) 555-0134",
		Website:    "https://apexmenshealth.com",
		Latitude:   30.2672,
		Longitude:  -97.7431,
		Rating:     3.9,
	}}

	rescraper := NewRescraper(client, stub)
	updated, err := rescraper.Rescrape(ctx, "apex-mens-health-austin")
	require.NoError(t, err)

	assert.Equal(t, "ChIJapex123", stub.placeID)
	assert.Equal(t, "123 Congress Ave, Austin, TX 78701", updated.Address)
	assert.Equal(t, "78701", updated.PostalCode)
	assert.Equal(t, "+15125550134", updated.Phone)
	assert.Equal(t, "https://apexmenshealth.com", updated.Website)
	assert.Equal(t, 30.2672, updated.Latitude)

	// Curated name and our own review aggregates survive the rescrape.
	assert.Equal(t, "Apex Men's Health", updated.Name)
	assert.Equal(t, 4.5, updated.RatingAvg)
	assert.Equal(t, 12, updated.ReviewCount)
}

func TestRescrape_RequiresPlaceID(t *testing.T) {
	client := setupRescrapeTest(t)
	ctx := context.Background()

	_, err := client.Clinic.Create().
		SetName("No Place Clinic").
		SetSlug("no-place-clinic-dallas").
		SetCity("Dallas").
		SetState("TX").
		Save(ctx)
	require.NoError(t, err)

	rescraper := NewRescraper(client, &stubProvider{})
	_, err = rescraper.Rescrape(ctx, "no-place-clinic-dallas")
	assert.ErrorIs(t, err, ErrNoPlaceID)

	_, err = rescraper.Rescrape(ctx, "missing-clinic")
	assert.ErrorIs(t, err, ErrClinicNotFound)
}

func TestGoogleProvider_Lookup(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "ChIJapex123", r.URL.Query().Get("place_id"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"result": {
				"name": "Apex Men's Health",
				"formatted_address": "123 Congress Ave, Austin, TX 78701",
				"formatted_phone_number": "(512) 555-0134",
				"website": "https://apexmenshealth.com",
				"rating": 4.4,
				"address_components": [
					{"long_name": "78701", "types": ["postal_code"]}
				],
				"geometry": {"location": {"lat": 30.2672, "lng": -97.7431}}
			}
		}`))
	}))
	defer server.Close()

	provider := NewGoogleProviderWithBase("test-key", server.URL)
	details, err := provider.Lookup(context.Background(), "ChIJapex123")
	require.NoError(t, err)

	assert.Equal(t, "Apex Men's Health", details.Name)
	assert.Equal(t, "78701", details.PostalCode)
	assert.Equal(t, 30.2672, details.Latitude)
	assert.Equal(t, 4.4, details.Rating)
}

func TestGoogleProvider_LookupFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "NOT_FOUND"}`))
	}))
	defer server.Close()

	provider := NewGoogleProviderWithBase("test-key", server.URL)
	_, err := provider.Lookup(context.Background(), "ChIJmissing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_FOUND")
}
