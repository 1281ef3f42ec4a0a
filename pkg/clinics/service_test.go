package clinics

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/menshealthfinder/api/ent/leadsession"
	"github.com/menshealthfinder/api/ent/review"
	"github.com/menshealthfinder/api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupClinicTest(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewService(client, nil, nil), client
}

func createTestClinic(t *testing.T, client *ent.Client, name, city string, opts ...func(*ent.ClinicCreate)) *ent.Clinic {
	builder := client.Clinic.Create().
		SetName(name).
		SetSlug(Slugify(name, city)).
		SetCity(city).
		SetState("TX")
	for _, opt := range opts {
		opt(builder)
	}
	row, err := builder.Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestSearch_DefaultsToActiveListings(t *testing.T) {
	service, client := setupClinicTest(t)
	ctx := context.Background()

	createTestClinic(t, client, "Apex Men's Health", "Austin")
	createTestClinic(t, client, "Paused Clinic", "Austin", func(c *ent.ClinicCreate) {
		c.SetStatus(clinic.StatusPaused)
	})
	createTestClinic(t, client, "Flagged Clinic", "Austin", func(c *ent.ClinicCreate) {
		c.SetStatus(clinic.StatusFlagged)
	})

	res, err := service.Search(ctx, models.ClinicSearchRequest{})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Apex Men's Health", res.Data[0].Name)

	// An explicit status filter surfaces non-active listings for admins.
	res, err = service.Search(ctx, models.ClinicSearchRequest{Status: "paused"})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Paused Clinic", res.Data[0].Name)
}

func TestSearch_Filters(t *testing.T) {
	service, client := setupClinicTest(t)
	ctx := context.Background()

	createTestClinic(t, client, "Apex Men's Health", "Austin", func(c *ent.ClinicCreate) {
		c.SetServices([]string{"trt", "ed_treatment"}).
			SetTier(clinic.TierAdvanced).
			SetVerified(true).
			SetRatingAvg(4.6)
	})
	createTestClinic(t, client, "Lone Star Wellness", "Dallas", func(c *ent.ClinicCreate) {
		c.SetServices([]string{"weight_loss"}).
			SetRatingAvg(3.2)
	})

	t.Run("city filter is case-insensitive", func(t *testing.T) {
		res, err := service.Search(ctx, models.ClinicSearchRequest{City: "austin"})
		require.NoError(t, err)
		require.Len(t, res.Data, 1)
		assert.Equal(t, "Apex Men's Health", res.Data[0].Name)
	})

	t.Run("free-text query matches name or city", func(t *testing.T) {
		res, err := service.Search(ctx, models.ClinicSearchRequest{Query: "lone star"})
		require.NoError(t, err)
		require.Len(t, res.Data, 1)
		assert.Equal(t, "Lone Star Wellness", res.Data[0].Name)
	})

	t.Run("service tag filter", func(t *testing.T) {
		res, err := service.Search(ctx, models.ClinicSearchRequest{Service: "trt"})
		require.NoError(t, err)
		require.Len(t, res.Data, 1)
		assert.Equal(t, "Apex Men's Health", res.Data[0].Name)
	})

	t.Run("tier and verified filters", func(t *testing.T) {
		verified := true
		res, err := service.Search(ctx, models.ClinicSearchRequest{Tier: "advanced", Verified: &verified})
		require.NoError(t, err)
		require.Len(t, res.Data, 1)
	})

	t.Run("minimum rating filter", func(t *testing.T) {
		minRating := 4.0
		res, err := service.Search(ctx, models.ClinicSearchRequest{MinRating: &minRating})
		require.NoError(t, err)
		require.Len(t, res.Data, 1)
		assert.Equal(t, 4.6, res.Data[0].RatingAvg)
	})
}

func TestSearch_Pagination(t *testing.T) {
	service, client := setupClinicTest(t)
	ctx := context.Background()

	names := []string{"Alpha Clinic", "Bravo Clinic", "Charlie Clinic", "Delta Clinic", "Echo Clinic"}
	for _, name := range names {
		createTestClinic(t, client, name, "Austin")
	}

	res, err := service.Search(ctx, models.ClinicSearchRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, res.Data, 2)
	assert.Equal(t, 5, res.Pagination.Total)
	assert.Equal(t, 3, res.Pagination.TotalPages)
	assert.True(t, res.Pagination.HasNext)
	assert.False(t, res.Pagination.HasPrev)

	// Equal ratings fall back to name order, so page 3 holds the last name.
	res, err = service.Search(ctx, models.ClinicSearchRequest{Page: 3, Limit: 2})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Echo Clinic", res.Data[0].Name)
	assert.False(t, res.Pagination.HasNext)
	assert.True(t, res.Pagination.HasPrev)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		city     string
		expected string
	}{
		{"Apex Men's Health", "Austin", "apex-mens-health-austin"},
		{"Low-T Center #4", "Fort Worth", "low-t-center-4-fort-worth"},
		{"  Modern   Male  ", "San Antonio", "modern-male-san-antonio"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slugify(tt.name, tt.city))
	}
}

func TestCreate_UniqueSlugSuffix(t *testing.T) {
	service, _ := setupClinicTest(t)
	ctx := context.Background()

	first, err := service.Create(ctx, models.CreateClinicRequest{
		Name: "Apex Men's Health", City: "Austin", State: "TX",
	})
	require.NoError(t, err)
	assert.Equal(t, "apex-mens-health-austin", first.Slug)

	second, err := service.Create(ctx, models.CreateClinicRequest{
		Name: "Apex Men's Health", City: "Austin", State: "TX",
	})
	require.NoError(t, err)
	assert.Equal(t, "apex-mens-health-austin-2", second.Slug)

	third, err := service.Create(ctx, models.CreateClinicRequest{
		Name: "Apex Men's Health", City: "Austin", State: "TX",
	})
	require.NoError(t, err)
	assert.Equal(t, "apex-mens-health-austin-3", third.Slug)
}

func TestCreate_NormalizesPhone(t *testing.T) {
	service, _ := setupClinicTest(t)
	ctx := context.Background()

	created, err := service.Create(ctx, models.CreateClinicRequest{
		Name: "Apex Men's Health", City: "Austin", State: "TX",
		Phone: "(512) 555-0134",
	})
	require.NoError(t, err)
	assert.Equal(t, "+15125550134", created.Phone)

	// Unparseable input survives verbatim.
	kept, err := service.Create(ctx, models.CreateClinicRequest{
		Name: "Lone Star Wellness", City: "Dallas", State: "TX",
		Phone: "call front desk",
	})
	require.NoError(t, err)
	assert.Equal(t, "call front desk", kept.Phone)
}

func TestCreate_DefaultsToFreeTier(t *testing.T) {
	service, _ := setupClinicTest(t)

	created, err := service.Create(context.Background(), models.CreateClinicRequest{
		Name: "Apex Men's Health", City: "Austin", State: "TX",
	})
	require.NoError(t, err)
	assert.Equal(t, "free", created.Tier)
	assert.Empty(t, created.Features)
}

func TestChangeTier_RecomputesFeatures(t *testing.T) {
	service, client := setupClinicTest(t)
	ctx := context.Background()

	row := createTestClinic(t, client, "Apex Men's Health", "Austin", func(c *ent.ClinicCreate) {
		c.SetDescription("Generated SEO copy for the advanced tier.")
	})

	upgraded, err := service.ChangeTier(ctx, row.ID, models.ChangeTierRequest{Tier: "advanced"}, nil)
	require.NoError(t, err)
	assert.Contains(t, upgraded.Features, "featured_placement")
	assert.Contains(t, upgraded.Features, "verified_badge")

	// Downgrade shrinks flags but keeps tier-gated content in place.
	downgraded, err := service.ChangeTier(ctx, row.ID, models.ChangeTierRequest{Tier: "standard"}, nil)
	require.NoError(t, err)
	assert.NotContains(t, downgraded.Features, "featured_placement")
	assert.Contains(t, downgraded.Features, "call_tracking")
	assert.Equal(t, "Generated SEO copy for the advanced tier.", downgraded.Description)

	// Re-upgrading restores the full flag set without touching content.
	restored, err := service.ChangeTier(ctx, row.ID, models.ChangeTierRequest{Tier: "advanced"}, nil)
	require.NoError(t, err)
	assert.Contains(t, restored.Features, "featured_placement")
	assert.Equal(t, "Generated SEO copy for the advanced tier.", restored.Description)
}

func TestChangeStatus_StateMachine(t *testing.T) {
	service, client := setupClinicTest(t)
	ctx := context.Background()

	row := createTestClinic(t, client, "Apex Men's Health", "Austin")

	flagged, err := service.ChangeStatus(ctx, row.ID, models.ChangeStatusRequest{
		Status: "flagged", Reason: "duplicate report",
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "flagged", flagged.Status)

	// Same-state transitions are rejected.
	_, err = service.ChangeStatus(ctx, row.ID, models.ChangeStatusRequest{Status: "flagged"}, nil)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	resolved, err := service.ChangeStatus(ctx, row.ID, models.ChangeStatusRequest{Status: "active"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "active", resolved.Status)
}

func TestChangeStatus_NotFound(t *testing.T) {
	service, _ := setupClinicTest(t)

	_, err := service.ChangeStatus(context.Background(), 9999, models.ChangeStatusRequest{Status: "paused"}, nil)
	assert.ErrorIs(t, err, ErrClinicNotFound)
}

func TestNearby_OrdersByDistance(t *testing.T) {
	service, client := setupClinicTest(t)
	ctx := context.Background()

	// Downtown Austin as the search origin.
	origin := struct{ lat, lng float64 }{30.2672, -97.7431}

	createTestClinic(t, client, "Downtown Clinic", "Austin", func(c *ent.ClinicCreate) {
		c.SetLatitude(30.2700).SetLongitude(-97.7400)
	})
	createTestClinic(t, client, "Round Rock Clinic", "Round Rock", func(c *ent.ClinicCreate) {
		c.SetLatitude(30.5083).SetLongitude(-97.6789)
	})
	// San Antonio is ~120 km away, outside the default radius.
	createTestClinic(t, client, "San Antonio Clinic", "San Antonio", func(c *ent.ClinicCreate) {
		c.SetLatitude(29.4241).SetLongitude(-98.4936)
	})
	// Paused listings never appear in geo results.
	createTestClinic(t, client, "Paused Downtown", "Austin", func(c *ent.ClinicCreate) {
		c.SetLatitude(30.2680).SetLongitude(-97.7440).SetStatus(clinic.StatusPaused)
	})

	res, err := service.Nearby(ctx, models.NearbyRequest{Latitude: origin.lat, Longitude: origin.lng})
	require.NoError(t, err)
	require.Len(t, res.Data, 2)
	assert.Equal(t, "Downtown Clinic", res.Data[0].Name)
	assert.Equal(t, "Round Rock Clinic", res.Data[1].Name)
	assert.Less(t, res.Data[0].DistanceKm, res.Data[1].DistanceKm)
	assert.Greater(t, res.Data[1].DistanceKm, 20.0)
}

func TestNearby_RadiusAndLimit(t *testing.T) {
	service, client := setupClinicTest(t)
	ctx := context.Background()

	createTestClinic(t, client, "Near Clinic", "Austin", func(c *ent.ClinicCreate) {
		c.SetLatitude(30.2700).SetLongitude(-97.7400)
	})
	createTestClinic(t, client, "Far Clinic", "San Antonio", func(c *ent.ClinicCreate) {
		c.SetLatitude(29.4241).SetLongitude(-98.4936)
	})

	res, err := service.Nearby(ctx, models.NearbyRequest{
		Latitude: 30.2672, Longitude: -97.7431, RadiusKm: 200,
	})
	require.NoError(t, err)
	assert.Len(t, res.Data, 2)

	res, err = service.Nearby(ctx, models.NearbyRequest{
		Latitude: 30.2672, Longitude: -97.7431, RadiusKm: 200, Limit: 1,
	})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Near Clinic", res.Data[0].Name)
}

func TestMerge_MovesDependentsAndBackfills(t *testing.T) {
	service, client := setupClinicTest(t)
	ctx := context.Background()

	primary := createTestClinic(t, client, "Apex Men's Health", "Austin", func(c *ent.ClinicCreate) {
		c.SetServices([]string{"trt"})
	})
	duplicate := createTestClinic(t, client, "Apex Mens Health Clinic", "Austin", func(c *ent.ClinicCreate) {
		c.SetPhone("+15125550134").
			SetWebsite("https://apexmenshealth.com").
			SetServices([]string{"trt", "ed_treatment"}).
			SetVerified(true)
	})

	_, err := client.Review.Create().
		SetClinicID(duplicate.ID).
		SetRating(5).
		SetAuthorName("Sam T.").
		SetBody("Great experience, staff walked me through every option.").
		SetStatus(review.StatusPublished).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Review.Create().
		SetClinicID(primary.ID).
		SetRating(3).
		SetAuthorName("Jordan P.").
		SetBody("Decent visit but the wait was longer than promised.").
		SetStatus(review.StatusPublished).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Contact.Create().
		SetName("Dr. Alan Reed").
		SetClinicID(duplicate.ID).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.LeadSession.Create().
		SetSessionID("sess-merge-1").
		SetClinicID(duplicate.ID).
		Save(ctx)
	require.NoError(t, err)

	merged, err := service.Merge(ctx, models.MergeClinicsRequest{
		PrimaryID:   primary.ID,
		DuplicateID: duplicate.ID,
	}, nil)
	require.NoError(t, err)

	// Missing primary fields are backfilled from the duplicate.
	assert.Equal(t, "+15125550134", merged.Phone)
	assert.Equal(t, "https://apexmenshealth.com", merged.Website)
	assert.ElementsMatch(t, []string{"trt", "ed_treatment"}, merged.Services)
	assert.True(t, merged.Verified)

	// Aggregates are recomputed over the combined published set.
	assert.Equal(t, 2, merged.ReviewCount)
	assert.Equal(t, 4.0, merged.RatingAvg)

	// Dependents now point at the primary and the duplicate is gone.
	reviews, err := client.Review.Query().Where(review.ClinicID(primary.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, reviews)
	contacts, err := client.Contact.Query().Where(contact.ClinicID(primary.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, contacts)
	sessions, err := client.LeadSession.Query().Where(leadsession.ClinicID(primary.ID)).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sessions)

	_, err = client.Clinic.Get(ctx, duplicate.ID)
	assert.True(t, ent.IsNotFound(err))
}

func TestMerge_KeepsPrimaryFields(t *testing.T) {
	service, client := setupClinicTest(t)
	ctx := context.Background()

	primary := createTestClinic(t, client, "Apex Men's Health", "Austin", func(c *ent.ClinicCreate) {
		c.SetPhone("+15125550100").SetWebsite("https://apex.example.com")
	})
	duplicate := createTestClinic(t, client, "Apex Duplicate", "Austin", func(c *ent.ClinicCreate) {
		c.SetPhone("+15125550999").SetWebsite("https://dup.example.com")
	})

	merged, err := service.Merge(ctx, models.MergeClinicsRequest{
		PrimaryID:   primary.ID,
		DuplicateID: duplicate.ID,
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, "+15125550100", merged.Phone)
	assert.Equal(t, "https://apex.example.com", merged.Website)
}

func TestMerge_Errors(t *testing.T) {
	service, client := setupClinicTest(t)
	ctx := context.Background()

	row := createTestClinic(t, client, "Apex Men's Health", "Austin")

	_, err := service.Merge(ctx, models.MergeClinicsRequest{PrimaryID: row.ID, DuplicateID: row.ID}, nil)
	assert.ErrorIs(t, err, ErrMergeSameClinic)

	_, err = service.Merge(ctx, models.MergeClinicsRequest{PrimaryID: row.ID, DuplicateID: 9999}, nil)
	assert.ErrorIs(t, err, ErrClinicNotFound)
}

func TestGetBySlug(t *testing.T) {
	service, client := setupClinicTest(t)
	ctx := context.Background()

	createTestClinic(t, client, "Apex Men's Health", "Austin")

	found, err := service.GetBySlug(ctx, "apex-mens-health-austin")
	require.NoError(t, err)
	assert.Equal(t, "Apex Men's Health", found.Name)

	_, err = service.GetBySlug(ctx, "missing-clinic")
	assert.ErrorIs(t, err, ErrClinicNotFound)
}

func TestUpdate_PartialFields(t *testing.T) {
	service, client := setupClinicTest(t)
	ctx := context.Background()

	row := createTestClinic(t, client, "Apex Men's Health", "Austin", func(c *ent.ClinicCreate) {
		c.SetWebsite("https://old.example.com")
	})

	newName := "Apex Men's Health Center"
	verified := true
	updated, err := service.Update(ctx, row.ID, models.UpdateClinicRequest{
		Name:     &newName,
		Verified: &verified,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.True(t, updated.Verified)
	assert.Equal(t, "https://old.example.com", updated.Website)
}
