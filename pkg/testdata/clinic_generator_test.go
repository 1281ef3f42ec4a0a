package testdata

import (
	"context"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent"
	entclinic "github.com/menshealthfinder/api/ent/clinic"
	entcontact "github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGeneratorTest(t *testing.T) *ent.Client {
	t.Helper()
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func TestGenerateClinicName(t *testing.T) {
	for i := 0; i < 20; i++ {
		name := GenerateClinicName()
		assert.NotEmpty(t, name)
	}
}

func TestGenerateClinic_SlugCollisionsGetSuffix(t *testing.T) {
	client := setupGeneratorTest(t)
	ctx := context.Background()

	// 200 clinics in one city over a small name pool guarantees collisions;
	// the unique constraint on slug catches a broken suffix counter.
	creates := GenerateClinics(client, ClinicGeneratorConfig{
		Count: 200,
		State: "TX",
		City:  "Austin",
	})
	ids, err := BulkInsertClinics(ctx, client, creates, 50)
	require.NoError(t, err)
	assert.Len(t, ids, 200)
}

func TestBulkInsertClinics_SeedsState(t *testing.T) {
	client := setupGeneratorTest(t)
	ctx := context.Background()

	creates := GenerateClinicsForState(client, "TX", 30)
	ids, err := BulkInsertClinics(ctx, client, creates, 10)
	require.NoError(t, err)
	require.Len(t, ids, 30)

	rows, err := client.Clinic.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 30)

	slugs := map[string]bool{}
	txCities := map[string]bool{}
	for _, c := range CityData["TX"] {
		txCities[c.Name] = true
	}
	for _, row := range rows {
		assert.Equal(t, "TX", row.State)
		assert.True(t, txCities[row.City], "unexpected city %s", row.City)
		assert.False(t, slugs[row.Slug], "duplicate slug %s", row.Slug)
		slugs[row.Slug] = true
		assert.NotEmpty(t, row.Services)
	}
}

func TestGenerateContactsForClinics_AttachesToClinics(t *testing.T) {
	client := setupGeneratorTest(t)
	ctx := context.Background()

	clinicCreates := GenerateClinicsForState(client, "AZ", 5)
	ids, err := BulkInsertClinics(ctx, client, clinicCreates, 10)
	require.NoError(t, err)

	contactCreates := GenerateContactsForClinics(client, ids, 4)
	require.Len(t, contactCreates, 20)
	require.NoError(t, BulkInsertContacts(ctx, client, contactCreates, 7))

	for _, clinicID := range ids {
		count, err := client.Contact.Query().
			Where(entcontact.ClinicID(clinicID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	}

	rows, err := client.Contact.Query().All(ctx)
	require.NoError(t, err)
	for _, row := range rows {
		assert.NotEmpty(t, row.Name)
		assert.NotEmpty(t, row.Email)
		assert.GreaterOrEqual(t, row.LeadScore, 0)
		assert.LessOrEqual(t, row.LeadScore, 100)
	}
}

func TestGenerateClinic_TierFeaturesMatch(t *testing.T) {
	client := setupGeneratorTest(t)
	ctx := context.Background()

	creates := GenerateClinicsForState(client, "CA", 40)
	_, err := BulkInsertClinics(ctx, client, creates, 40)
	require.NoError(t, err)

	// Paid tiers always carry more feature flags than free
	free, err := client.Clinic.Query().
		Where(entclinic.TierEQ(entclinic.TierFree)).
		All(ctx)
	require.NoError(t, err)
	paid, err := client.Clinic.Query().
		Where(entclinic.TierNEQ(entclinic.TierFree)).
		All(ctx)
	require.NoError(t, err)

	for _, row := range free {
		for _, p := range paid {
			assert.Greater(t, len(p.Features), len(row.Features))
		}
	}
}
