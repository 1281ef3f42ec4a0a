package importer

import (
	"context"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupImportTest(t *testing.T) (*Service, *ent.Client) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return NewService(client), client
}

const sampleCSV = `name,city,state,phone,services,tier
Apex Men's Health,Austin,TX,(512) 555-0134,trt|ed_treatment,standard
Lone Star Wellness,Dallas,tx,,weight_loss,
Bad Row,,TX,,,
`

func TestImportCSV_CreatesClinics(t *testing.T) {
	service, client := setupImportTest(t)
	ctx := context.Background()

	result, err := service.ImportCSV(ctx, strings.NewReader(sampleCSV), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRows)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 1, result.FailureCount)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "city", result.Errors[0].Field)

	apex, err := client.Clinic.Query().
		Where(clinic.Slug("apex-mens-health-austin")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+15125550134", apex.Phone)
	assert.Equal(t, []string{"trt", "ed_treatment"}, apex.Services)
	assert.Equal(t, clinic.TierStandard, apex.Tier)
	assert.Contains(t, apex.Features, "call_tracking")

	// State codes are upcased on the way in.
	lone, err := client.Clinic.Query().
		Where(clinic.Slug("lone-star-wellness-dallas")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "TX", lone.State)
	assert.Equal(t, clinic.TierFree, lone.Tier)
}

func TestImportCSV_MissingRequiredColumn(t *testing.T) {
	service, _ := setupImportTest(t)

	_, err := service.ImportCSV(context.Background(), strings.NewReader("name,city\nApex,Austin\n"), DefaultOptions())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "state")
}

func TestImportCSV_DryRunWritesNothing(t *testing.T) {
	service, client := setupImportTest(t)
	ctx := context.Background()

	opts := DefaultOptions()
	opts.DryRun = true
	result, err := service.ImportCSV(ctx, strings.NewReader(sampleCSV), opts)
	require.NoError(t, err)

	assert.True(t, result.DryRun)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.FailureCount)

	count, err := client.Clinic.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestImportCSV_DuplicateWithoutMergeGetsSuffix(t *testing.T) {
	service, client := setupImportTest(t)
	ctx := context.Background()

	row := "name,city,state\nApex Men's Health,Austin,TX\n"
	_, err := service.ImportCSV(ctx, strings.NewReader(row), DefaultOptions())
	require.NoError(t, err)
	_, err = service.ImportCSV(ctx, strings.NewReader(row), DefaultOptions())
	require.NoError(t, err)

	count, err := client.Clinic.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	exists, err := client.Clinic.Query().
		Where(clinic.Slug("apex-mens-health-austin-2")).
		Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestImportCSV_MergeUpdatesOnSlugMatch(t *testing.T) {
	service, client := setupImportTest(t)
	ctx := context.Background()

	_, err := service.ImportCSV(ctx, strings.NewReader("name,city,state\nApex Men's Health,Austin,TX\n"), DefaultOptions())
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Merge = true
	result, err := service.ImportCSV(ctx, strings.NewReader(
		"name,city,state,phone,website\nApex Men's Health,Austin,TX,(512) 555-0134,https://apexmenshealth.com\n",
	), opts)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)

	count, err := client.Clinic.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	row, err := client.Clinic.Query().Where(clinic.Slug("apex-mens-health-austin")).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+15125550134", row.Phone)
	assert.Equal(t, "https://apexmenshealth.com", row.Website)
}

func TestImportCSV_MergeMatchesOnPlaceID(t *testing.T) {
	service, client := setupImportTest(t)
	ctx := context.Background()

	_, err := client.Clinic.Create().
		SetName("Apex Men's Health").
		SetSlug("apex-mens-health-austin").
		SetCity("Austin").
		SetState("TX").
		SetPlaceID("ChIJapex123").
		Save(ctx)
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Merge = true
	// Renamed business, same Places ID: still the same clinic.
	result, err := service.ImportCSV(ctx, strings.NewReader(
		"name,city,state,place_id,phone\nApex Male Health Center,Austin,TX,ChIJapex123,(512) 555-0134\n",
	), opts)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Updated)
	count, err := client.Clinic.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestImportJSON(t *testing.T) {
	service, client := setupImportTest(t)
	ctx := context.Background()

	input := `[
		{"name": "Apex Men's Health", "city": "Austin", "state": "TX", "services": ["trt"]},
		{"name": "No State Clinic", "city": "Dallas", "state": ""}
	]`
	result, err := service.ImportJSON(ctx, strings.NewReader(input), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalRows)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.FailureCount)

	count, err := client.Clinic.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestImportJSON_MalformedInput(t *testing.T) {
	service, _ := setupImportTest(t)

	_, err := service.ImportJSON(context.Background(), strings.NewReader(`{"not": "an array"}`), DefaultOptions())
	assert.Error(t, err)
}
