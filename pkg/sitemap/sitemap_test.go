package sitemap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSitemapTest(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func createSitemapClinic(t *testing.T, client *ent.Client, name, slug string, status clinic.Status) {
	_, err := client.Clinic.Create().
		SetName(name).
		SetSlug(slug).
		SetCity("Austin").
		SetState("TX").
		SetStatus(status).
		Save(context.Background())
	require.NoError(t, err)
}

func TestRender_ActiveListingsOnly(t *testing.T) {
	client := setupSitemapTest(t)

	createSitemapClinic(t, client, "Apex", "apex-mens-health-austin", clinic.StatusActive)
	createSitemapClinic(t, client, "Paused", "paused-clinic-austin", clinic.StatusPaused)
	createSitemapClinic(t, client, "Flagged", "flagged-clinic-austin", clinic.StatusFlagged)

	generator := NewGenerator(client, "https://menshealthfinder.com/", "")
	body, err := generator.Render(context.Background())
	require.NoError(t, err)

	xml := string(body)
	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, xml, "https://menshealthfinder.com/clinics/apex-mens-health-austin")
	assert.NotContains(t, xml, "paused-clinic-austin")
	assert.NotContains(t, xml, "flagged-clinic-austin")

	// Static pages ride along; the trailing slash on the base URL collapses.
	assert.Contains(t, xml, "<loc>https://menshealthfinder.com/about</loc>")
}

func TestRegenerate_WritesFile(t *testing.T) {
	client := setupSitemapTest(t)
	createSitemapClinic(t, client, "Apex", "apex-mens-health-austin", clinic.StatusActive)

	outPath := filepath.Join(t.TempDir(), "public", "sitemap.xml")
	generator := NewGenerator(client, "https://menshealthfinder.com", outPath)

	count, err := generator.Regenerate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(staticPages)+1, count)

	body, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(body), "apex-mens-health-austin")
}
