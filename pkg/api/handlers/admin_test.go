package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/menshealthfinder/api/pkg/audit"
	"github.com/menshealthfinder/api/pkg/content"
	"github.com/menshealthfinder/api/pkg/email"
	"github.com/menshealthfinder/api/pkg/engagement"
	"github.com/menshealthfinder/api/pkg/importer"
	"github.com/menshealthfinder/api/pkg/revenue"
	"github.com/menshealthfinder/api/pkg/sitemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setupAdminHandlerTest(t *testing.T) (*ent.Client, *AdminHandler) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	handler := NewAdminHandler(
		client,
		engagement.NewService(client),
		revenue.NewService(client, revenue.DefaultConfig(), 1),
		email.NewService("hello@menshealthfinder.com", "Men's Health Finder", "https://menshealthfinder.com", ""),
		content.NewGenerator("", ""),
		nil, // rescraper not exercised here
		importer.NewService(client),
		sitemap.NewGenerator(client, "https://menshealthfinder.com", t.TempDir()+"/sitemap.xml"),
		audit.NewService(client),
	)
	return client, handler
}

func TestAdminHandler_Dashboard(t *testing.T) {
	client, handler := setupAdminHandlerTest(t)
	seedClinic(t, client, "Apex Men's Health", "apex-mens-health-austin", "Austin")
	paused := seedClinic(t, client, "Summit TRT Clinic", "summit-trt-clinic-dallas", "Dallas")
	_, err := paused.Update().SetStatus(clinic.StatusPaused).Save(context.Background())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Dashboard(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp["clinics"]["total"])
	assert.Equal(t, 1, resp["clinics"]["active"])
	assert.Equal(t, 0, resp["reviews"]["pending"])
}

func TestAdminHandler_Opportunities(t *testing.T) {
	client, handler := setupAdminHandlerTest(t)
	seedClinic(t, client, "Apex Men's Health", "apex-mens-health-austin", "Austin")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/opportunities", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Opportunities(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var report revenue.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 1, report.ListingsAnalyzed)
	// Free tier, not indexed: there must be an opportunity
	assert.NotEmpty(t, report.Recommendations)
}

func TestAdminHandler_ExportOpportunities(t *testing.T) {
	client, handler := setupAdminHandlerTest(t)
	seedClinic(t, client, "Apex Men's Health", "apex-mens-health-austin", "Austin")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/opportunities/export", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ExportOpportunities(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "opportunities_")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Contains(t, f.GetSheetList(), "Opportunities")
}

func TestAdminHandler_RegenerateContent_TemplateFallback(t *testing.T) {
	client, handler := setupAdminHandlerTest(t)
	seedClinic(t, client, "Apex Men's Health", "apex-mens-health-austin", "Austin")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("apex-mens-health-austin")

	require.NoError(t, handler.RegenerateContent(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	row, err := client.Clinic.Query().Where(clinic.SlugEQ("apex-mens-health-austin")).Only(context.Background())
	require.NoError(t, err)
	assert.Contains(t, row.Description, "Apex Men's Health")
}

func TestAdminHandler_ImportCSV(t *testing.T) {
	client, handler := setupAdminHandlerTest(t)

	csvBody := "name,city,state\nPeak Hormone Center,Houston,tx\n"
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "clinics.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(csvBody))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/import/csv", &buf)
	req.Header.Set(echo.HeaderContentType, mw.FormDataContentType())
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ImportCSV(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result importer.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Created)

	count, err := client.Clinic.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAdminHandler_RegenerateSitemap(t *testing.T) {
	client, handler := setupAdminHandlerTest(t)
	seedClinic(t, client, "Apex Men's Health", "apex-mens-health-austin", "Austin")

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/sitemap/regenerate", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.RegenerateSitemap(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// Static pages plus the one listing
	assert.Equal(t, 5, resp["urls"])
}
