package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/menshealthfinder/api/pkg/clinics"
	"github.com/menshealthfinder/api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupClinicHandlerTest(t *testing.T) (*ent.Client, *ClinicHandler) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	service := clinics.NewService(client, nil, nil)
	return client, NewClinicHandler(service)
}

func seedClinic(t *testing.T, client *ent.Client, name, slug, city string) *ent.Clinic {
	t.Helper()
	row, err := client.Clinic.Create().
		SetName(name).
		SetSlug(slug).
		SetCity(city).
		SetState("TX").
		SetTier(clinic.TierFree).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestClinicHandler_Search(t *testing.T) {
	client, handler := setupClinicHandlerTest(t)
	seedClinic(t, client, "Apex Men's Health", "apex-mens-health-austin", "Austin")
	seedClinic(t, client, "Summit TRT Clinic", "summit-trt-clinic-dallas", "Dallas")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clinics?city=austin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ClinicListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "apex-mens-health-austin", resp.Data[0].Slug)
	assert.Equal(t, 1, resp.Pagination.Total)
}

func TestClinicHandler_Search_RejectsBadTier(t *testing.T) {
	_, handler := setupClinicHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/clinics?tier=platinum", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Search(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClinicHandler_GetBySlug(t *testing.T) {
	client, handler := setupClinicHandlerTest(t)
	seedClinic(t, client, "Apex Men's Health", "apex-mens-health-austin", "Austin")

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/clinics/:slug")
	c.SetParamNames("slug")
	c.SetParamValues("apex-mens-health-austin")

	require.NoError(t, handler.GetBySlug(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ClinicResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Apex Men's Health", resp.Name)
}

func TestClinicHandler_GetBySlug_NotFound(t *testing.T) {
	_, handler := setupClinicHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/v1/clinics/:slug")
	c.SetParamNames("slug")
	c.SetParamValues("nope")

	require.NoError(t, handler.GetBySlug(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClinicHandler_Create(t *testing.T) {
	_, handler := setupClinicHandlerTest(t)

	body := `{"name":"Peak Hormone Center","city":"Houston","state":"TX","services":["trt"]}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/clinics", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ClinicResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "peak-hormone-center-houston", resp.Slug)
	assert.Equal(t, "free", resp.Tier)
}

func TestClinicHandler_ChangeStatus_Conflict(t *testing.T) {
	client, handler := setupClinicHandlerTest(t)
	row := seedClinic(t, client, "Apex Men's Health", "apex-mens-health-austin", "Austin")

	// Active to active is not a transition
	body := `{"status":"active"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(row.ID))

	require.NoError(t, handler.ChangeStatus(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestClinicHandler_Merge(t *testing.T) {
	client, handler := setupClinicHandlerTest(t)
	primary := seedClinic(t, client, "Apex Men's Health", "apex-mens-health-austin", "Austin")
	duplicate := seedClinic(t, client, "Apex Mens Health", "apex-mens-health-austin-2", "Austin")

	body, err := json.Marshal(models.MergeClinicsRequest{
		PrimaryID:   primary.ID,
		DuplicateID: duplicate.ID,
	})
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Merge(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	count, err := client.Clinic.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestClinicHandler_Update_InvalidID(t *testing.T) {
	_, handler := setupClinicHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
