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
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/menshealthfinder/api/pkg/contacts"
	"github.com/menshealthfinder/api/pkg/followup"
	"github.com/menshealthfinder/api/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContactHandlerTest(t *testing.T) (*ent.Client, *ContactHandler) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	return client, NewContactHandler(contacts.NewService(client), followup.NewService(client))
}

func seedContact(t *testing.T, client *ent.Client, name string, stage contact.Stage) *ent.Contact {
	t.Helper()
	row, err := client.Contact.Create().
		SetName(name).
		SetEmail("owner@example.com").
		SetStage(stage).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestContactHandler_Create_Defaults(t *testing.T) {
	_, handler := setupContactHandlerTest(t)

	body := `{"name":"Dr. Reed","email":"reed@apexclinic.com"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/contacts", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ContactResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "new", resp.Stage)
	assert.Equal(t, "medium", resp.Priority)
	assert.Equal(t, "active", resp.Status)
}

func TestContactHandler_ChangeStage_RegressionConflicts(t *testing.T) {
	client, handler := setupContactHandlerTest(t)
	row := seedContact(t, client, "Dr. Reed", contact.StageQualified)

	body := `{"stage":"contacted"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(row.ID))

	require.NoError(t, handler.ChangeStage(c))
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Override flag lets it through
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"stage":"contacted","override":true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(row.ID))

	require.NoError(t, handler.ChangeStage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestContactHandler_Archive_ThenUpdateConflicts(t *testing.T) {
	client, handler := setupContactHandlerTest(t)
	row := seedContact(t, client, "Dr. Reed", contact.StageNew)

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(row.ID))

	require.NoError(t, handler.Archive(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(`{"company":"Apex"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(row.ID))

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestContactHandler_LogActivity(t *testing.T) {
	client, handler := setupContactHandlerTest(t)
	row := seedContact(t, client, "Dr. Reed", contact.StageNew)

	body := `{"type":"call","subject":"Intro call","description":"Walked through listing tiers"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(row.ID))

	require.NoError(t, handler.LogActivity(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	updated, err := client.Contact.Get(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.TotalInteractions)
	assert.NotNil(t, updated.LastContactedAt)
}

func TestContactHandler_RunContactFollowup(t *testing.T) {
	client, handler := setupContactHandlerTest(t)
	row := seedContact(t, client, "Dr. Reed", contact.StageNew)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(row.ID))

	require.NoError(t, handler.RunContactFollowup(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result followup.EvaluationResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, row.ID, result.ContactID)

	// The default new-lead rule materializes a welcome task
	count, err := client.FollowUpTask.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, result.TasksCreated, count)
}

func TestContactHandler_List_HidesArchived(t *testing.T) {
	client, handler := setupContactHandlerTest(t)
	seedContact(t, client, "Active One", contact.StageNew)
	archived := seedContact(t, client, "Archived One", contact.StageNew)
	_, err := archived.Update().SetStatus(contact.StatusArchived).Save(context.Background())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/contacts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ContactListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "Active One", resp.Data[0].Name)
}
