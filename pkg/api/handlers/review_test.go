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
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/menshealthfinder/api/ent/review"
	"github.com/menshealthfinder/api/pkg/models"
	"github.com/menshealthfinder/api/pkg/reviews"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupReviewHandlerTest(t *testing.T) (*ent.Client, *ReviewHandler) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	service := reviews.NewService(client, nil, nil)
	return client, NewReviewHandler(service)
}

func TestReviewHandler_Submit_LandsPending(t *testing.T) {
	client, handler := setupReviewHandlerTest(t)
	seedClinic(t, client, "Apex Men's Health", "apex-mens-health-austin", "Austin")

	body := `{"rating":5,"author_name":"Mike R.","body":"Great staff, straightforward labs and follow-up."}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("apex-mens-health-austin")

	require.NoError(t, handler.Submit(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp models.ReviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestReviewHandler_Submit_UnknownClinic(t *testing.T) {
	_, handler := setupReviewHandlerTest(t)

	body := `{"rating":5,"author_name":"Mike R.","body":"Great staff, straightforward labs and follow-up."}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("slug")
	c.SetParamValues("nope")

	require.NoError(t, handler.Submit(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestReviewHandler_Moderate_PublishesAndRollsUp(t *testing.T) {
	client, handler := setupReviewHandlerTest(t)
	row := seedClinic(t, client, "Apex Men's Health", "apex-mens-health-austin", "Austin")

	pending, err := client.Review.Create().
		SetClinicID(row.ID).
		SetRating(4).
		SetAuthorName("Dan K.").
		SetBody("Solid experience overall, scheduling was easy enough.").
		Save(context.Background())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"decision":"published"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(pending.ID))

	require.NoError(t, handler.Moderate(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	updated, err := client.Clinic.Get(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.ReviewCount)
	assert.InDelta(t, 4.0, updated.RatingAvg, 0.001)

	// Second moderation attempt conflicts
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"decision":"rejected"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c = e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(pending.ID))

	require.NoError(t, handler.Moderate(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReviewHandler_MarkHelpful_PendingConflicts(t *testing.T) {
	client, handler := setupReviewHandlerTest(t)
	row := seedClinic(t, client, "Apex Men's Health", "apex-mens-health-austin", "Austin")

	pending, err := client.Review.Create().
		SetClinicID(row.ID).
		SetRating(4).
		SetAuthorName("Dan K.").
		SetBody("Solid experience overall, scheduling was easy enough.").
		SetStatus(review.StatusPending).
		Save(context.Background())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(pending.ID))

	require.NoError(t, handler.MarkHelpful(c))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReviewHandler_ListPending(t *testing.T) {
	client, handler := setupReviewHandlerTest(t)
	row := seedClinic(t, client, "Apex Men's Health", "apex-mens-health-austin", "Austin")

	_, err := client.Review.Create().
		SetClinicID(row.ID).
		SetRating(3).
		SetAuthorName("Lee P.").
		SetBody("Average visit, the wait was longer than expected.").
		Save(context.Background())
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reviews/pending", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListPending(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ReviewListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
}
