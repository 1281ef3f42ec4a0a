package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/menshealthfinder/api/pkg/billing"
	"github.com/menshealthfinder/api/pkg/clinics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupBillingHandlerTest(t *testing.T) *BillingHandler {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	service := billing.NewService(client, clinics.NewService(client, nil, nil), &billing.Config{
		SecretKey:     "sk_test_x",
		PriceStandard: "price_standard",
		PriceAdvanced: "price_advanced",
	})
	return NewBillingHandler(service)
}

func TestBillingHandler_GetPricing(t *testing.T) {
	handler := setupBillingHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/billing/pricing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.GetPricing(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Tiers []billing.PricingTier `json:"tiers"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Tiers, 3)
	assert.Equal(t, "free", resp.Tiers[0].Name)
}

func TestBillingHandler_CreateCheckout_RejectsFreeTier(t *testing.T) {
	handler := setupBillingHandlerTest(t)

	body := `{"clinic_slug":"apex-mens-health-austin","tier":"free"}`
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/billing/checkout", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.CreateCheckout(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBillingHandler_Webhook_BadSignature(t *testing.T) {
	handler := setupBillingHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/webhook/stripe", strings.NewReader(`{}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=bogus")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Webhook(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
