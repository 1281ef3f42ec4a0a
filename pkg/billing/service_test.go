package billing

import (
	"context"
	"encoding/json"
	"strconv"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/menshealthfinder/api/ent"
	entclinic "github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/enttest"
	"github.com/menshealthfinder/api/pkg/clinics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type mockTierEmail struct {
	toEmail string
	clinic  string
	tier    string
}

func (m *mockTierEmail) SendTierActivated(toEmail, clinicName, tier string) error {
	m.toEmail = toEmail
	m.clinic = clinicName
	m.tier = tier
	return nil
}

func setupBillingTest(t *testing.T) (*Service, *ent.Client, *ent.Clinic) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	row, err := client.Clinic.Create().
		SetName("Apex Men's Health").
		SetSlug("apex-mens-health-austin").
		SetCity("Austin").
		SetState("TX").
		SetEmail("owner@apexclinic.com").
		Save(context.Background())
	require.NoError(t, err)

	service := NewService(client, clinics.NewService(client, nil, nil), &Config{
		PriceStandard: "price_standard",
		PriceAdvanced: "price_advanced",
	})
	return service, client, row
}

func checkoutEvent(t *testing.T, clinicID int, tier string) stripe.Event {
	raw, err := json.Marshal(map[string]any{
		"id": "cs_test_123",
		"metadata": map[string]string{
			"clinic_id": strconv.Itoa(clinicID),
			"tier":      tier,
		},
	})
	require.NoError(t, err)
	return stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}
}

func TestGetPriceIDForTier(t *testing.T) {
	s := &Service{config: &Config{
		PriceStandard: "price_standard",
		PriceAdvanced: "price_advanced",
	}}

	id, err := s.getPriceIDForTier("standard")
	require.NoError(t, err)
	assert.Equal(t, "price_standard", id)

	id, err = s.getPriceIDForTier("advanced")
	require.NoError(t, err)
	assert.Equal(t, "price_advanced", id)

	_, err = s.getPriceIDForTier("free")
	assert.Error(t, err)
}

func TestHandleCheckoutCompleted_AppliesTierCascade(t *testing.T) {
	service, client, row := setupBillingTest(t)
	ctx := context.Background()

	email := &mockTierEmail{}
	service.SetEmailSender(email)

	err := service.processEvent(ctx, checkoutEvent(t, row.ID, "advanced"))
	require.NoError(t, err)

	fresh, err := client.Clinic.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, entclinic.TierAdvanced, fresh.Tier)
	assert.Contains(t, fresh.Features, "featured_placement")

	assert.Equal(t, "owner@apexclinic.com", email.toEmail)
	assert.Equal(t, "advanced", email.tier)
}

func TestHandleSubscriptionDeleted_DowngradesToFree(t *testing.T) {
	service, client, row := setupBillingTest(t)
	ctx := context.Background()

	require.NoError(t, service.processEvent(ctx, checkoutEvent(t, row.ID, "standard")))

	raw, err := json.Marshal(map[string]any{
		"id": "sub_test_123",
		"metadata": map[string]string{
			"clinic_id": strconv.Itoa(row.ID),
			"tier":      "standard",
		},
	})
	require.NoError(t, err)

	err = service.processEvent(ctx, stripe.Event{
		Type: "customer.subscription.deleted",
		Data: &stripe.EventData{Raw: raw},
	})
	require.NoError(t, err)

	fresh, err := client.Clinic.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, entclinic.TierFree, fresh.Tier)
	assert.Empty(t, fresh.Features)
}

func TestProcessEvent_MissingMetadata(t *testing.T) {
	service, _, _ := setupBillingTest(t)

	raw, err := json.Marshal(map[string]any{"id": "cs_test_456", "metadata": map[string]string{}})
	require.NoError(t, err)

	err = service.processEvent(context.Background(), stripe.Event{
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clinic_id")
}

func TestProcessEvent_IgnoresUnknownTypes(t *testing.T) {
	service, _, _ := setupBillingTest(t)

	err := service.processEvent(context.Background(), stripe.Event{
		Type: "invoice.paid",
		Data: &stripe.EventData{Raw: []byte(`{}`)},
	})
	assert.NoError(t, err)
}

func TestGetPricing(t *testing.T) {
	s := &Service{config: &Config{}}

	pricing := s.GetPricing()
	require.Len(t, pricing, 3)
	assert.Equal(t, "free", pricing[0].Name)
	assert.Equal(t, "standard", pricing[1].Name)
	assert.Equal(t, "advanced", pricing[2].Name)
	assert.Contains(t, pricing[2].Features, "lead_dashboard")
}
