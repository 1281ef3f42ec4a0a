// Package billing handles Stripe checkout and webhooks for clinic tier
// upgrades.
package billing

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"github.com/menshealthfinder/api/ent"
	entclinic "github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/pkg/clinics"
	"github.com/menshealthfinder/api/pkg/metrics"
	"github.com/menshealthfinder/api/pkg/models"
	"github.com/stripe/stripe-go/v76"
	checkoutsession "github.com/stripe/stripe-go/v76/checkout/session"
	"github.com/stripe/stripe-go/v76/webhook"
)

// Config holds Stripe configuration
type Config struct {
	SecretKey     string
	WebhookSecret string
	PriceStandard string
	PriceAdvanced string
	SuccessURL    string
	CancelURL     string
}

// EmailSender abstracts email sending for billing notifications.
type EmailSender interface {
	SendTierActivated(toEmail, clinicName, tier string) error
}

// Service handles Stripe billing operations
type Service struct {
	db      *ent.Client
	tiers   *clinics.Service
	config  *Config
	email   EmailSender
	metrics *metrics.Metrics
}

// CheckoutResponse is returned to the frontend to redirect into Stripe.
type CheckoutResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at"`
}

// NewService creates a new billing service
func NewService(db *ent.Client, tierService *clinics.Service, config *Config) *Service {
	stripe.Key = config.SecretKey

	return &Service{
		db:     db,
		tiers:  tierService,
		config: config,
	}
}

// SetEmailSender sets the email sender for billing notifications.
func (s *Service) SetEmailSender(e EmailSender) {
	s.email = e
}

// SetMetrics attaches the Prometheus counters.
func (s *Service) SetMetrics(m *metrics.Metrics) {
	s.metrics = m
}

// CreateCheckoutSession creates a Stripe checkout session for upgrading a
// clinic to a paid tier. The clinic ID rides in the metadata so the webhook
// can apply the tier after payment.
func (s *Service) CreateCheckoutSession(ctx context.Context, clinicSlug, tier string) (*CheckoutResponse, error) {
	priceID, err := s.getPriceIDForTier(tier)
	if err != nil {
		return nil, err
	}

	row, err := s.db.Clinic.Query().
		Where(entclinic.Slug(clinicSlug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, clinics.ErrClinicNotFound
		}
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}

	metadata := map[string]string{
		"clinic_id": strconv.Itoa(row.ID),
		"tier":      tier,
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.config.SuccessURL),
		CancelURL:  stripe.String(s.config.CancelURL),
		Metadata:   metadata,
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			// Subscription lifecycle events need the same metadata.
			Metadata: metadata,
		},
	}
	if row.Email != "" {
		params.CustomerEmail = stripe.String(row.Email)
	}

	sess, err := checkoutsession.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutResponse{
		SessionID: sess.ID,
		URL:       sess.URL,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}

// HandleWebhook verifies and processes a Stripe webhook delivery.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.config.WebhookSecret)
	if err != nil {
		return fmt.Errorf("webhook signature verification failed: %w", err)
	}
	return s.processEvent(ctx, event)
}

func (s *Service) processEvent(ctx context.Context, event stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		return s.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.deleted":
		return s.handleSubscriptionDeleted(ctx, event)
	default:
		log.Printf("📝 Ignoring webhook event: %s", event.Type)
		return nil
	}
}

// handleCheckoutCompleted applies the purchased tier. The tier change runs
// through the clinic service so the feature cascade and audit entry happen
// exactly as they do for a manual change.
func (s *Service) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}

	clinicID, tier, err := metadataTarget(sess.Metadata)
	if err != nil {
		return err
	}

	updated, err := s.tiers.ChangeTier(ctx, clinicID, models.ChangeTierRequest{Tier: tier}, nil)
	if err != nil {
		return fmt.Errorf("failed to apply tier: %w", err)
	}
	log.Printf("✅ Checkout completed: clinic=%s upgraded to %s", updated.Slug, tier)

	if s.metrics != nil {
		s.metrics.RecordSubscriptionSold(tier)
	}

	if s.email != nil && updated.Email != "" {
		if err := s.email.SendTierActivated(updated.Email, updated.Name, tier); err != nil {
			log.Printf("⚠️  Failed to send activation email: %v", err)
		}
	}
	return nil
}

// handleSubscriptionDeleted downgrades the clinic back to the free tier.
// Tier-gated content stays in place; only the feature flags shrink.
func (s *Service) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		return fmt.Errorf("failed to unmarshal subscription: %w", err)
	}

	clinicID, _, err := metadataTarget(sub.Metadata)
	if err != nil {
		return err
	}

	updated, err := s.tiers.ChangeTier(ctx, clinicID, models.ChangeTierRequest{Tier: string(entclinic.TierFree)}, nil)
	if err != nil {
		return fmt.Errorf("failed to downgrade tier: %w", err)
	}
	log.Printf("🔄 Subscription ended: clinic=%s downgraded to free", updated.Slug)
	return nil
}

func metadataTarget(metadata map[string]string) (int, string, error) {
	clinicIDStr, ok := metadata["clinic_id"]
	if !ok {
		return 0, "", fmt.Errorf("clinic_id not found in metadata")
	}
	clinicID, err := strconv.Atoi(clinicIDStr)
	if err != nil {
		return 0, "", fmt.Errorf("invalid clinic_id in metadata: %q", clinicIDStr)
	}
	return clinicID, metadata["tier"], nil
}

func (s *Service) getPriceIDForTier(tier string) (string, error) {
	switch tier {
	case "standard":
		return s.config.PriceStandard, nil
	case "advanced":
		return s.config.PriceAdvanced, nil
	default:
		return "", fmt.Errorf("no price configured for tier: %s", tier)
	}
}

// PricingTier describes one purchasable tier for the pricing page.
type PricingTier struct {
	Name         string   `json:"name"`
	PriceMonthly int      `json:"price_monthly"`
	Features     []string `json:"features"`
}

// GetPricing returns the public pricing table.
func (s *Service) GetPricing() []PricingTier {
	return []PricingTier{
		{
			Name:         "free",
			PriceMonthly: 0,
			Features:     clinics.FeaturesForTier(entclinic.TierFree),
		},
		{
			Name:         "standard",
			PriceMonthly: 99,
			Features:     clinics.FeaturesForTier(entclinic.TierStandard),
		},
		{
			Name:         "advanced",
			PriceMonthly: 249,
			Features:     clinics.FeaturesForTier(entclinic.TierAdvanced),
		},
	}
}
