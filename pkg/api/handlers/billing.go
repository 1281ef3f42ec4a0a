package handlers

import (
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/menshealthfinder/api/pkg/api/errors"
	"github.com/menshealthfinder/api/pkg/billing"
	"github.com/menshealthfinder/api/pkg/clinics"
	"github.com/menshealthfinder/api/pkg/models"
)

// BillingHandler handles checkout, pricing, and the Stripe webhook
type BillingHandler struct {
	billingService *billing.Service
	validator      *validator.Validate
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *billing.Service) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		validator:      validator.New(),
	}
}

// CheckoutRequest starts a tier upgrade purchase for a clinic.
type CheckoutRequest struct {
	ClinicSlug string `json:"clinic_slug" validate:"required"`
	Tier       string `json:"tier" validate:"required,oneof=standard advanced"`
}

// CreateCheckout handles POST /billing/checkout.
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	checkout, err := h.billingService.CreateCheckoutSession(c.Request().Context(), req.ClinicSlug, req.Tier)
	if err != nil {
		if err == clinics.ErrClinicNotFound {
			return errors.NotFoundError(c, "clinic")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, checkout)
}

// GetPricing handles GET /billing/pricing.
func (h *BillingHandler) GetPricing(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"tiers": h.billingService.GetPricing(),
	})
}

// Webhook handles POST /webhook/stripe. The raw body is needed for signature
// verification, so this route must bypass any body-parsing middleware.
func (h *BillingHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_payload",
			Message: "Could not read request body",
		})
	}

	signature := c.Request().Header.Get("Stripe-Signature")
	if err := h.billingService.HandleWebhook(c.Request().Context(), payload, signature); err != nil {
		// Stripe retries on non-2xx, so signature failures and processing
		// errors both surface as 400.
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "webhook_error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
