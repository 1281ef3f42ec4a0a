package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/menshealthfinder/api/pkg/api/errors"
	"github.com/menshealthfinder/api/pkg/clinics"
	"github.com/menshealthfinder/api/pkg/models"
)

// ClinicHandler handles public directory and admin clinic endpoints
type ClinicHandler struct {
	clinicService *clinics.Service
	validator     *validator.Validate
}

// NewClinicHandler creates a new clinic handler
func NewClinicHandler(clinicService *clinics.Service) *ClinicHandler {
	return &ClinicHandler{
		clinicService: clinicService,
		validator:     validator.New(),
	}
}

// Search handles GET /clinics with directory filters.
func (h *ClinicHandler) Search(c echo.Context) error {
	var req models.ClinicSearchRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Limit == 0 {
		req.Limit = 20
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	results, err := h.clinicService.Search(c.Request().Context(), req)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, results)
}

// Nearby handles GET /clinics/nearby, ordered by distance from a point.
func (h *ClinicHandler) Nearby(c echo.Context) error {
	var req models.NearbyRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if req.Limit == 0 {
		req.Limit = 20
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	results, err := h.clinicService.Nearby(c.Request().Context(), req)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, results)
}

// GetBySlug handles GET /clinics/:slug.
func (h *ClinicHandler) GetBySlug(c echo.Context) error {
	clinic, err := h.clinicService.GetBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		if err == clinics.ErrClinicNotFound {
			return errors.NotFoundError(c, "clinic")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, clinic)
}

// Create handles POST /admin/clinics.
func (h *ClinicHandler) Create(c echo.Context) error {
	var req models.CreateClinicRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	clinic, err := h.clinicService.Create(c.Request().Context(), req)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, clinic)
}

// Update handles PATCH /admin/clinics/:id.
func (h *ClinicHandler) Update(c echo.Context) error {
	clinicID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c)
	}

	var req models.UpdateClinicRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	clinic, err := h.clinicService.Update(c.Request().Context(), clinicID, req)
	if err != nil {
		if err == clinics.ErrClinicNotFound {
			return errors.NotFoundError(c, "clinic")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, clinic)
}

// ChangeTier handles PUT /admin/clinics/:id/tier.
func (h *ClinicHandler) ChangeTier(c echo.Context) error {
	clinicID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c)
	}

	var req models.ChangeTierRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID := operatorID(c)
	clinic, err := h.clinicService.ChangeTier(c.Request().Context(), clinicID, req, userID)
	if err != nil {
		if err == clinics.ErrClinicNotFound {
			return errors.NotFoundError(c, "clinic")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, clinic)
}

// ChangeStatus handles PUT /admin/clinics/:id/status.
func (h *ClinicHandler) ChangeStatus(c echo.Context) error {
	clinicID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c)
	}

	var req models.ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID := operatorID(c)
	clinic, err := h.clinicService.ChangeStatus(c.Request().Context(), clinicID, req, userID)
	if err != nil {
		switch err {
		case clinics.ErrClinicNotFound:
			return errors.NotFoundError(c, "clinic")
		case clinics.ErrInvalidTransition:
			return errors.ConflictError(c, "Status transition not allowed")
		default:
			return errors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, clinic)
}

// Merge handles POST /admin/clinics/merge.
func (h *ClinicHandler) Merge(c echo.Context) error {
	var req models.MergeClinicsRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID := operatorID(c)
	clinic, err := h.clinicService.Merge(c.Request().Context(), req, userID)
	if err != nil {
		switch err {
		case clinics.ErrClinicNotFound:
			return errors.NotFoundError(c, "clinic")
		case clinics.ErrMergeSameClinic:
			return errors.ConflictError(c, "Cannot merge a clinic into itself")
		default:
			return errors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, clinic)
}

// parseIDParam parses a numeric path parameter.
func parseIDParam(c echo.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	return id, err == nil
}

// invalidIDResponse writes the shared 400 for malformed numeric ids.
func invalidIDResponse(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid_id",
		Message: "ID must be a number",
	})
}

// operatorID returns the authenticated operator's id, or nil outside an
// authenticated context.
func operatorID(c echo.Context) *int {
	if userID, ok := c.Get("user_id").(int); ok {
		return &userID
	}
	return nil
}
