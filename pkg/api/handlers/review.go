package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/menshealthfinder/api/pkg/api/errors"
	"github.com/menshealthfinder/api/pkg/models"
	"github.com/menshealthfinder/api/pkg/reviews"
)

// ReviewHandler handles public review submission and admin moderation
type ReviewHandler struct {
	reviewService *reviews.Service
	validator     *validator.Validate
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *reviews.Service) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validator:     validator.New(),
	}
}

// Submit handles POST /clinics/:slug/reviews. New reviews always land in the
// moderation queue.
func (h *ReviewHandler) Submit(c echo.Context) error {
	var req models.SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	review, err := h.reviewService.Submit(c.Request().Context(), c.Param("slug"), req)
	if err != nil {
		if err == reviews.ErrClinicNotFound {
			return errors.NotFoundError(c, "clinic")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, review)
}

// ListForClinic handles GET /clinics/:slug/reviews (published only).
func (h *ReviewHandler) ListForClinic(c echo.Context) error {
	page, limit := pagingParams(c)

	result, err := h.reviewService.ListForClinic(c.Request().Context(), c.Param("slug"), page, limit)
	if err != nil {
		if err == reviews.ErrClinicNotFound {
			return errors.NotFoundError(c, "clinic")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// MarkHelpful handles POST /reviews/:id/helpful.
func (h *ReviewHandler) MarkHelpful(c echo.Context) error {
	return h.vote(c, h.reviewService.MarkHelpful)
}

// Report handles POST /reviews/:id/report.
func (h *ReviewHandler) Report(c echo.Context) error {
	return h.vote(c, h.reviewService.Report)
}

// ListPending handles GET /admin/reviews/pending, oldest first.
func (h *ReviewHandler) ListPending(c echo.Context) error {
	page, limit := pagingParams(c)

	result, err := h.reviewService.ListPending(c.Request().Context(), page, limit)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// Moderate handles PUT /admin/reviews/:id/moderate.
func (h *ReviewHandler) Moderate(c echo.Context) error {
	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c)
	}

	var req models.ModerateReviewRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	userID := operatorID(c)
	review, err := h.reviewService.Moderate(c.Request().Context(), reviewID, req, userID)
	if err != nil {
		switch err {
		case reviews.ErrReviewNotFound:
			return errors.NotFoundError(c, "review")
		case reviews.ErrAlreadyModerated:
			return errors.ConflictError(c, "Review has already been moderated")
		default:
			return errors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, review)
}

// pagingParams reads page/limit query parameters with the shared defaults.
func pagingParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return page, limit
}

func (h *ReviewHandler) vote(c echo.Context, apply func(ctx context.Context, reviewID int) (*models.ReviewResponse, error)) error {
	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c)
	}

	review, err := apply(c.Request().Context(), reviewID)
	if err != nil {
		switch err {
		case reviews.ErrReviewNotFound:
			return errors.NotFoundError(c, "review")
		case reviews.ErrReviewNotPublished:
			return errors.ConflictError(c, "Review is not published")
		default:
			return errors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, review)
}
