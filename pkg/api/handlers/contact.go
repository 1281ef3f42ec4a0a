package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/menshealthfinder/api/pkg/api/errors"
	"github.com/menshealthfinder/api/pkg/contacts"
	"github.com/menshealthfinder/api/pkg/followup"
	"github.com/menshealthfinder/api/pkg/models"
)

// ContactHandler handles the CRM endpoints (admin only)
type ContactHandler struct {
	contactService  *contacts.Service
	followupService *followup.Service
	validator       *validator.Validate
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *contacts.Service, followupService *followup.Service) *ContactHandler {
	return &ContactHandler{
		contactService:  contactService,
		followupService: followupService,
		validator:       validator.New(),
	}
}

// List handles GET /admin/contacts with stage/priority/clinic filters.
// Archived contacts stay hidden unless the status filter asks for them.
func (h *ContactHandler) List(c echo.Context) error {
	page, limit := pagingParams(c)

	filters := contacts.ListFilters{
		Stage:    c.QueryParam("stage"),
		Priority: c.QueryParam("priority"),
		Status:   c.QueryParam("status"),
		Page:     page,
		Limit:    limit,
	}
	if raw := c.QueryParam("clinic_id"); raw != "" {
		clinicID, err := strconv.Atoi(raw)
		if err != nil {
			return invalidIDResponse(c)
		}
		filters.ClinicID = &clinicID
	}

	result, err := h.contactService.List(c.Request().Context(), filters)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// Create handles POST /admin/contacts.
func (h *ContactHandler) Create(c echo.Context) error {
	var req models.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	contact, err := h.contactService.Create(c.Request().Context(), req)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, contact)
}

// Get handles GET /admin/contacts/:id.
func (h *ContactHandler) Get(c echo.Context) error {
	contactID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c)
	}

	contact, err := h.contactService.Get(c.Request().Context(), contactID)
	if err != nil {
		if err == contacts.ErrContactNotFound {
			return errors.NotFoundError(c, "contact")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, contact)
}

// Update handles PATCH /admin/contacts/:id.
func (h *ContactHandler) Update(c echo.Context) error {
	contactID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c)
	}

	var req models.UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	contact, err := h.contactService.Update(c.Request().Context(), contactID, req)
	if err != nil {
		switch err {
		case contacts.ErrContactNotFound:
			return errors.NotFoundError(c, "contact")
		case contacts.ErrContactArchived:
			return errors.ConflictError(c, "Contact is archived")
		default:
			return errors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, contact)
}

// Archive handles DELETE /admin/contacts/:id. Contacts are never hard-deleted.
func (h *ContactHandler) Archive(c echo.Context) error {
	contactID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c)
	}

	if err := h.contactService.Archive(c.Request().Context(), contactID); err != nil {
		if err == contacts.ErrContactNotFound {
			return errors.NotFoundError(c, "contact")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Contact archived",
	})
}

// Restore handles POST /admin/contacts/:id/restore.
func (h *ContactHandler) Restore(c echo.Context) error {
	contactID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c)
	}

	if err := h.contactService.Restore(c.Request().Context(), contactID); err != nil {
		if err == contacts.ErrContactNotFound {
			return errors.NotFoundError(c, "contact")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Contact restored",
	})
}

// ChangeStage handles PUT /admin/contacts/:id/stage.
func (h *ContactHandler) ChangeStage(c echo.Context) error {
	contactID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c)
	}

	var req models.ChangeStageRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	contact, err := h.contactService.ChangeStage(c.Request().Context(), contactID, req)
	if err != nil {
		switch err {
		case contacts.ErrContactNotFound:
			return errors.NotFoundError(c, "contact")
		case contacts.ErrContactArchived:
			return errors.ConflictError(c, "Contact is archived")
		case contacts.ErrStageRegression:
			return errors.ConflictError(c, "Moving backwards in the pipeline requires the override flag")
		default:
			return errors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, contact)
}

// LogActivity handles POST /admin/contacts/:id/activities.
func (h *ContactHandler) LogActivity(c echo.Context) error {
	contactID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c)
	}

	var req models.LogActivityRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	authorID := operatorID(c)
	activity, err := h.contactService.LogActivity(c.Request().Context(), contactID, req, authorID)
	if err != nil {
		switch err {
		case contacts.ErrContactNotFound:
			return errors.NotFoundError(c, "contact")
		case contacts.ErrContactArchived:
			return errors.ConflictError(c, "Contact is archived")
		default:
			return errors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, activity)
}

// ListActivities handles GET /admin/contacts/:id/activities, newest first.
func (h *ContactHandler) ListActivities(c echo.Context) error {
	contactID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c)
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	activities, err := h.contactService.ListActivities(c.Request().Context(), contactID, limit)
	if err != nil {
		if err == contacts.ErrContactNotFound {
			return errors.NotFoundError(c, "contact")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, activities)
}

// ListTasks handles GET /admin/tasks with contact/status/due filters.
func (h *ContactHandler) ListTasks(c echo.Context) error {
	filters := contacts.TaskFilters{
		Status: c.QueryParam("status"),
	}
	if raw := c.QueryParam("contact_id"); raw != "" {
		contactID, err := strconv.Atoi(raw)
		if err != nil {
			return invalidIDResponse(c)
		}
		filters.ContactID = &contactID
	}
	if raw := c.QueryParam("due_before"); raw != "" {
		dueBefore, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_date",
				Message: "due_before must be RFC3339",
			})
		}
		filters.DueBefore = &dueBefore
	}
	if raw := c.QueryParam("limit"); raw != "" {
		filters.Limit, _ = strconv.Atoi(raw)
	}

	tasks, err := h.contactService.ListTasks(c.Request().Context(), filters)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, tasks)
}

// CompleteTask handles PUT /admin/tasks/:id/complete.
func (h *ContactHandler) CompleteTask(c echo.Context) error {
	return h.closeTask(c, h.contactService.CompleteTask)
}

// CancelTask handles PUT /admin/tasks/:id/cancel.
func (h *ContactHandler) CancelTask(c echo.Context) error {
	return h.closeTask(c, h.contactService.CancelTask)
}

// RunFollowups handles POST /admin/followups/run, evaluating every rule
// against every active contact on demand.
func (h *ContactHandler) RunFollowups(c echo.Context) error {
	result, err := h.followupService.EvaluateAllContacts(c.Request().Context())
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// RunContactFollowup handles POST /admin/contacts/:id/followups/run.
func (h *ContactHandler) RunContactFollowup(c echo.Context) error {
	contactID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c)
	}

	result, err := h.followupService.EvaluateContact(c.Request().Context(), contactID)
	if err != nil {
		if err == followup.ErrContactNotFound {
			return errors.NotFoundError(c, "contact")
		}
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *ContactHandler) closeTask(c echo.Context, apply func(ctx context.Context, taskID int) (*models.TaskResponse, error)) error {
	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return invalidIDResponse(c)
	}

	task, err := apply(c.Request().Context(), taskID)
	if err != nil {
		switch err {
		case contacts.ErrTaskNotFound:
			return errors.NotFoundError(c, "task")
		case contacts.ErrTaskClosed:
			return errors.ConflictError(c, "Task is already closed")
		default:
			return errors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, task)
}
