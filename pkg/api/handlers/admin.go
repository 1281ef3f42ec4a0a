package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/followuptask"
	"github.com/menshealthfinder/api/ent/review"
	"github.com/menshealthfinder/api/pkg/api/errors"
	"github.com/menshealthfinder/api/pkg/audit"
	"github.com/menshealthfinder/api/pkg/content"
	"github.com/menshealthfinder/api/pkg/email"
	"github.com/menshealthfinder/api/pkg/engagement"
	"github.com/menshealthfinder/api/pkg/export"
	"github.com/menshealthfinder/api/pkg/importer"
	"github.com/menshealthfinder/api/pkg/models"
	"github.com/menshealthfinder/api/pkg/places"
	"github.com/menshealthfinder/api/pkg/revenue"
	"github.com/menshealthfinder/api/pkg/sitemap"
)

// AdminHandler handles the operator dashboard and back-office operations
type AdminHandler struct {
	db            *ent.Client
	engagementSvc *engagement.Service
	revenueSvc    *revenue.Service
	emailService  *email.Service
	contentGen    *content.Generator
	rescraper     *places.Rescraper
	importer      *importer.Service
	sitemapGen    *sitemap.Generator
	auditService  *audit.Service
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(db *ent.Client, engagementSvc *engagement.Service, revenueSvc *revenue.Service, emailService *email.Service, contentGen *content.Generator, rescraper *places.Rescraper, importSvc *importer.Service, sitemapGen *sitemap.Generator, auditService *audit.Service) *AdminHandler {
	return &AdminHandler{
		db:            db,
		engagementSvc: engagementSvc,
		revenueSvc:    revenueSvc,
		emailService:  emailService,
		contentGen:    contentGen,
		rescraper:     rescraper,
		importer:      importSvc,
		sitemapGen:    sitemapGen,
		auditService:  auditService,
	}
}

// Dashboard handles GET /admin/dashboard with headline operational counts.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	totalClinics, err := h.db.Clinic.Query().Count(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	activeClinics, err := h.db.Clinic.Query().Where(clinic.StatusEQ(clinic.StatusActive)).Count(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	paidClinics, err := h.db.Clinic.Query().Where(clinic.TierNEQ(clinic.TierFree)).Count(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	pendingReviews, err := h.db.Review.Query().Where(review.StatusEQ(review.StatusPending)).Count(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	activeContacts, err := h.db.Contact.Query().Where(contact.StatusEQ(contact.StatusActive)).Count(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	openTasks, err := h.db.FollowUpTask.Query().Where(followuptask.StatusEQ(followuptask.StatusPending)).Count(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}
	tasksDueToday, err := h.db.FollowUpTask.Query().
		Where(
			followuptask.StatusEQ(followuptask.StatusPending),
			followuptask.DueAtLTE(time.Now().Add(24*time.Hour)),
		).
		Count(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"clinics": map[string]int{
			"total":  totalClinics,
			"active": activeClinics,
			"paid":   paidClinics,
		},
		"reviews": map[string]int{
			"pending": pendingReviews,
		},
		"contacts": map[string]int{
			"active": activeContacts,
		},
		"tasks": map[string]int{
			"open":      openTasks,
			"due_today": tasksDueToday,
		},
	})
}

// GhostListings handles GET /admin/engagement/ghosts: active listings with no
// tracked engagement at all.
func (h *AdminHandler) GhostListings(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	rows, err := h.engagementSvc.GhostListings(c.Request().Context(), limit)
	if err != nil {
		return errors.InternalError(c, err)
	}

	ghosts := make([]map[string]interface{}, len(rows))
	for i, row := range rows {
		ghosts[i] = map[string]interface{}{
			"id":    row.ID,
			"name":  row.Name,
			"slug":  row.Slug,
			"city":  row.City,
			"state": row.State,
			"tier":  string(row.Tier),
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  ghosts,
		"count": len(ghosts),
	})
}

// RecomputeEngagement handles POST /admin/engagement/recompute over all
// listings, or a single one when clinic_id is given.
func (h *AdminHandler) RecomputeEngagement(c echo.Context) error {
	ctx := c.Request().Context()

	if raw := c.QueryParam("clinic_id"); raw != "" {
		clinicID, err := strconv.Atoi(raw)
		if err != nil {
			return invalidIDResponse(c)
		}
		snapshot, err := h.engagementSvc.RecomputeClinic(ctx, clinicID)
		if err != nil {
			if err == engagement.ErrClinicNotFound {
				return errors.NotFoundError(c, "clinic")
			}
			return errors.InternalError(c, err)
		}
		return c.JSON(http.StatusOK, snapshot)
	}

	updated, err := h.engagementSvc.RecomputeAll(ctx)
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int{"updated": updated})
}

// Opportunities handles GET /admin/opportunities, the ranked lost-revenue
// report over active listings.
func (h *AdminHandler) Opportunities(c echo.Context) error {
	report, err := h.revenueSvc.Opportunities(c.Request().Context())
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// ExportOpportunities handles GET /admin/opportunities/export as an .xlsx
// download.
func (h *AdminHandler) ExportOpportunities(c echo.Context) error {
	report, err := h.revenueSvc.Opportunities(c.Request().Context())
	if err != nil {
		return errors.InternalError(c, err)
	}

	filename := fmt.Sprintf("opportunities_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Response().WriteHeader(http.StatusOK)

	return export.WriteOpportunities(c.Response(), report)
}

// SendUpgradeEmail handles POST /admin/clinics/:slug/upgrade-email, sending
// the estimated-missed-revenue pitch to the clinic's contact address.
func (h *AdminHandler) SendUpgradeEmail(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")

	row, err := h.db.Clinic.Query().Where(clinic.SlugEQ(slug)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "clinic")
		}
		return errors.DatabaseError(c, err)
	}
	if row.Email == "" {
		return errors.ConflictError(c, "Clinic has no contact email on file")
	}

	report, err := h.revenueSvc.Opportunities(ctx)
	if err != nil {
		return errors.InternalError(c, err)
	}

	var pitch *email.UpgradePitch
	for _, rec := range report.Recommendations {
		if rec.Slug == slug {
			pitch = &email.UpgradePitch{
				ClinicName:     row.Name,
				City:           row.City,
				State:          row.State,
				MonthlyRevenue: rec.EstimatedLoss,
				PrimaryIssue:   rec.PrimaryIssue,
			}
			break
		}
	}
	if pitch == nil {
		return errors.ConflictError(c, "No estimated opportunity for this clinic")
	}

	if err := h.emailService.SendUpgradePitch(row.Email, *pitch); err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Upgrade pitch sent",
	})
}

// RegenerateContent handles POST /admin/clinics/:slug/regenerate-content,
// rewriting the listing's SEO description.
func (h *AdminHandler) RegenerateContent(c echo.Context) error {
	ctx := c.Request().Context()

	row, err := h.db.Clinic.Query().Where(clinic.SlugEQ(c.Param("slug"))).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return errors.NotFoundError(c, "clinic")
		}
		return errors.DatabaseError(c, err)
	}

	description, err := h.contentGen.Describe(ctx, row)
	if err != nil {
		return errors.InternalError(c, err)
	}

	updated, err := row.Update().SetDescription(description).Save(ctx)
	if err != nil {
		return errors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"slug":        updated.Slug,
		"description": updated.Description,
	})
}

// Rescrape handles POST /admin/clinics/:slug/rescrape, refreshing directory
// fields from the place provider.
func (h *AdminHandler) Rescrape(c echo.Context) error {
	row, err := h.rescraper.Rescrape(c.Request().Context(), c.Param("slug"))
	if err != nil {
		switch err {
		case places.ErrClinicNotFound:
			return errors.NotFoundError(c, "clinic")
		case places.ErrNoPlaceID:
			return errors.ConflictError(c, "Clinic has no place ID to rescrape from")
		default:
			return errors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"slug":        row.Slug,
		"address":     row.Address,
		"postal_code": row.PostalCode,
		"phone":       row.Phone,
		"website":     row.Website,
	})
}

// RegenerateSitemap handles POST /admin/sitemap/regenerate.
func (h *AdminHandler) RegenerateSitemap(c echo.Context) error {
	urls, err := h.sitemapGen.Regenerate(c.Request().Context())
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]int{"urls": urls})
}

// ImportCSV handles POST /admin/import/csv with a multipart "file" field.
// Query flags: dry_run, merge.
func (h *AdminHandler) ImportCSV(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "missing_file",
			Message: "Multipart field 'file' is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.InternalError(c, err)
	}
	defer file.Close()

	opts := importer.DefaultOptions()
	opts.DryRun = c.QueryParam("dry_run") == "true"
	opts.Merge = c.QueryParam("merge") == "true"

	result, err := h.importer.ImportCSV(c.Request().Context(), file, opts)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "import_error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, result)
}

// AuditLogs handles GET /admin/audit/logs. With critical=true only the
// critical actions are returned.
func (h *AdminHandler) AuditLogs(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	var (
		logs []*ent.AuditLog
		err  error
	)
	if c.QueryParam("critical") == "true" {
		logs, err = h.auditService.GetCriticalLogs(c.Request().Context(), limit)
	} else {
		logs, err = h.auditService.GetRecentLogs(c.Request().Context(), limit)
	}
	if err != nil {
		return errors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  logs,
		"count": len(logs),
	})
}
