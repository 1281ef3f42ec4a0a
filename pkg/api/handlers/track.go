package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/pkg/api/errors"
	"github.com/menshealthfinder/api/pkg/location"
	"github.com/menshealthfinder/api/pkg/metrics"
	"github.com/menshealthfinder/api/pkg/models"
	"github.com/menshealthfinder/api/pkg/session"
)

// TrackHandler handles the public tracking beacon and location detection
type TrackHandler struct {
	sessions  *session.Service
	db        *ent.Client
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewTrackHandler creates a new tracking handler
func NewTrackHandler(sessions *session.Service, db *ent.Client, m *metrics.Metrics) *TrackHandler {
	return &TrackHandler{
		sessions:  sessions,
		db:        db,
		metrics:   m,
		validator: validator.New(),
	}
}

// Track handles POST /track. A missing, unknown, or expired session id gets a
// fresh session transparently; the response echoes the id the client must
// keep using.
func (h *TrackHandler) Track(c echo.Context) error {
	var req models.TrackRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	ctx := c.Request().Context()

	var clinicID *int
	if req.ClinicSlug != "" {
		// Unknown slugs are dropped rather than rejected; the beacon must
		// never block the page.
		id, err := h.db.Clinic.Query().
			Where(clinic.SlugEQ(req.ClinicSlug)).
			OnlyID(ctx)
		if err == nil {
			clinicID = &id
		}
	}

	state, err := h.sessions.Track(ctx, req.SessionID, session.TrackInput{
		Name: req.Action,
		Data: req.Data,
		Start: session.StartInput{
			ClinicID: clinicID,
			PageURL:  req.PageURL,
			Referrer: req.Referrer,
			Device:   req.Device,
			Browser:  req.Browser,
		},
	})
	if err != nil {
		return errors.InternalError(c, err)
	}

	if h.metrics != nil {
		h.metrics.RecordTrackEvent(req.Action)
	}

	return c.JSON(http.StatusOK, models.TrackResponse{SessionID: state.ID})
}

// DetectLocation handles GET /location/detect, resolving the visitor's state
// from the query or CDN headers with a fallback default.
func (h *TrackHandler) DetectLocation(c echo.Context) error {
	detection := location.Detect(c.Request())
	return c.JSON(http.StatusOK, detection)
}
