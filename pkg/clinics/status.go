package clinics

import (
	"context"
	"errors"
	"fmt"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/pkg/models"
)

// ErrInvalidTransition is returned for a status change the state machine
// does not allow.
var ErrInvalidTransition = errors.New("invalid status transition")

// allowedTransitions is the listing status state machine. Flagged listings
// must be explicitly resolved back to active (or parked as paused) by an
// operator.
var allowedTransitions = map[clinic.Status][]clinic.Status{
	clinic.StatusActive:  {clinic.StatusPaused, clinic.StatusFlagged},
	clinic.StatusPaused:  {clinic.StatusActive, clinic.StatusFlagged},
	clinic.StatusFlagged: {clinic.StatusActive, clinic.StatusPaused},
}

func transitionAllowed(from, to clinic.Status) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ChangeStatus transitions a clinic's listing status and writes an audit
// entry. A no-op transition is rejected.
func (s *Service) ChangeStatus(ctx context.Context, id int, req models.ChangeStatusRequest, userID *int) (*models.ClinicResponse, error) {
	row, err := s.db.Clinic.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}

	newStatus := clinic.Status(req.Status)
	if !transitionAllowed(row.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, row.Status, newStatus)
	}

	updated, err := row.Update().
		SetStatus(newStatus).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to change status: %w", err)
	}

	if s.audit != nil {
		_ = s.audit.LogClinicStatusChange(ctx, userID, id, string(row.Status), string(newStatus), req.Reason)
	}
	_ = s.InvalidateCache(ctx)

	response := toClinicResponse(updated)
	return &response, nil
}
