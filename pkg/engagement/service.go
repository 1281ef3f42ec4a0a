// Package engagement converts raw 30-day click/call counters into a
// normalized score and tri-state status per clinic listing.
package engagement

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/leadsession"
)

// ErrClinicNotFound is returned when the clinic doesn't exist.
var ErrClinicNotFound = errors.New("clinic not found")

// Status is the tri-state engagement classification.
type Status string

const (
	StatusEngaged Status = "engaged"
	StatusLow     Status = "low"
	StatusNone    Status = "none"
)

// Scoring weights. Calls are worth more than clicks because a call click is
// the strongest lead signal the site can observe.
const (
	clickWeight = 2
	callWeight  = 6

	// engagedThreshold is the minimum score for "engaged" status.
	engagedThreshold = 30
)

// Window is the trailing aggregation window for engagement counters.
const Window = 30 * 24 * time.Hour

// Service recomputes engagement snapshots for clinic listings.
type Service struct {
	client *ent.Client
}

// NewService creates a new engagement service.
func NewService(client *ent.Client) *Service {
	return &Service{client: client}
}

// Score computes the 0-100 engagement score from raw counters. The score is
// monotonic in both inputs and saturates at 100.
func Score(clicks, calls int) int {
	if clicks < 0 {
		clicks = 0
	}
	if calls < 0 {
		calls = 0
	}
	score := clicks*clickWeight + calls*callWeight
	if score > 100 {
		score = 100
	}
	return score
}

// Classify maps a score and raw counters to a status. Zero activity is
// always "none" regardless of score arithmetic.
func Classify(clicks, calls int) Status {
	if clicks <= 0 && calls <= 0 {
		return StatusNone
	}
	if Score(clicks, calls) >= engagedThreshold {
		return StatusEngaged
	}
	return StatusLow
}

// Snapshot is the recomputed engagement state for one clinic.
type Snapshot struct {
	ClinicID  int       `json:"clinic_id"`
	Slug      string    `json:"slug"`
	Clicks    int       `json:"clicks_30d"`
	Calls     int       `json:"calls_30d"`
	Score     int       `json:"score"`
	Status    Status    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RecomputeClinic aggregates the clinic's session actions over the trailing
// window and writes the refreshed snapshot onto the listing document. The
// score is always derived from the raw counters, never read back.
func (s *Service) RecomputeClinic(ctx context.Context, clinicID int) (*Snapshot, error) {
	c, err := s.client.Clinic.Query().Where(clinic.ID(clinicID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("failed to fetch clinic: %w", err)
	}

	clicks, calls, err := s.countWindow(ctx, clinicID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	score := Score(clicks, calls)
	status := Classify(clicks, calls)

	_, err = c.Update().
		SetClicks30d(clicks).
		SetCalls30d(calls).
		SetEngagementScore(score).
		SetEngagementStatus(clinic.EngagementStatus(status)).
		SetEngagementUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save engagement snapshot: %w", err)
	}

	return &Snapshot{
		ClinicID:  c.ID,
		Slug:      c.Slug,
		Clicks:    clicks,
		Calls:     calls,
		Score:     score,
		Status:    status,
		UpdatedAt: now,
	}, nil
}

// RecomputeAll refreshes snapshots for every active clinic. A failure on one
// clinic is logged and does not abort the batch. Returns the number updated.
func (s *Service) RecomputeAll(ctx context.Context) (int, error) {
	ids, err := s.client.Clinic.Query().IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list clinics: %w", err)
	}

	updated := 0
	for _, id := range ids {
		if _, err := s.RecomputeClinic(ctx, id); err != nil {
			log.Printf("⚠️  Engagement recompute failed for clinic %d: %v", id, err)
			continue
		}
		updated++
	}
	return updated, nil
}

// GhostListings returns active clinics whose current engagement status is
// "none": candidates for operator action (pause, flag, or manual resolve).
// This service only surfaces them; it never takes the action itself.
func (s *Service) GhostListings(ctx context.Context, limit int) ([]*ent.Clinic, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	clinics, err := s.client.Clinic.Query().
		Where(
			clinic.EngagementStatusEQ(clinic.EngagementStatusNone),
			clinic.StatusEQ(clinic.StatusActive),
		).
		Order(ent.Asc(clinic.FieldEngagementUpdatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ghost listings: %w", err)
	}
	return clinics, nil
}

// countWindow tallies click and call actions from sessions attributed to the
// clinic within the trailing window.
func (s *Service) countWindow(ctx context.Context, clinicID int) (clicks, calls int, err error) {
	cutoff := time.Now().Add(-Window)
	sessions, err := s.client.LeadSession.Query().
		Where(
			leadsession.ClinicID(clinicID),
			leadsession.LastActiveAtGTE(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to query sessions: %w", err)
	}

	for _, sess := range sessions {
		for _, a := range sess.Actions {
			if a.Timestamp.Before(cutoff) {
				continue
			}
			switch a.Name {
			case "call-click", "phone-click":
				calls++
			case "clinic-click", "website-click", "directions-click", "profile-view":
				clicks++
			}
		}
	}
	return clicks, calls, nil
}
