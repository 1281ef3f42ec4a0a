package contacts

import (
	"context"
	"fmt"
	"time"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/activity"
	"github.com/menshealthfinder/api/pkg/models"
)

// ActivityResponse represents one timeline entry.
type ActivityResponse struct {
	ID          int    `json:"id"`
	ContactID   int    `json:"contact_id"`
	Type        string `json:"type"`
	Subject     string `json:"subject"`
	Description string `json:"description,omitempty"`
	AuthorID    *int   `json:"author_id,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// LogActivity appends an entry to a contact's timeline. Every logged activity
// bumps the interaction counter, refreshes last_contacted_at and recomputes
// the lead score from the raw counters. The log itself is append-only.
func (s *Service) LogActivity(ctx context.Context, contactID int, req models.LogActivityRequest, authorID *int) (*ActivityResponse, error) {
	row, err := s.getActive(ctx, contactID)
	if err != nil {
		return nil, err
	}

	builder := s.db.Activity.Create().
		SetContactID(contactID).
		SetType(activity.Type(req.Type)).
		SetSubject(req.Subject)
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if authorID != nil {
		builder.SetAuthorID(*authorID)
	}

	entry, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to log activity: %w", err)
	}

	interactions := row.TotalInteractions + 1
	score := ScoreFor(row.EmailOpens, row.EmailClicks, row.WebsiteVisits, interactions)

	if err := row.Update().
		SetTotalInteractions(interactions).
		SetLeadScore(score).
		SetLastContactedAt(time.Now()).
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to update contact counters: %w", err)
	}

	response := toActivityResponse(entry)
	return &response, nil
}

// ListActivities returns a contact's timeline, newest first.
func (s *Service) ListActivities(ctx context.Context, contactID int, limit int) ([]ActivityResponse, error) {
	if limit == 0 {
		limit = 50
	}

	rows, err := s.db.Activity.Query().
		Where(activity.ContactID(contactID)).
		Order(ent.Desc(activity.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}

	responses := make([]ActivityResponse, len(rows))
	for i, row := range rows {
		responses[i] = toActivityResponse(row)
	}
	return responses, nil
}

// RecordEngagement bumps one of the raw engagement counters (email open,
// email click or website visit) and recomputes the lead score. Used by the
// email webhook and the session sweep rather than operators.
func (s *Service) RecordEngagement(ctx context.Context, contactID int, kind string) error {
	row, err := s.getActive(ctx, contactID)
	if err != nil {
		return err
	}

	opens, clicks, visits := row.EmailOpens, row.EmailClicks, row.WebsiteVisits
	switch kind {
	case "email_open":
		opens++
	case "email_click":
		clicks++
	case "website_visit":
		visits++
	default:
		return fmt.Errorf("unknown engagement kind: %q", kind)
	}

	interactions := row.TotalInteractions + 1
	score := ScoreFor(opens, clicks, visits, interactions)

	if err := row.Update().
		SetEmailOpens(opens).
		SetEmailClicks(clicks).
		SetWebsiteVisits(visits).
		SetTotalInteractions(interactions).
		SetLeadScore(score).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to record engagement: %w", err)
	}
	return nil
}

func toActivityResponse(row *ent.Activity) ActivityResponse {
	return ActivityResponse{
		ID:          row.ID,
		ContactID:   row.ContactID,
		Type:        string(row.Type),
		Subject:     row.Subject,
		Description: row.Description,
		AuthorID:    row.AuthorID,
		CreatedAt:   row.CreatedAt.Format(time.RFC3339),
	}
}
