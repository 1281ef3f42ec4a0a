package clinics

import (
	"context"
	"fmt"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/pkg/models"
)

// Feature flags granted per tier. The cascade is cumulative: every tier
// includes the features of the tiers below it.
var tierFeatures = map[clinic.Tier][]string{
	clinic.TierFree: {},
	clinic.TierStandard: {
		"verified_badge",
		"call_tracking",
		"priority_placement",
	},
	clinic.TierAdvanced: {
		"verified_badge",
		"call_tracking",
		"priority_placement",
		"featured_placement",
		"content_refresh",
		"lead_dashboard",
	},
}

// FeaturesForTier returns the feature flags a tier grants.
func FeaturesForTier(tier clinic.Tier) []string {
	features := tierFeatures[tier]
	out := make([]string, len(features))
	copy(out, features)
	return out
}

// ChangeTier moves a clinic to a new tier and recomputes its feature flags.
// Downgrades only shrink the flag set; tier-gated content (generated
// descriptions, call-tracking history) stays in place so an upgrade restores
// it without regeneration.
func (s *Service) ChangeTier(ctx context.Context, id int, req models.ChangeTierRequest, userID *int) (*models.ClinicResponse, error) {
	row, err := s.db.Clinic.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}

	newTier := clinic.Tier(req.Tier)
	if newTier == row.Tier {
		response := toClinicResponse(row)
		return &response, nil
	}

	updated, err := row.Update().
		SetTier(newTier).
		SetFeatures(FeaturesForTier(newTier)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to change tier: %w", err)
	}

	if s.audit != nil {
		_ = s.audit.LogClinicTierChange(ctx, userID, id, string(row.Tier), string(newTier))
	}
	_ = s.InvalidateCache(ctx)

	response := toClinicResponse(updated)
	return &response, nil
}
