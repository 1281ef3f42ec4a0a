package revenue

import (
	"context"
	"fmt"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
)

// Service runs the estimator over the live directory.
type Service struct {
	db  *ent.Client
	est *Estimator
}

// NewService creates a revenue service. Seed 0 falls back to the default
// estimator seed.
func NewService(db *ent.Client, cfg Config, seed int64) *Service {
	if seed == 0 {
		seed = 1
	}
	return &Service{db: db, est: New(cfg, seed)}
}

// Opportunities estimates lost revenue across all active listings. A listing
// has real metrics once the engagement job has stamped it; until then the
// estimator falls back to the per-state base table.
func (s *Service) Opportunities(ctx context.Context) (*Report, error) {
	rows, err := s.db.Clinic.Query().
		Where(clinic.StatusEQ(clinic.StatusActive)).
		Order(ent.Asc(clinic.FieldSlug)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query clinics: %w", err)
	}

	inputs := make([]ListingInput, len(rows))
	for i, row := range rows {
		inputs[i] = ListingInput{
			Slug:         row.Slug,
			Name:         row.Name,
			State:        row.State,
			Tier:         string(row.Tier),
			Indexed:      row.Indexed,
			ActualClicks: row.Clicks30d,
			HasMetrics:   row.EngagementUpdatedAt != nil,
		}
	}

	return s.est.Estimate(inputs), nil
}
