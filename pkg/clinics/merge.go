package clinics

import (
	"context"
	"errors"
	"fmt"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/leadsession"
	"github.com/menshealthfinder/api/ent/review"
	"github.com/menshealthfinder/api/pkg/models"
)

// ErrMergeSameClinic is returned when primary and duplicate are the same row.
var ErrMergeSameClinic = errors.New("cannot merge a clinic into itself")

// Merge folds a duplicate clinic into a primary one inside a single
// transaction: reviews, contacts and sessions move to the primary, missing
// primary fields are backfilled from the duplicate, rating aggregates are
// recomputed, and the duplicate row is deleted. Running the whole read,
// rewrite and delete in one transaction closes the race where a concurrent
// write lands on the duplicate between the read and the delete.
func (s *Service) Merge(ctx context.Context, req models.MergeClinicsRequest, userID *int) (*models.ClinicResponse, error) {
	if req.PrimaryID == req.DuplicateID {
		return nil, ErrMergeSameClinic
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}

	merged, err := s.mergeInTx(ctx, tx, req)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit merge: %w", err)
	}

	if s.audit != nil {
		_ = s.audit.LogClinicMerge(ctx, userID, req.PrimaryID, req.DuplicateID)
	}
	_ = s.InvalidateCache(ctx)

	response := toClinicResponse(merged)
	return &response, nil
}

func (s *Service) mergeInTx(ctx context.Context, tx *ent.Tx, req models.MergeClinicsRequest) (*ent.Clinic, error) {
	primary, err := tx.Clinic.Get(ctx, req.PrimaryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("failed to get primary clinic: %w", err)
	}
	duplicate, err := tx.Clinic.Get(ctx, req.DuplicateID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("failed to get duplicate clinic: %w", err)
	}

	// Move child rows over.
	if _, err := tx.Review.Update().
		Where(review.ClinicID(duplicate.ID)).
		SetClinicID(primary.ID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to move reviews: %w", err)
	}
	if _, err := tx.Contact.Update().
		Where(contact.ClinicID(duplicate.ID)).
		SetClinicID(primary.ID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to move contacts: %w", err)
	}
	if _, err := tx.LeadSession.Update().
		Where(leadsession.ClinicID(duplicate.ID)).
		SetClinicID(primary.ID).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to move sessions: %w", err)
	}

	// Backfill fields the primary is missing.
	builder := primary.Update()
	if primary.Phone == "" && duplicate.Phone != "" {
		builder.SetPhone(duplicate.Phone)
	}
	if primary.Email == "" && duplicate.Email != "" {
		builder.SetEmail(duplicate.Email)
	}
	if primary.Website == "" && duplicate.Website != "" {
		builder.SetWebsite(duplicate.Website)
	}
	if primary.Address == "" && duplicate.Address != "" {
		builder.SetAddress(duplicate.Address)
	}
	if primary.PostalCode == "" && duplicate.PostalCode != "" {
		builder.SetPostalCode(duplicate.PostalCode)
	}
	if primary.PlaceID == "" && duplicate.PlaceID != "" {
		builder.SetPlaceID(duplicate.PlaceID)
	}
	if primary.Description == "" && duplicate.Description != "" {
		builder.SetDescription(duplicate.Description)
	}
	if primary.Latitude == 0 && primary.Longitude == 0 &&
		(duplicate.Latitude != 0 || duplicate.Longitude != 0) {
		builder.SetLatitude(duplicate.Latitude).SetLongitude(duplicate.Longitude)
	}
	if merged := unionServices(primary.Services, duplicate.Services); len(merged) > 0 {
		builder.SetServices(merged)
	}
	if duplicate.Verified && !primary.Verified {
		builder.SetVerified(true)
	}

	// Recompute published-review aggregates on the combined set.
	published, err := tx.Review.Query().
		Where(
			review.ClinicID(primary.ID),
			review.StatusEQ(review.StatusPublished),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	var sum int
	for _, r := range published {
		sum += r.Rating
	}
	avg := 0.0
	if len(published) > 0 {
		avg = float64(sum) / float64(len(published))
	}
	builder.SetRatingAvg(avg).SetReviewCount(len(published))

	merged, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update primary clinic: %w", err)
	}

	if err := tx.Clinic.DeleteOne(duplicate).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to delete duplicate clinic: %w", err)
	}

	return merged, nil
}

func unionServices(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, s := range append(append([]string{}, a...), b...) {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
