// Package reviews handles public review submission, moderation and the
// rating aggregates rolled up onto clinics.
package reviews

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/predicate"
	"github.com/menshealthfinder/api/ent/review"
	"github.com/menshealthfinder/api/pkg/audit"
	"github.com/menshealthfinder/api/pkg/cache"
	"github.com/menshealthfinder/api/pkg/models"
)

var (
	// ErrReviewNotFound is returned when a review doesn't exist.
	ErrReviewNotFound = errors.New("review not found")
	// ErrClinicNotFound is returned when the target clinic doesn't exist.
	ErrClinicNotFound = errors.New("clinic not found")
	// ErrAlreadyModerated is returned when moderating a non-pending review.
	ErrAlreadyModerated = errors.New("review has already been moderated")
	// ErrReviewNotPublished is returned when voting on a non-published review.
	ErrReviewNotPublished = errors.New("review is not published")
)

// Service handles review business logic
type Service struct {
	db    *ent.Client
	cache *cache.Client
	audit *audit.Service
}

// NewService creates a new review service
func NewService(db *ent.Client, cacheClient *cache.Client, auditService *audit.Service) *Service {
	return &Service{
		db:    db,
		cache: cacheClient,
		audit: auditService,
	}
}

// Submit stores a new review against a clinic slug. Submissions always land
// pending and have no effect on the clinic's rating until published.
func (s *Service) Submit(ctx context.Context, clinicSlug string, req models.SubmitReviewRequest) (*models.ReviewResponse, error) {
	target, err := s.db.Clinic.Query().
		Where(clinic.Slug(clinicSlug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}

	row, err := s.db.Review.Create().
		SetClinicID(target.ID).
		SetRating(req.Rating).
		SetAuthorName(req.AuthorName).
		SetBody(req.Body).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	response := toReviewResponse(row)
	return &response, nil
}

// Moderate publishes or rejects a pending review. Publishing recomputes the
// clinic's rating aggregates from the full published set, so re-running a
// moderation sweep never drifts the average.
func (s *Service) Moderate(ctx context.Context, reviewID int, req models.ModerateReviewRequest, userID *int) (*models.ReviewResponse, error) {
	row, err := s.db.Review.Get(ctx, reviewID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if row.Status != review.StatusPending {
		return nil, fmt.Errorf("%w: %s", ErrAlreadyModerated, row.Status)
	}

	updated, err := row.Update().
		SetStatus(review.Status(req.Decision)).
		SetModeratedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to moderate review: %w", err)
	}

	if updated.Status == review.StatusPublished {
		if err := s.recomputeAggregates(ctx, updated.ClinicID); err != nil {
			return nil, err
		}
		if s.cache != nil {
			_ = s.cache.DeletePattern(ctx, "clinics:*")
		}
	}

	if s.audit != nil {
		_ = s.audit.LogReviewModeration(ctx, userID, reviewID, req.Decision)
	}

	response := toReviewResponse(updated)
	return &response, nil
}

// MarkHelpful increments the helpful counter on a published review.
func (s *Service) MarkHelpful(ctx context.Context, reviewID int) (*models.ReviewResponse, error) {
	return s.incrementCounter(ctx, reviewID, func(u *ent.ReviewUpdateOne) {
		u.AddHelpfulCount(1)
	})
}

// Report increments the report counter on a published review.
func (s *Service) Report(ctx context.Context, reviewID int) (*models.ReviewResponse, error) {
	return s.incrementCounter(ctx, reviewID, func(u *ent.ReviewUpdateOne) {
		u.AddReportCount(1)
	})
}

func (s *Service) incrementCounter(ctx context.Context, reviewID int, apply func(*ent.ReviewUpdateOne)) (*models.ReviewResponse, error) {
	row, err := s.db.Review.Get(ctx, reviewID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if row.Status != review.StatusPublished {
		return nil, ErrReviewNotPublished
	}

	builder := row.Update()
	apply(builder)
	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update review counter: %w", err)
	}

	response := toReviewResponse(updated)
	return &response, nil
}

// ListForClinic returns the published reviews for a clinic slug, newest first.
func (s *Service) ListForClinic(ctx context.Context, clinicSlug string, page, limit int) (*models.ReviewListResponse, error) {
	target, err := s.db.Clinic.Query().
		Where(clinic.Slug(clinicSlug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}

	return s.list(ctx, page, limit,
		review.ClinicID(target.ID),
		review.StatusEQ(review.StatusPublished),
	)
}

// ListPending returns the moderation queue, oldest first so nothing starves.
func (s *Service) ListPending(ctx context.Context, page, limit int) (*models.ReviewListResponse, error) {
	page, limit = normalizePaging(page, limit)

	query := s.db.Review.Query().
		Where(review.StatusEQ(review.StatusPending))

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}

	rows, err := query.
		Order(ent.Asc(review.FieldCreatedAt)).
		Limit(limit).
		Offset((page - 1) * limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}

	return buildListResponse(rows, page, limit, total), nil
}

func (s *Service) list(ctx context.Context, page, limit int, predicates ...predicate.Review) (*models.ReviewListResponse, error) {
	page, limit = normalizePaging(page, limit)

	query := s.db.Review.Query().Where(predicates...)

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count reviews: %w", err)
	}

	rows, err := query.
		Order(ent.Desc(review.FieldCreatedAt)).
		Limit(limit).
		Offset((page - 1) * limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}

	return buildListResponse(rows, page, limit, total), nil
}

// recomputeAggregates rewrites the clinic's rating average and count from the
// published review set.
func (s *Service) recomputeAggregates(ctx context.Context, clinicID int) error {
	published, err := s.db.Review.Query().
		Where(
			review.ClinicID(clinicID),
			review.StatusEQ(review.StatusPublished),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query published reviews: %w", err)
	}

	var sum int
	for _, r := range published {
		sum += r.Rating
	}
	avg := 0.0
	if len(published) > 0 {
		avg = float64(sum) / float64(len(published))
	}

	if err := s.db.Clinic.UpdateOneID(clinicID).
		SetRatingAvg(avg).
		SetReviewCount(len(published)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update clinic aggregates: %w", err)
	}
	return nil
}

func normalizePaging(page, limit int) (int, int) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func buildListResponse(rows []*ent.Review, page, limit, total int) *models.ReviewListResponse {
	responses := make([]models.ReviewResponse, len(rows))
	for i, row := range rows {
		responses[i] = toReviewResponse(row)
	}
	totalPages := (total + limit - 1) / limit
	return &models.ReviewListResponse{
		Data: responses,
		Pagination: models.PaginationInfo{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}
}

func toReviewResponse(row *ent.Review) models.ReviewResponse {
	return models.ReviewResponse{
		ID:           row.ID,
		ClinicID:     row.ClinicID,
		Rating:       row.Rating,
		AuthorName:   row.AuthorName,
		Body:         row.Body,
		Status:       string(row.Status),
		HelpfulCount: row.HelpfulCount,
		ReportCount:  row.ReportCount,
		CreatedAt:    row.CreatedAt.Format(time.RFC3339),
	}
}
