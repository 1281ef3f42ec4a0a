// Package clinics implements the clinic directory: search, detail, admin
// CRUD, tier cascade, status transitions and duplicate merging.
package clinics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/pkg/audit"
	"github.com/menshealthfinder/api/pkg/cache"
	"github.com/menshealthfinder/api/pkg/models"
	"github.com/menshealthfinder/api/pkg/phone"
)

// ErrClinicNotFound is returned when a clinic doesn't exist.
var ErrClinicNotFound = errors.New("clinic not found")

// Service handles clinic directory business logic
type Service struct {
	db    *ent.Client
	cache *cache.Client
	audit *audit.Service
}

// NewService creates a new clinic service
func NewService(db *ent.Client, cacheClient *cache.Client, auditService *audit.Service) *Service {
	return &Service{
		db:    db,
		cache: cacheClient,
		audit: auditService,
	}
}

// Search searches the directory with filters and pagination. Results are
// cached for 5 minutes; any write path calls InvalidateCache.
func (s *Service) Search(ctx context.Context, req models.ClinicSearchRequest) (*models.ClinicListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.Limit == 0 {
		req.Limit = 20
	}
	if req.Limit > 100 {
		req.Limit = 100
	}

	cacheKey := s.searchCacheKey(req)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != "" {
			var response models.ClinicListResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				return &response, nil
			}
		}
	}

	query := s.buildSearchQuery(req)

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count clinics: %w", err)
	}

	offset := (req.Page - 1) * req.Limit
	totalPages := (total + req.Limit - 1) / req.Limit

	rows, err := query.
		Limit(req.Limit).
		Offset(offset).
		Order(
			ent.Desc(clinic.FieldRatingAvg),
			ent.Asc(clinic.FieldName),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query clinics: %w", err)
	}

	responses := make([]models.ClinicResponse, len(rows))
	for i, row := range rows {
		responses[i] = toClinicResponse(row)
	}

	response := &models.ClinicListResponse{
		Data: responses,
		Pagination: models.PaginationInfo{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}

	if s.cache != nil {
		if responseJSON, err := json.Marshal(response); err == nil {
			_ = s.cache.Set(ctx, cacheKey, responseJSON, 5*time.Minute)
		}
	}

	return response, nil
}

func (s *Service) buildSearchQuery(req models.ClinicSearchRequest) *ent.ClinicQuery {
	query := s.db.Clinic.Query()

	// Public search defaults to active listings; an explicit status filter
	// (admin surfaces) overrides.
	if req.Status != "" {
		query = query.Where(clinic.StatusEQ(clinic.Status(req.Status)))
	} else {
		query = query.Where(clinic.StatusEQ(clinic.StatusActive))
	}

	if req.Query != "" {
		query = query.Where(clinic.Or(
			clinic.NameContainsFold(req.Query),
			clinic.CityContainsFold(req.Query),
		))
	}
	if req.City != "" {
		query = query.Where(clinic.CityEqualFold(req.City))
	}
	if req.State != "" {
		query = query.Where(clinic.StateEqualFold(req.State))
	}
	if req.Tier != "" {
		query = query.Where(clinic.TierEQ(clinic.Tier(req.Tier)))
	}
	if req.Verified != nil {
		query = query.Where(clinic.VerifiedEQ(*req.Verified))
	}
	if req.MinRating != nil {
		query = query.Where(clinic.RatingAvgGTE(*req.MinRating))
	}
	if req.Service != "" {
		// Service tags live in a JSON array column.
		query = query.Where(func(s *sql.Selector) {
			s.Where(sqljson.ValueContains(clinic.FieldServices, req.Service))
		})
	}
	return query
}

// GetBySlug retrieves a single clinic by slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.ClinicResponse, error) {
	row, err := s.db.Clinic.Query().Where(clinic.Slug(slug)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}

	response := toClinicResponse(row)
	return &response, nil
}

// Create creates a new clinic with a generated unique slug. The phone number
// is normalized to E.164 when it parses; unparseable input is kept verbatim
// so imports never lose data.
func (s *Service) Create(ctx context.Context, req models.CreateClinicRequest) (*models.ClinicResponse, error) {
	slug, err := s.uniqueSlug(ctx, Slugify(req.Name, req.City))
	if err != nil {
		return nil, err
	}

	tier := clinic.TierFree
	if req.Tier != "" {
		tier = clinic.Tier(req.Tier)
	}

	builder := s.db.Clinic.Create().
		SetName(req.Name).
		SetSlug(slug).
		SetCity(req.City).
		SetState(req.State).
		SetTier(tier).
		SetFeatures(FeaturesForTier(tier))

	if req.Address != "" {
		builder.SetAddress(req.Address)
	}
	if req.PostalCode != "" {
		builder.SetPostalCode(req.PostalCode)
	}
	if req.Phone != "" {
		normalized, err := phone.Normalize(req.Phone)
		if err != nil {
			normalized = req.Phone
		}
		builder.SetPhone(normalized)
	}
	if req.Email != "" {
		builder.SetEmail(req.Email)
	}
	if req.Website != "" {
		builder.SetWebsite(req.Website)
	}
	if req.Latitude != nil {
		builder.SetLatitude(*req.Latitude)
	}
	if req.Longitude != nil {
		builder.SetLongitude(*req.Longitude)
	}
	if req.PlaceID != "" {
		builder.SetPlaceID(req.PlaceID)
	}
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if len(req.Services) > 0 {
		builder.SetServices(req.Services)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create clinic: %w", err)
	}

	_ = s.InvalidateCache(ctx)

	response := toClinicResponse(row)
	return &response, nil
}

// Update applies a partial update to a clinic
func (s *Service) Update(ctx context.Context, id int, req models.UpdateClinicRequest) (*models.ClinicResponse, error) {
	row, err := s.db.Clinic.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}

	builder := row.Update()
	if req.Name != nil {
		builder.SetName(*req.Name)
	}
	if req.City != nil {
		builder.SetCity(*req.City)
	}
	if req.State != nil {
		builder.SetState(*req.State)
	}
	if req.Address != nil {
		builder.SetAddress(*req.Address)
	}
	if req.PostalCode != nil {
		builder.SetPostalCode(*req.PostalCode)
	}
	if req.Phone != nil {
		normalized, err := phone.Normalize(*req.Phone)
		if err != nil {
			normalized = *req.Phone
		}
		builder.SetPhone(normalized)
	}
	if req.Email != nil {
		builder.SetEmail(*req.Email)
	}
	if req.Website != nil {
		builder.SetWebsite(*req.Website)
	}
	if req.Description != nil {
		builder.SetDescription(*req.Description)
	}
	if req.Services != nil {
		builder.SetServices(*req.Services)
	}
	if req.Verified != nil {
		builder.SetVerified(*req.Verified)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update clinic: %w", err)
	}

	_ = s.InvalidateCache(ctx)

	response := toClinicResponse(updated)
	return &response, nil
}

// InvalidateCache invalidates all clinic search caches
func (s *Service) InvalidateCache(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.DeletePattern(ctx, "clinics:*")
}

func (s *Service) searchCacheKey(req models.ClinicSearchRequest) string {
	verified := ""
	if req.Verified != nil {
		verified = fmt.Sprintf("%t", *req.Verified)
	}
	minRating := ""
	if req.MinRating != nil {
		minRating = fmt.Sprintf("%.1f", *req.MinRating)
	}
	return fmt.Sprintf("clinics:search:%s:%s:%s:%s:%s:%s:%s:%s:%d:%d",
		req.Query, req.City, req.State, req.Service, req.Tier, req.Status,
		verified, minRating, req.Page, req.Limit)
}

func toClinicResponse(row *ent.Clinic) models.ClinicResponse {
	return models.ClinicResponse{
		ID:               row.ID,
		Name:             row.Name,
		Slug:             row.Slug,
		City:             row.City,
		State:            row.State,
		Address:          row.Address,
		PostalCode:       row.PostalCode,
		Phone:            row.Phone,
		Email:            row.Email,
		Website:          row.Website,
		Latitude:         row.Latitude,
		Longitude:        row.Longitude,
		Description:      row.Description,
		Services:         row.Services,
		Tier:             string(row.Tier),
		Features:         row.Features,
		Status:           string(row.Status),
		Verified:         row.Verified,
		RatingAvg:        row.RatingAvg,
		ReviewCount:      row.ReviewCount,
		EngagementStatus: string(row.EngagementStatus),
		CreatedAt:        row.CreatedAt.Format(time.RFC3339),
	}
}
