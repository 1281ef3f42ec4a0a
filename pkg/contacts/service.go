// Package contacts implements the CRM: contact lifecycle, pipeline stages,
// the append-only activity log and lead scoring.
package contacts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/pkg/models"
)

var (
	// ErrContactNotFound is returned when a contact doesn't exist.
	ErrContactNotFound = errors.New("contact not found")
	// ErrContactArchived is returned when mutating an archived contact.
	ErrContactArchived = errors.New("contact is archived")
)

// Service handles CRM contact business logic
type Service struct {
	db *ent.Client
}

// NewService creates a new contact service
func NewService(db *ent.Client) *Service {
	return &Service{db: db}
}

// Create creates a new contact in the "new" pipeline stage.
func (s *Service) Create(ctx context.Context, req models.CreateContactRequest) (*models.ContactResponse, error) {
	builder := s.db.Contact.Create().
		SetName(req.Name).
		SetEmail(req.Email)

	if req.ClinicID != nil {
		builder.SetClinicID(*req.ClinicID)
	}
	if req.Phone != "" {
		builder.SetPhone(req.Phone)
	}
	if req.Company != "" {
		builder.SetCompany(req.Company)
	}
	if req.Source != "" {
		builder.SetSource(req.Source)
	}
	if req.Priority != "" {
		builder.SetPriority(contact.Priority(req.Priority))
	}
	if len(req.Tags) > 0 {
		builder.SetTags(req.Tags)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	response := toContactResponse(row)
	return &response, nil
}

// Get retrieves a single contact by ID
func (s *Service) Get(ctx context.Context, id int) (*models.ContactResponse, error) {
	row, err := s.db.Contact.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	response := toContactResponse(row)
	return &response, nil
}

// Update applies a partial update to a contact's identity fields.
func (s *Service) Update(ctx context.Context, id int, req models.UpdateContactRequest) (*models.ContactResponse, error) {
	row, err := s.getActive(ctx, id)
	if err != nil {
		return nil, err
	}

	builder := row.Update()
	if req.Name != nil {
		builder.SetName(*req.Name)
	}
	if req.Email != nil {
		builder.SetEmail(*req.Email)
	}
	if req.Phone != nil {
		builder.SetPhone(*req.Phone)
	}
	if req.Company != nil {
		builder.SetCompany(*req.Company)
	}
	if req.Priority != nil {
		builder.SetPriority(contact.Priority(*req.Priority))
	}
	if req.Tags != nil {
		builder.SetTags(*req.Tags)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	response := toContactResponse(updated)
	return &response, nil
}

// Archive soft-deletes a contact. Contacts are never hard-deleted; the
// activity history must survive for attribution and compliance.
func (s *Service) Archive(ctx context.Context, id int) error {
	row, err := s.db.Contact.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to get contact: %w", err)
	}

	if err := row.Update().
		SetStatus(contact.StatusArchived).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to archive contact: %w", err)
	}
	return nil
}

// Restore brings an archived contact back to active.
func (s *Service) Restore(ctx context.Context, id int) error {
	row, err := s.db.Contact.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrContactNotFound
		}
		return fmt.Errorf("failed to get contact: %w", err)
	}

	if err := row.Update().
		SetStatus(contact.StatusActive).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to restore contact: %w", err)
	}
	return nil
}

// ListFilters narrows the contact list.
type ListFilters struct {
	ClinicID *int
	Stage    string
	Priority string
	Status   string
	Page     int
	Limit    int
}

// List returns contacts matching the filters, newest first. The default view
// hides archived contacts; an explicit status filter includes them.
func (s *Service) List(ctx context.Context, filters ListFilters) (*models.ContactListResponse, error) {
	if filters.Page == 0 {
		filters.Page = 1
	}
	if filters.Limit == 0 {
		filters.Limit = 20
	}
	if filters.Limit > 100 {
		filters.Limit = 100
	}

	query := s.db.Contact.Query()
	if filters.Status != "" {
		query = query.Where(contact.StatusEQ(contact.Status(filters.Status)))
	} else {
		query = query.Where(contact.StatusEQ(contact.StatusActive))
	}
	if filters.ClinicID != nil {
		query = query.Where(contact.ClinicID(*filters.ClinicID))
	}
	if filters.Stage != "" {
		query = query.Where(contact.StageEQ(contact.Stage(filters.Stage)))
	}
	if filters.Priority != "" {
		query = query.Where(contact.PriorityEQ(contact.Priority(filters.Priority)))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}

	rows, err := query.
		Order(ent.Desc(contact.FieldCreatedAt)).
		Limit(filters.Limit).
		Offset((filters.Page - 1) * filters.Limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}

	responses := make([]models.ContactResponse, len(rows))
	for i, row := range rows {
		responses[i] = toContactResponse(row)
	}

	totalPages := (total + filters.Limit - 1) / filters.Limit
	return &models.ContactListResponse{
		Data: responses,
		Pagination: models.PaginationInfo{
			Page:       filters.Page,
			Limit:      filters.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    filters.Page < totalPages,
			HasPrev:    filters.Page > 1,
		},
	}, nil
}

func (s *Service) getActive(ctx context.Context, id int) (*ent.Contact, error) {
	row, err := s.db.Contact.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	if row.Status == contact.StatusArchived {
		return nil, ErrContactArchived
	}
	return row, nil
}

func toContactResponse(row *ent.Contact) models.ContactResponse {
	response := models.ContactResponse{
		ID:                row.ID,
		ClinicID:          row.ClinicID,
		Name:              row.Name,
		Email:             row.Email,
		Phone:             row.Phone,
		Company:           row.Company,
		Stage:             string(row.Stage),
		Priority:          string(row.Priority),
		Status:            string(row.Status),
		LeadScore:         row.LeadScore,
		TotalInteractions: row.TotalInteractions,
		EmailOpens:        row.EmailOpens,
		EmailClicks:       row.EmailClicks,
		WebsiteVisits:     row.WebsiteVisits,
		Source:            row.Source,
		Tags:              row.Tags,
		CreatedAt:         row.CreatedAt.Format(time.RFC3339),
	}
	if row.LastContactedAt != nil {
		response.LastContactedAt = row.LastContactedAt.Format(time.RFC3339)
	}
	return response
}
