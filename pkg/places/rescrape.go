package places

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/pkg/phone"
)

var (
	// ErrClinicNotFound is returned when the clinic doesn't exist.
	ErrClinicNotFound = errors.New("clinic not found")
	// ErrNoPlaceID is returned when a clinic has no place ID to rescrape.
	ErrNoPlaceID = errors.New("clinic has no place_id")
)

// Rescraper refreshes clinic fields from the place provider.
type Rescraper struct {
	db       *ent.Client
	provider Provider
}

// NewRescraper creates a rescraper
func NewRescraper(db *ent.Client, provider Provider) *Rescraper {
	return &Rescraper{db: db, provider: provider}
}

// Rescrape refreshes a clinic's directory fields from the provider. Name and
// review aggregates are never overwritten: the name may be curated, and
// ratings come from our own published reviews.
func (r *Rescraper) Rescrape(ctx context.Context, clinicSlug string) (*ent.Clinic, error) {
	row, err := r.db.Clinic.Query().
		Where(clinic.Slug(clinicSlug)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrClinicNotFound
		}
		return nil, fmt.Errorf("failed to get clinic: %w", err)
	}
	if row.PlaceID == "" {
		return nil, ErrNoPlaceID
	}

	details, err := r.provider.Lookup(ctx, row.PlaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up place: %w", err)
	}

	builder := row.Update()
	if details.Address != "" {
		builder.SetAddress(details.Address)
	}
	if details.PostalCode != "" {
		builder.SetPostalCode(details.PostalCode)
	}
	if details.Phone != "" {
		normalized, err := phone.Normalize(details.Phone)
		if err != nil {
			normalized = details.Phone
		}
		builder.SetPhone(normalized)
	}
	if details.Website != "" {
		builder.SetWebsite(details.Website)
	}
	if details.Latitude != 0 || details.Longitude != 0 {
		builder.SetLatitude(details.Latitude).SetLongitude(details.Longitude)
	}

	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to apply rescrape: %w", err)
	}

	log.Printf("✅ Rescraped clinic %s from place %s", clinicSlug, row.PlaceID)
	return updated, nil
}
