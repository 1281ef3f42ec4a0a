// Package testdata seeds the directory with realistic fake clinics and
// contacts for local development and demos.
package testdata

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/menshealthfinder/api/ent"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/pkg/clinics"
)

// ClinicGeneratorConfig configures clinic generation parameters
type ClinicGeneratorConfig struct {
	Count          int
	State          string
	City           string
	PhoneChance    float64 // 0.0-1.0 (probability of having a phone)
	EmailChance    float64
	WebsiteChance  float64
	AddressChance  float64
	VerifiedChance float64
}

// CityData maps states to their major cities plus an approximate centroid
// per city so seeded listings land on the map.
var CityData = map[string][]CityPoint{
	"TX": {
		{"Austin", 30.2672, -97.7431},
		{"Dallas", 32.7767, -96.7970},
		{"Houston", 29.7604, -95.3698},
		{"San Antonio", 29.4241, -98.4936},
		{"Fort Worth", 32.7555, -97.3308},
		{"El Paso", 31.7619, -106.4850},
		{"Plano", 33.0198, -96.6989},
	},
	"CA": {
		{"Los Angeles", 34.0522, -118.2437},
		{"San Diego", 32.7157, -117.1611},
		{"San Jose", 37.3382, -121.8863},
		{"Sacramento", 38.5816, -121.4944},
		{"San Francisco", 37.7749, -122.4194},
	},
	"FL": {
		{"Miami", 25.7617, -80.1918},
		{"Tampa", 27.9506, -82.4572},
		{"Orlando", 28.5383, -81.3792},
		{"Jacksonville", 30.3322, -81.6557},
	},
	"NY": {
		{"New York", 40.7128, -74.0060},
		{"Buffalo", 42.8864, -78.8784},
		{"Rochester", 43.1566, -77.6088},
	},
	"AZ": {
		{"Phoenix", 33.4484, -112.0740},
		{"Tucson", 32.2226, -110.9747},
		{"Scottsdale", 33.4942, -111.9261},
	},
}

// CityPoint is a city with its approximate centroid.
type CityPoint struct {
	Name      string
	Latitude  float64
	Longitude float64
}

// Clinic name parts tuned to the men's health vertical.
var clinicNameParts = struct {
	Prefixes []string
	Suffixes []string
}{
	Prefixes: []string{"Apex", "Summit", "Prime", "Vitality", "Elite", "Iron",
		"Lone Star", "Peak", "Renew", "Optimal", "Titan", "Legacy", "Modern",
		"Precision", "Catalyst"},
	Suffixes: []string{"Men's Health", "Men's Clinic", "TRT Clinic",
		"Hormone Center", "Wellness Center", "Men's Wellness",
		"Health & Performance", "Low T Center", "Men's Medical"},
}

// ServiceTags are the service tags seeded listings draw from.
var ServiceTags = []string{"trt", "ed_treatment", "weight_loss", "hair_loss", "peptides"}

// GenerateClinicName creates realistic men's health clinic names
func GenerateClinicName() string {
	prefix := clinicNameParts.Prefixes[rand.Intn(len(clinicNameParts.Prefixes))]
	suffix := clinicNameParts.Suffixes[rand.Intn(len(clinicNameParts.Suffixes))]
	return fmt.Sprintf("%s %s", prefix, suffix)
}

// GenerateClinic creates a single clinic with realistic data. Slug collisions
// across a batch get a numeric suffix from the caller-provided counter.
func GenerateClinic(client *ent.Client, config ClinicGeneratorConfig, seen map[string]int) *ent.ClinicCreate {
	name := GenerateClinicName()
	city := config.City
	state := strings.ToUpper(config.State)

	var point CityPoint
	if cities, ok := CityData[state]; ok && city == "" {
		point = cities[rand.Intn(len(cities))]
		city = point.Name
	} else {
		point = CityPoint{Name: city}
		for _, candidate := range CityData[state] {
			if candidate.Name == city {
				point = candidate
				break
			}
		}
	}

	slug := clinics.Slugify(name, city)
	seen[slug]++
	if n := seen[slug]; n > 1 {
		slug = fmt.Sprintf("%s-%d", slug, n)
	}

	// Random subset of 1-3 service tags
	services := make([]string, 0, 3)
	offset := rand.Intn(len(ServiceTags))
	for i := 0; i < 1+rand.Intn(3); i++ {
		services = append(services, ServiceTags[(offset+i)%len(ServiceTags)])
	}

	tier := clinic.TierFree
	switch rand.Intn(10) {
	case 0, 1:
		tier = clinic.TierStandard
	case 2:
		tier = clinic.TierAdvanced
	}

	create := client.Clinic.Create().
		SetName(name).
		SetSlug(slug).
		SetCity(city).
		SetState(state).
		SetServices(services).
		SetTier(tier).
		SetFeatures(clinics.FeaturesForTier(tier)).
		SetVerified(rand.Float64() < config.VerifiedChance).
		SetIndexed(rand.Float64() < 0.7)

	if point.Latitude != 0 {
		// Scatter within roughly a few miles of the city centroid
		create.
			SetLatitude(point.Latitude + (rand.Float64()-0.5)*0.1).
			SetLongitude(point.Longitude + (rand.Float64()-0.5)*0.1)
	}

	if rand.Float64() < config.PhoneChance {
		create.SetPhone(gofakeit.Phone())
	}
	if rand.Float64() < config.EmailChance {
		domain := strings.ToLower(strings.ReplaceAll(name, " ", ""))
		domain = strings.ReplaceAll(domain, "'", "")
		if len(domain) > 20 {
			domain = domain[:20]
		}
		create.SetEmail(fmt.Sprintf("contact@%s.com", domain))
	}
	if rand.Float64() < config.WebsiteChance {
		domain := strings.ToLower(strings.ReplaceAll(name, " ", ""))
		domain = strings.ReplaceAll(domain, "'", "")
		if len(domain) > 20 {
			domain = domain[:20]
		}
		create.SetWebsite(fmt.Sprintf("https://www.%s.com", domain))
	}
	if rand.Float64() < config.AddressChance {
		create.
			SetAddress(gofakeit.Street()).
			SetPostalCode(gofakeit.Zip())
	}

	return create
}

// GenerateClinics creates multiple clinics with the given config
func GenerateClinics(client *ent.Client, config ClinicGeneratorConfig) []*ent.ClinicCreate {
	seen := make(map[string]int)
	creates := make([]*ent.ClinicCreate, config.Count)
	for i := 0; i < config.Count; i++ {
		creates[i] = GenerateClinic(client, config, seen)
	}
	return creates
}

// GenerateClinicsForState generates clinics for a state with default settings
func GenerateClinicsForState(client *ent.Client, state string, count int) []*ent.ClinicCreate {
	return GenerateClinics(client, ClinicGeneratorConfig{
		Count:          count,
		State:          state,
		PhoneChance:    0.8,
		EmailChance:    0.6,
		WebsiteChance:  0.5,
		AddressChance:  0.85,
		VerifiedChance: 0.3,
	})
}

// GenerateContactsForClinics creates CRM contacts attached to the given
// clinics, spread across pipeline stages.
func GenerateContactsForClinics(client *ent.Client, clinicIDs []int, perClinic int) []*ent.ContactCreate {
	stages := []contact.Stage{
		contact.StageNew, contact.StageNew, contact.StageNew,
		contact.StageContacted, contact.StageContacted,
		contact.StageQualified, contact.StageProposal, contact.StageNurturing,
	}
	sources := []string{"organic", "paid", "referral", "direct"}

	creates := make([]*ent.ContactCreate, 0, len(clinicIDs)*perClinic)
	for _, clinicID := range clinicIDs {
		for i := 0; i < perClinic; i++ {
			opens := rand.Intn(8)
			clicks := rand.Intn(4)
			visits := rand.Intn(6)
			interactions := opens + clicks + visits

			score := opens*2 + clicks*5 + visits*3 + interactions
			if score > 100 {
				score = 100
			}

			create := client.Contact.Create().
				SetClinicID(clinicID).
				SetName(gofakeit.Name()).
				SetEmail(gofakeit.Email()).
				SetStage(stages[rand.Intn(len(stages))]).
				SetSource(sources[rand.Intn(len(sources))]).
				SetEmailOpens(opens).
				SetEmailClicks(clicks).
				SetWebsiteVisits(visits).
				SetTotalInteractions(interactions).
				SetLeadScore(score)

			if rand.Float64() < 0.6 {
				create.SetPhone(gofakeit.Phone())
			}
			creates = append(creates, create)
		}
	}
	return creates
}

// BulkInsertClinics inserts clinics in batches and returns the created IDs.
func BulkInsertClinics(ctx context.Context, client *ent.Client, creates []*ent.ClinicCreate, batchSize int) ([]int, error) {
	ids := make([]int, 0, len(creates))
	for i := 0; i < len(creates); i += batchSize {
		end := i + batchSize
		if end > len(creates) {
			end = len(creates)
		}

		rows, err := client.Clinic.CreateBulk(creates[i:end]...).Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to insert batch %d-%d: %w", i, end, err)
		}
		for _, row := range rows {
			ids = append(ids, row.ID)
		}
	}
	return ids, nil
}

// BulkInsertContacts inserts contacts in batches.
func BulkInsertContacts(ctx context.Context, client *ent.Client, creates []*ent.ContactCreate, batchSize int) error {
	for i := 0; i < len(creates); i += batchSize {
		end := i + batchSize
		if end > len(creates) {
			end = len(creates)
		}

		if err := client.Contact.CreateBulk(creates[i:end]...).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert batch %d-%d: %w", i, end, err)
		}
	}
	return nil
}
