package clinics

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/pkg/models"
)

const (
	earthRadiusKm   = 6371.0
	kmPerDegreeLat  = 111.0
	defaultRadiusKm = 40.0
	defaultNearbyN  = 20
)

// Nearby finds active clinics within a radius of a point, nearest first.
// A coarse bounding box narrows the SQL scan; exact distances come from the
// haversine formula on the candidate set.
func (s *Service) Nearby(ctx context.Context, req models.NearbyRequest) (*models.ClinicListResponse, error) {
	radius := req.RadiusKm
	if radius == 0 {
		radius = defaultRadiusKm
	}
	limit := req.Limit
	if limit == 0 {
		limit = defaultNearbyN
	}

	latDelta := radius / kmPerDegreeLat
	lngDelta := radius / (kmPerDegreeLat * math.Cos(req.Latitude*math.Pi/180))

	candidates, err := s.db.Clinic.Query().
		Where(
			clinic.StatusEQ(clinic.StatusActive),
			clinic.LatitudeGTE(req.Latitude-latDelta),
			clinic.LatitudeLTE(req.Latitude+latDelta),
			clinic.LongitudeGTE(req.Longitude-lngDelta),
			clinic.LongitudeLTE(req.Longitude+lngDelta),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query nearby clinics: %w", err)
	}

	type scored struct {
		response models.ClinicResponse
		distance float64
	}
	var within []scored
	for _, row := range candidates {
		d := haversineKm(req.Latitude, req.Longitude, row.Latitude, row.Longitude)
		if d > radius {
			continue
		}
		resp := toClinicResponse(row)
		resp.DistanceKm = math.Round(d*10) / 10
		within = append(within, scored{response: resp, distance: d})
	}

	sort.Slice(within, func(i, j int) bool {
		return within[i].distance < within[j].distance
	})
	if len(within) > limit {
		within = within[:limit]
	}

	responses := make([]models.ClinicResponse, len(within))
	for i, w := range within {
		responses[i] = w.response
	}

	return &models.ClinicListResponse{
		Data: responses,
		Pagination: models.PaginationInfo{
			Page:  1,
			Limit: limit,
			Total: len(responses),
		},
	}, nil
}

// haversineKm computes the great-circle distance between two points.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }

	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
