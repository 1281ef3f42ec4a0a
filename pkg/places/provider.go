// Package places refreshes clinic listing fields from an external place
// directory. The HTTP provider talks to the Google Places API; services take
// the Provider interface so tests can stub it.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Details is the subset of place data the directory consumes.
type Details struct {
	Name       string
	Address    string
	PostalCode string
	Phone      string
	Website    string
	Latitude   float64
	Longitude  float64
	Rating     float64
}

// Provider fetches fresh details for a known place ID.
type Provider interface {
	Lookup(ctx context.Context, placeID string) (*Details, error)
}

// GoogleProvider is the production Provider backed by the Places Details API.
type GoogleProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGoogleProvider creates a provider against the live Places API.
func NewGoogleProvider(apiKey string) *GoogleProvider {
	return &GoogleProvider{
		apiKey:  apiKey,
		baseURL: "https://maps.googleapis.com/maps/api/place/details/json",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewGoogleProviderWithBase creates a provider against a custom endpoint.
// Used in tests with httptest servers.
func NewGoogleProviderWithBase(apiKey, baseURL string) *GoogleProvider {
	p := NewGoogleProvider(apiKey)
	p.baseURL = baseURL
	return p
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		FormattedPhone   string `json:"formatted_phone_number"`
		Website          string `json:"website"`
		Rating           float64 `json:"rating"`
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"result"`
}

// Lookup fetches place details by place ID.
func (p *GoogleProvider) Lookup(ctx context.Context, placeID string) (*Details, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("key", p.apiKey)
	params.Set("fields", "name,formatted_address,formatted_phone_number,website,rating,geometry,address_components")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build places request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places request returned status %d", resp.StatusCode)
	}

	var body detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}
	if body.Status != "OK" {
		return nil, fmt.Errorf("places lookup failed: %s", body.Status)
	}

	details := &Details{
		Name:      body.Result.Name,
		Address:   body.Result.FormattedAddress,
		Phone:     body.Result.FormattedPhone,
		Website:   body.Result.Website,
		Rating:    body.Result.Rating,
		Latitude:  body.Result.Geometry.Location.Lat,
		Longitude: body.Result.Geometry.Location.Lng,
	}
	for _, component := range body.Result.AddressComponents {
		for _, kind := range component.Types {
			if kind == "postal_code" {
				details.PostalCode = component.LongName
			}
		}
	}
	return details, nil
}
