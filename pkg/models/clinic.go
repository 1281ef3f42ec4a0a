package models

// ClinicSearchRequest represents search parameters for the clinic directory
type ClinicSearchRequest struct {
	Query     string   `query:"q"`
	City      string   `query:"city"`
	State     string   `query:"state" validate:"omitempty,len=2"`
	Service   string   `query:"service"`
	Tier      string   `query:"tier" validate:"omitempty,oneof=free standard advanced"`
	Status    string   `query:"status" validate:"omitempty,oneof=active paused flagged"`
	Verified  *bool    `query:"verified"`
	MinRating *float64 `query:"min_rating" validate:"omitempty,min=0,max=5"`
	Page      int      `query:"page" validate:"min=1"`
	Limit     int      `query:"limit" validate:"min=1,max=100"`
}

// NearbyRequest represents a geo search around a point
type NearbyRequest struct {
	Latitude  float64 `query:"lat" validate:"required,min=-90,max=90"`
	Longitude float64 `query:"lng" validate:"required,min=-180,max=180"`
	RadiusKm  float64 `query:"radius_km" validate:"omitempty,min=1,max=500"`
	Limit     int     `query:"limit" validate:"min=1,max=100"`
}

// ClinicResponse represents a single clinic in API responses
type ClinicResponse struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Slug             string   `json:"slug"`
	City             string   `json:"city"`
	State            string   `json:"state"`
	Address          string   `json:"address,omitempty"`
	PostalCode       string   `json:"postal_code,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	Email            string   `json:"email,omitempty"`
	Website          string   `json:"website,omitempty"`
	Latitude         float64  `json:"latitude,omitempty"`
	Longitude        float64  `json:"longitude,omitempty"`
	Description      string   `json:"description,omitempty"`
	Services         []string `json:"services,omitempty"`
	Tier             string   `json:"tier"`
	Features         []string `json:"features,omitempty"`
	Status           string   `json:"status"`
	Verified         bool     `json:"verified"`
	RatingAvg        float64  `json:"rating_avg"`
	ReviewCount      int      `json:"review_count"`
	EngagementStatus string   `json:"engagement_status,omitempty"`
	DistanceKm       float64  `json:"distance_km,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

// ClinicListResponse represents a paginated clinic list
type ClinicListResponse struct {
	Data       []ClinicResponse `json:"data"`
	Pagination PaginationInfo   `json:"pagination"`
}

// CreateClinicRequest represents an admin clinic creation request
type CreateClinicRequest struct {
	Name        string   `json:"name" validate:"required,min=2"`
	City        string   `json:"city" validate:"required"`
	State       string   `json:"state" validate:"required,len=2"`
	Address     string   `json:"address"`
	PostalCode  string   `json:"postal_code"`
	Phone       string   `json:"phone"`
	Email       string   `json:"email" validate:"omitempty,email"`
	Website     string   `json:"website" validate:"omitempty,url"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	PlaceID     string   `json:"place_id"`
	Description string   `json:"description"`
	Services    []string `json:"services"`
	Tier        string   `json:"tier" validate:"omitempty,oneof=free standard advanced"`
}

// UpdateClinicRequest represents an admin clinic update request
type UpdateClinicRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=2"`
	City        *string   `json:"city,omitempty"`
	State       *string   `json:"state,omitempty" validate:"omitempty,len=2"`
	Address     *string   `json:"address,omitempty"`
	PostalCode  *string   `json:"postal_code,omitempty"`
	Phone       *string   `json:"phone,omitempty"`
	Email       *string   `json:"email,omitempty" validate:"omitempty,email"`
	Website     *string   `json:"website,omitempty" validate:"omitempty,url"`
	Description *string   `json:"description,omitempty"`
	Services    *[]string `json:"services,omitempty"`
	Verified    *bool     `json:"verified,omitempty"`
}

// ChangeTierRequest moves a clinic between subscription tiers
type ChangeTierRequest struct {
	Tier string `json:"tier" validate:"required,oneof=free standard advanced"`
}

// ChangeStatusRequest transitions a clinic's listing status
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active paused flagged"`
	Reason string `json:"reason"`
}

// MergeClinicsRequest merges a duplicate clinic into a primary one
type MergeClinicsRequest struct {
	PrimaryID   int `json:"primary_id" validate:"required"`
	DuplicateID int `json:"duplicate_id" validate:"required"`
}
