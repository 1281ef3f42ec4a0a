// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/menshealthfinder/api/ent/clinic"
)

// Clinic is the model entity for the Clinic schema.
type Clinic struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Business name
	Name string `json:"name,omitempty"`
	// URL-safe identifier derived from name and city
	Slug string `json:"slug,omitempty"`
	// City name
	City string `json:"city,omitempty"`
	// Two-letter US state code
	State string `json:"state,omitempty"`
	// Full street address
	Address string `json:"address,omitempty"`
	// Postal/ZIP code
	PostalCode string `json:"postal_code,omitempty"`
	// Phone number (E.164 when normalized)
	Phone string `json:"phone,omitempty"`
	// Contact email address
	Email string `json:"email,omitempty"`
	// Website URL
	Website string `json:"website,omitempty"`
	// GPS latitude
	Latitude float64 `json:"latitude,omitempty"`
	// GPS longitude
	Longitude float64 `json:"longitude,omitempty"`
	// Google Places ID used for de-duplication and rescrape
	PlaceID string `json:"place_id,omitempty"`
	// Generated SEO description copy
	Description string `json:"description,omitempty"`
	// Service tags (trt, ed_treatment, weight_loss, hair_loss, etc.)
	Services []string `json:"services,omitempty"`
	// Listing tier controlling feature visibility
	Tier clinic.Tier `json:"tier,omitempty"`
	// Feature flags recomputed from tier (never deleted on downgrade)
	Features []string `json:"features,omitempty"`
	// Listing status set by operators
	Status clinic.Status `json:"status,omitempty"`
	// Whether the listing has been verified
	Verified bool `json:"verified,omitempty"`
	// Whether search engines have indexed the listing page
	Indexed bool `json:"indexed,omitempty"`
	// Average published review rating
	RatingAvg float64 `json:"rating_avg,omitempty"`
	// Number of published reviews
	ReviewCount int `json:"review_count,omitempty"`
	// Click count over the trailing 30 days
	Clicks30d int `json:"clicks_30d,omitempty"`
	// Call-click count over the trailing 30 days
	Calls30d int `json:"calls_30d,omitempty"`
	// Derived engagement score, recomputed from raw counters
	EngagementScore int `json:"engagement_score,omitempty"`
	// Tri-state engagement status
	EngagementStatus clinic.EngagementStatus `json:"engagement_status,omitempty"`
	// When the engagement snapshot was last recomputed
	EngagementUpdatedAt *time.Time `json:"engagement_updated_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ClinicQuery when eager-loading is set.
	Edges        ClinicEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ClinicEdges holds the relations/edges for other nodes in the graph.
type ClinicEdges struct {
	// Reviews submitted for this clinic
	Reviews []*Review `json:"reviews,omitempty"`
	// CRM contacts associated with this clinic
	Contacts []*Contact `json:"contacts,omitempty"`
	// Visitor sessions attributed to this clinic
	Sessions []*LeadSession `json:"sessions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ReviewsOrErr returns the Reviews value or an error if the edge
// was not loaded in eager-loading.
func (e ClinicEdges) ReviewsOrErr() ([]*Review, error) {
	if e.loadedTypes[0] {
		return e.Reviews, nil
	}
	return nil, &NotLoadedError{edge: "reviews"}
}

// ContactsOrErr returns the Contacts value or an error if the edge
// was not loaded in eager-loading.
func (e ClinicEdges) ContactsOrErr() ([]*Contact, error) {
	if e.loadedTypes[1] {
		return e.Contacts, nil
	}
	return nil, &NotLoadedError{edge: "contacts"}
}

// SessionsOrErr returns the Sessions value or an error if the edge
// was not loaded in eager-loading.
func (e ClinicEdges) SessionsOrErr() ([]*LeadSession, error) {
	if e.loadedTypes[2] {
		return e.Sessions, nil
	}
	return nil, &NotLoadedError{edge: "sessions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Clinic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case clinic.FieldServices, clinic.FieldFeatures:
			values[i] = new([]byte)
		case clinic.FieldVerified, clinic.FieldIndexed:
			values[i] = new(sql.NullBool)
		case clinic.FieldLatitude, clinic.FieldLongitude, clinic.FieldRatingAvg:
			values[i] = new(sql.NullFloat64)
		case clinic.FieldID, clinic.FieldReviewCount, clinic.FieldClicks30d, clinic.FieldCalls30d, clinic.FieldEngagementScore:
			values[i] = new(sql.NullInt64)
		case clinic.FieldName, clinic.FieldSlug, clinic.FieldCity, clinic.FieldState, clinic.FieldAddress, clinic.FieldPostalCode, clinic.FieldPhone, clinic.FieldEmail, clinic.FieldWebsite, clinic.FieldPlaceID, clinic.FieldDescription, clinic.FieldTier, clinic.FieldStatus, clinic.FieldEngagementStatus:
			values[i] = new(sql.NullString)
		case clinic.FieldEngagementUpdatedAt, clinic.FieldCreatedAt, clinic.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Clinic fields.
func (_m *Clinic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case clinic.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case clinic.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case clinic.FieldSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field slug", values[i])
			} else if value.Valid {
				_m.Slug = value.String
			}
		case clinic.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = value.String
			}
		case clinic.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = value.String
			}
		case clinic.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = value.String
			}
		case clinic.FieldPostalCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field postal_code", values[i])
			} else if value.Valid {
				_m.PostalCode = value.String
			}
		case clinic.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case clinic.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case clinic.FieldWebsite:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website", values[i])
			} else if value.Valid {
				_m.Website = value.String
			}
		case clinic.FieldLatitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field latitude", values[i])
			} else if value.Valid {
				_m.Latitude = value.Float64
			}
		case clinic.FieldLongitude:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field longitude", values[i])
			} else if value.Valid {
				_m.Longitude = value.Float64
			}
		case clinic.FieldPlaceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field place_id", values[i])
			} else if value.Valid {
				_m.PlaceID = value.String
			}
		case clinic.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case clinic.FieldServices:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field services", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Services); err != nil {
					return fmt.Errorf("unmarshal field services: %w", err)
				}
			}
		case clinic.FieldTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tier", values[i])
			} else if value.Valid {
				_m.Tier = clinic.Tier(value.String)
			}
		case clinic.FieldFeatures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field features", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Features); err != nil {
					return fmt.Errorf("unmarshal field features: %w", err)
				}
			}
		case clinic.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = clinic.Status(value.String)
			}
		case clinic.FieldVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field verified", values[i])
			} else if value.Valid {
				_m.Verified = value.Bool
			}
		case clinic.FieldIndexed:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field indexed", values[i])
			} else if value.Valid {
				_m.Indexed = value.Bool
			}
		case clinic.FieldRatingAvg:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rating_avg", values[i])
			} else if value.Valid {
				_m.RatingAvg = value.Float64
			}
		case clinic.FieldReviewCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field review_count", values[i])
			} else if value.Valid {
				_m.ReviewCount = int(value.Int64)
			}
		case clinic.FieldClicks30d:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field clicks_30d", values[i])
			} else if value.Valid {
				_m.Clicks30d = int(value.Int64)
			}
		case clinic.FieldCalls30d:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field calls_30d", values[i])
			} else if value.Valid {
				_m.Calls30d = int(value.Int64)
			}
		case clinic.FieldEngagementScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_score", values[i])
			} else if value.Valid {
				_m.EngagementScore = int(value.Int64)
			}
		case clinic.FieldEngagementStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_status", values[i])
			} else if value.Valid {
				_m.EngagementStatus = clinic.EngagementStatus(value.String)
			}
		case clinic.FieldEngagementUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field engagement_updated_at", values[i])
			} else if value.Valid {
				_m.EngagementUpdatedAt = new(time.Time)
				*_m.EngagementUpdatedAt = value.Time
			}
		case clinic.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case clinic.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Clinic.
// This includes values selected through modifiers, order, etc.
func (_m *Clinic) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryReviews queries the "reviews" edge of the Clinic entity.
func (_m *Clinic) QueryReviews() *ReviewQuery {
	return NewClinicClient(_m.config).QueryReviews(_m)
}

// QueryContacts queries the "contacts" edge of the Clinic entity.
func (_m *Clinic) QueryContacts() *ContactQuery {
	return NewClinicClient(_m.config).QueryContacts(_m)
}

// QuerySessions queries the "sessions" edge of the Clinic entity.
func (_m *Clinic) QuerySessions() *LeadSessionQuery {
	return NewClinicClient(_m.config).QuerySessions(_m)
}

// Update returns a builder for updating this Clinic.
// Note that you need to call Clinic.Unwrap() before calling this method if this Clinic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Clinic) Update() *ClinicUpdateOne {
	return NewClinicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Clinic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Clinic) Unwrap() *Clinic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Clinic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Clinic) String() string {
	var builder strings.Builder
	builder.WriteString("Clinic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("slug=")
	builder.WriteString(_m.Slug)
	builder.WriteString(", ")
	builder.WriteString("city=")
	builder.WriteString(_m.City)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(_m.State)
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(_m.Address)
	builder.WriteString(", ")
	builder.WriteString("postal_code=")
	builder.WriteString(_m.PostalCode)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("website=")
	builder.WriteString(_m.Website)
	builder.WriteString(", ")
	builder.WriteString("latitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Latitude))
	builder.WriteString(", ")
	builder.WriteString("longitude=")
	builder.WriteString(fmt.Sprintf("%v", _m.Longitude))
	builder.WriteString(", ")
	builder.WriteString("place_id=")
	builder.WriteString(_m.PlaceID)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("services=")
	builder.WriteString(fmt.Sprintf("%v", _m.Services))
	builder.WriteString(", ")
	builder.WriteString("tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tier))
	builder.WriteString(", ")
	builder.WriteString("features=")
	builder.WriteString(fmt.Sprintf("%v", _m.Features))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.Verified))
	builder.WriteString(", ")
	builder.WriteString("indexed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Indexed))
	builder.WriteString(", ")
	builder.WriteString("rating_avg=")
	builder.WriteString(fmt.Sprintf("%v", _m.RatingAvg))
	builder.WriteString(", ")
	builder.WriteString("review_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReviewCount))
	builder.WriteString(", ")
	builder.WriteString("clicks_30d=")
	builder.WriteString(fmt.Sprintf("%v", _m.Clicks30d))
	builder.WriteString(", ")
	builder.WriteString("calls_30d=")
	builder.WriteString(fmt.Sprintf("%v", _m.Calls30d))
	builder.WriteString(", ")
	builder.WriteString("engagement_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.EngagementScore))
	builder.WriteString(", ")
	builder.WriteString("engagement_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.EngagementStatus))
	builder.WriteString(", ")
	if v := _m.EngagementUpdatedAt; v != nil {
		builder.WriteString("engagement_updated_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Clinics is a parsable slice of Clinic.
type Clinics []*Clinic
