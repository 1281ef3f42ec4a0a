// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/leadsession"
	"github.com/menshealthfinder/api/ent/predicate"
	"github.com/menshealthfinder/api/ent/review"
)

// ClinicUpdate is the builder for updating Clinic entities.
type ClinicUpdate struct {
	config
	hooks    []Hook
	mutation *ClinicMutation
}

// Where appends a list predicates to the ClinicUpdate builder.
func (_u *ClinicUpdate) Where(ps ...predicate.Clinic) *ClinicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *ClinicUpdate) SetName(v string) *ClinicUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableName(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ClinicUpdate) SetSlug(v string) *ClinicUpdate {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableSlug(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *ClinicUpdate) SetCity(v string) *ClinicUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableCity(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ClinicUpdate) SetState(v string) *ClinicUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableState(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *ClinicUpdate) SetAddress(v string) *ClinicUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableAddress(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ClinicUpdate) ClearAddress() *ClinicUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *ClinicUpdate) SetPostalCode(v string) *ClinicUpdate {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillablePostalCode(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *ClinicUpdate) ClearPostalCode() *ClinicUpdate {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClinicUpdate) SetPhone(v string) *ClinicUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillablePhone(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ClinicUpdate) ClearPhone() *ClinicUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ClinicUpdate) SetEmail(v string) *ClinicUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableEmail(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ClinicUpdate) ClearEmail() *ClinicUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ClinicUpdate) SetWebsite(v string) *ClinicUpdate {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableWebsite(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ClinicUpdate) ClearWebsite() *ClinicUpdate {
	_u.mutation.ClearWebsite()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *ClinicUpdate) SetLatitude(v float64) *ClinicUpdate {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableLatitude(v *float64) *ClinicUpdate {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *ClinicUpdate) AddLatitude(v float64) *ClinicUpdate {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *ClinicUpdate) ClearLatitude() *ClinicUpdate {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *ClinicUpdate) SetLongitude(v float64) *ClinicUpdate {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableLongitude(v *float64) *ClinicUpdate {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *ClinicUpdate) AddLongitude(v float64) *ClinicUpdate {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *ClinicUpdate) ClearLongitude() *ClinicUpdate {
	_u.mutation.ClearLongitude()
	return _u
}

// SetPlaceID sets the "place_id" field.
func (_u *ClinicUpdate) SetPlaceID(v string) *ClinicUpdate {
	_u.mutation.SetPlaceID(v)
	return _u
}

// SetNillablePlaceID sets the "place_id" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillablePlaceID(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetPlaceID(*v)
	}
	return _u
}

// ClearPlaceID clears the value of the "place_id" field.
func (_u *ClinicUpdate) ClearPlaceID() *ClinicUpdate {
	_u.mutation.ClearPlaceID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClinicUpdate) SetDescription(v string) *ClinicUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableDescription(v *string) *ClinicUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClinicUpdate) ClearDescription() *ClinicUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetServices sets the "services" field.
func (_u *ClinicUpdate) SetServices(v []string) *ClinicUpdate {
	_u.mutation.SetServices(v)
	return _u
}

// AppendServices appends value to the "services" field.
func (_u *ClinicUpdate) AppendServices(v []string) *ClinicUpdate {
	_u.mutation.AppendServices(v)
	return _u
}

// ClearServices clears the value of the "services" field.
func (_u *ClinicUpdate) ClearServices() *ClinicUpdate {
	_u.mutation.ClearServices()
	return _u
}

// SetTier sets the "tier" field.
func (_u *ClinicUpdate) SetTier(v clinic.Tier) *ClinicUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableTier(v *clinic.Tier) *ClinicUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetFeatures sets the "features" field.
func (_u *ClinicUpdate) SetFeatures(v []string) *ClinicUpdate {
	_u.mutation.SetFeatures(v)
	return _u
}

// AppendFeatures appends value to the "features" field.
func (_u *ClinicUpdate) AppendFeatures(v []string) *ClinicUpdate {
	_u.mutation.AppendFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *ClinicUpdate) ClearFeatures() *ClinicUpdate {
	_u.mutation.ClearFeatures()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClinicUpdate) SetStatus(v clinic.Status) *ClinicUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableStatus(v *clinic.Status) *ClinicUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVerified sets the "verified" field.
func (_u *ClinicUpdate) SetVerified(v bool) *ClinicUpdate {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableVerified(v *bool) *ClinicUpdate {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetIndexed sets the "indexed" field.
func (_u *ClinicUpdate) SetIndexed(v bool) *ClinicUpdate {
	_u.mutation.SetIndexed(v)
	return _u
}

// SetNillableIndexed sets the "indexed" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableIndexed(v *bool) *ClinicUpdate {
	if v != nil {
		_u.SetIndexed(*v)
	}
	return _u
}

// SetRatingAvg sets the "rating_avg" field.
func (_u *ClinicUpdate) SetRatingAvg(v float64) *ClinicUpdate {
	_u.mutation.ResetRatingAvg()
	_u.mutation.SetRatingAvg(v)
	return _u
}

// SetNillableRatingAvg sets the "rating_avg" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableRatingAvg(v *float64) *ClinicUpdate {
	if v != nil {
		_u.SetRatingAvg(*v)
	}
	return _u
}

// AddRatingAvg adds value to the "rating_avg" field.
func (_u *ClinicUpdate) AddRatingAvg(v float64) *ClinicUpdate {
	_u.mutation.AddRatingAvg(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ClinicUpdate) SetReviewCount(v int) *ClinicUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableReviewCount(v *int) *ClinicUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ClinicUpdate) AddReviewCount(v int) *ClinicUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetClicks30d sets the "clicks_30d" field.
func (_u *ClinicUpdate) SetClicks30d(v int) *ClinicUpdate {
	_u.mutation.ResetClicks30d()
	_u.mutation.SetClicks30d(v)
	return _u
}

// SetNillableClicks30d sets the "clicks_30d" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableClicks30d(v *int) *ClinicUpdate {
	if v != nil {
		_u.SetClicks30d(*v)
	}
	return _u
}

// AddClicks30d adds value to the "clicks_30d" field.
func (_u *ClinicUpdate) AddClicks30d(v int) *ClinicUpdate {
	_u.mutation.AddClicks30d(v)
	return _u
}

// SetCalls30d sets the "calls_30d" field.
func (_u *ClinicUpdate) SetCalls30d(v int) *ClinicUpdate {
	_u.mutation.ResetCalls30d()
	_u.mutation.SetCalls30d(v)
	return _u
}

// SetNillableCalls30d sets the "calls_30d" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableCalls30d(v *int) *ClinicUpdate {
	if v != nil {
		_u.SetCalls30d(*v)
	}
	return _u
}

// AddCalls30d adds value to the "calls_30d" field.
func (_u *ClinicUpdate) AddCalls30d(v int) *ClinicUpdate {
	_u.mutation.AddCalls30d(v)
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *ClinicUpdate) SetEngagementScore(v int) *ClinicUpdate {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableEngagementScore(v *int) *ClinicUpdate {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *ClinicUpdate) AddEngagementScore(v int) *ClinicUpdate {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetEngagementStatus sets the "engagement_status" field.
func (_u *ClinicUpdate) SetEngagementStatus(v clinic.EngagementStatus) *ClinicUpdate {
	_u.mutation.SetEngagementStatus(v)
	return _u
}

// SetNillableEngagementStatus sets the "engagement_status" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableEngagementStatus(v *clinic.EngagementStatus) *ClinicUpdate {
	if v != nil {
		_u.SetEngagementStatus(*v)
	}
	return _u
}

// SetEngagementUpdatedAt sets the "engagement_updated_at" field.
func (_u *ClinicUpdate) SetEngagementUpdatedAt(v time.Time) *ClinicUpdate {
	_u.mutation.SetEngagementUpdatedAt(v)
	return _u
}

// SetNillableEngagementUpdatedAt sets the "engagement_updated_at" field if the given value is not nil.
func (_u *ClinicUpdate) SetNillableEngagementUpdatedAt(v *time.Time) *ClinicUpdate {
	if v != nil {
		_u.SetEngagementUpdatedAt(*v)
	}
	return _u
}

// ClearEngagementUpdatedAt clears the value of the "engagement_updated_at" field.
func (_u *ClinicUpdate) ClearEngagementUpdatedAt() *ClinicUpdate {
	_u.mutation.ClearEngagementUpdatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicUpdate) SetUpdatedAt(v time.Time) *ClinicUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (_u *ClinicUpdate) AddReviewIDs(ids ...int) *ClinicUpdate {
	_u.mutation.AddReviewIDs(ids...)
	return _u
}

// AddReviews adds the "reviews" edges to the Review entity.
func (_u *ClinicUpdate) AddReviews(v ...*Review) *ClinicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewIDs(ids...)
}

// AddContactIDs adds the "contacts" edge to the Contact entity by IDs.
func (_u *ClinicUpdate) AddContactIDs(ids ...int) *ClinicUpdate {
	_u.mutation.AddContactIDs(ids...)
	return _u
}

// AddContacts adds the "contacts" edges to the Contact entity.
func (_u *ClinicUpdate) AddContacts(v ...*Contact) *ClinicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContactIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the LeadSession entity by IDs.
func (_u *ClinicUpdate) AddSessionIDs(ids ...int) *ClinicUpdate {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the LeadSession entity.
func (_u *ClinicUpdate) AddSessions(v ...*LeadSession) *ClinicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the ClinicMutation object of the builder.
func (_u *ClinicUpdate) Mutation() *ClinicMutation {
	return _u.mutation
}

// ClearReviews clears all "reviews" edges to the Review entity.
func (_u *ClinicUpdate) ClearReviews() *ClinicUpdate {
	_u.mutation.ClearReviews()
	return _u
}

// RemoveReviewIDs removes the "reviews" edge to Review entities by IDs.
func (_u *ClinicUpdate) RemoveReviewIDs(ids ...int) *ClinicUpdate {
	_u.mutation.RemoveReviewIDs(ids...)
	return _u
}

// RemoveReviews removes "reviews" edges to Review entities.
func (_u *ClinicUpdate) RemoveReviews(v ...*Review) *ClinicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewIDs(ids...)
}

// ClearContacts clears all "contacts" edges to the Contact entity.
func (_u *ClinicUpdate) ClearContacts() *ClinicUpdate {
	_u.mutation.ClearContacts()
	return _u
}

// RemoveContactIDs removes the "contacts" edge to Contact entities by IDs.
func (_u *ClinicUpdate) RemoveContactIDs(ids ...int) *ClinicUpdate {
	_u.mutation.RemoveContactIDs(ids...)
	return _u
}

// RemoveContacts removes "contacts" edges to Contact entities.
func (_u *ClinicUpdate) RemoveContacts(v ...*Contact) *ClinicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContactIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the LeadSession entity.
func (_u *ClinicUpdate) ClearSessions() *ClinicUpdate {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to LeadSession entities by IDs.
func (_u *ClinicUpdate) RemoveSessionIDs(ids ...int) *ClinicUpdate {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to LeadSession entities.
func (_u *ClinicUpdate) RemoveSessions(v ...*LeadSession) *ClinicUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClinicUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClinicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := clinic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Clinic.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := clinic.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Clinic.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := clinic.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Clinic.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := clinic.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Clinic.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := clinic.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Clinic.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := clinic.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Clinic.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := clinic.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "Clinic.review_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Clicks30d(); ok {
		if err := clinic.Clicks30dValidator(v); err != nil {
			return &ValidationError{Name: "clicks_30d", err: fmt.Errorf(`ent: validator failed for field "Clinic.clicks_30d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Calls30d(); ok {
		if err := clinic.Calls30dValidator(v); err != nil {
			return &ValidationError{Name: "calls_30d", err: fmt.Errorf(`ent: validator failed for field "Clinic.calls_30d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EngagementScore(); ok {
		if err := clinic.EngagementScoreValidator(v); err != nil {
			return &ValidationError{Name: "engagement_score", err: fmt.Errorf(`ent: validator failed for field "Clinic.engagement_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EngagementStatus(); ok {
		if err := clinic.EngagementStatusValidator(v); err != nil {
			return &ValidationError{Name: "engagement_status", err: fmt.Errorf(`ent: validator failed for field "Clinic.engagement_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinic.Table, clinic.Columns, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(clinic.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(clinic.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(clinic.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(clinic.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(clinic.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(clinic.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(clinic.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(clinic.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(clinic.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(clinic.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(clinic.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(clinic.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(clinic.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(clinic.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(clinic.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(clinic.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(clinic.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(clinic.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(clinic.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PlaceID(); ok {
		_spec.SetField(clinic.FieldPlaceID, field.TypeString, value)
	}
	if _u.mutation.PlaceIDCleared() {
		_spec.ClearField(clinic.FieldPlaceID, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(clinic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(clinic.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Services(); ok {
		_spec.SetField(clinic.FieldServices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedServices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, clinic.FieldServices, value)
		})
	}
	if _u.mutation.ServicesCleared() {
		_spec.ClearField(clinic.FieldServices, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(clinic.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(clinic.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, clinic.FieldFeatures, value)
		})
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(clinic.FieldFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(clinic.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(clinic.FieldVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Indexed(); ok {
		_spec.SetField(clinic.FieldIndexed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RatingAvg(); ok {
		_spec.SetField(clinic.FieldRatingAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRatingAvg(); ok {
		_spec.AddField(clinic.FieldRatingAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(clinic.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(clinic.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Clicks30d(); ok {
		_spec.SetField(clinic.FieldClicks30d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClicks30d(); ok {
		_spec.AddField(clinic.FieldClicks30d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Calls30d(); ok {
		_spec.SetField(clinic.FieldCalls30d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCalls30d(); ok {
		_spec.AddField(clinic.FieldCalls30d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(clinic.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(clinic.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngagementStatus(); ok {
		_spec.SetField(clinic.FieldEngagementStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EngagementUpdatedAt(); ok {
		_spec.SetField(clinic.FieldEngagementUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EngagementUpdatedAtCleared() {
		_spec.ClearField(clinic.FieldEngagementUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.ReviewsTable,
			Columns: []string{clinic.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewsIDs(); len(nodes) > 0 && !_u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.ReviewsTable,
			Columns: []string{clinic.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.ReviewsTable,
			Columns: []string{clinic.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.ContactsTable,
			Columns: []string{clinic.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContactsIDs(); len(nodes) > 0 && !_u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.ContactsTable,
			Columns: []string{clinic.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.ContactsTable,
			Columns: []string{clinic.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.SessionsTable,
			Columns: []string{clinic.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadsession.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.SessionsTable,
			Columns: []string{clinic.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadsession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.SessionsTable,
			Columns: []string{clinic.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadsession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClinicUpdateOne is the builder for updating a single Clinic entity.
type ClinicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClinicMutation
}

// SetName sets the "name" field.
func (_u *ClinicUpdateOne) SetName(v string) *ClinicUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableName(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSlug sets the "slug" field.
func (_u *ClinicUpdateOne) SetSlug(v string) *ClinicUpdateOne {
	_u.mutation.SetSlug(v)
	return _u
}

// SetNillableSlug sets the "slug" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableSlug(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetSlug(*v)
	}
	return _u
}

// SetCity sets the "city" field.
func (_u *ClinicUpdateOne) SetCity(v string) *ClinicUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableCity(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *ClinicUpdateOne) SetState(v string) *ClinicUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableState(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *ClinicUpdateOne) SetAddress(v string) *ClinicUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableAddress(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *ClinicUpdateOne) ClearAddress() *ClinicUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *ClinicUpdateOne) SetPostalCode(v string) *ClinicUpdateOne {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillablePostalCode(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *ClinicUpdateOne) ClearPostalCode() *ClinicUpdateOne {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ClinicUpdateOne) SetPhone(v string) *ClinicUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillablePhone(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ClinicUpdateOne) ClearPhone() *ClinicUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetEmail sets the "email" field.
func (_u *ClinicUpdateOne) SetEmail(v string) *ClinicUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableEmail(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ClinicUpdateOne) ClearEmail() *ClinicUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetWebsite sets the "website" field.
func (_u *ClinicUpdateOne) SetWebsite(v string) *ClinicUpdateOne {
	_u.mutation.SetWebsite(v)
	return _u
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableWebsite(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetWebsite(*v)
	}
	return _u
}

// ClearWebsite clears the value of the "website" field.
func (_u *ClinicUpdateOne) ClearWebsite() *ClinicUpdateOne {
	_u.mutation.ClearWebsite()
	return _u
}

// SetLatitude sets the "latitude" field.
func (_u *ClinicUpdateOne) SetLatitude(v float64) *ClinicUpdateOne {
	_u.mutation.ResetLatitude()
	_u.mutation.SetLatitude(v)
	return _u
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableLatitude(v *float64) *ClinicUpdateOne {
	if v != nil {
		_u.SetLatitude(*v)
	}
	return _u
}

// AddLatitude adds value to the "latitude" field.
func (_u *ClinicUpdateOne) AddLatitude(v float64) *ClinicUpdateOne {
	_u.mutation.AddLatitude(v)
	return _u
}

// ClearLatitude clears the value of the "latitude" field.
func (_u *ClinicUpdateOne) ClearLatitude() *ClinicUpdateOne {
	_u.mutation.ClearLatitude()
	return _u
}

// SetLongitude sets the "longitude" field.
func (_u *ClinicUpdateOne) SetLongitude(v float64) *ClinicUpdateOne {
	_u.mutation.ResetLongitude()
	_u.mutation.SetLongitude(v)
	return _u
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableLongitude(v *float64) *ClinicUpdateOne {
	if v != nil {
		_u.SetLongitude(*v)
	}
	return _u
}

// AddLongitude adds value to the "longitude" field.
func (_u *ClinicUpdateOne) AddLongitude(v float64) *ClinicUpdateOne {
	_u.mutation.AddLongitude(v)
	return _u
}

// ClearLongitude clears the value of the "longitude" field.
func (_u *ClinicUpdateOne) ClearLongitude() *ClinicUpdateOne {
	_u.mutation.ClearLongitude()
	return _u
}

// SetPlaceID sets the "place_id" field.
func (_u *ClinicUpdateOne) SetPlaceID(v string) *ClinicUpdateOne {
	_u.mutation.SetPlaceID(v)
	return _u
}

// SetNillablePlaceID sets the "place_id" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillablePlaceID(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetPlaceID(*v)
	}
	return _u
}

// ClearPlaceID clears the value of the "place_id" field.
func (_u *ClinicUpdateOne) ClearPlaceID() *ClinicUpdateOne {
	_u.mutation.ClearPlaceID()
	return _u
}

// SetDescription sets the "description" field.
func (_u *ClinicUpdateOne) SetDescription(v string) *ClinicUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableDescription(v *string) *ClinicUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *ClinicUpdateOne) ClearDescription() *ClinicUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetServices sets the "services" field.
func (_u *ClinicUpdateOne) SetServices(v []string) *ClinicUpdateOne {
	_u.mutation.SetServices(v)
	return _u
}

// AppendServices appends value to the "services" field.
func (_u *ClinicUpdateOne) AppendServices(v []string) *ClinicUpdateOne {
	_u.mutation.AppendServices(v)
	return _u
}

// ClearServices clears the value of the "services" field.
func (_u *ClinicUpdateOne) ClearServices() *ClinicUpdateOne {
	_u.mutation.ClearServices()
	return _u
}

// SetTier sets the "tier" field.
func (_u *ClinicUpdateOne) SetTier(v clinic.Tier) *ClinicUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableTier(v *clinic.Tier) *ClinicUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetFeatures sets the "features" field.
func (_u *ClinicUpdateOne) SetFeatures(v []string) *ClinicUpdateOne {
	_u.mutation.SetFeatures(v)
	return _u
}

// AppendFeatures appends value to the "features" field.
func (_u *ClinicUpdateOne) AppendFeatures(v []string) *ClinicUpdateOne {
	_u.mutation.AppendFeatures(v)
	return _u
}

// ClearFeatures clears the value of the "features" field.
func (_u *ClinicUpdateOne) ClearFeatures() *ClinicUpdateOne {
	_u.mutation.ClearFeatures()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ClinicUpdateOne) SetStatus(v clinic.Status) *ClinicUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableStatus(v *clinic.Status) *ClinicUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetVerified sets the "verified" field.
func (_u *ClinicUpdateOne) SetVerified(v bool) *ClinicUpdateOne {
	_u.mutation.SetVerified(v)
	return _u
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableVerified(v *bool) *ClinicUpdateOne {
	if v != nil {
		_u.SetVerified(*v)
	}
	return _u
}

// SetIndexed sets the "indexed" field.
func (_u *ClinicUpdateOne) SetIndexed(v bool) *ClinicUpdateOne {
	_u.mutation.SetIndexed(v)
	return _u
}

// SetNillableIndexed sets the "indexed" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableIndexed(v *bool) *ClinicUpdateOne {
	if v != nil {
		_u.SetIndexed(*v)
	}
	return _u
}

// SetRatingAvg sets the "rating_avg" field.
func (_u *ClinicUpdateOne) SetRatingAvg(v float64) *ClinicUpdateOne {
	_u.mutation.ResetRatingAvg()
	_u.mutation.SetRatingAvg(v)
	return _u
}

// SetNillableRatingAvg sets the "rating_avg" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableRatingAvg(v *float64) *ClinicUpdateOne {
	if v != nil {
		_u.SetRatingAvg(*v)
	}
	return _u
}

// AddRatingAvg adds value to the "rating_avg" field.
func (_u *ClinicUpdateOne) AddRatingAvg(v float64) *ClinicUpdateOne {
	_u.mutation.AddRatingAvg(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ClinicUpdateOne) SetReviewCount(v int) *ClinicUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableReviewCount(v *int) *ClinicUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ClinicUpdateOne) AddReviewCount(v int) *ClinicUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetClicks30d sets the "clicks_30d" field.
func (_u *ClinicUpdateOne) SetClicks30d(v int) *ClinicUpdateOne {
	_u.mutation.ResetClicks30d()
	_u.mutation.SetClicks30d(v)
	return _u
}

// SetNillableClicks30d sets the "clicks_30d" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableClicks30d(v *int) *ClinicUpdateOne {
	if v != nil {
		_u.SetClicks30d(*v)
	}
	return _u
}

// AddClicks30d adds value to the "clicks_30d" field.
func (_u *ClinicUpdateOne) AddClicks30d(v int) *ClinicUpdateOne {
	_u.mutation.AddClicks30d(v)
	return _u
}

// SetCalls30d sets the "calls_30d" field.
func (_u *ClinicUpdateOne) SetCalls30d(v int) *ClinicUpdateOne {
	_u.mutation.ResetCalls30d()
	_u.mutation.SetCalls30d(v)
	return _u
}

// SetNillableCalls30d sets the "calls_30d" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableCalls30d(v *int) *ClinicUpdateOne {
	if v != nil {
		_u.SetCalls30d(*v)
	}
	return _u
}

// AddCalls30d adds value to the "calls_30d" field.
func (_u *ClinicUpdateOne) AddCalls30d(v int) *ClinicUpdateOne {
	_u.mutation.AddCalls30d(v)
	return _u
}

// SetEngagementScore sets the "engagement_score" field.
func (_u *ClinicUpdateOne) SetEngagementScore(v int) *ClinicUpdateOne {
	_u.mutation.ResetEngagementScore()
	_u.mutation.SetEngagementScore(v)
	return _u
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableEngagementScore(v *int) *ClinicUpdateOne {
	if v != nil {
		_u.SetEngagementScore(*v)
	}
	return _u
}

// AddEngagementScore adds value to the "engagement_score" field.
func (_u *ClinicUpdateOne) AddEngagementScore(v int) *ClinicUpdateOne {
	_u.mutation.AddEngagementScore(v)
	return _u
}

// SetEngagementStatus sets the "engagement_status" field.
func (_u *ClinicUpdateOne) SetEngagementStatus(v clinic.EngagementStatus) *ClinicUpdateOne {
	_u.mutation.SetEngagementStatus(v)
	return _u
}

// SetNillableEngagementStatus sets the "engagement_status" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableEngagementStatus(v *clinic.EngagementStatus) *ClinicUpdateOne {
	if v != nil {
		_u.SetEngagementStatus(*v)
	}
	return _u
}

// SetEngagementUpdatedAt sets the "engagement_updated_at" field.
func (_u *ClinicUpdateOne) SetEngagementUpdatedAt(v time.Time) *ClinicUpdateOne {
	_u.mutation.SetEngagementUpdatedAt(v)
	return _u
}

// SetNillableEngagementUpdatedAt sets the "engagement_updated_at" field if the given value is not nil.
func (_u *ClinicUpdateOne) SetNillableEngagementUpdatedAt(v *time.Time) *ClinicUpdateOne {
	if v != nil {
		_u.SetEngagementUpdatedAt(*v)
	}
	return _u
}

// ClearEngagementUpdatedAt clears the value of the "engagement_updated_at" field.
func (_u *ClinicUpdateOne) ClearEngagementUpdatedAt() *ClinicUpdateOne {
	_u.mutation.ClearEngagementUpdatedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClinicUpdateOne) SetUpdatedAt(v time.Time) *ClinicUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (_u *ClinicUpdateOne) AddReviewIDs(ids ...int) *ClinicUpdateOne {
	_u.mutation.AddReviewIDs(ids...)
	return _u
}

// AddReviews adds the "reviews" edges to the Review entity.
func (_u *ClinicUpdateOne) AddReviews(v ...*Review) *ClinicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddReviewIDs(ids...)
}

// AddContactIDs adds the "contacts" edge to the Contact entity by IDs.
func (_u *ClinicUpdateOne) AddContactIDs(ids ...int) *ClinicUpdateOne {
	_u.mutation.AddContactIDs(ids...)
	return _u
}

// AddContacts adds the "contacts" edges to the Contact entity.
func (_u *ClinicUpdateOne) AddContacts(v ...*Contact) *ClinicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddContactIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the LeadSession entity by IDs.
func (_u *ClinicUpdateOne) AddSessionIDs(ids ...int) *ClinicUpdateOne {
	_u.mutation.AddSessionIDs(ids...)
	return _u
}

// AddSessions adds the "sessions" edges to the LeadSession entity.
func (_u *ClinicUpdateOne) AddSessions(v ...*LeadSession) *ClinicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddSessionIDs(ids...)
}

// Mutation returns the ClinicMutation object of the builder.
func (_u *ClinicUpdateOne) Mutation() *ClinicMutation {
	return _u.mutation
}

// ClearReviews clears all "reviews" edges to the Review entity.
func (_u *ClinicUpdateOne) ClearReviews() *ClinicUpdateOne {
	_u.mutation.ClearReviews()
	return _u
}

// RemoveReviewIDs removes the "reviews" edge to Review entities by IDs.
func (_u *ClinicUpdateOne) RemoveReviewIDs(ids ...int) *ClinicUpdateOne {
	_u.mutation.RemoveReviewIDs(ids...)
	return _u
}

// RemoveReviews removes "reviews" edges to Review entities.
func (_u *ClinicUpdateOne) RemoveReviews(v ...*Review) *ClinicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveReviewIDs(ids...)
}

// ClearContacts clears all "contacts" edges to the Contact entity.
func (_u *ClinicUpdateOne) ClearContacts() *ClinicUpdateOne {
	_u.mutation.ClearContacts()
	return _u
}

// RemoveContactIDs removes the "contacts" edge to Contact entities by IDs.
func (_u *ClinicUpdateOne) RemoveContactIDs(ids ...int) *ClinicUpdateOne {
	_u.mutation.RemoveContactIDs(ids...)
	return _u
}

// RemoveContacts removes "contacts" edges to Contact entities.
func (_u *ClinicUpdateOne) RemoveContacts(v ...*Contact) *ClinicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveContactIDs(ids...)
}

// ClearSessions clears all "sessions" edges to the LeadSession entity.
func (_u *ClinicUpdateOne) ClearSessions() *ClinicUpdateOne {
	_u.mutation.ClearSessions()
	return _u
}

// RemoveSessionIDs removes the "sessions" edge to LeadSession entities by IDs.
func (_u *ClinicUpdateOne) RemoveSessionIDs(ids ...int) *ClinicUpdateOne {
	_u.mutation.RemoveSessionIDs(ids...)
	return _u
}

// RemoveSessions removes "sessions" edges to LeadSession entities.
func (_u *ClinicUpdateOne) RemoveSessions(v ...*LeadSession) *ClinicUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveSessionIDs(ids...)
}

// Where appends a list predicates to the ClinicUpdate builder.
func (_u *ClinicUpdateOne) Where(ps ...predicate.Clinic) *ClinicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClinicUpdateOne) Select(field string, fields ...string) *ClinicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Clinic entity.
func (_u *ClinicUpdateOne) Save(ctx context.Context) (*Clinic, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClinicUpdateOne) SaveX(ctx context.Context) *Clinic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClinicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClinicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClinicUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clinic.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ClinicUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := clinic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Clinic.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Slug(); ok {
		if err := clinic.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Clinic.slug": %w`, err)}
		}
	}
	if v, ok := _u.mutation.City(); ok {
		if err := clinic.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Clinic.city": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := clinic.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Clinic.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := clinic.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Clinic.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := clinic.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Clinic.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReviewCount(); ok {
		if err := clinic.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "Clinic.review_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Clicks30d(); ok {
		if err := clinic.Clicks30dValidator(v); err != nil {
			return &ValidationError{Name: "clicks_30d", err: fmt.Errorf(`ent: validator failed for field "Clinic.clicks_30d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Calls30d(); ok {
		if err := clinic.Calls30dValidator(v); err != nil {
			return &ValidationError{Name: "calls_30d", err: fmt.Errorf(`ent: validator failed for field "Clinic.calls_30d": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EngagementScore(); ok {
		if err := clinic.EngagementScoreValidator(v); err != nil {
			return &ValidationError{Name: "engagement_score", err: fmt.Errorf(`ent: validator failed for field "Clinic.engagement_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EngagementStatus(); ok {
		if err := clinic.EngagementStatusValidator(v); err != nil {
			return &ValidationError{Name: "engagement_status", err: fmt.Errorf(`ent: validator failed for field "Clinic.engagement_status": %w`, err)}
		}
	}
	return nil
}

func (_u *ClinicUpdateOne) sqlSave(ctx context.Context) (_node *Clinic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(clinic.Table, clinic.Columns, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Clinic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clinic.FieldID)
		for _, f := range fields {
			if !clinic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clinic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Slug(); ok {
		_spec.SetField(clinic.FieldSlug, field.TypeString, value)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(clinic.FieldCity, field.TypeString, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(clinic.FieldState, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(clinic.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(clinic.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(clinic.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(clinic.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(clinic.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(clinic.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(clinic.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(clinic.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Website(); ok {
		_spec.SetField(clinic.FieldWebsite, field.TypeString, value)
	}
	if _u.mutation.WebsiteCleared() {
		_spec.ClearField(clinic.FieldWebsite, field.TypeString)
	}
	if value, ok := _u.mutation.Latitude(); ok {
		_spec.SetField(clinic.FieldLatitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLatitude(); ok {
		_spec.AddField(clinic.FieldLatitude, field.TypeFloat64, value)
	}
	if _u.mutation.LatitudeCleared() {
		_spec.ClearField(clinic.FieldLatitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Longitude(); ok {
		_spec.SetField(clinic.FieldLongitude, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLongitude(); ok {
		_spec.AddField(clinic.FieldLongitude, field.TypeFloat64, value)
	}
	if _u.mutation.LongitudeCleared() {
		_spec.ClearField(clinic.FieldLongitude, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PlaceID(); ok {
		_spec.SetField(clinic.FieldPlaceID, field.TypeString, value)
	}
	if _u.mutation.PlaceIDCleared() {
		_spec.ClearField(clinic.FieldPlaceID, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(clinic.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(clinic.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Services(); ok {
		_spec.SetField(clinic.FieldServices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedServices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, clinic.FieldServices, value)
		})
	}
	if _u.mutation.ServicesCleared() {
		_spec.ClearField(clinic.FieldServices, field.TypeJSON)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(clinic.FieldTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Features(); ok {
		_spec.SetField(clinic.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, clinic.FieldFeatures, value)
		})
	}
	if _u.mutation.FeaturesCleared() {
		_spec.ClearField(clinic.FieldFeatures, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(clinic.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Verified(); ok {
		_spec.SetField(clinic.FieldVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Indexed(); ok {
		_spec.SetField(clinic.FieldIndexed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.RatingAvg(); ok {
		_spec.SetField(clinic.FieldRatingAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRatingAvg(); ok {
		_spec.AddField(clinic.FieldRatingAvg, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(clinic.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(clinic.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Clicks30d(); ok {
		_spec.SetField(clinic.FieldClicks30d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClicks30d(); ok {
		_spec.AddField(clinic.FieldClicks30d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Calls30d(); ok {
		_spec.SetField(clinic.FieldCalls30d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCalls30d(); ok {
		_spec.AddField(clinic.FieldCalls30d, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngagementScore(); ok {
		_spec.SetField(clinic.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEngagementScore(); ok {
		_spec.AddField(clinic.FieldEngagementScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EngagementStatus(); ok {
		_spec.SetField(clinic.FieldEngagementStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.EngagementUpdatedAt(); ok {
		_spec.SetField(clinic.FieldEngagementUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EngagementUpdatedAtCleared() {
		_spec.ClearField(clinic.FieldEngagementUpdatedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.ReviewsTable,
			Columns: []string{clinic.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedReviewsIDs(); len(nodes) > 0 && !_u.mutation.ReviewsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.ReviewsTable,
			Columns: []string{clinic.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ReviewsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.ReviewsTable,
			Columns: []string{clinic.ReviewsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.ContactsTable,
			Columns: []string{clinic.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedContactsIDs(); len(nodes) > 0 && !_u.mutation.ContactsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.ContactsTable,
			Columns: []string{clinic.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.ContactsTable,
			Columns: []string{clinic.ContactsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.SessionsTable,
			Columns: []string{clinic.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadsession.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedSessionsIDs(); len(nodes) > 0 && !_u.mutation.SessionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.SessionsTable,
			Columns: []string{clinic.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadsession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SessionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   clinic.SessionsTable,
			Columns: []string{clinic.SessionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(leadsession.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Clinic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clinic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
