// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/leadsession"
	"github.com/menshealthfinder/api/ent/review"
)

// ClinicCreate is the builder for creating a Clinic entity.
type ClinicCreate struct {
	config
	mutation *ClinicMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *ClinicCreate) SetName(v string) *ClinicCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSlug sets the "slug" field.
func (_c *ClinicCreate) SetSlug(v string) *ClinicCreate {
	_c.mutation.SetSlug(v)
	return _c
}

// SetCity sets the "city" field.
func (_c *ClinicCreate) SetCity(v string) *ClinicCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetState sets the "state" field.
func (_c *ClinicCreate) SetState(v string) *ClinicCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetAddress sets the "address" field.
func (_c *ClinicCreate) SetAddress(v string) *ClinicCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableAddress(v *string) *ClinicCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetPostalCode sets the "postal_code" field.
func (_c *ClinicCreate) SetPostalCode(v string) *ClinicCreate {
	_c.mutation.SetPostalCode(v)
	return _c
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_c *ClinicCreate) SetNillablePostalCode(v *string) *ClinicCreate {
	if v != nil {
		_c.SetPostalCode(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ClinicCreate) SetPhone(v string) *ClinicCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ClinicCreate) SetNillablePhone(v *string) *ClinicCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *ClinicCreate) SetEmail(v string) *ClinicCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableEmail(v *string) *ClinicCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetWebsite sets the "website" field.
func (_c *ClinicCreate) SetWebsite(v string) *ClinicCreate {
	_c.mutation.SetWebsite(v)
	return _c
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableWebsite(v *string) *ClinicCreate {
	if v != nil {
		_c.SetWebsite(*v)
	}
	return _c
}

// SetLatitude sets the "latitude" field.
func (_c *ClinicCreate) SetLatitude(v float64) *ClinicCreate {
	_c.mutation.SetLatitude(v)
	return _c
}

// SetNillableLatitude sets the "latitude" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableLatitude(v *float64) *ClinicCreate {
	if v != nil {
		_c.SetLatitude(*v)
	}
	return _c
}

// SetLongitude sets the "longitude" field.
func (_c *ClinicCreate) SetLongitude(v float64) *ClinicCreate {
	_c.mutation.SetLongitude(v)
	return _c
}

// SetNillableLongitude sets the "longitude" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableLongitude(v *float64) *ClinicCreate {
	if v != nil {
		_c.SetLongitude(*v)
	}
	return _c
}

// SetPlaceID sets the "place_id" field.
func (_c *ClinicCreate) SetPlaceID(v string) *ClinicCreate {
	_c.mutation.SetPlaceID(v)
	return _c
}

// SetNillablePlaceID sets the "place_id" field if the given value is not nil.
func (_c *ClinicCreate) SetNillablePlaceID(v *string) *ClinicCreate {
	if v != nil {
		_c.SetPlaceID(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *ClinicCreate) SetDescription(v string) *ClinicCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableDescription(v *string) *ClinicCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetServices sets the "services" field.
func (_c *ClinicCreate) SetServices(v []string) *ClinicCreate {
	_c.mutation.SetServices(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *ClinicCreate) SetTier(v clinic.Tier) *ClinicCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableTier(v *clinic.Tier) *ClinicCreate {
	if v != nil {
		_c.SetTier(*v)
	}
	return _c
}

// SetFeatures sets the "features" field.
func (_c *ClinicCreate) SetFeatures(v []string) *ClinicCreate {
	_c.mutation.SetFeatures(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ClinicCreate) SetStatus(v clinic.Status) *ClinicCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableStatus(v *clinic.Status) *ClinicCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetVerified sets the "verified" field.
func (_c *ClinicCreate) SetVerified(v bool) *ClinicCreate {
	_c.mutation.SetVerified(v)
	return _c
}

// SetNillableVerified sets the "verified" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableVerified(v *bool) *ClinicCreate {
	if v != nil {
		_c.SetVerified(*v)
	}
	return _c
}

// SetIndexed sets the "indexed" field.
func (_c *ClinicCreate) SetIndexed(v bool) *ClinicCreate {
	_c.mutation.SetIndexed(v)
	return _c
}

// SetNillableIndexed sets the "indexed" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableIndexed(v *bool) *ClinicCreate {
	if v != nil {
		_c.SetIndexed(*v)
	}
	return _c
}

// SetRatingAvg sets the "rating_avg" field.
func (_c *ClinicCreate) SetRatingAvg(v float64) *ClinicCreate {
	_c.mutation.SetRatingAvg(v)
	return _c
}

// SetNillableRatingAvg sets the "rating_avg" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableRatingAvg(v *float64) *ClinicCreate {
	if v != nil {
		_c.SetRatingAvg(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *ClinicCreate) SetReviewCount(v int) *ClinicCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableReviewCount(v *int) *ClinicCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetClicks30d sets the "clicks_30d" field.
func (_c *ClinicCreate) SetClicks30d(v int) *ClinicCreate {
	_c.mutation.SetClicks30d(v)
	return _c
}

// SetNillableClicks30d sets the "clicks_30d" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableClicks30d(v *int) *ClinicCreate {
	if v != nil {
		_c.SetClicks30d(*v)
	}
	return _c
}

// SetCalls30d sets the "calls_30d" field.
func (_c *ClinicCreate) SetCalls30d(v int) *ClinicCreate {
	_c.mutation.SetCalls30d(v)
	return _c
}

// SetNillableCalls30d sets the "calls_30d" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableCalls30d(v *int) *ClinicCreate {
	if v != nil {
		_c.SetCalls30d(*v)
	}
	return _c
}

// SetEngagementScore sets the "engagement_score" field.
func (_c *ClinicCreate) SetEngagementScore(v int) *ClinicCreate {
	_c.mutation.SetEngagementScore(v)
	return _c
}

// SetNillableEngagementScore sets the "engagement_score" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableEngagementScore(v *int) *ClinicCreate {
	if v != nil {
		_c.SetEngagementScore(*v)
	}
	return _c
}

// SetEngagementStatus sets the "engagement_status" field.
func (_c *ClinicCreate) SetEngagementStatus(v clinic.EngagementStatus) *ClinicCreate {
	_c.mutation.SetEngagementStatus(v)
	return _c
}

// SetNillableEngagementStatus sets the "engagement_status" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableEngagementStatus(v *clinic.EngagementStatus) *ClinicCreate {
	if v != nil {
		_c.SetEngagementStatus(*v)
	}
	return _c
}

// SetEngagementUpdatedAt sets the "engagement_updated_at" field.
func (_c *ClinicCreate) SetEngagementUpdatedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetEngagementUpdatedAt(v)
	return _c
}

// SetNillableEngagementUpdatedAt sets the "engagement_updated_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableEngagementUpdatedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetEngagementUpdatedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClinicCreate) SetCreatedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableCreatedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClinicCreate) SetUpdatedAt(v time.Time) *ClinicCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClinicCreate) SetNillableUpdatedAt(v *time.Time) *ClinicCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddReviewIDs adds the "reviews" edge to the Review entity by IDs.
func (_c *ClinicCreate) AddReviewIDs(ids ...int) *ClinicCreate {
	_c.mutation.AddReviewIDs(ids...)
	return _c
}

// AddReviews adds the "reviews" edges to the Review entity.
func (_c *ClinicCreate) AddReviews(v ...*Review) *ClinicCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddReviewIDs(ids...)
}

// AddContactIDs adds the "contacts" edge to the Contact entity by IDs.
func (_c *ClinicCreate) AddContactIDs(ids ...int) *ClinicCreate {
	_c.mutation.AddContactIDs(ids...)
	return _c
}

// AddContacts adds the "contacts" edges to the Contact entity.
func (_c *ClinicCreate) AddContacts(v ...*Contact) *ClinicCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddContactIDs(ids...)
}

// AddSessionIDs adds the "sessions" edge to the LeadSession entity by IDs.
func (_c *ClinicCreate) AddSessionIDs(ids ...int) *ClinicCreate {
	_c.mutation.AddSessionIDs(ids...)
	return _c
}

// AddSessions adds the "sessions" edges to the LeadSession entity.
func (_c *ClinicCreate) AddSessions(v ...*LeadSession) *ClinicCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddSessionIDs(ids...)
}

// Mutation returns the ClinicMutation object of the builder.
func (_c *ClinicCreate) Mutation() *ClinicMutation {
	return _c.mutation
}

// Save creates the Clinic in the database.
func (_c *ClinicCreate) Save(ctx context.Context) (*Clinic, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClinicCreate) SaveX(ctx context.Context) *Clinic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClinicCreate) defaults() {
	if _, ok := _c.mutation.Tier(); !ok {
		v := clinic.DefaultTier
		_c.mutation.SetTier(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := clinic.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Verified(); !ok {
		v := clinic.DefaultVerified
		_c.mutation.SetVerified(v)
	}
	if _, ok := _c.mutation.Indexed(); !ok {
		v := clinic.DefaultIndexed
		_c.mutation.SetIndexed(v)
	}
	if _, ok := _c.mutation.RatingAvg(); !ok {
		v := clinic.DefaultRatingAvg
		_c.mutation.SetRatingAvg(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := clinic.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.Clicks30d(); !ok {
		v := clinic.DefaultClicks30d
		_c.mutation.SetClicks30d(v)
	}
	if _, ok := _c.mutation.Calls30d(); !ok {
		v := clinic.DefaultCalls30d
		_c.mutation.SetCalls30d(v)
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		v := clinic.DefaultEngagementScore
		_c.mutation.SetEngagementScore(v)
	}
	if _, ok := _c.mutation.EngagementStatus(); !ok {
		v := clinic.DefaultEngagementStatus
		_c.mutation.SetEngagementStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clinic.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clinic.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClinicCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Clinic.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := clinic.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Clinic.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Slug(); !ok {
		return &ValidationError{Name: "slug", err: errors.New(`ent: missing required field "Clinic.slug"`)}
	}
	if v, ok := _c.mutation.Slug(); ok {
		if err := clinic.SlugValidator(v); err != nil {
			return &ValidationError{Name: "slug", err: fmt.Errorf(`ent: validator failed for field "Clinic.slug": %w`, err)}
		}
	}
	if _, ok := _c.mutation.City(); !ok {
		return &ValidationError{Name: "city", err: errors.New(`ent: missing required field "Clinic.city"`)}
	}
	if v, ok := _c.mutation.City(); ok {
		if err := clinic.CityValidator(v); err != nil {
			return &ValidationError{Name: "city", err: fmt.Errorf(`ent: validator failed for field "Clinic.city": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Clinic.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := clinic.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Clinic.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "Clinic.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := clinic.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "Clinic.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Clinic.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := clinic.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Clinic.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Verified(); !ok {
		return &ValidationError{Name: "verified", err: errors.New(`ent: missing required field "Clinic.verified"`)}
	}
	if _, ok := _c.mutation.Indexed(); !ok {
		return &ValidationError{Name: "indexed", err: errors.New(`ent: missing required field "Clinic.indexed"`)}
	}
	if _, ok := _c.mutation.RatingAvg(); !ok {
		return &ValidationError{Name: "rating_avg", err: errors.New(`ent: missing required field "Clinic.rating_avg"`)}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "Clinic.review_count"`)}
	}
	if v, ok := _c.mutation.ReviewCount(); ok {
		if err := clinic.ReviewCountValidator(v); err != nil {
			return &ValidationError{Name: "review_count", err: fmt.Errorf(`ent: validator failed for field "Clinic.review_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Clicks30d(); !ok {
		return &ValidationError{Name: "clicks_30d", err: errors.New(`ent: missing required field "Clinic.clicks_30d"`)}
	}
	if v, ok := _c.mutation.Clicks30d(); ok {
		if err := clinic.Clicks30dValidator(v); err != nil {
			return &ValidationError{Name: "clicks_30d", err: fmt.Errorf(`ent: validator failed for field "Clinic.clicks_30d": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Calls30d(); !ok {
		return &ValidationError{Name: "calls_30d", err: errors.New(`ent: missing required field "Clinic.calls_30d"`)}
	}
	if v, ok := _c.mutation.Calls30d(); ok {
		if err := clinic.Calls30dValidator(v); err != nil {
			return &ValidationError{Name: "calls_30d", err: fmt.Errorf(`ent: validator failed for field "Clinic.calls_30d": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EngagementScore(); !ok {
		return &ValidationError{Name: "engagement_score", err: errors.New(`ent: missing required field "Clinic.engagement_score"`)}
	}
	if v, ok := _c.mutation.EngagementScore(); ok {
		if err := clinic.EngagementScoreValidator(v); err != nil {
			return &ValidationError{Name: "engagement_score", err: fmt.Errorf(`ent: validator failed for field "Clinic.engagement_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EngagementStatus(); !ok {
		return &ValidationError{Name: "engagement_status", err: errors.New(`ent: missing required field "Clinic.engagement_status"`)}
	}
	if v, ok := _c.mutation.EngagementStatus(); ok {
		if err := clinic.EngagementStatusValidator(v); err != nil {
			return &ValidationError{Name: "engagement_status", err: fmt.Errorf(`ent: validator failed for field "Clinic.engagement_status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Clinic.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Clinic.updated_at"`)}
	}
	return nil
}

func (_c *ClinicCreate) sqlSave(ctx context.Context) (*Clinic, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClinicCreate) createSpec() (*Clinic, *sqlgraph.CreateSpec) {
	var (
		_node = &Clinic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clinic.Table, sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(clinic.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Slug(); ok {
		_spec.SetField(clinic.FieldSlug, field.TypeString, value)
		_node.Slug = value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(clinic.FieldCity, field.TypeString, value)
		_node.City = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(clinic.FieldState, field.TypeString, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(clinic.FieldAddress, field.TypeString, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.PostalCode(); ok {
		_spec.SetField(clinic.FieldPostalCode, field.TypeString, value)
		_node.PostalCode = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(clinic.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(clinic.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Website(); ok {
		_spec.SetField(clinic.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := _c.mutation.Latitude(); ok {
		_spec.SetField(clinic.FieldLatitude, field.TypeFloat64, value)
		_node.Latitude = value
	}
	if value, ok := _c.mutation.Longitude(); ok {
		_spec.SetField(clinic.FieldLongitude, field.TypeFloat64, value)
		_node.Longitude = value
	}
	if value, ok := _c.mutation.PlaceID(); ok {
		_spec.SetField(clinic.FieldPlaceID, field.TypeString, value)
		_node.PlaceID = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(clinic.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Services(); ok {
		_spec.SetField(clinic.FieldServices, field.TypeJSON, value)
		_node.Services = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(clinic.FieldTier, field.TypeEnum, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Features(); ok {
		_spec.SetField(clinic.FieldFeatures, field.TypeJSON, value)
		_node.Features = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(clinic.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Verified(); ok {
		_spec.SetField(clinic.FieldVerified, field.TypeBool, value)
		_node.Verified = value
	}
	if value, ok := _c.mutation.Indexed(); ok {
		_spec.SetField(clinic.FieldIndexed, field.TypeBool, value)
		_node.Indexed = value
	}
	if value, ok := _c.mutation.RatingAvg(); ok {
		_spec.SetField(clinic.FieldRatingAvg, field.TypeFloat64, value)
		_node.RatingAvg = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(clinic.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.Clicks30d(); ok {
		_spec.SetField(clinic.FieldClicks30d, field.TypeInt, value)
		_node.Clicks30d = value
	}
	if value, ok := _c.mutation.Calls30d(); ok {
		_spec.SetField(clinic.FieldCalls30d, field.TypeInt, value)
		_node.Calls30d = value
	}
	if value, ok := _c.mutation.EngagementScore(); ok {
		_spec.SetField(clinic.FieldEngagementScore, field.TypeInt, value)
		_node.EngagementScore = value
	}
	if value, ok := _c.mutation.EngagementStatus(); ok {
		_spec.SetField(clinic.FieldEngagementStatus, field.TypeEnum, value)
		_node.EngagementStatus = value
	}
	if value, ok := _c.mutation.EngagementUpdatedAt(); ok {
		_spec.SetField(clinic.FieldEngagementUpdatedAt, field.TypeTime, value)
		_node.EngagementUpdatedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clinic.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clinic.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ReviewsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ContactsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SessionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ClinicCreateBulk is the builder for creating many Clinic entities in bulk.
type ClinicCreateBulk struct {
	config
	err      error
	builders []*ClinicCreate
}

// Save creates the Clinic entities in the database.
func (_c *ClinicCreateBulk) Save(ctx context.Context) ([]*Clinic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Clinic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClinicMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ClinicCreateBulk) SaveX(ctx context.Context) []*Clinic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClinicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClinicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
