// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/menshealthfinder/api/ent/activity"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/followuptask"
)

// ContactCreate is the builder for creating a Contact entity.
type ContactCreate struct {
	config
	mutation *ContactMutation
	hooks    []Hook
}

// SetClinicID sets the "clinic_id" field.
func (_c *ContactCreate) SetClinicID(v int) *ContactCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_c *ContactCreate) SetNillableClinicID(v *int) *ContactCreate {
	if v != nil {
		_c.SetClinicID(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *ContactCreate) SetName(v string) *ContactCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ContactCreate) SetEmail(v string) *ContactCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ContactCreate) SetNillableEmail(v *string) *ContactCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *ContactCreate) SetPhone(v string) *ContactCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *ContactCreate) SetNillablePhone(v *string) *ContactCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetCompany sets the "company" field.
func (_c *ContactCreate) SetCompany(v string) *ContactCreate {
	_c.mutation.SetCompany(v)
	return _c
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_c *ContactCreate) SetNillableCompany(v *string) *ContactCreate {
	if v != nil {
		_c.SetCompany(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *ContactCreate) SetStage(v contact.Stage) *ContactCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *ContactCreate) SetNillableStage(v *contact.Stage) *ContactCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *ContactCreate) SetPriority(v contact.Priority) *ContactCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *ContactCreate) SetNillablePriority(v *contact.Priority) *ContactCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ContactCreate) SetStatus(v contact.Status) *ContactCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ContactCreate) SetNillableStatus(v *contact.Status) *ContactCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLeadScore sets the "lead_score" field.
func (_c *ContactCreate) SetLeadScore(v int) *ContactCreate {
	_c.mutation.SetLeadScore(v)
	return _c
}

// SetNillableLeadScore sets the "lead_score" field if the given value is not nil.
func (_c *ContactCreate) SetNillableLeadScore(v *int) *ContactCreate {
	if v != nil {
		_c.SetLeadScore(*v)
	}
	return _c
}

// SetTotalInteractions sets the "total_interactions" field.
func (_c *ContactCreate) SetTotalInteractions(v int) *ContactCreate {
	_c.mutation.SetTotalInteractions(v)
	return _c
}

// SetNillableTotalInteractions sets the "total_interactions" field if the given value is not nil.
func (_c *ContactCreate) SetNillableTotalInteractions(v *int) *ContactCreate {
	if v != nil {
		_c.SetTotalInteractions(*v)
	}
	return _c
}

// SetEmailOpens sets the "email_opens" field.
func (_c *ContactCreate) SetEmailOpens(v int) *ContactCreate {
	_c.mutation.SetEmailOpens(v)
	return _c
}

// SetNillableEmailOpens sets the "email_opens" field if the given value is not nil.
func (_c *ContactCreate) SetNillableEmailOpens(v *int) *ContactCreate {
	if v != nil {
		_c.SetEmailOpens(*v)
	}
	return _c
}

// SetEmailClicks sets the "email_clicks" field.
func (_c *ContactCreate) SetEmailClicks(v int) *ContactCreate {
	_c.mutation.SetEmailClicks(v)
	return _c
}

// SetNillableEmailClicks sets the "email_clicks" field if the given value is not nil.
func (_c *ContactCreate) SetNillableEmailClicks(v *int) *ContactCreate {
	if v != nil {
		_c.SetEmailClicks(*v)
	}
	return _c
}

// SetWebsiteVisits sets the "website_visits" field.
func (_c *ContactCreate) SetWebsiteVisits(v int) *ContactCreate {
	_c.mutation.SetWebsiteVisits(v)
	return _c
}

// SetNillableWebsiteVisits sets the "website_visits" field if the given value is not nil.
func (_c *ContactCreate) SetNillableWebsiteVisits(v *int) *ContactCreate {
	if v != nil {
		_c.SetWebsiteVisits(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *ContactCreate) SetSource(v string) *ContactCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *ContactCreate) SetNillableSource(v *string) *ContactCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetTags sets the "tags" field.
func (_c *ContactCreate) SetTags(v []string) *ContactCreate {
	_c.mutation.SetTags(v)
	return _c
}

// SetLastContactedAt sets the "last_contacted_at" field.
func (_c *ContactCreate) SetLastContactedAt(v time.Time) *ContactCreate {
	_c.mutation.SetLastContactedAt(v)
	return _c
}

// SetNillableLastContactedAt sets the "last_contacted_at" field if the given value is not nil.
func (_c *ContactCreate) SetNillableLastContactedAt(v *time.Time) *ContactCreate {
	if v != nil {
		_c.SetLastContactedAt(*v)
	}
	return _c
}

// SetStageChangedAt sets the "stage_changed_at" field.
func (_c *ContactCreate) SetStageChangedAt(v time.Time) *ContactCreate {
	_c.mutation.SetStageChangedAt(v)
	return _c
}

// SetNillableStageChangedAt sets the "stage_changed_at" field if the given value is not nil.
func (_c *ContactCreate) SetNillableStageChangedAt(v *time.Time) *ContactCreate {
	if v != nil {
		_c.SetStageChangedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContactCreate) SetCreatedAt(v time.Time) *ContactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContactCreate) SetNillableCreatedAt(v *time.Time) *ContactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ContactCreate) SetUpdatedAt(v time.Time) *ContactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ContactCreate) SetNillableUpdatedAt(v *time.Time) *ContactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_c *ContactCreate) SetClinic(v *Clinic) *ContactCreate {
	return _c.SetClinicID(v.ID)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_c *ContactCreate) AddActivityIDs(ids ...int) *ContactCreate {
	_c.mutation.AddActivityIDs(ids...)
	return _c
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_c *ContactCreate) AddActivities(v ...*Activity) *ContactCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddActivityIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the FollowUpTask entity by IDs.
func (_c *ContactCreate) AddTaskIDs(ids ...int) *ContactCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the FollowUpTask entity.
func (_c *ContactCreate) AddTasks(v ...*FollowUpTask) *ContactCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// Mutation returns the ContactMutation object of the builder.
func (_c *ContactCreate) Mutation() *ContactMutation {
	return _c.mutation
}

// Save creates the Contact in the database.
func (_c *ContactCreate) Save(ctx context.Context) (*Contact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContactCreate) SaveX(ctx context.Context) *Contact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContactCreate) defaults() {
	if _, ok := _c.mutation.Stage(); !ok {
		v := contact.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := contact.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := contact.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LeadScore(); !ok {
		v := contact.DefaultLeadScore
		_c.mutation.SetLeadScore(v)
	}
	if _, ok := _c.mutation.TotalInteractions(); !ok {
		v := contact.DefaultTotalInteractions
		_c.mutation.SetTotalInteractions(v)
	}
	if _, ok := _c.mutation.EmailOpens(); !ok {
		v := contact.DefaultEmailOpens
		_c.mutation.SetEmailOpens(v)
	}
	if _, ok := _c.mutation.EmailClicks(); !ok {
		v := contact.DefaultEmailClicks
		_c.mutation.SetEmailClicks(v)
	}
	if _, ok := _c.mutation.WebsiteVisits(); !ok {
		v := contact.DefaultWebsiteVisits
		_c.mutation.SetWebsiteVisits(v)
	}
	if _, ok := _c.mutation.StageChangedAt(); !ok {
		v := contact.DefaultStageChangedAt()
		_c.mutation.SetStageChangedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := contact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContactCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Contact.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := contact.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Contact.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "Contact.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := contact.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Contact.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Contact.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := contact.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Contact.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Contact.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := contact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contact.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LeadScore(); !ok {
		return &ValidationError{Name: "lead_score", err: errors.New(`ent: missing required field "Contact.lead_score"`)}
	}
	if v, ok := _c.mutation.LeadScore(); ok {
		if err := contact.LeadScoreValidator(v); err != nil {
			return &ValidationError{Name: "lead_score", err: fmt.Errorf(`ent: validator failed for field "Contact.lead_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalInteractions(); !ok {
		return &ValidationError{Name: "total_interactions", err: errors.New(`ent: missing required field "Contact.total_interactions"`)}
	}
	if v, ok := _c.mutation.TotalInteractions(); ok {
		if err := contact.TotalInteractionsValidator(v); err != nil {
			return &ValidationError{Name: "total_interactions", err: fmt.Errorf(`ent: validator failed for field "Contact.total_interactions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmailOpens(); !ok {
		return &ValidationError{Name: "email_opens", err: errors.New(`ent: missing required field "Contact.email_opens"`)}
	}
	if v, ok := _c.mutation.EmailOpens(); ok {
		if err := contact.EmailOpensValidator(v); err != nil {
			return &ValidationError{Name: "email_opens", err: fmt.Errorf(`ent: validator failed for field "Contact.email_opens": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmailClicks(); !ok {
		return &ValidationError{Name: "email_clicks", err: errors.New(`ent: missing required field "Contact.email_clicks"`)}
	}
	if v, ok := _c.mutation.EmailClicks(); ok {
		if err := contact.EmailClicksValidator(v); err != nil {
			return &ValidationError{Name: "email_clicks", err: fmt.Errorf(`ent: validator failed for field "Contact.email_clicks": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WebsiteVisits(); !ok {
		return &ValidationError{Name: "website_visits", err: errors.New(`ent: missing required field "Contact.website_visits"`)}
	}
	if v, ok := _c.mutation.WebsiteVisits(); ok {
		if err := contact.WebsiteVisitsValidator(v); err != nil {
			return &ValidationError{Name: "website_visits", err: fmt.Errorf(`ent: validator failed for field "Contact.website_visits": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StageChangedAt(); !ok {
		return &ValidationError{Name: "stage_changed_at", err: errors.New(`ent: missing required field "Contact.stage_changed_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Contact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Contact.updated_at"`)}
	}
	return nil
}

func (_c *ContactCreate) sqlSave(ctx context.Context) (*Contact, error) {
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

func (_c *ContactCreate) createSpec() (*Contact, *sqlgraph.CreateSpec) {
	var (
		_node = &Contact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contact.Table, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(contact.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(contact.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.Company(); ok {
		_spec.SetField(contact.FieldCompany, field.TypeString, value)
		_node.Company = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(contact.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(contact.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(contact.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LeadScore(); ok {
		_spec.SetField(contact.FieldLeadScore, field.TypeInt, value)
		_node.LeadScore = value
	}
	if value, ok := _c.mutation.TotalInteractions(); ok {
		_spec.SetField(contact.FieldTotalInteractions, field.TypeInt, value)
		_node.TotalInteractions = value
	}
	if value, ok := _c.mutation.EmailOpens(); ok {
		_spec.SetField(contact.FieldEmailOpens, field.TypeInt, value)
		_node.EmailOpens = value
	}
	if value, ok := _c.mutation.EmailClicks(); ok {
		_spec.SetField(contact.FieldEmailClicks, field.TypeInt, value)
		_node.EmailClicks = value
	}
	if value, ok := _c.mutation.WebsiteVisits(); ok {
		_spec.SetField(contact.FieldWebsiteVisits, field.TypeInt, value)
		_node.WebsiteVisits = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(contact.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Tags(); ok {
		_spec.SetField(contact.FieldTags, field.TypeJSON, value)
		_node.Tags = value
	}
	if value, ok := _c.mutation.LastContactedAt(); ok {
		_spec.SetField(contact.FieldLastContactedAt, field.TypeTime, value)
		_node.LastContactedAt = &value
	}
	if value, ok := _c.mutation.StageChangedAt(); ok {
		_spec.SetField(contact.FieldStageChangedAt, field.TypeTime, value)
		_node.StageChangedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contact.ClinicTable,
			Columns: []string{contact.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClinicID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ActivitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.ActivitiesTable,
			Columns: []string{contact.ActivitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(activity.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contact.TasksTable,
			Columns: []string{contact.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(followuptask.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContactCreateBulk is the builder for creating many Contact entities in bulk.
type ContactCreateBulk struct {
	config
	err      error
	builders []*ContactCreate
}

// Save creates the Contact entities in the database.
func (_c *ContactCreateBulk) Save(ctx context.Context) ([]*Contact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContactMutation)
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
func (_c *ContactCreateBulk) SaveX(ctx context.Context) []*Contact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
