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
	"github.com/menshealthfinder/api/ent/leadsession"
	"github.com/menshealthfinder/api/ent/schema"
)

// LeadSessionCreate is the builder for creating a LeadSession entity.
type LeadSessionCreate struct {
	config
	mutation *LeadSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *LeadSessionCreate) SetSessionID(v string) *LeadSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetClinicID sets the "clinic_id" field.
func (_c *LeadSessionCreate) SetClinicID(v int) *LeadSessionCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_c *LeadSessionCreate) SetNillableClinicID(v *int) *LeadSessionCreate {
	if v != nil {
		_c.SetClinicID(*v)
	}
	return _c
}

// SetActions sets the "actions" field.
func (_c *LeadSessionCreate) SetActions(v []schema.SessionAction) *LeadSessionCreate {
	_c.mutation.SetActions(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *LeadSessionCreate) SetSource(v string) *LeadSessionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *LeadSessionCreate) SetNillableSource(v *string) *LeadSessionCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetDevice sets the "device" field.
func (_c *LeadSessionCreate) SetDevice(v string) *LeadSessionCreate {
	_c.mutation.SetDevice(v)
	return _c
}

// SetNillableDevice sets the "device" field if the given value is not nil.
func (_c *LeadSessionCreate) SetNillableDevice(v *string) *LeadSessionCreate {
	if v != nil {
		_c.SetDevice(*v)
	}
	return _c
}

// SetBrowser sets the "browser" field.
func (_c *LeadSessionCreate) SetBrowser(v string) *LeadSessionCreate {
	_c.mutation.SetBrowser(v)
	return _c
}

// SetNillableBrowser sets the "browser" field if the given value is not nil.
func (_c *LeadSessionCreate) SetNillableBrowser(v *string) *LeadSessionCreate {
	if v != nil {
		_c.SetBrowser(*v)
	}
	return _c
}

// SetDwellSeconds sets the "dwell_seconds" field.
func (_c *LeadSessionCreate) SetDwellSeconds(v int) *LeadSessionCreate {
	_c.mutation.SetDwellSeconds(v)
	return _c
}

// SetNillableDwellSeconds sets the "dwell_seconds" field if the given value is not nil.
func (_c *LeadSessionCreate) SetNillableDwellSeconds(v *int) *LeadSessionCreate {
	if v != nil {
		_c.SetDwellSeconds(*v)
	}
	return _c
}

// SetConverted sets the "converted" field.
func (_c *LeadSessionCreate) SetConverted(v bool) *LeadSessionCreate {
	_c.mutation.SetConverted(v)
	return _c
}

// SetNillableConverted sets the "converted" field if the given value is not nil.
func (_c *LeadSessionCreate) SetNillableConverted(v *bool) *LeadSessionCreate {
	if v != nil {
		_c.SetConverted(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *LeadSessionCreate) SetStartedAt(v time.Time) *LeadSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *LeadSessionCreate) SetNillableStartedAt(v *time.Time) *LeadSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetLastActiveAt sets the "last_active_at" field.
func (_c *LeadSessionCreate) SetLastActiveAt(v time.Time) *LeadSessionCreate {
	_c.mutation.SetLastActiveAt(v)
	return _c
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_c *LeadSessionCreate) SetNillableLastActiveAt(v *time.Time) *LeadSessionCreate {
	if v != nil {
		_c.SetLastActiveAt(*v)
	}
	return _c
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_c *LeadSessionCreate) SetClinic(v *Clinic) *LeadSessionCreate {
	return _c.SetClinicID(v.ID)
}

// Mutation returns the LeadSessionMutation object of the builder.
func (_c *LeadSessionCreate) Mutation() *LeadSessionMutation {
	return _c.mutation
}

// Save creates the LeadSession in the database.
func (_c *LeadSessionCreate) Save(ctx context.Context) (*LeadSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LeadSessionCreate) SaveX(ctx context.Context) *LeadSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LeadSessionCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := leadsession.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.DwellSeconds(); !ok {
		v := leadsession.DefaultDwellSeconds
		_c.mutation.SetDwellSeconds(v)
	}
	if _, ok := _c.mutation.Converted(); !ok {
		v := leadsession.DefaultConverted
		_c.mutation.SetConverted(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := leadsession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.LastActiveAt(); !ok {
		v := leadsession.DefaultLastActiveAt()
		_c.mutation.SetLastActiveAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LeadSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LeadSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := leadsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LeadSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "LeadSession.source"`)}
	}
	if _, ok := _c.mutation.DwellSeconds(); !ok {
		return &ValidationError{Name: "dwell_seconds", err: errors.New(`ent: missing required field "LeadSession.dwell_seconds"`)}
	}
	if v, ok := _c.mutation.DwellSeconds(); ok {
		if err := leadsession.DwellSecondsValidator(v); err != nil {
			return &ValidationError{Name: "dwell_seconds", err: fmt.Errorf(`ent: validator failed for field "LeadSession.dwell_seconds": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Converted(); !ok {
		return &ValidationError{Name: "converted", err: errors.New(`ent: missing required field "LeadSession.converted"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "LeadSession.started_at"`)}
	}
	if _, ok := _c.mutation.LastActiveAt(); !ok {
		return &ValidationError{Name: "last_active_at", err: errors.New(`ent: missing required field "LeadSession.last_active_at"`)}
	}
	return nil
}

func (_c *LeadSessionCreate) sqlSave(ctx context.Context) (*LeadSession, error) {
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

func (_c *LeadSessionCreate) createSpec() (*LeadSession, *sqlgraph.CreateSpec) {
	var (
		_node = &LeadSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(leadsession.Table, sqlgraph.NewFieldSpec(leadsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(leadsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Actions(); ok {
		_spec.SetField(leadsession.FieldActions, field.TypeJSON, value)
		_node.Actions = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(leadsession.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Device(); ok {
		_spec.SetField(leadsession.FieldDevice, field.TypeString, value)
		_node.Device = value
	}
	if value, ok := _c.mutation.Browser(); ok {
		_spec.SetField(leadsession.FieldBrowser, field.TypeString, value)
		_node.Browser = value
	}
	if value, ok := _c.mutation.DwellSeconds(); ok {
		_spec.SetField(leadsession.FieldDwellSeconds, field.TypeInt, value)
		_node.DwellSeconds = value
	}
	if value, ok := _c.mutation.Converted(); ok {
		_spec.SetField(leadsession.FieldConverted, field.TypeBool, value)
		_node.Converted = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(leadsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.LastActiveAt(); ok {
		_spec.SetField(leadsession.FieldLastActiveAt, field.TypeTime, value)
		_node.LastActiveAt = value
	}
	if nodes := _c.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   leadsession.ClinicTable,
			Columns: []string{leadsession.ClinicColumn},
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
	return _node, _spec
}

// LeadSessionCreateBulk is the builder for creating many LeadSession entities in bulk.
type LeadSessionCreateBulk struct {
	config
	err      error
	builders []*LeadSessionCreate
}

// Save creates the LeadSession entities in the database.
func (_c *LeadSessionCreateBulk) Save(ctx context.Context) ([]*LeadSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LeadSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LeadSessionMutation)
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
func (_c *LeadSessionCreateBulk) SaveX(ctx context.Context) []*LeadSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LeadSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LeadSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
