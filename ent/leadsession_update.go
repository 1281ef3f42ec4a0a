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
	"github.com/menshealthfinder/api/ent/leadsession"
	"github.com/menshealthfinder/api/ent/predicate"
	"github.com/menshealthfinder/api/ent/schema"
)

// LeadSessionUpdate is the builder for updating LeadSession entities.
type LeadSessionUpdate struct {
	config
	hooks    []Hook
	mutation *LeadSessionMutation
}

// Where appends a list predicates to the LeadSessionUpdate builder.
func (_u *LeadSessionUpdate) Where(ps ...predicate.LeadSession) *LeadSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LeadSessionUpdate) SetSessionID(v string) *LeadSessionUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LeadSessionUpdate) SetNillableSessionID(v *string) *LeadSessionUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *LeadSessionUpdate) SetClinicID(v int) *LeadSessionUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *LeadSessionUpdate) SetNillableClinicID(v *int) *LeadSessionUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// ClearClinicID clears the value of the "clinic_id" field.
func (_u *LeadSessionUpdate) ClearClinicID() *LeadSessionUpdate {
	_u.mutation.ClearClinicID()
	return _u
}

// SetActions sets the "actions" field.
func (_u *LeadSessionUpdate) SetActions(v []schema.SessionAction) *LeadSessionUpdate {
	_u.mutation.SetActions(v)
	return _u
}

// AppendActions appends value to the "actions" field.
func (_u *LeadSessionUpdate) AppendActions(v []schema.SessionAction) *LeadSessionUpdate {
	_u.mutation.AppendActions(v)
	return _u
}

// ClearActions clears the value of the "actions" field.
func (_u *LeadSessionUpdate) ClearActions() *LeadSessionUpdate {
	_u.mutation.ClearActions()
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadSessionUpdate) SetSource(v string) *LeadSessionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadSessionUpdate) SetNillableSource(v *string) *LeadSessionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDevice sets the "device" field.
func (_u *LeadSessionUpdate) SetDevice(v string) *LeadSessionUpdate {
	_u.mutation.SetDevice(v)
	return _u
}

// SetNillableDevice sets the "device" field if the given value is not nil.
func (_u *LeadSessionUpdate) SetNillableDevice(v *string) *LeadSessionUpdate {
	if v != nil {
		_u.SetDevice(*v)
	}
	return _u
}

// ClearDevice clears the value of the "device" field.
func (_u *LeadSessionUpdate) ClearDevice() *LeadSessionUpdate {
	_u.mutation.ClearDevice()
	return _u
}

// SetBrowser sets the "browser" field.
func (_u *LeadSessionUpdate) SetBrowser(v string) *LeadSessionUpdate {
	_u.mutation.SetBrowser(v)
	return _u
}

// SetNillableBrowser sets the "browser" field if the given value is not nil.
func (_u *LeadSessionUpdate) SetNillableBrowser(v *string) *LeadSessionUpdate {
	if v != nil {
		_u.SetBrowser(*v)
	}
	return _u
}

// ClearBrowser clears the value of the "browser" field.
func (_u *LeadSessionUpdate) ClearBrowser() *LeadSessionUpdate {
	_u.mutation.ClearBrowser()
	return _u
}

// SetDwellSeconds sets the "dwell_seconds" field.
func (_u *LeadSessionUpdate) SetDwellSeconds(v int) *LeadSessionUpdate {
	_u.mutation.ResetDwellSeconds()
	_u.mutation.SetDwellSeconds(v)
	return _u
}

// SetNillableDwellSeconds sets the "dwell_seconds" field if the given value is not nil.
func (_u *LeadSessionUpdate) SetNillableDwellSeconds(v *int) *LeadSessionUpdate {
	if v != nil {
		_u.SetDwellSeconds(*v)
	}
	return _u
}

// AddDwellSeconds adds value to the "dwell_seconds" field.
func (_u *LeadSessionUpdate) AddDwellSeconds(v int) *LeadSessionUpdate {
	_u.mutation.AddDwellSeconds(v)
	return _u
}

// SetConverted sets the "converted" field.
func (_u *LeadSessionUpdate) SetConverted(v bool) *LeadSessionUpdate {
	_u.mutation.SetConverted(v)
	return _u
}

// SetNillableConverted sets the "converted" field if the given value is not nil.
func (_u *LeadSessionUpdate) SetNillableConverted(v *bool) *LeadSessionUpdate {
	if v != nil {
		_u.SetConverted(*v)
	}
	return _u
}

// SetLastActiveAt sets the "last_active_at" field.
func (_u *LeadSessionUpdate) SetLastActiveAt(v time.Time) *LeadSessionUpdate {
	_u.mutation.SetLastActiveAt(v)
	return _u
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_u *LeadSessionUpdate) SetNillableLastActiveAt(v *time.Time) *LeadSessionUpdate {
	if v != nil {
		_u.SetLastActiveAt(*v)
	}
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *LeadSessionUpdate) SetClinic(v *Clinic) *LeadSessionUpdate {
	return _u.SetClinicID(v.ID)
}

// Mutation returns the LeadSessionMutation object of the builder.
func (_u *LeadSessionUpdate) Mutation() *LeadSessionMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *LeadSessionUpdate) ClearClinic() *LeadSessionUpdate {
	_u.mutation.ClearClinic()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LeadSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LeadSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadSessionUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := leadsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LeadSession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DwellSeconds(); ok {
		if err := leadsession.DwellSecondsValidator(v); err != nil {
			return &ValidationError{Name: "dwell_seconds", err: fmt.Errorf(`ent: validator failed for field "LeadSession.dwell_seconds": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadsession.Table, leadsession.Columns, sqlgraph.NewFieldSpec(leadsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(leadsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Actions(); ok {
		_spec.SetField(leadsession.FieldActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, leadsession.FieldActions, value)
		})
	}
	if _u.mutation.ActionsCleared() {
		_spec.ClearField(leadsession.FieldActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(leadsession.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Device(); ok {
		_spec.SetField(leadsession.FieldDevice, field.TypeString, value)
	}
	if _u.mutation.DeviceCleared() {
		_spec.ClearField(leadsession.FieldDevice, field.TypeString)
	}
	if value, ok := _u.mutation.Browser(); ok {
		_spec.SetField(leadsession.FieldBrowser, field.TypeString, value)
	}
	if _u.mutation.BrowserCleared() {
		_spec.ClearField(leadsession.FieldBrowser, field.TypeString)
	}
	if value, ok := _u.mutation.DwellSeconds(); ok {
		_spec.SetField(leadsession.FieldDwellSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDwellSeconds(); ok {
		_spec.AddField(leadsession.FieldDwellSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Converted(); ok {
		_spec.SetField(leadsession.FieldConverted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastActiveAt(); ok {
		_spec.SetField(leadsession.FieldLastActiveAt, field.TypeTime, value)
	}
	if _u.mutation.ClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LeadSessionUpdateOne is the builder for updating a single LeadSession entity.
type LeadSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LeadSessionMutation
}

// SetSessionID sets the "session_id" field.
func (_u *LeadSessionUpdateOne) SetSessionID(v string) *LeadSessionUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LeadSessionUpdateOne) SetNillableSessionID(v *string) *LeadSessionUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *LeadSessionUpdateOne) SetClinicID(v int) *LeadSessionUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *LeadSessionUpdateOne) SetNillableClinicID(v *int) *LeadSessionUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// ClearClinicID clears the value of the "clinic_id" field.
func (_u *LeadSessionUpdateOne) ClearClinicID() *LeadSessionUpdateOne {
	_u.mutation.ClearClinicID()
	return _u
}

// SetActions sets the "actions" field.
func (_u *LeadSessionUpdateOne) SetActions(v []schema.SessionAction) *LeadSessionUpdateOne {
	_u.mutation.SetActions(v)
	return _u
}

// AppendActions appends value to the "actions" field.
func (_u *LeadSessionUpdateOne) AppendActions(v []schema.SessionAction) *LeadSessionUpdateOne {
	_u.mutation.AppendActions(v)
	return _u
}

// ClearActions clears the value of the "actions" field.
func (_u *LeadSessionUpdateOne) ClearActions() *LeadSessionUpdateOne {
	_u.mutation.ClearActions()
	return _u
}

// SetSource sets the "source" field.
func (_u *LeadSessionUpdateOne) SetSource(v string) *LeadSessionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *LeadSessionUpdateOne) SetNillableSource(v *string) *LeadSessionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetDevice sets the "device" field.
func (_u *LeadSessionUpdateOne) SetDevice(v string) *LeadSessionUpdateOne {
	_u.mutation.SetDevice(v)
	return _u
}

// SetNillableDevice sets the "device" field if the given value is not nil.
func (_u *LeadSessionUpdateOne) SetNillableDevice(v *string) *LeadSessionUpdateOne {
	if v != nil {
		_u.SetDevice(*v)
	}
	return _u
}

// ClearDevice clears the value of the "device" field.
func (_u *LeadSessionUpdateOne) ClearDevice() *LeadSessionUpdateOne {
	_u.mutation.ClearDevice()
	return _u
}

// SetBrowser sets the "browser" field.
func (_u *LeadSessionUpdateOne) SetBrowser(v string) *LeadSessionUpdateOne {
	_u.mutation.SetBrowser(v)
	return _u
}

// SetNillableBrowser sets the "browser" field if the given value is not nil.
func (_u *LeadSessionUpdateOne) SetNillableBrowser(v *string) *LeadSessionUpdateOne {
	if v != nil {
		_u.SetBrowser(*v)
	}
	return _u
}

// ClearBrowser clears the value of the "browser" field.
func (_u *LeadSessionUpdateOne) ClearBrowser() *LeadSessionUpdateOne {
	_u.mutation.ClearBrowser()
	return _u
}

// SetDwellSeconds sets the "dwell_seconds" field.
func (_u *LeadSessionUpdateOne) SetDwellSeconds(v int) *LeadSessionUpdateOne {
	_u.mutation.ResetDwellSeconds()
	_u.mutation.SetDwellSeconds(v)
	return _u
}

// SetNillableDwellSeconds sets the "dwell_seconds" field if the given value is not nil.
func (_u *LeadSessionUpdateOne) SetNillableDwellSeconds(v *int) *LeadSessionUpdateOne {
	if v != nil {
		_u.SetDwellSeconds(*v)
	}
	return _u
}

// AddDwellSeconds adds value to the "dwell_seconds" field.
func (_u *LeadSessionUpdateOne) AddDwellSeconds(v int) *LeadSessionUpdateOne {
	_u.mutation.AddDwellSeconds(v)
	return _u
}

// SetConverted sets the "converted" field.
func (_u *LeadSessionUpdateOne) SetConverted(v bool) *LeadSessionUpdateOne {
	_u.mutation.SetConverted(v)
	return _u
}

// SetNillableConverted sets the "converted" field if the given value is not nil.
func (_u *LeadSessionUpdateOne) SetNillableConverted(v *bool) *LeadSessionUpdateOne {
	if v != nil {
		_u.SetConverted(*v)
	}
	return _u
}

// SetLastActiveAt sets the "last_active_at" field.
func (_u *LeadSessionUpdateOne) SetLastActiveAt(v time.Time) *LeadSessionUpdateOne {
	_u.mutation.SetLastActiveAt(v)
	return _u
}

// SetNillableLastActiveAt sets the "last_active_at" field if the given value is not nil.
func (_u *LeadSessionUpdateOne) SetNillableLastActiveAt(v *time.Time) *LeadSessionUpdateOne {
	if v != nil {
		_u.SetLastActiveAt(*v)
	}
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *LeadSessionUpdateOne) SetClinic(v *Clinic) *LeadSessionUpdateOne {
	return _u.SetClinicID(v.ID)
}

// Mutation returns the LeadSessionMutation object of the builder.
func (_u *LeadSessionUpdateOne) Mutation() *LeadSessionMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *LeadSessionUpdateOne) ClearClinic() *LeadSessionUpdateOne {
	_u.mutation.ClearClinic()
	return _u
}

// Where appends a list predicates to the LeadSessionUpdate builder.
func (_u *LeadSessionUpdateOne) Where(ps ...predicate.LeadSession) *LeadSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LeadSessionUpdateOne) Select(field string, fields ...string) *LeadSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LeadSession entity.
func (_u *LeadSessionUpdateOne) Save(ctx context.Context) (*LeadSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LeadSessionUpdateOne) SaveX(ctx context.Context) *LeadSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LeadSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LeadSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LeadSessionUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := leadsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LeadSession.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DwellSeconds(); ok {
		if err := leadsession.DwellSecondsValidator(v); err != nil {
			return &ValidationError{Name: "dwell_seconds", err: fmt.Errorf(`ent: validator failed for field "LeadSession.dwell_seconds": %w`, err)}
		}
	}
	return nil
}

func (_u *LeadSessionUpdateOne) sqlSave(ctx context.Context) (_node *LeadSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(leadsession.Table, leadsession.Columns, sqlgraph.NewFieldSpec(leadsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LeadSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, leadsession.FieldID)
		for _, f := range fields {
			if !leadsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != leadsession.FieldID {
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
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(leadsession.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Actions(); ok {
		_spec.SetField(leadsession.FieldActions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, leadsession.FieldActions, value)
		})
	}
	if _u.mutation.ActionsCleared() {
		_spec.ClearField(leadsession.FieldActions, field.TypeJSON)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(leadsession.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Device(); ok {
		_spec.SetField(leadsession.FieldDevice, field.TypeString, value)
	}
	if _u.mutation.DeviceCleared() {
		_spec.ClearField(leadsession.FieldDevice, field.TypeString)
	}
	if value, ok := _u.mutation.Browser(); ok {
		_spec.SetField(leadsession.FieldBrowser, field.TypeString, value)
	}
	if _u.mutation.BrowserCleared() {
		_spec.ClearField(leadsession.FieldBrowser, field.TypeString)
	}
	if value, ok := _u.mutation.DwellSeconds(); ok {
		_spec.SetField(leadsession.FieldDwellSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDwellSeconds(); ok {
		_spec.AddField(leadsession.FieldDwellSeconds, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Converted(); ok {
		_spec.SetField(leadsession.FieldConverted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastActiveAt(); ok {
		_spec.SetField(leadsession.FieldLastActiveAt, field.TypeTime, value)
	}
	if _u.mutation.ClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &LeadSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{leadsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
