// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/followuptask"
	"github.com/menshealthfinder/api/ent/predicate"
)

// FollowUpTaskUpdate is the builder for updating FollowUpTask entities.
type FollowUpTaskUpdate struct {
	config
	hooks    []Hook
	mutation *FollowUpTaskMutation
}

// Where appends a list predicates to the FollowUpTaskUpdate builder.
func (_u *FollowUpTaskUpdate) Where(ps ...predicate.FollowUpTask) *FollowUpTaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContactID sets the "contact_id" field.
func (_u *FollowUpTaskUpdate) SetContactID(v int) *FollowUpTaskUpdate {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *FollowUpTaskUpdate) SetNillableContactID(v *int) *FollowUpTaskUpdate {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// SetRuleName sets the "rule_name" field.
func (_u *FollowUpTaskUpdate) SetRuleName(v string) *FollowUpTaskUpdate {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *FollowUpTaskUpdate) SetNillableRuleName(v *string) *FollowUpTaskUpdate {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *FollowUpTaskUpdate) SetType(v followuptask.Type) *FollowUpTaskUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *FollowUpTaskUpdate) SetNillableType(v *followuptask.Type) *FollowUpTaskUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *FollowUpTaskUpdate) SetTitle(v string) *FollowUpTaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FollowUpTaskUpdate) SetNillableTitle(v *string) *FollowUpTaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTemplate sets the "template" field.
func (_u *FollowUpTaskUpdate) SetTemplate(v string) *FollowUpTaskUpdate {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *FollowUpTaskUpdate) SetNillableTemplate(v *string) *FollowUpTaskUpdate {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// ClearTemplate clears the value of the "template" field.
func (_u *FollowUpTaskUpdate) ClearTemplate() *FollowUpTaskUpdate {
	_u.mutation.ClearTemplate()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *FollowUpTaskUpdate) SetPriority(v followuptask.Priority) *FollowUpTaskUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *FollowUpTaskUpdate) SetNillablePriority(v *followuptask.Priority) *FollowUpTaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FollowUpTaskUpdate) SetStatus(v followuptask.Status) *FollowUpTaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FollowUpTaskUpdate) SetNillableStatus(v *followuptask.Status) *FollowUpTaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *FollowUpTaskUpdate) SetDueAt(v time.Time) *FollowUpTaskUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *FollowUpTaskUpdate) SetNillableDueAt(v *time.Time) *FollowUpTaskUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *FollowUpTaskUpdate) SetAssignedTo(v int) *FollowUpTaskUpdate {
	_u.mutation.ResetAssignedTo()
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *FollowUpTaskUpdate) SetNillableAssignedTo(v *int) *FollowUpTaskUpdate {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// AddAssignedTo adds value to the "assigned_to" field.
func (_u *FollowUpTaskUpdate) AddAssignedTo(v int) *FollowUpTaskUpdate {
	_u.mutation.AddAssignedTo(v)
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *FollowUpTaskUpdate) ClearAssignedTo() *FollowUpTaskUpdate {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *FollowUpTaskUpdate) SetCompletedAt(v time.Time) *FollowUpTaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *FollowUpTaskUpdate) SetNillableCompletedAt(v *time.Time) *FollowUpTaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *FollowUpTaskUpdate) ClearCompletedAt() *FollowUpTaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *FollowUpTaskUpdate) SetContact(v *Contact) *FollowUpTaskUpdate {
	return _u.SetContactID(v.ID)
}

// Mutation returns the FollowUpTaskMutation object of the builder.
func (_u *FollowUpTaskUpdate) Mutation() *FollowUpTaskMutation {
	return _u.mutation
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *FollowUpTaskUpdate) ClearContact() *FollowUpTaskUpdate {
	_u.mutation.ClearContact()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FollowUpTaskUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FollowUpTaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FollowUpTaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FollowUpTaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FollowUpTaskUpdate) check() error {
	if v, ok := _u.mutation.ContactID(); ok {
		if err := followuptask.ContactIDValidator(v); err != nil {
			return &ValidationError{Name: "contact_id", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.contact_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RuleName(); ok {
		if err := followuptask.RuleNameValidator(v); err != nil {
			return &ValidationError{Name: "rule_name", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.rule_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := followuptask.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := followuptask.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := followuptask.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := followuptask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.status": %w`, err)}
		}
	}
	if _u.mutation.ContactCleared() && len(_u.mutation.ContactIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FollowUpTask.contact"`)
	}
	return nil
}

func (_u *FollowUpTaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(followuptask.Table, followuptask.Columns, sqlgraph.NewFieldSpec(followuptask.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(followuptask.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(followuptask.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(followuptask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(followuptask.FieldTemplate, field.TypeString, value)
	}
	if _u.mutation.TemplateCleared() {
		_spec.ClearField(followuptask.FieldTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(followuptask.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(followuptask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(followuptask.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(followuptask.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedTo(); ok {
		_spec.AddField(followuptask.FieldAssignedTo, field.TypeInt, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(followuptask.FieldAssignedTo, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(followuptask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(followuptask.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ContactCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   followuptask.ContactTable,
			Columns: []string{followuptask.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   followuptask.ContactTable,
			Columns: []string{followuptask.ContactColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{followuptask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FollowUpTaskUpdateOne is the builder for updating a single FollowUpTask entity.
type FollowUpTaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FollowUpTaskMutation
}

// SetContactID sets the "contact_id" field.
func (_u *FollowUpTaskUpdateOne) SetContactID(v int) *FollowUpTaskUpdateOne {
	_u.mutation.SetContactID(v)
	return _u
}

// SetNillableContactID sets the "contact_id" field if the given value is not nil.
func (_u *FollowUpTaskUpdateOne) SetNillableContactID(v *int) *FollowUpTaskUpdateOne {
	if v != nil {
		_u.SetContactID(*v)
	}
	return _u
}

// SetRuleName sets the "rule_name" field.
func (_u *FollowUpTaskUpdateOne) SetRuleName(v string) *FollowUpTaskUpdateOne {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *FollowUpTaskUpdateOne) SetNillableRuleName(v *string) *FollowUpTaskUpdateOne {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *FollowUpTaskUpdateOne) SetType(v followuptask.Type) *FollowUpTaskUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *FollowUpTaskUpdateOne) SetNillableType(v *followuptask.Type) *FollowUpTaskUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *FollowUpTaskUpdateOne) SetTitle(v string) *FollowUpTaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *FollowUpTaskUpdateOne) SetNillableTitle(v *string) *FollowUpTaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetTemplate sets the "template" field.
func (_u *FollowUpTaskUpdateOne) SetTemplate(v string) *FollowUpTaskUpdateOne {
	_u.mutation.SetTemplate(v)
	return _u
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_u *FollowUpTaskUpdateOne) SetNillableTemplate(v *string) *FollowUpTaskUpdateOne {
	if v != nil {
		_u.SetTemplate(*v)
	}
	return _u
}

// ClearTemplate clears the value of the "template" field.
func (_u *FollowUpTaskUpdateOne) ClearTemplate() *FollowUpTaskUpdateOne {
	_u.mutation.ClearTemplate()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *FollowUpTaskUpdateOne) SetPriority(v followuptask.Priority) *FollowUpTaskUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *FollowUpTaskUpdateOne) SetNillablePriority(v *followuptask.Priority) *FollowUpTaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FollowUpTaskUpdateOne) SetStatus(v followuptask.Status) *FollowUpTaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FollowUpTaskUpdateOne) SetNillableStatus(v *followuptask.Status) *FollowUpTaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *FollowUpTaskUpdateOne) SetDueAt(v time.Time) *FollowUpTaskUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *FollowUpTaskUpdateOne) SetNillableDueAt(v *time.Time) *FollowUpTaskUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetAssignedTo sets the "assigned_to" field.
func (_u *FollowUpTaskUpdateOne) SetAssignedTo(v int) *FollowUpTaskUpdateOne {
	_u.mutation.ResetAssignedTo()
	_u.mutation.SetAssignedTo(v)
	return _u
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_u *FollowUpTaskUpdateOne) SetNillableAssignedTo(v *int) *FollowUpTaskUpdateOne {
	if v != nil {
		_u.SetAssignedTo(*v)
	}
	return _u
}

// AddAssignedTo adds value to the "assigned_to" field.
func (_u *FollowUpTaskUpdateOne) AddAssignedTo(v int) *FollowUpTaskUpdateOne {
	_u.mutation.AddAssignedTo(v)
	return _u
}

// ClearAssignedTo clears the value of the "assigned_to" field.
func (_u *FollowUpTaskUpdateOne) ClearAssignedTo() *FollowUpTaskUpdateOne {
	_u.mutation.ClearAssignedTo()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *FollowUpTaskUpdateOne) SetCompletedAt(v time.Time) *FollowUpTaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *FollowUpTaskUpdateOne) SetNillableCompletedAt(v *time.Time) *FollowUpTaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *FollowUpTaskUpdateOne) ClearCompletedAt() *FollowUpTaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetContact sets the "contact" edge to the Contact entity.
func (_u *FollowUpTaskUpdateOne) SetContact(v *Contact) *FollowUpTaskUpdateOne {
	return _u.SetContactID(v.ID)
}

// Mutation returns the FollowUpTaskMutation object of the builder.
func (_u *FollowUpTaskUpdateOne) Mutation() *FollowUpTaskMutation {
	return _u.mutation
}

// ClearContact clears the "contact" edge to the Contact entity.
func (_u *FollowUpTaskUpdateOne) ClearContact() *FollowUpTaskUpdateOne {
	_u.mutation.ClearContact()
	return _u
}

// Where appends a list predicates to the FollowUpTaskUpdate builder.
func (_u *FollowUpTaskUpdateOne) Where(ps ...predicate.FollowUpTask) *FollowUpTaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FollowUpTaskUpdateOne) Select(field string, fields ...string) *FollowUpTaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FollowUpTask entity.
func (_u *FollowUpTaskUpdateOne) Save(ctx context.Context) (*FollowUpTask, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FollowUpTaskUpdateOne) SaveX(ctx context.Context) *FollowUpTask {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FollowUpTaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FollowUpTaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FollowUpTaskUpdateOne) check() error {
	if v, ok := _u.mutation.ContactID(); ok {
		if err := followuptask.ContactIDValidator(v); err != nil {
			return &ValidationError{Name: "contact_id", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.contact_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RuleName(); ok {
		if err := followuptask.RuleNameValidator(v); err != nil {
			return &ValidationError{Name: "rule_name", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.rule_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GetType(); ok {
		if err := followuptask.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := followuptask.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := followuptask.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := followuptask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.status": %w`, err)}
		}
	}
	if _u.mutation.ContactCleared() && len(_u.mutation.ContactIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FollowUpTask.contact"`)
	}
	return nil
}

func (_u *FollowUpTaskUpdateOne) sqlSave(ctx context.Context) (_node *FollowUpTask, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(followuptask.Table, followuptask.Columns, sqlgraph.NewFieldSpec(followuptask.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FollowUpTask.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, followuptask.FieldID)
		for _, f := range fields {
			if !followuptask.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != followuptask.FieldID {
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
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(followuptask.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(followuptask.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(followuptask.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Template(); ok {
		_spec.SetField(followuptask.FieldTemplate, field.TypeString, value)
	}
	if _u.mutation.TemplateCleared() {
		_spec.ClearField(followuptask.FieldTemplate, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(followuptask.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(followuptask.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(followuptask.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.AssignedTo(); ok {
		_spec.SetField(followuptask.FieldAssignedTo, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAssignedTo(); ok {
		_spec.AddField(followuptask.FieldAssignedTo, field.TypeInt, value)
	}
	if _u.mutation.AssignedToCleared() {
		_spec.ClearField(followuptask.FieldAssignedTo, field.TypeInt)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(followuptask.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(followuptask.FieldCompletedAt, field.TypeTime)
	}
	if _u.mutation.ContactCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   followuptask.ContactTable,
			Columns: []string{followuptask.ContactColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ContactIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   followuptask.ContactTable,
			Columns: []string{followuptask.ContactColumn},
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
	_node = &FollowUpTask{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{followuptask.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
