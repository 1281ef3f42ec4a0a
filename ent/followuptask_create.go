// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/followuptask"
)

// FollowUpTaskCreate is the builder for creating a FollowUpTask entity.
type FollowUpTaskCreate struct {
	config
	mutation *FollowUpTaskMutation
	hooks    []Hook
}

// SetContactID sets the "contact_id" field.
func (_c *FollowUpTaskCreate) SetContactID(v int) *FollowUpTaskCreate {
	_c.mutation.SetContactID(v)
	return _c
}

// SetRuleName sets the "rule_name" field.
func (_c *FollowUpTaskCreate) SetRuleName(v string) *FollowUpTaskCreate {
	_c.mutation.SetRuleName(v)
	return _c
}

// SetType sets the "type" field.
func (_c *FollowUpTaskCreate) SetType(v followuptask.Type) *FollowUpTaskCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *FollowUpTaskCreate) SetTitle(v string) *FollowUpTaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetTemplate sets the "template" field.
func (_c *FollowUpTaskCreate) SetTemplate(v string) *FollowUpTaskCreate {
	_c.mutation.SetTemplate(v)
	return _c
}

// SetNillableTemplate sets the "template" field if the given value is not nil.
func (_c *FollowUpTaskCreate) SetNillableTemplate(v *string) *FollowUpTaskCreate {
	if v != nil {
		_c.SetTemplate(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *FollowUpTaskCreate) SetPriority(v followuptask.Priority) *FollowUpTaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *FollowUpTaskCreate) SetNillablePriority(v *followuptask.Priority) *FollowUpTaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FollowUpTaskCreate) SetStatus(v followuptask.Status) *FollowUpTaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FollowUpTaskCreate) SetNillableStatus(v *followuptask.Status) *FollowUpTaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *FollowUpTaskCreate) SetDueAt(v time.Time) *FollowUpTaskCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetAssignedTo sets the "assigned_to" field.
func (_c *FollowUpTaskCreate) SetAssignedTo(v int) *FollowUpTaskCreate {
	_c.mutation.SetAssignedTo(v)
	return _c
}

// SetNillableAssignedTo sets the "assigned_to" field if the given value is not nil.
func (_c *FollowUpTaskCreate) SetNillableAssignedTo(v *int) *FollowUpTaskCreate {
	if v != nil {
		_c.SetAssignedTo(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *FollowUpTaskCreate) SetCompletedAt(v time.Time) *FollowUpTaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *FollowUpTaskCreate) SetNillableCompletedAt(v *time.Time) *FollowUpTaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FollowUpTaskCreate) SetCreatedAt(v time.Time) *FollowUpTaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FollowUpTaskCreate) SetNillableCreatedAt(v *time.Time) *FollowUpTaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetContact sets the "contact" edge to the Contact entity.
func (_c *FollowUpTaskCreate) SetContact(v *Contact) *FollowUpTaskCreate {
	return _c.SetContactID(v.ID)
}

// Mutation returns the FollowUpTaskMutation object of the builder.
func (_c *FollowUpTaskCreate) Mutation() *FollowUpTaskMutation {
	return _c.mutation
}

// Save creates the FollowUpTask in the database.
func (_c *FollowUpTaskCreate) Save(ctx context.Context) (*FollowUpTask, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FollowUpTaskCreate) SaveX(ctx context.Context) *FollowUpTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FollowUpTaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FollowUpTaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FollowUpTaskCreate) defaults() {
	if _, ok := _c.mutation.Priority(); !ok {
		v := followuptask.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := followuptask.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := followuptask.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FollowUpTaskCreate) check() error {
	if _, ok := _c.mutation.ContactID(); !ok {
		return &ValidationError{Name: "contact_id", err: errors.New(`ent: missing required field "FollowUpTask.contact_id"`)}
	}
	if v, ok := _c.mutation.ContactID(); ok {
		if err := followuptask.ContactIDValidator(v); err != nil {
			return &ValidationError{Name: "contact_id", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.contact_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RuleName(); !ok {
		return &ValidationError{Name: "rule_name", err: errors.New(`ent: missing required field "FollowUpTask.rule_name"`)}
	}
	if v, ok := _c.mutation.RuleName(); ok {
		if err := followuptask.RuleNameValidator(v); err != nil {
			return &ValidationError{Name: "rule_name", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.rule_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`ent: missing required field "FollowUpTask.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := followuptask.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "FollowUpTask.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := followuptask.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "FollowUpTask.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := followuptask.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "FollowUpTask.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := followuptask.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "FollowUpTask.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		return &ValidationError{Name: "due_at", err: errors.New(`ent: missing required field "FollowUpTask.due_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FollowUpTask.created_at"`)}
	}
	if len(_c.mutation.ContactIDs()) == 0 {
		return &ValidationError{Name: "contact", err: errors.New(`ent: missing required edge "FollowUpTask.contact"`)}
	}
	return nil
}

func (_c *FollowUpTaskCreate) sqlSave(ctx context.Context) (*FollowUpTask, error) {
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

func (_c *FollowUpTaskCreate) createSpec() (*FollowUpTask, *sqlgraph.CreateSpec) {
	var (
		_node = &FollowUpTask{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(followuptask.Table, sqlgraph.NewFieldSpec(followuptask.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RuleName(); ok {
		_spec.SetField(followuptask.FieldRuleName, field.TypeString, value)
		_node.RuleName = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(followuptask.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(followuptask.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Template(); ok {
		_spec.SetField(followuptask.FieldTemplate, field.TypeString, value)
		_node.Template = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(followuptask.FieldPriority, field.TypeEnum, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(followuptask.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(followuptask.FieldDueAt, field.TypeTime, value)
		_node.DueAt = value
	}
	if value, ok := _c.mutation.AssignedTo(); ok {
		_spec.SetField(followuptask.FieldAssignedTo, field.TypeInt, value)
		_node.AssignedTo = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(followuptask.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(followuptask.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ContactIDs(); len(nodes) > 0 {
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
		_node.ContactID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// FollowUpTaskCreateBulk is the builder for creating many FollowUpTask entities in bulk.
type FollowUpTaskCreateBulk struct {
	config
	err      error
	builders []*FollowUpTaskCreate
}

// Save creates the FollowUpTask entities in the database.
func (_c *FollowUpTaskCreateBulk) Save(ctx context.Context) ([]*FollowUpTask, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FollowUpTask, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FollowUpTaskMutation)
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
func (_c *FollowUpTaskCreateBulk) SaveX(ctx context.Context) []*FollowUpTask {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FollowUpTaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FollowUpTaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
