// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/menshealthfinder/api/ent/followuptask"
	"github.com/menshealthfinder/api/ent/predicate"
)

// FollowUpTaskDelete is the builder for deleting a FollowUpTask entity.
type FollowUpTaskDelete struct {
	config
	hooks    []Hook
	mutation *FollowUpTaskMutation
}

// Where appends a list predicates to the FollowUpTaskDelete builder.
func (_d *FollowUpTaskDelete) Where(ps ...predicate.FollowUpTask) *FollowUpTaskDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FollowUpTaskDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FollowUpTaskDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FollowUpTaskDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(followuptask.Table, sqlgraph.NewFieldSpec(followuptask.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FollowUpTaskDeleteOne is the builder for deleting a single FollowUpTask entity.
type FollowUpTaskDeleteOne struct {
	_d *FollowUpTaskDelete
}

// Where appends a list predicates to the FollowUpTaskDelete builder.
func (_d *FollowUpTaskDeleteOne) Where(ps ...predicate.FollowUpTask) *FollowUpTaskDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FollowUpTaskDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{followuptask.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FollowUpTaskDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
