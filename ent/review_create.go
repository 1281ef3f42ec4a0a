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
	"github.com/menshealthfinder/api/ent/review"
)

// ReviewCreate is the builder for creating a Review entity.
type ReviewCreate struct {
	config
	mutation *ReviewMutation
	hooks    []Hook
}

// SetClinicID sets the "clinic_id" field.
func (_c *ReviewCreate) SetClinicID(v int) *ReviewCreate {
	_c.mutation.SetClinicID(v)
	return _c
}

// SetRating sets the "rating" field.
func (_c *ReviewCreate) SetRating(v int) *ReviewCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetAuthorName sets the "author_name" field.
func (_c *ReviewCreate) SetAuthorName(v string) *ReviewCreate {
	_c.mutation.SetAuthorName(v)
	return _c
}

// SetBody sets the "body" field.
func (_c *ReviewCreate) SetBody(v string) *ReviewCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ReviewCreate) SetStatus(v review.Status) *ReviewCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableStatus(v *review.Status) *ReviewCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetHelpfulCount sets the "helpful_count" field.
func (_c *ReviewCreate) SetHelpfulCount(v int) *ReviewCreate {
	_c.mutation.SetHelpfulCount(v)
	return _c
}

// SetNillableHelpfulCount sets the "helpful_count" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableHelpfulCount(v *int) *ReviewCreate {
	if v != nil {
		_c.SetHelpfulCount(*v)
	}
	return _c
}

// SetReportCount sets the "report_count" field.
func (_c *ReviewCreate) SetReportCount(v int) *ReviewCreate {
	_c.mutation.SetReportCount(v)
	return _c
}

// SetNillableReportCount sets the "report_count" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableReportCount(v *int) *ReviewCreate {
	if v != nil {
		_c.SetReportCount(*v)
	}
	return _c
}

// SetModeratedAt sets the "moderated_at" field.
func (_c *ReviewCreate) SetModeratedAt(v time.Time) *ReviewCreate {
	_c.mutation.SetModeratedAt(v)
	return _c
}

// SetNillableModeratedAt sets the "moderated_at" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableModeratedAt(v *time.Time) *ReviewCreate {
	if v != nil {
		_c.SetModeratedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReviewCreate) SetCreatedAt(v time.Time) *ReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReviewCreate) SetNillableCreatedAt(v *time.Time) *ReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_c *ReviewCreate) SetClinic(v *Clinic) *ReviewCreate {
	return _c.SetClinicID(v.ID)
}

// Mutation returns the ReviewMutation object of the builder.
func (_c *ReviewCreate) Mutation() *ReviewMutation {
	return _c.mutation
}

// Save creates the Review in the database.
func (_c *ReviewCreate) Save(ctx context.Context) (*Review, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewCreate) SaveX(ctx context.Context) *Review {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := review.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.HelpfulCount(); !ok {
		v := review.DefaultHelpfulCount
		_c.mutation.SetHelpfulCount(v)
	}
	if _, ok := _c.mutation.ReportCount(); !ok {
		v := review.DefaultReportCount
		_c.mutation.SetReportCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := review.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewCreate) check() error {
	if _, ok := _c.mutation.ClinicID(); !ok {
		return &ValidationError{Name: "clinic_id", err: errors.New(`ent: missing required field "Review.clinic_id"`)}
	}
	if v, ok := _c.mutation.ClinicID(); ok {
		if err := review.ClinicIDValidator(v); err != nil {
			return &ValidationError{Name: "clinic_id", err: fmt.Errorf(`ent: validator failed for field "Review.clinic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`ent: missing required field "Review.rating"`)}
	}
	if v, ok := _c.mutation.Rating(); ok {
		if err := review.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "Review.rating": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AuthorName(); !ok {
		return &ValidationError{Name: "author_name", err: errors.New(`ent: missing required field "Review.author_name"`)}
	}
	if v, ok := _c.mutation.AuthorName(); ok {
		if err := review.AuthorNameValidator(v); err != nil {
			return &ValidationError{Name: "author_name", err: fmt.Errorf(`ent: validator failed for field "Review.author_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "Review.body"`)}
	}
	if v, ok := _c.mutation.Body(); ok {
		if err := review.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Review.body": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Review.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := review.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Review.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HelpfulCount(); !ok {
		return &ValidationError{Name: "helpful_count", err: errors.New(`ent: missing required field "Review.helpful_count"`)}
	}
	if v, ok := _c.mutation.HelpfulCount(); ok {
		if err := review.HelpfulCountValidator(v); err != nil {
			return &ValidationError{Name: "helpful_count", err: fmt.Errorf(`ent: validator failed for field "Review.helpful_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReportCount(); !ok {
		return &ValidationError{Name: "report_count", err: errors.New(`ent: missing required field "Review.report_count"`)}
	}
	if v, ok := _c.mutation.ReportCount(); ok {
		if err := review.ReportCountValidator(v); err != nil {
			return &ValidationError{Name: "report_count", err: fmt.Errorf(`ent: validator failed for field "Review.report_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Review.created_at"`)}
	}
	if len(_c.mutation.ClinicIDs()) == 0 {
		return &ValidationError{Name: "clinic", err: errors.New(`ent: missing required edge "Review.clinic"`)}
	}
	return nil
}

func (_c *ReviewCreate) sqlSave(ctx context.Context) (*Review, error) {
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

func (_c *ReviewCreate) createSpec() (*Review, *sqlgraph.CreateSpec) {
	var (
		_node = &Review{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(review.Table, sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(review.FieldRating, field.TypeInt, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.AuthorName(); ok {
		_spec.SetField(review.FieldAuthorName, field.TypeString, value)
		_node.AuthorName = value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(review.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(review.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.HelpfulCount(); ok {
		_spec.SetField(review.FieldHelpfulCount, field.TypeInt, value)
		_node.HelpfulCount = value
	}
	if value, ok := _c.mutation.ReportCount(); ok {
		_spec.SetField(review.FieldReportCount, field.TypeInt, value)
		_node.ReportCount = value
	}
	if value, ok := _c.mutation.ModeratedAt(); ok {
		_spec.SetField(review.FieldModeratedAt, field.TypeTime, value)
		_node.ModeratedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(review.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ClinicIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   review.ClinicTable,
			Columns: []string{review.ClinicColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(clinic.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ClinicID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ReviewCreateBulk is the builder for creating many Review entities in bulk.
type ReviewCreateBulk struct {
	config
	err      error
	builders []*ReviewCreate
}

// Save creates the Review entities in the database.
func (_c *ReviewCreateBulk) Save(ctx context.Context) ([]*Review, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Review, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewMutation)
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
func (_c *ReviewCreateBulk) SaveX(ctx context.Context) []*Review {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
