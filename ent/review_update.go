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
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/predicate"
	"github.com/menshealthfinder/api/ent/review"
)

// ReviewUpdate is the builder for updating Review entities.
type ReviewUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewMutation
}

// Where appends a list predicates to the ReviewUpdate builder.
func (_u *ReviewUpdate) Where(ps ...predicate.Review) *ReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ReviewUpdate) SetClinicID(v int) *ReviewUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableClinicID(v *int) *ReviewUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewUpdate) SetRating(v int) *ReviewUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableRating(v *int) *ReviewUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ReviewUpdate) AddRating(v int) *ReviewUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetAuthorName sets the "author_name" field.
func (_u *ReviewUpdate) SetAuthorName(v string) *ReviewUpdate {
	_u.mutation.SetAuthorName(v)
	return _u
}

// SetNillableAuthorName sets the "author_name" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableAuthorName(v *string) *ReviewUpdate {
	if v != nil {
		_u.SetAuthorName(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ReviewUpdate) SetBody(v string) *ReviewUpdate {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableBody(v *string) *ReviewUpdate {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewUpdate) SetStatus(v review.Status) *ReviewUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableStatus(v *review.Status) *ReviewUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHelpfulCount sets the "helpful_count" field.
func (_u *ReviewUpdate) SetHelpfulCount(v int) *ReviewUpdate {
	_u.mutation.ResetHelpfulCount()
	_u.mutation.SetHelpfulCount(v)
	return _u
}

// SetNillableHelpfulCount sets the "helpful_count" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableHelpfulCount(v *int) *ReviewUpdate {
	if v != nil {
		_u.SetHelpfulCount(*v)
	}
	return _u
}

// AddHelpfulCount adds value to the "helpful_count" field.
func (_u *ReviewUpdate) AddHelpfulCount(v int) *ReviewUpdate {
	_u.mutation.AddHelpfulCount(v)
	return _u
}

// SetReportCount sets the "report_count" field.
func (_u *ReviewUpdate) SetReportCount(v int) *ReviewUpdate {
	_u.mutation.ResetReportCount()
	_u.mutation.SetReportCount(v)
	return _u
}

// SetNillableReportCount sets the "report_count" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableReportCount(v *int) *ReviewUpdate {
	if v != nil {
		_u.SetReportCount(*v)
	}
	return _u
}

// AddReportCount adds value to the "report_count" field.
func (_u *ReviewUpdate) AddReportCount(v int) *ReviewUpdate {
	_u.mutation.AddReportCount(v)
	return _u
}

// SetModeratedAt sets the "moderated_at" field.
func (_u *ReviewUpdate) SetModeratedAt(v time.Time) *ReviewUpdate {
	_u.mutation.SetModeratedAt(v)
	return _u
}

// SetNillableModeratedAt sets the "moderated_at" field if the given value is not nil.
func (_u *ReviewUpdate) SetNillableModeratedAt(v *time.Time) *ReviewUpdate {
	if v != nil {
		_u.SetModeratedAt(*v)
	}
	return _u
}

// ClearModeratedAt clears the value of the "moderated_at" field.
func (_u *ReviewUpdate) ClearModeratedAt() *ReviewUpdate {
	_u.mutation.ClearModeratedAt()
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *ReviewUpdate) SetClinic(v *Clinic) *ReviewUpdate {
	return _u.SetClinicID(v.ID)
}

// Mutation returns the ReviewMutation object of the builder.
func (_u *ReviewUpdate) Mutation() *ReviewMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *ReviewUpdate) ClearClinic() *ReviewUpdate {
	_u.mutation.ClearClinic()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewUpdate) check() error {
	if v, ok := _u.mutation.ClinicID(); ok {
		if err := review.ClinicIDValidator(v); err != nil {
			return &ValidationError{Name: "clinic_id", err: fmt.Errorf(`ent: validator failed for field "Review.clinic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := review.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "Review.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthorName(); ok {
		if err := review.AuthorNameValidator(v); err != nil {
			return &ValidationError{Name: "author_name", err: fmt.Errorf(`ent: validator failed for field "Review.author_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := review.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Review.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := review.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Review.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HelpfulCount(); ok {
		if err := review.HelpfulCountValidator(v); err != nil {
			return &ValidationError{Name: "helpful_count", err: fmt.Errorf(`ent: validator failed for field "Review.helpful_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReportCount(); ok {
		if err := review.ReportCountValidator(v); err != nil {
			return &ValidationError{Name: "report_count", err: fmt.Errorf(`ent: validator failed for field "Review.report_count": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Review.clinic"`)
	}
	return nil
}

func (_u *ReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(review.Table, review.Columns, sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(review.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(review.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AuthorName(); ok {
		_spec.SetField(review.FieldAuthorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(review.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(review.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HelpfulCount(); ok {
		_spec.SetField(review.FieldHelpfulCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHelpfulCount(); ok {
		_spec.AddField(review.FieldHelpfulCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReportCount(); ok {
		_spec.SetField(review.FieldReportCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReportCount(); ok {
		_spec.AddField(review.FieldReportCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModeratedAt(); ok {
		_spec.SetField(review.FieldModeratedAt, field.TypeTime, value)
	}
	if _u.mutation.ModeratedAtCleared() {
		_spec.ClearField(review.FieldModeratedAt, field.TypeTime)
	}
	if _u.mutation.ClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{review.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewUpdateOne is the builder for updating a single Review entity.
type ReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewMutation
}

// SetClinicID sets the "clinic_id" field.
func (_u *ReviewUpdateOne) SetClinicID(v int) *ReviewUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableClinicID(v *int) *ReviewUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *ReviewUpdateOne) SetRating(v int) *ReviewUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableRating(v *int) *ReviewUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *ReviewUpdateOne) AddRating(v int) *ReviewUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetAuthorName sets the "author_name" field.
func (_u *ReviewUpdateOne) SetAuthorName(v string) *ReviewUpdateOne {
	_u.mutation.SetAuthorName(v)
	return _u
}

// SetNillableAuthorName sets the "author_name" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableAuthorName(v *string) *ReviewUpdateOne {
	if v != nil {
		_u.SetAuthorName(*v)
	}
	return _u
}

// SetBody sets the "body" field.
func (_u *ReviewUpdateOne) SetBody(v string) *ReviewUpdateOne {
	_u.mutation.SetBody(v)
	return _u
}

// SetNillableBody sets the "body" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableBody(v *string) *ReviewUpdateOne {
	if v != nil {
		_u.SetBody(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ReviewUpdateOne) SetStatus(v review.Status) *ReviewUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableStatus(v *review.Status) *ReviewUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetHelpfulCount sets the "helpful_count" field.
func (_u *ReviewUpdateOne) SetHelpfulCount(v int) *ReviewUpdateOne {
	_u.mutation.ResetHelpfulCount()
	_u.mutation.SetHelpfulCount(v)
	return _u
}

// SetNillableHelpfulCount sets the "helpful_count" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableHelpfulCount(v *int) *ReviewUpdateOne {
	if v != nil {
		_u.SetHelpfulCount(*v)
	}
	return _u
}

// AddHelpfulCount adds value to the "helpful_count" field.
func (_u *ReviewUpdateOne) AddHelpfulCount(v int) *ReviewUpdateOne {
	_u.mutation.AddHelpfulCount(v)
	return _u
}

// SetReportCount sets the "report_count" field.
func (_u *ReviewUpdateOne) SetReportCount(v int) *ReviewUpdateOne {
	_u.mutation.ResetReportCount()
	_u.mutation.SetReportCount(v)
	return _u
}

// SetNillableReportCount sets the "report_count" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableReportCount(v *int) *ReviewUpdateOne {
	if v != nil {
		_u.SetReportCount(*v)
	}
	return _u
}

// AddReportCount adds value to the "report_count" field.
func (_u *ReviewUpdateOne) AddReportCount(v int) *ReviewUpdateOne {
	_u.mutation.AddReportCount(v)
	return _u
}

// SetModeratedAt sets the "moderated_at" field.
func (_u *ReviewUpdateOne) SetModeratedAt(v time.Time) *ReviewUpdateOne {
	_u.mutation.SetModeratedAt(v)
	return _u
}

// SetNillableModeratedAt sets the "moderated_at" field if the given value is not nil.
func (_u *ReviewUpdateOne) SetNillableModeratedAt(v *time.Time) *ReviewUpdateOne {
	if v != nil {
		_u.SetModeratedAt(*v)
	}
	return _u
}

// ClearModeratedAt clears the value of the "moderated_at" field.
func (_u *ReviewUpdateOne) ClearModeratedAt() *ReviewUpdateOne {
	_u.mutation.ClearModeratedAt()
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *ReviewUpdateOne) SetClinic(v *Clinic) *ReviewUpdateOne {
	return _u.SetClinicID(v.ID)
}

// Mutation returns the ReviewMutation object of the builder.
func (_u *ReviewUpdateOne) Mutation() *ReviewMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *ReviewUpdateOne) ClearClinic() *ReviewUpdateOne {
	_u.mutation.ClearClinic()
	return _u
}

// Where appends a list predicates to the ReviewUpdate builder.
func (_u *ReviewUpdateOne) Where(ps ...predicate.Review) *ReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewUpdateOne) Select(field string, fields ...string) *ReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Review entity.
func (_u *ReviewUpdateOne) Save(ctx context.Context) (*Review, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewUpdateOne) SaveX(ctx context.Context) *Review {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewUpdateOne) check() error {
	if v, ok := _u.mutation.ClinicID(); ok {
		if err := review.ClinicIDValidator(v); err != nil {
			return &ValidationError{Name: "clinic_id", err: fmt.Errorf(`ent: validator failed for field "Review.clinic_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rating(); ok {
		if err := review.RatingValidator(v); err != nil {
			return &ValidationError{Name: "rating", err: fmt.Errorf(`ent: validator failed for field "Review.rating": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthorName(); ok {
		if err := review.AuthorNameValidator(v); err != nil {
			return &ValidationError{Name: "author_name", err: fmt.Errorf(`ent: validator failed for field "Review.author_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Body(); ok {
		if err := review.BodyValidator(v); err != nil {
			return &ValidationError{Name: "body", err: fmt.Errorf(`ent: validator failed for field "Review.body": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := review.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Review.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HelpfulCount(); ok {
		if err := review.HelpfulCountValidator(v); err != nil {
			return &ValidationError{Name: "helpful_count", err: fmt.Errorf(`ent: validator failed for field "Review.helpful_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReportCount(); ok {
		if err := review.ReportCountValidator(v); err != nil {
			return &ValidationError{Name: "report_count", err: fmt.Errorf(`ent: validator failed for field "Review.report_count": %w`, err)}
		}
	}
	if _u.mutation.ClinicCleared() && len(_u.mutation.ClinicIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Review.clinic"`)
	}
	return nil
}

func (_u *ReviewUpdateOne) sqlSave(ctx context.Context) (_node *Review, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(review.Table, review.Columns, sqlgraph.NewFieldSpec(review.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Review.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, review.FieldID)
		for _, f := range fields {
			if !review.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != review.FieldID {
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
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(review.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(review.FieldRating, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AuthorName(); ok {
		_spec.SetField(review.FieldAuthorName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Body(); ok {
		_spec.SetField(review.FieldBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(review.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.HelpfulCount(); ok {
		_spec.SetField(review.FieldHelpfulCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHelpfulCount(); ok {
		_spec.AddField(review.FieldHelpfulCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReportCount(); ok {
		_spec.SetField(review.FieldReportCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReportCount(); ok {
		_spec.AddField(review.FieldReportCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModeratedAt(); ok {
		_spec.SetField(review.FieldModeratedAt, field.TypeTime, value)
	}
	if _u.mutation.ModeratedAtCleared() {
		_spec.ClearField(review.FieldModeratedAt, field.TypeTime)
	}
	if _u.mutation.ClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Review{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{review.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
