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
	"github.com/menshealthfinder/api/ent/activity"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/followuptask"
	"github.com/menshealthfinder/api/ent/predicate"
)

// ContactUpdate is the builder for updating Contact entities.
type ContactUpdate struct {
	config
	hooks    []Hook
	mutation *ContactMutation
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdate) Where(ps ...predicate.Contact) *ContactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClinicID sets the "clinic_id" field.
func (_u *ContactUpdate) SetClinicID(v int) *ContactUpdate {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableClinicID(v *int) *ContactUpdate {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// ClearClinicID clears the value of the "clinic_id" field.
func (_u *ContactUpdate) ClearClinicID() *ContactUpdate {
	_u.mutation.ClearClinicID()
	return _u
}

// SetName sets the "name" field.
func (_u *ContactUpdate) SetName(v string) *ContactUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableName(v *string) *ContactUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ContactUpdate) SetEmail(v string) *ContactUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEmail(v *string) *ContactUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ContactUpdate) ClearEmail() *ContactUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ContactUpdate) SetPhone(v string) *ContactUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ContactUpdate) SetNillablePhone(v *string) *ContactUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ContactUpdate) ClearPhone() *ContactUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetCompany sets the "company" field.
func (_u *ContactUpdate) SetCompany(v string) *ContactUpdate {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableCompany(v *string) *ContactUpdate {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ContactUpdate) ClearCompany() *ContactUpdate {
	_u.mutation.ClearCompany()
	return _u
}

// SetStage sets the "stage" field.
func (_u *ContactUpdate) SetStage(v contact.Stage) *ContactUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableStage(v *contact.Stage) *ContactUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ContactUpdate) SetPriority(v contact.Priority) *ContactUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ContactUpdate) SetNillablePriority(v *contact.Priority) *ContactUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContactUpdate) SetStatus(v contact.Status) *ContactUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableStatus(v *contact.Status) *ContactUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLeadScore sets the "lead_score" field.
func (_u *ContactUpdate) SetLeadScore(v int) *ContactUpdate {
	_u.mutation.ResetLeadScore()
	_u.mutation.SetLeadScore(v)
	return _u
}

// SetNillableLeadScore sets the "lead_score" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableLeadScore(v *int) *ContactUpdate {
	if v != nil {
		_u.SetLeadScore(*v)
	}
	return _u
}

// AddLeadScore adds value to the "lead_score" field.
func (_u *ContactUpdate) AddLeadScore(v int) *ContactUpdate {
	_u.mutation.AddLeadScore(v)
	return _u
}

// SetTotalInteractions sets the "total_interactions" field.
func (_u *ContactUpdate) SetTotalInteractions(v int) *ContactUpdate {
	_u.mutation.ResetTotalInteractions()
	_u.mutation.SetTotalInteractions(v)
	return _u
}

// SetNillableTotalInteractions sets the "total_interactions" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableTotalInteractions(v *int) *ContactUpdate {
	if v != nil {
		_u.SetTotalInteractions(*v)
	}
	return _u
}

// AddTotalInteractions adds value to the "total_interactions" field.
func (_u *ContactUpdate) AddTotalInteractions(v int) *ContactUpdate {
	_u.mutation.AddTotalInteractions(v)
	return _u
}

// SetEmailOpens sets the "email_opens" field.
func (_u *ContactUpdate) SetEmailOpens(v int) *ContactUpdate {
	_u.mutation.ResetEmailOpens()
	_u.mutation.SetEmailOpens(v)
	return _u
}

// SetNillableEmailOpens sets the "email_opens" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEmailOpens(v *int) *ContactUpdate {
	if v != nil {
		_u.SetEmailOpens(*v)
	}
	return _u
}

// AddEmailOpens adds value to the "email_opens" field.
func (_u *ContactUpdate) AddEmailOpens(v int) *ContactUpdate {
	_u.mutation.AddEmailOpens(v)
	return _u
}

// SetEmailClicks sets the "email_clicks" field.
func (_u *ContactUpdate) SetEmailClicks(v int) *ContactUpdate {
	_u.mutation.ResetEmailClicks()
	_u.mutation.SetEmailClicks(v)
	return _u
}

// SetNillableEmailClicks sets the "email_clicks" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableEmailClicks(v *int) *ContactUpdate {
	if v != nil {
		_u.SetEmailClicks(*v)
	}
	return _u
}

// AddEmailClicks adds value to the "email_clicks" field.
func (_u *ContactUpdate) AddEmailClicks(v int) *ContactUpdate {
	_u.mutation.AddEmailClicks(v)
	return _u
}

// SetWebsiteVisits sets the "website_visits" field.
func (_u *ContactUpdate) SetWebsiteVisits(v int) *ContactUpdate {
	_u.mutation.ResetWebsiteVisits()
	_u.mutation.SetWebsiteVisits(v)
	return _u
}

// SetNillableWebsiteVisits sets the "website_visits" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableWebsiteVisits(v *int) *ContactUpdate {
	if v != nil {
		_u.SetWebsiteVisits(*v)
	}
	return _u
}

// AddWebsiteVisits adds value to the "website_visits" field.
func (_u *ContactUpdate) AddWebsiteVisits(v int) *ContactUpdate {
	_u.mutation.AddWebsiteVisits(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *ContactUpdate) SetSource(v string) *ContactUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableSource(v *string) *ContactUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *ContactUpdate) ClearSource() *ContactUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ContactUpdate) SetTags(v []string) *ContactUpdate {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ContactUpdate) AppendTags(v []string) *ContactUpdate {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ContactUpdate) ClearTags() *ContactUpdate {
	_u.mutation.ClearTags()
	return _u
}

// SetLastContactedAt sets the "last_contacted_at" field.
func (_u *ContactUpdate) SetLastContactedAt(v time.Time) *ContactUpdate {
	_u.mutation.SetLastContactedAt(v)
	return _u
}

// SetNillableLastContactedAt sets the "last_contacted_at" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableLastContactedAt(v *time.Time) *ContactUpdate {
	if v != nil {
		_u.SetLastContactedAt(*v)
	}
	return _u
}

// ClearLastContactedAt clears the value of the "last_contacted_at" field.
func (_u *ContactUpdate) ClearLastContactedAt() *ContactUpdate {
	_u.mutation.ClearLastContactedAt()
	return _u
}

// SetStageChangedAt sets the "stage_changed_at" field.
func (_u *ContactUpdate) SetStageChangedAt(v time.Time) *ContactUpdate {
	_u.mutation.SetStageChangedAt(v)
	return _u
}

// SetNillableStageChangedAt sets the "stage_changed_at" field if the given value is not nil.
func (_u *ContactUpdate) SetNillableStageChangedAt(v *time.Time) *ContactUpdate {
	if v != nil {
		_u.SetStageChangedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactUpdate) SetUpdatedAt(v time.Time) *ContactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *ContactUpdate) SetClinic(v *Clinic) *ContactUpdate {
	return _u.SetClinicID(v.ID)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *ContactUpdate) AddActivityIDs(ids ...int) *ContactUpdate {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *ContactUpdate) AddActivities(v ...*Activity) *ContactUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the FollowUpTask entity by IDs.
func (_u *ContactUpdate) AddTaskIDs(ids ...int) *ContactUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the FollowUpTask entity.
func (_u *ContactUpdate) AddTasks(v ...*FollowUpTask) *ContactUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdate) Mutation() *ContactMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *ContactUpdate) ClearClinic() *ContactUpdate {
	_u.mutation.ClearClinic()
	return _u
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *ContactUpdate) ClearActivities() *ContactUpdate {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *ContactUpdate) RemoveActivityIDs(ids ...int) *ContactUpdate {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *ContactUpdate) RemoveActivities(v ...*Activity) *ContactUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the FollowUpTask entity.
func (_u *ContactUpdate) ClearTasks() *ContactUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to FollowUpTask entities by IDs.
func (_u *ContactUpdate) RemoveTaskIDs(ids ...int) *ContactUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to FollowUpTask entities.
func (_u *ContactUpdate) RemoveTasks(v ...*FollowUpTask) *ContactUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := contact.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Contact.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := contact.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Contact.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := contact.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Contact.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contact.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LeadScore(); ok {
		if err := contact.LeadScoreValidator(v); err != nil {
			return &ValidationError{Name: "lead_score", err: fmt.Errorf(`ent: validator failed for field "Contact.lead_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalInteractions(); ok {
		if err := contact.TotalInteractionsValidator(v); err != nil {
			return &ValidationError{Name: "total_interactions", err: fmt.Errorf(`ent: validator failed for field "Contact.total_interactions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmailOpens(); ok {
		if err := contact.EmailOpensValidator(v); err != nil {
			return &ValidationError{Name: "email_opens", err: fmt.Errorf(`ent: validator failed for field "Contact.email_opens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmailClicks(); ok {
		if err := contact.EmailClicksValidator(v); err != nil {
			return &ValidationError{Name: "email_clicks", err: fmt.Errorf(`ent: validator failed for field "Contact.email_clicks": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WebsiteVisits(); ok {
		if err := contact.WebsiteVisitsValidator(v); err != nil {
			return &ValidationError{Name: "website_visits", err: fmt.Errorf(`ent: validator failed for field "Contact.website_visits": %w`, err)}
		}
	}
	return nil
}

func (_u *ContactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(contact.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(contact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(contact.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(contact.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(contact.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(contact.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(contact.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(contact.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LeadScore(); ok {
		_spec.SetField(contact.FieldLeadScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadScore(); ok {
		_spec.AddField(contact.FieldLeadScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalInteractions(); ok {
		_spec.SetField(contact.FieldTotalInteractions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalInteractions(); ok {
		_spec.AddField(contact.FieldTotalInteractions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmailOpens(); ok {
		_spec.SetField(contact.FieldEmailOpens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmailOpens(); ok {
		_spec.AddField(contact.FieldEmailOpens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmailClicks(); ok {
		_spec.SetField(contact.FieldEmailClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmailClicks(); ok {
		_spec.AddField(contact.FieldEmailClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WebsiteVisits(); ok {
		_spec.SetField(contact.FieldWebsiteVisits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWebsiteVisits(); ok {
		_spec.AddField(contact.FieldWebsiteVisits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(contact.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(contact.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(contact.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contact.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(contact.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastContactedAt(); ok {
		_spec.SetField(contact.FieldLastContactedAt, field.TypeTime, value)
	}
	if _u.mutation.LastContactedAtCleared() {
		_spec.ClearField(contact.FieldLastContactedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StageChangedAt(); ok {
		_spec.SetField(contact.FieldStageChangedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContactUpdateOne is the builder for updating a single Contact entity.
type ContactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContactMutation
}

// SetClinicID sets the "clinic_id" field.
func (_u *ContactUpdateOne) SetClinicID(v int) *ContactUpdateOne {
	_u.mutation.SetClinicID(v)
	return _u
}

// SetNillableClinicID sets the "clinic_id" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableClinicID(v *int) *ContactUpdateOne {
	if v != nil {
		_u.SetClinicID(*v)
	}
	return _u
}

// ClearClinicID clears the value of the "clinic_id" field.
func (_u *ContactUpdateOne) ClearClinicID() *ContactUpdateOne {
	_u.mutation.ClearClinicID()
	return _u
}

// SetName sets the "name" field.
func (_u *ContactUpdateOne) SetName(v string) *ContactUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableName(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *ContactUpdateOne) SetEmail(v string) *ContactUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEmail(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *ContactUpdateOne) ClearEmail() *ContactUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *ContactUpdateOne) SetPhone(v string) *ContactUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillablePhone(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *ContactUpdateOne) ClearPhone() *ContactUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetCompany sets the "company" field.
func (_u *ContactUpdateOne) SetCompany(v string) *ContactUpdateOne {
	_u.mutation.SetCompany(v)
	return _u
}

// SetNillableCompany sets the "company" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableCompany(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetCompany(*v)
	}
	return _u
}

// ClearCompany clears the value of the "company" field.
func (_u *ContactUpdateOne) ClearCompany() *ContactUpdateOne {
	_u.mutation.ClearCompany()
	return _u
}

// SetStage sets the "stage" field.
func (_u *ContactUpdateOne) SetStage(v contact.Stage) *ContactUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableStage(v *contact.Stage) *ContactUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *ContactUpdateOne) SetPriority(v contact.Priority) *ContactUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillablePriority(v *contact.Priority) *ContactUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ContactUpdateOne) SetStatus(v contact.Status) *ContactUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableStatus(v *contact.Status) *ContactUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLeadScore sets the "lead_score" field.
func (_u *ContactUpdateOne) SetLeadScore(v int) *ContactUpdateOne {
	_u.mutation.ResetLeadScore()
	_u.mutation.SetLeadScore(v)
	return _u
}

// SetNillableLeadScore sets the "lead_score" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableLeadScore(v *int) *ContactUpdateOne {
	if v != nil {
		_u.SetLeadScore(*v)
	}
	return _u
}

// AddLeadScore adds value to the "lead_score" field.
func (_u *ContactUpdateOne) AddLeadScore(v int) *ContactUpdateOne {
	_u.mutation.AddLeadScore(v)
	return _u
}

// SetTotalInteractions sets the "total_interactions" field.
func (_u *ContactUpdateOne) SetTotalInteractions(v int) *ContactUpdateOne {
	_u.mutation.ResetTotalInteractions()
	_u.mutation.SetTotalInteractions(v)
	return _u
}

// SetNillableTotalInteractions sets the "total_interactions" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableTotalInteractions(v *int) *ContactUpdateOne {
	if v != nil {
		_u.SetTotalInteractions(*v)
	}
	return _u
}

// AddTotalInteractions adds value to the "total_interactions" field.
func (_u *ContactUpdateOne) AddTotalInteractions(v int) *ContactUpdateOne {
	_u.mutation.AddTotalInteractions(v)
	return _u
}

// SetEmailOpens sets the "email_opens" field.
func (_u *ContactUpdateOne) SetEmailOpens(v int) *ContactUpdateOne {
	_u.mutation.ResetEmailOpens()
	_u.mutation.SetEmailOpens(v)
	return _u
}

// SetNillableEmailOpens sets the "email_opens" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEmailOpens(v *int) *ContactUpdateOne {
	if v != nil {
		_u.SetEmailOpens(*v)
	}
	return _u
}

// AddEmailOpens adds value to the "email_opens" field.
func (_u *ContactUpdateOne) AddEmailOpens(v int) *ContactUpdateOne {
	_u.mutation.AddEmailOpens(v)
	return _u
}

// SetEmailClicks sets the "email_clicks" field.
func (_u *ContactUpdateOne) SetEmailClicks(v int) *ContactUpdateOne {
	_u.mutation.ResetEmailClicks()
	_u.mutation.SetEmailClicks(v)
	return _u
}

// SetNillableEmailClicks sets the "email_clicks" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableEmailClicks(v *int) *ContactUpdateOne {
	if v != nil {
		_u.SetEmailClicks(*v)
	}
	return _u
}

// AddEmailClicks adds value to the "email_clicks" field.
func (_u *ContactUpdateOne) AddEmailClicks(v int) *ContactUpdateOne {
	_u.mutation.AddEmailClicks(v)
	return _u
}

// SetWebsiteVisits sets the "website_visits" field.
func (_u *ContactUpdateOne) SetWebsiteVisits(v int) *ContactUpdateOne {
	_u.mutation.ResetWebsiteVisits()
	_u.mutation.SetWebsiteVisits(v)
	return _u
}

// SetNillableWebsiteVisits sets the "website_visits" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableWebsiteVisits(v *int) *ContactUpdateOne {
	if v != nil {
		_u.SetWebsiteVisits(*v)
	}
	return _u
}

// AddWebsiteVisits adds value to the "website_visits" field.
func (_u *ContactUpdateOne) AddWebsiteVisits(v int) *ContactUpdateOne {
	_u.mutation.AddWebsiteVisits(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *ContactUpdateOne) SetSource(v string) *ContactUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableSource(v *string) *ContactUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *ContactUpdateOne) ClearSource() *ContactUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetTags sets the "tags" field.
func (_u *ContactUpdateOne) SetTags(v []string) *ContactUpdateOne {
	_u.mutation.SetTags(v)
	return _u
}

// AppendTags appends value to the "tags" field.
func (_u *ContactUpdateOne) AppendTags(v []string) *ContactUpdateOne {
	_u.mutation.AppendTags(v)
	return _u
}

// ClearTags clears the value of the "tags" field.
func (_u *ContactUpdateOne) ClearTags() *ContactUpdateOne {
	_u.mutation.ClearTags()
	return _u
}

// SetLastContactedAt sets the "last_contacted_at" field.
func (_u *ContactUpdateOne) SetLastContactedAt(v time.Time) *ContactUpdateOne {
	_u.mutation.SetLastContactedAt(v)
	return _u
}

// SetNillableLastContactedAt sets the "last_contacted_at" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableLastContactedAt(v *time.Time) *ContactUpdateOne {
	if v != nil {
		_u.SetLastContactedAt(*v)
	}
	return _u
}

// ClearLastContactedAt clears the value of the "last_contacted_at" field.
func (_u *ContactUpdateOne) ClearLastContactedAt() *ContactUpdateOne {
	_u.mutation.ClearLastContactedAt()
	return _u
}

// SetStageChangedAt sets the "stage_changed_at" field.
func (_u *ContactUpdateOne) SetStageChangedAt(v time.Time) *ContactUpdateOne {
	_u.mutation.SetStageChangedAt(v)
	return _u
}

// SetNillableStageChangedAt sets the "stage_changed_at" field if the given value is not nil.
func (_u *ContactUpdateOne) SetNillableStageChangedAt(v *time.Time) *ContactUpdateOne {
	if v != nil {
		_u.SetStageChangedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ContactUpdateOne) SetUpdatedAt(v time.Time) *ContactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetClinic sets the "clinic" edge to the Clinic entity.
func (_u *ContactUpdateOne) SetClinic(v *Clinic) *ContactUpdateOne {
	return _u.SetClinicID(v.ID)
}

// AddActivityIDs adds the "activities" edge to the Activity entity by IDs.
func (_u *ContactUpdateOne) AddActivityIDs(ids ...int) *ContactUpdateOne {
	_u.mutation.AddActivityIDs(ids...)
	return _u
}

// AddActivities adds the "activities" edges to the Activity entity.
func (_u *ContactUpdateOne) AddActivities(v ...*Activity) *ContactUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddActivityIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the FollowUpTask entity by IDs.
func (_u *ContactUpdateOne) AddTaskIDs(ids ...int) *ContactUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the FollowUpTask entity.
func (_u *ContactUpdateOne) AddTasks(v ...*FollowUpTask) *ContactUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the ContactMutation object of the builder.
func (_u *ContactUpdateOne) Mutation() *ContactMutation {
	return _u.mutation
}

// ClearClinic clears the "clinic" edge to the Clinic entity.
func (_u *ContactUpdateOne) ClearClinic() *ContactUpdateOne {
	_u.mutation.ClearClinic()
	return _u
}

// ClearActivities clears all "activities" edges to the Activity entity.
func (_u *ContactUpdateOne) ClearActivities() *ContactUpdateOne {
	_u.mutation.ClearActivities()
	return _u
}

// RemoveActivityIDs removes the "activities" edge to Activity entities by IDs.
func (_u *ContactUpdateOne) RemoveActivityIDs(ids ...int) *ContactUpdateOne {
	_u.mutation.RemoveActivityIDs(ids...)
	return _u
}

// RemoveActivities removes "activities" edges to Activity entities.
func (_u *ContactUpdateOne) RemoveActivities(v ...*Activity) *ContactUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveActivityIDs(ids...)
}

// ClearTasks clears all "tasks" edges to the FollowUpTask entity.
func (_u *ContactUpdateOne) ClearTasks() *ContactUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to FollowUpTask entities by IDs.
func (_u *ContactUpdateOne) RemoveTaskIDs(ids ...int) *ContactUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to FollowUpTask entities.
func (_u *ContactUpdateOne) RemoveTasks(v ...*FollowUpTask) *ContactUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Where appends a list predicates to the ContactUpdate builder.
func (_u *ContactUpdateOne) Where(ps ...predicate.Contact) *ContactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContactUpdateOne) Select(field string, fields ...string) *ContactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contact entity.
func (_u *ContactUpdateOne) Save(ctx context.Context) (*Contact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContactUpdateOne) SaveX(ctx context.Context) *Contact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ContactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := contact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContactUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := contact.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Contact.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := contact.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Contact.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := contact.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Contact.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := contact.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Contact.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LeadScore(); ok {
		if err := contact.LeadScoreValidator(v); err != nil {
			return &ValidationError{Name: "lead_score", err: fmt.Errorf(`ent: validator failed for field "Contact.lead_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalInteractions(); ok {
		if err := contact.TotalInteractionsValidator(v); err != nil {
			return &ValidationError{Name: "total_interactions", err: fmt.Errorf(`ent: validator failed for field "Contact.total_interactions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmailOpens(); ok {
		if err := contact.EmailOpensValidator(v); err != nil {
			return &ValidationError{Name: "email_opens", err: fmt.Errorf(`ent: validator failed for field "Contact.email_opens": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmailClicks(); ok {
		if err := contact.EmailClicksValidator(v); err != nil {
			return &ValidationError{Name: "email_clicks", err: fmt.Errorf(`ent: validator failed for field "Contact.email_clicks": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WebsiteVisits(); ok {
		if err := contact.WebsiteVisitsValidator(v); err != nil {
			return &ValidationError{Name: "website_visits", err: fmt.Errorf(`ent: validator failed for field "Contact.website_visits": %w`, err)}
		}
	}
	return nil
}

func (_u *ContactUpdateOne) sqlSave(ctx context.Context) (_node *Contact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contact.Table, contact.Columns, sqlgraph.NewFieldSpec(contact.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contact.FieldID)
		for _, f := range fields {
			if !contact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contact.FieldID {
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
		_spec.SetField(contact.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(contact.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(contact.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(contact.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(contact.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.Company(); ok {
		_spec.SetField(contact.FieldCompany, field.TypeString, value)
	}
	if _u.mutation.CompanyCleared() {
		_spec.ClearField(contact.FieldCompany, field.TypeString)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(contact.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(contact.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(contact.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LeadScore(); ok {
		_spec.SetField(contact.FieldLeadScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLeadScore(); ok {
		_spec.AddField(contact.FieldLeadScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalInteractions(); ok {
		_spec.SetField(contact.FieldTotalInteractions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalInteractions(); ok {
		_spec.AddField(contact.FieldTotalInteractions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmailOpens(); ok {
		_spec.SetField(contact.FieldEmailOpens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmailOpens(); ok {
		_spec.AddField(contact.FieldEmailOpens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EmailClicks(); ok {
		_spec.SetField(contact.FieldEmailClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEmailClicks(); ok {
		_spec.AddField(contact.FieldEmailClicks, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WebsiteVisits(); ok {
		_spec.SetField(contact.FieldWebsiteVisits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWebsiteVisits(); ok {
		_spec.AddField(contact.FieldWebsiteVisits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(contact.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(contact.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Tags(); ok {
		_spec.SetField(contact.FieldTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contact.FieldTags, value)
		})
	}
	if _u.mutation.TagsCleared() {
		_spec.ClearField(contact.FieldTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.LastContactedAt(); ok {
		_spec.SetField(contact.FieldLastContactedAt, field.TypeTime, value)
	}
	if _u.mutation.LastContactedAtCleared() {
		_spec.ClearField(contact.FieldLastContactedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StageChangedAt(); ok {
		_spec.SetField(contact.FieldStageChangedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(contact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ClinicCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ClinicIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ActivitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedActivitiesIDs(); len(nodes) > 0 && !_u.mutation.ActivitiesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ActivitiesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Contact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
