// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/menshealthfinder/api/ent/contact"
	"github.com/menshealthfinder/api/ent/followuptask"
)

// FollowUpTask is the model entity for the FollowUpTask schema.
type FollowUpTask struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Contact the task was generated for
	ContactID int `json:"contact_id,omitempty"`
	// Name of the rule that produced the task; used for frequency lookback
	RuleName string `json:"rule_name,omitempty"`
	// Task type
	Type followuptask.Type `json:"type,omitempty"`
	// Task title shown to operators
	Title string `json:"title,omitempty"`
	// Email template name, when the action specifies one
	Template string `json:"template,omitempty"`
	// Task priority
	Priority followuptask.Priority `json:"priority,omitempty"`
	// Task status; mutated only by explicit completion/cancellation
	Status followuptask.Status `json:"status,omitempty"`
	// Due time, offset from creation by the rule action's delay
	DueAt time.Time `json:"due_at,omitempty"`
	// Operator the task is assigned to
	AssignedTo *int `json:"assigned_to,omitempty"`
	// When the task was completed or cancelled
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FollowUpTaskQuery when eager-loading is set.
	Edges        FollowUpTaskEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FollowUpTaskEdges holds the relations/edges for other nodes in the graph.
type FollowUpTaskEdges struct {
	// Contact holds the value of the contact edge.
	Contact *Contact `json:"contact,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ContactOrErr returns the Contact value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FollowUpTaskEdges) ContactOrErr() (*Contact, error) {
	if e.Contact != nil {
		return e.Contact, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: contact.Label}
	}
	return nil, &NotLoadedError{edge: "contact"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FollowUpTask) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case followuptask.FieldID, followuptask.FieldContactID, followuptask.FieldAssignedTo:
			values[i] = new(sql.NullInt64)
		case followuptask.FieldRuleName, followuptask.FieldType, followuptask.FieldTitle, followuptask.FieldTemplate, followuptask.FieldPriority, followuptask.FieldStatus:
			values[i] = new(sql.NullString)
		case followuptask.FieldDueAt, followuptask.FieldCompletedAt, followuptask.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FollowUpTask fields.
func (_m *FollowUpTask) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case followuptask.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case followuptask.FieldContactID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field contact_id", values[i])
			} else if value.Valid {
				_m.ContactID = int(value.Int64)
			}
		case followuptask.FieldRuleName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_name", values[i])
			} else if value.Valid {
				_m.RuleName = value.String
			}
		case followuptask.FieldType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field type", values[i])
			} else if value.Valid {
				_m.Type = followuptask.Type(value.String)
			}
		case followuptask.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case followuptask.FieldTemplate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field template", values[i])
			} else if value.Valid {
				_m.Template = value.String
			}
		case followuptask.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = followuptask.Priority(value.String)
			}
		case followuptask.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = followuptask.Status(value.String)
			}
		case followuptask.FieldDueAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field due_at", values[i])
			} else if value.Valid {
				_m.DueAt = value.Time
			}
		case followuptask.FieldAssignedTo:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field assigned_to", values[i])
			} else if value.Valid {
				_m.AssignedTo = new(int)
				*_m.AssignedTo = int(value.Int64)
			}
		case followuptask.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case followuptask.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FollowUpTask.
// This includes values selected through modifiers, order, etc.
func (_m *FollowUpTask) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryContact queries the "contact" edge of the FollowUpTask entity.
func (_m *FollowUpTask) QueryContact() *ContactQuery {
	return NewFollowUpTaskClient(_m.config).QueryContact(_m)
}

// Update returns a builder for updating this FollowUpTask.
// Note that you need to call FollowUpTask.Unwrap() before calling this method if this FollowUpTask
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FollowUpTask) Update() *FollowUpTaskUpdateOne {
	return NewFollowUpTaskClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FollowUpTask entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FollowUpTask) Unwrap() *FollowUpTask {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FollowUpTask is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FollowUpTask) String() string {
	var builder strings.Builder
	builder.WriteString("FollowUpTask(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("contact_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContactID))
	builder.WriteString(", ")
	builder.WriteString("rule_name=")
	builder.WriteString(_m.RuleName)
	builder.WriteString(", ")
	builder.WriteString("type=")
	builder.WriteString(fmt.Sprintf("%v", _m.Type))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("template=")
	builder.WriteString(_m.Template)
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("due_at=")
	builder.WriteString(_m.DueAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.AssignedTo; v != nil {
		builder.WriteString("assigned_to=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FollowUpTasks is a parsable slice of FollowUpTask.
type FollowUpTasks []*FollowUpTask
