// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/menshealthfinder/api/ent/clinic"
	"github.com/menshealthfinder/api/ent/contact"
)

// Contact is the model entity for the Contact schema.
type Contact struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Clinic this contact belongs to (null for unattributed inbound leads)
	ClinicID *int `json:"clinic_id,omitempty"`
	// Contact full name
	Name string `json:"name,omitempty"`
	// Email address
	Email string `json:"email,omitempty"`
	// Phone number
	Phone string `json:"phone,omitempty"`
	// Company or practice name
	Company string `json:"company,omitempty"`
	// Pipeline stage; advances only through operator or rule action
	Stage contact.Stage `json:"stage,omitempty"`
	// Sales priority
	Priority contact.Priority `json:"priority,omitempty"`
	// Soft status; contacts are never hard-deleted
	Status contact.Status `json:"status,omitempty"`
	// Derived lead score, recomputed from raw counters
	LeadScore int `json:"lead_score,omitempty"`
	// Total tracked interactions
	TotalInteractions int `json:"total_interactions,omitempty"`
	// Email open count
	EmailOpens int `json:"email_opens,omitempty"`
	// Email click count
	EmailClicks int `json:"email_clicks,omitempty"`
	// Website visit count
	WebsiteVisits int `json:"website_visits,omitempty"`
	// Traffic source the contact was attributed to (organic, paid, ...)
	Source string `json:"source,omitempty"`
	// Free-form tag set
	Tags []string `json:"tags,omitempty"`
	// When an operator last reached out
	LastContactedAt *time.Time `json:"last_contacted_at,omitempty"`
	// When the pipeline stage last changed
	StageChangedAt time.Time `json:"stage_changed_at,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContactQuery when eager-loading is set.
	Edges        ContactEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContactEdges holds the relations/edges for other nodes in the graph.
type ContactEdges struct {
	// Clinic holds the value of the clinic edge.
	Clinic *Clinic `json:"clinic,omitempty"`
	// Append-only activity log
	Activities []*Activity `json:"activities,omitempty"`
	// Follow-up tasks generated for this contact
	Tasks []*FollowUpTask `json:"tasks,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ClinicOrErr returns the Clinic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ContactEdges) ClinicOrErr() (*Clinic, error) {
	if e.Clinic != nil {
		return e.Clinic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clinic.Label}
	}
	return nil, &NotLoadedError{edge: "clinic"}
}

// ActivitiesOrErr returns the Activities value or an error if the edge
// was not loaded in eager-loading.
func (e ContactEdges) ActivitiesOrErr() ([]*Activity, error) {
	if e.loadedTypes[1] {
		return e.Activities, nil
	}
	return nil, &NotLoadedError{edge: "activities"}
}

// TasksOrErr returns the Tasks value or an error if the edge
// was not loaded in eager-loading.
func (e ContactEdges) TasksOrErr() ([]*FollowUpTask, error) {
	if e.loadedTypes[2] {
		return e.Tasks, nil
	}
	return nil, &NotLoadedError{edge: "tasks"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Contact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contact.FieldTags:
			values[i] = new([]byte)
		case contact.FieldID, contact.FieldClinicID, contact.FieldLeadScore, contact.FieldTotalInteractions, contact.FieldEmailOpens, contact.FieldEmailClicks, contact.FieldWebsiteVisits:
			values[i] = new(sql.NullInt64)
		case contact.FieldName, contact.FieldEmail, contact.FieldPhone, contact.FieldCompany, contact.FieldStage, contact.FieldPriority, contact.FieldStatus, contact.FieldSource:
			values[i] = new(sql.NullString)
		case contact.FieldLastContactedAt, contact.FieldStageChangedAt, contact.FieldCreatedAt, contact.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Contact fields.
func (_m *Contact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contact.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case contact.FieldClinicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value.Valid {
				_m.ClinicID = new(int)
				*_m.ClinicID = int(value.Int64)
			}
		case contact.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case contact.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case contact.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case contact.FieldCompany:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company", values[i])
			} else if value.Valid {
				_m.Company = value.String
			}
		case contact.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = contact.Stage(value.String)
			}
		case contact.FieldPriority:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field priority", values[i])
			} else if value.Valid {
				_m.Priority = contact.Priority(value.String)
			}
		case contact.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = contact.Status(value.String)
			}
		case contact.FieldLeadScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field lead_score", values[i])
			} else if value.Valid {
				_m.LeadScore = int(value.Int64)
			}
		case contact.FieldTotalInteractions:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_interactions", values[i])
			} else if value.Valid {
				_m.TotalInteractions = int(value.Int64)
			}
		case contact.FieldEmailOpens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field email_opens", values[i])
			} else if value.Valid {
				_m.EmailOpens = int(value.Int64)
			}
		case contact.FieldEmailClicks:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field email_clicks", values[i])
			} else if value.Valid {
				_m.EmailClicks = int(value.Int64)
			}
		case contact.FieldWebsiteVisits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field website_visits", values[i])
			} else if value.Valid {
				_m.WebsiteVisits = int(value.Int64)
			}
		case contact.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case contact.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case contact.FieldLastContactedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_contacted_at", values[i])
			} else if value.Valid {
				_m.LastContactedAt = new(time.Time)
				*_m.LastContactedAt = value.Time
			}
		case contact.FieldStageChangedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field stage_changed_at", values[i])
			} else if value.Valid {
				_m.StageChangedAt = value.Time
			}
		case contact.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case contact.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Contact.
// This includes values selected through modifiers, order, etc.
func (_m *Contact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClinic queries the "clinic" edge of the Contact entity.
func (_m *Contact) QueryClinic() *ClinicQuery {
	return NewContactClient(_m.config).QueryClinic(_m)
}

// QueryActivities queries the "activities" edge of the Contact entity.
func (_m *Contact) QueryActivities() *ActivityQuery {
	return NewContactClient(_m.config).QueryActivities(_m)
}

// QueryTasks queries the "tasks" edge of the Contact entity.
func (_m *Contact) QueryTasks() *FollowUpTaskQuery {
	return NewContactClient(_m.config).QueryTasks(_m)
}

// Update returns a builder for updating this Contact.
// Note that you need to call Contact.Unwrap() before calling this method if this Contact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Contact) Update() *ContactUpdateOne {
	return NewContactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Contact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Contact) Unwrap() *Contact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Contact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Contact) String() string {
	var builder strings.Builder
	builder.WriteString("Contact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.ClinicID; v != nil {
		builder.WriteString("clinic_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("company=")
	builder.WriteString(_m.Company)
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("priority=")
	builder.WriteString(fmt.Sprintf("%v", _m.Priority))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("lead_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.LeadScore))
	builder.WriteString(", ")
	builder.WriteString("total_interactions=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalInteractions))
	builder.WriteString(", ")
	builder.WriteString("email_opens=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailOpens))
	builder.WriteString(", ")
	builder.WriteString("email_clicks=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmailClicks))
	builder.WriteString(", ")
	builder.WriteString("website_visits=")
	builder.WriteString(fmt.Sprintf("%v", _m.WebsiteVisits))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	if v := _m.LastContactedAt; v != nil {
		builder.WriteString("last_contacted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("stage_changed_at=")
	builder.WriteString(_m.StageChangedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Contacts is a parsable slice of Contact.
type Contacts []*Contact
