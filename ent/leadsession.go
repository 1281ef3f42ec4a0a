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
	"github.com/menshealthfinder/api/ent/leadsession"
	"github.com/menshealthfinder/api/ent/schema"
)

// LeadSession is the model entity for the LeadSession schema.
type LeadSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Client-generated session identifier
	SessionID string `json:"session_id,omitempty"`
	// Clinic the session is attributed to, when known
	ClinicID *int `json:"clinic_id,omitempty"`
	// Accumulated action log in insertion order
	Actions []schema.SessionAction `json:"actions,omitempty"`
	// Traffic source classification
	Source string `json:"source,omitempty"`
	// Device classification (desktop, mobile, tablet)
	Device string `json:"device,omitempty"`
	// Browser family
	Browser string `json:"browser,omitempty"`
	// Total dwell time in seconds
	DwellSeconds int `json:"dwell_seconds,omitempty"`
	// Whether the session produced a lead signal
	Converted bool `json:"converted,omitempty"`
	// First event timestamp
	StartedAt time.Time `json:"started_at,omitempty"`
	// Most recent event timestamp; drives the 30-minute expiry
	LastActiveAt time.Time `json:"last_active_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the LeadSessionQuery when eager-loading is set.
	Edges        LeadSessionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// LeadSessionEdges holds the relations/edges for other nodes in the graph.
type LeadSessionEdges struct {
	// Clinic holds the value of the clinic edge.
	Clinic *Clinic `json:"clinic,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ClinicOrErr returns the Clinic value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e LeadSessionEdges) ClinicOrErr() (*Clinic, error) {
	if e.Clinic != nil {
		return e.Clinic, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: clinic.Label}
	}
	return nil, &NotLoadedError{edge: "clinic"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LeadSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case leadsession.FieldActions:
			values[i] = new([]byte)
		case leadsession.FieldConverted:
			values[i] = new(sql.NullBool)
		case leadsession.FieldID, leadsession.FieldClinicID, leadsession.FieldDwellSeconds:
			values[i] = new(sql.NullInt64)
		case leadsession.FieldSessionID, leadsession.FieldSource, leadsession.FieldDevice, leadsession.FieldBrowser:
			values[i] = new(sql.NullString)
		case leadsession.FieldStartedAt, leadsession.FieldLastActiveAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LeadSession fields.
func (_m *LeadSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case leadsession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case leadsession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case leadsession.FieldClinicID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field clinic_id", values[i])
			} else if value.Valid {
				_m.ClinicID = new(int)
				*_m.ClinicID = int(value.Int64)
			}
		case leadsession.FieldActions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field actions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Actions); err != nil {
					return fmt.Errorf("unmarshal field actions: %w", err)
				}
			}
		case leadsession.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case leadsession.FieldDevice:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field device", values[i])
			} else if value.Valid {
				_m.Device = value.String
			}
		case leadsession.FieldBrowser:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field browser", values[i])
			} else if value.Valid {
				_m.Browser = value.String
			}
		case leadsession.FieldDwellSeconds:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field dwell_seconds", values[i])
			} else if value.Valid {
				_m.DwellSeconds = int(value.Int64)
			}
		case leadsession.FieldConverted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field converted", values[i])
			} else if value.Valid {
				_m.Converted = value.Bool
			}
		case leadsession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case leadsession.FieldLastActiveAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_active_at", values[i])
			} else if value.Valid {
				_m.LastActiveAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LeadSession.
// This includes values selected through modifiers, order, etc.
func (_m *LeadSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryClinic queries the "clinic" edge of the LeadSession entity.
func (_m *LeadSession) QueryClinic() *ClinicQuery {
	return NewLeadSessionClient(_m.config).QueryClinic(_m)
}

// Update returns a builder for updating this LeadSession.
// Note that you need to call LeadSession.Unwrap() before calling this method if this LeadSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LeadSession) Update() *LeadSessionUpdateOne {
	return NewLeadSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LeadSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LeadSession) Unwrap() *LeadSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LeadSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LeadSession) String() string {
	var builder strings.Builder
	builder.WriteString("LeadSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	if v := _m.ClinicID; v != nil {
		builder.WriteString("clinic_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("actions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Actions))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("device=")
	builder.WriteString(_m.Device)
	builder.WriteString(", ")
	builder.WriteString("browser=")
	builder.WriteString(_m.Browser)
	builder.WriteString(", ")
	builder.WriteString("dwell_seconds=")
	builder.WriteString(fmt.Sprintf("%v", _m.DwellSeconds))
	builder.WriteString(", ")
	builder.WriteString("converted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Converted))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("last_active_at=")
	builder.WriteString(_m.LastActiveAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LeadSessions is a parsable slice of LeadSession.
type LeadSessions []*LeadSession
