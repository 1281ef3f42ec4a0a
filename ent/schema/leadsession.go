package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LeadSession holds the schema definition for the LeadSession entity.
// One row per anonymous visitor session; upserted on each flush.
type LeadSession struct {
	ent.Schema
}

// SessionAction is one tracked visitor interaction inside a session.
type SessionAction struct {
	Name      string         `json:"name"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

// Fields of the LeadSession.
func (LeadSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty().
			Comment("Client-generated session identifier"),
		field.Int("clinic_id").
			Optional().
			Nillable().
			Comment("Clinic the session is attributed to, when known"),
		field.JSON("actions", []SessionAction{}).
			Optional().
			Comment("Accumulated action log in insertion order"),
		field.String("source").
			Default("unknown").
			Comment("Traffic source classification"),
		field.String("device").
			Optional().
			Comment("Device classification (desktop, mobile, tablet)"),
		field.String("browser").
			Optional().
			Comment("Browser family"),
		field.Int("dwell_seconds").
			Default(0).
			NonNegative().
			Comment("Total dwell time in seconds"),
		field.Bool("converted").
			Default(false).
			Comment("Whether the session produced a lead signal"),
		field.Time("started_at").
			Default(time.Now).
			Immutable().
			Comment("First event timestamp"),
		field.Time("last_active_at").
			Default(time.Now).
			Comment("Most recent event timestamp; drives the 30-minute expiry"),
	}
}

// Edges of the LeadSession.
func (LeadSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("clinic", Clinic.Type).
			Ref("sessions").
			Field("clinic_id").
			Unique(),
	}
}

// Indexes of the LeadSession.
func (LeadSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "started_at"),
		index.Fields("source"),
		index.Fields("last_active_at"),
	}
}
