package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Contact holds the schema definition for the Contact entity.
type Contact struct {
	ent.Schema
}

// Fields of the Contact.
func (Contact) Fields() []ent.Field {
	return []ent.Field{
		field.Int("clinic_id").
			Optional().
			Nillable().
			Comment("Clinic this contact belongs to (null for unattributed inbound leads)"),
		field.String("name").
			NotEmpty().
			Comment("Contact full name"),
		field.String("email").
			Optional().
			Comment("Email address"),
		field.String("phone").
			Optional().
			Comment("Phone number"),
		field.String("company").
			Optional().
			Comment("Company or practice name"),

		field.Enum("stage").
			Values("new", "contacted", "qualified", "proposal", "negotiation",
				"closed_won", "closed_lost", "nurturing").
			Default("new").
			Comment("Pipeline stage; advances only through operator or rule action"),
		field.Enum("priority").
			Values("low", "medium", "high", "urgent").
			Default("medium").
			Comment("Sales priority"),
		field.Enum("status").
			Values("active", "archived").
			Default("active").
			Comment("Soft status; contacts are never hard-deleted"),

		field.Int("lead_score").
			Default(0).
			Min(0).
			Max(100).
			Comment("Derived lead score, recomputed from raw counters"),
		field.Int("total_interactions").
			Default(0).
			NonNegative().
			Comment("Total tracked interactions"),
		field.Int("email_opens").
			Default(0).
			NonNegative().
			Comment("Email open count"),
		field.Int("email_clicks").
			Default(0).
			NonNegative().
			Comment("Email click count"),
		field.Int("website_visits").
			Default(0).
			NonNegative().
			Comment("Website visit count"),

		field.String("source").
			Optional().
			Comment("Traffic source the contact was attributed to (organic, paid, ...)"),
		field.JSON("tags", []string{}).
			Optional().
			Comment("Free-form tag set"),
		field.Time("last_contacted_at").
			Optional().
			Nillable().
			Comment("When an operator last reached out"),
		field.Time("stage_changed_at").
			Default(time.Now).
			Comment("When the pipeline stage last changed"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the Contact.
func (Contact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("clinic", Clinic.Type).
			Ref("contacts").
			Field("clinic_id").
			Unique(),
		edge.To("activities", Activity.Type).
			Comment("Append-only activity log"),
		edge.To("tasks", FollowUpTask.Type).
			Comment("Follow-up tasks generated for this contact"),
	}
}

// Indexes of the Contact.
func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "stage"),
		index.Fields("stage"),
		index.Fields("status"),
		index.Fields("email"),
		index.Fields("last_contacted_at"),
		index.Fields("created_at"),
	}
}
