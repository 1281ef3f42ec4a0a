package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Activity holds the schema definition for the Activity entity.
// Activities are append-only: no update or delete path exists in the API.
type Activity struct {
	ent.Schema
}

// Fields of the Activity.
func (Activity) Fields() []ent.Field {
	return []ent.Field{
		field.Int("contact_id").
			Positive().
			Comment("Contact the activity is logged against"),
		field.Enum("type").
			Values("email", "call", "meeting", "note").
			Comment("Activity type"),
		field.String("subject").
			NotEmpty().
			MaxLen(500).
			Comment("Short subject line"),
		field.Text("description").
			Optional().
			Comment("Free-text details"),
		field.Int("author_id").
			Optional().
			Nillable().
			Comment("Operator who logged the activity (null for system entries)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the activity occurred"),
	}
}

// Edges of the Activity.
func (Activity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contact", Contact.Type).
			Ref("activities").
			Field("contact_id").
			Unique().
			Required(),
	}
}

// Indexes of the Activity.
func (Activity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("contact_id", "created_at"),
		index.Fields("type"),
	}
}
