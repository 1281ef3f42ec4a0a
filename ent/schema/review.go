package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Review holds the schema definition for the Review entity.
type Review struct {
	ent.Schema
}

// Fields of the Review.
func (Review) Fields() []ent.Field {
	return []ent.Field{
		field.Int("clinic_id").
			Positive().
			Comment("Clinic the review belongs to"),
		field.Int("rating").
			Min(1).
			Max(5).
			Comment("Star rating 1-5"),
		field.String("author_name").
			NotEmpty().
			MaxLen(100).
			Comment("Display name supplied by the reviewer"),
		field.Text("body").
			NotEmpty().
			MaxLen(5000).
			Comment("Review text"),
		field.Enum("status").
			Values("pending", "published", "rejected").
			Default("pending").
			Comment("Moderation status; immutable once published except counters"),
		field.Int("helpful_count").
			Default(0).
			NonNegative().
			Comment("Times visitors marked the review helpful"),
		field.Int("report_count").
			Default(0).
			NonNegative().
			Comment("Times visitors reported the review"),
		field.Time("moderated_at").
			Optional().
			Nillable().
			Comment("When the review was published or rejected"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Submission timestamp"),
	}
}

// Edges of the Review.
func (Review) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("clinic", Clinic.Type).
			Ref("reviews").
			Field("clinic_id").
			Unique().
			Required(),
	}
}

// Indexes of the Review.
func (Review) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("clinic_id", "status"),
		index.Fields("status", "created_at"),
	}
}
