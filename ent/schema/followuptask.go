package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FollowUpTask holds the schema definition for the FollowUpTask entity.
type FollowUpTask struct {
	ent.Schema
}

// Fields of the FollowUpTask.
func (FollowUpTask) Fields() []ent.Field {
	return []ent.Field{
		field.Int("contact_id").
			Positive().
			Comment("Contact the task was generated for"),
		field.String("rule_name").
			NotEmpty().
			Comment("Name of the rule that produced the task; used for frequency lookback"),
		field.Enum("type").
			Values("email", "call", "meeting").
			Comment("Task type"),
		field.String("title").
			NotEmpty().
			MaxLen(500).
			Comment("Task title shown to operators"),
		field.String("template").
			Optional().
			Comment("Email template name, when the action specifies one"),
		field.Enum("priority").
			Values("low", "medium", "high", "urgent").
			Default("medium").
			Comment("Task priority"),
		field.Enum("status").
			Values("pending", "in_progress", "completed", "cancelled").
			Default("pending").
			Comment("Task status; mutated only by explicit completion/cancellation"),
		field.Time("due_at").
			Comment("Due time, offset from creation by the rule action's delay"),
		field.Int("assigned_to").
			Optional().
			Nillable().
			Comment("Operator the task is assigned to"),
		field.Time("completed_at").
			Optional().
			Nillable().
			Comment("When the task was completed or cancelled"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
	}
}

// Edges of the FollowUpTask.
func (FollowUpTask) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("contact", Contact.Type).
			Ref("tasks").
			Field("contact_id").
			Unique().
			Required(),
	}
}

// Indexes of the FollowUpTask.
func (FollowUpTask) Indexes() []ent.Index {
	return []ent.Index{
		// Frequency lookback scans by (contact, rule, created_at).
		index.Fields("contact_id", "rule_name", "created_at"),
		index.Fields("status", "due_at"),
		index.Fields("assigned_to"),
	}
}
