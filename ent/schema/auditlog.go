package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Optional().
			Nillable().
			Comment("User ID (null for system actions)"),
		field.String("action").
			NotEmpty().
			Comment("Action performed (clinic_pause, review_moderate, audit_run, ...)"),
		field.String("resource_type").
			Optional().
			Comment("Type of resource affected (clinic, review, contact, ...)"),
		field.String("resource_id").
			Optional().
			Comment("ID of affected resource"),
		field.String("ip_address").
			Optional().
			Comment("IP address of user"),
		field.String("user_agent").
			Optional().
			Comment("User agent string"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Additional context data"),
		field.Enum("severity").
			Values("info", "warning", "error", "critical").
			Default("info").
			Comment("Event severity level"),
		field.String("description").
			Optional().
			Comment("Human-readable description"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the event occurred"),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
		index.Fields("action"),
		index.Fields("created_at"),
	}
}
