package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Clinic holds the schema definition for the Clinic entity.
type Clinic struct {
	ent.Schema
}

// Fields of the Clinic.
func (Clinic) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Business name"),
		field.String("slug").
			Unique().
			NotEmpty().
			Comment("URL-safe identifier derived from name and city"),
		field.String("city").
			NotEmpty().
			Comment("City name"),
		field.String("state").
			NotEmpty().
			MaxLen(2).
			Comment("Two-letter US state code"),
		field.String("address").
			Optional().
			Comment("Full street address"),
		field.String("postal_code").
			Optional().
			Comment("Postal/ZIP code"),
		field.String("phone").
			Optional().
			Comment("Phone number (E.164 when normalized)"),
		field.String("email").
			Optional().
			Comment("Contact email address"),
		field.String("website").
			Optional().
			Comment("Website URL"),
		field.Float("latitude").
			Optional().
			Comment("GPS latitude"),
		field.Float("longitude").
			Optional().
			Comment("GPS longitude"),
		field.String("place_id").
			Optional().
			Comment("Google Places ID used for de-duplication and rescrape"),
		field.Text("description").
			Optional().
			Comment("Generated SEO description copy"),
		field.JSON("services", []string{}).
			Optional().
			Comment("Service tags (trt, ed_treatment, weight_loss, hair_loss, etc.)"),

		field.Enum("tier").
			Values("free", "standard", "advanced").
			Default("free").
			Comment("Listing tier controlling feature visibility"),
		field.JSON("features", []string{}).
			Optional().
			Comment("Feature flags recomputed from tier (never deleted on downgrade)"),
		field.Enum("status").
			Values("active", "paused", "flagged").
			Default("active").
			Comment("Listing status set by operators"),
		field.Bool("verified").
			Default(false).
			Comment("Whether the listing has been verified"),
		field.Bool("indexed").
			Default(false).
			Comment("Whether search engines have indexed the listing page"),

		// Review aggregates, recomputed on moderation.
		field.Float("rating_avg").
			Default(0).
			Comment("Average published review rating"),
		field.Int("review_count").
			Default(0).
			NonNegative().
			Comment("Number of published reviews"),

		// Engagement snapshot over a trailing 30-day window.
		field.Int("clicks_30d").
			Default(0).
			NonNegative().
			Comment("Click count over the trailing 30 days"),
		field.Int("calls_30d").
			Default(0).
			NonNegative().
			Comment("Call-click count over the trailing 30 days"),
		field.Int("engagement_score").
			Default(0).
			Min(0).
			Max(100).
			Comment("Derived engagement score, recomputed from raw counters"),
		field.Enum("engagement_status").
			Values("engaged", "low", "none").
			Default("none").
			Comment("Tri-state engagement status"),
		field.Time("engagement_updated_at").
			Optional().
			Nillable().
			Comment("When the engagement snapshot was last recomputed"),

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

// Edges of the Clinic.
func (Clinic) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("reviews", Review.Type).
			Comment("Reviews submitted for this clinic"),
		edge.To("contacts", Contact.Type).
			Comment("CRM contacts associated with this clinic"),
		edge.To("sessions", LeadSession.Type).
			Comment("Visitor sessions attributed to this clinic"),
	}
}

// Indexes of the Clinic.
func (Clinic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state", "city"),
		index.Fields("tier"),
		index.Fields("status"),
		index.Fields("engagement_status"),
		index.Fields("latitude", "longitude"),
		index.Fields("place_id"),
		index.Fields("created_at"),
	}
}
