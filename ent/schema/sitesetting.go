package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SiteSetting holds the schema definition for the SiteSetting entity:
// the per-domain masking settings consulted before every masking call.
// One row per site domain, written through the settings API.
type SiteSetting struct {
	ent.Schema
}

// Fields of the SiteSetting.
func (SiteSetting) Fields() []ent.Field {
	return []ent.Field{
		field.String("domain").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Bare lowercase hostname, as reported by the extension"),
		field.Bool("enabled").
			Default(false).
			Comment("Whether masking runs at all for this site"),
		field.Bool("hide_magnitude").
			Default(false).
			Comment("Fixed-width placeholder policy instead of character-preserving"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SiteSetting.
func (SiteSetting) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("domain").Unique(),
	}
}

// Annotations of the SiteSetting.
func (SiteSetting) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "site_settings"},
	}
}
