package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// KeywordRule holds the schema definition for the KeywordRule entity.
// Phrases are stored in their canonical wire form, a flat list of
// whitespace-joined strings, and tokenized when loaded by the matcher.
type KeywordRule struct {
	ent.Schema
}

// Fields of the KeywordRule.
func (KeywordRule) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rule_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.Strings("phrases").
			Comment("OR group, any phrase satisfying its constraints matches"),
		field.Strings("exclusions").
			Optional(),
		field.Int("proximity_window").
			Default(15).
			Positive(),
		field.Bool("require_order").
			Default(false),
		field.Bool("use_stemming").
			Default(false),
		field.Enum("exclusion_scope").
			Values("anywhere", "proximity").
			Default("anywhere"),
		field.Bool("is_active").
			Default(true).
			Comment("Soft delete flips this off"),
		field.Time("silenced_until").
			Optional().
			Nillable().
			Comment("Rule is treated as inactive while this is in the future"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the KeywordRule.
func (KeywordRule) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("keyword_rules").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.To("matches", Match.Type),
	}
}

// Indexes of the KeywordRule.
func (KeywordRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
		index.Fields("tenant_id", "is_active"),
	}
}
