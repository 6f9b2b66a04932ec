package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Match holds the schema definition for the Match entity: a
// tenant-scoped keyword finding. Created pending by the match engine;
// alert_status is mutated only by the dispatcher.
type Match struct {
	ent.Schema
}

// Fields of the Match.
func (Match) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("match_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("rule_id").
			Immutable(),
		field.String("content_id").
			Immutable(),
		field.Enum("kind").
			Values("post", "comment").
			Immutable(),
		field.String("community").
			Immutable(),
		field.String("matched_phrase"),
		field.Strings("also_matched").
			Optional().
			Comment("Other phrases matched on the same item for the same tenant"),
		field.String("snippet").
			MaxLen(200),
		field.Float("proximity_score"),
		field.String("reddit_url"),
		field.String("author"),
		field.Bool("is_deleted").
			Default(false),
		field.Time("detected_at").
			Default(time.Now).
			Immutable(),
		field.Time("alert_sent_at").
			Optional().
			Nillable(),
		field.Enum("alert_status").
			Values("pending", "sent", "failed").
			Default("pending"),
	}
}

// Edges of the Match.
func (Match) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("matches").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
		edge.From("rule", KeywordRule.Type).
			Ref("matches").
			Field("rule_id").
			Unique().
			Required().
			Immutable(),
		edge.From("content", ContentItem.Type).
			Ref("matches").
			Field("content_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Match.
func (Match) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("alert_status"),
		index.Fields("community"),
		index.Fields("tenant_id"),
		index.Fields("alert_status", "detected_at"),
		index.Fields("detected_at"),
	}
}
