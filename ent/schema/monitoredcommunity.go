package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MonitoredCommunity holds the schema definition for the
// MonitoredCommunity entity: one (tenant, community) subscription.
// Only status == active records participate in polling.
type MonitoredCommunity struct {
	ent.Schema
}

// Fields of the MonitoredCommunity.
func (MonitoredCommunity) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("community_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("name").
			Comment("Lowercase community name without the r/ prefix"),
		field.Enum("status").
			Values("active", "inaccessible", "private").
			Default("active"),
		field.Bool("include_media_posts").
			Default(true),
		field.Bool("dedupe_crossposts").
			Default(true),
		field.Bool("filter_bots").
			Default(false),
		field.Time("last_polled_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the MonitoredCommunity.
func (MonitoredCommunity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("monitored_communities").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the MonitoredCommunity.
func (MonitoredCommunity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "name").
			Unique(),
		index.Fields("name", "status"),
	}
}
