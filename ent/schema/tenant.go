package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Tenant holds the schema definition for the Tenant entity.
// A tenant owns its keyword rules, monitored communities, webhook
// endpoints and matches; deleting a tenant cascades to all of them.
type Tenant struct {
	ent.Schema
}

// Fields of the Tenant.
func (Tenant) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tenant_id").
			Unique().
			Immutable(),
		field.String("email").
			Optional().
			Nillable().
			Comment("Contact address for fallback notifications"),
		field.String("api_key_hash").
			Sensitive().
			Comment("PBKDF2-SHA256 hash of the tenant API key"),
		field.Int("poll_interval_minutes").
			Default(60),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Tenant.
func (Tenant) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("keyword_rules", KeywordRule.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("monitored_communities", MonitoredCommunity.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("webhook_endpoints", WebhookEndpoint.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("matches", Match.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
