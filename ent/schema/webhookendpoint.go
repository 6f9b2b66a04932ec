package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WebhookEndpoint holds the schema definition for the WebhookEndpoint
// entity: an outbound chat-webhook target owned by a tenant. The URL
// is validated (provider pattern + SSRF guard) at the API boundary.
type WebhookEndpoint struct {
	ent.Schema
}

// Fields of the WebhookEndpoint.
func (WebhookEndpoint) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("endpoint_id").
			Unique().
			Immutable(),
		field.String("tenant_id").
			Immutable(),
		field.String("url"),
		field.String("guild_name").
			Optional().
			Nillable().
			Comment("Human-readable label for the target server"),
		field.Bool("is_primary").
			Default(true),
		field.Bool("is_active").
			Default(true),
		field.Time("last_tested_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the WebhookEndpoint.
func (WebhookEndpoint) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("tenant", Tenant.Type).
			Ref("webhook_endpoints").
			Field("tenant_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the WebhookEndpoint.
func (WebhookEndpoint) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id"),
	}
}
