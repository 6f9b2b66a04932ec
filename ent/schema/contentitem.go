package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentItem holds the schema definition for the ContentItem entity:
// one fetched post or top-level comment. Items are process-wide
// (shared across tenants), written exactly once by the ingestor and
// mutated only to set is_deleted.
type ContentItem struct {
	ent.Schema
}

// Fields of the ContentItem.
func (ContentItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("content_id").
			Unique().
			Immutable(),
		field.String("source_id").
			Unique().
			Immutable().
			Comment("Opaque upstream id"),
		field.String("community").
			Immutable(),
		field.Enum("kind").
			Values("post", "comment").
			Immutable(),
		field.String("title").
			Optional().
			Nillable().
			Comment("Posts only"),
		field.Text("body"),
		field.String("author"),
		field.Text("normalized_text").
			NotEmpty(),
		field.String("digest").
			Unique().
			Immutable().
			Comment("Hex SHA-256 of normalized_text"),
		field.Time("source_created_at"),
		field.Time("fetched_at").
			Default(time.Now).
			Immutable(),
		field.Bool("is_deleted").
			Default(false),
	}
}

// Edges of the ContentItem.
func (ContentItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("matches", Match.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the ContentItem.
func (ContentItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("source_id"),
		index.Fields("digest"),
		index.Fields("community"),
		index.Fields("fetched_at"),
	}
}
