// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContentItemsColumns holds the columns for the "content_items" table.
	ContentItemsColumns = []*schema.Column{
		{Name: "content_id", Type: field.TypeString, Unique: true},
		{Name: "source_id", Type: field.TypeString, Unique: true},
		{Name: "community", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"post", "comment"}},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "body", Type: field.TypeString, Size: 2147483647},
		{Name: "author", Type: field.TypeString},
		{Name: "normalized_text", Type: field.TypeString, Size: 2147483647},
		{Name: "digest", Type: field.TypeString, Unique: true},
		{Name: "source_created_at", Type: field.TypeTime},
		{Name: "fetched_at", Type: field.TypeTime},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
	}
	// ContentItemsTable holds the schema information for the "content_items" table.
	ContentItemsTable = &schema.Table{
		Name:       "content_items",
		Columns:    ContentItemsColumns,
		PrimaryKey: []*schema.Column{ContentItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contentitem_source_id",
				Unique:  false,
				Columns: []*schema.Column{ContentItemsColumns[1]},
			},
			{
				Name:    "contentitem_digest",
				Unique:  false,
				Columns: []*schema.Column{ContentItemsColumns[8]},
			},
			{
				Name:    "contentitem_community",
				Unique:  false,
				Columns: []*schema.Column{ContentItemsColumns[2]},
			},
			{
				Name:    "contentitem_fetched_at",
				Unique:  false,
				Columns: []*schema.Column{ContentItemsColumns[10]},
			},
		},
	}
	// KeywordRulesColumns holds the columns for the "keyword_rules" table.
	KeywordRulesColumns = []*schema.Column{
		{Name: "rule_id", Type: field.TypeString, Unique: true},
		{Name: "phrases", Type: field.TypeJSON},
		{Name: "exclusions", Type: field.TypeJSON, Nullable: true},
		{Name: "proximity_window", Type: field.TypeInt, Default: 15},
		{Name: "require_order", Type: field.TypeBool, Default: false},
		{Name: "use_stemming", Type: field.TypeBool, Default: false},
		{Name: "exclusion_scope", Type: field.TypeEnum, Enums: []string{"anywhere", "proximity"}, Default: "anywhere"},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "silenced_until", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// KeywordRulesTable holds the schema information for the "keyword_rules" table.
	KeywordRulesTable = &schema.Table{
		Name:       "keyword_rules",
		Columns:    KeywordRulesColumns,
		PrimaryKey: []*schema.Column{KeywordRulesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "keyword_rules_tenants_keyword_rules",
				Columns:    []*schema.Column{KeywordRulesColumns[10]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "keywordrule_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{KeywordRulesColumns[10]},
			},
			{
				Name:    "keywordrule_tenant_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{KeywordRulesColumns[10], KeywordRulesColumns[7]},
			},
		},
	}
	// MatchesColumns holds the columns for the "matches" table.
	MatchesColumns = []*schema.Column{
		{Name: "match_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"post", "comment"}},
		{Name: "community", Type: field.TypeString},
		{Name: "matched_phrase", Type: field.TypeString},
		{Name: "also_matched", Type: field.TypeJSON, Nullable: true},
		{Name: "snippet", Type: field.TypeString, Size: 200},
		{Name: "proximity_score", Type: field.TypeFloat64},
		{Name: "reddit_url", Type: field.TypeString},
		{Name: "author", Type: field.TypeString},
		{Name: "is_deleted", Type: field.TypeBool, Default: false},
		{Name: "detected_at", Type: field.TypeTime},
		{Name: "alert_sent_at", Type: field.TypeTime, Nullable: true},
		{Name: "alert_status", Type: field.TypeEnum, Enums: []string{"pending", "sent", "failed"}, Default: "pending"},
		{Name: "content_id", Type: field.TypeString},
		{Name: "rule_id", Type: field.TypeString},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// MatchesTable holds the schema information for the "matches" table.
	MatchesTable = &schema.Table{
		Name:       "matches",
		Columns:    MatchesColumns,
		PrimaryKey: []*schema.Column{MatchesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "matches_content_items_matches",
				Columns:    []*schema.Column{MatchesColumns[13]},
				RefColumns: []*schema.Column{ContentItemsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "matches_keyword_rules_matches",
				Columns:    []*schema.Column{MatchesColumns[14]},
				RefColumns: []*schema.Column{KeywordRulesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "matches_tenants_matches",
				Columns:    []*schema.Column{MatchesColumns[15]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "match_alert_status",
				Unique:  false,
				Columns: []*schema.Column{MatchesColumns[12]},
			},
			{
				Name:    "match_community",
				Unique:  false,
				Columns: []*schema.Column{MatchesColumns[2]},
			},
			{
				Name:    "match_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{MatchesColumns[15]},
			},
			{
				Name:    "match_alert_status_detected_at",
				Unique:  false,
				Columns: []*schema.Column{MatchesColumns[12], MatchesColumns[10]},
			},
			{
				Name:    "match_detected_at",
				Unique:  false,
				Columns: []*schema.Column{MatchesColumns[10]},
			},
		},
	}
	// MonitoredCommunitiesColumns holds the columns for the "monitored_communities" table.
	MonitoredCommunitiesColumns = []*schema.Column{
		{Name: "community_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "inaccessible", "private"}, Default: "active"},
		{Name: "include_media_posts", Type: field.TypeBool, Default: true},
		{Name: "dedupe_crossposts", Type: field.TypeBool, Default: true},
		{Name: "filter_bots", Type: field.TypeBool, Default: false},
		{Name: "last_polled_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// MonitoredCommunitiesTable holds the schema information for the "monitored_communities" table.
	MonitoredCommunitiesTable = &schema.Table{
		Name:       "monitored_communities",
		Columns:    MonitoredCommunitiesColumns,
		PrimaryKey: []*schema.Column{MonitoredCommunitiesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "monitored_communities_tenants_monitored_communities",
				Columns:    []*schema.Column{MonitoredCommunitiesColumns[8]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "monitoredcommunity_tenant_id_name",
				Unique:  true,
				Columns: []*schema.Column{MonitoredCommunitiesColumns[8], MonitoredCommunitiesColumns[1]},
			},
			{
				Name:    "monitoredcommunity_name_status",
				Unique:  false,
				Columns: []*schema.Column{MonitoredCommunitiesColumns[1], MonitoredCommunitiesColumns[2]},
			},
		},
	}
	// TenantsColumns holds the columns for the "tenants" table.
	TenantsColumns = []*schema.Column{
		{Name: "tenant_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "api_key_hash", Type: field.TypeString},
		{Name: "poll_interval_minutes", Type: field.TypeInt, Default: 60},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TenantsTable holds the schema information for the "tenants" table.
	TenantsTable = &schema.Table{
		Name:       "tenants",
		Columns:    TenantsColumns,
		PrimaryKey: []*schema.Column{TenantsColumns[0]},
	}
	// WebhookEndpointsColumns holds the columns for the "webhook_endpoints" table.
	WebhookEndpointsColumns = []*schema.Column{
		{Name: "endpoint_id", Type: field.TypeString, Unique: true},
		{Name: "url", Type: field.TypeString},
		{Name: "guild_name", Type: field.TypeString, Nullable: true},
		{Name: "is_primary", Type: field.TypeBool, Default: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "last_tested_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "tenant_id", Type: field.TypeString},
	}
	// WebhookEndpointsTable holds the schema information for the "webhook_endpoints" table.
	WebhookEndpointsTable = &schema.Table{
		Name:       "webhook_endpoints",
		Columns:    WebhookEndpointsColumns,
		PrimaryKey: []*schema.Column{WebhookEndpointsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "webhook_endpoints_tenants_webhook_endpoints",
				Columns:    []*schema.Column{WebhookEndpointsColumns[7]},
				RefColumns: []*schema.Column{TenantsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "webhookendpoint_tenant_id",
				Unique:  false,
				Columns: []*schema.Column{WebhookEndpointsColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContentItemsTable,
		KeywordRulesTable,
		MatchesTable,
		MonitoredCommunitiesTable,
		TenantsTable,
		WebhookEndpointsTable,
	}
)

func init() {
	KeywordRulesTable.ForeignKeys[0].RefTable = TenantsTable
	MatchesTable.ForeignKeys[0].RefTable = ContentItemsTable
	MatchesTable.ForeignKeys[1].RefTable = KeywordRulesTable
	MatchesTable.ForeignKeys[2].RefTable = TenantsTable
	MonitoredCommunitiesTable.ForeignKeys[0].RefTable = TenantsTable
	WebhookEndpointsTable.ForeignKeys[0].RefTable = TenantsTable
}
