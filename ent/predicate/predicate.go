// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ContentItem is the predicate function for contentitem builders.
type ContentItem func(*sql.Selector)

// KeywordRule is the predicate function for keywordrule builders.
type KeywordRule func(*sql.Selector)

// Match is the predicate function for match builders.
type Match func(*sql.Selector)

// MonitoredCommunity is the predicate function for monitoredcommunity builders.
type MonitoredCommunity func(*sql.Selector)

// Tenant is the predicate function for tenant builders.
type Tenant func(*sql.Selector)

// WebhookEndpoint is the predicate function for webhookendpoint builders.
type WebhookEndpoint func(*sql.Selector)
