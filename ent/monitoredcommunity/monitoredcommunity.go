// Code generated by ent, DO NOT EDIT.

package monitoredcommunity

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the monitoredcommunity type in the database.
	Label = "monitored_community"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "community_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldIncludeMediaPosts holds the string denoting the include_media_posts field in the database.
	FieldIncludeMediaPosts = "include_media_posts"
	// FieldDedupeCrossposts holds the string denoting the dedupe_crossposts field in the database.
	FieldDedupeCrossposts = "dedupe_crossposts"
	// FieldFilterBots holds the string denoting the filter_bots field in the database.
	FieldFilterBots = "filter_bots"
	// FieldLastPolledAt holds the string denoting the last_polled_at field in the database.
	FieldLastPolledAt = "last_polled_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTenant holds the string denoting the tenant edge name in mutations.
	EdgeTenant = "tenant"
	// TenantFieldID holds the string denoting the ID field of the Tenant.
	TenantFieldID = "tenant_id"
	// Table holds the table name of the monitoredcommunity in the database.
	Table = "monitored_communities"
	// TenantTable is the table that holds the tenant relation/edge.
	TenantTable = "monitored_communities"
	// TenantInverseTable is the table name for the Tenant entity.
	// It exists in this package in order to avoid circular dependency with the "tenant" package.
	TenantInverseTable = "tenants"
	// TenantColumn is the table column denoting the tenant relation/edge.
	TenantColumn = "tenant_id"
)

// Columns holds all SQL columns for monitoredcommunity fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldName,
	FieldStatus,
	FieldIncludeMediaPosts,
	FieldDedupeCrossposts,
	FieldFilterBots,
	FieldLastPolledAt,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultIncludeMediaPosts holds the default value on creation for the "include_media_posts" field.
	DefaultIncludeMediaPosts bool
	// DefaultDedupeCrossposts holds the default value on creation for the "dedupe_crossposts" field.
	DefaultDedupeCrossposts bool
	// DefaultFilterBots holds the default value on creation for the "filter_bots" field.
	DefaultFilterBots bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive       Status = "active"
	StatusInaccessible Status = "inaccessible"
	StatusPrivate      Status = "private"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusInaccessible, StatusPrivate:
		return nil
	default:
		return fmt.Errorf("monitoredcommunity: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the MonitoredCommunity queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByIncludeMediaPosts orders the results by the include_media_posts field.
func ByIncludeMediaPosts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncludeMediaPosts, opts...).ToFunc()
}

// ByDedupeCrossposts orders the results by the dedupe_crossposts field.
func ByDedupeCrossposts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDedupeCrossposts, opts...).ToFunc()
}

// ByFilterBots orders the results by the filter_bots field.
func ByFilterBots(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFilterBots, opts...).ToFunc()
}

// ByLastPolledAt orders the results by the last_polled_at field.
func ByLastPolledAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastPolledAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTenantField orders the results by tenant field.
func ByTenantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTenantStep(), sql.OrderByField(field, opts...))
	}
}
func newTenantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TenantInverseTable, TenantFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
	)
}
