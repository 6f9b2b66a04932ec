// Code generated by ent, DO NOT EDIT.

package match

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the match type in the database.
	Label = "match"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "match_id"
	// FieldTenantID holds the string denoting the tenant_id field in the database.
	FieldTenantID = "tenant_id"
	// FieldRuleID holds the string denoting the rule_id field in the database.
	FieldRuleID = "rule_id"
	// FieldContentID holds the string denoting the content_id field in the database.
	FieldContentID = "content_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldCommunity holds the string denoting the community field in the database.
	FieldCommunity = "community"
	// FieldMatchedPhrase holds the string denoting the matched_phrase field in the database.
	FieldMatchedPhrase = "matched_phrase"
	// FieldAlsoMatched holds the string denoting the also_matched field in the database.
	FieldAlsoMatched = "also_matched"
	// FieldSnippet holds the string denoting the snippet field in the database.
	FieldSnippet = "snippet"
	// FieldProximityScore holds the string denoting the proximity_score field in the database.
	FieldProximityScore = "proximity_score"
	// FieldRedditURL holds the string denoting the reddit_url field in the database.
	FieldRedditURL = "reddit_url"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldIsDeleted holds the string denoting the is_deleted field in the database.
	FieldIsDeleted = "is_deleted"
	// FieldDetectedAt holds the string denoting the detected_at field in the database.
	FieldDetectedAt = "detected_at"
	// FieldAlertSentAt holds the string denoting the alert_sent_at field in the database.
	FieldAlertSentAt = "alert_sent_at"
	// FieldAlertStatus holds the string denoting the alert_status field in the database.
	FieldAlertStatus = "alert_status"
	// EdgeTenant holds the string denoting the tenant edge name in mutations.
	EdgeTenant = "tenant"
	// EdgeRule holds the string denoting the rule edge name in mutations.
	EdgeRule = "rule"
	// EdgeContent holds the string denoting the content edge name in mutations.
	EdgeContent = "content"
	// TenantFieldID holds the string denoting the ID field of the Tenant.
	TenantFieldID = "tenant_id"
	// KeywordRuleFieldID holds the string denoting the ID field of the KeywordRule.
	KeywordRuleFieldID = "rule_id"
	// ContentItemFieldID holds the string denoting the ID field of the ContentItem.
	ContentItemFieldID = "content_id"
	// Table holds the table name of the match in the database.
	Table = "matches"
	// TenantTable is the table that holds the tenant relation/edge.
	TenantTable = "matches"
	// TenantInverseTable is the table name for the Tenant entity.
	// It exists in this package in order to avoid circular dependency with the "tenant" package.
	TenantInverseTable = "tenants"
	// TenantColumn is the table column denoting the tenant relation/edge.
	TenantColumn = "tenant_id"
	// RuleTable is the table that holds the rule relation/edge.
	RuleTable = "matches"
	// RuleInverseTable is the table name for the KeywordRule entity.
	// It exists in this package in order to avoid circular dependency with the "keywordrule" package.
	RuleInverseTable = "keyword_rules"
	// RuleColumn is the table column denoting the rule relation/edge.
	RuleColumn = "rule_id"
	// ContentTable is the table that holds the content relation/edge.
	ContentTable = "matches"
	// ContentInverseTable is the table name for the ContentItem entity.
	// It exists in this package in order to avoid circular dependency with the "contentitem" package.
	ContentInverseTable = "content_items"
	// ContentColumn is the table column denoting the content relation/edge.
	ContentColumn = "content_id"
)

// Columns holds all SQL columns for match fields.
var Columns = []string{
	FieldID,
	FieldTenantID,
	FieldRuleID,
	FieldContentID,
	FieldKind,
	FieldCommunity,
	FieldMatchedPhrase,
	FieldAlsoMatched,
	FieldSnippet,
	FieldProximityScore,
	FieldRedditURL,
	FieldAuthor,
	FieldIsDeleted,
	FieldDetectedAt,
	FieldAlertSentAt,
	FieldAlertStatus,
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
	// SnippetValidator is a validator for the "snippet" field. It is called by the builders before save.
	SnippetValidator func(string) error
	// DefaultIsDeleted holds the default value on creation for the "is_deleted" field.
	DefaultIsDeleted bool
	// DefaultDetectedAt holds the default value on creation for the "detected_at" field.
	DefaultDetectedAt func() time.Time
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindPost    Kind = "post"
	KindComment Kind = "comment"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindPost, KindComment:
		return nil
	default:
		return fmt.Errorf("match: invalid enum value for kind field: %q", k)
	}
}

// AlertStatus defines the type for the "alert_status" enum field.
type AlertStatus string

// AlertStatusPending is the default value of the AlertStatus enum.
const DefaultAlertStatus = AlertStatusPending

// AlertStatus values.
const (
	AlertStatusPending AlertStatus = "pending"
	AlertStatusSent    AlertStatus = "sent"
	AlertStatusFailed  AlertStatus = "failed"
)

func (as AlertStatus) String() string {
	return string(as)
}

// AlertStatusValidator is a validator for the "alert_status" field enum values. It is called by the builders before save.
func AlertStatusValidator(as AlertStatus) error {
	switch as {
	case AlertStatusPending, AlertStatusSent, AlertStatusFailed:
		return nil
	default:
		return fmt.Errorf("match: invalid enum value for alert_status field: %q", as)
	}
}

// OrderOption defines the ordering options for the Match queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTenantID orders the results by the tenant_id field.
func ByTenantID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTenantID, opts...).ToFunc()
}

// ByRuleID orders the results by the rule_id field.
func ByRuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuleID, opts...).ToFunc()
}

// ByContentID orders the results by the content_id field.
func ByContentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByCommunity orders the results by the community field.
func ByCommunity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommunity, opts...).ToFunc()
}

// ByMatchedPhrase orders the results by the matched_phrase field.
func ByMatchedPhrase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMatchedPhrase, opts...).ToFunc()
}

// BySnippet orders the results by the snippet field.
func BySnippet(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSnippet, opts...).ToFunc()
}

// ByProximityScore orders the results by the proximity_score field.
func ByProximityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProximityScore, opts...).ToFunc()
}

// ByRedditURL orders the results by the reddit_url field.
func ByRedditURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRedditURL, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByIsDeleted orders the results by the is_deleted field.
func ByIsDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDeleted, opts...).ToFunc()
}

// ByDetectedAt orders the results by the detected_at field.
func ByDetectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedAt, opts...).ToFunc()
}

// ByAlertSentAt orders the results by the alert_sent_at field.
func ByAlertSentAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertSentAt, opts...).ToFunc()
}

// ByAlertStatus orders the results by the alert_status field.
func ByAlertStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAlertStatus, opts...).ToFunc()
}

// ByTenantField orders the results by tenant field.
func ByTenantField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTenantStep(), sql.OrderByField(field, opts...))
	}
}

// ByRuleField orders the results by rule field.
func ByRuleField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRuleStep(), sql.OrderByField(field, opts...))
	}
}

// ByContentField orders the results by content field.
func ByContentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newContentStep(), sql.OrderByField(field, opts...))
	}
}
func newTenantStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TenantInverseTable, TenantFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
	)
}
func newRuleStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RuleInverseTable, KeywordRuleFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RuleTable, RuleColumn),
	)
}
func newContentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ContentInverseTable, ContentItemFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ContentTable, ContentColumn),
	)
}
