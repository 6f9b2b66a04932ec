// Code generated by ent, DO NOT EDIT.

package contentitem

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the contentitem type in the database.
	Label = "content_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "content_id"
	// FieldSourceID holds the string denoting the source_id field in the database.
	FieldSourceID = "source_id"
	// FieldCommunity holds the string denoting the community field in the database.
	FieldCommunity = "community"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldBody holds the string denoting the body field in the database.
	FieldBody = "body"
	// FieldAuthor holds the string denoting the author field in the database.
	FieldAuthor = "author"
	// FieldNormalizedText holds the string denoting the normalized_text field in the database.
	FieldNormalizedText = "normalized_text"
	// FieldDigest holds the string denoting the digest field in the database.
	FieldDigest = "digest"
	// FieldSourceCreatedAt holds the string denoting the source_created_at field in the database.
	FieldSourceCreatedAt = "source_created_at"
	// FieldFetchedAt holds the string denoting the fetched_at field in the database.
	FieldFetchedAt = "fetched_at"
	// FieldIsDeleted holds the string denoting the is_deleted field in the database.
	FieldIsDeleted = "is_deleted"
	// EdgeMatches holds the string denoting the matches edge name in mutations.
	EdgeMatches = "matches"
	// MatchFieldID holds the string denoting the ID field of the Match.
	MatchFieldID = "match_id"
	// Table holds the table name of the contentitem in the database.
	Table = "content_items"
	// MatchesTable is the table that holds the matches relation/edge.
	MatchesTable = "matches"
	// MatchesInverseTable is the table name for the Match entity.
	// It exists in this package in order to avoid circular dependency with the "match" package.
	MatchesInverseTable = "matches"
	// MatchesColumn is the table column denoting the matches relation/edge.
	MatchesColumn = "content_id"
)

// Columns holds all SQL columns for contentitem fields.
var Columns = []string{
	FieldID,
	FieldSourceID,
	FieldCommunity,
	FieldKind,
	FieldTitle,
	FieldBody,
	FieldAuthor,
	FieldNormalizedText,
	FieldDigest,
	FieldSourceCreatedAt,
	FieldFetchedAt,
	FieldIsDeleted,
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
	// NormalizedTextValidator is a validator for the "normalized_text" field. It is called by the builders before save.
	NormalizedTextValidator func(string) error
	// DefaultFetchedAt holds the default value on creation for the "fetched_at" field.
	DefaultFetchedAt func() time.Time
	// DefaultIsDeleted holds the default value on creation for the "is_deleted" field.
	DefaultIsDeleted bool
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
		return fmt.Errorf("contentitem: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the ContentItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySourceID orders the results by the source_id field.
func BySourceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceID, opts...).ToFunc()
}

// ByCommunity orders the results by the community field.
func ByCommunity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCommunity, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByBody orders the results by the body field.
func ByBody(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBody, opts...).ToFunc()
}

// ByAuthor orders the results by the author field.
func ByAuthor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthor, opts...).ToFunc()
}

// ByNormalizedText orders the results by the normalized_text field.
func ByNormalizedText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNormalizedText, opts...).ToFunc()
}

// ByDigest orders the results by the digest field.
func ByDigest(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDigest, opts...).ToFunc()
}

// BySourceCreatedAt orders the results by the source_created_at field.
func BySourceCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceCreatedAt, opts...).ToFunc()
}

// ByFetchedAt orders the results by the fetched_at field.
func ByFetchedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFetchedAt, opts...).ToFunc()
}

// ByIsDeleted orders the results by the is_deleted field.
func ByIsDeleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDeleted, opts...).ToFunc()
}

// ByMatchesCount orders the results by matches count.
func ByMatchesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMatchesStep(), opts...)
	}
}

// ByMatches orders the results by matches terms.
func ByMatches(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMatchesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMatchesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MatchesInverseTable, MatchFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
	)
}
