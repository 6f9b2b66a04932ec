// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reddalert/reddalert/ent/contentitem"
)

// ContentItem is the model entity for the ContentItem schema.
type ContentItem struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Opaque upstream id
	SourceID string `json:"source_id,omitempty"`
	// Community holds the value of the "community" field.
	Community string `json:"community,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind contentitem.Kind `json:"kind,omitempty"`
	// Posts only
	Title *string `json:"title,omitempty"`
	// Body holds the value of the "body" field.
	Body string `json:"body,omitempty"`
	// Author holds the value of the "author" field.
	Author string `json:"author,omitempty"`
	// NormalizedText holds the value of the "normalized_text" field.
	NormalizedText string `json:"normalized_text,omitempty"`
	// Hex SHA-256 of normalized_text
	Digest string `json:"digest,omitempty"`
	// SourceCreatedAt holds the value of the "source_created_at" field.
	SourceCreatedAt time.Time `json:"source_created_at,omitempty"`
	// FetchedAt holds the value of the "fetched_at" field.
	FetchedAt time.Time `json:"fetched_at,omitempty"`
	// IsDeleted holds the value of the "is_deleted" field.
	IsDeleted bool `json:"is_deleted,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ContentItemQuery when eager-loading is set.
	Edges        ContentItemEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ContentItemEdges holds the relations/edges for other nodes in the graph.
type ContentItemEdges struct {
	// Matches holds the value of the matches edge.
	Matches []*Match `json:"matches,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MatchesOrErr returns the Matches value or an error if the edge
// was not loaded in eager-loading.
func (e ContentItemEdges) MatchesOrErr() ([]*Match, error) {
	if e.loadedTypes[0] {
		return e.Matches, nil
	}
	return nil, &NotLoadedError{edge: "matches"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ContentItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case contentitem.FieldIsDeleted:
			values[i] = new(sql.NullBool)
		case contentitem.FieldID, contentitem.FieldSourceID, contentitem.FieldCommunity, contentitem.FieldKind, contentitem.FieldTitle, contentitem.FieldBody, contentitem.FieldAuthor, contentitem.FieldNormalizedText, contentitem.FieldDigest:
			values[i] = new(sql.NullString)
		case contentitem.FieldSourceCreatedAt, contentitem.FieldFetchedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ContentItem fields.
func (_m *ContentItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case contentitem.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case contentitem.FieldSourceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_id", values[i])
			} else if value.Valid {
				_m.SourceID = value.String
			}
		case contentitem.FieldCommunity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field community", values[i])
			} else if value.Valid {
				_m.Community = value.String
			}
		case contentitem.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = contentitem.Kind(value.String)
			}
		case contentitem.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = new(string)
				*_m.Title = value.String
			}
		case contentitem.FieldBody:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field body", values[i])
			} else if value.Valid {
				_m.Body = value.String
			}
		case contentitem.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = value.String
			}
		case contentitem.FieldNormalizedText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field normalized_text", values[i])
			} else if value.Valid {
				_m.NormalizedText = value.String
			}
		case contentitem.FieldDigest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field digest", values[i])
			} else if value.Valid {
				_m.Digest = value.String
			}
		case contentitem.FieldSourceCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field source_created_at", values[i])
			} else if value.Valid {
				_m.SourceCreatedAt = value.Time
			}
		case contentitem.FieldFetchedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fetched_at", values[i])
			} else if value.Valid {
				_m.FetchedAt = value.Time
			}
		case contentitem.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ContentItem.
// This includes values selected through modifiers, order, etc.
func (_m *ContentItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMatches queries the "matches" edge of the ContentItem entity.
func (_m *ContentItem) QueryMatches() *MatchQuery {
	return NewContentItemClient(_m.config).QueryMatches(_m)
}

// Update returns a builder for updating this ContentItem.
// Note that you need to call ContentItem.Unwrap() before calling this method if this ContentItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ContentItem) Update() *ContentItemUpdateOne {
	return NewContentItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ContentItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ContentItem) Unwrap() *ContentItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ContentItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ContentItem) String() string {
	var builder strings.Builder
	builder.WriteString("ContentItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_id=")
	builder.WriteString(_m.SourceID)
	builder.WriteString(", ")
	builder.WriteString("community=")
	builder.WriteString(_m.Community)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	if v := _m.Title; v != nil {
		builder.WriteString("title=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("body=")
	builder.WriteString(_m.Body)
	builder.WriteString(", ")
	builder.WriteString("author=")
	builder.WriteString(_m.Author)
	builder.WriteString(", ")
	builder.WriteString("normalized_text=")
	builder.WriteString(_m.NormalizedText)
	builder.WriteString(", ")
	builder.WriteString("digest=")
	builder.WriteString(_m.Digest)
	builder.WriteString(", ")
	builder.WriteString("source_created_at=")
	builder.WriteString(_m.SourceCreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("fetched_at=")
	builder.WriteString(_m.FetchedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("is_deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDeleted))
	builder.WriteByte(')')
	return builder.String()
}

// ContentItems is a parsable slice of ContentItem.
type ContentItems []*ContentItem
