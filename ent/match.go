// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reddalert/reddalert/ent/contentitem"
	"github.com/reddalert/reddalert/ent/keywordrule"
	"github.com/reddalert/reddalert/ent/match"
	"github.com/reddalert/reddalert/ent/tenant"
)

// Match is the model entity for the Match schema.
type Match struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// RuleID holds the value of the "rule_id" field.
	RuleID string `json:"rule_id,omitempty"`
	// ContentID holds the value of the "content_id" field.
	ContentID string `json:"content_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind match.Kind `json:"kind,omitempty"`
	// Community holds the value of the "community" field.
	Community string `json:"community,omitempty"`
	// MatchedPhrase holds the value of the "matched_phrase" field.
	MatchedPhrase string `json:"matched_phrase,omitempty"`
	// Other phrases matched on the same item for the same tenant
	AlsoMatched []string `json:"also_matched,omitempty"`
	// Snippet holds the value of the "snippet" field.
	Snippet string `json:"snippet,omitempty"`
	// ProximityScore holds the value of the "proximity_score" field.
	ProximityScore float64 `json:"proximity_score,omitempty"`
	// RedditURL holds the value of the "reddit_url" field.
	RedditURL string `json:"reddit_url,omitempty"`
	// Author holds the value of the "author" field.
	Author string `json:"author,omitempty"`
	// IsDeleted holds the value of the "is_deleted" field.
	IsDeleted bool `json:"is_deleted,omitempty"`
	// DetectedAt holds the value of the "detected_at" field.
	DetectedAt time.Time `json:"detected_at,omitempty"`
	// AlertSentAt holds the value of the "alert_sent_at" field.
	AlertSentAt *time.Time `json:"alert_sent_at,omitempty"`
	// AlertStatus holds the value of the "alert_status" field.
	AlertStatus match.AlertStatus `json:"alert_status,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the MatchQuery when eager-loading is set.
	Edges        MatchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// MatchEdges holds the relations/edges for other nodes in the graph.
type MatchEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// Rule holds the value of the rule edge.
	Rule *KeywordRule `json:"rule,omitempty"`
	// Content holds the value of the content edge.
	Content *ContentItem `json:"content,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatchEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// RuleOrErr returns the Rule value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatchEdges) RuleOrErr() (*KeywordRule, error) {
	if e.Rule != nil {
		return e.Rule, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: keywordrule.Label}
	}
	return nil, &NotLoadedError{edge: "rule"}
}

// ContentOrErr returns the Content value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e MatchEdges) ContentOrErr() (*ContentItem, error) {
	if e.Content != nil {
		return e.Content, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: contentitem.Label}
	}
	return nil, &NotLoadedError{edge: "content"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Match) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case match.FieldAlsoMatched:
			values[i] = new([]byte)
		case match.FieldIsDeleted:
			values[i] = new(sql.NullBool)
		case match.FieldProximityScore:
			values[i] = new(sql.NullFloat64)
		case match.FieldID, match.FieldTenantID, match.FieldRuleID, match.FieldContentID, match.FieldKind, match.FieldCommunity, match.FieldMatchedPhrase, match.FieldSnippet, match.FieldRedditURL, match.FieldAuthor, match.FieldAlertStatus:
			values[i] = new(sql.NullString)
		case match.FieldDetectedAt, match.FieldAlertSentAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Match fields.
func (_m *Match) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case match.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case match.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case match.FieldRuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rule_id", values[i])
			} else if value.Valid {
				_m.RuleID = value.String
			}
		case match.FieldContentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_id", values[i])
			} else if value.Valid {
				_m.ContentID = value.String
			}
		case match.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = match.Kind(value.String)
			}
		case match.FieldCommunity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field community", values[i])
			} else if value.Valid {
				_m.Community = value.String
			}
		case match.FieldMatchedPhrase:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field matched_phrase", values[i])
			} else if value.Valid {
				_m.MatchedPhrase = value.String
			}
		case match.FieldAlsoMatched:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field also_matched", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AlsoMatched); err != nil {
					return fmt.Errorf("unmarshal field also_matched: %w", err)
				}
			}
		case match.FieldSnippet:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field snippet", values[i])
			} else if value.Valid {
				_m.Snippet = value.String
			}
		case match.FieldProximityScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field proximity_score", values[i])
			} else if value.Valid {
				_m.ProximityScore = value.Float64
			}
		case match.FieldRedditURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reddit_url", values[i])
			} else if value.Valid {
				_m.RedditURL = value.String
			}
		case match.FieldAuthor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field author", values[i])
			} else if value.Valid {
				_m.Author = value.String
			}
		case match.FieldIsDeleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_deleted", values[i])
			} else if value.Valid {
				_m.IsDeleted = value.Bool
			}
		case match.FieldDetectedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field detected_at", values[i])
			} else if value.Valid {
				_m.DetectedAt = value.Time
			}
		case match.FieldAlertSentAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field alert_sent_at", values[i])
			} else if value.Valid {
				_m.AlertSentAt = new(time.Time)
				*_m.AlertSentAt = value.Time
			}
		case match.FieldAlertStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field alert_status", values[i])
			} else if value.Valid {
				_m.AlertStatus = match.AlertStatus(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Match.
// This includes values selected through modifiers, order, etc.
func (_m *Match) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the Match entity.
func (_m *Match) QueryTenant() *TenantQuery {
	return NewMatchClient(_m.config).QueryTenant(_m)
}

// QueryRule queries the "rule" edge of the Match entity.
func (_m *Match) QueryRule() *KeywordRuleQuery {
	return NewMatchClient(_m.config).QueryRule(_m)
}

// QueryContent queries the "content" edge of the Match entity.
func (_m *Match) QueryContent() *ContentItemQuery {
	return NewMatchClient(_m.config).QueryContent(_m)
}

// Update returns a builder for updating this Match.
// Note that you need to call Match.Unwrap() before calling this method if this Match
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Match) Update() *MatchUpdateOne {
	return NewMatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Match entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Match) Unwrap() *Match {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Match is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Match) String() string {
	var builder strings.Builder
	builder.WriteString("Match(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("rule_id=")
	builder.WriteString(_m.RuleID)
	builder.WriteString(", ")
	builder.WriteString("content_id=")
	builder.WriteString(_m.ContentID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("community=")
	builder.WriteString(_m.Community)
	builder.WriteString(", ")
	builder.WriteString("matched_phrase=")
	builder.WriteString(_m.MatchedPhrase)
	builder.WriteString(", ")
	builder.WriteString("also_matched=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlsoMatched))
	builder.WriteString(", ")
	builder.WriteString("snippet=")
	builder.WriteString(_m.Snippet)
	builder.WriteString(", ")
	builder.WriteString("proximity_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProximityScore))
	builder.WriteString(", ")
	builder.WriteString("reddit_url=")
	builder.WriteString(_m.RedditURL)
	builder.WriteString(", ")
	builder.WriteString("author=")
	builder.WriteString(_m.Author)
	builder.WriteString(", ")
	builder.WriteString("is_deleted=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsDeleted))
	builder.WriteString(", ")
	builder.WriteString("detected_at=")
	builder.WriteString(_m.DetectedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.AlertSentAt; v != nil {
		builder.WriteString("alert_sent_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("alert_status=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlertStatus))
	builder.WriteByte(')')
	return builder.String()
}

// Matches is a parsable slice of Match.
type Matches []*Match
