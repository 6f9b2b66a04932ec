// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reddalert/reddalert/ent/tenant"
)

// Tenant is the model entity for the Tenant schema.
type Tenant struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Contact address for fallback notifications
	Email *string `json:"email,omitempty"`
	// PBKDF2-SHA256 hash of the tenant API key
	APIKeyHash string `json:"-"`
	// PollIntervalMinutes holds the value of the "poll_interval_minutes" field.
	PollIntervalMinutes int `json:"poll_interval_minutes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TenantQuery when eager-loading is set.
	Edges        TenantEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TenantEdges holds the relations/edges for other nodes in the graph.
type TenantEdges struct {
	// KeywordRules holds the value of the keyword_rules edge.
	KeywordRules []*KeywordRule `json:"keyword_rules,omitempty"`
	// MonitoredCommunities holds the value of the monitored_communities edge.
	MonitoredCommunities []*MonitoredCommunity `json:"monitored_communities,omitempty"`
	// WebhookEndpoints holds the value of the webhook_endpoints edge.
	WebhookEndpoints []*WebhookEndpoint `json:"webhook_endpoints,omitempty"`
	// Matches holds the value of the matches edge.
	Matches []*Match `json:"matches,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [4]bool
}

// KeywordRulesOrErr returns the KeywordRules value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) KeywordRulesOrErr() ([]*KeywordRule, error) {
	if e.loadedTypes[0] {
		return e.KeywordRules, nil
	}
	return nil, &NotLoadedError{edge: "keyword_rules"}
}

// MonitoredCommunitiesOrErr returns the MonitoredCommunities value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) MonitoredCommunitiesOrErr() ([]*MonitoredCommunity, error) {
	if e.loadedTypes[1] {
		return e.MonitoredCommunities, nil
	}
	return nil, &NotLoadedError{edge: "monitored_communities"}
}

// WebhookEndpointsOrErr returns the WebhookEndpoints value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) WebhookEndpointsOrErr() ([]*WebhookEndpoint, error) {
	if e.loadedTypes[2] {
		return e.WebhookEndpoints, nil
	}
	return nil, &NotLoadedError{edge: "webhook_endpoints"}
}

// MatchesOrErr returns the Matches value or an error if the edge
// was not loaded in eager-loading.
func (e TenantEdges) MatchesOrErr() ([]*Match, error) {
	if e.loadedTypes[3] {
		return e.Matches, nil
	}
	return nil, &NotLoadedError{edge: "matches"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Tenant) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tenant.FieldPollIntervalMinutes:
			values[i] = new(sql.NullInt64)
		case tenant.FieldID, tenant.FieldEmail, tenant.FieldAPIKeyHash:
			values[i] = new(sql.NullString)
		case tenant.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Tenant fields.
func (_m *Tenant) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tenant.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tenant.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = new(string)
				*_m.Email = value.String
			}
		case tenant.FieldAPIKeyHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field api_key_hash", values[i])
			} else if value.Valid {
				_m.APIKeyHash = value.String
			}
		case tenant.FieldPollIntervalMinutes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field poll_interval_minutes", values[i])
			} else if value.Valid {
				_m.PollIntervalMinutes = int(value.Int64)
			}
		case tenant.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Tenant.
// This includes values selected through modifiers, order, etc.
func (_m *Tenant) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryKeywordRules queries the "keyword_rules" edge of the Tenant entity.
func (_m *Tenant) QueryKeywordRules() *KeywordRuleQuery {
	return NewTenantClient(_m.config).QueryKeywordRules(_m)
}

// QueryMonitoredCommunities queries the "monitored_communities" edge of the Tenant entity.
func (_m *Tenant) QueryMonitoredCommunities() *MonitoredCommunityQuery {
	return NewTenantClient(_m.config).QueryMonitoredCommunities(_m)
}

// QueryWebhookEndpoints queries the "webhook_endpoints" edge of the Tenant entity.
func (_m *Tenant) QueryWebhookEndpoints() *WebhookEndpointQuery {
	return NewTenantClient(_m.config).QueryWebhookEndpoints(_m)
}

// QueryMatches queries the "matches" edge of the Tenant entity.
func (_m *Tenant) QueryMatches() *MatchQuery {
	return NewTenantClient(_m.config).QueryMatches(_m)
}

// Update returns a builder for updating this Tenant.
// Note that you need to call Tenant.Unwrap() before calling this method if this Tenant
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Tenant) Update() *TenantUpdateOne {
	return NewTenantClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Tenant entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Tenant) Unwrap() *Tenant {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Tenant is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Tenant) String() string {
	var builder strings.Builder
	builder.WriteString("Tenant(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.Email; v != nil {
		builder.WriteString("email=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("api_key_hash=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("poll_interval_minutes=")
	builder.WriteString(fmt.Sprintf("%v", _m.PollIntervalMinutes))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Tenants is a parsable slice of Tenant.
type Tenants []*Tenant
