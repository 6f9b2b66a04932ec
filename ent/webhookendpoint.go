// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reddalert/reddalert/ent/tenant"
	"github.com/reddalert/reddalert/ent/webhookendpoint"
)

// WebhookEndpoint is the model entity for the WebhookEndpoint schema.
type WebhookEndpoint struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TenantID holds the value of the "tenant_id" field.
	TenantID string `json:"tenant_id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Human-readable label for the target server
	GuildName *string `json:"guild_name,omitempty"`
	// IsPrimary holds the value of the "is_primary" field.
	IsPrimary bool `json:"is_primary,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// LastTestedAt holds the value of the "last_tested_at" field.
	LastTestedAt *time.Time `json:"last_tested_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WebhookEndpointQuery when eager-loading is set.
	Edges        WebhookEndpointEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WebhookEndpointEdges holds the relations/edges for other nodes in the graph.
type WebhookEndpointEdges struct {
	// Tenant holds the value of the tenant edge.
	Tenant *Tenant `json:"tenant,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TenantOrErr returns the Tenant value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e WebhookEndpointEdges) TenantOrErr() (*Tenant, error) {
	if e.Tenant != nil {
		return e.Tenant, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: tenant.Label}
	}
	return nil, &NotLoadedError{edge: "tenant"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*WebhookEndpoint) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case webhookendpoint.FieldIsPrimary, webhookendpoint.FieldIsActive:
			values[i] = new(sql.NullBool)
		case webhookendpoint.FieldID, webhookendpoint.FieldTenantID, webhookendpoint.FieldURL, webhookendpoint.FieldGuildName:
			values[i] = new(sql.NullString)
		case webhookendpoint.FieldLastTestedAt, webhookendpoint.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the WebhookEndpoint fields.
func (_m *WebhookEndpoint) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case webhookendpoint.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case webhookendpoint.FieldTenantID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tenant_id", values[i])
			} else if value.Valid {
				_m.TenantID = value.String
			}
		case webhookendpoint.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case webhookendpoint.FieldGuildName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field guild_name", values[i])
			} else if value.Valid {
				_m.GuildName = new(string)
				*_m.GuildName = value.String
			}
		case webhookendpoint.FieldIsPrimary:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_primary", values[i])
			} else if value.Valid {
				_m.IsPrimary = value.Bool
			}
		case webhookendpoint.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case webhookendpoint.FieldLastTestedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_tested_at", values[i])
			} else if value.Valid {
				_m.LastTestedAt = new(time.Time)
				*_m.LastTestedAt = value.Time
			}
		case webhookendpoint.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the WebhookEndpoint.
// This includes values selected through modifiers, order, etc.
func (_m *WebhookEndpoint) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTenant queries the "tenant" edge of the WebhookEndpoint entity.
func (_m *WebhookEndpoint) QueryTenant() *TenantQuery {
	return NewWebhookEndpointClient(_m.config).QueryTenant(_m)
}

// Update returns a builder for updating this WebhookEndpoint.
// Note that you need to call WebhookEndpoint.Unwrap() before calling this method if this WebhookEndpoint
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *WebhookEndpoint) Update() *WebhookEndpointUpdateOne {
	return NewWebhookEndpointClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the WebhookEndpoint entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *WebhookEndpoint) Unwrap() *WebhookEndpoint {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: WebhookEndpoint is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *WebhookEndpoint) String() string {
	var builder strings.Builder
	builder.WriteString("WebhookEndpoint(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tenant_id=")
	builder.WriteString(_m.TenantID)
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	if v := _m.GuildName; v != nil {
		builder.WriteString("guild_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_primary=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPrimary))
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	if v := _m.LastTestedAt; v != nil {
		builder.WriteString("last_tested_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// WebhookEndpoints is a parsable slice of WebhookEndpoint.
type WebhookEndpoints []*WebhookEndpoint
