// Code generated by ent, DO NOT EDIT.

package webhookendpoint

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reddalert/reddalert/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldTenantID, v))
}

// URL applies equality check predicate on the "url" field. It's identical to URLEQ.
func URL(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldURL, v))
}

// GuildName applies equality check predicate on the "guild_name" field. It's identical to GuildNameEQ.
func GuildName(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldGuildName, v))
}

// IsPrimary applies equality check predicate on the "is_primary" field. It's identical to IsPrimaryEQ.
func IsPrimary(v bool) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldIsPrimary, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldIsActive, v))
}

// LastTestedAt applies equality check predicate on the "last_tested_at" field. It's identical to LastTestedAtEQ.
func LastTestedAt(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldLastTestedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContainsFold(FieldTenantID, v))
}

// URLEQ applies the EQ predicate on the "url" field.
func URLEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldURL, v))
}

// URLNEQ applies the NEQ predicate on the "url" field.
func URLNEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldURL, v))
}

// URLIn applies the In predicate on the "url" field.
func URLIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldURL, vs...))
}

// URLNotIn applies the NotIn predicate on the "url" field.
func URLNotIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldURL, vs...))
}

// URLGT applies the GT predicate on the "url" field.
func URLGT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldURL, v))
}

// URLGTE applies the GTE predicate on the "url" field.
func URLGTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldURL, v))
}

// URLLT applies the LT predicate on the "url" field.
func URLLT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldURL, v))
}

// URLLTE applies the LTE predicate on the "url" field.
func URLLTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldURL, v))
}

// URLContains applies the Contains predicate on the "url" field.
func URLContains(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContains(FieldURL, v))
}

// URLHasPrefix applies the HasPrefix predicate on the "url" field.
func URLHasPrefix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasPrefix(FieldURL, v))
}

// URLHasSuffix applies the HasSuffix predicate on the "url" field.
func URLHasSuffix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasSuffix(FieldURL, v))
}

// URLEqualFold applies the EqualFold predicate on the "url" field.
func URLEqualFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEqualFold(FieldURL, v))
}

// URLContainsFold applies the ContainsFold predicate on the "url" field.
func URLContainsFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContainsFold(FieldURL, v))
}

// GuildNameEQ applies the EQ predicate on the "guild_name" field.
func GuildNameEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldGuildName, v))
}

// GuildNameNEQ applies the NEQ predicate on the "guild_name" field.
func GuildNameNEQ(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldGuildName, v))
}

// GuildNameIn applies the In predicate on the "guild_name" field.
func GuildNameIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldGuildName, vs...))
}

// GuildNameNotIn applies the NotIn predicate on the "guild_name" field.
func GuildNameNotIn(vs ...string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldGuildName, vs...))
}

// GuildNameGT applies the GT predicate on the "guild_name" field.
func GuildNameGT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldGuildName, v))
}

// GuildNameGTE applies the GTE predicate on the "guild_name" field.
func GuildNameGTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldGuildName, v))
}

// GuildNameLT applies the LT predicate on the "guild_name" field.
func GuildNameLT(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldGuildName, v))
}

// GuildNameLTE applies the LTE predicate on the "guild_name" field.
func GuildNameLTE(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldGuildName, v))
}

// GuildNameContains applies the Contains predicate on the "guild_name" field.
func GuildNameContains(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContains(FieldGuildName, v))
}

// GuildNameHasPrefix applies the HasPrefix predicate on the "guild_name" field.
func GuildNameHasPrefix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasPrefix(FieldGuildName, v))
}

// GuildNameHasSuffix applies the HasSuffix predicate on the "guild_name" field.
func GuildNameHasSuffix(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldHasSuffix(FieldGuildName, v))
}

// GuildNameIsNil applies the IsNil predicate on the "guild_name" field.
func GuildNameIsNil() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIsNull(FieldGuildName))
}

// GuildNameNotNil applies the NotNil predicate on the "guild_name" field.
func GuildNameNotNil() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotNull(FieldGuildName))
}

// GuildNameEqualFold applies the EqualFold predicate on the "guild_name" field.
func GuildNameEqualFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEqualFold(FieldGuildName, v))
}

// GuildNameContainsFold applies the ContainsFold predicate on the "guild_name" field.
func GuildNameContainsFold(v string) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldContainsFold(FieldGuildName, v))
}

// IsPrimaryEQ applies the EQ predicate on the "is_primary" field.
func IsPrimaryEQ(v bool) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldIsPrimary, v))
}

// IsPrimaryNEQ applies the NEQ predicate on the "is_primary" field.
func IsPrimaryNEQ(v bool) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldIsPrimary, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldIsActive, v))
}

// LastTestedAtEQ applies the EQ predicate on the "last_tested_at" field.
func LastTestedAtEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldLastTestedAt, v))
}

// LastTestedAtNEQ applies the NEQ predicate on the "last_tested_at" field.
func LastTestedAtNEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldLastTestedAt, v))
}

// LastTestedAtIn applies the In predicate on the "last_tested_at" field.
func LastTestedAtIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldLastTestedAt, vs...))
}

// LastTestedAtNotIn applies the NotIn predicate on the "last_tested_at" field.
func LastTestedAtNotIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldLastTestedAt, vs...))
}

// LastTestedAtGT applies the GT predicate on the "last_tested_at" field.
func LastTestedAtGT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldLastTestedAt, v))
}

// LastTestedAtGTE applies the GTE predicate on the "last_tested_at" field.
func LastTestedAtGTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldLastTestedAt, v))
}

// LastTestedAtLT applies the LT predicate on the "last_tested_at" field.
func LastTestedAtLT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldLastTestedAt, v))
}

// LastTestedAtLTE applies the LTE predicate on the "last_tested_at" field.
func LastTestedAtLTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldLastTestedAt, v))
}

// LastTestedAtIsNil applies the IsNil predicate on the "last_tested_at" field.
func LastTestedAtIsNil() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIsNull(FieldLastTestedAt))
}

// LastTestedAtNotNil applies the NotNil predicate on the "last_tested_at" field.
func LastTestedAtNotNil() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotNull(FieldLastTestedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WebhookEndpoint) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WebhookEndpoint) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WebhookEndpoint) predicate.WebhookEndpoint {
	return predicate.WebhookEndpoint(sql.NotPredicates(p))
}
