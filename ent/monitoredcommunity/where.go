// Code generated by ent, DO NOT EDIT.

package monitoredcommunity

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reddalert/reddalert/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldContainsFold(FieldID, id))
}

// TenantID applies equality check predicate on the "tenant_id" field. It's identical to TenantIDEQ.
func TenantID(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldTenantID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldName, v))
}

// IncludeMediaPosts applies equality check predicate on the "include_media_posts" field. It's identical to IncludeMediaPostsEQ.
func IncludeMediaPosts(v bool) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldIncludeMediaPosts, v))
}

// DedupeCrossposts applies equality check predicate on the "dedupe_crossposts" field. It's identical to DedupeCrosspostsEQ.
func DedupeCrossposts(v bool) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldDedupeCrossposts, v))
}

// FilterBots applies equality check predicate on the "filter_bots" field. It's identical to FilterBotsEQ.
func FilterBots(v bool) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldFilterBots, v))
}

// LastPolledAt applies equality check predicate on the "last_polled_at" field. It's identical to LastPolledAtEQ.
func LastPolledAt(v time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldLastPolledAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldCreatedAt, v))
}

// TenantIDEQ applies the EQ predicate on the "tenant_id" field.
func TenantIDEQ(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldTenantID, v))
}

// TenantIDNEQ applies the NEQ predicate on the "tenant_id" field.
func TenantIDNEQ(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNEQ(FieldTenantID, v))
}

// TenantIDIn applies the In predicate on the "tenant_id" field.
func TenantIDIn(vs ...string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldIn(FieldTenantID, vs...))
}

// TenantIDNotIn applies the NotIn predicate on the "tenant_id" field.
func TenantIDNotIn(vs ...string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNotIn(FieldTenantID, vs...))
}

// TenantIDGT applies the GT predicate on the "tenant_id" field.
func TenantIDGT(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldGT(FieldTenantID, v))
}

// TenantIDGTE applies the GTE predicate on the "tenant_id" field.
func TenantIDGTE(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldGTE(FieldTenantID, v))
}

// TenantIDLT applies the LT predicate on the "tenant_id" field.
func TenantIDLT(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldLT(FieldTenantID, v))
}

// TenantIDLTE applies the LTE predicate on the "tenant_id" field.
func TenantIDLTE(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldLTE(FieldTenantID, v))
}

// TenantIDContains applies the Contains predicate on the "tenant_id" field.
func TenantIDContains(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldContains(FieldTenantID, v))
}

// TenantIDHasPrefix applies the HasPrefix predicate on the "tenant_id" field.
func TenantIDHasPrefix(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldHasPrefix(FieldTenantID, v))
}

// TenantIDHasSuffix applies the HasSuffix predicate on the "tenant_id" field.
func TenantIDHasSuffix(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldHasSuffix(FieldTenantID, v))
}

// TenantIDEqualFold applies the EqualFold predicate on the "tenant_id" field.
func TenantIDEqualFold(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEqualFold(FieldTenantID, v))
}

// TenantIDContainsFold applies the ContainsFold predicate on the "tenant_id" field.
func TenantIDContainsFold(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldContainsFold(FieldTenantID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldContainsFold(FieldName, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNotIn(FieldStatus, vs...))
}

// IncludeMediaPostsEQ applies the EQ predicate on the "include_media_posts" field.
func IncludeMediaPostsEQ(v bool) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldIncludeMediaPosts, v))
}

// IncludeMediaPostsNEQ applies the NEQ predicate on the "include_media_posts" field.
func IncludeMediaPostsNEQ(v bool) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNEQ(FieldIncludeMediaPosts, v))
}

// DedupeCrosspostsEQ applies the EQ predicate on the "dedupe_crossposts" field.
func DedupeCrosspostsEQ(v bool) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldDedupeCrossposts, v))
}

// DedupeCrosspostsNEQ applies the NEQ predicate on the "dedupe_crossposts" field.
func DedupeCrosspostsNEQ(v bool) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNEQ(FieldDedupeCrossposts, v))
}

// FilterBotsEQ applies the EQ predicate on the "filter_bots" field.
func FilterBotsEQ(v bool) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldFilterBots, v))
}

// FilterBotsNEQ applies the NEQ predicate on the "filter_bots" field.
func FilterBotsNEQ(v bool) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNEQ(FieldFilterBots, v))
}

// LastPolledAtEQ applies the EQ predicate on the "last_polled_at" field.
func LastPolledAtEQ(v time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldLastPolledAt, v))
}

// LastPolledAtNEQ applies the NEQ predicate on the "last_polled_at" field.
func LastPolledAtNEQ(v time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNEQ(FieldLastPolledAt, v))
}

// LastPolledAtIn applies the In predicate on the "last_polled_at" field.
func LastPolledAtIn(vs ...time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldIn(FieldLastPolledAt, vs...))
}

// LastPolledAtNotIn applies the NotIn predicate on the "last_polled_at" field.
func LastPolledAtNotIn(vs ...time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNotIn(FieldLastPolledAt, vs...))
}

// LastPolledAtGT applies the GT predicate on the "last_polled_at" field.
func LastPolledAtGT(v time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldGT(FieldLastPolledAt, v))
}

// LastPolledAtGTE applies the GTE predicate on the "last_polled_at" field.
func LastPolledAtGTE(v time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldGTE(FieldLastPolledAt, v))
}

// LastPolledAtLT applies the LT predicate on the "last_polled_at" field.
func LastPolledAtLT(v time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldLT(FieldLastPolledAt, v))
}

// LastPolledAtLTE applies the LTE predicate on the "last_polled_at" field.
func LastPolledAtLTE(v time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldLTE(FieldLastPolledAt, v))
}

// LastPolledAtIsNil applies the IsNil predicate on the "last_polled_at" field.
func LastPolledAtIsNil() predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldIsNull(FieldLastPolledAt))
}

// LastPolledAtNotNil applies the NotNil predicate on the "last_polled_at" field.
func LastPolledAtNotNil() predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNotNull(FieldLastPolledAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.FieldLTE(FieldCreatedAt, v))
}

// HasTenant applies the HasEdge predicate on the "tenant" edge.
func HasTenant() predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TenantTable, TenantColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTenantWith applies the HasEdge predicate on the "tenant" edge with a given conditions (other predicates).
func HasTenantWith(preds ...predicate.Tenant) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(func(s *sql.Selector) {
		step := newTenantStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MonitoredCommunity) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MonitoredCommunity) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MonitoredCommunity) predicate.MonitoredCommunity {
	return predicate.MonitoredCommunity(sql.NotPredicates(p))
}
