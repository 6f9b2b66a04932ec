// Code generated by ent, DO NOT EDIT.

package tenant

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reddalert/reddalert/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldID, id))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldEmail, v))
}

// APIKeyHash applies equality check predicate on the "api_key_hash" field. It's identical to APIKeyHashEQ.
func APIKeyHash(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldAPIKeyHash, v))
}

// PollIntervalMinutes applies equality check predicate on the "poll_interval_minutes" field. It's identical to PollIntervalMinutesEQ.
func PollIntervalMinutes(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldPollIntervalMinutes, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldCreatedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailIsNil applies the IsNil predicate on the "email" field.
func EmailIsNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldIsNull(FieldEmail))
}

// EmailNotNil applies the NotNil predicate on the "email" field.
func EmailNotNil() predicate.Tenant {
	return predicate.Tenant(sql.FieldNotNull(FieldEmail))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldEmail, v))
}

// APIKeyHashEQ applies the EQ predicate on the "api_key_hash" field.
func APIKeyHashEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldAPIKeyHash, v))
}

// APIKeyHashNEQ applies the NEQ predicate on the "api_key_hash" field.
func APIKeyHashNEQ(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldAPIKeyHash, v))
}

// APIKeyHashIn applies the In predicate on the "api_key_hash" field.
func APIKeyHashIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldAPIKeyHash, vs...))
}

// APIKeyHashNotIn applies the NotIn predicate on the "api_key_hash" field.
func APIKeyHashNotIn(vs ...string) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldAPIKeyHash, vs...))
}

// APIKeyHashGT applies the GT predicate on the "api_key_hash" field.
func APIKeyHashGT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldAPIKeyHash, v))
}

// APIKeyHashGTE applies the GTE predicate on the "api_key_hash" field.
func APIKeyHashGTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldAPIKeyHash, v))
}

// APIKeyHashLT applies the LT predicate on the "api_key_hash" field.
func APIKeyHashLT(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldAPIKeyHash, v))
}

// APIKeyHashLTE applies the LTE predicate on the "api_key_hash" field.
func APIKeyHashLTE(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldAPIKeyHash, v))
}

// APIKeyHashContains applies the Contains predicate on the "api_key_hash" field.
func APIKeyHashContains(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContains(FieldAPIKeyHash, v))
}

// APIKeyHashHasPrefix applies the HasPrefix predicate on the "api_key_hash" field.
func APIKeyHashHasPrefix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasPrefix(FieldAPIKeyHash, v))
}

// APIKeyHashHasSuffix applies the HasSuffix predicate on the "api_key_hash" field.
func APIKeyHashHasSuffix(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldHasSuffix(FieldAPIKeyHash, v))
}

// APIKeyHashEqualFold applies the EqualFold predicate on the "api_key_hash" field.
func APIKeyHashEqualFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldEqualFold(FieldAPIKeyHash, v))
}

// APIKeyHashContainsFold applies the ContainsFold predicate on the "api_key_hash" field.
func APIKeyHashContainsFold(v string) predicate.Tenant {
	return predicate.Tenant(sql.FieldContainsFold(FieldAPIKeyHash, v))
}

// PollIntervalMinutesEQ applies the EQ predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesEQ(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldPollIntervalMinutes, v))
}

// PollIntervalMinutesNEQ applies the NEQ predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesNEQ(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldPollIntervalMinutes, v))
}

// PollIntervalMinutesIn applies the In predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesIn(vs ...int) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldPollIntervalMinutes, vs...))
}

// PollIntervalMinutesNotIn applies the NotIn predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesNotIn(vs ...int) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldPollIntervalMinutes, vs...))
}

// PollIntervalMinutesGT applies the GT predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesGT(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldPollIntervalMinutes, v))
}

// PollIntervalMinutesGTE applies the GTE predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesGTE(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldPollIntervalMinutes, v))
}

// PollIntervalMinutesLT applies the LT predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesLT(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldPollIntervalMinutes, v))
}

// PollIntervalMinutesLTE applies the LTE predicate on the "poll_interval_minutes" field.
func PollIntervalMinutesLTE(v int) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldPollIntervalMinutes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Tenant {
	return predicate.Tenant(sql.FieldLTE(FieldCreatedAt, v))
}

// HasKeywordRules applies the HasEdge predicate on the "keyword_rules" edge.
func HasKeywordRules() predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, KeywordRulesTable, KeywordRulesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasKeywordRulesWith applies the HasEdge predicate on the "keyword_rules" edge with a given conditions (other predicates).
func HasKeywordRulesWith(preds ...predicate.KeywordRule) predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := newKeywordRulesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMonitoredCommunities applies the HasEdge predicate on the "monitored_communities" edge.
func HasMonitoredCommunities() predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MonitoredCommunitiesTable, MonitoredCommunitiesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMonitoredCommunitiesWith applies the HasEdge predicate on the "monitored_communities" edge with a given conditions (other predicates).
func HasMonitoredCommunitiesWith(preds ...predicate.MonitoredCommunity) predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := newMonitoredCommunitiesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWebhookEndpoints applies the HasEdge predicate on the "webhook_endpoints" edge.
func HasWebhookEndpoints() predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, WebhookEndpointsTable, WebhookEndpointsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWebhookEndpointsWith applies the HasEdge predicate on the "webhook_endpoints" edge with a given conditions (other predicates).
func HasWebhookEndpointsWith(preds ...predicate.WebhookEndpoint) predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := newWebhookEndpointsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMatches applies the HasEdge predicate on the "matches" edge.
func HasMatches() predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MatchesTable, MatchesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMatchesWith applies the HasEdge predicate on the "matches" edge with a given conditions (other predicates).
func HasMatchesWith(preds ...predicate.Match) predicate.Tenant {
	return predicate.Tenant(func(s *sql.Selector) {
		step := newMatchesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Tenant) predicate.Tenant {
	return predicate.Tenant(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Tenant) predicate.Tenant {
	return predicate.Tenant(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Tenant) predicate.Tenant {
	return predicate.Tenant(sql.NotPredicates(p))
}
