// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reddalert/reddalert/ent/keywordrule"
	"github.com/reddalert/reddalert/ent/match"
	"github.com/reddalert/reddalert/ent/monitoredcommunity"
	"github.com/reddalert/reddalert/ent/predicate"
	"github.com/reddalert/reddalert/ent/tenant"
	"github.com/reddalert/reddalert/ent/webhookendpoint"
)

// TenantUpdate is the builder for updating Tenant entities.
type TenantUpdate struct {
	config
	hooks    []Hook
	mutation *TenantMutation
}

// Where appends a list predicates to the TenantUpdate builder.
func (_u *TenantUpdate) Where(ps ...predicate.Tenant) *TenantUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *TenantUpdate) SetEmail(v string) *TenantUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableEmail(v *string) *TenantUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *TenantUpdate) ClearEmail() *TenantUpdate {
	_u.mutation.ClearEmail()
	return _u
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_u *TenantUpdate) SetAPIKeyHash(v string) *TenantUpdate {
	_u.mutation.SetAPIKeyHash(v)
	return _u
}

// SetNillableAPIKeyHash sets the "api_key_hash" field if the given value is not nil.
func (_u *TenantUpdate) SetNillableAPIKeyHash(v *string) *TenantUpdate {
	if v != nil {
		_u.SetAPIKeyHash(*v)
	}
	return _u
}

// SetPollIntervalMinutes sets the "poll_interval_minutes" field.
func (_u *TenantUpdate) SetPollIntervalMinutes(v int) *TenantUpdate {
	_u.mutation.ResetPollIntervalMinutes()
	_u.mutation.SetPollIntervalMinutes(v)
	return _u
}

// SetNillablePollIntervalMinutes sets the "poll_interval_minutes" field if the given value is not nil.
func (_u *TenantUpdate) SetNillablePollIntervalMinutes(v *int) *TenantUpdate {
	if v != nil {
		_u.SetPollIntervalMinutes(*v)
	}
	return _u
}

// AddPollIntervalMinutes adds value to the "poll_interval_minutes" field.
func (_u *TenantUpdate) AddPollIntervalMinutes(v int) *TenantUpdate {
	_u.mutation.AddPollIntervalMinutes(v)
	return _u
}

// AddKeywordRuleIDs adds the "keyword_rules" edge to the KeywordRule entity by IDs.
func (_u *TenantUpdate) AddKeywordRuleIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddKeywordRuleIDs(ids...)
	return _u
}

// AddKeywordRules adds the "keyword_rules" edges to the KeywordRule entity.
func (_u *TenantUpdate) AddKeywordRules(v ...*KeywordRule) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKeywordRuleIDs(ids...)
}

// AddMonitoredCommunityIDs adds the "monitored_communities" edge to the MonitoredCommunity entity by IDs.
func (_u *TenantUpdate) AddMonitoredCommunityIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddMonitoredCommunityIDs(ids...)
	return _u
}

// AddMonitoredCommunities adds the "monitored_communities" edges to the MonitoredCommunity entity.
func (_u *TenantUpdate) AddMonitoredCommunities(v ...*MonitoredCommunity) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMonitoredCommunityIDs(ids...)
}

// AddWebhookEndpointIDs adds the "webhook_endpoints" edge to the WebhookEndpoint entity by IDs.
func (_u *TenantUpdate) AddWebhookEndpointIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddWebhookEndpointIDs(ids...)
	return _u
}

// AddWebhookEndpoints adds the "webhook_endpoints" edges to the WebhookEndpoint entity.
func (_u *TenantUpdate) AddWebhookEndpoints(v ...*WebhookEndpoint) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWebhookEndpointIDs(ids...)
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *TenantUpdate) AddMatchIDs(ids ...string) *TenantUpdate {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *TenantUpdate) AddMatches(v ...*Match) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// Mutation returns the TenantMutation object of the builder.
func (_u *TenantUpdate) Mutation() *TenantMutation {
	return _u.mutation
}

// ClearKeywordRules clears all "keyword_rules" edges to the KeywordRule entity.
func (_u *TenantUpdate) ClearKeywordRules() *TenantUpdate {
	_u.mutation.ClearKeywordRules()
	return _u
}

// RemoveKeywordRuleIDs removes the "keyword_rules" edge to KeywordRule entities by IDs.
func (_u *TenantUpdate) RemoveKeywordRuleIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveKeywordRuleIDs(ids...)
	return _u
}

// RemoveKeywordRules removes "keyword_rules" edges to KeywordRule entities.
func (_u *TenantUpdate) RemoveKeywordRules(v ...*KeywordRule) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKeywordRuleIDs(ids...)
}

// ClearMonitoredCommunities clears all "monitored_communities" edges to the MonitoredCommunity entity.
func (_u *TenantUpdate) ClearMonitoredCommunities() *TenantUpdate {
	_u.mutation.ClearMonitoredCommunities()
	return _u
}

// RemoveMonitoredCommunityIDs removes the "monitored_communities" edge to MonitoredCommunity entities by IDs.
func (_u *TenantUpdate) RemoveMonitoredCommunityIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveMonitoredCommunityIDs(ids...)
	return _u
}

// RemoveMonitoredCommunities removes "monitored_communities" edges to MonitoredCommunity entities.
func (_u *TenantUpdate) RemoveMonitoredCommunities(v ...*MonitoredCommunity) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMonitoredCommunityIDs(ids...)
}

// ClearWebhookEndpoints clears all "webhook_endpoints" edges to the WebhookEndpoint entity.
func (_u *TenantUpdate) ClearWebhookEndpoints() *TenantUpdate {
	_u.mutation.ClearWebhookEndpoints()
	return _u
}

// RemoveWebhookEndpointIDs removes the "webhook_endpoints" edge to WebhookEndpoint entities by IDs.
func (_u *TenantUpdate) RemoveWebhookEndpointIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveWebhookEndpointIDs(ids...)
	return _u
}

// RemoveWebhookEndpoints removes "webhook_endpoints" edges to WebhookEndpoint entities.
func (_u *TenantUpdate) RemoveWebhookEndpoints(v ...*WebhookEndpoint) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWebhookEndpointIDs(ids...)
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *TenantUpdate) ClearMatches() *TenantUpdate {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *TenantUpdate) RemoveMatchIDs(ids ...string) *TenantUpdate {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *TenantUpdate) RemoveMatches(v ...*Match) *TenantUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TenantUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TenantUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TenantUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(tenant.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(tenant.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.APIKeyHash(); ok {
		_spec.SetField(tenant.FieldAPIKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.PollIntervalMinutes(); ok {
		_spec.SetField(tenant.FieldPollIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPollIntervalMinutes(); ok {
		_spec.AddField(tenant.FieldPollIntervalMinutes, field.TypeInt, value)
	}
	if _u.mutation.KeywordRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.KeywordRulesTable,
			Columns: []string{tenant.KeywordRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(keywordrule.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKeywordRulesIDs(); len(nodes) > 0 && !_u.mutation.KeywordRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.KeywordRulesTable,
			Columns: []string{tenant.KeywordRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(keywordrule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KeywordRulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.KeywordRulesTable,
			Columns: []string{tenant.KeywordRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(keywordrule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MonitoredCommunitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MonitoredCommunitiesTable,
			Columns: []string{tenant.MonitoredCommunitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoredcommunity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMonitoredCommunitiesIDs(); len(nodes) > 0 && !_u.mutation.MonitoredCommunitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MonitoredCommunitiesTable,
			Columns: []string{tenant.MonitoredCommunitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoredcommunity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MonitoredCommunitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MonitoredCommunitiesTable,
			Columns: []string{tenant.MonitoredCommunitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoredcommunity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WebhookEndpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.WebhookEndpointsTable,
			Columns: []string{tenant.WebhookEndpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWebhookEndpointsIDs(); len(nodes) > 0 && !_u.mutation.WebhookEndpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.WebhookEndpointsTable,
			Columns: []string{tenant.WebhookEndpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WebhookEndpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.WebhookEndpointsTable,
			Columns: []string{tenant.WebhookEndpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MatchesTable,
			Columns: []string{tenant.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchesIDs(); len(nodes) > 0 && !_u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MatchesTable,
			Columns: []string{tenant.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MatchesTable,
			Columns: []string{tenant.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TenantUpdateOne is the builder for updating a single Tenant entity.
type TenantUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TenantMutation
}

// SetEmail sets the "email" field.
func (_u *TenantUpdateOne) SetEmail(v string) *TenantUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableEmail(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// ClearEmail clears the value of the "email" field.
func (_u *TenantUpdateOne) ClearEmail() *TenantUpdateOne {
	_u.mutation.ClearEmail()
	return _u
}

// SetAPIKeyHash sets the "api_key_hash" field.
func (_u *TenantUpdateOne) SetAPIKeyHash(v string) *TenantUpdateOne {
	_u.mutation.SetAPIKeyHash(v)
	return _u
}

// SetNillableAPIKeyHash sets the "api_key_hash" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillableAPIKeyHash(v *string) *TenantUpdateOne {
	if v != nil {
		_u.SetAPIKeyHash(*v)
	}
	return _u
}

// SetPollIntervalMinutes sets the "poll_interval_minutes" field.
func (_u *TenantUpdateOne) SetPollIntervalMinutes(v int) *TenantUpdateOne {
	_u.mutation.ResetPollIntervalMinutes()
	_u.mutation.SetPollIntervalMinutes(v)
	return _u
}

// SetNillablePollIntervalMinutes sets the "poll_interval_minutes" field if the given value is not nil.
func (_u *TenantUpdateOne) SetNillablePollIntervalMinutes(v *int) *TenantUpdateOne {
	if v != nil {
		_u.SetPollIntervalMinutes(*v)
	}
	return _u
}

// AddPollIntervalMinutes adds value to the "poll_interval_minutes" field.
func (_u *TenantUpdateOne) AddPollIntervalMinutes(v int) *TenantUpdateOne {
	_u.mutation.AddPollIntervalMinutes(v)
	return _u
}

// AddKeywordRuleIDs adds the "keyword_rules" edge to the KeywordRule entity by IDs.
func (_u *TenantUpdateOne) AddKeywordRuleIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddKeywordRuleIDs(ids...)
	return _u
}

// AddKeywordRules adds the "keyword_rules" edges to the KeywordRule entity.
func (_u *TenantUpdateOne) AddKeywordRules(v ...*KeywordRule) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddKeywordRuleIDs(ids...)
}

// AddMonitoredCommunityIDs adds the "monitored_communities" edge to the MonitoredCommunity entity by IDs.
func (_u *TenantUpdateOne) AddMonitoredCommunityIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddMonitoredCommunityIDs(ids...)
	return _u
}

// AddMonitoredCommunities adds the "monitored_communities" edges to the MonitoredCommunity entity.
func (_u *TenantUpdateOne) AddMonitoredCommunities(v ...*MonitoredCommunity) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMonitoredCommunityIDs(ids...)
}

// AddWebhookEndpointIDs adds the "webhook_endpoints" edge to the WebhookEndpoint entity by IDs.
func (_u *TenantUpdateOne) AddWebhookEndpointIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddWebhookEndpointIDs(ids...)
	return _u
}

// AddWebhookEndpoints adds the "webhook_endpoints" edges to the WebhookEndpoint entity.
func (_u *TenantUpdateOne) AddWebhookEndpoints(v ...*WebhookEndpoint) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddWebhookEndpointIDs(ids...)
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *TenantUpdateOne) AddMatchIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *TenantUpdateOne) AddMatches(v ...*Match) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// Mutation returns the TenantMutation object of the builder.
func (_u *TenantUpdateOne) Mutation() *TenantMutation {
	return _u.mutation
}

// ClearKeywordRules clears all "keyword_rules" edges to the KeywordRule entity.
func (_u *TenantUpdateOne) ClearKeywordRules() *TenantUpdateOne {
	_u.mutation.ClearKeywordRules()
	return _u
}

// RemoveKeywordRuleIDs removes the "keyword_rules" edge to KeywordRule entities by IDs.
func (_u *TenantUpdateOne) RemoveKeywordRuleIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveKeywordRuleIDs(ids...)
	return _u
}

// RemoveKeywordRules removes "keyword_rules" edges to KeywordRule entities.
func (_u *TenantUpdateOne) RemoveKeywordRules(v ...*KeywordRule) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveKeywordRuleIDs(ids...)
}

// ClearMonitoredCommunities clears all "monitored_communities" edges to the MonitoredCommunity entity.
func (_u *TenantUpdateOne) ClearMonitoredCommunities() *TenantUpdateOne {
	_u.mutation.ClearMonitoredCommunities()
	return _u
}

// RemoveMonitoredCommunityIDs removes the "monitored_communities" edge to MonitoredCommunity entities by IDs.
func (_u *TenantUpdateOne) RemoveMonitoredCommunityIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveMonitoredCommunityIDs(ids...)
	return _u
}

// RemoveMonitoredCommunities removes "monitored_communities" edges to MonitoredCommunity entities.
func (_u *TenantUpdateOne) RemoveMonitoredCommunities(v ...*MonitoredCommunity) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMonitoredCommunityIDs(ids...)
}

// ClearWebhookEndpoints clears all "webhook_endpoints" edges to the WebhookEndpoint entity.
func (_u *TenantUpdateOne) ClearWebhookEndpoints() *TenantUpdateOne {
	_u.mutation.ClearWebhookEndpoints()
	return _u
}

// RemoveWebhookEndpointIDs removes the "webhook_endpoints" edge to WebhookEndpoint entities by IDs.
func (_u *TenantUpdateOne) RemoveWebhookEndpointIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveWebhookEndpointIDs(ids...)
	return _u
}

// RemoveWebhookEndpoints removes "webhook_endpoints" edges to WebhookEndpoint entities.
func (_u *TenantUpdateOne) RemoveWebhookEndpoints(v ...*WebhookEndpoint) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveWebhookEndpointIDs(ids...)
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *TenantUpdateOne) ClearMatches() *TenantUpdateOne {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *TenantUpdateOne) RemoveMatchIDs(ids ...string) *TenantUpdateOne {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *TenantUpdateOne) RemoveMatches(v ...*Match) *TenantUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// Where appends a list predicates to the TenantUpdate builder.
func (_u *TenantUpdateOne) Where(ps ...predicate.Tenant) *TenantUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TenantUpdateOne) Select(field string, fields ...string) *TenantUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Tenant entity.
func (_u *TenantUpdateOne) Save(ctx context.Context) (*Tenant, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TenantUpdateOne) SaveX(ctx context.Context) *Tenant {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TenantUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TenantUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TenantUpdateOne) sqlSave(ctx context.Context) (_node *Tenant, err error) {
	_spec := sqlgraph.NewUpdateSpec(tenant.Table, tenant.Columns, sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Tenant.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tenant.FieldID)
		for _, f := range fields {
			if !tenant.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tenant.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(tenant.FieldEmail, field.TypeString, value)
	}
	if _u.mutation.EmailCleared() {
		_spec.ClearField(tenant.FieldEmail, field.TypeString)
	}
	if value, ok := _u.mutation.APIKeyHash(); ok {
		_spec.SetField(tenant.FieldAPIKeyHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.PollIntervalMinutes(); ok {
		_spec.SetField(tenant.FieldPollIntervalMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPollIntervalMinutes(); ok {
		_spec.AddField(tenant.FieldPollIntervalMinutes, field.TypeInt, value)
	}
	if _u.mutation.KeywordRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.KeywordRulesTable,
			Columns: []string{tenant.KeywordRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(keywordrule.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedKeywordRulesIDs(); len(nodes) > 0 && !_u.mutation.KeywordRulesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.KeywordRulesTable,
			Columns: []string{tenant.KeywordRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(keywordrule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.KeywordRulesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.KeywordRulesTable,
			Columns: []string{tenant.KeywordRulesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(keywordrule.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MonitoredCommunitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MonitoredCommunitiesTable,
			Columns: []string{tenant.MonitoredCommunitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoredcommunity.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMonitoredCommunitiesIDs(); len(nodes) > 0 && !_u.mutation.MonitoredCommunitiesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MonitoredCommunitiesTable,
			Columns: []string{tenant.MonitoredCommunitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoredcommunity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MonitoredCommunitiesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MonitoredCommunitiesTable,
			Columns: []string{tenant.MonitoredCommunitiesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(monitoredcommunity.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WebhookEndpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.WebhookEndpointsTable,
			Columns: []string{tenant.WebhookEndpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedWebhookEndpointsIDs(); len(nodes) > 0 && !_u.mutation.WebhookEndpointsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.WebhookEndpointsTable,
			Columns: []string{tenant.WebhookEndpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WebhookEndpointsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.WebhookEndpointsTable,
			Columns: []string{tenant.WebhookEndpointsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MatchesTable,
			Columns: []string{tenant.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMatchesIDs(); len(nodes) > 0 && !_u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MatchesTable,
			Columns: []string{tenant.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   tenant.MatchesTable,
			Columns: []string{tenant.MatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(match.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Tenant{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tenant.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
