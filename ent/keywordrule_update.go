// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/reddalert/reddalert/ent/keywordrule"
	"github.com/reddalert/reddalert/ent/match"
	"github.com/reddalert/reddalert/ent/predicate"
)

// KeywordRuleUpdate is the builder for updating KeywordRule entities.
type KeywordRuleUpdate struct {
	config
	hooks    []Hook
	mutation *KeywordRuleMutation
}

// Where appends a list predicates to the KeywordRuleUpdate builder.
func (_u *KeywordRuleUpdate) Where(ps ...predicate.KeywordRule) *KeywordRuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPhrases sets the "phrases" field.
func (_u *KeywordRuleUpdate) SetPhrases(v []string) *KeywordRuleUpdate {
	_u.mutation.SetPhrases(v)
	return _u
}

// AppendPhrases appends value to the "phrases" field.
func (_u *KeywordRuleUpdate) AppendPhrases(v []string) *KeywordRuleUpdate {
	_u.mutation.AppendPhrases(v)
	return _u
}

// SetExclusions sets the "exclusions" field.
func (_u *KeywordRuleUpdate) SetExclusions(v []string) *KeywordRuleUpdate {
	_u.mutation.SetExclusions(v)
	return _u
}

// AppendExclusions appends value to the "exclusions" field.
func (_u *KeywordRuleUpdate) AppendExclusions(v []string) *KeywordRuleUpdate {
	_u.mutation.AppendExclusions(v)
	return _u
}

// ClearExclusions clears the value of the "exclusions" field.
func (_u *KeywordRuleUpdate) ClearExclusions() *KeywordRuleUpdate {
	_u.mutation.ClearExclusions()
	return _u
}

// SetProximityWindow sets the "proximity_window" field.
func (_u *KeywordRuleUpdate) SetProximityWindow(v int) *KeywordRuleUpdate {
	_u.mutation.ResetProximityWindow()
	_u.mutation.SetProximityWindow(v)
	return _u
}

// SetNillableProximityWindow sets the "proximity_window" field if the given value is not nil.
func (_u *KeywordRuleUpdate) SetNillableProximityWindow(v *int) *KeywordRuleUpdate {
	if v != nil {
		_u.SetProximityWindow(*v)
	}
	return _u
}

// AddProximityWindow adds value to the "proximity_window" field.
func (_u *KeywordRuleUpdate) AddProximityWindow(v int) *KeywordRuleUpdate {
	_u.mutation.AddProximityWindow(v)
	return _u
}

// SetRequireOrder sets the "require_order" field.
func (_u *KeywordRuleUpdate) SetRequireOrder(v bool) *KeywordRuleUpdate {
	_u.mutation.SetRequireOrder(v)
	return _u
}

// SetNillableRequireOrder sets the "require_order" field if the given value is not nil.
func (_u *KeywordRuleUpdate) SetNillableRequireOrder(v *bool) *KeywordRuleUpdate {
	if v != nil {
		_u.SetRequireOrder(*v)
	}
	return _u
}

// SetUseStemming sets the "use_stemming" field.
func (_u *KeywordRuleUpdate) SetUseStemming(v bool) *KeywordRuleUpdate {
	_u.mutation.SetUseStemming(v)
	return _u
}

// SetNillableUseStemming sets the "use_stemming" field if the given value is not nil.
func (_u *KeywordRuleUpdate) SetNillableUseStemming(v *bool) *KeywordRuleUpdate {
	if v != nil {
		_u.SetUseStemming(*v)
	}
	return _u
}

// SetExclusionScope sets the "exclusion_scope" field.
func (_u *KeywordRuleUpdate) SetExclusionScope(v keywordrule.ExclusionScope) *KeywordRuleUpdate {
	_u.mutation.SetExclusionScope(v)
	return _u
}

// SetNillableExclusionScope sets the "exclusion_scope" field if the given value is not nil.
func (_u *KeywordRuleUpdate) SetNillableExclusionScope(v *keywordrule.ExclusionScope) *KeywordRuleUpdate {
	if v != nil {
		_u.SetExclusionScope(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *KeywordRuleUpdate) SetIsActive(v bool) *KeywordRuleUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *KeywordRuleUpdate) SetNillableIsActive(v *bool) *KeywordRuleUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetSilencedUntil sets the "silenced_until" field.
func (_u *KeywordRuleUpdate) SetSilencedUntil(v time.Time) *KeywordRuleUpdate {
	_u.mutation.SetSilencedUntil(v)
	return _u
}

// SetNillableSilencedUntil sets the "silenced_until" field if the given value is not nil.
func (_u *KeywordRuleUpdate) SetNillableSilencedUntil(v *time.Time) *KeywordRuleUpdate {
	if v != nil {
		_u.SetSilencedUntil(*v)
	}
	return _u
}

// ClearSilencedUntil clears the value of the "silenced_until" field.
func (_u *KeywordRuleUpdate) ClearSilencedUntil() *KeywordRuleUpdate {
	_u.mutation.ClearSilencedUntil()
	return _u
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *KeywordRuleUpdate) AddMatchIDs(ids ...string) *KeywordRuleUpdate {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *KeywordRuleUpdate) AddMatches(v ...*Match) *KeywordRuleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// Mutation returns the KeywordRuleMutation object of the builder.
func (_u *KeywordRuleUpdate) Mutation() *KeywordRuleMutation {
	return _u.mutation
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *KeywordRuleUpdate) ClearMatches() *KeywordRuleUpdate {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *KeywordRuleUpdate) RemoveMatchIDs(ids ...string) *KeywordRuleUpdate {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *KeywordRuleUpdate) RemoveMatches(v ...*Match) *KeywordRuleUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *KeywordRuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KeywordRuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *KeywordRuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KeywordRuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KeywordRuleUpdate) check() error {
	if v, ok := _u.mutation.ProximityWindow(); ok {
		if err := keywordrule.ProximityWindowValidator(v); err != nil {
			return &ValidationError{Name: "proximity_window", err: fmt.Errorf(`ent: validator failed for field "KeywordRule.proximity_window": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExclusionScope(); ok {
		if err := keywordrule.ExclusionScopeValidator(v); err != nil {
			return &ValidationError{Name: "exclusion_scope", err: fmt.Errorf(`ent: validator failed for field "KeywordRule.exclusion_scope": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KeywordRule.tenant"`)
	}
	return nil
}

func (_u *KeywordRuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(keywordrule.Table, keywordrule.Columns, sqlgraph.NewFieldSpec(keywordrule.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phrases(); ok {
		_spec.SetField(keywordrule.FieldPhrases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhrases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, keywordrule.FieldPhrases, value)
		})
	}
	if value, ok := _u.mutation.Exclusions(); ok {
		_spec.SetField(keywordrule.FieldExclusions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExclusions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, keywordrule.FieldExclusions, value)
		})
	}
	if _u.mutation.ExclusionsCleared() {
		_spec.ClearField(keywordrule.FieldExclusions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProximityWindow(); ok {
		_spec.SetField(keywordrule.FieldProximityWindow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProximityWindow(); ok {
		_spec.AddField(keywordrule.FieldProximityWindow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequireOrder(); ok {
		_spec.SetField(keywordrule.FieldRequireOrder, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UseStemming(); ok {
		_spec.SetField(keywordrule.FieldUseStemming, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExclusionScope(); ok {
		_spec.SetField(keywordrule.FieldExclusionScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(keywordrule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SilencedUntil(); ok {
		_spec.SetField(keywordrule.FieldSilencedUntil, field.TypeTime, value)
	}
	if _u.mutation.SilencedUntilCleared() {
		_spec.ClearField(keywordrule.FieldSilencedUntil, field.TypeTime)
	}
	if _u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   keywordrule.MatchesTable,
			Columns: []string{keywordrule.MatchesColumn},
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
			Table:   keywordrule.MatchesTable,
			Columns: []string{keywordrule.MatchesColumn},
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
			Table:   keywordrule.MatchesTable,
			Columns: []string{keywordrule.MatchesColumn},
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
			err = &NotFoundError{keywordrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// KeywordRuleUpdateOne is the builder for updating a single KeywordRule entity.
type KeywordRuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *KeywordRuleMutation
}

// SetPhrases sets the "phrases" field.
func (_u *KeywordRuleUpdateOne) SetPhrases(v []string) *KeywordRuleUpdateOne {
	_u.mutation.SetPhrases(v)
	return _u
}

// AppendPhrases appends value to the "phrases" field.
func (_u *KeywordRuleUpdateOne) AppendPhrases(v []string) *KeywordRuleUpdateOne {
	_u.mutation.AppendPhrases(v)
	return _u
}

// SetExclusions sets the "exclusions" field.
func (_u *KeywordRuleUpdateOne) SetExclusions(v []string) *KeywordRuleUpdateOne {
	_u.mutation.SetExclusions(v)
	return _u
}

// AppendExclusions appends value to the "exclusions" field.
func (_u *KeywordRuleUpdateOne) AppendExclusions(v []string) *KeywordRuleUpdateOne {
	_u.mutation.AppendExclusions(v)
	return _u
}

// ClearExclusions clears the value of the "exclusions" field.
func (_u *KeywordRuleUpdateOne) ClearExclusions() *KeywordRuleUpdateOne {
	_u.mutation.ClearExclusions()
	return _u
}

// SetProximityWindow sets the "proximity_window" field.
func (_u *KeywordRuleUpdateOne) SetProximityWindow(v int) *KeywordRuleUpdateOne {
	_u.mutation.ResetProximityWindow()
	_u.mutation.SetProximityWindow(v)
	return _u
}

// SetNillableProximityWindow sets the "proximity_window" field if the given value is not nil.
func (_u *KeywordRuleUpdateOne) SetNillableProximityWindow(v *int) *KeywordRuleUpdateOne {
	if v != nil {
		_u.SetProximityWindow(*v)
	}
	return _u
}

// AddProximityWindow adds value to the "proximity_window" field.
func (_u *KeywordRuleUpdateOne) AddProximityWindow(v int) *KeywordRuleUpdateOne {
	_u.mutation.AddProximityWindow(v)
	return _u
}

// SetRequireOrder sets the "require_order" field.
func (_u *KeywordRuleUpdateOne) SetRequireOrder(v bool) *KeywordRuleUpdateOne {
	_u.mutation.SetRequireOrder(v)
	return _u
}

// SetNillableRequireOrder sets the "require_order" field if the given value is not nil.
func (_u *KeywordRuleUpdateOne) SetNillableRequireOrder(v *bool) *KeywordRuleUpdateOne {
	if v != nil {
		_u.SetRequireOrder(*v)
	}
	return _u
}

// SetUseStemming sets the "use_stemming" field.
func (_u *KeywordRuleUpdateOne) SetUseStemming(v bool) *KeywordRuleUpdateOne {
	_u.mutation.SetUseStemming(v)
	return _u
}

// SetNillableUseStemming sets the "use_stemming" field if the given value is not nil.
func (_u *KeywordRuleUpdateOne) SetNillableUseStemming(v *bool) *KeywordRuleUpdateOne {
	if v != nil {
		_u.SetUseStemming(*v)
	}
	return _u
}

// SetExclusionScope sets the "exclusion_scope" field.
func (_u *KeywordRuleUpdateOne) SetExclusionScope(v keywordrule.ExclusionScope) *KeywordRuleUpdateOne {
	_u.mutation.SetExclusionScope(v)
	return _u
}

// SetNillableExclusionScope sets the "exclusion_scope" field if the given value is not nil.
func (_u *KeywordRuleUpdateOne) SetNillableExclusionScope(v *keywordrule.ExclusionScope) *KeywordRuleUpdateOne {
	if v != nil {
		_u.SetExclusionScope(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *KeywordRuleUpdateOne) SetIsActive(v bool) *KeywordRuleUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *KeywordRuleUpdateOne) SetNillableIsActive(v *bool) *KeywordRuleUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetSilencedUntil sets the "silenced_until" field.
func (_u *KeywordRuleUpdateOne) SetSilencedUntil(v time.Time) *KeywordRuleUpdateOne {
	_u.mutation.SetSilencedUntil(v)
	return _u
}

// SetNillableSilencedUntil sets the "silenced_until" field if the given value is not nil.
func (_u *KeywordRuleUpdateOne) SetNillableSilencedUntil(v *time.Time) *KeywordRuleUpdateOne {
	if v != nil {
		_u.SetSilencedUntil(*v)
	}
	return _u
}

// ClearSilencedUntil clears the value of the "silenced_until" field.
func (_u *KeywordRuleUpdateOne) ClearSilencedUntil() *KeywordRuleUpdateOne {
	_u.mutation.ClearSilencedUntil()
	return _u
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_u *KeywordRuleUpdateOne) AddMatchIDs(ids ...string) *KeywordRuleUpdateOne {
	_u.mutation.AddMatchIDs(ids...)
	return _u
}

// AddMatches adds the "matches" edges to the Match entity.
func (_u *KeywordRuleUpdateOne) AddMatches(v ...*Match) *KeywordRuleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMatchIDs(ids...)
}

// Mutation returns the KeywordRuleMutation object of the builder.
func (_u *KeywordRuleUpdateOne) Mutation() *KeywordRuleMutation {
	return _u.mutation
}

// ClearMatches clears all "matches" edges to the Match entity.
func (_u *KeywordRuleUpdateOne) ClearMatches() *KeywordRuleUpdateOne {
	_u.mutation.ClearMatches()
	return _u
}

// RemoveMatchIDs removes the "matches" edge to Match entities by IDs.
func (_u *KeywordRuleUpdateOne) RemoveMatchIDs(ids ...string) *KeywordRuleUpdateOne {
	_u.mutation.RemoveMatchIDs(ids...)
	return _u
}

// RemoveMatches removes "matches" edges to Match entities.
func (_u *KeywordRuleUpdateOne) RemoveMatches(v ...*Match) *KeywordRuleUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMatchIDs(ids...)
}

// Where appends a list predicates to the KeywordRuleUpdate builder.
func (_u *KeywordRuleUpdateOne) Where(ps ...predicate.KeywordRule) *KeywordRuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *KeywordRuleUpdateOne) Select(field string, fields ...string) *KeywordRuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated KeywordRule entity.
func (_u *KeywordRuleUpdateOne) Save(ctx context.Context) (*KeywordRule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *KeywordRuleUpdateOne) SaveX(ctx context.Context) *KeywordRule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *KeywordRuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *KeywordRuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *KeywordRuleUpdateOne) check() error {
	if v, ok := _u.mutation.ProximityWindow(); ok {
		if err := keywordrule.ProximityWindowValidator(v); err != nil {
			return &ValidationError{Name: "proximity_window", err: fmt.Errorf(`ent: validator failed for field "KeywordRule.proximity_window": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExclusionScope(); ok {
		if err := keywordrule.ExclusionScopeValidator(v); err != nil {
			return &ValidationError{Name: "exclusion_scope", err: fmt.Errorf(`ent: validator failed for field "KeywordRule.exclusion_scope": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "KeywordRule.tenant"`)
	}
	return nil
}

func (_u *KeywordRuleUpdateOne) sqlSave(ctx context.Context) (_node *KeywordRule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(keywordrule.Table, keywordrule.Columns, sqlgraph.NewFieldSpec(keywordrule.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "KeywordRule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, keywordrule.FieldID)
		for _, f := range fields {
			if !keywordrule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != keywordrule.FieldID {
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
	if value, ok := _u.mutation.Phrases(); ok {
		_spec.SetField(keywordrule.FieldPhrases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPhrases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, keywordrule.FieldPhrases, value)
		})
	}
	if value, ok := _u.mutation.Exclusions(); ok {
		_spec.SetField(keywordrule.FieldExclusions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedExclusions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, keywordrule.FieldExclusions, value)
		})
	}
	if _u.mutation.ExclusionsCleared() {
		_spec.ClearField(keywordrule.FieldExclusions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ProximityWindow(); ok {
		_spec.SetField(keywordrule.FieldProximityWindow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProximityWindow(); ok {
		_spec.AddField(keywordrule.FieldProximityWindow, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequireOrder(); ok {
		_spec.SetField(keywordrule.FieldRequireOrder, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UseStemming(); ok {
		_spec.SetField(keywordrule.FieldUseStemming, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ExclusionScope(); ok {
		_spec.SetField(keywordrule.FieldExclusionScope, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(keywordrule.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SilencedUntil(); ok {
		_spec.SetField(keywordrule.FieldSilencedUntil, field.TypeTime, value)
	}
	if _u.mutation.SilencedUntilCleared() {
		_spec.ClearField(keywordrule.FieldSilencedUntil, field.TypeTime)
	}
	if _u.mutation.MatchesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   keywordrule.MatchesTable,
			Columns: []string{keywordrule.MatchesColumn},
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
			Table:   keywordrule.MatchesTable,
			Columns: []string{keywordrule.MatchesColumn},
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
			Table:   keywordrule.MatchesTable,
			Columns: []string{keywordrule.MatchesColumn},
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
	_node = &KeywordRule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{keywordrule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
