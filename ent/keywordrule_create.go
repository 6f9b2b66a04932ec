// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reddalert/reddalert/ent/keywordrule"
	"github.com/reddalert/reddalert/ent/match"
	"github.com/reddalert/reddalert/ent/tenant"
)

// KeywordRuleCreate is the builder for creating a KeywordRule entity.
type KeywordRuleCreate struct {
	config
	mutation *KeywordRuleMutation
	hooks    []Hook
}

// SetTenantID sets the "tenant_id" field.
func (_c *KeywordRuleCreate) SetTenantID(v string) *KeywordRuleCreate {
	_c.mutation.SetTenantID(v)
	return _c
}

// SetPhrases sets the "phrases" field.
func (_c *KeywordRuleCreate) SetPhrases(v []string) *KeywordRuleCreate {
	_c.mutation.SetPhrases(v)
	return _c
}

// SetExclusions sets the "exclusions" field.
func (_c *KeywordRuleCreate) SetExclusions(v []string) *KeywordRuleCreate {
	_c.mutation.SetExclusions(v)
	return _c
}

// SetProximityWindow sets the "proximity_window" field.
func (_c *KeywordRuleCreate) SetProximityWindow(v int) *KeywordRuleCreate {
	_c.mutation.SetProximityWindow(v)
	return _c
}

// SetNillableProximityWindow sets the "proximity_window" field if the given value is not nil.
func (_c *KeywordRuleCreate) SetNillableProximityWindow(v *int) *KeywordRuleCreate {
	if v != nil {
		_c.SetProximityWindow(*v)
	}
	return _c
}

// SetRequireOrder sets the "require_order" field.
func (_c *KeywordRuleCreate) SetRequireOrder(v bool) *KeywordRuleCreate {
	_c.mutation.SetRequireOrder(v)
	return _c
}

// SetNillableRequireOrder sets the "require_order" field if the given value is not nil.
func (_c *KeywordRuleCreate) SetNillableRequireOrder(v *bool) *KeywordRuleCreate {
	if v != nil {
		_c.SetRequireOrder(*v)
	}
	return _c
}

// SetUseStemming sets the "use_stemming" field.
func (_c *KeywordRuleCreate) SetUseStemming(v bool) *KeywordRuleCreate {
	_c.mutation.SetUseStemming(v)
	return _c
}

// SetNillableUseStemming sets the "use_stemming" field if the given value is not nil.
func (_c *KeywordRuleCreate) SetNillableUseStemming(v *bool) *KeywordRuleCreate {
	if v != nil {
		_c.SetUseStemming(*v)
	}
	return _c
}

// SetExclusionScope sets the "exclusion_scope" field.
func (_c *KeywordRuleCreate) SetExclusionScope(v keywordrule.ExclusionScope) *KeywordRuleCreate {
	_c.mutation.SetExclusionScope(v)
	return _c
}

// SetNillableExclusionScope sets the "exclusion_scope" field if the given value is not nil.
func (_c *KeywordRuleCreate) SetNillableExclusionScope(v *keywordrule.ExclusionScope) *KeywordRuleCreate {
	if v != nil {
		_c.SetExclusionScope(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *KeywordRuleCreate) SetIsActive(v bool) *KeywordRuleCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *KeywordRuleCreate) SetNillableIsActive(v *bool) *KeywordRuleCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetSilencedUntil sets the "silenced_until" field.
func (_c *KeywordRuleCreate) SetSilencedUntil(v time.Time) *KeywordRuleCreate {
	_c.mutation.SetSilencedUntil(v)
	return _c
}

// SetNillableSilencedUntil sets the "silenced_until" field if the given value is not nil.
func (_c *KeywordRuleCreate) SetNillableSilencedUntil(v *time.Time) *KeywordRuleCreate {
	if v != nil {
		_c.SetSilencedUntil(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *KeywordRuleCreate) SetCreatedAt(v time.Time) *KeywordRuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *KeywordRuleCreate) SetNillableCreatedAt(v *time.Time) *KeywordRuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *KeywordRuleCreate) SetID(v string) *KeywordRuleCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTenant sets the "tenant" edge to the Tenant entity.
func (_c *KeywordRuleCreate) SetTenant(v *Tenant) *KeywordRuleCreate {
	return _c.SetTenantID(v.ID)
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_c *KeywordRuleCreate) AddMatchIDs(ids ...string) *KeywordRuleCreate {
	_c.mutation.AddMatchIDs(ids...)
	return _c
}

// AddMatches adds the "matches" edges to the Match entity.
func (_c *KeywordRuleCreate) AddMatches(v ...*Match) *KeywordRuleCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMatchIDs(ids...)
}

// Mutation returns the KeywordRuleMutation object of the builder.
func (_c *KeywordRuleCreate) Mutation() *KeywordRuleMutation {
	return _c.mutation
}

// Save creates the KeywordRule in the database.
func (_c *KeywordRuleCreate) Save(ctx context.Context) (*KeywordRule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *KeywordRuleCreate) SaveX(ctx context.Context) *KeywordRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KeywordRuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KeywordRuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *KeywordRuleCreate) defaults() {
	if _, ok := _c.mutation.ProximityWindow(); !ok {
		v := keywordrule.DefaultProximityWindow
		_c.mutation.SetProximityWindow(v)
	}
	if _, ok := _c.mutation.RequireOrder(); !ok {
		v := keywordrule.DefaultRequireOrder
		_c.mutation.SetRequireOrder(v)
	}
	if _, ok := _c.mutation.UseStemming(); !ok {
		v := keywordrule.DefaultUseStemming
		_c.mutation.SetUseStemming(v)
	}
	if _, ok := _c.mutation.ExclusionScope(); !ok {
		v := keywordrule.DefaultExclusionScope
		_c.mutation.SetExclusionScope(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := keywordrule.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := keywordrule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *KeywordRuleCreate) check() error {
	if _, ok := _c.mutation.TenantID(); !ok {
		return &ValidationError{Name: "tenant_id", err: errors.New(`ent: missing required field "KeywordRule.tenant_id"`)}
	}
	if _, ok := _c.mutation.Phrases(); !ok {
		return &ValidationError{Name: "phrases", err: errors.New(`ent: missing required field "KeywordRule.phrases"`)}
	}
	if _, ok := _c.mutation.ProximityWindow(); !ok {
		return &ValidationError{Name: "proximity_window", err: errors.New(`ent: missing required field "KeywordRule.proximity_window"`)}
	}
	if v, ok := _c.mutation.ProximityWindow(); ok {
		if err := keywordrule.ProximityWindowValidator(v); err != nil {
			return &ValidationError{Name: "proximity_window", err: fmt.Errorf(`ent: validator failed for field "KeywordRule.proximity_window": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequireOrder(); !ok {
		return &ValidationError{Name: "require_order", err: errors.New(`ent: missing required field "KeywordRule.require_order"`)}
	}
	if _, ok := _c.mutation.UseStemming(); !ok {
		return &ValidationError{Name: "use_stemming", err: errors.New(`ent: missing required field "KeywordRule.use_stemming"`)}
	}
	if _, ok := _c.mutation.ExclusionScope(); !ok {
		return &ValidationError{Name: "exclusion_scope", err: errors.New(`ent: missing required field "KeywordRule.exclusion_scope"`)}
	}
	if v, ok := _c.mutation.ExclusionScope(); ok {
		if err := keywordrule.ExclusionScopeValidator(v); err != nil {
			return &ValidationError{Name: "exclusion_scope", err: fmt.Errorf(`ent: validator failed for field "KeywordRule.exclusion_scope": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "KeywordRule.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "KeywordRule.created_at"`)}
	}
	if len(_c.mutation.TenantIDs()) == 0 {
		return &ValidationError{Name: "tenant", err: errors.New(`ent: missing required edge "KeywordRule.tenant"`)}
	}
	return nil
}

func (_c *KeywordRuleCreate) sqlSave(ctx context.Context) (*KeywordRule, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected KeywordRule.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *KeywordRuleCreate) createSpec() (*KeywordRule, *sqlgraph.CreateSpec) {
	var (
		_node = &KeywordRule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(keywordrule.Table, sqlgraph.NewFieldSpec(keywordrule.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Phrases(); ok {
		_spec.SetField(keywordrule.FieldPhrases, field.TypeJSON, value)
		_node.Phrases = value
	}
	if value, ok := _c.mutation.Exclusions(); ok {
		_spec.SetField(keywordrule.FieldExclusions, field.TypeJSON, value)
		_node.Exclusions = value
	}
	if value, ok := _c.mutation.ProximityWindow(); ok {
		_spec.SetField(keywordrule.FieldProximityWindow, field.TypeInt, value)
		_node.ProximityWindow = value
	}
	if value, ok := _c.mutation.RequireOrder(); ok {
		_spec.SetField(keywordrule.FieldRequireOrder, field.TypeBool, value)
		_node.RequireOrder = value
	}
	if value, ok := _c.mutation.UseStemming(); ok {
		_spec.SetField(keywordrule.FieldUseStemming, field.TypeBool, value)
		_node.UseStemming = value
	}
	if value, ok := _c.mutation.ExclusionScope(); ok {
		_spec.SetField(keywordrule.FieldExclusionScope, field.TypeEnum, value)
		_node.ExclusionScope = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(keywordrule.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.SilencedUntil(); ok {
		_spec.SetField(keywordrule.FieldSilencedUntil, field.TypeTime, value)
		_node.SilencedUntil = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(keywordrule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TenantIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   keywordrule.TenantTable,
			Columns: []string{keywordrule.TenantColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tenant.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TenantID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// KeywordRuleCreateBulk is the builder for creating many KeywordRule entities in bulk.
type KeywordRuleCreateBulk struct {
	config
	err      error
	builders []*KeywordRuleCreate
}

// Save creates the KeywordRule entities in the database.
func (_c *KeywordRuleCreateBulk) Save(ctx context.Context) ([]*KeywordRule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*KeywordRule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*KeywordRuleMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *KeywordRuleCreateBulk) SaveX(ctx context.Context) []*KeywordRule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *KeywordRuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *KeywordRuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
