// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reddalert/reddalert/ent/predicate"
	"github.com/reddalert/reddalert/ent/webhookendpoint"
)

// WebhookEndpointUpdate is the builder for updating WebhookEndpoint entities.
type WebhookEndpointUpdate struct {
	config
	hooks    []Hook
	mutation *WebhookEndpointMutation
}

// Where appends a list predicates to the WebhookEndpointUpdate builder.
func (_u *WebhookEndpointUpdate) Where(ps ...predicate.WebhookEndpoint) *WebhookEndpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *WebhookEndpointUpdate) SetURL(v string) *WebhookEndpointUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableURL(v *string) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetGuildName sets the "guild_name" field.
func (_u *WebhookEndpointUpdate) SetGuildName(v string) *WebhookEndpointUpdate {
	_u.mutation.SetGuildName(v)
	return _u
}

// SetNillableGuildName sets the "guild_name" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableGuildName(v *string) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetGuildName(*v)
	}
	return _u
}

// ClearGuildName clears the value of the "guild_name" field.
func (_u *WebhookEndpointUpdate) ClearGuildName() *WebhookEndpointUpdate {
	_u.mutation.ClearGuildName()
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *WebhookEndpointUpdate) SetIsPrimary(v bool) *WebhookEndpointUpdate {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableIsPrimary(v *bool) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WebhookEndpointUpdate) SetIsActive(v bool) *WebhookEndpointUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableIsActive(v *bool) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastTestedAt sets the "last_tested_at" field.
func (_u *WebhookEndpointUpdate) SetLastTestedAt(v time.Time) *WebhookEndpointUpdate {
	_u.mutation.SetLastTestedAt(v)
	return _u
}

// SetNillableLastTestedAt sets the "last_tested_at" field if the given value is not nil.
func (_u *WebhookEndpointUpdate) SetNillableLastTestedAt(v *time.Time) *WebhookEndpointUpdate {
	if v != nil {
		_u.SetLastTestedAt(*v)
	}
	return _u
}

// ClearLastTestedAt clears the value of the "last_tested_at" field.
func (_u *WebhookEndpointUpdate) ClearLastTestedAt() *WebhookEndpointUpdate {
	_u.mutation.ClearLastTestedAt()
	return _u
}

// Mutation returns the WebhookEndpointMutation object of the builder.
func (_u *WebhookEndpointUpdate) Mutation() *WebhookEndpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WebhookEndpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEndpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WebhookEndpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEndpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookEndpointUpdate) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookEndpoint.tenant"`)
	}
	return nil
}

func (_u *WebhookEndpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookendpoint.Table, webhookendpoint.Columns, sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhookendpoint.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.GuildName(); ok {
		_spec.SetField(webhookendpoint.FieldGuildName, field.TypeString, value)
	}
	if _u.mutation.GuildNameCleared() {
		_spec.ClearField(webhookendpoint.FieldGuildName, field.TypeString)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(webhookendpoint.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(webhookendpoint.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastTestedAt(); ok {
		_spec.SetField(webhookendpoint.FieldLastTestedAt, field.TypeTime, value)
	}
	if _u.mutation.LastTestedAtCleared() {
		_spec.ClearField(webhookendpoint.FieldLastTestedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookendpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WebhookEndpointUpdateOne is the builder for updating a single WebhookEndpoint entity.
type WebhookEndpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WebhookEndpointMutation
}

// SetURL sets the "url" field.
func (_u *WebhookEndpointUpdateOne) SetURL(v string) *WebhookEndpointUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableURL(v *string) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// SetGuildName sets the "guild_name" field.
func (_u *WebhookEndpointUpdateOne) SetGuildName(v string) *WebhookEndpointUpdateOne {
	_u.mutation.SetGuildName(v)
	return _u
}

// SetNillableGuildName sets the "guild_name" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableGuildName(v *string) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetGuildName(*v)
	}
	return _u
}

// ClearGuildName clears the value of the "guild_name" field.
func (_u *WebhookEndpointUpdateOne) ClearGuildName() *WebhookEndpointUpdateOne {
	_u.mutation.ClearGuildName()
	return _u
}

// SetIsPrimary sets the "is_primary" field.
func (_u *WebhookEndpointUpdateOne) SetIsPrimary(v bool) *WebhookEndpointUpdateOne {
	_u.mutation.SetIsPrimary(v)
	return _u
}

// SetNillableIsPrimary sets the "is_primary" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableIsPrimary(v *bool) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetIsPrimary(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *WebhookEndpointUpdateOne) SetIsActive(v bool) *WebhookEndpointUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableIsActive(v *bool) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetLastTestedAt sets the "last_tested_at" field.
func (_u *WebhookEndpointUpdateOne) SetLastTestedAt(v time.Time) *WebhookEndpointUpdateOne {
	_u.mutation.SetLastTestedAt(v)
	return _u
}

// SetNillableLastTestedAt sets the "last_tested_at" field if the given value is not nil.
func (_u *WebhookEndpointUpdateOne) SetNillableLastTestedAt(v *time.Time) *WebhookEndpointUpdateOne {
	if v != nil {
		_u.SetLastTestedAt(*v)
	}
	return _u
}

// ClearLastTestedAt clears the value of the "last_tested_at" field.
func (_u *WebhookEndpointUpdateOne) ClearLastTestedAt() *WebhookEndpointUpdateOne {
	_u.mutation.ClearLastTestedAt()
	return _u
}

// Mutation returns the WebhookEndpointMutation object of the builder.
func (_u *WebhookEndpointUpdateOne) Mutation() *WebhookEndpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the WebhookEndpointUpdate builder.
func (_u *WebhookEndpointUpdateOne) Where(ps ...predicate.WebhookEndpoint) *WebhookEndpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WebhookEndpointUpdateOne) Select(field string, fields ...string) *WebhookEndpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WebhookEndpoint entity.
func (_u *WebhookEndpointUpdateOne) Save(ctx context.Context) (*WebhookEndpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WebhookEndpointUpdateOne) SaveX(ctx context.Context) *WebhookEndpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WebhookEndpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WebhookEndpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WebhookEndpointUpdateOne) check() error {
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "WebhookEndpoint.tenant"`)
	}
	return nil
}

func (_u *WebhookEndpointUpdateOne) sqlSave(ctx context.Context) (_node *WebhookEndpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(webhookendpoint.Table, webhookendpoint.Columns, sqlgraph.NewFieldSpec(webhookendpoint.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WebhookEndpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, webhookendpoint.FieldID)
		for _, f := range fields {
			if !webhookendpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != webhookendpoint.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(webhookendpoint.FieldURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.GuildName(); ok {
		_spec.SetField(webhookendpoint.FieldGuildName, field.TypeString, value)
	}
	if _u.mutation.GuildNameCleared() {
		_spec.ClearField(webhookendpoint.FieldGuildName, field.TypeString)
	}
	if value, ok := _u.mutation.IsPrimary(); ok {
		_spec.SetField(webhookendpoint.FieldIsPrimary, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(webhookendpoint.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastTestedAt(); ok {
		_spec.SetField(webhookendpoint.FieldLastTestedAt, field.TypeTime, value)
	}
	if _u.mutation.LastTestedAtCleared() {
		_spec.ClearField(webhookendpoint.FieldLastTestedAt, field.TypeTime)
	}
	_node = &WebhookEndpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{webhookendpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
