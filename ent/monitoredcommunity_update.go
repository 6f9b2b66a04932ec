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
	"github.com/reddalert/reddalert/ent/monitoredcommunity"
	"github.com/reddalert/reddalert/ent/predicate"
)

// MonitoredCommunityUpdate is the builder for updating MonitoredCommunity entities.
type MonitoredCommunityUpdate struct {
	config
	hooks    []Hook
	mutation *MonitoredCommunityMutation
}

// Where appends a list predicates to the MonitoredCommunityUpdate builder.
func (_u *MonitoredCommunityUpdate) Where(ps ...predicate.MonitoredCommunity) *MonitoredCommunityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *MonitoredCommunityUpdate) SetName(v string) *MonitoredCommunityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MonitoredCommunityUpdate) SetNillableName(v *string) *MonitoredCommunityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MonitoredCommunityUpdate) SetStatus(v monitoredcommunity.Status) *MonitoredCommunityUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MonitoredCommunityUpdate) SetNillableStatus(v *monitoredcommunity.Status) *MonitoredCommunityUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIncludeMediaPosts sets the "include_media_posts" field.
func (_u *MonitoredCommunityUpdate) SetIncludeMediaPosts(v bool) *MonitoredCommunityUpdate {
	_u.mutation.SetIncludeMediaPosts(v)
	return _u
}

// SetNillableIncludeMediaPosts sets the "include_media_posts" field if the given value is not nil.
func (_u *MonitoredCommunityUpdate) SetNillableIncludeMediaPosts(v *bool) *MonitoredCommunityUpdate {
	if v != nil {
		_u.SetIncludeMediaPosts(*v)
	}
	return _u
}

// SetDedupeCrossposts sets the "dedupe_crossposts" field.
func (_u *MonitoredCommunityUpdate) SetDedupeCrossposts(v bool) *MonitoredCommunityUpdate {
	_u.mutation.SetDedupeCrossposts(v)
	return _u
}

// SetNillableDedupeCrossposts sets the "dedupe_crossposts" field if the given value is not nil.
func (_u *MonitoredCommunityUpdate) SetNillableDedupeCrossposts(v *bool) *MonitoredCommunityUpdate {
	if v != nil {
		_u.SetDedupeCrossposts(*v)
	}
	return _u
}

// SetFilterBots sets the "filter_bots" field.
func (_u *MonitoredCommunityUpdate) SetFilterBots(v bool) *MonitoredCommunityUpdate {
	_u.mutation.SetFilterBots(v)
	return _u
}

// SetNillableFilterBots sets the "filter_bots" field if the given value is not nil.
func (_u *MonitoredCommunityUpdate) SetNillableFilterBots(v *bool) *MonitoredCommunityUpdate {
	if v != nil {
		_u.SetFilterBots(*v)
	}
	return _u
}

// SetLastPolledAt sets the "last_polled_at" field.
func (_u *MonitoredCommunityUpdate) SetLastPolledAt(v time.Time) *MonitoredCommunityUpdate {
	_u.mutation.SetLastPolledAt(v)
	return _u
}

// SetNillableLastPolledAt sets the "last_polled_at" field if the given value is not nil.
func (_u *MonitoredCommunityUpdate) SetNillableLastPolledAt(v *time.Time) *MonitoredCommunityUpdate {
	if v != nil {
		_u.SetLastPolledAt(*v)
	}
	return _u
}

// ClearLastPolledAt clears the value of the "last_polled_at" field.
func (_u *MonitoredCommunityUpdate) ClearLastPolledAt() *MonitoredCommunityUpdate {
	_u.mutation.ClearLastPolledAt()
	return _u
}

// Mutation returns the MonitoredCommunityMutation object of the builder.
func (_u *MonitoredCommunityUpdate) Mutation() *MonitoredCommunityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MonitoredCommunityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonitoredCommunityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MonitoredCommunityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonitoredCommunityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MonitoredCommunityUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := monitoredcommunity.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MonitoredCommunity.status": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MonitoredCommunity.tenant"`)
	}
	return nil
}

func (_u *MonitoredCommunityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(monitoredcommunity.Table, monitoredcommunity.Columns, sqlgraph.NewFieldSpec(monitoredcommunity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(monitoredcommunity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(monitoredcommunity.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IncludeMediaPosts(); ok {
		_spec.SetField(monitoredcommunity.FieldIncludeMediaPosts, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DedupeCrossposts(); ok {
		_spec.SetField(monitoredcommunity.FieldDedupeCrossposts, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FilterBots(); ok {
		_spec.SetField(monitoredcommunity.FieldFilterBots, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastPolledAt(); ok {
		_spec.SetField(monitoredcommunity.FieldLastPolledAt, field.TypeTime, value)
	}
	if _u.mutation.LastPolledAtCleared() {
		_spec.ClearField(monitoredcommunity.FieldLastPolledAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monitoredcommunity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MonitoredCommunityUpdateOne is the builder for updating a single MonitoredCommunity entity.
type MonitoredCommunityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MonitoredCommunityMutation
}

// SetName sets the "name" field.
func (_u *MonitoredCommunityUpdateOne) SetName(v string) *MonitoredCommunityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MonitoredCommunityUpdateOne) SetNillableName(v *string) *MonitoredCommunityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *MonitoredCommunityUpdateOne) SetStatus(v monitoredcommunity.Status) *MonitoredCommunityUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *MonitoredCommunityUpdateOne) SetNillableStatus(v *monitoredcommunity.Status) *MonitoredCommunityUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetIncludeMediaPosts sets the "include_media_posts" field.
func (_u *MonitoredCommunityUpdateOne) SetIncludeMediaPosts(v bool) *MonitoredCommunityUpdateOne {
	_u.mutation.SetIncludeMediaPosts(v)
	return _u
}

// SetNillableIncludeMediaPosts sets the "include_media_posts" field if the given value is not nil.
func (_u *MonitoredCommunityUpdateOne) SetNillableIncludeMediaPosts(v *bool) *MonitoredCommunityUpdateOne {
	if v != nil {
		_u.SetIncludeMediaPosts(*v)
	}
	return _u
}

// SetDedupeCrossposts sets the "dedupe_crossposts" field.
func (_u *MonitoredCommunityUpdateOne) SetDedupeCrossposts(v bool) *MonitoredCommunityUpdateOne {
	_u.mutation.SetDedupeCrossposts(v)
	return _u
}

// SetNillableDedupeCrossposts sets the "dedupe_crossposts" field if the given value is not nil.
func (_u *MonitoredCommunityUpdateOne) SetNillableDedupeCrossposts(v *bool) *MonitoredCommunityUpdateOne {
	if v != nil {
		_u.SetDedupeCrossposts(*v)
	}
	return _u
}

// SetFilterBots sets the "filter_bots" field.
func (_u *MonitoredCommunityUpdateOne) SetFilterBots(v bool) *MonitoredCommunityUpdateOne {
	_u.mutation.SetFilterBots(v)
	return _u
}

// SetNillableFilterBots sets the "filter_bots" field if the given value is not nil.
func (_u *MonitoredCommunityUpdateOne) SetNillableFilterBots(v *bool) *MonitoredCommunityUpdateOne {
	if v != nil {
		_u.SetFilterBots(*v)
	}
	return _u
}

// SetLastPolledAt sets the "last_polled_at" field.
func (_u *MonitoredCommunityUpdateOne) SetLastPolledAt(v time.Time) *MonitoredCommunityUpdateOne {
	_u.mutation.SetLastPolledAt(v)
	return _u
}

// SetNillableLastPolledAt sets the "last_polled_at" field if the given value is not nil.
func (_u *MonitoredCommunityUpdateOne) SetNillableLastPolledAt(v *time.Time) *MonitoredCommunityUpdateOne {
	if v != nil {
		_u.SetLastPolledAt(*v)
	}
	return _u
}

// ClearLastPolledAt clears the value of the "last_polled_at" field.
func (_u *MonitoredCommunityUpdateOne) ClearLastPolledAt() *MonitoredCommunityUpdateOne {
	_u.mutation.ClearLastPolledAt()
	return _u
}

// Mutation returns the MonitoredCommunityMutation object of the builder.
func (_u *MonitoredCommunityUpdateOne) Mutation() *MonitoredCommunityMutation {
	return _u.mutation
}

// Where appends a list predicates to the MonitoredCommunityUpdate builder.
func (_u *MonitoredCommunityUpdateOne) Where(ps ...predicate.MonitoredCommunity) *MonitoredCommunityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MonitoredCommunityUpdateOne) Select(field string, fields ...string) *MonitoredCommunityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MonitoredCommunity entity.
func (_u *MonitoredCommunityUpdateOne) Save(ctx context.Context) (*MonitoredCommunity, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MonitoredCommunityUpdateOne) SaveX(ctx context.Context) *MonitoredCommunity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MonitoredCommunityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MonitoredCommunityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MonitoredCommunityUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := monitoredcommunity.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "MonitoredCommunity.status": %w`, err)}
		}
	}
	if _u.mutation.TenantCleared() && len(_u.mutation.TenantIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "MonitoredCommunity.tenant"`)
	}
	return nil
}

func (_u *MonitoredCommunityUpdateOne) sqlSave(ctx context.Context) (_node *MonitoredCommunity, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(monitoredcommunity.Table, monitoredcommunity.Columns, sqlgraph.NewFieldSpec(monitoredcommunity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MonitoredCommunity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, monitoredcommunity.FieldID)
		for _, f := range fields {
			if !monitoredcommunity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != monitoredcommunity.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(monitoredcommunity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(monitoredcommunity.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IncludeMediaPosts(); ok {
		_spec.SetField(monitoredcommunity.FieldIncludeMediaPosts, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DedupeCrossposts(); ok {
		_spec.SetField(monitoredcommunity.FieldDedupeCrossposts, field.TypeBool, value)
	}
	if value, ok := _u.mutation.FilterBots(); ok {
		_spec.SetField(monitoredcommunity.FieldFilterBots, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastPolledAt(); ok {
		_spec.SetField(monitoredcommunity.FieldLastPolledAt, field.TypeTime, value)
	}
	if _u.mutation.LastPolledAtCleared() {
		_spec.ClearField(monitoredcommunity.FieldLastPolledAt, field.TypeTime)
	}
	_node = &MonitoredCommunity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{monitoredcommunity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
