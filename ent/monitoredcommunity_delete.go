// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reddalert/reddalert/ent/monitoredcommunity"
	"github.com/reddalert/reddalert/ent/predicate"
)

// MonitoredCommunityDelete is the builder for deleting a MonitoredCommunity entity.
type MonitoredCommunityDelete struct {
	config
	hooks    []Hook
	mutation *MonitoredCommunityMutation
}

// Where appends a list predicates to the MonitoredCommunityDelete builder.
func (_d *MonitoredCommunityDelete) Where(ps ...predicate.MonitoredCommunity) *MonitoredCommunityDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MonitoredCommunityDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonitoredCommunityDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MonitoredCommunityDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(monitoredcommunity.Table, sqlgraph.NewFieldSpec(monitoredcommunity.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// MonitoredCommunityDeleteOne is the builder for deleting a single MonitoredCommunity entity.
type MonitoredCommunityDeleteOne struct {
	_d *MonitoredCommunityDelete
}

// Where appends a list predicates to the MonitoredCommunityDelete builder.
func (_d *MonitoredCommunityDeleteOne) Where(ps ...predicate.MonitoredCommunity) *MonitoredCommunityDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MonitoredCommunityDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{monitoredcommunity.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MonitoredCommunityDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
