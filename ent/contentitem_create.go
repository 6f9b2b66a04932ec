// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reddalert/reddalert/ent/contentitem"
	"github.com/reddalert/reddalert/ent/match"
)

// ContentItemCreate is the builder for creating a ContentItem entity.
type ContentItemCreate struct {
	config
	mutation *ContentItemMutation
	hooks    []Hook
}

// SetSourceID sets the "source_id" field.
func (_c *ContentItemCreate) SetSourceID(v string) *ContentItemCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetCommunity sets the "community" field.
func (_c *ContentItemCreate) SetCommunity(v string) *ContentItemCreate {
	_c.mutation.SetCommunity(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ContentItemCreate) SetKind(v contentitem.Kind) *ContentItemCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *ContentItemCreate) SetTitle(v string) *ContentItemCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_c *ContentItemCreate) SetNillableTitle(v *string) *ContentItemCreate {
	if v != nil {
		_c.SetTitle(*v)
	}
	return _c
}

// SetBody sets the "body" field.
func (_c *ContentItemCreate) SetBody(v string) *ContentItemCreate {
	_c.mutation.SetBody(v)
	return _c
}

// SetAuthor sets the "author" field.
func (_c *ContentItemCreate) SetAuthor(v string) *ContentItemCreate {
	_c.mutation.SetAuthor(v)
	return _c
}

// SetNormalizedText sets the "normalized_text" field.
func (_c *ContentItemCreate) SetNormalizedText(v string) *ContentItemCreate {
	_c.mutation.SetNormalizedText(v)
	return _c
}

// SetDigest sets the "digest" field.
func (_c *ContentItemCreate) SetDigest(v string) *ContentItemCreate {
	_c.mutation.SetDigest(v)
	return _c
}

// SetSourceCreatedAt sets the "source_created_at" field.
func (_c *ContentItemCreate) SetSourceCreatedAt(v time.Time) *ContentItemCreate {
	_c.mutation.SetSourceCreatedAt(v)
	return _c
}

// SetFetchedAt sets the "fetched_at" field.
func (_c *ContentItemCreate) SetFetchedAt(v time.Time) *ContentItemCreate {
	_c.mutation.SetFetchedAt(v)
	return _c
}

// SetNillableFetchedAt sets the "fetched_at" field if the given value is not nil.
func (_c *ContentItemCreate) SetNillableFetchedAt(v *time.Time) *ContentItemCreate {
	if v != nil {
		_c.SetFetchedAt(*v)
	}
	return _c
}

// SetIsDeleted sets the "is_deleted" field.
func (_c *ContentItemCreate) SetIsDeleted(v bool) *ContentItemCreate {
	_c.mutation.SetIsDeleted(v)
	return _c
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (_c *ContentItemCreate) SetNillableIsDeleted(v *bool) *ContentItemCreate {
	if v != nil {
		_c.SetIsDeleted(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContentItemCreate) SetID(v string) *ContentItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMatchIDs adds the "matches" edge to the Match entity by IDs.
func (_c *ContentItemCreate) AddMatchIDs(ids ...string) *ContentItemCreate {
	_c.mutation.AddMatchIDs(ids...)
	return _c
}

// AddMatches adds the "matches" edges to the Match entity.
func (_c *ContentItemCreate) AddMatches(v ...*Match) *ContentItemCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMatchIDs(ids...)
}

// Mutation returns the ContentItemMutation object of the builder.
func (_c *ContentItemCreate) Mutation() *ContentItemMutation {
	return _c.mutation
}

// Save creates the ContentItem in the database.
func (_c *ContentItemCreate) Save(ctx context.Context) (*ContentItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentItemCreate) SaveX(ctx context.Context) *ContentItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentItemCreate) defaults() {
	if _, ok := _c.mutation.FetchedAt(); !ok {
		v := contentitem.DefaultFetchedAt()
		_c.mutation.SetFetchedAt(v)
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		v := contentitem.DefaultIsDeleted
		_c.mutation.SetIsDeleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentItemCreate) check() error {
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "ContentItem.source_id"`)}
	}
	if _, ok := _c.mutation.Community(); !ok {
		return &ValidationError{Name: "community", err: errors.New(`ent: missing required field "ContentItem.community"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ContentItem.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := contentitem.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ContentItem.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Body(); !ok {
		return &ValidationError{Name: "body", err: errors.New(`ent: missing required field "ContentItem.body"`)}
	}
	if _, ok := _c.mutation.Author(); !ok {
		return &ValidationError{Name: "author", err: errors.New(`ent: missing required field "ContentItem.author"`)}
	}
	if _, ok := _c.mutation.NormalizedText(); !ok {
		return &ValidationError{Name: "normalized_text", err: errors.New(`ent: missing required field "ContentItem.normalized_text"`)}
	}
	if v, ok := _c.mutation.NormalizedText(); ok {
		if err := contentitem.NormalizedTextValidator(v); err != nil {
			return &ValidationError{Name: "normalized_text", err: fmt.Errorf(`ent: validator failed for field "ContentItem.normalized_text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Digest(); !ok {
		return &ValidationError{Name: "digest", err: errors.New(`ent: missing required field "ContentItem.digest"`)}
	}
	if _, ok := _c.mutation.SourceCreatedAt(); !ok {
		return &ValidationError{Name: "source_created_at", err: errors.New(`ent: missing required field "ContentItem.source_created_at"`)}
	}
	if _, ok := _c.mutation.FetchedAt(); !ok {
		return &ValidationError{Name: "fetched_at", err: errors.New(`ent: missing required field "ContentItem.fetched_at"`)}
	}
	if _, ok := _c.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "ContentItem.is_deleted"`)}
	}
	return nil
}

func (_c *ContentItemCreate) sqlSave(ctx context.Context) (*ContentItem, error) {
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
			return nil, fmt.Errorf("unexpected ContentItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContentItemCreate) createSpec() (*ContentItem, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contentitem.Table, sqlgraph.NewFieldSpec(contentitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(contentitem.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.Community(); ok {
		_spec.SetField(contentitem.FieldCommunity, field.TypeString, value)
		_node.Community = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(contentitem.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(contentitem.FieldTitle, field.TypeString, value)
		_node.Title = &value
	}
	if value, ok := _c.mutation.Body(); ok {
		_spec.SetField(contentitem.FieldBody, field.TypeString, value)
		_node.Body = value
	}
	if value, ok := _c.mutation.Author(); ok {
		_spec.SetField(contentitem.FieldAuthor, field.TypeString, value)
		_node.Author = value
	}
	if value, ok := _c.mutation.NormalizedText(); ok {
		_spec.SetField(contentitem.FieldNormalizedText, field.TypeString, value)
		_node.NormalizedText = value
	}
	if value, ok := _c.mutation.Digest(); ok {
		_spec.SetField(contentitem.FieldDigest, field.TypeString, value)
		_node.Digest = value
	}
	if value, ok := _c.mutation.SourceCreatedAt(); ok {
		_spec.SetField(contentitem.FieldSourceCreatedAt, field.TypeTime, value)
		_node.SourceCreatedAt = value
	}
	if value, ok := _c.mutation.FetchedAt(); ok {
		_spec.SetField(contentitem.FieldFetchedAt, field.TypeTime, value)
		_node.FetchedAt = value
	}
	if value, ok := _c.mutation.IsDeleted(); ok {
		_spec.SetField(contentitem.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if nodes := _c.mutation.MatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contentitem.MatchesTable,
			Columns: []string{contentitem.MatchesColumn},
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

// ContentItemCreateBulk is the builder for creating many ContentItem entities in bulk.
type ContentItemCreateBulk struct {
	config
	err      error
	builders []*ContentItemCreate
}

// Save creates the ContentItem entities in the database.
func (_c *ContentItemCreateBulk) Save(ctx context.Context) ([]*ContentItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentItemMutation)
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
func (_c *ContentItemCreateBulk) SaveX(ctx context.Context) []*ContentItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
