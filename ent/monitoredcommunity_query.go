// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reddalert/reddalert/ent/monitoredcommunity"
	"github.com/reddalert/reddalert/ent/predicate"
	"github.com/reddalert/reddalert/ent/tenant"
)

// MonitoredCommunityQuery is the builder for querying MonitoredCommunity entities.
type MonitoredCommunityQuery struct {
	config
	ctx        *QueryContext
	order      []monitoredcommunity.OrderOption
	inters     []Interceptor
	predicates []predicate.MonitoredCommunity
	withTenant *TenantQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MonitoredCommunityQuery builder.
func (_q *MonitoredCommunityQuery) Where(ps ...predicate.MonitoredCommunity) *MonitoredCommunityQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *MonitoredCommunityQuery) Limit(limit int) *MonitoredCommunityQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *MonitoredCommunityQuery) Offset(offset int) *MonitoredCommunityQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *MonitoredCommunityQuery) Unique(unique bool) *MonitoredCommunityQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *MonitoredCommunityQuery) Order(o ...monitoredcommunity.OrderOption) *MonitoredCommunityQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTenant chains the current query on the "tenant" edge.
func (_q *MonitoredCommunityQuery) QueryTenant() *TenantQuery {
	query := (&TenantClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(monitoredcommunity.Table, monitoredcommunity.FieldID, selector),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, monitoredcommunity.TenantTable, monitoredcommunity.TenantColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first MonitoredCommunity entity from the query.
// Returns a *NotFoundError when no MonitoredCommunity was found.
func (_q *MonitoredCommunityQuery) First(ctx context.Context) (*MonitoredCommunity, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{monitoredcommunity.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *MonitoredCommunityQuery) FirstX(ctx context.Context) *MonitoredCommunity {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first MonitoredCommunity ID from the query.
// Returns a *NotFoundError when no MonitoredCommunity ID was found.
func (_q *MonitoredCommunityQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{monitoredcommunity.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *MonitoredCommunityQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single MonitoredCommunity entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one MonitoredCommunity entity is found.
// Returns a *NotFoundError when no MonitoredCommunity entities are found.
func (_q *MonitoredCommunityQuery) Only(ctx context.Context) (*MonitoredCommunity, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{monitoredcommunity.Label}
	default:
		return nil, &NotSingularError{monitoredcommunity.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *MonitoredCommunityQuery) OnlyX(ctx context.Context) *MonitoredCommunity {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only MonitoredCommunity ID in the query.
// Returns a *NotSingularError when more than one MonitoredCommunity ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *MonitoredCommunityQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{monitoredcommunity.Label}
	default:
		err = &NotSingularError{monitoredcommunity.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *MonitoredCommunityQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of MonitoredCommunities.
func (_q *MonitoredCommunityQuery) All(ctx context.Context) ([]*MonitoredCommunity, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*MonitoredCommunity, *MonitoredCommunityQuery]()
	return withInterceptors[[]*MonitoredCommunity](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *MonitoredCommunityQuery) AllX(ctx context.Context) []*MonitoredCommunity {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of MonitoredCommunity IDs.
func (_q *MonitoredCommunityQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(monitoredcommunity.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *MonitoredCommunityQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *MonitoredCommunityQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*MonitoredCommunityQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *MonitoredCommunityQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *MonitoredCommunityQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *MonitoredCommunityQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MonitoredCommunityQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *MonitoredCommunityQuery) Clone() *MonitoredCommunityQuery {
	if _q == nil {
		return nil
	}
	return &MonitoredCommunityQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]monitoredcommunity.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.MonitoredCommunity{}, _q.predicates...),
		withTenant: _q.withTenant.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTenant tells the query-builder to eager-load the nodes that are connected to
// the "tenant" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *MonitoredCommunityQuery) WithTenant(opts ...func(*TenantQuery)) *MonitoredCommunityQuery {
	query := (&TenantClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTenant = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TenantID string `json:"tenant_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.MonitoredCommunity.Query().
//		GroupBy(monitoredcommunity.FieldTenantID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *MonitoredCommunityQuery) GroupBy(field string, fields ...string) *MonitoredCommunityGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MonitoredCommunityGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = monitoredcommunity.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TenantID string `json:"tenant_id,omitempty"`
//	}
//
//	client.MonitoredCommunity.Query().
//		Select(monitoredcommunity.FieldTenantID).
//		Scan(ctx, &v)
func (_q *MonitoredCommunityQuery) Select(fields ...string) *MonitoredCommunitySelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &MonitoredCommunitySelect{MonitoredCommunityQuery: _q}
	sbuild.label = monitoredcommunity.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MonitoredCommunitySelect configured with the given aggregations.
func (_q *MonitoredCommunityQuery) Aggregate(fns ...AggregateFunc) *MonitoredCommunitySelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *MonitoredCommunityQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !monitoredcommunity.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *MonitoredCommunityQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*MonitoredCommunity, error) {
	var (
		nodes       = []*MonitoredCommunity{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withTenant != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*MonitoredCommunity).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &MonitoredCommunity{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withTenant; query != nil {
		if err := _q.loadTenant(ctx, query, nodes, nil,
			func(n *MonitoredCommunity, e *Tenant) { n.Edges.Tenant = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *MonitoredCommunityQuery) loadTenant(ctx context.Context, query *TenantQuery, nodes []*MonitoredCommunity, init func(*MonitoredCommunity), assign func(*MonitoredCommunity, *Tenant)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*MonitoredCommunity)
	for i := range nodes {
		fk := nodes[i].TenantID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(tenant.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "tenant_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *MonitoredCommunityQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *MonitoredCommunityQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(monitoredcommunity.Table, monitoredcommunity.Columns, sqlgraph.NewFieldSpec(monitoredcommunity.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, monitoredcommunity.FieldID)
		for i := range fields {
			if fields[i] != monitoredcommunity.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withTenant != nil {
			_spec.Node.AddColumnOnce(monitoredcommunity.FieldTenantID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *MonitoredCommunityQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(monitoredcommunity.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = monitoredcommunity.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// MonitoredCommunityGroupBy is the group-by builder for MonitoredCommunity entities.
type MonitoredCommunityGroupBy struct {
	selector
	build *MonitoredCommunityQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *MonitoredCommunityGroupBy) Aggregate(fns ...AggregateFunc) *MonitoredCommunityGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *MonitoredCommunityGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MonitoredCommunityQuery, *MonitoredCommunityGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *MonitoredCommunityGroupBy) sqlScan(ctx context.Context, root *MonitoredCommunityQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// MonitoredCommunitySelect is the builder for selecting fields of MonitoredCommunity entities.
type MonitoredCommunitySelect struct {
	*MonitoredCommunityQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *MonitoredCommunitySelect) Aggregate(fns ...AggregateFunc) *MonitoredCommunitySelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *MonitoredCommunitySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MonitoredCommunityQuery, *MonitoredCommunitySelect](ctx, _s.MonitoredCommunityQuery, _s, _s.inters, v)
}

func (_s *MonitoredCommunitySelect) sqlScan(ctx context.Context, root *MonitoredCommunityQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
