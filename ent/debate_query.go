// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roundtable-ai/roundtable/ent/debate"
	"github.com/roundtable-ai/roundtable/ent/debateround"
	"github.com/roundtable-ai/roundtable/ent/debatesynthesis"
	"github.com/roundtable-ai/roundtable/ent/predicate"
)

// DebateQuery is the builder for querying Debate entities.
type DebateQuery struct {
	config
	ctx           *QueryContext
	order         []debate.OrderOption
	inters        []Interceptor
	predicates    []predicate.Debate
	withRounds    *DebateRoundQuery
	withSynthesis *DebateSynthesisQuery
	modifiers     []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DebateQuery builder.
func (_q *DebateQuery) Where(ps ...predicate.Debate) *DebateQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DebateQuery) Limit(limit int) *DebateQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DebateQuery) Offset(offset int) *DebateQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DebateQuery) Unique(unique bool) *DebateQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DebateQuery) Order(o ...debate.OrderOption) *DebateQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRounds chains the current query on the "rounds" edge.
func (_q *DebateQuery) QueryRounds() *DebateRoundQuery {
	query := (&DebateRoundClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(debate.Table, debate.FieldID, selector),
			sqlgraph.To(debateround.Table, debateround.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, debate.RoundsTable, debate.RoundsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySynthesis chains the current query on the "synthesis" edge.
func (_q *DebateQuery) QuerySynthesis() *DebateSynthesisQuery {
	query := (&DebateSynthesisClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(debate.Table, debate.FieldID, selector),
			sqlgraph.To(debatesynthesis.Table, debatesynthesis.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, debate.SynthesisTable, debate.SynthesisColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Debate entity from the query.
// Returns a *NotFoundError when no Debate was found.
func (_q *DebateQuery) First(ctx context.Context) (*Debate, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{debate.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DebateQuery) FirstX(ctx context.Context) *Debate {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Debate ID from the query.
// Returns a *NotFoundError when no Debate ID was found.
func (_q *DebateQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{debate.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DebateQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Debate entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Debate entity is found.
// Returns a *NotFoundError when no Debate entities are found.
func (_q *DebateQuery) Only(ctx context.Context) (*Debate, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{debate.Label}
	default:
		return nil, &NotSingularError{debate.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DebateQuery) OnlyX(ctx context.Context) *Debate {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Debate ID in the query.
// Returns a *NotSingularError when more than one Debate ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DebateQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{debate.Label}
	default:
		err = &NotSingularError{debate.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DebateQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Debates.
func (_q *DebateQuery) All(ctx context.Context) ([]*Debate, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Debate, *DebateQuery]()
	return withInterceptors[[]*Debate](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DebateQuery) AllX(ctx context.Context) []*Debate {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Debate IDs.
func (_q *DebateQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(debate.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DebateQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DebateQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DebateQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DebateQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DebateQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *DebateQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DebateQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DebateQuery) Clone() *DebateQuery {
	if _q == nil {
		return nil
	}
	return &DebateQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]debate.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.Debate{}, _q.predicates...),
		withRounds:    _q.withRounds.Clone(),
		withSynthesis: _q.withSynthesis.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRounds tells the query-builder to eager-load the nodes that are connected to
// the "rounds" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DebateQuery) WithRounds(opts ...func(*DebateRoundQuery)) *DebateQuery {
	query := (&DebateRoundClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRounds = query
	return _q
}

// WithSynthesis tells the query-builder to eager-load the nodes that are connected to
// the "synthesis" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DebateQuery) WithSynthesis(opts ...func(*DebateSynthesisQuery)) *DebateQuery {
	query := (&DebateSynthesisClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSynthesis = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Debate.Query().
//		GroupBy(debate.FieldUserID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DebateQuery) GroupBy(field string, fields ...string) *DebateGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DebateGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = debate.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		UserID string `json:"user_id,omitempty"`
//	}
//
//	client.Debate.Query().
//		Select(debate.FieldUserID).
//		Scan(ctx, &v)
func (_q *DebateQuery) Select(fields ...string) *DebateSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DebateSelect{DebateQuery: _q}
	sbuild.label = debate.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DebateSelect configured with the given aggregations.
func (_q *DebateQuery) Aggregate(fns ...AggregateFunc) *DebateSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DebateQuery) prepareQuery(ctx context.Context) error {
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
		if !debate.ValidColumn(f) {
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

func (_q *DebateQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Debate, error) {
	var (
		nodes       = []*Debate{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withRounds != nil,
			_q.withSynthesis != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Debate).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Debate{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withRounds; query != nil {
		if err := _q.loadRounds(ctx, query, nodes,
			func(n *Debate) { n.Edges.Rounds = []*DebateRound{} },
			func(n *Debate, e *DebateRound) { n.Edges.Rounds = append(n.Edges.Rounds, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSynthesis; query != nil {
		if err := _q.loadSynthesis(ctx, query, nodes, nil,
			func(n *Debate, e *DebateSynthesis) { n.Edges.Synthesis = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DebateQuery) loadRounds(ctx context.Context, query *DebateRoundQuery, nodes []*Debate, init func(*Debate), assign func(*Debate, *DebateRound)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Debate)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(debateround.FieldDebateID)
	}
	query.Where(predicate.DebateRound(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(debate.RoundsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DebateID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "debate_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *DebateQuery) loadSynthesis(ctx context.Context, query *DebateSynthesisQuery, nodes []*Debate, init func(*Debate), assign func(*Debate, *DebateSynthesis)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Debate)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(debatesynthesis.FieldDebateID)
	}
	query.Where(predicate.DebateSynthesis(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(debate.SynthesisColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.DebateID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "debate_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DebateQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DebateQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(debate.Table, debate.Columns, sqlgraph.NewFieldSpec(debate.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, debate.FieldID)
		for i := range fields {
			if fields[i] != debate.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *DebateQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(debate.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = debate.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *DebateQuery) ForUpdate(opts ...sql.LockOption) *DebateQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *DebateQuery) ForShare(opts ...sql.LockOption) *DebateQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// DebateGroupBy is the group-by builder for Debate entities.
type DebateGroupBy struct {
	selector
	build *DebateQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DebateGroupBy) Aggregate(fns ...AggregateFunc) *DebateGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DebateGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DebateQuery, *DebateGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DebateGroupBy) sqlScan(ctx context.Context, root *DebateQuery, v any) error {
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

// DebateSelect is the builder for selecting fields of Debate entities.
type DebateSelect struct {
	*DebateQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DebateSelect) Aggregate(fns ...AggregateFunc) *DebateSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DebateSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DebateQuery, *DebateSelect](ctx, _s.DebateQuery, _s, _s.inters, v)
}

func (_s *DebateSelect) sqlScan(ctx context.Context, root *DebateQuery, v any) error {
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
