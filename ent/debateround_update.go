// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roundtable-ai/roundtable/ent/debateround"
	"github.com/roundtable-ai/roundtable/ent/personalityresponse"
	"github.com/roundtable-ai/roundtable/ent/predicate"
)

// DebateRoundUpdate is the builder for updating DebateRound entities.
type DebateRoundUpdate struct {
	config
	hooks    []Hook
	mutation *DebateRoundMutation
}

// Where appends a list predicates to the DebateRoundUpdate builder.
func (_u *DebateRoundUpdate) Where(ps ...predicate.DebateRound) *DebateRoundUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoundNumber sets the "round_number" field.
func (_u *DebateRoundUpdate) SetRoundNumber(v int) *DebateRoundUpdate {
	_u.mutation.ResetRoundNumber()
	_u.mutation.SetRoundNumber(v)
	return _u
}

// SetNillableRoundNumber sets the "round_number" field if the given value is not nil.
func (_u *DebateRoundUpdate) SetNillableRoundNumber(v *int) *DebateRoundUpdate {
	if v != nil {
		_u.SetRoundNumber(*v)
	}
	return _u
}

// AddRoundNumber adds value to the "round_number" field.
func (_u *DebateRoundUpdate) AddRoundNumber(v int) *DebateRoundUpdate {
	_u.mutation.AddRoundNumber(v)
	return _u
}

// AddResponseIDs adds the "responses" edge to the PersonalityResponse entity by IDs.
func (_u *DebateRoundUpdate) AddResponseIDs(ids ...string) *DebateRoundUpdate {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the PersonalityResponse entity.
func (_u *DebateRoundUpdate) AddResponses(v ...*PersonalityResponse) *DebateRoundUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// Mutation returns the DebateRoundMutation object of the builder.
func (_u *DebateRoundUpdate) Mutation() *DebateRoundMutation {
	return _u.mutation
}

// ClearResponses clears all "responses" edges to the PersonalityResponse entity.
func (_u *DebateRoundUpdate) ClearResponses() *DebateRoundUpdate {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to PersonalityResponse entities by IDs.
func (_u *DebateRoundUpdate) RemoveResponseIDs(ids ...string) *DebateRoundUpdate {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to PersonalityResponse entities.
func (_u *DebateRoundUpdate) RemoveResponses(v ...*PersonalityResponse) *DebateRoundUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DebateRoundUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateRoundUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DebateRoundUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateRoundUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateRoundUpdate) check() error {
	if _u.mutation.DebateCleared() && len(_u.mutation.DebateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DebateRound.debate"`)
	}
	return nil
}

func (_u *DebateRoundUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debateround.Table, debateround.Columns, sqlgraph.NewFieldSpec(debateround.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoundNumber(); ok {
		_spec.SetField(debateround.FieldRoundNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundNumber(); ok {
		_spec.AddField(debateround.FieldRoundNumber, field.TypeInt, value)
	}
	if _u.mutation.ResponsesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debateround.ResponsesTable,
			Columns: []string{debateround.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(personalityresponse.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResponsesIDs(); len(nodes) > 0 && !_u.mutation.ResponsesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debateround.ResponsesTable,
			Columns: []string{debateround.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(personalityresponse.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponsesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debateround.ResponsesTable,
			Columns: []string{debateround.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(personalityresponse.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{debateround.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DebateRoundUpdateOne is the builder for updating a single DebateRound entity.
type DebateRoundUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DebateRoundMutation
}

// SetRoundNumber sets the "round_number" field.
func (_u *DebateRoundUpdateOne) SetRoundNumber(v int) *DebateRoundUpdateOne {
	_u.mutation.ResetRoundNumber()
	_u.mutation.SetRoundNumber(v)
	return _u
}

// SetNillableRoundNumber sets the "round_number" field if the given value is not nil.
func (_u *DebateRoundUpdateOne) SetNillableRoundNumber(v *int) *DebateRoundUpdateOne {
	if v != nil {
		_u.SetRoundNumber(*v)
	}
	return _u
}

// AddRoundNumber adds value to the "round_number" field.
func (_u *DebateRoundUpdateOne) AddRoundNumber(v int) *DebateRoundUpdateOne {
	_u.mutation.AddRoundNumber(v)
	return _u
}

// AddResponseIDs adds the "responses" edge to the PersonalityResponse entity by IDs.
func (_u *DebateRoundUpdateOne) AddResponseIDs(ids ...string) *DebateRoundUpdateOne {
	_u.mutation.AddResponseIDs(ids...)
	return _u
}

// AddResponses adds the "responses" edges to the PersonalityResponse entity.
func (_u *DebateRoundUpdateOne) AddResponses(v ...*PersonalityResponse) *DebateRoundUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddResponseIDs(ids...)
}

// Mutation returns the DebateRoundMutation object of the builder.
func (_u *DebateRoundUpdateOne) Mutation() *DebateRoundMutation {
	return _u.mutation
}

// ClearResponses clears all "responses" edges to the PersonalityResponse entity.
func (_u *DebateRoundUpdateOne) ClearResponses() *DebateRoundUpdateOne {
	_u.mutation.ClearResponses()
	return _u
}

// RemoveResponseIDs removes the "responses" edge to PersonalityResponse entities by IDs.
func (_u *DebateRoundUpdateOne) RemoveResponseIDs(ids ...string) *DebateRoundUpdateOne {
	_u.mutation.RemoveResponseIDs(ids...)
	return _u
}

// RemoveResponses removes "responses" edges to PersonalityResponse entities.
func (_u *DebateRoundUpdateOne) RemoveResponses(v ...*PersonalityResponse) *DebateRoundUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveResponseIDs(ids...)
}

// Where appends a list predicates to the DebateRoundUpdate builder.
func (_u *DebateRoundUpdateOne) Where(ps ...predicate.DebateRound) *DebateRoundUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DebateRoundUpdateOne) Select(field string, fields ...string) *DebateRoundUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DebateRound entity.
func (_u *DebateRoundUpdateOne) Save(ctx context.Context) (*DebateRound, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateRoundUpdateOne) SaveX(ctx context.Context) *DebateRound {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DebateRoundUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateRoundUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateRoundUpdateOne) check() error {
	if _u.mutation.DebateCleared() && len(_u.mutation.DebateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DebateRound.debate"`)
	}
	return nil
}

func (_u *DebateRoundUpdateOne) sqlSave(ctx context.Context) (_node *DebateRound, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debateround.Table, debateround.Columns, sqlgraph.NewFieldSpec(debateround.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DebateRound.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, debateround.FieldID)
		for _, f := range fields {
			if !debateround.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != debateround.FieldID {
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
	if value, ok := _u.mutation.RoundNumber(); ok {
		_spec.SetField(debateround.FieldRoundNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundNumber(); ok {
		_spec.AddField(debateround.FieldRoundNumber, field.TypeInt, value)
	}
	if _u.mutation.ResponsesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debateround.ResponsesTable,
			Columns: []string{debateround.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(personalityresponse.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedResponsesIDs(); len(nodes) > 0 && !_u.mutation.ResponsesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debateround.ResponsesTable,
			Columns: []string{debateround.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(personalityresponse.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ResponsesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debateround.ResponsesTable,
			Columns: []string{debateround.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(personalityresponse.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DebateRound{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{debateround.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
