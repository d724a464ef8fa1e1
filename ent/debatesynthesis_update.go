// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roundtable-ai/roundtable/ent/debatesynthesis"
	"github.com/roundtable-ai/roundtable/ent/predicate"
	"github.com/shopspring/decimal"
)

// DebateSynthesisUpdate is the builder for updating DebateSynthesis entities.
type DebateSynthesisUpdate struct {
	config
	hooks    []Hook
	mutation *DebateSynthesisMutation
}

// Where appends a list predicates to the DebateSynthesisUpdate builder.
func (_u *DebateSynthesisUpdate) Where(ps ...predicate.DebateSynthesis) *DebateSynthesisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *DebateSynthesisUpdate) SetContent(v string) *DebateSynthesisUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DebateSynthesisUpdate) SetNillableContent(v *string) *DebateSynthesisUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *DebateSynthesisUpdate) SetInputTokens(v int64) *DebateSynthesisUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *DebateSynthesisUpdate) SetNillableInputTokens(v *int64) *DebateSynthesisUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *DebateSynthesisUpdate) AddInputTokens(v int64) *DebateSynthesisUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *DebateSynthesisUpdate) SetOutputTokens(v int64) *DebateSynthesisUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *DebateSynthesisUpdate) SetNillableOutputTokens(v *int64) *DebateSynthesisUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *DebateSynthesisUpdate) AddOutputTokens(v int64) *DebateSynthesisUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *DebateSynthesisUpdate) SetCost(v decimal.Decimal) *DebateSynthesisUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *DebateSynthesisUpdate) SetNillableCost(v *decimal.Decimal) *DebateSynthesisUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *DebateSynthesisUpdate) AddCost(v decimal.Decimal) *DebateSynthesisUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// Mutation returns the DebateSynthesisMutation object of the builder.
func (_u *DebateSynthesisUpdate) Mutation() *DebateSynthesisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DebateSynthesisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateSynthesisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DebateSynthesisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateSynthesisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateSynthesisUpdate) check() error {
	if _u.mutation.DebateCleared() && len(_u.mutation.DebateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DebateSynthesis.debate"`)
	}
	return nil
}

func (_u *DebateSynthesisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debatesynthesis.Table, debatesynthesis.Columns, sqlgraph.NewFieldSpec(debatesynthesis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(debatesynthesis.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(debatesynthesis.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(debatesynthesis.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(debatesynthesis.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(debatesynthesis.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(debatesynthesis.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(debatesynthesis.FieldCost, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{debatesynthesis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DebateSynthesisUpdateOne is the builder for updating a single DebateSynthesis entity.
type DebateSynthesisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DebateSynthesisMutation
}

// SetContent sets the "content" field.
func (_u *DebateSynthesisUpdateOne) SetContent(v string) *DebateSynthesisUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *DebateSynthesisUpdateOne) SetNillableContent(v *string) *DebateSynthesisUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *DebateSynthesisUpdateOne) SetInputTokens(v int64) *DebateSynthesisUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *DebateSynthesisUpdateOne) SetNillableInputTokens(v *int64) *DebateSynthesisUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *DebateSynthesisUpdateOne) AddInputTokens(v int64) *DebateSynthesisUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *DebateSynthesisUpdateOne) SetOutputTokens(v int64) *DebateSynthesisUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *DebateSynthesisUpdateOne) SetNillableOutputTokens(v *int64) *DebateSynthesisUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *DebateSynthesisUpdateOne) AddOutputTokens(v int64) *DebateSynthesisUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *DebateSynthesisUpdateOne) SetCost(v decimal.Decimal) *DebateSynthesisUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *DebateSynthesisUpdateOne) SetNillableCost(v *decimal.Decimal) *DebateSynthesisUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *DebateSynthesisUpdateOne) AddCost(v decimal.Decimal) *DebateSynthesisUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// Mutation returns the DebateSynthesisMutation object of the builder.
func (_u *DebateSynthesisUpdateOne) Mutation() *DebateSynthesisMutation {
	return _u.mutation
}

// Where appends a list predicates to the DebateSynthesisUpdate builder.
func (_u *DebateSynthesisUpdateOne) Where(ps ...predicate.DebateSynthesis) *DebateSynthesisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DebateSynthesisUpdateOne) Select(field string, fields ...string) *DebateSynthesisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DebateSynthesis entity.
func (_u *DebateSynthesisUpdateOne) Save(ctx context.Context) (*DebateSynthesis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateSynthesisUpdateOne) SaveX(ctx context.Context) *DebateSynthesis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DebateSynthesisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateSynthesisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateSynthesisUpdateOne) check() error {
	if _u.mutation.DebateCleared() && len(_u.mutation.DebateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DebateSynthesis.debate"`)
	}
	return nil
}

func (_u *DebateSynthesisUpdateOne) sqlSave(ctx context.Context) (_node *DebateSynthesis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debatesynthesis.Table, debatesynthesis.Columns, sqlgraph.NewFieldSpec(debatesynthesis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DebateSynthesis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, debatesynthesis.FieldID)
		for _, f := range fields {
			if !debatesynthesis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != debatesynthesis.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(debatesynthesis.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(debatesynthesis.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(debatesynthesis.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(debatesynthesis.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(debatesynthesis.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(debatesynthesis.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(debatesynthesis.FieldCost, field.TypeFloat64, value)
	}
	_node = &DebateSynthesis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{debatesynthesis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
