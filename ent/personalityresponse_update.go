// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roundtable-ai/roundtable/ent/personalityresponse"
	"github.com/roundtable-ai/roundtable/ent/predicate"
	"github.com/shopspring/decimal"
)

// PersonalityResponseUpdate is the builder for updating PersonalityResponse entities.
type PersonalityResponseUpdate struct {
	config
	hooks    []Hook
	mutation *PersonalityResponseMutation
}

// Where appends a list predicates to the PersonalityResponseUpdate builder.
func (_u *PersonalityResponseUpdate) Where(ps ...predicate.PersonalityResponse) *PersonalityResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPersonality sets the "personality" field.
func (_u *PersonalityResponseUpdate) SetPersonality(v string) *PersonalityResponseUpdate {
	_u.mutation.SetPersonality(v)
	return _u
}

// SetNillablePersonality sets the "personality" field if the given value is not nil.
func (_u *PersonalityResponseUpdate) SetNillablePersonality(v *string) *PersonalityResponseUpdate {
	if v != nil {
		_u.SetPersonality(*v)
	}
	return _u
}

// SetResponseIndex sets the "response_index" field.
func (_u *PersonalityResponseUpdate) SetResponseIndex(v int) *PersonalityResponseUpdate {
	_u.mutation.ResetResponseIndex()
	_u.mutation.SetResponseIndex(v)
	return _u
}

// SetNillableResponseIndex sets the "response_index" field if the given value is not nil.
func (_u *PersonalityResponseUpdate) SetNillableResponseIndex(v *int) *PersonalityResponseUpdate {
	if v != nil {
		_u.SetResponseIndex(*v)
	}
	return _u
}

// AddResponseIndex adds value to the "response_index" field.
func (_u *PersonalityResponseUpdate) AddResponseIndex(v int) *PersonalityResponseUpdate {
	_u.mutation.AddResponseIndex(v)
	return _u
}

// SetThinking sets the "thinking" field.
func (_u *PersonalityResponseUpdate) SetThinking(v string) *PersonalityResponseUpdate {
	_u.mutation.SetThinking(v)
	return _u
}

// SetNillableThinking sets the "thinking" field if the given value is not nil.
func (_u *PersonalityResponseUpdate) SetNillableThinking(v *string) *PersonalityResponseUpdate {
	if v != nil {
		_u.SetThinking(*v)
	}
	return _u
}

// ClearThinking clears the value of the "thinking" field.
func (_u *PersonalityResponseUpdate) ClearThinking() *PersonalityResponseUpdate {
	_u.mutation.ClearThinking()
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *PersonalityResponseUpdate) SetAnswer(v string) *PersonalityResponseUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *PersonalityResponseUpdate) SetNillableAnswer(v *string) *PersonalityResponseUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *PersonalityResponseUpdate) SetInputTokens(v int64) *PersonalityResponseUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *PersonalityResponseUpdate) SetNillableInputTokens(v *int64) *PersonalityResponseUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *PersonalityResponseUpdate) AddInputTokens(v int64) *PersonalityResponseUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *PersonalityResponseUpdate) SetOutputTokens(v int64) *PersonalityResponseUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *PersonalityResponseUpdate) SetNillableOutputTokens(v *int64) *PersonalityResponseUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *PersonalityResponseUpdate) AddOutputTokens(v int64) *PersonalityResponseUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *PersonalityResponseUpdate) SetCost(v decimal.Decimal) *PersonalityResponseUpdate {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *PersonalityResponseUpdate) SetNillableCost(v *decimal.Decimal) *PersonalityResponseUpdate {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *PersonalityResponseUpdate) AddCost(v decimal.Decimal) *PersonalityResponseUpdate {
	_u.mutation.AddCost(v)
	return _u
}

// Mutation returns the PersonalityResponseMutation object of the builder.
func (_u *PersonalityResponseUpdate) Mutation() *PersonalityResponseMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PersonalityResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonalityResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PersonalityResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonalityResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonalityResponseUpdate) check() error {
	if _u.mutation.RoundCleared() && len(_u.mutation.RoundIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PersonalityResponse.round"`)
	}
	return nil
}

func (_u *PersonalityResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(personalityresponse.Table, personalityresponse.Columns, sqlgraph.NewFieldSpec(personalityresponse.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Personality(); ok {
		_spec.SetField(personalityresponse.FieldPersonality, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseIndex(); ok {
		_spec.SetField(personalityresponse.FieldResponseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseIndex(); ok {
		_spec.AddField(personalityresponse.FieldResponseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Thinking(); ok {
		_spec.SetField(personalityresponse.FieldThinking, field.TypeString, value)
	}
	if _u.mutation.ThinkingCleared() {
		_spec.ClearField(personalityresponse.FieldThinking, field.TypeString)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(personalityresponse.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(personalityresponse.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(personalityresponse.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(personalityresponse.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(personalityresponse.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(personalityresponse.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(personalityresponse.FieldCost, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{personalityresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PersonalityResponseUpdateOne is the builder for updating a single PersonalityResponse entity.
type PersonalityResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PersonalityResponseMutation
}

// SetPersonality sets the "personality" field.
func (_u *PersonalityResponseUpdateOne) SetPersonality(v string) *PersonalityResponseUpdateOne {
	_u.mutation.SetPersonality(v)
	return _u
}

// SetNillablePersonality sets the "personality" field if the given value is not nil.
func (_u *PersonalityResponseUpdateOne) SetNillablePersonality(v *string) *PersonalityResponseUpdateOne {
	if v != nil {
		_u.SetPersonality(*v)
	}
	return _u
}

// SetResponseIndex sets the "response_index" field.
func (_u *PersonalityResponseUpdateOne) SetResponseIndex(v int) *PersonalityResponseUpdateOne {
	_u.mutation.ResetResponseIndex()
	_u.mutation.SetResponseIndex(v)
	return _u
}

// SetNillableResponseIndex sets the "response_index" field if the given value is not nil.
func (_u *PersonalityResponseUpdateOne) SetNillableResponseIndex(v *int) *PersonalityResponseUpdateOne {
	if v != nil {
		_u.SetResponseIndex(*v)
	}
	return _u
}

// AddResponseIndex adds value to the "response_index" field.
func (_u *PersonalityResponseUpdateOne) AddResponseIndex(v int) *PersonalityResponseUpdateOne {
	_u.mutation.AddResponseIndex(v)
	return _u
}

// SetThinking sets the "thinking" field.
func (_u *PersonalityResponseUpdateOne) SetThinking(v string) *PersonalityResponseUpdateOne {
	_u.mutation.SetThinking(v)
	return _u
}

// SetNillableThinking sets the "thinking" field if the given value is not nil.
func (_u *PersonalityResponseUpdateOne) SetNillableThinking(v *string) *PersonalityResponseUpdateOne {
	if v != nil {
		_u.SetThinking(*v)
	}
	return _u
}

// ClearThinking clears the value of the "thinking" field.
func (_u *PersonalityResponseUpdateOne) ClearThinking() *PersonalityResponseUpdateOne {
	_u.mutation.ClearThinking()
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *PersonalityResponseUpdateOne) SetAnswer(v string) *PersonalityResponseUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *PersonalityResponseUpdateOne) SetNillableAnswer(v *string) *PersonalityResponseUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *PersonalityResponseUpdateOne) SetInputTokens(v int64) *PersonalityResponseUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *PersonalityResponseUpdateOne) SetNillableInputTokens(v *int64) *PersonalityResponseUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *PersonalityResponseUpdateOne) AddInputTokens(v int64) *PersonalityResponseUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *PersonalityResponseUpdateOne) SetOutputTokens(v int64) *PersonalityResponseUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *PersonalityResponseUpdateOne) SetNillableOutputTokens(v *int64) *PersonalityResponseUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *PersonalityResponseUpdateOne) AddOutputTokens(v int64) *PersonalityResponseUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCost sets the "cost" field.
func (_u *PersonalityResponseUpdateOne) SetCost(v decimal.Decimal) *PersonalityResponseUpdateOne {
	_u.mutation.ResetCost()
	_u.mutation.SetCost(v)
	return _u
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_u *PersonalityResponseUpdateOne) SetNillableCost(v *decimal.Decimal) *PersonalityResponseUpdateOne {
	if v != nil {
		_u.SetCost(*v)
	}
	return _u
}

// AddCost adds value to the "cost" field.
func (_u *PersonalityResponseUpdateOne) AddCost(v decimal.Decimal) *PersonalityResponseUpdateOne {
	_u.mutation.AddCost(v)
	return _u
}

// Mutation returns the PersonalityResponseMutation object of the builder.
func (_u *PersonalityResponseUpdateOne) Mutation() *PersonalityResponseMutation {
	return _u.mutation
}

// Where appends a list predicates to the PersonalityResponseUpdate builder.
func (_u *PersonalityResponseUpdateOne) Where(ps ...predicate.PersonalityResponse) *PersonalityResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PersonalityResponseUpdateOne) Select(field string, fields ...string) *PersonalityResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PersonalityResponse entity.
func (_u *PersonalityResponseUpdateOne) Save(ctx context.Context) (*PersonalityResponse, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PersonalityResponseUpdateOne) SaveX(ctx context.Context) *PersonalityResponse {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PersonalityResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PersonalityResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PersonalityResponseUpdateOne) check() error {
	if _u.mutation.RoundCleared() && len(_u.mutation.RoundIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PersonalityResponse.round"`)
	}
	return nil
}

func (_u *PersonalityResponseUpdateOne) sqlSave(ctx context.Context) (_node *PersonalityResponse, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(personalityresponse.Table, personalityresponse.Columns, sqlgraph.NewFieldSpec(personalityresponse.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PersonalityResponse.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, personalityresponse.FieldID)
		for _, f := range fields {
			if !personalityresponse.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != personalityresponse.FieldID {
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
	if value, ok := _u.mutation.Personality(); ok {
		_spec.SetField(personalityresponse.FieldPersonality, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseIndex(); ok {
		_spec.SetField(personalityresponse.FieldResponseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedResponseIndex(); ok {
		_spec.AddField(personalityresponse.FieldResponseIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Thinking(); ok {
		_spec.SetField(personalityresponse.FieldThinking, field.TypeString, value)
	}
	if _u.mutation.ThinkingCleared() {
		_spec.ClearField(personalityresponse.FieldThinking, field.TypeString)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(personalityresponse.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(personalityresponse.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(personalityresponse.FieldInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(personalityresponse.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(personalityresponse.FieldOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.Cost(); ok {
		_spec.SetField(personalityresponse.FieldCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCost(); ok {
		_spec.AddField(personalityresponse.FieldCost, field.TypeFloat64, value)
	}
	_node = &PersonalityResponse{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{personalityresponse.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
