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
	"github.com/roundtable-ai/roundtable/ent/debate"
	"github.com/roundtable-ai/roundtable/ent/debateround"
	"github.com/roundtable-ai/roundtable/ent/debatesynthesis"
	"github.com/roundtable-ai/roundtable/ent/predicate"
	"github.com/shopspring/decimal"
)

// DebateUpdate is the builder for updating Debate entities.
type DebateUpdate struct {
	config
	hooks    []Hook
	mutation *DebateMutation
}

// Where appends a list predicates to the DebateUpdate builder.
func (_u *DebateUpdate) Where(ps ...predicate.Debate) *DebateUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestion sets the "question" field.
func (_u *DebateUpdate) SetQuestion(v string) *DebateUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableQuestion(v *string) *DebateUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *DebateUpdate) SetProvider(v string) *DebateUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableProvider(v *string) *DebateUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *DebateUpdate) SetModel(v string) *DebateUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableModel(v *string) *DebateUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *DebateUpdate) SetSettings(v map[string]interface{}) *DebateUpdate {
	_u.mutation.SetSettings(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DebateUpdate) SetStatus(v debate.Status) *DebateUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableStatus(v *debate.Status) *DebateUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentRound sets the "current_round" field.
func (_u *DebateUpdate) SetCurrentRound(v int) *DebateUpdate {
	_u.mutation.ResetCurrentRound()
	_u.mutation.SetCurrentRound(v)
	return _u
}

// SetNillableCurrentRound sets the "current_round" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableCurrentRound(v *int) *DebateUpdate {
	if v != nil {
		_u.SetCurrentRound(*v)
	}
	return _u
}

// AddCurrentRound adds value to the "current_round" field.
func (_u *DebateUpdate) AddCurrentRound(v int) *DebateUpdate {
	_u.mutation.AddCurrentRound(v)
	return _u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_u *DebateUpdate) SetTotalInputTokens(v int64) *DebateUpdate {
	_u.mutation.ResetTotalInputTokens()
	_u.mutation.SetTotalInputTokens(v)
	return _u
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableTotalInputTokens(v *int64) *DebateUpdate {
	if v != nil {
		_u.SetTotalInputTokens(*v)
	}
	return _u
}

// AddTotalInputTokens adds value to the "total_input_tokens" field.
func (_u *DebateUpdate) AddTotalInputTokens(v int64) *DebateUpdate {
	_u.mutation.AddTotalInputTokens(v)
	return _u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_u *DebateUpdate) SetTotalOutputTokens(v int64) *DebateUpdate {
	_u.mutation.ResetTotalOutputTokens()
	_u.mutation.SetTotalOutputTokens(v)
	return _u
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableTotalOutputTokens(v *int64) *DebateUpdate {
	if v != nil {
		_u.SetTotalOutputTokens(*v)
	}
	return _u
}

// AddTotalOutputTokens adds value to the "total_output_tokens" field.
func (_u *DebateUpdate) AddTotalOutputTokens(v int64) *DebateUpdate {
	_u.mutation.AddTotalOutputTokens(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *DebateUpdate) SetTotalCost(v decimal.Decimal) *DebateUpdate {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableTotalCost(v *decimal.Decimal) *DebateUpdate {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *DebateUpdate) AddTotalCost(v decimal.Decimal) *DebateUpdate {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DebateUpdate) SetUpdatedAt(v time.Time) *DebateUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DebateUpdate) SetStartedAt(v time.Time) *DebateUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableStartedAt(v *time.Time) *DebateUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *DebateUpdate) ClearStartedAt() *DebateUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DebateUpdate) SetCompletedAt(v time.Time) *DebateUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableCompletedAt(v *time.Time) *DebateUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DebateUpdate) ClearCompletedAt() *DebateUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DebateUpdate) SetErrorMessage(v string) *DebateUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DebateUpdate) SetNillableErrorMessage(v *string) *DebateUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DebateUpdate) ClearErrorMessage() *DebateUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddRoundIDs adds the "rounds" edge to the DebateRound entity by IDs.
func (_u *DebateUpdate) AddRoundIDs(ids ...string) *DebateUpdate {
	_u.mutation.AddRoundIDs(ids...)
	return _u
}

// AddRounds adds the "rounds" edges to the DebateRound entity.
func (_u *DebateUpdate) AddRounds(v ...*DebateRound) *DebateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoundIDs(ids...)
}

// SetSynthesisID sets the "synthesis" edge to the DebateSynthesis entity by ID.
func (_u *DebateUpdate) SetSynthesisID(id string) *DebateUpdate {
	_u.mutation.SetSynthesisID(id)
	return _u
}

// SetNillableSynthesisID sets the "synthesis" edge to the DebateSynthesis entity by ID if the given value is not nil.
func (_u *DebateUpdate) SetNillableSynthesisID(id *string) *DebateUpdate {
	if id != nil {
		_u = _u.SetSynthesisID(*id)
	}
	return _u
}

// SetSynthesis sets the "synthesis" edge to the DebateSynthesis entity.
func (_u *DebateUpdate) SetSynthesis(v *DebateSynthesis) *DebateUpdate {
	return _u.SetSynthesisID(v.ID)
}

// Mutation returns the DebateMutation object of the builder.
func (_u *DebateUpdate) Mutation() *DebateMutation {
	return _u.mutation
}

// ClearRounds clears all "rounds" edges to the DebateRound entity.
func (_u *DebateUpdate) ClearRounds() *DebateUpdate {
	_u.mutation.ClearRounds()
	return _u
}

// RemoveRoundIDs removes the "rounds" edge to DebateRound entities by IDs.
func (_u *DebateUpdate) RemoveRoundIDs(ids ...string) *DebateUpdate {
	_u.mutation.RemoveRoundIDs(ids...)
	return _u
}

// RemoveRounds removes "rounds" edges to DebateRound entities.
func (_u *DebateUpdate) RemoveRounds(v ...*DebateRound) *DebateUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoundIDs(ids...)
}

// ClearSynthesis clears the "synthesis" edge to the DebateSynthesis entity.
func (_u *DebateUpdate) ClearSynthesis() *DebateUpdate {
	_u.mutation.ClearSynthesis()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DebateUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DebateUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DebateUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := debate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := debate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Debate.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DebateUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debate.Table, debate.Columns, sqlgraph.NewFieldSpec(debate.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(debate.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(debate.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(debate.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(debate.FieldSettings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(debate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentRound(); ok {
		_spec.SetField(debate.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentRound(); ok {
		_spec.AddField(debate.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalInputTokens(); ok {
		_spec.SetField(debate.FieldTotalInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalInputTokens(); ok {
		_spec.AddField(debate.FieldTotalInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalOutputTokens(); ok {
		_spec.SetField(debate.FieldTotalOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalOutputTokens(); ok {
		_spec.AddField(debate.FieldTotalOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(debate.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(debate.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(debate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(debate.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(debate.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(debate.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(debate.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(debate.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(debate.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.RoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debate.RoundsTable,
			Columns: []string{debate.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debateround.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoundsIDs(); len(nodes) > 0 && !_u.mutation.RoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debate.RoundsTable,
			Columns: []string{debate.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debateround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoundsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debate.RoundsTable,
			Columns: []string{debate.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debateround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SynthesisCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   debate.SynthesisTable,
			Columns: []string{debate.SynthesisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debatesynthesis.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SynthesisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   debate.SynthesisTable,
			Columns: []string{debate.SynthesisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debatesynthesis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{debate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DebateUpdateOne is the builder for updating a single Debate entity.
type DebateUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DebateMutation
}

// SetQuestion sets the "question" field.
func (_u *DebateUpdateOne) SetQuestion(v string) *DebateUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableQuestion(v *string) *DebateUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *DebateUpdateOne) SetProvider(v string) *DebateUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableProvider(v *string) *DebateUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetModel sets the "model" field.
func (_u *DebateUpdateOne) SetModel(v string) *DebateUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableModel(v *string) *DebateUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetSettings sets the "settings" field.
func (_u *DebateUpdateOne) SetSettings(v map[string]interface{}) *DebateUpdateOne {
	_u.mutation.SetSettings(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DebateUpdateOne) SetStatus(v debate.Status) *DebateUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableStatus(v *debate.Status) *DebateUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentRound sets the "current_round" field.
func (_u *DebateUpdateOne) SetCurrentRound(v int) *DebateUpdateOne {
	_u.mutation.ResetCurrentRound()
	_u.mutation.SetCurrentRound(v)
	return _u
}

// SetNillableCurrentRound sets the "current_round" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableCurrentRound(v *int) *DebateUpdateOne {
	if v != nil {
		_u.SetCurrentRound(*v)
	}
	return _u
}

// AddCurrentRound adds value to the "current_round" field.
func (_u *DebateUpdateOne) AddCurrentRound(v int) *DebateUpdateOne {
	_u.mutation.AddCurrentRound(v)
	return _u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_u *DebateUpdateOne) SetTotalInputTokens(v int64) *DebateUpdateOne {
	_u.mutation.ResetTotalInputTokens()
	_u.mutation.SetTotalInputTokens(v)
	return _u
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableTotalInputTokens(v *int64) *DebateUpdateOne {
	if v != nil {
		_u.SetTotalInputTokens(*v)
	}
	return _u
}

// AddTotalInputTokens adds value to the "total_input_tokens" field.
func (_u *DebateUpdateOne) AddTotalInputTokens(v int64) *DebateUpdateOne {
	_u.mutation.AddTotalInputTokens(v)
	return _u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_u *DebateUpdateOne) SetTotalOutputTokens(v int64) *DebateUpdateOne {
	_u.mutation.ResetTotalOutputTokens()
	_u.mutation.SetTotalOutputTokens(v)
	return _u
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableTotalOutputTokens(v *int64) *DebateUpdateOne {
	if v != nil {
		_u.SetTotalOutputTokens(*v)
	}
	return _u
}

// AddTotalOutputTokens adds value to the "total_output_tokens" field.
func (_u *DebateUpdateOne) AddTotalOutputTokens(v int64) *DebateUpdateOne {
	_u.mutation.AddTotalOutputTokens(v)
	return _u
}

// SetTotalCost sets the "total_cost" field.
func (_u *DebateUpdateOne) SetTotalCost(v decimal.Decimal) *DebateUpdateOne {
	_u.mutation.ResetTotalCost()
	_u.mutation.SetTotalCost(v)
	return _u
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableTotalCost(v *decimal.Decimal) *DebateUpdateOne {
	if v != nil {
		_u.SetTotalCost(*v)
	}
	return _u
}

// AddTotalCost adds value to the "total_cost" field.
func (_u *DebateUpdateOne) AddTotalCost(v decimal.Decimal) *DebateUpdateOne {
	_u.mutation.AddTotalCost(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DebateUpdateOne) SetUpdatedAt(v time.Time) *DebateUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *DebateUpdateOne) SetStartedAt(v time.Time) *DebateUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableStartedAt(v *time.Time) *DebateUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *DebateUpdateOne) ClearStartedAt() *DebateUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *DebateUpdateOne) SetCompletedAt(v time.Time) *DebateUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableCompletedAt(v *time.Time) *DebateUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *DebateUpdateOne) ClearCompletedAt() *DebateUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *DebateUpdateOne) SetErrorMessage(v string) *DebateUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableErrorMessage(v *string) *DebateUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *DebateUpdateOne) ClearErrorMessage() *DebateUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// AddRoundIDs adds the "rounds" edge to the DebateRound entity by IDs.
func (_u *DebateUpdateOne) AddRoundIDs(ids ...string) *DebateUpdateOne {
	_u.mutation.AddRoundIDs(ids...)
	return _u
}

// AddRounds adds the "rounds" edges to the DebateRound entity.
func (_u *DebateUpdateOne) AddRounds(v ...*DebateRound) *DebateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRoundIDs(ids...)
}

// SetSynthesisID sets the "synthesis" edge to the DebateSynthesis entity by ID.
func (_u *DebateUpdateOne) SetSynthesisID(id string) *DebateUpdateOne {
	_u.mutation.SetSynthesisID(id)
	return _u
}

// SetNillableSynthesisID sets the "synthesis" edge to the DebateSynthesis entity by ID if the given value is not nil.
func (_u *DebateUpdateOne) SetNillableSynthesisID(id *string) *DebateUpdateOne {
	if id != nil {
		_u = _u.SetSynthesisID(*id)
	}
	return _u
}

// SetSynthesis sets the "synthesis" edge to the DebateSynthesis entity.
func (_u *DebateUpdateOne) SetSynthesis(v *DebateSynthesis) *DebateUpdateOne {
	return _u.SetSynthesisID(v.ID)
}

// Mutation returns the DebateMutation object of the builder.
func (_u *DebateUpdateOne) Mutation() *DebateMutation {
	return _u.mutation
}

// ClearRounds clears all "rounds" edges to the DebateRound entity.
func (_u *DebateUpdateOne) ClearRounds() *DebateUpdateOne {
	_u.mutation.ClearRounds()
	return _u
}

// RemoveRoundIDs removes the "rounds" edge to DebateRound entities by IDs.
func (_u *DebateUpdateOne) RemoveRoundIDs(ids ...string) *DebateUpdateOne {
	_u.mutation.RemoveRoundIDs(ids...)
	return _u
}

// RemoveRounds removes "rounds" edges to DebateRound entities.
func (_u *DebateUpdateOne) RemoveRounds(v ...*DebateRound) *DebateUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRoundIDs(ids...)
}

// ClearSynthesis clears the "synthesis" edge to the DebateSynthesis entity.
func (_u *DebateUpdateOne) ClearSynthesis() *DebateUpdateOne {
	_u.mutation.ClearSynthesis()
	return _u
}

// Where appends a list predicates to the DebateUpdate builder.
func (_u *DebateUpdateOne) Where(ps ...predicate.Debate) *DebateUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DebateUpdateOne) Select(field string, fields ...string) *DebateUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Debate entity.
func (_u *DebateUpdateOne) Save(ctx context.Context) (*Debate, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DebateUpdateOne) SaveX(ctx context.Context) *Debate {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DebateUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DebateUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DebateUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := debate.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DebateUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := debate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Debate.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DebateUpdateOne) sqlSave(ctx context.Context) (_node *Debate, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(debate.Table, debate.Columns, sqlgraph.NewFieldSpec(debate.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Debate.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, debate.FieldID)
		for _, f := range fields {
			if !debate.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != debate.FieldID {
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
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(debate.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(debate.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(debate.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Settings(); ok {
		_spec.SetField(debate.FieldSettings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(debate.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentRound(); ok {
		_spec.SetField(debate.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentRound(); ok {
		_spec.AddField(debate.FieldCurrentRound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalInputTokens(); ok {
		_spec.SetField(debate.FieldTotalInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalInputTokens(); ok {
		_spec.AddField(debate.FieldTotalInputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalOutputTokens(); ok {
		_spec.SetField(debate.FieldTotalOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalOutputTokens(); ok {
		_spec.AddField(debate.FieldTotalOutputTokens, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.TotalCost(); ok {
		_spec.SetField(debate.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalCost(); ok {
		_spec.AddField(debate.FieldTotalCost, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(debate.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(debate.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(debate.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(debate.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(debate.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(debate.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(debate.FieldErrorMessage, field.TypeString)
	}
	if _u.mutation.RoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debate.RoundsTable,
			Columns: []string{debate.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debateround.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRoundsIDs(); len(nodes) > 0 && !_u.mutation.RoundsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debate.RoundsTable,
			Columns: []string{debate.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debateround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RoundsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   debate.RoundsTable,
			Columns: []string{debate.RoundsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debateround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.SynthesisCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   debate.SynthesisTable,
			Columns: []string{debate.SynthesisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debatesynthesis.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.SynthesisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   debate.SynthesisTable,
			Columns: []string{debate.SynthesisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debatesynthesis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Debate{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{debate.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
