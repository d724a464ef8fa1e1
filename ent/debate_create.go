// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roundtable-ai/roundtable/ent/debate"
	"github.com/roundtable-ai/roundtable/ent/debateround"
	"github.com/roundtable-ai/roundtable/ent/debatesynthesis"
	"github.com/shopspring/decimal"
)

// DebateCreate is the builder for creating a Debate entity.
type DebateCreate struct {
	config
	mutation *DebateMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *DebateCreate) SetUserID(v string) *DebateCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *DebateCreate) SetQuestion(v string) *DebateCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *DebateCreate) SetProvider(v string) *DebateCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *DebateCreate) SetModel(v string) *DebateCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetSettings sets the "settings" field.
func (_c *DebateCreate) SetSettings(v map[string]interface{}) *DebateCreate {
	_c.mutation.SetSettings(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DebateCreate) SetStatus(v debate.Status) *DebateCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DebateCreate) SetNillableStatus(v *debate.Status) *DebateCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentRound sets the "current_round" field.
func (_c *DebateCreate) SetCurrentRound(v int) *DebateCreate {
	_c.mutation.SetCurrentRound(v)
	return _c
}

// SetNillableCurrentRound sets the "current_round" field if the given value is not nil.
func (_c *DebateCreate) SetNillableCurrentRound(v *int) *DebateCreate {
	if v != nil {
		_c.SetCurrentRound(*v)
	}
	return _c
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_c *DebateCreate) SetTotalInputTokens(v int64) *DebateCreate {
	_c.mutation.SetTotalInputTokens(v)
	return _c
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_c *DebateCreate) SetNillableTotalInputTokens(v *int64) *DebateCreate {
	if v != nil {
		_c.SetTotalInputTokens(*v)
	}
	return _c
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_c *DebateCreate) SetTotalOutputTokens(v int64) *DebateCreate {
	_c.mutation.SetTotalOutputTokens(v)
	return _c
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_c *DebateCreate) SetNillableTotalOutputTokens(v *int64) *DebateCreate {
	if v != nil {
		_c.SetTotalOutputTokens(*v)
	}
	return _c
}

// SetTotalCost sets the "total_cost" field.
func (_c *DebateCreate) SetTotalCost(v decimal.Decimal) *DebateCreate {
	_c.mutation.SetTotalCost(v)
	return _c
}

// SetNillableTotalCost sets the "total_cost" field if the given value is not nil.
func (_c *DebateCreate) SetNillableTotalCost(v *decimal.Decimal) *DebateCreate {
	if v != nil {
		_c.SetTotalCost(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DebateCreate) SetCreatedAt(v time.Time) *DebateCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DebateCreate) SetNillableCreatedAt(v *time.Time) *DebateCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DebateCreate) SetUpdatedAt(v time.Time) *DebateCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DebateCreate) SetNillableUpdatedAt(v *time.Time) *DebateCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *DebateCreate) SetStartedAt(v time.Time) *DebateCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *DebateCreate) SetNillableStartedAt(v *time.Time) *DebateCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *DebateCreate) SetCompletedAt(v time.Time) *DebateCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *DebateCreate) SetNillableCompletedAt(v *time.Time) *DebateCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *DebateCreate) SetErrorMessage(v string) *DebateCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *DebateCreate) SetNillableErrorMessage(v *string) *DebateCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DebateCreate) SetID(v string) *DebateCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddRoundIDs adds the "rounds" edge to the DebateRound entity by IDs.
func (_c *DebateCreate) AddRoundIDs(ids ...string) *DebateCreate {
	_c.mutation.AddRoundIDs(ids...)
	return _c
}

// AddRounds adds the "rounds" edges to the DebateRound entity.
func (_c *DebateCreate) AddRounds(v ...*DebateRound) *DebateCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRoundIDs(ids...)
}

// SetSynthesisID sets the "synthesis" edge to the DebateSynthesis entity by ID.
func (_c *DebateCreate) SetSynthesisID(id string) *DebateCreate {
	_c.mutation.SetSynthesisID(id)
	return _c
}

// SetNillableSynthesisID sets the "synthesis" edge to the DebateSynthesis entity by ID if the given value is not nil.
func (_c *DebateCreate) SetNillableSynthesisID(id *string) *DebateCreate {
	if id != nil {
		_c = _c.SetSynthesisID(*id)
	}
	return _c
}

// SetSynthesis sets the "synthesis" edge to the DebateSynthesis entity.
func (_c *DebateCreate) SetSynthesis(v *DebateSynthesis) *DebateCreate {
	return _c.SetSynthesisID(v.ID)
}

// Mutation returns the DebateMutation object of the builder.
func (_c *DebateCreate) Mutation() *DebateMutation {
	return _c.mutation
}

// Save creates the Debate in the database.
func (_c *DebateCreate) Save(ctx context.Context) (*Debate, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DebateCreate) SaveX(ctx context.Context) *Debate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DebateCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := debate.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CurrentRound(); !ok {
		v := debate.DefaultCurrentRound
		_c.mutation.SetCurrentRound(v)
	}
	if _, ok := _c.mutation.TotalInputTokens(); !ok {
		v := debate.DefaultTotalInputTokens
		_c.mutation.SetTotalInputTokens(v)
	}
	if _, ok := _c.mutation.TotalOutputTokens(); !ok {
		v := debate.DefaultTotalOutputTokens
		_c.mutation.SetTotalOutputTokens(v)
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		v := debate.DefaultTotalCost()
		_c.mutation.SetTotalCost(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := debate.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := debate.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DebateCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Debate.user_id"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Debate.question"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "Debate.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Debate.model"`)}
	}
	if _, ok := _c.mutation.Settings(); !ok {
		return &ValidationError{Name: "settings", err: errors.New(`ent: missing required field "Debate.settings"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Debate.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := debate.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Debate.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrentRound(); !ok {
		return &ValidationError{Name: "current_round", err: errors.New(`ent: missing required field "Debate.current_round"`)}
	}
	if _, ok := _c.mutation.TotalInputTokens(); !ok {
		return &ValidationError{Name: "total_input_tokens", err: errors.New(`ent: missing required field "Debate.total_input_tokens"`)}
	}
	if _, ok := _c.mutation.TotalOutputTokens(); !ok {
		return &ValidationError{Name: "total_output_tokens", err: errors.New(`ent: missing required field "Debate.total_output_tokens"`)}
	}
	if _, ok := _c.mutation.TotalCost(); !ok {
		return &ValidationError{Name: "total_cost", err: errors.New(`ent: missing required field "Debate.total_cost"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Debate.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Debate.updated_at"`)}
	}
	return nil
}

func (_c *DebateCreate) sqlSave(ctx context.Context) (*Debate, error) {
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
			return nil, fmt.Errorf("unexpected Debate.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DebateCreate) createSpec() (*Debate, *sqlgraph.CreateSpec) {
	var (
		_node = &Debate{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(debate.Table, sqlgraph.NewFieldSpec(debate.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(debate.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(debate.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(debate.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(debate.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.Settings(); ok {
		_spec.SetField(debate.FieldSettings, field.TypeJSON, value)
		_node.Settings = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(debate.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentRound(); ok {
		_spec.SetField(debate.FieldCurrentRound, field.TypeInt, value)
		_node.CurrentRound = value
	}
	if value, ok := _c.mutation.TotalInputTokens(); ok {
		_spec.SetField(debate.FieldTotalInputTokens, field.TypeInt64, value)
		_node.TotalInputTokens = value
	}
	if value, ok := _c.mutation.TotalOutputTokens(); ok {
		_spec.SetField(debate.FieldTotalOutputTokens, field.TypeInt64, value)
		_node.TotalOutputTokens = value
	}
	if value, ok := _c.mutation.TotalCost(); ok {
		_spec.SetField(debate.FieldTotalCost, field.TypeFloat64, value)
		_node.TotalCost = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(debate.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(debate.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(debate.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(debate.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(debate.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.RoundsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.SynthesisIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DebateCreateBulk is the builder for creating many Debate entities in bulk.
type DebateCreateBulk struct {
	config
	err      error
	builders []*DebateCreate
}

// Save creates the Debate entities in the database.
func (_c *DebateCreateBulk) Save(ctx context.Context) ([]*Debate, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Debate, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DebateMutation)
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
func (_c *DebateCreateBulk) SaveX(ctx context.Context) []*Debate {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
