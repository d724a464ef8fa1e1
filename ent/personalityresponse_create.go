// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roundtable-ai/roundtable/ent/debateround"
	"github.com/roundtable-ai/roundtable/ent/personalityresponse"
	"github.com/shopspring/decimal"
)

// PersonalityResponseCreate is the builder for creating a PersonalityResponse entity.
type PersonalityResponseCreate struct {
	config
	mutation *PersonalityResponseMutation
	hooks    []Hook
}

// SetRoundID sets the "round_id" field.
func (_c *PersonalityResponseCreate) SetRoundID(v string) *PersonalityResponseCreate {
	_c.mutation.SetRoundID(v)
	return _c
}

// SetPersonality sets the "personality" field.
func (_c *PersonalityResponseCreate) SetPersonality(v string) *PersonalityResponseCreate {
	_c.mutation.SetPersonality(v)
	return _c
}

// SetResponseIndex sets the "response_index" field.
func (_c *PersonalityResponseCreate) SetResponseIndex(v int) *PersonalityResponseCreate {
	_c.mutation.SetResponseIndex(v)
	return _c
}

// SetThinking sets the "thinking" field.
func (_c *PersonalityResponseCreate) SetThinking(v string) *PersonalityResponseCreate {
	_c.mutation.SetThinking(v)
	return _c
}

// SetNillableThinking sets the "thinking" field if the given value is not nil.
func (_c *PersonalityResponseCreate) SetNillableThinking(v *string) *PersonalityResponseCreate {
	if v != nil {
		_c.SetThinking(*v)
	}
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *PersonalityResponseCreate) SetAnswer(v string) *PersonalityResponseCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *PersonalityResponseCreate) SetInputTokens(v int64) *PersonalityResponseCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *PersonalityResponseCreate) SetNillableInputTokens(v *int64) *PersonalityResponseCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *PersonalityResponseCreate) SetOutputTokens(v int64) *PersonalityResponseCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *PersonalityResponseCreate) SetNillableOutputTokens(v *int64) *PersonalityResponseCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *PersonalityResponseCreate) SetCost(v decimal.Decimal) *PersonalityResponseCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *PersonalityResponseCreate) SetNillableCost(v *decimal.Decimal) *PersonalityResponseCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PersonalityResponseCreate) SetCreatedAt(v time.Time) *PersonalityResponseCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PersonalityResponseCreate) SetNillableCreatedAt(v *time.Time) *PersonalityResponseCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PersonalityResponseCreate) SetID(v string) *PersonalityResponseCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRound sets the "round" edge to the DebateRound entity.
func (_c *PersonalityResponseCreate) SetRound(v *DebateRound) *PersonalityResponseCreate {
	return _c.SetRoundID(v.ID)
}

// Mutation returns the PersonalityResponseMutation object of the builder.
func (_c *PersonalityResponseCreate) Mutation() *PersonalityResponseMutation {
	return _c.mutation
}

// Save creates the PersonalityResponse in the database.
func (_c *PersonalityResponseCreate) Save(ctx context.Context) (*PersonalityResponse, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PersonalityResponseCreate) SaveX(ctx context.Context) *PersonalityResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonalityResponseCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonalityResponseCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PersonalityResponseCreate) defaults() {
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := personalityresponse.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := personalityresponse.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.Cost(); !ok {
		v := personalityresponse.DefaultCost()
		_c.mutation.SetCost(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := personalityresponse.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PersonalityResponseCreate) check() error {
	if _, ok := _c.mutation.RoundID(); !ok {
		return &ValidationError{Name: "round_id", err: errors.New(`ent: missing required field "PersonalityResponse.round_id"`)}
	}
	if _, ok := _c.mutation.Personality(); !ok {
		return &ValidationError{Name: "personality", err: errors.New(`ent: missing required field "PersonalityResponse.personality"`)}
	}
	if _, ok := _c.mutation.ResponseIndex(); !ok {
		return &ValidationError{Name: "response_index", err: errors.New(`ent: missing required field "PersonalityResponse.response_index"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "PersonalityResponse.answer"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "PersonalityResponse.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "PersonalityResponse.output_tokens"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "PersonalityResponse.cost"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PersonalityResponse.created_at"`)}
	}
	if len(_c.mutation.RoundIDs()) == 0 {
		return &ValidationError{Name: "round", err: errors.New(`ent: missing required edge "PersonalityResponse.round"`)}
	}
	return nil
}

func (_c *PersonalityResponseCreate) sqlSave(ctx context.Context) (*PersonalityResponse, error) {
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
			return nil, fmt.Errorf("unexpected PersonalityResponse.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PersonalityResponseCreate) createSpec() (*PersonalityResponse, *sqlgraph.CreateSpec) {
	var (
		_node = &PersonalityResponse{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(personalityresponse.Table, sqlgraph.NewFieldSpec(personalityresponse.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Personality(); ok {
		_spec.SetField(personalityresponse.FieldPersonality, field.TypeString, value)
		_node.Personality = value
	}
	if value, ok := _c.mutation.ResponseIndex(); ok {
		_spec.SetField(personalityresponse.FieldResponseIndex, field.TypeInt, value)
		_node.ResponseIndex = value
	}
	if value, ok := _c.mutation.Thinking(); ok {
		_spec.SetField(personalityresponse.FieldThinking, field.TypeString, value)
		_node.Thinking = &value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(personalityresponse.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(personalityresponse.FieldInputTokens, field.TypeInt64, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(personalityresponse.FieldOutputTokens, field.TypeInt64, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(personalityresponse.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(personalityresponse.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.RoundIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   personalityresponse.RoundTable,
			Columns: []string{personalityresponse.RoundColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debateround.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RoundID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PersonalityResponseCreateBulk is the builder for creating many PersonalityResponse entities in bulk.
type PersonalityResponseCreateBulk struct {
	config
	err      error
	builders []*PersonalityResponseCreate
}

// Save creates the PersonalityResponse entities in the database.
func (_c *PersonalityResponseCreateBulk) Save(ctx context.Context) ([]*PersonalityResponse, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PersonalityResponse, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PersonalityResponseMutation)
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
func (_c *PersonalityResponseCreateBulk) SaveX(ctx context.Context) []*PersonalityResponse {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PersonalityResponseCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PersonalityResponseCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
