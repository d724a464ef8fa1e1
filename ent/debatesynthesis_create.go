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
	"github.com/roundtable-ai/roundtable/ent/debatesynthesis"
	"github.com/shopspring/decimal"
)

// DebateSynthesisCreate is the builder for creating a DebateSynthesis entity.
type DebateSynthesisCreate struct {
	config
	mutation *DebateSynthesisMutation
	hooks    []Hook
}

// SetDebateID sets the "debate_id" field.
func (_c *DebateSynthesisCreate) SetDebateID(v string) *DebateSynthesisCreate {
	_c.mutation.SetDebateID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *DebateSynthesisCreate) SetContent(v string) *DebateSynthesisCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *DebateSynthesisCreate) SetInputTokens(v int64) *DebateSynthesisCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *DebateSynthesisCreate) SetNillableInputTokens(v *int64) *DebateSynthesisCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *DebateSynthesisCreate) SetOutputTokens(v int64) *DebateSynthesisCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *DebateSynthesisCreate) SetNillableOutputTokens(v *int64) *DebateSynthesisCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCost sets the "cost" field.
func (_c *DebateSynthesisCreate) SetCost(v decimal.Decimal) *DebateSynthesisCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetNillableCost sets the "cost" field if the given value is not nil.
func (_c *DebateSynthesisCreate) SetNillableCost(v *decimal.Decimal) *DebateSynthesisCreate {
	if v != nil {
		_c.SetCost(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DebateSynthesisCreate) SetCreatedAt(v time.Time) *DebateSynthesisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DebateSynthesisCreate) SetNillableCreatedAt(v *time.Time) *DebateSynthesisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DebateSynthesisCreate) SetID(v string) *DebateSynthesisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDebate sets the "debate" edge to the Debate entity.
func (_c *DebateSynthesisCreate) SetDebate(v *Debate) *DebateSynthesisCreate {
	return _c.SetDebateID(v.ID)
}

// Mutation returns the DebateSynthesisMutation object of the builder.
func (_c *DebateSynthesisCreate) Mutation() *DebateSynthesisMutation {
	return _c.mutation
}

// Save creates the DebateSynthesis in the database.
func (_c *DebateSynthesisCreate) Save(ctx context.Context) (*DebateSynthesis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DebateSynthesisCreate) SaveX(ctx context.Context) *DebateSynthesis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateSynthesisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateSynthesisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DebateSynthesisCreate) defaults() {
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := debatesynthesis.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := debatesynthesis.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.Cost(); !ok {
		v := debatesynthesis.DefaultCost()
		_c.mutation.SetCost(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := debatesynthesis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DebateSynthesisCreate) check() error {
	if _, ok := _c.mutation.DebateID(); !ok {
		return &ValidationError{Name: "debate_id", err: errors.New(`ent: missing required field "DebateSynthesis.debate_id"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "DebateSynthesis.content"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "DebateSynthesis.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "DebateSynthesis.output_tokens"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "DebateSynthesis.cost"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DebateSynthesis.created_at"`)}
	}
	if len(_c.mutation.DebateIDs()) == 0 {
		return &ValidationError{Name: "debate", err: errors.New(`ent: missing required edge "DebateSynthesis.debate"`)}
	}
	return nil
}

func (_c *DebateSynthesisCreate) sqlSave(ctx context.Context) (*DebateSynthesis, error) {
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
			return nil, fmt.Errorf("unexpected DebateSynthesis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DebateSynthesisCreate) createSpec() (*DebateSynthesis, *sqlgraph.CreateSpec) {
	var (
		_node = &DebateSynthesis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(debatesynthesis.Table, sqlgraph.NewFieldSpec(debatesynthesis.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(debatesynthesis.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(debatesynthesis.FieldInputTokens, field.TypeInt64, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(debatesynthesis.FieldOutputTokens, field.TypeInt64, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(debatesynthesis.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(debatesynthesis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DebateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   debatesynthesis.DebateTable,
			Columns: []string{debatesynthesis.DebateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(debate.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DebateID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DebateSynthesisCreateBulk is the builder for creating many DebateSynthesis entities in bulk.
type DebateSynthesisCreateBulk struct {
	config
	err      error
	builders []*DebateSynthesisCreate
}

// Save creates the DebateSynthesis entities in the database.
func (_c *DebateSynthesisCreateBulk) Save(ctx context.Context) ([]*DebateSynthesis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DebateSynthesis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DebateSynthesisMutation)
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
func (_c *DebateSynthesisCreateBulk) SaveX(ctx context.Context) []*DebateSynthesis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateSynthesisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateSynthesisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
