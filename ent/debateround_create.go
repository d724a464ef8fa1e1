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
	"github.com/roundtable-ai/roundtable/ent/personalityresponse"
)

// DebateRoundCreate is the builder for creating a DebateRound entity.
type DebateRoundCreate struct {
	config
	mutation *DebateRoundMutation
	hooks    []Hook
}

// SetDebateID sets the "debate_id" field.
func (_c *DebateRoundCreate) SetDebateID(v string) *DebateRoundCreate {
	_c.mutation.SetDebateID(v)
	return _c
}

// SetRoundNumber sets the "round_number" field.
func (_c *DebateRoundCreate) SetRoundNumber(v int) *DebateRoundCreate {
	_c.mutation.SetRoundNumber(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DebateRoundCreate) SetCreatedAt(v time.Time) *DebateRoundCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DebateRoundCreate) SetNillableCreatedAt(v *time.Time) *DebateRoundCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DebateRoundCreate) SetID(v string) *DebateRoundCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetDebate sets the "debate" edge to the Debate entity.
func (_c *DebateRoundCreate) SetDebate(v *Debate) *DebateRoundCreate {
	return _c.SetDebateID(v.ID)
}

// AddResponseIDs adds the "responses" edge to the PersonalityResponse entity by IDs.
func (_c *DebateRoundCreate) AddResponseIDs(ids ...string) *DebateRoundCreate {
	_c.mutation.AddResponseIDs(ids...)
	return _c
}

// AddResponses adds the "responses" edges to the PersonalityResponse entity.
func (_c *DebateRoundCreate) AddResponses(v ...*PersonalityResponse) *DebateRoundCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResponseIDs(ids...)
}

// Mutation returns the DebateRoundMutation object of the builder.
func (_c *DebateRoundCreate) Mutation() *DebateRoundMutation {
	return _c.mutation
}

// Save creates the DebateRound in the database.
func (_c *DebateRoundCreate) Save(ctx context.Context) (*DebateRound, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DebateRoundCreate) SaveX(ctx context.Context) *DebateRound {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateRoundCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateRoundCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DebateRoundCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := debateround.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DebateRoundCreate) check() error {
	if _, ok := _c.mutation.DebateID(); !ok {
		return &ValidationError{Name: "debate_id", err: errors.New(`ent: missing required field "DebateRound.debate_id"`)}
	}
	if _, ok := _c.mutation.RoundNumber(); !ok {
		return &ValidationError{Name: "round_number", err: errors.New(`ent: missing required field "DebateRound.round_number"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DebateRound.created_at"`)}
	}
	if len(_c.mutation.DebateIDs()) == 0 {
		return &ValidationError{Name: "debate", err: errors.New(`ent: missing required edge "DebateRound.debate"`)}
	}
	return nil
}

func (_c *DebateRoundCreate) sqlSave(ctx context.Context) (*DebateRound, error) {
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
			return nil, fmt.Errorf("unexpected DebateRound.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DebateRoundCreate) createSpec() (*DebateRound, *sqlgraph.CreateSpec) {
	var (
		_node = &DebateRound{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(debateround.Table, sqlgraph.NewFieldSpec(debateround.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RoundNumber(); ok {
		_spec.SetField(debateround.FieldRoundNumber, field.TypeInt, value)
		_node.RoundNumber = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(debateround.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.DebateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   debateround.DebateTable,
			Columns: []string{debateround.DebateColumn},
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
	if nodes := _c.mutation.ResponsesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DebateRoundCreateBulk is the builder for creating many DebateRound entities in bulk.
type DebateRoundCreateBulk struct {
	config
	err      error
	builders []*DebateRoundCreate
}

// Save creates the DebateRound entities in the database.
func (_c *DebateRoundCreateBulk) Save(ctx context.Context) ([]*DebateRound, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DebateRound, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DebateRoundMutation)
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
func (_c *DebateRoundCreateBulk) SaveX(ctx context.Context) []*DebateRound {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DebateRoundCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DebateRoundCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
