// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roundtable-ai/roundtable/ent/usagerecord"
	"github.com/shopspring/decimal"
)

// UsageRecordCreate is the builder for creating a UsageRecord entity.
type UsageRecordCreate struct {
	config
	mutation *UsageRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *UsageRecordCreate) SetUserID(v string) *UsageRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDebateID sets the "debate_id" field.
func (_c *UsageRecordCreate) SetDebateID(v string) *UsageRecordCreate {
	_c.mutation.SetDebateID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *UsageRecordCreate) SetProvider(v string) *UsageRecordCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *UsageRecordCreate) SetModel(v string) *UsageRecordCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *UsageRecordCreate) SetInputTokens(v int64) *UsageRecordCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *UsageRecordCreate) SetOutputTokens(v int64) *UsageRecordCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetCachedTokens sets the "cached_tokens" field.
func (_c *UsageRecordCreate) SetCachedTokens(v int64) *UsageRecordCreate {
	_c.mutation.SetCachedTokens(v)
	return _c
}

// SetNillableCachedTokens sets the "cached_tokens" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableCachedTokens(v *int64) *UsageRecordCreate {
	if v != nil {
		_c.SetCachedTokens(*v)
	}
	return _c
}

// SetTotalTokens sets the "total_tokens" field.
func (_c *UsageRecordCreate) SetTotalTokens(v int64) *UsageRecordCreate {
	_c.mutation.SetTotalTokens(v)
	return _c
}

// SetCost sets the "cost" field.
func (_c *UsageRecordCreate) SetCost(v decimal.Decimal) *UsageRecordCreate {
	_c.mutation.SetCost(v)
	return _c
}

// SetOperation sets the "operation" field.
func (_c *UsageRecordCreate) SetOperation(v usagerecord.Operation) *UsageRecordCreate {
	_c.mutation.SetOperation(v)
	return _c
}

// SetPersonality sets the "personality" field.
func (_c *UsageRecordCreate) SetPersonality(v string) *UsageRecordCreate {
	_c.mutation.SetPersonality(v)
	return _c
}

// SetNillablePersonality sets the "personality" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillablePersonality(v *string) *UsageRecordCreate {
	if v != nil {
		_c.SetPersonality(*v)
	}
	return _c
}

// SetRoundNumber sets the "round_number" field.
func (_c *UsageRecordCreate) SetRoundNumber(v int) *UsageRecordCreate {
	_c.mutation.SetRoundNumber(v)
	return _c
}

// SetNillableRoundNumber sets the "round_number" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableRoundNumber(v *int) *UsageRecordCreate {
	if v != nil {
		_c.SetRoundNumber(*v)
	}
	return _c
}

// SetEstimated sets the "estimated" field.
func (_c *UsageRecordCreate) SetEstimated(v bool) *UsageRecordCreate {
	_c.mutation.SetEstimated(v)
	return _c
}

// SetNillableEstimated sets the "estimated" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableEstimated(v *bool) *UsageRecordCreate {
	if v != nil {
		_c.SetEstimated(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsageRecordCreate) SetCreatedAt(v time.Time) *UsageRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsageRecordCreate) SetNillableCreatedAt(v *time.Time) *UsageRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UsageRecordCreate) SetID(v string) *UsageRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_c *UsageRecordCreate) Mutation() *UsageRecordMutation {
	return _c.mutation
}

// Save creates the UsageRecord in the database.
func (_c *UsageRecordCreate) Save(ctx context.Context) (*UsageRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsageRecordCreate) SaveX(ctx context.Context) *UsageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsageRecordCreate) defaults() {
	if _, ok := _c.mutation.CachedTokens(); !ok {
		v := usagerecord.DefaultCachedTokens
		_c.mutation.SetCachedTokens(v)
	}
	if _, ok := _c.mutation.Estimated(); !ok {
		v := usagerecord.DefaultEstimated
		_c.mutation.SetEstimated(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usagerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsageRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "UsageRecord.user_id"`)}
	}
	if _, ok := _c.mutation.DebateID(); !ok {
		return &ValidationError{Name: "debate_id", err: errors.New(`ent: missing required field "UsageRecord.debate_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "UsageRecord.provider"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "UsageRecord.model"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "UsageRecord.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "UsageRecord.output_tokens"`)}
	}
	if _, ok := _c.mutation.CachedTokens(); !ok {
		return &ValidationError{Name: "cached_tokens", err: errors.New(`ent: missing required field "UsageRecord.cached_tokens"`)}
	}
	if _, ok := _c.mutation.TotalTokens(); !ok {
		return &ValidationError{Name: "total_tokens", err: errors.New(`ent: missing required field "UsageRecord.total_tokens"`)}
	}
	if _, ok := _c.mutation.Cost(); !ok {
		return &ValidationError{Name: "cost", err: errors.New(`ent: missing required field "UsageRecord.cost"`)}
	}
	if _, ok := _c.mutation.Operation(); !ok {
		return &ValidationError{Name: "operation", err: errors.New(`ent: missing required field "UsageRecord.operation"`)}
	}
	if v, ok := _c.mutation.Operation(); ok {
		if err := usagerecord.OperationValidator(v); err != nil {
			return &ValidationError{Name: "operation", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.operation": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Estimated(); !ok {
		return &ValidationError{Name: "estimated", err: errors.New(`ent: missing required field "UsageRecord.estimated"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "UsageRecord.created_at"`)}
	}
	return nil
}

func (_c *UsageRecordCreate) sqlSave(ctx context.Context) (*UsageRecord, error) {
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
			return nil, fmt.Errorf("unexpected UsageRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UsageRecordCreate) createSpec() (*UsageRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &UsageRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usagerecord.Table, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(usagerecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.DebateID(); ok {
		_spec.SetField(usagerecord.FieldDebateID, field.TypeString, value)
		_node.DebateID = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(usagerecord.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(usagerecord.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(usagerecord.FieldInputTokens, field.TypeInt64, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(usagerecord.FieldOutputTokens, field.TypeInt64, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CachedTokens(); ok {
		_spec.SetField(usagerecord.FieldCachedTokens, field.TypeInt64, value)
		_node.CachedTokens = value
	}
	if value, ok := _c.mutation.TotalTokens(); ok {
		_spec.SetField(usagerecord.FieldTotalTokens, field.TypeInt64, value)
		_node.TotalTokens = value
	}
	if value, ok := _c.mutation.Cost(); ok {
		_spec.SetField(usagerecord.FieldCost, field.TypeFloat64, value)
		_node.Cost = value
	}
	if value, ok := _c.mutation.Operation(); ok {
		_spec.SetField(usagerecord.FieldOperation, field.TypeEnum, value)
		_node.Operation = value
	}
	if value, ok := _c.mutation.Personality(); ok {
		_spec.SetField(usagerecord.FieldPersonality, field.TypeString, value)
		_node.Personality = value
	}
	if value, ok := _c.mutation.RoundNumber(); ok {
		_spec.SetField(usagerecord.FieldRoundNumber, field.TypeInt, value)
		_node.RoundNumber = &value
	}
	if value, ok := _c.mutation.Estimated(); ok {
		_spec.SetField(usagerecord.FieldEstimated, field.TypeBool, value)
		_node.Estimated = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usagerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// UsageRecordCreateBulk is the builder for creating many UsageRecord entities in bulk.
type UsageRecordCreateBulk struct {
	config
	err      error
	builders []*UsageRecordCreate
}

// Save creates the UsageRecord entities in the database.
func (_c *UsageRecordCreateBulk) Save(ctx context.Context) ([]*UsageRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*UsageRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsageRecordMutation)
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
func (_c *UsageRecordCreateBulk) SaveX(ctx context.Context) []*UsageRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsageRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsageRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
