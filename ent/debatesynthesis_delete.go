// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/roundtable-ai/roundtable/ent/debatesynthesis"
	"github.com/roundtable-ai/roundtable/ent/predicate"
)

// DebateSynthesisDelete is the builder for deleting a DebateSynthesis entity.
type DebateSynthesisDelete struct {
	config
	hooks    []Hook
	mutation *DebateSynthesisMutation
}

// Where appends a list predicates to the DebateSynthesisDelete builder.
func (_d *DebateSynthesisDelete) Where(ps ...predicate.DebateSynthesis) *DebateSynthesisDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DebateSynthesisDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DebateSynthesisDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DebateSynthesisDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(debatesynthesis.Table, sqlgraph.NewFieldSpec(debatesynthesis.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DebateSynthesisDeleteOne is the builder for deleting a single DebateSynthesis entity.
type DebateSynthesisDeleteOne struct {
	_d *DebateSynthesisDelete
}

// Where appends a list predicates to the DebateSynthesisDelete builder.
func (_d *DebateSynthesisDeleteOne) Where(ps ...predicate.DebateSynthesis) *DebateSynthesisDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DebateSynthesisDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{debatesynthesis.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DebateSynthesisDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
