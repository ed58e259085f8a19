// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxishq/praxis/ent/cooccurrence"
	"github.com/praxishq/praxis/ent/predicate"
)

// CooccurrenceDelete is the builder for deleting a Cooccurrence entity.
type CooccurrenceDelete struct {
	config
	hooks    []Hook
	mutation *CooccurrenceMutation
}

// Where appends a list predicates to the CooccurrenceDelete builder.
func (_d *CooccurrenceDelete) Where(ps ...predicate.Cooccurrence) *CooccurrenceDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CooccurrenceDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CooccurrenceDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CooccurrenceDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(cooccurrence.Table, sqlgraph.NewFieldSpec(cooccurrence.FieldID, field.TypeString))
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

// CooccurrenceDeleteOne is the builder for deleting a single Cooccurrence entity.
type CooccurrenceDeleteOne struct {
	_d *CooccurrenceDelete
}

// Where appends a list predicates to the CooccurrenceDelete builder.
func (_d *CooccurrenceDeleteOne) Where(ps ...predicate.Cooccurrence) *CooccurrenceDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CooccurrenceDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{cooccurrence.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CooccurrenceDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
