// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxishq/praxis/ent/predicate"
	"github.com/praxishq/praxis/ent/trajectoryevent"
)

// TrajectoryEventDelete is the builder for deleting a TrajectoryEvent entity.
type TrajectoryEventDelete struct {
	config
	hooks    []Hook
	mutation *TrajectoryEventMutation
}

// Where appends a list predicates to the TrajectoryEventDelete builder.
func (_d *TrajectoryEventDelete) Where(ps ...predicate.TrajectoryEvent) *TrajectoryEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TrajectoryEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TrajectoryEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TrajectoryEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(trajectoryevent.Table, sqlgraph.NewFieldSpec(trajectoryevent.FieldID, field.TypeString))
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

// TrajectoryEventDeleteOne is the builder for deleting a single TrajectoryEvent entity.
type TrajectoryEventDeleteOne struct {
	_d *TrajectoryEventDelete
}

// Where appends a list predicates to the TrajectoryEventDelete builder.
func (_d *TrajectoryEventDeleteOne) Where(ps ...predicate.TrajectoryEvent) *TrajectoryEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TrajectoryEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{trajectoryevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TrajectoryEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
