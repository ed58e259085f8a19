// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxishq/praxis/ent/contribution"
	"github.com/praxishq/praxis/ent/predicate"
)

// ContributionUpdate is the builder for updating Contribution entities.
type ContributionUpdate struct {
	config
	hooks    []Hook
	mutation *ContributionMutation
}

// Where appends a list predicates to the ContributionUpdate builder.
func (_u *ContributionUpdate) Where(ps ...predicate.Contribution) *ContributionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTouchCount sets the "touch_count" field.
func (_u *ContributionUpdate) SetTouchCount(v int) *ContributionUpdate {
	_u.mutation.ResetTouchCount()
	_u.mutation.SetTouchCount(v)
	return _u
}

// SetNillableTouchCount sets the "touch_count" field if the given value is not nil.
func (_u *ContributionUpdate) SetNillableTouchCount(v *int) *ContributionUpdate {
	if v != nil {
		_u.SetTouchCount(*v)
	}
	return _u
}

// AddTouchCount adds value to the "touch_count" field.
func (_u *ContributionUpdate) AddTouchCount(v int) *ContributionUpdate {
	_u.mutation.AddTouchCount(v)
	return _u
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (_u *ContributionUpdate) SetTrajectoryCount(v int) *ContributionUpdate {
	_u.mutation.ResetTrajectoryCount()
	_u.mutation.SetTrajectoryCount(v)
	return _u
}

// SetNillableTrajectoryCount sets the "trajectory_count" field if the given value is not nil.
func (_u *ContributionUpdate) SetNillableTrajectoryCount(v *int) *ContributionUpdate {
	if v != nil {
		_u.SetTrajectoryCount(*v)
	}
	return _u
}

// AddTrajectoryCount adds value to the "trajectory_count" field.
func (_u *ContributionUpdate) AddTrajectoryCount(v int) *ContributionUpdate {
	_u.mutation.AddTrajectoryCount(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ContributionUpdate) SetLastSeen(v int64) *ContributionUpdate {
	_u.mutation.ResetLastSeen()
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ContributionUpdate) SetNillableLastSeen(v *int64) *ContributionUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// AddLastSeen adds value to the "last_seen" field.
func (_u *ContributionUpdate) AddLastSeen(v int64) *ContributionUpdate {
	_u.mutation.AddLastSeen(v)
	return _u
}

// Mutation returns the ContributionMutation object of the builder.
func (_u *ContributionUpdate) Mutation() *ContributionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContributionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContributionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContributionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContributionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ContributionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(contribution.Table, contribution.Columns, sqlgraph.NewFieldSpec(contribution.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TouchCount(); ok {
		_spec.SetField(contribution.FieldTouchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTouchCount(); ok {
		_spec.AddField(contribution.FieldTouchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrajectoryCount(); ok {
		_spec.SetField(contribution.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrajectoryCount(); ok {
		_spec.AddField(contribution.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(contribution.FieldLastSeen, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSeen(); ok {
		_spec.AddField(contribution.FieldLastSeen, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contribution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContributionUpdateOne is the builder for updating a single Contribution entity.
type ContributionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContributionMutation
}

// SetTouchCount sets the "touch_count" field.
func (_u *ContributionUpdateOne) SetTouchCount(v int) *ContributionUpdateOne {
	_u.mutation.ResetTouchCount()
	_u.mutation.SetTouchCount(v)
	return _u
}

// SetNillableTouchCount sets the "touch_count" field if the given value is not nil.
func (_u *ContributionUpdateOne) SetNillableTouchCount(v *int) *ContributionUpdateOne {
	if v != nil {
		_u.SetTouchCount(*v)
	}
	return _u
}

// AddTouchCount adds value to the "touch_count" field.
func (_u *ContributionUpdateOne) AddTouchCount(v int) *ContributionUpdateOne {
	_u.mutation.AddTouchCount(v)
	return _u
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (_u *ContributionUpdateOne) SetTrajectoryCount(v int) *ContributionUpdateOne {
	_u.mutation.ResetTrajectoryCount()
	_u.mutation.SetTrajectoryCount(v)
	return _u
}

// SetNillableTrajectoryCount sets the "trajectory_count" field if the given value is not nil.
func (_u *ContributionUpdateOne) SetNillableTrajectoryCount(v *int) *ContributionUpdateOne {
	if v != nil {
		_u.SetTrajectoryCount(*v)
	}
	return _u
}

// AddTrajectoryCount adds value to the "trajectory_count" field.
func (_u *ContributionUpdateOne) AddTrajectoryCount(v int) *ContributionUpdateOne {
	_u.mutation.AddTrajectoryCount(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *ContributionUpdateOne) SetLastSeen(v int64) *ContributionUpdateOne {
	_u.mutation.ResetLastSeen()
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *ContributionUpdateOne) SetNillableLastSeen(v *int64) *ContributionUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// AddLastSeen adds value to the "last_seen" field.
func (_u *ContributionUpdateOne) AddLastSeen(v int64) *ContributionUpdateOne {
	_u.mutation.AddLastSeen(v)
	return _u
}

// Mutation returns the ContributionMutation object of the builder.
func (_u *ContributionUpdateOne) Mutation() *ContributionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContributionUpdate builder.
func (_u *ContributionUpdateOne) Where(ps ...predicate.Contribution) *ContributionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContributionUpdateOne) Select(field string, fields ...string) *ContributionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Contribution entity.
func (_u *ContributionUpdateOne) Save(ctx context.Context) (*Contribution, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContributionUpdateOne) SaveX(ctx context.Context) *Contribution {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContributionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContributionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ContributionUpdateOne) sqlSave(ctx context.Context) (_node *Contribution, err error) {
	_spec := sqlgraph.NewUpdateSpec(contribution.Table, contribution.Columns, sqlgraph.NewFieldSpec(contribution.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Contribution.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contribution.FieldID)
		for _, f := range fields {
			if !contribution.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contribution.FieldID {
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
	if value, ok := _u.mutation.TouchCount(); ok {
		_spec.SetField(contribution.FieldTouchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTouchCount(); ok {
		_spec.AddField(contribution.FieldTouchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrajectoryCount(); ok {
		_spec.SetField(contribution.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrajectoryCount(); ok {
		_spec.AddField(contribution.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(contribution.FieldLastSeen, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSeen(); ok {
		_spec.AddField(contribution.FieldLastSeen, field.TypeInt64, value)
	}
	_node = &Contribution{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contribution.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
