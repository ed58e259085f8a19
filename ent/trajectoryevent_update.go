// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxishq/praxis/ent/predicate"
	"github.com/praxishq/praxis/ent/trajectoryevent"
)

// TrajectoryEventUpdate is the builder for updating TrajectoryEvent entities.
type TrajectoryEventUpdate struct {
	config
	hooks    []Hook
	mutation *TrajectoryEventMutation
}

// Where appends a list predicates to the TrajectoryEventUpdate builder.
func (_u *TrajectoryEventUpdate) Where(ps ...predicate.TrajectoryEvent) *TrajectoryEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetData sets the "data" field.
func (_u *TrajectoryEventUpdate) SetData(v map[string]interface{}) *TrajectoryEventUpdate {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *TrajectoryEventUpdate) ClearData() *TrajectoryEventUpdate {
	_u.mutation.ClearData()
	return _u
}

// Mutation returns the TrajectoryEventMutation object of the builder.
func (_u *TrajectoryEventUpdate) Mutation() *TrajectoryEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrajectoryEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrajectoryEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrajectoryEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrajectoryEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrajectoryEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(trajectoryevent.Table, trajectoryevent.Columns, sqlgraph.NewFieldSpec(trajectoryevent.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(trajectoryevent.FieldEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(trajectoryevent.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(trajectoryevent.FieldData, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trajectoryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrajectoryEventUpdateOne is the builder for updating a single TrajectoryEvent entity.
type TrajectoryEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrajectoryEventMutation
}

// SetData sets the "data" field.
func (_u *TrajectoryEventUpdateOne) SetData(v map[string]interface{}) *TrajectoryEventUpdateOne {
	_u.mutation.SetData(v)
	return _u
}

// ClearData clears the value of the "data" field.
func (_u *TrajectoryEventUpdateOne) ClearData() *TrajectoryEventUpdateOne {
	_u.mutation.ClearData()
	return _u
}

// Mutation returns the TrajectoryEventMutation object of the builder.
func (_u *TrajectoryEventUpdateOne) Mutation() *TrajectoryEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrajectoryEventUpdate builder.
func (_u *TrajectoryEventUpdateOne) Where(ps ...predicate.TrajectoryEvent) *TrajectoryEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrajectoryEventUpdateOne) Select(field string, fields ...string) *TrajectoryEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrajectoryEvent entity.
func (_u *TrajectoryEventUpdateOne) Save(ctx context.Context) (*TrajectoryEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrajectoryEventUpdateOne) SaveX(ctx context.Context) *TrajectoryEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrajectoryEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrajectoryEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrajectoryEventUpdateOne) sqlSave(ctx context.Context) (_node *TrajectoryEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(trajectoryevent.Table, trajectoryevent.Columns, sqlgraph.NewFieldSpec(trajectoryevent.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrajectoryEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trajectoryevent.FieldID)
		for _, f := range fields {
			if !trajectoryevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trajectoryevent.FieldID {
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
	if _u.mutation.EntityIDCleared() {
		_spec.ClearField(trajectoryevent.FieldEntityID, field.TypeString)
	}
	if value, ok := _u.mutation.Data(); ok {
		_spec.SetField(trajectoryevent.FieldData, field.TypeJSON, value)
	}
	if _u.mutation.DataCleared() {
		_spec.ClearField(trajectoryevent.FieldData, field.TypeJSON)
	}
	_node = &TrajectoryEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trajectoryevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
