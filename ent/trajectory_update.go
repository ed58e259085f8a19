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
	"github.com/praxishq/praxis/ent/trajectory"
)

// TrajectoryUpdate is the builder for updating Trajectory entities.
type TrajectoryUpdate struct {
	config
	hooks    []Hook
	mutation *TrajectoryMutation
}

// Where appends a list predicates to the TrajectoryUpdate builder.
func (_u *TrajectoryUpdate) Where(ps ...predicate.Trajectory) *TrajectoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TrajectoryUpdate) SetSummary(v string) *TrajectoryUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TrajectoryUpdate) SetNillableSummary(v *string) *TrajectoryUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *TrajectoryUpdate) ClearSummary() *TrajectoryUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TrajectoryUpdate) SetCompletedAt(v int64) *TrajectoryUpdate {
	_u.mutation.ResetCompletedAt()
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TrajectoryUpdate) SetNillableCompletedAt(v *int64) *TrajectoryUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// AddCompletedAt adds value to the "completed_at" field.
func (_u *TrajectoryUpdate) AddCompletedAt(v int64) *TrajectoryUpdate {
	_u.mutation.AddCompletedAt(v)
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TrajectoryUpdate) ClearCompletedAt() *TrajectoryUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TrajectoryMutation object of the builder.
func (_u *TrajectoryUpdate) Mutation() *TrajectoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrajectoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrajectoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrajectoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrajectoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrajectoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(trajectory.Table, trajectory.Columns, sqlgraph.NewFieldSpec(trajectory.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(trajectory.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(trajectory.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(trajectory.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(trajectory.FieldCompletedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletedAt(); ok {
		_spec.AddField(trajectory.FieldCompletedAt, field.TypeInt64, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(trajectory.FieldCompletedAt, field.TypeInt64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trajectory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrajectoryUpdateOne is the builder for updating a single Trajectory entity.
type TrajectoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrajectoryMutation
}

// SetSummary sets the "summary" field.
func (_u *TrajectoryUpdateOne) SetSummary(v string) *TrajectoryUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TrajectoryUpdateOne) SetNillableSummary(v *string) *TrajectoryUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *TrajectoryUpdateOne) ClearSummary() *TrajectoryUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TrajectoryUpdateOne) SetCompletedAt(v int64) *TrajectoryUpdateOne {
	_u.mutation.ResetCompletedAt()
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TrajectoryUpdateOne) SetNillableCompletedAt(v *int64) *TrajectoryUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// AddCompletedAt adds value to the "completed_at" field.
func (_u *TrajectoryUpdateOne) AddCompletedAt(v int64) *TrajectoryUpdateOne {
	_u.mutation.AddCompletedAt(v)
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TrajectoryUpdateOne) ClearCompletedAt() *TrajectoryUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the TrajectoryMutation object of the builder.
func (_u *TrajectoryUpdateOne) Mutation() *TrajectoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrajectoryUpdate builder.
func (_u *TrajectoryUpdateOne) Where(ps ...predicate.Trajectory) *TrajectoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrajectoryUpdateOne) Select(field string, fields ...string) *TrajectoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Trajectory entity.
func (_u *TrajectoryUpdateOne) Save(ctx context.Context) (*Trajectory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrajectoryUpdateOne) SaveX(ctx context.Context) *Trajectory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrajectoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrajectoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TrajectoryUpdateOne) sqlSave(ctx context.Context) (_node *Trajectory, err error) {
	_spec := sqlgraph.NewUpdateSpec(trajectory.Table, trajectory.Columns, sqlgraph.NewFieldSpec(trajectory.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Trajectory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trajectory.FieldID)
		for _, f := range fields {
			if !trajectory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trajectory.FieldID {
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
	if _u.mutation.ConversationIDCleared() {
		_spec.ClearField(trajectory.FieldConversationID, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(trajectory.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(trajectory.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(trajectory.FieldCompletedAt, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedCompletedAt(); ok {
		_spec.AddField(trajectory.FieldCompletedAt, field.TypeInt64, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(trajectory.FieldCompletedAt, field.TypeInt64)
	}
	_node = &Trajectory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trajectory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
