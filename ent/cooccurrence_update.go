// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxishq/praxis/ent/cooccurrence"
	"github.com/praxishq/praxis/ent/predicate"
)

// CooccurrenceUpdate is the builder for updating Cooccurrence entities.
type CooccurrenceUpdate struct {
	config
	hooks    []Hook
	mutation *CooccurrenceMutation
}

// Where appends a list predicates to the CooccurrenceUpdate builder.
func (_u *CooccurrenceUpdate) Where(ps ...predicate.Cooccurrence) *CooccurrenceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCount sets the "count" field.
func (_u *CooccurrenceUpdate) SetCount(v int) *CooccurrenceUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *CooccurrenceUpdate) SetNillableCount(v *int) *CooccurrenceUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *CooccurrenceUpdate) AddCount(v int) *CooccurrenceUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// SetWindowCount sets the "window_count" field.
func (_u *CooccurrenceUpdate) SetWindowCount(v int) *CooccurrenceUpdate {
	_u.mutation.ResetWindowCount()
	_u.mutation.SetWindowCount(v)
	return _u
}

// SetNillableWindowCount sets the "window_count" field if the given value is not nil.
func (_u *CooccurrenceUpdate) SetNillableWindowCount(v *int) *CooccurrenceUpdate {
	if v != nil {
		_u.SetWindowCount(*v)
	}
	return _u
}

// AddWindowCount adds value to the "window_count" field.
func (_u *CooccurrenceUpdate) AddWindowCount(v int) *CooccurrenceUpdate {
	_u.mutation.AddWindowCount(v)
	return _u
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (_u *CooccurrenceUpdate) SetTrajectoryCount(v int) *CooccurrenceUpdate {
	_u.mutation.ResetTrajectoryCount()
	_u.mutation.SetTrajectoryCount(v)
	return _u
}

// SetNillableTrajectoryCount sets the "trajectory_count" field if the given value is not nil.
func (_u *CooccurrenceUpdate) SetNillableTrajectoryCount(v *int) *CooccurrenceUpdate {
	if v != nil {
		_u.SetTrajectoryCount(*v)
	}
	return _u
}

// AddTrajectoryCount adds value to the "trajectory_count" field.
func (_u *CooccurrenceUpdate) AddTrajectoryCount(v int) *CooccurrenceUpdate {
	_u.mutation.AddTrajectoryCount(v)
	return _u
}

// SetContributorCount sets the "contributor_count" field.
func (_u *CooccurrenceUpdate) SetContributorCount(v int) *CooccurrenceUpdate {
	_u.mutation.ResetContributorCount()
	_u.mutation.SetContributorCount(v)
	return _u
}

// SetNillableContributorCount sets the "contributor_count" field if the given value is not nil.
func (_u *CooccurrenceUpdate) SetNillableContributorCount(v *int) *CooccurrenceUpdate {
	if v != nil {
		_u.SetContributorCount(*v)
	}
	return _u
}

// AddContributorCount adds value to the "contributor_count" field.
func (_u *CooccurrenceUpdate) AddContributorCount(v int) *CooccurrenceUpdate {
	_u.mutation.AddContributorCount(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *CooccurrenceUpdate) SetLastUpdated(v int64) *CooccurrenceUpdate {
	_u.mutation.ResetLastUpdated()
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *CooccurrenceUpdate) SetNillableLastUpdated(v *int64) *CooccurrenceUpdate {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// AddLastUpdated adds value to the "last_updated" field.
func (_u *CooccurrenceUpdate) AddLastUpdated(v int64) *CooccurrenceUpdate {
	_u.mutation.AddLastUpdated(v)
	return _u
}

// Mutation returns the CooccurrenceMutation object of the builder.
func (_u *CooccurrenceUpdate) Mutation() *CooccurrenceMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CooccurrenceUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CooccurrenceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CooccurrenceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CooccurrenceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CooccurrenceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(cooccurrence.Table, cooccurrence.Columns, sqlgraph.NewFieldSpec(cooccurrence.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(cooccurrence.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(cooccurrence.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WindowCount(); ok {
		_spec.SetField(cooccurrence.FieldWindowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWindowCount(); ok {
		_spec.AddField(cooccurrence.FieldWindowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrajectoryCount(); ok {
		_spec.SetField(cooccurrence.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrajectoryCount(); ok {
		_spec.AddField(cooccurrence.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContributorCount(); ok {
		_spec.SetField(cooccurrence.FieldContributorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContributorCount(); ok {
		_spec.AddField(cooccurrence.FieldContributorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(cooccurrence.FieldLastUpdated, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastUpdated(); ok {
		_spec.AddField(cooccurrence.FieldLastUpdated, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cooccurrence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CooccurrenceUpdateOne is the builder for updating a single Cooccurrence entity.
type CooccurrenceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CooccurrenceMutation
}

// SetCount sets the "count" field.
func (_u *CooccurrenceUpdateOne) SetCount(v int) *CooccurrenceUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *CooccurrenceUpdateOne) SetNillableCount(v *int) *CooccurrenceUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *CooccurrenceUpdateOne) AddCount(v int) *CooccurrenceUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// SetWindowCount sets the "window_count" field.
func (_u *CooccurrenceUpdateOne) SetWindowCount(v int) *CooccurrenceUpdateOne {
	_u.mutation.ResetWindowCount()
	_u.mutation.SetWindowCount(v)
	return _u
}

// SetNillableWindowCount sets the "window_count" field if the given value is not nil.
func (_u *CooccurrenceUpdateOne) SetNillableWindowCount(v *int) *CooccurrenceUpdateOne {
	if v != nil {
		_u.SetWindowCount(*v)
	}
	return _u
}

// AddWindowCount adds value to the "window_count" field.
func (_u *CooccurrenceUpdateOne) AddWindowCount(v int) *CooccurrenceUpdateOne {
	_u.mutation.AddWindowCount(v)
	return _u
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (_u *CooccurrenceUpdateOne) SetTrajectoryCount(v int) *CooccurrenceUpdateOne {
	_u.mutation.ResetTrajectoryCount()
	_u.mutation.SetTrajectoryCount(v)
	return _u
}

// SetNillableTrajectoryCount sets the "trajectory_count" field if the given value is not nil.
func (_u *CooccurrenceUpdateOne) SetNillableTrajectoryCount(v *int) *CooccurrenceUpdateOne {
	if v != nil {
		_u.SetTrajectoryCount(*v)
	}
	return _u
}

// AddTrajectoryCount adds value to the "trajectory_count" field.
func (_u *CooccurrenceUpdateOne) AddTrajectoryCount(v int) *CooccurrenceUpdateOne {
	_u.mutation.AddTrajectoryCount(v)
	return _u
}

// SetContributorCount sets the "contributor_count" field.
func (_u *CooccurrenceUpdateOne) SetContributorCount(v int) *CooccurrenceUpdateOne {
	_u.mutation.ResetContributorCount()
	_u.mutation.SetContributorCount(v)
	return _u
}

// SetNillableContributorCount sets the "contributor_count" field if the given value is not nil.
func (_u *CooccurrenceUpdateOne) SetNillableContributorCount(v *int) *CooccurrenceUpdateOne {
	if v != nil {
		_u.SetContributorCount(*v)
	}
	return _u
}

// AddContributorCount adds value to the "contributor_count" field.
func (_u *CooccurrenceUpdateOne) AddContributorCount(v int) *CooccurrenceUpdateOne {
	_u.mutation.AddContributorCount(v)
	return _u
}

// SetLastUpdated sets the "last_updated" field.
func (_u *CooccurrenceUpdateOne) SetLastUpdated(v int64) *CooccurrenceUpdateOne {
	_u.mutation.ResetLastUpdated()
	_u.mutation.SetLastUpdated(v)
	return _u
}

// SetNillableLastUpdated sets the "last_updated" field if the given value is not nil.
func (_u *CooccurrenceUpdateOne) SetNillableLastUpdated(v *int64) *CooccurrenceUpdateOne {
	if v != nil {
		_u.SetLastUpdated(*v)
	}
	return _u
}

// AddLastUpdated adds value to the "last_updated" field.
func (_u *CooccurrenceUpdateOne) AddLastUpdated(v int64) *CooccurrenceUpdateOne {
	_u.mutation.AddLastUpdated(v)
	return _u
}

// Mutation returns the CooccurrenceMutation object of the builder.
func (_u *CooccurrenceUpdateOne) Mutation() *CooccurrenceMutation {
	return _u.mutation
}

// Where appends a list predicates to the CooccurrenceUpdate builder.
func (_u *CooccurrenceUpdateOne) Where(ps ...predicate.Cooccurrence) *CooccurrenceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CooccurrenceUpdateOne) Select(field string, fields ...string) *CooccurrenceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Cooccurrence entity.
func (_u *CooccurrenceUpdateOne) Save(ctx context.Context) (*Cooccurrence, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CooccurrenceUpdateOne) SaveX(ctx context.Context) *Cooccurrence {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CooccurrenceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CooccurrenceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *CooccurrenceUpdateOne) sqlSave(ctx context.Context) (_node *Cooccurrence, err error) {
	_spec := sqlgraph.NewUpdateSpec(cooccurrence.Table, cooccurrence.Columns, sqlgraph.NewFieldSpec(cooccurrence.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Cooccurrence.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, cooccurrence.FieldID)
		for _, f := range fields {
			if !cooccurrence.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != cooccurrence.FieldID {
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
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(cooccurrence.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(cooccurrence.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WindowCount(); ok {
		_spec.SetField(cooccurrence.FieldWindowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWindowCount(); ok {
		_spec.AddField(cooccurrence.FieldWindowCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrajectoryCount(); ok {
		_spec.SetField(cooccurrence.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrajectoryCount(); ok {
		_spec.AddField(cooccurrence.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContributorCount(); ok {
		_spec.SetField(cooccurrence.FieldContributorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContributorCount(); ok {
		_spec.AddField(cooccurrence.FieldContributorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdated(); ok {
		_spec.SetField(cooccurrence.FieldLastUpdated, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastUpdated(); ok {
		_spec.AddField(cooccurrence.FieldLastUpdated, field.TypeInt64, value)
	}
	_node = &Cooccurrence{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{cooccurrence.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
