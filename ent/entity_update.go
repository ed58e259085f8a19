// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxishq/praxis/ent/entity"
	"github.com/praxishq/praxis/ent/predicate"
)

// EntityUpdate is the builder for updating Entity entities.
type EntityUpdate struct {
	config
	hooks    []Hook
	mutation *EntityMutation
}

// Where appends a list predicates to the EntityUpdate builder.
func (_u *EntityUpdate) Where(ps ...predicate.Entity) *EntityUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *EntityUpdate) SetName(v string) *EntityUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableName(v *string) *EntityUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *EntityUpdate) SetNormalizedName(v string) *EntityUpdate {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableNormalizedName(v *string) *EntityUpdate {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *EntityUpdate) SetEntityType(v string) *EntityUpdate {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableEntityType(v *string) *EntityUpdate {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// ClearEntityType clears the value of the "entity_type" field.
func (_u *EntityUpdate) ClearEntityType() *EntityUpdate {
	_u.mutation.ClearEntityType()
	return _u
}

// SetDescription sets the "description" field.
func (_u *EntityUpdate) SetDescription(v string) *EntityUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableDescription(v *string) *EntityUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *EntityUpdate) ClearDescription() *EntityUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetTouchCount sets the "touch_count" field.
func (_u *EntityUpdate) SetTouchCount(v int) *EntityUpdate {
	_u.mutation.ResetTouchCount()
	_u.mutation.SetTouchCount(v)
	return _u
}

// SetNillableTouchCount sets the "touch_count" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableTouchCount(v *int) *EntityUpdate {
	if v != nil {
		_u.SetTouchCount(*v)
	}
	return _u
}

// AddTouchCount adds value to the "touch_count" field.
func (_u *EntityUpdate) AddTouchCount(v int) *EntityUpdate {
	_u.mutation.AddTouchCount(v)
	return _u
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (_u *EntityUpdate) SetTrajectoryCount(v int) *EntityUpdate {
	_u.mutation.ResetTrajectoryCount()
	_u.mutation.SetTrajectoryCount(v)
	return _u
}

// SetNillableTrajectoryCount sets the "trajectory_count" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableTrajectoryCount(v *int) *EntityUpdate {
	if v != nil {
		_u.SetTrajectoryCount(*v)
	}
	return _u
}

// AddTrajectoryCount adds value to the "trajectory_count" field.
func (_u *EntityUpdate) AddTrajectoryCount(v int) *EntityUpdate {
	_u.mutation.AddTrajectoryCount(v)
	return _u
}

// SetContributorCount sets the "contributor_count" field.
func (_u *EntityUpdate) SetContributorCount(v int) *EntityUpdate {
	_u.mutation.ResetContributorCount()
	_u.mutation.SetContributorCount(v)
	return _u
}

// SetNillableContributorCount sets the "contributor_count" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableContributorCount(v *int) *EntityUpdate {
	if v != nil {
		_u.SetContributorCount(*v)
	}
	return _u
}

// AddContributorCount adds value to the "contributor_count" field.
func (_u *EntityUpdate) AddContributorCount(v int) *EntityUpdate {
	_u.mutation.AddContributorCount(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *EntityUpdate) SetLastSeen(v int64) *EntityUpdate {
	_u.mutation.ResetLastSeen()
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *EntityUpdate) SetNillableLastSeen(v *int64) *EntityUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// AddLastSeen adds value to the "last_seen" field.
func (_u *EntityUpdate) AddLastSeen(v int64) *EntityUpdate {
	_u.mutation.AddLastSeen(v)
	return _u
}

// Mutation returns the EntityMutation object of the builder.
func (_u *EntityUpdate) Mutation() *EntityMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EntityUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EntityUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EntityUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(entity.Table, entity.Columns, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(entity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(entity.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(entity.FieldEntityType, field.TypeString, value)
	}
	if _u.mutation.EntityTypeCleared() {
		_spec.ClearField(entity.FieldEntityType, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(entity.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(entity.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TouchCount(); ok {
		_spec.SetField(entity.FieldTouchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTouchCount(); ok {
		_spec.AddField(entity.FieldTouchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrajectoryCount(); ok {
		_spec.SetField(entity.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrajectoryCount(); ok {
		_spec.AddField(entity.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContributorCount(); ok {
		_spec.SetField(entity.FieldContributorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContributorCount(); ok {
		_spec.AddField(entity.FieldContributorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(entity.FieldLastSeen, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSeen(); ok {
		_spec.AddField(entity.FieldLastSeen, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EntityUpdateOne is the builder for updating a single Entity entity.
type EntityUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EntityMutation
}

// SetName sets the "name" field.
func (_u *EntityUpdateOne) SetName(v string) *EntityUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableName(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetNormalizedName sets the "normalized_name" field.
func (_u *EntityUpdateOne) SetNormalizedName(v string) *EntityUpdateOne {
	_u.mutation.SetNormalizedName(v)
	return _u
}

// SetNillableNormalizedName sets the "normalized_name" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableNormalizedName(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetNormalizedName(*v)
	}
	return _u
}

// SetEntityType sets the "entity_type" field.
func (_u *EntityUpdateOne) SetEntityType(v string) *EntityUpdateOne {
	_u.mutation.SetEntityType(v)
	return _u
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableEntityType(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetEntityType(*v)
	}
	return _u
}

// ClearEntityType clears the value of the "entity_type" field.
func (_u *EntityUpdateOne) ClearEntityType() *EntityUpdateOne {
	_u.mutation.ClearEntityType()
	return _u
}

// SetDescription sets the "description" field.
func (_u *EntityUpdateOne) SetDescription(v string) *EntityUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableDescription(v *string) *EntityUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *EntityUpdateOne) ClearDescription() *EntityUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetTouchCount sets the "touch_count" field.
func (_u *EntityUpdateOne) SetTouchCount(v int) *EntityUpdateOne {
	_u.mutation.ResetTouchCount()
	_u.mutation.SetTouchCount(v)
	return _u
}

// SetNillableTouchCount sets the "touch_count" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableTouchCount(v *int) *EntityUpdateOne {
	if v != nil {
		_u.SetTouchCount(*v)
	}
	return _u
}

// AddTouchCount adds value to the "touch_count" field.
func (_u *EntityUpdateOne) AddTouchCount(v int) *EntityUpdateOne {
	_u.mutation.AddTouchCount(v)
	return _u
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (_u *EntityUpdateOne) SetTrajectoryCount(v int) *EntityUpdateOne {
	_u.mutation.ResetTrajectoryCount()
	_u.mutation.SetTrajectoryCount(v)
	return _u
}

// SetNillableTrajectoryCount sets the "trajectory_count" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableTrajectoryCount(v *int) *EntityUpdateOne {
	if v != nil {
		_u.SetTrajectoryCount(*v)
	}
	return _u
}

// AddTrajectoryCount adds value to the "trajectory_count" field.
func (_u *EntityUpdateOne) AddTrajectoryCount(v int) *EntityUpdateOne {
	_u.mutation.AddTrajectoryCount(v)
	return _u
}

// SetContributorCount sets the "contributor_count" field.
func (_u *EntityUpdateOne) SetContributorCount(v int) *EntityUpdateOne {
	_u.mutation.ResetContributorCount()
	_u.mutation.SetContributorCount(v)
	return _u
}

// SetNillableContributorCount sets the "contributor_count" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableContributorCount(v *int) *EntityUpdateOne {
	if v != nil {
		_u.SetContributorCount(*v)
	}
	return _u
}

// AddContributorCount adds value to the "contributor_count" field.
func (_u *EntityUpdateOne) AddContributorCount(v int) *EntityUpdateOne {
	_u.mutation.AddContributorCount(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *EntityUpdateOne) SetLastSeen(v int64) *EntityUpdateOne {
	_u.mutation.ResetLastSeen()
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *EntityUpdateOne) SetNillableLastSeen(v *int64) *EntityUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// AddLastSeen adds value to the "last_seen" field.
func (_u *EntityUpdateOne) AddLastSeen(v int64) *EntityUpdateOne {
	_u.mutation.AddLastSeen(v)
	return _u
}

// Mutation returns the EntityMutation object of the builder.
func (_u *EntityUpdateOne) Mutation() *EntityMutation {
	return _u.mutation
}

// Where appends a list predicates to the EntityUpdate builder.
func (_u *EntityUpdateOne) Where(ps ...predicate.Entity) *EntityUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EntityUpdateOne) Select(field string, fields ...string) *EntityUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Entity entity.
func (_u *EntityUpdateOne) Save(ctx context.Context) (*Entity, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EntityUpdateOne) SaveX(ctx context.Context) *Entity {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EntityUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EntityUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *EntityUpdateOne) sqlSave(ctx context.Context) (_node *Entity, err error) {
	_spec := sqlgraph.NewUpdateSpec(entity.Table, entity.Columns, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Entity.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, entity.FieldID)
		for _, f := range fields {
			if !entity.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != entity.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(entity.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.NormalizedName(); ok {
		_spec.SetField(entity.FieldNormalizedName, field.TypeString, value)
	}
	if value, ok := _u.mutation.EntityType(); ok {
		_spec.SetField(entity.FieldEntityType, field.TypeString, value)
	}
	if _u.mutation.EntityTypeCleared() {
		_spec.ClearField(entity.FieldEntityType, field.TypeString)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(entity.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(entity.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TouchCount(); ok {
		_spec.SetField(entity.FieldTouchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTouchCount(); ok {
		_spec.AddField(entity.FieldTouchCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrajectoryCount(); ok {
		_spec.SetField(entity.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrajectoryCount(); ok {
		_spec.AddField(entity.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContributorCount(); ok {
		_spec.SetField(entity.FieldContributorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContributorCount(); ok {
		_spec.AddField(entity.FieldContributorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(entity.FieldLastSeen, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSeen(); ok {
		_spec.AddField(entity.FieldLastSeen, field.TypeInt64, value)
	}
	_node = &Entity{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{entity.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
