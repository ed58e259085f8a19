// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxishq/praxis/ent/graphedge"
	"github.com/praxishq/praxis/ent/predicate"
)

// GraphEdgeUpdate is the builder for updating GraphEdge entities.
type GraphEdgeUpdate struct {
	config
	hooks    []Hook
	mutation *GraphEdgeMutation
}

// Where appends a list predicates to the GraphEdgeUpdate builder.
func (_u *GraphEdgeUpdate) Where(ps ...predicate.GraphEdge) *GraphEdgeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetWeight sets the "weight" field.
func (_u *GraphEdgeUpdate) SetWeight(v int) *GraphEdgeUpdate {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillableWeight(v *int) *GraphEdgeUpdate {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *GraphEdgeUpdate) AddWeight(v int) *GraphEdgeUpdate {
	_u.mutation.AddWeight(v)
	return _u
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (_u *GraphEdgeUpdate) SetTrajectoryCount(v int) *GraphEdgeUpdate {
	_u.mutation.ResetTrajectoryCount()
	_u.mutation.SetTrajectoryCount(v)
	return _u
}

// SetNillableTrajectoryCount sets the "trajectory_count" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillableTrajectoryCount(v *int) *GraphEdgeUpdate {
	if v != nil {
		_u.SetTrajectoryCount(*v)
	}
	return _u
}

// AddTrajectoryCount adds value to the "trajectory_count" field.
func (_u *GraphEdgeUpdate) AddTrajectoryCount(v int) *GraphEdgeUpdate {
	_u.mutation.AddTrajectoryCount(v)
	return _u
}

// SetContributorCount sets the "contributor_count" field.
func (_u *GraphEdgeUpdate) SetContributorCount(v int) *GraphEdgeUpdate {
	_u.mutation.ResetContributorCount()
	_u.mutation.SetContributorCount(v)
	return _u
}

// SetNillableContributorCount sets the "contributor_count" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillableContributorCount(v *int) *GraphEdgeUpdate {
	if v != nil {
		_u.SetContributorCount(*v)
	}
	return _u
}

// AddContributorCount adds value to the "contributor_count" field.
func (_u *GraphEdgeUpdate) AddContributorCount(v int) *GraphEdgeUpdate {
	_u.mutation.AddContributorCount(v)
	return _u
}

// SetRelationshipType sets the "relationship_type" field.
func (_u *GraphEdgeUpdate) SetRelationshipType(v string) *GraphEdgeUpdate {
	_u.mutation.SetRelationshipType(v)
	return _u
}

// SetNillableRelationshipType sets the "relationship_type" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillableRelationshipType(v *string) *GraphEdgeUpdate {
	if v != nil {
		_u.SetRelationshipType(*v)
	}
	return _u
}

// ClearRelationshipType clears the value of the "relationship_type" field.
func (_u *GraphEdgeUpdate) ClearRelationshipType() *GraphEdgeUpdate {
	_u.mutation.ClearRelationshipType()
	return _u
}

// SetPositiveOutcomes sets the "positive_outcomes" field.
func (_u *GraphEdgeUpdate) SetPositiveOutcomes(v int) *GraphEdgeUpdate {
	_u.mutation.ResetPositiveOutcomes()
	_u.mutation.SetPositiveOutcomes(v)
	return _u
}

// SetNillablePositiveOutcomes sets the "positive_outcomes" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillablePositiveOutcomes(v *int) *GraphEdgeUpdate {
	if v != nil {
		_u.SetPositiveOutcomes(*v)
	}
	return _u
}

// AddPositiveOutcomes adds value to the "positive_outcomes" field.
func (_u *GraphEdgeUpdate) AddPositiveOutcomes(v int) *GraphEdgeUpdate {
	_u.mutation.AddPositiveOutcomes(v)
	return _u
}

// SetNegativeOutcomes sets the "negative_outcomes" field.
func (_u *GraphEdgeUpdate) SetNegativeOutcomes(v int) *GraphEdgeUpdate {
	_u.mutation.ResetNegativeOutcomes()
	_u.mutation.SetNegativeOutcomes(v)
	return _u
}

// SetNillableNegativeOutcomes sets the "negative_outcomes" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillableNegativeOutcomes(v *int) *GraphEdgeUpdate {
	if v != nil {
		_u.SetNegativeOutcomes(*v)
	}
	return _u
}

// AddNegativeOutcomes adds value to the "negative_outcomes" field.
func (_u *GraphEdgeUpdate) AddNegativeOutcomes(v int) *GraphEdgeUpdate {
	_u.mutation.AddNegativeOutcomes(v)
	return _u
}

// SetMixedOutcomes sets the "mixed_outcomes" field.
func (_u *GraphEdgeUpdate) SetMixedOutcomes(v int) *GraphEdgeUpdate {
	_u.mutation.ResetMixedOutcomes()
	_u.mutation.SetMixedOutcomes(v)
	return _u
}

// SetNillableMixedOutcomes sets the "mixed_outcomes" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillableMixedOutcomes(v *int) *GraphEdgeUpdate {
	if v != nil {
		_u.SetMixedOutcomes(*v)
	}
	return _u
}

// AddMixedOutcomes adds value to the "mixed_outcomes" field.
func (_u *GraphEdgeUpdate) AddMixedOutcomes(v int) *GraphEdgeUpdate {
	_u.mutation.AddMixedOutcomes(v)
	return _u
}

// SetFirstSeen sets the "first_seen" field.
func (_u *GraphEdgeUpdate) SetFirstSeen(v int64) *GraphEdgeUpdate {
	_u.mutation.ResetFirstSeen()
	_u.mutation.SetFirstSeen(v)
	return _u
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillableFirstSeen(v *int64) *GraphEdgeUpdate {
	if v != nil {
		_u.SetFirstSeen(*v)
	}
	return _u
}

// AddFirstSeen adds value to the "first_seen" field.
func (_u *GraphEdgeUpdate) AddFirstSeen(v int64) *GraphEdgeUpdate {
	_u.mutation.AddFirstSeen(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *GraphEdgeUpdate) SetLastSeen(v int64) *GraphEdgeUpdate {
	_u.mutation.ResetLastSeen()
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *GraphEdgeUpdate) SetNillableLastSeen(v *int64) *GraphEdgeUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// AddLastSeen adds value to the "last_seen" field.
func (_u *GraphEdgeUpdate) AddLastSeen(v int64) *GraphEdgeUpdate {
	_u.mutation.AddLastSeen(v)
	return _u
}

// Mutation returns the GraphEdgeMutation object of the builder.
func (_u *GraphEdgeUpdate) Mutation() *GraphEdgeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GraphEdgeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphEdgeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GraphEdgeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphEdgeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GraphEdgeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(graphedge.Table, graphedge.Columns, sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(graphedge.FieldWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(graphedge.FieldWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrajectoryCount(); ok {
		_spec.SetField(graphedge.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrajectoryCount(); ok {
		_spec.AddField(graphedge.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContributorCount(); ok {
		_spec.SetField(graphedge.FieldContributorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContributorCount(); ok {
		_spec.AddField(graphedge.FieldContributorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelationshipType(); ok {
		_spec.SetField(graphedge.FieldRelationshipType, field.TypeString, value)
	}
	if _u.mutation.RelationshipTypeCleared() {
		_spec.ClearField(graphedge.FieldRelationshipType, field.TypeString)
	}
	if value, ok := _u.mutation.PositiveOutcomes(); ok {
		_spec.SetField(graphedge.FieldPositiveOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPositiveOutcomes(); ok {
		_spec.AddField(graphedge.FieldPositiveOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NegativeOutcomes(); ok {
		_spec.SetField(graphedge.FieldNegativeOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNegativeOutcomes(); ok {
		_spec.AddField(graphedge.FieldNegativeOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MixedOutcomes(); ok {
		_spec.SetField(graphedge.FieldMixedOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMixedOutcomes(); ok {
		_spec.AddField(graphedge.FieldMixedOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstSeen(); ok {
		_spec.SetField(graphedge.FieldFirstSeen, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFirstSeen(); ok {
		_spec.AddField(graphedge.FieldFirstSeen, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(graphedge.FieldLastSeen, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSeen(); ok {
		_spec.AddField(graphedge.FieldLastSeen, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GraphEdgeUpdateOne is the builder for updating a single GraphEdge entity.
type GraphEdgeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GraphEdgeMutation
}

// SetWeight sets the "weight" field.
func (_u *GraphEdgeUpdateOne) SetWeight(v int) *GraphEdgeUpdateOne {
	_u.mutation.ResetWeight()
	_u.mutation.SetWeight(v)
	return _u
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillableWeight(v *int) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetWeight(*v)
	}
	return _u
}

// AddWeight adds value to the "weight" field.
func (_u *GraphEdgeUpdateOne) AddWeight(v int) *GraphEdgeUpdateOne {
	_u.mutation.AddWeight(v)
	return _u
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (_u *GraphEdgeUpdateOne) SetTrajectoryCount(v int) *GraphEdgeUpdateOne {
	_u.mutation.ResetTrajectoryCount()
	_u.mutation.SetTrajectoryCount(v)
	return _u
}

// SetNillableTrajectoryCount sets the "trajectory_count" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillableTrajectoryCount(v *int) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetTrajectoryCount(*v)
	}
	return _u
}

// AddTrajectoryCount adds value to the "trajectory_count" field.
func (_u *GraphEdgeUpdateOne) AddTrajectoryCount(v int) *GraphEdgeUpdateOne {
	_u.mutation.AddTrajectoryCount(v)
	return _u
}

// SetContributorCount sets the "contributor_count" field.
func (_u *GraphEdgeUpdateOne) SetContributorCount(v int) *GraphEdgeUpdateOne {
	_u.mutation.ResetContributorCount()
	_u.mutation.SetContributorCount(v)
	return _u
}

// SetNillableContributorCount sets the "contributor_count" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillableContributorCount(v *int) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetContributorCount(*v)
	}
	return _u
}

// AddContributorCount adds value to the "contributor_count" field.
func (_u *GraphEdgeUpdateOne) AddContributorCount(v int) *GraphEdgeUpdateOne {
	_u.mutation.AddContributorCount(v)
	return _u
}

// SetRelationshipType sets the "relationship_type" field.
func (_u *GraphEdgeUpdateOne) SetRelationshipType(v string) *GraphEdgeUpdateOne {
	_u.mutation.SetRelationshipType(v)
	return _u
}

// SetNillableRelationshipType sets the "relationship_type" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillableRelationshipType(v *string) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetRelationshipType(*v)
	}
	return _u
}

// ClearRelationshipType clears the value of the "relationship_type" field.
func (_u *GraphEdgeUpdateOne) ClearRelationshipType() *GraphEdgeUpdateOne {
	_u.mutation.ClearRelationshipType()
	return _u
}

// SetPositiveOutcomes sets the "positive_outcomes" field.
func (_u *GraphEdgeUpdateOne) SetPositiveOutcomes(v int) *GraphEdgeUpdateOne {
	_u.mutation.ResetPositiveOutcomes()
	_u.mutation.SetPositiveOutcomes(v)
	return _u
}

// SetNillablePositiveOutcomes sets the "positive_outcomes" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillablePositiveOutcomes(v *int) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetPositiveOutcomes(*v)
	}
	return _u
}

// AddPositiveOutcomes adds value to the "positive_outcomes" field.
func (_u *GraphEdgeUpdateOne) AddPositiveOutcomes(v int) *GraphEdgeUpdateOne {
	_u.mutation.AddPositiveOutcomes(v)
	return _u
}

// SetNegativeOutcomes sets the "negative_outcomes" field.
func (_u *GraphEdgeUpdateOne) SetNegativeOutcomes(v int) *GraphEdgeUpdateOne {
	_u.mutation.ResetNegativeOutcomes()
	_u.mutation.SetNegativeOutcomes(v)
	return _u
}

// SetNillableNegativeOutcomes sets the "negative_outcomes" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillableNegativeOutcomes(v *int) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetNegativeOutcomes(*v)
	}
	return _u
}

// AddNegativeOutcomes adds value to the "negative_outcomes" field.
func (_u *GraphEdgeUpdateOne) AddNegativeOutcomes(v int) *GraphEdgeUpdateOne {
	_u.mutation.AddNegativeOutcomes(v)
	return _u
}

// SetMixedOutcomes sets the "mixed_outcomes" field.
func (_u *GraphEdgeUpdateOne) SetMixedOutcomes(v int) *GraphEdgeUpdateOne {
	_u.mutation.ResetMixedOutcomes()
	_u.mutation.SetMixedOutcomes(v)
	return _u
}

// SetNillableMixedOutcomes sets the "mixed_outcomes" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillableMixedOutcomes(v *int) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetMixedOutcomes(*v)
	}
	return _u
}

// AddMixedOutcomes adds value to the "mixed_outcomes" field.
func (_u *GraphEdgeUpdateOne) AddMixedOutcomes(v int) *GraphEdgeUpdateOne {
	_u.mutation.AddMixedOutcomes(v)
	return _u
}

// SetFirstSeen sets the "first_seen" field.
func (_u *GraphEdgeUpdateOne) SetFirstSeen(v int64) *GraphEdgeUpdateOne {
	_u.mutation.ResetFirstSeen()
	_u.mutation.SetFirstSeen(v)
	return _u
}

// SetNillableFirstSeen sets the "first_seen" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillableFirstSeen(v *int64) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetFirstSeen(*v)
	}
	return _u
}

// AddFirstSeen adds value to the "first_seen" field.
func (_u *GraphEdgeUpdateOne) AddFirstSeen(v int64) *GraphEdgeUpdateOne {
	_u.mutation.AddFirstSeen(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *GraphEdgeUpdateOne) SetLastSeen(v int64) *GraphEdgeUpdateOne {
	_u.mutation.ResetLastSeen()
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *GraphEdgeUpdateOne) SetNillableLastSeen(v *int64) *GraphEdgeUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// AddLastSeen adds value to the "last_seen" field.
func (_u *GraphEdgeUpdateOne) AddLastSeen(v int64) *GraphEdgeUpdateOne {
	_u.mutation.AddLastSeen(v)
	return _u
}

// Mutation returns the GraphEdgeMutation object of the builder.
func (_u *GraphEdgeUpdateOne) Mutation() *GraphEdgeMutation {
	return _u.mutation
}

// Where appends a list predicates to the GraphEdgeUpdate builder.
func (_u *GraphEdgeUpdateOne) Where(ps ...predicate.GraphEdge) *GraphEdgeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GraphEdgeUpdateOne) Select(field string, fields ...string) *GraphEdgeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GraphEdge entity.
func (_u *GraphEdgeUpdateOne) Save(ctx context.Context) (*GraphEdge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GraphEdgeUpdateOne) SaveX(ctx context.Context) *GraphEdge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GraphEdgeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GraphEdgeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GraphEdgeUpdateOne) sqlSave(ctx context.Context) (_node *GraphEdge, err error) {
	_spec := sqlgraph.NewUpdateSpec(graphedge.Table, graphedge.Columns, sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GraphEdge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, graphedge.FieldID)
		for _, f := range fields {
			if !graphedge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != graphedge.FieldID {
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
	if value, ok := _u.mutation.Weight(); ok {
		_spec.SetField(graphedge.FieldWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWeight(); ok {
		_spec.AddField(graphedge.FieldWeight, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrajectoryCount(); ok {
		_spec.SetField(graphedge.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrajectoryCount(); ok {
		_spec.AddField(graphedge.FieldTrajectoryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContributorCount(); ok {
		_spec.SetField(graphedge.FieldContributorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContributorCount(); ok {
		_spec.AddField(graphedge.FieldContributorCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RelationshipType(); ok {
		_spec.SetField(graphedge.FieldRelationshipType, field.TypeString, value)
	}
	if _u.mutation.RelationshipTypeCleared() {
		_spec.ClearField(graphedge.FieldRelationshipType, field.TypeString)
	}
	if value, ok := _u.mutation.PositiveOutcomes(); ok {
		_spec.SetField(graphedge.FieldPositiveOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPositiveOutcomes(); ok {
		_spec.AddField(graphedge.FieldPositiveOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.NegativeOutcomes(); ok {
		_spec.SetField(graphedge.FieldNegativeOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNegativeOutcomes(); ok {
		_spec.AddField(graphedge.FieldNegativeOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MixedOutcomes(); ok {
		_spec.SetField(graphedge.FieldMixedOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMixedOutcomes(); ok {
		_spec.AddField(graphedge.FieldMixedOutcomes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FirstSeen(); ok {
		_spec.SetField(graphedge.FieldFirstSeen, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFirstSeen(); ok {
		_spec.AddField(graphedge.FieldFirstSeen, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(graphedge.FieldLastSeen, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLastSeen(); ok {
		_spec.AddField(graphedge.FieldLastSeen, field.TypeInt64, value)
	}
	_node = &GraphEdge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{graphedge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
