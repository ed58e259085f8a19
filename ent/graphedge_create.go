// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/praxishq/praxis/ent/graphedge"
)

// GraphEdgeCreate is the builder for creating a GraphEdge entity.
type GraphEdgeCreate struct {
	config
	mutation *GraphEdgeMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSourceID sets the "source_id" field.
func (_c *GraphEdgeCreate) SetSourceID(v string) *GraphEdgeCreate {
	_c.mutation.SetSourceID(v)
	return _c
}

// SetTargetID sets the "target_id" field.
func (_c *GraphEdgeCreate) SetTargetID(v string) *GraphEdgeCreate {
	_c.mutation.SetTargetID(v)
	return _c
}

// SetWeight sets the "weight" field.
func (_c *GraphEdgeCreate) SetWeight(v int) *GraphEdgeCreate {
	_c.mutation.SetWeight(v)
	return _c
}

// SetNillableWeight sets the "weight" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillableWeight(v *int) *GraphEdgeCreate {
	if v != nil {
		_c.SetWeight(*v)
	}
	return _c
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (_c *GraphEdgeCreate) SetTrajectoryCount(v int) *GraphEdgeCreate {
	_c.mutation.SetTrajectoryCount(v)
	return _c
}

// SetNillableTrajectoryCount sets the "trajectory_count" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillableTrajectoryCount(v *int) *GraphEdgeCreate {
	if v != nil {
		_c.SetTrajectoryCount(*v)
	}
	return _c
}

// SetContributorCount sets the "contributor_count" field.
func (_c *GraphEdgeCreate) SetContributorCount(v int) *GraphEdgeCreate {
	_c.mutation.SetContributorCount(v)
	return _c
}

// SetNillableContributorCount sets the "contributor_count" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillableContributorCount(v *int) *GraphEdgeCreate {
	if v != nil {
		_c.SetContributorCount(*v)
	}
	return _c
}

// SetRelationshipType sets the "relationship_type" field.
func (_c *GraphEdgeCreate) SetRelationshipType(v string) *GraphEdgeCreate {
	_c.mutation.SetRelationshipType(v)
	return _c
}

// SetNillableRelationshipType sets the "relationship_type" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillableRelationshipType(v *string) *GraphEdgeCreate {
	if v != nil {
		_c.SetRelationshipType(*v)
	}
	return _c
}

// SetPositiveOutcomes sets the "positive_outcomes" field.
func (_c *GraphEdgeCreate) SetPositiveOutcomes(v int) *GraphEdgeCreate {
	_c.mutation.SetPositiveOutcomes(v)
	return _c
}

// SetNillablePositiveOutcomes sets the "positive_outcomes" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillablePositiveOutcomes(v *int) *GraphEdgeCreate {
	if v != nil {
		_c.SetPositiveOutcomes(*v)
	}
	return _c
}

// SetNegativeOutcomes sets the "negative_outcomes" field.
func (_c *GraphEdgeCreate) SetNegativeOutcomes(v int) *GraphEdgeCreate {
	_c.mutation.SetNegativeOutcomes(v)
	return _c
}

// SetNillableNegativeOutcomes sets the "negative_outcomes" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillableNegativeOutcomes(v *int) *GraphEdgeCreate {
	if v != nil {
		_c.SetNegativeOutcomes(*v)
	}
	return _c
}

// SetMixedOutcomes sets the "mixed_outcomes" field.
func (_c *GraphEdgeCreate) SetMixedOutcomes(v int) *GraphEdgeCreate {
	_c.mutation.SetMixedOutcomes(v)
	return _c
}

// SetNillableMixedOutcomes sets the "mixed_outcomes" field if the given value is not nil.
func (_c *GraphEdgeCreate) SetNillableMixedOutcomes(v *int) *GraphEdgeCreate {
	if v != nil {
		_c.SetMixedOutcomes(*v)
	}
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *GraphEdgeCreate) SetFirstSeen(v int64) *GraphEdgeCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *GraphEdgeCreate) SetLastSeen(v int64) *GraphEdgeCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetID sets the "id" field.
func (_c *GraphEdgeCreate) SetID(v string) *GraphEdgeCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the GraphEdgeMutation object of the builder.
func (_c *GraphEdgeCreate) Mutation() *GraphEdgeMutation {
	return _c.mutation
}

// Save creates the GraphEdge in the database.
func (_c *GraphEdgeCreate) Save(ctx context.Context) (*GraphEdge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GraphEdgeCreate) SaveX(ctx context.Context) *GraphEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphEdgeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphEdgeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GraphEdgeCreate) defaults() {
	if _, ok := _c.mutation.Weight(); !ok {
		v := graphedge.DefaultWeight
		_c.mutation.SetWeight(v)
	}
	if _, ok := _c.mutation.TrajectoryCount(); !ok {
		v := graphedge.DefaultTrajectoryCount
		_c.mutation.SetTrajectoryCount(v)
	}
	if _, ok := _c.mutation.ContributorCount(); !ok {
		v := graphedge.DefaultContributorCount
		_c.mutation.SetContributorCount(v)
	}
	if _, ok := _c.mutation.PositiveOutcomes(); !ok {
		v := graphedge.DefaultPositiveOutcomes
		_c.mutation.SetPositiveOutcomes(v)
	}
	if _, ok := _c.mutation.NegativeOutcomes(); !ok {
		v := graphedge.DefaultNegativeOutcomes
		_c.mutation.SetNegativeOutcomes(v)
	}
	if _, ok := _c.mutation.MixedOutcomes(); !ok {
		v := graphedge.DefaultMixedOutcomes
		_c.mutation.SetMixedOutcomes(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GraphEdgeCreate) check() error {
	if _, ok := _c.mutation.SourceID(); !ok {
		return &ValidationError{Name: "source_id", err: errors.New(`ent: missing required field "GraphEdge.source_id"`)}
	}
	if _, ok := _c.mutation.TargetID(); !ok {
		return &ValidationError{Name: "target_id", err: errors.New(`ent: missing required field "GraphEdge.target_id"`)}
	}
	if _, ok := _c.mutation.Weight(); !ok {
		return &ValidationError{Name: "weight", err: errors.New(`ent: missing required field "GraphEdge.weight"`)}
	}
	if _, ok := _c.mutation.TrajectoryCount(); !ok {
		return &ValidationError{Name: "trajectory_count", err: errors.New(`ent: missing required field "GraphEdge.trajectory_count"`)}
	}
	if _, ok := _c.mutation.ContributorCount(); !ok {
		return &ValidationError{Name: "contributor_count", err: errors.New(`ent: missing required field "GraphEdge.contributor_count"`)}
	}
	if _, ok := _c.mutation.PositiveOutcomes(); !ok {
		return &ValidationError{Name: "positive_outcomes", err: errors.New(`ent: missing required field "GraphEdge.positive_outcomes"`)}
	}
	if _, ok := _c.mutation.NegativeOutcomes(); !ok {
		return &ValidationError{Name: "negative_outcomes", err: errors.New(`ent: missing required field "GraphEdge.negative_outcomes"`)}
	}
	if _, ok := _c.mutation.MixedOutcomes(); !ok {
		return &ValidationError{Name: "mixed_outcomes", err: errors.New(`ent: missing required field "GraphEdge.mixed_outcomes"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "GraphEdge.first_seen"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "GraphEdge.last_seen"`)}
	}
	return nil
}

func (_c *GraphEdgeCreate) sqlSave(ctx context.Context) (*GraphEdge, error) {
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
			return nil, fmt.Errorf("unexpected GraphEdge.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GraphEdgeCreate) createSpec() (*GraphEdge, *sqlgraph.CreateSpec) {
	var (
		_node = &GraphEdge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(graphedge.Table, sqlgraph.NewFieldSpec(graphedge.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SourceID(); ok {
		_spec.SetField(graphedge.FieldSourceID, field.TypeString, value)
		_node.SourceID = value
	}
	if value, ok := _c.mutation.TargetID(); ok {
		_spec.SetField(graphedge.FieldTargetID, field.TypeString, value)
		_node.TargetID = value
	}
	if value, ok := _c.mutation.Weight(); ok {
		_spec.SetField(graphedge.FieldWeight, field.TypeInt, value)
		_node.Weight = value
	}
	if value, ok := _c.mutation.TrajectoryCount(); ok {
		_spec.SetField(graphedge.FieldTrajectoryCount, field.TypeInt, value)
		_node.TrajectoryCount = value
	}
	if value, ok := _c.mutation.ContributorCount(); ok {
		_spec.SetField(graphedge.FieldContributorCount, field.TypeInt, value)
		_node.ContributorCount = value
	}
	if value, ok := _c.mutation.RelationshipType(); ok {
		_spec.SetField(graphedge.FieldRelationshipType, field.TypeString, value)
		_node.RelationshipType = &value
	}
	if value, ok := _c.mutation.PositiveOutcomes(); ok {
		_spec.SetField(graphedge.FieldPositiveOutcomes, field.TypeInt, value)
		_node.PositiveOutcomes = value
	}
	if value, ok := _c.mutation.NegativeOutcomes(); ok {
		_spec.SetField(graphedge.FieldNegativeOutcomes, field.TypeInt, value)
		_node.NegativeOutcomes = value
	}
	if value, ok := _c.mutation.MixedOutcomes(); ok {
		_spec.SetField(graphedge.FieldMixedOutcomes, field.TypeInt, value)
		_node.MixedOutcomes = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(graphedge.FieldFirstSeen, field.TypeInt64, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(graphedge.FieldLastSeen, field.TypeInt64, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GraphEdge.Create().
//		SetSourceID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GraphEdgeUpsert) {
//			SetSourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *GraphEdgeCreate) OnConflict(opts ...sql.ConflictOption) *GraphEdgeUpsertOne {
	_c.conflict = opts
	return &GraphEdgeUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GraphEdge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GraphEdgeCreate) OnConflictColumns(columns ...string) *GraphEdgeUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GraphEdgeUpsertOne{
		create: _c,
	}
}

type (
	// GraphEdgeUpsertOne is the builder for "upsert"-ing
	//  one GraphEdge node.
	GraphEdgeUpsertOne struct {
		create *GraphEdgeCreate
	}

	// GraphEdgeUpsert is the "OnConflict" setter.
	GraphEdgeUpsert struct {
		*sql.UpdateSet
	}
)

// SetWeight sets the "weight" field.
func (u *GraphEdgeUpsert) SetWeight(v int) *GraphEdgeUpsert {
	u.Set(graphedge.FieldWeight, v)
	return u
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *GraphEdgeUpsert) UpdateWeight() *GraphEdgeUpsert {
	u.SetExcluded(graphedge.FieldWeight)
	return u
}

// AddWeight adds v to the "weight" field.
func (u *GraphEdgeUpsert) AddWeight(v int) *GraphEdgeUpsert {
	u.Add(graphedge.FieldWeight, v)
	return u
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (u *GraphEdgeUpsert) SetTrajectoryCount(v int) *GraphEdgeUpsert {
	u.Set(graphedge.FieldTrajectoryCount, v)
	return u
}

// UpdateTrajectoryCount sets the "trajectory_count" field to the value that was provided on create.
func (u *GraphEdgeUpsert) UpdateTrajectoryCount() *GraphEdgeUpsert {
	u.SetExcluded(graphedge.FieldTrajectoryCount)
	return u
}

// AddTrajectoryCount adds v to the "trajectory_count" field.
func (u *GraphEdgeUpsert) AddTrajectoryCount(v int) *GraphEdgeUpsert {
	u.Add(graphedge.FieldTrajectoryCount, v)
	return u
}

// SetContributorCount sets the "contributor_count" field.
func (u *GraphEdgeUpsert) SetContributorCount(v int) *GraphEdgeUpsert {
	u.Set(graphedge.FieldContributorCount, v)
	return u
}

// UpdateContributorCount sets the "contributor_count" field to the value that was provided on create.
func (u *GraphEdgeUpsert) UpdateContributorCount() *GraphEdgeUpsert {
	u.SetExcluded(graphedge.FieldContributorCount)
	return u
}

// AddContributorCount adds v to the "contributor_count" field.
func (u *GraphEdgeUpsert) AddContributorCount(v int) *GraphEdgeUpsert {
	u.Add(graphedge.FieldContributorCount, v)
	return u
}

// SetRelationshipType sets the "relationship_type" field.
func (u *GraphEdgeUpsert) SetRelationshipType(v string) *GraphEdgeUpsert {
	u.Set(graphedge.FieldRelationshipType, v)
	return u
}

// UpdateRelationshipType sets the "relationship_type" field to the value that was provided on create.
func (u *GraphEdgeUpsert) UpdateRelationshipType() *GraphEdgeUpsert {
	u.SetExcluded(graphedge.FieldRelationshipType)
	return u
}

// ClearRelationshipType clears the value of the "relationship_type" field.
func (u *GraphEdgeUpsert) ClearRelationshipType() *GraphEdgeUpsert {
	u.SetNull(graphedge.FieldRelationshipType)
	return u
}

// SetPositiveOutcomes sets the "positive_outcomes" field.
func (u *GraphEdgeUpsert) SetPositiveOutcomes(v int) *GraphEdgeUpsert {
	u.Set(graphedge.FieldPositiveOutcomes, v)
	return u
}

// UpdatePositiveOutcomes sets the "positive_outcomes" field to the value that was provided on create.
func (u *GraphEdgeUpsert) UpdatePositiveOutcomes() *GraphEdgeUpsert {
	u.SetExcluded(graphedge.FieldPositiveOutcomes)
	return u
}

// AddPositiveOutcomes adds v to the "positive_outcomes" field.
func (u *GraphEdgeUpsert) AddPositiveOutcomes(v int) *GraphEdgeUpsert {
	u.Add(graphedge.FieldPositiveOutcomes, v)
	return u
}

// SetNegativeOutcomes sets the "negative_outcomes" field.
func (u *GraphEdgeUpsert) SetNegativeOutcomes(v int) *GraphEdgeUpsert {
	u.Set(graphedge.FieldNegativeOutcomes, v)
	return u
}

// UpdateNegativeOutcomes sets the "negative_outcomes" field to the value that was provided on create.
func (u *GraphEdgeUpsert) UpdateNegativeOutcomes() *GraphEdgeUpsert {
	u.SetExcluded(graphedge.FieldNegativeOutcomes)
	return u
}

// AddNegativeOutcomes adds v to the "negative_outcomes" field.
func (u *GraphEdgeUpsert) AddNegativeOutcomes(v int) *GraphEdgeUpsert {
	u.Add(graphedge.FieldNegativeOutcomes, v)
	return u
}

// SetMixedOutcomes sets the "mixed_outcomes" field.
func (u *GraphEdgeUpsert) SetMixedOutcomes(v int) *GraphEdgeUpsert {
	u.Set(graphedge.FieldMixedOutcomes, v)
	return u
}

// UpdateMixedOutcomes sets the "mixed_outcomes" field to the value that was provided on create.
func (u *GraphEdgeUpsert) UpdateMixedOutcomes() *GraphEdgeUpsert {
	u.SetExcluded(graphedge.FieldMixedOutcomes)
	return u
}

// AddMixedOutcomes adds v to the "mixed_outcomes" field.
func (u *GraphEdgeUpsert) AddMixedOutcomes(v int) *GraphEdgeUpsert {
	u.Add(graphedge.FieldMixedOutcomes, v)
	return u
}

// SetFirstSeen sets the "first_seen" field.
func (u *GraphEdgeUpsert) SetFirstSeen(v int64) *GraphEdgeUpsert {
	u.Set(graphedge.FieldFirstSeen, v)
	return u
}

// UpdateFirstSeen sets the "first_seen" field to the value that was provided on create.
func (u *GraphEdgeUpsert) UpdateFirstSeen() *GraphEdgeUpsert {
	u.SetExcluded(graphedge.FieldFirstSeen)
	return u
}

// AddFirstSeen adds v to the "first_seen" field.
func (u *GraphEdgeUpsert) AddFirstSeen(v int64) *GraphEdgeUpsert {
	u.Add(graphedge.FieldFirstSeen, v)
	return u
}

// SetLastSeen sets the "last_seen" field.
func (u *GraphEdgeUpsert) SetLastSeen(v int64) *GraphEdgeUpsert {
	u.Set(graphedge.FieldLastSeen, v)
	return u
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *GraphEdgeUpsert) UpdateLastSeen() *GraphEdgeUpsert {
	u.SetExcluded(graphedge.FieldLastSeen)
	return u
}

// AddLastSeen adds v to the "last_seen" field.
func (u *GraphEdgeUpsert) AddLastSeen(v int64) *GraphEdgeUpsert {
	u.Add(graphedge.FieldLastSeen, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.GraphEdge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(graphedge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GraphEdgeUpsertOne) UpdateNewValues() *GraphEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(graphedge.FieldID)
		}
		if _, exists := u.create.mutation.SourceID(); exists {
			s.SetIgnore(graphedge.FieldSourceID)
		}
		if _, exists := u.create.mutation.TargetID(); exists {
			s.SetIgnore(graphedge.FieldTargetID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GraphEdge.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *GraphEdgeUpsertOne) Ignore() *GraphEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GraphEdgeUpsertOne) DoNothing() *GraphEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GraphEdgeCreate.OnConflict
// documentation for more info.
func (u *GraphEdgeUpsertOne) Update(set func(*GraphEdgeUpsert)) *GraphEdgeUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GraphEdgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetWeight sets the "weight" field.
func (u *GraphEdgeUpsertOne) SetWeight(v int) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *GraphEdgeUpsertOne) AddWeight(v int) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *GraphEdgeUpsertOne) UpdateWeight() *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateWeight()
	})
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (u *GraphEdgeUpsertOne) SetTrajectoryCount(v int) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetTrajectoryCount(v)
	})
}

// AddTrajectoryCount adds v to the "trajectory_count" field.
func (u *GraphEdgeUpsertOne) AddTrajectoryCount(v int) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddTrajectoryCount(v)
	})
}

// UpdateTrajectoryCount sets the "trajectory_count" field to the value that was provided on create.
func (u *GraphEdgeUpsertOne) UpdateTrajectoryCount() *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateTrajectoryCount()
	})
}

// SetContributorCount sets the "contributor_count" field.
func (u *GraphEdgeUpsertOne) SetContributorCount(v int) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetContributorCount(v)
	})
}

// AddContributorCount adds v to the "contributor_count" field.
func (u *GraphEdgeUpsertOne) AddContributorCount(v int) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddContributorCount(v)
	})
}

// UpdateContributorCount sets the "contributor_count" field to the value that was provided on create.
func (u *GraphEdgeUpsertOne) UpdateContributorCount() *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateContributorCount()
	})
}

// SetRelationshipType sets the "relationship_type" field.
func (u *GraphEdgeUpsertOne) SetRelationshipType(v string) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetRelationshipType(v)
	})
}

// UpdateRelationshipType sets the "relationship_type" field to the value that was provided on create.
func (u *GraphEdgeUpsertOne) UpdateRelationshipType() *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateRelationshipType()
	})
}

// ClearRelationshipType clears the value of the "relationship_type" field.
func (u *GraphEdgeUpsertOne) ClearRelationshipType() *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.ClearRelationshipType()
	})
}

// SetPositiveOutcomes sets the "positive_outcomes" field.
func (u *GraphEdgeUpsertOne) SetPositiveOutcomes(v int) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetPositiveOutcomes(v)
	})
}

// AddPositiveOutcomes adds v to the "positive_outcomes" field.
func (u *GraphEdgeUpsertOne) AddPositiveOutcomes(v int) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddPositiveOutcomes(v)
	})
}

// UpdatePositiveOutcomes sets the "positive_outcomes" field to the value that was provided on create.
func (u *GraphEdgeUpsertOne) UpdatePositiveOutcomes() *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdatePositiveOutcomes()
	})
}

// SetNegativeOutcomes sets the "negative_outcomes" field.
func (u *GraphEdgeUpsertOne) SetNegativeOutcomes(v int) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetNegativeOutcomes(v)
	})
}

// AddNegativeOutcomes adds v to the "negative_outcomes" field.
func (u *GraphEdgeUpsertOne) AddNegativeOutcomes(v int) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddNegativeOutcomes(v)
	})
}

// UpdateNegativeOutcomes sets the "negative_outcomes" field to the value that was provided on create.
func (u *GraphEdgeUpsertOne) UpdateNegativeOutcomes() *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateNegativeOutcomes()
	})
}

// SetMixedOutcomes sets the "mixed_outcomes" field.
func (u *GraphEdgeUpsertOne) SetMixedOutcomes(v int) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetMixedOutcomes(v)
	})
}

// AddMixedOutcomes adds v to the "mixed_outcomes" field.
func (u *GraphEdgeUpsertOne) AddMixedOutcomes(v int) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddMixedOutcomes(v)
	})
}

// UpdateMixedOutcomes sets the "mixed_outcomes" field to the value that was provided on create.
func (u *GraphEdgeUpsertOne) UpdateMixedOutcomes() *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateMixedOutcomes()
	})
}

// SetFirstSeen sets the "first_seen" field.
func (u *GraphEdgeUpsertOne) SetFirstSeen(v int64) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetFirstSeen(v)
	})
}

// AddFirstSeen adds v to the "first_seen" field.
func (u *GraphEdgeUpsertOne) AddFirstSeen(v int64) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddFirstSeen(v)
	})
}

// UpdateFirstSeen sets the "first_seen" field to the value that was provided on create.
func (u *GraphEdgeUpsertOne) UpdateFirstSeen() *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateFirstSeen()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *GraphEdgeUpsertOne) SetLastSeen(v int64) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetLastSeen(v)
	})
}

// AddLastSeen adds v to the "last_seen" field.
func (u *GraphEdgeUpsertOne) AddLastSeen(v int64) *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *GraphEdgeUpsertOne) UpdateLastSeen() *GraphEdgeUpsertOne {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *GraphEdgeUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GraphEdgeCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GraphEdgeUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *GraphEdgeUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: GraphEdgeUpsertOne.ID is not supported by MySQL driver. Use GraphEdgeUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *GraphEdgeUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// GraphEdgeCreateBulk is the builder for creating many GraphEdge entities in bulk.
type GraphEdgeCreateBulk struct {
	config
	err      error
	builders []*GraphEdgeCreate
	conflict []sql.ConflictOption
}

// Save creates the GraphEdge entities in the database.
func (_c *GraphEdgeCreateBulk) Save(ctx context.Context) ([]*GraphEdge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GraphEdge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GraphEdgeMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *GraphEdgeCreateBulk) SaveX(ctx context.Context) []*GraphEdge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GraphEdgeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GraphEdgeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.GraphEdge.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.GraphEdgeUpsert) {
//			SetSourceID(v+v).
//		}).
//		Exec(ctx)
func (_c *GraphEdgeCreateBulk) OnConflict(opts ...sql.ConflictOption) *GraphEdgeUpsertBulk {
	_c.conflict = opts
	return &GraphEdgeUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.GraphEdge.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *GraphEdgeCreateBulk) OnConflictColumns(columns ...string) *GraphEdgeUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &GraphEdgeUpsertBulk{
		create: _c,
	}
}

// GraphEdgeUpsertBulk is the builder for "upsert"-ing
// a bulk of GraphEdge nodes.
type GraphEdgeUpsertBulk struct {
	create *GraphEdgeCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.GraphEdge.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(graphedge.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *GraphEdgeUpsertBulk) UpdateNewValues() *GraphEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(graphedge.FieldID)
			}
			if _, exists := b.mutation.SourceID(); exists {
				s.SetIgnore(graphedge.FieldSourceID)
			}
			if _, exists := b.mutation.TargetID(); exists {
				s.SetIgnore(graphedge.FieldTargetID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.GraphEdge.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *GraphEdgeUpsertBulk) Ignore() *GraphEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *GraphEdgeUpsertBulk) DoNothing() *GraphEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the GraphEdgeCreateBulk.OnConflict
// documentation for more info.
func (u *GraphEdgeUpsertBulk) Update(set func(*GraphEdgeUpsert)) *GraphEdgeUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&GraphEdgeUpsert{UpdateSet: update})
	}))
	return u
}

// SetWeight sets the "weight" field.
func (u *GraphEdgeUpsertBulk) SetWeight(v int) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetWeight(v)
	})
}

// AddWeight adds v to the "weight" field.
func (u *GraphEdgeUpsertBulk) AddWeight(v int) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddWeight(v)
	})
}

// UpdateWeight sets the "weight" field to the value that was provided on create.
func (u *GraphEdgeUpsertBulk) UpdateWeight() *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateWeight()
	})
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (u *GraphEdgeUpsertBulk) SetTrajectoryCount(v int) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetTrajectoryCount(v)
	})
}

// AddTrajectoryCount adds v to the "trajectory_count" field.
func (u *GraphEdgeUpsertBulk) AddTrajectoryCount(v int) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddTrajectoryCount(v)
	})
}

// UpdateTrajectoryCount sets the "trajectory_count" field to the value that was provided on create.
func (u *GraphEdgeUpsertBulk) UpdateTrajectoryCount() *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateTrajectoryCount()
	})
}

// SetContributorCount sets the "contributor_count" field.
func (u *GraphEdgeUpsertBulk) SetContributorCount(v int) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetContributorCount(v)
	})
}

// AddContributorCount adds v to the "contributor_count" field.
func (u *GraphEdgeUpsertBulk) AddContributorCount(v int) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddContributorCount(v)
	})
}

// UpdateContributorCount sets the "contributor_count" field to the value that was provided on create.
func (u *GraphEdgeUpsertBulk) UpdateContributorCount() *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateContributorCount()
	})
}

// SetRelationshipType sets the "relationship_type" field.
func (u *GraphEdgeUpsertBulk) SetRelationshipType(v string) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetRelationshipType(v)
	})
}

// UpdateRelationshipType sets the "relationship_type" field to the value that was provided on create.
func (u *GraphEdgeUpsertBulk) UpdateRelationshipType() *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateRelationshipType()
	})
}

// ClearRelationshipType clears the value of the "relationship_type" field.
func (u *GraphEdgeUpsertBulk) ClearRelationshipType() *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.ClearRelationshipType()
	})
}

// SetPositiveOutcomes sets the "positive_outcomes" field.
func (u *GraphEdgeUpsertBulk) SetPositiveOutcomes(v int) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetPositiveOutcomes(v)
	})
}

// AddPositiveOutcomes adds v to the "positive_outcomes" field.
func (u *GraphEdgeUpsertBulk) AddPositiveOutcomes(v int) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddPositiveOutcomes(v)
	})
}

// UpdatePositiveOutcomes sets the "positive_outcomes" field to the value that was provided on create.
func (u *GraphEdgeUpsertBulk) UpdatePositiveOutcomes() *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdatePositiveOutcomes()
	})
}

// SetNegativeOutcomes sets the "negative_outcomes" field.
func (u *GraphEdgeUpsertBulk) SetNegativeOutcomes(v int) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetNegativeOutcomes(v)
	})
}

// AddNegativeOutcomes adds v to the "negative_outcomes" field.
func (u *GraphEdgeUpsertBulk) AddNegativeOutcomes(v int) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddNegativeOutcomes(v)
	})
}

// UpdateNegativeOutcomes sets the "negative_outcomes" field to the value that was provided on create.
func (u *GraphEdgeUpsertBulk) UpdateNegativeOutcomes() *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateNegativeOutcomes()
	})
}

// SetMixedOutcomes sets the "mixed_outcomes" field.
func (u *GraphEdgeUpsertBulk) SetMixedOutcomes(v int) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetMixedOutcomes(v)
	})
}

// AddMixedOutcomes adds v to the "mixed_outcomes" field.
func (u *GraphEdgeUpsertBulk) AddMixedOutcomes(v int) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddMixedOutcomes(v)
	})
}

// UpdateMixedOutcomes sets the "mixed_outcomes" field to the value that was provided on create.
func (u *GraphEdgeUpsertBulk) UpdateMixedOutcomes() *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateMixedOutcomes()
	})
}

// SetFirstSeen sets the "first_seen" field.
func (u *GraphEdgeUpsertBulk) SetFirstSeen(v int64) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetFirstSeen(v)
	})
}

// AddFirstSeen adds v to the "first_seen" field.
func (u *GraphEdgeUpsertBulk) AddFirstSeen(v int64) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddFirstSeen(v)
	})
}

// UpdateFirstSeen sets the "first_seen" field to the value that was provided on create.
func (u *GraphEdgeUpsertBulk) UpdateFirstSeen() *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateFirstSeen()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *GraphEdgeUpsertBulk) SetLastSeen(v int64) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.SetLastSeen(v)
	})
}

// AddLastSeen adds v to the "last_seen" field.
func (u *GraphEdgeUpsertBulk) AddLastSeen(v int64) *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.AddLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *GraphEdgeUpsertBulk) UpdateLastSeen() *GraphEdgeUpsertBulk {
	return u.Update(func(s *GraphEdgeUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *GraphEdgeUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the GraphEdgeCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for GraphEdgeCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *GraphEdgeUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
