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
	"github.com/praxishq/praxis/ent/entity"
)

// EntityCreate is the builder for creating a Entity entity.
type EntityCreate struct {
	config
	mutation *EntityMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *EntityCreate) SetName(v string) *EntityCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNormalizedName sets the "normalized_name" field.
func (_c *EntityCreate) SetNormalizedName(v string) *EntityCreate {
	_c.mutation.SetNormalizedName(v)
	return _c
}

// SetEntityType sets the "entity_type" field.
func (_c *EntityCreate) SetEntityType(v string) *EntityCreate {
	_c.mutation.SetEntityType(v)
	return _c
}

// SetNillableEntityType sets the "entity_type" field if the given value is not nil.
func (_c *EntityCreate) SetNillableEntityType(v *string) *EntityCreate {
	if v != nil {
		_c.SetEntityType(*v)
	}
	return _c
}

// SetDescription sets the "description" field.
func (_c *EntityCreate) SetDescription(v string) *EntityCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *EntityCreate) SetNillableDescription(v *string) *EntityCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetTouchCount sets the "touch_count" field.
func (_c *EntityCreate) SetTouchCount(v int) *EntityCreate {
	_c.mutation.SetTouchCount(v)
	return _c
}

// SetNillableTouchCount sets the "touch_count" field if the given value is not nil.
func (_c *EntityCreate) SetNillableTouchCount(v *int) *EntityCreate {
	if v != nil {
		_c.SetTouchCount(*v)
	}
	return _c
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (_c *EntityCreate) SetTrajectoryCount(v int) *EntityCreate {
	_c.mutation.SetTrajectoryCount(v)
	return _c
}

// SetNillableTrajectoryCount sets the "trajectory_count" field if the given value is not nil.
func (_c *EntityCreate) SetNillableTrajectoryCount(v *int) *EntityCreate {
	if v != nil {
		_c.SetTrajectoryCount(*v)
	}
	return _c
}

// SetContributorCount sets the "contributor_count" field.
func (_c *EntityCreate) SetContributorCount(v int) *EntityCreate {
	_c.mutation.SetContributorCount(v)
	return _c
}

// SetNillableContributorCount sets the "contributor_count" field if the given value is not nil.
func (_c *EntityCreate) SetNillableContributorCount(v *int) *EntityCreate {
	if v != nil {
		_c.SetContributorCount(*v)
	}
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *EntityCreate) SetFirstSeen(v int64) *EntityCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *EntityCreate) SetLastSeen(v int64) *EntityCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EntityCreate) SetID(v string) *EntityCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the EntityMutation object of the builder.
func (_c *EntityCreate) Mutation() *EntityMutation {
	return _c.mutation
}

// Save creates the Entity in the database.
func (_c *EntityCreate) Save(ctx context.Context) (*Entity, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EntityCreate) SaveX(ctx context.Context) *Entity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EntityCreate) defaults() {
	if _, ok := _c.mutation.TouchCount(); !ok {
		v := entity.DefaultTouchCount
		_c.mutation.SetTouchCount(v)
	}
	if _, ok := _c.mutation.TrajectoryCount(); !ok {
		v := entity.DefaultTrajectoryCount
		_c.mutation.SetTrajectoryCount(v)
	}
	if _, ok := _c.mutation.ContributorCount(); !ok {
		v := entity.DefaultContributorCount
		_c.mutation.SetContributorCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EntityCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Entity.name"`)}
	}
	if _, ok := _c.mutation.NormalizedName(); !ok {
		return &ValidationError{Name: "normalized_name", err: errors.New(`ent: missing required field "Entity.normalized_name"`)}
	}
	if _, ok := _c.mutation.TouchCount(); !ok {
		return &ValidationError{Name: "touch_count", err: errors.New(`ent: missing required field "Entity.touch_count"`)}
	}
	if _, ok := _c.mutation.TrajectoryCount(); !ok {
		return &ValidationError{Name: "trajectory_count", err: errors.New(`ent: missing required field "Entity.trajectory_count"`)}
	}
	if _, ok := _c.mutation.ContributorCount(); !ok {
		return &ValidationError{Name: "contributor_count", err: errors.New(`ent: missing required field "Entity.contributor_count"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "Entity.first_seen"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "Entity.last_seen"`)}
	}
	return nil
}

func (_c *EntityCreate) sqlSave(ctx context.Context) (*Entity, error) {
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
			return nil, fmt.Errorf("unexpected Entity.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EntityCreate) createSpec() (*Entity, *sqlgraph.CreateSpec) {
	var (
		_node = &Entity{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(entity.Table, sqlgraph.NewFieldSpec(entity.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(entity.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.NormalizedName(); ok {
		_spec.SetField(entity.FieldNormalizedName, field.TypeString, value)
		_node.NormalizedName = value
	}
	if value, ok := _c.mutation.EntityType(); ok {
		_spec.SetField(entity.FieldEntityType, field.TypeString, value)
		_node.EntityType = &value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(entity.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.TouchCount(); ok {
		_spec.SetField(entity.FieldTouchCount, field.TypeInt, value)
		_node.TouchCount = value
	}
	if value, ok := _c.mutation.TrajectoryCount(); ok {
		_spec.SetField(entity.FieldTrajectoryCount, field.TypeInt, value)
		_node.TrajectoryCount = value
	}
	if value, ok := _c.mutation.ContributorCount(); ok {
		_spec.SetField(entity.FieldContributorCount, field.TypeInt, value)
		_node.ContributorCount = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(entity.FieldFirstSeen, field.TypeInt64, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(entity.FieldLastSeen, field.TypeInt64, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Entity.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityCreate) OnConflict(opts ...sql.ConflictOption) *EntityUpsertOne {
	_c.conflict = opts
	return &EntityUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Entity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityCreate) OnConflictColumns(columns ...string) *EntityUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityUpsertOne{
		create: _c,
	}
}

type (
	// EntityUpsertOne is the builder for "upsert"-ing
	//  one Entity node.
	EntityUpsertOne struct {
		create *EntityCreate
	}

	// EntityUpsert is the "OnConflict" setter.
	EntityUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *EntityUpsert) SetName(v string) *EntityUpsert {
	u.Set(entity.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EntityUpsert) UpdateName() *EntityUpsert {
	u.SetExcluded(entity.FieldName)
	return u
}

// SetNormalizedName sets the "normalized_name" field.
func (u *EntityUpsert) SetNormalizedName(v string) *EntityUpsert {
	u.Set(entity.FieldNormalizedName, v)
	return u
}

// UpdateNormalizedName sets the "normalized_name" field to the value that was provided on create.
func (u *EntityUpsert) UpdateNormalizedName() *EntityUpsert {
	u.SetExcluded(entity.FieldNormalizedName)
	return u
}

// SetEntityType sets the "entity_type" field.
func (u *EntityUpsert) SetEntityType(v string) *EntityUpsert {
	u.Set(entity.FieldEntityType, v)
	return u
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *EntityUpsert) UpdateEntityType() *EntityUpsert {
	u.SetExcluded(entity.FieldEntityType)
	return u
}

// ClearEntityType clears the value of the "entity_type" field.
func (u *EntityUpsert) ClearEntityType() *EntityUpsert {
	u.SetNull(entity.FieldEntityType)
	return u
}

// SetDescription sets the "description" field.
func (u *EntityUpsert) SetDescription(v string) *EntityUpsert {
	u.Set(entity.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EntityUpsert) UpdateDescription() *EntityUpsert {
	u.SetExcluded(entity.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *EntityUpsert) ClearDescription() *EntityUpsert {
	u.SetNull(entity.FieldDescription)
	return u
}

// SetTouchCount sets the "touch_count" field.
func (u *EntityUpsert) SetTouchCount(v int) *EntityUpsert {
	u.Set(entity.FieldTouchCount, v)
	return u
}

// UpdateTouchCount sets the "touch_count" field to the value that was provided on create.
func (u *EntityUpsert) UpdateTouchCount() *EntityUpsert {
	u.SetExcluded(entity.FieldTouchCount)
	return u
}

// AddTouchCount adds v to the "touch_count" field.
func (u *EntityUpsert) AddTouchCount(v int) *EntityUpsert {
	u.Add(entity.FieldTouchCount, v)
	return u
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (u *EntityUpsert) SetTrajectoryCount(v int) *EntityUpsert {
	u.Set(entity.FieldTrajectoryCount, v)
	return u
}

// UpdateTrajectoryCount sets the "trajectory_count" field to the value that was provided on create.
func (u *EntityUpsert) UpdateTrajectoryCount() *EntityUpsert {
	u.SetExcluded(entity.FieldTrajectoryCount)
	return u
}

// AddTrajectoryCount adds v to the "trajectory_count" field.
func (u *EntityUpsert) AddTrajectoryCount(v int) *EntityUpsert {
	u.Add(entity.FieldTrajectoryCount, v)
	return u
}

// SetContributorCount sets the "contributor_count" field.
func (u *EntityUpsert) SetContributorCount(v int) *EntityUpsert {
	u.Set(entity.FieldContributorCount, v)
	return u
}

// UpdateContributorCount sets the "contributor_count" field to the value that was provided on create.
func (u *EntityUpsert) UpdateContributorCount() *EntityUpsert {
	u.SetExcluded(entity.FieldContributorCount)
	return u
}

// AddContributorCount adds v to the "contributor_count" field.
func (u *EntityUpsert) AddContributorCount(v int) *EntityUpsert {
	u.Add(entity.FieldContributorCount, v)
	return u
}

// SetLastSeen sets the "last_seen" field.
func (u *EntityUpsert) SetLastSeen(v int64) *EntityUpsert {
	u.Set(entity.FieldLastSeen, v)
	return u
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *EntityUpsert) UpdateLastSeen() *EntityUpsert {
	u.SetExcluded(entity.FieldLastSeen)
	return u
}

// AddLastSeen adds v to the "last_seen" field.
func (u *EntityUpsert) AddLastSeen(v int64) *EntityUpsert {
	u.Add(entity.FieldLastSeen, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Entity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityUpsertOne) UpdateNewValues() *EntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(entity.FieldID)
		}
		if _, exists := u.create.mutation.FirstSeen(); exists {
			s.SetIgnore(entity.FieldFirstSeen)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Entity.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EntityUpsertOne) Ignore() *EntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityUpsertOne) DoNothing() *EntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityCreate.OnConflict
// documentation for more info.
func (u *EntityUpsertOne) Update(set func(*EntityUpsert)) *EntityUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *EntityUpsertOne) SetName(v string) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateName() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateName()
	})
}

// SetNormalizedName sets the "normalized_name" field.
func (u *EntityUpsertOne) SetNormalizedName(v string) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetNormalizedName(v)
	})
}

// UpdateNormalizedName sets the "normalized_name" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateNormalizedName() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateNormalizedName()
	})
}

// SetEntityType sets the "entity_type" field.
func (u *EntityUpsertOne) SetEntityType(v string) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateEntityType() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateEntityType()
	})
}

// ClearEntityType clears the value of the "entity_type" field.
func (u *EntityUpsertOne) ClearEntityType() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.ClearEntityType()
	})
}

// SetDescription sets the "description" field.
func (u *EntityUpsertOne) SetDescription(v string) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateDescription() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *EntityUpsertOne) ClearDescription() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.ClearDescription()
	})
}

// SetTouchCount sets the "touch_count" field.
func (u *EntityUpsertOne) SetTouchCount(v int) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetTouchCount(v)
	})
}

// AddTouchCount adds v to the "touch_count" field.
func (u *EntityUpsertOne) AddTouchCount(v int) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.AddTouchCount(v)
	})
}

// UpdateTouchCount sets the "touch_count" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateTouchCount() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateTouchCount()
	})
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (u *EntityUpsertOne) SetTrajectoryCount(v int) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetTrajectoryCount(v)
	})
}

// AddTrajectoryCount adds v to the "trajectory_count" field.
func (u *EntityUpsertOne) AddTrajectoryCount(v int) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.AddTrajectoryCount(v)
	})
}

// UpdateTrajectoryCount sets the "trajectory_count" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateTrajectoryCount() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateTrajectoryCount()
	})
}

// SetContributorCount sets the "contributor_count" field.
func (u *EntityUpsertOne) SetContributorCount(v int) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetContributorCount(v)
	})
}

// AddContributorCount adds v to the "contributor_count" field.
func (u *EntityUpsertOne) AddContributorCount(v int) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.AddContributorCount(v)
	})
}

// UpdateContributorCount sets the "contributor_count" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateContributorCount() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateContributorCount()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *EntityUpsertOne) SetLastSeen(v int64) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.SetLastSeen(v)
	})
}

// AddLastSeen adds v to the "last_seen" field.
func (u *EntityUpsertOne) AddLastSeen(v int64) *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.AddLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *EntityUpsertOne) UpdateLastSeen() *EntityUpsertOne {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *EntityUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EntityUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EntityUpsertOne.ID is not supported by MySQL driver. Use EntityUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EntityUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EntityCreateBulk is the builder for creating many Entity entities in bulk.
type EntityCreateBulk struct {
	config
	err      error
	builders []*EntityCreate
	conflict []sql.ConflictOption
}

// Save creates the Entity entities in the database.
func (_c *EntityCreateBulk) Save(ctx context.Context) ([]*Entity, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Entity, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EntityMutation)
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
func (_c *EntityCreateBulk) SaveX(ctx context.Context) []*Entity {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EntityCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EntityCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Entity.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EntityUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *EntityCreateBulk) OnConflict(opts ...sql.ConflictOption) *EntityUpsertBulk {
	_c.conflict = opts
	return &EntityUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Entity.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EntityCreateBulk) OnConflictColumns(columns ...string) *EntityUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EntityUpsertBulk{
		create: _c,
	}
}

// EntityUpsertBulk is the builder for "upsert"-ing
// a bulk of Entity nodes.
type EntityUpsertBulk struct {
	create *EntityCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Entity.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(entity.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EntityUpsertBulk) UpdateNewValues() *EntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(entity.FieldID)
			}
			if _, exists := b.mutation.FirstSeen(); exists {
				s.SetIgnore(entity.FieldFirstSeen)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Entity.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EntityUpsertBulk) Ignore() *EntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EntityUpsertBulk) DoNothing() *EntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EntityCreateBulk.OnConflict
// documentation for more info.
func (u *EntityUpsertBulk) Update(set func(*EntityUpsert)) *EntityUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EntityUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *EntityUpsertBulk) SetName(v string) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateName() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateName()
	})
}

// SetNormalizedName sets the "normalized_name" field.
func (u *EntityUpsertBulk) SetNormalizedName(v string) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetNormalizedName(v)
	})
}

// UpdateNormalizedName sets the "normalized_name" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateNormalizedName() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateNormalizedName()
	})
}

// SetEntityType sets the "entity_type" field.
func (u *EntityUpsertBulk) SetEntityType(v string) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetEntityType(v)
	})
}

// UpdateEntityType sets the "entity_type" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateEntityType() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateEntityType()
	})
}

// ClearEntityType clears the value of the "entity_type" field.
func (u *EntityUpsertBulk) ClearEntityType() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.ClearEntityType()
	})
}

// SetDescription sets the "description" field.
func (u *EntityUpsertBulk) SetDescription(v string) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateDescription() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *EntityUpsertBulk) ClearDescription() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.ClearDescription()
	})
}

// SetTouchCount sets the "touch_count" field.
func (u *EntityUpsertBulk) SetTouchCount(v int) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetTouchCount(v)
	})
}

// AddTouchCount adds v to the "touch_count" field.
func (u *EntityUpsertBulk) AddTouchCount(v int) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.AddTouchCount(v)
	})
}

// UpdateTouchCount sets the "touch_count" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateTouchCount() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateTouchCount()
	})
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (u *EntityUpsertBulk) SetTrajectoryCount(v int) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetTrajectoryCount(v)
	})
}

// AddTrajectoryCount adds v to the "trajectory_count" field.
func (u *EntityUpsertBulk) AddTrajectoryCount(v int) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.AddTrajectoryCount(v)
	})
}

// UpdateTrajectoryCount sets the "trajectory_count" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateTrajectoryCount() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateTrajectoryCount()
	})
}

// SetContributorCount sets the "contributor_count" field.
func (u *EntityUpsertBulk) SetContributorCount(v int) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetContributorCount(v)
	})
}

// AddContributorCount adds v to the "contributor_count" field.
func (u *EntityUpsertBulk) AddContributorCount(v int) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.AddContributorCount(v)
	})
}

// UpdateContributorCount sets the "contributor_count" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateContributorCount() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateContributorCount()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *EntityUpsertBulk) SetLastSeen(v int64) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.SetLastSeen(v)
	})
}

// AddLastSeen adds v to the "last_seen" field.
func (u *EntityUpsertBulk) AddLastSeen(v int64) *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.AddLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *EntityUpsertBulk) UpdateLastSeen() *EntityUpsertBulk {
	return u.Update(func(s *EntityUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *EntityUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EntityCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EntityCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EntityUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
