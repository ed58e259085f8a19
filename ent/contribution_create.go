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
	"github.com/praxishq/praxis/ent/contribution"
)

// ContributionCreate is the builder for creating a Contribution entity.
type ContributionCreate struct {
	config
	mutation *ContributionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEntityID sets the "entity_id" field.
func (_c *ContributionCreate) SetEntityID(v string) *ContributionCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetAccountID sets the "account_id" field.
func (_c *ContributionCreate) SetAccountID(v string) *ContributionCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetFirstTrajectoryID sets the "first_trajectory_id" field.
func (_c *ContributionCreate) SetFirstTrajectoryID(v string) *ContributionCreate {
	_c.mutation.SetFirstTrajectoryID(v)
	return _c
}

// SetTouchCount sets the "touch_count" field.
func (_c *ContributionCreate) SetTouchCount(v int) *ContributionCreate {
	_c.mutation.SetTouchCount(v)
	return _c
}

// SetNillableTouchCount sets the "touch_count" field if the given value is not nil.
func (_c *ContributionCreate) SetNillableTouchCount(v *int) *ContributionCreate {
	if v != nil {
		_c.SetTouchCount(*v)
	}
	return _c
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (_c *ContributionCreate) SetTrajectoryCount(v int) *ContributionCreate {
	_c.mutation.SetTrajectoryCount(v)
	return _c
}

// SetNillableTrajectoryCount sets the "trajectory_count" field if the given value is not nil.
func (_c *ContributionCreate) SetNillableTrajectoryCount(v *int) *ContributionCreate {
	if v != nil {
		_c.SetTrajectoryCount(*v)
	}
	return _c
}

// SetFirstSeen sets the "first_seen" field.
func (_c *ContributionCreate) SetFirstSeen(v int64) *ContributionCreate {
	_c.mutation.SetFirstSeen(v)
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *ContributionCreate) SetLastSeen(v int64) *ContributionCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ContributionCreate) SetID(v string) *ContributionCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ContributionMutation object of the builder.
func (_c *ContributionCreate) Mutation() *ContributionMutation {
	return _c.mutation
}

// Save creates the Contribution in the database.
func (_c *ContributionCreate) Save(ctx context.Context) (*Contribution, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContributionCreate) SaveX(ctx context.Context) *Contribution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContributionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContributionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContributionCreate) defaults() {
	if _, ok := _c.mutation.TouchCount(); !ok {
		v := contribution.DefaultTouchCount
		_c.mutation.SetTouchCount(v)
	}
	if _, ok := _c.mutation.TrajectoryCount(); !ok {
		v := contribution.DefaultTrajectoryCount
		_c.mutation.SetTrajectoryCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContributionCreate) check() error {
	if _, ok := _c.mutation.EntityID(); !ok {
		return &ValidationError{Name: "entity_id", err: errors.New(`ent: missing required field "Contribution.entity_id"`)}
	}
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "Contribution.account_id"`)}
	}
	if _, ok := _c.mutation.FirstTrajectoryID(); !ok {
		return &ValidationError{Name: "first_trajectory_id", err: errors.New(`ent: missing required field "Contribution.first_trajectory_id"`)}
	}
	if _, ok := _c.mutation.TouchCount(); !ok {
		return &ValidationError{Name: "touch_count", err: errors.New(`ent: missing required field "Contribution.touch_count"`)}
	}
	if _, ok := _c.mutation.TrajectoryCount(); !ok {
		return &ValidationError{Name: "trajectory_count", err: errors.New(`ent: missing required field "Contribution.trajectory_count"`)}
	}
	if _, ok := _c.mutation.FirstSeen(); !ok {
		return &ValidationError{Name: "first_seen", err: errors.New(`ent: missing required field "Contribution.first_seen"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "Contribution.last_seen"`)}
	}
	return nil
}

func (_c *ContributionCreate) sqlSave(ctx context.Context) (*Contribution, error) {
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
			return nil, fmt.Errorf("unexpected Contribution.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ContributionCreate) createSpec() (*Contribution, *sqlgraph.CreateSpec) {
	var (
		_node = &Contribution{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contribution.Table, sqlgraph.NewFieldSpec(contribution.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(contribution.FieldEntityID, field.TypeString, value)
		_node.EntityID = value
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(contribution.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.FirstTrajectoryID(); ok {
		_spec.SetField(contribution.FieldFirstTrajectoryID, field.TypeString, value)
		_node.FirstTrajectoryID = value
	}
	if value, ok := _c.mutation.TouchCount(); ok {
		_spec.SetField(contribution.FieldTouchCount, field.TypeInt, value)
		_node.TouchCount = value
	}
	if value, ok := _c.mutation.TrajectoryCount(); ok {
		_spec.SetField(contribution.FieldTrajectoryCount, field.TypeInt, value)
		_node.TrajectoryCount = value
	}
	if value, ok := _c.mutation.FirstSeen(); ok {
		_spec.SetField(contribution.FieldFirstSeen, field.TypeInt64, value)
		_node.FirstSeen = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(contribution.FieldLastSeen, field.TypeInt64, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Contribution.Create().
//		SetEntityID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContributionUpsert) {
//			SetEntityID(v+v).
//		}).
//		Exec(ctx)
func (_c *ContributionCreate) OnConflict(opts ...sql.ConflictOption) *ContributionUpsertOne {
	_c.conflict = opts
	return &ContributionUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Contribution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContributionCreate) OnConflictColumns(columns ...string) *ContributionUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContributionUpsertOne{
		create: _c,
	}
}

type (
	// ContributionUpsertOne is the builder for "upsert"-ing
	//  one Contribution node.
	ContributionUpsertOne struct {
		create *ContributionCreate
	}

	// ContributionUpsert is the "OnConflict" setter.
	ContributionUpsert struct {
		*sql.UpdateSet
	}
)

// SetTouchCount sets the "touch_count" field.
func (u *ContributionUpsert) SetTouchCount(v int) *ContributionUpsert {
	u.Set(contribution.FieldTouchCount, v)
	return u
}

// UpdateTouchCount sets the "touch_count" field to the value that was provided on create.
func (u *ContributionUpsert) UpdateTouchCount() *ContributionUpsert {
	u.SetExcluded(contribution.FieldTouchCount)
	return u
}

// AddTouchCount adds v to the "touch_count" field.
func (u *ContributionUpsert) AddTouchCount(v int) *ContributionUpsert {
	u.Add(contribution.FieldTouchCount, v)
	return u
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (u *ContributionUpsert) SetTrajectoryCount(v int) *ContributionUpsert {
	u.Set(contribution.FieldTrajectoryCount, v)
	return u
}

// UpdateTrajectoryCount sets the "trajectory_count" field to the value that was provided on create.
func (u *ContributionUpsert) UpdateTrajectoryCount() *ContributionUpsert {
	u.SetExcluded(contribution.FieldTrajectoryCount)
	return u
}

// AddTrajectoryCount adds v to the "trajectory_count" field.
func (u *ContributionUpsert) AddTrajectoryCount(v int) *ContributionUpsert {
	u.Add(contribution.FieldTrajectoryCount, v)
	return u
}

// SetLastSeen sets the "last_seen" field.
func (u *ContributionUpsert) SetLastSeen(v int64) *ContributionUpsert {
	u.Set(contribution.FieldLastSeen, v)
	return u
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *ContributionUpsert) UpdateLastSeen() *ContributionUpsert {
	u.SetExcluded(contribution.FieldLastSeen)
	return u
}

// AddLastSeen adds v to the "last_seen" field.
func (u *ContributionUpsert) AddLastSeen(v int64) *ContributionUpsert {
	u.Add(contribution.FieldLastSeen, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Contribution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contribution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContributionUpsertOne) UpdateNewValues() *ContributionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(contribution.FieldID)
		}
		if _, exists := u.create.mutation.EntityID(); exists {
			s.SetIgnore(contribution.FieldEntityID)
		}
		if _, exists := u.create.mutation.AccountID(); exists {
			s.SetIgnore(contribution.FieldAccountID)
		}
		if _, exists := u.create.mutation.FirstTrajectoryID(); exists {
			s.SetIgnore(contribution.FieldFirstTrajectoryID)
		}
		if _, exists := u.create.mutation.FirstSeen(); exists {
			s.SetIgnore(contribution.FieldFirstSeen)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Contribution.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ContributionUpsertOne) Ignore() *ContributionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContributionUpsertOne) DoNothing() *ContributionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContributionCreate.OnConflict
// documentation for more info.
func (u *ContributionUpsertOne) Update(set func(*ContributionUpsert)) *ContributionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContributionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTouchCount sets the "touch_count" field.
func (u *ContributionUpsertOne) SetTouchCount(v int) *ContributionUpsertOne {
	return u.Update(func(s *ContributionUpsert) {
		s.SetTouchCount(v)
	})
}

// AddTouchCount adds v to the "touch_count" field.
func (u *ContributionUpsertOne) AddTouchCount(v int) *ContributionUpsertOne {
	return u.Update(func(s *ContributionUpsert) {
		s.AddTouchCount(v)
	})
}

// UpdateTouchCount sets the "touch_count" field to the value that was provided on create.
func (u *ContributionUpsertOne) UpdateTouchCount() *ContributionUpsertOne {
	return u.Update(func(s *ContributionUpsert) {
		s.UpdateTouchCount()
	})
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (u *ContributionUpsertOne) SetTrajectoryCount(v int) *ContributionUpsertOne {
	return u.Update(func(s *ContributionUpsert) {
		s.SetTrajectoryCount(v)
	})
}

// AddTrajectoryCount adds v to the "trajectory_count" field.
func (u *ContributionUpsertOne) AddTrajectoryCount(v int) *ContributionUpsertOne {
	return u.Update(func(s *ContributionUpsert) {
		s.AddTrajectoryCount(v)
	})
}

// UpdateTrajectoryCount sets the "trajectory_count" field to the value that was provided on create.
func (u *ContributionUpsertOne) UpdateTrajectoryCount() *ContributionUpsertOne {
	return u.Update(func(s *ContributionUpsert) {
		s.UpdateTrajectoryCount()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *ContributionUpsertOne) SetLastSeen(v int64) *ContributionUpsertOne {
	return u.Update(func(s *ContributionUpsert) {
		s.SetLastSeen(v)
	})
}

// AddLastSeen adds v to the "last_seen" field.
func (u *ContributionUpsertOne) AddLastSeen(v int64) *ContributionUpsertOne {
	return u.Update(func(s *ContributionUpsert) {
		s.AddLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *ContributionUpsertOne) UpdateLastSeen() *ContributionUpsertOne {
	return u.Update(func(s *ContributionUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *ContributionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContributionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContributionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ContributionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ContributionUpsertOne.ID is not supported by MySQL driver. Use ContributionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ContributionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ContributionCreateBulk is the builder for creating many Contribution entities in bulk.
type ContributionCreateBulk struct {
	config
	err      error
	builders []*ContributionCreate
	conflict []sql.ConflictOption
}

// Save creates the Contribution entities in the database.
func (_c *ContributionCreateBulk) Save(ctx context.Context) ([]*Contribution, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Contribution, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContributionMutation)
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
func (_c *ContributionCreateBulk) SaveX(ctx context.Context) []*Contribution {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContributionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContributionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Contribution.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ContributionUpsert) {
//			SetEntityID(v+v).
//		}).
//		Exec(ctx)
func (_c *ContributionCreateBulk) OnConflict(opts ...sql.ConflictOption) *ContributionUpsertBulk {
	_c.conflict = opts
	return &ContributionUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Contribution.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ContributionCreateBulk) OnConflictColumns(columns ...string) *ContributionUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ContributionUpsertBulk{
		create: _c,
	}
}

// ContributionUpsertBulk is the builder for "upsert"-ing
// a bulk of Contribution nodes.
type ContributionUpsertBulk struct {
	create *ContributionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Contribution.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(contribution.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ContributionUpsertBulk) UpdateNewValues() *ContributionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(contribution.FieldID)
			}
			if _, exists := b.mutation.EntityID(); exists {
				s.SetIgnore(contribution.FieldEntityID)
			}
			if _, exists := b.mutation.AccountID(); exists {
				s.SetIgnore(contribution.FieldAccountID)
			}
			if _, exists := b.mutation.FirstTrajectoryID(); exists {
				s.SetIgnore(contribution.FieldFirstTrajectoryID)
			}
			if _, exists := b.mutation.FirstSeen(); exists {
				s.SetIgnore(contribution.FieldFirstSeen)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Contribution.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ContributionUpsertBulk) Ignore() *ContributionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ContributionUpsertBulk) DoNothing() *ContributionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ContributionCreateBulk.OnConflict
// documentation for more info.
func (u *ContributionUpsertBulk) Update(set func(*ContributionUpsert)) *ContributionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ContributionUpsert{UpdateSet: update})
	}))
	return u
}

// SetTouchCount sets the "touch_count" field.
func (u *ContributionUpsertBulk) SetTouchCount(v int) *ContributionUpsertBulk {
	return u.Update(func(s *ContributionUpsert) {
		s.SetTouchCount(v)
	})
}

// AddTouchCount adds v to the "touch_count" field.
func (u *ContributionUpsertBulk) AddTouchCount(v int) *ContributionUpsertBulk {
	return u.Update(func(s *ContributionUpsert) {
		s.AddTouchCount(v)
	})
}

// UpdateTouchCount sets the "touch_count" field to the value that was provided on create.
func (u *ContributionUpsertBulk) UpdateTouchCount() *ContributionUpsertBulk {
	return u.Update(func(s *ContributionUpsert) {
		s.UpdateTouchCount()
	})
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (u *ContributionUpsertBulk) SetTrajectoryCount(v int) *ContributionUpsertBulk {
	return u.Update(func(s *ContributionUpsert) {
		s.SetTrajectoryCount(v)
	})
}

// AddTrajectoryCount adds v to the "trajectory_count" field.
func (u *ContributionUpsertBulk) AddTrajectoryCount(v int) *ContributionUpsertBulk {
	return u.Update(func(s *ContributionUpsert) {
		s.AddTrajectoryCount(v)
	})
}

// UpdateTrajectoryCount sets the "trajectory_count" field to the value that was provided on create.
func (u *ContributionUpsertBulk) UpdateTrajectoryCount() *ContributionUpsertBulk {
	return u.Update(func(s *ContributionUpsert) {
		s.UpdateTrajectoryCount()
	})
}

// SetLastSeen sets the "last_seen" field.
func (u *ContributionUpsertBulk) SetLastSeen(v int64) *ContributionUpsertBulk {
	return u.Update(func(s *ContributionUpsert) {
		s.SetLastSeen(v)
	})
}

// AddLastSeen adds v to the "last_seen" field.
func (u *ContributionUpsertBulk) AddLastSeen(v int64) *ContributionUpsertBulk {
	return u.Update(func(s *ContributionUpsert) {
		s.AddLastSeen(v)
	})
}

// UpdateLastSeen sets the "last_seen" field to the value that was provided on create.
func (u *ContributionUpsertBulk) UpdateLastSeen() *ContributionUpsertBulk {
	return u.Update(func(s *ContributionUpsert) {
		s.UpdateLastSeen()
	})
}

// Exec executes the query.
func (u *ContributionUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ContributionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ContributionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ContributionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
