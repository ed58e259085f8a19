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
	"github.com/praxishq/praxis/ent/cooccurrence"
)

// CooccurrenceCreate is the builder for creating a Cooccurrence entity.
type CooccurrenceCreate struct {
	config
	mutation *CooccurrenceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEntityAID sets the "entity_a_id" field.
func (_c *CooccurrenceCreate) SetEntityAID(v string) *CooccurrenceCreate {
	_c.mutation.SetEntityAID(v)
	return _c
}

// SetEntityBID sets the "entity_b_id" field.
func (_c *CooccurrenceCreate) SetEntityBID(v string) *CooccurrenceCreate {
	_c.mutation.SetEntityBID(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *CooccurrenceCreate) SetCount(v int) *CooccurrenceCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *CooccurrenceCreate) SetNillableCount(v *int) *CooccurrenceCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// SetWindowCount sets the "window_count" field.
func (_c *CooccurrenceCreate) SetWindowCount(v int) *CooccurrenceCreate {
	_c.mutation.SetWindowCount(v)
	return _c
}

// SetNillableWindowCount sets the "window_count" field if the given value is not nil.
func (_c *CooccurrenceCreate) SetNillableWindowCount(v *int) *CooccurrenceCreate {
	if v != nil {
		_c.SetWindowCount(*v)
	}
	return _c
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (_c *CooccurrenceCreate) SetTrajectoryCount(v int) *CooccurrenceCreate {
	_c.mutation.SetTrajectoryCount(v)
	return _c
}

// SetNillableTrajectoryCount sets the "trajectory_count" field if the given value is not nil.
func (_c *CooccurrenceCreate) SetNillableTrajectoryCount(v *int) *CooccurrenceCreate {
	if v != nil {
		_c.SetTrajectoryCount(*v)
	}
	return _c
}

// SetContributorCount sets the "contributor_count" field.
func (_c *CooccurrenceCreate) SetContributorCount(v int) *CooccurrenceCreate {
	_c.mutation.SetContributorCount(v)
	return _c
}

// SetNillableContributorCount sets the "contributor_count" field if the given value is not nil.
func (_c *CooccurrenceCreate) SetNillableContributorCount(v *int) *CooccurrenceCreate {
	if v != nil {
		_c.SetContributorCount(*v)
	}
	return _c
}

// SetLastUpdated sets the "last_updated" field.
func (_c *CooccurrenceCreate) SetLastUpdated(v int64) *CooccurrenceCreate {
	_c.mutation.SetLastUpdated(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CooccurrenceCreate) SetID(v string) *CooccurrenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CooccurrenceMutation object of the builder.
func (_c *CooccurrenceCreate) Mutation() *CooccurrenceMutation {
	return _c.mutation
}

// Save creates the Cooccurrence in the database.
func (_c *CooccurrenceCreate) Save(ctx context.Context) (*Cooccurrence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CooccurrenceCreate) SaveX(ctx context.Context) *Cooccurrence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CooccurrenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CooccurrenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CooccurrenceCreate) defaults() {
	if _, ok := _c.mutation.Count(); !ok {
		v := cooccurrence.DefaultCount
		_c.mutation.SetCount(v)
	}
	if _, ok := _c.mutation.WindowCount(); !ok {
		v := cooccurrence.DefaultWindowCount
		_c.mutation.SetWindowCount(v)
	}
	if _, ok := _c.mutation.TrajectoryCount(); !ok {
		v := cooccurrence.DefaultTrajectoryCount
		_c.mutation.SetTrajectoryCount(v)
	}
	if _, ok := _c.mutation.ContributorCount(); !ok {
		v := cooccurrence.DefaultContributorCount
		_c.mutation.SetContributorCount(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CooccurrenceCreate) check() error {
	if _, ok := _c.mutation.EntityAID(); !ok {
		return &ValidationError{Name: "entity_a_id", err: errors.New(`ent: missing required field "Cooccurrence.entity_a_id"`)}
	}
	if _, ok := _c.mutation.EntityBID(); !ok {
		return &ValidationError{Name: "entity_b_id", err: errors.New(`ent: missing required field "Cooccurrence.entity_b_id"`)}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "Cooccurrence.count"`)}
	}
	if _, ok := _c.mutation.WindowCount(); !ok {
		return &ValidationError{Name: "window_count", err: errors.New(`ent: missing required field "Cooccurrence.window_count"`)}
	}
	if _, ok := _c.mutation.TrajectoryCount(); !ok {
		return &ValidationError{Name: "trajectory_count", err: errors.New(`ent: missing required field "Cooccurrence.trajectory_count"`)}
	}
	if _, ok := _c.mutation.ContributorCount(); !ok {
		return &ValidationError{Name: "contributor_count", err: errors.New(`ent: missing required field "Cooccurrence.contributor_count"`)}
	}
	if _, ok := _c.mutation.LastUpdated(); !ok {
		return &ValidationError{Name: "last_updated", err: errors.New(`ent: missing required field "Cooccurrence.last_updated"`)}
	}
	return nil
}

func (_c *CooccurrenceCreate) sqlSave(ctx context.Context) (*Cooccurrence, error) {
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
			return nil, fmt.Errorf("unexpected Cooccurrence.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CooccurrenceCreate) createSpec() (*Cooccurrence, *sqlgraph.CreateSpec) {
	var (
		_node = &Cooccurrence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(cooccurrence.Table, sqlgraph.NewFieldSpec(cooccurrence.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.EntityAID(); ok {
		_spec.SetField(cooccurrence.FieldEntityAID, field.TypeString, value)
		_node.EntityAID = value
	}
	if value, ok := _c.mutation.EntityBID(); ok {
		_spec.SetField(cooccurrence.FieldEntityBID, field.TypeString, value)
		_node.EntityBID = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(cooccurrence.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	if value, ok := _c.mutation.WindowCount(); ok {
		_spec.SetField(cooccurrence.FieldWindowCount, field.TypeInt, value)
		_node.WindowCount = value
	}
	if value, ok := _c.mutation.TrajectoryCount(); ok {
		_spec.SetField(cooccurrence.FieldTrajectoryCount, field.TypeInt, value)
		_node.TrajectoryCount = value
	}
	if value, ok := _c.mutation.ContributorCount(); ok {
		_spec.SetField(cooccurrence.FieldContributorCount, field.TypeInt, value)
		_node.ContributorCount = value
	}
	if value, ok := _c.mutation.LastUpdated(); ok {
		_spec.SetField(cooccurrence.FieldLastUpdated, field.TypeInt64, value)
		_node.LastUpdated = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Cooccurrence.Create().
//		SetEntityAID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CooccurrenceUpsert) {
//			SetEntityAID(v+v).
//		}).
//		Exec(ctx)
func (_c *CooccurrenceCreate) OnConflict(opts ...sql.ConflictOption) *CooccurrenceUpsertOne {
	_c.conflict = opts
	return &CooccurrenceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Cooccurrence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CooccurrenceCreate) OnConflictColumns(columns ...string) *CooccurrenceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CooccurrenceUpsertOne{
		create: _c,
	}
}

type (
	// CooccurrenceUpsertOne is the builder for "upsert"-ing
	//  one Cooccurrence node.
	CooccurrenceUpsertOne struct {
		create *CooccurrenceCreate
	}

	// CooccurrenceUpsert is the "OnConflict" setter.
	CooccurrenceUpsert struct {
		*sql.UpdateSet
	}
)

// SetCount sets the "count" field.
func (u *CooccurrenceUpsert) SetCount(v int) *CooccurrenceUpsert {
	u.Set(cooccurrence.FieldCount, v)
	return u
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *CooccurrenceUpsert) UpdateCount() *CooccurrenceUpsert {
	u.SetExcluded(cooccurrence.FieldCount)
	return u
}

// AddCount adds v to the "count" field.
func (u *CooccurrenceUpsert) AddCount(v int) *CooccurrenceUpsert {
	u.Add(cooccurrence.FieldCount, v)
	return u
}

// SetWindowCount sets the "window_count" field.
func (u *CooccurrenceUpsert) SetWindowCount(v int) *CooccurrenceUpsert {
	u.Set(cooccurrence.FieldWindowCount, v)
	return u
}

// UpdateWindowCount sets the "window_count" field to the value that was provided on create.
func (u *CooccurrenceUpsert) UpdateWindowCount() *CooccurrenceUpsert {
	u.SetExcluded(cooccurrence.FieldWindowCount)
	return u
}

// AddWindowCount adds v to the "window_count" field.
func (u *CooccurrenceUpsert) AddWindowCount(v int) *CooccurrenceUpsert {
	u.Add(cooccurrence.FieldWindowCount, v)
	return u
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (u *CooccurrenceUpsert) SetTrajectoryCount(v int) *CooccurrenceUpsert {
	u.Set(cooccurrence.FieldTrajectoryCount, v)
	return u
}

// UpdateTrajectoryCount sets the "trajectory_count" field to the value that was provided on create.
func (u *CooccurrenceUpsert) UpdateTrajectoryCount() *CooccurrenceUpsert {
	u.SetExcluded(cooccurrence.FieldTrajectoryCount)
	return u
}

// AddTrajectoryCount adds v to the "trajectory_count" field.
func (u *CooccurrenceUpsert) AddTrajectoryCount(v int) *CooccurrenceUpsert {
	u.Add(cooccurrence.FieldTrajectoryCount, v)
	return u
}

// SetContributorCount sets the "contributor_count" field.
func (u *CooccurrenceUpsert) SetContributorCount(v int) *CooccurrenceUpsert {
	u.Set(cooccurrence.FieldContributorCount, v)
	return u
}

// UpdateContributorCount sets the "contributor_count" field to the value that was provided on create.
func (u *CooccurrenceUpsert) UpdateContributorCount() *CooccurrenceUpsert {
	u.SetExcluded(cooccurrence.FieldContributorCount)
	return u
}

// AddContributorCount adds v to the "contributor_count" field.
func (u *CooccurrenceUpsert) AddContributorCount(v int) *CooccurrenceUpsert {
	u.Add(cooccurrence.FieldContributorCount, v)
	return u
}

// SetLastUpdated sets the "last_updated" field.
func (u *CooccurrenceUpsert) SetLastUpdated(v int64) *CooccurrenceUpsert {
	u.Set(cooccurrence.FieldLastUpdated, v)
	return u
}

// UpdateLastUpdated sets the "last_updated" field to the value that was provided on create.
func (u *CooccurrenceUpsert) UpdateLastUpdated() *CooccurrenceUpsert {
	u.SetExcluded(cooccurrence.FieldLastUpdated)
	return u
}

// AddLastUpdated adds v to the "last_updated" field.
func (u *CooccurrenceUpsert) AddLastUpdated(v int64) *CooccurrenceUpsert {
	u.Add(cooccurrence.FieldLastUpdated, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Cooccurrence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cooccurrence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CooccurrenceUpsertOne) UpdateNewValues() *CooccurrenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(cooccurrence.FieldID)
		}
		if _, exists := u.create.mutation.EntityAID(); exists {
			s.SetIgnore(cooccurrence.FieldEntityAID)
		}
		if _, exists := u.create.mutation.EntityBID(); exists {
			s.SetIgnore(cooccurrence.FieldEntityBID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Cooccurrence.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CooccurrenceUpsertOne) Ignore() *CooccurrenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CooccurrenceUpsertOne) DoNothing() *CooccurrenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CooccurrenceCreate.OnConflict
// documentation for more info.
func (u *CooccurrenceUpsertOne) Update(set func(*CooccurrenceUpsert)) *CooccurrenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CooccurrenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetCount sets the "count" field.
func (u *CooccurrenceUpsertOne) SetCount(v int) *CooccurrenceUpsertOne {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *CooccurrenceUpsertOne) AddCount(v int) *CooccurrenceUpsertOne {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *CooccurrenceUpsertOne) UpdateCount() *CooccurrenceUpsertOne {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.UpdateCount()
	})
}

// SetWindowCount sets the "window_count" field.
func (u *CooccurrenceUpsertOne) SetWindowCount(v int) *CooccurrenceUpsertOne {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.SetWindowCount(v)
	})
}

// AddWindowCount adds v to the "window_count" field.
func (u *CooccurrenceUpsertOne) AddWindowCount(v int) *CooccurrenceUpsertOne {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.AddWindowCount(v)
	})
}

// UpdateWindowCount sets the "window_count" field to the value that was provided on create.
func (u *CooccurrenceUpsertOne) UpdateWindowCount() *CooccurrenceUpsertOne {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.UpdateWindowCount()
	})
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (u *CooccurrenceUpsertOne) SetTrajectoryCount(v int) *CooccurrenceUpsertOne {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.SetTrajectoryCount(v)
	})
}

// AddTrajectoryCount adds v to the "trajectory_count" field.
func (u *CooccurrenceUpsertOne) AddTrajectoryCount(v int) *CooccurrenceUpsertOne {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.AddTrajectoryCount(v)
	})
}

// UpdateTrajectoryCount sets the "trajectory_count" field to the value that was provided on create.
func (u *CooccurrenceUpsertOne) UpdateTrajectoryCount() *CooccurrenceUpsertOne {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.UpdateTrajectoryCount()
	})
}

// SetContributorCount sets the "contributor_count" field.
func (u *CooccurrenceUpsertOne) SetContributorCount(v int) *CooccurrenceUpsertOne {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.SetContributorCount(v)
	})
}

// AddContributorCount adds v to the "contributor_count" field.
func (u *CooccurrenceUpsertOne) AddContributorCount(v int) *CooccurrenceUpsertOne {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.AddContributorCount(v)
	})
}

// UpdateContributorCount sets the "contributor_count" field to the value that was provided on create.
func (u *CooccurrenceUpsertOne) UpdateContributorCount() *CooccurrenceUpsertOne {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.UpdateContributorCount()
	})
}

// SetLastUpdated sets the "last_updated" field.
func (u *CooccurrenceUpsertOne) SetLastUpdated(v int64) *CooccurrenceUpsertOne {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.SetLastUpdated(v)
	})
}

// AddLastUpdated adds v to the "last_updated" field.
func (u *CooccurrenceUpsertOne) AddLastUpdated(v int64) *CooccurrenceUpsertOne {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.AddLastUpdated(v)
	})
}

// UpdateLastUpdated sets the "last_updated" field to the value that was provided on create.
func (u *CooccurrenceUpsertOne) UpdateLastUpdated() *CooccurrenceUpsertOne {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.UpdateLastUpdated()
	})
}

// Exec executes the query.
func (u *CooccurrenceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CooccurrenceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CooccurrenceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CooccurrenceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: CooccurrenceUpsertOne.ID is not supported by MySQL driver. Use CooccurrenceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CooccurrenceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CooccurrenceCreateBulk is the builder for creating many Cooccurrence entities in bulk.
type CooccurrenceCreateBulk struct {
	config
	err      error
	builders []*CooccurrenceCreate
	conflict []sql.ConflictOption
}

// Save creates the Cooccurrence entities in the database.
func (_c *CooccurrenceCreateBulk) Save(ctx context.Context) ([]*Cooccurrence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Cooccurrence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CooccurrenceMutation)
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
func (_c *CooccurrenceCreateBulk) SaveX(ctx context.Context) []*Cooccurrence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CooccurrenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CooccurrenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Cooccurrence.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CooccurrenceUpsert) {
//			SetEntityAID(v+v).
//		}).
//		Exec(ctx)
func (_c *CooccurrenceCreateBulk) OnConflict(opts ...sql.ConflictOption) *CooccurrenceUpsertBulk {
	_c.conflict = opts
	return &CooccurrenceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Cooccurrence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CooccurrenceCreateBulk) OnConflictColumns(columns ...string) *CooccurrenceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CooccurrenceUpsertBulk{
		create: _c,
	}
}

// CooccurrenceUpsertBulk is the builder for "upsert"-ing
// a bulk of Cooccurrence nodes.
type CooccurrenceUpsertBulk struct {
	create *CooccurrenceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Cooccurrence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(cooccurrence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *CooccurrenceUpsertBulk) UpdateNewValues() *CooccurrenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(cooccurrence.FieldID)
			}
			if _, exists := b.mutation.EntityAID(); exists {
				s.SetIgnore(cooccurrence.FieldEntityAID)
			}
			if _, exists := b.mutation.EntityBID(); exists {
				s.SetIgnore(cooccurrence.FieldEntityBID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Cooccurrence.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CooccurrenceUpsertBulk) Ignore() *CooccurrenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CooccurrenceUpsertBulk) DoNothing() *CooccurrenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CooccurrenceCreateBulk.OnConflict
// documentation for more info.
func (u *CooccurrenceUpsertBulk) Update(set func(*CooccurrenceUpsert)) *CooccurrenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CooccurrenceUpsert{UpdateSet: update})
	}))
	return u
}

// SetCount sets the "count" field.
func (u *CooccurrenceUpsertBulk) SetCount(v int) *CooccurrenceUpsertBulk {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.SetCount(v)
	})
}

// AddCount adds v to the "count" field.
func (u *CooccurrenceUpsertBulk) AddCount(v int) *CooccurrenceUpsertBulk {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.AddCount(v)
	})
}

// UpdateCount sets the "count" field to the value that was provided on create.
func (u *CooccurrenceUpsertBulk) UpdateCount() *CooccurrenceUpsertBulk {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.UpdateCount()
	})
}

// SetWindowCount sets the "window_count" field.
func (u *CooccurrenceUpsertBulk) SetWindowCount(v int) *CooccurrenceUpsertBulk {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.SetWindowCount(v)
	})
}

// AddWindowCount adds v to the "window_count" field.
func (u *CooccurrenceUpsertBulk) AddWindowCount(v int) *CooccurrenceUpsertBulk {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.AddWindowCount(v)
	})
}

// UpdateWindowCount sets the "window_count" field to the value that was provided on create.
func (u *CooccurrenceUpsertBulk) UpdateWindowCount() *CooccurrenceUpsertBulk {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.UpdateWindowCount()
	})
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (u *CooccurrenceUpsertBulk) SetTrajectoryCount(v int) *CooccurrenceUpsertBulk {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.SetTrajectoryCount(v)
	})
}

// AddTrajectoryCount adds v to the "trajectory_count" field.
func (u *CooccurrenceUpsertBulk) AddTrajectoryCount(v int) *CooccurrenceUpsertBulk {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.AddTrajectoryCount(v)
	})
}

// UpdateTrajectoryCount sets the "trajectory_count" field to the value that was provided on create.
func (u *CooccurrenceUpsertBulk) UpdateTrajectoryCount() *CooccurrenceUpsertBulk {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.UpdateTrajectoryCount()
	})
}

// SetContributorCount sets the "contributor_count" field.
func (u *CooccurrenceUpsertBulk) SetContributorCount(v int) *CooccurrenceUpsertBulk {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.SetContributorCount(v)
	})
}

// AddContributorCount adds v to the "contributor_count" field.
func (u *CooccurrenceUpsertBulk) AddContributorCount(v int) *CooccurrenceUpsertBulk {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.AddContributorCount(v)
	})
}

// UpdateContributorCount sets the "contributor_count" field to the value that was provided on create.
func (u *CooccurrenceUpsertBulk) UpdateContributorCount() *CooccurrenceUpsertBulk {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.UpdateContributorCount()
	})
}

// SetLastUpdated sets the "last_updated" field.
func (u *CooccurrenceUpsertBulk) SetLastUpdated(v int64) *CooccurrenceUpsertBulk {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.SetLastUpdated(v)
	})
}

// AddLastUpdated adds v to the "last_updated" field.
func (u *CooccurrenceUpsertBulk) AddLastUpdated(v int64) *CooccurrenceUpsertBulk {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.AddLastUpdated(v)
	})
}

// UpdateLastUpdated sets the "last_updated" field to the value that was provided on create.
func (u *CooccurrenceUpsertBulk) UpdateLastUpdated() *CooccurrenceUpsertBulk {
	return u.Update(func(s *CooccurrenceUpsert) {
		s.UpdateLastUpdated()
	})
}

// Exec executes the query.
func (u *CooccurrenceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CooccurrenceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CooccurrenceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CooccurrenceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
