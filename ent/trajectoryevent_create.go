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
	"github.com/praxishq/praxis/ent/trajectoryevent"
)

// TrajectoryEventCreate is the builder for creating a TrajectoryEvent entity.
type TrajectoryEventCreate struct {
	config
	mutation *TrajectoryEventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTrajectoryID sets the "trajectory_id" field.
func (_c *TrajectoryEventCreate) SetTrajectoryID(v string) *TrajectoryEventCreate {
	_c.mutation.SetTrajectoryID(v)
	return _c
}

// SetSequenceNum sets the "sequence_num" field.
func (_c *TrajectoryEventCreate) SetSequenceNum(v int) *TrajectoryEventCreate {
	_c.mutation.SetSequenceNum(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *TrajectoryEventCreate) SetTimestamp(v int64) *TrajectoryEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetEventType sets the "event_type" field.
func (_c *TrajectoryEventCreate) SetEventType(v trajectoryevent.EventType) *TrajectoryEventCreate {
	_c.mutation.SetEventType(v)
	return _c
}

// SetEntityID sets the "entity_id" field.
func (_c *TrajectoryEventCreate) SetEntityID(v string) *TrajectoryEventCreate {
	_c.mutation.SetEntityID(v)
	return _c
}

// SetNillableEntityID sets the "entity_id" field if the given value is not nil.
func (_c *TrajectoryEventCreate) SetNillableEntityID(v *string) *TrajectoryEventCreate {
	if v != nil {
		_c.SetEntityID(*v)
	}
	return _c
}

// SetData sets the "data" field.
func (_c *TrajectoryEventCreate) SetData(v map[string]interface{}) *TrajectoryEventCreate {
	_c.mutation.SetData(v)
	return _c
}

// SetID sets the "id" field.
func (_c *TrajectoryEventCreate) SetID(v string) *TrajectoryEventCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TrajectoryEventMutation object of the builder.
func (_c *TrajectoryEventCreate) Mutation() *TrajectoryEventMutation {
	return _c.mutation
}

// Save creates the TrajectoryEvent in the database.
func (_c *TrajectoryEventCreate) Save(ctx context.Context) (*TrajectoryEvent, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrajectoryEventCreate) SaveX(ctx context.Context) *TrajectoryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrajectoryEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrajectoryEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrajectoryEventCreate) check() error {
	if _, ok := _c.mutation.TrajectoryID(); !ok {
		return &ValidationError{Name: "trajectory_id", err: errors.New(`ent: missing required field "TrajectoryEvent.trajectory_id"`)}
	}
	if _, ok := _c.mutation.SequenceNum(); !ok {
		return &ValidationError{Name: "sequence_num", err: errors.New(`ent: missing required field "TrajectoryEvent.sequence_num"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "TrajectoryEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.EventType(); !ok {
		return &ValidationError{Name: "event_type", err: errors.New(`ent: missing required field "TrajectoryEvent.event_type"`)}
	}
	if v, ok := _c.mutation.EventType(); ok {
		if err := trajectoryevent.EventTypeValidator(v); err != nil {
			return &ValidationError{Name: "event_type", err: fmt.Errorf(`ent: validator failed for field "TrajectoryEvent.event_type": %w`, err)}
		}
	}
	return nil
}

func (_c *TrajectoryEventCreate) sqlSave(ctx context.Context) (*TrajectoryEvent, error) {
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
			return nil, fmt.Errorf("unexpected TrajectoryEvent.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TrajectoryEventCreate) createSpec() (*TrajectoryEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &TrajectoryEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trajectoryevent.Table, sqlgraph.NewFieldSpec(trajectoryevent.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TrajectoryID(); ok {
		_spec.SetField(trajectoryevent.FieldTrajectoryID, field.TypeString, value)
		_node.TrajectoryID = value
	}
	if value, ok := _c.mutation.SequenceNum(); ok {
		_spec.SetField(trajectoryevent.FieldSequenceNum, field.TypeInt, value)
		_node.SequenceNum = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(trajectoryevent.FieldTimestamp, field.TypeInt64, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.EventType(); ok {
		_spec.SetField(trajectoryevent.FieldEventType, field.TypeEnum, value)
		_node.EventType = value
	}
	if value, ok := _c.mutation.EntityID(); ok {
		_spec.SetField(trajectoryevent.FieldEntityID, field.TypeString, value)
		_node.EntityID = &value
	}
	if value, ok := _c.mutation.Data(); ok {
		_spec.SetField(trajectoryevent.FieldData, field.TypeJSON, value)
		_node.Data = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TrajectoryEvent.Create().
//		SetTrajectoryID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TrajectoryEventUpsert) {
//			SetTrajectoryID(v+v).
//		}).
//		Exec(ctx)
func (_c *TrajectoryEventCreate) OnConflict(opts ...sql.ConflictOption) *TrajectoryEventUpsertOne {
	_c.conflict = opts
	return &TrajectoryEventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TrajectoryEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TrajectoryEventCreate) OnConflictColumns(columns ...string) *TrajectoryEventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TrajectoryEventUpsertOne{
		create: _c,
	}
}

type (
	// TrajectoryEventUpsertOne is the builder for "upsert"-ing
	//  one TrajectoryEvent node.
	TrajectoryEventUpsertOne struct {
		create *TrajectoryEventCreate
	}

	// TrajectoryEventUpsert is the "OnConflict" setter.
	TrajectoryEventUpsert struct {
		*sql.UpdateSet
	}
)

// SetData sets the "data" field.
func (u *TrajectoryEventUpsert) SetData(v map[string]interface{}) *TrajectoryEventUpsert {
	u.Set(trajectoryevent.FieldData, v)
	return u
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *TrajectoryEventUpsert) UpdateData() *TrajectoryEventUpsert {
	u.SetExcluded(trajectoryevent.FieldData)
	return u
}

// ClearData clears the value of the "data" field.
func (u *TrajectoryEventUpsert) ClearData() *TrajectoryEventUpsert {
	u.SetNull(trajectoryevent.FieldData)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TrajectoryEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(trajectoryevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TrajectoryEventUpsertOne) UpdateNewValues() *TrajectoryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(trajectoryevent.FieldID)
		}
		if _, exists := u.create.mutation.TrajectoryID(); exists {
			s.SetIgnore(trajectoryevent.FieldTrajectoryID)
		}
		if _, exists := u.create.mutation.SequenceNum(); exists {
			s.SetIgnore(trajectoryevent.FieldSequenceNum)
		}
		if _, exists := u.create.mutation.Timestamp(); exists {
			s.SetIgnore(trajectoryevent.FieldTimestamp)
		}
		if _, exists := u.create.mutation.EventType(); exists {
			s.SetIgnore(trajectoryevent.FieldEventType)
		}
		if _, exists := u.create.mutation.EntityID(); exists {
			s.SetIgnore(trajectoryevent.FieldEntityID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TrajectoryEvent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TrajectoryEventUpsertOne) Ignore() *TrajectoryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TrajectoryEventUpsertOne) DoNothing() *TrajectoryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TrajectoryEventCreate.OnConflict
// documentation for more info.
func (u *TrajectoryEventUpsertOne) Update(set func(*TrajectoryEventUpsert)) *TrajectoryEventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TrajectoryEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetData sets the "data" field.
func (u *TrajectoryEventUpsertOne) SetData(v map[string]interface{}) *TrajectoryEventUpsertOne {
	return u.Update(func(s *TrajectoryEventUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *TrajectoryEventUpsertOne) UpdateData() *TrajectoryEventUpsertOne {
	return u.Update(func(s *TrajectoryEventUpsert) {
		s.UpdateData()
	})
}

// ClearData clears the value of the "data" field.
func (u *TrajectoryEventUpsertOne) ClearData() *TrajectoryEventUpsertOne {
	return u.Update(func(s *TrajectoryEventUpsert) {
		s.ClearData()
	})
}

// Exec executes the query.
func (u *TrajectoryEventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TrajectoryEventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TrajectoryEventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TrajectoryEventUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TrajectoryEventUpsertOne.ID is not supported by MySQL driver. Use TrajectoryEventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TrajectoryEventUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TrajectoryEventCreateBulk is the builder for creating many TrajectoryEvent entities in bulk.
type TrajectoryEventCreateBulk struct {
	config
	err      error
	builders []*TrajectoryEventCreate
	conflict []sql.ConflictOption
}

// Save creates the TrajectoryEvent entities in the database.
func (_c *TrajectoryEventCreateBulk) Save(ctx context.Context) ([]*TrajectoryEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrajectoryEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrajectoryEventMutation)
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
func (_c *TrajectoryEventCreateBulk) SaveX(ctx context.Context) []*TrajectoryEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrajectoryEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrajectoryEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TrajectoryEvent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TrajectoryEventUpsert) {
//			SetTrajectoryID(v+v).
//		}).
//		Exec(ctx)
func (_c *TrajectoryEventCreateBulk) OnConflict(opts ...sql.ConflictOption) *TrajectoryEventUpsertBulk {
	_c.conflict = opts
	return &TrajectoryEventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TrajectoryEvent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TrajectoryEventCreateBulk) OnConflictColumns(columns ...string) *TrajectoryEventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TrajectoryEventUpsertBulk{
		create: _c,
	}
}

// TrajectoryEventUpsertBulk is the builder for "upsert"-ing
// a bulk of TrajectoryEvent nodes.
type TrajectoryEventUpsertBulk struct {
	create *TrajectoryEventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TrajectoryEvent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(trajectoryevent.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TrajectoryEventUpsertBulk) UpdateNewValues() *TrajectoryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(trajectoryevent.FieldID)
			}
			if _, exists := b.mutation.TrajectoryID(); exists {
				s.SetIgnore(trajectoryevent.FieldTrajectoryID)
			}
			if _, exists := b.mutation.SequenceNum(); exists {
				s.SetIgnore(trajectoryevent.FieldSequenceNum)
			}
			if _, exists := b.mutation.Timestamp(); exists {
				s.SetIgnore(trajectoryevent.FieldTimestamp)
			}
			if _, exists := b.mutation.EventType(); exists {
				s.SetIgnore(trajectoryevent.FieldEventType)
			}
			if _, exists := b.mutation.EntityID(); exists {
				s.SetIgnore(trajectoryevent.FieldEntityID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TrajectoryEvent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TrajectoryEventUpsertBulk) Ignore() *TrajectoryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TrajectoryEventUpsertBulk) DoNothing() *TrajectoryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TrajectoryEventCreateBulk.OnConflict
// documentation for more info.
func (u *TrajectoryEventUpsertBulk) Update(set func(*TrajectoryEventUpsert)) *TrajectoryEventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TrajectoryEventUpsert{UpdateSet: update})
	}))
	return u
}

// SetData sets the "data" field.
func (u *TrajectoryEventUpsertBulk) SetData(v map[string]interface{}) *TrajectoryEventUpsertBulk {
	return u.Update(func(s *TrajectoryEventUpsert) {
		s.SetData(v)
	})
}

// UpdateData sets the "data" field to the value that was provided on create.
func (u *TrajectoryEventUpsertBulk) UpdateData() *TrajectoryEventUpsertBulk {
	return u.Update(func(s *TrajectoryEventUpsert) {
		s.UpdateData()
	})
}

// ClearData clears the value of the "data" field.
func (u *TrajectoryEventUpsertBulk) ClearData() *TrajectoryEventUpsertBulk {
	return u.Update(func(s *TrajectoryEventUpsert) {
		s.ClearData()
	})
}

// Exec executes the query.
func (u *TrajectoryEventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TrajectoryEventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TrajectoryEventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TrajectoryEventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
