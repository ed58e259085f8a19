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
	"github.com/praxishq/praxis/ent/trajectory"
)

// TrajectoryCreate is the builder for creating a Trajectory entity.
type TrajectoryCreate struct {
	config
	mutation *TrajectoryMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (_c *TrajectoryCreate) SetAccountID(v string) *TrajectoryCreate {
	_c.mutation.SetAccountID(v)
	return _c
}

// SetConversationID sets the "conversation_id" field.
func (_c *TrajectoryCreate) SetConversationID(v string) *TrajectoryCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_c *TrajectoryCreate) SetNillableConversationID(v *string) *TrajectoryCreate {
	if v != nil {
		_c.SetConversationID(*v)
	}
	return _c
}

// SetInputText sets the "input_text" field.
func (_c *TrajectoryCreate) SetInputText(v string) *TrajectoryCreate {
	_c.mutation.SetInputText(v)
	return _c
}

// SetInputHash sets the "input_hash" field.
func (_c *TrajectoryCreate) SetInputHash(v int64) *TrajectoryCreate {
	_c.mutation.SetInputHash(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *TrajectoryCreate) SetSummary(v string) *TrajectoryCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *TrajectoryCreate) SetNillableSummary(v *string) *TrajectoryCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TrajectoryCreate) SetStartedAt(v int64) *TrajectoryCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TrajectoryCreate) SetCompletedAt(v int64) *TrajectoryCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TrajectoryCreate) SetNillableCompletedAt(v *int64) *TrajectoryCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrajectoryCreate) SetID(v string) *TrajectoryCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TrajectoryMutation object of the builder.
func (_c *TrajectoryCreate) Mutation() *TrajectoryMutation {
	return _c.mutation
}

// Save creates the Trajectory in the database.
func (_c *TrajectoryCreate) Save(ctx context.Context) (*Trajectory, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrajectoryCreate) SaveX(ctx context.Context) *Trajectory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrajectoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrajectoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrajectoryCreate) check() error {
	if _, ok := _c.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "Trajectory.account_id"`)}
	}
	if _, ok := _c.mutation.InputText(); !ok {
		return &ValidationError{Name: "input_text", err: errors.New(`ent: missing required field "Trajectory.input_text"`)}
	}
	if _, ok := _c.mutation.InputHash(); !ok {
		return &ValidationError{Name: "input_hash", err: errors.New(`ent: missing required field "Trajectory.input_hash"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "Trajectory.started_at"`)}
	}
	return nil
}

func (_c *TrajectoryCreate) sqlSave(ctx context.Context) (*Trajectory, error) {
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
			return nil, fmt.Errorf("unexpected Trajectory.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TrajectoryCreate) createSpec() (*Trajectory, *sqlgraph.CreateSpec) {
	var (
		_node = &Trajectory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trajectory.Table, sqlgraph.NewFieldSpec(trajectory.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AccountID(); ok {
		_spec.SetField(trajectory.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := _c.mutation.ConversationID(); ok {
		_spec.SetField(trajectory.FieldConversationID, field.TypeString, value)
		_node.ConversationID = &value
	}
	if value, ok := _c.mutation.InputText(); ok {
		_spec.SetField(trajectory.FieldInputText, field.TypeString, value)
		_node.InputText = value
	}
	if value, ok := _c.mutation.InputHash(); ok {
		_spec.SetField(trajectory.FieldInputHash, field.TypeInt64, value)
		_node.InputHash = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(trajectory.FieldSummary, field.TypeString, value)
		_node.Summary = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(trajectory.FieldStartedAt, field.TypeInt64, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(trajectory.FieldCompletedAt, field.TypeInt64, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Trajectory.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TrajectoryUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *TrajectoryCreate) OnConflict(opts ...sql.ConflictOption) *TrajectoryUpsertOne {
	_c.conflict = opts
	return &TrajectoryUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Trajectory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TrajectoryCreate) OnConflictColumns(columns ...string) *TrajectoryUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TrajectoryUpsertOne{
		create: _c,
	}
}

type (
	// TrajectoryUpsertOne is the builder for "upsert"-ing
	//  one Trajectory node.
	TrajectoryUpsertOne struct {
		create *TrajectoryCreate
	}

	// TrajectoryUpsert is the "OnConflict" setter.
	TrajectoryUpsert struct {
		*sql.UpdateSet
	}
)

// SetSummary sets the "summary" field.
func (u *TrajectoryUpsert) SetSummary(v string) *TrajectoryUpsert {
	u.Set(trajectory.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *TrajectoryUpsert) UpdateSummary() *TrajectoryUpsert {
	u.SetExcluded(trajectory.FieldSummary)
	return u
}

// ClearSummary clears the value of the "summary" field.
func (u *TrajectoryUpsert) ClearSummary() *TrajectoryUpsert {
	u.SetNull(trajectory.FieldSummary)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *TrajectoryUpsert) SetCompletedAt(v int64) *TrajectoryUpsert {
	u.Set(trajectory.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TrajectoryUpsert) UpdateCompletedAt() *TrajectoryUpsert {
	u.SetExcluded(trajectory.FieldCompletedAt)
	return u
}

// AddCompletedAt adds v to the "completed_at" field.
func (u *TrajectoryUpsert) AddCompletedAt(v int64) *TrajectoryUpsert {
	u.Add(trajectory.FieldCompletedAt, v)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TrajectoryUpsert) ClearCompletedAt() *TrajectoryUpsert {
	u.SetNull(trajectory.FieldCompletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Trajectory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(trajectory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TrajectoryUpsertOne) UpdateNewValues() *TrajectoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(trajectory.FieldID)
		}
		if _, exists := u.create.mutation.AccountID(); exists {
			s.SetIgnore(trajectory.FieldAccountID)
		}
		if _, exists := u.create.mutation.ConversationID(); exists {
			s.SetIgnore(trajectory.FieldConversationID)
		}
		if _, exists := u.create.mutation.InputText(); exists {
			s.SetIgnore(trajectory.FieldInputText)
		}
		if _, exists := u.create.mutation.InputHash(); exists {
			s.SetIgnore(trajectory.FieldInputHash)
		}
		if _, exists := u.create.mutation.StartedAt(); exists {
			s.SetIgnore(trajectory.FieldStartedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Trajectory.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TrajectoryUpsertOne) Ignore() *TrajectoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TrajectoryUpsertOne) DoNothing() *TrajectoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TrajectoryCreate.OnConflict
// documentation for more info.
func (u *TrajectoryUpsertOne) Update(set func(*TrajectoryUpsert)) *TrajectoryUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TrajectoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetSummary sets the "summary" field.
func (u *TrajectoryUpsertOne) SetSummary(v string) *TrajectoryUpsertOne {
	return u.Update(func(s *TrajectoryUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *TrajectoryUpsertOne) UpdateSummary() *TrajectoryUpsertOne {
	return u.Update(func(s *TrajectoryUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *TrajectoryUpsertOne) ClearSummary() *TrajectoryUpsertOne {
	return u.Update(func(s *TrajectoryUpsert) {
		s.ClearSummary()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TrajectoryUpsertOne) SetCompletedAt(v int64) *TrajectoryUpsertOne {
	return u.Update(func(s *TrajectoryUpsert) {
		s.SetCompletedAt(v)
	})
}

// AddCompletedAt adds v to the "completed_at" field.
func (u *TrajectoryUpsertOne) AddCompletedAt(v int64) *TrajectoryUpsertOne {
	return u.Update(func(s *TrajectoryUpsert) {
		s.AddCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TrajectoryUpsertOne) UpdateCompletedAt() *TrajectoryUpsertOne {
	return u.Update(func(s *TrajectoryUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TrajectoryUpsertOne) ClearCompletedAt() *TrajectoryUpsertOne {
	return u.Update(func(s *TrajectoryUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *TrajectoryUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TrajectoryCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TrajectoryUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TrajectoryUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TrajectoryUpsertOne.ID is not supported by MySQL driver. Use TrajectoryUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TrajectoryUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TrajectoryCreateBulk is the builder for creating many Trajectory entities in bulk.
type TrajectoryCreateBulk struct {
	config
	err      error
	builders []*TrajectoryCreate
	conflict []sql.ConflictOption
}

// Save creates the Trajectory entities in the database.
func (_c *TrajectoryCreateBulk) Save(ctx context.Context) ([]*Trajectory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Trajectory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrajectoryMutation)
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
func (_c *TrajectoryCreateBulk) SaveX(ctx context.Context) []*Trajectory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrajectoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrajectoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Trajectory.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TrajectoryUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (_c *TrajectoryCreateBulk) OnConflict(opts ...sql.ConflictOption) *TrajectoryUpsertBulk {
	_c.conflict = opts
	return &TrajectoryUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Trajectory.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TrajectoryCreateBulk) OnConflictColumns(columns ...string) *TrajectoryUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TrajectoryUpsertBulk{
		create: _c,
	}
}

// TrajectoryUpsertBulk is the builder for "upsert"-ing
// a bulk of Trajectory nodes.
type TrajectoryUpsertBulk struct {
	create *TrajectoryCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Trajectory.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(trajectory.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TrajectoryUpsertBulk) UpdateNewValues() *TrajectoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(trajectory.FieldID)
			}
			if _, exists := b.mutation.AccountID(); exists {
				s.SetIgnore(trajectory.FieldAccountID)
			}
			if _, exists := b.mutation.ConversationID(); exists {
				s.SetIgnore(trajectory.FieldConversationID)
			}
			if _, exists := b.mutation.InputText(); exists {
				s.SetIgnore(trajectory.FieldInputText)
			}
			if _, exists := b.mutation.InputHash(); exists {
				s.SetIgnore(trajectory.FieldInputHash)
			}
			if _, exists := b.mutation.StartedAt(); exists {
				s.SetIgnore(trajectory.FieldStartedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Trajectory.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TrajectoryUpsertBulk) Ignore() *TrajectoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TrajectoryUpsertBulk) DoNothing() *TrajectoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TrajectoryCreateBulk.OnConflict
// documentation for more info.
func (u *TrajectoryUpsertBulk) Update(set func(*TrajectoryUpsert)) *TrajectoryUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TrajectoryUpsert{UpdateSet: update})
	}))
	return u
}

// SetSummary sets the "summary" field.
func (u *TrajectoryUpsertBulk) SetSummary(v string) *TrajectoryUpsertBulk {
	return u.Update(func(s *TrajectoryUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *TrajectoryUpsertBulk) UpdateSummary() *TrajectoryUpsertBulk {
	return u.Update(func(s *TrajectoryUpsert) {
		s.UpdateSummary()
	})
}

// ClearSummary clears the value of the "summary" field.
func (u *TrajectoryUpsertBulk) ClearSummary() *TrajectoryUpsertBulk {
	return u.Update(func(s *TrajectoryUpsert) {
		s.ClearSummary()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TrajectoryUpsertBulk) SetCompletedAt(v int64) *TrajectoryUpsertBulk {
	return u.Update(func(s *TrajectoryUpsert) {
		s.SetCompletedAt(v)
	})
}

// AddCompletedAt adds v to the "completed_at" field.
func (u *TrajectoryUpsertBulk) AddCompletedAt(v int64) *TrajectoryUpsertBulk {
	return u.Update(func(s *TrajectoryUpsert) {
		s.AddCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TrajectoryUpsertBulk) UpdateCompletedAt() *TrajectoryUpsertBulk {
	return u.Update(func(s *TrajectoryUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TrajectoryUpsertBulk) ClearCompletedAt() *TrajectoryUpsertBulk {
	return u.Update(func(s *TrajectoryUpsert) {
		s.ClearCompletedAt()
	})
}

// Exec executes the query.
func (u *TrajectoryUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TrajectoryCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TrajectoryCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TrajectoryUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
