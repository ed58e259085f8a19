// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/praxishq/praxis/ent/contribution"
	"github.com/praxishq/praxis/ent/conversation"
	"github.com/praxishq/praxis/ent/cooccurrence"
	"github.com/praxishq/praxis/ent/entity"
	"github.com/praxishq/praxis/ent/graphedge"
	"github.com/praxishq/praxis/ent/message"
	"github.com/praxishq/praxis/ent/predicate"
	"github.com/praxishq/praxis/ent/trajectory"
	"github.com/praxishq/praxis/ent/trajectoryevent"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContribution    = "Contribution"
	TypeConversation    = "Conversation"
	TypeCooccurrence    = "Cooccurrence"
	TypeEntity          = "Entity"
	TypeGraphEdge       = "GraphEdge"
	TypeMessage         = "Message"
	TypeTrajectory      = "Trajectory"
	TypeTrajectoryEvent = "TrajectoryEvent"
)

// ContributionMutation represents an operation that mutates the Contribution nodes in the graph.
type ContributionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	entity_id           *string
	account_id          *string
	first_trajectory_id *string
	touch_count         *int
	addtouch_count      *int
	trajectory_count    *int
	addtrajectory_count *int
	first_seen          *int64
	addfirst_seen       *int64
	last_seen           *int64
	addlast_seen        *int64
	clearedFields       map[string]struct{}
	done                bool
	oldValue            func(context.Context) (*Contribution, error)
	predicates          []predicate.Contribution
}

var _ ent.Mutation = (*ContributionMutation)(nil)

// contributionOption allows management of the mutation configuration using functional options.
type contributionOption func(*ContributionMutation)

// newContributionMutation creates new mutation for the Contribution entity.
func newContributionMutation(c config, op Op, opts ...contributionOption) *ContributionMutation {
	m := &ContributionMutation{
		config:        c,
		op:            op,
		typ:           TypeContribution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContributionID sets the ID field of the mutation.
func withContributionID(id string) contributionOption {
	return func(m *ContributionMutation) {
		var (
			err   error
			once  sync.Once
			value *Contribution
		)
		m.oldValue = func(ctx context.Context) (*Contribution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Contribution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContribution sets the old Contribution of the mutation.
func withContribution(node *Contribution) contributionOption {
	return func(m *ContributionMutation) {
		m.oldValue = func(context.Context) (*Contribution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContributionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContributionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Contribution entities.
func (m *ContributionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContributionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContributionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Contribution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityID sets the "entity_id" field.
func (m *ContributionMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *ContributionMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the Contribution entity.
// If the Contribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContributionMutation) OldEntityID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *ContributionMutation) ResetEntityID() {
	m.entity_id = nil
}

// SetAccountID sets the "account_id" field.
func (m *ContributionMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *ContributionMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Contribution entity.
// If the Contribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContributionMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *ContributionMutation) ResetAccountID() {
	m.account_id = nil
}

// SetFirstTrajectoryID sets the "first_trajectory_id" field.
func (m *ContributionMutation) SetFirstTrajectoryID(s string) {
	m.first_trajectory_id = &s
}

// FirstTrajectoryID returns the value of the "first_trajectory_id" field in the mutation.
func (m *ContributionMutation) FirstTrajectoryID() (r string, exists bool) {
	v := m.first_trajectory_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstTrajectoryID returns the old "first_trajectory_id" field's value of the Contribution entity.
// If the Contribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContributionMutation) OldFirstTrajectoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstTrajectoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstTrajectoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstTrajectoryID: %w", err)
	}
	return oldValue.FirstTrajectoryID, nil
}

// ResetFirstTrajectoryID resets all changes to the "first_trajectory_id" field.
func (m *ContributionMutation) ResetFirstTrajectoryID() {
	m.first_trajectory_id = nil
}

// SetTouchCount sets the "touch_count" field.
func (m *ContributionMutation) SetTouchCount(i int) {
	m.touch_count = &i
	m.addtouch_count = nil
}

// TouchCount returns the value of the "touch_count" field in the mutation.
func (m *ContributionMutation) TouchCount() (r int, exists bool) {
	v := m.touch_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTouchCount returns the old "touch_count" field's value of the Contribution entity.
// If the Contribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContributionMutation) OldTouchCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTouchCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTouchCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTouchCount: %w", err)
	}
	return oldValue.TouchCount, nil
}

// AddTouchCount adds i to the "touch_count" field.
func (m *ContributionMutation) AddTouchCount(i int) {
	if m.addtouch_count != nil {
		*m.addtouch_count += i
	} else {
		m.addtouch_count = &i
	}
}

// AddedTouchCount returns the value that was added to the "touch_count" field in this mutation.
func (m *ContributionMutation) AddedTouchCount() (r int, exists bool) {
	v := m.addtouch_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTouchCount resets all changes to the "touch_count" field.
func (m *ContributionMutation) ResetTouchCount() {
	m.touch_count = nil
	m.addtouch_count = nil
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (m *ContributionMutation) SetTrajectoryCount(i int) {
	m.trajectory_count = &i
	m.addtrajectory_count = nil
}

// TrajectoryCount returns the value of the "trajectory_count" field in the mutation.
func (m *ContributionMutation) TrajectoryCount() (r int, exists bool) {
	v := m.trajectory_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTrajectoryCount returns the old "trajectory_count" field's value of the Contribution entity.
// If the Contribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContributionMutation) OldTrajectoryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrajectoryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrajectoryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrajectoryCount: %w", err)
	}
	return oldValue.TrajectoryCount, nil
}

// AddTrajectoryCount adds i to the "trajectory_count" field.
func (m *ContributionMutation) AddTrajectoryCount(i int) {
	if m.addtrajectory_count != nil {
		*m.addtrajectory_count += i
	} else {
		m.addtrajectory_count = &i
	}
}

// AddedTrajectoryCount returns the value that was added to the "trajectory_count" field in this mutation.
func (m *ContributionMutation) AddedTrajectoryCount() (r int, exists bool) {
	v := m.addtrajectory_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrajectoryCount resets all changes to the "trajectory_count" field.
func (m *ContributionMutation) ResetTrajectoryCount() {
	m.trajectory_count = nil
	m.addtrajectory_count = nil
}

// SetFirstSeen sets the "first_seen" field.
func (m *ContributionMutation) SetFirstSeen(i int64) {
	m.first_seen = &i
	m.addfirst_seen = nil
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *ContributionMutation) FirstSeen() (r int64, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the Contribution entity.
// If the Contribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContributionMutation) OldFirstSeen(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// AddFirstSeen adds i to the "first_seen" field.
func (m *ContributionMutation) AddFirstSeen(i int64) {
	if m.addfirst_seen != nil {
		*m.addfirst_seen += i
	} else {
		m.addfirst_seen = &i
	}
}

// AddedFirstSeen returns the value that was added to the "first_seen" field in this mutation.
func (m *ContributionMutation) AddedFirstSeen() (r int64, exists bool) {
	v := m.addfirst_seen
	if v == nil {
		return
	}
	return *v, true
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *ContributionMutation) ResetFirstSeen() {
	m.first_seen = nil
	m.addfirst_seen = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *ContributionMutation) SetLastSeen(i int64) {
	m.last_seen = &i
	m.addlast_seen = nil
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *ContributionMutation) LastSeen() (r int64, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the Contribution entity.
// If the Contribution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContributionMutation) OldLastSeen(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// AddLastSeen adds i to the "last_seen" field.
func (m *ContributionMutation) AddLastSeen(i int64) {
	if m.addlast_seen != nil {
		*m.addlast_seen += i
	} else {
		m.addlast_seen = &i
	}
}

// AddedLastSeen returns the value that was added to the "last_seen" field in this mutation.
func (m *ContributionMutation) AddedLastSeen() (r int64, exists bool) {
	v := m.addlast_seen
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *ContributionMutation) ResetLastSeen() {
	m.last_seen = nil
	m.addlast_seen = nil
}

// Where appends a list predicates to the ContributionMutation builder.
func (m *ContributionMutation) Where(ps ...predicate.Contribution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContributionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContributionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Contribution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContributionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContributionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Contribution).
func (m *ContributionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContributionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.entity_id != nil {
		fields = append(fields, contribution.FieldEntityID)
	}
	if m.account_id != nil {
		fields = append(fields, contribution.FieldAccountID)
	}
	if m.first_trajectory_id != nil {
		fields = append(fields, contribution.FieldFirstTrajectoryID)
	}
	if m.touch_count != nil {
		fields = append(fields, contribution.FieldTouchCount)
	}
	if m.trajectory_count != nil {
		fields = append(fields, contribution.FieldTrajectoryCount)
	}
	if m.first_seen != nil {
		fields = append(fields, contribution.FieldFirstSeen)
	}
	if m.last_seen != nil {
		fields = append(fields, contribution.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContributionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contribution.FieldEntityID:
		return m.EntityID()
	case contribution.FieldAccountID:
		return m.AccountID()
	case contribution.FieldFirstTrajectoryID:
		return m.FirstTrajectoryID()
	case contribution.FieldTouchCount:
		return m.TouchCount()
	case contribution.FieldTrajectoryCount:
		return m.TrajectoryCount()
	case contribution.FieldFirstSeen:
		return m.FirstSeen()
	case contribution.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContributionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contribution.FieldEntityID:
		return m.OldEntityID(ctx)
	case contribution.FieldAccountID:
		return m.OldAccountID(ctx)
	case contribution.FieldFirstTrajectoryID:
		return m.OldFirstTrajectoryID(ctx)
	case contribution.FieldTouchCount:
		return m.OldTouchCount(ctx)
	case contribution.FieldTrajectoryCount:
		return m.OldTrajectoryCount(ctx)
	case contribution.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case contribution.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown Contribution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContributionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contribution.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case contribution.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case contribution.FieldFirstTrajectoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstTrajectoryID(v)
		return nil
	case contribution.FieldTouchCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTouchCount(v)
		return nil
	case contribution.FieldTrajectoryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrajectoryCount(v)
		return nil
	case contribution.FieldFirstSeen:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case contribution.FieldLastSeen:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown Contribution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContributionMutation) AddedFields() []string {
	var fields []string
	if m.addtouch_count != nil {
		fields = append(fields, contribution.FieldTouchCount)
	}
	if m.addtrajectory_count != nil {
		fields = append(fields, contribution.FieldTrajectoryCount)
	}
	if m.addfirst_seen != nil {
		fields = append(fields, contribution.FieldFirstSeen)
	}
	if m.addlast_seen != nil {
		fields = append(fields, contribution.FieldLastSeen)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContributionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contribution.FieldTouchCount:
		return m.AddedTouchCount()
	case contribution.FieldTrajectoryCount:
		return m.AddedTrajectoryCount()
	case contribution.FieldFirstSeen:
		return m.AddedFirstSeen()
	case contribution.FieldLastSeen:
		return m.AddedLastSeen()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContributionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contribution.FieldTouchCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTouchCount(v)
		return nil
	case contribution.FieldTrajectoryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrajectoryCount(v)
		return nil
	case contribution.FieldFirstSeen:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstSeen(v)
		return nil
	case contribution.FieldLastSeen:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown Contribution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContributionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContributionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContributionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Contribution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContributionMutation) ResetField(name string) error {
	switch name {
	case contribution.FieldEntityID:
		m.ResetEntityID()
		return nil
	case contribution.FieldAccountID:
		m.ResetAccountID()
		return nil
	case contribution.FieldFirstTrajectoryID:
		m.ResetFirstTrajectoryID()
		return nil
	case contribution.FieldTouchCount:
		m.ResetTouchCount()
		return nil
	case contribution.FieldTrajectoryCount:
		m.ResetTrajectoryCount()
		return nil
	case contribution.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case contribution.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown Contribution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContributionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContributionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContributionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContributionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContributionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContributionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContributionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Contribution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContributionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Contribution edge %s", name)
}

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op            Op
	typ           string
	id            *string
	account_id    *string
	title         *string
	created_at    *int64
	addcreated_at *int64
	updated_at    *int64
	addupdated_at *int64
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Conversation, error)
	predicates    []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id string) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Conversation entities.
func (m *ConversationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *ConversationMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *ConversationMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *ConversationMutation) ResetAccountID() {
	m.account_id = nil
}

// SetTitle sets the "title" field.
func (m *ConversationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ConversationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTitle(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ConversationMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[conversation.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ConversationMutation) TitleCleared() bool {
	_, ok := m.clearedFields[conversation.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ConversationMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, conversation.FieldTitle)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(i int64) {
	m.created_at = &i
	m.addcreated_at = nil
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r int64, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// AddCreatedAt adds i to the "created_at" field.
func (m *ConversationMutation) AddCreatedAt(i int64) {
	if m.addcreated_at != nil {
		*m.addcreated_at += i
	} else {
		m.addcreated_at = &i
	}
}

// AddedCreatedAt returns the value that was added to the "created_at" field in this mutation.
func (m *ConversationMutation) AddedCreatedAt() (r int64, exists bool) {
	v := m.addcreated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
	m.addcreated_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversationMutation) SetUpdatedAt(i int64) {
	m.updated_at = &i
	m.addupdated_at = nil
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversationMutation) UpdatedAt() (r int64, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUpdatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// AddUpdatedAt adds i to the "updated_at" field.
func (m *ConversationMutation) AddUpdatedAt(i int64) {
	if m.addupdated_at != nil {
		*m.addupdated_at += i
	} else {
		m.addupdated_at = &i
	}
}

// AddedUpdatedAt returns the value that was added to the "updated_at" field in this mutation.
func (m *ConversationMutation) AddedUpdatedAt() (r int64, exists bool) {
	v := m.addupdated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversationMutation) ResetUpdatedAt() {
	m.updated_at = nil
	m.addupdated_at = nil
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.account_id != nil {
		fields = append(fields, conversation.FieldAccountID)
	}
	if m.title != nil {
		fields = append(fields, conversation.FieldTitle)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldAccountID:
		return m.AccountID()
	case conversation.FieldTitle:
		return m.Title()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldAccountID:
		return m.OldAccountID(ctx)
	case conversation.FieldTitle:
		return m.OldTitle(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case conversation.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversation.FieldUpdatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.addupdated_at != nil {
		fields = append(fields, conversation.FieldUpdatedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldCreatedAt:
		return m.AddedCreatedAt()
	case conversation.FieldUpdatedAt:
		return m.AddedUpdatedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAt(v)
		return nil
	case conversation.FieldUpdatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldTitle) {
		fields = append(fields, conversation.FieldTitle)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldTitle:
		m.ClearTitle()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldAccountID:
		m.ResetAccountID()
		return nil
	case conversation.FieldTitle:
		m.ResetTitle()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// CooccurrenceMutation represents an operation that mutates the Cooccurrence nodes in the graph.
type CooccurrenceMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	entity_a_id          *string
	entity_b_id          *string
	count                *int
	addcount             *int
	window_count         *int
	addwindow_count      *int
	trajectory_count     *int
	addtrajectory_count  *int
	contributor_count    *int
	addcontributor_count *int
	last_updated         *int64
	addlast_updated      *int64
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Cooccurrence, error)
	predicates           []predicate.Cooccurrence
}

var _ ent.Mutation = (*CooccurrenceMutation)(nil)

// cooccurrenceOption allows management of the mutation configuration using functional options.
type cooccurrenceOption func(*CooccurrenceMutation)

// newCooccurrenceMutation creates new mutation for the Cooccurrence entity.
func newCooccurrenceMutation(c config, op Op, opts ...cooccurrenceOption) *CooccurrenceMutation {
	m := &CooccurrenceMutation{
		config:        c,
		op:            op,
		typ:           TypeCooccurrence,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCooccurrenceID sets the ID field of the mutation.
func withCooccurrenceID(id string) cooccurrenceOption {
	return func(m *CooccurrenceMutation) {
		var (
			err   error
			once  sync.Once
			value *Cooccurrence
		)
		m.oldValue = func(ctx context.Context) (*Cooccurrence, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Cooccurrence.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCooccurrence sets the old Cooccurrence of the mutation.
func withCooccurrence(node *Cooccurrence) cooccurrenceOption {
	return func(m *CooccurrenceMutation) {
		m.oldValue = func(context.Context) (*Cooccurrence, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CooccurrenceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CooccurrenceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Cooccurrence entities.
func (m *CooccurrenceMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CooccurrenceMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CooccurrenceMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Cooccurrence.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEntityAID sets the "entity_a_id" field.
func (m *CooccurrenceMutation) SetEntityAID(s string) {
	m.entity_a_id = &s
}

// EntityAID returns the value of the "entity_a_id" field in the mutation.
func (m *CooccurrenceMutation) EntityAID() (r string, exists bool) {
	v := m.entity_a_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityAID returns the old "entity_a_id" field's value of the Cooccurrence entity.
// If the Cooccurrence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CooccurrenceMutation) OldEntityAID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityAID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityAID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityAID: %w", err)
	}
	return oldValue.EntityAID, nil
}

// ResetEntityAID resets all changes to the "entity_a_id" field.
func (m *CooccurrenceMutation) ResetEntityAID() {
	m.entity_a_id = nil
}

// SetEntityBID sets the "entity_b_id" field.
func (m *CooccurrenceMutation) SetEntityBID(s string) {
	m.entity_b_id = &s
}

// EntityBID returns the value of the "entity_b_id" field in the mutation.
func (m *CooccurrenceMutation) EntityBID() (r string, exists bool) {
	v := m.entity_b_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityBID returns the old "entity_b_id" field's value of the Cooccurrence entity.
// If the Cooccurrence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CooccurrenceMutation) OldEntityBID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityBID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityBID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityBID: %w", err)
	}
	return oldValue.EntityBID, nil
}

// ResetEntityBID resets all changes to the "entity_b_id" field.
func (m *CooccurrenceMutation) ResetEntityBID() {
	m.entity_b_id = nil
}

// SetCount sets the "count" field.
func (m *CooccurrenceMutation) SetCount(i int) {
	m.count = &i
	m.addcount = nil
}

// Count returns the value of the "count" field in the mutation.
func (m *CooccurrenceMutation) Count() (r int, exists bool) {
	v := m.count
	if v == nil {
		return
	}
	return *v, true
}

// OldCount returns the old "count" field's value of the Cooccurrence entity.
// If the Cooccurrence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CooccurrenceMutation) OldCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCount: %w", err)
	}
	return oldValue.Count, nil
}

// AddCount adds i to the "count" field.
func (m *CooccurrenceMutation) AddCount(i int) {
	if m.addcount != nil {
		*m.addcount += i
	} else {
		m.addcount = &i
	}
}

// AddedCount returns the value that was added to the "count" field in this mutation.
func (m *CooccurrenceMutation) AddedCount() (r int, exists bool) {
	v := m.addcount
	if v == nil {
		return
	}
	return *v, true
}

// ResetCount resets all changes to the "count" field.
func (m *CooccurrenceMutation) ResetCount() {
	m.count = nil
	m.addcount = nil
}

// SetWindowCount sets the "window_count" field.
func (m *CooccurrenceMutation) SetWindowCount(i int) {
	m.window_count = &i
	m.addwindow_count = nil
}

// WindowCount returns the value of the "window_count" field in the mutation.
func (m *CooccurrenceMutation) WindowCount() (r int, exists bool) {
	v := m.window_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowCount returns the old "window_count" field's value of the Cooccurrence entity.
// If the Cooccurrence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CooccurrenceMutation) OldWindowCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowCount: %w", err)
	}
	return oldValue.WindowCount, nil
}

// AddWindowCount adds i to the "window_count" field.
func (m *CooccurrenceMutation) AddWindowCount(i int) {
	if m.addwindow_count != nil {
		*m.addwindow_count += i
	} else {
		m.addwindow_count = &i
	}
}

// AddedWindowCount returns the value that was added to the "window_count" field in this mutation.
func (m *CooccurrenceMutation) AddedWindowCount() (r int, exists bool) {
	v := m.addwindow_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWindowCount resets all changes to the "window_count" field.
func (m *CooccurrenceMutation) ResetWindowCount() {
	m.window_count = nil
	m.addwindow_count = nil
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (m *CooccurrenceMutation) SetTrajectoryCount(i int) {
	m.trajectory_count = &i
	m.addtrajectory_count = nil
}

// TrajectoryCount returns the value of the "trajectory_count" field in the mutation.
func (m *CooccurrenceMutation) TrajectoryCount() (r int, exists bool) {
	v := m.trajectory_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTrajectoryCount returns the old "trajectory_count" field's value of the Cooccurrence entity.
// If the Cooccurrence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CooccurrenceMutation) OldTrajectoryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrajectoryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrajectoryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrajectoryCount: %w", err)
	}
	return oldValue.TrajectoryCount, nil
}

// AddTrajectoryCount adds i to the "trajectory_count" field.
func (m *CooccurrenceMutation) AddTrajectoryCount(i int) {
	if m.addtrajectory_count != nil {
		*m.addtrajectory_count += i
	} else {
		m.addtrajectory_count = &i
	}
}

// AddedTrajectoryCount returns the value that was added to the "trajectory_count" field in this mutation.
func (m *CooccurrenceMutation) AddedTrajectoryCount() (r int, exists bool) {
	v := m.addtrajectory_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrajectoryCount resets all changes to the "trajectory_count" field.
func (m *CooccurrenceMutation) ResetTrajectoryCount() {
	m.trajectory_count = nil
	m.addtrajectory_count = nil
}

// SetContributorCount sets the "contributor_count" field.
func (m *CooccurrenceMutation) SetContributorCount(i int) {
	m.contributor_count = &i
	m.addcontributor_count = nil
}

// ContributorCount returns the value of the "contributor_count" field in the mutation.
func (m *CooccurrenceMutation) ContributorCount() (r int, exists bool) {
	v := m.contributor_count
	if v == nil {
		return
	}
	return *v, true
}

// OldContributorCount returns the old "contributor_count" field's value of the Cooccurrence entity.
// If the Cooccurrence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CooccurrenceMutation) OldContributorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributorCount: %w", err)
	}
	return oldValue.ContributorCount, nil
}

// AddContributorCount adds i to the "contributor_count" field.
func (m *CooccurrenceMutation) AddContributorCount(i int) {
	if m.addcontributor_count != nil {
		*m.addcontributor_count += i
	} else {
		m.addcontributor_count = &i
	}
}

// AddedContributorCount returns the value that was added to the "contributor_count" field in this mutation.
func (m *CooccurrenceMutation) AddedContributorCount() (r int, exists bool) {
	v := m.addcontributor_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetContributorCount resets all changes to the "contributor_count" field.
func (m *CooccurrenceMutation) ResetContributorCount() {
	m.contributor_count = nil
	m.addcontributor_count = nil
}

// SetLastUpdated sets the "last_updated" field.
func (m *CooccurrenceMutation) SetLastUpdated(i int64) {
	m.last_updated = &i
	m.addlast_updated = nil
}

// LastUpdated returns the value of the "last_updated" field in the mutation.
func (m *CooccurrenceMutation) LastUpdated() (r int64, exists bool) {
	v := m.last_updated
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdated returns the old "last_updated" field's value of the Cooccurrence entity.
// If the Cooccurrence object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CooccurrenceMutation) OldLastUpdated(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdated: %w", err)
	}
	return oldValue.LastUpdated, nil
}

// AddLastUpdated adds i to the "last_updated" field.
func (m *CooccurrenceMutation) AddLastUpdated(i int64) {
	if m.addlast_updated != nil {
		*m.addlast_updated += i
	} else {
		m.addlast_updated = &i
	}
}

// AddedLastUpdated returns the value that was added to the "last_updated" field in this mutation.
func (m *CooccurrenceMutation) AddedLastUpdated() (r int64, exists bool) {
	v := m.addlast_updated
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastUpdated resets all changes to the "last_updated" field.
func (m *CooccurrenceMutation) ResetLastUpdated() {
	m.last_updated = nil
	m.addlast_updated = nil
}

// Where appends a list predicates to the CooccurrenceMutation builder.
func (m *CooccurrenceMutation) Where(ps ...predicate.Cooccurrence) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CooccurrenceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CooccurrenceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Cooccurrence, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CooccurrenceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CooccurrenceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Cooccurrence).
func (m *CooccurrenceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CooccurrenceMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.entity_a_id != nil {
		fields = append(fields, cooccurrence.FieldEntityAID)
	}
	if m.entity_b_id != nil {
		fields = append(fields, cooccurrence.FieldEntityBID)
	}
	if m.count != nil {
		fields = append(fields, cooccurrence.FieldCount)
	}
	if m.window_count != nil {
		fields = append(fields, cooccurrence.FieldWindowCount)
	}
	if m.trajectory_count != nil {
		fields = append(fields, cooccurrence.FieldTrajectoryCount)
	}
	if m.contributor_count != nil {
		fields = append(fields, cooccurrence.FieldContributorCount)
	}
	if m.last_updated != nil {
		fields = append(fields, cooccurrence.FieldLastUpdated)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CooccurrenceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cooccurrence.FieldEntityAID:
		return m.EntityAID()
	case cooccurrence.FieldEntityBID:
		return m.EntityBID()
	case cooccurrence.FieldCount:
		return m.Count()
	case cooccurrence.FieldWindowCount:
		return m.WindowCount()
	case cooccurrence.FieldTrajectoryCount:
		return m.TrajectoryCount()
	case cooccurrence.FieldContributorCount:
		return m.ContributorCount()
	case cooccurrence.FieldLastUpdated:
		return m.LastUpdated()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CooccurrenceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cooccurrence.FieldEntityAID:
		return m.OldEntityAID(ctx)
	case cooccurrence.FieldEntityBID:
		return m.OldEntityBID(ctx)
	case cooccurrence.FieldCount:
		return m.OldCount(ctx)
	case cooccurrence.FieldWindowCount:
		return m.OldWindowCount(ctx)
	case cooccurrence.FieldTrajectoryCount:
		return m.OldTrajectoryCount(ctx)
	case cooccurrence.FieldContributorCount:
		return m.OldContributorCount(ctx)
	case cooccurrence.FieldLastUpdated:
		return m.OldLastUpdated(ctx)
	}
	return nil, fmt.Errorf("unknown Cooccurrence field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CooccurrenceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cooccurrence.FieldEntityAID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityAID(v)
		return nil
	case cooccurrence.FieldEntityBID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityBID(v)
		return nil
	case cooccurrence.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCount(v)
		return nil
	case cooccurrence.FieldWindowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowCount(v)
		return nil
	case cooccurrence.FieldTrajectoryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrajectoryCount(v)
		return nil
	case cooccurrence.FieldContributorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributorCount(v)
		return nil
	case cooccurrence.FieldLastUpdated:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdated(v)
		return nil
	}
	return fmt.Errorf("unknown Cooccurrence field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CooccurrenceMutation) AddedFields() []string {
	var fields []string
	if m.addcount != nil {
		fields = append(fields, cooccurrence.FieldCount)
	}
	if m.addwindow_count != nil {
		fields = append(fields, cooccurrence.FieldWindowCount)
	}
	if m.addtrajectory_count != nil {
		fields = append(fields, cooccurrence.FieldTrajectoryCount)
	}
	if m.addcontributor_count != nil {
		fields = append(fields, cooccurrence.FieldContributorCount)
	}
	if m.addlast_updated != nil {
		fields = append(fields, cooccurrence.FieldLastUpdated)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CooccurrenceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case cooccurrence.FieldCount:
		return m.AddedCount()
	case cooccurrence.FieldWindowCount:
		return m.AddedWindowCount()
	case cooccurrence.FieldTrajectoryCount:
		return m.AddedTrajectoryCount()
	case cooccurrence.FieldContributorCount:
		return m.AddedContributorCount()
	case cooccurrence.FieldLastUpdated:
		return m.AddedLastUpdated()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CooccurrenceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case cooccurrence.FieldCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCount(v)
		return nil
	case cooccurrence.FieldWindowCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWindowCount(v)
		return nil
	case cooccurrence.FieldTrajectoryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrajectoryCount(v)
		return nil
	case cooccurrence.FieldContributorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContributorCount(v)
		return nil
	case cooccurrence.FieldLastUpdated:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastUpdated(v)
		return nil
	}
	return fmt.Errorf("unknown Cooccurrence numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CooccurrenceMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CooccurrenceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CooccurrenceMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Cooccurrence nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CooccurrenceMutation) ResetField(name string) error {
	switch name {
	case cooccurrence.FieldEntityAID:
		m.ResetEntityAID()
		return nil
	case cooccurrence.FieldEntityBID:
		m.ResetEntityBID()
		return nil
	case cooccurrence.FieldCount:
		m.ResetCount()
		return nil
	case cooccurrence.FieldWindowCount:
		m.ResetWindowCount()
		return nil
	case cooccurrence.FieldTrajectoryCount:
		m.ResetTrajectoryCount()
		return nil
	case cooccurrence.FieldContributorCount:
		m.ResetContributorCount()
		return nil
	case cooccurrence.FieldLastUpdated:
		m.ResetLastUpdated()
		return nil
	}
	return fmt.Errorf("unknown Cooccurrence field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CooccurrenceMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CooccurrenceMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CooccurrenceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CooccurrenceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CooccurrenceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CooccurrenceMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CooccurrenceMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Cooccurrence unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CooccurrenceMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Cooccurrence edge %s", name)
}

// EntityMutation represents an operation that mutates the Entity nodes in the graph.
type EntityMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	name                 *string
	normalized_name      *string
	entity_type          *string
	description          *string
	touch_count          *int
	addtouch_count       *int
	trajectory_count     *int
	addtrajectory_count  *int
	contributor_count    *int
	addcontributor_count *int
	first_seen           *int64
	addfirst_seen        *int64
	last_seen            *int64
	addlast_seen         *int64
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Entity, error)
	predicates           []predicate.Entity
}

var _ ent.Mutation = (*EntityMutation)(nil)

// entityOption allows management of the mutation configuration using functional options.
type entityOption func(*EntityMutation)

// newEntityMutation creates new mutation for the Entity entity.
func newEntityMutation(c config, op Op, opts ...entityOption) *EntityMutation {
	m := &EntityMutation{
		config:        c,
		op:            op,
		typ:           TypeEntity,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEntityID sets the ID field of the mutation.
func withEntityID(id string) entityOption {
	return func(m *EntityMutation) {
		var (
			err   error
			once  sync.Once
			value *Entity
		)
		m.oldValue = func(ctx context.Context) (*Entity, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Entity.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEntity sets the old Entity of the mutation.
func withEntity(node *Entity) entityOption {
	return func(m *EntityMutation) {
		m.oldValue = func(context.Context) (*Entity, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EntityMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EntityMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Entity entities.
func (m *EntityMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EntityMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EntityMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Entity.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *EntityMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *EntityMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *EntityMutation) ResetName() {
	m.name = nil
}

// SetNormalizedName sets the "normalized_name" field.
func (m *EntityMutation) SetNormalizedName(s string) {
	m.normalized_name = &s
}

// NormalizedName returns the value of the "normalized_name" field in the mutation.
func (m *EntityMutation) NormalizedName() (r string, exists bool) {
	v := m.normalized_name
	if v == nil {
		return
	}
	return *v, true
}

// OldNormalizedName returns the old "normalized_name" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldNormalizedName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNormalizedName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNormalizedName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNormalizedName: %w", err)
	}
	return oldValue.NormalizedName, nil
}

// ResetNormalizedName resets all changes to the "normalized_name" field.
func (m *EntityMutation) ResetNormalizedName() {
	m.normalized_name = nil
}

// SetEntityType sets the "entity_type" field.
func (m *EntityMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *EntityMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldEntityType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ClearEntityType clears the value of the "entity_type" field.
func (m *EntityMutation) ClearEntityType() {
	m.entity_type = nil
	m.clearedFields[entity.FieldEntityType] = struct{}{}
}

// EntityTypeCleared returns if the "entity_type" field was cleared in this mutation.
func (m *EntityMutation) EntityTypeCleared() bool {
	_, ok := m.clearedFields[entity.FieldEntityType]
	return ok
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *EntityMutation) ResetEntityType() {
	m.entity_type = nil
	delete(m.clearedFields, entity.FieldEntityType)
}

// SetDescription sets the "description" field.
func (m *EntityMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *EntityMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *EntityMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[entity.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *EntityMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[entity.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *EntityMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, entity.FieldDescription)
}

// SetTouchCount sets the "touch_count" field.
func (m *EntityMutation) SetTouchCount(i int) {
	m.touch_count = &i
	m.addtouch_count = nil
}

// TouchCount returns the value of the "touch_count" field in the mutation.
func (m *EntityMutation) TouchCount() (r int, exists bool) {
	v := m.touch_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTouchCount returns the old "touch_count" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldTouchCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTouchCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTouchCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTouchCount: %w", err)
	}
	return oldValue.TouchCount, nil
}

// AddTouchCount adds i to the "touch_count" field.
func (m *EntityMutation) AddTouchCount(i int) {
	if m.addtouch_count != nil {
		*m.addtouch_count += i
	} else {
		m.addtouch_count = &i
	}
}

// AddedTouchCount returns the value that was added to the "touch_count" field in this mutation.
func (m *EntityMutation) AddedTouchCount() (r int, exists bool) {
	v := m.addtouch_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTouchCount resets all changes to the "touch_count" field.
func (m *EntityMutation) ResetTouchCount() {
	m.touch_count = nil
	m.addtouch_count = nil
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (m *EntityMutation) SetTrajectoryCount(i int) {
	m.trajectory_count = &i
	m.addtrajectory_count = nil
}

// TrajectoryCount returns the value of the "trajectory_count" field in the mutation.
func (m *EntityMutation) TrajectoryCount() (r int, exists bool) {
	v := m.trajectory_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTrajectoryCount returns the old "trajectory_count" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldTrajectoryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrajectoryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrajectoryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrajectoryCount: %w", err)
	}
	return oldValue.TrajectoryCount, nil
}

// AddTrajectoryCount adds i to the "trajectory_count" field.
func (m *EntityMutation) AddTrajectoryCount(i int) {
	if m.addtrajectory_count != nil {
		*m.addtrajectory_count += i
	} else {
		m.addtrajectory_count = &i
	}
}

// AddedTrajectoryCount returns the value that was added to the "trajectory_count" field in this mutation.
func (m *EntityMutation) AddedTrajectoryCount() (r int, exists bool) {
	v := m.addtrajectory_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrajectoryCount resets all changes to the "trajectory_count" field.
func (m *EntityMutation) ResetTrajectoryCount() {
	m.trajectory_count = nil
	m.addtrajectory_count = nil
}

// SetContributorCount sets the "contributor_count" field.
func (m *EntityMutation) SetContributorCount(i int) {
	m.contributor_count = &i
	m.addcontributor_count = nil
}

// ContributorCount returns the value of the "contributor_count" field in the mutation.
func (m *EntityMutation) ContributorCount() (r int, exists bool) {
	v := m.contributor_count
	if v == nil {
		return
	}
	return *v, true
}

// OldContributorCount returns the old "contributor_count" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldContributorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributorCount: %w", err)
	}
	return oldValue.ContributorCount, nil
}

// AddContributorCount adds i to the "contributor_count" field.
func (m *EntityMutation) AddContributorCount(i int) {
	if m.addcontributor_count != nil {
		*m.addcontributor_count += i
	} else {
		m.addcontributor_count = &i
	}
}

// AddedContributorCount returns the value that was added to the "contributor_count" field in this mutation.
func (m *EntityMutation) AddedContributorCount() (r int, exists bool) {
	v := m.addcontributor_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetContributorCount resets all changes to the "contributor_count" field.
func (m *EntityMutation) ResetContributorCount() {
	m.contributor_count = nil
	m.addcontributor_count = nil
}

// SetFirstSeen sets the "first_seen" field.
func (m *EntityMutation) SetFirstSeen(i int64) {
	m.first_seen = &i
	m.addfirst_seen = nil
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *EntityMutation) FirstSeen() (r int64, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldFirstSeen(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// AddFirstSeen adds i to the "first_seen" field.
func (m *EntityMutation) AddFirstSeen(i int64) {
	if m.addfirst_seen != nil {
		*m.addfirst_seen += i
	} else {
		m.addfirst_seen = &i
	}
}

// AddedFirstSeen returns the value that was added to the "first_seen" field in this mutation.
func (m *EntityMutation) AddedFirstSeen() (r int64, exists bool) {
	v := m.addfirst_seen
	if v == nil {
		return
	}
	return *v, true
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *EntityMutation) ResetFirstSeen() {
	m.first_seen = nil
	m.addfirst_seen = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *EntityMutation) SetLastSeen(i int64) {
	m.last_seen = &i
	m.addlast_seen = nil
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *EntityMutation) LastSeen() (r int64, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the Entity entity.
// If the Entity object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EntityMutation) OldLastSeen(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// AddLastSeen adds i to the "last_seen" field.
func (m *EntityMutation) AddLastSeen(i int64) {
	if m.addlast_seen != nil {
		*m.addlast_seen += i
	} else {
		m.addlast_seen = &i
	}
}

// AddedLastSeen returns the value that was added to the "last_seen" field in this mutation.
func (m *EntityMutation) AddedLastSeen() (r int64, exists bool) {
	v := m.addlast_seen
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *EntityMutation) ResetLastSeen() {
	m.last_seen = nil
	m.addlast_seen = nil
}

// Where appends a list predicates to the EntityMutation builder.
func (m *EntityMutation) Where(ps ...predicate.Entity) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EntityMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EntityMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Entity, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EntityMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EntityMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Entity).
func (m *EntityMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EntityMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, entity.FieldName)
	}
	if m.normalized_name != nil {
		fields = append(fields, entity.FieldNormalizedName)
	}
	if m.entity_type != nil {
		fields = append(fields, entity.FieldEntityType)
	}
	if m.description != nil {
		fields = append(fields, entity.FieldDescription)
	}
	if m.touch_count != nil {
		fields = append(fields, entity.FieldTouchCount)
	}
	if m.trajectory_count != nil {
		fields = append(fields, entity.FieldTrajectoryCount)
	}
	if m.contributor_count != nil {
		fields = append(fields, entity.FieldContributorCount)
	}
	if m.first_seen != nil {
		fields = append(fields, entity.FieldFirstSeen)
	}
	if m.last_seen != nil {
		fields = append(fields, entity.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EntityMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldName:
		return m.Name()
	case entity.FieldNormalizedName:
		return m.NormalizedName()
	case entity.FieldEntityType:
		return m.EntityType()
	case entity.FieldDescription:
		return m.Description()
	case entity.FieldTouchCount:
		return m.TouchCount()
	case entity.FieldTrajectoryCount:
		return m.TrajectoryCount()
	case entity.FieldContributorCount:
		return m.ContributorCount()
	case entity.FieldFirstSeen:
		return m.FirstSeen()
	case entity.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EntityMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case entity.FieldName:
		return m.OldName(ctx)
	case entity.FieldNormalizedName:
		return m.OldNormalizedName(ctx)
	case entity.FieldEntityType:
		return m.OldEntityType(ctx)
	case entity.FieldDescription:
		return m.OldDescription(ctx)
	case entity.FieldTouchCount:
		return m.OldTouchCount(ctx)
	case entity.FieldTrajectoryCount:
		return m.OldTrajectoryCount(ctx)
	case entity.FieldContributorCount:
		return m.OldContributorCount(ctx)
	case entity.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case entity.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown Entity field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) SetField(name string, value ent.Value) error {
	switch name {
	case entity.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case entity.FieldNormalizedName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNormalizedName(v)
		return nil
	case entity.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case entity.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case entity.FieldTouchCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTouchCount(v)
		return nil
	case entity.FieldTrajectoryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrajectoryCount(v)
		return nil
	case entity.FieldContributorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributorCount(v)
		return nil
	case entity.FieldFirstSeen:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case entity.FieldLastSeen:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EntityMutation) AddedFields() []string {
	var fields []string
	if m.addtouch_count != nil {
		fields = append(fields, entity.FieldTouchCount)
	}
	if m.addtrajectory_count != nil {
		fields = append(fields, entity.FieldTrajectoryCount)
	}
	if m.addcontributor_count != nil {
		fields = append(fields, entity.FieldContributorCount)
	}
	if m.addfirst_seen != nil {
		fields = append(fields, entity.FieldFirstSeen)
	}
	if m.addlast_seen != nil {
		fields = append(fields, entity.FieldLastSeen)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EntityMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case entity.FieldTouchCount:
		return m.AddedTouchCount()
	case entity.FieldTrajectoryCount:
		return m.AddedTrajectoryCount()
	case entity.FieldContributorCount:
		return m.AddedContributorCount()
	case entity.FieldFirstSeen:
		return m.AddedFirstSeen()
	case entity.FieldLastSeen:
		return m.AddedLastSeen()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EntityMutation) AddField(name string, value ent.Value) error {
	switch name {
	case entity.FieldTouchCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTouchCount(v)
		return nil
	case entity.FieldTrajectoryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrajectoryCount(v)
		return nil
	case entity.FieldContributorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContributorCount(v)
		return nil
	case entity.FieldFirstSeen:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstSeen(v)
		return nil
	case entity.FieldLastSeen:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown Entity numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EntityMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(entity.FieldEntityType) {
		fields = append(fields, entity.FieldEntityType)
	}
	if m.FieldCleared(entity.FieldDescription) {
		fields = append(fields, entity.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EntityMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EntityMutation) ClearField(name string) error {
	switch name {
	case entity.FieldEntityType:
		m.ClearEntityType()
		return nil
	case entity.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown Entity nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EntityMutation) ResetField(name string) error {
	switch name {
	case entity.FieldName:
		m.ResetName()
		return nil
	case entity.FieldNormalizedName:
		m.ResetNormalizedName()
		return nil
	case entity.FieldEntityType:
		m.ResetEntityType()
		return nil
	case entity.FieldDescription:
		m.ResetDescription()
		return nil
	case entity.FieldTouchCount:
		m.ResetTouchCount()
		return nil
	case entity.FieldTrajectoryCount:
		m.ResetTrajectoryCount()
		return nil
	case entity.FieldContributorCount:
		m.ResetContributorCount()
		return nil
	case entity.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case entity.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown Entity field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EntityMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EntityMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EntityMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EntityMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EntityMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EntityMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EntityMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Entity unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EntityMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Entity edge %s", name)
}

// GraphEdgeMutation represents an operation that mutates the GraphEdge nodes in the graph.
type GraphEdgeMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	source_id            *string
	target_id            *string
	weight               *int
	addweight            *int
	trajectory_count     *int
	addtrajectory_count  *int
	contributor_count    *int
	addcontributor_count *int
	relationship_type    *string
	positive_outcomes    *int
	addpositive_outcomes *int
	negative_outcomes    *int
	addnegative_outcomes *int
	mixed_outcomes       *int
	addmixed_outcomes    *int
	first_seen           *int64
	addfirst_seen        *int64
	last_seen            *int64
	addlast_seen         *int64
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*GraphEdge, error)
	predicates           []predicate.GraphEdge
}

var _ ent.Mutation = (*GraphEdgeMutation)(nil)

// graphedgeOption allows management of the mutation configuration using functional options.
type graphedgeOption func(*GraphEdgeMutation)

// newGraphEdgeMutation creates new mutation for the GraphEdge entity.
func newGraphEdgeMutation(c config, op Op, opts ...graphedgeOption) *GraphEdgeMutation {
	m := &GraphEdgeMutation{
		config:        c,
		op:            op,
		typ:           TypeGraphEdge,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGraphEdgeID sets the ID field of the mutation.
func withGraphEdgeID(id string) graphedgeOption {
	return func(m *GraphEdgeMutation) {
		var (
			err   error
			once  sync.Once
			value *GraphEdge
		)
		m.oldValue = func(ctx context.Context) (*GraphEdge, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GraphEdge.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGraphEdge sets the old GraphEdge of the mutation.
func withGraphEdge(node *GraphEdge) graphedgeOption {
	return func(m *GraphEdgeMutation) {
		m.oldValue = func(context.Context) (*GraphEdge, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GraphEdgeMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GraphEdgeMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GraphEdge entities.
func (m *GraphEdgeMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GraphEdgeMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GraphEdgeMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GraphEdge.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceID sets the "source_id" field.
func (m *GraphEdgeMutation) SetSourceID(s string) {
	m.source_id = &s
}

// SourceID returns the value of the "source_id" field in the mutation.
func (m *GraphEdgeMutation) SourceID() (r string, exists bool) {
	v := m.source_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceID returns the old "source_id" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldSourceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceID: %w", err)
	}
	return oldValue.SourceID, nil
}

// ResetSourceID resets all changes to the "source_id" field.
func (m *GraphEdgeMutation) ResetSourceID() {
	m.source_id = nil
}

// SetTargetID sets the "target_id" field.
func (m *GraphEdgeMutation) SetTargetID(s string) {
	m.target_id = &s
}

// TargetID returns the value of the "target_id" field in the mutation.
func (m *GraphEdgeMutation) TargetID() (r string, exists bool) {
	v := m.target_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetID returns the old "target_id" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldTargetID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetID: %w", err)
	}
	return oldValue.TargetID, nil
}

// ResetTargetID resets all changes to the "target_id" field.
func (m *GraphEdgeMutation) ResetTargetID() {
	m.target_id = nil
}

// SetWeight sets the "weight" field.
func (m *GraphEdgeMutation) SetWeight(i int) {
	m.weight = &i
	m.addweight = nil
}

// Weight returns the value of the "weight" field in the mutation.
func (m *GraphEdgeMutation) Weight() (r int, exists bool) {
	v := m.weight
	if v == nil {
		return
	}
	return *v, true
}

// OldWeight returns the old "weight" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldWeight(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeight is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeight requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeight: %w", err)
	}
	return oldValue.Weight, nil
}

// AddWeight adds i to the "weight" field.
func (m *GraphEdgeMutation) AddWeight(i int) {
	if m.addweight != nil {
		*m.addweight += i
	} else {
		m.addweight = &i
	}
}

// AddedWeight returns the value that was added to the "weight" field in this mutation.
func (m *GraphEdgeMutation) AddedWeight() (r int, exists bool) {
	v := m.addweight
	if v == nil {
		return
	}
	return *v, true
}

// ResetWeight resets all changes to the "weight" field.
func (m *GraphEdgeMutation) ResetWeight() {
	m.weight = nil
	m.addweight = nil
}

// SetTrajectoryCount sets the "trajectory_count" field.
func (m *GraphEdgeMutation) SetTrajectoryCount(i int) {
	m.trajectory_count = &i
	m.addtrajectory_count = nil
}

// TrajectoryCount returns the value of the "trajectory_count" field in the mutation.
func (m *GraphEdgeMutation) TrajectoryCount() (r int, exists bool) {
	v := m.trajectory_count
	if v == nil {
		return
	}
	return *v, true
}

// OldTrajectoryCount returns the old "trajectory_count" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldTrajectoryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrajectoryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrajectoryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrajectoryCount: %w", err)
	}
	return oldValue.TrajectoryCount, nil
}

// AddTrajectoryCount adds i to the "trajectory_count" field.
func (m *GraphEdgeMutation) AddTrajectoryCount(i int) {
	if m.addtrajectory_count != nil {
		*m.addtrajectory_count += i
	} else {
		m.addtrajectory_count = &i
	}
}

// AddedTrajectoryCount returns the value that was added to the "trajectory_count" field in this mutation.
func (m *GraphEdgeMutation) AddedTrajectoryCount() (r int, exists bool) {
	v := m.addtrajectory_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetTrajectoryCount resets all changes to the "trajectory_count" field.
func (m *GraphEdgeMutation) ResetTrajectoryCount() {
	m.trajectory_count = nil
	m.addtrajectory_count = nil
}

// SetContributorCount sets the "contributor_count" field.
func (m *GraphEdgeMutation) SetContributorCount(i int) {
	m.contributor_count = &i
	m.addcontributor_count = nil
}

// ContributorCount returns the value of the "contributor_count" field in the mutation.
func (m *GraphEdgeMutation) ContributorCount() (r int, exists bool) {
	v := m.contributor_count
	if v == nil {
		return
	}
	return *v, true
}

// OldContributorCount returns the old "contributor_count" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldContributorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributorCount: %w", err)
	}
	return oldValue.ContributorCount, nil
}

// AddContributorCount adds i to the "contributor_count" field.
func (m *GraphEdgeMutation) AddContributorCount(i int) {
	if m.addcontributor_count != nil {
		*m.addcontributor_count += i
	} else {
		m.addcontributor_count = &i
	}
}

// AddedContributorCount returns the value that was added to the "contributor_count" field in this mutation.
func (m *GraphEdgeMutation) AddedContributorCount() (r int, exists bool) {
	v := m.addcontributor_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetContributorCount resets all changes to the "contributor_count" field.
func (m *GraphEdgeMutation) ResetContributorCount() {
	m.contributor_count = nil
	m.addcontributor_count = nil
}

// SetRelationshipType sets the "relationship_type" field.
func (m *GraphEdgeMutation) SetRelationshipType(s string) {
	m.relationship_type = &s
}

// RelationshipType returns the value of the "relationship_type" field in the mutation.
func (m *GraphEdgeMutation) RelationshipType() (r string, exists bool) {
	v := m.relationship_type
	if v == nil {
		return
	}
	return *v, true
}

// OldRelationshipType returns the old "relationship_type" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldRelationshipType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelationshipType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelationshipType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelationshipType: %w", err)
	}
	return oldValue.RelationshipType, nil
}

// ClearRelationshipType clears the value of the "relationship_type" field.
func (m *GraphEdgeMutation) ClearRelationshipType() {
	m.relationship_type = nil
	m.clearedFields[graphedge.FieldRelationshipType] = struct{}{}
}

// RelationshipTypeCleared returns if the "relationship_type" field was cleared in this mutation.
func (m *GraphEdgeMutation) RelationshipTypeCleared() bool {
	_, ok := m.clearedFields[graphedge.FieldRelationshipType]
	return ok
}

// ResetRelationshipType resets all changes to the "relationship_type" field.
func (m *GraphEdgeMutation) ResetRelationshipType() {
	m.relationship_type = nil
	delete(m.clearedFields, graphedge.FieldRelationshipType)
}

// SetPositiveOutcomes sets the "positive_outcomes" field.
func (m *GraphEdgeMutation) SetPositiveOutcomes(i int) {
	m.positive_outcomes = &i
	m.addpositive_outcomes = nil
}

// PositiveOutcomes returns the value of the "positive_outcomes" field in the mutation.
func (m *GraphEdgeMutation) PositiveOutcomes() (r int, exists bool) {
	v := m.positive_outcomes
	if v == nil {
		return
	}
	return *v, true
}

// OldPositiveOutcomes returns the old "positive_outcomes" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldPositiveOutcomes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPositiveOutcomes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPositiveOutcomes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPositiveOutcomes: %w", err)
	}
	return oldValue.PositiveOutcomes, nil
}

// AddPositiveOutcomes adds i to the "positive_outcomes" field.
func (m *GraphEdgeMutation) AddPositiveOutcomes(i int) {
	if m.addpositive_outcomes != nil {
		*m.addpositive_outcomes += i
	} else {
		m.addpositive_outcomes = &i
	}
}

// AddedPositiveOutcomes returns the value that was added to the "positive_outcomes" field in this mutation.
func (m *GraphEdgeMutation) AddedPositiveOutcomes() (r int, exists bool) {
	v := m.addpositive_outcomes
	if v == nil {
		return
	}
	return *v, true
}

// ResetPositiveOutcomes resets all changes to the "positive_outcomes" field.
func (m *GraphEdgeMutation) ResetPositiveOutcomes() {
	m.positive_outcomes = nil
	m.addpositive_outcomes = nil
}

// SetNegativeOutcomes sets the "negative_outcomes" field.
func (m *GraphEdgeMutation) SetNegativeOutcomes(i int) {
	m.negative_outcomes = &i
	m.addnegative_outcomes = nil
}

// NegativeOutcomes returns the value of the "negative_outcomes" field in the mutation.
func (m *GraphEdgeMutation) NegativeOutcomes() (r int, exists bool) {
	v := m.negative_outcomes
	if v == nil {
		return
	}
	return *v, true
}

// OldNegativeOutcomes returns the old "negative_outcomes" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldNegativeOutcomes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNegativeOutcomes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNegativeOutcomes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNegativeOutcomes: %w", err)
	}
	return oldValue.NegativeOutcomes, nil
}

// AddNegativeOutcomes adds i to the "negative_outcomes" field.
func (m *GraphEdgeMutation) AddNegativeOutcomes(i int) {
	if m.addnegative_outcomes != nil {
		*m.addnegative_outcomes += i
	} else {
		m.addnegative_outcomes = &i
	}
}

// AddedNegativeOutcomes returns the value that was added to the "negative_outcomes" field in this mutation.
func (m *GraphEdgeMutation) AddedNegativeOutcomes() (r int, exists bool) {
	v := m.addnegative_outcomes
	if v == nil {
		return
	}
	return *v, true
}

// ResetNegativeOutcomes resets all changes to the "negative_outcomes" field.
func (m *GraphEdgeMutation) ResetNegativeOutcomes() {
	m.negative_outcomes = nil
	m.addnegative_outcomes = nil
}

// SetMixedOutcomes sets the "mixed_outcomes" field.
func (m *GraphEdgeMutation) SetMixedOutcomes(i int) {
	m.mixed_outcomes = &i
	m.addmixed_outcomes = nil
}

// MixedOutcomes returns the value of the "mixed_outcomes" field in the mutation.
func (m *GraphEdgeMutation) MixedOutcomes() (r int, exists bool) {
	v := m.mixed_outcomes
	if v == nil {
		return
	}
	return *v, true
}

// OldMixedOutcomes returns the old "mixed_outcomes" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldMixedOutcomes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMixedOutcomes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMixedOutcomes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMixedOutcomes: %w", err)
	}
	return oldValue.MixedOutcomes, nil
}

// AddMixedOutcomes adds i to the "mixed_outcomes" field.
func (m *GraphEdgeMutation) AddMixedOutcomes(i int) {
	if m.addmixed_outcomes != nil {
		*m.addmixed_outcomes += i
	} else {
		m.addmixed_outcomes = &i
	}
}

// AddedMixedOutcomes returns the value that was added to the "mixed_outcomes" field in this mutation.
func (m *GraphEdgeMutation) AddedMixedOutcomes() (r int, exists bool) {
	v := m.addmixed_outcomes
	if v == nil {
		return
	}
	return *v, true
}

// ResetMixedOutcomes resets all changes to the "mixed_outcomes" field.
func (m *GraphEdgeMutation) ResetMixedOutcomes() {
	m.mixed_outcomes = nil
	m.addmixed_outcomes = nil
}

// SetFirstSeen sets the "first_seen" field.
func (m *GraphEdgeMutation) SetFirstSeen(i int64) {
	m.first_seen = &i
	m.addfirst_seen = nil
}

// FirstSeen returns the value of the "first_seen" field in the mutation.
func (m *GraphEdgeMutation) FirstSeen() (r int64, exists bool) {
	v := m.first_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeen returns the old "first_seen" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldFirstSeen(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeen: %w", err)
	}
	return oldValue.FirstSeen, nil
}

// AddFirstSeen adds i to the "first_seen" field.
func (m *GraphEdgeMutation) AddFirstSeen(i int64) {
	if m.addfirst_seen != nil {
		*m.addfirst_seen += i
	} else {
		m.addfirst_seen = &i
	}
}

// AddedFirstSeen returns the value that was added to the "first_seen" field in this mutation.
func (m *GraphEdgeMutation) AddedFirstSeen() (r int64, exists bool) {
	v := m.addfirst_seen
	if v == nil {
		return
	}
	return *v, true
}

// ResetFirstSeen resets all changes to the "first_seen" field.
func (m *GraphEdgeMutation) ResetFirstSeen() {
	m.first_seen = nil
	m.addfirst_seen = nil
}

// SetLastSeen sets the "last_seen" field.
func (m *GraphEdgeMutation) SetLastSeen(i int64) {
	m.last_seen = &i
	m.addlast_seen = nil
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *GraphEdgeMutation) LastSeen() (r int64, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the GraphEdge entity.
// If the GraphEdge object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GraphEdgeMutation) OldLastSeen(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// AddLastSeen adds i to the "last_seen" field.
func (m *GraphEdgeMutation) AddLastSeen(i int64) {
	if m.addlast_seen != nil {
		*m.addlast_seen += i
	} else {
		m.addlast_seen = &i
	}
}

// AddedLastSeen returns the value that was added to the "last_seen" field in this mutation.
func (m *GraphEdgeMutation) AddedLastSeen() (r int64, exists bool) {
	v := m.addlast_seen
	if v == nil {
		return
	}
	return *v, true
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *GraphEdgeMutation) ResetLastSeen() {
	m.last_seen = nil
	m.addlast_seen = nil
}

// Where appends a list predicates to the GraphEdgeMutation builder.
func (m *GraphEdgeMutation) Where(ps ...predicate.GraphEdge) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GraphEdgeMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GraphEdgeMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GraphEdge, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GraphEdgeMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GraphEdgeMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GraphEdge).
func (m *GraphEdgeMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GraphEdgeMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.source_id != nil {
		fields = append(fields, graphedge.FieldSourceID)
	}
	if m.target_id != nil {
		fields = append(fields, graphedge.FieldTargetID)
	}
	if m.weight != nil {
		fields = append(fields, graphedge.FieldWeight)
	}
	if m.trajectory_count != nil {
		fields = append(fields, graphedge.FieldTrajectoryCount)
	}
	if m.contributor_count != nil {
		fields = append(fields, graphedge.FieldContributorCount)
	}
	if m.relationship_type != nil {
		fields = append(fields, graphedge.FieldRelationshipType)
	}
	if m.positive_outcomes != nil {
		fields = append(fields, graphedge.FieldPositiveOutcomes)
	}
	if m.negative_outcomes != nil {
		fields = append(fields, graphedge.FieldNegativeOutcomes)
	}
	if m.mixed_outcomes != nil {
		fields = append(fields, graphedge.FieldMixedOutcomes)
	}
	if m.first_seen != nil {
		fields = append(fields, graphedge.FieldFirstSeen)
	}
	if m.last_seen != nil {
		fields = append(fields, graphedge.FieldLastSeen)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GraphEdgeMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case graphedge.FieldSourceID:
		return m.SourceID()
	case graphedge.FieldTargetID:
		return m.TargetID()
	case graphedge.FieldWeight:
		return m.Weight()
	case graphedge.FieldTrajectoryCount:
		return m.TrajectoryCount()
	case graphedge.FieldContributorCount:
		return m.ContributorCount()
	case graphedge.FieldRelationshipType:
		return m.RelationshipType()
	case graphedge.FieldPositiveOutcomes:
		return m.PositiveOutcomes()
	case graphedge.FieldNegativeOutcomes:
		return m.NegativeOutcomes()
	case graphedge.FieldMixedOutcomes:
		return m.MixedOutcomes()
	case graphedge.FieldFirstSeen:
		return m.FirstSeen()
	case graphedge.FieldLastSeen:
		return m.LastSeen()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GraphEdgeMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case graphedge.FieldSourceID:
		return m.OldSourceID(ctx)
	case graphedge.FieldTargetID:
		return m.OldTargetID(ctx)
	case graphedge.FieldWeight:
		return m.OldWeight(ctx)
	case graphedge.FieldTrajectoryCount:
		return m.OldTrajectoryCount(ctx)
	case graphedge.FieldContributorCount:
		return m.OldContributorCount(ctx)
	case graphedge.FieldRelationshipType:
		return m.OldRelationshipType(ctx)
	case graphedge.FieldPositiveOutcomes:
		return m.OldPositiveOutcomes(ctx)
	case graphedge.FieldNegativeOutcomes:
		return m.OldNegativeOutcomes(ctx)
	case graphedge.FieldMixedOutcomes:
		return m.OldMixedOutcomes(ctx)
	case graphedge.FieldFirstSeen:
		return m.OldFirstSeen(ctx)
	case graphedge.FieldLastSeen:
		return m.OldLastSeen(ctx)
	}
	return nil, fmt.Errorf("unknown GraphEdge field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphEdgeMutation) SetField(name string, value ent.Value) error {
	switch name {
	case graphedge.FieldSourceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceID(v)
		return nil
	case graphedge.FieldTargetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetID(v)
		return nil
	case graphedge.FieldWeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeight(v)
		return nil
	case graphedge.FieldTrajectoryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrajectoryCount(v)
		return nil
	case graphedge.FieldContributorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributorCount(v)
		return nil
	case graphedge.FieldRelationshipType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelationshipType(v)
		return nil
	case graphedge.FieldPositiveOutcomes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPositiveOutcomes(v)
		return nil
	case graphedge.FieldNegativeOutcomes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNegativeOutcomes(v)
		return nil
	case graphedge.FieldMixedOutcomes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMixedOutcomes(v)
		return nil
	case graphedge.FieldFirstSeen:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeen(v)
		return nil
	case graphedge.FieldLastSeen:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown GraphEdge field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GraphEdgeMutation) AddedFields() []string {
	var fields []string
	if m.addweight != nil {
		fields = append(fields, graphedge.FieldWeight)
	}
	if m.addtrajectory_count != nil {
		fields = append(fields, graphedge.FieldTrajectoryCount)
	}
	if m.addcontributor_count != nil {
		fields = append(fields, graphedge.FieldContributorCount)
	}
	if m.addpositive_outcomes != nil {
		fields = append(fields, graphedge.FieldPositiveOutcomes)
	}
	if m.addnegative_outcomes != nil {
		fields = append(fields, graphedge.FieldNegativeOutcomes)
	}
	if m.addmixed_outcomes != nil {
		fields = append(fields, graphedge.FieldMixedOutcomes)
	}
	if m.addfirst_seen != nil {
		fields = append(fields, graphedge.FieldFirstSeen)
	}
	if m.addlast_seen != nil {
		fields = append(fields, graphedge.FieldLastSeen)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GraphEdgeMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case graphedge.FieldWeight:
		return m.AddedWeight()
	case graphedge.FieldTrajectoryCount:
		return m.AddedTrajectoryCount()
	case graphedge.FieldContributorCount:
		return m.AddedContributorCount()
	case graphedge.FieldPositiveOutcomes:
		return m.AddedPositiveOutcomes()
	case graphedge.FieldNegativeOutcomes:
		return m.AddedNegativeOutcomes()
	case graphedge.FieldMixedOutcomes:
		return m.AddedMixedOutcomes()
	case graphedge.FieldFirstSeen:
		return m.AddedFirstSeen()
	case graphedge.FieldLastSeen:
		return m.AddedLastSeen()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GraphEdgeMutation) AddField(name string, value ent.Value) error {
	switch name {
	case graphedge.FieldWeight:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWeight(v)
		return nil
	case graphedge.FieldTrajectoryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTrajectoryCount(v)
		return nil
	case graphedge.FieldContributorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContributorCount(v)
		return nil
	case graphedge.FieldPositiveOutcomes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPositiveOutcomes(v)
		return nil
	case graphedge.FieldNegativeOutcomes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNegativeOutcomes(v)
		return nil
	case graphedge.FieldMixedOutcomes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMixedOutcomes(v)
		return nil
	case graphedge.FieldFirstSeen:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstSeen(v)
		return nil
	case graphedge.FieldLastSeen:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLastSeen(v)
		return nil
	}
	return fmt.Errorf("unknown GraphEdge numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GraphEdgeMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(graphedge.FieldRelationshipType) {
		fields = append(fields, graphedge.FieldRelationshipType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GraphEdgeMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GraphEdgeMutation) ClearField(name string) error {
	switch name {
	case graphedge.FieldRelationshipType:
		m.ClearRelationshipType()
		return nil
	}
	return fmt.Errorf("unknown GraphEdge nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GraphEdgeMutation) ResetField(name string) error {
	switch name {
	case graphedge.FieldSourceID:
		m.ResetSourceID()
		return nil
	case graphedge.FieldTargetID:
		m.ResetTargetID()
		return nil
	case graphedge.FieldWeight:
		m.ResetWeight()
		return nil
	case graphedge.FieldTrajectoryCount:
		m.ResetTrajectoryCount()
		return nil
	case graphedge.FieldContributorCount:
		m.ResetContributorCount()
		return nil
	case graphedge.FieldRelationshipType:
		m.ResetRelationshipType()
		return nil
	case graphedge.FieldPositiveOutcomes:
		m.ResetPositiveOutcomes()
		return nil
	case graphedge.FieldNegativeOutcomes:
		m.ResetNegativeOutcomes()
		return nil
	case graphedge.FieldMixedOutcomes:
		m.ResetMixedOutcomes()
		return nil
	case graphedge.FieldFirstSeen:
		m.ResetFirstSeen()
		return nil
	case graphedge.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	}
	return fmt.Errorf("unknown GraphEdge field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GraphEdgeMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GraphEdgeMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GraphEdgeMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GraphEdgeMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GraphEdgeMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GraphEdgeMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GraphEdgeMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GraphEdge unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GraphEdgeMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GraphEdge edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op              Op
	typ             string
	id              *string
	conversation_id *string
	role            *message.Role
	content         *string
	trajectory_id   *string
	created_at      *int64
	addcreated_at   *int64
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Message, error)
	predicates      []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *MessageMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *MessageMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *MessageMutation) ResetConversationID() {
	m.conversation_id = nil
}

// SetRole sets the "role" field.
func (m *MessageMutation) SetRole(value message.Role) {
	m.role = &value
}

// Role returns the value of the "role" field in the mutation.
func (m *MessageMutation) Role() (r message.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldRole(ctx context.Context) (v message.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *MessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *MessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *MessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *MessageMutation) ResetContent() {
	m.content = nil
}

// SetTrajectoryID sets the "trajectory_id" field.
func (m *MessageMutation) SetTrajectoryID(s string) {
	m.trajectory_id = &s
}

// TrajectoryID returns the value of the "trajectory_id" field in the mutation.
func (m *MessageMutation) TrajectoryID() (r string, exists bool) {
	v := m.trajectory_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTrajectoryID returns the old "trajectory_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldTrajectoryID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrajectoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrajectoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrajectoryID: %w", err)
	}
	return oldValue.TrajectoryID, nil
}

// ClearTrajectoryID clears the value of the "trajectory_id" field.
func (m *MessageMutation) ClearTrajectoryID() {
	m.trajectory_id = nil
	m.clearedFields[message.FieldTrajectoryID] = struct{}{}
}

// TrajectoryIDCleared returns if the "trajectory_id" field was cleared in this mutation.
func (m *MessageMutation) TrajectoryIDCleared() bool {
	_, ok := m.clearedFields[message.FieldTrajectoryID]
	return ok
}

// ResetTrajectoryID resets all changes to the "trajectory_id" field.
func (m *MessageMutation) ResetTrajectoryID() {
	m.trajectory_id = nil
	delete(m.clearedFields, message.FieldTrajectoryID)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(i int64) {
	m.created_at = &i
	m.addcreated_at = nil
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r int64, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// AddCreatedAt adds i to the "created_at" field.
func (m *MessageMutation) AddCreatedAt(i int64) {
	if m.addcreated_at != nil {
		*m.addcreated_at += i
	} else {
		m.addcreated_at = &i
	}
}

// AddedCreatedAt returns the value that was added to the "created_at" field in this mutation.
func (m *MessageMutation) AddedCreatedAt() (r int64, exists bool) {
	v := m.addcreated_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
	m.addcreated_at = nil
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.conversation_id != nil {
		fields = append(fields, message.FieldConversationID)
	}
	if m.role != nil {
		fields = append(fields, message.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, message.FieldContent)
	}
	if m.trajectory_id != nil {
		fields = append(fields, message.FieldTrajectoryID)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldConversationID:
		return m.ConversationID()
	case message.FieldRole:
		return m.Role()
	case message.FieldContent:
		return m.Content()
	case message.FieldTrajectoryID:
		return m.TrajectoryID()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldConversationID:
		return m.OldConversationID(ctx)
	case message.FieldRole:
		return m.OldRole(ctx)
	case message.FieldContent:
		return m.OldContent(ctx)
	case message.FieldTrajectoryID:
		return m.OldTrajectoryID(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case message.FieldRole:
		v, ok := value.(message.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case message.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case message.FieldTrajectoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrajectoryID(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	var fields []string
	if m.addcreated_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case message.FieldCreatedAt:
		return m.AddedCreatedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case message.FieldCreatedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldTrajectoryID) {
		fields = append(fields, message.FieldTrajectoryID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldTrajectoryID:
		m.ClearTrajectoryID()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldConversationID:
		m.ResetConversationID()
		return nil
	case message.FieldRole:
		m.ResetRole()
		return nil
	case message.FieldContent:
		m.ResetContent()
		return nil
	case message.FieldTrajectoryID:
		m.ResetTrajectoryID()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Message edge %s", name)
}

// TrajectoryMutation represents an operation that mutates the Trajectory nodes in the graph.
type TrajectoryMutation struct {
	config
	op              Op
	typ             string
	id              *string
	account_id      *string
	conversation_id *string
	input_text      *string
	input_hash      *int64
	addinput_hash   *int64
	summary         *string
	started_at      *int64
	addstarted_at   *int64
	completed_at    *int64
	addcompleted_at *int64
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Trajectory, error)
	predicates      []predicate.Trajectory
}

var _ ent.Mutation = (*TrajectoryMutation)(nil)

// trajectoryOption allows management of the mutation configuration using functional options.
type trajectoryOption func(*TrajectoryMutation)

// newTrajectoryMutation creates new mutation for the Trajectory entity.
func newTrajectoryMutation(c config, op Op, opts ...trajectoryOption) *TrajectoryMutation {
	m := &TrajectoryMutation{
		config:        c,
		op:            op,
		typ:           TypeTrajectory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrajectoryID sets the ID field of the mutation.
func withTrajectoryID(id string) trajectoryOption {
	return func(m *TrajectoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Trajectory
		)
		m.oldValue = func(ctx context.Context) (*Trajectory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Trajectory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrajectory sets the old Trajectory of the mutation.
func withTrajectory(node *Trajectory) trajectoryOption {
	return func(m *TrajectoryMutation) {
		m.oldValue = func(context.Context) (*Trajectory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrajectoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrajectoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Trajectory entities.
func (m *TrajectoryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrajectoryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrajectoryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Trajectory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountID sets the "account_id" field.
func (m *TrajectoryMutation) SetAccountID(s string) {
	m.account_id = &s
}

// AccountID returns the value of the "account_id" field in the mutation.
func (m *TrajectoryMutation) AccountID() (r string, exists bool) {
	v := m.account_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountID returns the old "account_id" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldAccountID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountID: %w", err)
	}
	return oldValue.AccountID, nil
}

// ResetAccountID resets all changes to the "account_id" field.
func (m *TrajectoryMutation) ResetAccountID() {
	m.account_id = nil
}

// SetConversationID sets the "conversation_id" field.
func (m *TrajectoryMutation) SetConversationID(s string) {
	m.conversation_id = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *TrajectoryMutation) ConversationID() (r string, exists bool) {
	v := m.conversation_id
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldConversationID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ClearConversationID clears the value of the "conversation_id" field.
func (m *TrajectoryMutation) ClearConversationID() {
	m.conversation_id = nil
	m.clearedFields[trajectory.FieldConversationID] = struct{}{}
}

// ConversationIDCleared returns if the "conversation_id" field was cleared in this mutation.
func (m *TrajectoryMutation) ConversationIDCleared() bool {
	_, ok := m.clearedFields[trajectory.FieldConversationID]
	return ok
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *TrajectoryMutation) ResetConversationID() {
	m.conversation_id = nil
	delete(m.clearedFields, trajectory.FieldConversationID)
}

// SetInputText sets the "input_text" field.
func (m *TrajectoryMutation) SetInputText(s string) {
	m.input_text = &s
}

// InputText returns the value of the "input_text" field in the mutation.
func (m *TrajectoryMutation) InputText() (r string, exists bool) {
	v := m.input_text
	if v == nil {
		return
	}
	return *v, true
}

// OldInputText returns the old "input_text" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldInputText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputText: %w", err)
	}
	return oldValue.InputText, nil
}

// ResetInputText resets all changes to the "input_text" field.
func (m *TrajectoryMutation) ResetInputText() {
	m.input_text = nil
}

// SetInputHash sets the "input_hash" field.
func (m *TrajectoryMutation) SetInputHash(i int64) {
	m.input_hash = &i
	m.addinput_hash = nil
}

// InputHash returns the value of the "input_hash" field in the mutation.
func (m *TrajectoryMutation) InputHash() (r int64, exists bool) {
	v := m.input_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldInputHash returns the old "input_hash" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldInputHash(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputHash: %w", err)
	}
	return oldValue.InputHash, nil
}

// AddInputHash adds i to the "input_hash" field.
func (m *TrajectoryMutation) AddInputHash(i int64) {
	if m.addinput_hash != nil {
		*m.addinput_hash += i
	} else {
		m.addinput_hash = &i
	}
}

// AddedInputHash returns the value that was added to the "input_hash" field in this mutation.
func (m *TrajectoryMutation) AddedInputHash() (r int64, exists bool) {
	v := m.addinput_hash
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputHash resets all changes to the "input_hash" field.
func (m *TrajectoryMutation) ResetInputHash() {
	m.input_hash = nil
	m.addinput_hash = nil
}

// SetSummary sets the "summary" field.
func (m *TrajectoryMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *TrajectoryMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *TrajectoryMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[trajectory.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *TrajectoryMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[trajectory.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *TrajectoryMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, trajectory.FieldSummary)
}

// SetStartedAt sets the "started_at" field.
func (m *TrajectoryMutation) SetStartedAt(i int64) {
	m.started_at = &i
	m.addstarted_at = nil
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *TrajectoryMutation) StartedAt() (r int64, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldStartedAt(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// AddStartedAt adds i to the "started_at" field.
func (m *TrajectoryMutation) AddStartedAt(i int64) {
	if m.addstarted_at != nil {
		*m.addstarted_at += i
	} else {
		m.addstarted_at = &i
	}
}

// AddedStartedAt returns the value that was added to the "started_at" field in this mutation.
func (m *TrajectoryMutation) AddedStartedAt() (r int64, exists bool) {
	v := m.addstarted_at
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *TrajectoryMutation) ResetStartedAt() {
	m.started_at = nil
	m.addstarted_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TrajectoryMutation) SetCompletedAt(i int64) {
	m.completed_at = &i
	m.addcompleted_at = nil
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TrajectoryMutation) CompletedAt() (r int64, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Trajectory entity.
// If the Trajectory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryMutation) OldCompletedAt(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// AddCompletedAt adds i to the "completed_at" field.
func (m *TrajectoryMutation) AddCompletedAt(i int64) {
	if m.addcompleted_at != nil {
		*m.addcompleted_at += i
	} else {
		m.addcompleted_at = &i
	}
}

// AddedCompletedAt returns the value that was added to the "completed_at" field in this mutation.
func (m *TrajectoryMutation) AddedCompletedAt() (r int64, exists bool) {
	v := m.addcompleted_at
	if v == nil {
		return
	}
	return *v, true
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TrajectoryMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.addcompleted_at = nil
	m.clearedFields[trajectory.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TrajectoryMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[trajectory.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TrajectoryMutation) ResetCompletedAt() {
	m.completed_at = nil
	m.addcompleted_at = nil
	delete(m.clearedFields, trajectory.FieldCompletedAt)
}

// Where appends a list predicates to the TrajectoryMutation builder.
func (m *TrajectoryMutation) Where(ps ...predicate.Trajectory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrajectoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrajectoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Trajectory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrajectoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrajectoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Trajectory).
func (m *TrajectoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrajectoryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.account_id != nil {
		fields = append(fields, trajectory.FieldAccountID)
	}
	if m.conversation_id != nil {
		fields = append(fields, trajectory.FieldConversationID)
	}
	if m.input_text != nil {
		fields = append(fields, trajectory.FieldInputText)
	}
	if m.input_hash != nil {
		fields = append(fields, trajectory.FieldInputHash)
	}
	if m.summary != nil {
		fields = append(fields, trajectory.FieldSummary)
	}
	if m.started_at != nil {
		fields = append(fields, trajectory.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, trajectory.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrajectoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trajectory.FieldAccountID:
		return m.AccountID()
	case trajectory.FieldConversationID:
		return m.ConversationID()
	case trajectory.FieldInputText:
		return m.InputText()
	case trajectory.FieldInputHash:
		return m.InputHash()
	case trajectory.FieldSummary:
		return m.Summary()
	case trajectory.FieldStartedAt:
		return m.StartedAt()
	case trajectory.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrajectoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trajectory.FieldAccountID:
		return m.OldAccountID(ctx)
	case trajectory.FieldConversationID:
		return m.OldConversationID(ctx)
	case trajectory.FieldInputText:
		return m.OldInputText(ctx)
	case trajectory.FieldInputHash:
		return m.OldInputHash(ctx)
	case trajectory.FieldSummary:
		return m.OldSummary(ctx)
	case trajectory.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case trajectory.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Trajectory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrajectoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trajectory.FieldAccountID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountID(v)
		return nil
	case trajectory.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case trajectory.FieldInputText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputText(v)
		return nil
	case trajectory.FieldInputHash:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputHash(v)
		return nil
	case trajectory.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case trajectory.FieldStartedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case trajectory.FieldCompletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Trajectory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrajectoryMutation) AddedFields() []string {
	var fields []string
	if m.addinput_hash != nil {
		fields = append(fields, trajectory.FieldInputHash)
	}
	if m.addstarted_at != nil {
		fields = append(fields, trajectory.FieldStartedAt)
	}
	if m.addcompleted_at != nil {
		fields = append(fields, trajectory.FieldCompletedAt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrajectoryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trajectory.FieldInputHash:
		return m.AddedInputHash()
	case trajectory.FieldStartedAt:
		return m.AddedStartedAt()
	case trajectory.FieldCompletedAt:
		return m.AddedCompletedAt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrajectoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trajectory.FieldInputHash:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputHash(v)
		return nil
	case trajectory.FieldStartedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartedAt(v)
		return nil
	case trajectory.FieldCompletedAt:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Trajectory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrajectoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trajectory.FieldConversationID) {
		fields = append(fields, trajectory.FieldConversationID)
	}
	if m.FieldCleared(trajectory.FieldSummary) {
		fields = append(fields, trajectory.FieldSummary)
	}
	if m.FieldCleared(trajectory.FieldCompletedAt) {
		fields = append(fields, trajectory.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrajectoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrajectoryMutation) ClearField(name string) error {
	switch name {
	case trajectory.FieldConversationID:
		m.ClearConversationID()
		return nil
	case trajectory.FieldSummary:
		m.ClearSummary()
		return nil
	case trajectory.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Trajectory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrajectoryMutation) ResetField(name string) error {
	switch name {
	case trajectory.FieldAccountID:
		m.ResetAccountID()
		return nil
	case trajectory.FieldConversationID:
		m.ResetConversationID()
		return nil
	case trajectory.FieldInputText:
		m.ResetInputText()
		return nil
	case trajectory.FieldInputHash:
		m.ResetInputHash()
		return nil
	case trajectory.FieldSummary:
		m.ResetSummary()
		return nil
	case trajectory.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case trajectory.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Trajectory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrajectoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrajectoryMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrajectoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrajectoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrajectoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrajectoryMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrajectoryMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Trajectory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrajectoryMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Trajectory edge %s", name)
}

// TrajectoryEventMutation represents an operation that mutates the TrajectoryEvent nodes in the graph.
type TrajectoryEventMutation struct {
	config
	op              Op
	typ             string
	id              *string
	trajectory_id   *string
	sequence_num    *int
	addsequence_num *int
	timestamp       *int64
	addtimestamp    *int64
	event_type      *trajectoryevent.EventType
	entity_id       *string
	data            *map[string]interface{}
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*TrajectoryEvent, error)
	predicates      []predicate.TrajectoryEvent
}

var _ ent.Mutation = (*TrajectoryEventMutation)(nil)

// trajectoryeventOption allows management of the mutation configuration using functional options.
type trajectoryeventOption func(*TrajectoryEventMutation)

// newTrajectoryEventMutation creates new mutation for the TrajectoryEvent entity.
func newTrajectoryEventMutation(c config, op Op, opts ...trajectoryeventOption) *TrajectoryEventMutation {
	m := &TrajectoryEventMutation{
		config:        c,
		op:            op,
		typ:           TypeTrajectoryEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrajectoryEventID sets the ID field of the mutation.
func withTrajectoryEventID(id string) trajectoryeventOption {
	return func(m *TrajectoryEventMutation) {
		var (
			err   error
			once  sync.Once
			value *TrajectoryEvent
		)
		m.oldValue = func(ctx context.Context) (*TrajectoryEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrajectoryEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrajectoryEvent sets the old TrajectoryEvent of the mutation.
func withTrajectoryEvent(node *TrajectoryEvent) trajectoryeventOption {
	return func(m *TrajectoryEventMutation) {
		m.oldValue = func(context.Context) (*TrajectoryEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrajectoryEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrajectoryEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TrajectoryEvent entities.
func (m *TrajectoryEventMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrajectoryEventMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrajectoryEventMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrajectoryEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTrajectoryID sets the "trajectory_id" field.
func (m *TrajectoryEventMutation) SetTrajectoryID(s string) {
	m.trajectory_id = &s
}

// TrajectoryID returns the value of the "trajectory_id" field in the mutation.
func (m *TrajectoryEventMutation) TrajectoryID() (r string, exists bool) {
	v := m.trajectory_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTrajectoryID returns the old "trajectory_id" field's value of the TrajectoryEvent entity.
// If the TrajectoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryEventMutation) OldTrajectoryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrajectoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrajectoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrajectoryID: %w", err)
	}
	return oldValue.TrajectoryID, nil
}

// ResetTrajectoryID resets all changes to the "trajectory_id" field.
func (m *TrajectoryEventMutation) ResetTrajectoryID() {
	m.trajectory_id = nil
}

// SetSequenceNum sets the "sequence_num" field.
func (m *TrajectoryEventMutation) SetSequenceNum(i int) {
	m.sequence_num = &i
	m.addsequence_num = nil
}

// SequenceNum returns the value of the "sequence_num" field in the mutation.
func (m *TrajectoryEventMutation) SequenceNum() (r int, exists bool) {
	v := m.sequence_num
	if v == nil {
		return
	}
	return *v, true
}

// OldSequenceNum returns the old "sequence_num" field's value of the TrajectoryEvent entity.
// If the TrajectoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryEventMutation) OldSequenceNum(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequenceNum is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequenceNum requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequenceNum: %w", err)
	}
	return oldValue.SequenceNum, nil
}

// AddSequenceNum adds i to the "sequence_num" field.
func (m *TrajectoryEventMutation) AddSequenceNum(i int) {
	if m.addsequence_num != nil {
		*m.addsequence_num += i
	} else {
		m.addsequence_num = &i
	}
}

// AddedSequenceNum returns the value that was added to the "sequence_num" field in this mutation.
func (m *TrajectoryEventMutation) AddedSequenceNum() (r int, exists bool) {
	v := m.addsequence_num
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequenceNum resets all changes to the "sequence_num" field.
func (m *TrajectoryEventMutation) ResetSequenceNum() {
	m.sequence_num = nil
	m.addsequence_num = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *TrajectoryEventMutation) SetTimestamp(i int64) {
	m.timestamp = &i
	m.addtimestamp = nil
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *TrajectoryEventMutation) Timestamp() (r int64, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the TrajectoryEvent entity.
// If the TrajectoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryEventMutation) OldTimestamp(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// AddTimestamp adds i to the "timestamp" field.
func (m *TrajectoryEventMutation) AddTimestamp(i int64) {
	if m.addtimestamp != nil {
		*m.addtimestamp += i
	} else {
		m.addtimestamp = &i
	}
}

// AddedTimestamp returns the value that was added to the "timestamp" field in this mutation.
func (m *TrajectoryEventMutation) AddedTimestamp() (r int64, exists bool) {
	v := m.addtimestamp
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *TrajectoryEventMutation) ResetTimestamp() {
	m.timestamp = nil
	m.addtimestamp = nil
}

// SetEventType sets the "event_type" field.
func (m *TrajectoryEventMutation) SetEventType(tt trajectoryevent.EventType) {
	m.event_type = &tt
}

// EventType returns the value of the "event_type" field in the mutation.
func (m *TrajectoryEventMutation) EventType() (r trajectoryevent.EventType, exists bool) {
	v := m.event_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEventType returns the old "event_type" field's value of the TrajectoryEvent entity.
// If the TrajectoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryEventMutation) OldEventType(ctx context.Context) (v trajectoryevent.EventType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEventType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEventType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEventType: %w", err)
	}
	return oldValue.EventType, nil
}

// ResetEventType resets all changes to the "event_type" field.
func (m *TrajectoryEventMutation) ResetEventType() {
	m.event_type = nil
}

// SetEntityID sets the "entity_id" field.
func (m *TrajectoryEventMutation) SetEntityID(s string) {
	m.entity_id = &s
}

// EntityID returns the value of the "entity_id" field in the mutation.
func (m *TrajectoryEventMutation) EntityID() (r string, exists bool) {
	v := m.entity_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityID returns the old "entity_id" field's value of the TrajectoryEvent entity.
// If the TrajectoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryEventMutation) OldEntityID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityID: %w", err)
	}
	return oldValue.EntityID, nil
}

// ClearEntityID clears the value of the "entity_id" field.
func (m *TrajectoryEventMutation) ClearEntityID() {
	m.entity_id = nil
	m.clearedFields[trajectoryevent.FieldEntityID] = struct{}{}
}

// EntityIDCleared returns if the "entity_id" field was cleared in this mutation.
func (m *TrajectoryEventMutation) EntityIDCleared() bool {
	_, ok := m.clearedFields[trajectoryevent.FieldEntityID]
	return ok
}

// ResetEntityID resets all changes to the "entity_id" field.
func (m *TrajectoryEventMutation) ResetEntityID() {
	m.entity_id = nil
	delete(m.clearedFields, trajectoryevent.FieldEntityID)
}

// SetData sets the "data" field.
func (m *TrajectoryEventMutation) SetData(value map[string]interface{}) {
	m.data = &value
}

// Data returns the value of the "data" field in the mutation.
func (m *TrajectoryEventMutation) Data() (r map[string]interface{}, exists bool) {
	v := m.data
	if v == nil {
		return
	}
	return *v, true
}

// OldData returns the old "data" field's value of the TrajectoryEvent entity.
// If the TrajectoryEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrajectoryEventMutation) OldData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldData: %w", err)
	}
	return oldValue.Data, nil
}

// ClearData clears the value of the "data" field.
func (m *TrajectoryEventMutation) ClearData() {
	m.data = nil
	m.clearedFields[trajectoryevent.FieldData] = struct{}{}
}

// DataCleared returns if the "data" field was cleared in this mutation.
func (m *TrajectoryEventMutation) DataCleared() bool {
	_, ok := m.clearedFields[trajectoryevent.FieldData]
	return ok
}

// ResetData resets all changes to the "data" field.
func (m *TrajectoryEventMutation) ResetData() {
	m.data = nil
	delete(m.clearedFields, trajectoryevent.FieldData)
}

// Where appends a list predicates to the TrajectoryEventMutation builder.
func (m *TrajectoryEventMutation) Where(ps ...predicate.TrajectoryEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrajectoryEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrajectoryEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrajectoryEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrajectoryEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrajectoryEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrajectoryEvent).
func (m *TrajectoryEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrajectoryEventMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.trajectory_id != nil {
		fields = append(fields, trajectoryevent.FieldTrajectoryID)
	}
	if m.sequence_num != nil {
		fields = append(fields, trajectoryevent.FieldSequenceNum)
	}
	if m.timestamp != nil {
		fields = append(fields, trajectoryevent.FieldTimestamp)
	}
	if m.event_type != nil {
		fields = append(fields, trajectoryevent.FieldEventType)
	}
	if m.entity_id != nil {
		fields = append(fields, trajectoryevent.FieldEntityID)
	}
	if m.data != nil {
		fields = append(fields, trajectoryevent.FieldData)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrajectoryEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trajectoryevent.FieldTrajectoryID:
		return m.TrajectoryID()
	case trajectoryevent.FieldSequenceNum:
		return m.SequenceNum()
	case trajectoryevent.FieldTimestamp:
		return m.Timestamp()
	case trajectoryevent.FieldEventType:
		return m.EventType()
	case trajectoryevent.FieldEntityID:
		return m.EntityID()
	case trajectoryevent.FieldData:
		return m.Data()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrajectoryEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trajectoryevent.FieldTrajectoryID:
		return m.OldTrajectoryID(ctx)
	case trajectoryevent.FieldSequenceNum:
		return m.OldSequenceNum(ctx)
	case trajectoryevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case trajectoryevent.FieldEventType:
		return m.OldEventType(ctx)
	case trajectoryevent.FieldEntityID:
		return m.OldEntityID(ctx)
	case trajectoryevent.FieldData:
		return m.OldData(ctx)
	}
	return nil, fmt.Errorf("unknown TrajectoryEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrajectoryEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trajectoryevent.FieldTrajectoryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrajectoryID(v)
		return nil
	case trajectoryevent.FieldSequenceNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequenceNum(v)
		return nil
	case trajectoryevent.FieldTimestamp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case trajectoryevent.FieldEventType:
		v, ok := value.(trajectoryevent.EventType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEventType(v)
		return nil
	case trajectoryevent.FieldEntityID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityID(v)
		return nil
	case trajectoryevent.FieldData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetData(v)
		return nil
	}
	return fmt.Errorf("unknown TrajectoryEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrajectoryEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence_num != nil {
		fields = append(fields, trajectoryevent.FieldSequenceNum)
	}
	if m.addtimestamp != nil {
		fields = append(fields, trajectoryevent.FieldTimestamp)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrajectoryEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trajectoryevent.FieldSequenceNum:
		return m.AddedSequenceNum()
	case trajectoryevent.FieldTimestamp:
		return m.AddedTimestamp()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrajectoryEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trajectoryevent.FieldSequenceNum:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequenceNum(v)
		return nil
	case trajectoryevent.FieldTimestamp:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown TrajectoryEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrajectoryEventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trajectoryevent.FieldEntityID) {
		fields = append(fields, trajectoryevent.FieldEntityID)
	}
	if m.FieldCleared(trajectoryevent.FieldData) {
		fields = append(fields, trajectoryevent.FieldData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrajectoryEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrajectoryEventMutation) ClearField(name string) error {
	switch name {
	case trajectoryevent.FieldEntityID:
		m.ClearEntityID()
		return nil
	case trajectoryevent.FieldData:
		m.ClearData()
		return nil
	}
	return fmt.Errorf("unknown TrajectoryEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrajectoryEventMutation) ResetField(name string) error {
	switch name {
	case trajectoryevent.FieldTrajectoryID:
		m.ResetTrajectoryID()
		return nil
	case trajectoryevent.FieldSequenceNum:
		m.ResetSequenceNum()
		return nil
	case trajectoryevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case trajectoryevent.FieldEventType:
		m.ResetEventType()
		return nil
	case trajectoryevent.FieldEntityID:
		m.ResetEntityID()
		return nil
	case trajectoryevent.FieldData:
		m.ResetData()
		return nil
	}
	return fmt.Errorf("unknown TrajectoryEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrajectoryEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrajectoryEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrajectoryEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrajectoryEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrajectoryEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrajectoryEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrajectoryEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TrajectoryEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrajectoryEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TrajectoryEvent edge %s", name)
}
