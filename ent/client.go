// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/praxishq/praxis/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/praxishq/praxis/ent/contribution"
	"github.com/praxishq/praxis/ent/conversation"
	"github.com/praxishq/praxis/ent/cooccurrence"
	"github.com/praxishq/praxis/ent/entity"
	"github.com/praxishq/praxis/ent/graphedge"
	"github.com/praxishq/praxis/ent/message"
	"github.com/praxishq/praxis/ent/trajectory"
	"github.com/praxishq/praxis/ent/trajectoryevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Contribution is the client for interacting with the Contribution builders.
	Contribution *ContributionClient
	// Conversation is the client for interacting with the Conversation builders.
	Conversation *ConversationClient
	// Cooccurrence is the client for interacting with the Cooccurrence builders.
	Cooccurrence *CooccurrenceClient
	// Entity is the client for interacting with the Entity builders.
	Entity *EntityClient
	// GraphEdge is the client for interacting with the GraphEdge builders.
	GraphEdge *GraphEdgeClient
	// Message is the client for interacting with the Message builders.
	Message *MessageClient
	// Trajectory is the client for interacting with the Trajectory builders.
	Trajectory *TrajectoryClient
	// TrajectoryEvent is the client for interacting with the TrajectoryEvent builders.
	TrajectoryEvent *TrajectoryEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Contribution = NewContributionClient(c.config)
	c.Conversation = NewConversationClient(c.config)
	c.Cooccurrence = NewCooccurrenceClient(c.config)
	c.Entity = NewEntityClient(c.config)
	c.GraphEdge = NewGraphEdgeClient(c.config)
	c.Message = NewMessageClient(c.config)
	c.Trajectory = NewTrajectoryClient(c.config)
	c.TrajectoryEvent = NewTrajectoryEventClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Contribution:    NewContributionClient(cfg),
		Conversation:    NewConversationClient(cfg),
		Cooccurrence:    NewCooccurrenceClient(cfg),
		Entity:          NewEntityClient(cfg),
		GraphEdge:       NewGraphEdgeClient(cfg),
		Message:         NewMessageClient(cfg),
		Trajectory:      NewTrajectoryClient(cfg),
		TrajectoryEvent: NewTrajectoryEventClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:             ctx,
		config:          cfg,
		Contribution:    NewContributionClient(cfg),
		Conversation:    NewConversationClient(cfg),
		Cooccurrence:    NewCooccurrenceClient(cfg),
		Entity:          NewEntityClient(cfg),
		GraphEdge:       NewGraphEdgeClient(cfg),
		Message:         NewMessageClient(cfg),
		Trajectory:      NewTrajectoryClient(cfg),
		TrajectoryEvent: NewTrajectoryEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Contribution.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Contribution, c.Conversation, c.Cooccurrence, c.Entity, c.GraphEdge,
		c.Message, c.Trajectory, c.TrajectoryEvent,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Contribution, c.Conversation, c.Cooccurrence, c.Entity, c.GraphEdge,
		c.Message, c.Trajectory, c.TrajectoryEvent,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ContributionMutation:
		return c.Contribution.mutate(ctx, m)
	case *ConversationMutation:
		return c.Conversation.mutate(ctx, m)
	case *CooccurrenceMutation:
		return c.Cooccurrence.mutate(ctx, m)
	case *EntityMutation:
		return c.Entity.mutate(ctx, m)
	case *GraphEdgeMutation:
		return c.GraphEdge.mutate(ctx, m)
	case *MessageMutation:
		return c.Message.mutate(ctx, m)
	case *TrajectoryMutation:
		return c.Trajectory.mutate(ctx, m)
	case *TrajectoryEventMutation:
		return c.TrajectoryEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ContributionClient is a client for the Contribution schema.
type ContributionClient struct {
	config
}

// NewContributionClient returns a client for the Contribution from the given config.
func NewContributionClient(c config) *ContributionClient {
	return &ContributionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contribution.Hooks(f(g(h())))`.
func (c *ContributionClient) Use(hooks ...Hook) {
	c.hooks.Contribution = append(c.hooks.Contribution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contribution.Intercept(f(g(h())))`.
func (c *ContributionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Contribution = append(c.inters.Contribution, interceptors...)
}

// Create returns a builder for creating a Contribution entity.
func (c *ContributionClient) Create() *ContributionCreate {
	mutation := newContributionMutation(c.config, OpCreate)
	return &ContributionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Contribution entities.
func (c *ContributionClient) CreateBulk(builders ...*ContributionCreate) *ContributionCreateBulk {
	return &ContributionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContributionClient) MapCreateBulk(slice any, setFunc func(*ContributionCreate, int)) *ContributionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContributionCreateBulk{err: fmt.Errorf("calling to ContributionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContributionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContributionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Contribution.
func (c *ContributionClient) Update() *ContributionUpdate {
	mutation := newContributionMutation(c.config, OpUpdate)
	return &ContributionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContributionClient) UpdateOne(_m *Contribution) *ContributionUpdateOne {
	mutation := newContributionMutation(c.config, OpUpdateOne, withContribution(_m))
	return &ContributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContributionClient) UpdateOneID(id string) *ContributionUpdateOne {
	mutation := newContributionMutation(c.config, OpUpdateOne, withContributionID(id))
	return &ContributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Contribution.
func (c *ContributionClient) Delete() *ContributionDelete {
	mutation := newContributionMutation(c.config, OpDelete)
	return &ContributionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContributionClient) DeleteOne(_m *Contribution) *ContributionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContributionClient) DeleteOneID(id string) *ContributionDeleteOne {
	builder := c.Delete().Where(contribution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContributionDeleteOne{builder}
}

// Query returns a query builder for Contribution.
func (c *ContributionClient) Query() *ContributionQuery {
	return &ContributionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContribution},
		inters: c.Interceptors(),
	}
}

// Get returns a Contribution entity by its id.
func (c *ContributionClient) Get(ctx context.Context, id string) (*Contribution, error) {
	return c.Query().Where(contribution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContributionClient) GetX(ctx context.Context, id string) *Contribution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContributionClient) Hooks() []Hook {
	return c.hooks.Contribution
}

// Interceptors returns the client interceptors.
func (c *ContributionClient) Interceptors() []Interceptor {
	return c.inters.Contribution
}

func (c *ContributionClient) mutate(ctx context.Context, m *ContributionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContributionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContributionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContributionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Contribution mutation op: %q", m.Op())
	}
}

// ConversationClient is a client for the Conversation schema.
type ConversationClient struct {
	config
}

// NewConversationClient returns a client for the Conversation from the given config.
func NewConversationClient(c config) *ConversationClient {
	return &ConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversation.Hooks(f(g(h())))`.
func (c *ConversationClient) Use(hooks ...Hook) {
	c.hooks.Conversation = append(c.hooks.Conversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversation.Intercept(f(g(h())))`.
func (c *ConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Conversation = append(c.inters.Conversation, interceptors...)
}

// Create returns a builder for creating a Conversation entity.
func (c *ConversationClient) Create() *ConversationCreate {
	mutation := newConversationMutation(c.config, OpCreate)
	return &ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Conversation entities.
func (c *ConversationClient) CreateBulk(builders ...*ConversationCreate) *ConversationCreateBulk {
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationClient) MapCreateBulk(slice any, setFunc func(*ConversationCreate, int)) *ConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationCreateBulk{err: fmt.Errorf("calling to ConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Conversation.
func (c *ConversationClient) Update() *ConversationUpdate {
	mutation := newConversationMutation(c.config, OpUpdate)
	return &ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationClient) UpdateOne(_m *Conversation) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversation(_m))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationClient) UpdateOneID(id string) *ConversationUpdateOne {
	mutation := newConversationMutation(c.config, OpUpdateOne, withConversationID(id))
	return &ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Conversation.
func (c *ConversationClient) Delete() *ConversationDelete {
	mutation := newConversationMutation(c.config, OpDelete)
	return &ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationClient) DeleteOne(_m *Conversation) *ConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationClient) DeleteOneID(id string) *ConversationDeleteOne {
	builder := c.Delete().Where(conversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationDeleteOne{builder}
}

// Query returns a query builder for Conversation.
func (c *ConversationClient) Query() *ConversationQuery {
	return &ConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a Conversation entity by its id.
func (c *ConversationClient) Get(ctx context.Context, id string) (*Conversation, error) {
	return c.Query().Where(conversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationClient) GetX(ctx context.Context, id string) *Conversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConversationClient) Hooks() []Hook {
	return c.hooks.Conversation
}

// Interceptors returns the client interceptors.
func (c *ConversationClient) Interceptors() []Interceptor {
	return c.inters.Conversation
}

func (c *ConversationClient) mutate(ctx context.Context, m *ConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Conversation mutation op: %q", m.Op())
	}
}

// CooccurrenceClient is a client for the Cooccurrence schema.
type CooccurrenceClient struct {
	config
}

// NewCooccurrenceClient returns a client for the Cooccurrence from the given config.
func NewCooccurrenceClient(c config) *CooccurrenceClient {
	return &CooccurrenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cooccurrence.Hooks(f(g(h())))`.
func (c *CooccurrenceClient) Use(hooks ...Hook) {
	c.hooks.Cooccurrence = append(c.hooks.Cooccurrence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cooccurrence.Intercept(f(g(h())))`.
func (c *CooccurrenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Cooccurrence = append(c.inters.Cooccurrence, interceptors...)
}

// Create returns a builder for creating a Cooccurrence entity.
func (c *CooccurrenceClient) Create() *CooccurrenceCreate {
	mutation := newCooccurrenceMutation(c.config, OpCreate)
	return &CooccurrenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Cooccurrence entities.
func (c *CooccurrenceClient) CreateBulk(builders ...*CooccurrenceCreate) *CooccurrenceCreateBulk {
	return &CooccurrenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CooccurrenceClient) MapCreateBulk(slice any, setFunc func(*CooccurrenceCreate, int)) *CooccurrenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CooccurrenceCreateBulk{err: fmt.Errorf("calling to CooccurrenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CooccurrenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CooccurrenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Cooccurrence.
func (c *CooccurrenceClient) Update() *CooccurrenceUpdate {
	mutation := newCooccurrenceMutation(c.config, OpUpdate)
	return &CooccurrenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CooccurrenceClient) UpdateOne(_m *Cooccurrence) *CooccurrenceUpdateOne {
	mutation := newCooccurrenceMutation(c.config, OpUpdateOne, withCooccurrence(_m))
	return &CooccurrenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CooccurrenceClient) UpdateOneID(id string) *CooccurrenceUpdateOne {
	mutation := newCooccurrenceMutation(c.config, OpUpdateOne, withCooccurrenceID(id))
	return &CooccurrenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Cooccurrence.
func (c *CooccurrenceClient) Delete() *CooccurrenceDelete {
	mutation := newCooccurrenceMutation(c.config, OpDelete)
	return &CooccurrenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CooccurrenceClient) DeleteOne(_m *Cooccurrence) *CooccurrenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CooccurrenceClient) DeleteOneID(id string) *CooccurrenceDeleteOne {
	builder := c.Delete().Where(cooccurrence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CooccurrenceDeleteOne{builder}
}

// Query returns a query builder for Cooccurrence.
func (c *CooccurrenceClient) Query() *CooccurrenceQuery {
	return &CooccurrenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCooccurrence},
		inters: c.Interceptors(),
	}
}

// Get returns a Cooccurrence entity by its id.
func (c *CooccurrenceClient) Get(ctx context.Context, id string) (*Cooccurrence, error) {
	return c.Query().Where(cooccurrence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CooccurrenceClient) GetX(ctx context.Context, id string) *Cooccurrence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CooccurrenceClient) Hooks() []Hook {
	return c.hooks.Cooccurrence
}

// Interceptors returns the client interceptors.
func (c *CooccurrenceClient) Interceptors() []Interceptor {
	return c.inters.Cooccurrence
}

func (c *CooccurrenceClient) mutate(ctx context.Context, m *CooccurrenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CooccurrenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CooccurrenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CooccurrenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CooccurrenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Cooccurrence mutation op: %q", m.Op())
	}
}

// EntityClient is a client for the Entity schema.
type EntityClient struct {
	config
}

// NewEntityClient returns a client for the Entity from the given config.
func NewEntityClient(c config) *EntityClient {
	return &EntityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entity.Hooks(f(g(h())))`.
func (c *EntityClient) Use(hooks ...Hook) {
	c.hooks.Entity = append(c.hooks.Entity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entity.Intercept(f(g(h())))`.
func (c *EntityClient) Intercept(interceptors ...Interceptor) {
	c.inters.Entity = append(c.inters.Entity, interceptors...)
}

// Create returns a builder for creating a Entity entity.
func (c *EntityClient) Create() *EntityCreate {
	mutation := newEntityMutation(c.config, OpCreate)
	return &EntityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Entity entities.
func (c *EntityClient) CreateBulk(builders ...*EntityCreate) *EntityCreateBulk {
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityClient) MapCreateBulk(slice any, setFunc func(*EntityCreate, int)) *EntityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityCreateBulk{err: fmt.Errorf("calling to EntityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Entity.
func (c *EntityClient) Update() *EntityUpdate {
	mutation := newEntityMutation(c.config, OpUpdate)
	return &EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityClient) UpdateOne(_m *Entity) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntity(_m))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityClient) UpdateOneID(id string) *EntityUpdateOne {
	mutation := newEntityMutation(c.config, OpUpdateOne, withEntityID(id))
	return &EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Entity.
func (c *EntityClient) Delete() *EntityDelete {
	mutation := newEntityMutation(c.config, OpDelete)
	return &EntityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityClient) DeleteOne(_m *Entity) *EntityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityClient) DeleteOneID(id string) *EntityDeleteOne {
	builder := c.Delete().Where(entity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityDeleteOne{builder}
}

// Query returns a query builder for Entity.
func (c *EntityClient) Query() *EntityQuery {
	return &EntityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntity},
		inters: c.Interceptors(),
	}
}

// Get returns a Entity entity by its id.
func (c *EntityClient) Get(ctx context.Context, id string) (*Entity, error) {
	return c.Query().Where(entity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityClient) GetX(ctx context.Context, id string) *Entity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EntityClient) Hooks() []Hook {
	return c.hooks.Entity
}

// Interceptors returns the client interceptors.
func (c *EntityClient) Interceptors() []Interceptor {
	return c.inters.Entity
}

func (c *EntityClient) mutate(ctx context.Context, m *EntityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Entity mutation op: %q", m.Op())
	}
}

// GraphEdgeClient is a client for the GraphEdge schema.
type GraphEdgeClient struct {
	config
}

// NewGraphEdgeClient returns a client for the GraphEdge from the given config.
func NewGraphEdgeClient(c config) *GraphEdgeClient {
	return &GraphEdgeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `graphedge.Hooks(f(g(h())))`.
func (c *GraphEdgeClient) Use(hooks ...Hook) {
	c.hooks.GraphEdge = append(c.hooks.GraphEdge, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `graphedge.Intercept(f(g(h())))`.
func (c *GraphEdgeClient) Intercept(interceptors ...Interceptor) {
	c.inters.GraphEdge = append(c.inters.GraphEdge, interceptors...)
}

// Create returns a builder for creating a GraphEdge entity.
func (c *GraphEdgeClient) Create() *GraphEdgeCreate {
	mutation := newGraphEdgeMutation(c.config, OpCreate)
	return &GraphEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GraphEdge entities.
func (c *GraphEdgeClient) CreateBulk(builders ...*GraphEdgeCreate) *GraphEdgeCreateBulk {
	return &GraphEdgeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GraphEdgeClient) MapCreateBulk(slice any, setFunc func(*GraphEdgeCreate, int)) *GraphEdgeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GraphEdgeCreateBulk{err: fmt.Errorf("calling to GraphEdgeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GraphEdgeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GraphEdgeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GraphEdge.
func (c *GraphEdgeClient) Update() *GraphEdgeUpdate {
	mutation := newGraphEdgeMutation(c.config, OpUpdate)
	return &GraphEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GraphEdgeClient) UpdateOne(_m *GraphEdge) *GraphEdgeUpdateOne {
	mutation := newGraphEdgeMutation(c.config, OpUpdateOne, withGraphEdge(_m))
	return &GraphEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GraphEdgeClient) UpdateOneID(id string) *GraphEdgeUpdateOne {
	mutation := newGraphEdgeMutation(c.config, OpUpdateOne, withGraphEdgeID(id))
	return &GraphEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GraphEdge.
func (c *GraphEdgeClient) Delete() *GraphEdgeDelete {
	mutation := newGraphEdgeMutation(c.config, OpDelete)
	return &GraphEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GraphEdgeClient) DeleteOne(_m *GraphEdge) *GraphEdgeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GraphEdgeClient) DeleteOneID(id string) *GraphEdgeDeleteOne {
	builder := c.Delete().Where(graphedge.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GraphEdgeDeleteOne{builder}
}

// Query returns a query builder for GraphEdge.
func (c *GraphEdgeClient) Query() *GraphEdgeQuery {
	return &GraphEdgeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGraphEdge},
		inters: c.Interceptors(),
	}
}

// Get returns a GraphEdge entity by its id.
func (c *GraphEdgeClient) Get(ctx context.Context, id string) (*GraphEdge, error) {
	return c.Query().Where(graphedge.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GraphEdgeClient) GetX(ctx context.Context, id string) *GraphEdge {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GraphEdgeClient) Hooks() []Hook {
	return c.hooks.GraphEdge
}

// Interceptors returns the client interceptors.
func (c *GraphEdgeClient) Interceptors() []Interceptor {
	return c.inters.GraphEdge
}

func (c *GraphEdgeClient) mutate(ctx context.Context, m *GraphEdgeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GraphEdgeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GraphEdgeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GraphEdgeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GraphEdgeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GraphEdge mutation op: %q", m.Op())
	}
}

// MessageClient is a client for the Message schema.
type MessageClient struct {
	config
}

// NewMessageClient returns a client for the Message from the given config.
func NewMessageClient(c config) *MessageClient {
	return &MessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `message.Hooks(f(g(h())))`.
func (c *MessageClient) Use(hooks ...Hook) {
	c.hooks.Message = append(c.hooks.Message, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `message.Intercept(f(g(h())))`.
func (c *MessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Message = append(c.inters.Message, interceptors...)
}

// Create returns a builder for creating a Message entity.
func (c *MessageClient) Create() *MessageCreate {
	mutation := newMessageMutation(c.config, OpCreate)
	return &MessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Message entities.
func (c *MessageClient) CreateBulk(builders ...*MessageCreate) *MessageCreateBulk {
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MessageClient) MapCreateBulk(slice any, setFunc func(*MessageCreate, int)) *MessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MessageCreateBulk{err: fmt.Errorf("calling to MessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Message.
func (c *MessageClient) Update() *MessageUpdate {
	mutation := newMessageMutation(c.config, OpUpdate)
	return &MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MessageClient) UpdateOne(_m *Message) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessage(_m))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MessageClient) UpdateOneID(id string) *MessageUpdateOne {
	mutation := newMessageMutation(c.config, OpUpdateOne, withMessageID(id))
	return &MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Message.
func (c *MessageClient) Delete() *MessageDelete {
	mutation := newMessageMutation(c.config, OpDelete)
	return &MessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MessageClient) DeleteOne(_m *Message) *MessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MessageClient) DeleteOneID(id string) *MessageDeleteOne {
	builder := c.Delete().Where(message.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MessageDeleteOne{builder}
}

// Query returns a query builder for Message.
func (c *MessageClient) Query() *MessageQuery {
	return &MessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a Message entity by its id.
func (c *MessageClient) Get(ctx context.Context, id string) (*Message, error) {
	return c.Query().Where(message.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MessageClient) GetX(ctx context.Context, id string) *Message {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MessageClient) Hooks() []Hook {
	return c.hooks.Message
}

// Interceptors returns the client interceptors.
func (c *MessageClient) Interceptors() []Interceptor {
	return c.inters.Message
}

func (c *MessageClient) mutate(ctx context.Context, m *MessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Message mutation op: %q", m.Op())
	}
}

// TrajectoryClient is a client for the Trajectory schema.
type TrajectoryClient struct {
	config
}

// NewTrajectoryClient returns a client for the Trajectory from the given config.
func NewTrajectoryClient(c config) *TrajectoryClient {
	return &TrajectoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trajectory.Hooks(f(g(h())))`.
func (c *TrajectoryClient) Use(hooks ...Hook) {
	c.hooks.Trajectory = append(c.hooks.Trajectory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trajectory.Intercept(f(g(h())))`.
func (c *TrajectoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.Trajectory = append(c.inters.Trajectory, interceptors...)
}

// Create returns a builder for creating a Trajectory entity.
func (c *TrajectoryClient) Create() *TrajectoryCreate {
	mutation := newTrajectoryMutation(c.config, OpCreate)
	return &TrajectoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Trajectory entities.
func (c *TrajectoryClient) CreateBulk(builders ...*TrajectoryCreate) *TrajectoryCreateBulk {
	return &TrajectoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrajectoryClient) MapCreateBulk(slice any, setFunc func(*TrajectoryCreate, int)) *TrajectoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrajectoryCreateBulk{err: fmt.Errorf("calling to TrajectoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrajectoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrajectoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Trajectory.
func (c *TrajectoryClient) Update() *TrajectoryUpdate {
	mutation := newTrajectoryMutation(c.config, OpUpdate)
	return &TrajectoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrajectoryClient) UpdateOne(_m *Trajectory) *TrajectoryUpdateOne {
	mutation := newTrajectoryMutation(c.config, OpUpdateOne, withTrajectory(_m))
	return &TrajectoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrajectoryClient) UpdateOneID(id string) *TrajectoryUpdateOne {
	mutation := newTrajectoryMutation(c.config, OpUpdateOne, withTrajectoryID(id))
	return &TrajectoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Trajectory.
func (c *TrajectoryClient) Delete() *TrajectoryDelete {
	mutation := newTrajectoryMutation(c.config, OpDelete)
	return &TrajectoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrajectoryClient) DeleteOne(_m *Trajectory) *TrajectoryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrajectoryClient) DeleteOneID(id string) *TrajectoryDeleteOne {
	builder := c.Delete().Where(trajectory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrajectoryDeleteOne{builder}
}

// Query returns a query builder for Trajectory.
func (c *TrajectoryClient) Query() *TrajectoryQuery {
	return &TrajectoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrajectory},
		inters: c.Interceptors(),
	}
}

// Get returns a Trajectory entity by its id.
func (c *TrajectoryClient) Get(ctx context.Context, id string) (*Trajectory, error) {
	return c.Query().Where(trajectory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrajectoryClient) GetX(ctx context.Context, id string) *Trajectory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TrajectoryClient) Hooks() []Hook {
	return c.hooks.Trajectory
}

// Interceptors returns the client interceptors.
func (c *TrajectoryClient) Interceptors() []Interceptor {
	return c.inters.Trajectory
}

func (c *TrajectoryClient) mutate(ctx context.Context, m *TrajectoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrajectoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrajectoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrajectoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrajectoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Trajectory mutation op: %q", m.Op())
	}
}

// TrajectoryEventClient is a client for the TrajectoryEvent schema.
type TrajectoryEventClient struct {
	config
}

// NewTrajectoryEventClient returns a client for the TrajectoryEvent from the given config.
func NewTrajectoryEventClient(c config) *TrajectoryEventClient {
	return &TrajectoryEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `trajectoryevent.Hooks(f(g(h())))`.
func (c *TrajectoryEventClient) Use(hooks ...Hook) {
	c.hooks.TrajectoryEvent = append(c.hooks.TrajectoryEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `trajectoryevent.Intercept(f(g(h())))`.
func (c *TrajectoryEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.TrajectoryEvent = append(c.inters.TrajectoryEvent, interceptors...)
}

// Create returns a builder for creating a TrajectoryEvent entity.
func (c *TrajectoryEventClient) Create() *TrajectoryEventCreate {
	mutation := newTrajectoryEventMutation(c.config, OpCreate)
	return &TrajectoryEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TrajectoryEvent entities.
func (c *TrajectoryEventClient) CreateBulk(builders ...*TrajectoryEventCreate) *TrajectoryEventCreateBulk {
	return &TrajectoryEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TrajectoryEventClient) MapCreateBulk(slice any, setFunc func(*TrajectoryEventCreate, int)) *TrajectoryEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TrajectoryEventCreateBulk{err: fmt.Errorf("calling to TrajectoryEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TrajectoryEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TrajectoryEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TrajectoryEvent.
func (c *TrajectoryEventClient) Update() *TrajectoryEventUpdate {
	mutation := newTrajectoryEventMutation(c.config, OpUpdate)
	return &TrajectoryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TrajectoryEventClient) UpdateOne(_m *TrajectoryEvent) *TrajectoryEventUpdateOne {
	mutation := newTrajectoryEventMutation(c.config, OpUpdateOne, withTrajectoryEvent(_m))
	return &TrajectoryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TrajectoryEventClient) UpdateOneID(id string) *TrajectoryEventUpdateOne {
	mutation := newTrajectoryEventMutation(c.config, OpUpdateOne, withTrajectoryEventID(id))
	return &TrajectoryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TrajectoryEvent.
func (c *TrajectoryEventClient) Delete() *TrajectoryEventDelete {
	mutation := newTrajectoryEventMutation(c.config, OpDelete)
	return &TrajectoryEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TrajectoryEventClient) DeleteOne(_m *TrajectoryEvent) *TrajectoryEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TrajectoryEventClient) DeleteOneID(id string) *TrajectoryEventDeleteOne {
	builder := c.Delete().Where(trajectoryevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TrajectoryEventDeleteOne{builder}
}

// Query returns a query builder for TrajectoryEvent.
func (c *TrajectoryEventClient) Query() *TrajectoryEventQuery {
	return &TrajectoryEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTrajectoryEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a TrajectoryEvent entity by its id.
func (c *TrajectoryEventClient) Get(ctx context.Context, id string) (*TrajectoryEvent, error) {
	return c.Query().Where(trajectoryevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TrajectoryEventClient) GetX(ctx context.Context, id string) *TrajectoryEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TrajectoryEventClient) Hooks() []Hook {
	return c.hooks.TrajectoryEvent
}

// Interceptors returns the client interceptors.
func (c *TrajectoryEventClient) Interceptors() []Interceptor {
	return c.inters.TrajectoryEvent
}

func (c *TrajectoryEventClient) mutate(ctx context.Context, m *TrajectoryEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TrajectoryEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TrajectoryEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TrajectoryEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TrajectoryEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TrajectoryEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Contribution, Conversation, Cooccurrence, Entity, GraphEdge, Message,
		Trajectory, TrajectoryEvent []ent.Hook
	}
	inters struct {
		Contribution, Conversation, Cooccurrence, Entity, GraphEdge, Message,
		Trajectory, TrajectoryEvent []ent.Interceptor
	}
)
