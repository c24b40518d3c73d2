// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/punchd-io/punchd/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/punchd-io/punchd/ent/agentsession"
	"github.com/punchd-io/punchd/ent/childrelation"
	"github.com/punchd-io/punchd/ent/punch"
	"github.com/punchd-io/punchd/ent/punchcardrequirement"
	"github.com/punchd-io/punchd/ent/sessionmessage"
	"github.com/punchd-io/punchd/ent/toolcall"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AgentSession is the client for interacting with the AgentSession builders.
	AgentSession *AgentSessionClient
	// ChildRelation is the client for interacting with the ChildRelation builders.
	ChildRelation *ChildRelationClient
	// Punch is the client for interacting with the Punch builders.
	Punch *PunchClient
	// PunchCardRequirement is the client for interacting with the PunchCardRequirement builders.
	PunchCardRequirement *PunchCardRequirementClient
	// SessionMessage is the client for interacting with the SessionMessage builders.
	SessionMessage *SessionMessageClient
	// ToolCall is the client for interacting with the ToolCall builders.
	ToolCall *ToolCallClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AgentSession = NewAgentSessionClient(c.config)
	c.ChildRelation = NewChildRelationClient(c.config)
	c.Punch = NewPunchClient(c.config)
	c.PunchCardRequirement = NewPunchCardRequirementClient(c.config)
	c.SessionMessage = NewSessionMessageClient(c.config)
	c.ToolCall = NewToolCallClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		AgentSession:         NewAgentSessionClient(cfg),
		ChildRelation:        NewChildRelationClient(cfg),
		Punch:                NewPunchClient(cfg),
		PunchCardRequirement: NewPunchCardRequirementClient(cfg),
		SessionMessage:       NewSessionMessageClient(cfg),
		ToolCall:             NewToolCallClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		AgentSession:         NewAgentSessionClient(cfg),
		ChildRelation:        NewChildRelationClient(cfg),
		Punch:                NewPunchClient(cfg),
		PunchCardRequirement: NewPunchCardRequirementClient(cfg),
		SessionMessage:       NewSessionMessageClient(cfg),
		ToolCall:             NewToolCallClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AgentSession.
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
		c.AgentSession, c.ChildRelation, c.Punch, c.PunchCardRequirement,
		c.SessionMessage, c.ToolCall,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AgentSession, c.ChildRelation, c.Punch, c.PunchCardRequirement,
		c.SessionMessage, c.ToolCall,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentSessionMutation:
		return c.AgentSession.mutate(ctx, m)
	case *ChildRelationMutation:
		return c.ChildRelation.mutate(ctx, m)
	case *PunchMutation:
		return c.Punch.mutate(ctx, m)
	case *PunchCardRequirementMutation:
		return c.PunchCardRequirement.mutate(ctx, m)
	case *SessionMessageMutation:
		return c.SessionMessage.mutate(ctx, m)
	case *ToolCallMutation:
		return c.ToolCall.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentSessionClient is a client for the AgentSession schema.
type AgentSessionClient struct {
	config
}

// NewAgentSessionClient returns a client for the AgentSession from the given config.
func NewAgentSessionClient(c config) *AgentSessionClient {
	return &AgentSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agentsession.Hooks(f(g(h())))`.
func (c *AgentSessionClient) Use(hooks ...Hook) {
	c.hooks.AgentSession = append(c.hooks.AgentSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agentsession.Intercept(f(g(h())))`.
func (c *AgentSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentSession = append(c.inters.AgentSession, interceptors...)
}

// Create returns a builder for creating a AgentSession entity.
func (c *AgentSessionClient) Create() *AgentSessionCreate {
	mutation := newAgentSessionMutation(c.config, OpCreate)
	return &AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentSession entities.
func (c *AgentSessionClient) CreateBulk(builders ...*AgentSessionCreate) *AgentSessionCreateBulk {
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentSessionClient) MapCreateBulk(slice any, setFunc func(*AgentSessionCreate, int)) *AgentSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentSessionCreateBulk{err: fmt.Errorf("calling to AgentSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentSession.
func (c *AgentSessionClient) Update() *AgentSessionUpdate {
	mutation := newAgentSessionMutation(c.config, OpUpdate)
	return &AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentSessionClient) UpdateOne(_m *AgentSession) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSession(_m))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentSessionClient) UpdateOneID(id string) *AgentSessionUpdateOne {
	mutation := newAgentSessionMutation(c.config, OpUpdateOne, withAgentSessionID(id))
	return &AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentSession.
func (c *AgentSessionClient) Delete() *AgentSessionDelete {
	mutation := newAgentSessionMutation(c.config, OpDelete)
	return &AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentSessionClient) DeleteOne(_m *AgentSession) *AgentSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentSessionClient) DeleteOneID(id string) *AgentSessionDeleteOne {
	builder := c.Delete().Where(agentsession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentSessionDeleteOne{builder}
}

// Query returns a query builder for AgentSession.
func (c *AgentSessionClient) Query() *AgentSessionQuery {
	return &AgentSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentSession},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentSession entity by its id.
func (c *AgentSessionClient) Get(ctx context.Context, id string) (*AgentSession, error) {
	return c.Query().Where(agentsession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentSessionClient) GetX(ctx context.Context, id string) *AgentSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AgentSessionClient) Hooks() []Hook {
	return c.hooks.AgentSession
}

// Interceptors returns the client interceptors.
func (c *AgentSessionClient) Interceptors() []Interceptor {
	return c.inters.AgentSession
}

func (c *AgentSessionClient) mutate(ctx context.Context, m *AgentSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentSession mutation op: %q", m.Op())
	}
}

// ChildRelationClient is a client for the ChildRelation schema.
type ChildRelationClient struct {
	config
}

// NewChildRelationClient returns a client for the ChildRelation from the given config.
func NewChildRelationClient(c config) *ChildRelationClient {
	return &ChildRelationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `childrelation.Hooks(f(g(h())))`.
func (c *ChildRelationClient) Use(hooks ...Hook) {
	c.hooks.ChildRelation = append(c.hooks.ChildRelation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `childrelation.Intercept(f(g(h())))`.
func (c *ChildRelationClient) Intercept(interceptors ...Interceptor) {
	c.inters.ChildRelation = append(c.inters.ChildRelation, interceptors...)
}

// Create returns a builder for creating a ChildRelation entity.
func (c *ChildRelationClient) Create() *ChildRelationCreate {
	mutation := newChildRelationMutation(c.config, OpCreate)
	return &ChildRelationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ChildRelation entities.
func (c *ChildRelationClient) CreateBulk(builders ...*ChildRelationCreate) *ChildRelationCreateBulk {
	return &ChildRelationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ChildRelationClient) MapCreateBulk(slice any, setFunc func(*ChildRelationCreate, int)) *ChildRelationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ChildRelationCreateBulk{err: fmt.Errorf("calling to ChildRelationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ChildRelationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ChildRelationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ChildRelation.
func (c *ChildRelationClient) Update() *ChildRelationUpdate {
	mutation := newChildRelationMutation(c.config, OpUpdate)
	return &ChildRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ChildRelationClient) UpdateOne(_m *ChildRelation) *ChildRelationUpdateOne {
	mutation := newChildRelationMutation(c.config, OpUpdateOne, withChildRelation(_m))
	return &ChildRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ChildRelationClient) UpdateOneID(id string) *ChildRelationUpdateOne {
	mutation := newChildRelationMutation(c.config, OpUpdateOne, withChildRelationID(id))
	return &ChildRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ChildRelation.
func (c *ChildRelationClient) Delete() *ChildRelationDelete {
	mutation := newChildRelationMutation(c.config, OpDelete)
	return &ChildRelationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ChildRelationClient) DeleteOne(_m *ChildRelation) *ChildRelationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ChildRelationClient) DeleteOneID(id string) *ChildRelationDeleteOne {
	builder := c.Delete().Where(childrelation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ChildRelationDeleteOne{builder}
}

// Query returns a query builder for ChildRelation.
func (c *ChildRelationClient) Query() *ChildRelationQuery {
	return &ChildRelationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeChildRelation},
		inters: c.Interceptors(),
	}
}

// Get returns a ChildRelation entity by its id.
func (c *ChildRelationClient) Get(ctx context.Context, id string) (*ChildRelation, error) {
	return c.Query().Where(childrelation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ChildRelationClient) GetX(ctx context.Context, id string) *ChildRelation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ChildRelationClient) Hooks() []Hook {
	return c.hooks.ChildRelation
}

// Interceptors returns the client interceptors.
func (c *ChildRelationClient) Interceptors() []Interceptor {
	return c.inters.ChildRelation
}

func (c *ChildRelationClient) mutate(ctx context.Context, m *ChildRelationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ChildRelationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ChildRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ChildRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ChildRelationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ChildRelation mutation op: %q", m.Op())
	}
}

// PunchClient is a client for the Punch schema.
type PunchClient struct {
	config
}

// NewPunchClient returns a client for the Punch from the given config.
func NewPunchClient(c config) *PunchClient {
	return &PunchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `punch.Hooks(f(g(h())))`.
func (c *PunchClient) Use(hooks ...Hook) {
	c.hooks.Punch = append(c.hooks.Punch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `punch.Intercept(f(g(h())))`.
func (c *PunchClient) Intercept(interceptors ...Interceptor) {
	c.inters.Punch = append(c.inters.Punch, interceptors...)
}

// Create returns a builder for creating a Punch entity.
func (c *PunchClient) Create() *PunchCreate {
	mutation := newPunchMutation(c.config, OpCreate)
	return &PunchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Punch entities.
func (c *PunchClient) CreateBulk(builders ...*PunchCreate) *PunchCreateBulk {
	return &PunchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PunchClient) MapCreateBulk(slice any, setFunc func(*PunchCreate, int)) *PunchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PunchCreateBulk{err: fmt.Errorf("calling to PunchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PunchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PunchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Punch.
func (c *PunchClient) Update() *PunchUpdate {
	mutation := newPunchMutation(c.config, OpUpdate)
	return &PunchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PunchClient) UpdateOne(_m *Punch) *PunchUpdateOne {
	mutation := newPunchMutation(c.config, OpUpdateOne, withPunch(_m))
	return &PunchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PunchClient) UpdateOneID(id string) *PunchUpdateOne {
	mutation := newPunchMutation(c.config, OpUpdateOne, withPunchID(id))
	return &PunchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Punch.
func (c *PunchClient) Delete() *PunchDelete {
	mutation := newPunchMutation(c.config, OpDelete)
	return &PunchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PunchClient) DeleteOne(_m *Punch) *PunchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PunchClient) DeleteOneID(id string) *PunchDeleteOne {
	builder := c.Delete().Where(punch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PunchDeleteOne{builder}
}

// Query returns a query builder for Punch.
func (c *PunchClient) Query() *PunchQuery {
	return &PunchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePunch},
		inters: c.Interceptors(),
	}
}

// Get returns a Punch entity by its id.
func (c *PunchClient) Get(ctx context.Context, id string) (*Punch, error) {
	return c.Query().Where(punch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PunchClient) GetX(ctx context.Context, id string) *Punch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PunchClient) Hooks() []Hook {
	return c.hooks.Punch
}

// Interceptors returns the client interceptors.
func (c *PunchClient) Interceptors() []Interceptor {
	return c.inters.Punch
}

func (c *PunchClient) mutate(ctx context.Context, m *PunchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PunchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PunchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PunchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PunchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Punch mutation op: %q", m.Op())
	}
}

// PunchCardRequirementClient is a client for the PunchCardRequirement schema.
type PunchCardRequirementClient struct {
	config
}

// NewPunchCardRequirementClient returns a client for the PunchCardRequirement from the given config.
func NewPunchCardRequirementClient(c config) *PunchCardRequirementClient {
	return &PunchCardRequirementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `punchcardrequirement.Hooks(f(g(h())))`.
func (c *PunchCardRequirementClient) Use(hooks ...Hook) {
	c.hooks.PunchCardRequirement = append(c.hooks.PunchCardRequirement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `punchcardrequirement.Intercept(f(g(h())))`.
func (c *PunchCardRequirementClient) Intercept(interceptors ...Interceptor) {
	c.inters.PunchCardRequirement = append(c.inters.PunchCardRequirement, interceptors...)
}

// Create returns a builder for creating a PunchCardRequirement entity.
func (c *PunchCardRequirementClient) Create() *PunchCardRequirementCreate {
	mutation := newPunchCardRequirementMutation(c.config, OpCreate)
	return &PunchCardRequirementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PunchCardRequirement entities.
func (c *PunchCardRequirementClient) CreateBulk(builders ...*PunchCardRequirementCreate) *PunchCardRequirementCreateBulk {
	return &PunchCardRequirementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PunchCardRequirementClient) MapCreateBulk(slice any, setFunc func(*PunchCardRequirementCreate, int)) *PunchCardRequirementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PunchCardRequirementCreateBulk{err: fmt.Errorf("calling to PunchCardRequirementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PunchCardRequirementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PunchCardRequirementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PunchCardRequirement.
func (c *PunchCardRequirementClient) Update() *PunchCardRequirementUpdate {
	mutation := newPunchCardRequirementMutation(c.config, OpUpdate)
	return &PunchCardRequirementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PunchCardRequirementClient) UpdateOne(_m *PunchCardRequirement) *PunchCardRequirementUpdateOne {
	mutation := newPunchCardRequirementMutation(c.config, OpUpdateOne, withPunchCardRequirement(_m))
	return &PunchCardRequirementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PunchCardRequirementClient) UpdateOneID(id string) *PunchCardRequirementUpdateOne {
	mutation := newPunchCardRequirementMutation(c.config, OpUpdateOne, withPunchCardRequirementID(id))
	return &PunchCardRequirementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PunchCardRequirement.
func (c *PunchCardRequirementClient) Delete() *PunchCardRequirementDelete {
	mutation := newPunchCardRequirementMutation(c.config, OpDelete)
	return &PunchCardRequirementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PunchCardRequirementClient) DeleteOne(_m *PunchCardRequirement) *PunchCardRequirementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PunchCardRequirementClient) DeleteOneID(id string) *PunchCardRequirementDeleteOne {
	builder := c.Delete().Where(punchcardrequirement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PunchCardRequirementDeleteOne{builder}
}

// Query returns a query builder for PunchCardRequirement.
func (c *PunchCardRequirementClient) Query() *PunchCardRequirementQuery {
	return &PunchCardRequirementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePunchCardRequirement},
		inters: c.Interceptors(),
	}
}

// Get returns a PunchCardRequirement entity by its id.
func (c *PunchCardRequirementClient) Get(ctx context.Context, id string) (*PunchCardRequirement, error) {
	return c.Query().Where(punchcardrequirement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PunchCardRequirementClient) GetX(ctx context.Context, id string) *PunchCardRequirement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PunchCardRequirementClient) Hooks() []Hook {
	return c.hooks.PunchCardRequirement
}

// Interceptors returns the client interceptors.
func (c *PunchCardRequirementClient) Interceptors() []Interceptor {
	return c.inters.PunchCardRequirement
}

func (c *PunchCardRequirementClient) mutate(ctx context.Context, m *PunchCardRequirementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PunchCardRequirementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PunchCardRequirementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PunchCardRequirementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PunchCardRequirementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PunchCardRequirement mutation op: %q", m.Op())
	}
}

// SessionMessageClient is a client for the SessionMessage schema.
type SessionMessageClient struct {
	config
}

// NewSessionMessageClient returns a client for the SessionMessage from the given config.
func NewSessionMessageClient(c config) *SessionMessageClient {
	return &SessionMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionmessage.Hooks(f(g(h())))`.
func (c *SessionMessageClient) Use(hooks ...Hook) {
	c.hooks.SessionMessage = append(c.hooks.SessionMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionmessage.Intercept(f(g(h())))`.
func (c *SessionMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionMessage = append(c.inters.SessionMessage, interceptors...)
}

// Create returns a builder for creating a SessionMessage entity.
func (c *SessionMessageClient) Create() *SessionMessageCreate {
	mutation := newSessionMessageMutation(c.config, OpCreate)
	return &SessionMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionMessage entities.
func (c *SessionMessageClient) CreateBulk(builders ...*SessionMessageCreate) *SessionMessageCreateBulk {
	return &SessionMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionMessageClient) MapCreateBulk(slice any, setFunc func(*SessionMessageCreate, int)) *SessionMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionMessageCreateBulk{err: fmt.Errorf("calling to SessionMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionMessage.
func (c *SessionMessageClient) Update() *SessionMessageUpdate {
	mutation := newSessionMessageMutation(c.config, OpUpdate)
	return &SessionMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionMessageClient) UpdateOne(_m *SessionMessage) *SessionMessageUpdateOne {
	mutation := newSessionMessageMutation(c.config, OpUpdateOne, withSessionMessage(_m))
	return &SessionMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionMessageClient) UpdateOneID(id string) *SessionMessageUpdateOne {
	mutation := newSessionMessageMutation(c.config, OpUpdateOne, withSessionMessageID(id))
	return &SessionMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionMessage.
func (c *SessionMessageClient) Delete() *SessionMessageDelete {
	mutation := newSessionMessageMutation(c.config, OpDelete)
	return &SessionMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionMessageClient) DeleteOne(_m *SessionMessage) *SessionMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionMessageClient) DeleteOneID(id string) *SessionMessageDeleteOne {
	builder := c.Delete().Where(sessionmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionMessageDeleteOne{builder}
}

// Query returns a query builder for SessionMessage.
func (c *SessionMessageClient) Query() *SessionMessageQuery {
	return &SessionMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionMessage entity by its id.
func (c *SessionMessageClient) Get(ctx context.Context, id string) (*SessionMessage, error) {
	return c.Query().Where(sessionmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionMessageClient) GetX(ctx context.Context, id string) *SessionMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionMessageClient) Hooks() []Hook {
	return c.hooks.SessionMessage
}

// Interceptors returns the client interceptors.
func (c *SessionMessageClient) Interceptors() []Interceptor {
	return c.inters.SessionMessage
}

func (c *SessionMessageClient) mutate(ctx context.Context, m *SessionMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionMessage mutation op: %q", m.Op())
	}
}

// ToolCallClient is a client for the ToolCall schema.
type ToolCallClient struct {
	config
}

// NewToolCallClient returns a client for the ToolCall from the given config.
func NewToolCallClient(c config) *ToolCallClient {
	return &ToolCallClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolcall.Hooks(f(g(h())))`.
func (c *ToolCallClient) Use(hooks ...Hook) {
	c.hooks.ToolCall = append(c.hooks.ToolCall, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolcall.Intercept(f(g(h())))`.
func (c *ToolCallClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolCall = append(c.inters.ToolCall, interceptors...)
}

// Create returns a builder for creating a ToolCall entity.
func (c *ToolCallClient) Create() *ToolCallCreate {
	mutation := newToolCallMutation(c.config, OpCreate)
	return &ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolCall entities.
func (c *ToolCallClient) CreateBulk(builders ...*ToolCallCreate) *ToolCallCreateBulk {
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolCallClient) MapCreateBulk(slice any, setFunc func(*ToolCallCreate, int)) *ToolCallCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolCallCreateBulk{err: fmt.Errorf("calling to ToolCallClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolCallCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolCallCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolCall.
func (c *ToolCallClient) Update() *ToolCallUpdate {
	mutation := newToolCallMutation(c.config, OpUpdate)
	return &ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolCallClient) UpdateOne(_m *ToolCall) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCall(_m))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolCallClient) UpdateOneID(id string) *ToolCallUpdateOne {
	mutation := newToolCallMutation(c.config, OpUpdateOne, withToolCallID(id))
	return &ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolCall.
func (c *ToolCallClient) Delete() *ToolCallDelete {
	mutation := newToolCallMutation(c.config, OpDelete)
	return &ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolCallClient) DeleteOne(_m *ToolCall) *ToolCallDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolCallClient) DeleteOneID(id string) *ToolCallDeleteOne {
	builder := c.Delete().Where(toolcall.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolCallDeleteOne{builder}
}

// Query returns a query builder for ToolCall.
func (c *ToolCallClient) Query() *ToolCallQuery {
	return &ToolCallQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolCall},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolCall entity by its id.
func (c *ToolCallClient) Get(ctx context.Context, id string) (*ToolCall, error) {
	return c.Query().Where(toolcall.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolCallClient) GetX(ctx context.Context, id string) *ToolCall {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ToolCallClient) Hooks() []Hook {
	return c.hooks.ToolCall
}

// Interceptors returns the client interceptors.
func (c *ToolCallClient) Interceptors() []Interceptor {
	return c.inters.ToolCall
}

func (c *ToolCallClient) mutate(ctx context.Context, m *ToolCallMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolCallCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolCallUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolCallUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolCallDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolCall mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AgentSession, ChildRelation, Punch, PunchCardRequirement, SessionMessage,
		ToolCall []ent.Hook
	}
	inters struct {
		AgentSession, ChildRelation, Punch, PunchCardRequirement, SessionMessage,
		ToolCall []ent.Interceptor
	}
)
