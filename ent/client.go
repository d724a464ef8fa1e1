// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/roundtable-ai/roundtable/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/roundtable-ai/roundtable/ent/debate"
	"github.com/roundtable-ai/roundtable/ent/debateround"
	"github.com/roundtable-ai/roundtable/ent/debatesynthesis"
	"github.com/roundtable-ai/roundtable/ent/personalityresponse"
	"github.com/roundtable-ai/roundtable/ent/usagerecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Debate is the client for interacting with the Debate builders.
	Debate *DebateClient
	// DebateRound is the client for interacting with the DebateRound builders.
	DebateRound *DebateRoundClient
	// DebateSynthesis is the client for interacting with the DebateSynthesis builders.
	DebateSynthesis *DebateSynthesisClient
	// PersonalityResponse is the client for interacting with the PersonalityResponse builders.
	PersonalityResponse *PersonalityResponseClient
	// UsageRecord is the client for interacting with the UsageRecord builders.
	UsageRecord *UsageRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Debate = NewDebateClient(c.config)
	c.DebateRound = NewDebateRoundClient(c.config)
	c.DebateSynthesis = NewDebateSynthesisClient(c.config)
	c.PersonalityResponse = NewPersonalityResponseClient(c.config)
	c.UsageRecord = NewUsageRecordClient(c.config)
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
		ctx:                 ctx,
		config:              cfg,
		Debate:              NewDebateClient(cfg),
		DebateRound:         NewDebateRoundClient(cfg),
		DebateSynthesis:     NewDebateSynthesisClient(cfg),
		PersonalityResponse: NewPersonalityResponseClient(cfg),
		UsageRecord:         NewUsageRecordClient(cfg),
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
		ctx:                 ctx,
		config:              cfg,
		Debate:              NewDebateClient(cfg),
		DebateRound:         NewDebateRoundClient(cfg),
		DebateSynthesis:     NewDebateSynthesisClient(cfg),
		PersonalityResponse: NewPersonalityResponseClient(cfg),
		UsageRecord:         NewUsageRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Debate.
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
	c.Debate.Use(hooks...)
	c.DebateRound.Use(hooks...)
	c.DebateSynthesis.Use(hooks...)
	c.PersonalityResponse.Use(hooks...)
	c.UsageRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Debate.Intercept(interceptors...)
	c.DebateRound.Intercept(interceptors...)
	c.DebateSynthesis.Intercept(interceptors...)
	c.PersonalityResponse.Intercept(interceptors...)
	c.UsageRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DebateMutation:
		return c.Debate.mutate(ctx, m)
	case *DebateRoundMutation:
		return c.DebateRound.mutate(ctx, m)
	case *DebateSynthesisMutation:
		return c.DebateSynthesis.mutate(ctx, m)
	case *PersonalityResponseMutation:
		return c.PersonalityResponse.mutate(ctx, m)
	case *UsageRecordMutation:
		return c.UsageRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DebateClient is a client for the Debate schema.
type DebateClient struct {
	config
}

// NewDebateClient returns a client for the Debate from the given config.
func NewDebateClient(c config) *DebateClient {
	return &DebateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `debate.Hooks(f(g(h())))`.
func (c *DebateClient) Use(hooks ...Hook) {
	c.hooks.Debate = append(c.hooks.Debate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `debate.Intercept(f(g(h())))`.
func (c *DebateClient) Intercept(interceptors ...Interceptor) {
	c.inters.Debate = append(c.inters.Debate, interceptors...)
}

// Create returns a builder for creating a Debate entity.
func (c *DebateClient) Create() *DebateCreate {
	mutation := newDebateMutation(c.config, OpCreate)
	return &DebateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Debate entities.
func (c *DebateClient) CreateBulk(builders ...*DebateCreate) *DebateCreateBulk {
	return &DebateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DebateClient) MapCreateBulk(slice any, setFunc func(*DebateCreate, int)) *DebateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DebateCreateBulk{err: fmt.Errorf("calling to DebateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DebateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DebateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Debate.
func (c *DebateClient) Update() *DebateUpdate {
	mutation := newDebateMutation(c.config, OpUpdate)
	return &DebateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DebateClient) UpdateOne(_m *Debate) *DebateUpdateOne {
	mutation := newDebateMutation(c.config, OpUpdateOne, withDebate(_m))
	return &DebateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DebateClient) UpdateOneID(id string) *DebateUpdateOne {
	mutation := newDebateMutation(c.config, OpUpdateOne, withDebateID(id))
	return &DebateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Debate.
func (c *DebateClient) Delete() *DebateDelete {
	mutation := newDebateMutation(c.config, OpDelete)
	return &DebateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DebateClient) DeleteOne(_m *Debate) *DebateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DebateClient) DeleteOneID(id string) *DebateDeleteOne {
	builder := c.Delete().Where(debate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DebateDeleteOne{builder}
}

// Query returns a query builder for Debate.
func (c *DebateClient) Query() *DebateQuery {
	return &DebateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDebate},
		inters: c.Interceptors(),
	}
}

// Get returns a Debate entity by its id.
func (c *DebateClient) Get(ctx context.Context, id string) (*Debate, error) {
	return c.Query().Where(debate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DebateClient) GetX(ctx context.Context, id string) *Debate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRounds queries the rounds edge of a Debate.
func (c *DebateClient) QueryRounds(_m *Debate) *DebateRoundQuery {
	query := (&DebateRoundClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(debate.Table, debate.FieldID, id),
			sqlgraph.To(debateround.Table, debateround.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, debate.RoundsTable, debate.RoundsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySynthesis queries the synthesis edge of a Debate.
func (c *DebateClient) QuerySynthesis(_m *Debate) *DebateSynthesisQuery {
	query := (&DebateSynthesisClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(debate.Table, debate.FieldID, id),
			sqlgraph.To(debatesynthesis.Table, debatesynthesis.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, debate.SynthesisTable, debate.SynthesisColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DebateClient) Hooks() []Hook {
	return c.hooks.Debate
}

// Interceptors returns the client interceptors.
func (c *DebateClient) Interceptors() []Interceptor {
	return c.inters.Debate
}

func (c *DebateClient) mutate(ctx context.Context, m *DebateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DebateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DebateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DebateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DebateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Debate mutation op: %q", m.Op())
	}
}

// DebateRoundClient is a client for the DebateRound schema.
type DebateRoundClient struct {
	config
}

// NewDebateRoundClient returns a client for the DebateRound from the given config.
func NewDebateRoundClient(c config) *DebateRoundClient {
	return &DebateRoundClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `debateround.Hooks(f(g(h())))`.
func (c *DebateRoundClient) Use(hooks ...Hook) {
	c.hooks.DebateRound = append(c.hooks.DebateRound, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `debateround.Intercept(f(g(h())))`.
func (c *DebateRoundClient) Intercept(interceptors ...Interceptor) {
	c.inters.DebateRound = append(c.inters.DebateRound, interceptors...)
}

// Create returns a builder for creating a DebateRound entity.
func (c *DebateRoundClient) Create() *DebateRoundCreate {
	mutation := newDebateRoundMutation(c.config, OpCreate)
	return &DebateRoundCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DebateRound entities.
func (c *DebateRoundClient) CreateBulk(builders ...*DebateRoundCreate) *DebateRoundCreateBulk {
	return &DebateRoundCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DebateRoundClient) MapCreateBulk(slice any, setFunc func(*DebateRoundCreate, int)) *DebateRoundCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DebateRoundCreateBulk{err: fmt.Errorf("calling to DebateRoundClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DebateRoundCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DebateRoundCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DebateRound.
func (c *DebateRoundClient) Update() *DebateRoundUpdate {
	mutation := newDebateRoundMutation(c.config, OpUpdate)
	return &DebateRoundUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DebateRoundClient) UpdateOne(_m *DebateRound) *DebateRoundUpdateOne {
	mutation := newDebateRoundMutation(c.config, OpUpdateOne, withDebateRound(_m))
	return &DebateRoundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DebateRoundClient) UpdateOneID(id string) *DebateRoundUpdateOne {
	mutation := newDebateRoundMutation(c.config, OpUpdateOne, withDebateRoundID(id))
	return &DebateRoundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DebateRound.
func (c *DebateRoundClient) Delete() *DebateRoundDelete {
	mutation := newDebateRoundMutation(c.config, OpDelete)
	return &DebateRoundDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DebateRoundClient) DeleteOne(_m *DebateRound) *DebateRoundDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DebateRoundClient) DeleteOneID(id string) *DebateRoundDeleteOne {
	builder := c.Delete().Where(debateround.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DebateRoundDeleteOne{builder}
}

// Query returns a query builder for DebateRound.
func (c *DebateRoundClient) Query() *DebateRoundQuery {
	return &DebateRoundQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDebateRound},
		inters: c.Interceptors(),
	}
}

// Get returns a DebateRound entity by its id.
func (c *DebateRoundClient) Get(ctx context.Context, id string) (*DebateRound, error) {
	return c.Query().Where(debateround.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DebateRoundClient) GetX(ctx context.Context, id string) *DebateRound {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDebate queries the debate edge of a DebateRound.
func (c *DebateRoundClient) QueryDebate(_m *DebateRound) *DebateQuery {
	query := (&DebateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(debateround.Table, debateround.FieldID, id),
			sqlgraph.To(debate.Table, debate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, debateround.DebateTable, debateround.DebateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResponses queries the responses edge of a DebateRound.
func (c *DebateRoundClient) QueryResponses(_m *DebateRound) *PersonalityResponseQuery {
	query := (&PersonalityResponseClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(debateround.Table, debateround.FieldID, id),
			sqlgraph.To(personalityresponse.Table, personalityresponse.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, debateround.ResponsesTable, debateround.ResponsesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DebateRoundClient) Hooks() []Hook {
	return c.hooks.DebateRound
}

// Interceptors returns the client interceptors.
func (c *DebateRoundClient) Interceptors() []Interceptor {
	return c.inters.DebateRound
}

func (c *DebateRoundClient) mutate(ctx context.Context, m *DebateRoundMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DebateRoundCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DebateRoundUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DebateRoundUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DebateRoundDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DebateRound mutation op: %q", m.Op())
	}
}

// DebateSynthesisClient is a client for the DebateSynthesis schema.
type DebateSynthesisClient struct {
	config
}

// NewDebateSynthesisClient returns a client for the DebateSynthesis from the given config.
func NewDebateSynthesisClient(c config) *DebateSynthesisClient {
	return &DebateSynthesisClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `debatesynthesis.Hooks(f(g(h())))`.
func (c *DebateSynthesisClient) Use(hooks ...Hook) {
	c.hooks.DebateSynthesis = append(c.hooks.DebateSynthesis, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `debatesynthesis.Intercept(f(g(h())))`.
func (c *DebateSynthesisClient) Intercept(interceptors ...Interceptor) {
	c.inters.DebateSynthesis = append(c.inters.DebateSynthesis, interceptors...)
}

// Create returns a builder for creating a DebateSynthesis entity.
func (c *DebateSynthesisClient) Create() *DebateSynthesisCreate {
	mutation := newDebateSynthesisMutation(c.config, OpCreate)
	return &DebateSynthesisCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DebateSynthesis entities.
func (c *DebateSynthesisClient) CreateBulk(builders ...*DebateSynthesisCreate) *DebateSynthesisCreateBulk {
	return &DebateSynthesisCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DebateSynthesisClient) MapCreateBulk(slice any, setFunc func(*DebateSynthesisCreate, int)) *DebateSynthesisCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DebateSynthesisCreateBulk{err: fmt.Errorf("calling to DebateSynthesisClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DebateSynthesisCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DebateSynthesisCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DebateSynthesis.
func (c *DebateSynthesisClient) Update() *DebateSynthesisUpdate {
	mutation := newDebateSynthesisMutation(c.config, OpUpdate)
	return &DebateSynthesisUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DebateSynthesisClient) UpdateOne(_m *DebateSynthesis) *DebateSynthesisUpdateOne {
	mutation := newDebateSynthesisMutation(c.config, OpUpdateOne, withDebateSynthesis(_m))
	return &DebateSynthesisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DebateSynthesisClient) UpdateOneID(id string) *DebateSynthesisUpdateOne {
	mutation := newDebateSynthesisMutation(c.config, OpUpdateOne, withDebateSynthesisID(id))
	return &DebateSynthesisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DebateSynthesis.
func (c *DebateSynthesisClient) Delete() *DebateSynthesisDelete {
	mutation := newDebateSynthesisMutation(c.config, OpDelete)
	return &DebateSynthesisDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DebateSynthesisClient) DeleteOne(_m *DebateSynthesis) *DebateSynthesisDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DebateSynthesisClient) DeleteOneID(id string) *DebateSynthesisDeleteOne {
	builder := c.Delete().Where(debatesynthesis.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DebateSynthesisDeleteOne{builder}
}

// Query returns a query builder for DebateSynthesis.
func (c *DebateSynthesisClient) Query() *DebateSynthesisQuery {
	return &DebateSynthesisQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDebateSynthesis},
		inters: c.Interceptors(),
	}
}

// Get returns a DebateSynthesis entity by its id.
func (c *DebateSynthesisClient) Get(ctx context.Context, id string) (*DebateSynthesis, error) {
	return c.Query().Where(debatesynthesis.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DebateSynthesisClient) GetX(ctx context.Context, id string) *DebateSynthesis {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDebate queries the debate edge of a DebateSynthesis.
func (c *DebateSynthesisClient) QueryDebate(_m *DebateSynthesis) *DebateQuery {
	query := (&DebateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(debatesynthesis.Table, debatesynthesis.FieldID, id),
			sqlgraph.To(debate.Table, debate.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, debatesynthesis.DebateTable, debatesynthesis.DebateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DebateSynthesisClient) Hooks() []Hook {
	return c.hooks.DebateSynthesis
}

// Interceptors returns the client interceptors.
func (c *DebateSynthesisClient) Interceptors() []Interceptor {
	return c.inters.DebateSynthesis
}

func (c *DebateSynthesisClient) mutate(ctx context.Context, m *DebateSynthesisMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DebateSynthesisCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DebateSynthesisUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DebateSynthesisUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DebateSynthesisDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DebateSynthesis mutation op: %q", m.Op())
	}
}

// PersonalityResponseClient is a client for the PersonalityResponse schema.
type PersonalityResponseClient struct {
	config
}

// NewPersonalityResponseClient returns a client for the PersonalityResponse from the given config.
func NewPersonalityResponseClient(c config) *PersonalityResponseClient {
	return &PersonalityResponseClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `personalityresponse.Hooks(f(g(h())))`.
func (c *PersonalityResponseClient) Use(hooks ...Hook) {
	c.hooks.PersonalityResponse = append(c.hooks.PersonalityResponse, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `personalityresponse.Intercept(f(g(h())))`.
func (c *PersonalityResponseClient) Intercept(interceptors ...Interceptor) {
	c.inters.PersonalityResponse = append(c.inters.PersonalityResponse, interceptors...)
}

// Create returns a builder for creating a PersonalityResponse entity.
func (c *PersonalityResponseClient) Create() *PersonalityResponseCreate {
	mutation := newPersonalityResponseMutation(c.config, OpCreate)
	return &PersonalityResponseCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PersonalityResponse entities.
func (c *PersonalityResponseClient) CreateBulk(builders ...*PersonalityResponseCreate) *PersonalityResponseCreateBulk {
	return &PersonalityResponseCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PersonalityResponseClient) MapCreateBulk(slice any, setFunc func(*PersonalityResponseCreate, int)) *PersonalityResponseCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PersonalityResponseCreateBulk{err: fmt.Errorf("calling to PersonalityResponseClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PersonalityResponseCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PersonalityResponseCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PersonalityResponse.
func (c *PersonalityResponseClient) Update() *PersonalityResponseUpdate {
	mutation := newPersonalityResponseMutation(c.config, OpUpdate)
	return &PersonalityResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PersonalityResponseClient) UpdateOne(_m *PersonalityResponse) *PersonalityResponseUpdateOne {
	mutation := newPersonalityResponseMutation(c.config, OpUpdateOne, withPersonalityResponse(_m))
	return &PersonalityResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PersonalityResponseClient) UpdateOneID(id string) *PersonalityResponseUpdateOne {
	mutation := newPersonalityResponseMutation(c.config, OpUpdateOne, withPersonalityResponseID(id))
	return &PersonalityResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PersonalityResponse.
func (c *PersonalityResponseClient) Delete() *PersonalityResponseDelete {
	mutation := newPersonalityResponseMutation(c.config, OpDelete)
	return &PersonalityResponseDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PersonalityResponseClient) DeleteOne(_m *PersonalityResponse) *PersonalityResponseDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PersonalityResponseClient) DeleteOneID(id string) *PersonalityResponseDeleteOne {
	builder := c.Delete().Where(personalityresponse.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PersonalityResponseDeleteOne{builder}
}

// Query returns a query builder for PersonalityResponse.
func (c *PersonalityResponseClient) Query() *PersonalityResponseQuery {
	return &PersonalityResponseQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePersonalityResponse},
		inters: c.Interceptors(),
	}
}

// Get returns a PersonalityResponse entity by its id.
func (c *PersonalityResponseClient) Get(ctx context.Context, id string) (*PersonalityResponse, error) {
	return c.Query().Where(personalityresponse.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PersonalityResponseClient) GetX(ctx context.Context, id string) *PersonalityResponse {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRound queries the round edge of a PersonalityResponse.
func (c *PersonalityResponseClient) QueryRound(_m *PersonalityResponse) *DebateRoundQuery {
	query := (&DebateRoundClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(personalityresponse.Table, personalityresponse.FieldID, id),
			sqlgraph.To(debateround.Table, debateround.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, personalityresponse.RoundTable, personalityresponse.RoundColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PersonalityResponseClient) Hooks() []Hook {
	return c.hooks.PersonalityResponse
}

// Interceptors returns the client interceptors.
func (c *PersonalityResponseClient) Interceptors() []Interceptor {
	return c.inters.PersonalityResponse
}

func (c *PersonalityResponseClient) mutate(ctx context.Context, m *PersonalityResponseMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PersonalityResponseCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PersonalityResponseUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PersonalityResponseUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PersonalityResponseDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PersonalityResponse mutation op: %q", m.Op())
	}
}

// UsageRecordClient is a client for the UsageRecord schema.
type UsageRecordClient struct {
	config
}

// NewUsageRecordClient returns a client for the UsageRecord from the given config.
func NewUsageRecordClient(c config) *UsageRecordClient {
	return &UsageRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usagerecord.Hooks(f(g(h())))`.
func (c *UsageRecordClient) Use(hooks ...Hook) {
	c.hooks.UsageRecord = append(c.hooks.UsageRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usagerecord.Intercept(f(g(h())))`.
func (c *UsageRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.UsageRecord = append(c.inters.UsageRecord, interceptors...)
}

// Create returns a builder for creating a UsageRecord entity.
func (c *UsageRecordClient) Create() *UsageRecordCreate {
	mutation := newUsageRecordMutation(c.config, OpCreate)
	return &UsageRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UsageRecord entities.
func (c *UsageRecordClient) CreateBulk(builders ...*UsageRecordCreate) *UsageRecordCreateBulk {
	return &UsageRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UsageRecordClient) MapCreateBulk(slice any, setFunc func(*UsageRecordCreate, int)) *UsageRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UsageRecordCreateBulk{err: fmt.Errorf("calling to UsageRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UsageRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UsageRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UsageRecord.
func (c *UsageRecordClient) Update() *UsageRecordUpdate {
	mutation := newUsageRecordMutation(c.config, OpUpdate)
	return &UsageRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UsageRecordClient) UpdateOne(_m *UsageRecord) *UsageRecordUpdateOne {
	mutation := newUsageRecordMutation(c.config, OpUpdateOne, withUsageRecord(_m))
	return &UsageRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UsageRecordClient) UpdateOneID(id string) *UsageRecordUpdateOne {
	mutation := newUsageRecordMutation(c.config, OpUpdateOne, withUsageRecordID(id))
	return &UsageRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UsageRecord.
func (c *UsageRecordClient) Delete() *UsageRecordDelete {
	mutation := newUsageRecordMutation(c.config, OpDelete)
	return &UsageRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UsageRecordClient) DeleteOne(_m *UsageRecord) *UsageRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UsageRecordClient) DeleteOneID(id string) *UsageRecordDeleteOne {
	builder := c.Delete().Where(usagerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UsageRecordDeleteOne{builder}
}

// Query returns a query builder for UsageRecord.
func (c *UsageRecordClient) Query() *UsageRecordQuery {
	return &UsageRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUsageRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a UsageRecord entity by its id.
func (c *UsageRecordClient) Get(ctx context.Context, id string) (*UsageRecord, error) {
	return c.Query().Where(usagerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UsageRecordClient) GetX(ctx context.Context, id string) *UsageRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UsageRecordClient) Hooks() []Hook {
	return c.hooks.UsageRecord
}

// Interceptors returns the client interceptors.
func (c *UsageRecordClient) Interceptors() []Interceptor {
	return c.inters.UsageRecord
}

func (c *UsageRecordClient) mutate(ctx context.Context, m *UsageRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UsageRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UsageRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UsageRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UsageRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown UsageRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Debate, DebateRound, DebateSynthesis, PersonalityResponse,
		UsageRecord []ent.Hook
	}
	inters struct {
		Debate, DebateRound, DebateSynthesis, PersonalityResponse,
		UsageRecord []ent.Interceptor
	}
)
