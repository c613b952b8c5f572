// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/wliu/gradewise/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/wliu/gradewise/ent/llmcallevent"
	"github.com/wliu/gradewise/ent/practiceevent"
	"github.com/wliu/gradewise/ent/snapshot"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// LLMCallEvent is the client for interacting with the LLMCallEvent builders.
	LLMCallEvent *LLMCallEventClient
	// PracticeEvent is the client for interacting with the PracticeEvent builders.
	PracticeEvent *PracticeEventClient
	// Snapshot is the client for interacting with the Snapshot builders.
	Snapshot *SnapshotClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.LLMCallEvent = NewLLMCallEventClient(c.config)
	c.PracticeEvent = NewPracticeEventClient(c.config)
	c.Snapshot = NewSnapshotClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		LLMCallEvent:  NewLLMCallEventClient(cfg),
		PracticeEvent: NewPracticeEventClient(cfg),
		Snapshot:      NewSnapshotClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		LLMCallEvent:  NewLLMCallEventClient(cfg),
		PracticeEvent: NewPracticeEventClient(cfg),
		Snapshot:      NewSnapshotClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		LLMCallEvent.
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
	c.LLMCallEvent.Use(hooks...)
	c.PracticeEvent.Use(hooks...)
	c.Snapshot.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.LLMCallEvent.Intercept(interceptors...)
	c.PracticeEvent.Intercept(interceptors...)
	c.Snapshot.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *LLMCallEventMutation:
		return c.LLMCallEvent.mutate(ctx, m)
	case *PracticeEventMutation:
		return c.PracticeEvent.mutate(ctx, m)
	case *SnapshotMutation:
		return c.Snapshot.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// LLMCallEventClient is a client for the LLMCallEvent schema.
type LLMCallEventClient struct {
	config
}

// NewLLMCallEventClient returns a client for the LLMCallEvent from the given config.
func NewLLMCallEventClient(c config) *LLMCallEventClient {
	return &LLMCallEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmcallevent.Hooks(f(g(h())))`.
func (c *LLMCallEventClient) Use(hooks ...Hook) {
	c.hooks.LLMCallEvent = append(c.hooks.LLMCallEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmcallevent.Intercept(f(g(h())))`.
func (c *LLMCallEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMCallEvent = append(c.inters.LLMCallEvent, interceptors...)
}

// Create returns a builder for creating a LLMCallEvent entity.
func (c *LLMCallEventClient) Create() *LLMCallEventCreate {
	mutation := newLLMCallEventMutation(c.config, OpCreate)
	return &LLMCallEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMCallEvent entities.
func (c *LLMCallEventClient) CreateBulk(builders ...*LLMCallEventCreate) *LLMCallEventCreateBulk {
	return &LLMCallEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMCallEventClient) MapCreateBulk(slice any, setFunc func(*LLMCallEventCreate, int)) *LLMCallEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMCallEventCreateBulk{err: fmt.Errorf("calling to LLMCallEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMCallEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMCallEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMCallEvent.
func (c *LLMCallEventClient) Update() *LLMCallEventUpdate {
	mutation := newLLMCallEventMutation(c.config, OpUpdate)
	return &LLMCallEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMCallEventClient) UpdateOne(_m *LLMCallEvent) *LLMCallEventUpdateOne {
	mutation := newLLMCallEventMutation(c.config, OpUpdateOne, withLLMCallEvent(_m))
	return &LLMCallEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMCallEventClient) UpdateOneID(id int) *LLMCallEventUpdateOne {
	mutation := newLLMCallEventMutation(c.config, OpUpdateOne, withLLMCallEventID(id))
	return &LLMCallEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMCallEvent.
func (c *LLMCallEventClient) Delete() *LLMCallEventDelete {
	mutation := newLLMCallEventMutation(c.config, OpDelete)
	return &LLMCallEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMCallEventClient) DeleteOne(_m *LLMCallEvent) *LLMCallEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMCallEventClient) DeleteOneID(id int) *LLMCallEventDeleteOne {
	builder := c.Delete().Where(llmcallevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMCallEventDeleteOne{builder}
}

// Query returns a query builder for LLMCallEvent.
func (c *LLMCallEventClient) Query() *LLMCallEventQuery {
	return &LLMCallEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMCallEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMCallEvent entity by its id.
func (c *LLMCallEventClient) Get(ctx context.Context, id int) (*LLMCallEvent, error) {
	return c.Query().Where(llmcallevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMCallEventClient) GetX(ctx context.Context, id int) *LLMCallEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMCallEventClient) Hooks() []Hook {
	return c.hooks.LLMCallEvent
}

// Interceptors returns the client interceptors.
func (c *LLMCallEventClient) Interceptors() []Interceptor {
	return c.inters.LLMCallEvent
}

func (c *LLMCallEventClient) mutate(ctx context.Context, m *LLMCallEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMCallEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMCallEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMCallEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMCallEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMCallEvent mutation op: %q", m.Op())
	}
}

// PracticeEventClient is a client for the PracticeEvent schema.
type PracticeEventClient struct {
	config
}

// NewPracticeEventClient returns a client for the PracticeEvent from the given config.
func NewPracticeEventClient(c config) *PracticeEventClient {
	return &PracticeEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `practiceevent.Hooks(f(g(h())))`.
func (c *PracticeEventClient) Use(hooks ...Hook) {
	c.hooks.PracticeEvent = append(c.hooks.PracticeEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `practiceevent.Intercept(f(g(h())))`.
func (c *PracticeEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.PracticeEvent = append(c.inters.PracticeEvent, interceptors...)
}

// Create returns a builder for creating a PracticeEvent entity.
func (c *PracticeEventClient) Create() *PracticeEventCreate {
	mutation := newPracticeEventMutation(c.config, OpCreate)
	return &PracticeEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PracticeEvent entities.
func (c *PracticeEventClient) CreateBulk(builders ...*PracticeEventCreate) *PracticeEventCreateBulk {
	return &PracticeEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PracticeEventClient) MapCreateBulk(slice any, setFunc func(*PracticeEventCreate, int)) *PracticeEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PracticeEventCreateBulk{err: fmt.Errorf("calling to PracticeEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PracticeEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PracticeEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PracticeEvent.
func (c *PracticeEventClient) Update() *PracticeEventUpdate {
	mutation := newPracticeEventMutation(c.config, OpUpdate)
	return &PracticeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PracticeEventClient) UpdateOne(_m *PracticeEvent) *PracticeEventUpdateOne {
	mutation := newPracticeEventMutation(c.config, OpUpdateOne, withPracticeEvent(_m))
	return &PracticeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PracticeEventClient) UpdateOneID(id int) *PracticeEventUpdateOne {
	mutation := newPracticeEventMutation(c.config, OpUpdateOne, withPracticeEventID(id))
	return &PracticeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PracticeEvent.
func (c *PracticeEventClient) Delete() *PracticeEventDelete {
	mutation := newPracticeEventMutation(c.config, OpDelete)
	return &PracticeEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PracticeEventClient) DeleteOne(_m *PracticeEvent) *PracticeEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PracticeEventClient) DeleteOneID(id int) *PracticeEventDeleteOne {
	builder := c.Delete().Where(practiceevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PracticeEventDeleteOne{builder}
}

// Query returns a query builder for PracticeEvent.
func (c *PracticeEventClient) Query() *PracticeEventQuery {
	return &PracticeEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePracticeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a PracticeEvent entity by its id.
func (c *PracticeEventClient) Get(ctx context.Context, id int) (*PracticeEvent, error) {
	return c.Query().Where(practiceevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PracticeEventClient) GetX(ctx context.Context, id int) *PracticeEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PracticeEventClient) Hooks() []Hook {
	return c.hooks.PracticeEvent
}

// Interceptors returns the client interceptors.
func (c *PracticeEventClient) Interceptors() []Interceptor {
	return c.inters.PracticeEvent
}

func (c *PracticeEventClient) mutate(ctx context.Context, m *PracticeEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PracticeEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PracticeEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PracticeEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PracticeEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PracticeEvent mutation op: %q", m.Op())
	}
}

// SnapshotClient is a client for the Snapshot schema.
type SnapshotClient struct {
	config
}

// NewSnapshotClient returns a client for the Snapshot from the given config.
func NewSnapshotClient(c config) *SnapshotClient {
	return &SnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `snapshot.Hooks(f(g(h())))`.
func (c *SnapshotClient) Use(hooks ...Hook) {
	c.hooks.Snapshot = append(c.hooks.Snapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `snapshot.Intercept(f(g(h())))`.
func (c *SnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.Snapshot = append(c.inters.Snapshot, interceptors...)
}

// Create returns a builder for creating a Snapshot entity.
func (c *SnapshotClient) Create() *SnapshotCreate {
	mutation := newSnapshotMutation(c.config, OpCreate)
	return &SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Snapshot entities.
func (c *SnapshotClient) CreateBulk(builders ...*SnapshotCreate) *SnapshotCreateBulk {
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SnapshotClient) MapCreateBulk(slice any, setFunc func(*SnapshotCreate, int)) *SnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SnapshotCreateBulk{err: fmt.Errorf("calling to SnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Snapshot.
func (c *SnapshotClient) Update() *SnapshotUpdate {
	mutation := newSnapshotMutation(c.config, OpUpdate)
	return &SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SnapshotClient) UpdateOne(_m *Snapshot) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshot(_m))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SnapshotClient) UpdateOneID(id int) *SnapshotUpdateOne {
	mutation := newSnapshotMutation(c.config, OpUpdateOne, withSnapshotID(id))
	return &SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Snapshot.
func (c *SnapshotClient) Delete() *SnapshotDelete {
	mutation := newSnapshotMutation(c.config, OpDelete)
	return &SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SnapshotClient) DeleteOne(_m *Snapshot) *SnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SnapshotClient) DeleteOneID(id int) *SnapshotDeleteOne {
	builder := c.Delete().Where(snapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SnapshotDeleteOne{builder}
}

// Query returns a query builder for Snapshot.
func (c *SnapshotClient) Query() *SnapshotQuery {
	return &SnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a Snapshot entity by its id.
func (c *SnapshotClient) Get(ctx context.Context, id int) (*Snapshot, error) {
	return c.Query().Where(snapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SnapshotClient) GetX(ctx context.Context, id int) *Snapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SnapshotClient) Hooks() []Hook {
	return c.hooks.Snapshot
}

// Interceptors returns the client interceptors.
func (c *SnapshotClient) Interceptors() []Interceptor {
	return c.inters.Snapshot
}

func (c *SnapshotClient) mutate(ctx context.Context, m *SnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Snapshot mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		LLMCallEvent, PracticeEvent, Snapshot []ent.Hook
	}
	inters struct {
		LLMCallEvent, PracticeEvent, Snapshot []ent.Interceptor
	}
)
