// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/pvaidya/recheck/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/pvaidya/recheck/ent/gradeditem"
	"github.com/pvaidya/recheck/ent/llmrequestevent"
	"github.com/pvaidya/recheck/ent/weaknessentry"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GradedItem is the client for interacting with the GradedItem builders.
	GradedItem *GradedItemClient
	// LLMRequestEvent is the client for interacting with the LLMRequestEvent builders.
	LLMRequestEvent *LLMRequestEventClient
	// WeaknessEntry is the client for interacting with the WeaknessEntry builders.
	WeaknessEntry *WeaknessEntryClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GradedItem = NewGradedItemClient(c.config)
	c.LLMRequestEvent = NewLLMRequestEventClient(c.config)
	c.WeaknessEntry = NewWeaknessEntryClient(c.config)
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
		GradedItem:      NewGradedItemClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		WeaknessEntry:   NewWeaknessEntryClient(cfg),
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
		GradedItem:      NewGradedItemClient(cfg),
		LLMRequestEvent: NewLLMRequestEventClient(cfg),
		WeaknessEntry:   NewWeaknessEntryClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GradedItem.
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
	c.GradedItem.Use(hooks...)
	c.LLMRequestEvent.Use(hooks...)
	c.WeaknessEntry.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.GradedItem.Intercept(interceptors...)
	c.LLMRequestEvent.Intercept(interceptors...)
	c.WeaknessEntry.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GradedItemMutation:
		return c.GradedItem.mutate(ctx, m)
	case *LLMRequestEventMutation:
		return c.LLMRequestEvent.mutate(ctx, m)
	case *WeaknessEntryMutation:
		return c.WeaknessEntry.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GradedItemClient is a client for the GradedItem schema.
type GradedItemClient struct {
	config
}

// NewGradedItemClient returns a client for the GradedItem from the given config.
func NewGradedItemClient(c config) *GradedItemClient {
	return &GradedItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gradeditem.Hooks(f(g(h())))`.
func (c *GradedItemClient) Use(hooks ...Hook) {
	c.hooks.GradedItem = append(c.hooks.GradedItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gradeditem.Intercept(f(g(h())))`.
func (c *GradedItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.GradedItem = append(c.inters.GradedItem, interceptors...)
}

// Create returns a builder for creating a GradedItem entity.
func (c *GradedItemClient) Create() *GradedItemCreate {
	mutation := newGradedItemMutation(c.config, OpCreate)
	return &GradedItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GradedItem entities.
func (c *GradedItemClient) CreateBulk(builders ...*GradedItemCreate) *GradedItemCreateBulk {
	return &GradedItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GradedItemClient) MapCreateBulk(slice any, setFunc func(*GradedItemCreate, int)) *GradedItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GradedItemCreateBulk{err: fmt.Errorf("calling to GradedItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GradedItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GradedItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GradedItem.
func (c *GradedItemClient) Update() *GradedItemUpdate {
	mutation := newGradedItemMutation(c.config, OpUpdate)
	return &GradedItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GradedItemClient) UpdateOne(_m *GradedItem) *GradedItemUpdateOne {
	mutation := newGradedItemMutation(c.config, OpUpdateOne, withGradedItem(_m))
	return &GradedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GradedItemClient) UpdateOneID(id int) *GradedItemUpdateOne {
	mutation := newGradedItemMutation(c.config, OpUpdateOne, withGradedItemID(id))
	return &GradedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GradedItem.
func (c *GradedItemClient) Delete() *GradedItemDelete {
	mutation := newGradedItemMutation(c.config, OpDelete)
	return &GradedItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GradedItemClient) DeleteOne(_m *GradedItem) *GradedItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GradedItemClient) DeleteOneID(id int) *GradedItemDeleteOne {
	builder := c.Delete().Where(gradeditem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GradedItemDeleteOne{builder}
}

// Query returns a query builder for GradedItem.
func (c *GradedItemClient) Query() *GradedItemQuery {
	return &GradedItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGradedItem},
		inters: c.Interceptors(),
	}
}

// Get returns a GradedItem entity by its id.
func (c *GradedItemClient) Get(ctx context.Context, id int) (*GradedItem, error) {
	return c.Query().Where(gradeditem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GradedItemClient) GetX(ctx context.Context, id int) *GradedItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GradedItemClient) Hooks() []Hook {
	return c.hooks.GradedItem
}

// Interceptors returns the client interceptors.
func (c *GradedItemClient) Interceptors() []Interceptor {
	return c.inters.GradedItem
}

func (c *GradedItemClient) mutate(ctx context.Context, m *GradedItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GradedItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GradedItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GradedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GradedItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GradedItem mutation op: %q", m.Op())
	}
}

// LLMRequestEventClient is a client for the LLMRequestEvent schema.
type LLMRequestEventClient struct {
	config
}

// NewLLMRequestEventClient returns a client for the LLMRequestEvent from the given config.
func NewLLMRequestEventClient(c config) *LLMRequestEventClient {
	return &LLMRequestEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `llmrequestevent.Hooks(f(g(h())))`.
func (c *LLMRequestEventClient) Use(hooks ...Hook) {
	c.hooks.LLMRequestEvent = append(c.hooks.LLMRequestEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `llmrequestevent.Intercept(f(g(h())))`.
func (c *LLMRequestEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.LLMRequestEvent = append(c.inters.LLMRequestEvent, interceptors...)
}

// Create returns a builder for creating a LLMRequestEvent entity.
func (c *LLMRequestEventClient) Create() *LLMRequestEventCreate {
	mutation := newLLMRequestEventMutation(c.config, OpCreate)
	return &LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LLMRequestEvent entities.
func (c *LLMRequestEventClient) CreateBulk(builders ...*LLMRequestEventCreate) *LLMRequestEventCreateBulk {
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LLMRequestEventClient) MapCreateBulk(slice any, setFunc func(*LLMRequestEventCreate, int)) *LLMRequestEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LLMRequestEventCreateBulk{err: fmt.Errorf("calling to LLMRequestEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LLMRequestEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LLMRequestEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Update() *LLMRequestEventUpdate {
	mutation := newLLMRequestEventMutation(c.config, OpUpdate)
	return &LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LLMRequestEventClient) UpdateOne(_m *LLMRequestEvent) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEvent(_m))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LLMRequestEventClient) UpdateOneID(id int) *LLMRequestEventUpdateOne {
	mutation := newLLMRequestEventMutation(c.config, OpUpdateOne, withLLMRequestEventID(id))
	return &LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Delete() *LLMRequestEventDelete {
	mutation := newLLMRequestEventMutation(c.config, OpDelete)
	return &LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LLMRequestEventClient) DeleteOne(_m *LLMRequestEvent) *LLMRequestEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LLMRequestEventClient) DeleteOneID(id int) *LLMRequestEventDeleteOne {
	builder := c.Delete().Where(llmrequestevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LLMRequestEventDeleteOne{builder}
}

// Query returns a query builder for LLMRequestEvent.
func (c *LLMRequestEventClient) Query() *LLMRequestEventQuery {
	return &LLMRequestEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLLMRequestEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a LLMRequestEvent entity by its id.
func (c *LLMRequestEventClient) Get(ctx context.Context, id int) (*LLMRequestEvent, error) {
	return c.Query().Where(llmrequestevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LLMRequestEventClient) GetX(ctx context.Context, id int) *LLMRequestEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *LLMRequestEventClient) Hooks() []Hook {
	return c.hooks.LLMRequestEvent
}

// Interceptors returns the client interceptors.
func (c *LLMRequestEventClient) Interceptors() []Interceptor {
	return c.inters.LLMRequestEvent
}

func (c *LLMRequestEventClient) mutate(ctx context.Context, m *LLMRequestEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LLMRequestEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LLMRequestEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LLMRequestEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LLMRequestEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LLMRequestEvent mutation op: %q", m.Op())
	}
}

// WeaknessEntryClient is a client for the WeaknessEntry schema.
type WeaknessEntryClient struct {
	config
}

// NewWeaknessEntryClient returns a client for the WeaknessEntry from the given config.
func NewWeaknessEntryClient(c config) *WeaknessEntryClient {
	return &WeaknessEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `weaknessentry.Hooks(f(g(h())))`.
func (c *WeaknessEntryClient) Use(hooks ...Hook) {
	c.hooks.WeaknessEntry = append(c.hooks.WeaknessEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `weaknessentry.Intercept(f(g(h())))`.
func (c *WeaknessEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.WeaknessEntry = append(c.inters.WeaknessEntry, interceptors...)
}

// Create returns a builder for creating a WeaknessEntry entity.
func (c *WeaknessEntryClient) Create() *WeaknessEntryCreate {
	mutation := newWeaknessEntryMutation(c.config, OpCreate)
	return &WeaknessEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WeaknessEntry entities.
func (c *WeaknessEntryClient) CreateBulk(builders ...*WeaknessEntryCreate) *WeaknessEntryCreateBulk {
	return &WeaknessEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WeaknessEntryClient) MapCreateBulk(slice any, setFunc func(*WeaknessEntryCreate, int)) *WeaknessEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WeaknessEntryCreateBulk{err: fmt.Errorf("calling to WeaknessEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WeaknessEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WeaknessEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WeaknessEntry.
func (c *WeaknessEntryClient) Update() *WeaknessEntryUpdate {
	mutation := newWeaknessEntryMutation(c.config, OpUpdate)
	return &WeaknessEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WeaknessEntryClient) UpdateOne(_m *WeaknessEntry) *WeaknessEntryUpdateOne {
	mutation := newWeaknessEntryMutation(c.config, OpUpdateOne, withWeaknessEntry(_m))
	return &WeaknessEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WeaknessEntryClient) UpdateOneID(id int) *WeaknessEntryUpdateOne {
	mutation := newWeaknessEntryMutation(c.config, OpUpdateOne, withWeaknessEntryID(id))
	return &WeaknessEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WeaknessEntry.
func (c *WeaknessEntryClient) Delete() *WeaknessEntryDelete {
	mutation := newWeaknessEntryMutation(c.config, OpDelete)
	return &WeaknessEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WeaknessEntryClient) DeleteOne(_m *WeaknessEntry) *WeaknessEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WeaknessEntryClient) DeleteOneID(id int) *WeaknessEntryDeleteOne {
	builder := c.Delete().Where(weaknessentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WeaknessEntryDeleteOne{builder}
}

// Query returns a query builder for WeaknessEntry.
func (c *WeaknessEntryClient) Query() *WeaknessEntryQuery {
	return &WeaknessEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWeaknessEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a WeaknessEntry entity by its id.
func (c *WeaknessEntryClient) Get(ctx context.Context, id int) (*WeaknessEntry, error) {
	return c.Query().Where(weaknessentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WeaknessEntryClient) GetX(ctx context.Context, id int) *WeaknessEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WeaknessEntryClient) Hooks() []Hook {
	return c.hooks.WeaknessEntry
}

// Interceptors returns the client interceptors.
func (c *WeaknessEntryClient) Interceptors() []Interceptor {
	return c.inters.WeaknessEntry
}

func (c *WeaknessEntryClient) mutate(ctx context.Context, m *WeaknessEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WeaknessEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WeaknessEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WeaknessEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WeaknessEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WeaknessEntry mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GradedItem, LLMRequestEvent, WeaknessEntry []ent.Hook
	}
	inters struct {
		GradedItem, LLMRequestEvent, WeaknessEntry []ent.Interceptor
	}
)
