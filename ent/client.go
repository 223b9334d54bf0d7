// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/abiral/quizsight/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/abiral/quizsight/ent/sessionarchive"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// SessionArchive is the client for interacting with the SessionArchive builders.
	SessionArchive *SessionArchiveClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.SessionArchive = NewSessionArchiveClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		SessionArchive: NewSessionArchiveClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		SessionArchive: NewSessionArchiveClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		SessionArchive.
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
	c.SessionArchive.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.SessionArchive.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *SessionArchiveMutation:
		return c.SessionArchive.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// SessionArchiveClient is a client for the SessionArchive schema.
type SessionArchiveClient struct {
	config
}

// NewSessionArchiveClient returns a client for the SessionArchive from the given config.
func NewSessionArchiveClient(c config) *SessionArchiveClient {
	return &SessionArchiveClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `sessionarchive.Hooks(f(g(h())))`.
func (c *SessionArchiveClient) Use(hooks ...Hook) {
	c.hooks.SessionArchive = append(c.hooks.SessionArchive, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `sessionarchive.Intercept(f(g(h())))`.
func (c *SessionArchiveClient) Intercept(interceptors ...Interceptor) {
	c.inters.SessionArchive = append(c.inters.SessionArchive, interceptors...)
}

// Create returns a builder for creating a SessionArchive entity.
func (c *SessionArchiveClient) Create() *SessionArchiveCreate {
	mutation := newSessionArchiveMutation(c.config, OpCreate)
	return &SessionArchiveCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SessionArchive entities.
func (c *SessionArchiveClient) CreateBulk(builders ...*SessionArchiveCreate) *SessionArchiveCreateBulk {
	return &SessionArchiveCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionArchiveClient) MapCreateBulk(slice any, setFunc func(*SessionArchiveCreate, int)) *SessionArchiveCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionArchiveCreateBulk{err: fmt.Errorf("calling to SessionArchiveClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionArchiveCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionArchiveCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SessionArchive.
func (c *SessionArchiveClient) Update() *SessionArchiveUpdate {
	mutation := newSessionArchiveMutation(c.config, OpUpdate)
	return &SessionArchiveUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionArchiveClient) UpdateOne(_m *SessionArchive) *SessionArchiveUpdateOne {
	mutation := newSessionArchiveMutation(c.config, OpUpdateOne, withSessionArchive(_m))
	return &SessionArchiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionArchiveClient) UpdateOneID(id int) *SessionArchiveUpdateOne {
	mutation := newSessionArchiveMutation(c.config, OpUpdateOne, withSessionArchiveID(id))
	return &SessionArchiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SessionArchive.
func (c *SessionArchiveClient) Delete() *SessionArchiveDelete {
	mutation := newSessionArchiveMutation(c.config, OpDelete)
	return &SessionArchiveDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionArchiveClient) DeleteOne(_m *SessionArchive) *SessionArchiveDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionArchiveClient) DeleteOneID(id int) *SessionArchiveDeleteOne {
	builder := c.Delete().Where(sessionarchive.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionArchiveDeleteOne{builder}
}

// Query returns a query builder for SessionArchive.
func (c *SessionArchiveClient) Query() *SessionArchiveQuery {
	return &SessionArchiveQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSessionArchive},
		inters: c.Interceptors(),
	}
}

// Get returns a SessionArchive entity by its id.
func (c *SessionArchiveClient) Get(ctx context.Context, id int) (*SessionArchive, error) {
	return c.Query().Where(sessionarchive.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionArchiveClient) GetX(ctx context.Context, id int) *SessionArchive {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionArchiveClient) Hooks() []Hook {
	return c.hooks.SessionArchive
}

// Interceptors returns the client interceptors.
func (c *SessionArchiveClient) Interceptors() []Interceptor {
	return c.inters.SessionArchive
}

func (c *SessionArchiveClient) mutate(ctx context.Context, m *SessionArchiveMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionArchiveCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionArchiveUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionArchiveUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionArchiveDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SessionArchive mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		SessionArchive []ent.Hook
	}
	inters struct {
		SessionArchive []ent.Interceptor
	}
)
