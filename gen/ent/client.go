// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/meridian-ml/data-curator/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/meridian-ml/data-curator/gen/ent/curationjob"
	"github.com/meridian-ml/data-curator/gen/ent/imageembedding"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CurationJob is the client for interacting with the CurationJob builders.
	CurationJob *CurationJobClient
	// ImageEmbedding is the client for interacting with the ImageEmbedding builders.
	ImageEmbedding *ImageEmbeddingClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CurationJob = NewCurationJobClient(c.config)
	c.ImageEmbedding = NewImageEmbeddingClient(c.config)
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
		CurationJob:    NewCurationJobClient(cfg),
		ImageEmbedding: NewImageEmbeddingClient(cfg),
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
		CurationJob:    NewCurationJobClient(cfg),
		ImageEmbedding: NewImageEmbeddingClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CurationJob.
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
	c.CurationJob.Use(hooks...)
	c.ImageEmbedding.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CurationJob.Intercept(interceptors...)
	c.ImageEmbedding.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CurationJobMutation:
		return c.CurationJob.mutate(ctx, m)
	case *ImageEmbeddingMutation:
		return c.ImageEmbedding.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CurationJobClient is a client for the CurationJob schema.
type CurationJobClient struct {
	config
}

// NewCurationJobClient returns a client for the CurationJob from the given config.
func NewCurationJobClient(c config) *CurationJobClient {
	return &CurationJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `curationjob.Hooks(f(g(h())))`.
func (c *CurationJobClient) Use(hooks ...Hook) {
	c.hooks.CurationJob = append(c.hooks.CurationJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `curationjob.Intercept(f(g(h())))`.
func (c *CurationJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.CurationJob = append(c.inters.CurationJob, interceptors...)
}

// Create returns a builder for creating a CurationJob entity.
func (c *CurationJobClient) Create() *CurationJobCreate {
	mutation := newCurationJobMutation(c.config, OpCreate)
	return &CurationJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CurationJob entities.
func (c *CurationJobClient) CreateBulk(builders ...*CurationJobCreate) *CurationJobCreateBulk {
	return &CurationJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CurationJobClient) MapCreateBulk(slice any, setFunc func(*CurationJobCreate, int)) *CurationJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CurationJobCreateBulk{err: fmt.Errorf("calling to CurationJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CurationJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CurationJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CurationJob.
func (c *CurationJobClient) Update() *CurationJobUpdate {
	mutation := newCurationJobMutation(c.config, OpUpdate)
	return &CurationJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CurationJobClient) UpdateOne(_m *CurationJob) *CurationJobUpdateOne {
	mutation := newCurationJobMutation(c.config, OpUpdateOne, withCurationJob(_m))
	return &CurationJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CurationJobClient) UpdateOneID(id uuid.UUID) *CurationJobUpdateOne {
	mutation := newCurationJobMutation(c.config, OpUpdateOne, withCurationJobID(id))
	return &CurationJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CurationJob.
func (c *CurationJobClient) Delete() *CurationJobDelete {
	mutation := newCurationJobMutation(c.config, OpDelete)
	return &CurationJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CurationJobClient) DeleteOne(_m *CurationJob) *CurationJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CurationJobClient) DeleteOneID(id uuid.UUID) *CurationJobDeleteOne {
	builder := c.Delete().Where(curationjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CurationJobDeleteOne{builder}
}

// Query returns a query builder for CurationJob.
func (c *CurationJobClient) Query() *CurationJobQuery {
	return &CurationJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCurationJob},
		inters: c.Interceptors(),
	}
}

// Get returns a CurationJob entity by its id.
func (c *CurationJobClient) Get(ctx context.Context, id uuid.UUID) (*CurationJob, error) {
	return c.Query().Where(curationjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CurationJobClient) GetX(ctx context.Context, id uuid.UUID) *CurationJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CurationJobClient) Hooks() []Hook {
	return c.hooks.CurationJob
}

// Interceptors returns the client interceptors.
func (c *CurationJobClient) Interceptors() []Interceptor {
	return c.inters.CurationJob
}

func (c *CurationJobClient) mutate(ctx context.Context, m *CurationJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CurationJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CurationJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CurationJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CurationJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CurationJob mutation op: %q", m.Op())
	}
}

// ImageEmbeddingClient is a client for the ImageEmbedding schema.
type ImageEmbeddingClient struct {
	config
}

// NewImageEmbeddingClient returns a client for the ImageEmbedding from the given config.
func NewImageEmbeddingClient(c config) *ImageEmbeddingClient {
	return &ImageEmbeddingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `imageembedding.Hooks(f(g(h())))`.
func (c *ImageEmbeddingClient) Use(hooks ...Hook) {
	c.hooks.ImageEmbedding = append(c.hooks.ImageEmbedding, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `imageembedding.Intercept(f(g(h())))`.
func (c *ImageEmbeddingClient) Intercept(interceptors ...Interceptor) {
	c.inters.ImageEmbedding = append(c.inters.ImageEmbedding, interceptors...)
}

// Create returns a builder for creating a ImageEmbedding entity.
func (c *ImageEmbeddingClient) Create() *ImageEmbeddingCreate {
	mutation := newImageEmbeddingMutation(c.config, OpCreate)
	return &ImageEmbeddingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ImageEmbedding entities.
func (c *ImageEmbeddingClient) CreateBulk(builders ...*ImageEmbeddingCreate) *ImageEmbeddingCreateBulk {
	return &ImageEmbeddingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImageEmbeddingClient) MapCreateBulk(slice any, setFunc func(*ImageEmbeddingCreate, int)) *ImageEmbeddingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImageEmbeddingCreateBulk{err: fmt.Errorf("calling to ImageEmbeddingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImageEmbeddingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImageEmbeddingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ImageEmbedding.
func (c *ImageEmbeddingClient) Update() *ImageEmbeddingUpdate {
	mutation := newImageEmbeddingMutation(c.config, OpUpdate)
	return &ImageEmbeddingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImageEmbeddingClient) UpdateOne(_m *ImageEmbedding) *ImageEmbeddingUpdateOne {
	mutation := newImageEmbeddingMutation(c.config, OpUpdateOne, withImageEmbedding(_m))
	return &ImageEmbeddingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImageEmbeddingClient) UpdateOneID(id uuid.UUID) *ImageEmbeddingUpdateOne {
	mutation := newImageEmbeddingMutation(c.config, OpUpdateOne, withImageEmbeddingID(id))
	return &ImageEmbeddingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ImageEmbedding.
func (c *ImageEmbeddingClient) Delete() *ImageEmbeddingDelete {
	mutation := newImageEmbeddingMutation(c.config, OpDelete)
	return &ImageEmbeddingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImageEmbeddingClient) DeleteOne(_m *ImageEmbedding) *ImageEmbeddingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImageEmbeddingClient) DeleteOneID(id uuid.UUID) *ImageEmbeddingDeleteOne {
	builder := c.Delete().Where(imageembedding.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImageEmbeddingDeleteOne{builder}
}

// Query returns a query builder for ImageEmbedding.
func (c *ImageEmbeddingClient) Query() *ImageEmbeddingQuery {
	return &ImageEmbeddingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImageEmbedding},
		inters: c.Interceptors(),
	}
}

// Get returns a ImageEmbedding entity by its id.
func (c *ImageEmbeddingClient) Get(ctx context.Context, id uuid.UUID) (*ImageEmbedding, error) {
	return c.Query().Where(imageembedding.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImageEmbeddingClient) GetX(ctx context.Context, id uuid.UUID) *ImageEmbedding {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ImageEmbeddingClient) Hooks() []Hook {
	return c.hooks.ImageEmbedding
}

// Interceptors returns the client interceptors.
func (c *ImageEmbeddingClient) Interceptors() []Interceptor {
	return c.inters.ImageEmbedding
}

func (c *ImageEmbeddingClient) mutate(ctx context.Context, m *ImageEmbeddingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImageEmbeddingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImageEmbeddingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImageEmbeddingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImageEmbeddingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ImageEmbedding mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CurationJob, ImageEmbedding []ent.Hook
	}
	inters struct {
		CurationJob, ImageEmbedding []ent.Interceptor
	}
)
