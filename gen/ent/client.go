// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/voyagedesk/passport-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/voyagedesk/passport-tracker/gen/ent/invitation"
	"github.com/voyagedesk/passport-tracker/gen/ent/ocrjob"
	"github.com/voyagedesk/passport-tracker/gen/ent/passport"
	"github.com/voyagedesk/passport-tracker/gen/ent/user"
	"github.com/voyagedesk/passport-tracker/gen/ent/voyage"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Invitation is the client for interacting with the Invitation builders.
	Invitation *InvitationClient
	// OcrJob is the client for interacting with the OcrJob builders.
	OcrJob *OcrJobClient
	// Passport is the client for interacting with the Passport builders.
	Passport *PassportClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// Voyage is the client for interacting with the Voyage builders.
	Voyage *VoyageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Invitation = NewInvitationClient(c.config)
	c.OcrJob = NewOcrJobClient(c.config)
	c.Passport = NewPassportClient(c.config)
	c.User = NewUserClient(c.config)
	c.Voyage = NewVoyageClient(c.config)
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
		ctx:        ctx,
		config:     cfg,
		Invitation: NewInvitationClient(cfg),
		OcrJob:     NewOcrJobClient(cfg),
		Passport:   NewPassportClient(cfg),
		User:       NewUserClient(cfg),
		Voyage:     NewVoyageClient(cfg),
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
		ctx:        ctx,
		config:     cfg,
		Invitation: NewInvitationClient(cfg),
		OcrJob:     NewOcrJobClient(cfg),
		Passport:   NewPassportClient(cfg),
		User:       NewUserClient(cfg),
		Voyage:     NewVoyageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Invitation.
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
	c.Invitation.Use(hooks...)
	c.OcrJob.Use(hooks...)
	c.Passport.Use(hooks...)
	c.User.Use(hooks...)
	c.Voyage.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Invitation.Intercept(interceptors...)
	c.OcrJob.Intercept(interceptors...)
	c.Passport.Intercept(interceptors...)
	c.User.Intercept(interceptors...)
	c.Voyage.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *InvitationMutation:
		return c.Invitation.mutate(ctx, m)
	case *OcrJobMutation:
		return c.OcrJob.mutate(ctx, m)
	case *PassportMutation:
		return c.Passport.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *VoyageMutation:
		return c.Voyage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// InvitationClient is a client for the Invitation schema.
type InvitationClient struct {
	config
}

// NewInvitationClient returns a client for the Invitation from the given config.
func NewInvitationClient(c config) *InvitationClient {
	return &InvitationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invitation.Hooks(f(g(h())))`.
func (c *InvitationClient) Use(hooks ...Hook) {
	c.hooks.Invitation = append(c.hooks.Invitation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invitation.Intercept(f(g(h())))`.
func (c *InvitationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Invitation = append(c.inters.Invitation, interceptors...)
}

// Create returns a builder for creating a Invitation entity.
func (c *InvitationClient) Create() *InvitationCreate {
	mutation := newInvitationMutation(c.config, OpCreate)
	return &InvitationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Invitation entities.
func (c *InvitationClient) CreateBulk(builders ...*InvitationCreate) *InvitationCreateBulk {
	return &InvitationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvitationClient) MapCreateBulk(slice any, setFunc func(*InvitationCreate, int)) *InvitationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvitationCreateBulk{err: fmt.Errorf("calling to InvitationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvitationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvitationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Invitation.
func (c *InvitationClient) Update() *InvitationUpdate {
	mutation := newInvitationMutation(c.config, OpUpdate)
	return &InvitationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvitationClient) UpdateOne(_m *Invitation) *InvitationUpdateOne {
	mutation := newInvitationMutation(c.config, OpUpdateOne, withInvitation(_m))
	return &InvitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvitationClient) UpdateOneID(id uuid.UUID) *InvitationUpdateOne {
	mutation := newInvitationMutation(c.config, OpUpdateOne, withInvitationID(id))
	return &InvitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Invitation.
func (c *InvitationClient) Delete() *InvitationDelete {
	mutation := newInvitationMutation(c.config, OpDelete)
	return &InvitationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvitationClient) DeleteOne(_m *Invitation) *InvitationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvitationClient) DeleteOneID(id uuid.UUID) *InvitationDeleteOne {
	builder := c.Delete().Where(invitation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvitationDeleteOne{builder}
}

// Query returns a query builder for Invitation.
func (c *InvitationClient) Query() *InvitationQuery {
	return &InvitationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvitation},
		inters: c.Interceptors(),
	}
}

// Get returns a Invitation entity by its id.
func (c *InvitationClient) Get(ctx context.Context, id uuid.UUID) (*Invitation, error) {
	return c.Query().Where(invitation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvitationClient) GetX(ctx context.Context, id uuid.UUID) *Invitation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InvitationClient) Hooks() []Hook {
	return c.hooks.Invitation
}

// Interceptors returns the client interceptors.
func (c *InvitationClient) Interceptors() []Interceptor {
	return c.inters.Invitation
}

func (c *InvitationClient) mutate(ctx context.Context, m *InvitationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvitationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvitationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvitationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvitationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Invitation mutation op: %q", m.Op())
	}
}

// OcrJobClient is a client for the OcrJob schema.
type OcrJobClient struct {
	config
}

// NewOcrJobClient returns a client for the OcrJob from the given config.
func NewOcrJobClient(c config) *OcrJobClient {
	return &OcrJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ocrjob.Hooks(f(g(h())))`.
func (c *OcrJobClient) Use(hooks ...Hook) {
	c.hooks.OcrJob = append(c.hooks.OcrJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ocrjob.Intercept(f(g(h())))`.
func (c *OcrJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.OcrJob = append(c.inters.OcrJob, interceptors...)
}

// Create returns a builder for creating a OcrJob entity.
func (c *OcrJobClient) Create() *OcrJobCreate {
	mutation := newOcrJobMutation(c.config, OpCreate)
	return &OcrJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OcrJob entities.
func (c *OcrJobClient) CreateBulk(builders ...*OcrJobCreate) *OcrJobCreateBulk {
	return &OcrJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OcrJobClient) MapCreateBulk(slice any, setFunc func(*OcrJobCreate, int)) *OcrJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OcrJobCreateBulk{err: fmt.Errorf("calling to OcrJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OcrJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OcrJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OcrJob.
func (c *OcrJobClient) Update() *OcrJobUpdate {
	mutation := newOcrJobMutation(c.config, OpUpdate)
	return &OcrJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OcrJobClient) UpdateOne(_m *OcrJob) *OcrJobUpdateOne {
	mutation := newOcrJobMutation(c.config, OpUpdateOne, withOcrJob(_m))
	return &OcrJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OcrJobClient) UpdateOneID(id uuid.UUID) *OcrJobUpdateOne {
	mutation := newOcrJobMutation(c.config, OpUpdateOne, withOcrJobID(id))
	return &OcrJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OcrJob.
func (c *OcrJobClient) Delete() *OcrJobDelete {
	mutation := newOcrJobMutation(c.config, OpDelete)
	return &OcrJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OcrJobClient) DeleteOne(_m *OcrJob) *OcrJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OcrJobClient) DeleteOneID(id uuid.UUID) *OcrJobDeleteOne {
	builder := c.Delete().Where(ocrjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OcrJobDeleteOne{builder}
}

// Query returns a query builder for OcrJob.
func (c *OcrJobClient) Query() *OcrJobQuery {
	return &OcrJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOcrJob},
		inters: c.Interceptors(),
	}
}

// Get returns a OcrJob entity by its id.
func (c *OcrJobClient) Get(ctx context.Context, id uuid.UUID) (*OcrJob, error) {
	return c.Query().Where(ocrjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OcrJobClient) GetX(ctx context.Context, id uuid.UUID) *OcrJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a OcrJob.
func (c *OcrJobClient) QueryUser(_m *OcrJob) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ocrjob.Table, ocrjob.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ocrjob.UserTable, ocrjob.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OcrJobClient) Hooks() []Hook {
	return c.hooks.OcrJob
}

// Interceptors returns the client interceptors.
func (c *OcrJobClient) Interceptors() []Interceptor {
	return c.inters.OcrJob
}

func (c *OcrJobClient) mutate(ctx context.Context, m *OcrJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OcrJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OcrJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OcrJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OcrJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OcrJob mutation op: %q", m.Op())
	}
}

// PassportClient is a client for the Passport schema.
type PassportClient struct {
	config
}

// NewPassportClient returns a client for the Passport from the given config.
func NewPassportClient(c config) *PassportClient {
	return &PassportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `passport.Hooks(f(g(h())))`.
func (c *PassportClient) Use(hooks ...Hook) {
	c.hooks.Passport = append(c.hooks.Passport, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `passport.Intercept(f(g(h())))`.
func (c *PassportClient) Intercept(interceptors ...Interceptor) {
	c.inters.Passport = append(c.inters.Passport, interceptors...)
}

// Create returns a builder for creating a Passport entity.
func (c *PassportClient) Create() *PassportCreate {
	mutation := newPassportMutation(c.config, OpCreate)
	return &PassportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Passport entities.
func (c *PassportClient) CreateBulk(builders ...*PassportCreate) *PassportCreateBulk {
	return &PassportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PassportClient) MapCreateBulk(slice any, setFunc func(*PassportCreate, int)) *PassportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PassportCreateBulk{err: fmt.Errorf("calling to PassportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PassportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PassportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Passport.
func (c *PassportClient) Update() *PassportUpdate {
	mutation := newPassportMutation(c.config, OpUpdate)
	return &PassportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PassportClient) UpdateOne(_m *Passport) *PassportUpdateOne {
	mutation := newPassportMutation(c.config, OpUpdateOne, withPassport(_m))
	return &PassportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PassportClient) UpdateOneID(id uuid.UUID) *PassportUpdateOne {
	mutation := newPassportMutation(c.config, OpUpdateOne, withPassportID(id))
	return &PassportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Passport.
func (c *PassportClient) Delete() *PassportDelete {
	mutation := newPassportMutation(c.config, OpDelete)
	return &PassportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PassportClient) DeleteOne(_m *Passport) *PassportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PassportClient) DeleteOneID(id uuid.UUID) *PassportDeleteOne {
	builder := c.Delete().Where(passport.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PassportDeleteOne{builder}
}

// Query returns a query builder for Passport.
func (c *PassportClient) Query() *PassportQuery {
	return &PassportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePassport},
		inters: c.Interceptors(),
	}
}

// Get returns a Passport entity by its id.
func (c *PassportClient) Get(ctx context.Context, id uuid.UUID) (*Passport, error) {
	return c.Query().Where(passport.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PassportClient) GetX(ctx context.Context, id uuid.UUID) *Passport {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOwner queries the owner edge of a Passport.
func (c *PassportClient) QueryOwner(_m *Passport) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(passport.Table, passport.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, passport.OwnerTable, passport.OwnerColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVoyage queries the voyage edge of a Passport.
func (c *PassportClient) QueryVoyage(_m *Passport) *VoyageQuery {
	query := (&VoyageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(passport.Table, passport.FieldID, id),
			sqlgraph.To(voyage.Table, voyage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, passport.VoyageTable, passport.VoyageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PassportClient) Hooks() []Hook {
	return c.hooks.Passport
}

// Interceptors returns the client interceptors.
func (c *PassportClient) Interceptors() []Interceptor {
	return c.inters.Passport
}

func (c *PassportClient) mutate(ctx context.Context, m *PassportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PassportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PassportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PassportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PassportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Passport mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPassports queries the passports edge of a User.
func (c *UserClient) QueryPassports(_m *User) *PassportQuery {
	query := (&PassportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(passport.Table, passport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.PassportsTable, user.PassportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVoyages queries the voyages edge of a User.
func (c *UserClient) QueryVoyages(_m *User) *VoyageQuery {
	query := (&VoyageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(voyage.Table, voyage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.VoyagesTable, user.VoyagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a User.
func (c *UserClient) QueryJobs(_m *User) *OcrJobQuery {
	query := (&OcrJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(ocrjob.Table, ocrjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.JobsTable, user.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// VoyageClient is a client for the Voyage schema.
type VoyageClient struct {
	config
}

// NewVoyageClient returns a client for the Voyage from the given config.
func NewVoyageClient(c config) *VoyageClient {
	return &VoyageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `voyage.Hooks(f(g(h())))`.
func (c *VoyageClient) Use(hooks ...Hook) {
	c.hooks.Voyage = append(c.hooks.Voyage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `voyage.Intercept(f(g(h())))`.
func (c *VoyageClient) Intercept(interceptors ...Interceptor) {
	c.inters.Voyage = append(c.inters.Voyage, interceptors...)
}

// Create returns a builder for creating a Voyage entity.
func (c *VoyageClient) Create() *VoyageCreate {
	mutation := newVoyageMutation(c.config, OpCreate)
	return &VoyageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Voyage entities.
func (c *VoyageClient) CreateBulk(builders ...*VoyageCreate) *VoyageCreateBulk {
	return &VoyageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VoyageClient) MapCreateBulk(slice any, setFunc func(*VoyageCreate, int)) *VoyageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VoyageCreateBulk{err: fmt.Errorf("calling to VoyageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VoyageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VoyageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Voyage.
func (c *VoyageClient) Update() *VoyageUpdate {
	mutation := newVoyageMutation(c.config, OpUpdate)
	return &VoyageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VoyageClient) UpdateOne(_m *Voyage) *VoyageUpdateOne {
	mutation := newVoyageMutation(c.config, OpUpdateOne, withVoyage(_m))
	return &VoyageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VoyageClient) UpdateOneID(id uuid.UUID) *VoyageUpdateOne {
	mutation := newVoyageMutation(c.config, OpUpdateOne, withVoyageID(id))
	return &VoyageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Voyage.
func (c *VoyageClient) Delete() *VoyageDelete {
	mutation := newVoyageMutation(c.config, OpDelete)
	return &VoyageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VoyageClient) DeleteOne(_m *Voyage) *VoyageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VoyageClient) DeleteOneID(id uuid.UUID) *VoyageDeleteOne {
	builder := c.Delete().Where(voyage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VoyageDeleteOne{builder}
}

// Query returns a query builder for Voyage.
func (c *VoyageClient) Query() *VoyageQuery {
	return &VoyageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVoyage},
		inters: c.Interceptors(),
	}
}

// Get returns a Voyage entity by its id.
func (c *VoyageClient) Get(ctx context.Context, id uuid.UUID) (*Voyage, error) {
	return c.Query().Where(voyage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VoyageClient) GetX(ctx context.Context, id uuid.UUID) *Voyage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Voyage.
func (c *VoyageClient) QueryUser(_m *Voyage) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(voyage.Table, voyage.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, voyage.UserTable, voyage.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPassports queries the passports edge of a Voyage.
func (c *VoyageClient) QueryPassports(_m *Voyage) *PassportQuery {
	query := (&PassportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(voyage.Table, voyage.FieldID, id),
			sqlgraph.To(passport.Table, passport.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, voyage.PassportsTable, voyage.PassportsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *VoyageClient) Hooks() []Hook {
	return c.hooks.Voyage
}

// Interceptors returns the client interceptors.
func (c *VoyageClient) Interceptors() []Interceptor {
	return c.inters.Voyage
}

func (c *VoyageClient) mutate(ctx context.Context, m *VoyageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VoyageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VoyageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VoyageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VoyageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Voyage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Invitation, OcrJob, Passport, User, Voyage []ent.Hook
	}
	inters struct {
		Invitation, OcrJob, Passport, User, Voyage []ent.Interceptor
	}
)
