// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/devflow-ai/devflow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/devflow-ai/devflow/ent/abtest"
	"github.com/devflow-ai/devflow/ent/abtestresult"
	"github.com/devflow-ai/devflow/ent/codingtask"
	"github.com/devflow-ai/devflow/ent/feedback"
	"github.com/devflow-ai/devflow/ent/modelmetric"
	"github.com/devflow-ai/devflow/ent/taskexecution"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ABTest is the client for interacting with the ABTest builders.
	ABTest *ABTestClient
	// ABTestResult is the client for interacting with the ABTestResult builders.
	ABTestResult *ABTestResultClient
	// CodingTask is the client for interacting with the CodingTask builders.
	CodingTask *CodingTaskClient
	// Feedback is the client for interacting with the Feedback builders.
	Feedback *FeedbackClient
	// ModelMetric is the client for interacting with the ModelMetric builders.
	ModelMetric *ModelMetricClient
	// TaskExecution is the client for interacting with the TaskExecution builders.
	TaskExecution *TaskExecutionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ABTest = NewABTestClient(c.config)
	c.ABTestResult = NewABTestResultClient(c.config)
	c.CodingTask = NewCodingTaskClient(c.config)
	c.Feedback = NewFeedbackClient(c.config)
	c.ModelMetric = NewModelMetricClient(c.config)
	c.TaskExecution = NewTaskExecutionClient(c.config)
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
		ABTest:        NewABTestClient(cfg),
		ABTestResult:  NewABTestResultClient(cfg),
		CodingTask:    NewCodingTaskClient(cfg),
		Feedback:      NewFeedbackClient(cfg),
		ModelMetric:   NewModelMetricClient(cfg),
		TaskExecution: NewTaskExecutionClient(cfg),
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
		ABTest:        NewABTestClient(cfg),
		ABTestResult:  NewABTestResultClient(cfg),
		CodingTask:    NewCodingTaskClient(cfg),
		Feedback:      NewFeedbackClient(cfg),
		ModelMetric:   NewModelMetricClient(cfg),
		TaskExecution: NewTaskExecutionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ABTest.
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
		c.ABTest, c.ABTestResult, c.CodingTask, c.Feedback, c.ModelMetric,
		c.TaskExecution,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ABTest, c.ABTestResult, c.CodingTask, c.Feedback, c.ModelMetric,
		c.TaskExecution,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ABTestMutation:
		return c.ABTest.mutate(ctx, m)
	case *ABTestResultMutation:
		return c.ABTestResult.mutate(ctx, m)
	case *CodingTaskMutation:
		return c.CodingTask.mutate(ctx, m)
	case *FeedbackMutation:
		return c.Feedback.mutate(ctx, m)
	case *ModelMetricMutation:
		return c.ModelMetric.mutate(ctx, m)
	case *TaskExecutionMutation:
		return c.TaskExecution.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ABTestClient is a client for the ABTest schema.
type ABTestClient struct {
	config
}

// NewABTestClient returns a client for the ABTest from the given config.
func NewABTestClient(c config) *ABTestClient {
	return &ABTestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `abtest.Hooks(f(g(h())))`.
func (c *ABTestClient) Use(hooks ...Hook) {
	c.hooks.ABTest = append(c.hooks.ABTest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `abtest.Intercept(f(g(h())))`.
func (c *ABTestClient) Intercept(interceptors ...Interceptor) {
	c.inters.ABTest = append(c.inters.ABTest, interceptors...)
}

// Create returns a builder for creating a ABTest entity.
func (c *ABTestClient) Create() *ABTestCreate {
	mutation := newABTestMutation(c.config, OpCreate)
	return &ABTestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ABTest entities.
func (c *ABTestClient) CreateBulk(builders ...*ABTestCreate) *ABTestCreateBulk {
	return &ABTestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ABTestClient) MapCreateBulk(slice any, setFunc func(*ABTestCreate, int)) *ABTestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ABTestCreateBulk{err: fmt.Errorf("calling to ABTestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ABTestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ABTestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ABTest.
func (c *ABTestClient) Update() *ABTestUpdate {
	mutation := newABTestMutation(c.config, OpUpdate)
	return &ABTestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ABTestClient) UpdateOne(_m *ABTest) *ABTestUpdateOne {
	mutation := newABTestMutation(c.config, OpUpdateOne, withABTest(_m))
	return &ABTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ABTestClient) UpdateOneID(id string) *ABTestUpdateOne {
	mutation := newABTestMutation(c.config, OpUpdateOne, withABTestID(id))
	return &ABTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ABTest.
func (c *ABTestClient) Delete() *ABTestDelete {
	mutation := newABTestMutation(c.config, OpDelete)
	return &ABTestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ABTestClient) DeleteOne(_m *ABTest) *ABTestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ABTestClient) DeleteOneID(id string) *ABTestDeleteOne {
	builder := c.Delete().Where(abtest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ABTestDeleteOne{builder}
}

// Query returns a query builder for ABTest.
func (c *ABTestClient) Query() *ABTestQuery {
	return &ABTestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeABTest},
		inters: c.Interceptors(),
	}
}

// Get returns a ABTest entity by its id.
func (c *ABTestClient) Get(ctx context.Context, id string) (*ABTest, error) {
	return c.Query().Where(abtest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ABTestClient) GetX(ctx context.Context, id string) *ABTest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryResults queries the results edge of a ABTest.
func (c *ABTestClient) QueryResults(_m *ABTest) *ABTestResultQuery {
	query := (&ABTestResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(abtest.Table, abtest.FieldID, id),
			sqlgraph.To(abtestresult.Table, abtestresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, abtest.ResultsTable, abtest.ResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ABTestClient) Hooks() []Hook {
	return c.hooks.ABTest
}

// Interceptors returns the client interceptors.
func (c *ABTestClient) Interceptors() []Interceptor {
	return c.inters.ABTest
}

func (c *ABTestClient) mutate(ctx context.Context, m *ABTestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ABTestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ABTestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ABTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ABTestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ABTest mutation op: %q", m.Op())
	}
}

// ABTestResultClient is a client for the ABTestResult schema.
type ABTestResultClient struct {
	config
}

// NewABTestResultClient returns a client for the ABTestResult from the given config.
func NewABTestResultClient(c config) *ABTestResultClient {
	return &ABTestResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `abtestresult.Hooks(f(g(h())))`.
func (c *ABTestResultClient) Use(hooks ...Hook) {
	c.hooks.ABTestResult = append(c.hooks.ABTestResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `abtestresult.Intercept(f(g(h())))`.
func (c *ABTestResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.ABTestResult = append(c.inters.ABTestResult, interceptors...)
}

// Create returns a builder for creating a ABTestResult entity.
func (c *ABTestResultClient) Create() *ABTestResultCreate {
	mutation := newABTestResultMutation(c.config, OpCreate)
	return &ABTestResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ABTestResult entities.
func (c *ABTestResultClient) CreateBulk(builders ...*ABTestResultCreate) *ABTestResultCreateBulk {
	return &ABTestResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ABTestResultClient) MapCreateBulk(slice any, setFunc func(*ABTestResultCreate, int)) *ABTestResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ABTestResultCreateBulk{err: fmt.Errorf("calling to ABTestResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ABTestResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ABTestResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ABTestResult.
func (c *ABTestResultClient) Update() *ABTestResultUpdate {
	mutation := newABTestResultMutation(c.config, OpUpdate)
	return &ABTestResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ABTestResultClient) UpdateOne(_m *ABTestResult) *ABTestResultUpdateOne {
	mutation := newABTestResultMutation(c.config, OpUpdateOne, withABTestResult(_m))
	return &ABTestResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ABTestResultClient) UpdateOneID(id string) *ABTestResultUpdateOne {
	mutation := newABTestResultMutation(c.config, OpUpdateOne, withABTestResultID(id))
	return &ABTestResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ABTestResult.
func (c *ABTestResultClient) Delete() *ABTestResultDelete {
	mutation := newABTestResultMutation(c.config, OpDelete)
	return &ABTestResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ABTestResultClient) DeleteOne(_m *ABTestResult) *ABTestResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ABTestResultClient) DeleteOneID(id string) *ABTestResultDeleteOne {
	builder := c.Delete().Where(abtestresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ABTestResultDeleteOne{builder}
}

// Query returns a query builder for ABTestResult.
func (c *ABTestResultClient) Query() *ABTestResultQuery {
	return &ABTestResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeABTestResult},
		inters: c.Interceptors(),
	}
}

// Get returns a ABTestResult entity by its id.
func (c *ABTestResultClient) Get(ctx context.Context, id string) (*ABTestResult, error) {
	return c.Query().Where(abtestresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ABTestResultClient) GetX(ctx context.Context, id string) *ABTestResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTest queries the test edge of a ABTestResult.
func (c *ABTestResultClient) QueryTest(_m *ABTestResult) *ABTestQuery {
	query := (&ABTestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(abtestresult.Table, abtestresult.FieldID, id),
			sqlgraph.To(abtest.Table, abtest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, abtestresult.TestTable, abtestresult.TestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ABTestResultClient) Hooks() []Hook {
	return c.hooks.ABTestResult
}

// Interceptors returns the client interceptors.
func (c *ABTestResultClient) Interceptors() []Interceptor {
	return c.inters.ABTestResult
}

func (c *ABTestResultClient) mutate(ctx context.Context, m *ABTestResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ABTestResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ABTestResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ABTestResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ABTestResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ABTestResult mutation op: %q", m.Op())
	}
}

// CodingTaskClient is a client for the CodingTask schema.
type CodingTaskClient struct {
	config
}

// NewCodingTaskClient returns a client for the CodingTask from the given config.
func NewCodingTaskClient(c config) *CodingTaskClient {
	return &CodingTaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `codingtask.Hooks(f(g(h())))`.
func (c *CodingTaskClient) Use(hooks ...Hook) {
	c.hooks.CodingTask = append(c.hooks.CodingTask, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `codingtask.Intercept(f(g(h())))`.
func (c *CodingTaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.CodingTask = append(c.inters.CodingTask, interceptors...)
}

// Create returns a builder for creating a CodingTask entity.
func (c *CodingTaskClient) Create() *CodingTaskCreate {
	mutation := newCodingTaskMutation(c.config, OpCreate)
	return &CodingTaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CodingTask entities.
func (c *CodingTaskClient) CreateBulk(builders ...*CodingTaskCreate) *CodingTaskCreateBulk {
	return &CodingTaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CodingTaskClient) MapCreateBulk(slice any, setFunc func(*CodingTaskCreate, int)) *CodingTaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CodingTaskCreateBulk{err: fmt.Errorf("calling to CodingTaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CodingTaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CodingTaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CodingTask.
func (c *CodingTaskClient) Update() *CodingTaskUpdate {
	mutation := newCodingTaskMutation(c.config, OpUpdate)
	return &CodingTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CodingTaskClient) UpdateOne(_m *CodingTask) *CodingTaskUpdateOne {
	mutation := newCodingTaskMutation(c.config, OpUpdateOne, withCodingTask(_m))
	return &CodingTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CodingTaskClient) UpdateOneID(id string) *CodingTaskUpdateOne {
	mutation := newCodingTaskMutation(c.config, OpUpdateOne, withCodingTaskID(id))
	return &CodingTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CodingTask.
func (c *CodingTaskClient) Delete() *CodingTaskDelete {
	mutation := newCodingTaskMutation(c.config, OpDelete)
	return &CodingTaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CodingTaskClient) DeleteOne(_m *CodingTask) *CodingTaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CodingTaskClient) DeleteOneID(id string) *CodingTaskDeleteOne {
	builder := c.Delete().Where(codingtask.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CodingTaskDeleteOne{builder}
}

// Query returns a query builder for CodingTask.
func (c *CodingTaskClient) Query() *CodingTaskQuery {
	return &CodingTaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCodingTask},
		inters: c.Interceptors(),
	}
}

// Get returns a CodingTask entity by its id.
func (c *CodingTaskClient) Get(ctx context.Context, id string) (*CodingTask, error) {
	return c.Query().Where(codingtask.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CodingTaskClient) GetX(ctx context.Context, id string) *CodingTask {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryExecutions queries the executions edge of a CodingTask.
func (c *CodingTaskClient) QueryExecutions(_m *CodingTask) *TaskExecutionQuery {
	query := (&TaskExecutionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(codingtask.Table, codingtask.FieldID, id),
			sqlgraph.To(taskexecution.Table, taskexecution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, codingtask.ExecutionsTable, codingtask.ExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFeedback queries the feedback edge of a CodingTask.
func (c *CodingTaskClient) QueryFeedback(_m *CodingTask) *FeedbackQuery {
	query := (&FeedbackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(codingtask.Table, codingtask.FieldID, id),
			sqlgraph.To(feedback.Table, feedback.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, codingtask.FeedbackTable, codingtask.FeedbackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CodingTaskClient) Hooks() []Hook {
	return c.hooks.CodingTask
}

// Interceptors returns the client interceptors.
func (c *CodingTaskClient) Interceptors() []Interceptor {
	return c.inters.CodingTask
}

func (c *CodingTaskClient) mutate(ctx context.Context, m *CodingTaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CodingTaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CodingTaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CodingTaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CodingTaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CodingTask mutation op: %q", m.Op())
	}
}

// FeedbackClient is a client for the Feedback schema.
type FeedbackClient struct {
	config
}

// NewFeedbackClient returns a client for the Feedback from the given config.
func NewFeedbackClient(c config) *FeedbackClient {
	return &FeedbackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `feedback.Hooks(f(g(h())))`.
func (c *FeedbackClient) Use(hooks ...Hook) {
	c.hooks.Feedback = append(c.hooks.Feedback, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `feedback.Intercept(f(g(h())))`.
func (c *FeedbackClient) Intercept(interceptors ...Interceptor) {
	c.inters.Feedback = append(c.inters.Feedback, interceptors...)
}

// Create returns a builder for creating a Feedback entity.
func (c *FeedbackClient) Create() *FeedbackCreate {
	mutation := newFeedbackMutation(c.config, OpCreate)
	return &FeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Feedback entities.
func (c *FeedbackClient) CreateBulk(builders ...*FeedbackCreate) *FeedbackCreateBulk {
	return &FeedbackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeedbackClient) MapCreateBulk(slice any, setFunc func(*FeedbackCreate, int)) *FeedbackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeedbackCreateBulk{err: fmt.Errorf("calling to FeedbackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeedbackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeedbackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Feedback.
func (c *FeedbackClient) Update() *FeedbackUpdate {
	mutation := newFeedbackMutation(c.config, OpUpdate)
	return &FeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeedbackClient) UpdateOne(_m *Feedback) *FeedbackUpdateOne {
	mutation := newFeedbackMutation(c.config, OpUpdateOne, withFeedback(_m))
	return &FeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeedbackClient) UpdateOneID(id string) *FeedbackUpdateOne {
	mutation := newFeedbackMutation(c.config, OpUpdateOne, withFeedbackID(id))
	return &FeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Feedback.
func (c *FeedbackClient) Delete() *FeedbackDelete {
	mutation := newFeedbackMutation(c.config, OpDelete)
	return &FeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeedbackClient) DeleteOne(_m *Feedback) *FeedbackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeedbackClient) DeleteOneID(id string) *FeedbackDeleteOne {
	builder := c.Delete().Where(feedback.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeedbackDeleteOne{builder}
}

// Query returns a query builder for Feedback.
func (c *FeedbackClient) Query() *FeedbackQuery {
	return &FeedbackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeedback},
		inters: c.Interceptors(),
	}
}

// Get returns a Feedback entity by its id.
func (c *FeedbackClient) Get(ctx context.Context, id string) (*Feedback, error) {
	return c.Query().Where(feedback.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeedbackClient) GetX(ctx context.Context, id string) *Feedback {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a Feedback.
func (c *FeedbackClient) QueryTask(_m *Feedback) *CodingTaskQuery {
	query := (&CodingTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(feedback.Table, feedback.FieldID, id),
			sqlgraph.To(codingtask.Table, codingtask.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, feedback.TaskTable, feedback.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FeedbackClient) Hooks() []Hook {
	return c.hooks.Feedback
}

// Interceptors returns the client interceptors.
func (c *FeedbackClient) Interceptors() []Interceptor {
	return c.inters.Feedback
}

func (c *FeedbackClient) mutate(ctx context.Context, m *FeedbackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeedbackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeedbackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeedbackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeedbackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Feedback mutation op: %q", m.Op())
	}
}

// ModelMetricClient is a client for the ModelMetric schema.
type ModelMetricClient struct {
	config
}

// NewModelMetricClient returns a client for the ModelMetric from the given config.
func NewModelMetricClient(c config) *ModelMetricClient {
	return &ModelMetricClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `modelmetric.Hooks(f(g(h())))`.
func (c *ModelMetricClient) Use(hooks ...Hook) {
	c.hooks.ModelMetric = append(c.hooks.ModelMetric, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `modelmetric.Intercept(f(g(h())))`.
func (c *ModelMetricClient) Intercept(interceptors ...Interceptor) {
	c.inters.ModelMetric = append(c.inters.ModelMetric, interceptors...)
}

// Create returns a builder for creating a ModelMetric entity.
func (c *ModelMetricClient) Create() *ModelMetricCreate {
	mutation := newModelMetricMutation(c.config, OpCreate)
	return &ModelMetricCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ModelMetric entities.
func (c *ModelMetricClient) CreateBulk(builders ...*ModelMetricCreate) *ModelMetricCreateBulk {
	return &ModelMetricCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ModelMetricClient) MapCreateBulk(slice any, setFunc func(*ModelMetricCreate, int)) *ModelMetricCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ModelMetricCreateBulk{err: fmt.Errorf("calling to ModelMetricClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ModelMetricCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ModelMetricCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ModelMetric.
func (c *ModelMetricClient) Update() *ModelMetricUpdate {
	mutation := newModelMetricMutation(c.config, OpUpdate)
	return &ModelMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ModelMetricClient) UpdateOne(_m *ModelMetric) *ModelMetricUpdateOne {
	mutation := newModelMetricMutation(c.config, OpUpdateOne, withModelMetric(_m))
	return &ModelMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ModelMetricClient) UpdateOneID(id string) *ModelMetricUpdateOne {
	mutation := newModelMetricMutation(c.config, OpUpdateOne, withModelMetricID(id))
	return &ModelMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ModelMetric.
func (c *ModelMetricClient) Delete() *ModelMetricDelete {
	mutation := newModelMetricMutation(c.config, OpDelete)
	return &ModelMetricDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ModelMetricClient) DeleteOne(_m *ModelMetric) *ModelMetricDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ModelMetricClient) DeleteOneID(id string) *ModelMetricDeleteOne {
	builder := c.Delete().Where(modelmetric.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ModelMetricDeleteOne{builder}
}

// Query returns a query builder for ModelMetric.
func (c *ModelMetricClient) Query() *ModelMetricQuery {
	return &ModelMetricQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeModelMetric},
		inters: c.Interceptors(),
	}
}

// Get returns a ModelMetric entity by its id.
func (c *ModelMetricClient) Get(ctx context.Context, id string) (*ModelMetric, error) {
	return c.Query().Where(modelmetric.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ModelMetricClient) GetX(ctx context.Context, id string) *ModelMetric {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ModelMetricClient) Hooks() []Hook {
	return c.hooks.ModelMetric
}

// Interceptors returns the client interceptors.
func (c *ModelMetricClient) Interceptors() []Interceptor {
	return c.inters.ModelMetric
}

func (c *ModelMetricClient) mutate(ctx context.Context, m *ModelMetricMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ModelMetricCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ModelMetricUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ModelMetricUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ModelMetricDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ModelMetric mutation op: %q", m.Op())
	}
}

// TaskExecutionClient is a client for the TaskExecution schema.
type TaskExecutionClient struct {
	config
}

// NewTaskExecutionClient returns a client for the TaskExecution from the given config.
func NewTaskExecutionClient(c config) *TaskExecutionClient {
	return &TaskExecutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `taskexecution.Hooks(f(g(h())))`.
func (c *TaskExecutionClient) Use(hooks ...Hook) {
	c.hooks.TaskExecution = append(c.hooks.TaskExecution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `taskexecution.Intercept(f(g(h())))`.
func (c *TaskExecutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.TaskExecution = append(c.inters.TaskExecution, interceptors...)
}

// Create returns a builder for creating a TaskExecution entity.
func (c *TaskExecutionClient) Create() *TaskExecutionCreate {
	mutation := newTaskExecutionMutation(c.config, OpCreate)
	return &TaskExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TaskExecution entities.
func (c *TaskExecutionClient) CreateBulk(builders ...*TaskExecutionCreate) *TaskExecutionCreateBulk {
	return &TaskExecutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskExecutionClient) MapCreateBulk(slice any, setFunc func(*TaskExecutionCreate, int)) *TaskExecutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskExecutionCreateBulk{err: fmt.Errorf("calling to TaskExecutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskExecutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskExecutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TaskExecution.
func (c *TaskExecutionClient) Update() *TaskExecutionUpdate {
	mutation := newTaskExecutionMutation(c.config, OpUpdate)
	return &TaskExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskExecutionClient) UpdateOne(_m *TaskExecution) *TaskExecutionUpdateOne {
	mutation := newTaskExecutionMutation(c.config, OpUpdateOne, withTaskExecution(_m))
	return &TaskExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskExecutionClient) UpdateOneID(id string) *TaskExecutionUpdateOne {
	mutation := newTaskExecutionMutation(c.config, OpUpdateOne, withTaskExecutionID(id))
	return &TaskExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TaskExecution.
func (c *TaskExecutionClient) Delete() *TaskExecutionDelete {
	mutation := newTaskExecutionMutation(c.config, OpDelete)
	return &TaskExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskExecutionClient) DeleteOne(_m *TaskExecution) *TaskExecutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskExecutionClient) DeleteOneID(id string) *TaskExecutionDeleteOne {
	builder := c.Delete().Where(taskexecution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskExecutionDeleteOne{builder}
}

// Query returns a query builder for TaskExecution.
func (c *TaskExecutionClient) Query() *TaskExecutionQuery {
	return &TaskExecutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTaskExecution},
		inters: c.Interceptors(),
	}
}

// Get returns a TaskExecution entity by its id.
func (c *TaskExecutionClient) Get(ctx context.Context, id string) (*TaskExecution, error) {
	return c.Query().Where(taskexecution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskExecutionClient) GetX(ctx context.Context, id string) *TaskExecution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a TaskExecution.
func (c *TaskExecutionClient) QueryTask(_m *TaskExecution) *CodingTaskQuery {
	query := (&CodingTaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(taskexecution.Table, taskexecution.FieldID, id),
			sqlgraph.To(codingtask.Table, codingtask.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, taskexecution.TaskTable, taskexecution.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskExecutionClient) Hooks() []Hook {
	return c.hooks.TaskExecution
}

// Interceptors returns the client interceptors.
func (c *TaskExecutionClient) Interceptors() []Interceptor {
	return c.inters.TaskExecution
}

func (c *TaskExecutionClient) mutate(ctx context.Context, m *TaskExecutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskExecutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskExecutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskExecutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskExecutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TaskExecution mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ABTest, ABTestResult, CodingTask, Feedback, ModelMetric,
		TaskExecution []ent.Hook
	}
	inters struct {
		ABTest, ABTestResult, CodingTask, Feedback, ModelMetric,
		TaskExecution []ent.Interceptor
	}
)
