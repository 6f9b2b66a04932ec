// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/reddalert/reddalert/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/reddalert/reddalert/ent/contentitem"
	"github.com/reddalert/reddalert/ent/keywordrule"
	"github.com/reddalert/reddalert/ent/match"
	"github.com/reddalert/reddalert/ent/monitoredcommunity"
	"github.com/reddalert/reddalert/ent/tenant"
	"github.com/reddalert/reddalert/ent/webhookendpoint"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ContentItem is the client for interacting with the ContentItem builders.
	ContentItem *ContentItemClient
	// KeywordRule is the client for interacting with the KeywordRule builders.
	KeywordRule *KeywordRuleClient
	// Match is the client for interacting with the Match builders.
	Match *MatchClient
	// MonitoredCommunity is the client for interacting with the MonitoredCommunity builders.
	MonitoredCommunity *MonitoredCommunityClient
	// Tenant is the client for interacting with the Tenant builders.
	Tenant *TenantClient
	// WebhookEndpoint is the client for interacting with the WebhookEndpoint builders.
	WebhookEndpoint *WebhookEndpointClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ContentItem = NewContentItemClient(c.config)
	c.KeywordRule = NewKeywordRuleClient(c.config)
	c.Match = NewMatchClient(c.config)
	c.MonitoredCommunity = NewMonitoredCommunityClient(c.config)
	c.Tenant = NewTenantClient(c.config)
	c.WebhookEndpoint = NewWebhookEndpointClient(c.config)
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
		ctx:                ctx,
		config:             cfg,
		ContentItem:        NewContentItemClient(cfg),
		KeywordRule:        NewKeywordRuleClient(cfg),
		Match:              NewMatchClient(cfg),
		MonitoredCommunity: NewMonitoredCommunityClient(cfg),
		Tenant:             NewTenantClient(cfg),
		WebhookEndpoint:    NewWebhookEndpointClient(cfg),
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
		ctx:                ctx,
		config:             cfg,
		ContentItem:        NewContentItemClient(cfg),
		KeywordRule:        NewKeywordRuleClient(cfg),
		Match:              NewMatchClient(cfg),
		MonitoredCommunity: NewMonitoredCommunityClient(cfg),
		Tenant:             NewTenantClient(cfg),
		WebhookEndpoint:    NewWebhookEndpointClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ContentItem.
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
		c.ContentItem, c.KeywordRule, c.Match, c.MonitoredCommunity, c.Tenant,
		c.WebhookEndpoint,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ContentItem, c.KeywordRule, c.Match, c.MonitoredCommunity, c.Tenant,
		c.WebhookEndpoint,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ContentItemMutation:
		return c.ContentItem.mutate(ctx, m)
	case *KeywordRuleMutation:
		return c.KeywordRule.mutate(ctx, m)
	case *MatchMutation:
		return c.Match.mutate(ctx, m)
	case *MonitoredCommunityMutation:
		return c.MonitoredCommunity.mutate(ctx, m)
	case *TenantMutation:
		return c.Tenant.mutate(ctx, m)
	case *WebhookEndpointMutation:
		return c.WebhookEndpoint.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ContentItemClient is a client for the ContentItem schema.
type ContentItemClient struct {
	config
}

// NewContentItemClient returns a client for the ContentItem from the given config.
func NewContentItemClient(c config) *ContentItemClient {
	return &ContentItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contentitem.Hooks(f(g(h())))`.
func (c *ContentItemClient) Use(hooks ...Hook) {
	c.hooks.ContentItem = append(c.hooks.ContentItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contentitem.Intercept(f(g(h())))`.
func (c *ContentItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContentItem = append(c.inters.ContentItem, interceptors...)
}

// Create returns a builder for creating a ContentItem entity.
func (c *ContentItemClient) Create() *ContentItemCreate {
	mutation := newContentItemMutation(c.config, OpCreate)
	return &ContentItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContentItem entities.
func (c *ContentItemClient) CreateBulk(builders ...*ContentItemCreate) *ContentItemCreateBulk {
	return &ContentItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentItemClient) MapCreateBulk(slice any, setFunc func(*ContentItemCreate, int)) *ContentItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentItemCreateBulk{err: fmt.Errorf("calling to ContentItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContentItem.
func (c *ContentItemClient) Update() *ContentItemUpdate {
	mutation := newContentItemMutation(c.config, OpUpdate)
	return &ContentItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentItemClient) UpdateOne(_m *ContentItem) *ContentItemUpdateOne {
	mutation := newContentItemMutation(c.config, OpUpdateOne, withContentItem(_m))
	return &ContentItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentItemClient) UpdateOneID(id string) *ContentItemUpdateOne {
	mutation := newContentItemMutation(c.config, OpUpdateOne, withContentItemID(id))
	return &ContentItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContentItem.
func (c *ContentItemClient) Delete() *ContentItemDelete {
	mutation := newContentItemMutation(c.config, OpDelete)
	return &ContentItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentItemClient) DeleteOne(_m *ContentItem) *ContentItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentItemClient) DeleteOneID(id string) *ContentItemDeleteOne {
	builder := c.Delete().Where(contentitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentItemDeleteOne{builder}
}

// Query returns a query builder for ContentItem.
func (c *ContentItemClient) Query() *ContentItemQuery {
	return &ContentItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContentItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ContentItem entity by its id.
func (c *ContentItemClient) Get(ctx context.Context, id string) (*ContentItem, error) {
	return c.Query().Where(contentitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentItemClient) GetX(ctx context.Context, id string) *ContentItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryMatches queries the matches edge of a ContentItem.
func (c *ContentItemClient) QueryMatches(_m *ContentItem) *MatchQuery {
	query := (&MatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contentitem.Table, contentitem.FieldID, id),
			sqlgraph.To(match.Table, match.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, contentitem.MatchesTable, contentitem.MatchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContentItemClient) Hooks() []Hook {
	return c.hooks.ContentItem
}

// Interceptors returns the client interceptors.
func (c *ContentItemClient) Interceptors() []Interceptor {
	return c.inters.ContentItem
}

func (c *ContentItemClient) mutate(ctx context.Context, m *ContentItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ContentItem mutation op: %q", m.Op())
	}
}

// KeywordRuleClient is a client for the KeywordRule schema.
type KeywordRuleClient struct {
	config
}

// NewKeywordRuleClient returns a client for the KeywordRule from the given config.
func NewKeywordRuleClient(c config) *KeywordRuleClient {
	return &KeywordRuleClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `keywordrule.Hooks(f(g(h())))`.
func (c *KeywordRuleClient) Use(hooks ...Hook) {
	c.hooks.KeywordRule = append(c.hooks.KeywordRule, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `keywordrule.Intercept(f(g(h())))`.
func (c *KeywordRuleClient) Intercept(interceptors ...Interceptor) {
	c.inters.KeywordRule = append(c.inters.KeywordRule, interceptors...)
}

// Create returns a builder for creating a KeywordRule entity.
func (c *KeywordRuleClient) Create() *KeywordRuleCreate {
	mutation := newKeywordRuleMutation(c.config, OpCreate)
	return &KeywordRuleCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of KeywordRule entities.
func (c *KeywordRuleClient) CreateBulk(builders ...*KeywordRuleCreate) *KeywordRuleCreateBulk {
	return &KeywordRuleCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *KeywordRuleClient) MapCreateBulk(slice any, setFunc func(*KeywordRuleCreate, int)) *KeywordRuleCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &KeywordRuleCreateBulk{err: fmt.Errorf("calling to KeywordRuleClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*KeywordRuleCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &KeywordRuleCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for KeywordRule.
func (c *KeywordRuleClient) Update() *KeywordRuleUpdate {
	mutation := newKeywordRuleMutation(c.config, OpUpdate)
	return &KeywordRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *KeywordRuleClient) UpdateOne(_m *KeywordRule) *KeywordRuleUpdateOne {
	mutation := newKeywordRuleMutation(c.config, OpUpdateOne, withKeywordRule(_m))
	return &KeywordRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *KeywordRuleClient) UpdateOneID(id string) *KeywordRuleUpdateOne {
	mutation := newKeywordRuleMutation(c.config, OpUpdateOne, withKeywordRuleID(id))
	return &KeywordRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for KeywordRule.
func (c *KeywordRuleClient) Delete() *KeywordRuleDelete {
	mutation := newKeywordRuleMutation(c.config, OpDelete)
	return &KeywordRuleDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *KeywordRuleClient) DeleteOne(_m *KeywordRule) *KeywordRuleDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *KeywordRuleClient) DeleteOneID(id string) *KeywordRuleDeleteOne {
	builder := c.Delete().Where(keywordrule.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &KeywordRuleDeleteOne{builder}
}

// Query returns a query builder for KeywordRule.
func (c *KeywordRuleClient) Query() *KeywordRuleQuery {
	return &KeywordRuleQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeKeywordRule},
		inters: c.Interceptors(),
	}
}

// Get returns a KeywordRule entity by its id.
func (c *KeywordRuleClient) Get(ctx context.Context, id string) (*KeywordRule, error) {
	return c.Query().Where(keywordrule.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *KeywordRuleClient) GetX(ctx context.Context, id string) *KeywordRule {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a KeywordRule.
func (c *KeywordRuleClient) QueryTenant(_m *KeywordRule) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(keywordrule.Table, keywordrule.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, keywordrule.TenantTable, keywordrule.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMatches queries the matches edge of a KeywordRule.
func (c *KeywordRuleClient) QueryMatches(_m *KeywordRule) *MatchQuery {
	query := (&MatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(keywordrule.Table, keywordrule.FieldID, id),
			sqlgraph.To(match.Table, match.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, keywordrule.MatchesTable, keywordrule.MatchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *KeywordRuleClient) Hooks() []Hook {
	return c.hooks.KeywordRule
}

// Interceptors returns the client interceptors.
func (c *KeywordRuleClient) Interceptors() []Interceptor {
	return c.inters.KeywordRule
}

func (c *KeywordRuleClient) mutate(ctx context.Context, m *KeywordRuleMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&KeywordRuleCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&KeywordRuleUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&KeywordRuleUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&KeywordRuleDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown KeywordRule mutation op: %q", m.Op())
	}
}

// MatchClient is a client for the Match schema.
type MatchClient struct {
	config
}

// NewMatchClient returns a client for the Match from the given config.
func NewMatchClient(c config) *MatchClient {
	return &MatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `match.Hooks(f(g(h())))`.
func (c *MatchClient) Use(hooks ...Hook) {
	c.hooks.Match = append(c.hooks.Match, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `match.Intercept(f(g(h())))`.
func (c *MatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.Match = append(c.inters.Match, interceptors...)
}

// Create returns a builder for creating a Match entity.
func (c *MatchClient) Create() *MatchCreate {
	mutation := newMatchMutation(c.config, OpCreate)
	return &MatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Match entities.
func (c *MatchClient) CreateBulk(builders ...*MatchCreate) *MatchCreateBulk {
	return &MatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MatchClient) MapCreateBulk(slice any, setFunc func(*MatchCreate, int)) *MatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MatchCreateBulk{err: fmt.Errorf("calling to MatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Match.
func (c *MatchClient) Update() *MatchUpdate {
	mutation := newMatchMutation(c.config, OpUpdate)
	return &MatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MatchClient) UpdateOne(_m *Match) *MatchUpdateOne {
	mutation := newMatchMutation(c.config, OpUpdateOne, withMatch(_m))
	return &MatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MatchClient) UpdateOneID(id string) *MatchUpdateOne {
	mutation := newMatchMutation(c.config, OpUpdateOne, withMatchID(id))
	return &MatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Match.
func (c *MatchClient) Delete() *MatchDelete {
	mutation := newMatchMutation(c.config, OpDelete)
	return &MatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MatchClient) DeleteOne(_m *Match) *MatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MatchClient) DeleteOneID(id string) *MatchDeleteOne {
	builder := c.Delete().Where(match.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MatchDeleteOne{builder}
}

// Query returns a query builder for Match.
func (c *MatchClient) Query() *MatchQuery {
	return &MatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMatch},
		inters: c.Interceptors(),
	}
}

// Get returns a Match entity by its id.
func (c *MatchClient) Get(ctx context.Context, id string) (*Match, error) {
	return c.Query().Where(match.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MatchClient) GetX(ctx context.Context, id string) *Match {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a Match.
func (c *MatchClient) QueryTenant(_m *Match) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(match.Table, match.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, match.TenantTable, match.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRule queries the rule edge of a Match.
func (c *MatchClient) QueryRule(_m *Match) *KeywordRuleQuery {
	query := (&KeywordRuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(match.Table, match.FieldID, id),
			sqlgraph.To(keywordrule.Table, keywordrule.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, match.RuleTable, match.RuleColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryContent queries the content edge of a Match.
func (c *MatchClient) QueryContent(_m *Match) *ContentItemQuery {
	query := (&ContentItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(match.Table, match.FieldID, id),
			sqlgraph.To(contentitem.Table, contentitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, match.ContentTable, match.ContentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MatchClient) Hooks() []Hook {
	return c.hooks.Match
}

// Interceptors returns the client interceptors.
func (c *MatchClient) Interceptors() []Interceptor {
	return c.inters.Match
}

func (c *MatchClient) mutate(ctx context.Context, m *MatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Match mutation op: %q", m.Op())
	}
}

// MonitoredCommunityClient is a client for the MonitoredCommunity schema.
type MonitoredCommunityClient struct {
	config
}

// NewMonitoredCommunityClient returns a client for the MonitoredCommunity from the given config.
func NewMonitoredCommunityClient(c config) *MonitoredCommunityClient {
	return &MonitoredCommunityClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `monitoredcommunity.Hooks(f(g(h())))`.
func (c *MonitoredCommunityClient) Use(hooks ...Hook) {
	c.hooks.MonitoredCommunity = append(c.hooks.MonitoredCommunity, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `monitoredcommunity.Intercept(f(g(h())))`.
func (c *MonitoredCommunityClient) Intercept(interceptors ...Interceptor) {
	c.inters.MonitoredCommunity = append(c.inters.MonitoredCommunity, interceptors...)
}

// Create returns a builder for creating a MonitoredCommunity entity.
func (c *MonitoredCommunityClient) Create() *MonitoredCommunityCreate {
	mutation := newMonitoredCommunityMutation(c.config, OpCreate)
	return &MonitoredCommunityCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MonitoredCommunity entities.
func (c *MonitoredCommunityClient) CreateBulk(builders ...*MonitoredCommunityCreate) *MonitoredCommunityCreateBulk {
	return &MonitoredCommunityCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MonitoredCommunityClient) MapCreateBulk(slice any, setFunc func(*MonitoredCommunityCreate, int)) *MonitoredCommunityCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MonitoredCommunityCreateBulk{err: fmt.Errorf("calling to MonitoredCommunityClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MonitoredCommunityCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MonitoredCommunityCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MonitoredCommunity.
func (c *MonitoredCommunityClient) Update() *MonitoredCommunityUpdate {
	mutation := newMonitoredCommunityMutation(c.config, OpUpdate)
	return &MonitoredCommunityUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MonitoredCommunityClient) UpdateOne(_m *MonitoredCommunity) *MonitoredCommunityUpdateOne {
	mutation := newMonitoredCommunityMutation(c.config, OpUpdateOne, withMonitoredCommunity(_m))
	return &MonitoredCommunityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MonitoredCommunityClient) UpdateOneID(id string) *MonitoredCommunityUpdateOne {
	mutation := newMonitoredCommunityMutation(c.config, OpUpdateOne, withMonitoredCommunityID(id))
	return &MonitoredCommunityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MonitoredCommunity.
func (c *MonitoredCommunityClient) Delete() *MonitoredCommunityDelete {
	mutation := newMonitoredCommunityMutation(c.config, OpDelete)
	return &MonitoredCommunityDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MonitoredCommunityClient) DeleteOne(_m *MonitoredCommunity) *MonitoredCommunityDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MonitoredCommunityClient) DeleteOneID(id string) *MonitoredCommunityDeleteOne {
	builder := c.Delete().Where(monitoredcommunity.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MonitoredCommunityDeleteOne{builder}
}

// Query returns a query builder for MonitoredCommunity.
func (c *MonitoredCommunityClient) Query() *MonitoredCommunityQuery {
	return &MonitoredCommunityQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMonitoredCommunity},
		inters: c.Interceptors(),
	}
}

// Get returns a MonitoredCommunity entity by its id.
func (c *MonitoredCommunityClient) Get(ctx context.Context, id string) (*MonitoredCommunity, error) {
	return c.Query().Where(monitoredcommunity.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MonitoredCommunityClient) GetX(ctx context.Context, id string) *MonitoredCommunity {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a MonitoredCommunity.
func (c *MonitoredCommunityClient) QueryTenant(_m *MonitoredCommunity) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(monitoredcommunity.Table, monitoredcommunity.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, monitoredcommunity.TenantTable, monitoredcommunity.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *MonitoredCommunityClient) Hooks() []Hook {
	return c.hooks.MonitoredCommunity
}

// Interceptors returns the client interceptors.
func (c *MonitoredCommunityClient) Interceptors() []Interceptor {
	return c.inters.MonitoredCommunity
}

func (c *MonitoredCommunityClient) mutate(ctx context.Context, m *MonitoredCommunityMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MonitoredCommunityCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MonitoredCommunityUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MonitoredCommunityUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MonitoredCommunityDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MonitoredCommunity mutation op: %q", m.Op())
	}
}

// TenantClient is a client for the Tenant schema.
type TenantClient struct {
	config
}

// NewTenantClient returns a client for the Tenant from the given config.
func NewTenantClient(c config) *TenantClient {
	return &TenantClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `tenant.Hooks(f(g(h())))`.
func (c *TenantClient) Use(hooks ...Hook) {
	c.hooks.Tenant = append(c.hooks.Tenant, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `tenant.Intercept(f(g(h())))`.
func (c *TenantClient) Intercept(interceptors ...Interceptor) {
	c.inters.Tenant = append(c.inters.Tenant, interceptors...)
}

// Create returns a builder for creating a Tenant entity.
func (c *TenantClient) Create() *TenantCreate {
	mutation := newTenantMutation(c.config, OpCreate)
	return &TenantCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Tenant entities.
func (c *TenantClient) CreateBulk(builders ...*TenantCreate) *TenantCreateBulk {
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TenantClient) MapCreateBulk(slice any, setFunc func(*TenantCreate, int)) *TenantCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TenantCreateBulk{err: fmt.Errorf("calling to TenantClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TenantCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TenantCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Tenant.
func (c *TenantClient) Update() *TenantUpdate {
	mutation := newTenantMutation(c.config, OpUpdate)
	return &TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TenantClient) UpdateOne(_m *Tenant) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenant(_m))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TenantClient) UpdateOneID(id string) *TenantUpdateOne {
	mutation := newTenantMutation(c.config, OpUpdateOne, withTenantID(id))
	return &TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Tenant.
func (c *TenantClient) Delete() *TenantDelete {
	mutation := newTenantMutation(c.config, OpDelete)
	return &TenantDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TenantClient) DeleteOne(_m *Tenant) *TenantDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TenantClient) DeleteOneID(id string) *TenantDeleteOne {
	builder := c.Delete().Where(tenant.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TenantDeleteOne{builder}
}

// Query returns a query builder for Tenant.
func (c *TenantClient) Query() *TenantQuery {
	return &TenantQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTenant},
		inters: c.Interceptors(),
	}
}

// Get returns a Tenant entity by its id.
func (c *TenantClient) Get(ctx context.Context, id string) (*Tenant, error) {
	return c.Query().Where(tenant.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TenantClient) GetX(ctx context.Context, id string) *Tenant {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryKeywordRules queries the keyword_rules edge of a Tenant.
func (c *TenantClient) QueryKeywordRules(_m *Tenant) *KeywordRuleQuery {
	query := (&KeywordRuleClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(keywordrule.Table, keywordrule.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.KeywordRulesTable, tenant.KeywordRulesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMonitoredCommunities queries the monitored_communities edge of a Tenant.
func (c *TenantClient) QueryMonitoredCommunities(_m *Tenant) *MonitoredCommunityQuery {
	query := (&MonitoredCommunityClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(monitoredcommunity.Table, monitoredcommunity.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.MonitoredCommunitiesTable, tenant.MonitoredCommunitiesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWebhookEndpoints queries the webhook_endpoints edge of a Tenant.
func (c *TenantClient) QueryWebhookEndpoints(_m *Tenant) *WebhookEndpointQuery {
	query := (&WebhookEndpointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(webhookendpoint.Table, webhookendpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.WebhookEndpointsTable, tenant.WebhookEndpointsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMatches queries the matches edge of a Tenant.
func (c *TenantClient) QueryMatches(_m *Tenant) *MatchQuery {
	query := (&MatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(tenant.Table, tenant.FieldID, id),
			sqlgraph.To(match.Table, match.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, tenant.MatchesTable, tenant.MatchesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TenantClient) Hooks() []Hook {
	return c.hooks.Tenant
}

// Interceptors returns the client interceptors.
func (c *TenantClient) Interceptors() []Interceptor {
	return c.inters.Tenant
}

func (c *TenantClient) mutate(ctx context.Context, m *TenantMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TenantCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TenantUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TenantUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TenantDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Tenant mutation op: %q", m.Op())
	}
}

// WebhookEndpointClient is a client for the WebhookEndpoint schema.
type WebhookEndpointClient struct {
	config
}

// NewWebhookEndpointClient returns a client for the WebhookEndpoint from the given config.
func NewWebhookEndpointClient(c config) *WebhookEndpointClient {
	return &WebhookEndpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `webhookendpoint.Hooks(f(g(h())))`.
func (c *WebhookEndpointClient) Use(hooks ...Hook) {
	c.hooks.WebhookEndpoint = append(c.hooks.WebhookEndpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `webhookendpoint.Intercept(f(g(h())))`.
func (c *WebhookEndpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.WebhookEndpoint = append(c.inters.WebhookEndpoint, interceptors...)
}

// Create returns a builder for creating a WebhookEndpoint entity.
func (c *WebhookEndpointClient) Create() *WebhookEndpointCreate {
	mutation := newWebhookEndpointMutation(c.config, OpCreate)
	return &WebhookEndpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WebhookEndpoint entities.
func (c *WebhookEndpointClient) CreateBulk(builders ...*WebhookEndpointCreate) *WebhookEndpointCreateBulk {
	return &WebhookEndpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WebhookEndpointClient) MapCreateBulk(slice any, setFunc func(*WebhookEndpointCreate, int)) *WebhookEndpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WebhookEndpointCreateBulk{err: fmt.Errorf("calling to WebhookEndpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WebhookEndpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WebhookEndpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WebhookEndpoint.
func (c *WebhookEndpointClient) Update() *WebhookEndpointUpdate {
	mutation := newWebhookEndpointMutation(c.config, OpUpdate)
	return &WebhookEndpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WebhookEndpointClient) UpdateOne(_m *WebhookEndpoint) *WebhookEndpointUpdateOne {
	mutation := newWebhookEndpointMutation(c.config, OpUpdateOne, withWebhookEndpoint(_m))
	return &WebhookEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WebhookEndpointClient) UpdateOneID(id string) *WebhookEndpointUpdateOne {
	mutation := newWebhookEndpointMutation(c.config, OpUpdateOne, withWebhookEndpointID(id))
	return &WebhookEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WebhookEndpoint.
func (c *WebhookEndpointClient) Delete() *WebhookEndpointDelete {
	mutation := newWebhookEndpointMutation(c.config, OpDelete)
	return &WebhookEndpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WebhookEndpointClient) DeleteOne(_m *WebhookEndpoint) *WebhookEndpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WebhookEndpointClient) DeleteOneID(id string) *WebhookEndpointDeleteOne {
	builder := c.Delete().Where(webhookendpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WebhookEndpointDeleteOne{builder}
}

// Query returns a query builder for WebhookEndpoint.
func (c *WebhookEndpointClient) Query() *WebhookEndpointQuery {
	return &WebhookEndpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWebhookEndpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a WebhookEndpoint entity by its id.
func (c *WebhookEndpointClient) Get(ctx context.Context, id string) (*WebhookEndpoint, error) {
	return c.Query().Where(webhookendpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WebhookEndpointClient) GetX(ctx context.Context, id string) *WebhookEndpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTenant queries the tenant edge of a WebhookEndpoint.
func (c *WebhookEndpointClient) QueryTenant(_m *WebhookEndpoint) *TenantQuery {
	query := (&TenantClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(webhookendpoint.Table, webhookendpoint.FieldID, id),
			sqlgraph.To(tenant.Table, tenant.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, webhookendpoint.TenantTable, webhookendpoint.TenantColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *WebhookEndpointClient) Hooks() []Hook {
	return c.hooks.WebhookEndpoint
}

// Interceptors returns the client interceptors.
func (c *WebhookEndpointClient) Interceptors() []Interceptor {
	return c.inters.WebhookEndpoint
}

func (c *WebhookEndpointClient) mutate(ctx context.Context, m *WebhookEndpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WebhookEndpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WebhookEndpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WebhookEndpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WebhookEndpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WebhookEndpoint mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ContentItem, KeywordRule, Match, MonitoredCommunity, Tenant,
		WebhookEndpoint []ent.Hook
	}
	inters struct {
		ContentItem, KeywordRule, Match, MonitoredCommunity, Tenant,
		WebhookEndpoint []ent.Interceptor
	}
)
