// Package client provides the database-facing collaborators the builders
// hand their output to: a connection provider and a query executor over
// database/sql. The builder core itself never touches a socket.
package client

import (
	"context"
	"database/sql"
	"sync"
	"time"

	_ "github.com/microsoft/go-mssqldb" // SQL Server driver
	"github.com/pkg/errors"

	"github.com/satishbabariya/fluentsql/internal/debug"
)

// Health is the result of a connection health check.
type Health struct {
	Connected  bool
	ServerTime time.Time
	Version    string
}

// ConnectionProvider is the connection lifecycle contract consumed by the
// framework layer.
type ConnectionProvider interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	IsConnected() bool
	HealthCheck(ctx context.Context) (*Health, error)
}

// Client manages one SQL Server connection pool.
type Client struct {
	db        *sql.DB
	mu        sync.RWMutex
	connected bool
}

// NewClient opens a client for the given connection string. No network I/O
// happens until Connect.
func NewClient(dsn string) (*Client, error) {
	db, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open connection pool")
	}
	return &Client{db: db}, nil
}

// NewClientFromDB wraps an existing database handle.
func NewClientFromDB(db *sql.DB) *Client {
	return &Client{db: db}
}

// Connect verifies the connection.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.db.PingContext(ctx); err != nil {
		return errors.Wrap(err, "connect")
	}
	c.mu.Lock()
	c.connected = true
	c.mu.Unlock()
	debug.Debug("connected")
	return nil
}

// Disconnect closes the pool.
func (c *Client) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	c.connected = false
	c.mu.Unlock()
	if err := c.db.Close(); err != nil {
		return errors.Wrap(err, "disconnect")
	}
	debug.Debug("disconnected")
	return nil
}

// IsConnected reports whether Connect succeeded and Disconnect has not been
// called. It does not re-ping the server.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// HealthCheck pings the server and reports its clock and version.
func (c *Client) HealthCheck(ctx context.Context) (*Health, error) {
	health := &Health{}
	row := c.db.QueryRowContext(ctx, "SELECT SYSDATETIME(), @@VERSION")
	if err := row.Scan(&health.ServerTime, &health.Version); err != nil {
		return health, errors.Wrap(err, "health check")
	}
	health.Connected = true
	return health, nil
}

// DB returns the underlying database handle.
func (c *Client) DB() *sql.DB {
	return c.db
}

var _ ConnectionProvider = (*Client)(nil)
