package neo4jdb

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/db"

	pkgerrors "github.com/booklovers/backend/internal/pkg/errors"
	"github.com/booklovers/backend/internal/platform/logger"
)

// Settings are the connection parameters supplied at process start.
type Settings struct {
	URI      string
	Username string
	Password string
	Database string
	PoolSize int
	Timeout  time.Duration
}

// Client owns the driver and executes one query per session. No session or
// transaction is held across calls; composite operations are therefore not
// atomic and callers must tolerate partial completion.
type Client struct {
	Driver   neo4j.DriverWithContext
	Database string
	log      *logger.Logger
}

func New(settings Settings, log *logger.Logger) (*Client, error) {
	if log == nil {
		return nil, fmt.Errorf("neo4jdb: logger required")
	}
	if settings.URI == "" {
		return nil, pkgerrors.ErrNotConfigured
	}
	if settings.Username == "" {
		settings.Username = "neo4j"
	}
	if settings.PoolSize <= 0 {
		settings.PoolSize = 50
	}
	if settings.Timeout <= 0 {
		settings.Timeout = 10 * time.Second
	}

	auth := neo4j.BasicAuth(settings.Username, settings.Password, "")
	driver, err := neo4j.NewDriverWithContext(settings.URI, auth, func(cfg *neo4j.Config) {
		cfg.MaxConnectionPoolSize = settings.PoolSize
		cfg.SocketConnectTimeout = settings.Timeout
	})
	if err != nil {
		return nil, fmt.Errorf("neo4jdb: init driver: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), settings.Timeout)
	defer cancel()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4jdb: verify connectivity: %w", err)
	}

	return &Client{
		Driver:   driver,
		Database: settings.Database,
		log:      log.With("client", "Neo4jDB"),
	}, nil
}

// Read runs a read query in its own session and collects all records.
func (c *Client) Read(ctx context.Context, query string, params map[string]any) ([]*db.Record, error) {
	return c.execute(ctx, neo4j.AccessModeRead, query, params)
}

// Write runs a write query in its own session and collects all records.
func (c *Client) Write(ctx context.Context, query string, params map[string]any) ([]*db.Record, error) {
	return c.execute(ctx, neo4j.AccessModeWrite, query, params)
}

func (c *Client) execute(ctx context.Context, mode neo4j.AccessMode, query string, params map[string]any) ([]*db.Record, error) {
	if c == nil || c.Driver == nil {
		return nil, pkgerrors.ErrNotConfigured
	}
	if ctx == nil {
		ctx = context.Background()
	}

	session := c.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   mode,
		DatabaseName: c.Database,
	})
	defer session.Close(ctx)

	work := func(tx neo4j.ManagedTransaction) (any, error) {
		res, err := tx.Run(ctx, query, params)
		if err != nil {
			return nil, err
		}
		return res.Collect(ctx)
	}

	var out any
	var err error
	if mode == neo4j.AccessModeRead {
		out, err = session.ExecuteRead(ctx, work)
	} else {
		out, err = session.ExecuteWrite(ctx, work)
	}
	if err != nil {
		return nil, fmt.Errorf("neo4jdb: execute query: %w", err)
	}
	records, _ := out.([]*db.Record)
	return records, nil
}

func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := c.Driver.Close(ctx)
	c.Driver = nil
	return err
}
