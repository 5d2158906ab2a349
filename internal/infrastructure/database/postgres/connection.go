// Package postgres manages the case-store connection pool and schema
// migrations.
package postgres

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/turtacn/GenApp-Engine/internal/config"
	"github.com/turtacn/GenApp-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/GenApp-Engine/pkg/errors"
)

const (
	defaultMaxConns        = 25
	defaultMinConns        = 2
	defaultConnMaxLifetime = 30 * time.Minute
	defaultConnectTimeout  = 5 * time.Second
)

// Connection wraps the pgx connection pool.
type Connection struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewConnection opens and verifies a connection pool against cfg.
func NewConnection(ctx context.Context, cfg config.DatabaseConfig, logger logging.Logger) (*Connection, error) {
	poolCfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "parse database configuration")
	}
	poolCfg.MaxConns = defaultMaxConns
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}
	poolCfg.MinConns = defaultMinConns
	if cfg.MinConns > 0 {
		poolCfg.MinConns = int32(cfg.MinConns)
	}
	poolCfg.MaxConnLifetime = defaultConnMaxLifetime
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "create connection pool")
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "database unreachable")
	}

	logger.Info("connected to postgres",
		logging.String("host", cfg.Host),
		logging.Int("port", cfg.Port),
		logging.String("database", cfg.DBName))

	return &Connection{pool: pool, logger: logger}, nil
}

// Pool returns the underlying pool for repository construction.
func (c *Connection) Pool() *pgxpool.Pool {
	return c.pool
}

// Health pings the database within the caller's deadline.
func (c *Connection) Health(ctx context.Context) error {
	if err := c.pool.Ping(ctx); err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "database ping failed")
	}
	return nil
}

// Close releases the pool.
func (c *Connection) Close() {
	c.pool.Close()
	c.logger.Info("postgres connection pool closed")
}

// DSN renders the pgx connection string for cfg.
func DSN(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(cfg.User),
		url.QueryEscape(cfg.Password),
		cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode)
}
