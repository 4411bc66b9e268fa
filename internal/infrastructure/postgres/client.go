package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quoteshelf/api/internal/config"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so repository
// methods run against the ambient transaction when one is in flight.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type txKey struct{}

// Client wraps the connection pool and carries transactions through context.
type Client struct {
	pool *pgxpool.Pool
}

// Connect establishes the pool and verifies it with a ping, retrying a few
// times so the API survives the database coming up after it.
func Connect(ctx context.Context, cfg *config.Config) (*Client, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	const attempts = 3
	var pool *pgxpool.Pool
	for i := 0; i < attempts; i++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				return &Client{pool: pool}, nil
			}
			pool.Close()
		}
		time.Sleep(time.Duration(i+1) * time.Second)
	}
	return nil, fmt.Errorf("connect postgres: %w", err)
}

// Close releases the underlying pool.
func (c *Client) Close() {
	c.pool.Close()
}

// InTx runs fn inside a single transaction. Repository calls made with the
// returned context join that transaction; the transaction commits when fn
// returns nil and rolls back otherwise.
func (c *Client) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return pgx.BeginFunc(ctx, c.pool, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func (c *Client) db(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return c.pool
}
