package postgres

import (
	"context"
	"fmt"
)

// schema is applied at startup. The UNIQUE index on email is the source of
// truth for duplicate registration. The CHECK rejects rows with neither a
// password hash nor a provider linkage.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              BIGSERIAL PRIMARY KEY,
		email           TEXT NOT NULL UNIQUE,
		password_hash   TEXT,
		social_provider TEXT,
		social_id       TEXT,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		CHECK (password_hash IS NOT NULL OR social_provider IS NOT NULL)
	)`,
	`CREATE TABLE IF NOT EXISTS quotes (
		id         BIGSERIAL PRIMARY KEY,
		content    TEXT NOT NULL,
		author     TEXT NOT NULL,
		is_public  BOOLEAN NOT NULL DEFAULT false,
		user_id    BIGINT NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS quotes_user_id_idx ON quotes (user_id)`,
}

// Bootstrap creates the tables if they don't exist.
func Bootstrap(ctx context.Context, c *Client) error {
	for _, stmt := range schema {
		if _, err := c.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("bootstrap schema: %w", err)
		}
	}
	return nil
}
