package redisinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/quoteshelf/api/internal/config"
	"github.com/redis/go-redis/v9"
)

// Connect parses the Redis URL and verifies the connection with a ping
// before the server starts accepting requests.
func Connect(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
