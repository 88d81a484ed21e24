package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vietanh2810/demo-night-api/internal/config"
)

// OpenRedis connects with a pool sized for many concurrent pollers
// hitting the current-event key.
func OpenRedis(conf *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(conf.URL)
	if err != nil {
		// Fall back to treating the value as a bare address.
		opts = &redis.Options{
			Addr: conf.URL,
		}
	}

	opts.PoolSize = 100
	opts.MinIdleConns = 10
	opts.MaxRetries = 3

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("client.Ping -> %w", err)
	}

	return client, nil
}
