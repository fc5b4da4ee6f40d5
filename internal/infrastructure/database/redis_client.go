package database

import (
	"context"
	"fmt"
	"time"

	appconfig "agency_estimator/internal/infrastructure/config"

	"github.com/redis/go-redis/v9"
)

// NewRedis parses the configured redis:// URL and returns a client. It does
// not dial; call PingRedis to check connectivity.
func NewRedis(cfg appconfig.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	opts.PoolSize = 10
	opts.MinIdleConns = 2
	return redis.NewClient(opts), nil
}

func PingRedis(ctx context.Context, rdb *redis.Client) error {
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
