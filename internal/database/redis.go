package database

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"startup-hub-api/internal/config"
)

// NewRedis connects to redis for the public listing cache.
// The service degrades to uncached reads when this fails, so callers may
// treat an error here as non-fatal.
func NewRedis(cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
