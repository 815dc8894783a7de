package database

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the Redis instance at redisURL
// (redis://[user:password@]host:port/db) and verifies it with a ping.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("Connected to Redis", slog.String("addr", opts.Addr))
	return client, nil
}

// CloseRedisClient closes the Redis client if one was opened.
func CloseRedisClient(client *redis.Client) {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		slog.Warn("Failed to close redis client", slog.String("error", err.Error()))
		return
	}
	slog.Info("Redis client closed.")
}
