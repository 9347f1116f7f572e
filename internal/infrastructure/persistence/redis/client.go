// Package redis implements the Redis-backed adapters: live-session presence
// for the dashboard's real-time status, and the per-client rate limiter.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/edumaster/analytics-engine/config"
)

// NewClient creates a Redis client from configuration and verifies the
// connection with a ping.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: failed to parse URL: %w", err)
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: failed to ping: %w", err)
	}
	return client, nil
}

// Health adapts a client to the health-check surface the HTTP layer probes.
type Health struct {
	client *redis.Client
}

// NewHealth wraps the client.
func NewHealth(client *redis.Client) *Health {
	return &Health{client: client}
}

// HealthCheck pings the server.
func (h *Health) HealthCheck(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}
