package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/employee-portal/internal/config"
)

// Redis wraps the go-redis client used for the change feed.
type Redis struct {
	Client  *redis.Client
	channel string
}

// NewRedis connects to Redis using the provided configuration. An unreachable
// server is logged, not fatal; publishing retries on every event.
func NewRedis(cfg config.RedisConfig, logger *zap.Logger) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.String("addr", cfg.Addr), zap.Error(err))
	} else {
		logger.Info("connected to redis", zap.String("addr", cfg.Addr), zap.String("channel", cfg.Channel))
	}

	return &Redis{Client: client, channel: cfg.Channel}
}

// Close closes the client.
func (r *Redis) Close() {
	if r != nil && r.Client != nil {
		_ = r.Client.Close()
	}
}

// Ping verifies Redis connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	return r.Client.Ping(ctx).Err()
}

// Publish encodes message as JSON and publishes it on the configured channel.
func (r *Redis) Publish(ctx context.Context, message any) error {
	if r == nil || r.Client == nil {
		return errors.New("redis client not configured")
	}
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("encode change event: %w", err)
	}
	if err := r.Client.Publish(ctx, r.channel, body).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", r.channel, err)
	}
	return nil
}
