package config

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// InitRedis returns a redis client for the rate limiter, or nil when no
// address is configured or the server is unreachable. Callers treat a nil
// client as "limiting disabled".
func InitRedis(ctx context.Context, cfg *Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("Failed to connect to Redis; rate limiting disabled")
		return nil
	}
	logrus.WithField("addr", cfg.RedisAddr).Info("Redis connected")
	return client
}
