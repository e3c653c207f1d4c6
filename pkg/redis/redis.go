package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/crisis_map_sync/internal/config"
	"github.com/sirupsen/logrus"
)

// NewRedisClient создает клиент Redis для локального состояния, кеша геокодинга
// и очереди вебхуков. Ping повторяется, пока Redis не ответит или не выйдет
// cfg.StoreConnectTimeout.
func NewRedisClient(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
		PoolSize: 5,
	})

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxElapsedTime = cfg.StoreConnectTimeout
	if policy.MaxElapsedTime <= 0 {
		policy.MaxElapsedTime = config.DefaultStoreConnectTimeout
	}

	err := backoff.RetryNotify(
		func() error { return rdb.Ping(ctx).Err() },
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			log.WithError(err).WithField("retry_in", next).Warn("Redis is not reachable yet")
		},
	)
	if err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return rdb, nil
}
