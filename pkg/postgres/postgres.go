package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/crisis_map_sync/internal/config"
	"github.com/sirupsen/logrus"
)

// NewPostgresDB создает пул соединений для журнала уведомлений. База может
// подняться позже клиента, поэтому ping повторяется до cfg.StoreConnectTimeout.
func NewPostgresDB(ctx context.Context, appCfg *config.Config, log *logrus.Logger) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при разборе конфигурации postgres: %w", err)
	}
	if appCfg.DBMaxConns > 0 {
		cfgPool.MaxConns = appCfg.DBMaxConns
	}

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("не удалось создать пул соединений: %w", err)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 500 * time.Millisecond
	policy.MaxElapsedTime = appCfg.StoreConnectTimeout
	if policy.MaxElapsedTime <= 0 {
		policy.MaxElapsedTime = config.DefaultStoreConnectTimeout
	}

	err = backoff.RetryNotify(
		func() error { return dbpool.Ping(ctx) },
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			log.WithError(err).WithField("retry_in", next).Warn("PostgreSQL is not reachable yet")
		},
	)
	if err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("не удалось выполнить ping к postgres: %w", err)
	}

	return dbpool, nil
}
