package bootstrap

import (
	"context"

	"github.com/redis/go-redis/v9"

	"github.com/civicgrid/triage/internal/config"
	"github.com/civicgrid/triage/internal/logger"
	"github.com/civicgrid/triage/internal/policy"
	"github.com/civicgrid/triage/internal/reviewstore"
)

// SetupReviewStore returns the counter backing the manual-review
// threshold. Redis is used when enabled and reachable so every replica
// sees the same backlog; otherwise an in-process counter keeps the
// service running.
func SetupReviewStore(ctx context.Context, cfg *config.Config, log logger.Logger) policy.CounterStore {
	if !cfg.Redis.Enabled {
		return reviewstore.NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.Database,
		DialTimeout: cfg.Redis.Timeout,
	})
	store := reviewstore.NewRedisStore(client)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Redis.Timeout)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		log.Warn("Redis unavailable, using in-memory review counter", logger.Error(err))
		return reviewstore.NewMemoryStore()
	}

	log.Info("Redis review counter connected", logger.String("addr", cfg.Redis.Addr))
	return store
}
