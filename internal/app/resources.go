package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/odyssey-erp/finflow/internal/flow/store"
	"github.com/odyssey-erp/finflow/internal/platform/cache"
	"github.com/odyssey-erp/finflow/internal/platform/db"
)

// Resources holds the external clients a binary opened for the snapshot store.
type Resources struct {
	Redis    *redis.Client
	Postgres *pgxpool.Pool
	Store    store.Store
	logger   *slog.Logger
}

type schemaEnsurer interface {
	EnsureSchema(ctx context.Context) error
}

// OpenResources connects the clients required by the configured backend.
// Redis is also opened when needRedis is set, e.g. for sessions.
func OpenResources(ctx context.Context, cfg *Config, logger *slog.Logger, needRedis bool) (*Resources, error) {
	if cfg == nil {
		return nil, errors.New("app: config required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	res := &Resources{logger: logger}
	backend := cfg.Backend()

	if needRedis || backend == store.BackendRedis {
		client, err := cache.New(ctx, cache.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			return nil, fmt.Errorf("app: connect redis: %w", err)
		}
		res.Redis = client
	}
	if backend == store.BackendPostgres {
		pool, err := db.New(ctx, cfg.PGDSN, db.Options{MaxConns: cfg.PGMaxConns})
		if err != nil {
			res.Close()
			return nil, fmt.Errorf("app: connect postgres: %w", err)
		}
		res.Postgres = pool
	}

	st, err := store.Open(backend, cfg.FlowSnapshotKey, store.Deps{Redis: res.Redis, Postgres: res.Postgres})
	if err != nil {
		res.Close()
		return nil, err
	}
	if ensurer, ok := st.(schemaEnsurer); ok {
		if err := ensurer.EnsureSchema(ctx); err != nil {
			res.Close()
			return nil, fmt.Errorf("app: ensure schema: %w", err)
		}
	}
	res.Store = st
	return res, nil
}

// Close releases every opened client.
func (r *Resources) Close() {
	if r == nil {
		return
	}
	if r.Postgres != nil {
		r.Postgres.Close()
	}
	if r.Redis != nil {
		if err := r.Redis.Close(); err != nil {
			r.logger.Warn("redis close", slog.Any("error", err))
		}
	}
}

// AsynqRedisOpt returns the connection options for asynq clients and servers.
func (c *Config) AsynqRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{Addr: c.RedisAddr, Password: c.RedisPassword, DB: c.RedisDB}
}
