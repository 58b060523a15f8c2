package main

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	boltRepo "github.com/iho/fintrack/internal/adapter/repository/bolt"
	"github.com/iho/fintrack/internal/adapter/repository/kv"
	postgresRepo "github.com/iho/fintrack/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/fintrack/internal/adapter/repository/redis"
	"github.com/iho/fintrack/internal/infrastructure/bolt"
	"github.com/iho/fintrack/internal/infrastructure/config"
	"github.com/iho/fintrack/internal/infrastructure/postgres"
	"github.com/iho/fintrack/internal/infrastructure/redis"
	"github.com/iho/fintrack/internal/usecase"
)

// storage is the selected kv backend plus everything that must be closed
// on shutdown.
type storage struct {
	backend     string
	store       kv.Store
	idempotency usecase.IdempotencyStore
	closers     []func() error
}

func (s *storage) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			log.Warn().Err(err).Str("backend", s.backend).Msg("failed to close storage")
		}
	}
}

// openStorage connects the backend named by cfg.StorageBackend. Redis-backed
// idempotency is enabled whenever a redis client is available.
func openStorage(ctx context.Context, cfg *config.Config) (*storage, error) {
	s := &storage{backend: cfg.StorageBackend}

	switch cfg.StorageBackend {
	case config.BackendMemory:
		s.store = kv.NewMemoryStore()

	case config.BackendBolt:
		db, err := bolt.Open(cfg.BoltPath)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db.Close)

		store, err := boltRepo.NewStore(db)
		if err != nil {
			s.Close()
			return nil, err
		}
		s.store = store
		log.Info().Str("path", cfg.BoltPath).Msg("opened bolt store")

	case config.BackendRedis:
		client, err := redis.NewClientWithBackoff(ctx, cfg.RedisURL, cfg.ConnectTimeout)
		if err != nil {
			return nil, err
		}
		s.useRedis(client)
		s.store = redisRepo.NewStore(client)
		log.Info().Msg("connected to redis")

	case config.BackendPostgres:
		if err := postgres.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, err
		}

		pool, err := postgres.NewPoolWithConfig(ctx, postgres.PoolConfig{
			DatabaseURL:    cfg.DatabaseURL,
			MaxConns:       cfg.DatabaseMaxConns,
			MinConns:       cfg.DatabaseMinConns,
			ConnectTimeout: cfg.ConnectTimeout,
		})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, func() error {
			pool.Close()
			return nil
		})
		s.store = postgresRepo.NewStore(pool)
		log.Info().Msg("connected to postgres")

	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	return s, nil
}

func (s *storage) useRedis(client *goredis.Client) {
	s.closers = append(s.closers, client.Close)
	s.idempotency = redisRepo.NewIdempotencyStore(client)
}
