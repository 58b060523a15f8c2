package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/iho/fintrack/internal/adapter/repository/kv"
)

// Store implements kv.Store using plain Redis strings with no expiry.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore creates a new Store.
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		prefix: "fintrack:",
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, kv.ErrNotFound
	}
	return val, err
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.prefix+key, value, 0).Err()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
