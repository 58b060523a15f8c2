package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// NewClient creates a new Redis client and verifies the connection once.
func NewClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	return NewClientWithBackoff(ctx, redisURL, 0)
}

// NewClientWithBackoff retries the initial ping with exponential backoff
// for up to maxElapsed.
func NewClientWithBackoff(ctx context.Context, redisURL string, maxElapsed time.Duration) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ping := func() error {
		return client.Ping(ctx).Err()
	}

	if maxElapsed > 0 {
		b := backoff.NewExponentialBackOff()
		b.InitialInterval = 100 * time.Millisecond
		b.MaxElapsedTime = maxElapsed

		err = backoff.RetryNotify(ping, backoff.WithContext(b, ctx), func(err error, next time.Duration) {
			log.Warn().Err(err).Dur("retry_in", next).Msg("redis not ready, retrying")
		})
	} else {
		err = ping()
	}

	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}
