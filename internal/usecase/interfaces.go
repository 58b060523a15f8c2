package usecase

import (
	"context"
	"time"

	"github.com/iho/fintrack/internal/domain"
)

// TransactionRepository persists the whole transaction collection.
// Implementations swallow and log their own failures: Load yields an empty
// collection when nothing usable is stored, Save is fire and forget.
type TransactionRepository interface {
	Load(ctx context.Context) domain.Transactions
	Save(ctx context.Context, txs domain.Transactions)
}

// TransactionSource exposes the current in-memory collection.
type TransactionSource interface {
	Snapshot(ctx context.Context) domain.Transactions
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Clock returns the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// Notifier delivers human readable notifications after mutations.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a key so a failed request can be retried.
	Release(ctx context.Context, key string) error
}
