package usecase

import "time"

const (
	// NotificationTimeout bounds how long a mutation waits for its notification
	NotificationTimeout = 5 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)

// Mutation operation names, used as metric labels.
const (
	OperationAdd    = "add"
	OperationEdit   = "edit"
	OperationDelete = "delete"
)

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now.
func (SystemClock) Now() time.Time {
	return time.Now()
}
