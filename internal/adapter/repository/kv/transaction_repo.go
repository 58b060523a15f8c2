package kv

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
)

const (
	opLoad = "load"
	opSave = "save"
)

// TransactionRepository persists the whole transaction collection as one
// value in a Store. It implements usecase.TransactionRepository.
type TransactionRepository struct {
	store   Store
	key     string
	metrics *metrics.Metrics
}

// NewTransactionRepository creates a repository over store. An empty key
// falls back to DefaultKey; m may be nil.
func NewTransactionRepository(store Store, key string, m *metrics.Metrics) *TransactionRepository {
	if key == "" {
		key = DefaultKey
	}
	return &TransactionRepository{
		store:   store,
		key:     key,
		metrics: m,
	}
}

// Load returns the stored collection. Missing, unreadable or malformed data
// yields an empty collection.
func (r *TransactionRepository) Load(ctx context.Context) domain.Transactions {
	defer r.observe(opLoad, time.Now())

	data, err := r.store.Get(ctx, r.key)
	if errors.Is(err, ErrNotFound) {
		return domain.Transactions{}
	}
	if err != nil {
		r.fail(opLoad, err, "failed to read transactions")
		return domain.Transactions{}
	}

	txs, err := Decode(data)
	if err != nil {
		r.fail(opLoad, err, "discarding malformed transactions payload")
		return domain.Transactions{}
	}
	return txs
}

// Save replaces the stored collection with txs. Errors are logged only.
func (r *TransactionRepository) Save(ctx context.Context, txs domain.Transactions) {
	defer r.observe(opSave, time.Now())

	data, err := Encode(txs)
	if err != nil {
		r.fail(opSave, err, "failed to encode transactions")
		return
	}

	if err := r.store.Put(ctx, r.key, data); err != nil {
		r.fail(opSave, err, "failed to write transactions")
	}
}

func (r *TransactionRepository) observe(op string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.StorageOperations.WithLabelValues(op).Inc()
	r.metrics.StorageDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (r *TransactionRepository) fail(op string, err error, msg string) {
	log.Error().Err(err).Str("key", r.key).Str("operation", op).Msg(msg)
	if r.metrics != nil {
		r.metrics.StorageErrors.WithLabelValues(op).Inc()
	}
}
