package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/iho/fintrack/internal/domain"
	"github.com/iho/fintrack/internal/infrastructure/metrics"
)

// TransactionUseCase owns the in-memory transaction collection. Every
// mutation swaps in a new collection value and re-persists it in full.
type TransactionUseCase struct {
	mu   sync.RWMutex
	txs  domain.Transactions
	repo TransactionRepository

	idGen    IDGenerator
	clock    Clock
	notifier Notifier
	metrics  *metrics.Metrics
}

// NewTransactionUseCase creates a new TransactionUseCase. notifier and
// metrics may be nil.
func NewTransactionUseCase(
	repo TransactionRepository,
	idGen IDGenerator,
	clock Clock,
	notifier Notifier,
	metrics *metrics.Metrics,
) *TransactionUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TransactionUseCase{
		repo:     repo,
		idGen:    idGen,
		clock:    clock,
		notifier: notifier,
		metrics:  metrics,
	}
}

// Start loads the persisted collection. It is called once at startup.
func (uc *TransactionUseCase) Start(ctx context.Context) {
	txs := uc.repo.Load(ctx)

	uc.mu.Lock()
	uc.txs = txs
	uc.recordCount(txs)
	uc.mu.Unlock()

	log.Info().Int("count", txs.Len()).Msg("transactions loaded")
}

// Snapshot returns the current collection value.
func (uc *TransactionUseCase) Snapshot(ctx context.Context) domain.Transactions {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.txs
}

// ListTransactions returns all transactions, newest first.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context) domain.Transactions {
	return uc.Snapshot(ctx).SortedByDateDesc()
}

// GetTransaction retrieves a transaction by ID.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id string) (domain.Transaction, error) {
	t, ok := uc.Snapshot(ctx).Find(id)
	if !ok {
		return domain.Transaction{}, domain.ErrTransactionNotFound
	}
	return t, nil
}

// AddTransaction validates input, assigns a fresh ID and records it.
func (uc *TransactionUseCase) AddTransaction(ctx context.Context, input domain.TransactionInput) (domain.Transaction, error) {
	draft, err := uc.parse(input)
	if err != nil {
		return domain.Transaction{}, err
	}

	t := draft.ToTransaction(uc.idGen.Generate())

	uc.mu.Lock()
	next := uc.txs.With(t)
	uc.commit(ctx, next)
	uc.mu.Unlock()

	uc.recordMutation(OperationAdd)
	uc.recordAmount(t)
	uc.notify(ctx, domain.NewTransactionAddedNotification(t, uc.clock.Now()))

	return t, nil
}

// EditTransaction replaces every field but the ID of an existing transaction.
func (uc *TransactionUseCase) EditTransaction(ctx context.Context, id string, input domain.TransactionInput) (domain.Transaction, error) {
	draft, err := uc.parse(input)
	if err != nil {
		return domain.Transaction{}, err
	}

	t := draft.ToTransaction(id)

	uc.mu.Lock()
	next, err := uc.txs.Replaced(t)
	if err != nil {
		uc.mu.Unlock()
		return domain.Transaction{}, err
	}
	uc.commit(ctx, next)
	uc.mu.Unlock()

	uc.recordMutation(OperationEdit)
	uc.notify(ctx, domain.NewTransactionUpdatedNotification(t, uc.clock.Now()))

	return t, nil
}

// DeleteTransaction removes exactly the transaction with the given ID.
func (uc *TransactionUseCase) DeleteTransaction(ctx context.Context, id string) error {
	uc.mu.Lock()
	next, err := uc.txs.Without(id)
	if err != nil {
		uc.mu.Unlock()
		return err
	}
	uc.commit(ctx, next)
	uc.mu.Unlock()

	uc.recordMutation(OperationDelete)
	uc.notify(ctx, domain.NewTransactionDeletedNotification(id, uc.clock.Now()))

	return nil
}

// commit swaps in the new collection and persists it. Caller holds mu, so
// the count gauge follows commit order.
func (uc *TransactionUseCase) commit(ctx context.Context, next domain.Transactions) {
	uc.txs = next
	uc.repo.Save(ctx, next)
	uc.recordCount(next)
}

func (uc *TransactionUseCase) parse(input domain.TransactionInput) (domain.TransactionDraft, error) {
	draft, err := domain.ParseTransactionInput(input)
	if err != nil {
		var verrs domain.ValidationErrors
		if uc.metrics != nil && errors.As(err, &verrs) {
			for field := range verrs {
				uc.metrics.ValidationFailures.WithLabelValues(field).Inc()
			}
		}
		return domain.TransactionDraft{}, err
	}
	return draft, nil
}

func (uc *TransactionUseCase) notify(ctx context.Context, n domain.Notification) {
	if uc.notifier == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, NotificationTimeout)
	defer cancel()

	if err := uc.notifier.Notify(ctx, n); err != nil {
		log.Warn().
			Err(err).
			Str("event_type", n.EventType).
			Str("transaction_id", n.TransactionID).
			Msg("failed to deliver notification")
		if uc.metrics != nil {
			uc.metrics.NotificationErrors.Inc()
		}
		return
	}

	if uc.metrics != nil {
		uc.metrics.NotificationsSent.Inc()
	}
}

func (uc *TransactionUseCase) recordMutation(op string) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.TransactionMutations.WithLabelValues(op).Inc()
}

func (uc *TransactionUseCase) recordAmount(t domain.Transaction) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.TransactionAmount.WithLabelValues(string(t.Type)).Observe(t.Amount.InexactFloat64())
}

func (uc *TransactionUseCase) recordCount(txs domain.Transactions) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.TransactionsCount.Set(float64(txs.Len()))
}
