package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Transaction metrics
	TransactionMutations *prometheus.CounterVec
	TransactionsCount    prometheus.Gauge
	TransactionAmount    *prometheus.HistogramVec
	ValidationFailures   *prometheus.CounterVec

	// Storage metrics
	StorageOperations *prometheus.CounterVec
	StorageErrors     *prometheus.CounterVec
	StorageDuration   *prometheus.HistogramVec

	// Notification metrics
	NotificationsSent  prometheus.Counter
	NotificationErrors prometheus.Counter
}

// NewWithRegisterer creates metrics registered against reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		TransactionMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_transaction_mutations_total",
				Help: "Total transaction mutations by operation",
			},
			[]string{"operation"},
		),
		TransactionsCount: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fintrack_transactions_count",
			Help: "Number of transactions currently held in memory",
		}),
		TransactionAmount: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fintrack_transaction_amount",
				Help:    "Recorded transaction amounts",
				Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000},
			},
			[]string{"type"},
		),
		ValidationFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_validation_failures_total",
				Help: "Rejected transaction inputs by field",
			},
			[]string{"field"},
		),

		StorageOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_storage_operations_total",
				Help: "Total storage operations",
			},
			[]string{"operation"},
		),
		StorageErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "fintrack_storage_errors_total",
				Help: "Total storage errors by operation",
			},
			[]string{"operation"},
		),
		StorageDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "fintrack_storage_duration_seconds",
				Help:    "Duration of storage operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),

		NotificationsSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_notifications_sent_total",
			Help: "Total notifications delivered",
		}),
		NotificationErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "fintrack_notification_errors_total",
			Help: "Total notifications that failed to deliver",
		}),
	}
}
