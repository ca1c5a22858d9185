package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Engine metrics
	OperationsCompleted *prometheus.CounterVec
	OperationsFailed    *prometheus.CounterVec
	OperationDuration   *prometheus.HistogramVec
	OperationAmount     prometheus.Histogram
	OperationRetries    prometheus.Counter

	// Account metrics
	AccountsOpened prometheus.Counter
	StatusChanges  *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec

	// Rate limiting metrics
	RateLimitHits prometheus.Counter
}

// New creates all metrics and registers them with the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith creates all metrics against the given registerer.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		OperationsCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corebank_operations_completed_total",
				Help: "Completed ledger operations by type",
			},
			[]string{"type"},
		),
		OperationsFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corebank_operations_failed_total",
				Help: "Failed ledger operations by type and reason",
			},
			[]string{"type", "reason"},
		),
		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "corebank_operation_duration_seconds",
				Help:    "Duration of ledger operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"type"},
		),
		OperationAmount: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "corebank_operation_amount",
			Help:    "Operation amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		OperationRetries: factory.NewCounter(prometheus.CounterOpts{
			Name: "corebank_operation_retries_total",
			Help: "Ledger operations retried after transient conflicts",
		}),

		AccountsOpened: factory.NewCounter(prometheus.CounterOpts{
			Name: "corebank_accounts_opened_total",
			Help: "Total number of accounts opened",
		}),
		StatusChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corebank_account_status_changes_total",
				Help: "Account status transitions",
			},
			[]string{"to"},
		),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corebank_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "corebank_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		AuthAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corebank_auth_attempts_total",
				Help: "Total authentication attempts",
			},
			[]string{"status"},
		),

		RateLimitHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "corebank_rate_limit_hits_total",
			Help: "Requests rejected by the rate limiter",
		}),
	}
}
