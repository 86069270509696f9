package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Import metrics
	StatementsImported  *prometheus.CounterVec
	TransactionsParsed  *prometheus.CounterVec
	ImportErrors        *prometheus.CounterVec
	ImportDuration      prometheus.Histogram
	StatementFileBytes  prometheus.Histogram
	DuplicateStatements prometheus.Counter

	// Matching metrics
	TransactionsMatched   *prometheus.CounterVec
	TransactionsUnmatched prometheus.Counter
	MatchDuration         prometheus.Histogram

	// Payment metrics
	PaymentsCreated prometheus.Counter
	PaymentAmount   prometheus.Histogram

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Database metrics
	DBQueries     *prometheus.CounterVec
	DBDuration    *prometheus.HistogramVec
	DBConnections prometheus.Gauge
	DBErrors      *prometheus.CounterVec

	// Redis metrics
	RedisOperations *prometheus.CounterVec
	RedisDuration   *prometheus.HistogramVec
	RedisErrors     *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Import metrics
		StatementsImported: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankrecon_statements_imported_total",
				Help: "Total number of statements imported by file format",
			},
			[]string{"format"},
		),
		TransactionsParsed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankrecon_transactions_parsed_total",
				Help: "Total number of statement transactions parsed by format",
			},
			[]string{"format"},
		),
		ImportErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankrecon_import_errors_total",
				Help: "Total number of import errors by type",
			},
			[]string{"error_type"},
		),
		ImportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankrecon_import_duration_seconds",
			Help:    "Duration of statement imports",
			Buckets: prometheus.DefBuckets,
		}),
		StatementFileBytes: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankrecon_statement_file_bytes",
			Help:    "Size of imported statement files",
			Buckets: []float64{1024, 10240, 102400, 1048576, 10485760},
		}),
		DuplicateStatements: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankrecon_duplicate_statements_total",
			Help: "Total number of rejected duplicate statement imports",
		}),

		// Matching metrics
		TransactionsMatched: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankrecon_transactions_matched_total",
				Help: "Total number of transactions matched by strategy",
			},
			[]string{"strategy"},
		),
		TransactionsUnmatched: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankrecon_transactions_unmatched_total",
			Help: "Total number of transactions left unmatched by auto-match passes",
		}),
		MatchDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankrecon_match_duration_seconds",
			Help:    "Duration of auto-match passes",
			Buckets: prometheus.DefBuckets,
		}),

		// Payment metrics
		PaymentsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bankrecon_payments_created_total",
			Help: "Total number of payments materialized from transactions",
		}),
		PaymentAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bankrecon_payment_amount",
			Help:    "Materialized payment amounts",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankrecon_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bankrecon_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Database metrics
		DBQueries: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankrecon_db_queries_total",
				Help: "Total database queries",
			},
			[]string{"operation", "table"},
		),
		DBDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bankrecon_db_query_duration_seconds",
				Help:    "Database query duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "table"},
		),
		DBConnections: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "bankrecon_db_connections",
			Help: "Current number of database connections",
		}),
		DBErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankrecon_db_errors_total",
				Help: "Total database errors",
			},
			[]string{"operation"},
		),

		// Redis metrics
		RedisOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankrecon_redis_operations_total",
				Help: "Total Redis operations",
			},
			[]string{"operation"},
		),
		RedisDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bankrecon_redis_duration_seconds",
				Help:    "Redis operation duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		RedisErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bankrecon_redis_errors_total",
				Help: "Total Redis errors",
			},
			[]string{"operation"},
		),
	}
}
