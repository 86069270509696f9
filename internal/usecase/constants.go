package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction.
	// This prevents long-running transactions from blocking tables.
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultMatchTolerancePct is the amount tolerance for counter-party
	// matching, as a percentage of the transaction amount. Business policy
	// rather than a hard invariant; override via configuration.
	DefaultMatchTolerancePct = 1.0

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)
