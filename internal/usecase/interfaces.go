package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fakturo/bankrecon/internal/domain"
)

// StatementRepository defines data access for statements and their transactions.
type StatementRepository interface {
	// CreateWithTransactions persists the statement header and all of its
	// transactions inside the given database transaction.
	CreateWithTransactions(ctx context.Context, tx Transaction, statement *domain.Statement) error
	GetByID(ctx context.Context, tenantID, id string) (*domain.Statement, error)
	GetByNaturalKey(ctx context.Context, tenantID, accountNumber, statementNumber string) (*domain.Statement, error)
	List(ctx context.Context, filter domain.StatementFilter) ([]*domain.Statement, error)
	UpdateStatus(ctx context.Context, id string, status domain.StatementStatus, updatedAt time.Time) error

	GetTransactionByID(ctx context.Context, tenantID, id string) (*domain.StatementTransaction, error)
	ListTransactionsByStatement(ctx context.Context, statementID string) ([]*domain.StatementTransaction, error)
	ListUnmatchedByStatement(ctx context.Context, statementID string) ([]*domain.StatementTransaction, error)
	CountUnmatchedByStatement(ctx context.Context, statementID string) (int64, error)
	ListUnmatchedByTenant(ctx context.Context, tenantID string, limit int) ([]*domain.StatementTransaction, error)
	UpdateTransactionMatch(ctx context.Context, id string, invoiceID *string, status domain.MatchStatus, updatedAt time.Time) error
}

// InvoiceRepository defines data access for invoices, which are owned by the
// invoicing subsystem and only referenced here.
type InvoiceRepository interface {
	GetByID(ctx context.Context, tenantID, id string) (*domain.Invoice, error)
	GetByNumber(ctx context.Context, tenantID, invoiceNumber string) (*domain.Invoice, error)
	ListOpenByPartners(ctx context.Context, tenantID string, partnerIDs []string, minAmount, maxAmount decimal.Decimal) ([]*domain.Invoice, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, tenantID, id string) (*domain.Invoice, error)
	UpdatePayment(ctx context.Context, tx Transaction, id string, paidAmount decimal.Decimal, status domain.PaymentStatus, updatedAt time.Time) error
}

// PartnerRepository defines data access for partners.
type PartnerRepository interface {
	FindByBankAccount(ctx context.Context, tenantID, accountNumber string) ([]*domain.Partner, error)
}

// PaymentRepository defines data access for payments.
type PaymentRepository interface {
	Create(ctx context.Context, tx Transaction, payment *domain.Payment) error
	SumClearedByInvoice(ctx context.Context, tx Transaction, invoiceID string) (decimal.Decimal, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation that failed with a transient conflict, such
// as a deadlock or serialization failure. The operation must be safe to run
// more than once.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// nopRetrier runs the operation exactly once.
type nopRetrier struct{}

func (nopRetrier) Retry(_ context.Context, operation func() error) error {
	return operation()
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
