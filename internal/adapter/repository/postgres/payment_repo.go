package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fakturo/bankrecon/internal/domain"
	"github.com/fakturo/bankrecon/internal/infrastructure/postgres/generated"
	"github.com/fakturo/bankrecon/internal/usecase"
)

// PaymentRepository implements usecase.PaymentRepository.
type PaymentRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewPaymentRepository creates a new PaymentRepository.
func NewPaymentRepository(pool *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create persists a payment inside the given transaction.
func (r *PaymentRepository) Create(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreatePayment(ctx, generated.CreatePaymentParams{
		ID:            payment.ID,
		TenantID:      payment.TenantID,
		InvoiceID:     payment.InvoiceID,
		TransactionID: stringToPgText(payment.TransactionID),
		Amount:        decimalToNumeric(payment.Amount),
		PaymentDate:   timeToPgDate(payment.PaymentDate),
		Method:        payment.Method,
		Reference:     payment.Reference,
		Status:        payment.Status,
		CreatedAt:     timeToPgTimestamptz(payment.CreatedAt),
	})

	return err
}

// SumClearedByInvoice sums all CLEARED payments for an invoice inside the
// given transaction.
func (r *PaymentRepository) SumClearedByInvoice(ctx context.Context, tx usecase.Transaction, invoiceID string) (decimal.Decimal, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	sum, err := queries.SumClearedPaymentsByInvoice(ctx, invoiceID)
	if err != nil {
		return decimal.Zero, err
	}

	return numericToDecimal(sum), nil
}
