package usecase

import (
	"context"
	"time"

	"github.com/fakturo/bankrecon/internal/domain"
)

// PaymentUseCase materializes matched transactions into payments.
type PaymentUseCase struct {
	txManager     TransactionManager
	statementRepo StatementRepository
	invoiceRepo   InvoiceRepository
	paymentRepo   PaymentRepository
	idGen         IDGenerator
	retrier       Retrier
}

// NewPaymentUseCase creates a new PaymentUseCase. A nil retrier runs the
// materialization exactly once.
func NewPaymentUseCase(
	txManager TransactionManager,
	statementRepo StatementRepository,
	invoiceRepo InvoiceRepository,
	paymentRepo PaymentRepository,
	idGen IDGenerator,
	retrier Retrier,
) *PaymentUseCase {
	if retrier == nil {
		retrier = nopRetrier{}
	}

	return &PaymentUseCase{
		txManager:     txManager,
		statementRepo: statementRepo,
		invoiceRepo:   invoiceRepo,
		paymentRepo:   paymentRepo,
		idGen:         idGen,
		retrier:       retrier,
	}
}

// CreatePaymentFromTransaction converts a matched transaction into a CLEARED
// payment and recomputes the invoice's paid amount as the sum of all CLEARED
// payments, so a retried recomputation is always consistent. The operation
// itself is not at-most-once: calling it twice for the same transaction
// creates two payments, and guarding against that is the caller's job.
func (uc *PaymentUseCase) CreatePaymentFromTransaction(ctx context.Context, tenantID, transactionID string) (*domain.Payment, error) {
	txn, err := uc.statementRepo.GetTransactionByID(ctx, tenantID, transactionID)
	if err != nil {
		return nil, err
	}

	if txn.MatchStatus != domain.MatchStatusMatched || txn.InvoiceID == nil {
		return nil, domain.ErrNotMatched
	}

	// The row lock below can lose a deadlock when two materializations
	// touch the same invoices in opposite order, so the whole transaction
	// is retried on transient conflicts.
	var payment *domain.Payment

	materialize := func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		// Lock the invoice row so concurrent materializations for the same
		// invoice cannot interleave their read and write.
		invoice, err := uc.invoiceRepo.GetByIDForUpdate(ctx, tx, tenantID, *txn.InvoiceID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()

		payment = &domain.Payment{
			ID:            uc.idGen.Generate(),
			TenantID:      tenantID,
			InvoiceID:     invoice.ID,
			TransactionID: txn.ID,
			Amount:        txn.Amount,
			PaymentDate:   txn.PaymentDate(),
			Method:        domain.PaymentMethodBankTransfer,
			Reference:     txn.Reference,
			Status:        domain.PaymentStatusCleared,
			CreatedAt:     now,
		}

		if err := payment.Validate(); err != nil {
			return err
		}

		if err := uc.paymentRepo.Create(ctx, tx, payment); err != nil {
			return err
		}

		paid, err := uc.paymentRepo.SumClearedByInvoice(ctx, tx, invoice.ID)
		if err != nil {
			return err
		}

		status := domain.DerivePaymentStatus(paid, invoice.TotalAmount)

		if err := uc.invoiceRepo.UpdatePayment(ctx, tx, invoice.ID, paid, status, now); err != nil {
			return err
		}

		return tx.Commit(ctx)
	}

	if err := uc.retrier.Retry(ctx, materialize); err != nil {
		return nil, err
	}

	return payment, nil
}
