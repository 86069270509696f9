package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fakturo/bankrecon/internal/domain"
)

// MatchStrategy names the rule that bound a transaction to an invoice.
type MatchStrategy string

const (
	MatchStrategyReference    MatchStrategy = "reference"
	MatchStrategyCounterparty MatchStrategy = "counterparty"
	MatchStrategyManual       MatchStrategy = "manual"
)

// MatchUseCase binds statement transactions to open invoices.
type MatchUseCase struct {
	statementRepo StatementRepository
	invoiceRepo   InvoiceRepository
	partnerRepo   PartnerRepository
	tolerance     decimal.Decimal
	logger        *slog.Logger
}

// NewMatchUseCase creates a new MatchUseCase. tolerancePct is the
// counter-party match tolerance as a percentage of the transaction amount.
func NewMatchUseCase(
	statementRepo StatementRepository,
	invoiceRepo InvoiceRepository,
	partnerRepo PartnerRepository,
	tolerancePct float64,
	logger *slog.Logger,
) *MatchUseCase {
	if tolerancePct <= 0 {
		tolerancePct = DefaultMatchTolerancePct
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MatchUseCase{
		statementRepo: statementRepo,
		invoiceRepo:   invoiceRepo,
		partnerRepo:   partnerRepo,
		tolerance:     decimal.NewFromFloat(tolerancePct).Div(decimal.NewFromInt(100)),
		logger:        logger,
	}
}

// AutoMatchResult reports how many transactions each auto-match pass bound.
type AutoMatchResult struct {
	Matched   int
	Unmatched int
	// ByStrategy counts matches per rule that produced them.
	ByStrategy map[MatchStrategy]int
}

// AutoMatch scans the statement's unmatched transactions and binds each to
// an open invoice where one of the matching rules succeeds. A transaction
// that matches no rule stays UNMATCHED; per-transaction failures never abort
// the batch. The statement status is recomputed afterwards, so a statement
// without any transactions goes straight to MATCHED. Re-running on an
// unchanged statement mutates nothing.
func (uc *MatchUseCase) AutoMatch(ctx context.Context, tenantID, statementID string) (*AutoMatchResult, error) {
	statement, err := uc.statementRepo.GetByID(ctx, tenantID, statementID)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.statementRepo.ListUnmatchedByStatement(ctx, statement.ID)
	if err != nil {
		return nil, err
	}

	result := &AutoMatchResult{ByStrategy: make(map[MatchStrategy]int)}

	// Nothing left to match still means the statement has to converge on
	// MATCHED; an empty import would otherwise sit in IMPORTED forever.
	// The write is skipped once the status is right, so re-runs stay free
	// of side effects.
	if len(candidates) == 0 {
		if statement.Status != domain.StatementStatusMatched {
			if err := uc.statementRepo.UpdateStatus(ctx, statement.ID, domain.StatementStatusMatched, time.Now().UTC()); err != nil {
				return nil, err
			}
		}

		return result, nil
	}

	for _, txn := range candidates {
		invoice, strategy, err := uc.findInvoice(ctx, txn)
		if err != nil {
			uc.logger.WarnContext(ctx, "auto-match candidate lookup failed",
				"transaction_id", txn.ID, "error", err)
			result.Unmatched++

			continue
		}

		if invoice == nil {
			result.Unmatched++
			continue
		}

		if err := uc.bind(ctx, txn.ID, invoice.ID); err != nil {
			uc.logger.WarnContext(ctx, "auto-match bind failed",
				"transaction_id", txn.ID, "invoice_id", invoice.ID, "error", err)
			result.Unmatched++

			continue
		}

		result.Matched++
		result.ByStrategy[strategy]++
	}

	if err := uc.refreshStatementStatus(ctx, statement.ID); err != nil {
		return nil, err
	}

	return result, nil
}

// findInvoice applies the matching rules in order: exact reference match
// first, then counter-party plus amount. First success wins.
func (uc *MatchUseCase) findInvoice(ctx context.Context, txn *domain.StatementTransaction) (*domain.Invoice, MatchStrategy, error) {
	if txn.Reference != "" {
		invoice, err := uc.invoiceRepo.GetByNumber(ctx, txn.TenantID, txn.Reference)
		if err != nil && !errors.Is(err, domain.ErrInvoiceNotFound) {
			return nil, "", err
		}
		if invoice != nil {
			return invoice, MatchStrategyReference, nil
		}
	}

	if txn.CounterpartyAccount == "" {
		return nil, "", nil
	}

	partners, err := uc.partnerRepo.FindByBankAccount(ctx, txn.TenantID, txn.CounterpartyAccount)
	if err != nil {
		return nil, "", err
	}
	if len(partners) == 0 {
		return nil, "", nil
	}

	partnerIDs := make([]string, 0, len(partners))
	for _, p := range partners {
		partnerIDs = append(partnerIDs, p.ID)
	}

	delta := txn.Amount.Mul(uc.tolerance)
	minAmount := txn.Amount.Sub(delta)
	maxAmount := txn.Amount.Add(delta)

	invoices, err := uc.invoiceRepo.ListOpenByPartners(ctx, txn.TenantID, partnerIDs, minAmount, maxAmount)
	if err != nil {
		return nil, "", err
	}

	for _, invoice := range invoices {
		if uc.withinTolerance(txn.Amount, invoice.TotalAmount) {
			return invoice, MatchStrategyCounterparty, nil
		}
	}

	return nil, "", nil
}

// withinTolerance reports whether an invoice total lies within the
// configured percentage of the transaction amount, boundary inclusive.
func (uc *MatchUseCase) withinTolerance(txnAmount, invoiceTotal decimal.Decimal) bool {
	delta := txnAmount.Mul(uc.tolerance)

	return invoiceTotal.Sub(txnAmount).Abs().LessThanOrEqual(delta)
}

// MatchTransaction binds one transaction to a caller-chosen invoice. This is
// an operator override: no amount or reference consistency is re-validated.
func (uc *MatchUseCase) MatchTransaction(ctx context.Context, tenantID, transactionID, invoiceID string) (*domain.StatementTransaction, error) {
	txn, err := uc.statementRepo.GetTransactionByID(ctx, tenantID, transactionID)
	if err != nil {
		return nil, err
	}

	invoice, err := uc.invoiceRepo.GetByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}

	if err := uc.bind(ctx, txn.ID, invoice.ID); err != nil {
		return nil, err
	}

	if err := uc.refreshStatementStatus(ctx, txn.StatementID); err != nil {
		return nil, err
	}

	txn.InvoiceID = &invoice.ID
	txn.MatchStatus = domain.MatchStatusMatched

	return txn, nil
}

func (uc *MatchUseCase) bind(ctx context.Context, transactionID, invoiceID string) error {
	return uc.statementRepo.UpdateTransactionMatch(ctx, transactionID, &invoiceID, domain.MatchStatusMatched, time.Now().UTC())
}

// refreshStatementStatus recomputes the statement status from its unmatched
// transaction count: MATCHED when none remain, PROCESSING otherwise.
func (uc *MatchUseCase) refreshStatementStatus(ctx context.Context, statementID string) error {
	remaining, err := uc.statementRepo.CountUnmatchedByStatement(ctx, statementID)
	if err != nil {
		return err
	}

	status := domain.StatementStatusProcessing
	if remaining == 0 {
		status = domain.StatementStatusMatched
	}

	return uc.statementRepo.UpdateStatus(ctx, statementID, status, time.Now().UTC())
}
