package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fakturo/bankrecon/internal/domain"
	"github.com/fakturo/bankrecon/internal/parser"
)

// ImportUseCase ingests bank statement files.
type ImportUseCase struct {
	txManager     TransactionManager
	statementRepo StatementRepository
	idGen         IDGenerator
	retrier       Retrier
}

// NewImportUseCase creates a new ImportUseCase. A nil retrier runs the
// persist step exactly once.
func NewImportUseCase(
	txManager TransactionManager,
	statementRepo StatementRepository,
	idGen IDGenerator,
	retrier Retrier,
) *ImportUseCase {
	if retrier == nil {
		retrier = nopRetrier{}
	}

	return &ImportUseCase{
		txManager:     txManager,
		statementRepo: statementRepo,
		idGen:         idGen,
		retrier:       retrier,
	}
}

// ImportStatementInput represents input for importing a statement file.
type ImportStatementInput struct {
	TenantID string
	FileName string
	// Format overrides file extension detection when set.
	Format  string
	Content []byte
}

// ImportStatement parses the file, checks for a prior import of the same
// statement and persists the header plus all transactions as one unit.
// A failed import leaves no partial writes behind.
func (uc *ImportUseCase) ImportStatement(ctx context.Context, input ImportStatementInput) (*domain.Statement, error) {
	if err := domain.ValidateTenantID(input.TenantID); err != nil {
		return nil, err
	}

	format, err := uc.resolveFormat(input)
	if err != nil {
		return nil, err
	}

	parsed, err := parser.Parse(input.Content, format)
	if err != nil {
		return nil, err
	}

	existing, err := uc.statementRepo.GetByNaturalKey(ctx, input.TenantID, parsed.AccountNumber, parsed.StatementNumber)
	if err != nil && !errors.Is(err, domain.ErrStatementNotFound) {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFailed, err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicateStatement
	}

	now := time.Now().UTC()

	statement := &domain.Statement{
		ID:              uc.idGen.Generate(),
		TenantID:        input.TenantID,
		AccountNumber:   parsed.AccountNumber,
		BankName:        parsed.BankName,
		StatementNumber: parsed.StatementNumber,
		StatementDate:   parsed.StatementDate,
		PeriodStart:     parsed.PeriodStart,
		PeriodEnd:       parsed.PeriodEnd,
		OpeningBalance:  parsed.OpeningBalance,
		ClosingBalance:  parsed.ClosingBalance,
		Currency:        parsed.Currency,
		FileName:        input.FileName,
		Status:          domain.StatementStatusImported,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := statement.Validate(); err != nil {
		return nil, err
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero

	for _, pt := range parsed.Transactions {
		txn := &domain.StatementTransaction{
			ID:                  uc.idGen.Generate(),
			StatementID:         statement.ID,
			TenantID:            input.TenantID,
			TransactionDate:     pt.TransactionDate,
			ValueDate:           pt.ValueDate,
			Amount:              pt.Amount,
			Direction:           pt.Direction,
			Reference:           pt.Reference,
			Description:         pt.Description,
			CounterpartyName:    pt.CounterpartyName,
			CounterpartyAccount: pt.CounterpartyAccount,
			MatchStatus:         domain.MatchStatusUnmatched,
			CreatedAt:           now,
			UpdatedAt:           now,
		}

		switch pt.Direction {
		case domain.DirectionCredit:
			totalCredit = totalCredit.Add(pt.Amount)
		default:
			totalDebit = totalDebit.Add(pt.Amount)
		}

		statement.Transactions = append(statement.Transactions, txn)
	}

	statement.TotalDebit = totalDebit
	statement.TotalCredit = totalCredit

	// Each attempt gets a fresh transaction; inserting into a bulk-loaded
	// table can lose a deadlock to a concurrent import.
	persist := func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.statementRepo.CreateWithTransactions(ctx, tx, statement); err != nil {
			return err
		}

		return tx.Commit(ctx)
	}

	if err := uc.retrier.Retry(ctx, persist); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFailed, err)
	}

	return statement, nil
}

func (uc *ImportUseCase) resolveFormat(input ImportStatementInput) (parser.Format, error) {
	if input.Format != "" {
		return parser.ParseFormat(input.Format)
	}

	return parser.DetectFormat(input.FileName)
}
