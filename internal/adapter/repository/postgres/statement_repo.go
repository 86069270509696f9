package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fakturo/bankrecon/internal/domain"
	"github.com/fakturo/bankrecon/internal/infrastructure/postgres/generated"
	"github.com/fakturo/bankrecon/internal/usecase"
)

// StatementRepository implements usecase.StatementRepository.
type StatementRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewStatementRepository creates a new StatementRepository.
func NewStatementRepository(pool *pgxpool.Pool) *StatementRepository {
	return &StatementRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// CreateWithTransactions persists a statement and all of its transactions
// inside the given transaction.
func (r *StatementRepository) CreateWithTransactions(ctx context.Context, tx usecase.Transaction, statement *domain.Statement) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateStatement(ctx, generated.CreateStatementParams{
		ID:              statement.ID,
		TenantID:        statement.TenantID,
		AccountNumber:   statement.AccountNumber,
		BankName:        statement.BankName,
		StatementNumber: statement.StatementNumber,
		StatementDate:   timeToPgDate(statement.StatementDate),
		PeriodStart:     timeToPgDate(statement.PeriodStart),
		PeriodEnd:       timeToPgDate(statement.PeriodEnd),
		OpeningBalance:  decimalToNumeric(statement.OpeningBalance),
		ClosingBalance:  decimalToNumeric(statement.ClosingBalance),
		TotalDebit:      decimalToNumeric(statement.TotalDebit),
		TotalCredit:     decimalToNumeric(statement.TotalCredit),
		Currency:        statement.Currency,
		FileName:        statement.FileName,
		Status:          string(statement.Status),
		CreatedAt:       timeToPgTimestamptz(statement.CreatedAt),
		UpdatedAt:       timeToPgTimestamptz(statement.UpdatedAt),
	})
	if err != nil {
		return err
	}

	for _, txn := range statement.Transactions {
		_, err := queries.CreateStatementTransaction(ctx, generated.CreateStatementTransactionParams{
			ID:                  txn.ID,
			StatementID:         txn.StatementID,
			TenantID:            txn.TenantID,
			TransactionDate:     timeToPgDate(txn.TransactionDate),
			ValueDate:           timeToPgDate(txn.ValueDate),
			Amount:              decimalToNumeric(txn.Amount),
			Direction:           string(txn.Direction),
			Reference:           txn.Reference,
			Description:         txn.Description,
			CounterpartyName:    txn.CounterpartyName,
			CounterpartyAccount: txn.CounterpartyAccount,
			MatchStatus:         string(txn.MatchStatus),
			InvoiceID:           stringPtrToPgText(txn.InvoiceID),
			CreatedAt:           timeToPgTimestamptz(txn.CreatedAt),
			UpdatedAt:           timeToPgTimestamptz(txn.UpdatedAt),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a statement by ID, scoped to the tenant.
func (r *StatementRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Statement, error) {
	row, err := r.queries.GetStatementByID(ctx, generated.GetStatementByIDParams{
		TenantID: tenantID,
		ID:       id,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStatementNotFound
		}

		return nil, err
	}

	return rowToStatement(row), nil
}

// GetByNaturalKey retrieves a statement by its import natural key.
func (r *StatementRepository) GetByNaturalKey(ctx context.Context, tenantID, accountNumber, statementNumber string) (*domain.Statement, error) {
	row, err := r.queries.GetStatementByNaturalKey(ctx, generated.GetStatementByNaturalKeyParams{
		TenantID:        tenantID,
		AccountNumber:   accountNumber,
		StatementNumber: statementNumber,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrStatementNotFound
		}

		return nil, err
	}

	return rowToStatement(row), nil
}

// List lists statements matching the filter, newest statement date first.
func (r *StatementRepository) List(ctx context.Context, filter domain.StatementFilter) ([]*domain.Statement, error) {
	rows, err := r.queries.ListStatements(ctx, generated.ListStatementsParams{
		TenantID: filter.TenantID,
		Column2:  filter.AccountNumber,
		Column3:  string(filter.Status),
		Limit:    int32(filter.Limit),
		Offset:   int32(filter.Offset),
	})
	if err != nil {
		return nil, err
	}

	statements := make([]*domain.Statement, 0, len(rows))
	for _, row := range rows {
		statements = append(statements, rowToStatement(row))
	}

	return statements, nil
}

// UpdateStatus updates a statement's processing status.
func (r *StatementRepository) UpdateStatus(ctx context.Context, id string, status domain.StatementStatus, updatedAt time.Time) error {
	return r.queries.UpdateStatementStatus(ctx, generated.UpdateStatementStatusParams{
		ID:        id,
		Status:    string(status),
		UpdatedAt: timeToPgTimestamptz(updatedAt),
	})
}

// GetTransactionByID retrieves a statement transaction by ID, scoped to the
// tenant.
func (r *StatementRepository) GetTransactionByID(ctx context.Context, tenantID, id string) (*domain.StatementTransaction, error) {
	row, err := r.queries.GetStatementTransactionByID(ctx, generated.GetStatementTransactionByIDParams{
		TenantID: tenantID,
		ID:       id,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}

		return nil, err
	}

	return rowToTransaction(row), nil
}

// ListTransactionsByStatement lists all transactions of a statement.
func (r *StatementRepository) ListTransactionsByStatement(ctx context.Context, statementID string) ([]*domain.StatementTransaction, error) {
	rows, err := r.queries.ListStatementTransactions(ctx, statementID)
	if err != nil {
		return nil, err
	}

	return rowsToTransactions(rows), nil
}

// ListUnmatchedByStatement lists the unmatched transactions of a statement.
func (r *StatementRepository) ListUnmatchedByStatement(ctx context.Context, statementID string) ([]*domain.StatementTransaction, error) {
	rows, err := r.queries.ListUnmatchedTransactionsByStatement(ctx, statementID)
	if err != nil {
		return nil, err
	}

	return rowsToTransactions(rows), nil
}

// CountUnmatchedByStatement counts the unmatched transactions of a statement.
func (r *StatementRepository) CountUnmatchedByStatement(ctx context.Context, statementID string) (int64, error) {
	return r.queries.CountUnmatchedTransactionsByStatement(ctx, statementID)
}

// ListUnmatchedByTenant lists a tenant's unmatched transactions across all
// statements, newest first.
func (r *StatementRepository) ListUnmatchedByTenant(ctx context.Context, tenantID string, limit int) ([]*domain.StatementTransaction, error) {
	rows, err := r.queries.ListUnmatchedTransactionsByTenant(ctx, generated.ListUnmatchedTransactionsByTenantParams{
		TenantID: tenantID,
		Limit:    int32(limit),
	})
	if err != nil {
		return nil, err
	}

	return rowsToTransactions(rows), nil
}

// UpdateTransactionMatch binds or unbinds a transaction's invoice.
func (r *StatementRepository) UpdateTransactionMatch(ctx context.Context, id string, invoiceID *string, status domain.MatchStatus, updatedAt time.Time) error {
	return r.queries.UpdateTransactionMatch(ctx, generated.UpdateTransactionMatchParams{
		ID:          id,
		InvoiceID:   stringPtrToPgText(invoiceID),
		MatchStatus: string(status),
		UpdatedAt:   timeToPgTimestamptz(updatedAt),
	})
}

func rowToStatement(row generated.Statement) *domain.Statement {
	return &domain.Statement{
		ID:              row.ID,
		TenantID:        row.TenantID,
		AccountNumber:   row.AccountNumber,
		BankName:        row.BankName,
		StatementNumber: row.StatementNumber,
		StatementDate:   row.StatementDate.Time,
		PeriodStart:     row.PeriodStart.Time,
		PeriodEnd:       row.PeriodEnd.Time,
		OpeningBalance:  numericToDecimal(row.OpeningBalance),
		ClosingBalance:  numericToDecimal(row.ClosingBalance),
		TotalDebit:      numericToDecimal(row.TotalDebit),
		TotalCredit:     numericToDecimal(row.TotalCredit),
		Currency:        row.Currency,
		FileName:        row.FileName,
		Status:          domain.StatementStatus(row.Status),
		CreatedAt:       row.CreatedAt.Time,
		UpdatedAt:       row.UpdatedAt.Time,
	}
}

func rowToTransaction(row generated.StatementTransaction) *domain.StatementTransaction {
	return &domain.StatementTransaction{
		ID:                  row.ID,
		StatementID:         row.StatementID,
		TenantID:            row.TenantID,
		TransactionDate:     row.TransactionDate.Time,
		ValueDate:           row.ValueDate.Time,
		Amount:              numericToDecimal(row.Amount),
		Direction:           domain.Direction(row.Direction),
		Reference:           row.Reference,
		Description:         row.Description,
		CounterpartyName:    row.CounterpartyName,
		CounterpartyAccount: row.CounterpartyAccount,
		MatchStatus:         domain.MatchStatus(row.MatchStatus),
		InvoiceID:           pgTextToStringPtr(row.InvoiceID),
		CreatedAt:           row.CreatedAt.Time,
		UpdatedAt:           row.UpdatedAt.Time,
	}
}

func rowsToTransactions(rows []generated.StatementTransaction) []*domain.StatementTransaction {
	transactions := make([]*domain.StatementTransaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, rowToTransaction(row))
	}

	return transactions
}

// Type conversion helpers.
func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric

	_ = n.Scan(d.String())

	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}

	d, _ := decimal.NewFromString(n.Int.String())
	if n.Exp != 0 {
		d = d.Shift(n.Exp)
	}

	return d
}

func timeToPgTimestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func timeToPgDate(t time.Time) pgtype.Date {
	return pgtype.Date{Time: t, Valid: !t.IsZero()}
}

func stringToPgText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}

	return pgtype.Text{String: s, Valid: true}
}

func stringPtrToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}

	return pgtype.Text{String: *s, Valid: true}
}

func pgTextToStringPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}

	s := t.String

	return &s
}
