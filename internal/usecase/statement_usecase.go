package usecase

import (
	"context"

	"github.com/fakturo/bankrecon/internal/domain"
)

// StatementUseCase handles read paths over imported statements. No matching
// logic lives here.
type StatementUseCase struct {
	statementRepo StatementRepository
}

// NewStatementUseCase creates a new StatementUseCase.
func NewStatementUseCase(statementRepo StatementRepository) *StatementUseCase {
	return &StatementUseCase{statementRepo: statementRepo}
}

// ListStatementsInput represents input for listing statements.
type ListStatementsInput struct {
	TenantID      string
	AccountNumber string
	Status        string
	Limit         int
	Offset        int
}

// ListStatements lists statements for a tenant.
func (uc *StatementUseCase) ListStatements(ctx context.Context, input ListStatementsInput) ([]*domain.Statement, error) {
	limit, offset, err := domain.ValidatePagination(input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}

	return uc.statementRepo.List(ctx, domain.StatementFilter{
		TenantID:      input.TenantID,
		AccountNumber: input.AccountNumber,
		Status:        domain.StatementStatus(input.Status),
		Limit:         limit,
		Offset:        offset,
	})
}

// GetStatementWithTransactions returns a statement and all of its
// transactions.
func (uc *StatementUseCase) GetStatementWithTransactions(ctx context.Context, tenantID, id string) (*domain.Statement, error) {
	statement, err := uc.statementRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.statementRepo.ListTransactionsByStatement(ctx, statement.ID)
	if err != nil {
		return nil, err
	}

	statement.Transactions = transactions

	return statement, nil
}

// GetUnmatchedTransactions lists a tenant's unmatched transactions across
// statements, newest first.
func (uc *StatementUseCase) GetUnmatchedTransactions(ctx context.Context, tenantID string, limit int) ([]*domain.StatementTransaction, error) {
	limit, _, err := domain.ValidatePagination(limit, 0)
	if err != nil {
		return nil, err
	}

	return uc.statementRepo.ListUnmatchedByTenant(ctx, tenantID, limit)
}
