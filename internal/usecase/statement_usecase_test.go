package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fakturo/bankrecon/internal/domain"
	"github.com/fakturo/bankrecon/internal/usecase"
	"github.com/fakturo/bankrecon/internal/usecase/mocks"
)

func TestStatementUseCase_ListStatements(t *testing.T) {
	statementRepo := mocks.NewMockStatementRepository()
	seedStatement(t, statementRepo, testStatement())

	uc := usecase.NewStatementUseCase(statementRepo)

	statements, err := uc.ListStatements(context.Background(), usecase.ListStatementsInput{TenantID: "tenant-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(statements))
	}

	// Another tenant sees nothing.
	statements, err = uc.ListStatements(context.Background(), usecase.ListStatementsInput{TenantID: "tenant-2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(statements) != 0 {
		t.Errorf("expected no statements for tenant-2, got %d", len(statements))
	}
}

func TestStatementUseCase_ListStatementsClampsPagination(t *testing.T) {
	statementRepo := mocks.NewMockStatementRepository()
	var gotFilter domain.StatementFilter
	statementRepo.ListFunc = func(ctx context.Context, filter domain.StatementFilter) ([]*domain.Statement, error) {
		gotFilter = filter
		return nil, nil
	}

	uc := usecase.NewStatementUseCase(statementRepo)

	if _, err := uc.ListStatements(context.Background(), usecase.ListStatementsInput{TenantID: "tenant-1", Limit: -5, Offset: -1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotFilter.Limit != 50 || gotFilter.Offset != 0 {
		t.Errorf("expected clamped pagination 50/0, got %d/%d", gotFilter.Limit, gotFilter.Offset)
	}
}

func TestStatementUseCase_GetStatementWithTransactions(t *testing.T) {
	statementRepo := mocks.NewMockStatementRepository()
	seedStatement(t, statementRepo, testStatement(
		&domain.StatementTransaction{Amount: decimal.RequireFromString("100")},
		&domain.StatementTransaction{Amount: decimal.RequireFromString("250.50")},
	))

	uc := usecase.NewStatementUseCase(statementRepo)

	statement, err := uc.GetStatementWithTransactions(context.Background(), "tenant-1", "stmt-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(statement.Transactions) != 2 {
		t.Errorf("expected 2 transactions, got %d", len(statement.Transactions))
	}

	_, err = uc.GetStatementWithTransactions(context.Background(), "tenant-1", "missing")
	if !errors.Is(err, domain.ErrStatementNotFound) {
		t.Errorf("expected ErrStatementNotFound, got %v", err)
	}
}

func TestStatementUseCase_GetUnmatchedTransactions(t *testing.T) {
	statementRepo := mocks.NewMockStatementRepository()
	matched := "inv-1"
	seedStatement(t, statementRepo, testStatement(
		&domain.StatementTransaction{Amount: decimal.RequireFromString("100")},
		&domain.StatementTransaction{Amount: decimal.RequireFromString("200"), MatchStatus: domain.MatchStatusMatched, InvoiceID: &matched},
	))

	uc := usecase.NewStatementUseCase(statementRepo)

	txns, err := uc.GetUnmatchedTransactions(context.Background(), "tenant-1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txns) != 1 {
		t.Fatalf("expected 1 unmatched transaction, got %d", len(txns))
	}
	if txns[0].MatchStatus != domain.MatchStatusUnmatched {
		t.Errorf("expected UNMATCHED, got %s", txns[0].MatchStatus)
	}
}
