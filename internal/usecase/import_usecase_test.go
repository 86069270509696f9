package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fakturo/bankrecon/internal/domain"
	"github.com/fakturo/bankrecon/internal/usecase"
	"github.com/fakturo/bankrecon/internal/usecase/mocks"
)

const importTestMT940 = `:25:160-0000123456789-55
:28C:17/1
:60F:C240301EUR10000,00
:61:240305C5000,00NTRFINV-2024-001
:86:Payment for invoice
:61:240310D500,00NCHGFEE
:61:240315C1200,50NTRFINV-2024-007
:62F:C240331EUR15700,50
`

func TestImportUseCase_ImportStatement(t *testing.T) {
	statementRepo := mocks.NewMockStatementRepository()
	uc := usecase.NewImportUseCase(mocks.NewMockTransactionManager(), statementRepo, mocks.NewMockIDGenerator(), nil)

	statement, err := uc.ImportStatement(context.Background(), usecase.ImportStatementInput{
		TenantID: "tenant-1",
		FileName: "izvod-17.mt940",
		Content:  []byte(importTestMT940),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if statement.Status != domain.StatementStatusImported {
		t.Errorf("expected status IMPORTED, got %s", statement.Status)
	}

	if len(statement.Transactions) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(statement.Transactions))
	}

	// Totals are sums over the persisted transactions by direction.
	if statement.TotalCredit.String() != "6200.5" {
		t.Errorf("expected total credit 6200.5, got %s", statement.TotalCredit)
	}
	if statement.TotalDebit.String() != "500" {
		t.Errorf("expected total debit 500, got %s", statement.TotalDebit)
	}

	for _, txn := range statement.Transactions {
		if txn.MatchStatus != domain.MatchStatusUnmatched {
			t.Errorf("expected transaction %s to start UNMATCHED, got %s", txn.ID, txn.MatchStatus)
		}
	}
}

func TestImportUseCase_ImportCSVStatement(t *testing.T) {
	statementRepo := mocks.NewMockStatementRepository()
	uc := usecase.NewImportUseCase(mocks.NewMockTransactionManager(), statementRepo, mocks.NewMockIDGenerator(), nil)

	content := "Datum;Duguje;Potrazuje;Poziv na broj;Opis\n" +
		"05.03.2024;;5000,00;INV-2024-001;Uplata po fakturi\n" +
		"10.03.2024;500,00;;;Provizija\n"

	statement, err := uc.ImportStatement(context.Background(), usecase.ImportStatementInput{
		TenantID: "tenant-1",
		FileName: "izvod.csv",
		Content:  []byte(content),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The format carries no account number; the parser fills in a
	// placeholder so the statement still passes validation and keeps a
	// usable natural key.
	if statement.AccountNumber == "" {
		t.Error("expected a synthesized account number")
	}
	if statement.StatementNumber == "" {
		t.Error("expected a synthesized statement number")
	}

	if len(statement.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(statement.Transactions))
	}
	if statement.TotalCredit.String() != "5000" {
		t.Errorf("expected total credit 5000, got %s", statement.TotalCredit)
	}
	if statement.TotalDebit.String() != "500" {
		t.Errorf("expected total debit 500, got %s", statement.TotalDebit)
	}
}

func TestImportUseCase_DuplicateStatement(t *testing.T) {
	statementRepo := mocks.NewMockStatementRepository()
	uc := usecase.NewImportUseCase(mocks.NewMockTransactionManager(), statementRepo, mocks.NewMockIDGenerator(), nil)

	input := usecase.ImportStatementInput{
		TenantID: "tenant-1",
		FileName: "izvod-17.mt940",
		Content:  []byte(importTestMT940),
	}

	if _, err := uc.ImportStatement(context.Background(), input); err != nil {
		t.Fatalf("first import failed: %v", err)
	}

	_, err := uc.ImportStatement(context.Background(), input)
	if !errors.Is(err, domain.ErrDuplicateStatement) {
		t.Fatalf("expected ErrDuplicateStatement, got %v", err)
	}

	statements, _ := statementRepo.List(context.Background(), domain.StatementFilter{TenantID: "tenant-1"})
	if len(statements) != 1 {
		t.Errorf("expected exactly one persisted statement, got %d", len(statements))
	}
}

func TestImportUseCase_SameStatementDifferentTenants(t *testing.T) {
	statementRepo := mocks.NewMockStatementRepository()
	uc := usecase.NewImportUseCase(mocks.NewMockTransactionManager(), statementRepo, mocks.NewMockIDGenerator(), nil)

	for _, tenant := range []string{"tenant-1", "tenant-2"} {
		_, err := uc.ImportStatement(context.Background(), usecase.ImportStatementInput{
			TenantID: tenant,
			FileName: "izvod-17.mt940",
			Content:  []byte(importTestMT940),
		})
		if err != nil {
			t.Fatalf("import for %s failed: %v", tenant, err)
		}
	}
}

func TestImportUseCase_UnsupportedFormat(t *testing.T) {
	uc := usecase.NewImportUseCase(mocks.NewMockTransactionManager(), mocks.NewMockStatementRepository(), mocks.NewMockIDGenerator(), nil)

	_, err := uc.ImportStatement(context.Background(), usecase.ImportStatementInput{
		TenantID: "tenant-1",
		FileName: "statement.pdf",
		Content:  []byte("%PDF"),
	})
	if !errors.Is(err, domain.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestImportUseCase_ExplicitFormatOverridesExtension(t *testing.T) {
	statementRepo := mocks.NewMockStatementRepository()
	uc := usecase.NewImportUseCase(mocks.NewMockTransactionManager(), statementRepo, mocks.NewMockIDGenerator(), nil)

	// File named .txt, but the caller says it is MT940.
	statement, err := uc.ImportStatement(context.Background(), usecase.ImportStatementInput{
		TenantID: "tenant-1",
		FileName: "upload.txt",
		Format:   "mt940",
		Content:  []byte(importTestMT940),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if statement.StatementNumber != "17/1" {
		t.Errorf("expected statement number 17/1, got %s", statement.StatementNumber)
	}
}

func TestImportUseCase_ParseFailureLeavesNothingBehind(t *testing.T) {
	statementRepo := mocks.NewMockStatementRepository()
	uc := usecase.NewImportUseCase(mocks.NewMockTransactionManager(), statementRepo, mocks.NewMockIDGenerator(), nil)

	_, err := uc.ImportStatement(context.Background(), usecase.ImportStatementInput{
		TenantID: "tenant-1",
		FileName: "izvod.mt940",
		Content:  []byte(":25:ACC\n:28C:1/1\n:61:garbage\n"),
	})
	if !errors.Is(err, domain.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}

	statements, _ := statementRepo.List(context.Background(), domain.StatementFilter{TenantID: "tenant-1"})
	if len(statements) != 0 {
		t.Errorf("expected no persisted statements after parse failure, got %d", len(statements))
	}
}

func TestImportUseCase_InvalidTenant(t *testing.T) {
	uc := usecase.NewImportUseCase(mocks.NewMockTransactionManager(), mocks.NewMockStatementRepository(), mocks.NewMockIDGenerator(), nil)

	_, err := uc.ImportStatement(context.Background(), usecase.ImportStatementInput{
		TenantID: "",
		FileName: "izvod.mt940",
		Content:  []byte(importTestMT940),
	})
	if !errors.Is(err, domain.ErrInvalidTenantID) {
		t.Fatalf("expected ErrInvalidTenantID, got %v", err)
	}
}

func TestImportUseCase_RetriesTransientPersistFailure(t *testing.T) {
	statementRepo := mocks.NewMockStatementRepository()

	attempts := 0
	statementRepo.CreateWithTransactionsFunc = func(ctx context.Context, tx usecase.Transaction, statement *domain.Statement) error {
		attempts++
		if attempts == 1 {
			return errors.New("deadlock detected")
		}
		return nil
	}

	retrier := mocks.NewMockRetrier()
	retrier.RetryFunc = func(ctx context.Context, operation func() error) error {
		if err := operation(); err != nil {
			return operation()
		}
		return nil
	}

	uc := usecase.NewImportUseCase(mocks.NewMockTransactionManager(), statementRepo, mocks.NewMockIDGenerator(), retrier)

	statement, err := uc.ImportStatement(context.Background(), usecase.ImportStatementInput{
		TenantID: "tenant-1",
		FileName: "izvod-17.mt940",
		Content:  []byte(importTestMT940),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if retrier.RetryCalls != 1 {
		t.Errorf("expected the persist step to go through the retrier once, got %d", retrier.RetryCalls)
	}
	if attempts != 2 {
		t.Errorf("expected a second persist attempt after the transient failure, got %d", attempts)
	}
	if statement.Status != domain.StatementStatusImported {
		t.Errorf("expected status IMPORTED, got %s", statement.Status)
	}
}
