package dto

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fakturo/bankrecon/internal/domain"
	"github.com/fakturo/bankrecon/internal/usecase"
)

func TestImportStatementRequestToUseCaseInput(t *testing.T) {
	req := ImportStatementRequest{
		FileName: "izvod.mt940",
		Format:   "mt940",
		Content:  base64.StdEncoding.EncodeToString([]byte(":25:ACC")),
	}

	input, err := req.ToUseCaseInput("tenant-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if input.TenantID != "tenant-1" || input.FileName != "izvod.mt940" || input.Format != "mt940" {
		t.Fatalf("unexpected input: %+v", input)
	}
	if string(input.Content) != ":25:ACC" {
		t.Fatalf("expected decoded content, got %q", input.Content)
	}
}

func TestImportStatementRequestInvalidBase64(t *testing.T) {
	req := ImportStatementRequest{FileName: "izvod.mt940", Content: "not base64!!!"}

	if _, err := req.ToUseCaseInput("tenant-1"); err == nil {
		t.Fatal("expected error for invalid base64")
	}
}

func TestStatementFromDomain(t *testing.T) {
	invoiceID := "inv-1"
	statement := &domain.Statement{
		ID:              "stmt-1",
		TenantID:        "tenant-1",
		AccountNumber:   "160-0000123456789-55",
		StatementNumber: "17/1",
		StatementDate:   time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		OpeningBalance:  decimal.RequireFromString("10000"),
		ClosingBalance:  decimal.RequireFromString("15000"),
		Status:          domain.StatementStatusMatched,
		Transactions: []*domain.StatementTransaction{
			{
				ID:          "txn-1",
				StatementID: "stmt-1",
				Amount:      decimal.RequireFromString("5000"),
				Direction:   domain.DirectionCredit,
				MatchStatus: domain.MatchStatusMatched,
				InvoiceID:   &invoiceID,
			},
		},
	}

	resp := StatementFromDomain(statement)

	if resp.StatementDate != "2024-03-31" {
		t.Errorf("expected formatted date, got %q", resp.StatementDate)
	}
	if resp.Status != "MATCHED" {
		t.Errorf("expected MATCHED, got %s", resp.Status)
	}
	if len(resp.Transactions) != 1 || resp.Transactions[0].InvoiceID == nil || *resp.Transactions[0].InvoiceID != "inv-1" {
		t.Errorf("unexpected transactions: %+v", resp.Transactions)
	}
	// Zero value dates are omitted rather than rendered as epoch strings.
	if resp.PeriodStart != "" {
		t.Errorf("expected empty period start, got %q", resp.PeriodStart)
	}
}

func TestAutoMatchFromResult(t *testing.T) {
	resp := AutoMatchFromResult(&usecase.AutoMatchResult{
		Matched:   2,
		Unmatched: 1,
		ByStrategy: map[usecase.MatchStrategy]int{
			usecase.MatchStrategyReference:    1,
			usecase.MatchStrategyCounterparty: 1,
		},
	})

	if resp.Matched != 2 || resp.Unmatched != 1 {
		t.Fatalf("unexpected counts: %+v", resp)
	}
	if resp.ByStrategy["reference"] != 1 || resp.ByStrategy["counterparty"] != 1 {
		t.Fatalf("unexpected strategies: %+v", resp.ByStrategy)
	}
}
