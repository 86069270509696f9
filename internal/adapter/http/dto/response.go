package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fakturo/bankrecon/internal/domain"
	"github.com/fakturo/bankrecon/internal/usecase"
)

// StatementResponse represents a statement in API responses.
type StatementResponse struct {
	ID              string                          `json:"id"`
	AccountNumber   string                          `json:"account_number"`
	BankName        string                          `json:"bank_name,omitempty"`
	StatementNumber string                          `json:"statement_number"`
	StatementDate   string                          `json:"statement_date,omitempty"`
	PeriodStart     string                          `json:"period_start,omitempty"`
	PeriodEnd       string                          `json:"period_end,omitempty"`
	OpeningBalance  decimal.Decimal                 `json:"opening_balance"`
	ClosingBalance  decimal.Decimal                 `json:"closing_balance"`
	TotalDebit      decimal.Decimal                 `json:"total_debit"`
	TotalCredit     decimal.Decimal                 `json:"total_credit"`
	Currency        string                          `json:"currency,omitempty"`
	FileName        string                          `json:"file_name"`
	Status          string                          `json:"status"`
	Transactions    []*StatementTransactionResponse `json:"transactions,omitempty"`
	CreatedAt       time.Time                       `json:"created_at"`
	UpdatedAt       time.Time                       `json:"updated_at"`
}

// StatementFromDomain converts a domain statement to a response.
func StatementFromDomain(s *domain.Statement) *StatementResponse {
	resp := &StatementResponse{
		ID:              s.ID,
		AccountNumber:   s.AccountNumber,
		BankName:        s.BankName,
		StatementNumber: s.StatementNumber,
		StatementDate:   formatDate(s.StatementDate),
		PeriodStart:     formatDate(s.PeriodStart),
		PeriodEnd:       formatDate(s.PeriodEnd),
		OpeningBalance:  s.OpeningBalance,
		ClosingBalance:  s.ClosingBalance,
		TotalDebit:      s.TotalDebit,
		TotalCredit:     s.TotalCredit,
		Currency:        s.Currency,
		FileName:        s.FileName,
		Status:          string(s.Status),
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}

	if len(s.Transactions) > 0 {
		resp.Transactions = TransactionsFromDomain(s.Transactions)
	}

	return resp
}

// StatementsFromDomain converts domain statements to responses.
func StatementsFromDomain(statements []*domain.Statement) []*StatementResponse {
	result := make([]*StatementResponse, len(statements))
	for i, s := range statements {
		result[i] = StatementFromDomain(s)
	}
	return result
}

// StatementTransactionResponse represents a statement transaction in API
// responses.
type StatementTransactionResponse struct {
	ID                  string          `json:"id"`
	StatementID         string          `json:"statement_id"`
	TransactionDate     string          `json:"transaction_date"`
	ValueDate           string          `json:"value_date,omitempty"`
	Amount              decimal.Decimal `json:"amount"`
	Direction           string          `json:"direction"`
	Reference           string          `json:"reference,omitempty"`
	Description         string          `json:"description,omitempty"`
	CounterpartyName    string          `json:"counterparty_name,omitempty"`
	CounterpartyAccount string          `json:"counterparty_account,omitempty"`
	MatchStatus         string          `json:"match_status"`
	InvoiceID           *string         `json:"invoice_id,omitempty"`
}

// TransactionFromDomain converts a domain transaction to a response.
func TransactionFromDomain(t *domain.StatementTransaction) *StatementTransactionResponse {
	return &StatementTransactionResponse{
		ID:                  t.ID,
		StatementID:         t.StatementID,
		TransactionDate:     formatDate(t.TransactionDate),
		ValueDate:           formatDate(t.ValueDate),
		Amount:              t.Amount,
		Direction:           string(t.Direction),
		Reference:           t.Reference,
		Description:         t.Description,
		CounterpartyName:    t.CounterpartyName,
		CounterpartyAccount: t.CounterpartyAccount,
		MatchStatus:         string(t.MatchStatus),
		InvoiceID:           t.InvoiceID,
	}
}

// TransactionsFromDomain converts domain transactions to responses.
func TransactionsFromDomain(transactions []*domain.StatementTransaction) []*StatementTransactionResponse {
	result := make([]*StatementTransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// PaymentResponse represents a payment in API responses.
type PaymentResponse struct {
	ID            string          `json:"id"`
	InvoiceID     string          `json:"invoice_id"`
	TransactionID string          `json:"transaction_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   string          `json:"payment_date"`
	Method        string          `json:"method"`
	Reference     string          `json:"reference,omitempty"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// PaymentFromDomain converts a domain payment to a response.
func PaymentFromDomain(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:            p.ID,
		InvoiceID:     p.InvoiceID,
		TransactionID: p.TransactionID,
		Amount:        p.Amount,
		PaymentDate:   formatDate(p.PaymentDate),
		Method:        p.Method,
		Reference:     p.Reference,
		Status:        p.Status,
		CreatedAt:     p.CreatedAt,
	}
}

// AutoMatchResponse reports the outcome of an auto-match pass.
type AutoMatchResponse struct {
	Matched    int            `json:"matched"`
	Unmatched  int            `json:"unmatched"`
	ByStrategy map[string]int `json:"by_strategy,omitempty"`
}

// AutoMatchFromResult converts an auto-match result to a response.
func AutoMatchFromResult(result *usecase.AutoMatchResult) *AutoMatchResponse {
	resp := &AutoMatchResponse{
		Matched:   result.Matched,
		Unmatched: result.Unmatched,
	}

	if len(result.ByStrategy) > 0 {
		resp.ByStrategy = make(map[string]int, len(result.ByStrategy))
		for strategy, count := range result.ByStrategy {
			resp.ByStrategy[string(strategy)] = count
		}
	}

	return resp
}

// ListStatementsResponse represents a list of statements.
type ListStatementsResponse struct {
	Statements []*StatementResponse `json:"statements"`
	Total      int64                `json:"total"`
}

// ListTransactionsResponse represents a list of transactions.
type ListTransactionsResponse struct {
	Transactions []*StatementTransactionResponse `json:"transactions"`
	Total        int64                           `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format("2006-01-02")
}
