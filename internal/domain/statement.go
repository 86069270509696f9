package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatementStatus is the lifecycle status of an imported statement.
type StatementStatus string

const (
	StatementStatusImported   StatementStatus = "IMPORTED"
	StatementStatusProcessing StatementStatus = "PROCESSING"
	StatementStatusMatched    StatementStatus = "MATCHED"
)

// MatchStatus is whether a transaction has been bound to an invoice.
type MatchStatus string

const (
	MatchStatusUnmatched MatchStatus = "UNMATCHED"
	MatchStatusMatched   MatchStatus = "MATCHED"
)

// Direction is the side of a statement transaction.
type Direction string

const (
	DirectionDebit  Direction = "DEBIT"
	DirectionCredit Direction = "CREDIT"
)

// Statement represents one imported bank statement document.
// (TenantID, AccountNumber, StatementNumber) is unique per statement.
type Statement struct {
	CreatedAt       time.Time
	UpdatedAt       time.Time
	StatementDate   time.Time
	PeriodStart     time.Time
	PeriodEnd       time.Time
	ID              string
	TenantID        string
	AccountNumber   string
	BankName        string
	StatementNumber string
	Currency        string
	FileName        string
	Status          StatementStatus
	OpeningBalance  decimal.Decimal
	ClosingBalance  decimal.Decimal
	TotalDebit      decimal.Decimal
	TotalCredit     decimal.Decimal
	Transactions    []*StatementTransaction
}

// StatementTransaction represents one line item within a statement. It is
// owned exclusively by its statement and destroyed with it.
type StatementTransaction struct {
	CreatedAt           time.Time
	UpdatedAt           time.Time
	TransactionDate     time.Time
	ValueDate           time.Time
	InvoiceID           *string
	ID                  string
	StatementID         string
	TenantID            string
	Reference           string
	Description         string
	CounterpartyName    string
	CounterpartyAccount string
	MatchStatus         MatchStatus
	Direction           Direction
	Amount              decimal.Decimal
}

// StatementFilter narrows statement list queries.
type StatementFilter struct {
	TenantID      string
	AccountNumber string
	Status        StatementStatus
	Limit         int
	Offset        int
}

// Validate validates a statement before persistence.
func (s *Statement) Validate() error {
	if s.AccountNumber == "" || s.StatementNumber == "" {
		return ErrInvalidFormat
	}

	return nil
}

// PaymentDate returns the date a payment materialized from this transaction
// should carry: the value date when the bank supplied one, otherwise the
// transaction date.
func (t *StatementTransaction) PaymentDate() time.Time {
	if !t.ValueDate.IsZero() {
		return t.ValueDate
	}

	return t.TransactionDate
}

// SignedAmount returns the amount with a sign derived from the direction:
// negative for debits, positive for credits.
func (t *StatementTransaction) SignedAmount() decimal.Decimal {
	if t.Direction == DirectionDebit {
		return t.Amount.Neg()
	}

	return t.Amount
}
