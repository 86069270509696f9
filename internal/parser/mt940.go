package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fakturo/bankrecon/internal/domain"
)

// parseMT940 parses a SWIFT MT940 interbank statement. The format is
// line-oriented: each line starts with a tag, and :86: lines attach
// free-text detail to the immediately preceding :61: transaction.
func parseMT940(content []byte) (*ParsedStatement, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, domain.ErrEmptyFile
	}

	stmt := &ParsedStatement{}

	var pending *ParsedTransaction
	flush := func() {
		if pending != nil {
			stmt.Transactions = append(stmt.Transactions, *pending)
			pending = nil
		}
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimRight(scanner.Text(), "\r")

		switch {
		case strings.HasPrefix(raw, ":25:"):
			stmt.AccountNumber = strings.TrimSpace(raw[4:])

		case strings.HasPrefix(raw, ":28C:"):
			stmt.StatementNumber = strings.TrimSpace(raw[5:])

		case strings.HasPrefix(raw, ":60F:"), strings.HasPrefix(raw, ":60M:"):
			balance, date, currency, err := parseMT940Balance(raw[5:])
			if err != nil {
				return nil, rowError(line, err)
			}

			stmt.OpeningBalance = balance
			stmt.PeriodStart = date
			stmt.Currency = currency

		case strings.HasPrefix(raw, ":62F:"), strings.HasPrefix(raw, ":62M:"):
			balance, date, _, err := parseMT940Balance(raw[5:])
			if err != nil {
				return nil, rowError(line, err)
			}

			stmt.ClosingBalance = balance
			stmt.PeriodEnd = date
			stmt.StatementDate = date

		case strings.HasPrefix(raw, ":61:"):
			// A :61: starts a new transaction; the previous one is
			// complete once its tag has been fully read.
			flush()

			txn, err := parseMT940Transaction(raw[4:])
			if err != nil {
				return nil, rowError(line, err)
			}

			pending = txn

		case strings.HasPrefix(raw, ":86:"):
			if pending != nil {
				detail := strings.TrimSpace(raw[4:])
				if pending.Description == "" {
					pending.Description = detail
				} else {
					pending.Description += " " + detail
				}
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	// The last transaction has no following tag to terminate it.
	flush()

	if stmt.AccountNumber == "" || stmt.StatementNumber == "" {
		return nil, fmt.Errorf("%w: missing :25: or :28C: tag", domain.ErrInvalidFormat)
	}

	if stmt.StatementDate.IsZero() {
		stmt.StatementDate = stmt.PeriodEnd
	}

	return stmt, nil
}

// parseMT940Balance parses a :60F:/:62F: balance body:
// sign character (C/D), 6-digit date YYMMDD, 3-letter currency, amount.
func parseMT940Balance(body string) (decimal.Decimal, time.Time, string, error) {
	body = strings.TrimSpace(body)
	if len(body) < 10 {
		return decimal.Zero, time.Time{}, "", fmt.Errorf("%w: balance field too short", domain.ErrParse)
	}

	sign := body[0]
	date, err := parseMT940Date(body[1:7])
	if err != nil {
		return decimal.Zero, time.Time{}, "", err
	}

	currency := body[7:10]

	amount, err := ParseAmount(body[10:])
	if err != nil {
		return decimal.Zero, time.Time{}, "", err
	}

	if sign == 'D' {
		amount = amount.Neg()
	}

	return amount, date, currency, nil
}

// parseMT940Transaction parses a :61: body: 6-digit value date YYMMDD,
// optional 4-digit entry date MMDD, debit/credit flag, amount with a comma
// decimal separator, optional Nxxx booking code followed by the customer
// reference.
func parseMT940Transaction(body string) (*ParsedTransaction, error) {
	body = strings.TrimSpace(body)
	if len(body) < 8 {
		return nil, fmt.Errorf("%w: transaction field too short", domain.ErrParse)
	}

	txDate, err := parseMT940Date(body[:6])
	if err != nil {
		return nil, err
	}

	rest := body[6:]

	valueDate := txDate
	if len(rest) >= 4 && isDigits(rest[:4]) {
		if d, err := time.Parse("0102", rest[:4]); err == nil {
			valueDate = time.Date(txDate.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
			rest = rest[4:]
		}
	}

	if rest == "" {
		return nil, fmt.Errorf("%w: missing debit/credit flag", domain.ErrParse)
	}

	var direction domain.Direction
	switch rest[0] {
	case 'C':
		direction = domain.DirectionCredit
	case 'D':
		direction = domain.DirectionDebit
	default:
		return nil, fmt.Errorf("%w: invalid debit/credit flag %q", domain.ErrParse, rest[0])
	}
	rest = rest[1:]

	// Optional funds code letter between the flag and the amount.
	if rest != "" && !isDigits(rest[:1]) {
		rest = rest[1:]
	}

	end := 0
	for end < len(rest) && (isDigits(rest[end:end+1]) || rest[end] == ',' || rest[end] == '.') {
		end++
	}
	if end == 0 {
		return nil, fmt.Errorf("%w: missing amount", domain.ErrParse)
	}

	amount, err := ParseAmount(rest[:end])
	if err != nil {
		return nil, err
	}
	rest = rest[end:]

	txn := &ParsedTransaction{
		TransactionDate: txDate,
		ValueDate:       valueDate,
		Direction:       direction,
		Amount:          amount,
	}

	// Booking code (e.g. NTRF) then the customer reference up to the
	// bank-reference separator.
	if len(rest) >= 4 && rest[0] == 'N' {
		rest = rest[4:]
	}
	if i := strings.Index(rest, "//"); i >= 0 {
		rest = rest[:i]
	}
	txn.Reference = strings.TrimSpace(rest)

	return txn, nil
}

// parseMT940Date parses a 6-digit YYMMDD date.
func parseMT940Date(s string) (time.Time, error) {
	t, err := time.Parse("060102", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", domain.ErrParse, s)
	}

	return t, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return s != ""
}
