package parser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fakturo/bankrecon/internal/domain"
)

// csvPlaceholderAccount stands in for the owner's account number, which
// delimited exports do not carry.
const csvPlaceholderAccount = "CSV-IMPORT"

// csvColumn identifies a logical column in a delimited statement export.
type csvColumn int

const (
	colDate csvColumn = iota
	colValueDate
	colDebit
	colCredit
	colReference
	colDescription
	colCounterpartyName
	colCounterpartyAccount
)

// csvHeaderSynonyms maps localized and English header names onto logical
// columns, matched case-insensitively.
var csvHeaderSynonyms = map[string]csvColumn{
	"datum":         colDate,
	"date":          colDate,
	"datum valute":  colValueDate,
	"value date":    colValueDate,
	"valuta":        colValueDate,
	"duguje":        colDebit,
	"debit":         colDebit,
	"potrazuje":     colCredit,
	"credit":        colCredit,
	"poziv na broj": colReference,
	"reference":     colReference,
	"opis":          colDescription,
	"description":   colDescription,
	"partner":       colCounterpartyName,
	"counterparty":  colCounterpartyName,
	"naziv":         colCounterpartyName,
	"racun":         colCounterpartyAccount,
	"account":       colCounterpartyAccount,
}

func parseCSV(content []byte) (*ParsedStatement, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domain.ErrEmptyFile
	}

	columns := make(map[csvColumn]int)
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if col, ok := csvHeaderSynonyms[name]; ok {
			columns[col] = i
		}
	}

	if _, ok := columns[colDate]; !ok {
		return nil, fmt.Errorf("%w: no date column recognized", domain.ErrInvalidFormat)
	}

	stmt := &ParsedStatement{
		// The format carries no account or statement number; synthesize
		// both so the natural-key dedup still has something to hold on to.
		AccountNumber:   csvPlaceholderAccount,
		StatementNumber: "CSV-" + time.Now().UTC().Format("20060102150405"),
		OpeningBalance:  decimal.Zero,
	}

	field := func(record []string, col csvColumn) string {
		idx, ok := columns[col]
		if !ok || idx >= len(record) {
			return ""
		}

		return strings.TrimSpace(record[idx])
	}

	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, rowError(row, fmt.Errorf("%w: %v", domain.ErrParse, err))
		}

		row++

		txDate, err := ParseDate(field(record, colDate))
		if err != nil {
			return nil, rowError(row, err)
		}

		credit := parseOptionalAmount(field(record, colCredit))
		debit := parseOptionalAmount(field(record, colDebit))

		txn := ParsedTransaction{
			TransactionDate:     txDate,
			ValueDate:           parseOptionalDate(field(record, colValueDate), txDate),
			Reference:           field(record, colReference),
			Description:         field(record, colDescription),
			CounterpartyName:    field(record, colCounterpartyName),
			CounterpartyAccount: field(record, colCounterpartyAccount),
		}

		if credit.IsPositive() {
			txn.Direction = domain.DirectionCredit
			txn.Amount = credit
		} else {
			txn.Direction = domain.DirectionDebit
			txn.Amount = debit
		}

		stmt.Transactions = append(stmt.Transactions, txn)

		if stmt.PeriodStart.IsZero() || txDate.Before(stmt.PeriodStart) {
			stmt.PeriodStart = txDate
		}
		if txDate.After(stmt.PeriodEnd) {
			stmt.PeriodEnd = txDate
		}
	}

	if len(stmt.Transactions) == 0 {
		return nil, domain.ErrEmptyFile
	}

	// No balances in the export: opening is assumed zero, closing is the
	// net movement over the period.
	closing := decimal.Zero
	for _, txn := range stmt.Transactions {
		if txn.Direction == domain.DirectionCredit {
			closing = closing.Add(txn.Amount)
		} else {
			closing = closing.Sub(txn.Amount)
		}
	}
	stmt.ClosingBalance = closing
	stmt.StatementDate = stmt.PeriodEnd

	return stmt, nil
}
