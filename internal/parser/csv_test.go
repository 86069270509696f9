package parser

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fakturo/bankrecon/internal/domain"
)

const sampleCSV = `Datum;Datum valute;Duguje;Potrazuje;Poziv na broj;Opis;Partner;Racun
05.03.2024;06.03.2024;0,00;5.000,00;INV-2024-001;Uplata po fakturi;Acme d.o.o.;205-0000987654321-33
10.03.2024;;500,00;0,00;;Bankarska provizija;;
01.03.2024;;0,00;1.200,50;INV-2024-007;Uplata;Beta d.o.o.;340-11111111-11
`

func TestParseCSV(t *testing.T) {
	stmt, err := Parse([]byte(sampleCSV), FormatCSV)
	require.NoError(t, err)

	require.Len(t, stmt.Transactions, 3)
	require.NotEmpty(t, stmt.StatementNumber)
	require.True(t, strings.HasPrefix(stmt.StatementNumber, "CSV-"))
	require.Equal(t, "CSV-IMPORT", stmt.AccountNumber)

	// Period is the min/max transaction date observed.
	require.True(t, stmt.PeriodStart.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	require.True(t, stmt.PeriodEnd.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)))

	// Opening is assumed zero; closing is sum(credit) - sum(debit).
	require.Equal(t, "0", stmt.OpeningBalance.String())
	require.Equal(t, "5700.5", stmt.ClosingBalance.String())

	first := stmt.Transactions[0]
	require.Equal(t, domain.DirectionCredit, first.Direction)
	require.Equal(t, "5000", first.Amount.String())
	require.Equal(t, "INV-2024-001", first.Reference)
	require.Equal(t, "Acme d.o.o.", first.CounterpartyName)
	require.Equal(t, "205-0000987654321-33", first.CounterpartyAccount)

	fee := stmt.Transactions[1]
	require.Equal(t, domain.DirectionDebit, fee.Direction)
	require.Equal(t, "500", fee.Amount.String())
	require.True(t, fee.ValueDate.Equal(fee.TransactionDate))
}

func TestParseCSV_EnglishHeaders(t *testing.T) {
	doc := "Date;Debit;Credit;Reference;Description\n2024-03-05;0;100;REF-1;wire\n"

	stmt, err := Parse([]byte(doc), FormatCSV)
	require.NoError(t, err)
	require.Len(t, stmt.Transactions, 1)
	require.Equal(t, "REF-1", stmt.Transactions[0].Reference)
	require.Equal(t, domain.DirectionCredit, stmt.Transactions[0].Direction)
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := Parse([]byte(""), FormatCSV)
	require.True(t, errors.Is(err, domain.ErrEmptyFile), "got %v", err)

	// A header with no data rows is as empty as no file at all.
	_, err = Parse([]byte("Datum;Duguje;Potrazuje\n"), FormatCSV)
	require.True(t, errors.Is(err, domain.ErrEmptyFile), "got %v", err)
}

func TestParseCSV_NoDateColumn(t *testing.T) {
	_, err := Parse([]byte("Foo;Bar\n1;2\n"), FormatCSV)
	require.True(t, errors.Is(err, domain.ErrInvalidFormat), "got %v", err)
}

func TestParseCSV_BadRowDate(t *testing.T) {
	doc := "Datum;Duguje;Potrazuje\nnot-a-date;1;0\n"

	_, err := Parse([]byte(doc), FormatCSV)
	require.True(t, errors.Is(err, domain.ErrParse), "got %v", err)
	require.Contains(t, err.Error(), "row 2")
}
