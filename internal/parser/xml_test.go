package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fakturo/bankrecon/internal/domain"
)

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<BankStatement>
  <Header>
    <AccountNumber>160-0000123456789-55</AccountNumber>
    <BankName>Banca Intesa</BankName>
    <StatementNumber>17/2024</StatementNumber>
    <StatementDate>2024-03-31</StatementDate>
    <PeriodStart>2024-03-01</PeriodStart>
    <PeriodEnd>2024-03-31</PeriodEnd>
    <OpeningBalance>10.000,00</OpeningBalance>
    <ClosingBalance>14.500,00</ClosingBalance>
    <Currency>EUR</Currency>
  </Header>
  <Transactions>
    <Transaction>
      <TransactionDate>2024-03-05</TransactionDate>
      <ValueDate>2024-03-06</ValueDate>
      <Reference>INV-2024-001</Reference>
      <Description>Payment for invoice INV-2024-001</Description>
      <Debit>0,00</Debit>
      <Credit>5.000,00</Credit>
      <CounterpartyName>Acme d.o.o.</CounterpartyName>
      <CounterpartyAccount>205-0000987654321-33</CounterpartyAccount>
    </Transaction>
    <Transaction>
      <TransactionDate>2024-03-10</TransactionDate>
      <Description>Bank fee</Description>
      <Debit>500,00</Debit>
      <Credit>0,00</Credit>
    </Transaction>
  </Transactions>
</BankStatement>`

func TestParseNationalXML(t *testing.T) {
	stmt, err := Parse([]byte(sampleXML), FormatNationalXML)
	require.NoError(t, err)

	require.Equal(t, "160-0000123456789-55", stmt.AccountNumber)
	require.Equal(t, "Banca Intesa", stmt.BankName)
	require.Equal(t, "17/2024", stmt.StatementNumber)
	require.Equal(t, "EUR", stmt.Currency)
	require.Equal(t, "10000", stmt.OpeningBalance.String())
	require.Equal(t, "14500", stmt.ClosingBalance.String())
	require.True(t, stmt.PeriodStart.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	require.Len(t, stmt.Transactions, 2)

	credit := stmt.Transactions[0]
	require.Equal(t, domain.DirectionCredit, credit.Direction)
	require.Equal(t, "5000", credit.Amount.String())
	require.Equal(t, "INV-2024-001", credit.Reference)
	require.Equal(t, "Acme d.o.o.", credit.CounterpartyName)
	require.True(t, credit.ValueDate.Equal(time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)))

	debit := stmt.Transactions[1]
	require.Equal(t, domain.DirectionDebit, debit.Direction)
	require.Equal(t, "500", debit.Amount.String())
	// Value date defaults to the transaction date when absent.
	require.True(t, debit.ValueDate.Equal(debit.TransactionDate))
}

func TestParseNationalXML_MissingHeader(t *testing.T) {
	doc := `<BankStatement><Transactions></Transactions></BankStatement>`

	_, err := Parse([]byte(doc), FormatNationalXML)
	require.True(t, errors.Is(err, domain.ErrInvalidFormat), "got %v", err)
}

func TestParseNationalXML_Malformed(t *testing.T) {
	_, err := Parse([]byte(`<BankStatement><Header>`), FormatNationalXML)
	require.True(t, errors.Is(err, domain.ErrParse), "got %v", err)
}

func TestParseNationalXML_BadRowDate(t *testing.T) {
	doc := `<BankStatement>
  <Header>
    <AccountNumber>160-1</AccountNumber>
    <StatementNumber>1/2024</StatementNumber>
    <StatementDate>2024-03-31</StatementDate>
  </Header>
  <Transactions>
    <Transaction><TransactionDate>not-a-date</TransactionDate><Debit>10</Debit></Transaction>
  </Transactions>
</BankStatement>`

	_, err := Parse([]byte(doc), FormatNationalXML)
	require.True(t, errors.Is(err, domain.ErrParse), "got %v", err)
	require.Contains(t, err.Error(), "row 1")
}
