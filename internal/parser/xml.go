package parser

import (
	"encoding/xml"
	"fmt"

	"github.com/fakturo/bankrecon/internal/domain"
)

// xmlStatement mirrors the national bank statement XML schema.
type xmlStatement struct {
	XMLName xml.Name   `xml:"BankStatement"`
	Header  *xmlHeader `xml:"Header"`
	Items   []xmlItem  `xml:"Transactions>Transaction"`
}

type xmlHeader struct {
	AccountNumber   string `xml:"AccountNumber"`
	BankName        string `xml:"BankName"`
	StatementNumber string `xml:"StatementNumber"`
	StatementDate   string `xml:"StatementDate"`
	PeriodStart     string `xml:"PeriodStart"`
	PeriodEnd       string `xml:"PeriodEnd"`
	OpeningBalance  string `xml:"OpeningBalance"`
	ClosingBalance  string `xml:"ClosingBalance"`
	Currency        string `xml:"Currency"`
}

type xmlItem struct {
	TransactionDate     string `xml:"TransactionDate"`
	ValueDate           string `xml:"ValueDate"`
	Reference           string `xml:"Reference"`
	Description         string `xml:"Description"`
	Debit               string `xml:"Debit"`
	Credit              string `xml:"Credit"`
	CounterpartyName    string `xml:"CounterpartyName"`
	CounterpartyAccount string `xml:"CounterpartyAccount"`
}

func parseNationalXML(content []byte) (*ParsedStatement, error) {
	if len(content) == 0 {
		return nil, domain.ErrEmptyFile
	}

	var doc xmlStatement
	if err := xml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	if doc.Header == nil {
		return nil, fmt.Errorf("%w: missing header", domain.ErrInvalidFormat)
	}

	if doc.Header.AccountNumber == "" || doc.Header.StatementNumber == "" {
		return nil, fmt.Errorf("%w: header is incomplete", domain.ErrInvalidFormat)
	}

	statementDate, err := ParseDate(doc.Header.StatementDate)
	if err != nil {
		return nil, err
	}

	stmt := &ParsedStatement{
		AccountNumber:   doc.Header.AccountNumber,
		BankName:        doc.Header.BankName,
		StatementNumber: doc.Header.StatementNumber,
		StatementDate:   statementDate,
		PeriodStart:     parseOptionalDate(doc.Header.PeriodStart, statementDate),
		PeriodEnd:       parseOptionalDate(doc.Header.PeriodEnd, statementDate),
		OpeningBalance:  parseOptionalAmount(doc.Header.OpeningBalance),
		ClosingBalance:  parseOptionalAmount(doc.Header.ClosingBalance),
		Currency:        doc.Header.Currency,
	}

	for i, item := range doc.Items {
		txDate, err := ParseDate(item.TransactionDate)
		if err != nil {
			return nil, rowError(i+1, err)
		}

		credit := parseOptionalAmount(item.Credit)
		debit := parseOptionalAmount(item.Debit)

		txn := ParsedTransaction{
			TransactionDate:     txDate,
			ValueDate:           parseOptionalDate(item.ValueDate, txDate),
			Reference:           item.Reference,
			Description:         item.Description,
			CounterpartyName:    item.CounterpartyName,
			CounterpartyAccount: item.CounterpartyAccount,
		}

		// Sign from whichever side is non-zero. Credit wins when both are set.
		if credit.IsPositive() {
			txn.Direction = domain.DirectionCredit
			txn.Amount = credit
		} else {
			txn.Direction = domain.DirectionDebit
			txn.Amount = debit
		}

		stmt.Transactions = append(stmt.Transactions, txn)
	}

	return stmt, nil
}
