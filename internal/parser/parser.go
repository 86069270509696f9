// Package parser converts raw bank statement files into a canonical
// statement model. Parsers are pure functions: no I/O beyond the input
// buffer and no shared mutable state, so concurrent imports never
// interfere with each other.
package parser

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fakturo/bankrecon/internal/domain"
)

// Format identifies a supported statement file format.
type Format string

const (
	FormatNationalXML Format = "national_xml"
	FormatCSV         Format = "csv"
	FormatMT940       Format = "mt940"
)

// ParsedStatement is the canonical output of every format parser.
type ParsedStatement struct {
	StatementDate   time.Time
	PeriodStart     time.Time
	PeriodEnd       time.Time
	AccountNumber   string
	BankName        string
	StatementNumber string
	Currency        string
	OpeningBalance  decimal.Decimal
	ClosingBalance  decimal.Decimal
	Transactions    []ParsedTransaction
}

// ParsedTransaction is one canonical statement line item.
type ParsedTransaction struct {
	TransactionDate     time.Time
	ValueDate           time.Time
	Reference           string
	Description         string
	CounterpartyName    string
	CounterpartyAccount string
	Direction           domain.Direction
	Amount              decimal.Decimal
}

// ParseFormat parses an explicit format token.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "national_xml", "xml":
		return FormatNationalXML, nil
	case "csv":
		return FormatCSV, nil
	case "mt940", "sta":
		return FormatMT940, nil
	default:
		return "", domain.ErrUnsupportedFormat
	}
}

// DetectFormat infers the format from a file name extension. An explicit
// format parameter always takes precedence over detection.
func DetectFormat(fileName string) (Format, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".xml":
		return FormatNationalXML, nil
	case ".csv":
		return FormatCSV, nil
	case ".mt940", ".sta":
		return FormatMT940, nil
	default:
		return "", domain.ErrUnsupportedFormat
	}
}

// Parse dispatches raw file content to the parser for the given format.
func Parse(content []byte, format Format) (*ParsedStatement, error) {
	switch format {
	case FormatNationalXML:
		return parseNationalXML(content)
	case FormatCSV:
		return parseCSV(content)
	case FormatMT940:
		return parseMT940(content)
	default:
		return nil, domain.ErrUnsupportedFormat
	}
}
