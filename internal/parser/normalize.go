package parser

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fakturo/bankrecon/internal/domain"
)

// dateLayouts are the date formats banks emit, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
}

// ParseAmount parses a locale-formatted amount string. Supported shapes:
// "1.234,56" (thousands dot, decimal comma), "1234,56", "1234.56", "1234".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, nil
	}

	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %q", domain.ErrParse, s)
	}

	return d, nil
}

// ParseDate parses a date in ISO, DD.MM.YYYY or DD/MM/YYYY form.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: invalid date %q", domain.ErrParse, s)
}

// parseOptionalDate parses a date, defaulting to fallback when the field is
// empty or malformed. Optional fields never abort the whole document.
func parseOptionalDate(s string, fallback time.Time) time.Time {
	if strings.TrimSpace(s) == "" {
		return fallback
	}

	t, err := ParseDate(s)
	if err != nil {
		return fallback
	}

	return t
}

// parseOptionalAmount parses an amount, defaulting to zero on failure.
func parseOptionalAmount(s string) decimal.Decimal {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// rowError wraps a parse failure with the row it occurred on.
func rowError(row int, err error) error {
	return fmt.Errorf("row %d: %w", row, err)
}
