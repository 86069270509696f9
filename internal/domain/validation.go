package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidTenantID = errors.New("invalid tenant id")
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrAmountTooLarge  = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxTenantIDLength = 64
	MaxPaymentAmount  = "1000000000000" // 1 trillion
)

// Valid currency codes (ISO 4217) for imported statements.
var validCurrencies = map[string]bool{
	"EUR": true, "USD": true, "GBP": true, "CHF": true,
	"RSD": true, "BAM": true, "MKD": true, "HUF": true,
	"CZK": true, "PLN": true, "SEK": true, "NOK": true,
	"DKK": true, "JPY": true, "AUD": true, "CAD": true,
}

// ValidateTenantID validates a tenant identifier.
func ValidateTenantID(tenantID string) error {
	tenantID = strings.TrimSpace(tenantID)

	if tenantID == "" {
		return fmt.Errorf("%w: tenant id cannot be empty", ErrInvalidTenantID)
	}

	if len(tenantID) > MaxTenantIDLength {
		return fmt.Errorf("%w: tenant id exceeds %d characters", ErrInvalidTenantID, MaxTenantIDLength)
	}

	return nil
}

// ValidateCurrency validates a currency code.
func ValidateCurrency(currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))

	if !validCurrencies[currency] {
		return fmt.Errorf("%w: %s is not a valid ISO 4217 currency code", ErrInvalidCurrency, currency)
	}

	return nil
}

// ValidateAmount validates a payment amount.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	maxAmount, _ := decimal.NewFromString(MaxPaymentAmount)
	if amount.GreaterThan(maxAmount) {
		return fmt.Errorf("%w: maximum amount is %s", ErrAmountTooLarge, MaxPaymentAmount)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters
func ValidatePagination(limit, offset int) (int, int, error) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset, nil
}
