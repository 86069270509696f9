package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateTenantID(t *testing.T) {
	t.Parallel()

	t.Run("valid tenant", func(t *testing.T) {
		if err := ValidateTenantID("tenant-42"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("empty tenant rejected", func(t *testing.T) {
		err := ValidateTenantID("   ")
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})

	t.Run("tenant too long", func(t *testing.T) {
		tooLong := strings.Repeat("a", MaxTenantIDLength+1)
		err := ValidateTenantID(tooLong)
		if !errors.Is(err, ErrInvalidTenantID) {
			t.Fatalf("expected ErrInvalidTenantID, got %v", err)
		}
	})
}

func TestValidateCurrency(t *testing.T) {
	t.Parallel()

	if err := ValidateCurrency("eur"); err != nil {
		t.Fatalf("expected lowercase code to pass, got %v", err)
	}

	if err := ValidateCurrency("XXX"); !errors.Is(err, ErrInvalidCurrency) {
		t.Fatalf("expected ErrInvalidCurrency, got %v", err)
	}
}

func TestValidateAmount(t *testing.T) {
	t.Parallel()

	if err := ValidateAmount(decimal.NewFromFloat(99.99)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := ValidateAmount(decimal.Zero); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}

	huge, _ := decimal.NewFromString("2000000000000")
	if err := ValidateAmount(huge); !errors.Is(err, ErrAmountTooLarge) {
		t.Fatalf("expected ErrAmountTooLarge, got %v", err)
	}
}

func TestValidatePagination(t *testing.T) {
	t.Parallel()

	limit, offset, err := ValidatePagination(0, -5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if limit != 50 || offset != 0 {
		t.Errorf("expected defaults (50, 0), got (%d, %d)", limit, offset)
	}

	limit, _, _ = ValidatePagination(5000, 0)
	if limit != 1000 {
		t.Errorf("expected limit capped at 1000, got %d", limit)
	}
}
