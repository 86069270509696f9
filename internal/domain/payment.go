package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// PaymentMethodBankTransfer is the method for payments materialized
	// from statement transactions.
	PaymentMethodBankTransfer = "bank_transfer"

	// PaymentStatusCleared is the status of a freshly materialized payment.
	PaymentStatusCleared = "CLEARED"
)

// Payment is a payment record. The reconciliation core creates
// payments but does not own them; they belong to the invoicing subsystem.
type Payment struct {
	CreatedAt     time.Time
	PaymentDate   time.Time
	ID            string
	TenantID      string
	InvoiceID     string
	TransactionID string
	Method        string
	Reference     string
	Status        string
	Amount        decimal.Decimal
}

// Validate validates a payment before persistence.
func (p *Payment) Validate() error {
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	return nil
}
