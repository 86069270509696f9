package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the delivery status of an invoice. The reconciliation
// core never transitions it; SENT and DELIVERED invoices are "open" for
// counter-party matching.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "DRAFT"
	InvoiceStatusSent      InvoiceStatus = "SENT"
	InvoiceStatusDelivered InvoiceStatus = "DELIVERED"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

// PaymentStatus is derived deterministically from paid vs. total amount.
type PaymentStatus string

const (
	PaymentStatusUnpaid        PaymentStatus = "UNPAID"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentStatusPaid          PaymentStatus = "PAID"
)

// OpenInvoiceStatuses are the statuses eligible for automatic matching.
var OpenInvoiceStatuses = []InvoiceStatus{InvoiceStatusSent, InvoiceStatusDelivered}

// Invoice is owned by the invoicing subsystem; the reconciliation core only
// reads it and updates its paid amount through the payment materializer.
type Invoice struct {
	CreatedAt     time.Time
	UpdatedAt     time.Time
	InvoiceDate   time.Time
	ID            string
	TenantID      string
	PartnerID     string
	InvoiceNumber string
	Currency      string
	Status        InvoiceStatus
	PaymentStatus PaymentStatus
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
}

// DerivePaymentStatus maps a paid/total pair onto the payment state machine:
// UNPAID (paid = 0), PARTIALLY_PAID (0 < paid < total), PAID (paid >= total).
func DerivePaymentStatus(paid, total decimal.Decimal) PaymentStatus {
	switch {
	case paid.LessThanOrEqual(decimal.Zero):
		return PaymentStatusUnpaid
	case paid.LessThan(total):
		return PaymentStatusPartiallyPaid
	default:
		return PaymentStatusPaid
	}
}
