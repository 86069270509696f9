package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/fakturo/bankrecon/internal/domain"
	"github.com/fakturo/bankrecon/internal/infrastructure/postgres/generated"
	"github.com/fakturo/bankrecon/internal/usecase"
)

// InvoiceRepository implements usecase.InvoiceRepository.
type InvoiceRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewInvoiceRepository creates a new InvoiceRepository.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// GetByID retrieves an invoice by ID, scoped to the tenant.
func (r *InvoiceRepository) GetByID(ctx context.Context, tenantID, id string) (*domain.Invoice, error) {
	row, err := r.queries.GetInvoiceByID(ctx, generated.GetInvoiceByIDParams{
		TenantID: tenantID,
		ID:       id,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	return rowToInvoice(row), nil
}

// GetByNumber retrieves an invoice by its invoice number, scoped to the
// tenant.
func (r *InvoiceRepository) GetByNumber(ctx context.Context, tenantID, invoiceNumber string) (*domain.Invoice, error) {
	row, err := r.queries.GetInvoiceByNumber(ctx, generated.GetInvoiceByNumberParams{
		TenantID:      tenantID,
		InvoiceNumber: invoiceNumber,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	return rowToInvoice(row), nil
}

// ListOpenByPartners lists a tenant's open invoices for the given partners
// with totals inside the amount window.
func (r *InvoiceRepository) ListOpenByPartners(ctx context.Context, tenantID string, partnerIDs []string, minAmount, maxAmount decimal.Decimal) ([]*domain.Invoice, error) {
	rows, err := r.queries.ListOpenInvoicesByPartners(ctx, generated.ListOpenInvoicesByPartnersParams{
		TenantID:      tenantID,
		Column2:       partnerIDs,
		TotalAmount:   decimalToNumeric(minAmount),
		TotalAmount_2: decimalToNumeric(maxAmount),
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]*domain.Invoice, 0, len(rows))
	for _, row := range rows {
		invoices = append(invoices, rowToInvoice(row))
	}

	return invoices, nil
}

// GetByIDForUpdate retrieves an invoice by ID with a FOR UPDATE lock.
func (r *InvoiceRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, tenantID, id string) (*domain.Invoice, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	row, err := queries.GetInvoiceByIDForUpdate(ctx, generated.GetInvoiceByIDForUpdateParams{
		TenantID: tenantID,
		ID:       id,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvoiceNotFound
		}

		return nil, err
	}

	return rowToInvoice(row), nil
}

// UpdatePayment updates an invoice's paid amount and derived payment status.
func (r *InvoiceRepository) UpdatePayment(ctx context.Context, tx usecase.Transaction, id string, paidAmount decimal.Decimal, status domain.PaymentStatus, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.UpdateInvoicePayment(ctx, generated.UpdateInvoicePaymentParams{
		ID:            id,
		PaidAmount:    decimalToNumeric(paidAmount),
		PaymentStatus: string(status),
		UpdatedAt:     timeToPgTimestamptz(updatedAt),
	})
}

func rowToInvoice(row generated.Invoice) *domain.Invoice {
	return &domain.Invoice{
		ID:            row.ID,
		TenantID:      row.TenantID,
		PartnerID:     row.PartnerID,
		InvoiceNumber: row.InvoiceNumber,
		InvoiceDate:   row.InvoiceDate.Time,
		Currency:      row.Currency,
		Status:        domain.InvoiceStatus(row.Status),
		PaymentStatus: domain.PaymentStatus(row.PaymentStatus),
		TotalAmount:   numericToDecimal(row.TotalAmount),
		PaidAmount:    numericToDecimal(row.PaidAmount),
		CreatedAt:     row.CreatedAt.Time,
		UpdatedAt:     row.UpdatedAt.Time,
	}
}
