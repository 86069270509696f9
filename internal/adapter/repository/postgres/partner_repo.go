package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fakturo/bankrecon/internal/domain"
	"github.com/fakturo/bankrecon/internal/infrastructure/postgres/generated"
)

// PartnerRepository implements usecase.PartnerRepository.
type PartnerRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewPartnerRepository creates a new PartnerRepository.
func NewPartnerRepository(pool *pgxpool.Pool) *PartnerRepository {
	return &PartnerRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// FindByBankAccount lists the tenant's partners that have the given bank
// account registered. More than one partner can share an account.
func (r *PartnerRepository) FindByBankAccount(ctx context.Context, tenantID, accountNumber string) ([]*domain.Partner, error) {
	rows, err := r.queries.FindPartnersByBankAccount(ctx, generated.FindPartnersByBankAccountParams{
		TenantID:      tenantID,
		AccountNumber: accountNumber,
	})
	if err != nil {
		return nil, err
	}

	partners := make([]*domain.Partner, 0, len(rows))
	for _, row := range rows {
		partners = append(partners, &domain.Partner{
			ID:        row.ID,
			TenantID:  row.TenantID,
			Name:      row.Name,
			TaxNumber: row.TaxNumber,
			CreatedAt: row.CreatedAt.Time,
			UpdatedAt: row.UpdatedAt.Time,
		})
	}

	return partners, nil
}
