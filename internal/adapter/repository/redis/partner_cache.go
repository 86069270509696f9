package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fakturo/bankrecon/internal/domain"
	"github.com/fakturo/bankrecon/internal/usecase"
)

// Auto-match passes hit the same counter-party accounts over and over, so
// partner lookups are cached for a short window.
const partnerCacheTTL = 5 * time.Minute

// CachedPartnerRepository decorates a PartnerRepository with a read-through
// cache keyed by tenant and bank account. Cache failures fall back to the
// underlying repository.
type CachedPartnerRepository struct {
	inner usecase.PartnerRepository
	cache usecase.Cache
}

// NewCachedPartnerRepository creates a new CachedPartnerRepository.
func NewCachedPartnerRepository(inner usecase.PartnerRepository, cache usecase.Cache) *CachedPartnerRepository {
	return &CachedPartnerRepository{
		inner: inner,
		cache: cache,
	}
}

// FindByBankAccount returns the cached partner list for the account when
// present, otherwise loads it from the inner repository and caches it.
func (r *CachedPartnerRepository) FindByBankAccount(ctx context.Context, tenantID, accountNumber string) ([]*domain.Partner, error) {
	key := "partners:" + tenantID + ":" + accountNumber

	if data, err := r.cache.Get(ctx, key); err == nil {
		var partners []*domain.Partner
		if err := json.Unmarshal(data, &partners); err == nil {
			return partners, nil
		}
	}

	partners, err := r.inner.FindByBankAccount(ctx, tenantID, accountNumber)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(partners); err == nil {
		_ = r.cache.Set(ctx, key, data, partnerCacheTTL)
	}

	return partners, nil
}
