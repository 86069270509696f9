package redis

import (
	"context"
	"testing"

	"github.com/fakturo/bankrecon/internal/domain"
)

type stubPartnerRepo struct {
	calls    int
	partners []*domain.Partner
}

func (s *stubPartnerRepo) FindByBankAccount(ctx context.Context, tenantID, accountNumber string) ([]*domain.Partner, error) {
	s.calls++
	return s.partners, nil
}

func TestCachedPartnerRepositoryReadThrough(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	inner := &stubPartnerRepo{partners: []*domain.Partner{{ID: "partner-1", TenantID: "tenant-1", Name: "Acme d.o.o."}}}
	repo := NewCachedPartnerRepository(inner, NewCache(client))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		partners, err := repo.FindByBankAccount(ctx, "tenant-1", "205-0000111222333-44")
		if err != nil {
			t.Fatalf("lookup %d failed: %v", i+1, err)
		}
		if len(partners) != 1 || partners[0].ID != "partner-1" {
			t.Fatalf("lookup %d returned wrong partners: %+v", i+1, partners)
		}
	}

	if inner.calls != 1 {
		t.Fatalf("expected 1 inner lookup, got %d", inner.calls)
	}
}

func TestCachedPartnerRepositoryTenantIsolation(t *testing.T) {
	client, mr := newTestRedisClient(t)
	defer mr.Close()
	defer client.Close()

	inner := &stubPartnerRepo{partners: []*domain.Partner{{ID: "partner-1", TenantID: "tenant-1"}}}
	repo := NewCachedPartnerRepository(inner, NewCache(client))
	ctx := context.Background()

	if _, err := repo.FindByBankAccount(ctx, "tenant-1", "acct"); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if _, err := repo.FindByBankAccount(ctx, "tenant-2", "acct"); err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	if inner.calls != 2 {
		t.Fatalf("expected separate cache entries per tenant, got %d inner lookups", inner.calls)
	}
}
