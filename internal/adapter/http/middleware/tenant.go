package middleware

import (
	"context"
	"net/http"

	"github.com/fakturo/bankrecon/internal/infrastructure/logging"
)

// TenantIDHeader is the header carrying the caller's tenant identifier.
const TenantIDHeader = "X-Tenant-ID"

type tenantCtxKey struct{}

// Tenant extracts the tenant ID header into the request context. Requests
// without a tenant are rejected before reaching any handler.
func Tenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenant := r.Header.Get(TenantIDHeader)
		if tenant == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"INVALID_REQUEST","message":"missing ` + TenantIDHeader + ` header"}`))
			return
		}

		ctx := context.WithValue(r.Context(), tenantCtxKey{}, tenant)
		// Make the tenant visible to context-aware loggers too.
		ctx = context.WithValue(ctx, logging.TenantIDKey, tenant)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// WithTenant returns a context carrying the given tenant ID.
func WithTenant(ctx context.Context, tenant string) context.Context {
	return context.WithValue(ctx, tenantCtxKey{}, tenant)
}

// TenantID returns the tenant ID stored by the Tenant middleware, or empty.
func TenantID(ctx context.Context) string {
	if tenant, ok := ctx.Value(tenantCtxKey{}).(string); ok {
		return tenant
	}

	return ""
}
