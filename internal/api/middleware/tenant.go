package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/rafaelruch/agendapro-sub002/internal/api/handlers"
)

// TenantHeader carries the tenant this request acts on. Upstream auth
// (API gateway) has already validated the caller's right to the tenant.
const TenantHeader = "X-Tenant-ID"

type tenantContextKey struct{}

const msgMissingTenant = "cabeçalho X-Tenant-ID obrigatório"

// Logger is the logging surface of the middleware.
type Logger interface {
	Warn(format string, v ...interface{})
}

// TenantAuth extracts and validates the tenant header, rejecting requests
// without one. The tenant id travels through the request context.
func TenantAuth(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(TenantHeader)
			tenantID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || tenantID <= 0 {
				log.Warn("%s %s - missing or invalid tenant header %q", r.Method, r.URL.Path, raw)
				handlers.RespondUnauthorized(w, msgMissingTenant)
				return
			}

			ctx := context.WithValue(r.Context(), tenantContextKey{}, tenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TenantFromContext returns the tenant id set by TenantAuth.
func TenantFromContext(ctx context.Context) (int64, bool) {
	tenantID, ok := ctx.Value(tenantContextKey{}).(int64)
	return tenantID, ok
}
