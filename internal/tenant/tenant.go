// Package tenant carries the tenant identifier from the X-Tenant-ID header
// through the request context. Every entity and query in both services is
// scoped to exactly one tenant; handlers downstream of Require may assume a
// non-empty identifier is present.
package tenant

import (
	"context"
	"encoding/json"
	"net/http"
)

const Header = "X-Tenant-ID"

type contextKey struct{}

func WithTenant(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, contextKey{}, tenantID)
}

func FromContext(ctx context.Context) (string, bool) {
	tenantID, ok := ctx.Value(contextKey{}).(string)
	return tenantID, ok && tenantID != ""
}

// Require rejects requests without the tenant header before they reach any
// handler. 400 matches the original contract for a missing header.
func Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.Header.Get(Header)
		if tenantID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":   "TENANT_REQUIRED",
				"message": Header + " header required",
			})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithTenant(r.Context(), tenantID)))
	})
}
