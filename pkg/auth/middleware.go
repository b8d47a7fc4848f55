package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

type contextKey string

const identityKey contextKey = "admin_identity"

// IdentityFromContext returns the identity stored by RequireAdmin.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(identityKey).(Identity)
	return v, ok
}

// WithIdentity stores id in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// TokenFromRequest returns the bearer token of r, if any.
func TokenFromRequest(r *http.Request) (string, error) {
	return ParseBearer(r.Header.Get("Authorization"))
}

type unauthorizedBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RequireAdmin rejects requests without a valid bearer token. Missing,
// malformed and expired tokens all get the same 401 response.
func RequireAdmin(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := TokenFromRequest(r)
			var id Identity
			if err == nil {
				id, err = verifier.Verify(token)
			}
			if err != nil {
				slog.Debug("admin auth rejected", "path", r.URL.Path, "error", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(unauthorizedBody{Success: false, Message: "Unauthorized"})
				return
			}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
		})
	}
}
