package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// ownerKey is the context key under which RequireOwner stores the caller's id.
type ownerKey struct{}

// OwnerHeader names the request header carrying the authenticated user's id.
// Session handling itself lives in the edge proxy; by the time a request
// reaches this service the header value is trusted.
const OwnerHeader = "X-User-ID"

// RequireOwner rejects requests without a valid owner id and stores the
// parsed uuid in the request context for handlers to read via OwnerFromContext.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := uuid.Parse(r.Header.Get(OwnerHeader))
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{
					"code":    "unauthorized",
					"message": "missing or invalid " + OwnerHeader + " header",
				},
			})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ownerKey{}, ownerID)))
	})
}

// OwnerFromContext returns the owner id stored by RequireOwner.
// The boolean is false when the middleware did not run for this request.
func OwnerFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ownerKey{}).(uuid.UUID)
	return id, ok
}
