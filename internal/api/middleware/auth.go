package middleware

import (
	"net/http"
	"strings"

	"github.com/mcoot/promoclaim-go/internal/api/apierr"
	"github.com/mcoot/promoclaim-go/internal/services/adminauth"
)

// AdminAuth creates middleware gating admin endpoints behind the shared
// secret, presented as a bearer token
func AdminAuth(authService *adminauth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			secret := extractBearer(r)
			if secret == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			if err := authService.Verify(secret); err != nil {
				apierr.WriteError(w, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractBearer extracts the bearer token from the Authorization header
func extractBearer(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
