package auth

import (
	"net/http"

	"guitar-storefront/internal/logger"
)

// RequireRole is middleware that requires a valid JWT with the given role.
func RequireRole(secret []byte, role string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenStr := GetBearerToken(r)
		if tokenStr == "" {
			logger.Debugf("RequireRole: no bearer token provided")
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := ParseToken(secret, tokenStr)
		if err != nil {
			logger.Debugf("RequireRole: JWT parse error: %v", err)
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if !HasRole(claims.Roles, role) {
			logger.Debugf("RequireRole: user lacks %s role", role)
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		next(w, r)
	}
}
