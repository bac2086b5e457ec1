package middleware

import (
	"net/http"

	"hpq.in/rondas/models"
	"hpq.in/rondas/utils"
)

// RequirePermission rejects requests whose authenticated role does not hold
// the given capability. Runs after JWTMiddleware.
func RequirePermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaims(r)
			if claims == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			for _, granted := range models.PermissionsForRole(claims.Role) {
				if utils.MatchesPermission(granted, permission) {
					next.ServeHTTP(w, r)
					return
				}
			}
			http.Error(w, "insufficient permissions", http.StatusForbidden)
		})
	}
}
