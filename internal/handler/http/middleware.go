package http

import (
	"net/http"

	"github.com/vasiliy-maslov/storefront/internal/auth"
)

// RequireAuth blocks requests while the session is unauthenticated. The
// client is expected to redirect to its login view on 401.
func RequireAuth(session *auth.Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.IsAuthenticated() {
				respondWithError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin blocks requests unless the session holds the admin role. An
// authenticated non-admin is still blocked.
func RequireAdmin(session *auth.Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.IsAdmin() {
				respondWithError(w, http.StatusForbidden, "admin access required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
