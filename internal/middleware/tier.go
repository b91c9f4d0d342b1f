package middleware

import (
	"net/http"

	"github.com/quotewall/backend/internal/api/httpx"
	"github.com/quotewall/backend/internal/models"
)

// RequireTier gates a route on a minimum role. Anonymous requests are sent to
// the login page; authenticated requests below the tier get a 403. One
// predicate replaces separate login/editor/admin gates because the tiers are
// totally ordered.
func RequireTier(min models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := FromCtx(r.Context())
			if u.Role.AtLeast(min) {
				next.ServeHTTP(w, r)
				return
			}
			if u.Role == models.RoleAnonymous {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			httpx.WriteError(w, http.StatusForbidden, "forbidden", models.ErrForbidden.Error(), nil)
		})
	}
}
