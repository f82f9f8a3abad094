package middleware

import (
	"context"
	"net/http"

	"ravepayments/internal/domain"
)

// SessionCookieName is the cookie carrying the admin session token.
const SessionCookieName = "rave_admin_session"

type contextKey string

const adminUserKey contextKey = "adminUser"

// SetAdminUser returns a context with the admin username set. Used by auth middleware.
func SetAdminUser(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminUserKey, username)
}

// AdminUserFromContext returns the authenticated admin username from the context, if present.
func AdminUserFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(adminUserKey).(string)
	return name, ok
}

// RequireAdmin returns a wrapper that validates the admin session cookie and
// sets the admin username in the request context. The admin surface is
// browser pages, so an unauthenticated request is redirected to the login
// page rather than answered with a 401 body.
func RequireAdmin(verifier domain.TokenVerifier) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
				return
			}
			username, err := verifier.Verify(cookie.Value)
			if err != nil {
				http.Redirect(w, r, "/admin/login", http.StatusSeeOther)
				return
			}
			r = r.WithContext(SetAdminUser(r.Context(), username))
			next(w, r)
		}
	}
}
