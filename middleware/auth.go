package middleware

import (
	"net/http"
	"strings"

	"gitea.com/go-chi/session"
	"github.com/go-chi/render"

	"github.com/soclog/change-inventory/userctx"
)

// RequireSession ensures the request carries an authenticated session.
// Browser-facing routes are redirected to /login; API routes get a 401.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := session.GetSession(r)
		userID, _ := sess.Get("user_id").(int)

		if userID == 0 {
			if strings.HasPrefix(r.URL.Path, "/api/") {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, map[string]string{"error": "authentication required"})
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := userctx.SetUserID(r.Context(), userID)
		if username, ok := sess.Get("username").(string); ok {
			ctx = userctx.SetUsername(ctx, username)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
